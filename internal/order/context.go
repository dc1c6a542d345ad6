package order

import (
	"github.com/JacobSsozi/JadeDelight/internal/menu"
	"github.com/JacobSsozi/JadeDelight/internal/restaurant"
)

// FormContext is the whole live state of one order form: the line
// items, the aggregate subscribed to them, the fulfillment selection,
// and the customer's raw input fields. One context per order session,
// constructed once and passed by reference — no ambient globals.
type FormContext struct {
	ID string

	Lines       []*LineItem
	Aggregate   *Aggregate
	Fulfillment *Fulfillment

	FirstName string
	LastName  string
	Phone     string
	Street    AddressField
	City      AddressField

	profile *restaurant.Profile
}

// NewFormContext builds a form from the menu. A malformed menu cost
// aborts construction: better to refuse the session than to take
// orders against a corrupted price.
func NewFormContext(id string, items []menu.Item, profile *restaurant.Profile) (*FormContext, error) {
	c := &FormContext{ID: id, profile: profile}

	for _, item := range items {
		li, err := NewLineItem(item)
		if err != nil {
			return nil, err
		}
		c.Lines = append(c.Lines, li)
	}

	c.Aggregate = NewAggregate(c.Lines, profile.TaxRate)
	c.Fulfillment = NewFulfillment(&c.Street, &c.City)
	return c, nil
}

// CustomerName joins first and last name, first omitted when blank.
// ok is false when the required last name is missing.
func (c *FormContext) CustomerName() (name string, ok bool) {
	if c.LastName == "" {
		return "", false
	}
	if c.FirstName != "" {
		return c.FirstName + " " + c.LastName, true
	}
	return c.LastName, true
}

// PhoneDigits strips everything but digits from the raw phone field.
func (c *FormContext) PhoneDigits() string {
	var digits []byte
	for i := 0; i < len(c.Phone); i++ {
		if c.Phone[i] >= '0' && c.Phone[i] <= '9' {
			digits = append(digits, c.Phone[i])
		}
	}
	return string(digits)
}
