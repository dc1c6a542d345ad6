package order

import "github.com/JacobSsozi/JadeDelight/internal/validate"

// Rules returns the form's validation rules in the order they are
// surfaced to the user. Each rule reads live state at evaluation
// time; none depends on another's result.
func (c *FormContext) Rules() []validate.Rule {
	return []validate.Rule{
		{
			Name: "has-items",
			Check: func() string {
				if c.Aggregate.Total.Value != "0.00" {
					return ""
				}
				return "No items ordered!"
			},
		},
		{
			Name: "phone-format",
			Check: func() string {
				n := len(c.PhoneDigits())
				if n == 7 || n == 10 {
					return ""
				}
				return "Phone numbers must have 7 or 10 digits!"
			},
		},
		{
			Name: "delivery-address",
			Check: func() string {
				if c.Fulfillment.IsPickup() {
					return ""
				}
				if c.Street.Value != "" && c.City.Value != "" {
					return ""
				}
				return "Delivery requires a street and city!"
			},
		},
		{
			Name: "customer-name",
			Check: func() string {
				if _, ok := c.CustomerName(); ok {
					return ""
				}
				return "Last name is required!"
			},
		},
	}
}
