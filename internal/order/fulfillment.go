package order

import "fmt"

// Kind is the fulfillment selection.
type Kind string

const (
	Pickup   Kind = "pickup"
	Delivery Kind = "delivery"
)

// ParseKind validates a client-supplied kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Pickup, Delivery:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown fulfillment kind %q", s)
}

// AddressField is one delivery-address input: its text plus whether
// the form currently shows it. Hiding never touches the text.
type AddressField struct {
	Value  string `json:"value"`
	Hidden bool   `json:"hidden"`
}

// Fulfillment tracks the pickup-vs-delivery selection and toggles the
// address fields' visibility with it. Switching modes is
// non-destructive: previously entered street and city text survives
// any number of round trips.
type Fulfillment struct {
	kind   Kind
	street *AddressField
	city   *AddressField
}

// NewFulfillment starts in pickup, matching the form's pre-checked
// selector.
func NewFulfillment(street, city *AddressField) *Fulfillment {
	f := &Fulfillment{street: street, city: city}
	f.Select(Pickup)
	return f
}

// Select sets the mode and flips address visibility. Only by explicit
// selection; the mode is never inferred.
func (f *Fulfillment) Select(kind Kind) {
	f.kind = kind
	hidden := kind == Pickup
	f.street.Hidden = hidden
	f.city.Hidden = hidden
}

func (f *Fulfillment) Kind() Kind {
	return f.kind
}

func (f *Fulfillment) IsPickup() bool {
	return f.kind == Pickup
}
