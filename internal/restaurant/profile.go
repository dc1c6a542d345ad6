package restaurant

import (
	"fmt"
	"os"
	"strconv"
)

// Profile holds the single restaurant this service takes orders for.
// Everything here is static configuration: the order engine reads the
// tax rate, the confirmation builder reads the rest.
type Profile struct {
	Name           string
	TaxRate        float64
	TaxLabel       string
	PickupDelayMin int
	DeliveryDelay  int
	StylesheetHref string
}

// DefaultProfile is the Jade Delight storefront.
func DefaultProfile() *Profile {
	return &Profile{
		Name:           "Jade Delight",
		TaxRate:        0.0625,
		TaxLabel:       "Massachusetts tax (6.25%)",
		PickupDelayMin: 15,
		DeliveryDelay:  45,
		StylesheetHref: "/static/jade.css",
	}
}

// LoadProfile builds the profile from the environment, falling back to
// the defaults for anything unset. A malformed override is a
// configuration defect and is returned as an error so the caller can
// fail at startup.
func LoadProfile() (*Profile, error) {
	p := DefaultProfile()

	if v := os.Getenv("RESTAURANT_NAME"); v != "" {
		p.Name = v
	}
	if v := os.Getenv("RESTAURANT_STYLESHEET"); v != "" {
		p.StylesheetHref = v
	}
	if v := os.Getenv("PICKUP_DELAY_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PICKUP_DELAY_MINUTES %q: %w", v, err)
		}
		p.PickupDelayMin = n
	}
	if v := os.Getenv("DELIVERY_DELAY_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DELIVERY_DELAY_MINUTES %q: %w", v, err)
		}
		p.DeliveryDelay = n
	}

	return p, nil
}
