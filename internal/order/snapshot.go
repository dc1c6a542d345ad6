package order

import "github.com/JacobSsozi/JadeDelight/internal/confirm"

// Snapshot freezes the form for confirmation rendering. Everything is
// copied out as display text at call time: the document built from it
// stays fixed even if the form is edited afterwards.
func (c *FormContext) Snapshot() confirm.Snapshot {
	rows := make([]confirm.Row, 0, len(c.Lines))
	for _, li := range c.Lines {
		rows = append(rows, li.SnapshotRow())
	}

	name, _ := c.CustomerName()

	orderType := "pickup"
	delay := c.profile.PickupDelayMin
	if !c.Fulfillment.IsPickup() {
		orderType = "delivery to " + c.Street.Value + ", " + c.City.Value
		delay = c.profile.DeliveryDelay
	}

	return confirm.Snapshot{
		RestaurantName: c.profile.Name,
		StylesheetHref: c.profile.StylesheetHref,
		CustomerName:   name,
		Phone:          c.PhoneDigits(),
		OrderType:      orderType,
		Rows:           rows,
		Subtotal:       c.Aggregate.Subtotal.Value,
		TaxLabel:       c.profile.TaxLabel,
		Tax:            c.Aggregate.Tax.Value,
		Total:          c.Aggregate.Total.Value,
		Pickup:         c.Fulfillment.IsPickup(),
		DelayMinutes:   delay,
	}
}
