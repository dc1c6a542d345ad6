package order

import "testing"

func TestFulfillmentStartsAsPickupWithHiddenAddress(t *testing.T) {
	c := testForm(t)

	if !c.Fulfillment.IsPickup() {
		t.Fatal("initial mode should be pickup")
	}
	if !c.Street.Hidden || !c.City.Hidden {
		t.Fatal("address fields should start hidden")
	}
}

func TestSelectDeliveryShowsAddressFields(t *testing.T) {
	c := testForm(t)

	c.Fulfillment.Select(Delivery)

	if c.Fulfillment.IsPickup() {
		t.Fatal("mode should be delivery")
	}
	if c.Street.Hidden || c.City.Hidden {
		t.Fatal("address fields should be visible for delivery")
	}
}

// Switching modes toggles visibility only; entered text survives.
func TestModeSwitchingIsNonDestructive(t *testing.T) {
	c := testForm(t)

	c.Fulfillment.Select(Delivery)
	c.Street.Value = "10 Main St"
	c.City.Value = "Boston"

	c.Fulfillment.Select(Pickup)
	c.Fulfillment.Select(Delivery)

	if c.Street.Value != "10 Main St" || c.City.Value != "Boston" {
		t.Fatalf("address text was cleared: street=%q city=%q",
			c.Street.Value, c.City.Value)
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind("pickup"); err != nil || k != Pickup {
		t.Fatalf("ParseKind(pickup) = %v, %v", k, err)
	}
	if k, err := ParseKind("delivery"); err != nil || k != Delivery {
		t.Fatalf("ParseKind(delivery) = %v, %v", k, err)
	}
	if _, err := ParseKind("drone"); err == nil {
		t.Fatal("ParseKind(drone) should fail")
	}
}
