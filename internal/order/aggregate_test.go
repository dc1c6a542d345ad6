package order

import (
	"fmt"
	"testing"

	"github.com/JacobSsozi/JadeDelight/internal/menu"
	"github.com/JacobSsozi/JadeDelight/internal/money"
	"github.com/JacobSsozi/JadeDelight/internal/restaurant"
)

func testForm(t *testing.T) *FormContext {
	t.Helper()
	c, err := NewFormContext("test", menu.DefaultItems(), restaurant.DefaultProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestAggregateStartsAtZero(t *testing.T) {
	c := testForm(t)
	agg := c.Aggregate

	for _, f := range []*money.Field{agg.Subtotal, agg.Tax, agg.Total} {
		if f.Value != "0.00" {
			t.Fatalf("aggregate field should start at 0.00, got %q", f.Value)
		}
	}
}

func TestAggregateRecomputesOnEveryEdit(t *testing.T) {
	c := testForm(t)

	// Egg Rolls $3.95 x 2 = 7.90
	c.Lines[0].SetQuantity("2")
	if c.Aggregate.Subtotal.Value != "7.90" {
		t.Fatalf("subtotal = %q, want 7.90", c.Aggregate.Subtotal.Value)
	}
	if c.Aggregate.Tax.Value != "0.49" {
		t.Fatalf("tax = %q, want 0.49", c.Aggregate.Tax.Value)
	}
	if c.Aggregate.Total.Value != "8.39" {
		t.Fatalf("total = %q, want 8.39", c.Aggregate.Total.Value)
	}

	// General Tso's $13.95 x 1, subtotal 21.85
	c.Lines[3].SetQuantity("1")
	if c.Aggregate.Subtotal.Value != "21.85" {
		t.Fatalf("subtotal = %q, want 21.85", c.Aggregate.Subtotal.Value)
	}

	// Back down to zero
	c.Lines[0].SetQuantity("0")
	c.Lines[3].SetQuantity("")
	if c.Aggregate.Total.Value != "0.00" {
		t.Fatalf("total = %q, want 0.00", c.Aggregate.Total.Value)
	}
}

// For any sequence of edits the displayed total must equal
// format(subtotal + subtotal*taxRate) with subtotal recomputed from
// the lines, immediately after each edit.
func TestAggregateTotalInvariant(t *testing.T) {
	c := testForm(t)

	edits := []struct {
		line int
		raw  string
	}{
		{0, "1"}, {1, "3"}, {4, "2"}, {0, "4"}, {1, ""}, {8, "10"}, {4, "0"},
	}

	for _, e := range edits {
		c.Lines[e.line].SetQuantity(e.raw)

		var subtotal float64
		for _, li := range c.Lines {
			subtotal += li.ExtendedCost()
		}
		want := money.Format(subtotal + subtotal*0.0625)
		if c.Aggregate.Total.Value != want {
			t.Fatalf("after edit %+v: total = %q, want %q",
				e, c.Aggregate.Total.Value, want)
		}
	}
}

func TestAggregateNaNPropagates(t *testing.T) {
	c := testForm(t)

	c.Lines[0].SetQuantity("2")
	c.Lines[1].SetQuantity("junk")

	for name, f := range map[string]*money.Field{
		"subtotal": c.Aggregate.Subtotal,
		"tax":      c.Aggregate.Tax,
		"total":    c.Aggregate.Total,
	} {
		if f.Value != "NaN" {
			t.Errorf("%s = %q, want NaN", name, f.Value)
		}
	}

	// Fixing the input recovers the totals.
	c.Lines[1].SetQuantity("0")
	if c.Aggregate.Total.Value == "NaN" {
		t.Fatal("totals should recover once the quantity is numeric again")
	}
}

func TestAggregateRecomputeCountMatchesNotifications(t *testing.T) {
	lines := make([]*LineItem, 0, 3)
	for i := 0; i < 3; i++ {
		li, err := NewLineItem(menu.Item{
			Name:    fmt.Sprintf("Item %d", i),
			CostStr: "$1.00",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lines = append(lines, li)
	}

	agg := NewAggregate(lines, 0.0625)

	recomputes := 0
	// Wrap each line's listener to count fan-in. NewAggregate already
	// subscribed; re-subscribe with a counting wrapper.
	for _, li := range lines {
		li.Subscribe(func() {
			recomputes++
			agg.Recompute()
		})
	}

	lines[0].SetQuantity("1")
	lines[1].SetQuantity("2")
	lines[0].SetQuantity("3")

	if recomputes != 3 {
		t.Fatalf("expected 3 recomputes for 3 edits, got %d", recomputes)
	}
	if agg.Subtotal.Value != "5.00" {
		t.Fatalf("subtotal = %q, want 5.00", agg.Subtotal.Value)
	}
}
