package order

import "github.com/JacobSsozi/JadeDelight/internal/money"

// Aggregate owns the order's derived totals. It subscribes to every
// line item at construction and recomputes all three fields on each
// change notification, so the displayed totals are never stale
// between a quantity edit and the next event.
type Aggregate struct {
	lines   []*LineItem
	taxRate float64

	Subtotal *money.Field
	Tax      *money.Field
	Total    *money.Field
}

func NewAggregate(lines []*LineItem, taxRate float64) *Aggregate {
	a := &Aggregate{
		lines:    lines,
		taxRate:  taxRate,
		Subtotal: money.NewField(),
		Tax:      money.NewField(),
		Total:    money.NewField(),
	}
	for _, li := range lines {
		li.Subscribe(a.Recompute)
	}
	return a
}

// Recompute derives subtotal, tax, and total from current line state.
// One full pass per notification; the item count is small.
func (a *Aggregate) Recompute() {
	var subtotal float64
	for _, li := range a.lines {
		subtotal += li.ExtendedCost()
	}
	tax := subtotal * a.taxRate

	a.Subtotal.Set(subtotal)
	a.Tax.Set(tax)
	a.Total.Set(subtotal + tax)
}
