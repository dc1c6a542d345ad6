package order

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/JacobSsozi/JadeDelight/internal/confirm"
	"github.com/JacobSsozi/JadeDelight/internal/menu"
	"github.com/JacobSsozi/JadeDelight/internal/money"
)

// LineItem is one orderable menu entry bound to a quantity input.
// It owns its extended cost: the cost is recomputed from the quantity
// on every change and is never settable on its own.
type LineItem struct {
	Name    string
	CostStr string

	unitCost    float64
	rawQuantity string
	extended    float64

	CostField *money.Field

	onChange func()
}

// NewLineItem builds a line from static menu data. A cost string that
// does not parse is a configuration defect: the menu is trusted
// input, so the error is returned for the caller to fail loudly on.
func NewLineItem(item menu.Item) (*LineItem, error) {
	unit, err := money.ParseCost(item.CostStr)
	if err != nil {
		return nil, fmt.Errorf("menu item %q: %w", item.Name, err)
	}
	return &LineItem{
		Name:        item.Name,
		CostStr:     item.CostStr,
		unitCost:    unit,
		rawQuantity: "0",
		CostField:   money.NewField(),
	}, nil
}

// Subscribe registers the single change listener. The aggregate is
// the only subscriber; notification is synchronous, so the aggregate
// has recomputed before SetQuantity returns.
func (li *LineItem) Subscribe(fn func()) {
	li.onChange = fn
}

// SetQuantity takes the raw input value, recomputes the extended
// cost, updates the display field, and notifies the listener.
func (li *LineItem) SetQuantity(raw string) {
	li.rawQuantity = raw
	li.extended = coerceQuantity(raw) * li.unitCost
	li.CostField.Set(li.extended)
	if li.onChange != nil {
		li.onChange()
	}
}

// Quantity returns the raw value as typed.
func (li *LineItem) Quantity() string {
	return li.rawQuantity
}

// ExtendedCost returns quantity times unit cost. NaN when the raw
// quantity is not numeric.
func (li *LineItem) ExtendedCost() float64 {
	return li.extended
}

// SnapshotRow captures the line for confirmation rendering. The
// caller must take it at submission time; the row has no live binding
// back to the line.
func (li *LineItem) SnapshotRow() confirm.Row {
	return confirm.Row{
		Quantity:  li.rawQuantity,
		Name:      li.Name,
		UnitCost:  li.CostStr,
		TotalCost: li.CostField.Value,
	}
}

// coerceQuantity mirrors loose form-input numerics: empty means zero,
// anything unparseable multiplies through as NaN. The NaN is
// deliberate — a junk quantity must stay visible in the displayed
// cost rather than being clamped to a number the user never entered.
func coerceQuantity(raw string) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
