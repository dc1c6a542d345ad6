package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders an amount as fixed two-decimal currency text.
// A NaN amount renders as "NaN" so that bad input stays visible
// instead of being silently zeroed.
func Format(amount float64) string {
	if math.IsNaN(amount) {
		return "NaN"
	}
	return fmt.Sprintf("%.2f", amount)
}

// ParseCost parses a displayed "$X.XX" cost string.
// Menu data is trusted static input, so a malformed string is a
// configuration defect and the caller is expected to fail loudly.
func ParseCost(s string) (float64, error) {
	if !strings.HasPrefix(s, "$") {
		return 0, fmt.Errorf("cost %q missing leading $", s)
	}
	v, err := strconv.ParseFloat(s[1:], 64)
	if err != nil {
		return 0, fmt.Errorf("cost %q is not numeric: %w", s, err)
	}
	return v, nil
}

// Field is a read-only display slot for a currency amount.
// It mirrors the form's output fields: never user-editable,
// always holding formatted two-decimal text.
type Field struct {
	Value    string `json:"value"`
	ReadOnly bool   `json:"readonly"`
	TabIndex int    `json:"tabindex"`
}

// NewField initializes a display field to "0.00", non-editable and
// non-focusable.
func NewField() *Field {
	return &Field{Value: "0.00", ReadOnly: true, TabIndex: -1}
}

// Set formats and stores an amount.
func (f *Field) Set(amount float64) {
	f.Value = Format(amount)
}
