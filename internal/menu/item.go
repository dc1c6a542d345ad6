package menu

// Item is one orderable menu entry as displayed on the form:
// a name plus the printed "$X.XX" cost string. The numeric unit
// cost is parsed from CostStr when an order form is built.
type Item struct {
	Name    string `json:"name"`
	CostStr string `json:"cost"`
}
