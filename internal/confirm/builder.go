package confirm

import (
	"strconv"
	"time"
)

// Row is one itemized line of the confirmation table, captured at
// submission time. All four cells are display text: the quantity is
// the raw value the customer typed and the costs are the strings the
// form showed.
type Row struct {
	Quantity  string
	Name      string
	UnitCost  string
	TotalCost string
}

// Snapshot is everything the confirmation document needs, frozen at
// the moment the order was accepted. Once built, the document has no
// live binding back to the order form.
type Snapshot struct {
	RestaurantName string
	StylesheetHref string

	CustomerName string
	Phone        string // digits only
	OrderType    string // "pickup" or "delivery to {street}, {city}"

	Rows     []Row
	Subtotal string
	TaxLabel string
	Tax      string
	Total    string

	Pickup       bool
	DelayMinutes int
}

// Build synthesizes the confirmation document onto a fresh surface
// from the factory. The estimated ready time is now plus the
// fulfillment delay.
func Build(f Factory, snap Snapshot, now time.Time) Surface {
	s := f.NewSurface()
	s.AppendHead(headItems(f, snap)...)
	s.AddBodyClass("confirmation-page")
	s.AppendBody(bodyItems(f, snap, now)...)
	return s
}

func headItems(f Factory, snap Snapshot) []*Node {
	title := f.MakeNode("title", Text(snap.RestaurantName+" - Order Confirmation"), nil)
	styleLink := f.MakeNode("link", Children(), Attrs{
		"rel":  "stylesheet",
		"type": "text/css",
		"href": snap.StylesheetHref,
	})
	return []*Node{title, styleLink}
}

func bodyItems(f Factory, snap Snapshot, now time.Time) []*Node {
	heading := f.MakeNode("h1", Text(snap.RestaurantName+" Order Confirmation"), nil)
	wrapper := f.MakeNode("div", Children(
		customerDetails(f, snap),
		orderDetails(f, snap),
		orderTimeline(f, snap, now),
	), Attrs{"id": "body-content"})
	return []*Node{heading, wrapper}
}

func customerDetails(f Factory, snap Snapshot) *Node {
	return f.MakeNode("div", Children(
		f.MakeNode("strong", Text("Customer:"), nil),
		f.MakeNode("p", Text("Name: "+snap.CustomerName), nil),
		f.MakeNode("p", Text("Phone number: "+snap.Phone), nil),
		f.MakeNode("p", Text("Order type: "+snap.OrderType), nil),
	), Attrs{"id": "customer-details"})
}

func orderDetails(f Factory, snap Snapshot) *Node {
	headers := []string{"Quantity", "Item", "Unit cost", "Total cost"}
	headerCells := make([]*Node, len(headers))
	for i, text := range headers {
		headerCells[i] = f.MakeNode("th", Text(text), nil)
	}
	thead := f.MakeNode("thead", Children(
		f.MakeNode("tr", Children(headerCells...), nil),
	), nil)

	bodyRows := make([]*Node, 0, len(snap.Rows)+3)
	for _, row := range snap.Rows {
		bodyRows = append(bodyRows, f.MakeNode("tr", Children(
			f.MakeNode("td", Text(row.Quantity), nil),
			f.MakeNode("td", Text(row.Name), nil),
			f.MakeNode("td", Text(row.UnitCost), nil),
			f.MakeNode("td", Text("$"+row.TotalCost), nil),
		), nil))
	}

	summary := func(label, value string, attrs Attrs) *Node {
		return f.MakeNode("tr", Children(
			f.MakeNode("td", Text(label), Attrs{"colspan": "3"}),
			f.MakeNode("td", Text("$"+value), nil),
		), attrs)
	}
	bodyRows = append(bodyRows,
		summary("Subtotal", snap.Subtotal, Attrs{"id": "subtotal-row"}),
		summary(snap.TaxLabel, snap.Tax, nil),
		summary("Total", snap.Total, nil),
	)
	tbody := f.MakeNode("tbody", Children(bodyRows...), nil)

	return f.MakeNode("div", Children(
		f.MakeNode("strong", Text("Order:"), nil),
		f.MakeNode("table", Children(thead, tbody), nil),
	), Attrs{"id": "order-details"})
}

func orderTimeline(f Factory, snap Snapshot, now time.Time) *Node {
	action := "delivered"
	if snap.Pickup {
		action = "ready for pickup"
	}
	readyAt := now.Add(time.Duration(snap.DelayMinutes) * time.Minute)
	timeline := "Your order will be " + action + " in the next " +
		strconv.Itoa(snap.DelayMinutes) + " minutes, by " +
		formatDate(readyAt) + "."

	return f.MakeNode("div", Children(
		f.MakeNode("strong", Text("Timeline:"), nil),
		f.MakeNode("p", Text(timeline), nil),
	), Attrs{"id": "timeline-details"})
}

// formatDate renders a full date plus hours:minutes, no seconds.
func formatDate(t time.Time) string {
	return t.Format("Mon Jan 02 2006") + " at " + t.Format("15:04")
}

// SubmissionPopup builds the success acknowledgment shown after
// validation passes, before the confirmation document is opened.
func SubmissionPopup(f Factory) *Node {
	label := f.MakeNode("strong", Text("Order submitted!"),
		Attrs{"id": "submission-popup-label"})
	text := f.MakeNode("span", Text("Press continue to view the confirmation."),
		Attrs{"id": "submission-popup-text"})
	cont := f.MakeNode("button", Text("Continue"),
		Attrs{"id": "submission-popup-continue"})
	contWrapper := f.MakeNode("div", Children(cont),
		Attrs{"id": "submission-popup-continue-wrapper"})
	hr := f.MakeNode("hr", Text(""), nil)
	dialog := f.MakeNode("div", Children(label, text, hr, contWrapper),
		Attrs{"id": "submission-popup-dialog"})
	return f.MakeNode("div", Children(dialog),
		Attrs{"id": "submission-popup-wrapper"})
}
