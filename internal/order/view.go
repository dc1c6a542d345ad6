package order

import "github.com/JacobSsozi/JadeDelight/internal/money"

// LineView is the output surface of one line item: static display
// data plus the raw quantity and its read-only cost field.
type LineView struct {
	Name      string      `json:"name"`
	UnitCost  string      `json:"unit_cost"`
	Quantity  string      `json:"quantity"`
	TotalCost money.Field `json:"total_cost"`
}

// StateView is the full form state as serialized to clients.
type StateView struct {
	ID    string     `json:"id"`
	Lines []LineView `json:"lines"`

	Subtotal money.Field `json:"subtotal"`
	Tax      money.Field `json:"tax"`
	Total    money.Field `json:"total"`

	Fulfillment Kind         `json:"fulfillment"`
	Street      AddressField `json:"street"`
	City        AddressField `json:"city"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`

	Submitted bool `json:"submitted"`
}

// View copies out a consistent snapshot of the session's state.
func (s *Service) View(sess *Session) StateView {
	var v StateView
	sess.Do(func() {
		form := sess.Form
		v = StateView{
			ID:          form.ID,
			Subtotal:    *form.Aggregate.Subtotal,
			Tax:         *form.Aggregate.Tax,
			Total:       *form.Aggregate.Total,
			Fulfillment: form.Fulfillment.Kind(),
			Street:      form.Street,
			City:        form.City,
			FirstName:   form.FirstName,
			LastName:    form.LastName,
			Phone:       form.Phone,
			Submitted:   sess.Confirmation != "",
		}
		for _, li := range form.Lines {
			v.Lines = append(v.Lines, LineView{
				Name:      li.Name,
				UnitCost:  li.CostStr,
				Quantity:  li.Quantity(),
				TotalCost: *li.CostField,
			})
		}
	})
	return v
}
