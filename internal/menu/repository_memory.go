package menu

import "context"

// DefaultItems is the Jade Delight house menu, matching the
// printed order form.
func DefaultItems() []Item {
	return []Item{
		{Name: "Egg Rolls (2)", CostStr: "$3.95"},
		{Name: "Crab Rangoon (6)", CostStr: "$6.50"},
		{Name: "Hot & Sour Soup", CostStr: "$4.25"},
		{Name: "General Tso's Chicken", CostStr: "$13.95"},
		{Name: "Beef with Broccoli", CostStr: "$12.75"},
		{Name: "Kung Pao Shrimp", CostStr: "$14.50"},
		{Name: "Vegetable Lo Mein", CostStr: "$9.95"},
		{Name: "House Fried Rice", CostStr: "$10.25"},
		{Name: "Jasmine Tea", CostStr: "$2.50"},
	}
}

type InMemoryRepository struct {
	items []Item
}

func NewInMemoryRepository(items []Item) *InMemoryRepository {
	if items == nil {
		items = DefaultItems()
	}
	return &InMemoryRepository{items: items}
}

func (r *InMemoryRepository) ListItems(ctx context.Context) ([]Item, error) {
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out, nil
}
