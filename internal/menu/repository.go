package menu

import "context"

// Repository is the menu source contract.
// The order service depends ONLY on this interface.
type Repository interface {
	// ListItems returns the restaurant's menu in display order.
	ListItems(ctx context.Context) ([]Item, error)
}
