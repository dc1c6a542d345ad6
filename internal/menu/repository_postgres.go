package menu

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// LIST MENU ITEMS (DISPLAY ORDER)
// --------------------------------------------------
func (r *PostgresRepository) ListItems(ctx context.Context) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name, cost_display
		FROM menu_items
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.Name, &item.CostStr); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
