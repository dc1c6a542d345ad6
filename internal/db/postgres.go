package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JacobSsozi/JadeDelight/internal/menu"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	log.Println("Connected to PostgreSQL")
	return pool
}

// initSchema creates the menu table and seeds it with the house menu
// when empty.
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	menuTableSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			position INT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			cost_display VARCHAR(16) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, menuTableSQL); err != nil {
		return err
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i, item := range menu.DefaultItems() {
		_, err := pool.Exec(ctx, `
			INSERT INTO menu_items (position, name, cost_display)
			VALUES ($1, $2, $3)
		`, i, item.Name, item.CostStr)
		if err != nil {
			return err
		}
	}

	log.Println("Seeded menu_items with the default menu")
	return nil
}
