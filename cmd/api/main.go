package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/JacobSsozi/JadeDelight/internal/confirm"
	"github.com/JacobSsozi/JadeDelight/internal/db"
	"github.com/JacobSsozi/JadeDelight/internal/menu"
	"github.com/JacobSsozi/JadeDelight/internal/order"
	"github.com/JacobSsozi/JadeDelight/internal/restaurant"
	"github.com/JacobSsozi/JadeDelight/internal/router"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	profile, err := restaurant.LoadProfile()
	if err != nil {
		log.Fatal("Invalid restaurant profile:", err)
	}

	// ───────────────────────── MENU SOURCE ─────────────────────────
	var menuRepo menu.Repository
	if os.Getenv("DATABASE_URL") != "" {
		pool := db.ConnectPostgres()
		defer pool.Close()
		menuRepo = menu.NewPostgresRepository(pool)
	} else {
		log.Println("DATABASE_URL not set, serving the built-in menu")
		menuRepo = menu.NewInMemoryRepository(nil)
	}

	// ───────────────────────── WIRING ─────────────────────────
	orderService := order.NewService(menuRepo, profile, confirm.NewHTMLRenderer())

	r := router.New(orderService)

	// ───────────────────────── START ─────────────────────────
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	log.Printf("%s order form running on %s", profile.Name, addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
