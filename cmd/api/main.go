package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/rnrstore/retrostore-golang/internal/clients"
	"github.com/rnrstore/retrostore-golang/internal/config"
	"github.com/rnrstore/retrostore-golang/internal/handlers"
	"github.com/rnrstore/retrostore-golang/internal/routes"
	"github.com/rnrstore/retrostore-golang/internal/session"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	cfg := config.Load()

	// 1. --- Backend Service Clients ---
	// All business logic lives behind these four microservices; this
	// process is only the storefront in front of them.
	usersClient := clients.NewUsersClient(cfg.UserServiceURL)
	inventoryClient := clients.NewInventoryClient(cfg.InventoryServiceURL)
	salesClient := clients.NewSalesClient(cfg.SalesServiceURL)
	reviewsClient := clients.NewReviewsClient(cfg.ReviewsServiceURL)

	// 2. --- Session Store ---
	// Holds every visitor's login, cart and recovery-wizard state in
	// memory. Carts are not meant to survive a restart.
	sessions := session.NewStore()

	// --- Application Setup ---
	// We inject ALL dependencies into the Handlers struct.
	app := &handlers.Handlers{
		Users:     usersClient,
		Inventory: inventoryClient,
		Sales:     salesClient,
		Reviews:   reviewsClient,
		Sessions:  sessions,
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app, sessions, cfg.AllowedOrigin)

	// --- Start Server ---
	log.Printf("Starting RetroStore storefront API on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
