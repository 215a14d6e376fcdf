package config

import "os"

// Config holds everything the storefront reads from the environment: the
// base URLs of the four backend microservices, the port we listen on, and
// the origin allowed through CORS.
type Config struct {
	Port                string
	UserServiceURL      string
	InventoryServiceURL string
	SalesServiceURL     string
	ReviewsServiceURL   string
	AllowedOrigin       string
}

// Load reads the configuration, falling back to the local development
// defaults when a variable is not set (same ports the microservices use
// out of the box).
func Load() Config {
	return Config{
		Port:                envOr("PORT", "8080"),
		UserServiceURL:      envOr("USER_SERVICE_URL", "http://localhost:8081"),
		InventoryServiceURL: envOr("INVENTORY_SERVICE_URL", "http://localhost:8082"),
		SalesServiceURL:     envOr("SALES_SERVICE_URL", "http://localhost:8083"),
		ReviewsServiceURL:   envOr("REVIEWS_SERVICE_URL", "http://localhost:8084"),
		AllowedOrigin:       envOr("ALLOWED_ORIGIN", "http://localhost:5173"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
