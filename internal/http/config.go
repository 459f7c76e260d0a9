package http

import "github.com/mrlokans/lending/internal/demo"

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Catalog Catalog
	Journal JournalReader // optional, journal routes are skipped when nil
	DB      Pinger

	// Demo mode (optional)
	DemoMiddleware *demo.Middleware

	// Application info
	Version string
}
