package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lending/internal/demo"
)

// Pinger reports whether the journal database is reachable.
type Pinger interface {
	Ping() error
}

// LibraryStats summarises the in-memory library state.
type LibraryStats struct {
	Books       int `json:"books"`
	Copies      int `json:"available_copies"`
	Patrons     int `json:"patrons"`
	ActiveLoans int `json:"active_loans"`
}

type HealthResponse struct {
	Status   string            `json:"status"`
	Time     string            `json:"time"`
	Uptime   string            `json:"uptime"`
	Version  string            `json:"version,omitempty"`
	DemoMode bool              `json:"demo_mode"`
	Checks   map[string]string `json:"checks"`
	Library  *LibraryStats     `json:"library,omitempty"`
}

type HealthController struct {
	db        Pinger
	catalog   Catalog
	version   string
	startedAt time.Time
}

func NewHealthController(db Pinger, catalog Catalog, version string) *HealthController {
	return &HealthController{
		db:        db,
		catalog:   catalog,
		version:   version,
		startedAt: time.Now(),
	}
}

// Status reports journal connectivity and library counters
// GET /health
func (h *HealthController) Status(c *gin.Context) {
	response := HealthResponse{
		Status:   "healthy",
		Time:     time.Now().Format(time.RFC3339),
		Uptime:   time.Since(h.startedAt).Round(time.Second).String(),
		Version:  h.version,
		Checks:   map[string]string{"database": "not configured"},
		DemoMode: c.GetBool(demo.ContextKeyDemoMode),
	}

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			response.Checks["database"] = "error: " + err.Error()
			response.Status = "unhealthy"
		} else {
			response.Checks["database"] = "ok"
		}
	}

	if h.catalog != nil {
		response.Library = h.libraryStats()
	}

	statusCode := http.StatusOK
	if response.Status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}
	c.IndentedJSON(statusCode, response)
}

func (h *HealthController) libraryStats() *LibraryStats {
	books, patrons := h.catalog.Inventory()

	stats := &LibraryStats{}
	for _, b := range books {
		stats.Books++
		stats.Copies += b.AvailableCopies
	}
	for _, p := range patrons {
		stats.Patrons++
		stats.ActiveLoans += len(p.Loans)
	}
	return stats
}
