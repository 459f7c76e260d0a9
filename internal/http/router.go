package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(SecurityHeadersMiddleware())

	// Apply demo mode middleware if enabled
	if cfg.DemoMiddleware != nil && cfg.DemoMiddleware.IsEnabled() {
		router.Use(cfg.DemoMiddleware.InjectContext())
		router.Use(cfg.DemoMiddleware.Handler())
	}

	health := NewHealthController(cfg.DB, cfg.Catalog, cfg.Version)
	booksController := NewBooksController(cfg.Catalog)
	patronsController := NewPatronsController(cfg.Catalog)
	loansController := NewLoansController(cfg.Catalog)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Catalog endpoints
	router.GET("/api/books", booksController.GetAllBooks)
	router.POST("/api/books", booksController.CreateBook)
	router.GET("/api/books/:id", booksController.GetBook)

	// Patron endpoints
	router.GET("/api/patrons", patronsController.GetAllPatrons)
	router.POST("/api/patrons", patronsController.RegisterPatron)
	router.GET("/api/patrons/:id", patronsController.GetPatron)

	// Lending endpoints
	router.POST("/api/patrons/:id/loans", loansController.Borrow)
	router.DELETE("/api/patrons/:id/loans/:bookId", loansController.Return)

	// Journal endpoints
	if cfg.Journal != nil {
		journalController := NewJournalController(cfg.Journal)
		router.GET("/api/journal", journalController.GetEvents)
		router.GET("/api/patrons/:id/history", journalController.GetPatronHistory)
	}

	return router
}
