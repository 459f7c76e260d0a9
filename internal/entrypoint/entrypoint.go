package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lending/internal/config"
	"github.com/mrlokans/lending/internal/database"
	journalrepo "github.com/mrlokans/lending/internal/database/journal"
	"github.com/mrlokans/lending/internal/demo"
	http_controllers "github.com/mrlokans/lending/internal/http"
	"github.com/mrlokans/lending/internal/journal"
	"github.com/mrlokans/lending/internal/lending"
	"github.com/mrlokans/lending/internal/scheduler"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// App holds the wired components of a running lending service.
type App struct {
	Router    *gin.Engine
	Library   *lending.Library
	Journal   *journal.Service
	DB        *database.Database
	Scheduler *scheduler.JournalCleanupScheduler
}

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT, SIGKILL can't be caught
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Setup opens the journal database and wires the library, the cleanup
// scheduler and the router. The caller owns Close.
func Setup(ctx context.Context, cfg *config.Config, version string) (*App, error) {
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	journalSvc := journal.NewService(journalrepo.NewRepository(db.DB))
	library := lending.NewLibrary(journalSvc)

	if cfg.Demo.Seed {
		if _, err := demo.Seed(library); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to seed demo catalog: %w", err)
		}
		log.Printf("Seeded demo catalog with %d books and %d patrons",
			len(library.ListBooks()), len(library.ListPatrons()))
	}

	app := &App{
		Library: library,
		Journal: journalSvc,
		DB:      db,
	}

	if cfg.Journal.CleanupEnabled {
		app.Scheduler = scheduler.NewJournalCleanupScheduler(journalSvc, cfg.Journal.CleanupSchedule, cfg.Journal.RetentionDays)
		if err := app.Scheduler.Start(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to start journal cleanup: %w", err)
		}
	} else {
		log.Printf("Journal cleanup disabled")
	}

	if cfg.Demo.ReadOnly {
		log.Printf("Demo mode enabled - catalog writes will be blocked")
	}

	app.Router = http_controllers.NewRouter(http_controllers.RouterConfig{
		Catalog:        library,
		Journal:        journalSvc,
		DB:             db,
		DemoMiddleware: demo.NewMiddleware(cfg.Demo.ReadOnly),
		Version:        version,
	})

	return app, nil
}

// Close stops the scheduler and releases the database.
func (a *App) Close() error {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	return a.DB.Close()
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Lending v%s", version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := Setup(ctx, cfg, version)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	onShutdown := func(ctx context.Context) {
		if app.Scheduler != nil {
			app.Scheduler.Stop()
		}
		cancel()
	}

	Serve(app.Router, cfg, onShutdown)
}
