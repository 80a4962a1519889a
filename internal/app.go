// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	router "birthday-blog/internal/api"
	"birthday-blog/internal/api/handler"
	"birthday-blog/internal/config"
	"birthday-blog/internal/repository"
	"birthday-blog/internal/repository/mongodb"
	"birthday-blog/internal/repository/postgres"
	"birthday-blog/internal/service"
	"birthday-blog/internal/util"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config  *config.AppConfig
	Logger  *slog.Logger
	Manager *repository.Manager

	// Services
	BlogService service.BlogService
	UserService service.UserService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components. Note that no backend
// connection is established here: connections are acquired lazily by the
// manager so a process can start (and answer preflights) before the store
// is ever dialed.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Initialize Logger (first, so configuration failures are loggable)
	util.InitLogger()
	app.Logger = util.GetLogger()

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg
	app.Logger.Info("Application configuration loaded successfully.",
		"driver", cfg.Driver, "release_policy", cfg.ReleasePolicy)

	// 3. Build the connection manager. A missing store URI is reported per
	// request by Acquire, never by a dial at startup.
	policy, err := repository.ParseReleasePolicy(cfg.ReleasePolicy)
	if err != nil {
		return fmt.Errorf("failed to configure connection manager: %w", err)
	}

	var connector repository.Connector
	if cfg.Store.URI == "" {
		app.Logger.Warn("Store URI is not configured; storage requests will fail until it is set.")
	} else {
		storeCfg := cfg.Store
		if policy == repository.PolicyPerRequest {
			// Each invocation gets its own single-connection store; the
			// manager's permit count keeps the total bounded.
			storeCfg.PoolSize = 1
			storeCfg.MinPoolSize = 1
		}
		switch cfg.Driver {
		case config.DriverMongo:
			connector = mongodb.NewConnector(storeCfg)
		case config.DriverPostgres:
			connector = postgres.NewConnector(storeCfg)
		default:
			return fmt.Errorf("unknown store driver %q", cfg.Driver)
		}
	}
	app.Manager = repository.NewManager(connector, policy, cfg.Store.PoolSize)
	app.Logger.Info("Connection manager initialized.", "pool_size", cfg.Store.PoolSize)

	// 4. Initialize Services
	app.BlogService = service.NewBlogService()
	app.UserService = service.NewUserService()
	app.Logger.Info("Services initialized.")

	// 5. Initialize HTTP Handlers and Router
	blogHandler := handler.NewBlogHandler(app.Manager, app.BlogService, app.Logger)
	userHandler := handler.NewUserHandler(app.Manager, app.UserService, app.Logger)
	app.HTTPHandler = router.NewRouter(blogHandler, userHandler, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.Manager != nil {
		if err := app.Manager.Shutdown(ctx); err != nil {
			app.Logger.Error("Failed to shut down connection manager", "error", err)
			return fmt.Errorf("failed to shut down connection manager: %w", err)
		}
		app.Logger.Info("Store connections closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
