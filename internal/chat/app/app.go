package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/bvpstudios/verzechat/internal/chat/http"
	"github.com/bvpstudios/verzechat/internal/chat/service"
	"github.com/bvpstudios/verzechat/internal/chat/store"
	"github.com/bvpstudios/verzechat/internal/chat/store/drivers/sqlite"
	"github.com/bvpstudios/verzechat/pkg/jwtx"
	"github.com/bvpstudios/verzechat/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// ErrMissingSecret aborts startup when JWT_SECRET is not configured. Serving
// without a secret would make every issued token unverifiable.
var ErrMissingSecret = errors.New("app: JWT_SECRET is required")

// Application encapsulates the chat service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db store.Store

	// Services
	tokenService   *service.TokenService
	userService    *service.UserService
	messageService *service.MessageService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "chat-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingSecret
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("chat service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down chat service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("chat service stopped")
	return nil
}

// initDatabase opens the SQLite store and applies migrations. Any failure
// here is fatal: the service must not take traffic without a working store.
func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() error {
	hs, err := jwtx.NewHS256([]byte(app.cfg.JWTSecret))
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}

	app.tokenService = &service.TokenService{
		Signer:   hs,
		Verifier: hs,
		TTL:      jwtx.DefaultSessionTTL,
	}

	app.userService = &service.UserService{
		Store:             app.db,
		Tokens:            app.tokenService,
		IsPrivilegedEmail: app.cfg.PrivilegedEmailPolicy(),
	}
	app.messageService = &service.MessageService{Store: app.db}

	return nil
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.tokenService.Verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.UserService = app.userService
	router.MessageService = app.messageService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
