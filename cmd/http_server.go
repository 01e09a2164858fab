package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"

	"github.com/hrops/hr-dashboard/internal"
	"github.com/hrops/hr-dashboard/internal/analytics"
	"github.com/hrops/hr-dashboard/internal/auth"
	"github.com/hrops/hr-dashboard/internal/bookmark"
	"github.com/hrops/hr-dashboard/internal/bookmark/sqlite"
	"github.com/hrops/hr-dashboard/internal/core/events"
	"github.com/hrops/hr-dashboard/internal/directory"
	"github.com/hrops/hr-dashboard/internal/employee"
	"github.com/hrops/hr-dashboard/internal/transport/rest"
	"github.com/hrops/hr-dashboard/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config           *internal.Config
	DB               *sql.DB
	Router           *chi.Mux
	Logger           *slog.Logger
	AuthHandler      *auth.Handler
	EmployeeHandler  *employee.Handler
	BookmarkHandler  *bookmark.Handler
	AnalyticsHandler *analytics.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB,
		deps.AuthHandler, deps.EmployeeHandler, deps.BookmarkHandler, deps.AnalyticsHandler,
		deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Logging.Level, config.Logging.Format)
	lg := logger.LoggerWrapper()

	storage, err := sqlite.Open(config.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bookmark storage: %w", err)
	}

	db, err := storage.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access bookmark storage connection: %w", err)
	}

	bookmarkStore := bookmark.NewStore(storage, lg)

	eventBus := events.NewEventBus(lg)
	registerAuditSubscribers(eventBus, lg)

	directoryClient := directory.NewClient(directory.Config{
		BaseURL:      config.Directory.BaseURL,
		FetchLimit:   config.Directory.FetchLimit,
		FetchTimeout: config.Directory.FetchTimeout,
	}, lg)

	employeeService := employee.NewService(directoryClient, eventBus,
		config.Simulation.WriteDelay, config.Directory.CacheTTL, lg)

	analyticsService := analytics.NewService(employeeService, bookmarkStore, lg)

	tokenGen := auth.NewJWTTokenGenerator(config.Auth.SessionSecret,
		config.Auth.AccessTokenDuration, config.Auth.RefreshTokenDuration)
	authService := auth.NewService(auth.Credentials{
		Email:        config.Auth.DemoEmail,
		PasswordHash: config.Auth.DemoPasswordHash,
	}, tokenGen)

	return &Dependencies{
		Config:           config,
		DB:               db,
		Router:           chi.NewRouter(),
		Logger:           lg,
		AuthHandler:      auth.NewHandler(authService),
		EmployeeHandler:  employee.NewHandler(employeeService),
		BookmarkHandler:  bookmark.NewHandler(bookmarkStore, employeeService, eventBus),
		AnalyticsHandler: analytics.NewHandler(analyticsService),
	}, nil
}

// registerAuditSubscribers logs every domain event. The dashboard has no
// downstream consumers yet, so the audit trail is the only subscriber.
func registerAuditSubscribers(bus *events.EventBus, lg *slog.Logger) {
	audit := func(ctx context.Context, event events.Event) error {
		lg.Info("audit event",
			"event_id", event.EventID(),
			"event_type", event.EventType(),
			"payload", event.Payload())
		return nil
	}

	for _, eventType := range []string{
		events.EventTypeEmployeeCreated,
		events.EventTypeFeedbackSubmitted,
		events.EventTypeBookmarkAdded,
		events.EventTypeBookmarkRemoved,
		events.EventTypeBookmarkBulkAction,
	} {
		bus.Subscribe(eventType, audit)
	}
}
