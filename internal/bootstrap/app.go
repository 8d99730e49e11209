// Package bootstrap wires configuration, adapters, clients, and services
// into a runnable application graph.
package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/nutritrack/nutritrack/config"
	"github.com/nutritrack/nutritrack/internal/adapters/tokenfile"
	"github.com/nutritrack/nutritrack/internal/api"
	"github.com/nutritrack/nutritrack/internal/nav"
	"github.com/nutritrack/nutritrack/internal/ports"
	"github.com/nutritrack/nutritrack/internal/service"
	"github.com/nutritrack/nutritrack/internal/session"
)

// App holds the fully wired application graph.
type App struct {
	Config config.AppConfig
	Logger *slog.Logger

	Store     *session.Store
	Navigator *nav.Tracker
	Router    *nav.Router

	Auth    *api.AuthClient
	Profile *api.ProfileClient
	Logs    *api.LogClient
	Plans   *api.PlanClient
	Posts   *api.PostClient
	Admin   *api.AdminClient
	AI      *api.AIClient

	AuthService   *service.AuthService
	ReportService *service.ReportService
	FeedService   *service.FeedService
}

// BuildOptions carries overrides for BuildApp. The zero value wires
// everything from config.
type BuildOptions struct {
	Logger   *slog.Logger
	Notifier ports.Notifier
	Backing  ports.TokenBacking
}

// BuildApp assembles the application: the persisted token slot, the
// session store, one expiry interceptor shared by both gateways, the
// resource clients, and the services on top of them.
func BuildApp(cfg config.AppConfig, opts BuildOptions) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	backing := opts.Backing
	if backing == nil {
		slot, err := tokenfile.New(cfg.Session.TokenFile)
		if err != nil {
			return nil, fmt.Errorf("open token slot: %w", err)
		}
		backing = slot
	}

	store := session.NewStore(backing, logger)
	tracker := nav.NewTracker(nav.RouteLogin)
	expiry := api.NewExpiryInterceptor(store, tracker, nav.RouteLogin, logger)

	backendGW, err := api.NewGateway(api.GatewayOptions{
		BaseURL: cfg.Backend.BaseURL,
		Store:   store,
		Expiry:  expiry,
		Logger:  logger,
		Timeout: cfg.HTTP.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("build backend gateway: %w", err)
	}

	// The AI service lives behind its own base URL but shares session
	// semantics with the backend, including expiry handling.
	aiGW, err := api.NewGateway(api.GatewayOptions{
		BaseURL: cfg.AI.BaseURL,
		Store:   store,
		Expiry:  expiry,
		Logger:  logger,
		Timeout: cfg.HTTP.UploadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("build ai gateway: %w", err)
	}

	app := &App{
		Config:    cfg,
		Logger:    logger,
		Store:     store,
		Navigator: tracker,
		Auth:      api.NewAuthClient(backendGW),
		Profile:   api.NewProfileClient(backendGW),
		Logs:      api.NewLogClient(backendGW),
		Plans:     api.NewPlanClient(backendGW),
		Posts:     api.NewPostClient(backendGW),
		Admin:     api.NewAdminClient(backendGW),
		AI:        api.NewAIClient(aiGW),
	}

	app.Router = nav.NewRouter(nav.RouterOptions{
		Store:    store,
		Nav:      tracker,
		Notifier: opts.Notifier,
		Logger:   logger,
	})

	app.AuthService = service.NewAuthService(service.AuthServiceOptions{
		API:     app.Auth,
		Store:   store,
		Backing: backing,
		Logger:  logger,
	})
	app.ReportService = service.NewReportService(app.Logs, app.Profile)
	app.FeedService = service.NewFeedService(app.Posts)

	return app, nil
}
