package http

import (
	"context"
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tokrecharge/migration-server/pkg/domain/interfaces"
)

// config holds internal HTTP server configuration
type config struct {
	addr      string
	staticDir string
	sentry    bool
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithStaticDir sets the static root served for non-API paths
func WithStaticDir(dir string) Option {
	return func(c *config) {
		c.staticDir = dir
	}
}

// WithSentry enables panic reporting to Sentry. The Sentry client must be
// initialized before requests arrive.
func WithSentry(enabled bool) Option {
	return func(c *config) {
		c.sentry = enabled
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	migrationUC interfaces.MigrationUseCase,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr:      "0.0.0.0:5000",
		staticDir: "client",
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	if migrationUC == nil {
		return nil, goerr.New("migration use case is required")
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	if cfg.sentry {
		router.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	}
	router.Use(middleware.GetHead)

	// Migration API
	api := newAPIHandler(migrationUC)
	for _, route := range api.routes() {
		router.Get(route.path, api.serve(route.respond))
	}
	router.Get(apiPrefix+"*", api.serve(api.unknown))

	// Static files with single-page-app fallback
	router.Get("/*", newStaticHandler(cfg.staticDir).ServeHTTP)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
