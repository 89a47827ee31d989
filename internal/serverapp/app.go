// Package serverapp owns the server lifecycle: resource acquisition in Init,
// the HTTP serve loop in Start, and ordered release in Shutdown.
package serverapp

import (
	"database/sql"
	"fmt"
	"net/http"
	"sync"

	"campaign-graphql/internal/config"
	"campaign-graphql/internal/dbsession"
	"campaign-graphql/internal/geoip"
	"campaign-graphql/internal/logging"
	"campaign-graphql/internal/observability"
	"campaign-graphql/internal/plugins"
	"campaign-graphql/internal/resolver"
)

// App owns runtime resources for the campaign-graphql server lifecycle.
type App struct {
	cfg     *config.Config
	logger  *logging.Logger
	plugins *plugins.Manager

	db        *sql.DB
	dbSession *dbsession.Session
	geo       *geoip.MaxMind
	metrics   *observability.GraphQLMetrics
	engine    *resolver.Engine

	mux     *http.ServeMux
	handler http.Handler

	serverAddr string
	srv        *http.Server

	cleanup cleanupStack

	stateMu      sync.Mutex
	initialized  bool
	started      bool
	serverErrors chan error

	shutdownOnce sync.Once
}

// New creates an App lifecycle wrapper.
func New(cfg *config.Config, logger *logging.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &App{
		cfg:     cfg,
		logger:  logger,
		plugins: plugins.NewManager(),
	}, nil
}

// Plugins returns the plugin manager so extensions can be registered before
// Init builds the schema.
func (a *App) Plugins() *plugins.Manager {
	return a.plugins
}

// Engine returns the GraphQL engine. It is nil before Init.
func (a *App) Engine() *resolver.Engine {
	a.stateMu.Lock()
	defer a.stateMu.Unlock()
	return a.engine
}
