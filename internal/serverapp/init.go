package serverapp

import (
	"context"
	"fmt"
	"log/slog"

	"campaign-graphql/internal/catalog"
	"campaign-graphql/internal/dbsession"
	"campaign-graphql/internal/geoip"
	"campaign-graphql/internal/resolver"
)

// Init initializes all runtime resources. It is idempotent.
func (a *App) Init(ctx context.Context) error {
	a.stateMu.Lock()
	if a.initialized {
		a.stateMu.Unlock()
		return nil
	}
	a.stateMu.Unlock()

	if ctx == nil {
		ctx = context.Background()
	}

	cleanup := cleanupStack{}
	success := false
	defer func() {
		if !success {
			cleanup.run(context.Background(), a.logger)
		}
	}()

	a.logger.Info("connecting to database",
		slog.String("host", a.cfg.Database.Host),
		slog.Int("port", a.cfg.Database.Port),
		slog.String("database", a.cfg.Database.Database),
	)

	db, err := connectDB(ctx, a.cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	cleanup.push("database", func(context.Context) error {
		return db.Close()
	})

	var geo *geoip.MaxMind
	if a.cfg.GeoIP.DatabasePath != "" {
		geo, err = geoip.OpenMaxMind(a.cfg.GeoIP.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to open location database: %w", err)
		}
		cleanup.push("geoip database", func(context.Context) error {
			return geo.Close()
		})
		a.logger.Info("location database loaded", slog.String("path", a.cfg.GeoIP.DatabasePath))
	} else {
		a.logger.Warn("no location database configured, geoloc lookups will return null")
	}

	metrics := initMetrics(a.cfg)
	dbSession := dbsession.New(db, catalog.Default(), a.logger.Logger)

	var geoResolver geoip.Resolver
	if geo != nil {
		geoResolver = geo
	}
	engine, err := resolver.NewEngine(resolver.Options{
		DB:      dbSession,
		GeoIP:   geoResolver,
		Plugins: a.plugins,
		Logger:  a.logger,
		Metrics: metrics,
	})
	if err != nil {
		return fmt.Errorf("failed to build GraphQL schema: %w", err)
	}

	graphqlHandler := buildGraphQLHandler(a.cfg, engine, dbSession)
	mux := buildRouter(a.cfg, a.logger, db, graphqlHandler)
	handler := wrapHTTPHandler(a.cfg, a.logger, mux)

	serverAddr := fmt.Sprintf(":%d", a.cfg.Server.Port)
	srv := buildServer(a.cfg, handler, serverAddr)
	cleanup.push("HTTP server", func(shutdownCtx context.Context) error {
		return srv.Shutdown(shutdownCtx)
	})

	a.stateMu.Lock()
	a.db = db
	a.dbSession = dbSession
	a.geo = geo
	a.metrics = metrics
	a.engine = engine
	a.mux = mux
	a.handler = handler
	a.serverAddr = serverAddr
	a.srv = srv
	a.cleanup = cleanup
	a.initialized = true
	a.stateMu.Unlock()

	success = true
	return nil
}
