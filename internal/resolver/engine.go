package resolver

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/graphql-go/graphql"

	"campaign-graphql/internal/authz"
	"campaign-graphql/internal/catalog"
	"campaign-graphql/internal/dbsession"
	"campaign-graphql/internal/geoip"
	"campaign-graphql/internal/gqlrequest"
	"campaign-graphql/internal/logging"
	"campaign-graphql/internal/observability"
	"campaign-graphql/internal/plugins"
)

// Options configures an Engine. Registry defaults to the campaign catalog and
// Plugins to an empty manager; Metrics and GeoIP may be nil.
type Options struct {
	Registry *catalog.Registry
	DB       *dbsession.Session
	GeoIP    geoip.Resolver
	Plugins  *plugins.Manager
	Logger   *logging.Logger
	Metrics  *observability.GraphQLMetrics
}

// Engine holds the built schema and executes requests against it.
type Engine struct {
	schema  graphql.Schema
	db      *dbsession.Session
	logger  *logging.Logger
	metrics *observability.GraphQLMetrics
}

// NewEngine builds the schema once and returns an executor over it.
func NewEngine(opts Options) (*Engine, error) {
	builder := NewBuilder(opts.Registry, opts.GeoIP, opts.Plugins, opts.Logger, opts.Metrics)
	schema, err := builder.BuildSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}
	return &Engine{
		schema:  schema,
		db:      opts.DB,
		logger:  builder.logger,
		metrics: opts.Metrics,
	}, nil
}

// Schema returns the executable schema, for mounting an HTTP handler.
func (e *Engine) Schema() graphql.Schema {
	return e.schema
}

// Request is one GraphQL execution. Session scopes what the caller may read; a
// nil Session grants unrestricted reads. Middleware runs after the
// authorization check on every resolved field.
type Request struct {
	Query         string
	OperationName string
	Variables     map[string]interface{}
	Session       catalog.Session
	Middleware    []gqlrequest.Middleware
}

// Execute runs a request. When the context does not already carry execution
// state, it is installed here with authorization first in the resolver chain.
func (e *Engine) Execute(ctx context.Context, req Request) *graphql.Result {
	start := time.Now()
	e.metrics.IncrementActiveRequests()
	defer e.metrics.DecrementActiveRequests()

	if gqlrequest.ExecFromContext(ctx) == nil {
		chain := append([]gqlrequest.Middleware{authz.Middleware()}, req.Middleware...)
		ctx = gqlrequest.WithExec(ctx, &gqlrequest.Exec{
			Session:    req.Session,
			DB:         e.db,
			Middleware: chain,
		})
	}

	result := graphql.Do(graphql.Params{
		Schema:         e.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	})

	duration := time.Since(start)
	e.metrics.RecordRequest(duration, result.HasErrors(), "query")
	if result.HasErrors() {
		e.logger.Warn("graphql execution produced errors",
			"errors", len(result.Errors), "duration", duration)
	} else {
		e.logger.Debug("graphql execution completed", "duration", duration)
	}
	return result
}

// ExecuteFile reads a GraphQL document from a file and executes it.
func (e *Engine) ExecuteFile(ctx context.Context, path string, req Request) (*graphql.Result, error) {
	document, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read query file: %w", err)
	}
	req.Query = string(document)
	return e.Execute(ctx, req), nil
}
