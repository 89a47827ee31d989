// Package resolver builds the GraphQL schema over the campaign catalog.
// Entity types, their relationship connections, and the root query are
// generated from the model registry at startup; every field resolution runs
// through the per-request middleware chain.
package resolver

import (
	"log/slog"
	"sync"

	"github.com/graphql-go/graphql"

	"campaign-graphql/internal/catalog"
	"campaign-graphql/internal/geoip"
	"campaign-graphql/internal/gqlrequest"
	"campaign-graphql/internal/logging"
	"campaign-graphql/internal/observability"
	"campaign-graphql/internal/plugins"
)

// Builder constructs GraphQL types from the catalog. It maintains caches for
// generated types so two references to the same entity yield one instance.
type Builder struct {
	registry *catalog.Registry
	geo      geoip.Resolver
	plugins  *plugins.Manager
	logger   *logging.Logger
	metrics  *observability.GraphQLMetrics

	typeCache       map[string]*graphql.Object
	connectionCache map[string]*graphql.Object
	filterInput     *graphql.InputObject
	sortInput       *graphql.InputObject
	dateTime        *graphql.Scalar
	pageInfo        *graphql.Object
	nodeInterface   *graphql.Interface
	geoLocation     *graphql.Object
	pluginType      *graphql.Object
	mu              sync.RWMutex
}

// NewBuilder creates a schema builder over a model registry.
func NewBuilder(registry *catalog.Registry, geo geoip.Resolver, manager *plugins.Manager, logger *logging.Logger, metrics *observability.GraphQLMetrics) *Builder {
	if registry == nil {
		registry = catalog.Default()
	}
	if manager == nil {
		manager = plugins.NewManager()
	}
	if logger == nil {
		logger = &logging.Logger{Logger: slog.Default()}
	}
	return &Builder{
		registry:        registry,
		geo:             geo,
		plugins:         manager,
		logger:          logger,
		metrics:         metrics,
		typeCache:       make(map[string]*graphql.Object),
		connectionCache: make(map[string]*graphql.Object),
	}
}

// BuildSchema constructs the executable schema with the root query.
func (b *Builder) BuildSchema() (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: b.queryType(),
	})
}

// dispatch routes a field resolver through the request's middleware chain.
func dispatch(resolver graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		return gqlrequest.Dispatch(p, resolver)
	}
}

// node returns the shared Node interface. Entity identifiers are the raw
// primary key values; there is no global-id encoding.
func (b *Builder) node() *graphql.Interface {
	b.mu.RLock()
	cached := b.nodeInterface
	b.mu.RUnlock()
	if cached != nil {
		return cached
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.nodeInterface != nil {
		return b.nodeInterface
	}
	b.nodeInterface = graphql.NewInterface(graphql.InterfaceConfig{
		Name:        "Node",
		Description: "An object with an ID.",
		Fields: graphql.Fields{
			"id": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		},
		ResolveType: func(p graphql.ResolveTypeParams) *graphql.Object {
			switch value := p.Value.(type) {
			case *catalog.Instance:
				return b.entityType(value.Model())
			case plugins.Plugin:
				return b.pluginObjectType()
			}
			return nil
		},
	})
	return b.nodeInterface
}
