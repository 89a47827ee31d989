package resolver

import (
	"github.com/graphql-go/graphql"

	"campaign-graphql/internal/cursor"
	"campaign-graphql/internal/geoip"
	"campaign-graphql/internal/plugins"
)

func (b *Builder) geoLocationType() *graphql.Object {
	b.mu.RLock()
	cached := b.geoLocation
	b.mu.RUnlock()
	if cached != nil {
		return cached
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.geoLocation != nil {
		return b.geoLocation
	}

	b.geoLocation = graphql.NewObject(graphql.ObjectConfig{
		Name:        "GeoLocation",
		Description: "Coarse geographic information for a routable IP address.",
		Fields: graphql.Fields{
			"city": &graphql.Field{
				Type:    graphql.String,
				Resolve: dispatch(geoFieldResolver(func(r *geoip.Result) interface{} { return r.City })),
			},
			"continent": &graphql.Field{
				Type:    graphql.String,
				Resolve: dispatch(geoFieldResolver(func(r *geoip.Result) interface{} { return r.Continent })),
			},
			"coordinates": &graphql.Field{
				Type: graphql.NewList(graphql.Float),
				Resolve: dispatch(geoFieldResolver(func(r *geoip.Result) interface{} {
					return []float64{r.Coordinates[0], r.Coordinates[1]}
				})),
			},
			"country": &graphql.Field{
				Type:    graphql.String,
				Resolve: dispatch(geoFieldResolver(func(r *geoip.Result) interface{} { return r.Country })),
			},
			"postalCode": &graphql.Field{
				Type:    graphql.String,
				Resolve: dispatch(geoFieldResolver(func(r *geoip.Result) interface{} { return r.PostalCode })),
			},
			"timeZone": &graphql.Field{
				Type:    graphql.String,
				Resolve: dispatch(geoFieldResolver(func(r *geoip.Result) interface{} { return r.TimeZone })),
			},
		},
	})
	return b.geoLocation
}

func geoFieldResolver(extract func(*geoip.Result) interface{}) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		result, ok := p.Source.(*geoip.Result)
		if !ok || result == nil {
			return nil, nil
		}
		return extract(result), nil
	}
}

func (b *Builder) pluginObjectType() *graphql.Object {
	b.mu.RLock()
	cached := b.pluginType
	b.mu.RUnlock()
	if cached != nil {
		return cached
	}

	node := b.node()

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pluginType != nil {
		return b.pluginType
	}

	b.pluginType = graphql.NewObject(graphql.ObjectConfig{
		Name:        "Plugin",
		Description: "Metadata for a server extension loaded into the running process.",
		Interfaces:  []*graphql.Interface{node},
		Fields: graphql.Fields{
			// Plugins are identified by name.
			"id": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.ID),
				Resolve: dispatch(pluginFieldResolver(func(pl plugins.Plugin) interface{} { return pl.Name })),
			},
			"authors": &graphql.Field{
				Type:    graphql.NewList(graphql.String),
				Resolve: dispatch(pluginFieldResolver(func(pl plugins.Plugin) interface{} { return pl.Authors })),
			},
			"classifiers": &graphql.Field{
				Type:    graphql.NewList(graphql.String),
				Resolve: dispatch(pluginFieldResolver(func(pl plugins.Plugin) interface{} { return pl.Classifiers })),
			},
			"description": &graphql.Field{
				Type:    graphql.String,
				Resolve: dispatch(pluginFieldResolver(func(pl plugins.Plugin) interface{} { return pl.Description })),
			},
			"homepage": &graphql.Field{
				Type:    graphql.String,
				Resolve: dispatch(pluginFieldResolver(func(pl plugins.Plugin) interface{} { return pl.Homepage })),
			},
			"name": &graphql.Field{
				Type:    graphql.String,
				Resolve: dispatch(pluginFieldResolver(func(pl plugins.Plugin) interface{} { return pl.Name })),
			},
			"referenceUrls": &graphql.Field{
				Type:    graphql.NewList(graphql.String),
				Resolve: dispatch(pluginFieldResolver(func(pl plugins.Plugin) interface{} { return pl.ReferenceURLs })),
			},
			"title": &graphql.Field{
				Type:    graphql.String,
				Resolve: dispatch(pluginFieldResolver(func(pl plugins.Plugin) interface{} { return pl.Title })),
			},
			"version": &graphql.Field{
				Type:    graphql.String,
				Resolve: dispatch(pluginFieldResolver(func(pl plugins.Plugin) interface{} { return pl.Version })),
			},
		},
	})
	return b.pluginType
}

func pluginFieldResolver(extract func(plugins.Plugin) interface{}) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		plugin, ok := p.Source.(plugins.Plugin)
		if !ok {
			return nil, nil
		}
		return extract(plugin), nil
	}
}

// resolvePlugins pages the loaded plugin set ordered by plugin name.
func (b *Builder) resolvePlugins(p graphql.ResolveParams) (interface{}, error) {
	sorted := b.plugins.Sorted()

	page, err := cursor.SlicePage(len(sorted), cursor.ParseArgs(p.Args))
	if err != nil {
		return nil, err
	}

	nodes := make([]interface{}, 0, page.Len())
	for _, plugin := range sorted[page.Start:page.End] {
		nodes = append(nodes, plugin)
	}
	return buildConnection(len(sorted), page, nodes), nil
}
