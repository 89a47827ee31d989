package resolver

import (
	"github.com/graphql-go/graphql"

	"campaign-graphql/internal/version"
)

// queryType builds the root query: database access, location lookups, and the
// loaded plugin set.
func (b *Builder) queryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"db": &graphql.Field{
				Type: b.databaseType(),
				Resolve: dispatch(func(p graphql.ResolveParams) (interface{}, error) {
					return databaseRoot{}, nil
				}),
			},
			"geoloc": &graphql.Field{
				Type: b.geoLocationType(),
				Args: graphql.FieldConfigArgument{
					"ip": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: dispatch(func(p graphql.ResolveParams) (interface{}, error) {
					raw, ok := p.Args["ip"].(string)
					if !ok {
						return nil, nil
					}
					return b.lookupGeoloc(raw)
				}),
			},
			"plugin": &graphql.Field{
				Type: b.pluginObjectType(),
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: dispatch(func(p graphql.ResolveParams) (interface{}, error) {
					name, ok := p.Args["name"].(string)
					if !ok {
						return nil, nil
					}
					plugin, ok := b.plugins.Get(name)
					if !ok {
						return nil, nil
					}
					return plugin, nil
				}),
			},
			"plugins": &graphql.Field{
				Type: b.connectionType(b.pluginObjectType()),
				Args: graphql.FieldConfigArgument{
					"first":  &graphql.ArgumentConfig{Type: graphql.Int},
					"last":   &graphql.ArgumentConfig{Type: graphql.Int},
					"before": &graphql.ArgumentConfig{Type: graphql.String},
					"after":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: dispatch(b.resolvePlugins),
			},
			"version": &graphql.Field{
				Type: graphql.String,
				Resolve: dispatch(func(p graphql.ResolveParams) (interface{}, error) {
					return version.Version, nil
				}),
			},
		},
	})
}
