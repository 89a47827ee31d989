package resolver

import (
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/graphql-go/graphql"

	"campaign-graphql/internal/catalog"
	"campaign-graphql/internal/gqlrequest"
	"campaign-graphql/internal/naming"
	"campaign-graphql/internal/sqlutil"
)

// databaseRoot is the stateless source value behind the db field.
type databaseRoot struct{}

// databaseType exposes every catalog entity twice: a singular lookup field
// keyed by id (campaigns, companies and users also accept name), and a plural
// connection field over the whole table.
func (b *Builder) databaseType() *graphql.Object {
	fields := graphql.Fields{}

	for _, model := range b.registry.Tables() {
		singular := naming.ToCamelCase(naming.Singularize(model.Table))
		plural := naming.ToCamelCase(model.Table)

		fields[singular] = b.lookupField(model)
		fields[plural] = b.connectionField(model, func(graphql.ResolveParams) (interface{}, error) {
			return nil, nil
		})
	}

	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "Database",
		Description: "Read access to the campaign database entities.",
		Fields:      fields,
	})
}

// nameLookupTables lists the entities whose singular field also accepts a
// name argument. Other entities with a name column are looked up by id only.
var nameLookupTables = map[string]bool{
	"campaigns": true,
	"companies": true,
	"users":     true,
}

// lookupField builds a singular entity field that matches rows by equality on
// its arguments and returns the first match, or null when there is none.
func (b *Builder) lookupField(model *catalog.Model) *graphql.Field {
	args := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.ID},
	}
	if nameLookupTables[model.Table] {
		args["name"] = &graphql.ArgumentConfig{Type: graphql.String}
	}

	return &graphql.Field{
		Type: b.entityType(model),
		Args: args,
		Resolve: dispatch(func(p graphql.ResolveParams) (interface{}, error) {
			exec := gqlrequest.ExecFromContext(p.Context)
			if exec == nil || exec.DB == nil {
				return nil, fmt.Errorf("no database session available")
			}

			query := exec.DB.QueryModel(model)
			for _, arg := range []string{"id", "name"} {
				value, ok := p.Args[arg]
				if !ok {
					continue
				}
				col, ok := model.Column(arg)
				if !ok {
					continue
				}
				query = query.Where(sq.Eq{sqlutil.QuoteIdentifier(col.Name): coerceArg(col, value)})
			}
			return query.First(p.Context)
		}),
	}
}

// coerceArg converts an ID argument, which arrives as a string, back to the
// column's integer type when needed.
func coerceArg(col catalog.Column, value interface{}) interface{} {
	if col.Kind != catalog.KindInteger {
		return value
	}
	if raw, ok := value.(string); ok {
		if parsed, err := strconv.Atoi(raw); err == nil {
			return parsed
		}
	}
	return value
}
