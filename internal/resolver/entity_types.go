package resolver

import (
	"time"

	"github.com/graphql-go/graphql"

	"campaign-graphql/internal/catalog"
	"campaign-graphql/internal/geoip"
	"campaign-graphql/internal/gqlrequest"
	"campaign-graphql/internal/scalars"
)

// entityType returns the GraphQL object type for a catalog model, building and
// caching it on first use. Fields are supplied through a thunk so mutually
// referencing entities can resolve each other.
func (b *Builder) entityType(model *catalog.Model) *graphql.Object {
	name := model.GraphQLTypeName()

	b.mu.RLock()
	cached, ok := b.typeCache[name]
	b.mu.RUnlock()
	if ok {
		return cached
	}

	// Resolve the interface before taking the write lock; node() acquires the
	// same mutex.
	node := b.node()

	b.mu.Lock()
	defer b.mu.Unlock()
	if cached, ok := b.typeCache[name]; ok {
		return cached
	}

	objType := graphql.NewObject(graphql.ObjectConfig{
		Name:       name,
		Interfaces: []*graphql.Interface{node},
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return b.entityFields(model)
		}),
	})
	b.typeCache[name] = objType
	return objType
}

func (b *Builder) entityFields(model *catalog.Model) graphql.Fields {
	fields := graphql.Fields{
		"id": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.ID),
			Resolve: dispatch(resolveInstanceID),
		},
	}

	for _, col := range model.Columns() {
		if col.Name == "id" {
			continue
		}
		fields[catalog.GraphQLFieldName(col.Name)] = &graphql.Field{
			Type:    b.columnType(col.Kind),
			Resolve: dispatch(columnResolver(col.Name)),
		}
	}

	for _, rel := range model.Relationships() {
		remote, ok := b.registry.Lookup(rel.RemoteTable)
		if !ok {
			continue
		}
		fieldName := catalog.GraphQLFieldName(rel.Name)
		if rel.UseList {
			fields[fieldName] = b.connectionField(remote, relationshipResolver(rel.Name))
		} else {
			fields[fieldName] = &graphql.Field{
				Type:    b.entityType(remote),
				Resolve: dispatch(relationshipResolver(rel.Name)),
			}
		}
	}

	for name, field := range b.derivedFields(model) {
		fields[name] = field
	}

	return fields
}

func (b *Builder) columnType(kind catalog.ColumnKind) graphql.Output {
	switch kind {
	case catalog.KindInteger:
		return graphql.Int
	case catalog.KindFloat:
		return graphql.Float
	case catalog.KindBoolean:
		return graphql.Boolean
	case catalog.KindDateTime:
		return b.dateTimeType()
	}
	return graphql.String
}

func (b *Builder) dateTimeType() *graphql.Scalar {
	b.mu.RLock()
	cached := b.dateTime
	b.mu.RUnlock()
	if cached != nil {
		return cached
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dateTime == nil {
		b.dateTime = scalars.DateTime()
	}
	return b.dateTime
}

// derivedFields adds the computed fields certain entities expose on top of
// their stored columns.
func (b *Builder) derivedFields(model *catalog.Model) graphql.Fields {
	fields := graphql.Fields{}

	switch model.Name {
	case "Visit", "DeaddropConnection":
		fields["visitorGeoloc"] = &graphql.Field{
			Type:    b.geoLocationType(),
			Resolve: dispatch(b.geolocResolver("ip")),
		}
	case "Message":
		fields["openerGeoloc"] = &graphql.Field{
			Type:    b.geoLocationType(),
			Resolve: dispatch(b.geolocResolver("opener_ip")),
		}
	}

	if model.HasColumn("expiration") {
		fields["hasExpired"] = &graphql.Field{
			Type:    graphql.Boolean,
			Resolve: dispatch(resolveHasExpired),
		}
	}

	return fields
}

func resolveInstanceID(p graphql.ResolveParams) (interface{}, error) {
	instance, ok := p.Source.(*catalog.Instance)
	if !ok {
		return nil, nil
	}
	return instance.ID(), nil
}

func columnResolver(column string) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		instance, ok := p.Source.(*catalog.Instance)
		if !ok {
			return nil, nil
		}
		return instance.Get(column), nil
	}
}

// relationshipResolver resolves a named relationship through the request's
// database session. Collections come back as unexecuted queries for the
// connection resolver to page.
func relationshipResolver(name string) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		instance, ok := p.Source.(*catalog.Instance)
		if !ok {
			return nil, nil
		}
		exec := gqlrequest.ExecFromContext(p.Context)
		if exec == nil || exec.DB == nil {
			return nil, nil
		}
		return exec.DB.ResolveRelationship(p.Context, instance, name)
	}
}

func (b *Builder) geolocResolver(column string) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		instance, ok := p.Source.(*catalog.Instance)
		if !ok {
			return nil, nil
		}
		raw, ok := instance.Get(column).(string)
		if !ok || raw == "" {
			return nil, nil
		}
		return b.lookupGeoloc(raw)
	}
}

func (b *Builder) lookupGeoloc(raw string) (interface{}, error) {
	result, err := geoip.FromIPAddress(b.geo, raw)
	switch {
	case err != nil:
		b.metrics.RecordGeoIPLookup("error")
		return nil, err
	case result == nil:
		b.metrics.RecordGeoIPLookup("miss")
		return nil, nil
	}
	b.metrics.RecordGeoIPLookup("hit")
	return result, nil
}

func resolveHasExpired(p graphql.ResolveParams) (interface{}, error) {
	instance, ok := p.Source.(*catalog.Instance)
	if !ok {
		return nil, nil
	}
	expiration, ok := instance.Get("expiration").(time.Time)
	if !ok {
		return false, nil
	}
	return expiration.Before(time.Now().UTC()), nil
}
