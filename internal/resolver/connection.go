package resolver

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"campaign-graphql/internal/catalog"
	"campaign-graphql/internal/cursor"
	"campaign-graphql/internal/dbsession"
	"campaign-graphql/internal/gqlrequest"
	"campaign-graphql/internal/planner"
	"campaign-graphql/internal/scalars"
)

// connectionField builds a paginated collection field over an entity. The
// inner resolver supplies the collection source: nil for the entity's full
// table, an unexecuted query for relationship collections.
func (b *Builder) connectionField(model *catalog.Model, inner graphql.FieldResolveFn) *graphql.Field {
	return &graphql.Field{
		Type: b.connectionType(b.entityType(model)),
		Args: graphql.FieldConfigArgument{
			"filter": &graphql.ArgumentConfig{Type: b.filterInputType()},
			"sort":   &graphql.ArgumentConfig{Type: graphql.NewList(b.sortInputType())},
			"first":  &graphql.ArgumentConfig{Type: graphql.Int},
			"last":   &graphql.ArgumentConfig{Type: graphql.Int},
			"before": &graphql.ArgumentConfig{Type: graphql.String},
			"after":  &graphql.ArgumentConfig{Type: graphql.String},
		},
		Resolve: dispatch(func(p graphql.ResolveParams) (interface{}, error) {
			source, err := inner(p)
			if err != nil {
				return nil, err
			}
			return b.resolveConnection(p, model, source)
		}),
	}
}

// connectionType returns the connection object type for a node type, building
// the edge and connection wrappers on first use.
func (b *Builder) connectionType(nodeType *graphql.Object) *graphql.Object {
	name := nodeType.Name() + "Connection"

	b.mu.RLock()
	cached, ok := b.connectionCache[name]
	b.mu.RUnlock()
	if ok {
		return cached
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if cached, ok := b.connectionCache[name]; ok {
		return cached
	}

	edgeType := graphql.NewObject(graphql.ObjectConfig{
		Name: nodeType.Name() + "Edge",
		Fields: graphql.Fields{
			"node":   &graphql.Field{Type: nodeType},
			"cursor": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	connType := graphql.NewObject(graphql.ObjectConfig{
		Name: name,
		Fields: graphql.Fields{
			"total":    &graphql.Field{Type: graphql.Int},
			"edges":    &graphql.Field{Type: graphql.NewList(edgeType)},
			"pageInfo": &graphql.Field{Type: graphql.NewNonNull(b.pageInfoTypeLocked())},
		},
	})
	b.connectionCache[name] = connType
	return connType
}

// pageInfoTypeLocked returns the shared PageInfo type. Callers must hold the
// write lock.
func (b *Builder) pageInfoTypeLocked() *graphql.Object {
	if b.pageInfo == nil {
		b.pageInfo = graphql.NewObject(graphql.ObjectConfig{
			Name: "PageInfo",
			Fields: graphql.Fields{
				"hasNextPage":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
				"hasPreviousPage": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
				"startCursor":     &graphql.Field{Type: graphql.String},
				"endCursor":       &graphql.Field{Type: graphql.String},
			},
		})
	}
	return b.pageInfo
}

func (b *Builder) filterInputType() *graphql.InputObject {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.filterInput == nil {
		b.filterInput = scalars.FilterInput()
	}
	return b.filterInput
}

func (b *Builder) sortInputType() *graphql.InputObject {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sortInput == nil {
		b.sortInput = scalars.SortInput()
	}
	return b.sortInput
}

// resolveConnection pages a collection source. Database-backed sources take a
// count query and one window query; materialized slices page in memory.
func (b *Builder) resolveConnection(p graphql.ResolveParams, model *catalog.Model, source interface{}) (interface{}, error) {
	switch src := source.(type) {
	case nil:
		exec := gqlrequest.ExecFromContext(p.Context)
		if exec == nil || exec.DB == nil {
			return nil, fmt.Errorf("no database session available")
		}
		return b.queryConnection(p, model, exec.DB.QueryModel(model))
	case *dbsession.Query:
		return b.queryConnection(p, model, src)
	case []*catalog.Instance:
		return b.sliceConnection(p, src)
	}
	return nil, fmt.Errorf("cannot page source of type %T", source)
}

func (b *Builder) queryConnection(p graphql.ResolveParams, model *catalog.Model, query *dbsession.Query) (interface{}, error) {
	if raw, ok := p.Args["filter"].(map[string]interface{}); ok {
		cond, err := planner.CompileFilter(p.Context, model, raw)
		if err != nil {
			return nil, err
		}
		if cond != nil {
			query = query.Where(cond)
		}
	}

	if raw, ok := p.Args["sort"].([]interface{}); ok {
		clauses, err := planner.CompileSort(p.Context, model, raw)
		if err != nil {
			return nil, err
		}
		query = query.OrderBy(clauses...)
	}

	total, err := query.Count(p.Context)
	if err != nil {
		return nil, err
	}

	page, err := cursor.SlicePage(total, cursor.ParseArgs(p.Args))
	if err != nil {
		return nil, err
	}

	var instances []*catalog.Instance
	if page.Len() > 0 {
		instances, err = query.Slice(p.Context, page.Start, page.Len())
		if err != nil {
			return nil, err
		}
	}

	return buildConnection(total, page, instanceNodes(instances)), nil
}

func instanceNodes(instances []*catalog.Instance) []interface{} {
	nodes := make([]interface{}, len(instances))
	for i, instance := range instances {
		nodes[i] = instance
	}
	return nodes
}

func (b *Builder) sliceConnection(p graphql.ResolveParams, instances []*catalog.Instance) (interface{}, error) {
	page, err := cursor.SlicePage(len(instances), cursor.ParseArgs(p.Args))
	if err != nil {
		return nil, err
	}

	window := instances[page.Start:page.End]
	return buildConnection(len(instances), page, instanceNodes(window)), nil
}

// buildConnection assembles the map the connection type's fields read.
func buildConnection(total int, page cursor.Page, nodes []interface{}) map[string]interface{} {
	edges := make([]interface{}, 0, len(nodes))
	for i, node := range nodes {
		edges = append(edges, map[string]interface{}{
			"node":   node,
			"cursor": page.Cursor(i),
		})
	}

	pageInfo := map[string]interface{}{
		"hasNextPage":     page.HasNext,
		"hasPreviousPage": page.HasPrevious,
		"startCursor":     nil,
		"endCursor":       nil,
	}
	if len(nodes) > 0 {
		pageInfo["startCursor"] = page.Cursor(0)
		pageInfo["endCursor"] = page.Cursor(len(nodes) - 1)
	}

	return map[string]interface{}{
		"total":    total,
		"edges":    edges,
		"pageInfo": pageInfo,
	}
}
