package dbsession

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"campaign-graphql/internal/catalog"
	"campaign-graphql/internal/sqlutil"
)

// ResolveRelationship follows a named relationship from an instance. Collection
// relationships return a *Query filtered to the related rows, left unexecuted
// so callers can page it. Single references return the related *Instance, or
// nil when the reference is unset or the row is gone.
func (s *Session) ResolveRelationship(ctx context.Context, instance *catalog.Instance, name string) (interface{}, error) {
	model := instance.Model()
	rel, ok := model.Relationship(name)
	if !ok {
		return nil, fmt.Errorf("unknown relationship: %s.%s", model.Name, name)
	}

	remote, ok := s.registry.Lookup(rel.RemoteTable)
	if !ok {
		return nil, fmt.Errorf("unknown table: %s", rel.RemoteTable)
	}

	localValue := instance.Get(rel.LocalColumn)
	remoteColumn := sqlutil.QuoteIdentifier(rel.RemoteColumn)

	if rel.UseList {
		return s.QueryModel(remote).Where(sq.Eq{remoteColumn: localValue}), nil
	}

	if localValue == nil {
		return nil, nil
	}
	return s.QueryModel(remote).Where(sq.Eq{remoteColumn: localValue}).First(ctx)
}
