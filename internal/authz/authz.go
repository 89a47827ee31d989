// Package authz enforces per-field read authorization during GraphQL
// execution. Denied fields resolve to null without error so a restricted
// caller cannot distinguish a hidden value from an absent one.
package authz

import (
	"context"

	"github.com/graphql-go/graphql"

	"campaign-graphql/internal/catalog"
	"campaign-graphql/internal/gqlrequest"
	"campaign-graphql/internal/naming"
)

// Middleware returns the field interceptor run ahead of every resolver. Every
// field resolved on an entity instance is checked, computed fields included;
// non-entity parents pass through.
func Middleware() gqlrequest.Middleware {
	return func(p graphql.ResolveParams, next graphql.FieldResolveFn) (interface{}, error) {
		exec := gqlrequest.ExecFromContext(p.Context)
		if exec == nil || exec.Session == nil {
			return next(p)
		}

		instance, ok := p.Source.(*catalog.Instance)
		if !ok {
			return next(p)
		}

		field := naming.ToSnakeCase(p.Info.FieldName)
		if !instance.Model().SessionHasReadPropAccess(exec.Session, field, instance) {
			return nil, nil
		}
		return next(p)
	}
}

// HasReadPropAccess performs a class-level check, as used for fields named in
// filter and sort arguments where no instance exists yet.
func HasReadPropAccess(ctx context.Context, model *catalog.Model, field string) bool {
	exec := gqlrequest.ExecFromContext(ctx)
	if exec == nil {
		return true
	}
	return model.SessionHasReadPropAccess(exec.Session, field, nil)
}
