// Package gqlrequest carries per-execution state through the GraphQL request
// context: the caller's authorization session, the database session, and the
// resolver middleware chain.
package gqlrequest

import (
	"context"

	"github.com/graphql-go/graphql"

	"campaign-graphql/internal/catalog"
	"campaign-graphql/internal/dbsession"
)

type execContextKey struct{}

// Exec captures request-scoped execution state. The middleware chain is
// assembled once per execution and applied to every resolved field.
type Exec struct {
	Session    catalog.Session
	DB         *dbsession.Session
	Middleware []Middleware
}

// WithExec stores execution state in context.
func WithExec(ctx context.Context, exec *Exec) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, execContextKey{}, exec)
}

// ExecFromContext retrieves execution state from context.
func ExecFromContext(ctx context.Context) *Exec {
	if ctx == nil {
		return nil
	}
	exec, _ := ctx.Value(execContextKey{}).(*Exec)
	return exec
}

// Middleware intercepts a single field resolution. It may short-circuit by not
// calling next.
type Middleware func(p graphql.ResolveParams, next graphql.FieldResolveFn) (interface{}, error)

// Apply wraps a resolver in the chain, outermost first.
func Apply(resolver graphql.FieldResolveFn, chain []Middleware) graphql.FieldResolveFn {
	wrapped := resolver
	for i := len(chain) - 1; i >= 0; i-- {
		mw := chain[i]
		next := wrapped
		wrapped = func(p graphql.ResolveParams) (interface{}, error) {
			return mw(p, next)
		}
	}
	return wrapped
}

// Dispatch runs a field resolver through the middleware chain stored in the
// request context. With no execution state the resolver runs bare.
func Dispatch(p graphql.ResolveParams, resolver graphql.FieldResolveFn) (interface{}, error) {
	exec := ExecFromContext(p.Context)
	if exec == nil || len(exec.Middleware) == 0 {
		return resolver(p)
	}
	return Apply(resolver, exec.Middleware)(p)
}
