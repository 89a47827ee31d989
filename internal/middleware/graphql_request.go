package middleware

import (
	"net/http"

	"campaign-graphql/internal/authz"
	"campaign-graphql/internal/catalog"
	"campaign-graphql/internal/dbsession"
	"campaign-graphql/internal/gqlrequest"
)

// ExecStateConfig configures the per-request GraphQL execution state.
type ExecStateConfig struct {
	DB *dbsession.Session

	// SessionFromRequest derives the caller's authorization session. A nil
	// function or a nil return grants unrestricted reads; authentication is
	// expected to happen upstream of this server.
	SessionFromRequest func(r *http.Request) catalog.Session

	// Extra middleware appended after the authorization check.
	Middleware []gqlrequest.Middleware
}

// ExecStateMiddleware injects the execution state every field resolver reads:
// the caller session, the database session, and the resolver middleware chain
// with authorization first.
func ExecStateMiddleware(cfg ExecStateConfig) func(http.Handler) http.Handler {
	chain := append([]gqlrequest.Middleware{authz.Middleware()}, cfg.Middleware...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var session catalog.Session
			if cfg.SessionFromRequest != nil {
				session = cfg.SessionFromRequest(r)
			}

			exec := &gqlrequest.Exec{
				Session:    session,
				DB:         cfg.DB,
				Middleware: chain,
			}
			next.ServeHTTP(w, r.WithContext(gqlrequest.WithExec(r.Context(), exec)))
		})
	}
}
