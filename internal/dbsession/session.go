// Package dbsession executes catalog-shaped queries against the campaign
// database. All statements select the explicit column list of a registered
// model; there is no SELECT * and no write path.
package dbsession

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"

	"campaign-graphql/internal/catalog"
	"campaign-graphql/internal/dbexec"
	"campaign-graphql/internal/sqlutil"
)

// Session wraps a database handle together with the entity catalog for the
// duration of the process. It is safe for concurrent use.
type Session struct {
	exec     dbexec.QueryExecutor
	registry *catalog.Registry
	logger   *slog.Logger
}

// New creates a session over a database handle.
func New(db *sql.DB, registry *catalog.Registry, logger *slog.Logger) *Session {
	return NewWithExecutor(dbexec.NewStandardExecutor(db), registry, logger)
}

// NewWithExecutor creates a session over a custom query executor.
func NewWithExecutor(exec dbexec.QueryExecutor, registry *catalog.Registry, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{exec: exec, registry: registry, logger: logger}
}

// Registry returns the entity catalog this session queries.
func (s *Session) Registry() *catalog.Registry {
	return s.registry
}

// Query starts a query over a registered table.
func (s *Session) Query(table string) (*Query, error) {
	model, ok := s.registry.Lookup(table)
	if !ok {
		return nil, fmt.Errorf("unknown table: %s", table)
	}
	return s.QueryModel(model), nil
}

// QueryModel starts a query over a model.
func (s *Session) QueryModel(model *catalog.Model) *Query {
	return &Query{session: s, model: model}
}

func (s *Session) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func quoteColumns(names []string) []string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = sqlutil.QuoteIdentifier(name)
	}
	return quoted
}

func scanInstances(rows dbexec.Rows, model *catalog.Model) ([]*catalog.Instance, error) {
	columns := model.Columns()
	var results []*catalog.Instance

	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}

		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			row[col.Name] = convertValue(values[i])
		}
		results = append(results, catalog.NewInstance(model, row))
	}

	return results, rows.Err()
}

func convertValue(val interface{}) interface{} {
	if val == nil {
		return nil
	}

	switch v := val.(type) {
	case []byte:
		return string(v)
	case time.Time:
		return v.UTC()
	}

	return val
}
