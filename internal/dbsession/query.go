package dbsession

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"campaign-graphql/internal/catalog"
	"campaign-graphql/internal/sqlutil"
)

// Query is an immutable description of a read over one entity table. Builder
// methods return a modified copy so a base query can be shared safely.
type Query struct {
	session *Session
	model   *catalog.Model
	where   []sq.Sqlizer
	orderBy []string
}

// Model returns the entity model the query reads.
func (q *Query) Model() *catalog.Model {
	return q.model
}

func (q *Query) clone() *Query {
	c := &Query{session: q.session, model: q.model}
	c.where = append(c.where, q.where...)
	c.orderBy = append(c.orderBy, q.orderBy...)
	return c
}

// Where returns a copy of the query with an additional condition. All
// conditions are combined with AND.
func (q *Query) Where(cond sq.Sqlizer) *Query {
	if cond == nil {
		return q
	}
	c := q.clone()
	c.where = append(c.where, cond)
	return c
}

// OrderBy returns a copy of the query with additional ORDER BY clauses.
func (q *Query) OrderBy(clauses ...string) *Query {
	if len(clauses) == 0 {
		return q
	}
	c := q.clone()
	c.orderBy = append(c.orderBy, clauses...)
	return c
}

func (q *Query) selectBuilder(columns []string) sq.SelectBuilder {
	builder := q.session.builder().
		Select(columns...).
		From(sqlutil.QuoteIdentifier(q.model.Table))
	for _, cond := range q.where {
		builder = builder.Where(cond)
	}
	return builder
}

// Count returns the number of rows the query matches.
func (q *Query) Count(ctx context.Context) (int, error) {
	sqlStr, args, err := q.selectBuilder([]string{"COUNT(*)"}).ToSql()
	if err != nil {
		return 0, err
	}

	q.session.logger.Debug("executing count query", "sql", sqlStr)
	rows, err := q.session.exec.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, err
		}
	}
	return count, rows.Err()
}

// Slice returns up to limit rows starting at offset, in the query's order. A
// negative limit means no limit.
func (q *Query) Slice(ctx context.Context, offset, limit int) ([]*catalog.Instance, error) {
	builder := q.selectBuilder(quoteColumns(q.model.ColumnNames())).
		OrderBy(q.orderBy...)
	if offset > 0 {
		builder = builder.Offset(uint64(offset))
	}
	if limit >= 0 {
		builder = builder.Limit(uint64(limit))
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	q.session.logger.Debug("executing query", "sql", sqlStr)
	rows, err := q.session.exec.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInstances(rows, q.model)
}

// All returns every row the query matches.
func (q *Query) All(ctx context.Context) ([]*catalog.Instance, error) {
	return q.Slice(ctx, 0, -1)
}

// First returns the first matching row, or nil when there is none.
func (q *Query) First(ctx context.Context) (*catalog.Instance, error) {
	instances, err := q.Slice(ctx, 0, 1)
	if err != nil {
		return nil, err
	}
	if len(instances) == 0 {
		return nil, nil
	}
	return instances[0], nil
}
