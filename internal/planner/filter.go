// Package planner translates GraphQL filter and sort arguments into SQL
// fragments over a catalog model. Field references use GraphQL naming and are
// checked against the caller's read authorization before they reach the query.
package planner

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"campaign-graphql/internal/authz"
	"campaign-graphql/internal/catalog"
	"campaign-graphql/internal/naming"
	"campaign-graphql/internal/sqlutil"
)

// CompileFilter translates a filter argument into a WHERE condition. A filter
// is either a boolean combination through and/or, or a single field
// comparison. Comparisons on fields the caller may not read compile to
// nothing, so restricted callers cannot test hidden values.
func CompileFilter(ctx context.Context, model *catalog.Model, input map[string]interface{}) (sq.Sqlizer, error) {
	if len(input) == 0 {
		return nil, nil
	}

	filterAnd := presentValue(input, "and")
	filterOr := presentValue(input, "or")
	filterField := presentValue(input, "field")
	// An empty field name counts as absent, not invalid.
	if s, ok := filterField.(string); ok && s == "" {
		filterField = nil
	}

	set := 0
	for _, v := range []interface{}{filterAnd, filterOr, filterField} {
		if v != nil {
			set++
		}
	}
	if set > 1 {
		return nil, fmt.Errorf("the 'and', 'or', and 'field' filter operators are mutually exclusive")
	}

	switch {
	case filterAnd != nil:
		conditions, err := compileSubFilters(ctx, model, filterAnd, "and")
		if err != nil {
			return nil, err
		}
		if len(conditions) == 0 {
			return nil, nil
		}
		return sq.And(conditions), nil

	case filterOr != nil:
		conditions, err := compileSubFilters(ctx, model, filterOr, "or")
		if err != nil {
			return nil, err
		}
		if len(conditions) == 0 {
			return nil, nil
		}
		return sq.Or(conditions), nil

	case filterField != nil:
		return compileComparison(ctx, model, input, filterField)
	}

	return nil, nil
}

func presentValue(input map[string]interface{}, key string) interface{} {
	value, ok := input[key]
	if !ok {
		return nil
	}
	return value
}

func compileSubFilters(ctx context.Context, model *catalog.Model, raw interface{}, key string) ([]sq.Sqlizer, error) {
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("the '%s' filter operator must be a list", key)
	}

	var conditions []sq.Sqlizer
	for _, item := range items {
		sub, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("the '%s' filter operator must be a list of filters", key)
		}
		cond, err := CompileFilter(ctx, model, sub)
		if err != nil {
			return nil, err
		}
		if cond != nil {
			conditions = append(conditions, cond)
		}
	}
	return conditions, nil
}

func compileComparison(ctx context.Context, model *catalog.Model, input map[string]interface{}, rawField interface{}) (sq.Sqlizer, error) {
	fieldName, ok := rawField.(string)
	if !ok {
		return nil, fmt.Errorf("invalid filter field: %v", rawField)
	}

	column, err := resolveFieldColumn(model, fieldName, "filter")
	if err != nil {
		return nil, err
	}

	operator := "eq"
	if raw, ok := input["operator"].(string); ok {
		operator = raw
	}

	quoted := sqlutil.QuoteIdentifier(column)
	value := input["value"]

	var cond sq.Sqlizer
	switch operator {
	case "eq":
		cond = sq.Eq{quoted: value}
	case "ge":
		cond = sq.GtOrEq{quoted: value}
	case "gt":
		cond = sq.Gt{quoted: value}
	case "le":
		cond = sq.LtOrEq{quoted: value}
	case "lt":
		cond = sq.Lt{quoted: value}
	case "ne":
		cond = sq.NotEq{quoted: value}
	default:
		return nil, fmt.Errorf("invalid operator: %s", operator)
	}

	// Invalid operators error even on an unreadable field; only well-formed
	// comparisons are dropped.
	if !authz.HasReadPropAccess(ctx, model, column) {
		return nil, nil
	}
	return cond, nil
}

// resolveFieldColumn maps a GraphQL field reference back to its storage
// column. References must use GraphQL naming, so names containing underscores
// are rejected even when the storage column would match.
func resolveFieldColumn(model *catalog.Model, fieldName, kind string) (string, error) {
	if fieldName == "" || strings.Contains(fieldName, "_") {
		return "", fmt.Errorf("invalid %s field: %s", kind, fieldName)
	}
	column := naming.ToSnakeCase(fieldName)
	if !model.HasColumn(column) {
		return "", fmt.Errorf("invalid %s field: %s", kind, fieldName)
	}
	return column, nil
}
