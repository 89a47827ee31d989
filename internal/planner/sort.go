package planner

import (
	"context"
	"fmt"

	"campaign-graphql/internal/authz"
	"campaign-graphql/internal/catalog"
	"campaign-graphql/internal/sqlutil"
)

// CompileSort translates a list of sort arguments into ORDER BY clauses, in
// argument order. Sorts on fields the caller may not read are skipped.
func CompileSort(ctx context.Context, model *catalog.Model, input []interface{}) ([]string, error) {
	var clauses []string

	for _, raw := range input {
		item, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("sort must be a list of sort inputs")
		}

		fieldName, _ := item["field"].(string)
		column, err := resolveFieldColumn(model, fieldName, "sort")
		if err != nil {
			return nil, err
		}

		direction := "aesc"
		if raw, ok := item["direction"].(string); ok {
			direction = raw
		}

		var order string
		switch direction {
		case "aesc":
			order = "ASC"
		case "desc":
			order = "DESC"
		default:
			return nil, fmt.Errorf("sort direction must be either 'aesc' or 'desc'")
		}

		if !authz.HasReadPropAccess(ctx, model, column) {
			continue
		}
		clauses = append(clauses, sqlutil.QuoteIdentifier(column)+" "+order)
	}

	return clauses, nil
}
