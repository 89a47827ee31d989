// Package scalars defines the custom scalar, enum, and input types shared by
// the GraphQL schema: timestamps, the untyped filter value scalar, and the
// filter and sort argument shapes.
package scalars

import (
	"strconv"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// DateTimeFormat is the canonical wire format for timestamps, including
// microseconds.
const DateTimeFormat = "2006-01-02T15:04:05.000000"

func DateTime() *graphql.Scalar {
	return graphql.NewScalar(graphql.ScalarConfig{
		Name:        "DateTime",
		Description: "Timestamp serialized as YYYY-MM-DDTHH:MM:SS.ffffff.",
		Serialize: func(value interface{}) interface{} {
			switch v := value.(type) {
			case time.Time:
				return v.UTC().Format(DateTimeFormat)
			case *time.Time:
				if v == nil {
					return nil
				}
				return v.UTC().Format(DateTimeFormat)
			case string:
				return v
			default:
				return nil
			}
		},
		ParseValue: func(value interface{}) interface{} {
			switch v := value.(type) {
			case time.Time:
				return v
			case string:
				return parseDateTime(v)
			default:
				return nil
			}
		},
		ParseLiteral: func(valueAST ast.Value) interface{} {
			if sv, ok := valueAST.(*ast.StringValue); ok {
				return parseDateTime(sv.Value)
			}
			return nil
		},
	})
}

func parseDateTime(value string) interface{} {
	if parsed, err := time.Parse(DateTimeFormat, value); err == nil {
		return parsed
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed
	}
	return nil
}

// Any passes filter comparison values through untyped so one input shape can
// compare strings, numbers, booleans, and timestamps.
func Any() *graphql.Scalar {
	return graphql.NewScalar(graphql.ScalarConfig{
		Name:        "AnyScalar",
		Description: "An untyped comparison value.",
		Serialize: func(value interface{}) interface{} {
			return value
		},
		ParseValue: func(value interface{}) interface{} {
			return value
		},
		ParseLiteral: func(valueAST ast.Value) interface{} {
			switch v := valueAST.(type) {
			case *ast.IntValue:
				parsed, err := strconv.Atoi(v.Value)
				if err != nil {
					return nil
				}
				return parsed
			case *ast.FloatValue:
				parsed, err := strconv.ParseFloat(v.Value, 64)
				if err != nil {
					return nil
				}
				return parsed
			case *ast.StringValue:
				return v.Value
			case *ast.BooleanValue:
				return v.Value
			case *ast.EnumValue:
				return v.Value
			default:
				return nil
			}
		},
	})
}

func FilterOperatorEnum() *graphql.Enum {
	return graphql.NewEnum(graphql.EnumConfig{
		Name: "FilterOperatorEnum",
		Values: graphql.EnumValueConfigMap{
			"EQ": {Value: "eq"},
			"GE": {Value: "ge"},
			"GT": {Value: "gt"},
			"LE": {Value: "le"},
			"LT": {Value: "lt"},
			"NE": {Value: "ne"},
		},
	})
}

func SortDirectionEnum() *graphql.Enum {
	return graphql.NewEnum(graphql.EnumConfig{
		Name: "SortDirectionEnum",
		Values: graphql.EnumValueConfigMap{
			"AESC": {Value: "aesc"},
			"DESC": {Value: "desc"},
		},
	})
}

// FilterInput is the recursive filter argument: either a boolean combination
// through and/or, or a single field comparison.
func FilterInput() *graphql.InputObject {
	operator := FilterOperatorEnum()
	value := Any()

	var filterInput *graphql.InputObject
	filterInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "FilterInput",
		Fields: graphql.InputObjectConfigFieldMapThunk(func() graphql.InputObjectConfigFieldMap {
			return graphql.InputObjectConfigFieldMap{
				"and":      {Type: graphql.NewList(filterInput)},
				"or":       {Type: graphql.NewList(filterInput)},
				"field":    {Type: graphql.String},
				"value":    {Type: value},
				"operator": {Type: operator},
			}
		}),
	})
	return filterInput
}

// SortInput names a field to order by and the direction to apply.
func SortInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "SortInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"field":     {Type: graphql.NewNonNull(graphql.String)},
			"direction": {Type: SortDirectionEnum()},
		},
	})
}
