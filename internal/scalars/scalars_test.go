package scalars

import (
	"testing"
	"time"

	"github.com/graphql-go/graphql/language/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeSerialize(t *testing.T) {
	scalar := DateTime()

	ts := time.Date(2018, 6, 1, 12, 30, 45, 123456000, time.UTC)
	assert.Equal(t, "2018-06-01T12:30:45.123456", scalar.Serialize(ts))
	assert.Equal(t, "2018-06-01T12:30:45.000000", scalar.Serialize(time.Date(2018, 6, 1, 12, 30, 45, 0, time.UTC)))
	assert.Equal(t, "2018-06-01T12:30:45.123456", scalar.Serialize(&ts))
	assert.Nil(t, scalar.Serialize((*time.Time)(nil)))
	assert.Nil(t, scalar.Serialize(42))
}

func TestDateTimeSerializeNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2018, 6, 1, 14, 0, 0, 0, loc)
	assert.Equal(t, "2018-06-01T12:00:00.000000", DateTime().Serialize(ts))
}

func TestDateTimeParseValue(t *testing.T) {
	scalar := DateTime()

	parsed := scalar.ParseValue("2018-06-01T12:30:45.123456")
	require.IsType(t, time.Time{}, parsed)
	assert.Equal(t, time.Date(2018, 6, 1, 12, 30, 45, 123456000, time.UTC), parsed.(time.Time).UTC())

	assert.NotNil(t, scalar.ParseValue("2018-06-01T12:30:45Z"))
	assert.Nil(t, scalar.ParseValue("June 1st"))
	assert.Nil(t, scalar.ParseValue(42))
}

func TestDateTimeRoundTrip(t *testing.T) {
	scalar := DateTime()

	original := time.Date(2018, 6, 1, 12, 30, 45, 123456000, time.UTC)
	serialized := scalar.Serialize(original)
	parsed := scalar.ParseValue(serialized)
	require.IsType(t, time.Time{}, parsed)
	assert.True(t, original.Equal(parsed.(time.Time)))
}

func TestAnyParseLiteral(t *testing.T) {
	scalar := Any()

	tests := []struct {
		name     string
		literal  ast.Value
		expected interface{}
	}{
		{"int", &ast.IntValue{Value: "42"}, 42},
		{"float", &ast.FloatValue{Value: "2.5"}, 2.5},
		{"string", &ast.StringValue{Value: "spring"}, "spring"},
		{"bool", &ast.BooleanValue{Value: true}, true},
		{"enum", &ast.EnumValue{Value: "EQ"}, "EQ"},
		{"list", &ast.ListValue{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scalar.ParseLiteral(tt.literal))
		})
	}
}

func TestAnyPassesValuesThrough(t *testing.T) {
	scalar := Any()
	assert.Equal(t, "spring", scalar.Serialize("spring"))
	assert.Equal(t, 42, scalar.ParseValue(42))
	assert.Equal(t, false, scalar.ParseValue(false))
}

func TestFilterOperatorEnumValues(t *testing.T) {
	values := FilterOperatorEnum().Values()
	byName := make(map[string]interface{}, len(values))
	for _, v := range values {
		byName[v.Name] = v.Value
	}
	assert.Equal(t, map[string]interface{}{
		"EQ": "eq", "GE": "ge", "GT": "gt", "LE": "le", "LT": "lt", "NE": "ne",
	}, byName)
}

func TestSortDirectionEnumValues(t *testing.T) {
	values := SortDirectionEnum().Values()
	byName := make(map[string]interface{}, len(values))
	for _, v := range values {
		byName[v.Name] = v.Value
	}
	assert.Equal(t, map[string]interface{}{"AESC": "aesc", "DESC": "desc"}, byName)
}

func TestFilterInputIsRecursive(t *testing.T) {
	input := FilterInput()
	fields := input.Fields()

	require.Contains(t, fields, "and")
	require.Contains(t, fields, "or")
	require.Contains(t, fields, "field")
	require.Contains(t, fields, "value")
	require.Contains(t, fields, "operator")

	assert.Equal(t, "[FilterInput]", fields["and"].Type.String())
	assert.Equal(t, "[FilterInput]", fields["or"].Type.String())
}

func TestSortInputRequiresField(t *testing.T) {
	fields := SortInput().Fields()
	require.Contains(t, fields, "field")
	require.Contains(t, fields, "direction")
	assert.Equal(t, "String!", fields["field"].Type.String())
}
