package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-graphql/internal/naming"
)

func TestDefaultRegistryTables(t *testing.T) {
	r := Default()

	expected := []string{
		"alert_subscriptions", "campaigns", "campaign_types", "companies",
		"company_departments", "credentials", "deaddrop_connections",
		"deaddrop_deployments", "industries", "landing_pages", "messages",
		"users", "visits",
	}
	tables := r.Tables()
	require.Len(t, tables, len(expected))
	for i, model := range tables {
		assert.Equal(t, expected[i], model.Table)
	}
}

func TestEveryModelHasPrimaryKey(t *testing.T) {
	for _, model := range Default().Tables() {
		assert.True(t, model.HasColumn("id"), "model %s is missing id", model.Name)
	}
}

func TestFieldNamesRoundTrip(t *testing.T) {
	// Every GraphQL field name must be the camelCase form of exactly one
	// storage column, and converting back must recover the column.
	for _, model := range Default().Tables() {
		for _, col := range model.Columns() {
			fieldName := GraphQLFieldName(col.Name)
			assert.NotContains(t, fieldName, "_", "field %s on %s", fieldName, model.Name)
			assert.Equal(t, col.Name, naming.ToSnakeCase(fieldName))
		}
	}
}

func TestRelationshipsReferenceRegisteredTables(t *testing.T) {
	r := Default()
	for _, model := range r.Tables() {
		for _, rel := range model.Relationships() {
			remote, ok := r.Lookup(rel.RemoteTable)
			require.True(t, ok, "relationship %s.%s references unknown table %s", model.Name, rel.Name, rel.RemoteTable)
			assert.True(t, model.HasColumn(rel.LocalColumn), "%s.%s local column %s", model.Name, rel.Name, rel.LocalColumn)
			assert.True(t, remote.HasColumn(rel.RemoteColumn), "%s.%s remote column %s", model.Name, rel.Name, rel.RemoteColumn)
		}
	}
}

func TestSessionHasReadPropAccessNilSession(t *testing.T) {
	model, ok := Default().Lookup("campaigns")
	require.True(t, ok)
	assert.True(t, model.SessionHasReadPropAccess(nil, "name", nil))
	assert.True(t, model.SessionHasReadPropAccess(nil, "otp_secret", nil))
}

type denyAllSession struct{}

func (denyAllSession) MayReadProp(*Model, string, *Instance) bool { return false }

func TestSessionHasReadPropAccessDelegates(t *testing.T) {
	model, ok := Default().Lookup("users")
	require.True(t, ok)
	assert.False(t, model.SessionHasReadPropAccess(denyAllSession{}, "otp_secret", nil))
}

func TestInstanceAccessors(t *testing.T) {
	model, ok := Default().Lookup("campaigns")
	require.True(t, ok)

	inst := NewInstance(model, map[string]interface{}{"id": 7, "name": "spring"})
	assert.Equal(t, 7, inst.ID())
	assert.Equal(t, "spring", inst.Get("name"))
	assert.Nil(t, inst.Get("description"))
	assert.Same(t, model, inst.Model())
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	m := NewModel("Thing", "things", []Column{{Name: "id", Kind: KindInteger}}, nil)
	require.NoError(t, r.Register(m))
	err := r.Register(m)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "things"))
}
