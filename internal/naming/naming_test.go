package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCamelCase(t *testing.T) {
	assert.Equal(t, "openerIp", ToCamelCase("opener_ip"))
	assert.Equal(t, "firstSeen", ToCamelCase("first_seen"))
	assert.Equal(t, "id", ToCamelCase("id"))
	assert.Equal(t, "credentialRegexMfaToken", ToCamelCase("credential_regex_mfa_token"))
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "opener_ip", ToSnakeCase("openerIp"))
	assert.Equal(t, "first_seen", ToSnakeCase("firstSeen"))
	assert.Equal(t, "id", ToSnakeCase("id"))
	assert.Equal(t, "credential_regex_mfa_token", ToSnakeCase("credentialRegexMfaToken"))
}

func TestCaseRoundTrip(t *testing.T) {
	names := []string{
		"id", "campaign_id", "opener_ip", "first_landing_page_id",
		"credential_regex_username", "mute_timestamp", "url_remote_access",
	}
	for _, name := range names {
		assert.Equal(t, name, ToSnakeCase(ToCamelCase(name)), "round trip for %s", name)
	}
}

func TestToPascalCase(t *testing.T) {
	assert.Equal(t, "LandingPages", ToPascalCase("landing_pages"))
	assert.Equal(t, "Users", ToPascalCase("users"))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "companies", Pluralize("company"))
	assert.Equal(t, "industries", Pluralize("industry"))
	assert.Equal(t, "campaigns", Pluralize("campaign"))
	assert.Equal(t, "company", Singularize("companies"))
}
