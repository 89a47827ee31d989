package catalog

import "sync"

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the campaign database catalog. It is built once and is
// read-only afterwards.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = buildDefault()
	})
	return defaultRegistry
}

func buildDefault() *Registry {
	r := NewRegistry()

	register := func(m *Model) {
		if err := r.Register(m); err != nil {
			panic(err)
		}
	}

	register(NewModel("AlertSubscription", "alert_subscriptions",
		[]Column{
			{Name: "id", Kind: KindInteger},
			{Name: "campaign_id", Kind: KindInteger},
			{Name: "user_id", Kind: KindInteger},
			{Name: "type", Kind: KindString},
			{Name: "mute_timestamp", Kind: KindDateTime},
			{Name: "expiration", Kind: KindDateTime},
		},
		[]Relationship{
			{Name: "campaign", RemoteTable: "campaigns", LocalColumn: "campaign_id", RemoteColumn: "id"},
			{Name: "user", RemoteTable: "users", LocalColumn: "user_id", RemoteColumn: "id"},
		},
	))

	register(NewModel("Campaign", "campaigns",
		[]Column{
			{Name: "id", Kind: KindInteger},
			{Name: "name", Kind: KindString},
			{Name: "description", Kind: KindString},
			{Name: "user_id", Kind: KindInteger},
			{Name: "created", Kind: KindDateTime},
			{Name: "expiration", Kind: KindDateTime},
			{Name: "campaign_type_id", Kind: KindInteger},
			{Name: "company_id", Kind: KindInteger},
			{Name: "max_credentials", Kind: KindInteger},
			{Name: "credential_regex_username", Kind: KindString},
			{Name: "credential_regex_password", Kind: KindString},
			{Name: "credential_regex_mfa_token", Kind: KindString},
			{Name: "reject_after_credentials", Kind: KindBoolean},
		},
		[]Relationship{
			{Name: "alert_subscriptions", RemoteTable: "alert_subscriptions", LocalColumn: "id", RemoteColumn: "campaign_id", UseList: true},
			{Name: "credentials", RemoteTable: "credentials", LocalColumn: "id", RemoteColumn: "campaign_id", UseList: true},
			{Name: "deaddrop_connections", RemoteTable: "deaddrop_connections", LocalColumn: "id", RemoteColumn: "campaign_id", UseList: true},
			{Name: "deaddrop_deployments", RemoteTable: "deaddrop_deployments", LocalColumn: "id", RemoteColumn: "campaign_id", UseList: true},
			{Name: "landing_pages", RemoteTable: "landing_pages", LocalColumn: "id", RemoteColumn: "campaign_id", UseList: true},
			{Name: "messages", RemoteTable: "messages", LocalColumn: "id", RemoteColumn: "campaign_id", UseList: true},
			{Name: "visits", RemoteTable: "visits", LocalColumn: "id", RemoteColumn: "campaign_id", UseList: true},
			{Name: "user", RemoteTable: "users", LocalColumn: "user_id", RemoteColumn: "id"},
			{Name: "company", RemoteTable: "companies", LocalColumn: "company_id", RemoteColumn: "id"},
			{Name: "campaign_type", RemoteTable: "campaign_types", LocalColumn: "campaign_type_id", RemoteColumn: "id"},
		},
	))

	register(NewModel("CampaignType", "campaign_types",
		[]Column{
			{Name: "id", Kind: KindInteger},
			{Name: "name", Kind: KindString},
			{Name: "description", Kind: KindString},
		},
		[]Relationship{
			{Name: "campaigns", RemoteTable: "campaigns", LocalColumn: "id", RemoteColumn: "campaign_type_id", UseList: true},
		},
	))

	register(NewModel("Company", "companies",
		[]Column{
			{Name: "id", Kind: KindInteger},
			{Name: "name", Kind: KindString},
			{Name: "description", Kind: KindString},
			{Name: "industry_id", Kind: KindInteger},
			{Name: "url_main", Kind: KindString},
			{Name: "url_email", Kind: KindString},
			{Name: "url_remote_access", Kind: KindString},
		},
		[]Relationship{
			{Name: "campaigns", RemoteTable: "campaigns", LocalColumn: "id", RemoteColumn: "company_id", UseList: true},
			{Name: "industry", RemoteTable: "industries", LocalColumn: "industry_id", RemoteColumn: "id"},
		},
	))

	register(NewModel("CompanyDepartment", "company_departments",
		[]Column{
			{Name: "id", Kind: KindInteger},
			{Name: "name", Kind: KindString},
			{Name: "description", Kind: KindString},
		},
		[]Relationship{
			{Name: "messages", RemoteTable: "messages", LocalColumn: "id", RemoteColumn: "company_department_id", UseList: true},
		},
	))

	register(NewModel("Credential", "credentials",
		[]Column{
			{Name: "id", Kind: KindInteger},
			{Name: "visit_id", Kind: KindString},
			{Name: "message_id", Kind: KindString},
			{Name: "campaign_id", Kind: KindInteger},
			{Name: "username", Kind: KindString},
			{Name: "password", Kind: KindString},
			{Name: "mfa_token", Kind: KindString},
			{Name: "submitted", Kind: KindDateTime},
			{Name: "regex_validated", Kind: KindBoolean},
		},
		[]Relationship{
			{Name: "campaign", RemoteTable: "campaigns", LocalColumn: "campaign_id", RemoteColumn: "id"},
			{Name: "message", RemoteTable: "messages", LocalColumn: "message_id", RemoteColumn: "id"},
			{Name: "visit", RemoteTable: "visits", LocalColumn: "visit_id", RemoteColumn: "id"},
		},
	))

	register(NewModel("DeaddropConnection", "deaddrop_connections",
		[]Column{
			{Name: "id", Kind: KindInteger},
			{Name: "deployment_id", Kind: KindString},
			{Name: "campaign_id", Kind: KindInteger},
			{Name: "count", Kind: KindInteger},
			{Name: "ip", Kind: KindString},
			{Name: "local_username", Kind: KindString},
			{Name: "local_hostname", Kind: KindString},
			{Name: "local_ip_addresses", Kind: KindString},
			{Name: "first_seen", Kind: KindDateTime},
			{Name: "last_seen", Kind: KindDateTime},
		},
		[]Relationship{
			{Name: "campaign", RemoteTable: "campaigns", LocalColumn: "campaign_id", RemoteColumn: "id"},
			{Name: "deaddrop_deployment", RemoteTable: "deaddrop_deployments", LocalColumn: "deployment_id", RemoteColumn: "id"},
		},
	))

	register(NewModel("DeaddropDeployment", "deaddrop_deployments",
		[]Column{
			{Name: "id", Kind: KindString},
			{Name: "campaign_id", Kind: KindInteger},
			{Name: "destination", Kind: KindString},
		},
		[]Relationship{
			{Name: "deaddrop_connections", RemoteTable: "deaddrop_connections", LocalColumn: "id", RemoteColumn: "deployment_id", UseList: true},
			{Name: "campaign", RemoteTable: "campaigns", LocalColumn: "campaign_id", RemoteColumn: "id"},
		},
	))

	register(NewModel("Industry", "industries",
		[]Column{
			{Name: "id", Kind: KindInteger},
			{Name: "name", Kind: KindString},
			{Name: "description", Kind: KindString},
		},
		[]Relationship{
			{Name: "companies", RemoteTable: "companies", LocalColumn: "id", RemoteColumn: "industry_id", UseList: true},
		},
	))

	register(NewModel("LandingPage", "landing_pages",
		[]Column{
			{Name: "id", Kind: KindInteger},
			{Name: "campaign_id", Kind: KindInteger},
			{Name: "hostname", Kind: KindString},
			{Name: "page", Kind: KindString},
		},
		[]Relationship{
			{Name: "first_visits", RemoteTable: "visits", LocalColumn: "id", RemoteColumn: "first_landing_page_id", UseList: true},
			{Name: "campaign", RemoteTable: "campaigns", LocalColumn: "campaign_id", RemoteColumn: "id"},
		},
	))

	register(NewModel("Message", "messages",
		[]Column{
			{Name: "id", Kind: KindString},
			{Name: "campaign_id", Kind: KindInteger},
			{Name: "target_email", Kind: KindString},
			{Name: "first_name", Kind: KindString},
			{Name: "last_name", Kind: KindString},
			{Name: "opened", Kind: KindDateTime},
			{Name: "opener_ip", Kind: KindString},
			{Name: "opener_user_agent", Kind: KindString},
			{Name: "sent", Kind: KindDateTime},
			{Name: "reported", Kind: KindDateTime},
			{Name: "trained", Kind: KindBoolean},
			{Name: "testing", Kind: KindBoolean},
			{Name: "company_department_id", Kind: KindInteger},
		},
		[]Relationship{
			{Name: "credentials", RemoteTable: "credentials", LocalColumn: "id", RemoteColumn: "message_id", UseList: true},
			{Name: "visits", RemoteTable: "visits", LocalColumn: "id", RemoteColumn: "message_id", UseList: true},
			{Name: "campaign", RemoteTable: "campaigns", LocalColumn: "campaign_id", RemoteColumn: "id"},
			{Name: "company_department", RemoteTable: "company_departments", LocalColumn: "company_department_id", RemoteColumn: "id"},
		},
	))

	register(NewModel("User", "users",
		[]Column{
			{Name: "id", Kind: KindInteger},
			{Name: "name", Kind: KindString},
			{Name: "phone_carrier", Kind: KindString},
			{Name: "phone_number", Kind: KindString},
			{Name: "email_address", Kind: KindString},
			{Name: "otp_secret", Kind: KindString},
			{Name: "last_login", Kind: KindDateTime},
			{Name: "expiration", Kind: KindDateTime},
			{Name: "access_level", Kind: KindInteger},
		},
		[]Relationship{
			{Name: "alert_subscriptions", RemoteTable: "alert_subscriptions", LocalColumn: "id", RemoteColumn: "user_id", UseList: true},
			{Name: "campaigns", RemoteTable: "campaigns", LocalColumn: "id", RemoteColumn: "user_id", UseList: true},
		},
	))

	register(NewModel("Visit", "visits",
		[]Column{
			{Name: "id", Kind: KindString},
			{Name: "message_id", Kind: KindString},
			{Name: "campaign_id", Kind: KindInteger},
			{Name: "count", Kind: KindInteger},
			{Name: "ip", Kind: KindString},
			{Name: "user_agent", Kind: KindString},
			{Name: "details", Kind: KindString},
			{Name: "first_landing_page_id", Kind: KindInteger},
			{Name: "first_seen", Kind: KindDateTime},
			{Name: "last_seen", Kind: KindDateTime},
		},
		[]Relationship{
			{Name: "credentials", RemoteTable: "credentials", LocalColumn: "id", RemoteColumn: "visit_id", UseList: true},
			{Name: "campaign", RemoteTable: "campaigns", LocalColumn: "campaign_id", RemoteColumn: "id"},
			{Name: "message", RemoteTable: "messages", LocalColumn: "message_id", RemoteColumn: "id"},
		},
	))

	return r
}
