package dbsession

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-graphql/internal/catalog"
)

func newTestSession(t *testing.T) (*Session, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db, catalog.Default(), nil), mock
}

func campaignRows() *sqlmock.Rows {
	model, _ := catalog.Default().Lookup("campaigns")
	return sqlmock.NewRows(model.ColumnNames())
}

func addCampaignRow(rows *sqlmock.Rows, id int64, name string) {
	rows.AddRow(id, name, nil, 1, time.Date(2018, 6, 1, 12, 0, 0, 0, time.UTC),
		nil, nil, nil, nil, nil, nil, nil, false)
}

func TestQueryUnknownTable(t *testing.T) {
	session, _ := newTestSession(t)

	_, err := session.Query("sessions")
	require.Error(t, err)
	assert.EqualError(t, err, "unknown table: sessions")
}

func TestQueryAll(t *testing.T) {
	session, mock := newTestSession(t)

	rows := campaignRows()
	addCampaignRow(rows, 1, "spring")
	addCampaignRow(rows, 2, "autumn")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id", "name", "description", "user_id", "created", "expiration", "campaign_type_id", "company_id", "max_credentials", "credential_regex_username", "credential_regex_password", "credential_regex_mfa_token", "reject_after_credentials" FROM "campaigns"`)).
		WillReturnRows(rows)

	query, err := session.Query("campaigns")
	require.NoError(t, err)

	instances, err := query.All(context.Background())
	require.NoError(t, err)
	require.Len(t, instances, 2)
	assert.Equal(t, "spring", instances[0].Get("name"))
	assert.Equal(t, int64(2), instances[1].ID())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryWhereUsesDollarPlaceholders(t *testing.T) {
	session, mock := newTestSession(t)

	rows := campaignRows()
	addCampaignRow(rows, 1, "spring")
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE name = $1`)).
		WithArgs("spring").
		WillReturnRows(rows)

	query, err := session.Query("campaigns")
	require.NoError(t, err)

	instances, err := query.Where(sq.Eq{"name": "spring"}).All(context.Background())
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuerySliceAppliesOrderLimitOffset(t *testing.T) {
	session, mock := newTestSession(t)

	rows := campaignRows()
	addCampaignRow(rows, 3, "third")
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY name ASC LIMIT 2 OFFSET 4`)).
		WillReturnRows(rows)

	query, err := session.Query("campaigns")
	require.NoError(t, err)

	instances, err := query.OrderBy("name ASC").Slice(context.Background(), 4, 2)
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryCount(t *testing.T) {
	session, mock := newTestSession(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM "visits" WHERE campaign_id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	query, err := session.Query("visits")
	require.NoError(t, err)

	count, err := query.Where(sq.Eq{"campaign_id": 7}).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryFirstReturnsNilWhenEmpty(t *testing.T) {
	session, mock := newTestSession(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "campaigns"`)).
		WillReturnRows(campaignRows())

	query, err := session.Query("campaigns")
	require.NoError(t, err)

	instance, err := query.First(context.Background())
	require.NoError(t, err)
	assert.Nil(t, instance)
}

func TestQueryBuilderImmutability(t *testing.T) {
	session, _ := newTestSession(t)

	base, err := session.Query("campaigns")
	require.NoError(t, err)

	filtered := base.Where(sq.Eq{"id": 1})
	ordered := base.OrderBy("name ASC")

	assert.Empty(t, base.where)
	assert.Empty(t, base.orderBy)
	assert.Len(t, filtered.where, 1)
	assert.Len(t, ordered.orderBy, 1)
}

func TestScanConvertsBytesToString(t *testing.T) {
	session, mock := newTestSession(t)

	rows := campaignRows()
	rows.AddRow(1, []byte("spring"), nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "campaigns"`)).WillReturnRows(rows)

	query, err := session.Query("campaigns")
	require.NoError(t, err)

	instances, err := query.All(context.Background())
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, "spring", instances[0].Get("name"))
}

func TestResolveRelationshipSingle(t *testing.T) {
	session, mock := newTestSession(t)

	campaigns, _ := catalog.Default().Lookup("campaigns")
	visits, _ := catalog.Default().Lookup("visits")

	visit := catalog.NewInstance(visits, map[string]interface{}{
		"id": "abcdef", "campaign_id": int64(3),
	})

	rows := campaignRows()
	addCampaignRow(rows, 3, "spring")
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "campaigns" WHERE "id" = $1`)).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	result, err := session.ResolveRelationship(context.Background(), visit, "campaign")
	require.NoError(t, err)

	instance, ok := result.(*catalog.Instance)
	require.True(t, ok)
	assert.Same(t, campaigns, instance.Model())
	assert.Equal(t, "spring", instance.Get("name"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveRelationshipSingleNilReference(t *testing.T) {
	session, _ := newTestSession(t)

	campaigns, _ := catalog.Default().Lookup("campaigns")
	campaign := catalog.NewInstance(campaigns, map[string]interface{}{
		"id": int64(3), "company_id": nil,
	})

	result, err := session.ResolveRelationship(context.Background(), campaign, "company")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestResolveRelationshipCollectionIsLazy(t *testing.T) {
	session, mock := newTestSession(t)

	campaigns, _ := catalog.Default().Lookup("campaigns")
	campaign := catalog.NewInstance(campaigns, map[string]interface{}{"id": int64(3)})

	result, err := session.ResolveRelationship(context.Background(), campaign, "visits")
	require.NoError(t, err)

	query, ok := result.(*Query)
	require.True(t, ok, "collection relationship should return an unexecuted query")
	assert.Equal(t, "visits", query.Model().Table)

	// Executing the returned query applies the foreign key filter.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM "visits" WHERE "campaign_id" = $1`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := query.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveRelationshipUnknown(t *testing.T) {
	session, _ := newTestSession(t)

	campaigns, _ := catalog.Default().Lookup("campaigns")
	campaign := catalog.NewInstance(campaigns, map[string]interface{}{"id": int64(3)})

	_, err := session.ResolveRelationship(context.Background(), campaign, "payments")
	require.Error(t, err)
	assert.EqualError(t, err, "unknown relationship: Campaign.payments")
}
