package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/storage"
	"github.com/mmynk/aidledger/internal/storage/storagetest"
)

func TestPostgresStoreConformance(t *testing.T) {
	dsn := os.Getenv("AIDLEDGER_TEST_POSTGRES_URL")
	if dsn == "" {
		t.Skip("AIDLEDGER_TEST_POSTGRES_URL not set")
	}

	storagetest.Run(t, func(t *testing.T) storage.Store {
		store, err := New(context.Background(), dsn)
		require.NoError(t, err)
		err = store.db.Exec(`TRUNCATE distribution_recipients, distributions, needs, children,
			family_members, individuals, families, pending_requests, approval_logs, users`).Error
		require.NoError(t, err)
		t.Cleanup(func() { store.Close() })
		return store
	})
}

func TestNewRequiresDSN(t *testing.T) {
	_, err := New(context.Background(), "")
	assert.Error(t, err)
}

func TestIndividualRowRoundTrip(t *testing.T) {
	in := &models.Individual{
		ID:              "6d2b1f0e-8a51-4c55-9a1f-0f3f0b1d2c3e",
		FirstName:       "Amal",
		LastName:        "Haddad",
		IDNumber:        "A-1",
		DateOfBirth:     time.Date(1990, time.July, 9, 0, 0, 0, 0, time.UTC),
		District:        "North",
		ListStatus:      models.ListWaitinglist,
		AssistanceTypes: []models.AssistanceType{models.AssistanceFood, models.AssistanceDebt},
		AdditionalMembers: []models.AdditionalMember{
			{Name: "Mona", Relation: "sister"},
		},
	}

	row, err := individualRowFromModel(in)
	require.NoError(t, err)
	assert.Equal(t, pq.StringArray{"food_assistance", "debt_assistance"}, row.AssistanceTypes)
	assert.Nil(t, row.Phone)
	assert.JSONEq(t, `[{"name":"Mona","relation":"sister"}]`, string(row.AdditionalMembers))

	out, err := row.toModel()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestIndividualRowEmptyMembers(t *testing.T) {
	row, err := individualRowFromModel(&models.Individual{ID: "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(row.AdditionalMembers))
	assert.Nil(t, row.DateOfBirth)
}

func TestAllocationRowOptionalColumns(t *testing.T) {
	walkIn := models.Allocation{RecipientName: "Walk-in", Quantity: 2, Value: decimal.RequireFromString("12.50")}
	row := allocationRowFromModel(&walkIn, 3)
	assert.Nil(t, row.IndividualID)
	assert.Nil(t, row.ChildID)
	assert.Equal(t, 3, row.Position)
	assert.True(t, row.toModel().IsWalkIn())

	child := models.Allocation{ChildID: "c1", Quantity: 1, Value: decimal.Zero}
	row = allocationRowFromModel(&child, 0)
	require.NotNil(t, row.ChildID)
	assert.Equal(t, "c1", *row.ChildID)
	assert.Nil(t, row.RecipientName)
}

func TestDistributionRowDropsTimeOfDay(t *testing.T) {
	d := &models.Distribution{
		Date:         time.Date(2024, time.March, 3, 17, 45, 0, 0, time.FixedZone("X", 3600)),
		ValuePerUnit: decimal.NewNullDecimal(decimal.NewFromInt(5)),
	}
	row := distributionRowFromModel(d)
	assert.Equal(t, time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC), row.Date)
	assert.True(t, row.toModel().ValuePerUnit.Valid)
}

func TestPendingRequestRowRoundTrip(t *testing.T) {
	in := &models.PendingRequest{
		ID:     "r1",
		Type:   models.RequestNeed,
		Status: models.RequestPending,
		Need: &models.NeedSubmission{
			IndividualID: "i1",
			Category:     models.NeedMedical,
			Priority:     models.PriorityUrgent,
			Description:  "Insulin",
		},
		SubmittedBy: "staff-1",
		SubmittedAt: 1700000000,
		Version:     1,
	}

	row, err := pendingRequestRowFromModel(in)
	require.NoError(t, err)
	assert.Nil(t, row.ReviewedAt)
	assert.Nil(t, row.ReviewedBy)
	assert.JSONEq(t, `{"individual_id":"i1","category":"medical","priority":"urgent","description":"Insulin"}`, string(row.Data))

	out, err := row.toModel()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
