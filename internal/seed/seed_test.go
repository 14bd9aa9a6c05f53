package seed

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/aidledger/internal/auth"
	"github.com/mmynk/aidledger/internal/distribution"
	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/recipient"
	"github.com/mmynk/aidledger/internal/storage"
	"github.com/mmynk/aidledger/internal/storage/sqlite"
)

func newSeeder(t *testing.T) (*Seeder, *sqlite.SQLiteStore) {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	builder := distribution.NewBuilder(recipient.NewResolver(store), distribution.WithLogger(logger))
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
	return New(store, authenticator, builder, logger), store
}

func individualByIDNumber(t *testing.T, store storage.Store, idNumber string) *models.Individual {
	t.Helper()
	all, err := store.ListIndividuals(context.Background(), storage.IndividualFilter{})
	require.NoError(t, err)
	for _, ind := range all {
		if ind.IDNumber == idNumber {
			return ind
		}
	}
	t.Fatalf("no individual with id number %s", idNumber)
	return nil
}

func TestApplyDemoFixture(t *testing.T) {
	ctx := context.Background()
	s, store := newSeeder(t)

	fx, err := Load(filepath.Join("testdata", "demo.yaml"))
	require.NoError(t, err)

	sum, err := s.Apply(ctx, fx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Users: 2, Individuals: 3, Families: 1, Children: 1, Distributions: 2}, sum)

	admin, err := store.GetUserByEmail(ctx, "admin@example.org")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	staff, err := store.GetUserByEmail(ctx, "staff@example.org")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, staff.Role)

	rana := individualByIDNumber(t, store, "900100200")
	omar := individualByIDNumber(t, store, "900100201")
	nadia := individualByIDNumber(t, store, "900100300")
	assert.Equal(t, models.ListWaitinglist, nadia.ListStatus)
	assert.Equal(t, models.ListWhitelist, rana.ListStatus)
	require.NotEmpty(t, rana.FamilyID)
	assert.Equal(t, rana.FamilyID, omar.FamilyID)
	require.Len(t, rana.AdditionalMembers, 1)
	assert.Equal(t, "mother", rana.AdditionalMembers[0].Relation)

	family, err := store.GetFamily(ctx, rana.FamilyID)
	require.NoError(t, err)
	assert.Equal(t, models.FamilyYellow, family.Status)
	assert.Equal(t, rana.ID, family.PrimaryContactID)

	children, err := store.ListChildrenByFamily(ctx, rana.FamilyID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	lina := children[0]
	assert.Equal(t, rana.ID, lina.ParentID)

	dists, err := store.ListDistributions(ctx, storage.DistributionFilter{})
	require.NoError(t, err)
	require.Len(t, dists, 2)

	coats := dists[0]
	assert.Equal(t, models.AidClothing, coats.AidType)
	assert.Equal(t, models.StatusCancelled, coats.Status)
	assert.Equal(t, staff.ID, coats.CreatedBy)
	assert.Equal(t, 2, coats.Quantity)
	assert.True(t, decimal.NewFromInt(25).Equal(coats.Value))

	parcels := dists[1]
	assert.Equal(t, models.StatusCompleted, parcels.Status)
	assert.Equal(t, admin.ID, parcels.CreatedBy)
	assert.Equal(t, 4, parcels.Quantity)
	require.Len(t, parcels.Recipients, 3)

	assert.Equal(t, rana.ID, parcels.Recipients[0].IndividualID)
	assert.Equal(t, 2, parcels.Recipients[0].Quantity)
	assert.True(t, decimal.NewFromInt(60).Equal(parcels.Recipients[0].Value))
	assert.Equal(t, "Includes 1 additional family member(s)", parcels.Recipients[0].Notes)

	assert.Equal(t, lina.ID, parcels.Recipients[1].ChildID)
	assert.True(t, decimal.NewFromInt(30).Equal(parcels.Recipients[1].Value))

	assert.True(t, parcels.Recipients[2].IsWalkIn())
	assert.Equal(t, "Sara Haddad", parcels.Recipients[2].RecipientName)
	assert.True(t, decimal.NewFromInt(30).Equal(parcels.Recipients[2].Value))
}

func TestApplySkipsExistingUsers(t *testing.T) {
	ctx := context.Background()
	s, _ := newSeeder(t)

	fx, err := Load(filepath.Join("testdata", "demo.yaml"))
	require.NoError(t, err)
	_, err = s.Apply(ctx, fx)
	require.NoError(t, err)

	// Users are skipped; the registry rejects the repeated id numbers.
	sum, err := s.Apply(ctx, fx)
	assert.ErrorIs(t, err, storage.ErrConflict)
	assert.Equal(t, 2, sum.SkippedUsers)
	assert.Zero(t, sum.Users)
	assert.Zero(t, sum.Individuals)
}

func TestApplyRejectsBadFixtures(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "unknown role",
			yaml: "users: [{email: a@example.org, display_name: A, password: longenough, role: root}]",
			want: `unknown role "root"`,
		},
		{
			name: "missing key",
			yaml: "individuals: [{first_name: A, id_number: '1'}]",
			want: "key is required",
		},
		{
			name: "unknown family member",
			yaml: "families: [{name: F, members: [{individual: ghost}]}]",
			want: `unknown individual "ghost"`,
		},
		{
			name: "ambiguous recipient",
			yaml: `
individuals: [{key: a, first_name: A, id_number: '1'}]
distributions:
  - date: "2024-01-01"
    aid_type: food
    description: x
    value: "10"
    recipients: [{individual: a, walk_in: B}]`,
			want: "exactly one of",
		},
		{
			name: "unknown child",
			yaml: `
distributions:
  - date: "2024-01-01"
    aid_type: food
    description: x
    value: "10"
    recipients: [{child: nobody}]`,
			want: `unknown child "nobody"`,
		},
		{
			name: "invalid distribution",
			yaml: `
distributions:
  - date: "2024-01-01"
    aid_type: rockets
    description: x
    value: "10"
    recipients: [{walk_in: B}]`,
			want: "aid_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newSeeder(t)
			fx, err := Decode(strings.NewReader(tt.yaml))
			require.NoError(t, err)
			_, err = s.Apply(context.Background(), fx)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("individuals: [{key: a, nickname: x}]"))
	assert.Error(t, err)

	fx, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, fx.Individuals)
}
