// Package storagetest holds a conformance suite that every storage.Store
// implementation must pass.
package storagetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/storage"
)

// Run exercises s against the storage.Store contract. newStore must return an
// empty store; it is called once per subtest.
func Run(t *testing.T, newStore func(t *testing.T) storage.Store) {
	t.Run("Users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("Individuals", func(t *testing.T) { testIndividuals(t, newStore(t)) })
	t.Run("Families", func(t *testing.T) { testFamilies(t, newStore(t)) })
	t.Run("Children", func(t *testing.T) { testChildren(t, newStore(t)) })
	t.Run("AdditionalMembers", func(t *testing.T) { testAdditionalMembers(t, newStore(t)) })
	t.Run("Distributions", func(t *testing.T) { testDistributions(t, newStore(t)) })
	t.Run("DistributionFilters", func(t *testing.T) { testDistributionFilters(t, newStore(t)) })
	t.Run("Needs", func(t *testing.T) { testNeeds(t, newStore(t)) })
	t.Run("PendingRequests", func(t *testing.T) { testPendingRequests(t, newStore(t)) })
	t.Run("ApprovalLogs", func(t *testing.T) { testApprovalLogs(t, newStore(t)) })
}

var seq int

// NewIndividual returns an unsaved individual with a unique ID number.
func NewIndividual(first, last, district string) *models.Individual {
	seq++
	return &models.Individual{
		FirstName:   first,
		LastName:    last,
		IDNumber:    fmt.Sprintf("ID-%06d", seq),
		DateOfBirth: time.Date(1985, time.March, 4, 0, 0, 0, 0, time.UTC),
		District:    district,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testUsers(t *testing.T, s storage.Store) {
	ctx := context.Background()

	user := models.NewUser("alice@example.org", "Alice", "hash", models.RoleAdmin)
	require.NoError(t, s.CreateUser(ctx, user))

	got, err := s.GetUserByEmail(ctx, "alice@example.org")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, models.RoleAdmin, got.Role)

	got, err = s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.DisplayName)

	dup := models.NewUser("alice@example.org", "Other", "hash", models.RoleUser)
	assert.ErrorIs(t, s.CreateUser(ctx, dup), storage.ErrConflict)

	_, err = s.GetUserByEmail(ctx, "nobody@example.org")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testIndividuals(t *testing.T, s storage.Store) {
	ctx := context.Background()

	a := NewIndividual("Amal", "Haddad", "North")
	a.AssistanceTypes = []models.AssistanceType{models.AssistanceFood, models.AssistanceMedical}
	a.Phone = "555-0100"
	require.NoError(t, s.CreateIndividual(ctx, a))
	assert.NotEmpty(t, a.ID)
	assert.NotZero(t, a.CreatedAt)
	assert.Equal(t, models.ListWhitelist, a.ListStatus)

	b := NewIndividual("Bilal", "Nasser", "South")
	b.AssistanceTypes = []models.AssistanceType{models.AssistanceShelter}
	require.NoError(t, s.CreateIndividual(ctx, b))

	got, err := s.GetIndividual(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Amal Haddad", got.FullName())
	assert.Equal(t, a.DateOfBirth, got.DateOfBirth)
	assert.Equal(t, "555-0100", got.Phone)
	assert.ElementsMatch(t, a.AssistanceTypes, got.AssistanceTypes)
	assert.Empty(t, got.AdditionalMembers)

	dup := NewIndividual("Copy", "Cat", "North")
	dup.IDNumber = a.IDNumber
	assert.ErrorIs(t, s.CreateIndividual(ctx, dup), storage.ErrConflict)

	_, err = s.GetIndividual(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	all, err := s.ListIndividuals(ctx, storage.IndividualFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	north, err := s.ListIndividuals(ctx, storage.IndividualFilter{District: "North"})
	require.NoError(t, err)
	require.Len(t, north, 1)
	assert.Equal(t, a.ID, north[0].ID)

	byNumber, err := s.ListIndividuals(ctx, storage.IndividualFilter{IDNumber: b.IDNumber})
	require.NoError(t, err)
	require.Len(t, byNumber, 1)
	assert.Equal(t, b.ID, byNumber[0].ID)

	shelter, err := s.ListIndividuals(ctx, storage.IndividualFilter{AssistanceType: models.AssistanceShelter})
	require.NoError(t, err)
	require.Len(t, shelter, 1)
	assert.Equal(t, b.ID, shelter[0].ID)

	none, err := s.ListIndividuals(ctx, storage.IndividualFilter{ListStatus: models.ListBlacklist})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testFamilies(t *testing.T, s storage.Store) {
	ctx := context.Background()

	parent := NewIndividual("Rana", "Khoury", "East")
	member := NewIndividual("Sami", "Khoury", "East")
	require.NoError(t, s.CreateIndividual(ctx, parent))
	require.NoError(t, s.CreateIndividual(ctx, member))

	family := &models.Family{
		Name:     "Khoury",
		District: "East",
		Roles: map[string]models.FamilyRole{
			parent.ID: models.RoleParent,
			member.ID: models.RoleMember,
		},
	}
	require.NoError(t, s.CreateFamily(ctx, family))
	assert.NotEmpty(t, family.ID)
	assert.Equal(t, models.FamilyGreen, family.Status)

	got, err := s.GetFamily(ctx, family.ID)
	require.NoError(t, err)
	assert.Equal(t, "Khoury", got.Name)
	require.Len(t, got.Members, 2)
	assert.Equal(t, parent.ID, got.Members[0].ID)
	assert.Equal(t, models.RoleParent, got.Members[0].Role)
	assert.Equal(t, models.RoleMember, got.Members[1].Role)

	ind, err := s.GetIndividual(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, family.ID, ind.FamilyID)

	inFamily, err := s.ListIndividuals(ctx, storage.IndividualFilter{FamilyID: family.ID})
	require.NoError(t, err)
	assert.Len(t, inFamily, 2)

	// Joining through CreateIndividual.
	late := NewIndividual("Zaid", "Khoury", "East")
	late.FamilyID = family.ID
	require.NoError(t, s.CreateIndividual(ctx, late))
	members, err := s.ListFamilyMembers(ctx, family.ID)
	require.NoError(t, err)
	assert.Len(t, members, 3)

	missing := &models.Family{Name: "Ghost", Roles: map[string]models.FamilyRole{
		"00000000-0000-0000-0000-000000000000": models.RoleParent,
	}}
	assert.ErrorIs(t, s.CreateFamily(ctx, missing), storage.ErrNotFound)

	families, err := s.ListFamilies(ctx)
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, family.ID, families[0].ID)

	_, err = s.GetFamily(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testChildren(t *testing.T, s storage.Store) {
	ctx := context.Background()

	parent := NewIndividual("Huda", "Saleh", "West")
	require.NoError(t, s.CreateIndividual(ctx, parent))

	orphaned := &models.Child{FirstName: "Omar", LastName: "Saleh", ParentID: parent.ID}
	assert.ErrorIs(t, s.AddChildWithFamily(ctx, orphaned), storage.ErrNoFamily)

	family := &models.Family{Name: "Saleh", District: "West", Roles: map[string]models.FamilyRole{parent.ID: models.RoleParent}}
	require.NoError(t, s.CreateFamily(ctx, family))

	child := &models.Child{
		FirstName:   "Omar",
		LastName:    "Saleh",
		DateOfBirth: day(2016, time.June, 1),
		SchoolStage: "primary",
		ParentID:    parent.ID,
	}
	require.NoError(t, s.AddChildWithFamily(ctx, child))
	assert.Equal(t, family.ID, child.FamilyID)

	got, err := s.GetChild(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, "Omar Saleh", got.FullName())
	assert.Equal(t, child.DateOfBirth, got.DateOfBirth)
	assert.Equal(t, parent.ID, got.ParentID)

	children, err := s.ListChildrenByFamily(ctx, family.ID)
	require.NoError(t, err)
	assert.Len(t, children, 1)

	members, err := s.ListFamilyMembers(ctx, family.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, models.RoleChild, members[1].Role)
	assert.Equal(t, "West", members[1].District)

	bad := &models.Child{FirstName: "X", ParentID: "00000000-0000-0000-0000-000000000000"}
	assert.ErrorIs(t, s.AddChildWithFamily(ctx, bad), storage.ErrNotFound)

	_, err = s.GetChild(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testAdditionalMembers(t *testing.T, s storage.Store) {
	ctx := context.Background()

	ind := NewIndividual("Layla", "Aziz", "North")
	require.NoError(t, s.CreateIndividual(ctx, ind))

	idx, err := s.AddAdditionalMember(ctx, ind.ID, models.AdditionalMember{Name: "Mona Aziz", Relation: "sister"})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = s.AddAdditionalMember(ctx, ind.ID, models.AdditionalMember{Name: "Yusuf Aziz", Relation: "father"})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	got, err := s.GetIndividual(ctx, ind.ID)
	require.NoError(t, err)
	require.Len(t, got.AdditionalMembers, 2)
	assert.Equal(t, "Mona Aziz", got.AdditionalMembers[0].Name)
	assert.Equal(t, "father", got.AdditionalMembers[1].Relation)

	_, err = s.AddAdditionalMember(ctx, "00000000-0000-0000-0000-000000000000", models.AdditionalMember{Name: "x"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testDistributions(t *testing.T, s storage.Store) {
	ctx := context.Background()

	ind := NewIndividual("Nadia", "Farah", "North")
	require.NoError(t, s.CreateIndividual(ctx, ind))
	family := &models.Family{Name: "Farah", Roles: map[string]models.FamilyRole{ind.ID: models.RoleParent}}
	require.NoError(t, s.CreateFamily(ctx, family))
	child := &models.Child{FirstName: "Tariq", LastName: "Farah", ParentID: ind.ID}
	require.NoError(t, s.AddChildWithFamily(ctx, child))

	d := &models.Distribution{
		Date:        day(2024, time.January, 15),
		AidType:     models.AidFood,
		Description: "Winter baskets",
		Quantity:    4,
		Value:       decimal.RequireFromString("100.00"),
		Status:      models.StatusInProgress,
		Recipients: []models.Allocation{
			{IndividualID: ind.ID, Quantity: 1, Value: decimal.RequireFromString("25.00"), Notes: "Includes 1 additional family member(s)"},
			{ChildID: child.ID, Quantity: 1, Value: decimal.RequireFromString("25.00")},
			{RecipientName: "Walk-in", Quantity: 2, Value: decimal.RequireFromString("50.00")},
		},
	}
	require.NoError(t, s.CreateDistributionTransaction(ctx, d))
	assert.NotEmpty(t, d.ID)
	for _, a := range d.Recipients {
		assert.NotEmpty(t, a.ID)
		assert.Equal(t, d.ID, a.DistributionID)
	}

	got, err := s.GetDistribution(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.Date, got.Date)
	assert.True(t, got.Value.Equal(d.Value))
	assert.False(t, got.ValuePerUnit.Valid)
	require.Len(t, got.Recipients, 3)
	assert.Equal(t, ind.ID, got.Recipients[0].IndividualID)
	assert.Equal(t, child.ID, got.Recipients[1].ChildID)
	assert.True(t, got.Recipients[2].IsWalkIn())
	assert.Equal(t, "Walk-in", got.Recipients[2].RecipientName)
	assert.True(t, got.Recipients[2].Value.Equal(decimal.RequireFromString("50")))

	history, err := s.ListAllocationsByIndividual(ctx, ind.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Includes 1 additional family member(s)", history[0].Notes)

	// Update replaces every allocation.
	got.Description = "Winter baskets (revised)"
	got.Quantity = 2
	got.ValuePerUnit = decimal.NewNullDecimal(decimal.RequireFromString("10"))
	got.Value = decimal.RequireFromString("20")
	got.Recipients = []models.Allocation{
		{IndividualID: ind.ID, Quantity: 2, Value: decimal.RequireFromString("20")},
	}
	require.NoError(t, s.UpdateDistributionTransaction(ctx, got))

	updated, err := s.GetDistribution(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Winter baskets (revised)", updated.Description)
	assert.True(t, updated.ValuePerUnit.Valid)
	assert.True(t, updated.ValuePerUnit.Decimal.Equal(decimal.RequireFromString("10")))
	require.Len(t, updated.Recipients, 1)

	require.NoError(t, s.UpdateDistributionStatus(ctx, d.ID, models.StatusCompleted))
	updated, err = s.GetDistribution(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)

	require.NoError(t, s.DeleteDistribution(ctx, d.ID))
	_, err = s.GetDistribution(ctx, d.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	history, err = s.ListAllocationsByIndividual(ctx, ind.ID)
	require.NoError(t, err)
	assert.Empty(t, history)

	assert.ErrorIs(t, s.DeleteDistribution(ctx, d.ID), storage.ErrNotFound)
	assert.ErrorIs(t, s.UpdateDistributionStatus(ctx, d.ID, models.StatusCancelled), storage.ErrNotFound)

	missing := &models.Distribution{ID: d.ID, Date: day(2024, 1, 1), AidType: models.AidFood, Status: models.StatusPlanned}
	assert.ErrorIs(t, s.UpdateDistributionTransaction(ctx, missing), storage.ErrNotFound)
}

func testDistributionFilters(t *testing.T, s storage.Store) {
	ctx := context.Background()

	create := func(date time.Time, aid models.AidType, status models.DistributionStatus) *models.Distribution {
		d := &models.Distribution{
			Date:        date,
			AidType:     aid,
			Description: string(aid) + " " + date.Format(models.DateLayout),
			Quantity:    1,
			Value:       decimal.NewFromInt(10),
			Status:      status,
			Recipients:  []models.Allocation{{RecipientName: "Walk-in", Quantity: 1, Value: decimal.NewFromInt(10)}},
		}
		require.NoError(t, s.CreateDistributionTransaction(ctx, d))
		return d
	}

	jan := create(day(2024, time.January, 10), models.AidFood, models.StatusCompleted)
	feb := create(day(2024, time.February, 10), models.AidClothing, models.StatusInProgress)
	mar := create(day(2024, time.March, 10), models.AidFood, models.StatusPlanned)

	all, err := s.ListDistributions(ctx, storage.DistributionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, mar.ID, all[0].ID)
	assert.Equal(t, jan.ID, all[2].ID)
	assert.Len(t, all[0].Recipients, 1)

	ranged, err := s.ListDistributions(ctx, storage.DistributionFilter{
		From: day(2024, time.February, 10),
		To:   day(2024, time.March, 10),
	})
	require.NoError(t, err)
	require.Len(t, ranged, 2)
	assert.Equal(t, feb.ID, ranged[1].ID)

	food, err := s.ListDistributions(ctx, storage.DistributionFilter{AidType: models.AidFood})
	require.NoError(t, err)
	assert.Len(t, food, 2)

	completed, err := s.ListDistributions(ctx, storage.DistributionFilter{Status: models.StatusCompleted})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, jan.ID, completed[0].ID)

	empty, err := s.ListDistributions(ctx, storage.DistributionFilter{From: day(2030, 1, 1)})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func testNeeds(t *testing.T, s storage.Store) {
	ctx := context.Background()

	amal := NewIndividual("Amal", "Haddad", "North")
	require.NoError(t, s.CreateIndividual(ctx, amal))

	err := s.CreateNeed(ctx, &models.Need{IndividualID: "missing", Category: models.NeedFood, Priority: models.PriorityLow, Description: "x"})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	food := &models.Need{IndividualID: amal.ID, Category: models.NeedFood, Priority: models.PriorityHigh, Description: "Monthly basket", CreatedBy: "u1"}
	require.NoError(t, s.CreateNeed(ctx, food))
	assert.NotEmpty(t, food.ID)
	assert.Equal(t, models.NeedPending, food.Status)

	rent := &models.Need{IndividualID: amal.ID, Category: models.NeedShelter, Priority: models.PriorityUrgent,
		Status: models.NeedInProgress, Description: "Rent", CreatedAt: food.CreatedAt + 10}
	require.NoError(t, s.CreateNeed(ctx, rent))

	got, err := s.GetNeed(ctx, food.ID)
	require.NoError(t, err)
	assert.Equal(t, "Monthly basket", got.Description)
	assert.Equal(t, "u1", got.CreatedBy)

	all, err := s.ListNeeds(ctx, storage.NeedFilter{IndividualID: amal.ID})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, rent.ID, all[0].ID, "newest first")

	pending, err := s.ListNeeds(ctx, storage.NeedFilter{Status: models.NeedPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, food.ID, pending[0].ID)

	shelter, err := s.ListNeeds(ctx, storage.NeedFilter{Category: models.NeedShelter})
	require.NoError(t, err)
	require.Len(t, shelter, 1)

	food.Status = models.NeedCompleted
	food.Description = "Delivered"
	require.NoError(t, s.UpdateNeed(ctx, food))
	got, err = s.GetNeed(ctx, food.ID)
	require.NoError(t, err)
	assert.Equal(t, models.NeedCompleted, got.Status)
	assert.Equal(t, "Delivered", got.Description)

	assert.ErrorIs(t, s.UpdateNeed(ctx, &models.Need{ID: "missing"}), storage.ErrNotFound)

	require.NoError(t, s.DeleteNeed(ctx, food.ID))
	_, err = s.GetNeed(ctx, food.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, s.DeleteNeed(ctx, food.ID), storage.ErrNotFound)
}

func testPendingRequests(t *testing.T, s storage.Store) {
	ctx := context.Background()

	individual := &models.PendingRequest{
		Type: models.RequestIndividual,
		Individual: &models.IndividualSubmission{
			Individual:    *NewIndividual("Rana", "Khoury", "South"),
			NewFamilyName: "Khoury",
			Children:      []models.ChildSubmission{{FirstName: "Lina"}},
			Needs:         []models.NeedSubmission{{Category: models.NeedFood, Priority: models.PriorityLow, Description: "Basket"}},
		},
		SubmittedBy: "staff-1",
	}
	require.NoError(t, s.CreatePendingRequest(ctx, individual))
	assert.NotEmpty(t, individual.ID)
	assert.Equal(t, models.RequestPending, individual.Status)
	assert.Equal(t, 1, individual.Version)

	need := &models.PendingRequest{
		Type:        models.RequestNeed,
		Need:        &models.NeedSubmission{IndividualID: "ind-1", Category: models.NeedMedical, Priority: models.PriorityHigh, Description: "Insulin"},
		SubmittedBy: "staff-2",
		SubmittedAt: individual.SubmittedAt + 10,
	}
	require.NoError(t, s.CreatePendingRequest(ctx, need))

	assert.Error(t, s.CreatePendingRequest(ctx, &models.PendingRequest{Type: models.RequestNeed}), "payload must match type")

	got, err := s.GetPendingRequest(ctx, individual.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Individual)
	assert.Nil(t, got.Need)
	assert.Equal(t, "Rana", got.Individual.Individual.FirstName)
	assert.Equal(t, "Khoury", got.Individual.NewFamilyName)
	assert.Equal(t, []models.ChildSubmission{{FirstName: "Lina"}}, got.Individual.Children)
	assert.Equal(t, "staff-1", got.SubmittedBy)

	list, err := s.ListPendingRequests(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, need.ID, list[0].ID, "newest first")
	assert.Equal(t, "Insulin", list[0].Need.Description)

	need.Status = models.RequestRejected
	need.ReviewedBy = "admin-1"
	need.ReviewedAt = need.SubmittedAt + 5
	need.AdminComment = "duplicate"
	need.Version = 2
	require.NoError(t, s.UpdatePendingRequest(ctx, need))

	got, err = s.GetPendingRequest(ctx, need.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestRejected, got.Status)
	assert.Equal(t, "admin-1", got.ReviewedBy)
	assert.Equal(t, need.ReviewedAt, got.ReviewedAt)
	assert.Equal(t, "duplicate", got.AdminComment)
	assert.Equal(t, 2, got.Version)

	// A writer holding the old version loses.
	stale := *need
	stale.Status = models.RequestApproved
	assert.ErrorIs(t, s.UpdatePendingRequest(ctx, &stale), storage.ErrConflict)

	missing := *need
	missing.ID = "missing"
	assert.ErrorIs(t, s.UpdatePendingRequest(ctx, &missing), storage.ErrNotFound)

	pending, err := s.ListPendingRequests(ctx, models.RequestPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, individual.ID, pending[0].ID)

	require.NoError(t, s.DeletePendingRequest(ctx, individual.ID))
	_, err = s.GetPendingRequest(ctx, individual.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, s.DeletePendingRequest(ctx, individual.ID), storage.ErrNotFound)
}

func testApprovalLogs(t *testing.T, s storage.Store) {
	ctx := context.Background()

	first := &models.ApprovalLog{Action: models.ActionApproved, RequestID: "r1", RequestType: models.RequestIndividual,
		ActorID: "admin-1", ActorName: "Admin", TargetName: "Rana Khoury"}
	require.NoError(t, s.AddApprovalLog(ctx, first))
	assert.NotEmpty(t, first.ID)

	second := &models.ApprovalLog{Action: models.ActionRejected, RequestID: "r2", RequestType: models.RequestNeed,
		Details: "duplicate", CreatedAt: first.CreatedAt + 10}
	require.NoError(t, s.AddApprovalLog(ctx, second))

	logs, err := s.ListApprovalLogs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, second.ID, logs[0].ID)
	assert.Equal(t, "duplicate", logs[0].Details)
	assert.Equal(t, models.RequestIndividual, logs[1].RequestType)
	assert.Equal(t, "Rana Khoury", logs[1].TargetName)
}
