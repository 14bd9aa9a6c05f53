package approval

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/storage"
	"github.com/mmynk/aidledger/internal/storage/sqlite"
)

var (
	staff = Actor{ID: "staff-1", Name: "staff@example.org"}
	other = Actor{ID: "staff-2", Name: "other@example.org"}
	admin = Actor{ID: "admin-1", Name: "admin@example.org", Admin: true}
)

func newTestService(t *testing.T) (*Service, *sqlite.SQLiteStore) {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "approval.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	clock := time.Unix(1700000000, 0)
	svc := NewService(store,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		}),
	)
	return svc, store
}

func submission(idNumber string) models.IndividualSubmission {
	return models.IndividualSubmission{
		Individual: models.Individual{
			FirstName: "Rana",
			LastName:  "Khoury",
			IDNumber:  idNumber,
			District:  "North",
			Phone:     "555-0101",
		},
		NewFamilyName: "Khoury",
		Children:      []models.ChildSubmission{{FirstName: "Lina", DateOfBirth: "2015-06-01"}},
		Needs:         []models.NeedSubmission{{Category: models.NeedFood, Priority: models.PriorityHigh, Description: "Monthly basket"}},
	}
}

func TestApproveIndividualCreatesRecords(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	req, err := svc.SubmitIndividual(ctx, staff, submission("A-100"))
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, req.Status)
	assert.Equal(t, 1, req.Version)

	// Nothing is registered until an admin approves.
	found, err := store.ListIndividuals(ctx, storage.IndividualFilter{IDNumber: "A-100"})
	require.NoError(t, err)
	assert.Empty(t, found)

	approved, err := svc.Approve(ctx, admin, req.ID, "looks good")
	require.NoError(t, err)
	assert.Equal(t, models.RequestApproved, approved.Status)
	assert.Equal(t, admin.ID, approved.ReviewedBy)
	assert.NotZero(t, approved.ReviewedAt)
	assert.Equal(t, "looks good", approved.AdminComment)

	found, err = store.ListIndividuals(ctx, storage.IndividualFilter{IDNumber: "A-100"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	ind := found[0]
	assert.Equal(t, staff.ID, ind.CreatedBy)
	require.NotEmpty(t, ind.FamilyID)

	family, err := store.GetFamily(ctx, ind.FamilyID)
	require.NoError(t, err)
	assert.Equal(t, "Khoury", family.Name)
	assert.Equal(t, ind.ID, family.PrimaryContactID)
	assert.Equal(t, "North", family.District)

	children, err := store.ListChildrenByFamily(ctx, ind.FamilyID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "Lina", children[0].FirstName)
	assert.Equal(t, "Khoury", children[0].LastName, "children inherit the parent's last name")

	needs, err := store.ListNeeds(ctx, storage.NeedFilter{IndividualID: ind.ID})
	require.NoError(t, err)
	require.Len(t, needs, 1)
	assert.Equal(t, models.NeedPending, needs[0].Status)
	assert.Equal(t, staff.ID, needs[0].CreatedBy)

	logs, err := svc.Logs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.ActionApproved, logs[0].Action)
	assert.Equal(t, "Rana Khoury", logs[0].TargetName)
	assert.Equal(t, admin.Name, logs[0].ActorName)

	_, err = svc.Approve(ctx, admin, req.ID, "")
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestApproveSkipsAlreadyRegistered(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	sub := submission("A-200")
	sub.Children, sub.NewFamilyName = nil, ""
	req, err := svc.SubmitIndividual(ctx, staff, sub)
	require.NoError(t, err)

	// Registered directly while the request waited.
	direct := &models.Individual{FirstName: "Rana", LastName: "K", IDNumber: "A-200", District: "North"}
	require.NoError(t, store.CreateIndividual(ctx, direct))

	approved, err := svc.Approve(ctx, admin, req.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.RequestApproved, approved.Status)

	found, err := store.ListIndividuals(ctx, storage.IndividualFilter{IDNumber: "A-200"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, direct.ID, found[0].ID)
	needs, err := store.ListNeeds(ctx, storage.NeedFilter{IndividualID: direct.ID})
	require.NoError(t, err)
	assert.Empty(t, needs)
}

func TestApproveFailureReopensRequest(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sub := submission("A-300")
	sub.NewFamilyName = ""
	sub.Individual.FamilyID = "no-such-family"
	req, err := svc.SubmitIndividual(ctx, staff, sub)
	require.NoError(t, err)

	_, err = svc.Approve(ctx, admin, req.ID, "")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	list, err := svc.List(ctx, admin, models.RequestPending)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, req.ID, list[0].ID)
	assert.Empty(t, list[0].ReviewedBy)
	assert.Equal(t, 3, list[0].Version, "claim and reopen both count")

	logs, err := svc.Logs(ctx)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestSubmitIndividualValidation(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	existing := &models.Individual{FirstName: "Omar", LastName: "Haddad", IDNumber: "DUP-1", District: "South"}
	require.NoError(t, store.CreateIndividual(ctx, existing))

	tests := []struct {
		name    string
		mutate  func(*models.IndividualSubmission)
		wantErr error
	}{
		{"missing name", func(s *models.IndividualSubmission) { s.Individual.FirstName = " " }, ErrInvalid},
		{"missing id number", func(s *models.IndividualSubmission) { s.Individual.IDNumber = "" }, ErrInvalid},
		{"missing district", func(s *models.IndividualSubmission) { s.Individual.District = "" }, ErrInvalid},
		{"two families", func(s *models.IndividualSubmission) { s.Individual.FamilyID = "f1" }, ErrInvalid},
		{"children without family", func(s *models.IndividualSubmission) { s.NewFamilyName = "" }, ErrInvalid},
		{"child without name", func(s *models.IndividualSubmission) { s.Children[0].FirstName = "" }, ErrInvalid},
		{"bad child date", func(s *models.IndividualSubmission) { s.Children[0].DateOfBirth = "01/06/2015" }, ErrInvalid},
		{"bad need category", func(s *models.IndividualSubmission) { s.Needs[0].Category = "luxury" }, ErrInvalid},
		{"bad need priority", func(s *models.IndividualSubmission) { s.Needs[0].Priority = "whenever" }, ErrInvalid},
		{"duplicate id number", func(s *models.IndividualSubmission) { s.Individual.IDNumber = "DUP-1" }, storage.ErrConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := submission("V-1")
			tt.mutate(&sub)
			_, err := svc.SubmitIndividual(ctx, staff, sub)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNeedRequestLifecycle(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	ind := &models.Individual{FirstName: "Amal", LastName: "Nasser", IDNumber: "N-1", District: "East"}
	require.NoError(t, store.CreateIndividual(ctx, ind))

	_, err := svc.SubmitNeed(ctx, staff, models.NeedSubmission{IndividualID: "missing", Category: models.NeedFood, Priority: models.PriorityLow, Description: "x"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = svc.SubmitNeed(ctx, staff, models.NeedSubmission{Category: models.NeedFood, Priority: models.PriorityLow, Description: "x"})
	assert.ErrorIs(t, err, ErrInvalid)

	req, err := svc.SubmitNeed(ctx, staff, models.NeedSubmission{
		IndividualID: ind.ID, Category: models.NeedMedical, Priority: models.PriorityUrgent, Description: "Insulin",
	})
	require.NoError(t, err)

	_, err = svc.Reject(ctx, admin, req.ID, "  ")
	assert.ErrorIs(t, err, ErrCommentRequired)

	rejected, err := svc.Reject(ctx, admin, req.ID, "Needs a prescription")
	require.NoError(t, err)
	assert.Equal(t, models.RequestRejected, rejected.Status)

	// Another user's request cannot be edited.
	_, err = svc.Edit(ctx, other, req.ID, nil, &models.NeedSubmission{IndividualID: ind.ID, Category: models.NeedMedical, Priority: models.PriorityUrgent, Description: "Insulin"})
	assert.ErrorIs(t, err, ErrForbidden)

	// Editing a rejected request resubmits it.
	edited, err := svc.Edit(ctx, staff, req.ID, nil, &models.NeedSubmission{
		IndividualID: ind.ID, Category: models.NeedMedical, Priority: models.PriorityUrgent, Description: "Insulin, prescription attached",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, edited.Status)
	assert.Empty(t, edited.ReviewedBy)
	assert.Empty(t, edited.AdminComment)
	assert.Equal(t, 3, edited.Version)

	_, err = svc.Edit(ctx, staff, req.ID, &models.IndividualSubmission{}, nil)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.Approve(ctx, admin, req.ID, "")
	require.NoError(t, err)

	needs, err := store.ListNeeds(ctx, storage.NeedFilter{IndividualID: ind.ID})
	require.NoError(t, err)
	require.Len(t, needs, 1)
	assert.Equal(t, "Insulin, prescription attached", needs[0].Description)

	_, err = svc.Edit(ctx, staff, req.ID, nil, &models.NeedSubmission{IndividualID: ind.ID, Category: models.NeedFood, Priority: models.PriorityLow, Description: "x"})
	assert.ErrorIs(t, err, ErrApproved)

	logs, err := svc.Logs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.ActionApproved, logs[0].Action)
	assert.Equal(t, "Amal Nasser", logs[0].TargetName)
	assert.Equal(t, models.ActionRejected, logs[1].Action)
	assert.Equal(t, "Needs a prescription", logs[1].Details)
}

func TestDeleteAndListAreScopedToSubmitter(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	mine, err := svc.SubmitIndividual(ctx, staff, submission("S-1"))
	require.NoError(t, err)
	theirs, err := svc.SubmitIndividual(ctx, other, submission("S-2"))
	require.NoError(t, err)

	list, err := svc.List(ctx, staff, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)

	list, err = svc.List(ctx, admin, "")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	assert.ErrorIs(t, svc.Delete(ctx, staff, theirs.ID), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, staff, mine.ID))
	require.NoError(t, svc.Delete(ctx, admin, theirs.ID))
	assert.ErrorIs(t, svc.Delete(ctx, admin, theirs.ID), storage.ErrNotFound)
}
