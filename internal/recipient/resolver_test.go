package recipient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/storage"
)

// fakeDirectory is an in-memory Directory that counts lookups.
type fakeDirectory struct {
	mu          sync.Mutex
	individuals map[string]*models.Individual
	children    map[string]*models.Child
	calls       int
	failWith    error
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		individuals: make(map[string]*models.Individual),
		children:    make(map[string]*models.Child),
	}
}

func (f *fakeDirectory) GetIndividual(_ context.Context, id string) (*models.Individual, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	if ind, ok := f.individuals[id]; ok {
		return ind, nil
	}
	return nil, fmt.Errorf("%w: individual %s", storage.ErrNotFound, id)
}

func (f *fakeDirectory) GetChild(_ context.Context, id string) (*models.Child, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	if c, ok := f.children[id]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: child %s", storage.ErrNotFound, id)
}

func (f *fakeDirectory) lookups() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func seededResolver(t *testing.T) (*Resolver, *fakeDirectory, *models.Individual, *models.Child) {
	t.Helper()
	dir := newFakeDirectory()
	parent := &models.Individual{
		ID:          uuid.New().String(),
		FirstName:   "Huda",
		LastName:    "Saleh",
		DateOfBirth: time.Date(1980, time.June, 16, 0, 0, 0, 0, time.UTC),
		District:    "West",
		FamilyID:    uuid.New().String(),
		AdditionalMembers: []models.AdditionalMember{
			{Name: "Mona Saleh", Relation: "sister", DateOfBirth: "2000-01-01"},
			{Relation: "cousin"},
		},
	}
	child := &models.Child{
		ID:          uuid.New().String(),
		FirstName:   "Omar",
		LastName:    "Saleh",
		DateOfBirth: time.Date(2016, time.June, 15, 0, 0, 0, 0, time.UTC),
		ParentID:    parent.ID,
		FamilyID:    parent.FamilyID,
	}
	dir.individuals[parent.ID] = parent
	dir.children[child.ID] = child
	return NewResolver(dir, WithClock(func() time.Time { return testNow })), dir, parent, child
}

func TestClassifyWalkInPerformsNoLookup(t *testing.T) {
	r, dir, _, _ := seededResolver(t)

	for _, raw := range []string{"walkin_1", "walkin_1712345678901", "walkin_abc"} {
		res := r.Classify(context.Background(), raw)
		assert.Equal(t, KindWalkIn, res.Kind)
		assert.Equal(t, WalkInName, res.Name)
		assert.Equal(t, "Walk-in", res.TypeLabel())
	}
	assert.Zero(t, dir.lookups())

	res := r.Resolve(context.Background(), WalkIn("9", "Sara K."))
	assert.Equal(t, "Sara K.", res.Name)
	assert.Zero(t, dir.lookups())
}

func TestClassifyIndividual(t *testing.T) {
	r, _, parent, _ := seededResolver(t)

	res := r.Classify(context.Background(), parent.ID)
	assert.False(t, res.Unknown)
	assert.Equal(t, KindIndividual, res.Kind)
	assert.Equal(t, "Huda Saleh", res.Name)
	assert.Equal(t, "West", res.District)
	assert.Equal(t, parent.FamilyID, res.FamilyID)
	// Birthday is tomorrow.
	assert.Equal(t, 43, res.Age)
	assert.Equal(t, "Individual", res.TypeLabel())
}

func TestClassifyChildFallsBackFromIndividual(t *testing.T) {
	r, _, parent, child := seededResolver(t)

	res := r.Classify(context.Background(), child.ID)
	assert.False(t, res.Unknown)
	assert.Equal(t, KindChild, res.Kind)
	assert.Equal(t, "Omar Saleh", res.Name)
	assert.Equal(t, 8, res.Age)
	assert.Equal(t, parent.FamilyID, res.FamilyID)
	assert.Equal(t, "Huda Saleh", res.ParentName)
	assert.Equal(t, "West", res.District)
	assert.Equal(t, "Child", res.TypeLabel())
}

func TestClassifyAdditionalMember(t *testing.T) {
	r, _, parent, _ := seededResolver(t)

	res := r.Classify(context.Background(), fmt.Sprintf("additional_%s_0", parent.ID))
	assert.False(t, res.Unknown)
	assert.Equal(t, KindAdditionalMember, res.Kind)
	assert.Equal(t, "Mona Saleh", res.Name)
	assert.Equal(t, "sister", res.Relation)
	assert.Equal(t, "Huda Saleh", res.ParentName)
	assert.Equal(t, 24, res.Age)
	assert.Equal(t, "Additional member", res.TypeLabel())

	nameless := r.Classify(context.Background(), fmt.Sprintf("additional_%s_1", parent.ID))
	assert.False(t, nameless.Unknown)
	assert.Equal(t, UnknownName, nameless.Name)
	assert.Equal(t, -1, nameless.Age)
}

func TestClassifyDegradesToUnknown(t *testing.T) {
	r, _, parent, _ := seededResolver(t)

	tests := []string{
		uuid.New().String(),
		fmt.Sprintf("additional_%s_5", parent.ID),
		fmt.Sprintf("additional_%s_0", uuid.New().String()),
		"additional_garbage",
		"",
	}
	for _, raw := range tests {
		res := r.Classify(context.Background(), raw)
		assert.True(t, res.Unknown, raw)
		assert.Equal(t, UnknownName, res.Name, raw)
		assert.Equal(t, "Unknown", res.TypeLabel(), raw)
	}
}

func TestClassifyDegradesOnLookupError(t *testing.T) {
	r, dir, parent, _ := seededResolver(t)
	dir.failWith = errors.New("connection reset")

	res := r.Classify(context.Background(), parent.ID)
	assert.True(t, res.Unknown)
}

func TestResolveTypedRefsSkipFallback(t *testing.T) {
	r, dir, parent, child := seededResolver(t)

	res := r.Resolve(context.Background(), Child(child.ID, child.FamilyID))
	assert.Equal(t, KindChild, res.Kind)

	before := dir.lookups()
	res = r.Resolve(context.Background(), Individual(child.ID))
	assert.True(t, res.Unknown)
	assert.Equal(t, before+1, dir.lookups())

	res = r.Resolve(context.Background(), Individual(parent.ID))
	assert.False(t, res.Unknown)
}

func TestResolveAllPreservesOrder(t *testing.T) {
	r, _, parent, child := seededResolver(t)

	refs := []Ref{
		WalkIn("1", ""),
		Record(child.ID),
		Record(parent.ID),
		AdditionalMember(parent.ID, 0),
		Record(uuid.New().String()),
	}
	for i := 0; i < 20; i++ {
		refs = append(refs, Record(parent.ID))
	}

	got := r.ResolveAll(context.Background(), refs)
	require.Len(t, got, len(refs))
	assert.Equal(t, KindWalkIn, got[0].Kind)
	assert.Equal(t, KindChild, got[1].Kind)
	assert.Equal(t, KindIndividual, got[2].Kind)
	assert.Equal(t, KindAdditionalMember, got[3].Kind)
	assert.True(t, got[4].Unknown)
	for i, res := range got {
		assert.Equal(t, refs[i], res.Ref)
	}
}

func TestTypedRef(t *testing.T) {
	tests := []struct {
		name string
		res  Resolved
		want Ref
	}{
		{
			name: "record resolved to individual",
			res:  Resolved{Ref: Record("i1"), Kind: KindIndividual},
			want: Individual("i1"),
		},
		{
			name: "record resolved to child",
			res:  Resolved{Ref: Record("c1"), Kind: KindChild, FamilyID: "f1"},
			want: Child("c1", "f1"),
		},
		{
			name: "unknown record unchanged",
			res:  Resolved{Ref: Record("x"), Kind: KindRecord, Unknown: true},
			want: Record("x"),
		},
		{
			name: "typed ref unchanged",
			res:  Resolved{Ref: AdditionalMember("p1", 2), Kind: KindAdditionalMember},
			want: AdditionalMember("p1", 2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.TypedRef())
		})
	}
}
