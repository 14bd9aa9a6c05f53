package aggregator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/recipient"
)

const (
	parentID = "11111111-1111-1111-1111-111111111111"
	memberID = "22222222-2222-2222-2222-222222222222"
	childID  = "33333333-3333-3333-3333-333333333333"
	familyID = "44444444-4444-4444-4444-444444444444"
)

func familyMembers() []models.FamilyMember {
	return []models.FamilyMember{
		{ID: parentID, Role: models.RoleParent, FirstName: "Rana", LastName: "Khoury",
			AdditionalMembers: []models.AdditionalMember{{Name: "Mona"}, {Name: "Yusuf"}}},
		{ID: memberID, Role: models.RoleMember, FirstName: "Sami", LastName: "Khoury"},
		{ID: childID, Role: models.RoleChild, FirstName: "Omar", LastName: "Khoury"},
	}
}

func TestAddRejectsDuplicates(t *testing.T) {
	a := New()
	require.NoError(t, a.Add(Entry{Ref: recipient.Individual(parentID)}))
	assert.ErrorIs(t, a.Add(Entry{Ref: recipient.Individual(parentID), Quantity: 3}), ErrDuplicate)

	assert.Equal(t, 1, a.Len())
	e, ok := a.Get(parentID)
	require.True(t, ok)
	assert.Equal(t, 1, e.Quantity)
}

func TestAddRejectsNegativeQuantity(t *testing.T) {
	a := New()
	assert.ErrorIs(t, a.Add(Entry{Ref: recipient.Individual(parentID), Quantity: -1}), ErrInvalidQuantity)
	assert.Zero(t, a.Len())
}

func TestAddFamilyHeadsSkipsPresent(t *testing.T) {
	a := New()
	added, err := a.AddFamily(familyID, familyMembers(), ModeHeads, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.True(t, a.Has(parentID))
	assert.False(t, a.Has(memberID))
	assert.False(t, a.Has(childID))

	added, err = a.AddFamily(familyID, familyMembers(), ModeHeads, 1)
	require.NoError(t, err)
	assert.Zero(t, added)
	assert.Equal(t, 1, a.Len())
}

func TestAddFamilyAll(t *testing.T) {
	a := New()
	require.NoError(t, a.Add(Entry{Ref: recipient.Individual(memberID), Quantity: 4}))

	added, err := a.AddFamily(familyID, familyMembers(), ModeAll, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, added)

	keys := make([]string, 0, a.Len())
	for _, e := range a.Entries() {
		keys = append(keys, e.Key())
	}
	assert.Equal(t, []string{
		memberID,
		parentID,
		childID,
		"additional_" + parentID + "_0",
		"additional_" + parentID + "_1",
	}, keys)

	e, _ := a.Get(memberID)
	assert.Equal(t, 4, e.Quantity)
	child, _ := a.Get(childID)
	assert.Equal(t, recipient.KindChild, child.Ref.Kind)
	assert.Equal(t, familyID, child.Ref.FamilyID)
	assert.Equal(t, 2, child.Quantity)
}

func TestAddFamilyUnknownMode(t *testing.T) {
	_, err := New().AddFamily(familyID, familyMembers(), "everyone", 1)
	assert.Error(t, err)
}

func TestAddWalkInBumpsToken(t *testing.T) {
	a := New()
	now := time.UnixMilli(1712345678901)

	first, err := a.AddWalkIn("", 1, now)
	require.NoError(t, err)
	second, err := a.AddWalkIn("Sara", 2, now)
	require.NoError(t, err)

	assert.Equal(t, "walkin_1712345678901", first.Key())
	assert.Equal(t, "walkin_1712345678902", second.Key())
	assert.Equal(t, recipient.WalkInName, first.Name)
	assert.Equal(t, "Sara", second.Ref.WalkInName)
	assert.Equal(t, 2, a.Len())
}

func TestSetQuantityAndNotes(t *testing.T) {
	a := New()
	require.NoError(t, a.Add(Entry{Ref: recipient.Individual(parentID)}))

	require.NoError(t, a.SetQuantity(parentID, 5))
	assert.ErrorIs(t, a.SetQuantity(parentID, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, a.SetQuantity(memberID, 2), ErrUnknownEntry)
	require.NoError(t, a.SetNotes(parentID, "collected by neighbour"))

	e, _ := a.Get(parentID)
	assert.Equal(t, 5, e.Quantity)
	assert.Equal(t, "collected by neighbour", e.Notes)
}

func TestRemovePurgesSelection(t *testing.T) {
	a := New()
	_, err := a.AddFamily(familyID, familyMembers(), ModeAll, 1)
	require.NoError(t, err)
	require.NoError(t, a.Select(parentID, childID))

	require.NoError(t, a.Remove(parentID))
	assert.False(t, a.IsSelected(parentID))
	assert.Equal(t, []string{childID}, a.Selected())
	assert.ErrorIs(t, a.Remove(parentID), ErrUnknownEntry)
}

func TestRemoveSelected(t *testing.T) {
	a := New()
	_, err := a.AddFamily(familyID, familyMembers(), ModeAll, 1)
	require.NoError(t, err)

	require.NoError(t, a.Select(parentID))
	_, err = a.RemoveSelected()
	assert.ErrorIs(t, err, ErrBulkSelectionTooSmall)
	assert.Equal(t, 5, a.Len())

	a.SelectAdditional()
	assert.Len(t, a.Selected(), 2)
	n, err := a.RemoveSelected()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, a.Len())
	assert.Empty(t, a.Selected())

	// No stale ids survive into later bulk operations.
	a.SelectAll()
	assert.Equal(t, []string{parentID, memberID, childID}, a.Selected())
	for _, key := range a.Selected() {
		_, ok := a.Get(key)
		assert.True(t, ok)
	}
}

func TestSelectHelpers(t *testing.T) {
	a := New()
	_, err := a.AddFamily(familyID, familyMembers(), ModeAll, 1)
	require.NoError(t, err)

	a.SelectChildren()
	assert.Equal(t, []string{childID}, a.Selected())

	a.SelectAll()
	assert.Len(t, a.Selected(), 5)
	a.Deselect(memberID)
	assert.Len(t, a.Selected(), 4)

	a.SelectNone()
	assert.Empty(t, a.Selected())

	assert.ErrorIs(t, a.Select(parentID, "nope"), ErrUnknownEntry)
	assert.Empty(t, a.Selected())
}

func TestAddFamilyRejectsUnknownMode(t *testing.T) {
	a := New()
	_, err := a.AddFamily("fam", familyMembers(), FamilyMode("everyone"), 1)
	assert.ErrorIs(t, err, ErrInvalidMode)
	assert.Zero(t, a.Len())
}
