package calculator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/recipient"
)

const (
	parent = "11111111-1111-1111-1111-111111111111"
	other  = "22222222-2222-2222-2222-222222222222"
	child  = "33333333-3333-3333-3333-333333333333"
)

func TestGroup(t *testing.T) {
	entries := []Entry{
		{Ref: recipient.AdditionalMember(other, 0), Quantity: 1},
		{Ref: recipient.Individual(parent), Quantity: 2, Notes: "picked up by son"},
		{Ref: recipient.WalkIn("1", "O'Brien"), Quantity: 1},
		{Ref: recipient.AdditionalMember(parent, 0), Quantity: 1},
		{Ref: recipient.Child(child, ""), Quantity: 1},
		{Ref: recipient.AdditionalMember(parent, 1), Quantity: 3},
		{Ref: recipient.WalkIn("2", ""), Quantity: 2},
		{Ref: recipient.Child(child, ""), Quantity: 1},
	}

	lines, err := Group(entries)
	if err != nil {
		t.Fatalf("Group failed: %v", err)
	}

	want := []Line{
		{IndividualID: other, Quantity: 1, Bundled: 1, Notes: "Includes 1 additional family member(s)"},
		{IndividualID: parent, Quantity: 6, Bundled: 2, Notes: "picked up by son; Includes 2 additional family member(s)"},
		{RecipientName: "O'Brien", Quantity: 1},
		{ChildID: child, Quantity: 2},
		{RecipientName: "Walk-in", Quantity: 2},
	}
	if len(lines) != len(want) {
		t.Fatalf("Group returned %d lines, want %d: %+v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line[%d] = %+v, want %+v", i, lines[i], want[i])
		}
	}

	if got := TotalQuantity(lines); got != 12 {
		t.Errorf("TotalQuantity = %d, want 12", got)
	}
}

func TestGroupRejectsUnresolvedAndZeroQuantity(t *testing.T) {
	_, err := Group([]Entry{{Ref: recipient.Record(parent), Quantity: 1}})
	if !errors.Is(err, ErrUnresolvedRef) {
		t.Errorf("Group(record) error = %v, want ErrUnresolvedRef", err)
	}

	_, err = Group([]Entry{{Ref: recipient.Individual(parent), Quantity: 0}})
	if err == nil {
		t.Error("Group(quantity 0) expected error")
	}
}

func TestSummarize(t *testing.T) {
	dists := []*models.Distribution{
		{
			AidType: models.AidFood, Status: models.StatusCompleted, Quantity: 4, Value: decimal.NewFromInt(100),
			Recipients: []models.Allocation{
				{IndividualID: parent, Quantity: 1, Value: decimal.NewFromInt(25)},
				{RecipientName: "Walk-in", Quantity: 3, Value: decimal.NewFromInt(75)},
			},
		},
		{
			AidType: models.AidFood, Status: models.StatusInProgress, Quantity: 2, Value: decimal.NewFromInt(40),
			Recipients: []models.Allocation{
				{IndividualID: parent, Quantity: 1, Value: decimal.NewFromInt(20)},
				{ChildID: child, Quantity: 1, Value: decimal.NewFromInt(20)},
			},
		},
		{
			AidType: models.AidClothing, Status: models.StatusCancelled, Quantity: 9, Value: decimal.NewFromInt(900),
			Recipients: []models.Allocation{{IndividualID: other, Quantity: 9, Value: decimal.NewFromInt(900)}},
		},
	}

	s := Summarize(dists)
	if s.Distributions != 2 {
		t.Errorf("Distributions = %d, want 2", s.Distributions)
	}
	if !s.Value.Equal(decimal.NewFromInt(140)) {
		t.Errorf("Value = %s, want 140", s.Value)
	}
	if s.Quantity != 6 {
		t.Errorf("Quantity = %d, want 6", s.Quantity)
	}
	if s.Recipients != 3 || s.WalkIns != 1 {
		t.Errorf("Recipients = %d, WalkIns = %d, want 3 and 1", s.Recipients, s.WalkIns)
	}
	if food := s.ByAidType[models.AidFood]; food.Count != 2 || !food.Value.Equal(decimal.NewFromInt(140)) {
		t.Errorf("ByAidType[food] = %+v", food)
	}
	if _, ok := s.ByAidType[models.AidClothing]; ok {
		t.Error("cancelled distribution counted by aid type")
	}
	if cancelled := s.ByStatus[models.StatusCancelled]; cancelled.Count != 1 {
		t.Errorf("ByStatus[cancelled] = %+v", cancelled)
	}
}

func TestRecipientTotals(t *testing.T) {
	allocations := []models.Allocation{
		{IndividualID: parent, Quantity: 1, Value: decimal.NewFromInt(10)},
		{ChildID: child, Quantity: 2, Value: decimal.NewFromInt(50)},
		{IndividualID: parent, Quantity: 3, Value: decimal.NewFromInt(15)},
		{RecipientName: "Walk-in", Quantity: 1, Value: decimal.NewFromInt(99)},
	}

	totals := RecipientTotals(allocations)
	if len(totals) != 2 {
		t.Fatalf("RecipientTotals returned %d rows, want 2", len(totals))
	}
	if totals[0].ChildID != child || !totals[0].Value.Equal(decimal.NewFromInt(50)) {
		t.Errorf("totals[0] = %+v", totals[0])
	}
	if totals[1].IndividualID != parent || totals[1].Quantity != 4 || totals[1].Count != 2 {
		t.Errorf("totals[1] = %+v", totals[1])
	}
}
