package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/storage"
	"github.com/mmynk/aidledger/internal/storage/storagetest"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreConformance(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		return newTestStore(t)
	})
}

func TestNewCreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "aidledger.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	store.Close()

	// Reopening runs migrations again against existing tables.
	store, err = New(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	store.Close()
}

func TestCreateDistributionRollsBackOnBadAllocation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	d := &models.Distribution{
		Date:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		AidType:     models.AidMedical,
		Description: "Clinic vouchers",
		Quantity:    2,
		Value:       decimal.NewFromInt(40),
		Status:      models.StatusPlanned,
		Recipients: []models.Allocation{
			{RecipientName: "Walk-in", Quantity: 1, Value: decimal.NewFromInt(20)},
			// Unknown individual violates the foreign key.
			{IndividualID: "00000000-0000-0000-0000-000000000000", Quantity: 1, Value: decimal.NewFromInt(20)},
		},
	}
	if err := store.CreateDistributionTransaction(ctx, d); err == nil {
		t.Fatal("Expected error for unknown individual")
	}

	list, err := store.ListDistributions(ctx, storage.DistributionFilter{})
	if err != nil {
		t.Fatalf("ListDistributions failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("Expected no distributions after rollback, got %d", len(list))
	}
}

func TestCreateDistributionRejectsZeroQuantity(t *testing.T) {
	store := newTestStore(t)

	d := &models.Distribution{
		Date:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		AidType:     models.AidOther,
		Description: "Bad row",
		Quantity:    1,
		Value:       decimal.Zero,
		Status:      models.StatusPlanned,
		Recipients:  []models.Allocation{{RecipientName: "Walk-in", Quantity: 0, Value: decimal.Zero}},
	}
	if err := store.CreateDistributionTransaction(context.Background(), d); err == nil {
		t.Fatal("Expected CHECK constraint failure for zero quantity")
	}
}

func TestRepeatPlaceholder(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{-1, ""},
		{1, ", ?"},
		{3, ", ?, ?, ?"},
	}
	for _, tt := range tests {
		if got := repeatPlaceholder(tt.n); got != tt.want {
			t.Errorf("repeatPlaceholder(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
