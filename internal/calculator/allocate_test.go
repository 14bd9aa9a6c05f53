package calculator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

func linesOf(quantities ...int) []Line {
	lines := make([]Line, len(quantities))
	for i, q := range quantities {
		lines[i] = Line{Quantity: q}
	}
	return lines
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name          string
		total         string
		totalQuantity int
		quantities    []int
		want          []string
	}{
		{
			name:          "proportional split",
			total:         "100",
			totalQuantity: 4,
			quantities:    []int{1, 3},
			want:          []string{"25.00", "75.00"},
		},
		{
			name:          "zero quantity yields zeros",
			total:         "0",
			totalQuantity: 0,
			quantities:    []int{1, 2},
			want:          []string{"0", "0"},
		},
		{
			name:          "zero quantity with value yields zeros",
			total:         "50",
			totalQuantity: 0,
			quantities:    []int{1},
			want:          []string{"0"},
		},
		{
			name:          "thirds drift below total",
			total:         "100",
			totalQuantity: 3,
			quantities:    []int{1, 1, 1},
			want:          []string{"33.33", "33.33", "33.33"},
		},
		{
			name:          "half cent rounds up",
			total:         "0.05",
			totalQuantity: 2,
			quantities:    []int{1, 1},
			want:          []string{"0.03", "0.03"},
		},
		{
			name:          "overridden quantity leaves value unallocated",
			total:         "100",
			totalQuantity: 10,
			quantities:    []int{2, 3},
			want:          []string{"20.00", "30.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Allocate(d(tt.total), tt.totalQuantity, linesOf(tt.quantities...))
			if len(got) != len(tt.want) {
				t.Fatalf("Allocate returned %d shares, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if !got[i].Equal(d(tt.want[i])) {
					t.Errorf("share[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAllocateExactSplitSumsToTotal(t *testing.T) {
	lines := linesOf(1, 3)
	shares := Allocate(d("100"), 4, lines)
	if !sum(shares).Equal(d("100")) {
		t.Errorf("sum = %s, want 100", sum(shares))
	}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name          string
		total         string
		totalQuantity int
		quantities    []int
		want          []string
	}{
		{
			name:          "thirds gain one cent",
			total:         "100",
			totalQuantity: 3,
			quantities:    []int{1, 1, 1},
			want:          []string{"33.34", "33.33", "33.33"},
		},
		{
			name:          "over-rounding gives a cent back",
			total:         "0.05",
			totalQuantity: 2,
			quantities:    []int{1, 1},
			want:          []string{"0.02", "0.03"},
		},
		{
			name:          "largest remainder wins",
			total:         "10",
			totalQuantity: 7,
			quantities:    []int{1, 2, 4},
			// exact 1.4285.., 2.8571.., 5.7142..; rounded 1.43, 2.86, 5.71 = 10.00
			want: []string{"1.43", "2.86", "5.71"},
		},
		{
			name:          "sevenths with drift",
			total:         "1",
			totalQuantity: 7,
			quantities:    []int{1, 1, 1, 1, 1, 1, 1},
			want:          []string{"0.15", "0.15", "0.14", "0.14", "0.14", "0.14", "0.14"},
		},
		{
			name:          "overridden quantity is left alone",
			total:         "100",
			totalQuantity: 6,
			quantities:    []int{1, 1},
			want:          []string{"16.67", "16.67"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := linesOf(tt.quantities...)
			shares := Allocate(d(tt.total), tt.totalQuantity, lines)
			got := Reconcile(shares, lines, d(tt.total), tt.totalQuantity)
			for i := range got {
				if !got[i].Equal(d(tt.want[i])) {
					t.Errorf("share[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
			if TotalQuantity(lines) == tt.totalQuantity && !sum(got).Equal(d(tt.total)) {
				t.Errorf("sum = %s, want %s", sum(got), tt.total)
			}
		})
	}
}

func TestReconcileDoesNotMutateInput(t *testing.T) {
	lines := linesOf(1, 1, 1)
	shares := Allocate(d("100"), 3, lines)
	_ = Reconcile(shares, lines, d("100"), 3)
	if !shares[0].Equal(d("33.33")) {
		t.Errorf("input share mutated to %s", shares[0])
	}
}

func TestCanonicalTotal(t *testing.T) {
	some := func(s string) decimal.NullDecimal { return decimal.NewNullDecimal(d(s)) }
	none := decimal.NullDecimal{}

	tests := []struct {
		name         string
		value        decimal.NullDecimal
		valuePerUnit decimal.NullDecimal
		quantity     int
		want         string
		wantErr      error
	}{
		{name: "total mode", value: some("120.50"), valuePerUnit: none, quantity: 3, want: "120.50"},
		{name: "per-unit mode", value: none, valuePerUnit: some("12.25"), quantity: 4, want: "49"},
		{name: "per-unit zero quantity", value: none, valuePerUnit: some("5"), quantity: 0, want: "0"},
		{name: "both set", value: some("1"), valuePerUnit: some("1"), quantity: 1, wantErr: ErrValueMode},
		{name: "neither set", value: none, valuePerUnit: none, quantity: 1, wantErr: ErrValueMode},
		{name: "negative total", value: some("-1"), valuePerUnit: none, quantity: 1, wantErr: ErrNegativeValue},
		{name: "negative per unit", value: none, valuePerUnit: some("-0.5"), quantity: 1, wantErr: ErrNegativeValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanonicalTotal(tt.value, tt.valuePerUnit, tt.quantity)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CanonicalTotal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CanonicalTotal() unexpected error: %v", err)
			}
			if !got.Equal(d(tt.want)) {
				t.Errorf("CanonicalTotal() = %s, want %s", got, tt.want)
			}
		})
	}
}
