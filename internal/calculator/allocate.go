// Package calculator turns a recipient list and a monetary value into
// per-recipient allocations.
package calculator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// CurrencyPlaces is the number of decimal places money is rounded to.
const CurrencyPlaces = 2

var (
	// ErrValueMode is returned when neither or both of value and value per
	// unit are given.
	ErrValueMode = errors.New("exactly one of value and value per unit must be set")
	// ErrNegativeValue is returned for negative money amounts.
	ErrNegativeValue = errors.New("value must not be negative")
)

var cent = decimal.New(1, -CurrencyPlaces)

// CanonicalTotal returns the total value of a distribution. The caller enters
// either a total value or a value per unit; in per-unit mode the total is
// valuePerUnit × quantity.
func CanonicalTotal(value, valuePerUnit decimal.NullDecimal, quantity int) (decimal.Decimal, error) {
	if value.Valid == valuePerUnit.Valid {
		return decimal.Zero, ErrValueMode
	}
	if value.Valid {
		if value.Decimal.IsNegative() {
			return decimal.Zero, ErrNegativeValue
		}
		return value.Decimal, nil
	}
	if valuePerUnit.Decimal.IsNegative() {
		return decimal.Zero, ErrNegativeValue
	}
	if quantity < 0 {
		return decimal.Zero, fmt.Errorf("quantity must not be negative, got %d", quantity)
	}
	return valuePerUnit.Decimal.Mul(decimal.NewFromInt(int64(quantity))), nil
}

// TotalQuantity sums the quantities of lines.
func TotalQuantity(lines []Line) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}

// Allocate computes each line's share of total.
//
// Algorithm:
//   - value[i] = round(total × qty[i] / totalQuantity, 2), half away from zero
//   - totalQuantity = 0 yields zero for every line
//
// Rounding each share independently can leave the sum a few cents away from
// total; see Reconcile.
func Allocate(total decimal.Decimal, totalQuantity int, lines []Line) []decimal.Decimal {
	shares := make([]decimal.Decimal, len(lines))
	if totalQuantity <= 0 {
		for i := range shares {
			shares[i] = decimal.Zero
		}
		return shares
	}

	divisor := decimal.NewFromInt(int64(totalQuantity))
	for i, l := range lines {
		shares[i] = total.Mul(decimal.NewFromInt(int64(l.Quantity))).DivRound(divisor, CurrencyPlaces)
	}
	return shares
}

// Reconcile corrects rounding drift so that the shares sum to total exactly.
//
// It only applies when the line quantities add up to totalQuantity; with an
// overridden total quantity the shares are not meant to cover total, and
// they are returned unchanged.
//
// Algorithm (largest remainder):
//   - drift = total - Σ shares, in cents
//   - rank lines by exact share minus rounded share
//   - hand out one cent at a time: to the most under-rounded lines when the
//     drift is positive, taken from the most over-rounded lines when negative
func Reconcile(shares []decimal.Decimal, lines []Line, total decimal.Decimal, totalQuantity int) []decimal.Decimal {
	out := make([]decimal.Decimal, len(shares))
	copy(out, shares)
	if totalQuantity <= 0 || len(lines) == 0 || len(lines) != len(shares) || TotalQuantity(lines) != totalQuantity {
		return out
	}

	sum := decimal.Zero
	for _, s := range out {
		sum = sum.Add(s)
	}
	drift := total.Round(CurrencyPlaces).Sub(sum).Div(cent).IntPart()
	if drift == 0 {
		return out
	}

	divisor := decimal.NewFromInt(int64(totalQuantity))
	remainders := make([]decimal.Decimal, len(lines))
	order := make([]int, len(lines))
	for i, l := range lines {
		exact := total.Mul(decimal.NewFromInt(int64(l.Quantity))).Div(divisor)
		remainders[i] = exact.Sub(out[i])
		order[i] = i
	}

	step := cent
	if drift < 0 {
		step = cent.Neg()
		drift = -drift
		// Most over-rounded first.
		sort.SliceStable(order, func(a, b int) bool {
			return remainders[order[a]].LessThan(remainders[order[b]])
		})
	} else {
		sort.SliceStable(order, func(a, b int) bool {
			return remainders[order[a]].GreaterThan(remainders[order[b]])
		})
	}

	// Each share is off by less than half a cent, so the drift never
	// exceeds the number of lines and one pass suffices.
	for n := int64(0); n < drift; n++ {
		i := order[int(n)%len(order)]
		out[i] = out[i].Add(step)
	}
	return out
}
