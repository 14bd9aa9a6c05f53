package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/aidledger/internal/models"
)

// Totals is a value and quantity pair.
type Totals struct {
	Count    int
	Quantity int
	Value    decimal.Decimal
}

func (t *Totals) add(quantity int, value decimal.Decimal) {
	t.Count++
	t.Quantity += quantity
	t.Value = t.Value.Add(value)
}

// Summary aggregates a set of distributions for reporting.
type Summary struct {
	Distributions int
	Quantity      int
	Value         decimal.Decimal

	ByAidType map[models.AidType]Totals
	ByStatus  map[models.DistributionStatus]Totals

	// Recipients counts distinct registered recipients plus every walk-in row.
	Recipients int
	WalkIns    int
}

// Summarize computes report totals over distributions.
//
// Cancelled distributions are counted by status but excluded from the value,
// quantity, aid type and recipient totals.
func Summarize(distributions []*models.Distribution) Summary {
	s := Summary{
		Value:     decimal.Zero,
		ByAidType: make(map[models.AidType]Totals),
		ByStatus:  make(map[models.DistributionStatus]Totals),
	}
	seen := make(map[string]struct{})

	for _, d := range distributions {
		byStatus := s.ByStatus[d.Status]
		byStatus.add(d.Quantity, d.Value)
		s.ByStatus[d.Status] = byStatus

		if d.Status == models.StatusCancelled {
			continue
		}

		s.Distributions++
		s.Quantity += d.Quantity
		s.Value = s.Value.Add(d.Value)

		byAid := s.ByAidType[d.AidType]
		byAid.add(d.Quantity, d.Value)
		s.ByAidType[d.AidType] = byAid

		for _, a := range d.Recipients {
			if a.IsWalkIn() {
				s.WalkIns++
				continue
			}
			seen[recipientKey(a)] = struct{}{}
		}
	}

	s.Recipients = len(seen) + s.WalkIns
	return s
}

// RecipientTotal is the aid received by one recipient across distributions.
type RecipientTotal struct {
	IndividualID string
	ChildID      string
	Totals
}

// RecipientTotals sums allocations per registered recipient, largest value
// first. Walk-in rows are skipped.
func RecipientTotals(allocations []models.Allocation) []RecipientTotal {
	byKey := make(map[string]*RecipientTotal)
	var order []string
	for _, a := range allocations {
		if a.IsWalkIn() {
			continue
		}
		key := recipientKey(a)
		rt, ok := byKey[key]
		if !ok {
			rt = &RecipientTotal{IndividualID: a.IndividualID, ChildID: a.ChildID, Totals: Totals{Value: decimal.Zero}}
			byKey[key] = rt
			order = append(order, key)
		}
		rt.add(a.Quantity, a.Value)
	}

	out := make([]RecipientTotal, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value.GreaterThan(out[j].Value)
	})
	return out
}

func recipientKey(a models.Allocation) string {
	if a.ChildID != "" {
		return "child:" + a.ChildID
	}
	return "individual:" + a.IndividualID
}
