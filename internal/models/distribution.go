package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AidType is the kind of aid handed out in a distribution.
type AidType string

const (
	AidFood      AidType = "food"
	AidClothing  AidType = "clothing"
	AidFinancial AidType = "financial"
	AidMedical   AidType = "medical"
	AidEducation AidType = "education"
	AidShelter   AidType = "shelter"
	AidOther     AidType = "other"
)

// AidTypes lists every aid type in display order.
var AidTypes = []AidType{AidFood, AidClothing, AidFinancial, AidMedical, AidEducation, AidShelter, AidOther}

// Valid reports whether t is a known aid type.
func (t AidType) Valid() bool {
	for _, at := range AidTypes {
		if at == t {
			return true
		}
	}
	return false
}

// DistributionStatus is the lifecycle state of a distribution.
type DistributionStatus string

const (
	StatusPlanned    DistributionStatus = "planned"
	StatusInProgress DistributionStatus = "in_progress"
	StatusCompleted  DistributionStatus = "completed"
	StatusCancelled  DistributionStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s DistributionStatus) Valid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Distribution is a single aid-giving event.
type Distribution struct {
	// ID is the unique identifier (UUID format).
	ID string

	// Date is the calendar day of the distribution (UTC midnight).
	Date time.Time

	AidType     AidType
	Description string

	// Quantity is the total number of units. Defaults to the sum of
	// recipient quantities but may be overridden by the caller.
	Quantity int

	// Value is the total monetary value, never negative.
	Value decimal.Decimal

	// ValuePerUnit is set when the caller entered a per-unit value instead
	// of a total. Value is then ValuePerUnit × Quantity.
	ValuePerUnit decimal.NullDecimal

	Status DistributionStatus

	// CreatedBy is the user ID that submitted the distribution.
	CreatedBy string

	CreatedAt int64
	UpdatedAt int64

	// Recipients are the persisted allocation rows.
	Recipients []Allocation
}

// Allocation is one recipient's share of a distribution.
// At most one of IndividualID and ChildID is set; neither means a walk-in.
type Allocation struct {
	ID             string
	DistributionID string

	IndividualID string
	ChildID      string

	// RecipientName is the free-text name of a walk-in recipient.
	RecipientName string

	Quantity int
	Value    decimal.Decimal
	Notes    string
}

// IsWalkIn reports whether the allocation has no registry reference.
func (a Allocation) IsWalkIn() bool {
	return a.IndividualID == "" && a.ChildID == ""
}
