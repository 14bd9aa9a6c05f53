// Package distribution assembles validated, allocated distributions from
// recipient selections.
package distribution

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/aidledger/internal/calculator"
	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/recipient"
)

// RecipientInput is one selected recipient.
type RecipientInput struct {
	Ref      recipient.Ref
	Name     string
	Quantity int
	Notes    string
}

// Request describes a distribution to build.
type Request struct {
	Date        time.Time
	AidType     models.AidType
	Description string

	// Status defaults to in_progress.
	Status models.DistributionStatus

	// Quantity overrides the sum of recipient quantities when positive.
	Quantity int

	// Exactly one of Value and ValuePerUnit must be set.
	Value        decimal.NullDecimal
	ValuePerUnit decimal.NullDecimal

	Recipients []RecipientInput
	CreatedBy  string

	// ForUpdate allows every status; new distributions must start planned
	// or in progress.
	ForUpdate bool
}

// Resolver resolves recipient references.
type Resolver interface {
	ResolveAll(ctx context.Context, refs []recipient.Ref) []recipient.Resolved
}

// Builder validates requests and computes allocations.
type Builder struct {
	resolver  Resolver
	reconcile bool
	logger    *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithReconcile enables the cent-level remainder correction.
func WithReconcile(enabled bool) Option {
	return func(b *Builder) { b.reconcile = enabled }
}

// WithLogger sets the builder's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) { b.logger = logger }
}

// NewBuilder creates a Builder. Reconciliation is on by default.
func NewBuilder(resolver Resolver, opts ...Option) *Builder {
	b := &Builder{resolver: resolver, reconcile: true, logger: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Result is a built distribution plus the resolution of each input.
type Result struct {
	Distribution *models.Distribution
	Resolved     []recipient.Resolved
}

// Build validates req, resolves every recipient, groups them into
// allocation lines and splits the value across those lines.
func (b *Builder) Build(ctx context.Context, req Request) (*Result, error) {
	if req.Status == "" {
		req.Status = models.StatusInProgress
	}
	if verr := validate(req); verr != nil {
		return nil, verr
	}

	refs := make([]recipient.Ref, len(req.Recipients))
	for i, r := range req.Recipients {
		refs[i] = r.Ref
	}
	resolved := b.resolver.ResolveAll(ctx, refs)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	verr := &ValidationError{}
	entries := make([]calculator.Entry, 0, len(req.Recipients))
	for i, r := range req.Recipients {
		res := resolved[i]
		if res.Unknown {
			verr.Add(fmt.Sprintf("recipients[%d]", i), fmt.Sprintf("unknown recipient %s", r.Ref))
			continue
		}
		name := strings.TrimSpace(r.Name)
		if name == "" {
			name = res.Name
		}
		entries = append(entries, calculator.Entry{
			Ref:      res.TypedRef(),
			Name:     name,
			Quantity: r.Quantity,
			Notes:    r.Notes,
		})
	}
	if verr.HasErrors() {
		return nil, verr
	}

	lines, err := calculator.Group(entries)
	if err != nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "recipients", Message: err.Error()}}}
	}

	totalQuantity := calculator.TotalQuantity(lines)
	if req.Quantity > 0 {
		totalQuantity = req.Quantity
	}
	total, err := calculator.CanonicalTotal(req.Value, req.ValuePerUnit, totalQuantity)
	if err != nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "value", Message: err.Error()}}}
	}

	shares := calculator.Allocate(total, totalQuantity, lines)
	if b.reconcile {
		shares = calculator.Reconcile(shares, lines, total, totalQuantity)
	}

	d := &models.Distribution{
		Date:         req.Date,
		AidType:      req.AidType,
		Description:  strings.TrimSpace(req.Description),
		Quantity:     totalQuantity,
		Value:        total,
		ValuePerUnit: req.ValuePerUnit,
		Status:       req.Status,
		CreatedBy:    req.CreatedBy,
		Recipients:   make([]models.Allocation, len(lines)),
	}
	for i, l := range lines {
		d.Recipients[i] = models.Allocation{
			IndividualID:  l.IndividualID,
			ChildID:       l.ChildID,
			RecipientName: l.RecipientName,
			Quantity:      l.Quantity,
			Value:         shares[i],
			Notes:         l.Notes,
		}
	}

	b.logger.Debug("Built distribution",
		"recipients", len(req.Recipients),
		"lines", len(lines),
		"quantity", totalQuantity,
		"value", total.StringFixed(calculator.CurrencyPlaces),
	)
	return &Result{Distribution: d, Resolved: resolved}, nil
}

func validate(req Request) *ValidationError {
	verr := &ValidationError{}

	if strings.TrimSpace(req.Description) == "" {
		verr.Add("description", "is required")
	}
	if req.Date.IsZero() {
		verr.Add("date", "is required")
	}
	if !req.AidType.Valid() {
		verr.Add("aid_type", fmt.Sprintf("unknown aid type %q", req.AidType))
	}
	switch {
	case !req.Status.Valid():
		verr.Add("status", fmt.Sprintf("unknown status %q", req.Status))
	case !req.ForUpdate && req.Status != models.StatusPlanned && req.Status != models.StatusInProgress:
		verr.Add("status", "new distributions must be planned or in_progress")
	}
	if req.Quantity < 0 {
		verr.Add("quantity", "must not be negative")
	}
	switch {
	case req.Value.Valid == req.ValuePerUnit.Valid:
		verr.Add("value", "exactly one of value and value_per_unit must be set")
	case req.Value.Valid && req.Value.Decimal.IsNegative():
		verr.Add("value", "must not be negative")
	case req.ValuePerUnit.Valid && req.ValuePerUnit.Decimal.IsNegative():
		verr.Add("value_per_unit", "must not be negative")
	case req.Value.Valid && !isCents(req.Value.Decimal):
		verr.Add("value", "must have at most 2 decimal places")
	case req.ValuePerUnit.Valid && !isCents(req.ValuePerUnit.Decimal):
		verr.Add("value_per_unit", "must have at most 2 decimal places")
	}
	if len(req.Recipients) == 0 {
		verr.Add("recipients", "at least one recipient is required")
	}
	for i, r := range req.Recipients {
		if r.Quantity < 1 {
			verr.Add(fmt.Sprintf("recipients[%d].quantity", i), "must be at least 1")
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// isCents reports whether d is representable in whole cents, so stored
// totals agree between backends with different numeric precision.
func isCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(calculator.CurrencyPlaces))
}
