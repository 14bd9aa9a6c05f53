package distribution

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/recipient"
	"github.com/mmynk/aidledger/internal/storage"
)

const (
	parentID = "11111111-1111-1111-1111-111111111111"
	childID  = "33333333-3333-3333-3333-333333333333"
)

type directory struct{}

func (directory) GetIndividual(_ context.Context, id string) (*models.Individual, error) {
	if id != parentID {
		return nil, fmt.Errorf("%w: individual %s", storage.ErrNotFound, id)
	}
	return &models.Individual{
		ID: parentID, FirstName: "Rana", LastName: "Khoury", FamilyID: "fam",
		AdditionalMembers: []models.AdditionalMember{{Name: "Mona"}},
	}, nil
}

func (directory) GetChild(_ context.Context, id string) (*models.Child, error) {
	if id != childID {
		return nil, fmt.Errorf("%w: child %s", storage.ErrNotFound, id)
	}
	return &models.Child{ID: childID, FirstName: "Omar", ParentID: parentID, FamilyID: "fam"}, nil
}

func newBuilder(opts ...Option) *Builder {
	return NewBuilder(recipient.NewResolver(directory{}), opts...)
}

func baseRequest() Request {
	return Request{
		Date:        time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		AidType:     models.AidFood,
		Description: "Winter baskets",
		Value:       decimal.NewNullDecimal(decimal.NewFromInt(100)),
		Recipients: []RecipientInput{
			{Ref: recipient.Record(parentID), Quantity: 1},
			{Ref: recipient.AdditionalMember(parentID, 0), Quantity: 1},
			{Ref: recipient.Record(childID), Quantity: 1},
			{Ref: recipient.WalkIn("1700000000000", ""), Name: "O'Brien", Quantity: 1},
		},
	}
}

func TestBuild(t *testing.T) {
	res, err := newBuilder().Build(context.Background(), baseRequest())
	require.NoError(t, err)

	d := res.Distribution
	assert.Equal(t, models.StatusInProgress, d.Status)
	assert.Equal(t, 4, d.Quantity)
	assert.True(t, d.Value.Equal(decimal.NewFromInt(100)))
	require.Len(t, d.Recipients, 3)

	assert.Equal(t, parentID, d.Recipients[0].IndividualID)
	assert.Equal(t, 2, d.Recipients[0].Quantity)
	assert.Equal(t, "Includes 1 additional family member(s)", d.Recipients[0].Notes)
	assert.True(t, d.Recipients[0].Value.Equal(decimal.NewFromInt(50)))

	assert.Equal(t, childID, d.Recipients[1].ChildID)
	assert.True(t, d.Recipients[1].Value.Equal(decimal.NewFromInt(25)))

	assert.True(t, d.Recipients[2].IsWalkIn())
	assert.Equal(t, "O'Brien", d.Recipients[2].RecipientName)

	require.Len(t, res.Resolved, 4)
	assert.Equal(t, recipient.KindChild, res.Resolved[2].Kind)
}

func TestBuildReconcilesThirds(t *testing.T) {
	req := baseRequest()
	req.Recipients = req.Recipients[2:]
	req.Recipients = append(req.Recipients, RecipientInput{Ref: recipient.Individual(parentID), Quantity: 1})

	res, err := newBuilder().Build(context.Background(), req)
	require.NoError(t, err)
	sum := decimal.Zero
	for _, a := range res.Distribution.Recipients {
		sum = sum.Add(a.Value)
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(100)), "sum = %s", sum)

	res, err = newBuilder(WithReconcile(false)).Build(context.Background(), req)
	require.NoError(t, err)
	sum = decimal.Zero
	for _, a := range res.Distribution.Recipients {
		sum = sum.Add(a.Value)
	}
	assert.True(t, sum.Equal(decimal.RequireFromString("99.99")), "sum = %s", sum)
}

func TestBuildPerUnitAndOverride(t *testing.T) {
	req := baseRequest()
	req.Value = decimal.NullDecimal{}
	req.ValuePerUnit = decimal.NewNullDecimal(decimal.NewFromInt(10))
	req.Quantity = 10

	res, err := newBuilder().Build(context.Background(), req)
	require.NoError(t, err)
	d := res.Distribution
	assert.Equal(t, 10, d.Quantity)
	assert.True(t, d.Value.Equal(decimal.NewFromInt(100)))
	assert.True(t, d.ValuePerUnit.Valid)
	// 100 / 10 × 2 for the parent line; the override leaves value unallocated.
	assert.True(t, d.Recipients[0].Value.Equal(decimal.NewFromInt(20)))
}

func TestBuildValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		field  string
	}{
		{"missing description", func(r *Request) { r.Description = " " }, "description"},
		{"missing date", func(r *Request) { r.Date = time.Time{} }, "date"},
		{"bad aid type", func(r *Request) { r.AidType = "toys" }, "aid_type"},
		{"completed on create", func(r *Request) { r.Status = models.StatusCompleted }, "status"},
		{"both value modes", func(r *Request) { r.ValuePerUnit = decimal.NewNullDecimal(decimal.NewFromInt(1)) }, "value"},
		{"negative value", func(r *Request) { r.Value = decimal.NewNullDecimal(decimal.NewFromInt(-5)) }, "value"},
		{"sub-cent value", func(r *Request) { r.Value = decimal.NewNullDecimal(decimal.RequireFromString("0.005")) }, "value"},
		{"sub-cent per unit", func(r *Request) {
			r.Value = decimal.NullDecimal{}
			r.ValuePerUnit = decimal.NewNullDecimal(decimal.RequireFromString("0.005"))
		}, "value_per_unit"},
		{"no recipients", func(r *Request) { r.Recipients = nil }, "recipients"},
		{"zero quantity", func(r *Request) { r.Recipients[0].Quantity = 0 }, "recipients[0].quantity"},
		{"unknown record", func(r *Request) { r.Recipients[0].Ref = recipient.Record("nope") }, "recipients[0]"},
		{"missing additional", func(r *Request) { r.Recipients[1].Ref = recipient.AdditionalMember(parentID, 9) }, "recipients[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(&req)
			_, err := newBuilder().Build(context.Background(), req)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "error = %v", err)
			fields := make([]string, len(verr.Fields))
			for i, f := range verr.Fields {
				fields[i] = f.Field
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestBuildAllowsAnyStatusOnUpdate(t *testing.T) {
	req := baseRequest()
	req.Status = models.StatusCompleted
	req.ForUpdate = true
	res, err := newBuilder().Build(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, res.Distribution.Status)
}

func TestBuildZeroValue(t *testing.T) {
	req := baseRequest()
	req.Value = decimal.NewNullDecimal(decimal.Zero)
	res, err := newBuilder().Build(context.Background(), req)
	require.NoError(t, err)
	for _, a := range res.Distribution.Recipients {
		assert.True(t, a.Value.IsZero())
	}
}

func TestBuildAcceptsTrailingZeros(t *testing.T) {
	req := baseRequest()
	req.Value = decimal.NullDecimal{}
	req.ValuePerUnit = decimal.NewNullDecimal(decimal.RequireFromString("2.500"))
	res, err := newBuilder().Build(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "10.00", res.Distribution.Value.StringFixed(2))
}
