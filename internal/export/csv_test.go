package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/recipient"
)

const individualID = "11111111-1111-1111-1111-111111111111"

func testDistribution() (*models.Distribution, []recipient.Resolved) {
	d := &models.Distribution{
		Recipients: []models.Allocation{
			{IndividualID: individualID, Quantity: 2, Value: decimal.NewFromInt(50), Notes: "Includes 1 additional family member(s)"},
			{RecipientName: `Sean "Jr" O'Brien`, Quantity: 1, Value: decimal.RequireFromString("25.5")},
		},
	}
	resolved := []recipient.Resolved{
		{Ref: recipient.Individual(individualID), Kind: recipient.KindIndividual, Name: "Rana Khoury", District: "North"},
		{Ref: recipient.WalkIn("", `Sean "Jr" O'Brien`), Kind: recipient.KindWalkIn, Name: `Sean "Jr" O'Brien`},
	}
	return d, resolved
}

func TestWriteDistributionCSV(t *testing.T) {
	d, resolved := testDistribution()
	rows, err := DistributionRows(d, resolved)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDistributionCSV(&buf, rows))

	want := strings.Join([]string{
		`"Name","Reference","District","Type","Quantity","Value","Notes"`,
		`"Rana Khoury","` + individualID + `","North","Individual","2","50.00","Includes 1 additional family member(s)"`,
		`"Sean ""Jr"" O'Brien","","","Walk-in","1","25.50",""`,
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteDistributionCSVIsReadable(t *testing.T) {
	d, resolved := testDistribution()
	rows, err := DistributionRows(d, resolved)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDistributionCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, `Sean "Jr" O'Brien`, records[2][0])
}

func TestDistributionRowsLengthMismatch(t *testing.T) {
	d, resolved := testDistribution()
	_, err := DistributionRows(d, resolved[:1])
	assert.Error(t, err)
}

func TestWriteIndividualsCSV(t *testing.T) {
	individuals := []*models.Individual{{
		FirstName:       "Rana",
		LastName:        "Khoury",
		IDNumber:        "123",
		DateOfBirth:     time.Date(1985, time.March, 2, 0, 0, 0, 0, time.UTC),
		District:        "North",
		ListStatus:      models.ListWhitelist,
		AssistanceTypes: []models.AssistanceType{models.AssistanceFood, models.AssistanceMedical},
		AdditionalMembers: []models.AdditionalMember{
			{Name: "Mona", Relation: "mother"},
			{Name: "Ali"},
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteIndividualsCSV(&buf, individuals))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		`"Rana","Khoury","123","1985-03-02","","","North","","whitelist","food_assistance; medical_help","Mona (mother); Ali"`,
		lines[1])
}

type stubResolver map[string]recipient.Resolved

func (s stubResolver) ResolveAll(_ context.Context, refs []recipient.Ref) []recipient.Resolved {
	out := make([]recipient.Resolved, len(refs))
	for i, ref := range refs {
		if res, ok := s[ref.Key()]; ok {
			out[i] = res
			continue
		}
		out[i] = recipient.Resolved{Ref: ref, Kind: ref.Kind, Name: ref.WalkInName}
	}
	return out
}

func TestWriteDistributionResolvesAllocations(t *testing.T) {
	d, resolved := testDistribution()
	resolver := stubResolver{individualID: resolved[0]}

	var buf bytes.Buffer
	require.NoError(t, WriteDistribution(context.Background(), &buf, resolver, d))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], `"Rana Khoury","`+individualID+`","North","Individual"`))
	assert.True(t, strings.HasPrefix(lines[2], `"Sean ""Jr"" O'Brien","","","Walk-in"`))
}
