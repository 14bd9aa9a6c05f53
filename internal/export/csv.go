// Package export renders distributions and registry listings as CSV.
//
// Every cell is wrapped in double quotes with embedded quotes doubled, and
// rows are separated by a single "\n" with no trailing newline. Spreadsheet
// downloads prepend a BOM so that non-ASCII names open correctly.
package export

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/aidledger/internal/calculator"
	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/recipient"
)

// BOM is the UTF-8 byte order mark.
const BOM = "\ufeff"

// ContentType is the media type of CSV downloads.
const ContentType = "text/csv; charset=utf-8"

// DistributionHeader is the header row of a distribution export.
var DistributionHeader = []string{"Name", "Reference", "District", "Type", "Quantity", "Value", "Notes"}

// IndividualHeader is the header row of an individuals export.
var IndividualHeader = []string{
	"First Name", "Last Name", "ID Number", "Date of Birth", "Gender", "Phone",
	"District", "Address", "List Status", "Assistance Types", "Additional Members",
}

// Row is one recipient line of a distribution export.
type Row struct {
	Name      string
	Reference string
	District  string
	Type      string
	Quantity  int
	Value     decimal.Decimal
	Notes     string
}

// Resolver resolves recipient references for display.
type Resolver interface {
	ResolveAll(ctx context.Context, refs []recipient.Ref) []recipient.Resolved
}

// Resolve resolves every allocation of d, in order.
func Resolve(ctx context.Context, resolver Resolver, d *models.Distribution) []recipient.Resolved {
	refs := make([]recipient.Ref, len(d.Recipients))
	for i, a := range d.Recipients {
		refs[i] = recipient.FromAllocation(a)
	}
	return resolver.ResolveAll(ctx, refs)
}

// WriteDistribution resolves d's recipients and writes its CSV to w.
func WriteDistribution(ctx context.Context, w io.Writer, resolver Resolver, d *models.Distribution) error {
	rows, err := DistributionRows(d, Resolve(ctx, resolver, d))
	if err != nil {
		return err
	}
	return WriteDistributionCSV(w, rows)
}

// DistributionRows pairs each allocation of d with its resolution.
// resolved must be parallel to d.Recipients.
func DistributionRows(d *models.Distribution, resolved []recipient.Resolved) ([]Row, error) {
	if len(resolved) != len(d.Recipients) {
		return nil, fmt.Errorf("resolved %d recipients for %d allocations", len(resolved), len(d.Recipients))
	}
	rows := make([]Row, len(d.Recipients))
	for i, a := range d.Recipients {
		res := resolved[i]
		row := Row{
			Name:     res.Name,
			District: res.District,
			Type:     res.TypeLabel(),
			Quantity: a.Quantity,
			Value:    a.Value,
			Notes:    a.Notes,
		}
		if !a.IsWalkIn() {
			row.Reference = res.Ref.String()
		}
		rows[i] = row
	}
	return rows, nil
}

// WriteDistributionCSV writes the header and one line per row.
func WriteDistributionCSV(w io.Writer, rows []Row) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, DistributionHeader)
	for _, r := range rows {
		records = append(records, []string{
			r.Name,
			r.Reference,
			r.District,
			r.Type,
			strconv.Itoa(r.Quantity),
			r.Value.StringFixed(calculator.CurrencyPlaces),
			r.Notes,
		})
	}
	return writeQuoted(w, records)
}

// WriteIndividualsCSV writes a registry listing.
func WriteIndividualsCSV(w io.Writer, individuals []*models.Individual) error {
	records := make([][]string, 0, len(individuals)+1)
	records = append(records, IndividualHeader)
	for _, ind := range individuals {
		types := make([]string, len(ind.AssistanceTypes))
		for i, t := range ind.AssistanceTypes {
			types[i] = string(t)
		}
		members := make([]string, len(ind.AdditionalMembers))
		for i, m := range ind.AdditionalMembers {
			members[i] = m.Name
			if m.Relation != "" {
				members[i] += " (" + m.Relation + ")"
			}
		}
		dob := ""
		if !ind.DateOfBirth.IsZero() {
			dob = ind.DateOfBirth.Format(models.DateLayout)
		}
		records = append(records, []string{
			ind.FirstName,
			ind.LastName,
			ind.IDNumber,
			dob,
			ind.Gender,
			ind.Phone,
			ind.District,
			ind.Address,
			string(ind.ListStatus),
			strings.Join(types, "; "),
			strings.Join(members, "; "),
		})
	}
	return writeQuoted(w, records)
}

func writeQuoted(w io.Writer, records [][]string) error {
	var b strings.Builder
	for i, record := range records {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range record {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			b.WriteByte('"')
		}
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
