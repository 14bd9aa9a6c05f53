package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/aidledger/internal/aggregator"
	"github.com/mmynk/aidledger/internal/calculator"
	"github.com/mmynk/aidledger/internal/distribution"
	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/recipient"
	pb "github.com/mmynk/aidledger/pkg/proto"
)

// parseDate parses an optional "YYYY-MM-DD" field.
func parseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, invalidArgument("%s: expected YYYY-MM-DD, got %q", field, s)
	}
	return t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(models.DateLayout)
}

// parseMoney parses an optional decimal string such as "12.50". The empty
// string is an unset value.
func parseMoney(field, s string) (decimal.NullDecimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, invalidArgument("%s: expected a decimal amount, got %q", field, s)
	}
	return decimal.NewNullDecimal(d), nil
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(calculator.CurrencyPlaces)
}

func formatNullMoney(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return formatMoney(d.Decimal)
}

func userToProto(u *models.User) *pb.User {
	return &pb.User{
		Id:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt,
	}
}

func additionalToProto(members []models.AdditionalMember) []*pb.AdditionalMember {
	out := make([]*pb.AdditionalMember, len(members))
	for i, m := range members {
		out[i] = additionalMemberToProto(m)
	}
	return out
}

func additionalMemberToProto(m models.AdditionalMember) *pb.AdditionalMember {
	return &pb.AdditionalMember{
		Name:        m.Name,
		DateOfBirth: m.DateOfBirth,
		Gender:      m.Gender,
		Relation:    m.Relation,
		JobTitle:    m.JobTitle,
		PhoneNumber: m.PhoneNumber,
	}
}

func additionalFromProto(members []*pb.AdditionalMember) []models.AdditionalMember {
	out := make([]models.AdditionalMember, 0, len(members))
	for _, m := range members {
		if m != nil {
			out = append(out, additionalMemberFromProto(m))
		}
	}
	return out
}

func additionalMemberFromProto(m *pb.AdditionalMember) models.AdditionalMember {
	return models.AdditionalMember{
		Name:        strings.TrimSpace(m.GetName()),
		DateOfBirth: m.GetDateOfBirth(),
		Gender:      m.GetGender(),
		Relation:    m.GetRelation(),
		JobTitle:    m.GetJobTitle(),
		PhoneNumber: m.GetPhoneNumber(),
	}
}

func individualToProto(ind *models.Individual) *pb.Individual {
	types := make([]string, len(ind.AssistanceTypes))
	for i, t := range ind.AssistanceTypes {
		types[i] = string(t)
	}
	return &pb.Individual{
		Id:                ind.ID,
		FirstName:         ind.FirstName,
		LastName:          ind.LastName,
		IdNumber:          ind.IDNumber,
		DateOfBirth:       formatDate(ind.DateOfBirth),
		Gender:            ind.Gender,
		Phone:             ind.Phone,
		District:          ind.District,
		Address:           ind.Address,
		FamilyId:          ind.FamilyID,
		ListStatus:        string(ind.ListStatus),
		AssistanceTypes:   types,
		AdditionalMembers: additionalToProto(ind.AdditionalMembers),
		CreatedBy:         ind.CreatedBy,
		CreatedAt:         ind.CreatedAt,
		UpdatedAt:         ind.UpdatedAt,
	}
}

func childToProto(c *models.Child) *pb.Child {
	return &pb.Child{
		Id:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		DateOfBirth: formatDate(c.DateOfBirth),
		Gender:      c.Gender,
		SchoolStage: c.SchoolStage,
		ParentId:    c.ParentID,
		FamilyId:    c.FamilyID,
		CreatedAt:   c.CreatedAt,
	}
}

func familyToProto(f *models.Family) *pb.Family {
	out := &pb.Family{
		Id:               f.ID,
		Name:             f.Name,
		Status:           string(f.Status),
		District:         f.District,
		Phone:            f.Phone,
		Address:          f.Address,
		PrimaryContactId: f.PrimaryContactID,
		CreatedAt:        f.CreatedAt,
	}
	for _, m := range f.Members {
		out.Members = append(out.Members, &pb.FamilyMember{
			Id:                m.ID,
			Role:              string(m.Role),
			FirstName:         m.FirstName,
			LastName:          m.LastName,
			DateOfBirth:       formatDate(m.DateOfBirth),
			District:          m.District,
			AdditionalMembers: additionalToProto(m.AdditionalMembers),
		})
	}
	return out
}

func recipientToProto(r recipient.Resolved) *pb.Recipient {
	out := &pb.Recipient{
		Ref:        r.Ref.String(),
		Type:       r.TypeLabel(),
		Name:       r.Name,
		FamilyId:   r.FamilyID,
		District:   r.District,
		Relation:   r.Relation,
		ParentName: r.ParentName,
		Unknown:    r.Unknown,
	}
	if r.Age >= 0 {
		age := int32(r.Age)
		out.Age = &age
	}
	return out
}

// distributionToProto converts d; resolved, when set, is parallel to d.Recipients.
func distributionToProto(d *models.Distribution, resolved []recipient.Resolved) *pb.Distribution {
	out := &pb.Distribution{
		Id:           d.ID,
		Date:         formatDate(d.Date),
		AidType:      string(d.AidType),
		Description:  d.Description,
		Quantity:     int32(d.Quantity),
		Value:        formatMoney(d.Value),
		ValuePerUnit: formatNullMoney(d.ValuePerUnit),
		Status:       string(d.Status),
		CreatedBy:    d.CreatedBy,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		Recipients:   make([]*pb.Allocation, len(d.Recipients)),
	}
	for i, a := range d.Recipients {
		alloc := &pb.Allocation{
			Id:       a.ID,
			Name:     a.RecipientName,
			Quantity: int32(a.Quantity),
			Value:    formatMoney(a.Value),
			Notes:    a.Notes,
		}
		ref := recipient.FromAllocation(a)
		if !a.IsWalkIn() {
			alloc.Ref = ref.String()
		}
		if i < len(resolved) {
			alloc.Name = resolved[i].Name
			alloc.Type = resolved[i].TypeLabel()
			alloc.District = resolved[i].District
		} else if a.IsWalkIn() {
			alloc.Type = "Walk-in"
		}
		out.Recipients[i] = alloc
	}
	return out
}

func draftToProto(id string, agg *aggregator.Aggregator) *pb.Draft {
	entries := agg.Entries()
	out := &pb.Draft{Id: id, Entries: make([]*pb.DraftEntry, len(entries))}
	for i, e := range entries {
		out.Entries[i] = &pb.DraftEntry{
			Ref:      e.Key(),
			Kind:     e.Ref.Kind.String(),
			Name:     e.Name,
			Quantity: int32(e.Quantity),
			Notes:    e.Notes,
			Selected: agg.IsSelected(e.Key()),
		}
		out.TotalQuantity += int32(e.Quantity)
	}
	return out
}

// buildRequest converts wire input to a builder request.
func buildRequest(in *pb.DistributionInput, recipients []*pb.RecipientInput) (distribution.Request, error) {
	if in == nil {
		return distribution.Request{}, invalidArgument("distribution is required")
	}
	date, err := parseDate("date", in.GetDate())
	if err != nil {
		return distribution.Request{}, err
	}
	value, err := parseMoney("value", in.GetValue())
	if err != nil {
		return distribution.Request{}, err
	}
	perUnit, err := parseMoney("value_per_unit", in.GetValuePerUnit())
	if err != nil {
		return distribution.Request{}, err
	}
	req := distribution.Request{
		Date:         date,
		AidType:      models.AidType(in.GetAidType()),
		Description:  in.GetDescription(),
		Status:       models.DistributionStatus(in.GetStatus()),
		Quantity:     int(in.GetQuantity()),
		Value:        value,
		ValuePerUnit: perUnit,
		Recipients:   make([]distribution.RecipientInput, len(recipients)),
	}
	for i, r := range recipients {
		ref, err := recipient.ParseRef(r.GetRef())
		if err != nil {
			return distribution.Request{}, invalidArgument("recipients[%d]: %v", i, err)
		}
		if ref.IsWalkIn() {
			ref.WalkInName = strings.TrimSpace(r.GetName())
		}
		req.Recipients[i] = distribution.RecipientInput{
			Ref:      ref,
			Name:     r.GetName(),
			Quantity: int(r.GetQuantity()),
			Notes:    r.GetNotes(),
		}
	}
	return req, nil
}

// entriesToRecipients turns draft entries into builder input.
func entriesToRecipients(entries []aggregator.Entry) []distribution.RecipientInput {
	out := make([]distribution.RecipientInput, len(entries))
	for i, e := range entries {
		in := distribution.RecipientInput{Ref: e.Ref, Quantity: e.Quantity, Notes: e.Notes}
		// Registered recipients are named from the registry at build time.
		if e.Ref.IsWalkIn() {
			in.Name = e.Name
		}
		out[i] = in
	}
	return out
}

func requireID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalidArgument("%s is required", field)
	}
	return nil
}
