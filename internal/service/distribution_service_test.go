package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	pb "github.com/mmynk/aidledger/pkg/proto"
)

// money parses a money string from a response, failing the test on garbage.
func money(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid money %q: %v", s, err)
	}
	return d
}

func foodInput(total string) *pb.DistributionInput {
	return &pb.DistributionInput{
		Date:        "2024-03-01",
		AidType:     "food",
		Description: "Ramadan parcels",
		Value:       total,
	}
}

func TestCreateDistribution(t *testing.T) {
	s := setupTestServer(t)
	rana := s.createIndividual(t, "Rana", "Khoury", "North")
	omar := s.createIndividual(t, "Omar", "Haddad", "South")

	resp, err := s.Distributions.CreateDistribution(context.Background(), staff(&pb.CreateDistributionRequest{
		Distribution: foodInput("100"),
		Recipients: []*pb.RecipientInput{
			{Ref: rana.Id, Quantity: 2},
			{Ref: omar.Id, Quantity: 1},
			{Ref: "walkin_1700000000000", Name: "Sara", Quantity: 1},
		},
	}))
	if err != nil {
		t.Fatalf("CreateDistribution failed: %v", err)
	}

	d := resp.Msg
	if d.Id == "" {
		t.Fatal("expected distribution ID")
	}
	if d.Status != "in_progress" {
		t.Errorf("expected default status in_progress, got %q", d.Status)
	}
	if d.CreatedBy != staffID {
		t.Errorf("expected createdBy %q, got %q", staffID, d.CreatedBy)
	}
	if d.Quantity != 4 {
		t.Errorf("expected quantity 4, got %d", d.Quantity)
	}
	if d.Value != "100.00" {
		t.Errorf("expected value 100.00, got %q", d.Value)
	}
	if d.ValuePerUnit != "" {
		t.Errorf("expected no value per unit, got %q", d.ValuePerUnit)
	}
	if len(d.Recipients) != 3 {
		t.Fatalf("expected 3 allocations, got %d", len(d.Recipients))
	}

	want := []struct {
		name  string
		typ   string
		value string
	}{
		{"Rana Khoury", "Individual", "50.00"},
		{"Omar Haddad", "Individual", "25.00"},
		{"Sara", "Walk-in", "25.00"},
	}
	sum := decimal.Zero
	for i, w := range want {
		a := d.Recipients[i]
		if a.Name != w.name || a.Type != w.typ {
			t.Errorf("allocation %d: expected %s (%s), got %s (%s)", i, w.name, w.typ, a.Name, a.Type)
		}
		if a.Value != w.value {
			t.Errorf("allocation %d: expected value %s, got %s", i, w.value, a.Value)
		}
		sum = sum.Add(money(t, a.Value))
	}
	if !sum.Equal(money(t, d.Value)) {
		t.Errorf("allocations sum to %s, distribution value is %s", sum, d.Value)
	}
	if d.Recipients[2].Ref != "" {
		t.Errorf("walk-in allocation should have no ref, got %q", d.Recipients[2].Ref)
	}
}

func TestCreateDistributionValidation(t *testing.T) {
	s := setupTestServer(t)
	rana := s.createIndividual(t, "Rana", "Khoury", "North")

	with := func(change func(*pb.DistributionInput)) *pb.DistributionInput {
		in := foodInput("100")
		change(in)
		return in
	}

	tests := []struct {
		name  string
		input *pb.DistributionInput
		refs  []*pb.RecipientInput
	}{
		{
			name:  "no recipients",
			input: foodInput("100"),
		},
		{
			name:  "missing distribution",
			input: nil,
			refs:  []*pb.RecipientInput{{Ref: rana.Id, Quantity: 1}},
		},
		{
			name:  "unknown recipient",
			input: foodInput("100"),
			refs:  []*pb.RecipientInput{{Ref: "00000000-0000-0000-0000-000000000000", Quantity: 1}},
		},
		{
			name:  "malformed ref",
			input: foodInput("100"),
			refs:  []*pb.RecipientInput{{Ref: "additional_nope", Quantity: 1}},
		},
		{
			name:  "both value and value per unit",
			input: with(func(in *pb.DistributionInput) { in.ValuePerUnit = "5" }),
			refs:  []*pb.RecipientInput{{Ref: rana.Id, Quantity: 1}},
		},
		{
			name:  "malformed value",
			input: with(func(in *pb.DistributionInput) { in.Value = "ten" }),
			refs:  []*pb.RecipientInput{{Ref: rana.Id, Quantity: 1}},
		},
		{
			name:  "sub-cent value",
			input: with(func(in *pb.DistributionInput) { in.Value = "10.005" }),
			refs:  []*pb.RecipientInput{{Ref: rana.Id, Quantity: 1}},
		},
		{
			name:  "completed on create",
			input: with(func(in *pb.DistributionInput) { in.Status = "completed" }),
			refs:  []*pb.RecipientInput{{Ref: rana.Id, Quantity: 1}},
		},
		{
			name:  "bad date",
			input: with(func(in *pb.DistributionInput) { in.Date = "01/03/2024" }),
			refs:  []*pb.RecipientInput{{Ref: rana.Id, Quantity: 1}},
		},
		{
			name:  "zero quantity",
			input: foodInput("100"),
			refs:  []*pb.RecipientInput{{Ref: rana.Id, Quantity: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Distributions.CreateDistribution(context.Background(), staff(&pb.CreateDistributionRequest{
				Distribution: tt.input,
				Recipients:   tt.refs,
			}))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestPreviewDistributionDoesNotPersist(t *testing.T) {
	s := setupTestServer(t)
	rana := s.createIndividual(t, "Rana", "Khoury", "North")

	in := foodInput("")
	in.ValuePerUnit = "12.5"
	resp, err := s.Distributions.PreviewDistribution(context.Background(), staff(&pb.PreviewDistributionRequest{
		Distribution: in,
		Recipients:   []*pb.RecipientInput{{Ref: rana.Id, Quantity: 3}},
	}))
	if err != nil {
		t.Fatalf("PreviewDistribution failed: %v", err)
	}
	if resp.Msg.Value != "37.50" {
		t.Errorf("expected value 37.50, got %s", resp.Msg.Value)
	}
	if resp.Msg.ValuePerUnit != "12.50" {
		t.Errorf("expected value per unit 12.50, got %s", resp.Msg.ValuePerUnit)
	}

	list, err := s.Distributions.ListDistributions(context.Background(), staff(&pb.ListDistributionsRequest{}))
	if err != nil {
		t.Fatalf("ListDistributions failed: %v", err)
	}
	if len(list.Msg.Distributions) != 0 {
		t.Errorf("preview persisted %d distributions", len(list.Msg.Distributions))
	}
}

func TestUpdateDistribution(t *testing.T) {
	s := setupTestServer(t)
	rana := s.createIndividual(t, "Rana", "Khoury", "North")
	omar := s.createIndividual(t, "Omar", "Haddad", "South")
	ctx := context.Background()

	created, err := s.Distributions.CreateDistribution(ctx, staff(&pb.CreateDistributionRequest{
		Distribution: foodInput("100"),
		Recipients:   []*pb.RecipientInput{{Ref: rana.Id, Quantity: 1}},
	}))
	if err != nil {
		t.Fatalf("CreateDistribution failed: %v", err)
	}

	in := foodInput("90")
	in.Status = "completed"
	updated, err := s.Distributions.UpdateDistribution(ctx, admin(&pb.UpdateDistributionRequest{
		Id:           created.Msg.Id,
		Distribution: in,
		Recipients: []*pb.RecipientInput{
			{Ref: rana.Id, Quantity: 1},
			{Ref: omar.Id, Quantity: 2},
		},
	}))
	if err != nil {
		t.Fatalf("UpdateDistribution failed: %v", err)
	}

	d := updated.Msg
	if d.Status != "completed" {
		t.Errorf("expected status completed, got %q", d.Status)
	}
	if d.CreatedBy != staffID {
		t.Errorf("update must keep createdBy %q, got %q", staffID, d.CreatedBy)
	}
	if len(d.Recipients) != 2 {
		t.Fatalf("expected 2 allocations, got %d", len(d.Recipients))
	}
	if d.Recipients[1].Value != "60.00" {
		t.Errorf("expected Omar to receive 60.00, got %s", d.Recipients[1].Value)
	}

	_, err = s.Distributions.UpdateDistribution(ctx, staff(&pb.UpdateDistributionRequest{
		Id:           "00000000-0000-0000-0000-000000000000",
		Distribution: foodInput("10"),
		Recipients:   []*pb.RecipientInput{{Ref: rana.Id, Quantity: 1}},
	}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestUpdateDistributionStatus(t *testing.T) {
	s := setupTestServer(t)
	rana := s.createIndividual(t, "Rana", "Khoury", "North")
	ctx := context.Background()

	created, err := s.Distributions.CreateDistribution(ctx, staff(&pb.CreateDistributionRequest{
		Distribution: foodInput("10"),
		Recipients:   []*pb.RecipientInput{{Ref: rana.Id, Quantity: 1}},
	}))
	if err != nil {
		t.Fatalf("CreateDistribution failed: %v", err)
	}

	resp, err := s.Distributions.UpdateDistributionStatus(ctx, staff(&pb.UpdateDistributionStatusRequest{
		Id:     created.Msg.Id,
		Status: "cancelled",
	}))
	if err != nil {
		t.Fatalf("UpdateDistributionStatus failed: %v", err)
	}
	if resp.Msg.Status != "cancelled" {
		t.Errorf("expected cancelled, got %q", resp.Msg.Status)
	}

	_, err = s.Distributions.UpdateDistributionStatus(ctx, staff(&pb.UpdateDistributionStatusRequest{
		Id:     created.Msg.Id,
		Status: "archived",
	}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestDeleteDistributionRequiresAdmin(t *testing.T) {
	s := setupTestServer(t)
	rana := s.createIndividual(t, "Rana", "Khoury", "North")
	ctx := context.Background()

	created, err := s.Distributions.CreateDistribution(ctx, staff(&pb.CreateDistributionRequest{
		Distribution: foodInput("10"),
		Recipients:   []*pb.RecipientInput{{Ref: rana.Id, Quantity: 1}},
	}))
	if err != nil {
		t.Fatalf("CreateDistribution failed: %v", err)
	}
	id := &pb.DistributionIDRequest{Id: created.Msg.Id}

	_, err = s.Distributions.DeleteDistribution(ctx, staff(id))
	assertCode(t, err, connect.CodePermissionDenied)

	if _, err := s.Distributions.DeleteDistribution(ctx, admin(id)); err != nil {
		t.Fatalf("DeleteDistribution failed: %v", err)
	}

	_, err = s.Distributions.GetDistribution(ctx, staff(id))
	assertCode(t, err, connect.CodeNotFound)
}

func TestListDistributionsFilters(t *testing.T) {
	s := setupTestServer(t)
	rana := s.createIndividual(t, "Rana", "Khoury", "North")
	ctx := context.Background()

	for _, in := range []*pb.DistributionInput{
		{Date: "2024-01-10", AidType: "food", Description: "January food", Value: "10"},
		{Date: "2024-02-10", AidType: "clothing", Description: "Winter coats", Value: "20", Status: "planned"},
		{Date: "2024-03-10", AidType: "food", Description: "March food", Value: "30"},
	} {
		if _, err := s.Distributions.CreateDistribution(ctx, staff(&pb.CreateDistributionRequest{
			Distribution: in,
			Recipients:   []*pb.RecipientInput{{Ref: rana.Id, Quantity: 1}},
		})); err != nil {
			t.Fatalf("CreateDistribution failed: %v", err)
		}
	}

	tests := []struct {
		name string
		req  *pb.ListDistributionsRequest
		want []string
	}{
		{"all newest first", &pb.ListDistributionsRequest{}, []string{"March food", "Winter coats", "January food"}},
		{"by aid type", &pb.ListDistributionsRequest{AidType: "food"}, []string{"March food", "January food"}},
		{"by status", &pb.ListDistributionsRequest{Status: "planned"}, []string{"Winter coats"}},
		{"by date range", &pb.ListDistributionsRequest{From: "2024-02-01", To: "2024-03-10"}, []string{"March food", "Winter coats"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := s.Distributions.ListDistributions(ctx, staff(tt.req))
			if err != nil {
				t.Fatalf("ListDistributions failed: %v", err)
			}
			var got []string
			for _, d := range resp.Msg.Distributions {
				got = append(got, d.Description)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, got)
					break
				}
			}
		})
	}

	_, err := s.Distributions.ListDistributions(ctx, staff(&pb.ListDistributionsRequest{From: "2024-03-01", To: "2024-01-01"}))
	assertCode(t, err, connect.CodeInvalidArgument)
}
