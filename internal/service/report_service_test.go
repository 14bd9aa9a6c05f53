package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/recipient"
	"github.com/mmynk/aidledger/internal/storage"
	pb "github.com/mmynk/aidledger/pkg/proto"
)

func TestGetSummary(t *testing.T) {
	s := setupTestServer(t)
	rana := s.createIndividual(t, "Rana", "Khoury", "North")
	omar := s.createIndividual(t, "Omar", "Haddad", "South")
	ctx := context.Background()

	create := func(in *pb.DistributionInput, recipients ...*pb.RecipientInput) string {
		t.Helper()
		resp, err := s.Distributions.CreateDistribution(ctx, staff(&pb.CreateDistributionRequest{Distribution: in, Recipients: recipients}))
		if err != nil {
			t.Fatalf("CreateDistribution failed: %v", err)
		}
		return resp.Msg.Id
	}

	create(foodInput("100"), &pb.RecipientInput{Ref: rana.Id, Quantity: 1}, &pb.RecipientInput{Ref: omar.Id, Quantity: 1})
	create(&pb.DistributionInput{Date: "2024-03-05", AidType: "clothing", Description: "Coats", Value: "40"},
		&pb.RecipientInput{Ref: rana.Id, Quantity: 1},
		&pb.RecipientInput{Ref: "walkin_1", Name: "Sara", Quantity: 1})
	cancelled := create(foodInput("500"), &pb.RecipientInput{Ref: omar.Id, Quantity: 1})
	if _, err := s.Distributions.UpdateDistributionStatus(ctx, staff(&pb.UpdateDistributionStatusRequest{Id: cancelled, Status: "cancelled"})); err != nil {
		t.Fatalf("UpdateDistributionStatus failed: %v", err)
	}

	resp, err := s.Reports.GetSummary(ctx, staff(&pb.GetSummaryRequest{}))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	sum := resp.Msg

	if sum.Distributions != 2 {
		t.Errorf("expected 2 counted distributions, got %d", sum.Distributions)
	}
	if sum.Value != "140.00" {
		t.Errorf("expected value 140.00, got %s", sum.Value)
	}
	if sum.Recipients != 3 || sum.WalkIns != 1 {
		t.Errorf("expected 3 recipients with 1 walk-in, got %d and %d", sum.Recipients, sum.WalkIns)
	}
	if len(sum.ByAidType) != 2 || sum.ByAidType[0].Key != "food" {
		t.Errorf("expected food bucket first, got %+v", sum.ByAidType)
	}
	statuses := make(map[string]int32)
	for _, b := range sum.ByStatus {
		statuses[b.Key] = b.Count
	}
	if statuses["cancelled"] != 1 || statuses["in_progress"] != 2 {
		t.Errorf("unexpected status buckets %v", statuses)
	}

	// Omar's only counted share is 50; Rana has 50 + 20.
	if len(sum.TopRecipients) != 2 {
		t.Fatalf("expected 2 top recipients, got %+v", sum.TopRecipients)
	}
	first := sum.TopRecipients[0]
	if first.Ref != rana.Id || first.Name != "Rana Khoury" || first.Count != 2 || first.Value != "70.00" {
		t.Errorf("unexpected first top recipient %+v", first)
	}
	if second := sum.TopRecipients[1]; second.Ref != omar.Id || second.Value != "50.00" {
		t.Errorf("unexpected second top recipient %+v", second)
	}

	resp, err = s.Reports.GetSummary(ctx, staff(&pb.GetSummaryRequest{Top: 1}))
	if err != nil {
		t.Fatalf("GetSummary with top failed: %v", err)
	}
	if len(resp.Msg.TopRecipients) != 1 {
		t.Errorf("expected 1 top recipient, got %d", len(resp.Msg.TopRecipients))
	}

	resp, err = s.Reports.GetSummary(ctx, staff(&pb.GetSummaryRequest{From: "2024-03-02"}))
	if err != nil {
		t.Fatalf("GetSummary with range failed: %v", err)
	}
	if resp.Msg.Distributions != 1 || resp.Msg.ByAidType[0].Key != "clothing" {
		t.Errorf("expected only the clothing distribution, got %+v", resp.Msg)
	}
}

func TestGetRecipientHistory(t *testing.T) {
	s := setupTestServer(t)
	rana := s.createIndividual(t, "Rana", "Khoury", "North")
	ctx := context.Background()

	for _, in := range []*pb.DistributionInput{
		{Date: "2024-01-10", AidType: "food", Description: "January food", Value: "10"},
		{Date: "2024-02-10", AidType: "clothing", Description: "Winter coats", Value: "25.50"},
	} {
		if _, err := s.Distributions.CreateDistribution(ctx, staff(&pb.CreateDistributionRequest{
			Distribution: in,
			Recipients:   []*pb.RecipientInput{{Ref: rana.Id, Quantity: 1}},
		})); err != nil {
			t.Fatalf("CreateDistribution failed: %v", err)
		}
	}

	resp, err := s.Reports.GetRecipientHistory(ctx, staff(&pb.GetRecipientHistoryRequest{IndividualId: rana.Id}))
	if err != nil {
		t.Fatalf("GetRecipientHistory failed: %v", err)
	}
	h := resp.Msg
	if h.Name != "Rana Khoury" {
		t.Errorf("expected name Rana Khoury, got %q", h.Name)
	}
	if len(h.Entries) != 2 || h.Entries[0].Description != "Winter coats" {
		t.Fatalf("expected newest entry first, got %+v", h.Entries)
	}
	if h.Quantity != 2 || h.Value != "35.50" {
		t.Errorf("expected totals 2 / 35.50, got %d / %s", h.Quantity, h.Value)
	}

	_, err = s.Reports.GetRecipientHistory(ctx, staff(&pb.GetRecipientHistoryRequest{IndividualId: "00000000-0000-0000-0000-000000000000"}))
	assertCode(t, err, connect.CodeNotFound)
}

// hidingDirectory reports one individual as missing, as if it had been
// removed from the registry after a distribution.
type hidingDirectory struct {
	recipient.Directory
	hidden string
}

func (d hidingDirectory) GetIndividual(ctx context.Context, id string) (*models.Individual, error) {
	if id == d.hidden {
		return nil, storage.ErrNotFound
	}
	return d.Directory.GetIndividual(ctx, id)
}

func TestTopRecipientsReportsMissingIndividualAsUnknown(t *testing.T) {
	s := setupTestServer(t)
	rana := s.createIndividual(t, "Rana", "Khoury", "North")
	const gone = "00000000-0000-0000-0000-00000000dead"

	resolver := recipient.NewResolver(hidingDirectory{Directory: s.Store, hidden: gone}, recipient.WithLogger(discardLogger()))
	svc := NewReportService(s.Store, s.Store, resolver, discardLogger())

	distributions := []*models.Distribution{{
		Status: models.StatusCompleted,
		Recipients: []models.Allocation{
			{IndividualID: gone, Quantity: 2, Value: decimal.NewFromInt(80)},
			{IndividualID: rana.Id, Quantity: 1, Value: decimal.NewFromInt(20)},
		},
	}}

	top := svc.topRecipients(context.Background(), distributions, 10)
	if len(top) != 2 {
		t.Fatalf("expected 2 top recipients, got %d", len(top))
	}
	if top[0].Ref != gone || top[0].Name != "Unknown" || top[0].Type != "Unknown" || top[0].Value != "80.00" {
		t.Errorf("expected missing individual as Unknown, got %+v", top[0])
	}
	if top[1].Name != "Rana Khoury" || top[1].Type != "Individual" {
		t.Errorf("unexpected second top recipient %+v", top[1])
	}
}
