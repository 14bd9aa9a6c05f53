package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	pb "github.com/mmynk/aidledger/pkg/proto"
)

func TestNeedLifecycle(t *testing.T) {
	s := setupTestServer(t)
	rana := s.createIndividual(t, "Rana", "Khoury", "North")
	ctx := context.Background()

	created, err := s.Needs.CreateNeed(ctx, staff(&pb.CreateNeedRequest{
		IndividualId: rana.Id,
		Category:     "medical",
		Priority:     "high",
		Description:  "  insulin ",
	}))
	if err != nil {
		t.Fatalf("CreateNeed failed: %v", err)
	}
	need := created.Msg
	if need.Status != "pending" || need.Description != "insulin" || need.CreatedBy != staffID {
		t.Errorf("unexpected need %+v", need)
	}

	updated, err := s.Needs.UpdateNeed(ctx, staff(&pb.UpdateNeedRequest{Id: need.Id, Status: "in_progress"}))
	if err != nil {
		t.Fatalf("UpdateNeed failed: %v", err)
	}
	if updated.Msg.Status != "in_progress" || updated.Msg.Category != "medical" {
		t.Errorf("update should change only the status, got %+v", updated.Msg)
	}

	if _, err := s.Needs.CreateNeed(ctx, staff(&pb.CreateNeedRequest{
		IndividualId: rana.Id, Category: "food", Priority: "low", Description: "rice",
	})); err != nil {
		t.Fatalf("CreateNeed failed: %v", err)
	}

	tests := []struct {
		name string
		req  *pb.ListNeedsRequest
		want int
	}{
		{"all", &pb.ListNeedsRequest{}, 2},
		{"by individual", &pb.ListNeedsRequest{IndividualId: rana.Id}, 2},
		{"by status", &pb.ListNeedsRequest{Status: "in_progress"}, 1},
		{"by category", &pb.ListNeedsRequest{Category: "food"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := s.Needs.ListNeeds(ctx, staff(tt.req))
			if err != nil {
				t.Fatalf("ListNeeds failed: %v", err)
			}
			if len(resp.Msg.Needs) != tt.want {
				t.Errorf("expected %d needs, got %d", tt.want, len(resp.Msg.Needs))
			}
		})
	}

	id := &pb.NeedIDRequest{Id: need.Id}
	_, err = s.Needs.DeleteNeed(ctx, staff(id))
	assertCode(t, err, connect.CodePermissionDenied)
	if _, err := s.Needs.DeleteNeed(ctx, admin(id)); err != nil {
		t.Fatalf("DeleteNeed failed: %v", err)
	}
	_, err = s.Needs.UpdateNeed(ctx, staff(&pb.UpdateNeedRequest{Id: need.Id, Status: "completed"}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestNeedValidation(t *testing.T) {
	s := setupTestServer(t)
	rana := s.createIndividual(t, "Rana", "Khoury", "North")
	ctx := context.Background()

	valid := func() *pb.CreateNeedRequest {
		return &pb.CreateNeedRequest{IndividualId: rana.Id, Category: "food", Priority: "low", Description: "rice"}
	}
	tests := []struct {
		name   string
		mutate func(*pb.CreateNeedRequest)
	}{
		{"missing individual", func(r *pb.CreateNeedRequest) { r.IndividualId = "" }},
		{"bad category", func(r *pb.CreateNeedRequest) { r.Category = "toys" }},
		{"bad priority", func(r *pb.CreateNeedRequest) { r.Priority = "whenever" }},
		{"bad status", func(r *pb.CreateNeedRequest) { r.Status = "done" }},
		{"blank description", func(r *pb.CreateNeedRequest) { r.Description = "  " }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			_, err := s.Needs.CreateNeed(ctx, staff(req))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}

	_, err := s.Needs.ListNeeds(ctx, staff(&pb.ListNeedsRequest{Status: "done"}))
	assertCode(t, err, connect.CodeInvalidArgument)
}
