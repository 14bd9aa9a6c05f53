package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/aidledger/internal/models"
	pb "github.com/mmynk/aidledger/pkg/proto"
)

func householdSubmission() *pb.IndividualSubmission {
	return &pb.IndividualSubmission{
		Individual: &pb.CreateIndividualRequest{
			FirstName:   "Huda",
			LastName:    "Saleh",
			IdNumber:    "SUB-0001",
			DateOfBirth: "1990-07-01",
			District:    "East",
		},
		NewFamilyName: "Saleh",
		Children: []*pb.ChildSubmission{
			{FirstName: "Adam", DateOfBirth: "2016-02-03"},
		},
		Needs: []*pb.NeedSubmission{
			{Category: "shelter", Priority: "urgent", Description: "roof repair"},
		},
	}
}

func TestApprovalWorkflow(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	submitted, err := s.Approvals.SubmitIndividual(ctx, staff(&pb.SubmitIndividualRequest{Individual: householdSubmission()}))
	if err != nil {
		t.Fatalf("SubmitIndividual failed: %v", err)
	}
	req := submitted.Msg
	if req.Status != "pending" || req.Type != "individual" || req.SubmittedBy != staffID || req.Version != 1 {
		t.Errorf("unexpected pending request %+v", req)
	}
	if len(req.Individual.GetChildren()) != 1 || req.Individual.GetIndividual().GetIdNumber() != "SUB-0001" {
		t.Errorf("submission not echoed back: %+v", req.Individual)
	}

	// Nothing is registered until an admin approves.
	list, err := s.Registry.ListIndividuals(ctx, staff(&pb.ListIndividualsRequest{}))
	if err != nil {
		t.Fatalf("ListIndividuals failed: %v", err)
	}
	if len(list.Msg.Individuals) != 0 {
		t.Fatalf("expected no individuals before approval, got %d", len(list.Msg.Individuals))
	}

	review := &pb.ReviewRequest{Id: req.Id, Comment: "verified"}
	_, err = s.Approvals.ApproveRequest(ctx, staff(review))
	assertCode(t, err, connect.CodePermissionDenied)

	approved, err := s.Approvals.ApproveRequest(ctx, admin(review))
	if err != nil {
		t.Fatalf("ApproveRequest failed: %v", err)
	}
	if approved.Msg.Status != "approved" || approved.Msg.ReviewedBy != adminID || approved.Msg.AdminComment != "verified" {
		t.Errorf("unexpected approved request %+v", approved.Msg)
	}

	list, err = s.Registry.ListIndividuals(ctx, staff(&pb.ListIndividualsRequest{}))
	if err != nil {
		t.Fatalf("ListIndividuals failed: %v", err)
	}
	if len(list.Msg.Individuals) != 1 {
		t.Fatalf("expected the approved individual, got %d", len(list.Msg.Individuals))
	}
	huda := list.Msg.Individuals[0]
	if huda.FamilyId == "" || huda.CreatedBy != staffID {
		t.Errorf("expected a family and the submitter as creator, got %+v", huda)
	}

	family, err := s.Registry.GetFamily(ctx, staff(&pb.GetFamilyRequest{Id: huda.FamilyId}))
	if err != nil {
		t.Fatalf("GetFamily failed: %v", err)
	}
	roles := make(map[string]string)
	for _, m := range family.Msg.Members {
		roles[m.FirstName] = m.Role
	}
	if roles["Huda"] != "parent" || roles["Adam"] != "child" {
		t.Errorf("unexpected family roles %v", roles)
	}

	needs, err := s.Needs.ListNeeds(ctx, staff(&pb.ListNeedsRequest{IndividualId: huda.Id}))
	if err != nil {
		t.Fatalf("ListNeeds failed: %v", err)
	}
	if len(needs.Msg.Needs) != 1 || needs.Msg.Needs[0].Category != "shelter" {
		t.Errorf("expected the submitted need, got %+v", needs.Msg.Needs)
	}

	// Approved requests are closed to review and edits.
	_, err = s.Approvals.RejectRequest(ctx, admin(&pb.ReviewRequest{Id: req.Id, Comment: "late"}))
	assertCode(t, err, connect.CodeFailedPrecondition)
	_, err = s.Approvals.EditSubmission(ctx, staff(&pb.EditSubmissionRequest{Id: req.Id, Individual: householdSubmission()}))
	assertCode(t, err, connect.CodeFailedPrecondition)

	logs, err := s.Approvals.ListApprovalLogs(ctx, admin(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("ListApprovalLogs failed: %v", err)
	}
	if len(logs.Msg.Logs) != 1 || logs.Msg.Logs[0].Action != "approved" || logs.Msg.Logs[0].TargetName != "Huda Saleh" {
		t.Errorf("unexpected approval logs %+v", logs.Msg.Logs)
	}
	_, err = s.Approvals.ListApprovalLogs(ctx, staff(&emptypb.Empty{}))
	assertCode(t, err, connect.CodePermissionDenied)
}

func TestRejectAndResubmit(t *testing.T) {
	s := setupTestServer(t)
	rana := s.createIndividual(t, "Rana", "Khoury", "North")
	ctx := context.Background()

	submitted, err := s.Approvals.SubmitNeed(ctx, staff(&pb.SubmitNeedRequest{Need: &pb.NeedSubmission{
		IndividualId: rana.Id, Category: "food", Priority: "medium", Description: "parcels",
	}}))
	if err != nil {
		t.Fatalf("SubmitNeed failed: %v", err)
	}
	id := submitted.Msg.Id

	_, err = s.Approvals.RejectRequest(ctx, admin(&pb.ReviewRequest{Id: id}))
	assertCode(t, err, connect.CodeInvalidArgument)

	rejected, err := s.Approvals.RejectRequest(ctx, admin(&pb.ReviewRequest{Id: id, Comment: "needs more detail"}))
	if err != nil {
		t.Fatalf("RejectRequest failed: %v", err)
	}
	if rejected.Msg.Status != "rejected" || rejected.Msg.AdminComment != "needs more detail" {
		t.Errorf("unexpected rejected request %+v", rejected.Msg)
	}

	edited, err := s.Approvals.EditSubmission(ctx, staff(&pb.EditSubmissionRequest{Id: id, Need: &pb.NeedSubmission{
		IndividualId: rana.Id, Category: "food", Priority: "high", Description: "parcels for 5 people",
	}}))
	if err != nil {
		t.Fatalf("EditSubmission failed: %v", err)
	}
	if edited.Msg.Status != "pending" || edited.Msg.AdminComment != "" || edited.Msg.Need.GetPriority() != "high" {
		t.Errorf("edit should resubmit the request, got %+v", edited.Msg)
	}

	// Another staff member can neither edit nor see the request.
	other := func(msg *pb.EditSubmissionRequest) *connect.Request[pb.EditSubmissionRequest] {
		return as("staff-2", models.RoleUser, msg)
	}
	_, err = s.Approvals.EditSubmission(ctx, other(&pb.EditSubmissionRequest{Id: id, Need: edited.Msg.Need}))
	assertCode(t, err, connect.CodePermissionDenied)

	mine, err := s.Approvals.ListRequests(ctx, as("staff-2", models.RoleUser, &pb.ListPendingRequestsRequest{}))
	if err != nil {
		t.Fatalf("ListRequests failed: %v", err)
	}
	if len(mine.Msg.Requests) != 0 {
		t.Errorf("expected no requests for another user, got %d", len(mine.Msg.Requests))
	}
	all, err := s.Approvals.ListRequests(ctx, admin(&pb.ListPendingRequestsRequest{Status: "pending"}))
	if err != nil {
		t.Fatalf("ListRequests failed: %v", err)
	}
	if len(all.Msg.Requests) != 1 {
		t.Errorf("expected admin to see 1 pending request, got %d", len(all.Msg.Requests))
	}

	if _, err := s.Approvals.DeleteRequest(ctx, staff(&pb.PendingRequestIDRequest{Id: id})); err != nil {
		t.Fatalf("DeleteRequest failed: %v", err)
	}
	_, err = s.Approvals.ApproveRequest(ctx, admin(&pb.ReviewRequest{Id: id}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestSubmitIndividualErrors(t *testing.T) {
	s := setupTestServer(t)
	existing := s.createIndividual(t, "Rana", "Khoury", "North")
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*pb.IndividualSubmission)
		want   connect.Code
	}{
		{"missing individual", func(sub *pb.IndividualSubmission) { sub.Individual = nil }, connect.CodeInvalidArgument},
		{"children without family", func(sub *pb.IndividualSubmission) { sub.NewFamilyName = "" }, connect.CodeInvalidArgument},
		{"bad need category", func(sub *pb.IndividualSubmission) { sub.Needs[0].Category = "toys" }, connect.CodeInvalidArgument},
		{"registered id number", func(sub *pb.IndividualSubmission) { sub.Individual.IdNumber = existing.IdNumber }, connect.CodeAlreadyExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := householdSubmission()
			tt.mutate(sub)
			_, err := s.Approvals.SubmitIndividual(ctx, staff(&pb.SubmitIndividualRequest{Individual: sub}))
			assertCode(t, err, tt.want)
		})
	}

	_, err := s.Approvals.ListRequests(ctx, staff(&pb.ListPendingRequestsRequest{Status: "archived"}))
	assertCode(t, err, connect.CodeInvalidArgument)
}
