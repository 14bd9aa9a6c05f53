package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/aidledger/internal/approval"
	"github.com/mmynk/aidledger/internal/middleware"
	"github.com/mmynk/aidledger/internal/models"
	pb "github.com/mmynk/aidledger/pkg/proto"
	"github.com/mmynk/aidledger/pkg/proto/protoconnect"
)

// ApprovalService implements the Connect ApprovalService. Staff submit
// registrations and needs; admins approve or reject them.
type ApprovalService struct {
	protoconnect.UnimplementedApprovalServiceHandler
	approvals *approval.Service
	logger    *slog.Logger
}

// NewApprovalService creates an ApprovalService.
func NewApprovalService(approvals *approval.Service, logger *slog.Logger) *ApprovalService {
	return &ApprovalService{approvals: approvals, logger: logger}
}

func actorFrom(ctx context.Context) approval.Actor {
	return approval.Actor{
		ID:    middleware.GetUserID(ctx),
		Name:  middleware.GetEmail(ctx),
		Admin: middleware.IsAdmin(ctx),
	}
}

// SubmitIndividual queues an individual registration for review.
func (s *ApprovalService) SubmitIndividual(ctx context.Context, req *connect.Request[pb.SubmitIndividualRequest]) (*connect.Response[pb.PendingRequest], error) {
	sub, err := individualSubmissionFromProto(req.Msg.Individual)
	if err != nil {
		return nil, err
	}
	pending, err := s.approvals.SubmitIndividual(ctx, actorFrom(ctx), *sub)
	if err != nil {
		return nil, toConnectError(s.logger, "SubmitIndividual", err)
	}
	return connect.NewResponse(pendingRequestToProto(pending)), nil
}

// SubmitNeed queues a need for review.
func (s *ApprovalService) SubmitNeed(ctx context.Context, req *connect.Request[pb.SubmitNeedRequest]) (*connect.Response[pb.PendingRequest], error) {
	if req.Msg.Need == nil {
		return nil, invalidArgument("need is required")
	}
	pending, err := s.approvals.SubmitNeed(ctx, actorFrom(ctx), needSubmissionFromProto(req.Msg.Need))
	if err != nil {
		return nil, toConnectError(s.logger, "SubmitNeed", err)
	}
	return connect.NewResponse(pendingRequestToProto(pending)), nil
}

// EditSubmission replaces a request's submission and resubmits it.
func (s *ApprovalService) EditSubmission(ctx context.Context, req *connect.Request[pb.EditSubmissionRequest]) (*connect.Response[pb.PendingRequest], error) {
	msg := req.Msg
	if err := requireID("id", msg.Id); err != nil {
		return nil, err
	}
	var (
		individual *models.IndividualSubmission
		need       *models.NeedSubmission
	)
	if msg.Individual != nil {
		sub, err := individualSubmissionFromProto(msg.Individual)
		if err != nil {
			return nil, err
		}
		individual = sub
	}
	if msg.Need != nil {
		n := needSubmissionFromProto(msg.Need)
		need = &n
	}

	pending, err := s.approvals.Edit(ctx, actorFrom(ctx), msg.Id, individual, need)
	if err != nil {
		return nil, toConnectError(s.logger, "EditSubmission", err)
	}
	return connect.NewResponse(pendingRequestToProto(pending)), nil
}

// ApproveRequest creates the records a request describes. Admin only.
func (s *ApprovalService) ApproveRequest(ctx context.Context, req *connect.Request[pb.ReviewRequest]) (*connect.Response[pb.PendingRequest], error) {
	if !middleware.IsAdmin(ctx) {
		return nil, connect.NewError(connect.CodePermissionDenied, errPermissionDenied)
	}
	if err := requireID("id", req.Msg.Id); err != nil {
		return nil, err
	}
	pending, err := s.approvals.Approve(ctx, actorFrom(ctx), req.Msg.Id, req.Msg.Comment)
	if err != nil {
		return nil, toConnectError(s.logger, "ApproveRequest", err)
	}
	return connect.NewResponse(pendingRequestToProto(pending)), nil
}

// RejectRequest closes a request with a comment. Admin only.
func (s *ApprovalService) RejectRequest(ctx context.Context, req *connect.Request[pb.ReviewRequest]) (*connect.Response[pb.PendingRequest], error) {
	if !middleware.IsAdmin(ctx) {
		return nil, connect.NewError(connect.CodePermissionDenied, errPermissionDenied)
	}
	if err := requireID("id", req.Msg.Id); err != nil {
		return nil, err
	}
	pending, err := s.approvals.Reject(ctx, actorFrom(ctx), req.Msg.Id, req.Msg.Comment)
	if err != nil {
		return nil, toConnectError(s.logger, "RejectRequest", err)
	}
	return connect.NewResponse(pendingRequestToProto(pending)), nil
}

// DeleteRequest removes a request. Staff may delete only their own.
func (s *ApprovalService) DeleteRequest(ctx context.Context, req *connect.Request[pb.PendingRequestIDRequest]) (*connect.Response[emptypb.Empty], error) {
	if err := requireID("id", req.Msg.Id); err != nil {
		return nil, err
	}
	if err := s.approvals.Delete(ctx, actorFrom(ctx), req.Msg.Id); err != nil {
		return nil, toConnectError(s.logger, "DeleteRequest", err)
	}
	return connect.NewResponse(&emptypb.Empty{}), nil
}

// ListRequests lists requests. Admins see every request; staff their own.
func (s *ApprovalService) ListRequests(ctx context.Context, req *connect.Request[pb.ListPendingRequestsRequest]) (*connect.Response[pb.ListPendingRequestsResponse], error) {
	status := models.RequestStatus(req.Msg.Status)
	if status != "" && !status.Valid() {
		return nil, invalidArgument("unknown request status %q", req.Msg.Status)
	}
	requests, err := s.approvals.List(ctx, actorFrom(ctx), status)
	if err != nil {
		return nil, toConnectError(s.logger, "ListRequests", err)
	}
	resp := &pb.ListPendingRequestsResponse{Requests: make([]*pb.PendingRequest, len(requests))}
	for i, r := range requests {
		resp.Requests[i] = pendingRequestToProto(r)
	}
	return connect.NewResponse(resp), nil
}

// ListApprovalLogs returns the review audit log. Admin only.
func (s *ApprovalService) ListApprovalLogs(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[pb.ListApprovalLogsResponse], error) {
	if !middleware.IsAdmin(ctx) {
		return nil, connect.NewError(connect.CodePermissionDenied, errPermissionDenied)
	}
	logs, err := s.approvals.Logs(ctx)
	if err != nil {
		return nil, toConnectError(s.logger, "ListApprovalLogs", err)
	}
	resp := &pb.ListApprovalLogsResponse{Logs: make([]*pb.ApprovalLog, len(logs))}
	for i, l := range logs {
		resp.Logs[i] = &pb.ApprovalLog{
			Id:          l.ID,
			Action:      string(l.Action),
			RequestId:   l.RequestID,
			RequestType: string(l.RequestType),
			ActorId:     l.ActorID,
			ActorName:   l.ActorName,
			TargetName:  l.TargetName,
			Details:     l.Details,
			CreatedAt:   l.CreatedAt,
		}
	}
	return connect.NewResponse(resp), nil
}

func individualSubmissionFromProto(msg *pb.IndividualSubmission) (*models.IndividualSubmission, error) {
	if msg == nil || msg.Individual == nil {
		return nil, invalidArgument("individual is required")
	}
	ind, err := individualFromProto(msg.Individual)
	if err != nil {
		return nil, err
	}
	sub := &models.IndividualSubmission{Individual: *ind, NewFamilyName: msg.NewFamilyName}
	for _, c := range msg.Children {
		sub.Children = append(sub.Children, models.ChildSubmission{
			FirstName:   c.GetFirstName(),
			LastName:    c.GetLastName(),
			DateOfBirth: c.GetDateOfBirth(),
			Gender:      c.GetGender(),
			SchoolStage: c.GetSchoolStage(),
		})
	}
	for _, n := range msg.Needs {
		if n != nil {
			sub.Needs = append(sub.Needs, needSubmissionFromProto(n))
		}
	}
	return sub, nil
}

func needSubmissionFromProto(n *pb.NeedSubmission) models.NeedSubmission {
	return models.NeedSubmission{
		IndividualID: n.GetIndividualId(),
		Category:     models.NeedCategory(n.GetCategory()),
		Priority:     models.NeedPriority(n.GetPriority()),
		Description:  n.GetDescription(),
	}
}

func needSubmissionToProto(n models.NeedSubmission) *pb.NeedSubmission {
	return &pb.NeedSubmission{
		IndividualId: n.IndividualID,
		Category:     string(n.Category),
		Priority:     string(n.Priority),
		Description:  n.Description,
	}
}

func pendingRequestToProto(r *models.PendingRequest) *pb.PendingRequest {
	out := &pb.PendingRequest{
		Id:           r.ID,
		Type:         string(r.Type),
		Status:       string(r.Status),
		SubmittedBy:  r.SubmittedBy,
		SubmittedAt:  r.SubmittedAt,
		ReviewedBy:   r.ReviewedBy,
		ReviewedAt:   r.ReviewedAt,
		AdminComment: r.AdminComment,
		Version:      int32(r.Version),
	}
	if r.Need != nil {
		out.Need = needSubmissionToProto(*r.Need)
	}
	if sub := r.Individual; sub != nil {
		ind := individualToProto(&sub.Individual)
		out.Individual = &pb.IndividualSubmission{
			Individual: &pb.CreateIndividualRequest{
				FirstName:         ind.FirstName,
				LastName:          ind.LastName,
				IdNumber:          ind.IdNumber,
				DateOfBirth:       ind.DateOfBirth,
				Gender:            ind.Gender,
				Phone:             ind.Phone,
				District:          ind.District,
				Address:           ind.Address,
				FamilyId:          ind.FamilyId,
				ListStatus:        ind.ListStatus,
				AssistanceTypes:   ind.AssistanceTypes,
				AdditionalMembers: ind.AdditionalMembers,
			},
			NewFamilyName: sub.NewFamilyName,
		}
		for _, c := range sub.Children {
			out.Individual.Children = append(out.Individual.Children, &pb.ChildSubmission{
				FirstName:   c.FirstName,
				LastName:    c.LastName,
				DateOfBirth: c.DateOfBirth,
				Gender:      c.Gender,
				SchoolStage: c.SchoolStage,
			})
		}
		for _, n := range sub.Needs {
			out.Individual.Needs = append(out.Individual.Needs, needSubmissionToProto(n))
		}
	}
	return out
}
