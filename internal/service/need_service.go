package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/aidledger/internal/middleware"
	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/storage"
	pb "github.com/mmynk/aidledger/pkg/proto"
	"github.com/mmynk/aidledger/pkg/proto/protoconnect"
)

// NeedService implements the Connect NeedService.
type NeedService struct {
	protoconnect.UnimplementedNeedServiceHandler
	store  storage.NeedStore
	logger *slog.Logger
}

// NewNeedService creates a NeedService.
func NewNeedService(store storage.NeedStore, logger *slog.Logger) *NeedService {
	return &NeedService{store: store, logger: logger}
}

// CreateNeed records a need for an individual. Status defaults to pending.
func (s *NeedService) CreateNeed(ctx context.Context, req *connect.Request[pb.CreateNeedRequest]) (*connect.Response[pb.Need], error) {
	msg := req.Msg
	if err := requireID("individual_id", msg.IndividualId); err != nil {
		return nil, err
	}
	need := &models.Need{
		IndividualID: msg.IndividualId,
		Category:     models.NeedCategory(msg.Category),
		Priority:     models.NeedPriority(msg.Priority),
		Status:       models.NeedStatus(msg.Status),
		Description:  strings.TrimSpace(msg.Description),
		CreatedBy:    middleware.GetUserID(ctx),
	}
	if need.Status == "" {
		need.Status = models.NeedPending
	}
	if err := validateNeedFields(need); err != nil {
		return nil, err
	}

	if err := s.store.CreateNeed(ctx, need); err != nil {
		return nil, toConnectError(s.logger, "CreateNeed", err)
	}
	s.logger.Info("Need created", "need_id", need.ID, "individual_id", need.IndividualID)
	return connect.NewResponse(needToProto(need)), nil
}

// UpdateNeed changes a need. Empty fields keep their current value.
func (s *NeedService) UpdateNeed(ctx context.Context, req *connect.Request[pb.UpdateNeedRequest]) (*connect.Response[pb.Need], error) {
	msg := req.Msg
	if err := requireID("id", msg.Id); err != nil {
		return nil, err
	}
	need, err := s.store.GetNeed(ctx, msg.Id)
	if err != nil {
		return nil, toConnectError(s.logger, "UpdateNeed", err)
	}
	if msg.Category != "" {
		need.Category = models.NeedCategory(msg.Category)
	}
	if msg.Priority != "" {
		need.Priority = models.NeedPriority(msg.Priority)
	}
	if msg.Status != "" {
		need.Status = models.NeedStatus(msg.Status)
	}
	if d := strings.TrimSpace(msg.Description); d != "" {
		need.Description = d
	}
	if err := validateNeedFields(need); err != nil {
		return nil, err
	}

	if err := s.store.UpdateNeed(ctx, need); err != nil {
		return nil, toConnectError(s.logger, "UpdateNeed", err)
	}
	s.logger.Info("Need updated", "need_id", need.ID, "status", need.Status)
	return connect.NewResponse(needToProto(need)), nil
}

// DeleteNeed removes a need. Admin only.
func (s *NeedService) DeleteNeed(ctx context.Context, req *connect.Request[pb.NeedIDRequest]) (*connect.Response[emptypb.Empty], error) {
	if !middleware.IsAdmin(ctx) {
		return nil, connect.NewError(connect.CodePermissionDenied, errPermissionDenied)
	}
	if err := requireID("id", req.Msg.Id); err != nil {
		return nil, err
	}
	if err := s.store.DeleteNeed(ctx, req.Msg.Id); err != nil {
		return nil, toConnectError(s.logger, "DeleteNeed", err)
	}
	s.logger.Info("Need deleted", "need_id", req.Msg.Id, "user_id", middleware.GetUserID(ctx))
	return connect.NewResponse(&emptypb.Empty{}), nil
}

// ListNeeds lists needs, newest first.
func (s *NeedService) ListNeeds(ctx context.Context, req *connect.Request[pb.ListNeedsRequest]) (*connect.Response[pb.ListNeedsResponse], error) {
	filter := storage.NeedFilter{
		IndividualID: req.Msg.IndividualId,
		Status:       models.NeedStatus(req.Msg.Status),
		Category:     models.NeedCategory(req.Msg.Category),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, invalidArgument("unknown need status %q", req.Msg.Status)
	}
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, invalidArgument("unknown need category %q", req.Msg.Category)
	}

	needs, err := s.store.ListNeeds(ctx, filter)
	if err != nil {
		return nil, toConnectError(s.logger, "ListNeeds", err)
	}
	resp := &pb.ListNeedsResponse{Needs: make([]*pb.Need, len(needs))}
	for i, n := range needs {
		resp.Needs[i] = needToProto(n)
	}
	return connect.NewResponse(resp), nil
}

func validateNeedFields(n *models.Need) error {
	switch {
	case !n.Category.Valid():
		return invalidArgument("unknown need category %q", n.Category)
	case !n.Priority.Valid():
		return invalidArgument("unknown need priority %q", n.Priority)
	case !n.Status.Valid():
		return invalidArgument("unknown need status %q", n.Status)
	case n.Description == "":
		return invalidArgument("description is required")
	}
	return nil
}

func needToProto(n *models.Need) *pb.Need {
	return &pb.Need{
		Id:           n.ID,
		IndividualId: n.IndividualID,
		Category:     string(n.Category),
		Priority:     string(n.Priority),
		Status:       string(n.Status),
		Description:  n.Description,
		CreatedBy:    n.CreatedBy,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
}
