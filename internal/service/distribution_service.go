package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/aidledger/internal/distribution"
	"github.com/mmynk/aidledger/internal/export"
	"github.com/mmynk/aidledger/internal/middleware"
	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/recipient"
	"github.com/mmynk/aidledger/internal/storage"
	pb "github.com/mmynk/aidledger/pkg/proto"
	"github.com/mmynk/aidledger/pkg/proto/protoconnect"
)

// DistributionService implements the Connect DistributionService.
type DistributionService struct {
	protoconnect.UnimplementedDistributionServiceHandler
	store    storage.DistributionStore
	builder  *distribution.Builder
	resolver *recipient.Resolver
	logger   *slog.Logger
}

// NewDistributionService creates a DistributionService.
func NewDistributionService(store storage.DistributionStore, builder *distribution.Builder, resolver *recipient.Resolver, logger *slog.Logger) *DistributionService {
	return &DistributionService{store: store, builder: builder, resolver: resolver, logger: logger}
}

// PreviewDistribution computes allocations without persisting anything.
func (s *DistributionService) PreviewDistribution(ctx context.Context, req *connect.Request[pb.PreviewDistributionRequest]) (*connect.Response[pb.Distribution], error) {
	breq, err := buildRequest(req.Msg.Distribution, req.Msg.Recipients)
	if err != nil {
		return nil, err
	}
	res, err := s.builder.Build(ctx, breq)
	if err != nil {
		return nil, toConnectError(s.logger, "PreviewDistribution", err)
	}
	return connect.NewResponse(s.describe(ctx, res.Distribution)), nil
}

// CreateDistribution builds and persists a distribution in one transaction.
func (s *DistributionService) CreateDistribution(ctx context.Context, req *connect.Request[pb.CreateDistributionRequest]) (*connect.Response[pb.Distribution], error) {
	s.logger.Info("CreateDistribution request received",
		"aid_type", req.Msg.GetDistribution().GetAidType(),
		"recipients_count", len(req.Msg.Recipients),
	)

	breq, err := buildRequest(req.Msg.Distribution, req.Msg.Recipients)
	if err != nil {
		return nil, err
	}
	d, err := s.create(ctx, breq)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(s.describe(ctx, d)), nil
}

// create builds breq and persists the result. It is shared with draft
// submission.
func (s *DistributionService) create(ctx context.Context, breq distribution.Request) (*models.Distribution, error) {
	breq.CreatedBy = middleware.GetUserID(ctx)
	breq.ForUpdate = false

	res, err := s.builder.Build(ctx, breq)
	if err != nil {
		return nil, toConnectError(s.logger, "CreateDistribution", err)
	}
	d := res.Distribution
	if err := s.store.CreateDistributionTransaction(ctx, d); err != nil {
		return nil, toConnectError(s.logger, "CreateDistribution", err)
	}

	s.logger.Info("Distribution created",
		"distribution_id", d.ID,
		"recipients_count", len(d.Recipients),
		"value", d.Value.String(),
	)
	return d, nil
}

// UpdateDistribution rebuilds a distribution and replaces it atomically.
func (s *DistributionService) UpdateDistribution(ctx context.Context, req *connect.Request[pb.UpdateDistributionRequest]) (*connect.Response[pb.Distribution], error) {
	if err := requireID("id", req.Msg.Id); err != nil {
		return nil, err
	}
	s.logger.Info("UpdateDistribution request received", "distribution_id", req.Msg.Id)

	breq, err := buildRequest(req.Msg.Distribution, req.Msg.Recipients)
	if err != nil {
		return nil, err
	}
	breq.ForUpdate = true

	res, err := s.builder.Build(ctx, breq)
	if err != nil {
		return nil, toConnectError(s.logger, "UpdateDistribution", err)
	}
	d := res.Distribution
	d.ID = req.Msg.Id
	if err := s.store.UpdateDistributionTransaction(ctx, d); err != nil {
		return nil, toConnectError(s.logger, "UpdateDistribution", err)
	}

	updated, err := s.store.GetDistribution(ctx, d.ID)
	if err != nil {
		return nil, toConnectError(s.logger, "UpdateDistribution", err)
	}
	s.logger.Info("Distribution updated", "distribution_id", d.ID)
	return connect.NewResponse(s.describe(ctx, updated)), nil
}

// DeleteDistribution removes a distribution and its allocations. Admin only.
func (s *DistributionService) DeleteDistribution(ctx context.Context, req *connect.Request[pb.DistributionIDRequest]) (*connect.Response[emptypb.Empty], error) {
	if !middleware.IsAdmin(ctx) {
		return nil, connect.NewError(connect.CodePermissionDenied, errPermissionDenied)
	}
	if err := requireID("id", req.Msg.Id); err != nil {
		return nil, err
	}
	if err := s.store.DeleteDistribution(ctx, req.Msg.Id); err != nil {
		return nil, toConnectError(s.logger, "DeleteDistribution", err)
	}
	s.logger.Info("Distribution deleted", "distribution_id", req.Msg.Id, "user_id", middleware.GetUserID(ctx))
	return connect.NewResponse(&emptypb.Empty{}), nil
}

// GetDistribution returns a distribution with resolved recipients.
func (s *DistributionService) GetDistribution(ctx context.Context, req *connect.Request[pb.DistributionIDRequest]) (*connect.Response[pb.Distribution], error) {
	if err := requireID("id", req.Msg.Id); err != nil {
		return nil, err
	}
	d, err := s.store.GetDistribution(ctx, req.Msg.Id)
	if err != nil {
		return nil, toConnectError(s.logger, "GetDistribution", err)
	}
	return connect.NewResponse(s.describe(ctx, d)), nil
}

// ListDistributions lists distributions, newest first. Recipients are
// returned unresolved.
func (s *DistributionService) ListDistributions(ctx context.Context, req *connect.Request[pb.ListDistributionsRequest]) (*connect.Response[pb.ListDistributionsResponse], error) {
	filter, err := distributionFilter(req.Msg.From, req.Msg.To)
	if err != nil {
		return nil, err
	}
	filter.AidType = models.AidType(req.Msg.AidType)
	filter.Status = models.DistributionStatus(req.Msg.Status)
	if filter.AidType != "" && !filter.AidType.Valid() {
		return nil, invalidArgument("unknown aid type %q", req.Msg.AidType)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, invalidArgument("unknown status %q", req.Msg.Status)
	}

	distributions, err := s.store.ListDistributions(ctx, filter)
	if err != nil {
		return nil, toConnectError(s.logger, "ListDistributions", err)
	}

	resp := &pb.ListDistributionsResponse{Distributions: make([]*pb.Distribution, len(distributions))}
	for i, d := range distributions {
		resp.Distributions[i] = distributionToProto(d, nil)
	}
	return connect.NewResponse(resp), nil
}

// UpdateDistributionStatus changes only the status of a distribution.
func (s *DistributionService) UpdateDistributionStatus(ctx context.Context, req *connect.Request[pb.UpdateDistributionStatusRequest]) (*connect.Response[pb.Distribution], error) {
	if err := requireID("id", req.Msg.Id); err != nil {
		return nil, err
	}
	status := models.DistributionStatus(req.Msg.Status)
	if !status.Valid() {
		return nil, invalidArgument("unknown status %q", req.Msg.Status)
	}

	if err := s.store.UpdateDistributionStatus(ctx, req.Msg.Id, status); err != nil {
		return nil, toConnectError(s.logger, "UpdateDistributionStatus", err)
	}
	d, err := s.store.GetDistribution(ctx, req.Msg.Id)
	if err != nil {
		return nil, toConnectError(s.logger, "UpdateDistributionStatus", err)
	}
	s.logger.Info("Distribution status updated", "distribution_id", d.ID, "status", status)
	return connect.NewResponse(s.describe(ctx, d)), nil
}

// describe converts d with every allocation resolved for display.
func (s *DistributionService) describe(ctx context.Context, d *models.Distribution) *pb.Distribution {
	return distributionToProto(d, export.Resolve(ctx, s.resolver, d))
}

func distributionFilter(from, to string) (storage.DistributionFilter, error) {
	fromDate, err := parseDate("from", from)
	if err != nil {
		return storage.DistributionFilter{}, err
	}
	toDate, err := parseDate("to", to)
	if err != nil {
		return storage.DistributionFilter{}, err
	}
	if !fromDate.IsZero() && !toDate.IsZero() && toDate.Before(fromDate) {
		return storage.DistributionFilter{}, invalidArgument("to must not be before from")
	}
	return storage.DistributionFilter{From: fromDate, To: toDate}, nil
}
