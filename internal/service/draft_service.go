package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/aidledger/internal/aggregator"
	"github.com/mmynk/aidledger/internal/draft"
	"github.com/mmynk/aidledger/internal/middleware"
	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/recipient"
	"github.com/mmynk/aidledger/internal/storage"
	pb "github.com/mmynk/aidledger/pkg/proto"
	"github.com/mmynk/aidledger/pkg/proto/protoconnect"
)

// Actions accepted by SelectRecipients.
const (
	selectAdd        = "add"
	selectRemove     = "remove"
	selectAll        = "all"
	selectNone       = "none"
	selectChildren   = "children"
	selectAdditional = "additional"
)

// DraftService implements the Connect DraftService. Drafts live in memory
// and are scoped to the calling user.
type DraftService struct {
	protoconnect.UnimplementedDraftServiceHandler
	drafts        *draft.Registry
	registry      storage.RegistryStore
	resolver      *recipient.Resolver
	distributions *DistributionService
	now           func() time.Time
	logger        *slog.Logger
}

// NewDraftService creates a DraftService. Submitted drafts are persisted
// through distributions.
func NewDraftService(drafts *draft.Registry, registry storage.RegistryStore, resolver *recipient.Resolver, distributions *DistributionService, logger *slog.Logger) *DraftService {
	return &DraftService{
		drafts:        drafts,
		registry:      registry,
		resolver:      resolver,
		distributions: distributions,
		now:           time.Now,
		logger:        logger,
	}
}

func (s *DraftService) CreateDraft(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[pb.Draft], error) {
	d := s.drafts.Create(middleware.GetUserID(ctx))
	s.logger.Info("Draft created", "draft_id", d.ID, "user_id", d.Owner)
	return connect.NewResponse(&pb.Draft{Id: d.ID, Entries: []*pb.DraftEntry{}}), nil
}

func (s *DraftService) GetDraft(ctx context.Context, req *connect.Request[pb.DraftRequest]) (*connect.Response[pb.Draft], error) {
	var out *pb.Draft
	err := s.drafts.View(req.Msg.DraftId, middleware.GetUserID(ctx), func(agg *aggregator.Aggregator) {
		out = draftToProto(req.Msg.DraftId, agg)
	})
	if err != nil {
		return nil, toConnectError(s.logger, "GetDraft", err)
	}
	return connect.NewResponse(out), nil
}

// AddRecipient adds one registered recipient or walk-in by reference.
func (s *DraftService) AddRecipient(ctx context.Context, req *connect.Request[pb.AddRecipientRequest]) (*connect.Response[pb.Draft], error) {
	ref, err := recipient.ParseRef(req.Msg.Ref)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	// Resolve before taking the draft lock.
	entry := aggregator.Entry{Quantity: int(req.Msg.Quantity), Notes: req.Msg.Notes}
	if ref.IsWalkIn() {
		ref.WalkInName = strings.TrimSpace(req.Msg.Name)
		if ref.WalkInName == "" {
			ref.WalkInName = recipient.WalkInName
		}
		entry.Ref, entry.Name = ref, ref.WalkInName
	} else {
		res := s.resolver.Resolve(ctx, ref)
		if res.Unknown {
			return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("unknown recipient %s", ref))
		}
		entry.Ref, entry.Name = res.TypedRef(), res.Name
	}

	return s.update(ctx, "AddRecipient", req.Msg.DraftId, func(agg *aggregator.Aggregator) (int, error) {
		if err := agg.Add(entry); err != nil {
			return 0, err
		}
		return 1, nil
	})
}

// AddFamily adds the heads of a family, or every member when mode is "all".
func (s *DraftService) AddFamily(ctx context.Context, req *connect.Request[pb.AddFamilyRequest]) (*connect.Response[pb.Draft], error) {
	if err := requireID("familyId", req.Msg.FamilyId); err != nil {
		return nil, err
	}
	mode := aggregator.FamilyMode(req.Msg.Mode)
	if mode == "" {
		mode = aggregator.ModeHeads
	}
	// Looking the family up first distinguishes a missing family from an
	// empty one.
	if _, err := s.registry.GetFamily(ctx, req.Msg.FamilyId); err != nil {
		return nil, toConnectError(s.logger, "AddFamily", err)
	}
	members, err := s.registry.ListFamilyMembers(ctx, req.Msg.FamilyId)
	if err != nil {
		return nil, toConnectError(s.logger, "AddFamily", err)
	}

	return s.update(ctx, "AddFamily", req.Msg.DraftId, func(agg *aggregator.Aggregator) (int, error) {
		return agg.AddFamily(req.Msg.FamilyId, members, mode, int(req.Msg.Quantity))
	})
}

// AddByDistrict adds every individual living in a district.
func (s *DraftService) AddByDistrict(ctx context.Context, req *connect.Request[pb.AddByDistrictRequest]) (*connect.Response[pb.Draft], error) {
	district := strings.TrimSpace(req.Msg.District)
	if district == "" {
		return nil, invalidArgument("district is required")
	}
	return s.addFiltered(ctx, "AddByDistrict", req.Msg.DraftId, storage.IndividualFilter{District: district}, int(req.Msg.Quantity))
}

// AddByAssistanceType adds every individual registered for an assistance type.
func (s *DraftService) AddByAssistanceType(ctx context.Context, req *connect.Request[pb.AddByAssistanceTypeRequest]) (*connect.Response[pb.Draft], error) {
	t := models.AssistanceType(req.Msg.AssistanceType)
	if !t.Valid() {
		return nil, invalidArgument("unknown assistance type %q", req.Msg.AssistanceType)
	}
	return s.addFiltered(ctx, "AddByAssistanceType", req.Msg.DraftId, storage.IndividualFilter{AssistanceType: t}, int(req.Msg.Quantity))
}

func (s *DraftService) addFiltered(ctx context.Context, op, draftID string, filter storage.IndividualFilter, quantity int) (*connect.Response[pb.Draft], error) {
	individuals, err := s.registry.ListIndividuals(ctx, filter)
	if err != nil {
		return nil, toConnectError(s.logger, op, err)
	}
	candidates := make([]aggregator.Candidate, len(individuals))
	for i, ind := range individuals {
		candidates[i] = aggregator.Candidate{Ref: recipient.Individual(ind.ID), Name: ind.FullName()}
	}
	return s.update(ctx, op, draftID, func(agg *aggregator.Aggregator) (int, error) {
		return agg.AddCandidates(candidates, quantity)
	})
}

func (s *DraftService) AddWalkIn(ctx context.Context, req *connect.Request[pb.AddWalkInRequest]) (*connect.Response[pb.Draft], error) {
	return s.update(ctx, "AddWalkIn", req.Msg.DraftId, func(agg *aggregator.Aggregator) (int, error) {
		if _, err := agg.AddWalkIn(strings.TrimSpace(req.Msg.Name), int(req.Msg.Quantity), s.now()); err != nil {
			return 0, err
		}
		return 1, nil
	})
}

func (s *DraftService) SetQuantity(ctx context.Context, req *connect.Request[pb.SetQuantityRequest]) (*connect.Response[pb.Draft], error) {
	return s.update(ctx, "SetQuantity", req.Msg.DraftId, func(agg *aggregator.Aggregator) (int, error) {
		if err := agg.SetQuantity(req.Msg.Ref, int(req.Msg.Quantity)); err != nil {
			return 0, err
		}
		if req.Msg.Notes != nil {
			return 0, agg.SetNotes(req.Msg.Ref, *req.Msg.Notes)
		}
		return 0, nil
	})
}

func (s *DraftService) RemoveRecipient(ctx context.Context, req *connect.Request[pb.RemoveRecipientRequest]) (*connect.Response[pb.Draft], error) {
	return s.update(ctx, "RemoveRecipient", req.Msg.DraftId, func(agg *aggregator.Aggregator) (int, error) {
		return 0, agg.Remove(req.Msg.Ref)
	})
}

// RemoveSelected removes every selected entry. At least two must be selected.
func (s *DraftService) RemoveSelected(ctx context.Context, req *connect.Request[pb.DraftRequest]) (*connect.Response[pb.Draft], error) {
	return s.update(ctx, "RemoveSelected", req.Msg.DraftId, func(agg *aggregator.Aggregator) (int, error) {
		_, err := agg.RemoveSelected()
		return 0, err
	})
}

// SelectRecipients changes the bulk selection of a draft.
func (s *DraftService) SelectRecipients(ctx context.Context, req *connect.Request[pb.SelectRecipientsRequest]) (*connect.Response[pb.Draft], error) {
	var apply func(agg *aggregator.Aggregator) error
	switch req.Msg.Action {
	case selectAdd:
		apply = func(agg *aggregator.Aggregator) error { return agg.Select(req.Msg.Refs...) }
	case selectRemove:
		apply = func(agg *aggregator.Aggregator) error { agg.Deselect(req.Msg.Refs...); return nil }
	case selectAll:
		apply = func(agg *aggregator.Aggregator) error { agg.SelectAll(); return nil }
	case selectNone:
		apply = func(agg *aggregator.Aggregator) error { agg.SelectNone(); return nil }
	case selectChildren:
		apply = func(agg *aggregator.Aggregator) error { agg.SelectChildren(); return nil }
	case selectAdditional:
		apply = func(agg *aggregator.Aggregator) error { agg.SelectAdditional(); return nil }
	default:
		return nil, invalidArgument("unknown selection action %q", req.Msg.Action)
	}
	return s.update(ctx, "SelectRecipients", req.Msg.DraftId, func(agg *aggregator.Aggregator) (int, error) {
		return 0, apply(agg)
	})
}

// SubmitDraft builds and persists a distribution from the draft's entries.
// The draft is discarded on success and kept when the build or write fails.
func (s *DraftService) SubmitDraft(ctx context.Context, req *connect.Request[pb.SubmitDraftRequest]) (*connect.Response[pb.Distribution], error) {
	breq, err := buildRequest(req.Msg.Distribution, nil)
	if err != nil {
		return nil, err
	}

	var created *models.Distribution
	err = s.drafts.Submit(ctx, req.Msg.DraftId, middleware.GetUserID(ctx), func(ctx context.Context, entries []aggregator.Entry) error {
		breq.Recipients = entriesToRecipients(entries)
		d, err := s.distributions.create(ctx, breq)
		if err != nil {
			return err
		}
		created = d
		return nil
	})
	if err != nil {
		return nil, toConnectError(s.logger, "SubmitDraft", err)
	}

	s.logger.Info("Draft submitted", "draft_id", req.Msg.DraftId, "distribution_id", created.ID)
	return connect.NewResponse(s.distributions.describe(ctx, created)), nil
}

func (s *DraftService) DiscardDraft(ctx context.Context, req *connect.Request[pb.DraftRequest]) (*connect.Response[emptypb.Empty], error) {
	if err := s.drafts.Discard(req.Msg.DraftId, middleware.GetUserID(ctx)); err != nil {
		return nil, toConnectError(s.logger, "DiscardDraft", err)
	}
	return connect.NewResponse(&emptypb.Empty{}), nil
}

// update applies fn to a draft and returns its new state. fn reports how
// many entries it added.
func (s *DraftService) update(ctx context.Context, op, draftID string, fn func(*aggregator.Aggregator) (int, error)) (*connect.Response[pb.Draft], error) {
	var out *pb.Draft
	err := s.drafts.Update(draftID, middleware.GetUserID(ctx), func(agg *aggregator.Aggregator) error {
		added, err := fn(agg)
		if err != nil {
			return err
		}
		out = draftToProto(draftID, agg)
		out.Added = int32(added)
		return nil
	})
	if err != nil {
		return nil, toConnectError(s.logger, op, err)
	}
	return connect.NewResponse(out), nil
}
