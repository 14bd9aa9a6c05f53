package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/aidledger/internal/aggregator"
	"github.com/mmynk/aidledger/internal/middleware"
	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/recipient"
	"github.com/mmynk/aidledger/internal/search"
	"github.com/mmynk/aidledger/internal/storage"
	pb "github.com/mmynk/aidledger/pkg/proto"
	"github.com/mmynk/aidledger/pkg/proto/protoconnect"
)

// RegistryService implements the Connect RegistryService.
type RegistryService struct {
	protoconnect.UnimplementedRegistryServiceHandler
	store    storage.RegistryStore
	resolver *recipient.Resolver
	logger   *slog.Logger
}

// NewRegistryService creates a RegistryService.
func NewRegistryService(store storage.RegistryStore, resolver *recipient.Resolver, logger *slog.Logger) *RegistryService {
	return &RegistryService{store: store, resolver: resolver, logger: logger}
}

// CreateFamily creates a family and attaches existing individuals to it.
func (s *RegistryService) CreateFamily(ctx context.Context, req *connect.Request[pb.CreateFamilyRequest]) (*connect.Response[pb.Family], error) {
	msg := req.Msg
	s.logger.Info("CreateFamily request received", "name", msg.Name, "members_count", len(msg.Members))

	if strings.TrimSpace(msg.Name) == "" {
		return nil, invalidArgument("name is required")
	}
	status := models.FamilyStatus(msg.Status)
	if status == "" {
		status = models.FamilyGreen
	}
	if !status.Valid() {
		return nil, invalidArgument("unknown family status %q", msg.Status)
	}

	family := &models.Family{
		Name:             strings.TrimSpace(msg.Name),
		Status:           status,
		District:         msg.District,
		Phone:            msg.Phone,
		Address:          msg.Address,
		PrimaryContactID: msg.PrimaryContactId,
		Roles:            make(map[string]models.FamilyRole, len(msg.Members)),
	}
	for _, m := range msg.Members {
		role := models.FamilyRole(m.Role)
		if role != models.RoleParent && role != models.RoleMember {
			return nil, invalidArgument("member %s: role must be parent or member", m.IndividualId)
		}
		family.Roles[m.IndividualId] = role
	}

	if err := s.store.CreateFamily(ctx, family); err != nil {
		return nil, toConnectError(s.logger, "CreateFamily", err)
	}
	created, err := s.store.GetFamily(ctx, family.ID)
	if err != nil {
		return nil, toConnectError(s.logger, "CreateFamily", err)
	}

	s.logger.Info("Family created", "family_id", family.ID)
	return connect.NewResponse(familyToProto(created)), nil
}

// GetFamily returns a family with its members.
func (s *RegistryService) GetFamily(ctx context.Context, req *connect.Request[pb.GetFamilyRequest]) (*connect.Response[pb.Family], error) {
	if err := requireID("id", req.Msg.Id); err != nil {
		return nil, err
	}
	family, err := s.store.GetFamily(ctx, req.Msg.Id)
	if err != nil {
		return nil, toConnectError(s.logger, "GetFamily", err)
	}
	return connect.NewResponse(familyToProto(family)), nil
}

// ListFamilies lists families, optionally matching a search query.
func (s *RegistryService) ListFamilies(ctx context.Context, req *connect.Request[pb.ListFamiliesRequest]) (*connect.Response[pb.ListFamiliesResponse], error) {
	families, err := s.store.ListFamilies(ctx)
	if err != nil {
		return nil, toConnectError(s.logger, "ListFamilies", err)
	}

	resp := &pb.ListFamiliesResponse{Families: []*pb.Family{}}
	for _, f := range families {
		if search.Match(req.Msg.Search, f.Name, f.District, f.Phone) {
			resp.Families = append(resp.Families, familyToProto(f))
		}
	}
	return connect.NewResponse(resp), nil
}

// CreateIndividual registers an individual.
func (s *RegistryService) CreateIndividual(ctx context.Context, req *connect.Request[pb.CreateIndividualRequest]) (*connect.Response[pb.Individual], error) {
	msg := req.Msg
	s.logger.Info("CreateIndividual request received", "district", msg.District)

	ind, err := individualFromProto(msg)
	if err != nil {
		return nil, err
	}
	ind.CreatedBy = middleware.GetUserID(ctx)

	if err := s.store.CreateIndividual(ctx, ind); err != nil {
		return nil, toConnectError(s.logger, "CreateIndividual", err)
	}

	s.logger.Info("Individual created", "individual_id", ind.ID)
	return connect.NewResponse(individualToProto(ind)), nil
}

func individualFromProto(msg *pb.CreateIndividualRequest) (*models.Individual, error) {
	switch {
	case strings.TrimSpace(msg.FirstName) == "", strings.TrimSpace(msg.LastName) == "":
		return nil, invalidArgument("first and last name are required")
	case strings.TrimSpace(msg.IdNumber) == "":
		return nil, invalidArgument("id number is required")
	case strings.TrimSpace(msg.District) == "":
		return nil, invalidArgument("district is required")
	}

	dob, err := parseDate("date_of_birth", msg.DateOfBirth)
	if err != nil {
		return nil, err
	}
	listStatus := models.ListStatus(msg.ListStatus)
	if listStatus != "" && !listStatus.Valid() {
		return nil, invalidArgument("unknown list status %q", msg.ListStatus)
	}

	var types []models.AssistanceType
	seen := make(map[models.AssistanceType]bool)
	for _, t := range msg.AssistanceTypes {
		at := models.AssistanceType(t)
		if !at.Valid() {
			return nil, invalidArgument("unknown assistance type %q", t)
		}
		if !seen[at] {
			seen[at] = true
			types = append(types, at)
		}
	}

	members := additionalFromProto(msg.AdditionalMembers)
	for i, m := range members {
		if err := validateAdditional(m); err != nil {
			return nil, invalidArgument("additional_members[%d]: %v", i, err)
		}
	}

	return &models.Individual{
		FirstName:         strings.TrimSpace(msg.FirstName),
		LastName:          strings.TrimSpace(msg.LastName),
		IDNumber:          strings.TrimSpace(msg.IdNumber),
		DateOfBirth:       dob,
		Gender:            msg.Gender,
		Phone:             msg.Phone,
		District:          strings.TrimSpace(msg.District),
		Address:           msg.Address,
		FamilyID:          msg.FamilyId,
		ListStatus:        listStatus,
		AssistanceTypes:   types,
		AdditionalMembers: members,
	}, nil
}

func validateAdditional(m models.AdditionalMember) error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("name is required")
	}
	if m.DateOfBirth != "" {
		if _, err := time.Parse(models.DateLayout, m.DateOfBirth); err != nil {
			return fmt.Errorf("date_of_birth: expected YYYY-MM-DD, got %q", m.DateOfBirth)
		}
	}
	return nil
}

// GetIndividual returns an individual by ID.
func (s *RegistryService) GetIndividual(ctx context.Context, req *connect.Request[pb.GetIndividualRequest]) (*connect.Response[pb.Individual], error) {
	if err := requireID("id", req.Msg.Id); err != nil {
		return nil, err
	}
	ind, err := s.store.GetIndividual(ctx, req.Msg.Id)
	if err != nil {
		return nil, toConnectError(s.logger, "GetIndividual", err)
	}
	return connect.NewResponse(individualToProto(ind)), nil
}

// ListIndividuals lists individuals by district, assistance type, family,
// list status and free-text search.
func (s *RegistryService) ListIndividuals(ctx context.Context, req *connect.Request[pb.ListIndividualsRequest]) (*connect.Response[pb.ListIndividualsResponse], error) {
	msg := req.Msg
	filter := storage.IndividualFilter{
		District:       msg.District,
		AssistanceType: models.AssistanceType(msg.AssistanceType),
		FamilyID:       msg.FamilyId,
		ListStatus:     models.ListStatus(msg.ListStatus),
	}
	if filter.AssistanceType != "" && !filter.AssistanceType.Valid() {
		return nil, invalidArgument("unknown assistance type %q", msg.AssistanceType)
	}

	individuals, err := s.store.ListIndividuals(ctx, filter)
	if err != nil {
		return nil, toConnectError(s.logger, "ListIndividuals", err)
	}

	resp := &pb.ListIndividualsResponse{Individuals: []*pb.Individual{}}
	for _, ind := range individuals {
		if search.Match(msg.Search, ind.FirstName, ind.LastName, ind.IDNumber, ind.Phone) {
			resp.Individuals = append(resp.Individuals, individualToProto(ind))
		}
	}
	return connect.NewResponse(resp), nil
}

// AddChild registers a child under a parent; the child joins the parent's
// family.
func (s *RegistryService) AddChild(ctx context.Context, req *connect.Request[pb.AddChildRequest]) (*connect.Response[pb.Child], error) {
	msg := req.Msg
	if err := requireID("parent_id", msg.ParentId); err != nil {
		return nil, err
	}
	if strings.TrimSpace(msg.FirstName) == "" {
		return nil, invalidArgument("first name is required")
	}
	dob, err := parseDate("date_of_birth", msg.DateOfBirth)
	if err != nil {
		return nil, err
	}

	child := &models.Child{
		FirstName:   strings.TrimSpace(msg.FirstName),
		LastName:    strings.TrimSpace(msg.LastName),
		DateOfBirth: dob,
		Gender:      msg.Gender,
		SchoolStage: msg.SchoolStage,
		ParentID:    msg.ParentId,
	}
	if err := s.store.AddChildWithFamily(ctx, child); err != nil {
		return nil, toConnectError(s.logger, "AddChild", err)
	}

	s.logger.Info("Child added", "child_id", child.ID, "family_id", child.FamilyID)
	return connect.NewResponse(childToProto(child)), nil
}

// AddAdditionalMember appends an additional member to an individual.
func (s *RegistryService) AddAdditionalMember(ctx context.Context, req *connect.Request[pb.AddAdditionalMemberRequest]) (*connect.Response[pb.AddAdditionalMemberResponse], error) {
	if err := requireID("individual_id", req.Msg.IndividualId); err != nil {
		return nil, err
	}
	if req.Msg.Member == nil {
		return nil, invalidArgument("member is required")
	}
	member := additionalMemberFromProto(req.Msg.Member)
	if err := validateAdditional(member); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	index, err := s.store.AddAdditionalMember(ctx, req.Msg.IndividualId, member)
	if err != nil {
		return nil, toConnectError(s.logger, "AddAdditionalMember", err)
	}

	ref := recipient.AdditionalMember(req.Msg.IndividualId, index)
	s.logger.Info("Additional member added", "individual_id", req.Msg.IndividualId, "index", index)
	return connect.NewResponse(&pb.AddAdditionalMemberResponse{Index: int32(index), Ref: ref.String()}), nil
}

// GetFamilyMembersForDistribution lists the recipients a family contributes
// to a distribution in the given mode.
func (s *RegistryService) GetFamilyMembersForDistribution(ctx context.Context, req *connect.Request[pb.GetFamilyMembersForDistributionRequest]) (*connect.Response[pb.GetFamilyMembersForDistributionResponse], error) {
	if err := requireID("family_id", req.Msg.FamilyId); err != nil {
		return nil, err
	}
	mode := aggregator.FamilyMode(req.Msg.Mode)
	if mode == "" {
		mode = aggregator.ModeHeads
	}
	if mode != aggregator.ModeHeads && mode != aggregator.ModeAll {
		return nil, invalidArgument("unknown family mode %q", req.Msg.Mode)
	}

	members, err := s.store.ListFamilyMembers(ctx, req.Msg.FamilyId)
	if err != nil {
		return nil, toConnectError(s.logger, "GetFamilyMembersForDistribution", err)
	}

	candidates := aggregator.FamilyCandidates(req.Msg.FamilyId, members, mode)
	refs := make([]recipient.Ref, len(candidates))
	for i, c := range candidates {
		refs[i] = c.Ref
	}
	resolved := s.resolver.ResolveAll(ctx, refs)

	resp := &pb.GetFamilyMembersForDistributionResponse{Recipients: make([]*pb.Recipient, len(resolved))}
	for i, r := range resolved {
		resp.Recipients[i] = recipientToProto(r)
	}
	return connect.NewResponse(resp), nil
}

// ResolveRecipient classifies a recipient reference. Unknown references
// resolve to a placeholder rather than an error.
func (s *RegistryService) ResolveRecipient(ctx context.Context, req *connect.Request[pb.ResolveRecipientRequest]) (*connect.Response[pb.Recipient], error) {
	return connect.NewResponse(recipientToProto(s.resolver.Classify(ctx, req.Msg.Ref))), nil
}
