// Package approval implements the review workflow for registrations and
// needs that staff submit for an admin to approve.
package approval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/storage"
)

var (
	// ErrInvalid is wrapped by every submission validation failure.
	ErrInvalid = errors.New("invalid submission")
	// ErrNotPending is returned when reviewing a request that was already reviewed.
	ErrNotPending = errors.New("request is not pending")
	// ErrApproved is returned when editing an approved request.
	ErrApproved = errors.New("approved requests cannot be edited")
	// ErrCommentRequired is returned when rejecting without a comment.
	ErrCommentRequired = errors.New("a comment is required to reject a request")
	// ErrForbidden is returned when a user changes another user's request.
	ErrForbidden = errors.New("request belongs to another user")
)

// Store is the persistence the workflow needs.
type Store interface {
	storage.RegistryStore
	storage.NeedStore
	storage.ApprovalStore
}

// Actor is the user performing an operation.
type Actor struct {
	ID    string
	Name  string
	Admin bool
}

// Service runs the submit, edit and review workflow.
type Service struct {
	store  Store
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, now: time.Now, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitIndividual queues the registration of a new individual, with
// optional children, needs and a new family.
func (s *Service) SubmitIndividual(ctx context.Context, actor Actor, sub models.IndividualSubmission) (*models.PendingRequest, error) {
	if err := validateIndividual(&sub); err != nil {
		return nil, err
	}
	if err := s.checkIDNumber(ctx, sub.Individual.IDNumber); err != nil {
		return nil, err
	}

	req := &models.PendingRequest{
		Type:        models.RequestIndividual,
		Status:      models.RequestPending,
		Individual:  &sub,
		SubmittedBy: actor.ID,
		SubmittedAt: s.now().Unix(),
		Version:     1,
	}
	if err := s.store.CreatePendingRequest(ctx, req); err != nil {
		return nil, err
	}
	s.logger.Info("Individual submitted for approval", "request_id", req.ID, "user_id", actor.ID)
	return req, nil
}

// SubmitNeed queues a need for an existing individual.
func (s *Service) SubmitNeed(ctx context.Context, actor Actor, sub models.NeedSubmission) (*models.PendingRequest, error) {
	if err := validateNeed(&sub, true); err != nil {
		return nil, err
	}
	if _, err := s.store.GetIndividual(ctx, sub.IndividualID); err != nil {
		return nil, err
	}

	req := &models.PendingRequest{
		Type:        models.RequestNeed,
		Status:      models.RequestPending,
		Need:        &sub,
		SubmittedBy: actor.ID,
		SubmittedAt: s.now().Unix(),
		Version:     1,
	}
	if err := s.store.CreatePendingRequest(ctx, req); err != nil {
		return nil, err
	}
	s.logger.Info("Need submitted for approval", "request_id", req.ID, "user_id", actor.ID)
	return req, nil
}

// Edit replaces the submission of a request that is not yet approved and
// puts it back in the queue. Only the submitter or an admin may edit.
func (s *Service) Edit(ctx context.Context, actor Actor, id string, individual *models.IndividualSubmission, need *models.NeedSubmission) (*models.PendingRequest, error) {
	req, err := s.store.GetPendingRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status == models.RequestApproved {
		return nil, ErrApproved
	}
	if !actor.Admin && req.SubmittedBy != actor.ID {
		return nil, ErrForbidden
	}

	switch req.Type {
	case models.RequestIndividual:
		if individual == nil || need != nil {
			return nil, fmt.Errorf("%w: an individual request takes an individual submission", ErrInvalid)
		}
		if err := validateIndividual(individual); err != nil {
			return nil, err
		}
		if individual.Individual.IDNumber != req.Individual.Individual.IDNumber {
			if err := s.checkIDNumber(ctx, individual.Individual.IDNumber); err != nil {
				return nil, err
			}
		}
		req.Individual = individual
	case models.RequestNeed:
		if need == nil || individual != nil {
			return nil, fmt.Errorf("%w: a need request takes a need submission", ErrInvalid)
		}
		if err := validateNeed(need, true); err != nil {
			return nil, err
		}
		req.Need = need
	}

	req.Status = models.RequestPending
	req.ReviewedBy, req.ReviewedAt, req.AdminComment = "", 0, ""
	req.Version++
	if err := s.store.UpdatePendingRequest(ctx, req); err != nil {
		return nil, err
	}
	s.logger.Info("Pending request edited", "request_id", req.ID, "version", req.Version, "user_id", actor.ID)
	return req, nil
}

// Approve creates the records a pending request describes. The request is
// claimed first so that two admins cannot approve it twice; if creating the
// records fails the request goes back to pending.
func (s *Service) Approve(ctx context.Context, actor Actor, id, comment string) (*models.PendingRequest, error) {
	req, err := s.review(ctx, actor, id, models.RequestApproved, comment)
	if err != nil {
		return nil, err
	}

	target, err := s.apply(ctx, req)
	if err != nil {
		s.logger.Error("Failed to apply approved request", "request_id", req.ID, "error", err)
		req.Status = models.RequestPending
		req.ReviewedBy, req.ReviewedAt, req.AdminComment = "", 0, ""
		req.Version++
		if rerr := s.store.UpdatePendingRequest(ctx, req); rerr != nil {
			s.logger.Error("Failed to reopen request", "request_id", req.ID, "error", rerr)
		}
		return nil, err
	}

	s.log(ctx, actor, req, models.ActionApproved, target, comment)
	s.logger.Info("Pending request approved", "request_id", req.ID, "type", req.Type, "user_id", actor.ID)
	return req, nil
}

// Reject closes a pending request. A comment explaining why is required.
func (s *Service) Reject(ctx context.Context, actor Actor, id, comment string) (*models.PendingRequest, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, ErrCommentRequired
	}
	req, err := s.review(ctx, actor, id, models.RequestRejected, comment)
	if err != nil {
		return nil, err
	}
	s.log(ctx, actor, req, models.ActionRejected, targetName(req), comment)
	s.logger.Info("Pending request rejected", "request_id", req.ID, "type", req.Type, "user_id", actor.ID)
	return req, nil
}

// Delete removes a request. Staff may delete only their own requests.
func (s *Service) Delete(ctx context.Context, actor Actor, id string) error {
	req, err := s.store.GetPendingRequest(ctx, id)
	if err != nil {
		return err
	}
	if !actor.Admin && req.SubmittedBy != actor.ID {
		return ErrForbidden
	}
	if err := s.store.DeletePendingRequest(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Pending request deleted", "request_id", id, "user_id", actor.ID)
	return nil
}

// List returns requests in status, or all requests when status is empty.
// Staff see only their own submissions.
func (s *Service) List(ctx context.Context, actor Actor, status models.RequestStatus) ([]*models.PendingRequest, error) {
	requests, err := s.store.ListPendingRequests(ctx, status)
	if err != nil {
		return nil, err
	}
	if actor.Admin {
		return requests, nil
	}
	own := requests[:0]
	for _, r := range requests {
		if r.SubmittedBy == actor.ID {
			own = append(own, r)
		}
	}
	return own, nil
}

// Logs returns the review audit log, newest first.
func (s *Service) Logs(ctx context.Context) ([]*models.ApprovalLog, error) {
	return s.store.ListApprovalLogs(ctx)
}

// review moves a pending request to status.
func (s *Service) review(ctx context.Context, actor Actor, id string, status models.RequestStatus, comment string) (*models.PendingRequest, error) {
	req, err := s.store.GetPendingRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != models.RequestPending {
		return nil, fmt.Errorf("%w: request %s is %s", ErrNotPending, id, req.Status)
	}
	req.Status = status
	req.ReviewedBy = actor.ID
	req.ReviewedAt = s.now().Unix()
	req.AdminComment = strings.TrimSpace(comment)
	req.Version++
	if err := s.store.UpdatePendingRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// apply creates the records of an approved request and returns the name of
// the individual they belong to.
func (s *Service) apply(ctx context.Context, req *models.PendingRequest) (string, error) {
	switch req.Type {
	case models.RequestIndividual:
		return s.applyIndividual(ctx, req)
	case models.RequestNeed:
		sub := req.Need
		ind, err := s.store.GetIndividual(ctx, sub.IndividualID)
		if err != nil {
			return "", err
		}
		need := &models.Need{
			IndividualID: sub.IndividualID,
			Category:     sub.Category,
			Priority:     sub.Priority,
			Status:       models.NeedPending,
			Description:  sub.Description,
			CreatedBy:    req.SubmittedBy,
		}
		if err := s.store.CreateNeed(ctx, need); err != nil {
			return "", err
		}
		return ind.FullName(), nil
	}
	return "", fmt.Errorf("%w: unknown request type %q", ErrInvalid, req.Type)
}

func (s *Service) applyIndividual(ctx context.Context, req *models.PendingRequest) (string, error) {
	sub := req.Individual
	ind := sub.Individual
	ind.ID, ind.CreatedAt, ind.UpdatedAt = "", 0, 0
	ind.CreatedBy = req.SubmittedBy

	// Registered since submission: nothing to create.
	existing, err := s.store.ListIndividuals(ctx, storage.IndividualFilter{IDNumber: ind.IDNumber})
	if err != nil {
		return "", err
	}
	if len(existing) > 0 {
		s.logger.Info("Individual already registered", "request_id", req.ID, "individual_id", existing[0].ID)
		return existing[0].FullName(), nil
	}

	newFamily := ind.FamilyID == "" && sub.NewFamilyName != ""
	if err := s.store.CreateIndividual(ctx, &ind); err != nil {
		return "", err
	}
	if newFamily {
		family := &models.Family{
			Name:             sub.NewFamilyName,
			Status:           models.FamilyGreen,
			District:         ind.District,
			Phone:            ind.Phone,
			Address:          ind.Address,
			PrimaryContactID: ind.ID,
			Roles:            map[string]models.FamilyRole{ind.ID: models.RoleParent},
		}
		if err := s.store.CreateFamily(ctx, family); err != nil {
			return "", err
		}
	}

	for i, c := range sub.Children {
		dob, _ := parseDate(c.DateOfBirth)
		child := &models.Child{
			FirstName:   c.FirstName,
			LastName:    c.LastName,
			DateOfBirth: dob,
			Gender:      c.Gender,
			SchoolStage: c.SchoolStage,
			ParentID:    ind.ID,
		}
		if c.LastName == "" {
			child.LastName = ind.LastName
		}
		if err := s.store.AddChildWithFamily(ctx, child); err != nil {
			return "", fmt.Errorf("failed to add child %d: %w", i, err)
		}
	}

	for i, n := range sub.Needs {
		need := &models.Need{
			IndividualID: ind.ID,
			Category:     n.Category,
			Priority:     n.Priority,
			Status:       models.NeedPending,
			Description:  n.Description,
			CreatedBy:    req.SubmittedBy,
		}
		if err := s.store.CreateNeed(ctx, need); err != nil {
			return "", fmt.Errorf("failed to add need %d: %w", i, err)
		}
	}
	return ind.FullName(), nil
}

// log records a review decision. A failed audit write does not undo the
// decision.
func (s *Service) log(ctx context.Context, actor Actor, req *models.PendingRequest, action models.ApprovalAction, target, comment string) {
	entry := &models.ApprovalLog{
		Action:      action,
		RequestID:   req.ID,
		RequestType: req.Type,
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		TargetName:  target,
		Details:     strings.TrimSpace(comment),
		CreatedAt:   s.now().Unix(),
	}
	if err := s.store.AddApprovalLog(ctx, entry); err != nil {
		s.logger.Error("Failed to write approval log", "request_id", req.ID, "error", err)
	}
}

// checkIDNumber fails when an individual with idNumber is already registered.
func (s *Service) checkIDNumber(ctx context.Context, idNumber string) error {
	existing, err := s.store.ListIndividuals(ctx, storage.IndividualFilter{IDNumber: idNumber})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return fmt.Errorf("%w: id number %s already registered", storage.ErrConflict, idNumber)
	}
	return nil
}

func targetName(req *models.PendingRequest) string {
	if req.Individual != nil {
		return req.Individual.Individual.FullName()
	}
	return ""
}
