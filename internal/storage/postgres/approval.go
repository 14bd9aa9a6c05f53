package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/storage"
)

// CreateNeed persists a need for an existing individual.
func (s *Store) CreateNeed(ctx context.Context, need *models.Need) error {
	if need.ID == "" {
		need.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if need.CreatedAt == 0 {
		need.CreatedAt = now
	}
	need.UpdatedAt = now
	if need.Status == "" {
		need.Status = models.NeedPending
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&individualRow{}).Where("id = ?", need.IndividualID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check individual: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("%w: individual %s", storage.ErrNotFound, need.IndividualID)
	}

	row := needRowFromModel(need)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert need: %w", err)
	}
	return nil
}

// GetNeed retrieves a need by ID.
func (s *Store) GetNeed(ctx context.Context, needID string) (*models.Need, error) {
	var row needRow
	err := s.db.WithContext(ctx).Where("id = ?", needID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: need %s", storage.ErrNotFound, needID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get need: %w", err)
	}
	return row.toModel(), nil
}

// ListNeeds retrieves needs matching the filter.
func (s *Store) ListNeeds(ctx context.Context, filter storage.NeedFilter) ([]*models.Need, error) {
	q := s.db.WithContext(ctx).Model(&needRow{})
	if filter.IndividualID != "" {
		q = q.Where("individual_id = ?", filter.IndividualID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.Category != "" {
		q = q.Where("category = ?", string(filter.Category))
	}

	var rows []needRow
	if err := q.Order("created_at DESC, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list needs: %w", err)
	}
	needs := make([]*models.Need, 0, len(rows))
	for _, r := range rows {
		needs = append(needs, r.toModel())
	}
	return needs, nil
}

// UpdateNeed replaces the editable fields of a need.
func (s *Store) UpdateNeed(ctx context.Context, need *models.Need) error {
	need.UpdatedAt = time.Now().Unix()
	res := s.db.WithContext(ctx).Model(&needRow{}).Where("id = ?", need.ID).Updates(map[string]interface{}{
		"category":    string(need.Category),
		"priority":    string(need.Priority),
		"status":      string(need.Status),
		"description": need.Description,
		"updated_at":  need.UpdatedAt,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update need: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: need %s", storage.ErrNotFound, need.ID)
	}
	return nil
}

// DeleteNeed removes a need.
func (s *Store) DeleteNeed(ctx context.Context, needID string) error {
	res := s.db.WithContext(ctx).Where("id = ?", needID).Delete(&needRow{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete need: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: need %s", storage.ErrNotFound, needID)
	}
	return nil
}

// CreatePendingRequest persists a submission awaiting review.
func (s *Store) CreatePendingRequest(ctx context.Context, req *models.PendingRequest) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.SubmittedAt == 0 {
		req.SubmittedAt = time.Now().Unix()
	}
	if req.Status == "" {
		req.Status = models.RequestPending
	}
	if req.Version == 0 {
		req.Version = 1
	}
	row, err := pendingRequestRowFromModel(req)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert pending request: %w", err)
	}
	return nil
}

// GetPendingRequest retrieves a pending request by ID.
func (s *Store) GetPendingRequest(ctx context.Context, requestID string) (*models.PendingRequest, error) {
	var row pendingRequestRow
	err := s.db.WithContext(ctx).Where("id = ?", requestID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: pending request %s", storage.ErrNotFound, requestID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pending request: %w", err)
	}
	return row.toModel()
}

// ListPendingRequests retrieves requests, optionally only those in status.
func (s *Store) ListPendingRequests(ctx context.Context, status models.RequestStatus) ([]*models.PendingRequest, error) {
	q := s.db.WithContext(ctx).Model(&pendingRequestRow{})
	if status != "" {
		q = q.Where("status = ?", string(status))
	}
	var rows []pendingRequestRow
	if err := q.Order("submitted_at DESC, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	requests := make([]*models.PendingRequest, 0, len(rows))
	for _, r := range rows {
		req, err := r.toModel()
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// UpdatePendingRequest writes req if the stored row is still at the
// previous version.
func (s *Store) UpdatePendingRequest(ctx context.Context, req *models.PendingRequest) error {
	row, err := pendingRequestRowFromModel(req)
	if err != nil {
		return err
	}
	res := s.db.WithContext(ctx).Model(&pendingRequestRow{}).
		Where("id = ? AND version = ?", req.ID, req.Version-1).
		Updates(map[string]interface{}{
			"status":        row.Status,
			"data":          row.Data,
			"reviewed_by":   row.ReviewedBy,
			"reviewed_at":   row.ReviewedAt,
			"admin_comment": row.AdminComment,
			"version":       row.Version,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update pending request: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := s.GetPendingRequest(ctx, req.ID); err != nil {
			return err
		}
		return fmt.Errorf("%w: pending request %s was modified concurrently", storage.ErrConflict, req.ID)
	}
	return nil
}

// DeletePendingRequest removes a request.
func (s *Store) DeletePendingRequest(ctx context.Context, requestID string) error {
	res := s.db.WithContext(ctx).Where("id = ?", requestID).Delete(&pendingRequestRow{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete pending request: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: pending request %s", storage.ErrNotFound, requestID)
	}
	return nil
}

// AddApprovalLog appends an audit entry.
func (s *Store) AddApprovalLog(ctx context.Context, entry *models.ApprovalLog) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt == 0 {
		entry.CreatedAt = time.Now().Unix()
	}
	row := approvalLogRowFromModel(entry)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert approval log: %w", err)
	}
	return nil
}

// ListApprovalLogs retrieves every audit entry, newest first.
func (s *Store) ListApprovalLogs(ctx context.Context) ([]*models.ApprovalLog, error) {
	var rows []approvalLogRow
	if err := s.db.WithContext(ctx).Order("created_at DESC, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list approval logs: %w", err)
	}
	logs := make([]*models.ApprovalLog, 0, len(rows))
	for _, r := range rows {
		logs = append(logs, r.toModel())
	}
	return logs, nil
}
