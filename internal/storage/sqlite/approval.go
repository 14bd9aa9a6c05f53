package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/storage"
)

const (
	needColumns    = `id, individual_id, category, priority, status, description, created_by, created_at, updated_at`
	requestColumns = `id, type, status, data, submitted_by, submitted_at, reviewed_by, reviewed_at, admin_comment, version`
	logColumns     = `id, action, request_id, request_type, actor_id, actor_name, target_name, details, created_at`
)

// CreateNeed persists a need for an existing individual.
func (s *SQLiteStore) CreateNeed(ctx context.Context, need *models.Need) error {
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

	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM individuals WHERE id = ?", need.IndividualID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: individual %s", storage.ErrNotFound, need.IndividualID)
	}
	if err != nil {
		return fmt.Errorf("failed to check individual: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO needs (`+needColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		need.ID, need.IndividualID, string(need.Category), string(need.Priority), string(need.Status),
		need.Description, nullable(need.CreatedBy), need.CreatedAt, need.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert need: %w", err)
	}
	return nil
}

// GetNeed retrieves a need by ID.
func (s *SQLiteStore) GetNeed(ctx context.Context, needID string) (*models.Need, error) {
	need, err := scanNeed(s.db.QueryRowContext(ctx, "SELECT "+needColumns+" FROM needs WHERE id = ?", needID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: need %s", storage.ErrNotFound, needID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get need: %w", err)
	}
	return need, nil
}

// ListNeeds retrieves needs matching the filter.
func (s *SQLiteStore) ListNeeds(ctx context.Context, filter storage.NeedFilter) ([]*models.Need, error) {
	var (
		where []string
		args  []interface{}
	)
	if filter.IndividualID != "" {
		where = append(where, "individual_id = ?")
		args = append(args, filter.IndividualID)
	}
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.Category != "" {
		where = append(where, "category = ?")
		args = append(args, string(filter.Category))
	}

	query := "SELECT " + needColumns + " FROM needs"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list needs: %w", err)
	}
	defer rows.Close()

	var needs []*models.Need
	for rows.Next() {
		need, err := scanNeed(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan need: %w", err)
		}
		needs = append(needs, need)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate needs: %w", err)
	}
	return needs, nil
}

// UpdateNeed replaces the editable fields of a need.
func (s *SQLiteStore) UpdateNeed(ctx context.Context, need *models.Need) error {
	need.UpdatedAt = time.Now().Unix()
	res, err := s.db.ExecContext(ctx,
		`UPDATE needs SET category = ?, priority = ?, status = ?, description = ?, updated_at = ? WHERE id = ?`,
		string(need.Category), string(need.Priority), string(need.Status), need.Description, need.UpdatedAt, need.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update need: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: need %s", storage.ErrNotFound, need.ID)
	}
	return nil
}

// DeleteNeed removes a need.
func (s *SQLiteStore) DeleteNeed(ctx context.Context, needID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM needs WHERE id = ?", needID)
	if err != nil {
		return fmt.Errorf("failed to delete need: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: need %s", storage.ErrNotFound, needID)
	}
	return nil
}

// CreatePendingRequest persists a submission awaiting review.
func (s *SQLiteStore) CreatePendingRequest(ctx context.Context, req *models.PendingRequest) error {
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
	data, err := storage.EncodePayload(req)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO pending_requests (`+requestColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ID, string(req.Type), string(req.Status), string(data), req.SubmittedBy, req.SubmittedAt,
		nullable(req.ReviewedBy), nullableUnix(req.ReviewedAt), nullable(req.AdminComment), req.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to insert pending request: %w", err)
	}
	return nil
}

// GetPendingRequest retrieves a pending request by ID.
func (s *SQLiteStore) GetPendingRequest(ctx context.Context, requestID string) (*models.PendingRequest, error) {
	req, err := scanPendingRequest(s.db.QueryRowContext(ctx,
		"SELECT "+requestColumns+" FROM pending_requests WHERE id = ?", requestID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: pending request %s", storage.ErrNotFound, requestID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pending request: %w", err)
	}
	return req, nil
}

// ListPendingRequests retrieves requests, optionally only those in status.
func (s *SQLiteStore) ListPendingRequests(ctx context.Context, status models.RequestStatus) ([]*models.PendingRequest, error) {
	query := "SELECT " + requestColumns + " FROM pending_requests"
	var args []interface{}
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, string(status))
	}
	query += " ORDER BY submitted_at DESC, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.PendingRequest
	for rows.Next() {
		req, err := scanPendingRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pending request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pending requests: %w", err)
	}
	return requests, nil
}

// UpdatePendingRequest writes req if the stored row is still at the
// previous version.
func (s *SQLiteStore) UpdatePendingRequest(ctx context.Context, req *models.PendingRequest) error {
	data, err := storage.EncodePayload(req)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE pending_requests
		 SET status = ?, data = ?, reviewed_by = ?, reviewed_at = ?, admin_comment = ?, version = ?
		 WHERE id = ? AND version = ?`,
		string(req.Status), string(data), nullable(req.ReviewedBy), nullableUnix(req.ReviewedAt),
		nullable(req.AdminComment), req.Version, req.ID, req.Version-1,
	)
	if err != nil {
		return fmt.Errorf("failed to update pending request: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := s.GetPendingRequest(ctx, req.ID); err != nil {
			return err
		}
		return fmt.Errorf("%w: pending request %s was modified concurrently", storage.ErrConflict, req.ID)
	}
	return nil
}

// DeletePendingRequest removes a request.
func (s *SQLiteStore) DeletePendingRequest(ctx context.Context, requestID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM pending_requests WHERE id = ?", requestID)
	if err != nil {
		return fmt.Errorf("failed to delete pending request: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: pending request %s", storage.ErrNotFound, requestID)
	}
	return nil
}

// AddApprovalLog appends an audit entry.
func (s *SQLiteStore) AddApprovalLog(ctx context.Context, entry *models.ApprovalLog) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt == 0 {
		entry.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO approval_logs (`+logColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, string(entry.Action), nullable(entry.RequestID), nullable(string(entry.RequestType)),
		nullable(entry.ActorID), nullable(entry.ActorName), nullable(entry.TargetName),
		nullable(entry.Details), entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert approval log: %w", err)
	}
	return nil
}

// ListApprovalLogs retrieves every audit entry, newest first.
func (s *SQLiteStore) ListApprovalLogs(ctx context.Context) ([]*models.ApprovalLog, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+logColumns+" FROM approval_logs ORDER BY created_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list approval logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.ApprovalLog
	for rows.Next() {
		var (
			entry                           models.ApprovalLog
			action                          string
			requestID, requestType, actorID sql.NullString
			actorName, targetName, details  sql.NullString
		)
		if err := rows.Scan(&entry.ID, &action, &requestID, &requestType, &actorID, &actorName,
			&targetName, &details, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan approval log: %w", err)
		}
		entry.Action = models.ApprovalAction(action)
		entry.RequestID = requestID.String
		entry.RequestType = models.RequestType(requestType.String)
		entry.ActorID = actorID.String
		entry.ActorName = actorName.String
		entry.TargetName = targetName.String
		entry.Details = details.String
		logs = append(logs, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate approval logs: %w", err)
	}
	return logs, nil
}

func scanNeed(row rowScanner) (*models.Need, error) {
	var (
		need                       models.Need
		category, priority, status string
		createdBy                  sql.NullString
	)
	if err := row.Scan(&need.ID, &need.IndividualID, &category, &priority, &status, &need.Description,
		&createdBy, &need.CreatedAt, &need.UpdatedAt); err != nil {
		return nil, err
	}
	need.Category = models.NeedCategory(category)
	need.Priority = models.NeedPriority(priority)
	need.Status = models.NeedStatus(status)
	need.CreatedBy = createdBy.String
	return &need, nil
}

func scanPendingRequest(row rowScanner) (*models.PendingRequest, error) {
	var (
		req                   models.PendingRequest
		reqType, status, data string
		reviewedBy, comment   sql.NullString
		reviewedAt            sql.NullInt64
	)
	if err := row.Scan(&req.ID, &reqType, &status, &data, &req.SubmittedBy, &req.SubmittedAt,
		&reviewedBy, &reviewedAt, &comment, &req.Version); err != nil {
		return nil, err
	}
	req.Type = models.RequestType(reqType)
	req.Status = models.RequestStatus(status)
	req.ReviewedBy = reviewedBy.String
	req.ReviewedAt = reviewedAt.Int64
	req.AdminComment = comment.String
	if err := storage.DecodePayload(&req, []byte(data)); err != nil {
		return nil, err
	}
	return &req, nil
}

// nullableUnix stores a zero timestamp as NULL.
func nullableUnix(t int64) interface{} {
	if t == 0 {
		return nil
	}
	return t
}
