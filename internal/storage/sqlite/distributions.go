package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/storage"
)

const distributionColumns = `id, date, aid_type, description, quantity, value, value_per_unit,
	status, created_by, created_at, updated_at`

const allocationColumns = `id, distribution_id, individual_id, child_id, recipient_name,
	quantity_received, value_received, notes`

// CreateDistributionTransaction inserts a distribution and all of its
// allocations in a single transaction.
func (s *SQLiteStore) CreateDistributionTransaction(ctx context.Context, d *models.Distribution) error {
	d.ID = uuid.New().String()
	now := time.Now().Unix()
	d.CreatedAt = now
	d.UpdatedAt = now

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO distributions (`+distributionColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, formatDate(d.Date), string(d.AidType), d.Description, d.Quantity,
		d.Value, d.ValuePerUnit, string(d.Status), nullable(d.CreatedBy), d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert distribution: %w", err)
	}

	if err := insertAllocations(ctx, tx, d); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateDistributionTransaction replaces the header fields and every
// allocation of an existing distribution.
func (s *SQLiteStore) UpdateDistributionTransaction(ctx context.Context, d *models.Distribution) error {
	d.UpdatedAt = time.Now().Unix()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE distributions
		 SET date = ?, aid_type = ?, description = ?, quantity = ?, value = ?, value_per_unit = ?,
		     status = ?, updated_at = ?
		 WHERE id = ?`,
		formatDate(d.Date), string(d.AidType), d.Description, d.Quantity, d.Value, d.ValuePerUnit,
		string(d.Status), d.UpdatedAt, d.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update distribution: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: distribution %s", storage.ErrNotFound, d.ID)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM distribution_recipients WHERE distribution_id = ?", d.ID); err != nil {
		return fmt.Errorf("failed to delete allocations: %w", err)
	}
	if err := insertAllocations(ctx, tx, d); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteDistribution removes the allocation rows and then the distribution.
func (s *SQLiteStore) DeleteDistribution(ctx context.Context, distributionID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM distribution_recipients WHERE distribution_id = ?", distributionID); err != nil {
		return fmt.Errorf("failed to delete allocations: %w", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM distributions WHERE id = ?", distributionID)
	if err != nil {
		return fmt.Errorf("failed to delete distribution: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: distribution %s", storage.ErrNotFound, distributionID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateDistributionStatus changes the status of a distribution.
func (s *SQLiteStore) UpdateDistributionStatus(ctx context.Context, distributionID string, status models.DistributionStatus) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE distributions SET status = ?, updated_at = ? WHERE id = ?",
		string(status), time.Now().Unix(), distributionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update distribution status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: distribution %s", storage.ErrNotFound, distributionID)
	}
	return nil
}

// GetDistribution retrieves a distribution with its allocations.
func (s *SQLiteStore) GetDistribution(ctx context.Context, distributionID string) (*models.Distribution, error) {
	d, err := scanDistribution(s.db.QueryRowContext(ctx,
		"SELECT "+distributionColumns+" FROM distributions WHERE id = ?",
		distributionID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: distribution %s", storage.ErrNotFound, distributionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get distribution: %w", err)
	}

	byID, err := s.loadAllocations(ctx, []string{d.ID})
	if err != nil {
		return nil, err
	}
	d.Recipients = byID[d.ID]
	return d, nil
}

// ListDistributions retrieves distributions matching the filter, newest first.
func (s *SQLiteStore) ListDistributions(ctx context.Context, filter storage.DistributionFilter) ([]*models.Distribution, error) {
	var (
		where []string
		args  []interface{}
	)
	if !filter.From.IsZero() {
		where = append(where, "date >= ?")
		args = append(args, formatDate(filter.From))
	}
	if !filter.To.IsZero() {
		where = append(where, "date <= ?")
		args = append(args, formatDate(filter.To))
	}
	if filter.AidType != "" {
		where = append(where, "aid_type = ?")
		args = append(args, string(filter.AidType))
	}
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(filter.Status))
	}

	query := "SELECT " + distributionColumns + " FROM distributions"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY date DESC, created_at DESC, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list distributions: %w", err)
	}
	defer rows.Close()

	var (
		distributions []*models.Distribution
		ids           []string
	)
	for rows.Next() {
		d, err := scanDistribution(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan distribution: %w", err)
		}
		distributions = append(distributions, d)
		ids = append(ids, d.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate distributions: %w", err)
	}
	if len(distributions) == 0 {
		return distributions, nil
	}

	byID, err := s.loadAllocations(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, d := range distributions {
		d.Recipients = byID[d.ID]
	}
	return distributions, nil
}

// ListAllocationsByIndividual retrieves every allocation made to an
// individual, newest distribution first.
func (s *SQLiteStore) ListAllocationsByIndividual(ctx context.Context, individualID string) ([]models.Allocation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.distribution_id, r.individual_id, r.child_id, r.recipient_name,
		        r.quantity_received, r.value_received, r.notes
		 FROM distribution_recipients r
		 JOIN distributions d ON d.id = r.distribution_id
		 WHERE r.individual_id = ?
		 ORDER BY d.date DESC, d.created_at DESC, r.position`,
		individualID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}
	defer rows.Close()

	var allocations []models.Allocation
	for rows.Next() {
		a, err := scanAllocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan allocation: %w", err)
		}
		allocations = append(allocations, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate allocations: %w", err)
	}
	return allocations, nil
}

// loadAllocations fetches allocations for the given distributions, keyed by
// distribution ID and ordered as they were submitted.
func (s *SQLiteStore) loadAllocations(ctx context.Context, distributionIDs []string) (map[string][]models.Allocation, error) {
	args := make([]interface{}, len(distributionIDs))
	for i, id := range distributionIDs {
		args[i] = id
	}
	query := "SELECT " + allocationColumns + " FROM distribution_recipients WHERE distribution_id IN (?" +
		repeatPlaceholder(len(distributionIDs)-1) + ") ORDER BY distribution_id, position"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get allocations: %w", err)
	}
	defer rows.Close()

	byID := make(map[string][]models.Allocation, len(distributionIDs))
	for rows.Next() {
		a, err := scanAllocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan allocation: %w", err)
		}
		byID[a.DistributionID] = append(byID[a.DistributionID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate allocations: %w", err)
	}
	return byID, nil
}

func insertAllocations(ctx context.Context, tx *sql.Tx, d *models.Distribution) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO distribution_recipients (`+allocationColumns+`, position)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("failed to prepare allocation insert: %w", err)
	}
	defer stmt.Close()

	for i := range d.Recipients {
		a := &d.Recipients[i]
		if a.IndividualID != "" && a.ChildID != "" {
			return fmt.Errorf("allocation %d references both an individual and a child", i)
		}
		a.ID = uuid.New().String()
		a.DistributionID = d.ID
		_, err := stmt.ExecContext(ctx,
			a.ID, a.DistributionID, nullable(a.IndividualID), nullable(a.ChildID), nullable(a.RecipientName),
			a.Quantity, a.Value, nullable(a.Notes), i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert allocation: %w", err)
		}
	}
	return nil
}

func scanDistribution(row rowScanner) (*models.Distribution, error) {
	d := &models.Distribution{}
	var (
		date, aidType, status string
		createdBy             sql.NullString
		value                 decimal.Decimal
	)
	err := row.Scan(&d.ID, &date, &aidType, &d.Description, &d.Quantity, &value, &d.ValuePerUnit,
		&status, &createdBy, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if d.Date, err = parseDate(sql.NullString{String: date, Valid: true}); err != nil {
		return nil, err
	}
	d.Value = value
	d.AidType = models.AidType(aidType)
	d.Status = models.DistributionStatus(status)
	d.CreatedBy = createdBy.String
	return d, nil
}

func scanAllocation(row rowScanner) (models.Allocation, error) {
	var (
		a                                  models.Allocation
		individualID, childID, name, notes sql.NullString
	)
	err := row.Scan(&a.ID, &a.DistributionID, &individualID, &childID, &name, &a.Quantity, &a.Value, &notes)
	if err != nil {
		return a, err
	}
	a.IndividualID = individualID.String
	a.ChildID = childID.String
	a.RecipientName = name.String
	a.Notes = notes.String
	return a, nil
}
