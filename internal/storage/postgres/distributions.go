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

// CreateDistributionTransaction inserts a distribution and all of its
// allocations in a single transaction.
func (s *Store) CreateDistributionTransaction(ctx context.Context, d *models.Distribution) error {
	d.ID = uuid.New().String()
	now := time.Now().Unix()
	d.CreatedAt = now
	d.UpdatedAt = now

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := distributionRowFromModel(d)
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to insert distribution: %w", err)
		}
		return insertAllocations(tx, d)
	})
}

// UpdateDistributionTransaction replaces the header fields and every
// allocation of an existing distribution.
func (s *Store) UpdateDistributionTransaction(ctx context.Context, d *models.Distribution) error {
	d.UpdatedAt = time.Now().Unix()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := distributionRowFromModel(d)
		res := tx.Model(&distributionRow{}).Where("id = ?", d.ID).Updates(map[string]interface{}{
			"date":           row.Date,
			"aid_type":       row.AidType,
			"description":    row.Description,
			"quantity":       row.Quantity,
			"value":          row.Value,
			"value_per_unit": row.ValuePerUnit,
			"status":         row.Status,
			"updated_at":     row.UpdatedAt,
		})
		if res.Error != nil {
			return fmt.Errorf("failed to update distribution: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: distribution %s", storage.ErrNotFound, d.ID)
		}
		if err := tx.Where("distribution_id = ?", d.ID).Delete(&allocationRow{}).Error; err != nil {
			return fmt.Errorf("failed to delete allocations: %w", err)
		}
		return insertAllocations(tx, d)
	})
}

// DeleteDistribution removes the allocation rows and then the distribution.
func (s *Store) DeleteDistribution(ctx context.Context, distributionID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("distribution_id = ?", distributionID).Delete(&allocationRow{}).Error; err != nil {
			return fmt.Errorf("failed to delete allocations: %w", err)
		}
		res := tx.Where("id = ?", distributionID).Delete(&distributionRow{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete distribution: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: distribution %s", storage.ErrNotFound, distributionID)
		}
		return nil
	})
}

// UpdateDistributionStatus changes the status of a distribution.
func (s *Store) UpdateDistributionStatus(ctx context.Context, distributionID string, status models.DistributionStatus) error {
	res := s.db.WithContext(ctx).Model(&distributionRow{}).Where("id = ?", distributionID).Updates(map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now().Unix(),
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update distribution status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: distribution %s", storage.ErrNotFound, distributionID)
	}
	return nil
}

// GetDistribution retrieves a distribution with its allocations.
func (s *Store) GetDistribution(ctx context.Context, distributionID string) (*models.Distribution, error) {
	var row distributionRow
	err := s.db.WithContext(ctx).Where("id = ?", distributionID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: distribution %s", storage.ErrNotFound, distributionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get distribution: %w", err)
	}

	d := row.toModel()
	byID, err := s.loadAllocations(ctx, []string{d.ID})
	if err != nil {
		return nil, err
	}
	d.Recipients = byID[d.ID]
	return d, nil
}

// ListDistributions retrieves distributions matching the filter, newest first.
func (s *Store) ListDistributions(ctx context.Context, filter storage.DistributionFilter) ([]*models.Distribution, error) {
	q := s.db.WithContext(ctx).Model(&distributionRow{})
	if !filter.From.IsZero() {
		q = q.Where("date >= ?", derefDate(&filter.From))
	}
	if !filter.To.IsZero() {
		q = q.Where("date <= ?", derefDate(&filter.To))
	}
	if filter.AidType != "" {
		q = q.Where("aid_type = ?", string(filter.AidType))
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}

	var rows []distributionRow
	if err := q.Order("date DESC, created_at DESC, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list distributions: %w", err)
	}

	distributions := make([]*models.Distribution, 0, len(rows))
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		distributions = append(distributions, r.toModel())
		ids = append(ids, r.ID)
	}
	if len(ids) == 0 {
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
func (s *Store) ListAllocationsByIndividual(ctx context.Context, individualID string) ([]models.Allocation, error) {
	var rows []allocationRow
	err := s.db.WithContext(ctx).
		Table("distribution_recipients r").
		Select("r.*").
		Joins("JOIN distributions d ON d.id = r.distribution_id").
		Where("r.individual_id = ?", individualID).
		Order("d.date DESC, d.created_at DESC, r.position").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}

	allocations := make([]models.Allocation, 0, len(rows))
	for _, r := range rows {
		allocations = append(allocations, r.toModel())
	}
	return allocations, nil
}

func (s *Store) loadAllocations(ctx context.Context, distributionIDs []string) (map[string][]models.Allocation, error) {
	var rows []allocationRow
	err := s.db.WithContext(ctx).
		Where("distribution_id IN ?", distributionIDs).
		Order("distribution_id, position").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get allocations: %w", err)
	}

	byID := make(map[string][]models.Allocation, len(distributionIDs))
	for _, r := range rows {
		byID[r.DistributionID] = append(byID[r.DistributionID], r.toModel())
	}
	return byID, nil
}

func insertAllocations(tx *gorm.DB, d *models.Distribution) error {
	if len(d.Recipients) == 0 {
		return nil
	}
	rows := make([]allocationRow, 0, len(d.Recipients))
	for i := range d.Recipients {
		a := &d.Recipients[i]
		if a.IndividualID != "" && a.ChildID != "" {
			return fmt.Errorf("allocation %d references both an individual and a child", i)
		}
		a.ID = uuid.New().String()
		a.DistributionID = d.ID
		rows = append(rows, allocationRowFromModel(a, i))
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to insert allocations: %w", err)
	}
	return nil
}
