package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/storage"
)

// CreateFamily persists a new family and attaches the individuals in family.Roles.
func (s *Store) CreateFamily(ctx context.Context, family *models.Family) error {
	if family.ID == "" {
		family.ID = uuid.New().String()
	}
	if family.CreatedAt == 0 {
		family.CreatedAt = time.Now().Unix()
	}
	if family.Status == "" {
		family.Status = models.FamilyGreen
	}
	for id, role := range family.Roles {
		if role != models.RoleParent && role != models.RoleMember {
			return fmt.Errorf("invalid role %q for individual %s", role, id)
		}
	}

	ids := make([]string, 0, len(family.Roles))
	for id := range family.Roles {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := familyRowFromModel(family)
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to insert family: %w", err)
		}

		for _, id := range ids {
			res := tx.Model(&individualRow{}).Where("id = ?", id).Updates(map[string]interface{}{
				"family_id":  family.ID,
				"updated_at": time.Now().Unix(),
			})
			if res.Error != nil {
				return fmt.Errorf("failed to attach individual: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: individual %s", storage.ErrNotFound, id)
			}
			if err := tx.Where("individual_id = ?", id).Delete(&familyMemberRow{}).Error; err != nil {
				return fmt.Errorf("failed to detach individual: %w", err)
			}
			member := familyMemberRow{FamilyID: family.ID, IndividualID: id, Role: string(family.Roles[id])}
			if err := tx.Create(&member).Error; err != nil {
				return fmt.Errorf("failed to insert family member: %w", err)
			}
		}
		return nil
	})
}

// GetFamily retrieves a family by ID, including its members.
func (s *Store) GetFamily(ctx context.Context, familyID string) (*models.Family, error) {
	var row familyRow
	err := s.db.WithContext(ctx).Where("id = ?", familyID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: family %s", storage.ErrNotFound, familyID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get family: %w", err)
	}

	family := row.toModel()
	family.Members, err = s.ListFamilyMembers(ctx, familyID)
	if err != nil {
		return nil, err
	}
	return family, nil
}

// ListFamilies retrieves all families ordered by name.
func (s *Store) ListFamilies(ctx context.Context) ([]*models.Family, error) {
	var rows []familyRow
	if err := s.db.WithContext(ctx).Order("name, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list families: %w", err)
	}
	families := make([]*models.Family, 0, len(rows))
	for _, r := range rows {
		families = append(families, r.toModel())
	}
	return families, nil
}

// ListFamilyMembers returns the individuals (parents first) and then the children of a family.
func (s *Store) ListFamilyMembers(ctx context.Context, familyID string) ([]models.FamilyMember, error) {
	var family familyRow
	err := s.db.WithContext(ctx).Select("id", "district").Where("id = ?", familyID).Take(&family).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: family %s", storage.ErrNotFound, familyID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get family: %w", err)
	}

	var joined []struct {
		individualRow
		Role string `gorm:"column:role"`
	}
	err = s.db.WithContext(ctx).
		Table("family_members fm").
		Select("i.*, fm.role").
		Joins("JOIN individuals i ON i.id = fm.individual_id").
		Where("fm.family_id = ?", familyID).
		Order("CASE fm.role WHEN 'parent' THEN 0 ELSE 1 END, i.first_name, i.last_name, i.id").
		Scan(&joined).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get family members: %w", err)
	}

	members := make([]models.FamilyMember, 0, len(joined))
	for _, j := range joined {
		ind, err := j.individualRow.toModel()
		if err != nil {
			return nil, err
		}
		members = append(members, models.FamilyMember{
			ID:                ind.ID,
			Role:              models.FamilyRole(j.Role),
			FirstName:         ind.FirstName,
			LastName:          ind.LastName,
			DateOfBirth:       ind.DateOfBirth,
			District:          ind.District,
			AdditionalMembers: ind.AdditionalMembers,
		})
	}

	children, err := s.ListChildrenByFamily(ctx, familyID)
	if err != nil {
		return nil, err
	}
	for _, c := range children {
		members = append(members, models.FamilyMember{
			ID:          c.ID,
			Role:        models.RoleChild,
			FirstName:   c.FirstName,
			LastName:    c.LastName,
			DateOfBirth: c.DateOfBirth,
			District:    deref(family.District),
		})
	}
	return members, nil
}

// CreateIndividual persists a new individual. When FamilyID is set the
// individual joins that family as a member.
func (s *Store) CreateIndividual(ctx context.Context, individual *models.Individual) error {
	if individual.ID == "" {
		individual.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if individual.CreatedAt == 0 {
		individual.CreatedAt = now
	}
	individual.UpdatedAt = now
	if individual.ListStatus == "" {
		individual.ListStatus = models.ListWhitelist
	}

	row, err := individualRowFromModel(individual)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if individual.FamilyID != "" {
			var count int64
			if err := tx.Model(&familyRow{}).Where("id = ?", individual.FamilyID).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check family: %w", err)
			}
			if count == 0 {
				return fmt.Errorf("%w: family %s", storage.ErrNotFound, individual.FamilyID)
			}
		}

		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: id number %s already registered", storage.ErrConflict, individual.IDNumber)
			}
			return fmt.Errorf("failed to insert individual: %w", err)
		}

		if individual.FamilyID != "" {
			member := familyMemberRow{FamilyID: individual.FamilyID, IndividualID: individual.ID, Role: string(models.RoleMember)}
			if err := tx.Create(&member).Error; err != nil {
				return fmt.Errorf("failed to insert family member: %w", err)
			}
		}
		return nil
	})
}

// GetIndividual retrieves an individual by ID.
func (s *Store) GetIndividual(ctx context.Context, individualID string) (*models.Individual, error) {
	var row individualRow
	err := s.db.WithContext(ctx).Where("id = ?", individualID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: individual %s", storage.ErrNotFound, individualID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get individual: %w", err)
	}
	return row.toModel()
}

// ListIndividuals retrieves individuals matching the filter.
func (s *Store) ListIndividuals(ctx context.Context, filter storage.IndividualFilter) ([]*models.Individual, error) {
	q := s.db.WithContext(ctx).Model(&individualRow{})
	if filter.District != "" {
		q = q.Where("district = ?", filter.District)
	}
	if filter.AssistanceType != "" {
		q = q.Where("? = ANY(assistance_types)", string(filter.AssistanceType))
	}
	if filter.FamilyID != "" {
		q = q.Where("family_id = ?", filter.FamilyID)
	}
	if filter.ListStatus != "" {
		q = q.Where("list_status = ?", string(filter.ListStatus))
	}
	if filter.IDNumber != "" {
		q = q.Where("id_number = ?", filter.IDNumber)
	}

	var rows []individualRow
	if err := q.Order("first_name, last_name, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list individuals: %w", err)
	}

	individuals := make([]*models.Individual, 0, len(rows))
	for _, r := range rows {
		ind, err := r.toModel()
		if err != nil {
			return nil, err
		}
		individuals = append(individuals, ind)
	}
	return individuals, nil
}

// AddAdditionalMember appends a member with a single UPDATE so concurrent
// appends cannot overwrite each other.
func (s *Store) AddAdditionalMember(ctx context.Context, individualID string, member models.AdditionalMember) (int, error) {
	encoded, err := json.Marshal(member)
	if err != nil {
		return 0, fmt.Errorf("failed to encode additional member: %w", err)
	}

	var index int
	err = s.db.WithContext(ctx).Raw(
		`UPDATE individuals
		 SET additional_members = additional_members || jsonb_build_array(?::jsonb), updated_at = ?
		 WHERE id = ?
		 RETURNING jsonb_array_length(additional_members) - 1`,
		string(encoded), time.Now().Unix(), individualID,
	).Row().Scan(&index)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: individual %s", storage.ErrNotFound, individualID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to add additional member: %w", err)
	}
	return index, nil
}

// AddChildWithFamily persists a child in the family of its parent.
func (s *Store) AddChildWithFamily(ctx context.Context, child *models.Child) error {
	if child.ID == "" {
		child.ID = uuid.New().String()
	}
	if child.CreatedAt == 0 {
		child.CreatedAt = time.Now().Unix()
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent individualRow
		err := tx.Select("id", "family_id").Where("id = ?", child.ParentID).Take(&parent).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: parent individual %s", storage.ErrNotFound, child.ParentID)
		}
		if err != nil {
			return fmt.Errorf("failed to get parent: %w", err)
		}
		if deref(parent.FamilyID) == "" {
			return fmt.Errorf("%w: %s", storage.ErrNoFamily, child.ParentID)
		}
		child.FamilyID = *parent.FamilyID

		row := childRowFromModel(child)
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to insert child: %w", err)
		}
		return nil
	})
}

// GetChild retrieves a child by ID.
func (s *Store) GetChild(ctx context.Context, childID string) (*models.Child, error) {
	var row childRow
	err := s.db.WithContext(ctx).Where("id = ?", childID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: child %s", storage.ErrNotFound, childID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get child: %w", err)
	}
	return row.toModel(), nil
}

// ListChildrenByFamily retrieves the children of a family ordered by name.
func (s *Store) ListChildrenByFamily(ctx context.Context, familyID string) ([]*models.Child, error) {
	var rows []childRow
	err := s.db.WithContext(ctx).Where("family_id = ?", familyID).Order("first_name, last_name, id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	children := make([]*models.Child, 0, len(rows))
	for _, r := range rows {
		children = append(children, r.toModel())
	}
	return children, nil
}
