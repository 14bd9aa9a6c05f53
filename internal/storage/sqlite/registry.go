package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/storage"
)

const individualColumns = `id, first_name, last_name, id_number, date_of_birth, gender, phone, district,
	address, family_id, list_status, assistance_types, additional_members, created_by, created_at, updated_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// CreateFamily persists a new family and attaches the individuals in family.Roles.
func (s *SQLiteStore) CreateFamily(ctx context.Context, family *models.Family) error {
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

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO families (id, name, status, district, phone, address, primary_contact_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		family.ID, family.Name, string(family.Status), nullable(family.District), nullable(family.Phone),
		nullable(family.Address), nullable(family.PrimaryContactID), family.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert family: %w", err)
	}

	// Sorted so that failures are deterministic.
	ids := make([]string, 0, len(family.Roles))
	for id := range family.Roles {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		res, err := tx.ExecContext(ctx,
			"UPDATE individuals SET family_id = ?, updated_at = ? WHERE id = ?",
			family.ID, time.Now().Unix(), id,
		)
		if err != nil {
			return fmt.Errorf("failed to attach individual: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("%w: individual %s", storage.ErrNotFound, id)
		}
		// An individual belongs to one family at a time.
		if _, err := tx.ExecContext(ctx, "DELETE FROM family_members WHERE individual_id = ?", id); err != nil {
			return fmt.Errorf("failed to detach individual: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO family_members (family_id, individual_id, role) VALUES (?, ?, ?)",
			family.ID, id, string(family.Roles[id]),
		); err != nil {
			return fmt.Errorf("failed to insert family member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetFamily retrieves a family by ID, including its members.
func (s *SQLiteStore) GetFamily(ctx context.Context, familyID string) (*models.Family, error) {
	family, err := scanFamily(s.db.QueryRowContext(ctx,
		`SELECT id, name, status, district, phone, address, primary_contact_id, created_at
		 FROM families WHERE id = ?`,
		familyID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: family %s", storage.ErrNotFound, familyID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get family: %w", err)
	}

	family.Members, err = s.ListFamilyMembers(ctx, familyID)
	if err != nil {
		return nil, err
	}
	return family, nil
}

// ListFamilies retrieves all families ordered by name.
func (s *SQLiteStore) ListFamilies(ctx context.Context) ([]*models.Family, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, status, district, phone, address, primary_contact_id, created_at
		 FROM families ORDER BY name, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list families: %w", err)
	}
	defer rows.Close()

	var families []*models.Family
	for rows.Next() {
		family, err := scanFamily(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan family: %w", err)
		}
		families = append(families, family)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate families: %w", err)
	}
	return families, nil
}

// ListFamilyMembers returns the individuals (parents first) and then the children of a family.
func (s *SQLiteStore) ListFamilyMembers(ctx context.Context, familyID string) ([]models.FamilyMember, error) {
	var district sql.NullString
	err := s.db.QueryRowContext(ctx, "SELECT district FROM families WHERE id = ?", familyID).Scan(&district)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: family %s", storage.ErrNotFound, familyID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get family: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT i.id, fm.role, i.first_name, i.last_name, i.date_of_birth, i.district, i.additional_members
		 FROM family_members fm
		 JOIN individuals i ON i.id = fm.individual_id
		 WHERE fm.family_id = ?
		 ORDER BY CASE fm.role WHEN 'parent' THEN 0 ELSE 1 END, i.first_name, i.last_name, i.id`,
		familyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get family members: %w", err)
	}
	defer rows.Close()

	var members []models.FamilyMember
	for rows.Next() {
		var (
			m          models.FamilyMember
			role       string
			dob        sql.NullString
			additional string
		)
		if err := rows.Scan(&m.ID, &role, &m.FirstName, &m.LastName, &dob, &m.District, &additional); err != nil {
			return nil, fmt.Errorf("failed to scan family member: %w", err)
		}
		m.Role = models.FamilyRole(role)
		if m.DateOfBirth, err = parseDate(dob); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(additional), &m.AdditionalMembers); err != nil {
			return nil, fmt.Errorf("failed to decode additional members: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate family members: %w", err)
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
			District:    district.String,
		})
	}
	return members, nil
}

// CreateIndividual persists a new individual. When FamilyID is set the
// individual joins that family as a member.
func (s *SQLiteStore) CreateIndividual(ctx context.Context, individual *models.Individual) error {
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

	assistance, err := json.Marshal(nonNilTypes(individual.AssistanceTypes))
	if err != nil {
		return fmt.Errorf("failed to encode assistance types: %w", err)
	}
	additional, err := json.Marshal(nonNilMembers(individual.AdditionalMembers))
	if err != nil {
		return fmt.Errorf("failed to encode additional members: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if individual.FamilyID != "" {
		var exists int
		err := tx.QueryRowContext(ctx, "SELECT 1 FROM families WHERE id = ?", individual.FamilyID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: family %s", storage.ErrNotFound, individual.FamilyID)
		}
		if err != nil {
			return fmt.Errorf("failed to check family: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO individuals (`+individualColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		individual.ID, individual.FirstName, individual.LastName, individual.IDNumber,
		formatDate(individual.DateOfBirth), nullable(individual.Gender), nullable(individual.Phone),
		individual.District, nullable(individual.Address), nullable(individual.FamilyID),
		string(individual.ListStatus), string(assistance), string(additional),
		nullable(individual.CreatedBy), individual.CreatedAt, individual.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: id number %s already registered", storage.ErrConflict, individual.IDNumber)
	}
	if err != nil {
		return fmt.Errorf("failed to insert individual: %w", err)
	}

	if individual.FamilyID != "" {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO family_members (family_id, individual_id, role) VALUES (?, ?, ?)",
			individual.FamilyID, individual.ID, string(models.RoleMember),
		); err != nil {
			return fmt.Errorf("failed to insert family member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetIndividual retrieves an individual by ID.
func (s *SQLiteStore) GetIndividual(ctx context.Context, individualID string) (*models.Individual, error) {
	individual, err := scanIndividual(s.db.QueryRowContext(ctx,
		"SELECT "+individualColumns+" FROM individuals WHERE id = ?",
		individualID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: individual %s", storage.ErrNotFound, individualID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get individual: %w", err)
	}
	return individual, nil
}

// ListIndividuals retrieves individuals matching the filter.
func (s *SQLiteStore) ListIndividuals(ctx context.Context, filter storage.IndividualFilter) ([]*models.Individual, error) {
	var (
		where []string
		args  []interface{}
	)
	if filter.District != "" {
		where = append(where, "district = ?")
		args = append(args, filter.District)
	}
	if filter.AssistanceType != "" {
		where = append(where, "EXISTS (SELECT 1 FROM json_each(assistance_types) WHERE value = ?)")
		args = append(args, string(filter.AssistanceType))
	}
	if filter.FamilyID != "" {
		where = append(where, "family_id = ?")
		args = append(args, filter.FamilyID)
	}
	if filter.ListStatus != "" {
		where = append(where, "list_status = ?")
		args = append(args, string(filter.ListStatus))
	}
	if filter.IDNumber != "" {
		where = append(where, "id_number = ?")
		args = append(args, filter.IDNumber)
	}

	query := "SELECT " + individualColumns + " FROM individuals"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY first_name, last_name, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list individuals: %w", err)
	}
	defer rows.Close()

	var individuals []*models.Individual
	for rows.Next() {
		individual, err := scanIndividual(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan individual: %w", err)
		}
		individuals = append(individuals, individual)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate individuals: %w", err)
	}
	return individuals, nil
}

// AddAdditionalMember appends a member in a single statement so concurrent
// appends cannot overwrite each other.
func (s *SQLiteStore) AddAdditionalMember(ctx context.Context, individualID string, member models.AdditionalMember) (int, error) {
	encoded, err := json.Marshal(member)
	if err != nil {
		return 0, fmt.Errorf("failed to encode additional member: %w", err)
	}

	var index int
	err = s.db.QueryRowContext(ctx,
		`UPDATE individuals
		 SET additional_members = json_insert(additional_members, '$[#]', json(?)), updated_at = ?
		 WHERE id = ?
		 RETURNING json_array_length(additional_members) - 1`,
		string(encoded), time.Now().Unix(), individualID,
	).Scan(&index)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: individual %s", storage.ErrNotFound, individualID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to add additional member: %w", err)
	}
	return index, nil
}

// AddChildWithFamily persists a child in the family of its parent.
func (s *SQLiteStore) AddChildWithFamily(ctx context.Context, child *models.Child) error {
	if child.ID == "" {
		child.ID = uuid.New().String()
	}
	if child.CreatedAt == 0 {
		child.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var familyID sql.NullString
	err = tx.QueryRowContext(ctx, "SELECT family_id FROM individuals WHERE id = ?", child.ParentID).Scan(&familyID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: parent individual %s", storage.ErrNotFound, child.ParentID)
	}
	if err != nil {
		return fmt.Errorf("failed to get parent: %w", err)
	}
	if !familyID.Valid || familyID.String == "" {
		return fmt.Errorf("%w: %s", storage.ErrNoFamily, child.ParentID)
	}
	child.FamilyID = familyID.String

	_, err = tx.ExecContext(ctx,
		`INSERT INTO children (id, first_name, last_name, date_of_birth, gender, school_stage, parent_id, family_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		child.ID, child.FirstName, child.LastName, formatDate(child.DateOfBirth), nullable(child.Gender),
		nullable(child.SchoolStage), child.ParentID, child.FamilyID, child.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert child: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetChild retrieves a child by ID.
func (s *SQLiteStore) GetChild(ctx context.Context, childID string) (*models.Child, error) {
	child, err := scanChild(s.db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, date_of_birth, gender, school_stage, parent_id, family_id, created_at
		 FROM children WHERE id = ?`,
		childID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: child %s", storage.ErrNotFound, childID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get child: %w", err)
	}
	return child, nil
}

// ListChildrenByFamily retrieves the children of a family ordered by name.
func (s *SQLiteStore) ListChildrenByFamily(ctx context.Context, familyID string) ([]*models.Child, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, first_name, last_name, date_of_birth, gender, school_stage, parent_id, family_id, created_at
		 FROM children WHERE family_id = ? ORDER BY first_name, last_name, id`,
		familyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	defer rows.Close()

	var children []*models.Child
	for rows.Next() {
		child, err := scanChild(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan child: %w", err)
		}
		children = append(children, child)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate children: %w", err)
	}
	return children, nil
}

func scanFamily(row rowScanner) (*models.Family, error) {
	family := &models.Family{}
	var status string
	var district, phone, address, contact sql.NullString
	if err := row.Scan(&family.ID, &family.Name, &status, &district, &phone, &address, &contact, &family.CreatedAt); err != nil {
		return nil, err
	}
	family.Status = models.FamilyStatus(status)
	family.District = district.String
	family.Phone = phone.String
	family.Address = address.String
	family.PrimaryContactID = contact.String
	return family, nil
}

func scanIndividual(row rowScanner) (*models.Individual, error) {
	individual := &models.Individual{}
	var (
		dob, gender, phone, address, familyID, createdBy sql.NullString
		listStatus, assistance, additional              string
	)
	err := row.Scan(
		&individual.ID, &individual.FirstName, &individual.LastName, &individual.IDNumber,
		&dob, &gender, &phone, &individual.District, &address, &familyID,
		&listStatus, &assistance, &additional, &createdBy,
		&individual.CreatedAt, &individual.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if individual.DateOfBirth, err = parseDate(dob); err != nil {
		return nil, err
	}
	individual.Gender = gender.String
	individual.Phone = phone.String
	individual.Address = address.String
	individual.FamilyID = familyID.String
	individual.CreatedBy = createdBy.String
	individual.ListStatus = models.ListStatus(listStatus)
	if err := json.Unmarshal([]byte(assistance), &individual.AssistanceTypes); err != nil {
		return nil, fmt.Errorf("failed to decode assistance types: %w", err)
	}
	if err := json.Unmarshal([]byte(additional), &individual.AdditionalMembers); err != nil {
		return nil, fmt.Errorf("failed to decode additional members: %w", err)
	}
	return individual, nil
}

func scanChild(row rowScanner) (*models.Child, error) {
	child := &models.Child{}
	var dob, gender, stage sql.NullString
	err := row.Scan(&child.ID, &child.FirstName, &child.LastName, &dob, &gender, &stage,
		&child.ParentID, &child.FamilyID, &child.CreatedAt)
	if err != nil {
		return nil, err
	}
	if child.DateOfBirth, err = parseDate(dob); err != nil {
		return nil, err
	}
	child.Gender = gender.String
	child.SchoolStage = stage.String
	return child, nil
}

func nonNilTypes(v []models.AssistanceType) []models.AssistanceType {
	if v == nil {
		return []models.AssistanceType{}
	}
	return v
}

func nonNilMembers(v []models.AdditionalMember) []models.AdditionalMember {
	if v == nil {
		return []models.AdditionalMember{}
	}
	return v
}
