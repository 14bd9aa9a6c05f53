package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/storage"
)

type userRow struct {
	ID           string `gorm:"column:id;primaryKey"`
	Email        string `gorm:"column:email;uniqueIndex;not null"`
	DisplayName  string `gorm:"column:display_name;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	Role         string `gorm:"column:role;not null;default:user"`
	CreatedAt    int64  `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt    int64  `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (userRow) TableName() string { return "users" }

type familyRow struct {
	ID               string  `gorm:"column:id;primaryKey"`
	Name             string  `gorm:"column:name;not null"`
	Status           string  `gorm:"column:status;not null;default:green"`
	District         *string `gorm:"column:district"`
	Phone            *string `gorm:"column:phone"`
	Address          *string `gorm:"column:address"`
	PrimaryContactID *string `gorm:"column:primary_contact_id"`
	CreatedAt        int64   `gorm:"column:created_at;autoCreateTime:false"`
}

func (familyRow) TableName() string { return "families" }

type individualRow struct {
	ID                string         `gorm:"column:id;primaryKey"`
	FirstName         string         `gorm:"column:first_name;not null"`
	LastName          string         `gorm:"column:last_name;not null"`
	IDNumber          string         `gorm:"column:id_number;uniqueIndex;not null"`
	DateOfBirth       *time.Time     `gorm:"column:date_of_birth;type:date"`
	Gender            *string        `gorm:"column:gender"`
	Phone             *string        `gorm:"column:phone"`
	District          string         `gorm:"column:district;index;not null;default:''"`
	Address           *string        `gorm:"column:address"`
	FamilyID          *string        `gorm:"column:family_id;index"`
	ListStatus        string         `gorm:"column:list_status;not null;default:whitelist"`
	AssistanceTypes   pq.StringArray `gorm:"column:assistance_types;type:text[];not null;default:'{}'"`
	AdditionalMembers datatypes.JSON `gorm:"column:additional_members;type:jsonb;not null;default:'[]'"`
	CreatedBy         *string        `gorm:"column:created_by"`
	CreatedAt         int64          `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt         int64          `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (individualRow) TableName() string { return "individuals" }

type familyMemberRow struct {
	FamilyID     string `gorm:"column:family_id;primaryKey;index"`
	IndividualID string `gorm:"column:individual_id;primaryKey"`
	Role         string `gorm:"column:role;not null"`
}

func (familyMemberRow) TableName() string { return "family_members" }

type childRow struct {
	ID          string     `gorm:"column:id;primaryKey"`
	FirstName   string     `gorm:"column:first_name;not null"`
	LastName    string     `gorm:"column:last_name;not null"`
	DateOfBirth *time.Time `gorm:"column:date_of_birth;type:date"`
	Gender      *string    `gorm:"column:gender"`
	SchoolStage *string    `gorm:"column:school_stage"`
	ParentID    string     `gorm:"column:parent_id;not null"`
	FamilyID    string     `gorm:"column:family_id;index;not null"`
	CreatedAt   int64      `gorm:"column:created_at;autoCreateTime:false"`
}

func (childRow) TableName() string { return "children" }

type distributionRow struct {
	ID           string              `gorm:"column:id;primaryKey"`
	Date         time.Time           `gorm:"column:date;type:date;index;not null"`
	AidType      string              `gorm:"column:aid_type;not null"`
	Description  string              `gorm:"column:description;not null"`
	Quantity     int                 `gorm:"column:quantity;not null"`
	Value        decimal.Decimal     `gorm:"column:value;type:numeric(14,2);not null"`
	ValuePerUnit decimal.NullDecimal `gorm:"column:value_per_unit;type:numeric(14,2)"`
	Status       string              `gorm:"column:status;not null"`
	CreatedBy    *string             `gorm:"column:created_by"`
	CreatedAt    int64               `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt    int64               `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (distributionRow) TableName() string { return "distributions" }

type allocationRow struct {
	ID             string          `gorm:"column:id;primaryKey"`
	DistributionID string          `gorm:"column:distribution_id;index;not null"`
	IndividualID   *string         `gorm:"column:individual_id;index"`
	ChildID        *string         `gorm:"column:child_id"`
	RecipientName  *string         `gorm:"column:recipient_name"`
	Quantity       int             `gorm:"column:quantity_received;not null"`
	Value          decimal.Decimal `gorm:"column:value_received;type:numeric(14,2);not null"`
	Notes          *string         `gorm:"column:notes"`
	Position       int             `gorm:"column:position;not null"`
}

func (allocationRow) TableName() string { return "distribution_recipients" }

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

func derefDate(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func userRowFromModel(u *models.User) userRow {
	return userRow{
		ID:           u.ID,
		Email:        u.Email,
		DisplayName:  u.DisplayName,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r userRow) toModel() *models.User {
	return &models.User{
		ID:           r.ID,
		Email:        r.Email,
		DisplayName:  r.DisplayName,
		PasswordHash: r.PasswordHash,
		Role:         models.Role(r.Role),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func familyRowFromModel(f *models.Family) familyRow {
	return familyRow{
		ID:               f.ID,
		Name:             f.Name,
		Status:           string(f.Status),
		District:         optional(f.District),
		Phone:            optional(f.Phone),
		Address:          optional(f.Address),
		PrimaryContactID: optional(f.PrimaryContactID),
		CreatedAt:        f.CreatedAt,
	}
}

func (r familyRow) toModel() *models.Family {
	return &models.Family{
		ID:               r.ID,
		Name:             r.Name,
		Status:           models.FamilyStatus(r.Status),
		District:         deref(r.District),
		Phone:            deref(r.Phone),
		Address:          deref(r.Address),
		PrimaryContactID: deref(r.PrimaryContactID),
		CreatedAt:        r.CreatedAt,
	}
}

func individualRowFromModel(i *models.Individual) (individualRow, error) {
	members := i.AdditionalMembers
	if members == nil {
		members = []models.AdditionalMember{}
	}
	encoded, err := json.Marshal(members)
	if err != nil {
		return individualRow{}, fmt.Errorf("failed to encode additional members: %w", err)
	}
	types := make(pq.StringArray, 0, len(i.AssistanceTypes))
	for _, t := range i.AssistanceTypes {
		types = append(types, string(t))
	}
	return individualRow{
		ID:                i.ID,
		FirstName:         i.FirstName,
		LastName:          i.LastName,
		IDNumber:          i.IDNumber,
		DateOfBirth:       optionalDate(i.DateOfBirth),
		Gender:            optional(i.Gender),
		Phone:             optional(i.Phone),
		District:          i.District,
		Address:           optional(i.Address),
		FamilyID:          optional(i.FamilyID),
		ListStatus:        string(i.ListStatus),
		AssistanceTypes:   types,
		AdditionalMembers: datatypes.JSON(encoded),
		CreatedBy:         optional(i.CreatedBy),
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}, nil
}

func (r individualRow) toModel() (*models.Individual, error) {
	i := &models.Individual{
		ID:          r.ID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		IDNumber:    r.IDNumber,
		DateOfBirth: derefDate(r.DateOfBirth),
		Gender:      deref(r.Gender),
		Phone:       deref(r.Phone),
		District:    r.District,
		Address:     deref(r.Address),
		FamilyID:    deref(r.FamilyID),
		ListStatus:  models.ListStatus(r.ListStatus),
		CreatedBy:   deref(r.CreatedBy),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	for _, t := range r.AssistanceTypes {
		i.AssistanceTypes = append(i.AssistanceTypes, models.AssistanceType(t))
	}
	if len(r.AdditionalMembers) > 0 {
		if err := json.Unmarshal(r.AdditionalMembers, &i.AdditionalMembers); err != nil {
			return nil, fmt.Errorf("failed to decode additional members: %w", err)
		}
	}
	return i, nil
}

func childRowFromModel(c *models.Child) childRow {
	return childRow{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		DateOfBirth: optionalDate(c.DateOfBirth),
		Gender:      optional(c.Gender),
		SchoolStage: optional(c.SchoolStage),
		ParentID:    c.ParentID,
		FamilyID:    c.FamilyID,
		CreatedAt:   c.CreatedAt,
	}
}

func (r childRow) toModel() *models.Child {
	return &models.Child{
		ID:          r.ID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DateOfBirth: derefDate(r.DateOfBirth),
		Gender:      deref(r.Gender),
		SchoolStage: deref(r.SchoolStage),
		ParentID:    r.ParentID,
		FamilyID:    r.FamilyID,
		CreatedAt:   r.CreatedAt,
	}
}

func distributionRowFromModel(d *models.Distribution) distributionRow {
	return distributionRow{
		ID:           d.ID,
		Date:         derefDate(&d.Date),
		AidType:      string(d.AidType),
		Description:  d.Description,
		Quantity:     d.Quantity,
		Value:        d.Value,
		ValuePerUnit: d.ValuePerUnit,
		Status:       string(d.Status),
		CreatedBy:    optional(d.CreatedBy),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r distributionRow) toModel() *models.Distribution {
	return &models.Distribution{
		ID:           r.ID,
		Date:         derefDate(&r.Date),
		AidType:      models.AidType(r.AidType),
		Description:  r.Description,
		Quantity:     r.Quantity,
		Value:        r.Value,
		ValuePerUnit: r.ValuePerUnit,
		Status:       models.DistributionStatus(r.Status),
		CreatedBy:    deref(r.CreatedBy),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func allocationRowFromModel(a *models.Allocation, position int) allocationRow {
	return allocationRow{
		ID:             a.ID,
		DistributionID: a.DistributionID,
		IndividualID:   optional(a.IndividualID),
		ChildID:        optional(a.ChildID),
		RecipientName:  optional(a.RecipientName),
		Quantity:       a.Quantity,
		Value:          a.Value,
		Notes:          optional(a.Notes),
		Position:       position,
	}
}

func (r allocationRow) toModel() models.Allocation {
	return models.Allocation{
		ID:             r.ID,
		DistributionID: r.DistributionID,
		IndividualID:   deref(r.IndividualID),
		ChildID:        deref(r.ChildID),
		RecipientName:  deref(r.RecipientName),
		Quantity:       r.Quantity,
		Value:          r.Value,
		Notes:          deref(r.Notes),
	}
}

type needRow struct {
	ID           string  `gorm:"column:id;primaryKey"`
	IndividualID string  `gorm:"column:individual_id;index;not null"`
	Category     string  `gorm:"column:category;not null"`
	Priority     string  `gorm:"column:priority;not null"`
	Status       string  `gorm:"column:status;not null;default:pending"`
	Description  string  `gorm:"column:description;not null"`
	CreatedBy    *string `gorm:"column:created_by"`
	CreatedAt    int64   `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt    int64   `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (needRow) TableName() string { return "needs" }

func needRowFromModel(n *models.Need) needRow {
	return needRow{
		ID:           n.ID,
		IndividualID: n.IndividualID,
		Category:     string(n.Category),
		Priority:     string(n.Priority),
		Status:       string(n.Status),
		Description:  n.Description,
		CreatedBy:    optional(n.CreatedBy),
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
}

func (r needRow) toModel() *models.Need {
	return &models.Need{
		ID:           r.ID,
		IndividualID: r.IndividualID,
		Category:     models.NeedCategory(r.Category),
		Priority:     models.NeedPriority(r.Priority),
		Status:       models.NeedStatus(r.Status),
		Description:  r.Description,
		CreatedBy:    deref(r.CreatedBy),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type pendingRequestRow struct {
	ID           string         `gorm:"column:id;primaryKey"`
	Type         string         `gorm:"column:type;not null"`
	Status       string         `gorm:"column:status;index;not null;default:pending"`
	Data         datatypes.JSON `gorm:"column:data;type:jsonb;not null"`
	SubmittedBy  string         `gorm:"column:submitted_by;not null"`
	SubmittedAt  int64          `gorm:"column:submitted_at;not null"`
	ReviewedBy   *string        `gorm:"column:reviewed_by"`
	ReviewedAt   *int64         `gorm:"column:reviewed_at"`
	AdminComment *string        `gorm:"column:admin_comment"`
	Version      int            `gorm:"column:version;not null;default:1"`
}

func (pendingRequestRow) TableName() string { return "pending_requests" }

func pendingRequestRowFromModel(req *models.PendingRequest) (pendingRequestRow, error) {
	data, err := storage.EncodePayload(req)
	if err != nil {
		return pendingRequestRow{}, err
	}
	row := pendingRequestRow{
		ID:           req.ID,
		Type:         string(req.Type),
		Status:       string(req.Status),
		Data:         datatypes.JSON(data),
		SubmittedBy:  req.SubmittedBy,
		SubmittedAt:  req.SubmittedAt,
		ReviewedBy:   optional(req.ReviewedBy),
		AdminComment: optional(req.AdminComment),
		Version:      req.Version,
	}
	if req.ReviewedAt != 0 {
		row.ReviewedAt = &req.ReviewedAt
	}
	return row, nil
}

func (r pendingRequestRow) toModel() (*models.PendingRequest, error) {
	req := &models.PendingRequest{
		ID:           r.ID,
		Type:         models.RequestType(r.Type),
		Status:       models.RequestStatus(r.Status),
		SubmittedBy:  r.SubmittedBy,
		SubmittedAt:  r.SubmittedAt,
		ReviewedBy:   deref(r.ReviewedBy),
		AdminComment: deref(r.AdminComment),
		Version:      r.Version,
	}
	if r.ReviewedAt != nil {
		req.ReviewedAt = *r.ReviewedAt
	}
	if err := storage.DecodePayload(req, r.Data); err != nil {
		return nil, err
	}
	return req, nil
}

type approvalLogRow struct {
	ID          string  `gorm:"column:id;primaryKey"`
	Action      string  `gorm:"column:action;not null"`
	RequestID   *string `gorm:"column:request_id"`
	RequestType *string `gorm:"column:request_type"`
	ActorID     *string `gorm:"column:actor_id"`
	ActorName   *string `gorm:"column:actor_name"`
	TargetName  *string `gorm:"column:target_name"`
	Details     *string `gorm:"column:details"`
	CreatedAt   int64   `gorm:"column:created_at;index;autoCreateTime:false"`
}

func (approvalLogRow) TableName() string { return "approval_logs" }

func approvalLogRowFromModel(l *models.ApprovalLog) approvalLogRow {
	return approvalLogRow{
		ID:          l.ID,
		Action:      string(l.Action),
		RequestID:   optional(l.RequestID),
		RequestType: optional(string(l.RequestType)),
		ActorID:     optional(l.ActorID),
		ActorName:   optional(l.ActorName),
		TargetName:  optional(l.TargetName),
		Details:     optional(l.Details),
		CreatedAt:   l.CreatedAt,
	}
}

func (r approvalLogRow) toModel() *models.ApprovalLog {
	return &models.ApprovalLog{
		ID:          r.ID,
		Action:      models.ApprovalAction(r.Action),
		RequestID:   deref(r.RequestID),
		RequestType: models.RequestType(deref(r.RequestType)),
		ActorID:     deref(r.ActorID),
		ActorName:   deref(r.ActorName),
		TargetName:  deref(r.TargetName),
		Details:     deref(r.Details),
		CreatedAt:   r.CreatedAt,
	}
}
