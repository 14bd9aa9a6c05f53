// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/mmynk/aidledger/internal/models"
)

var (
	// ErrNotFound is wrapped by every lookup that matches no row.
	ErrNotFound = errors.New("not found")
	// ErrConflict is wrapped when a write violates a uniqueness constraint.
	ErrConflict = errors.New("conflict")
	// ErrNoFamily is returned when a child is added under a parent without a family.
	ErrNoFamily = errors.New("parent individual has no family")
)

// IndividualFilter narrows ListIndividuals. Zero fields match everything.
type IndividualFilter struct {
	District       string
	AssistanceType models.AssistanceType
	FamilyID       string
	ListStatus     models.ListStatus
	IDNumber       string
}

// NeedFilter narrows ListNeeds. Zero fields match everything.
type NeedFilter struct {
	IndividualID string
	Status       models.NeedStatus
	Category     models.NeedCategory
}

// DistributionFilter narrows ListDistributions. Zero fields match everything.
// From and To are inclusive calendar dates.
type DistributionFilter struct {
	From    time.Time
	To      time.Time
	AidType models.AidType
	Status  models.DistributionStatus
}

// RegistryStore persists individuals, families and children.
type RegistryStore interface {
	// CreateFamily persists a family and attaches the individuals in
	// family.Roles. ID and CreatedAt are populated by the store.
	CreateFamily(ctx context.Context, family *models.Family) error

	// GetFamily returns a family with its members.
	GetFamily(ctx context.Context, familyID string) (*models.Family, error)

	// ListFamilies returns all families ordered by name, without members.
	ListFamilies(ctx context.Context) ([]*models.Family, error)

	// ListFamilyMembers returns the individuals and children of a family.
	ListFamilyMembers(ctx context.Context, familyID string) ([]models.FamilyMember, error)

	// CreateIndividual persists an individual. ID, CreatedAt and UpdatedAt
	// are populated by the store.
	CreateIndividual(ctx context.Context, individual *models.Individual) error

	// GetIndividual returns an individual by ID.
	GetIndividual(ctx context.Context, individualID string) (*models.Individual, error)

	// ListIndividuals returns individuals matching the filter ordered by name.
	ListIndividuals(ctx context.Context, filter IndividualFilter) ([]*models.Individual, error)

	// AddAdditionalMember appends a member to an individual's
	// additional_members and returns its index.
	AddAdditionalMember(ctx context.Context, individualID string, member models.AdditionalMember) (int, error)

	// AddChildWithFamily persists a child under its parent individual. The
	// child inherits the parent's family; it is an error if the parent has none.
	AddChildWithFamily(ctx context.Context, child *models.Child) error

	// GetChild returns a child by ID.
	GetChild(ctx context.Context, childID string) (*models.Child, error)

	// ListChildrenByFamily returns the children of a family.
	ListChildrenByFamily(ctx context.Context, familyID string) ([]*models.Child, error)
}

// DistributionStore persists distributions and their allocations.
type DistributionStore interface {
	// CreateDistributionTransaction persists a distribution and all of its
	// allocations atomically. IDs and timestamps are populated by the store.
	CreateDistributionTransaction(ctx context.Context, d *models.Distribution) error

	// UpdateDistributionTransaction replaces a distribution's header fields
	// and allocations atomically.
	UpdateDistributionTransaction(ctx context.Context, d *models.Distribution) error

	// DeleteDistribution removes the allocations, then the distribution.
	DeleteDistribution(ctx context.Context, distributionID string) error

	// UpdateDistributionStatus changes only the status.
	UpdateDistributionStatus(ctx context.Context, distributionID string, status models.DistributionStatus) error

	// GetDistribution returns a distribution with its allocations.
	GetDistribution(ctx context.Context, distributionID string) (*models.Distribution, error)

	// ListDistributions returns distributions with allocations, newest date first.
	ListDistributions(ctx context.Context, filter DistributionFilter) ([]*models.Distribution, error)

	// ListAllocationsByIndividual returns every allocation made to an individual.
	ListAllocationsByIndividual(ctx context.Context, individualID string) ([]models.Allocation, error)
}

// NeedStore persists the needs recorded against individuals.
type NeedStore interface {
	// CreateNeed persists a need. ID, CreatedAt and UpdatedAt are populated
	// by the store.
	CreateNeed(ctx context.Context, need *models.Need) error

	GetNeed(ctx context.Context, needID string) (*models.Need, error)

	// ListNeeds returns needs matching the filter, newest first.
	ListNeeds(ctx context.Context, filter NeedFilter) ([]*models.Need, error)

	// UpdateNeed replaces category, priority, status and description.
	UpdateNeed(ctx context.Context, need *models.Need) error

	DeleteNeed(ctx context.Context, needID string) error
}

// ApprovalStore persists pending requests and the review audit log.
type ApprovalStore interface {
	// CreatePendingRequest persists a request. ID and SubmittedAt are
	// populated by the store.
	CreatePendingRequest(ctx context.Context, req *models.PendingRequest) error

	GetPendingRequest(ctx context.Context, requestID string) (*models.PendingRequest, error)

	// ListPendingRequests returns requests newest first. An empty status
	// matches every request.
	ListPendingRequests(ctx context.Context, status models.RequestStatus) ([]*models.PendingRequest, error)

	// UpdatePendingRequest replaces the payload and review fields. It
	// returns ErrConflict when the stored version is not req.Version-1,
	// so concurrent edits and reviews cannot both win.
	UpdatePendingRequest(ctx context.Context, req *models.PendingRequest) error

	DeletePendingRequest(ctx context.Context, requestID string) error

	// AddApprovalLog appends an audit entry. ID and CreatedAt are
	// populated by the store.
	AddApprovalLog(ctx context.Context, entry *models.ApprovalLog) error

	// ListApprovalLogs returns audit entries newest first.
	ListApprovalLogs(ctx context.Context) ([]*models.ApprovalLog, error)
}

// UserStore persists staff accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Store defines the full storage surface.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	RegistryStore
	DistributionStore
	NeedStore
	ApprovalStore
	UserStore

	// Close releases any resources held by the store.
	Close() error
}
