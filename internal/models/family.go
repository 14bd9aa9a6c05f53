package models

import "time"

// FamilyStatus is the triage color of a household.
type FamilyStatus string

const (
	FamilyGreen  FamilyStatus = "green"
	FamilyYellow FamilyStatus = "yellow"
	FamilyRed    FamilyStatus = "red"
)

// Valid reports whether s is a known family status.
func (s FamilyStatus) Valid() bool {
	return s == FamilyGreen || s == FamilyYellow || s == FamilyRed
}

// FamilyRole is a member's role within a family.
type FamilyRole string

const (
	// RoleParent marks a head of household.
	RoleParent FamilyRole = "parent"
	// RoleMember marks any other registered individual in the family.
	RoleMember FamilyRole = "member"
	// RoleChild marks a child record. Individuals never carry this role.
	RoleChild FamilyRole = "child"
)

// Family groups individuals and children into a household.
type Family struct {
	ID       string
	Name     string
	Status   FamilyStatus
	District string
	Phone    string
	Address  string

	// PrimaryContactID is the individual to contact for the family, if any.
	PrimaryContactID string

	CreatedAt int64

	// Members is populated by reads; writes use the Roles map below.
	Members []FamilyMember

	// Roles assigns registered individuals to the family on create.
	// Keyed by individual ID.
	Roles map[string]FamilyRole
}

// FamilyMember is a read model flattening individuals and children of one family.
type FamilyMember struct {
	// ID is an individual ID, or a child ID when Role is RoleChild.
	ID          string
	Role        FamilyRole
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	District    string

	// AdditionalMembers is only set for individuals.
	AdditionalMembers []AdditionalMember
}

// FullName joins first and last name.
func (m *FamilyMember) FullName() string {
	return joinName(m.FirstName, m.LastName)
}
