package models

import "time"

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// ListStatus is an individual's eligibility list.
type ListStatus string

const (
	ListWhitelist   ListStatus = "whitelist"
	ListBlacklist   ListStatus = "blacklist"
	ListWaitinglist ListStatus = "waitinglist"
)

// Valid reports whether s is a known list status. The empty value is not valid.
func (s ListStatus) Valid() bool {
	switch s {
	case ListWhitelist, ListBlacklist, ListWaitinglist:
		return true
	}
	return false
}

// AssistanceType is a category of assistance an individual has asked for.
type AssistanceType string

const (
	AssistanceMedical   AssistanceType = "medical_help"
	AssistanceFood      AssistanceType = "food_assistance"
	AssistanceMarriage  AssistanceType = "marriage_assistance"
	AssistanceDebt      AssistanceType = "debt_assistance"
	AssistanceEducation AssistanceType = "education_assistance"
	AssistanceShelter   AssistanceType = "shelter_assistance"
)

// Valid reports whether t is a known assistance type.
func (t AssistanceType) Valid() bool {
	switch t {
	case AssistanceMedical, AssistanceFood, AssistanceMarriage,
		AssistanceDebt, AssistanceEducation, AssistanceShelter:
		return true
	}
	return false
}

// Individual is a registered person.
type Individual struct {
	// ID is the unique identifier (UUID format).
	ID string

	FirstName string
	LastName  string

	// IDNumber is the national identity number. Unique across individuals.
	IDNumber string

	DateOfBirth time.Time
	Gender      string
	Phone       string
	District    string
	Address     string

	// FamilyID is empty when the individual belongs to no family.
	FamilyID string

	ListStatus ListStatus

	// AssistanceTypes lists the kinds of help requested, without duplicates.
	AssistanceTypes []AssistanceType

	// AdditionalMembers are informally tracked dependents. A member's
	// position in this slice is its identity; entries are only appended.
	AdditionalMembers []AdditionalMember

	// CreatedBy is the user ID that registered the individual.
	CreatedBy string

	CreatedAt int64
	UpdatedAt int64
}

// FullName joins first and last name.
func (i *Individual) FullName() string {
	return joinName(i.FirstName, i.LastName)
}

// HasAssistanceType reports whether the individual requested t.
func (i *Individual) HasAssistanceType(t AssistanceType) bool {
	for _, at := range i.AssistanceTypes {
		if at == t {
			return true
		}
	}
	return false
}

// AdditionalMember is a dependent without full record status.
type AdditionalMember struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Relation    string `json:"relation,omitempty"`
	JobTitle    string `json:"job_title,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// Child is a child record linked to a parent individual and a family.
type Child struct {
	ID          string
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	Gender      string
	SchoolStage string

	// ParentID is the individual this child was registered under.
	ParentID string

	// FamilyID is inherited from the parent at creation.
	FamilyID string

	CreatedAt int64
}

// FullName joins first and last name.
func (c *Child) FullName() string {
	return joinName(c.FirstName, c.LastName)
}

// AgeAt returns completed years between dob and now, or -1 when dob is unset.
func AgeAt(dob, now time.Time) int {
	if dob.IsZero() {
		return -1
	}
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}
