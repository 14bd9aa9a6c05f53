package models

// NeedCategory is the kind of help a need asks for.
type NeedCategory string

const (
	NeedMedical        NeedCategory = "medical"
	NeedFinancial      NeedCategory = "financial"
	NeedFood           NeedCategory = "food"
	NeedShelter        NeedCategory = "shelter"
	NeedClothing       NeedCategory = "clothing"
	NeedEducation      NeedCategory = "education"
	NeedEmployment     NeedCategory = "employment"
	NeedTransportation NeedCategory = "transportation"
	NeedOther          NeedCategory = "other"
)

// Valid reports whether c is a known category.
func (c NeedCategory) Valid() bool {
	switch c {
	case NeedMedical, NeedFinancial, NeedFood, NeedShelter, NeedClothing,
		NeedEducation, NeedEmployment, NeedTransportation, NeedOther:
		return true
	}
	return false
}

// NeedPriority ranks how urgent a need is.
type NeedPriority string

const (
	PriorityLow    NeedPriority = "low"
	PriorityMedium NeedPriority = "medium"
	PriorityHigh   NeedPriority = "high"
	PriorityUrgent NeedPriority = "urgent"
)

func (p NeedPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// NeedStatus tracks progress on a need.
type NeedStatus string

const (
	NeedPending    NeedStatus = "pending"
	NeedInProgress NeedStatus = "in_progress"
	NeedCompleted  NeedStatus = "completed"
)

func (s NeedStatus) Valid() bool {
	switch s {
	case NeedPending, NeedInProgress, NeedCompleted:
		return true
	}
	return false
}

// Need is a recorded need of a registered individual.
type Need struct {
	ID           string
	IndividualID string
	Category     NeedCategory
	Priority     NeedPriority
	Status       NeedStatus
	Description  string

	// CreatedBy is the user who recorded the need, or who submitted the
	// request it was approved from.
	CreatedBy string

	CreatedAt int64
	UpdatedAt int64
}

// RequestType names what a pending request would create once approved.
type RequestType string

const (
	RequestIndividual RequestType = "individual"
	RequestNeed       RequestType = "need"
)

// RequestStatus is the review state of a pending request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected:
		return true
	}
	return false
}

// ChildSubmission is a child registered together with a submitted individual.
type ChildSubmission struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Gender      string `json:"gender,omitempty"`
	SchoolStage string `json:"school_stage,omitempty"`
}

// NeedSubmission is a need awaiting approval. IndividualID is empty when the
// need is part of an individual submission.
type NeedSubmission struct {
	IndividualID string       `json:"individual_id,omitempty"`
	Category     NeedCategory `json:"category"`
	Priority     NeedPriority `json:"priority"`
	Description  string       `json:"description"`
}

// IndividualSubmission is everything a staff member submits to register a
// new individual. NewFamilyName, when set, creates a family with the
// individual as its parent.
type IndividualSubmission struct {
	Individual    Individual        `json:"individual"`
	NewFamilyName string            `json:"new_family_name,omitempty"`
	Children      []ChildSubmission `json:"children,omitempty"`
	Needs         []NeedSubmission  `json:"needs,omitempty"`
}

// PendingRequest is a submission waiting for an admin's review. Exactly one
// of Individual and Need is set, matching Type.
type PendingRequest struct {
	ID     string
	Type   RequestType
	Status RequestStatus

	Individual *IndividualSubmission
	Need       *NeedSubmission

	SubmittedBy string
	SubmittedAt int64

	// ReviewedBy, ReviewedAt and AdminComment are cleared when the
	// submission is edited.
	ReviewedBy   string
	ReviewedAt   int64
	AdminComment string

	// Version starts at 1 and increases with every edit or review.
	Version int
}

// ApprovalAction is what an approval log entry records.
type ApprovalAction string

const (
	ActionApproved ApprovalAction = "approved"
	ActionRejected ApprovalAction = "rejected"
)

// ApprovalLog is an audit entry for a review decision.
type ApprovalLog struct {
	ID          string
	Action      ApprovalAction
	RequestID   string
	RequestType RequestType
	ActorID     string
	ActorName   string
	TargetName  string
	Details     string
	CreatedAt   int64
}
