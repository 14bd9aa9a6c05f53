// Package recipient models distribution recipient references and resolves
// them against the registry.
//
// A reference is a tagged union over registered individuals, children,
// additional members stored inside an individual, and walk-ins. The string
// form exists only at the wire boundary:
//
//	<uuid>                      individual or child (Record until resolved)
//	additional_<parent>_<index> additional member of an individual
//	walkin_<token>              walk-in recipient
package recipient

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/aidledger/internal/models"
)

const (
	additionalPrefix = "additional_"
	walkInPrefix     = "walkin_"
)

// ErrInvalidRef is wrapped by ParseRef for malformed references.
var ErrInvalidRef = errors.New("invalid recipient reference")

// Kind identifies the variant of a Ref.
type Kind int

const (
	// KindRecord is a plain ID whose table is not yet known.
	KindRecord Kind = iota
	KindIndividual
	KindChild
	KindAdditionalMember
	KindWalkIn
)

func (k Kind) String() string {
	switch k {
	case KindRecord:
		return "record"
	case KindIndividual:
		return "individual"
	case KindChild:
		return "child"
	case KindAdditionalMember:
		return "additional_member"
	case KindWalkIn:
		return "walk_in"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Ref is a reference to a distribution recipient.
type Ref struct {
	Kind Kind

	// ID is the individual, child or record ID.
	ID string

	// FamilyID is known for children selected through a family.
	FamilyID string

	// ParentID and MemberIndex identify an additional member.
	ParentID    string
	MemberIndex int

	// WalkInToken makes walk-in keys unique; WalkInName is the display name.
	WalkInToken string
	WalkInName  string
}

// Individual returns a reference to a registered individual.
func Individual(id string) Ref {
	return Ref{Kind: KindIndividual, ID: id}
}

// Child returns a reference to a child record.
func Child(id, familyID string) Ref {
	return Ref{Kind: KindChild, ID: id, FamilyID: familyID}
}

// AdditionalMember returns a reference to additional_members[index] of parentID.
func AdditionalMember(parentID string, index int) Ref {
	return Ref{Kind: KindAdditionalMember, ParentID: parentID, MemberIndex: index}
}

// WalkIn returns a walk-in reference.
func WalkIn(token, name string) Ref {
	return Ref{Kind: KindWalkIn, WalkInToken: token, WalkInName: name}
}

// Record returns a reference to an individual or child, not yet resolved.
func Record(id string) Ref {
	return Ref{Kind: KindRecord, ID: id}
}

// String returns the wire encoding of r. It is also the key used to
// deduplicate selections.
func (r Ref) String() string {
	switch r.Kind {
	case KindAdditionalMember:
		return additionalPrefix + r.ParentID + "_" + strconv.Itoa(r.MemberIndex)
	case KindWalkIn:
		return walkInPrefix + r.WalkInToken
	}
	return r.ID
}

// Key is an alias for String.
func (r Ref) Key() string {
	return r.String()
}

// IsWalkIn reports whether r is a walk-in.
func (r Ref) IsWalkIn() bool {
	return r.Kind == KindWalkIn
}

// ParseRef decodes the wire form of a reference. Plain IDs decode to
// KindRecord; the resolver decides between individual and child.
func ParseRef(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Ref{}, fmt.Errorf("%w: empty", ErrInvalidRef)

	case strings.HasPrefix(s, walkInPrefix):
		token := strings.TrimPrefix(s, walkInPrefix)
		if token == "" {
			return Ref{}, fmt.Errorf("%w: %q has no walk-in token", ErrInvalidRef, s)
		}
		return WalkIn(token, ""), nil

	case strings.HasPrefix(s, additionalPrefix):
		rest := strings.TrimPrefix(s, additionalPrefix)
		// UUIDs contain no underscore, so the index follows the last one.
		sep := strings.LastIndex(rest, "_")
		if sep <= 0 {
			return Ref{}, fmt.Errorf("%w: %q has no member index", ErrInvalidRef, s)
		}
		parent, indexStr := rest[:sep], rest[sep+1:]
		if _, err := uuid.Parse(parent); err != nil {
			return Ref{}, fmt.Errorf("%w: %q has invalid parent id: %v", ErrInvalidRef, s, err)
		}
		index, err := strconv.Atoi(indexStr)
		if err != nil || index < 0 || strconv.Itoa(index) != indexStr {
			return Ref{}, fmt.Errorf("%w: %q has invalid member index", ErrInvalidRef, s)
		}
		return AdditionalMember(parent, index), nil
	}
	return Record(s), nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Ref) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Ref) UnmarshalText(text []byte) error {
	parsed, err := ParseRef(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// FromAllocation returns the reference a persisted allocation row points to.
// Walk-in rows keep only their display name.
func FromAllocation(a models.Allocation) Ref {
	switch {
	case a.ChildID != "":
		return Child(a.ChildID, "")
	case a.IndividualID != "":
		return Individual(a.IndividualID)
	}
	return WalkIn("", a.RecipientName)
}
