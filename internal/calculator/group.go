package calculator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/aidledger/internal/recipient"
)

// ErrUnresolvedRef is returned by Group for references still of kind Record.
var ErrUnresolvedRef = errors.New("recipient reference is not resolved")

// Entry is a recipient row as selected by the user.
type Entry struct {
	Ref      recipient.Ref
	Name     string
	Quantity int
	Notes    string
}

// Line is a recipient row as it will be persisted. At most one of
// IndividualID and ChildID is set; neither means a walk-in.
type Line struct {
	IndividualID  string
	ChildID       string
	RecipientName string
	Quantity      int
	Notes         string

	// Bundled counts the additional members merged into this line.
	Bundled int
}

// BundledNote is the note attached to a line that absorbed n additional members.
func BundledNote(n int) string {
	return fmt.Sprintf("Includes %d additional family member(s)", n)
}

// Group merges entries into persistable lines.
//
// Rules:
//   - additional members fold into their parent individual's line
//     (quantities summed, Bundled incremented); the parent line is created
//     if the parent was not selected itself
//   - repeated individual or child references merge into one line
//   - walk-ins always get their own line with no identity reference
//   - lines keep the order in which their key first appeared
func Group(entries []Entry) ([]Line, error) {
	var lines []Line
	byKey := make(map[string]int)
	var notes [][]string

	upsert := func(key string, seed Line) int {
		if i, ok := byKey[key]; ok {
			return i
		}
		byKey[key] = len(lines)
		lines = append(lines, seed)
		notes = append(notes, nil)
		return len(lines) - 1
	}

	for _, e := range entries {
		if e.Quantity < 1 {
			return nil, fmt.Errorf("recipient %s: quantity must be at least 1", e.Ref)
		}

		var i int
		switch e.Ref.Kind {
		case recipient.KindIndividual:
			i = upsert("individual:"+e.Ref.ID, Line{IndividualID: e.Ref.ID})
		case recipient.KindChild:
			i = upsert("child:"+e.Ref.ID, Line{ChildID: e.Ref.ID})
		case recipient.KindAdditionalMember:
			i = upsert("individual:"+e.Ref.ParentID, Line{IndividualID: e.Ref.ParentID})
			lines[i].Bundled++
		case recipient.KindWalkIn:
			name := e.Name
			if name == "" {
				name = e.Ref.WalkInName
			}
			if name == "" {
				name = recipient.WalkInName
			}
			i = upsert(e.Ref.Key(), Line{RecipientName: name})
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnresolvedRef, e.Ref)
		}

		lines[i].Quantity += e.Quantity
		if n := strings.TrimSpace(e.Notes); n != "" {
			notes[i] = append(notes[i], n)
		}
	}

	for i := range lines {
		if lines[i].Bundled > 0 {
			notes[i] = append(notes[i], BundledNote(lines[i].Bundled))
		}
		lines[i].Notes = strings.Join(notes[i], "; ")
	}
	return lines, nil
}
