// Package aggregator maintains the candidate recipient list of a distribution
// while it is being assembled.
//
// An Aggregator is not safe for concurrent use; callers serialize access.
package aggregator

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/recipient"
)

var (
	// ErrDuplicate is returned when a reference is already in the list.
	ErrDuplicate = errors.New("recipient already added")
	// ErrUnknownEntry is returned for keys that are not in the list.
	ErrUnknownEntry = errors.New("recipient not in list")
	// ErrInvalidQuantity is returned for quantities below 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrBulkSelectionTooSmall is returned when a bulk removal has fewer
	// than two selected entries.
	ErrBulkSelectionTooSmall = errors.New("bulk removal needs at least 2 selected recipients")
	// ErrInvalidMode is returned for an unknown family mode.
	ErrInvalidMode = errors.New("unknown family mode")
)

// FamilyMode selects which members AddFamily adds.
type FamilyMode string

const (
	// ModeHeads adds only members with the parent role.
	ModeHeads FamilyMode = "heads"
	// ModeAll adds every individual, their additional members, and the children.
	ModeAll FamilyMode = "all"
)

// Entry is one row of the candidate list.
type Entry struct {
	Ref recipient.Ref

	// Name is the display name captured when the row was added.
	Name string

	Quantity int
	Notes    string
}

// Key returns the deduplication key of the entry.
func (e Entry) Key() string {
	return e.Ref.Key()
}

// Candidate is a recipient offered by a filter or family lookup.
type Candidate struct {
	Ref  recipient.Ref
	Name string
}

// Aggregator holds the candidate list and the current selection.
type Aggregator struct {
	entries  []Entry
	index    map[string]int
	selected map[string]struct{}
}

// New returns an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{
		index:    make(map[string]int),
		selected: make(map[string]struct{}),
	}
}

// Len returns the number of entries.
func (a *Aggregator) Len() int {
	return len(a.entries)
}

// Has reports whether key is in the list.
func (a *Aggregator) Has(key string) bool {
	_, ok := a.index[key]
	return ok
}

// Get returns the entry for key.
func (a *Aggregator) Get(key string) (Entry, bool) {
	i, ok := a.index[key]
	if !ok {
		return Entry{}, false
	}
	return a.entries[i], true
}

// Entries returns a copy of the list in insertion order.
func (a *Aggregator) Entries() []Entry {
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// Add appends an entry. A zero quantity defaults to 1.
func (a *Aggregator) Add(e Entry) error {
	if e.Quantity == 0 {
		e.Quantity = 1
	}
	if e.Quantity < 1 {
		return ErrInvalidQuantity
	}
	key := e.Key()
	if a.Has(key) {
		return fmt.Errorf("%w: %s", ErrDuplicate, key)
	}
	a.index[key] = len(a.entries)
	a.entries = append(a.entries, e)
	return nil
}

// AddCandidates appends every candidate not already present and returns how
// many were added.
func (a *Aggregator) AddCandidates(candidates []Candidate, quantity int) (int, error) {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return 0, ErrInvalidQuantity
	}
	added := 0
	for _, c := range candidates {
		if a.Has(c.Ref.Key()) {
			continue
		}
		if err := a.Add(Entry{Ref: c.Ref, Name: c.Name, Quantity: quantity}); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// FamilyCandidates expands family members according to mode.
func FamilyCandidates(familyID string, members []models.FamilyMember, mode FamilyMode) []Candidate {
	var out []Candidate
	for _, m := range members {
		switch m.Role {
		case models.RoleParent:
			out = append(out, Candidate{Ref: recipient.Individual(m.ID), Name: m.FullName()})
		case models.RoleMember:
			if mode == ModeAll {
				out = append(out, Candidate{Ref: recipient.Individual(m.ID), Name: m.FullName()})
			}
		case models.RoleChild:
			if mode == ModeAll {
				out = append(out, Candidate{Ref: recipient.Child(m.ID, familyID), Name: m.FullName()})
			}
		}
	}
	if mode != ModeAll {
		return out
	}
	for _, m := range members {
		if m.Role == models.RoleChild {
			continue
		}
		for i, am := range m.AdditionalMembers {
			out = append(out, Candidate{Ref: recipient.AdditionalMember(m.ID, i), Name: am.Name})
		}
	}
	return out
}

// AddFamily adds the members of a family. Members already present are skipped.
func (a *Aggregator) AddFamily(familyID string, members []models.FamilyMember, mode FamilyMode, quantity int) (int, error) {
	if mode != ModeHeads && mode != ModeAll {
		return 0, fmt.Errorf("%w %q", ErrInvalidMode, mode)
	}
	return a.AddCandidates(FamilyCandidates(familyID, members, mode), quantity)
}

// AddWalkIn appends a walk-in keyed by the Unix milliseconds of now. The
// token is bumped until it is unique in the list.
func (a *Aggregator) AddWalkIn(name string, quantity int, now time.Time) (Entry, error) {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return Entry{}, ErrInvalidQuantity
	}
	if name == "" {
		name = recipient.WalkInName
	}
	millis := now.UnixMilli()
	ref := recipient.WalkIn(strconv.FormatInt(millis, 10), name)
	for a.Has(ref.Key()) {
		millis++
		ref.WalkInToken = strconv.FormatInt(millis, 10)
	}
	e := Entry{Ref: ref, Name: name, Quantity: quantity}
	if err := a.Add(e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// SetQuantity changes the quantity of an entry.
func (a *Aggregator) SetQuantity(key string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	i, ok := a.index[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntry, key)
	}
	a.entries[i].Quantity = quantity
	return nil
}

// SetNotes changes the notes of an entry.
func (a *Aggregator) SetNotes(key, notes string) error {
	i, ok := a.index[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntry, key)
	}
	a.entries[i].Notes = notes
	return nil
}

// Remove deletes one entry and drops it from the selection.
func (a *Aggregator) Remove(key string) error {
	if !a.Has(key) {
		return fmt.Errorf("%w: %s", ErrUnknownEntry, key)
	}
	a.removeKeys(map[string]struct{}{key: {}})
	return nil
}

// RemoveSelected deletes exactly the selected entries and clears the
// selection. At least two entries must be selected.
func (a *Aggregator) RemoveSelected() (int, error) {
	if len(a.selected) < 2 {
		return 0, ErrBulkSelectionTooSmall
	}
	n := len(a.selected)
	a.removeKeys(a.selected)
	a.selected = make(map[string]struct{})
	return n, nil
}

func (a *Aggregator) removeKeys(keys map[string]struct{}) {
	kept := a.entries[:0]
	for _, e := range a.entries {
		if _, drop := keys[e.Key()]; drop {
			continue
		}
		kept = append(kept, e)
	}
	// Clear the tail so removed entries are not retained.
	for i := len(kept); i < len(a.entries); i++ {
		a.entries[i] = Entry{}
	}
	a.entries = kept

	for key := range keys {
		delete(a.selected, key)
	}
	a.index = make(map[string]int, len(a.entries))
	for i, e := range a.entries {
		a.index[e.Key()] = i
	}
}

// Select adds keys to the selection. Unknown keys fail the whole call.
func (a *Aggregator) Select(keys ...string) error {
	for _, key := range keys {
		if !a.Has(key) {
			return fmt.Errorf("%w: %s", ErrUnknownEntry, key)
		}
	}
	for _, key := range keys {
		a.selected[key] = struct{}{}
	}
	return nil
}

// Deselect removes keys from the selection.
func (a *Aggregator) Deselect(keys ...string) {
	for _, key := range keys {
		delete(a.selected, key)
	}
}

// SelectAll selects every entry.
func (a *Aggregator) SelectAll() {
	a.selectWhere(func(Entry) bool { return true })
}

// SelectNone clears the selection.
func (a *Aggregator) SelectNone() {
	a.selected = make(map[string]struct{})
}

// SelectChildren replaces the selection with the child entries.
func (a *Aggregator) SelectChildren() {
	a.selectWhere(func(e Entry) bool { return e.Ref.Kind == recipient.KindChild })
}

// SelectAdditional replaces the selection with the additional-member entries.
func (a *Aggregator) SelectAdditional() {
	a.selectWhere(func(e Entry) bool { return e.Ref.Kind == recipient.KindAdditionalMember })
}

func (a *Aggregator) selectWhere(match func(Entry) bool) {
	a.selected = make(map[string]struct{})
	for _, e := range a.entries {
		if match(e) {
			a.selected[e.Key()] = struct{}{}
		}
	}
}

// IsSelected reports whether key is selected.
func (a *Aggregator) IsSelected(key string) bool {
	_, ok := a.selected[key]
	return ok
}

// Selected returns the selected keys in list order.
func (a *Aggregator) Selected() []string {
	out := make([]string, 0, len(a.selected))
	for _, e := range a.entries {
		if _, ok := a.selected[e.Key()]; ok {
			out = append(out, e.Key())
		}
	}
	return out
}
