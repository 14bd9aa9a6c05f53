package recipient

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/storage"
)

const (
	// UnknownName is shown for references that cannot be resolved.
	UnknownName = "Unknown"
	// WalkInName is the default display name of a walk-in.
	WalkInName = "Walk-in"

	resolveConcurrency = 8
)

// Directory is the subset of the registry the resolver reads.
type Directory interface {
	GetIndividual(ctx context.Context, id string) (*models.Individual, error)
	GetChild(ctx context.Context, id string) (*models.Child, error)
}

// Resolved holds the display and grouping attributes of a reference.
type Resolved struct {
	Ref Ref

	// Kind is the resolved variant. A Record that resolves keeps the
	// variant it resolved to; an unresolved one stays KindRecord.
	Kind Kind

	Name       string
	FamilyID   string
	District   string
	Relation   string
	ParentName string

	// Age in completed years, or -1 when unknown.
	Age int

	// Unknown is set when the reference could not be resolved.
	Unknown bool
}

// TypeLabel is the human label used in listings and exports.
func (r Resolved) TypeLabel() string {
	if r.Unknown {
		return "Unknown"
	}
	switch r.Kind {
	case KindIndividual:
		return "Individual"
	case KindChild:
		return "Child"
	case KindAdditionalMember:
		return "Additional member"
	case KindWalkIn:
		return "Walk-in"
	}
	return "Unknown"
}

// TypedRef returns Ref with a plain record replaced by the variant it
// resolved to.
func (r Resolved) TypedRef() Ref {
	if r.Ref.Kind != KindRecord {
		return r.Ref
	}
	switch r.Kind {
	case KindIndividual:
		return Individual(r.Ref.ID)
	case KindChild:
		return Child(r.Ref.ID, r.FamilyID)
	}
	return r.Ref
}

// Resolver classifies references against a Directory. It never fails:
// unresolvable references degrade to an Unknown placeholder.
type Resolver struct {
	dir    Directory
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithClock sets the clock used to compute ages.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

// WithLogger sets the logger used for degraded lookups.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// NewResolver creates a Resolver reading from dir.
func NewResolver(dir Directory, opts ...Option) *Resolver {
	r := &Resolver{dir: dir, now: time.Now, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Classify parses and resolves a wire reference. Malformed references
// resolve to the Unknown placeholder.
func (r *Resolver) Classify(ctx context.Context, raw string) Resolved {
	ref, err := ParseRef(raw)
	if err != nil {
		r.logger.Debug("Unparseable recipient reference", "ref", raw, "error", err)
		return unknown(Record(raw))
	}
	return r.Resolve(ctx, ref)
}

// Resolve looks up ref and returns its display attributes.
func (r *Resolver) Resolve(ctx context.Context, ref Ref) Resolved {
	switch ref.Kind {
	case KindWalkIn:
		name := ref.WalkInName
		if name == "" {
			name = WalkInName
		}
		return Resolved{Ref: ref, Kind: KindWalkIn, Name: name, Age: -1}

	case KindAdditionalMember:
		return r.resolveAdditional(ctx, ref)

	case KindIndividual:
		if res, ok := r.resolveIndividual(ctx, ref); ok {
			return res
		}
		return unknown(ref)

	case KindChild:
		if res, ok := r.resolveChild(ctx, ref); ok {
			return res
		}
		return unknown(ref)
	}

	if res, ok := r.resolveIndividual(ctx, ref); ok {
		return res
	}
	if res, ok := r.resolveChild(ctx, ref); ok {
		return res
	}
	return unknown(ref)
}

// ResolveAll resolves refs concurrently and returns results in input order.
func (r *Resolver) ResolveAll(ctx context.Context, refs []Ref) []Resolved {
	out := make([]Resolved, len(refs))
	var g errgroup.Group
	g.SetLimit(resolveConcurrency)
	for i, ref := range refs {
		g.Go(func() error {
			out[i] = r.Resolve(ctx, ref)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (r *Resolver) resolveIndividual(ctx context.Context, ref Ref) (Resolved, bool) {
	ind, ok := r.individual(ctx, ref.ID)
	if !ok {
		return Resolved{}, false
	}
	return Resolved{
		Ref:      ref,
		Kind:     KindIndividual,
		Name:     ind.FullName(),
		FamilyID: ind.FamilyID,
		District: ind.District,
		Age:      models.AgeAt(ind.DateOfBirth, r.now()),
	}, true
}

func (r *Resolver) resolveChild(ctx context.Context, ref Ref) (Resolved, bool) {
	child, err := r.dir.GetChild(ctx, ref.ID)
	if err != nil {
		r.logLookup("child", ref.ID, err)
		return Resolved{}, false
	}
	res := Resolved{
		Ref:      ref,
		Kind:     KindChild,
		Name:     child.FullName(),
		FamilyID: child.FamilyID,
		Age:      models.AgeAt(child.DateOfBirth, r.now()),
	}
	if parent, ok := r.individual(ctx, child.ParentID); ok {
		res.District = parent.District
		res.ParentName = parent.FullName()
	}
	return res, true
}

func (r *Resolver) resolveAdditional(ctx context.Context, ref Ref) Resolved {
	parent, ok := r.individual(ctx, ref.ParentID)
	if !ok || ref.MemberIndex < 0 || ref.MemberIndex >= len(parent.AdditionalMembers) {
		return unknown(ref)
	}
	member := parent.AdditionalMembers[ref.MemberIndex]
	name := member.Name
	if name == "" {
		name = UnknownName
	}
	age := -1
	if dob, err := time.Parse(models.DateLayout, member.DateOfBirth); err == nil {
		age = models.AgeAt(dob, r.now())
	}
	return Resolved{
		Ref:        ref,
		Kind:       KindAdditionalMember,
		Name:       name,
		FamilyID:   parent.FamilyID,
		District:   parent.District,
		Relation:   member.Relation,
		ParentName: parent.FullName(),
		Age:        age,
	}
}

func (r *Resolver) individual(ctx context.Context, id string) (*models.Individual, bool) {
	ind, err := r.dir.GetIndividual(ctx, id)
	if err != nil {
		r.logLookup("individual", id, err)
		return nil, false
	}
	return ind, true
}

func (r *Resolver) logLookup(table, id string, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		return
	}
	r.logger.Warn("Recipient lookup failed", "table", table, "id", id, "error", err)
}

func unknown(ref Ref) Resolved {
	return Resolved{Ref: ref, Kind: ref.Kind, Name: UnknownName, Age: -1, Unknown: true}
}
