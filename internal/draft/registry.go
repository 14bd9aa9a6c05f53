// Package draft keeps in-progress distribution selections on the server.
//
// Each draft wraps an aggregator.Aggregator and is owned by one user. Idle
// drafts expire; a janitor goroutine sweeps them until Close is called.
package draft

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/aidledger/internal/aggregator"
)

var (
	// ErrNotFound is returned for unknown, expired or foreign drafts.
	ErrNotFound = errors.New("draft not found")
	// ErrSubmitInProgress is returned while a draft is being submitted.
	ErrSubmitInProgress = errors.New("draft submission already in progress")
)

// Draft is one user's in-progress selection.
type Draft struct {
	ID    string
	Owner string

	mu         sync.Mutex
	agg        *aggregator.Aggregator
	submitting bool
	touched    time.Time
}

// Registry holds drafts keyed by ID.
type Registry struct {
	mu     sync.Mutex
	drafts map[string]*Draft

	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock sets the registry clock.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithLogger sets the registry logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// NewRegistry creates a Registry whose drafts expire after ttl of inactivity.
// The janitor runs every sweepEvery; a non-positive value disables it.
func NewRegistry(ttl, sweepEvery time.Duration, opts ...Option) *Registry {
	r := &Registry{
		drafts: make(map[string]*Draft),
		ttl:    ttl,
		now:    time.Now,
		logger: slog.Default(),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}

	if sweepEvery > 0 {
		go r.janitor(sweepEvery)
	} else {
		close(r.done)
	}
	return r
}

// Close stops the janitor and waits for it to exit.
func (r *Registry) Close() {
	r.closeOnce.Do(func() {
		close(r.stop)
		<-r.done
	})
}

func (r *Registry) janitor(every time.Duration) {
	defer close(r.done)
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Info("Expired idle drafts", "count", n)
			}
		}
	}
}

// Sweep removes drafts idle for longer than the TTL and returns how many
// were removed. Drafts being submitted are kept.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, d := range r.drafts {
		d.mu.Lock()
		expired := !d.submitting && d.touched.Before(cutoff)
		d.mu.Unlock()
		if expired {
			delete(r.drafts, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live drafts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.drafts)
}

// Create starts an empty draft for owner.
func (r *Registry) Create(owner string) *Draft {
	d := &Draft{
		ID:      uuid.New().String(),
		Owner:   owner,
		agg:     aggregator.New(),
		touched: r.now(),
	}
	r.mu.Lock()
	r.drafts[d.ID] = d
	r.mu.Unlock()
	return d
}

func (r *Registry) lookup(id, owner string) (*Draft, error) {
	r.mu.Lock()
	d, ok := r.drafts[id]
	r.mu.Unlock()
	if !ok || d.Owner != owner {
		return nil, ErrNotFound
	}
	return d, nil
}

// View runs fn with read access to a draft's aggregator.
func (r *Registry) View(id, owner string, fn func(*aggregator.Aggregator)) error {
	d, err := r.lookup(id, owner)
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.touched = r.now()
	fn(d.agg)
	return nil
}

// Update runs fn against a draft's aggregator. Drafts cannot change while
// they are being submitted.
func (r *Registry) Update(id, owner string, fn func(*aggregator.Aggregator) error) error {
	d, err := r.lookup(id, owner)
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.submitting {
		return ErrSubmitInProgress
	}
	d.touched = r.now()
	return fn(d.agg)
}

// Submit hands a snapshot of the draft's entries to fn. While fn runs, any
// other Submit or Update of the same draft fails with ErrSubmitInProgress.
// The draft is discarded when fn succeeds and kept for retry when it fails.
func (r *Registry) Submit(ctx context.Context, id, owner string, fn func(ctx context.Context, entries []aggregator.Entry) error) error {
	d, err := r.lookup(id, owner)
	if err != nil {
		return err
	}

	d.mu.Lock()
	if d.submitting {
		d.mu.Unlock()
		return ErrSubmitInProgress
	}
	d.submitting = true
	entries := d.agg.Entries()
	d.mu.Unlock()

	err = fn(ctx, entries)

	d.mu.Lock()
	d.submitting = false
	d.touched = r.now()
	d.mu.Unlock()

	if err != nil {
		return err
	}
	r.mu.Lock()
	delete(r.drafts, id)
	r.mu.Unlock()
	return nil
}

// Discard removes a draft.
func (r *Registry) Discard(id, owner string) error {
	if _, err := r.lookup(id, owner); err != nil {
		return err
	}
	r.mu.Lock()
	delete(r.drafts, id)
	r.mu.Unlock()
	return nil
}
