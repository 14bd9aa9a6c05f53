package draft

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/mmynk/aidledger/internal/aggregator"
	"github.com/mmynk/aidledger/internal/recipient"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const individualID = "11111111-1111-1111-1111-111111111111"

func TestCreateUpdateView(t *testing.T) {
	r := NewRegistry(time.Hour, 0)
	defer r.Close()

	d := r.Create("user-1")
	err := r.Update(d.ID, "user-1", func(a *aggregator.Aggregator) error {
		return a.Add(aggregator.Entry{Ref: recipient.Individual(individualID)})
	})
	require.NoError(t, err)

	var n int
	require.NoError(t, r.View(d.ID, "user-1", func(a *aggregator.Aggregator) { n = a.Len() }))
	assert.Equal(t, 1, n)

	assert.ErrorIs(t, r.View(d.ID, "user-2", func(*aggregator.Aggregator) {}), ErrNotFound)
	assert.ErrorIs(t, r.Update("missing", "user-1", func(*aggregator.Aggregator) error { return nil }), ErrNotFound)
}

func TestSubmitRejectsConcurrentSubmit(t *testing.T) {
	r := NewRegistry(time.Hour, 0)
	defer r.Close()
	d := r.Create("user-1")

	started := make(chan struct{})
	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := r.Submit(context.Background(), d.ID, "user-1", func(context.Context, []aggregator.Entry) error {
			close(started)
			<-release
			return nil
		})
		assert.NoError(t, err)
	}()

	<-started
	err := r.Submit(context.Background(), d.ID, "user-1", func(context.Context, []aggregator.Entry) error {
		t.Error("second submit must not run")
		return nil
	})
	assert.ErrorIs(t, err, ErrSubmitInProgress)
	assert.ErrorIs(t, r.Update(d.ID, "user-1", func(*aggregator.Aggregator) error { return nil }), ErrSubmitInProgress)

	close(release)
	wg.Wait()

	assert.Zero(t, r.Len())
	assert.ErrorIs(t, r.Discard(d.ID, "user-1"), ErrNotFound)
}

func TestFailedSubmitKeepsDraft(t *testing.T) {
	r := NewRegistry(time.Hour, 0)
	defer r.Close()
	d := r.Create("user-1")
	require.NoError(t, r.Update(d.ID, "user-1", func(a *aggregator.Aggregator) error {
		_, err := a.AddWalkIn("Sara", 2, time.UnixMilli(1))
		return err
	}))

	boom := errors.New("database unavailable")
	err := r.Submit(context.Background(), d.ID, "user-1", func(_ context.Context, entries []aggregator.Entry) error {
		assert.Len(t, entries, 1)
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, r.Len())

	// Retry succeeds with the same entries.
	err = r.Submit(context.Background(), d.ID, "user-1", func(_ context.Context, entries []aggregator.Entry) error {
		assert.Equal(t, 2, entries[0].Quantity)
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, r.Len())
}

func TestSweepExpiresIdleDrafts(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	r := NewRegistry(30*time.Minute, 0, WithClock(func() time.Time { return now }))
	defer r.Close()

	stale := r.Create("user-1")
	now = now.Add(20 * time.Minute)
	fresh := r.Create("user-1")
	now = now.Add(15 * time.Minute)

	assert.Equal(t, 1, r.Sweep())
	assert.ErrorIs(t, r.Discard(stale.ID, "user-1"), ErrNotFound)
	assert.NoError(t, r.Discard(fresh.ID, "user-1"))
}

func TestJanitorStopsOnClose(t *testing.T) {
	r := NewRegistry(time.Nanosecond, time.Millisecond)
	r.Create("user-1")

	require.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, 5*time.Millisecond)
	r.Close()
	r.Close()
}
