package middleware

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/time/rate"
)

// ErrRateLimited is returned when a client exceeds its call budget.
var ErrRateLimited = errors.New("too many requests, slow down")

// idleAfter is how long a client may stay silent before its limiter is
// forgotten. A forgotten client starts again with a full burst.
const idleAfter = 10 * time.Minute

// RateLimiter throttles selected procedures per client address.
type RateLimiter struct {
	limit      rate.Limit
	burst      int
	procedures map[string]bool
	now        func() time.Time

	mu        sync.Mutex
	clients   map[string]*client
	lastSweep time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows perSecond calls with the given burst to each of
// procedures, tracked per client host.
func NewRateLimiter(perSecond float64, burst int, procedures ...string) *RateLimiter {
	rl := &RateLimiter{
		limit:      rate.Limit(perSecond),
		burst:      burst,
		procedures: make(map[string]bool, len(procedures)),
		now:        time.Now,
		clients:    make(map[string]*client),
	}
	for _, p := range procedures {
		rl.procedures[p] = true
	}
	return rl
}

// Allow reports whether host may make another call now.
func (rl *RateLimiter) Allow(host string) bool {
	now := rl.now()

	rl.mu.Lock()
	if now.Sub(rl.lastSweep) >= idleAfter {
		rl.sweep(now)
	}
	c, ok := rl.clients[host]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[host] = c
	}
	c.lastSeen = now
	rl.mu.Unlock()

	return c.limiter.AllowN(now, 1)
}

// sweep drops clients idle for longer than idleAfter. Callers hold mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for host, c := range rl.clients {
		if now.Sub(c.lastSeen) >= idleAfter {
			delete(rl.clients, host)
		}
	}
	rl.lastSweep = now
}

// Interceptor rejects throttled calls with ResourceExhausted.
func (rl *RateLimiter) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if rl.procedures[req.Spec().Procedure] && !rl.Allow(clientHost(req.Peer().Addr)) {
				return nil, connect.NewError(connect.CodeResourceExhausted, ErrRateLimited)
			}
			return next(ctx, req)
		}
	}
}

func clientHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
