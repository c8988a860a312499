package musicbrainz

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// clock abstracts time so the limiter can be driven by a fake in tests.
type clock interface {
	Now() time.Time
	// Sleep waits for d or until ctx is done, returning ctx.Err() in the
	// latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// rateLimiter is the per-client request gate.
//
// It combines a token bucket (the steady request budget) with a throttle
// horizon: the earliest time the server will accept another request after
// it signalled throttling. Both are guarded by mu, and every permit is
// decided inside a single critical section.
//
// Permits are handed out in the order callers enter acquire. A permit is
// spent as soon as it is reserved; a caller whose context ends while
// waiting does not give it back.
type rateLimiter struct {
	mu        sync.Mutex
	bucket    *rate.Limiter // nil when limiting is disabled
	interval  time.Duration
	notBefore time.Time
	clock     clock
}

// newRateLimiter returns a limiter granting one permit per interval with
// the given burst. A negative interval disables the token bucket; the
// throttle horizon still applies.
func newRateLimiter(interval time.Duration, burst int, clk clock) *rateLimiter {
	l := &rateLimiter{interval: interval, clock: clk}
	if interval >= 0 {
		limit := rate.Inf
		if interval > 0 {
			limit = rate.Every(interval)
		}
		l.bucket = rate.NewLimiter(limit, burst)
	}
	return l
}

// reserve claims the next permit and returns how long the caller must
// wait before dispatching.
func (l *rateLimiter) reserve() (time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	at := now
	if l.bucket != nil {
		r := l.bucket.ReserveN(now, 1)
		if !r.OK() {
			return 0, fmt.Errorf("rate limiter cannot grant a permit (burst %d)", l.bucket.Burst())
		}
		at = now.Add(r.DelayFrom(now))
	}

	// While a throttle horizon is in force, waiters leave one interval
	// apart instead of all at once when it expires.
	if at.Before(l.notBefore) {
		at = l.notBefore
		step := l.interval
		if step < 0 {
			step = 0
		}
		l.notBefore = at.Add(step)
	}
	return at.Sub(now), nil
}

// acquire blocks until a permit may be used.
func (l *rateLimiter) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	delay, err := l.reserve()
	if err != nil {
		return err
	}
	if delay <= 0 {
		return nil
	}
	return l.clock.Sleep(ctx, delay)
}

// throttle pushes the throttle horizon to at least now+d.
func (l *rateLimiter) throttle(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	until := l.clock.Now().Add(d)
	if until.After(l.notBefore) {
		l.notBefore = until
	}
}

// retryAfter parses a Retry-After header given either as delta-seconds or
// as an HTTP-date. The second result is false when the header is absent
// or malformed.
func retryAfter(h http.Header, now time.Time) (time.Duration, bool) {
	v := strings.TrimSpace(h.Get("Retry-After"))
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	if t, err := http.ParseTime(v); err == nil {
		d := t.Sub(now)
		if d < 0 {
			d = 0
		}
		return d, true
	}
	return 0, false
}
