package ratelimit

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LimitExceededError reports a rejected admission check together with the
// time the window reopens
type LimitExceededError struct {
	ResetAt time.Time
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.ResetAt.UTC().Format(time.RFC3339))
}

// Twitter recent-search quota: 300 requests per 15-minute window per user
const (
	DefaultQuota  = 300
	DefaultWindow = 15 * time.Minute
)

// Decision is the outcome of an admission check
type Decision struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Limiter performs per-user admission control for outbound search calls.
// It is advisory only: the provider enforces the real quota, the limiter
// just avoids wasted round trips. The in-memory implementation is scoped
// to one process; a shared store can back multi-instance deployments.
type Limiter interface {
	// Check consumes one slot if the window has room
	Check(profileID string) Decision
	// ForceExhaust marks the window spent, typically after the provider
	// answered 429, so local calls fail fast until the window resets.
	// Returns when the forced window reopens.
	ForceExhaust(profileID string) time.Time
}

type window struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is the default process-local Limiter
type MemoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	quota   int
	period  time.Duration
	logger  *logrus.Logger

	// injectable for tests
	now func() time.Time
}

func NewMemoryLimiter(logger *logrus.Logger) *MemoryLimiter {
	return &MemoryLimiter{
		windows: make(map[string]*window),
		quota:   DefaultQuota,
		period:  DefaultWindow,
		logger:  logger,
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Check(profileID string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[profileID]
	if !ok || now.After(w.resetAt) {
		w = &window{count: 1, resetAt: now.Add(l.period)}
		l.windows[profileID] = w
		return Decision{Allowed: true, Remaining: l.quota - 1, ResetAt: w.resetAt}
	}

	if w.count >= l.quota {
		l.logger.WithFields(logrus.Fields{
			"profile_id": profileID,
			"reset_at":   w.resetAt,
		}).Warn("Local rate limit exhausted")
		return Decision{Allowed: false, Remaining: 0, ResetAt: w.resetAt}
	}

	w.count++
	return Decision{Allowed: true, Remaining: l.quota - w.count, ResetAt: w.resetAt}
}

func (l *MemoryLimiter) ForceExhaust(profileID string) time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()

	resetAt := l.now().Add(l.period)
	l.windows[profileID] = &window{count: l.quota, resetAt: resetAt}

	l.logger.WithField("profile_id", profileID).Warn("Rate limit window forced to exhausted state")
	return resetAt
}
