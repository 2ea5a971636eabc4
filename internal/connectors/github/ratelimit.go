package github

import (
	"context"
	"sync"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/ghtrend/internal/logger"
)

const (
	// SearchRateLimit is the unauthenticated search quota (requests per minute).
	SearchRateLimit = 10

	// LowRemaining is the remaining quota at which a warning is logged.
	LowRemaining = 2
)

// Quota is the search quota last reported by GitHub.
type Quota struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// Low reports whether the quota is close to running out.
func (q Quota) Low() bool {
	return q.Remaining <= LowRemaining
}

// RateLimiter spaces page requests and records the quota GitHub reports.
// It never waits for a quota reset: an exhausted quota surfaces as a
// RateLimitError and pagination stops.
type RateLimiter struct {
	mu     sync.Mutex
	quota  Quota
	bucket *rate.Limiter
}

// NewRateLimiter creates a rate limiter allowing requestsPerSecond
// requests with a burst of one. The quota starts full until a response
// says otherwise.
func NewRateLimiter(requestsPerSecond float64) *RateLimiter {
	return &RateLimiter{
		quota:  Quota{Limit: SearchRateLimit, Remaining: SearchRateLimit},
		bucket: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// Wait blocks until the next request may be sent.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}

// Record stores the quota go-github parsed from a response.
// Responses without rate headers leave the quota unchanged.
func (r *RateLimiter) Record(reported gh.Rate) {
	if reported.Limit == 0 {
		return
	}

	q := Quota{
		Limit:     reported.Limit,
		Remaining: reported.Remaining,
		Reset:     reported.Reset.Time,
	}

	r.mu.Lock()
	r.quota = q
	r.mu.Unlock()

	logger.Debug("Search quota: %d/%d remaining, resets %s",
		q.Remaining, q.Limit, q.Reset.Format(time.RFC3339))
	if q.Low() {
		logger.Warn("Search quota nearly exhausted: %d remaining until %s",
			q.Remaining, q.Reset.Format(time.RFC3339))
	}
}

// Quota returns the last recorded quota.
func (r *RateLimiter) Quota() Quota {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quota
}
