package ratelimit

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=ratelimit

import (
	"context"
	"fmt"
	"time"

	redisClient "crm-server/internal/clients/redis"
	"crm-server/internal/observability"

	"github.com/google/uuid"
)

// Window is the default sliding window length
const Window = time.Minute

// Result represents the result of a rate limit check
type Result struct {
	Allowed    bool      `json:"allowed"`
	Limit      int       `json:"limit"`
	Remaining  int       `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
	RetryAfter time.Duration
}

// Counter records hits in a sliding window
type Counter interface {
	HitWindow(ctx context.Context, key string, now time.Time, window time.Duration, limit int) (redisClient.WindowCount, bool, error)
}

// Service limits how fast one user may create outgoing mail
type Service struct {
	counter Counter
	limit   int
	logger  *observability.Logger
	now     func() time.Time
}

// NewService creates a limiter allowing limit hits per user per Window.
// A nil counter or a non-positive limit disables limiting.
func NewService(counter Counter, limit int, logger *observability.Logger) *Service {
	return &Service{
		counter: counter,
		limit:   limit,
		logger:  logger,
		now:     time.Now,
	}
}

// Enabled reports whether checks are enforced
func (s *Service) Enabled() bool {
	return s != nil && s.counter != nil && s.limit > 0
}

// CheckRateLimit records one hit for userID under scope
func (s *Service) CheckRateLimit(ctx context.Context, scope string, userID uuid.UUID) (Result, error) {
	now := s.now()
	key := fmt.Sprintf("rl:%s:%s", scope, userID)

	count, allowed, err := s.counter.HitWindow(ctx, key, now, Window, s.limit)
	if err != nil {
		return Result{}, fmt.Errorf("failed to check rate limit: %w", err)
	}

	if !allowed {
		resetAt := count.Oldest.Add(Window)
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return Result{
			Allowed:    false,
			Limit:      s.limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: retryAfter,
		}, nil
	}

	remaining := s.limit - count.Count
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: remaining,
		ResetAt:   now.Add(Window),
	}, nil
}
