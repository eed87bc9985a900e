package llm

import (
	"context"
	"sync"
	"time"

	"github.com/kevinkeet/watershed/internal/store"
)

// UsageLimitProvider is a decorator that enforces local per-day ceilings on
// call count and total tokens before any request leaves the process. The
// counters seed from today's logged events on first use and then track
// in-memory, so a restarted process still honors the ceilings.
type UsageLimitProvider struct {
	inner     Provider
	eventRepo store.EventRepo
	config    UsageConfig

	mu     sync.Mutex
	day    string // YYYY-MM-DD the counters belong to
	calls  int
	tokens int
	seeded bool

	now func() time.Time
}

// WithUsageLimits wraps a Provider with daily usage enforcement.
func WithUsageLimits(p Provider, repo store.EventRepo, cfg UsageConfig) Provider {
	if cfg.MaxCallsPerDay == 0 {
		cfg.MaxCallsPerDay = DefaultMaxCallsPerDay
	}
	if cfg.MaxTokensPerDay == 0 {
		cfg.MaxTokensPerDay = DefaultMaxTokensPerDay
	}
	return &UsageLimitProvider{
		inner:     p,
		eventRepo: repo,
		config:    cfg,
		now:       time.Now,
	}
}

func (u *UsageLimitProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := u.reserve(ctx); err != nil {
		return nil, err
	}

	resp, err := u.inner.Generate(ctx, req)

	if resp != nil {
		u.record(resp.Usage.TotalTokens)
	}

	return resp, err
}

func (u *UsageLimitProvider) ModelID() string {
	return u.inner.ModelID()
}

// reserve checks the ceilings and counts the call. The call slot is consumed
// even if the request later fails; failed requests still cost a call.
func (u *UsageLimitProvider) reserve(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now()
	today := now.Format("2006-01-02")

	// Counters reset at local midnight.
	if u.day != today {
		u.day = today
		u.calls = 0
		u.tokens = 0
		u.seeded = false
	}

	if !u.seeded {
		calls, tokens, err := u.eventRepo.TodayLLMUsage(ctx, now)
		if err == nil {
			u.calls = calls
			u.tokens = tokens
		}
		u.seeded = true
	}

	if u.calls >= u.config.MaxCallsPerDay {
		return &ErrUsageLimit{Resource: "calls", Limit: u.config.MaxCallsPerDay}
	}
	if u.tokens >= u.config.MaxTokensPerDay {
		return &ErrUsageLimit{Resource: "tokens", Limit: u.config.MaxTokensPerDay}
	}

	u.calls++
	return nil
}

func (u *UsageLimitProvider) record(tokens int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.tokens += tokens
}
