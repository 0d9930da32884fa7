package ratelimit

import (
	"context"
	"time"
)

// Config is a fixed window: at most Requests calls per Window.
type Config struct {
	Requests int
	Window   time.Duration
}

func (c Config) Enabled() bool {
	return c.Requests > 0 && c.Window > 0
}

type Result struct {
	Allowed   bool
	Remaining int
	// ResetAfter is the time left in the current window.
	ResetAfter time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (Result, error)
	Reset(ctx context.Context, key string) error
}
