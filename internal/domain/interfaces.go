package domain

import (
	"context"
	"time"
)

// BillingSource returns pre-grouped cost rows for a date range.
type BillingSource interface {
	// Fetch returns one row per (service, currency) for the range, sorted by cost descending.
	Fetch(ctx context.Context, dateRange DateRange) ([]CostRow, error)
}

// NotificationSink delivers a rendered notification.
type NotificationSink interface {
	// Send delivers text plus payload and reports whether delivery succeeded.
	Send(ctx context.Context, text string, payload NotificationPayload) bool

	// Name returns the sink identifier.
	Name() string
}

// SinkRegistry manages available notification sinks.
type SinkRegistry interface {
	// Register adds a sink to the registry.
	Register(ctx context.Context, sink NotificationSink) error

	// Get retrieves a sink by name.
	Get(ctx context.Context, sinkName string) (NotificationSink, error)

	// List returns all registered sink names.
	List(ctx context.Context) ([]string, error)
}

// RowCache caches fetched rows for closed billing periods.
type RowCache interface {
	// Get returns cached rows for the range or ErrCacheMiss.
	Get(ctx context.Context, dateRange DateRange) ([]CostRow, error)

	// Set stores rows for the range.
	Set(ctx context.Context, dateRange DateRange, rows []CostRow, ttl time.Duration) error
}

// Preflight validates configuration before an invocation touches any collaborator.
type Preflight func() error
