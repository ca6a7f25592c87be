package domain

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/davidbz/spendwatch/internal/observability"
)

const (
	messageSent        = "Billing information sent successfully"
	messageSendFailed  = "Failed to send billing information"
	messageUnexpected  = "An unexpected error occurred"
	defaultRowCacheTTL = 6 * time.Hour
)

// NotifierOption customizes a Notifier.
type NotifierOption func(*Notifier)

// WithRowCache enables caching of rows for periods that have already closed.
func WithRowCache(cache RowCache, ttl time.Duration) NotifierOption {
	return func(n *Notifier) {
		n.cache = cache
		if ttl > 0 {
			n.cacheTTL = ttl
		}
	}
}

// WithPreflight runs check before every invocation.
func WithPreflight(check Preflight) NotifierOption {
	return func(n *Notifier) {
		n.preflight = check
	}
}

// WithClock overrides the source of the current time.
func WithClock(clock func() time.Time) NotifierOption {
	return func(n *Notifier) {
		n.clock = clock
	}
}

// WithLocation sets the time zone that defines "today".
func WithLocation(loc *time.Location) NotifierOption {
	return func(n *Notifier) {
		if loc != nil {
			n.location = loc
		}
	}
}

// Notifier runs one billing notification per invocation:
// period -> source -> aggregator -> renderer -> sink.
type Notifier struct {
	source     BillingSource
	sink       NotificationSink
	aggregator *CostAggregator
	renderer   *Renderer
	cache      RowCache
	cacheTTL   time.Duration
	preflight  Preflight
	clock      func() time.Time
	location   *time.Location
}

// NewNotifier creates a new notifier (DI constructor).
func NewNotifier(
	source BillingSource,
	sink NotificationSink,
	aggregator *CostAggregator,
	renderer *Renderer,
	opts ...NotifierOption,
) *Notifier {
	n := &Notifier{
		source:     source,
		sink:       sink,
		aggregator: aggregator,
		renderer:   renderer,
		cache:      nil,
		cacheTTL:   defaultRowCacheTTL,
		preflight:  nil,
		clock:      time.Now,
		location:   time.UTC,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Notify renders the billing notification for req and delivers it. It always
// returns a definitive outcome; failures are classified, logged and mapped to
// status codes.
func (n *Notifier) Notify(ctx context.Context, req InvocationRequest) Outcome {
	ctx = observability.WithPeriod(ctx, req.Selector())
	if n.sink != nil {
		ctx = observability.WithSink(ctx, n.sink.Name())
	}
	logger := observability.FromContext(ctx)

	preview, err := n.Preview(ctx, req)
	if err != nil {
		return OutcomeFor(ctx, err)
	}

	if n.sink == nil {
		return OutcomeFor(ctx, fmt.Errorf("%w: no notification sink", ErrConfiguration))
	}

	if !n.sink.Send(ctx, preview.Content, preview.Embed) {
		return OutcomeFor(ctx, fmt.Errorf("%w: sink %s", ErrDeliveryFailed, n.sink.Name()))
	}

	logger.Info("billing information sent")

	return Outcome{
		StatusCode: http.StatusOK,
		Body:       OutcomeBody{Message: messageSent},
	}
}

// Preview runs the pipeline up to rendering without delivering anything.
func (n *Notifier) Preview(ctx context.Context, req InvocationRequest) (*Preview, error) {
	logger := observability.FromContext(ctx)

	if n.preflight != nil {
		if err := n.preflight(); err != nil {
			return nil, err
		}
	}

	today := n.today()

	period, err := n.resolve(req, today)
	if err != nil {
		return nil, err
	}

	logger.Info("fetching billing data",
		observability.Int("year", period.Year),
		observability.Int("month", int(period.Month)),
		observability.String("start_date", period.Range.StartString()),
		observability.String("end_date", period.Range.EndString()),
		observability.Bool("to_date", period.ToDate),
	)

	rows, err := n.fetch(ctx, period.Range, today)
	if err != nil {
		return nil, err
	}

	aggregation := n.aggregator.Summarize(ctx, rows)
	summary := NewBillingSummary(period, aggregation.Summary)

	logger.Info("billing data summarized",
		observability.String("total_cost", summary.TotalCost.String()),
		observability.String("currency", summary.Currency),
		observability.Int("services", len(summary.Services)),
		observability.Bool("degraded", aggregation.Degraded()),
	)

	embed := n.renderer.Render(ctx, summary)
	logger.Debug("rendered notification",
		observability.String("title", embed.Title),
		observability.Int("fields", len(embed.Fields)),
	)

	return &Preview{
		Content: n.renderer.Headline(summary),
		Embed:   embed,
		Summary: summary,
	}, nil
}

// today returns the current calendar date in the notifier's location, as a UTC midnight.
func (n *Notifier) today() time.Time {
	now := n.clock().In(n.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// resolve selects exactly one period branch: month-to-date, previous month,
// then an explicit year and month.
func (n *Notifier) resolve(req InvocationRequest, today time.Time) (Period, error) {
	switch {
	case req.CurrentMonth():
		return ResolveMonthToDate(today), nil
	case req.UsePreviousMonth:
		return ResolvePreviousMonth(today), nil
	case req.Year != 0 && req.Month != 0:
		if req.Month < int(time.January) || req.Month > int(time.December) {
			return Period{}, fmt.Errorf("%w: month %d out of range", ErrInvalidRequest, req.Month)
		}
		if req.Year < 1 {
			return Period{}, fmt.Errorf("%w: year %d out of range", ErrInvalidRequest, req.Year)
		}
		return ResolveMonth(req.Year, time.Month(req.Month)), nil
	default:
		return Period{}, fmt.Errorf(
			"%w: must specify use_current_month, use_previous_month, or provide year and month",
			ErrNoPeriod,
		)
	}
}

// fetch reads rows from the cache for closed periods and from the source otherwise.
func (n *Notifier) fetch(ctx context.Context, dateRange DateRange, today time.Time) ([]CostRow, error) {
	logger := observability.FromContext(ctx)

	cacheable := n.cache != nil && !dateRange.End.After(today)
	if cacheable {
		cached, err := n.cache.Get(ctx, dateRange)
		switch {
		case err == nil:
			logger.Info("row cache HIT", observability.Int("rows", len(cached)))
			return cached, nil
		case errors.Is(err, ErrCacheMiss):
			logger.Info("row cache MISS - querying billing source")
		default:
			logger.Warn("row cache get failed, continuing without cache", observability.Error(err))
		}
	}

	rows, err := n.source.Fetch(ctx, dateRange)
	if err != nil {
		return nil, fmt.Errorf("fetch billing data %s..%s: %w",
			dateRange.StartString(), dateRange.EndString(), err)
	}

	if cacheable {
		if setErr := n.cache.Set(ctx, dateRange, rows, n.cacheTTL); setErr != nil {
			logger.Warn("failed to store rows in cache", observability.Error(setErr))
		}
	}

	return rows, nil
}

// OutcomeFor maps an invocation error to a status code and body. Details of
// unexpected failures are logged, never returned.
func OutcomeFor(ctx context.Context, err error) Outcome {
	logger := observability.FromContext(ctx)

	switch {
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrNoPeriod):
		logger.Error("invalid invocation parameters", observability.Error(err))
		return Outcome{
			StatusCode: http.StatusBadRequest,
			Body:       OutcomeBody{Error: ErrInvalidRequest.Error()},
		}
	case errors.Is(err, ErrConfiguration):
		logger.Error("configuration error", observability.Error(err))
		return Outcome{
			StatusCode: http.StatusBadRequest,
			Body:       OutcomeBody{Error: err.Error()},
		}
	case errors.Is(err, ErrDeliveryFailed):
		logger.Error("failed to send billing information", observability.Error(err))
		return Outcome{
			StatusCode: http.StatusInternalServerError,
			Body:       OutcomeBody{Error: messageSendFailed},
		}
	default:
		logger.Error("unexpected error during billing notification", observability.Error(err))
		return Outcome{
			StatusCode: http.StatusInternalServerError,
			Body:       OutcomeBody{Error: messageUnexpected},
		}
	}
}
