// Package app wires the notifier's dependencies with dig.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/spendwatch/internal/cache/redis"
	"github.com/davidbz/spendwatch/internal/config"
	"github.com/davidbz/spendwatch/internal/domain"
	"github.com/davidbz/spendwatch/internal/http"
	"github.com/davidbz/spendwatch/internal/http/middleware"
	"github.com/davidbz/spendwatch/internal/notify/console"
	"github.com/davidbz/spendwatch/internal/notify/discord"
	"github.com/davidbz/spendwatch/internal/notify/registry"
	"github.com/davidbz/spendwatch/internal/observability"
	"github.com/davidbz/spendwatch/internal/source/bigquery"
)

// Option customizes the container for one command.
type Option func(*options)

type options struct {
	sink    string
	output  io.Writer
	loadCfg func() (*config.Config, error)
}

// WithSink overrides NOTIFY_SINK.
func WithSink(name string) Option {
	return func(o *options) {
		o.sink = name
	}
}

// WithOutput sets where the console sink writes.
func WithOutput(out io.Writer) Option {
	return func(o *options) {
		o.output = out
	}
}

// WithConfigLoader replaces config.Load.
func WithConfigLoader(load func() (*config.Config, error)) Option {
	return func(o *options) {
		o.loadCfg = load
	}
}

// BuildContainer provides every component needed to serve or run a notification.
func BuildContainer(opts ...Option) (*dig.Container, error) {
	o := &options{
		sink:    "",
		output:  nil,
		loadCfg: config.Load,
	}
	for _, opt := range opts {
		opt(o)
	}

	container := dig.New()

	providers := []struct {
		name        string
		constructor interface{}
	}{
		// Configuration
		{"config", func() (*config.Config, error) {
			cfg, err := o.loadCfg()
			if err != nil {
				return nil, err
			}
			if o.sink != "" {
				cfg.Billing.Sink = o.sink
			}
			return cfg, nil
		}},
		{"config dependencies", config.ParseDependenciesConfig},

		// Observability
		{"logger", observability.NewLogger},

		// Billing source
		{"billing source", func(cfg *bigquery.Config) domain.BillingSource {
			return bigquery.NewSource(*cfg)
		}},

		// Sinks
		{"console sink", func() *console.Printer {
			return console.NewPrinter(o.output)
		}},
		{"discord sink", func(cfg *discord.Config) *discord.Client {
			return discord.NewClient(*cfg)
		}},
		{"sink registry", newSinkRegistry},
		{"notification sink", selectSink},

		// Row cache
		{"row cache", newRowCache},

		// Domain services
		{"aggregator", domain.NewCostAggregator},
		{"renderer", func(cfg *config.DisplayConfig) *domain.Renderer {
			return domain.NewRenderer(cfg.ExchangeRate, cfg.MaxFields)
		}},
		{"notifier", newNotifier},

		// HTTP layer
		{"middleware", middleware.BuildMiddlewareChain},
		{"HTTP handler", http.NewHandler},
		{"HTTP server", http.NewServer},
	}

	for _, p := range providers {
		if err := container.Provide(p.constructor); err != nil {
			return nil, fmt.Errorf("failed to provide %s: %w", p.name, err)
		}
	}

	return container, nil
}

func newSinkRegistry(printer *console.Printer, client *discord.Client) (domain.SinkRegistry, error) {
	ctx := context.Background()
	reg := registry.NewRegistry()

	for _, sink := range []domain.NotificationSink{client, printer} {
		if err := reg.Register(ctx, sink); err != nil {
			return nil, fmt.Errorf("failed to register %s sink: %w", sink.Name(), err)
		}
	}

	return reg, nil
}

// selectSink resolves NOTIFY_SINK. An unknown name yields no sink; preflight
// validation reports it on every invocation.
func selectSink(
	reg domain.SinkRegistry,
	cfg *config.BillingConfig,
	logger *zap.Logger,
) domain.NotificationSink {
	sink, err := reg.Get(context.Background(), cfg.Sink)
	if err != nil {
		logger.Warn("notification sink unavailable", observability.Error(err))
		return nil
	}
	return sink
}

func newRowCache(cfg *redis.Config, logger *zap.Logger) domain.RowCache {
	if !cfg.Enabled() {
		logger.Info("row cache disabled")
		return nil
	}

	logger.Info("row cache enabled",
		observability.String("addr", cfg.Addr),
		observability.Int("db", cfg.DB))

	return redis.NewRowCache(redis.NewClient(*cfg), cfg.KeyPrefix)
}

func newNotifier(
	cfg *config.Config,
	source domain.BillingSource,
	sink domain.NotificationSink,
	aggregator *domain.CostAggregator,
	renderer *domain.Renderer,
	cache domain.RowCache,
	logger *zap.Logger,
) *domain.Notifier {
	opts := []domain.NotifierOption{
		domain.WithPreflight(cfg.Validate),
	}

	if loc, err := cfg.Location(); err == nil {
		opts = append(opts, domain.WithLocation(loc))
	} else {
		logger.Warn("falling back to UTC", observability.Error(err))
	}

	if cache != nil {
		opts = append(opts, domain.WithRowCache(cache, time.Duration(cfg.Redis.TTL)*time.Second))
	}

	return domain.NewNotifier(source, sink, aggregator, renderer, opts...)
}
