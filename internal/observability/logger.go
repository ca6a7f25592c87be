package observability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	maxLoggerFieldCapacity int = 5 // Maximum number of context fields to add to logger
)

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// NewLogger builds the base logger once at startup. Unknown levels fall back to info.
func NewLogger(cfg *LogConfig) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg != nil {
		if err := level.Set(strings.ToLower(strings.TrimSpace(cfg.Level))); err != nil {
			level = zapcore.InfoLevel
		}
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.TimeKey = "ts"
	zapCfg.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format(time.RFC3339Nano))
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

// WithLogger attaches the invocation logger to ctx.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the invocation logger enriched with the IDs found in ctx.
// Without an attached logger it returns a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	logger, ok := ctx.Value(loggerKey).(*zap.Logger)
	if !ok || logger == nil {
		return zap.NewNop()
	}

	fields := make([]zap.Field, 0, maxLoggerFieldCapacity)

	if traceID := GetTraceID(ctx); traceID != "" {
		fields = append(fields, zap.String("trace_id", traceID))
	}

	if spanID := GetSpanID(ctx); spanID != "" {
		fields = append(fields, zap.String("span_id", spanID))
	}

	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}

	if sink := GetSink(ctx); sink != "" {
		fields = append(fields, zap.String("sink", sink))
	}

	if period := GetPeriod(ctx); period != "" {
		fields = append(fields, zap.String("period", period))
	}

	return logger.With(fields...)
}
