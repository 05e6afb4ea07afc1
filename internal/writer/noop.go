package writer

import (
	"context"

	"TickerScribe/internal/model"
)

// NoopWriter discards all output. Used for dry runs.
type NoopWriter struct{}

func NewNoopWriter() *NoopWriter { return &NoopWriter{} }

func (n *NoopWriter) Name() string { return "noop" }

func (n *NoopWriter) UpsertTable(_ context.Context, _ string, _ *model.IndicatorTable) error {
	return nil
}

func (n *NoopWriter) UpsertSummary(_ context.Context, _ string, _ []model.Summary) error {
	return nil
}

func (n *NoopWriter) Close() error { return nil }
