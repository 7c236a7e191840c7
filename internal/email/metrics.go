package email

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the instruments recorded by the confirmation pipeline.
// A nil *Metrics records nothing.
type Metrics struct {
	confirmations  metric.Int64Counter
	renderDuration metric.Float64Histogram
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	confirmations, err := meter.Int64Counter("email.confirmations",
		metric.WithDescription("Order confirmation requests by outcome"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	renderDuration, err := meter.Float64Histogram("email.render.duration",
		metric.WithDescription("Time spent rendering confirmation templates"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		confirmations:  confirmations,
		renderDuration: renderDuration,
	}, nil
}

func (m *Metrics) recordOutcome(ctx context.Context, err error) {
	if m == nil {
		return
	}
	m.confirmations.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", Kind(err))))
}

func (m *Metrics) recordRender(ctx context.Context, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.renderDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attribute.Bool("error", err != nil)))
}
