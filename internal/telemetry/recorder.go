package telemetry

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"workout/internal/domain/bmi"
)

// ClassificationMetric is the counter incremented once per BMI classification.
const ClassificationMetric = "workout.bmi.classifications"

// ClassificationCounter counts classifications by category.
type ClassificationCounter struct {
	counter metric.Int64Counter
}

// NewClassificationCounter registers the classification counter on meter.
func NewClassificationCounter(meter metric.Meter) (*ClassificationCounter, error) {
	counter, err := meter.Int64Counter(ClassificationMetric,
		metric.WithDescription("BMI classifications by category"),
		metric.WithUnit("{classification}"),
	)
	if err != nil {
		return nil, err
	}
	return &ClassificationCounter{counter: counter}, nil
}

// RecordClassification adds one to the counter for category.
func (c *ClassificationCounter) RecordClassification(ctx context.Context, category bmi.Category) {
	c.counter.Add(ctx, 1, metric.WithAttributes(attribute.String("category", string(category))))
	slog.Debug("metric_event", "metric", ClassificationMetric, "category", string(category))
}
