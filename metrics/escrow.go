package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/bundleswap/escrow-engine/escrow"
)

type StatsSource interface {
	Stats() escrow.Stats
}

type EscrowMetrics struct {
	startTimeGauge       metric.Int64ObservableGauge
	totalBundlesGauge    metric.Int64ObservableGauge
	totalOffersGauge     metric.Int64ObservableGauge
	completedSwapsGauge  metric.Int64ObservableGauge
	operationTimeSeconds metric.Float64Histogram
}

// NewEscrowMetrics initializes metrics tracking the engine state
func NewEscrowMetrics(ctx context.Context, meter metric.Meter, env, id, version string, source StatsSource) (*EscrowMetrics, error) {
	opts := metric.WithAttributes(
		attribute.String("env", env),
		attribute.String("instance", id),
		attribute.String("version", version),
	)

	startTime := time.Now().Unix()
	startTimeGauge, err := meter.Int64ObservableGauge(
		"escrow.StartTimeSeconds",
		metric.WithDescription("Start time of the engine"),
		metric.WithInt64Callback(func(ctx context.Context, result metric.Int64Observer) error {
			result.Observe(startTime, opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	totalBundlesGauge, err := meter.Int64ObservableGauge(
		"escrow.TotalBundles",
		metric.WithInt64Callback(func(ctx context.Context, result metric.Int64Observer) error {
			result.Observe(int64(source.Stats().Bundles), opts)
			return nil
		}),
		metric.WithDescription("Total number of bundles ever locked"),
	)
	if err != nil {
		return nil, err
	}
	totalOffersGauge, err := meter.Int64ObservableGauge(
		"escrow.TotalOffers",
		metric.WithInt64Callback(func(ctx context.Context, result metric.Int64Observer) error {
			result.Observe(int64(source.Stats().Offers), opts)
			return nil
		}),
		metric.WithDescription("Total number of offers ever locked"),
	)
	if err != nil {
		return nil, err
	}
	completedSwapsGauge, err := meter.Int64ObservableGauge(
		"escrow.CompletedSwaps",
		metric.WithInt64Callback(func(ctx context.Context, result metric.Int64Observer) error {
			result.Observe(int64(source.Stats().CompletedSwaps), opts)
			return nil
		}),
		metric.WithDescription("Number of completed swaps"),
	)
	if err != nil {
		return nil, err
	}

	operationTimeSeconds, err := meter.Float64Histogram("escrow.OperationTime")
	if err != nil {
		return nil, err
	}

	return &EscrowMetrics{
		startTimeGauge:       startTimeGauge,
		totalBundlesGauge:    totalBundlesGauge,
		totalOffersGauge:     totalOffersGauge,
		completedSwapsGauge:  completedSwapsGauge,
		operationTimeSeconds: operationTimeSeconds,
	}, nil
}

// TrackOperationTime records the duration of a single engine operation.
func (m *EscrowMetrics) TrackOperationTime(start time.Time) {
	m.operationTimeSeconds.Record(context.Background(), time.Since(start).Seconds())
}
