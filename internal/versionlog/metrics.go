package versionlog

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	AppendTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "versionlog_append_total",
			Help: "Total number of entries appended.",
		},
	)

	SnapshotTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "versionlog_snapshot_total",
			Help: "Total number of snapshots taken.",
		},
	)

	SnapshotDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "versionlog_snapshot_duration_seconds",
			Help:    "Duration of snapshots in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.000001, 4, 12),
		},
	)
)

// RegisterMetrics registers all metrics collectors with the given prometheus registerer.
func RegisterMetrics(registerer prometheus.Registerer) error {
	metrics := []prometheus.Collector{
		AppendTotal,
		SnapshotTotal,
		SnapshotDuration,
	}
	for _, metric := range metrics {
		if err := registerer.Register(metric); err != nil {
			return err
		}
	}
	return nil
}
