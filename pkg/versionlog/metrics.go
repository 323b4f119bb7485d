package versionlog

import (
	"github.com/prometheus/client_golang/prometheus"

	intversionlog "github.com/backbone81/versioned-list/internal/versionlog"
)

// RegisterMetrics registers all metrics collectors with the given prometheus registerer.
func RegisterMetrics(registerer prometheus.Registerer) error {
	return intversionlog.RegisterMetrics(registerer)
}
