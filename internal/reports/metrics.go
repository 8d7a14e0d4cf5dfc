package reports

import (
	"logreport/internal/shared/metrics"
)

var (
	metricRowsRenderedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "rows_rendered_total",
		},
		[]string{"kind"},
	)
)
