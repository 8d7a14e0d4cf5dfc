package ingestors

import (
	"logreport/internal/shared/metrics"
)

var (
	metricLinesReadTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngest,
			Name:      "lines_read_total",
		},
	)

	metricRecordsDecodedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngest,
			Name:      "records_decoded_total",
		},
	)

	metricDecodeFailuresTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngest,
			Name:      "decode_failures_total",
		},
	)

	metricSourcesSkippedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngest,
			Name:      "sources_skipped_total",
		},
	)
)
