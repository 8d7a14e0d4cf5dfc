package filters

import (
	"logreport/internal/shared/metrics"
)

const (
	reasonNoTimestamp  = "no_timestamp"
	reasonBadTimestamp = "bad_timestamp"
	reasonOtherDay     = "other_day"
)

var (
	metricRecordsExcludedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubFilter,
			Name:      "records_excluded_total",
		},
		[]string{"reason"},
	)
)
