package filters

import (
	"context"
	"time"

	"logreport/internal/models"
	"logreport/internal/shared/loggers"
)

// timestampLayouts is the cascade of accepted ISO-8601 shapes. A trailing Z
// is an explicit +00:00 offset; the zoneless layouts are treated as UTC
// rather than local time, so results do not depend on the host timezone.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ByDate returns the subsequence of records whose @timestamp falls on the
// given calendar day after normalizing to UTC. Records without a timestamp,
// or with one that fails to parse, are silently excluded. Original order is
// preserved.
func ByDate(ctx context.Context, records []models.LogRecord, day time.Time) []models.LogRecord {
	logger := loggers.Ctx(ctx)

	wantYear, wantMonth, wantDay := day.UTC().Date()

	var kept []models.LogRecord
	for _, rec := range records {
		if rec.Timestamp == "" {
			metricRecordsExcludedTotal.WithLabelValues(reasonNoTimestamp).Inc()
			continue
		}
		t, err := parseTimestamp(rec.Timestamp)
		if err != nil {
			metricRecordsExcludedTotal.WithLabelValues(reasonBadTimestamp).Inc()
			logger.Debug().Str("timestamp", rec.Timestamp).Msg("excluding record with unparseable timestamp")
			continue
		}
		year, month, d := t.UTC().Date()
		if year != wantYear || month != wantMonth || d != wantDay {
			metricRecordsExcludedTotal.WithLabelValues(reasonOtherDay).Inc()
			continue
		}
		kept = append(kept, rec)
	}

	logger.Debug().
		Int("in", len(records)).
		Int("kept", len(kept)).
		Msg("finished date filtering")
	return kept
}

// parseTimestamp parses an ISO-8601 datetime string, trying each accepted
// layout in turn.
func parseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
