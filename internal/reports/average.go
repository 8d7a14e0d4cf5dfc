package reports

import (
	"context"
	"sort"
	"strings"

	"logreport/internal/models"
	"logreport/internal/shared/loggers"
)

const (
	// The two "no data" literals are part of the tool's output contract.
	msgNoEntries   = "No log entries found"
	msgNoEndpoints = "No valid endpoints found"
)

func init() {
	Register(averageReport{})
}

// averageReport renders the average response time per endpoint, endpoints
// ordered by request count.
type averageReport struct{}

func (averageReport) Name() string {
	return "average"
}

func (averageReport) Generate(ctx context.Context, records []models.LogRecord) (string, error) {
	if len(records) == 0 {
		return msgNoEntries, nil
	}

	agg := aggregate(records)
	if agg.empty() {
		// Records existed but none carried a usable url. Distinguished from
		// the empty-input case above so the caller can tell them apart.
		return msgNoEndpoints, nil
	}

	rows := agg.rows()
	metricRowsRenderedTotal.WithLabelValues("average").Add(float64(len(rows)))
	loggers.Ctx(ctx).Debug().
		Int("records", len(records)).
		Int("endpoints", len(rows)).
		Msg("rendered average report")

	return renderTable(rows), nil
}

// endpointAggregate groups records by endpoint, remembering first-insertion
// order so ties can be broken deterministically later.
type endpointAggregate struct {
	stats map[string]*models.EndpointStats
	order []string
}

// aggregate groups the record sequence by endpoint. The endpoint is the url
// truncated at the first '?'; records without a url contribute nothing.
func aggregate(records []models.LogRecord) *endpointAggregate {
	agg := &endpointAggregate{stats: make(map[string]*models.EndpointStats)}

	for _, rec := range records {
		if rec.URL == "" {
			continue
		}
		endpoint, _, _ := strings.Cut(rec.URL, "?")

		s, ok := agg.stats[endpoint]
		if !ok {
			s = &models.EndpointStats{}
			agg.stats[endpoint] = s
			agg.order = append(agg.order, endpoint)
		}
		s.Count++
		s.TotalTime += rec.ResponseTime
	}

	return agg
}

func (a *endpointAggregate) empty() bool {
	return len(a.stats) == 0
}

// rows projects the aggregate into ranked report rows: count descending,
// stable on first-insertion order for equal counts, 0-based rank.
func (a *endpointAggregate) rows() []models.ReportRow {
	endpoints := make([]string, len(a.order))
	copy(endpoints, a.order)

	sort.SliceStable(endpoints, func(i, j int) bool {
		return a.stats[endpoints[i]].Count > a.stats[endpoints[j]].Count
	})

	rows := make([]models.ReportRow, 0, len(endpoints))
	for rank, endpoint := range endpoints {
		s := a.stats[endpoint]
		rows = append(rows, models.ReportRow{
			Rank:     rank,
			Endpoint: endpoint,
			Count:    s.Count,
			AvgTime:  s.TotalTime / float64(s.Count),
		})
	}
	return rows
}
