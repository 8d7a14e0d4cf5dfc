package models

// EndpointStats accumulates per-endpoint aggregates. Count equals the number
// of contributing records; TotalTime is the sum of their response times.
type EndpointStats struct {
	Count     int64
	TotalTime float64
}

// ReportRow is a read-only projection of one rendered table row. A row only
// exists for endpoints with at least one contributing record, so AvgTime is
// always well-defined.
type ReportRow struct {
	Rank     int
	Endpoint string
	Count    int64
	AvgTime  float64
}
