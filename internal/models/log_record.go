package models

// LogRecord is one decoded access-log entry. The three consumed fields are
// extracted up front; Fields keeps the full decoded object so report kinds
// added later can read keys the current pipeline ignores.
//
// All fields are optional in the input. A missing @timestamp or url is
// represented as the empty string, a missing or non-numeric response_time
// as 0.0. Records are immutable once produced.
type LogRecord struct {
	Timestamp    string         // raw @timestamp value
	URL          string         // request URL, query string included
	ResponseTime float64        // seconds
	Fields       map[string]any // full decoded JSON object
}

// NewLogRecord extracts the consumed fields from a decoded JSON object.
// Absent or wrongly-typed fields fall back to zero values rather than
// failing: the pipeline tolerates partial records by design.
func NewLogRecord(obj map[string]any) LogRecord {
	rec := LogRecord{Fields: obj}

	if v, ok := obj["@timestamp"].(string); ok {
		rec.Timestamp = v
	}
	if v, ok := obj["url"].(string); ok {
		rec.URL = v
	}
	// json.Unmarshal decodes every JSON number into float64, integers included.
	if v, ok := obj["response_time"].(float64); ok {
		rec.ResponseTime = v
	}

	return rec
}
