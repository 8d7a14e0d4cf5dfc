package ingestors

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"

	"logreport/internal/models"
	"logreport/internal/shared/loggers"
)

var errNotAnObject = errors.New("line is not a JSON object")

// SourceReader ingests NDJSON log sources into an ordered record sequence.
//
// Sources are processed in the order given; within a source, lines in
// physical order. Unusable sources and undecodable lines are reported to the
// warning sink and skipped. An empty result is not an error at this layer.
type SourceReader interface {
	ReadAll(ctx context.Context, sources []string) []models.LogRecord
}

type sourceReader struct {
	warnings WarningSink
}

// NewSourceReader creates a SourceReader reporting recoverable failures to
// the given sink. A nil sink discards warnings.
func NewSourceReader(warnings WarningSink) SourceReader {
	if warnings == nil {
		warnings = WarningFunc(func(Warning) {})
	}
	return &sourceReader{warnings: warnings}
}

func (r *sourceReader) ReadAll(ctx context.Context, sources []string) []models.LogRecord {
	logger := loggers.Ctx(ctx)

	var records []models.LogRecord
	for _, source := range sources {
		records = r.readSource(ctx, source, records)
	}

	logger.Debug().
		Int("sources", len(sources)).
		Int("records", len(records)).
		Msg("finished ingesting sources")
	return records
}

func (r *sourceReader) readSource(ctx context.Context, source string, records []models.LogRecord) []models.LogRecord {
	logger := loggers.Ctx(ctx)

	f, err := os.Open(source)
	if err != nil {
		r.warnings.Warn(Warning{Source: source, Cause: err})
		metricSourcesSkippedTotal.Inc()
		logger.Warn().Str(loggers.FieldSource, source).Err(err).Msg("skipping unreadable source")
		return records
	}
	defer f.Close()

	// Lines carry whole serialized records and can be arbitrarily long, so
	// read without a length cap; memory use is bounded by the longest line.
	reader := bufio.NewReader(f)

	lineNum := 0
	for {
		line, readErr := reader.ReadString('\n')

		if len(line) > 0 {
			lineNum++
			metricLinesReadTotal.Inc()

			trimmed := strings.TrimSpace(line)
			if trimmed != "" {
				records = r.decodeLine(ctx, source, lineNum, trimmed, records)
			}
		}

		if readErr != nil {
			if readErr != io.EOF {
				r.warnings.Warn(Warning{Source: source, Cause: readErr})
				logger.Warn().Str(loggers.FieldSource, source).Err(readErr).Msg("stopped reading source early")
			}
			return records
		}
	}
}

func (r *sourceReader) decodeLine(ctx context.Context, source string, lineNum int, line string, records []models.LogRecord) []models.LogRecord {
	var obj map[string]any
	if err := json.Unmarshal([]byte(line), &obj); err != nil {
		r.warnDecode(ctx, source, lineNum, err)
		return records
	}
	if obj == nil {
		// "null" decodes cleanly into a nil map but carries no fields.
		r.warnDecode(ctx, source, lineNum, errNotAnObject)
		return records
	}

	metricRecordsDecodedTotal.Inc()
	return append(records, models.NewLogRecord(obj))
}

func (r *sourceReader) warnDecode(ctx context.Context, source string, line int, cause error) {
	r.warnings.Warn(Warning{Source: source, Line: line, Cause: cause})
	metricDecodeFailuresTotal.Inc()
	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldSource, source).
		Int(loggers.FieldLine, line).
		Err(cause).
		Msg("skipping undecodable line")
}
