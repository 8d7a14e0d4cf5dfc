package filters

import (
	"context"
	"testing"
	"time"

	"logreport/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(ts, url string) models.LogRecord {
	return models.LogRecord{Timestamp: ts, URL: url}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestByDate_KeepsMatchingDayInOrder(t *testing.T) {
	t.Parallel()

	records := []models.LogRecord{
		rec("2025-06-22T10:00:00Z", "/first"),
		rec("2025-06-23T10:00:00Z", "/other-day"),
		rec("2025-06-22T23:59:59Z", "/second"),
	}

	kept := ByDate(context.Background(), records, day(2025, 6, 22))
	require.Len(t, kept, 2)
	assert.Equal(t, "/first", kept[0].URL)
	assert.Equal(t, "/second", kept[1].URL)
}

func TestByDate_UTCNormalization(t *testing.T) {
	t.Parallel()

	records := []models.LogRecord{
		// 01:30+05:00 on the 22nd is 20:30 UTC on the 21st.
		rec("2025-06-22T01:30:00+05:00", "/shifted-back"),
		// 23:30-03:00 on the 21st is 02:30 UTC on the 22nd.
		rec("2025-06-21T23:30:00-03:00", "/shifted-forward"),
	}

	kept21 := ByDate(context.Background(), records, day(2025, 6, 21))
	require.Len(t, kept21, 1)
	assert.Equal(t, "/shifted-back", kept21[0].URL)

	kept22 := ByDate(context.Background(), records, day(2025, 6, 22))
	require.Len(t, kept22, 1)
	assert.Equal(t, "/shifted-forward", kept22[0].URL)
}

func TestByDate_ZonelessTimestampTreatedAsUTC(t *testing.T) {
	t.Parallel()

	records := []models.LogRecord{
		rec("2025-06-22T10:00:00", "/naive"),
		rec("2025-06-22 10:00:01", "/naive-space"),
	}

	kept := ByDate(context.Background(), records, day(2025, 6, 22))
	require.Len(t, kept, 2)
	assert.Equal(t, "/naive", kept[0].URL)
	assert.Equal(t, "/naive-space", kept[1].URL)
}

func TestByDate_FractionalSecondsAndZEquivalence(t *testing.T) {
	t.Parallel()

	records := []models.LogRecord{
		rec("2025-06-22T10:00:00.123Z", "/millis"),
		rec("2025-06-22T10:00:00+00:00", "/offset-zero"),
	}

	kept := ByDate(context.Background(), records, day(2025, 6, 22))
	assert.Len(t, kept, 2)
}

func TestByDate_ExcludesMissingAndUnparseable(t *testing.T) {
	t.Parallel()

	records := []models.LogRecord{
		rec("", "/no-timestamp"),
		rec("not-a-timestamp", "/garbage"),
		rec("2025/06/22T10:00:00", "/wrong-separators"),
		rec("2025-06-22T10:00:00Z", "/good"),
	}

	kept := ByDate(context.Background(), records, day(2025, 6, 22))
	require.Len(t, kept, 1)
	assert.Equal(t, "/good", kept[0].URL)
}

func TestByDate_DateOnlyTimestampMatchesItsDay(t *testing.T) {
	t.Parallel()

	records := []models.LogRecord{
		rec("2025-06-22", "/date-only"),
	}

	kept := ByDate(context.Background(), records, day(2025, 6, 22))
	require.Len(t, kept, 1)
	assert.Equal(t, "/date-only", kept[0].URL)
}

func TestByDate_EmptyResultIsValid(t *testing.T) {
	t.Parallel()

	records := []models.LogRecord{
		rec("2025-06-22T10:00:00Z", "/a"),
	}

	kept := ByDate(context.Background(), records, day(2024, 1, 1))
	assert.Empty(t, kept)
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{in: "2025-06-22T10:00:00Z", want: time.Date(2025, 6, 22, 10, 0, 0, 0, time.UTC), ok: true},
		{in: "2025-06-22T10:00:00+00:00", want: time.Date(2025, 6, 22, 10, 0, 0, 0, time.UTC), ok: true},
		{in: "2025-06-22T10:00:00", want: time.Date(2025, 6, 22, 10, 0, 0, 0, time.UTC), ok: true},
		{in: "2025-06-22", want: time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC), ok: true},
		{in: "junk", ok: false},
		{in: "22/06/2025 10:00", ok: false},
	}

	for _, tt := range tests {
		got, err := parseTimestamp(tt.in)
		if !tt.ok {
			assert.Error(t, err, "input %q should not parse", tt.in)
			continue
		}
		require.NoError(t, err, "input %q should parse", tt.in)
		assert.True(t, got.Equal(tt.want), "input %q: got %v, want %v", tt.in, got, tt.want)
	}
}
