package reports

import (
	"fmt"
	"strconv"
	"strings"

	"logreport/internal/models"
)

// renderTable renders ranked rows as a plain-text table. Rank and endpoint
// are left-aligned, count and average right-aligned; columns are separated
// by two spaces and sized to their widest cell. Averages carry exactly three
// decimal places. No trailing newline.
func renderTable(rows []models.ReportRow) string {
	headers := []string{"", "handler", "total", "avg_response_time"}

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			strconv.Itoa(r.Rank),
			r.Endpoint,
			strconv.FormatInt(r.Count, 10),
			fmt.Sprintf("%.3f", r.AvgTime),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range cells {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(row []string) {
		line := fmt.Sprintf("%-*s  %-*s  %*s  %*s",
			widths[0], row[0],
			widths[1], row[1],
			widths[2], row[2],
			widths[3], row[3])
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}

	writeRow(headers)
	for _, row := range cells {
		writeRow(row)
	}

	return strings.TrimSuffix(b.String(), "\n")
}
