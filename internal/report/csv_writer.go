package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/StarkeWang/test-time-calc/internal/domain"
)

// timestampLayout is the unambiguous fixed format used for start and end
// timestamps in the CSV export.
const timestampLayout = "2006-01-02 15:04:05"

// ExportHeader is the header row preceding the per-file detail rows.
var ExportHeader = []string{"File", "Start Time", "End Time", "Duration"}

// ExportCSV writes the structured delimited report: a summary block, a blank
// separator row, a header row, then one row per record. Total work duration
// is total + float when the float computation succeeded, otherwise a zero
// sentinel.
func ExportCSV(path string, result *domain.AggregateResult, float domain.FloatResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	work := time.Duration(0)
	floatDur := time.Duration(0)
	if float.OK {
		work = result.TotalDuration + float.Float
		floatDur = float.Float
	}

	w := csv.NewWriter(f)
	rows := [][]string{
		{"Total Test Duration", domain.FormatDuration(result.TotalDuration)},
		{"Total Work Duration", domain.FormatDuration(work)},
		{"Float Duration", domain.FormatDuration(floatDur)},
		// Separator between summary block and detail rows. Kept as an
		// explicit empty row so re-parsing sees a stable row layout.
		{"", "", "", ""},
		ExportHeader,
	}
	for _, r := range result.Records {
		rows = append(rows, RecordRow(r))
	}

	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

// RecordRow renders one record as an export detail row.
func RecordRow(r domain.TestRecord) []string {
	return []string{
		r.Source,
		r.Start.Format(timestampLayout),
		r.End.Format(timestampLayout),
		domain.FormatDuration(r.Duration),
	}
}

// ParseRecordRow parses an export detail row back into a record. Used to
// verify exports round-trip and to re-ingest previously exported reports.
func ParseRecordRow(row []string) (domain.TestRecord, error) {
	if len(row) != len(ExportHeader) {
		return domain.TestRecord{}, fmt.Errorf("expected %d fields, got %d", len(ExportHeader), len(row))
	}

	start, err := time.Parse(timestampLayout, row[1])
	if err != nil {
		return domain.TestRecord{}, fmt.Errorf("invalid start timestamp: %w", err)
	}
	end, err := time.Parse(timestampLayout, row[2])
	if err != nil {
		return domain.TestRecord{}, fmt.Errorf("invalid end timestamp: %w", err)
	}

	return domain.TestRecord{
		Source:   row[0],
		Start:    start,
		End:      end,
		Duration: end.Sub(start),
	}, nil
}
