package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/StarkeWang/test-time-calc/internal/domain"
)

func TestExportCSV_RoundTrip(t *testing.T) {
	day := time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC)
	result := &domain.AggregateResult{
		TotalDuration: 2*time.Hour + 30*time.Minute,
		FileCount:     2,
		Records: []domain.TestRecord{
			record("first, with comma.csv", day.Add(8*time.Hour), day.Add(10*time.Hour)),
			record("reversed.csv", day.Add(11*time.Hour), day.Add(10*time.Hour+30*time.Minute)),
		},
	}
	float := domain.FloatResult{Float: 6*time.Hour + 30*time.Minute, OK: true}

	path := filepath.Join(t.TempDir(), "export.csv")
	if err := ExportCSV(path, result, float); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open export: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("failed to parse export: %v", err)
	}

	// Summary block: totals, work duration, float.
	if rows[0][0] != "Total Test Duration" || rows[0][1] != "2:30:00" {
		t.Errorf("summary row 0 = %v", rows[0])
	}
	if rows[1][0] != "Total Work Duration" || rows[1][1] != "9:00:00" {
		t.Errorf("summary row 1 = %v", rows[1])
	}
	if rows[2][0] != "Float Duration" || rows[2][1] != "6:30:00" {
		t.Errorf("summary row 2 = %v", rows[2])
	}

	// Header row after the blank separator.
	header := rows[4]
	for i, want := range ExportHeader {
		if header[i] != want {
			t.Errorf("header[%d] = %q, want %q", i, header[i], want)
		}
	}

	// Detail rows must reproduce the original records exactly.
	detail := rows[5:]
	if len(detail) != len(result.Records) {
		t.Fatalf("got %d detail rows, want %d", len(detail), len(result.Records))
	}
	for i, row := range detail {
		got, err := ParseRecordRow(row)
		if err != nil {
			t.Fatalf("ParseRecordRow(%v) error = %v", row, err)
		}
		want := result.Records[i]
		if got.Source != want.Source {
			t.Errorf("row %d Source = %q, want %q", i, got.Source, want.Source)
		}
		if !got.Start.Equal(want.Start) || !got.End.Equal(want.End) {
			t.Errorf("row %d times = %v..%v, want %v..%v", i, got.Start, got.End, want.Start, want.End)
		}
		if got.Duration != want.Duration {
			t.Errorf("row %d Duration = %v, want %v", i, got.Duration, want.Duration)
		}
	}
}

func TestExportCSV_FloatFailedUsesZeroSentinel(t *testing.T) {
	result := &domain.AggregateResult{TotalDuration: time.Hour, FileCount: 0}

	path := filepath.Join(t.TempDir(), "export.csv")
	if err := ExportCSV(path, result, domain.FloatResult{}); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open export: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("failed to parse export: %v", err)
	}

	if rows[1][1] != "0:00:00" {
		t.Errorf("work duration = %q, want zero sentinel", rows[1][1])
	}
	if rows[2][1] != "0:00:00" {
		t.Errorf("float duration = %q, want zero sentinel", rows[2][1])
	}
}

func TestExportCSV_UnwritablePath(t *testing.T) {
	result := &domain.AggregateResult{}
	err := ExportCSV(filepath.Join(t.TempDir(), "missing", "export.csv"), result, domain.FloatResult{})
	if err == nil {
		t.Fatal("ExportCSV() expected error for unwritable path")
	}
}

func TestParseRecordRow_Invalid(t *testing.T) {
	tests := []struct {
		name string
		row  []string
	}{
		{
			name: "wrong field count",
			row:  []string{"a.csv", "2025-08-14 08:00:00"},
		},
		{
			name: "bad start timestamp",
			row:  []string{"a.csv", "garbage", "2025-08-14 09:00:00", "1:00:00"},
		},
		{
			name: "bad end timestamp",
			row:  []string{"a.csv", "2025-08-14 08:00:00", "garbage", "1:00:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRecordRow(tt.row); err == nil {
				t.Error("ParseRecordRow() expected error, got nil")
			}
		})
	}
}
