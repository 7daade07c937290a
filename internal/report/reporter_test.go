package report

import (
	"strings"
	"testing"
	"time"

	"github.com/StarkeWang/test-time-calc/internal/domain"
)

func record(source string, start, end time.Time) domain.TestRecord {
	return domain.TestRecord{
		Source:   source,
		Start:    start,
		End:      end,
		Duration: end.Sub(start),
	}
}

func TestFormat_SortsByStartTime(t *testing.T) {
	day := time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC)
	late := record("late.csv", day.Add(9*time.Hour+30*time.Minute), day.Add(11*time.Hour))
	early := record("early.csv", day.Add(8*time.Hour), day.Add(10*time.Hour))

	// Inserted in reverse order; output must list the earlier start first.
	out := Format([]domain.TestRecord{late, early})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if want := "[1] Start Time: 08:00:00, End Time: 10:00:00, Test Time: 2:00:00"; lines[0] != want {
		t.Errorf("line 1 = %q, want %q", lines[0], want)
	}
	if want := "[2] Start Time: 09:30:00, End Time: 11:00:00, Test Time: 1:30:00"; lines[1] != want {
		t.Errorf("line 2 = %q, want %q", lines[1], want)
	}
}

func TestFormat_NegativeDuration(t *testing.T) {
	day := time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC)
	r := record("reversed.csv", day.Add(10*time.Hour), day.Add(9*time.Hour))

	out := Format([]domain.TestRecord{r})
	if want := "[1] Start Time: 10:00:00, End Time: 09:00:00, Test Time: -1:00:00\n"; out != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestFormat_DoesNotMutateInput(t *testing.T) {
	day := time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC)
	records := []domain.TestRecord{
		record("b.csv", day.Add(2*time.Hour), day.Add(3*time.Hour)),
		record("a.csv", day.Add(1*time.Hour), day.Add(2*time.Hour)),
	}

	Format(records)

	if records[0].Source != "b.csv" {
		t.Errorf("input slice was reordered, first record is %s", records[0].Source)
	}
}

func TestSummary(t *testing.T) {
	day := time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC)
	result := &domain.AggregateResult{
		TotalDuration: 3 * time.Hour,
		FileCount:     1,
		Records: []domain.TestRecord{
			record("run.csv", day.Add(8*time.Hour), day.Add(11*time.Hour)),
		},
	}

	t.Run("with float", func(t *testing.T) {
		out := Summary(result, domain.FloatResult{Float: time.Hour, OK: true})
		if !strings.Contains(out, "Total test time: 3:00:00\n") {
			t.Errorf("missing total line in %q", out)
		}
		if !strings.Contains(out, "Number of data files: 1\n") {
			t.Errorf("missing file count line in %q", out)
		}
		if !strings.Contains(out, "Float time: 1:00:00\n") {
			t.Errorf("missing float line in %q", out)
		}
	})

	t.Run("without float", func(t *testing.T) {
		out := Summary(result, domain.FloatResult{})
		if strings.Contains(out, "Float time") {
			t.Errorf("unexpected float line in %q", out)
		}
	})
}
