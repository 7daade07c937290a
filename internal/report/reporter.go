package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/StarkeWang/test-time-calc/internal/domain"
)

// Format renders per-file records as numbered report lines, sorted ascending
// by start timestamp. Sorting is stable and works on a copy, so ties keep
// encounter order and the caller's slice is untouched.
func Format(records []domain.TestRecord) string {
	sorted := make([]domain.TestRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	var b strings.Builder
	for i, r := range sorted {
		fmt.Fprintf(&b, "[%d] Start Time: %s, End Time: %s, Test Time: %s\n",
			i+1,
			r.Start.Format("15:04:05"),
			r.End.Format("15:04:05"),
			domain.FormatDuration(r.Duration),
		)
	}
	return b.String()
}
