package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/StarkeWang/test-time-calc/internal/domain"
)

// Summary renders the full plain-text summary: totals, file count, the
// per-file lines and, when the float computation succeeded, the float line.
func Summary(result *domain.AggregateResult, float domain.FloatResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total test time: %s\n", domain.FormatDuration(result.TotalDuration))
	fmt.Fprintf(&b, "Number of data files: %d\n", result.FileCount)
	b.WriteString("Individual test times:\n")
	b.WriteString(Format(result.Records))
	if float.OK {
		fmt.Fprintf(&b, "Float time: %s\n", domain.FormatDuration(float.Float))
	}
	return b.String()
}

// WriteSummary writes the plain-text summary report to path.
func WriteSummary(path string, result *domain.AggregateResult, float domain.FloatResult) error {
	if err := os.WriteFile(path, []byte(Summary(result, float)), 0644); err != nil {
		return fmt.Errorf("failed to write summary report: %w", err)
	}
	return nil
}
