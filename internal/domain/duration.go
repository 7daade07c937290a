package domain

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration as H:MM:SS with unpadded hours,
// e.g. "8:05:00" or "102:00:09". Negative durations get a leading minus.
// Sub-second precision is truncated.
func FormatDuration(d time.Duration) string {
	neg := d < 0
	if neg {
		d = -d
	}

	total := int64(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	out := fmt.Sprintf("%d:%02d:%02d", h, m, s)
	if neg {
		return "-" + out
	}
	return out
}
