package shift

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/StarkeWang/test-time-calc/internal/domain"
)

// ParseClockTime parses an operator-supplied time of day. Accepted forms are
// "HH:MM:SS" and the 4-digit shorthand "HHMM" (read as HH:MM:00). The result
// is the offset from midnight.
func ParseClockTime(text string) (time.Duration, error) {
	if len(text) == 4 && isDigits(text) {
		text = fmt.Sprintf("%s:%s:00", text[:2], text[2:])
	}

	t, err := time.Parse("15:04:05", text)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", text, err)
	}

	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

// Float computes the slack between the shift window and the total recorded
// test duration. Both shift times are required; a blank or unparseable input
// yields an unsuccessful result, never an error. A completion time strictly
// earlier than the start time is read as next-day completion (overnight
// shift), so the window gains a full day. The float may be negative when
// tests overran the window; that is a reportable outcome.
func Float(total time.Duration, completionText, startText string) domain.FloatResult {
	if completionText == "" || startText == "" {
		return domain.FloatResult{}
	}

	completion, err := ParseClockTime(completionText)
	if err != nil {
		log.Warn().Err(err).Msg("Completion time not recognized, skipping float computation")
		return domain.FloatResult{}
	}

	start, err := ParseClockTime(startText)
	if err != nil {
		log.Warn().Err(err).Msg("Start time not recognized, skipping float computation")
		return domain.FloatResult{}
	}

	window := completion - start
	if window < 0 {
		window += 24 * time.Hour
	}

	return domain.FloatResult{Float: window - total, OK: true}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
