package extract

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/StarkeWang/test-time-calc/internal/config"
)

// timePattern is one compiled timestamp syntax. The expression captures the
// timestamp portion in group 1; the label prefix is baked in per label.
type timePattern struct {
	re     *regexp.Regexp
	layout string
}

// Extractor locates labeled timestamps in free-form file content.
// Patterns are compiled once per label at construction; an invalid custom
// pattern from the rules file is a construction error, there is no recovery
// path for a broken matching rule.
type Extractor struct {
	byLabel map[string][]timePattern
}

// NewExtractor compiles the extraction rules for the given labels.
func NewExtractor(rules *config.Rules, labels ...string) (*Extractor, error) {
	e := &Extractor{byLabel: make(map[string][]timePattern, len(labels))}

	for _, label := range labels {
		patterns := make([]timePattern, 0, len(rules.Patterns))
		for _, p := range rules.Patterns {
			expr := regexp.QuoteMeta(label) + `:\s*(` + p.Regexp + `)`
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("invalid timestamp pattern %q: %w", p.Regexp, err)
			}
			patterns = append(patterns, timePattern{re: re, layout: p.Layout})
		}
		e.byLabel[label] = patterns
	}

	return e, nil
}

// Extract finds the first occurrence of "<label>: <timestamp>" in text and
// returns the parsed timestamp. Patterns are tried in rule order; a pattern
// that matches syntactically but fails to parse under its layout is treated
// as a non-match and the next pattern is tried. A label that never matches
// is absence, not an error: the second return is false.
func (e *Extractor) Extract(text, label string) (time.Time, bool) {
	for _, p := range e.byLabel[label] {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		ts, err := time.Parse(p.layout, strings.TrimSpace(m[1]))
		if err != nil {
			log.Warn().
				Err(err).
				Str("label", label).
				Str("captured", m[1]).
				Msg("Timestamp matched pattern but failed to parse")
			continue
		}
		return ts, true
	}

	return time.Time{}, false
}
