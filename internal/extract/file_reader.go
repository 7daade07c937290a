package extract

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/StarkeWang/test-time-calc/internal/config"
)

// FileReader resolves the test start and end timestamps of one file's
// content using the configured labels.
type FileReader struct {
	extractor  *Extractor
	startLabel string
	endLabel   string
}

// NewFileReader builds a FileReader from extraction rules.
// Fails only when a rule pattern does not compile.
func NewFileReader(rules *config.Rules) (*FileReader, error) {
	extractor, err := NewExtractor(rules, rules.StartLabel, rules.EndLabel)
	if err != nil {
		return nil, err
	}

	return &FileReader{
		extractor:  extractor,
		startLabel: rules.StartLabel,
		endLabel:   rules.EndLabel,
	}, nil
}

// ReadTimes extracts the start and end timestamps from content.
// A missing label yields a nil pointer and a diagnostic naming the source;
// it is never an error, callers decide whether the file still counts.
func (r *FileReader) ReadTimes(content, source string) (start, end *time.Time) {
	if ts, ok := r.extractor.Extract(content, r.startLabel); ok {
		start = &ts
	} else {
		log.Warn().
			Str("file", source).
			Str("label", r.startLabel).
			Msg("Label not found in file")
	}

	if ts, ok := r.extractor.Extract(content, r.endLabel); ok {
		end = &ts
	} else {
		log.Warn().
			Str("file", source).
			Str("label", r.endLabel).
			Msg("Label not found in file")
	}

	return start, end
}
