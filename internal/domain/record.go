package domain

import "time"

// TestRecord represents the test window extracted from a single data file.
// It is never modified after the aggregation pass creates it.
// End earlier than Start is allowed: the duration stays negative and is
// carried through totals and reports unchanged.
type TestRecord struct {
	Source   string        // file name the times were extracted from
	Start    time.Time     // wall-clock, no timezone semantics
	End      time.Time     // wall-clock, no timezone semantics
	Duration time.Duration // End - Start, signed
}

// AggregateResult holds the outcome of one aggregation pass over a folder.
type AggregateResult struct {
	TotalDuration time.Duration
	FileCount     int // files that yielded both timestamps, not files scanned
	Records       []TestRecord
}

// FloatResult is the outcome of the float (slack) computation.
// OK is false when either shift time was blank or unparseable.
type FloatResult struct {
	Float time.Duration
	OK    bool
}

// RunSummary captures one run of the calculator for the history store
// and the ClickHouse sink.
type RunSummary struct {
	RunID         string    `json:"run_id"`
	Timestamp     time.Time `json:"timestamp"`
	FolderPath    string    `json:"folder_path"`
	FileCount     int       `json:"file_count"`
	TotalDuration int64     `json:"total_duration_seconds"`
	FloatDuration int64     `json:"float_duration_seconds"`
	FloatOK       bool      `json:"float_ok"`
}
