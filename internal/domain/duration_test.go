package domain

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{
			name: "zero",
			d:    0,
			want: "0:00:00",
		},
		{
			name: "whole hours",
			d:    8 * time.Hour,
			want: "8:00:00",
		},
		{
			name: "mixed",
			d:    2*time.Hour + 5*time.Minute + 9*time.Second,
			want: "2:05:09",
		},
		{
			name: "over a day stays in hours",
			d:    26*time.Hour + 30*time.Minute,
			want: "26:30:00",
		},
		{
			name: "negative",
			d:    -(1*time.Hour + 15*time.Minute),
			want: "-1:15:00",
		},
		{
			name: "sub-second truncated",
			d:    3*time.Second + 700*time.Millisecond,
			want: "0:00:03",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.d); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
