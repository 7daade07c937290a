package shift

import (
	"testing"
	"time"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    time.Duration
		wantErr bool
	}{
		{
			name: "full form",
			text: "08:30:15",
			want: 8*time.Hour + 30*time.Minute + 15*time.Second,
		},
		{
			name: "HHMM shorthand",
			text: "1745",
			want: 17*time.Hour + 45*time.Minute,
		},
		{
			name: "midnight",
			text: "00:00:00",
			want: 0,
		},
		{
			name:    "hour out of range",
			text:    "25:99:00",
			wantErr: true,
		},
		{
			name:    "four letters are not a shorthand",
			text:    "abcd",
			wantErr: true,
		},
		{
			name:    "empty",
			text:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClockTime(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClockTime(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseClockTime(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		name       string
		total      time.Duration
		completion string
		start      string
		want       time.Duration
		wantOK     bool
	}{
		{
			name:       "one hour of slack",
			total:      8 * time.Hour,
			completion: "17:00:00",
			start:      "08:00:00",
			want:       1 * time.Hour,
			wantOK:     true,
		},
		{
			name:       "overnight shift rolls over midnight",
			total:      0,
			completion: "02:00:00",
			start:      "22:00:00",
			want:       4 * time.Hour,
			wantOK:     true,
		},
		{
			name:       "tests overran the window",
			total:      10 * time.Hour,
			completion: "17:00:00",
			start:      "08:00:00",
			want:       -1 * time.Hour,
			wantOK:     true,
		},
		{
			name:       "shorthand inputs",
			total:      4 * time.Hour,
			completion: "1700",
			start:      "0800",
			want:       5 * time.Hour,
			wantOK:     true,
		},
		{
			name:       "malformed completion time",
			total:      time.Hour,
			completion: "25:99:00",
			start:      "08:00:00",
			wantOK:     false,
		},
		{
			name:       "blank completion time",
			total:      time.Hour,
			completion: "",
			start:      "08:00:00",
			wantOK:     false,
		},
		{
			name:       "blank start time",
			total:      time.Hour,
			completion: "17:00:00",
			start:      "",
			wantOK:     false,
		},
		{
			name:       "both blank",
			total:      time.Hour,
			completion: "",
			start:      "",
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Float(tt.total, tt.completion, tt.start)
			if got.OK != tt.wantOK {
				t.Fatalf("Float() OK = %v, want %v", got.OK, tt.wantOK)
			}
			if got.OK && got.Float != tt.want {
				t.Errorf("Float() = %v, want %v", got.Float, tt.want)
			}
		})
	}
}
