// ABOUTME: Tests for CLI helper functions.
// ABOUTME: Tests parseTime, padRight, shortID, and set formatting.
package main

import (
	"testing"

	"github.com/harperreed/fittrack/internal/models"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "date and time with space",
			input:   "2025-01-31 08:30",
			wantErr: false,
		},
		{
			name:    "date and time with T",
			input:   "2025-01-31T08:30",
			wantErr: false,
		},
		{
			name:    "date only",
			input:   "2025-01-31",
			wantErr: false,
		},
		{
			name:    "RFC3339",
			input:   "2025-01-31T08:30:00Z",
			wantErr: false,
		},
		{
			name:    "invalid format",
			input:   "31-01-2025",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTime(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseTime(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("1234567890-0001"); got != "12345678" {
		t.Errorf("expected 8-char prefix, got %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("expected short id unchanged, got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("expected padded string, got %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Errorf("expected long string unchanged, got %q", got)
	}
}

func TestFormatSet(t *testing.T) {
	s := models.SetLog{Weight: 80, Reps: 8}
	if got := formatSet(s); got != "80.0 kg × 8 reps" {
		t.Errorf("unexpected set format: %q", got)
	}

	s = models.SetLog{Duration: 1800, Distance: 5.2}
	if got := formatSet(s); got != "5.20 km × 30m0s" {
		t.Errorf("unexpected cardio format: %q", got)
	}

	s = models.SetLog{Weight: 90, Reps: 5, SubSets: []models.SubSetLog{{Weight: 70, Reps: 8}}}
	if got := formatSet(s); got != "90.0 kg × 5 reps +1 sub-sets" {
		t.Errorf("unexpected drop-set format: %q", got)
	}

	if got := formatSet(models.SetLog{}); got != "(empty set)" {
		t.Errorf("unexpected empty format: %q", got)
	}
}
