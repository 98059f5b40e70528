package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseReportDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "date only",
			input:    "2025-06-01",
			expected: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "RFC3339 UTC",
			input:    "2025-06-01T15:04:05Z",
			expected: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "RFC3339 keeps the local calendar day",
			input:    "2025-06-01T00:30:00+02:00",
			expected: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "RFC3339 negative offset",
			input:    "2025-06-30T23:30:00-05:00",
			expected: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "unsupported format",
			input:   "June 2025",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReportDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.expected), "got %s, expected %s", got, tt.expected)
		})
	}
}

func TestMonthStart(t *testing.T) {
	in := time.Date(2025, 7, 15, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), MonthStart(in))
}
