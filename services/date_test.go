package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "Seeded post date",
			input:    time.Date(2024, 10, 28, 0, 0, 0, 0, time.UTC),
			expected: "28 de outubro de 2024",
		},
		{
			name:     "Single digit day",
			input:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			expected: "1 de março de 2025",
		},
		{
			name:     "First month",
			input:    time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC),
			expected: "27 de janeiro de 2026",
		},
		{
			name:     "Last month",
			input:    time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC),
			expected: "31 de dezembro de 2023",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDate(tt.input))
		})
	}
}

func TestISODate(t *testing.T) {
	assert.Equal(t, "2024-10-28", ISODate(time.Date(2024, 10, 28, 15, 4, 0, 0, time.UTC)))
	assert.Equal(t, "", ISODate(time.Time{}))
}
