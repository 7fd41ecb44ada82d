package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDates(t *testing.T) {
	dates, err := GenerateDates("2025-02-27", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-02-27", "2025-02-28", "2025-03-01", "2025-03-02"}, dates)

	_, err = GenerateDates("2025-02-27", 0)
	assert.Error(t, err)

	_, err = GenerateDates("27.02.2025", 2)
	assert.Error(t, err)
}

func TestDefaultStartDate(t *testing.T) {
	now := time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-01-01", DefaultStartDate(now))
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2025, 4, 1, 6, 30, 0, 0, time.UTC)

	for _, value := range []string{
		"2025-04-01T06:30:00",
		"2025-04-01T06:30:00.000",
		"2025-04-01 06:30:00",
		"2025-04-01T06:30:00Z",
		"2025-04-01T08:30:00+02:00",
	} {
		got, err := ParseTimestamp(value)
		require.NoError(t, err, value)
		assert.True(t, got.Equal(want), value)
		assert.Equal(t, time.UTC, got.Location(), value)
	}

	_, err := ParseTimestamp("tomorrow")
	assert.Error(t, err)
}
