package gtfsdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadStopID(t *testing.T) {
	cases := map[string]string{
		"7":     "0007",
		"73":    "0073",
		"473":   "0473",
		"1492":  "1492",
		"12345": "12345",
		"A12":   "A12",
		"":      "",
	}
	for in, want := range cases {
		assert.Equal(t, want, PadStopID(in), "PadStopID(%q)", in)
	}
}

func TestFormatScheduleTime(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatScheduleTime(0))
	assert.Equal(t, "07:05:03", FormatScheduleTime(7*time.Hour+5*time.Minute+3*time.Second))
	assert.Equal(t, "23:59:59", FormatScheduleTime(24*time.Hour-time.Second))

	// Trips past midnight keep their service-day ordering: hours run past 24
	// instead of wrapping.
	assert.Equal(t, "25:10:00", FormatScheduleTime(25*time.Hour+10*time.Minute))
	assert.Greater(t, FormatScheduleTime(25*time.Hour), FormatScheduleTime(23*time.Hour))
}

func TestNormalizeText(t *testing.T) {
	cases := map[string]string{
		"Main Street":          "main street",
		"  Main   Street  ":    "main street",
		"Main St. / 5th Ave":   "main st 5th ave",
		"PARK & AVENUE":        "park avenue",
		"stop-name (platform)": "stop name platform",
		"!!!":                  "",
		"":                     "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeText(in), "NormalizeText(%q)", in)
	}
}

func TestFuzzyPattern(t *testing.T) {
	assert.Equal(t, "%main%st%", FuzzyPattern("Main St."))
	assert.Equal(t, "%university%commons%", FuzzyPattern("  University   Commons "))
	assert.Equal(t, "", FuzzyPattern(""))
	assert.Equal(t, "", FuzzyPattern("?!"))
}

func TestWeekdayColumn(t *testing.T) {
	cases := map[string]string{
		"2026-01-26": "monday",
		"2026-01-27": "tuesday",
		"2026-01-28": "wednesday",
		"2026-01-29": "thursday",
		"2026-01-30": "friday",
		"2026-01-31": "saturday",
		"2026-02-01": "sunday",
	}
	for date, want := range cases {
		col, err := weekdayColumn(date)
		require.NoError(t, err)
		assert.Equal(t, want, col, "weekdayColumn(%q)", date)
	}

	_, err := weekdayColumn("01/30/2026")
	assert.Error(t, err)
}
