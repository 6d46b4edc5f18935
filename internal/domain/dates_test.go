package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_Separators(t *testing.T) {
	want := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{"2025-07-15", "2025/07/15", "07/15/2025", "7-15-2025", " 2025-7-15 "} {
		got, ok := ParseDate(input)
		require.True(t, ok, "input %q should parse", input)
		assert.True(t, got.Equal(want), "input %q parsed to %v", input, got)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "not a date", "2025-13-40", "July 15"} {
		got, ok := ParseDate(input)
		assert.False(t, ok, "input %q should not parse", input)
		assert.True(t, got.IsZero())
	}
}

func TestRoundDays(t *testing.T) {
	finish, _ := ParseDate("2025-07-12")
	due, _ := ParseDate("2025-07-15")

	assert.Equal(t, 3, RoundDays(finish, due), "finish before due is ahead of schedule")
	assert.Equal(t, -3, RoundDays(due, finish))
	assert.Equal(t, 0, RoundDays(due, due))
}

func TestFormatDate_Zero(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}))
	d, _ := ParseDate("2025-01-02")
	assert.Equal(t, "2025-01-02", FormatDate(d))
}

func TestTaskRecordValid(t *testing.T) {
	start, _ := ParseDate("2025-07-01")
	due, _ := ParseDate("2025-07-31")
	rec := TaskRecord{Project: "Job-001", Store: "Store-A", SKU: "SKU-1", Order: 1, EstimatedHours: 4, StartDate: start, DueDate: due}
	require.True(t, rec.Valid())

	missing := rec
	missing.Store = ""
	assert.False(t, missing.Valid())

	negative := rec
	negative.EstimatedHours = -1
	assert.False(t, negative.Valid())

	noDate := rec
	noDate.DueDate = time.Time{}
	assert.False(t, noDate.Valid())
}
