package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParse_RejectsOtherLayouts(t *testing.T) {
	for _, v := range []string{"2025/06/10", "10-06-2025", "2025-6-1", ""} {
		_, err := Parse(v)
		assert.Error(t, err, v)
	}
	_, err := Parse("2025-06-10")
	assert.NoError(t, err)
}

func TestRange(t *testing.T) {
	days := Range(day("2025-06-10"), day("2025-06-12"))
	if assert.Len(t, days, 3) {
		assert.Equal(t, "2025-06-10", Format(days[0]))
		assert.Equal(t, "2025-06-12", Format(days[2]))
	}
	assert.Len(t, Range(day("2025-06-10"), day("2025-06-10")), 1)
	assert.Empty(t, Range(day("2025-06-12"), day("2025-06-10")))
}

func TestOverlaps(t *testing.T) {
	existingStart, existingEnd := day("2025-06-10"), day("2025-06-12")

	assert.True(t, Overlaps(existingStart, existingEnd, day("2025-06-11"), day("2025-06-13")))
	assert.True(t, Overlaps(existingStart, existingEnd, day("2025-06-12"), day("2025-06-12")))
	assert.True(t, Overlaps(existingStart, existingEnd, day("2025-06-01"), day("2025-06-30")))
	assert.False(t, Overlaps(existingStart, existingEnd, day("2025-06-13"), day("2025-06-14")))
	assert.False(t, Overlaps(existingStart, existingEnd, day("2025-06-01"), day("2025-06-09")))
}

func TestCivil_KeepsLocalCalendarDate(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	late := time.Date(2025, 6, 10, 23, 50, 0, 0, loc)

	assert.Equal(t, "2025-06-10", Format(Civil(late)))
	assert.Equal(t, time.UTC, Civil(late).Location())
}

func TestStartOfWeekAndMonth(t *testing.T) {
	assert.Equal(t, "2025-06-09", Format(StartOfWeek(day("2025-06-12"))))
	assert.Equal(t, "2025-06-09", Format(StartOfWeek(day("2025-06-09"))))
	assert.Equal(t, "2025-06-09", Format(StartOfWeek(day("2025-06-15"))))
	assert.Equal(t, "2025-06-01", Format(StartOfMonth(day("2025-06-12"))))
}
