package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSundaysProperties(t *testing.T) {
	for _, year := range []int{2023, 2024, 2025, 2026, 2027, 2028} {
		sundays := Sundays(year)

		require.NotEmpty(t, sundays, "year %d", year)
		assert.True(t, len(sundays) == 52 || len(sundays) == 53,
			"year %d has %d Sundays", year, len(sundays))

		for i, d := range sundays {
			assert.Equal(t, time.Sunday, d.Weekday(), "year %d index %d", year, i)
			assert.Equal(t, year, d.Year(), "year %d index %d", year, i)
			if i > 0 {
				assert.True(t, d.After(sundays[i-1]), "not strictly increasing at %d", i)
				assert.Equal(t, sundays[i-1].AddDate(0, 0, 7), d, "gap at %d", i)
			}
		}

		// No Sunday before the first or after the last within the year.
		first := sundays[0]
		assert.True(t, first.AddDate(0, 0, -7).Year() < year)
		last := sundays[len(sundays)-1]
		assert.True(t, last.AddDate(0, 0, 7).Year() > year)
	}
}

func TestSundays2026FirstAndLast(t *testing.T) {
	sundays := Sundays(2026)
	require.Len(t, sundays, 52)
	assert.Equal(t, time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC), sundays[0])
	assert.Equal(t, time.Date(2026, time.December, 27, 0, 0, 0, 0, time.UTC), sundays[len(sundays)-1])
}

func TestSundaysInMonthPartitionsYear(t *testing.T) {
	year := 2026
	total := 0
	for month := time.January; month <= time.December; month++ {
		for _, d := range SundaysInMonth(year, month) {
			assert.Equal(t, month, d.Month())
			total++
		}
	}
	assert.Equal(t, len(Sundays(year)), total)
}

func TestIsSundayOf(t *testing.T) {
	assert.True(t, IsSundayOf(time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC), 2026))
	assert.False(t, IsSundayOf(time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), 2026))
	assert.False(t, IsSundayOf(time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), 2026))
}
