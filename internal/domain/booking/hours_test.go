package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

func TestParseClock(t *testing.T) {
	d, err := ParseClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, 9*time.Hour+5*time.Minute, d)

	for _, bad := range []string{"9:05", "24:00", "12:60", "noon", "", "12:00:00"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewWindow(t *testing.T) {
	_, err := NewWindow("18:00", "09:00")
	assert.Error(t, err)

	_, err = NewWindow("09:00", "09:00")
	assert.Error(t, err)

	w, err := NewWindow("09:00", "18:00")
	require.NoError(t, err)
	day := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), w.StartOn(day))
	assert.Equal(t, time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC), w.CloseOn(day))
}

func TestWindowFitsRejectsMidnightWrap(t *testing.T) {
	w, err := NewWindow("20:00", "23:59")
	require.NoError(t, err)

	start := time.Date(2026, 3, 2, 23, 30, 0, 0, time.UTC)
	assert.False(t, w.Fits(start, time.Hour))
	assert.True(t, w.Fits(start, 29*time.Minute))
}

func TestWindowFromRecord(t *testing.T) {
	_, open, err := WindowFromRecord(&models.OperatingHour{IsClosed: true})
	require.NoError(t, err)
	assert.False(t, open)

	_, open, err = WindowFromRecord(nil)
	require.NoError(t, err)
	assert.False(t, open)

	w, open, err := WindowFromRecord(&models.OperatingHour{OpenTime: "10:00", CloseTime: "22:00"})
	require.NoError(t, err)
	assert.True(t, open)
	assert.Equal(t, 10*time.Hour, w.Open)

	_, _, err = WindowFromRecord(&models.OperatingHour{OpenTime: "22:00", CloseTime: "10:00"})
	assert.Error(t, err)
}

func TestWeekdays(t *testing.T) {
	d, err := ParseWeekday("  wednesday")
	require.NoError(t, err)
	assert.Equal(t, Wednesday, d)

	for _, bad := range []string{"Wed", "mon", "", "Funday"} {
		_, err := ParseWeekday(bad)
		assert.Error(t, err, bad)
	}

	// 2026-03-01 is a Sunday.
	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	want := []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
	for i, w := range want {
		assert.Equal(t, w, WeekdayOf(first.AddDate(0, 0, i)))
	}
}
