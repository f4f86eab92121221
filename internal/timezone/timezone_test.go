package timezone

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBack(t *testing.T) {
	assert.Equal(t, "UTC", Location("").String())
	assert.Equal(t, "UTC", Location("Nowhere/Town").String())
	assert.Equal(t, "America/Sao_Paulo", Location("America/Sao_Paulo").String())
}

func TestFloatingKeepsWallClock(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	in := time.Date(2026, 3, 2, 21, 30, 15, 999, loc)

	got := Floating(in)

	assert.Equal(t, time.Date(2026, 3, 2, 21, 30, 15, 0, time.UTC), got)
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2026-03-02", "09:05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 5, 0, 0, time.UTC), got)

	_, err = ParseDateTime("2026-03-02", "9h05")
	assert.Error(t, err)

	_, err = ParseDate("02/03/2026")
	assert.Error(t, err)
}

func TestShopClockIsFloating(t *testing.T) {
	now := NewShopClock("America/Sao_Paulo").Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond())
}
