package barber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
)

func TestCanReview(t *testing.T) {
	to, err := CanReview(ProfilePending, "Approved")
	require.NoError(t, err)
	assert.Equal(t, ProfileApproved, to)

	to, err = CanReview(ProfilePending, "rejected")
	require.NoError(t, err)
	assert.Equal(t, ProfileRejected, to)

	_, err = CanReview(ProfilePending, "pending")
	assert.ErrorIs(t, err, ErrInvalidReview)

	_, err = CanReview(ProfileApproved, "rejected")
	assert.ErrorIs(t, err, ErrInvalidReview)
}

func TestBuildOperatingHours(t *testing.T) {
	rows, err := BuildOperatingHours(4, []DayHours{
		{Day: "monday", OpenTime: "10:00", CloseTime: "22:00"},
		{Day: "SUNDAY", IsClosed: true, OpenTime: "junk"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Monday", rows[0].Day)
	assert.Equal(t, uint(4), rows[0].BarberID)
	assert.Equal(t, "Sunday", rows[1].Day)
	assert.True(t, rows[1].IsClosed)
	assert.Empty(t, rows[1].OpenTime)

	tests := []struct {
		name string
		days []DayHours
	}{
		{name: "unknown day", days: []DayHours{{Day: "Mon", OpenTime: "10:00", CloseTime: "12:00"}}},
		{name: "duplicate day", days: []DayHours{
			{Day: "Friday", OpenTime: "10:00", CloseTime: "12:00"},
			{Day: "friday", IsClosed: true},
		}},
		{name: "open after close", days: []DayHours{{Day: "Friday", OpenTime: "18:00", CloseTime: "10:00"}}},
		{name: "missing times", days: []DayHours{{Day: "Friday"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildOperatingHours(4, tt.days)
			assert.True(t, httperr.IsBusiness(err, booking.CodeValidation), "got %v", err)
		})
	}
}
