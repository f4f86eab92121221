package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type readerStub struct {
	hours    map[Weekday]*models.OperatingHour
	bookings []models.Booking
	err      error
}

func (r *readerStub) GetOperatingHours(_ context.Context, _ uint, day Weekday) (*models.OperatingHour, error) {
	if r.err != nil {
		return nil, r.err
	}
	oh, ok := r.hours[day]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return oh, nil
}

func (r *readerStub) HasOperatingHours(context.Context, uint) (bool, error) {
	return len(r.hours) > 0, nil
}

func (r *readerStub) FindOverlappingBookings(_ context.Context, _ uint, start, end time.Time, statuses []Status) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		live := false
		for _, s := range statuses {
			if Status(b.Status) == s {
				live = true
			}
		}
		if live && Overlaps(b.StartTime, b.EndTime, start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

// 2026-03-02 is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func mondayHours() *readerStub {
	return &readerStub{hours: map[Weekday]*models.OperatingHour{
		Monday:  {Day: "Monday", OpenTime: "10:00", CloseTime: "22:00"},
		Tuesday: {Day: "Tuesday", IsClosed: true},
	}}
}

func fallback(t *testing.T) Window {
	w, err := NewWindow("10:00", "22:00")
	require.NoError(t, err)
	return w
}

func TestValidate(t *testing.T) {
	now := monday(8, 0)
	v := NewValidator(fallback(t))

	tests := []struct {
		name     string
		reader   *readerStub
		start    time.Time
		duration time.Duration
		wantCode string
		wantEnd  time.Time
	}{
		{
			name:     "last half hour fits exactly",
			reader:   mondayHours(),
			start:    monday(21, 30),
			duration: 30 * time.Minute,
			wantEnd:  monday(22, 0),
		},
		{
			name:     "end runs past close",
			reader:   mondayHours(),
			start:    monday(21, 45),
			duration: 30 * time.Minute,
			wantCode: CodeOutsideOperatingHours,
		},
		{
			name:     "start exactly at open",
			reader:   mondayHours(),
			start:    monday(10, 0),
			duration: 30 * time.Minute,
			wantEnd:  monday(10, 30),
		},
		{
			name:     "end one minute past close",
			reader:   mondayHours(),
			start:    monday(21, 31),
			duration: 30 * time.Minute,
			wantCode: CodeOutsideOperatingHours,
		},
		{
			name:     "before open",
			reader:   mondayHours(),
			start:    monday(9, 45),
			duration: 30 * time.Minute,
			wantCode: CodeOutsideOperatingHours,
		},
		{
			name:     "start at close",
			reader:   mondayHours(),
			start:    monday(22, 0),
			duration: 30 * time.Minute,
			wantCode: CodeOutsideOperatingHours,
		},
		{
			name:     "closed day",
			reader:   mondayHours(),
			start:    monday(12, 0).AddDate(0, 0, 1),
			duration: 30 * time.Minute,
			wantCode: CodeOutsideOperatingHours,
		},
		{
			name:     "configured barber missing the day",
			reader:   mondayHours(),
			start:    monday(12, 0).AddDate(0, 0, 2),
			duration: 30 * time.Minute,
			wantCode: CodeOutsideOperatingHours,
		},
		{
			name:     "unconfigured barber uses fallback",
			reader:   &readerStub{},
			start:    monday(12, 0).AddDate(0, 0, 5),
			duration: 45 * time.Minute,
			wantEnd:  monday(12, 45).AddDate(0, 0, 5),
		},
		{
			name:     "past start wins over everything",
			reader:   &readerStub{err: errors.New("should not be reached")},
			start:    monday(7, 59),
			duration: 30 * time.Minute,
			wantCode: CodePastBooking,
		},
		{
			name:     "start equal to now is accepted",
			reader:   &readerStub{hours: map[Weekday]*models.OperatingHour{Monday: {OpenTime: "08:00", CloseTime: "12:00"}}},
			start:    now,
			duration: 30 * time.Minute,
			wantEnd:  monday(8, 30),
		},
		{
			name: "overlap with pending booking",
			reader: &readerStub{hours: mondayHours().hours, bookings: []models.Booking{
				{StartTime: monday(12, 0), EndTime: monday(12, 30), Status: "pending"},
			}},
			start:    monday(12, 15),
			duration: 30 * time.Minute,
			wantCode: CodeSlotConflict,
		},
		{
			name: "overlap with approved booking",
			reader: &readerStub{hours: mondayHours().hours, bookings: []models.Booking{
				{StartTime: monday(12, 0), EndTime: monday(13, 0), Status: "approved"},
			}},
			start:    monday(11, 45),
			duration: 30 * time.Minute,
			wantCode: CodeSlotConflict,
		},
		{
			name: "cancelled and rejected bookings do not block",
			reader: &readerStub{hours: mondayHours().hours, bookings: []models.Booking{
				{StartTime: monday(12, 0), EndTime: monday(12, 30), Status: "cancelled"},
				{StartTime: monday(12, 0), EndTime: monday(12, 30), Status: "rejected"},
			}},
			start:    monday(12, 0),
			duration: 30 * time.Minute,
			wantEnd:  monday(12, 30),
		},
		{
			name: "adjacent booking is not a conflict",
			reader: &readerStub{hours: mondayHours().hours, bookings: []models.Booking{
				{StartTime: monday(12, 0), EndTime: monday(12, 30), Status: "approved"},
			}},
			start:    monday(12, 30),
			duration: 30 * time.Minute,
			wantEnd:  monday(13, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := v.Validate(context.Background(), tt.reader, SlotRequest{
				BarberID: 1,
				Start:    tt.start,
				Duration: tt.duration,
				Now:      now,
			})

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, httperr.IsBusiness(err, tt.wantCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, slot.Start)
			assert.Equal(t, tt.wantEnd, slot.End)
		})
	}
}

func TestValidateRejectsNonPositiveDuration(t *testing.T) {
	v := NewValidator(fallback(t))
	_, err := v.Validate(context.Background(), &readerStub{}, SlotRequest{
		Start: monday(12, 0), Now: monday(8, 0),
	})
	assert.True(t, httperr.IsBusiness(err, CodeValidation))
}

func TestValidatePropagatesStoreErrors(t *testing.T) {
	v := NewValidator(fallback(t))
	boom := errors.New("connection refused")

	_, err := v.Validate(context.Background(), &readerStub{err: boom}, SlotRequest{
		Start: monday(12, 0), Duration: time.Hour, Now: monday(8, 0),
	})
	assert.ErrorIs(t, err, boom)
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps(monday(10, 0), monday(11, 0), monday(10, 59), monday(12, 0)))
	assert.False(t, Overlaps(monday(10, 0), monday(11, 0), monday(11, 0), monday(12, 0)))
	assert.False(t, Overlaps(monday(11, 0), monday(12, 0), monday(10, 0), monday(11, 0)))
	assert.True(t, Overlaps(monday(10, 0), monday(12, 0), monday(10, 30), monday(11, 0)))
}
