package booking

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

// Reader is the read side of the persistence store the validator needs.
type Reader interface {
	// GetOperatingHours returns ErrRecordNotFound when the barber has no row
	// for the day.
	GetOperatingHours(ctx context.Context, barberID uint, day Weekday) (*models.OperatingHour, error)

	HasOperatingHours(ctx context.Context, barberID uint) (bool, error)

	// FindOverlappingBookings returns bookings with a status in statuses
	// whose [start, end) intersects the given interval.
	FindOverlappingBookings(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
		statuses []Status,
	) ([]models.Booking, error)
}

type SlotRequest struct {
	BarberID uint
	Start    time.Time
	Duration time.Duration
	Now      time.Time
}

type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Overlaps is strict half-open interval intersection.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Validator decides whether a requested slot can be booked. It never writes.
type Validator struct {
	fallback Window
}

// NewValidator takes the window used for barbers that have not configured
// any operating hours.
func NewValidator(fallback Window) *Validator {
	return &Validator{fallback: fallback}
}

func CheckNotPast(start, now time.Time) error {
	if start.Before(now) {
		return ErrPastBooking
	}
	return nil
}

// Validate runs the checks in order and returns the accepted slot or the
// first rejection.
func (v *Validator) Validate(ctx context.Context, r Reader, req SlotRequest) (Slot, error) {
	if err := CheckNotPast(req.Start, req.Now); err != nil {
		return Slot{}, err
	}
	if req.Duration <= 0 {
		return Slot{}, Invalid("duration must be positive")
	}

	w, open, err := v.WindowFor(ctx, r, req.BarberID, WeekdayOf(req.Start))
	if err != nil {
		return Slot{}, err
	}
	if !open || !w.Fits(req.Start, req.Duration) {
		return Slot{}, ErrOutsideOperatingHours
	}

	slot := Slot{Start: req.Start, End: req.Start.Add(req.Duration)}

	conflicts, err := r.FindOverlappingBookings(ctx, req.BarberID, slot.Start, slot.End, LiveStatuses)
	if err != nil {
		return Slot{}, err
	}
	if len(conflicts) > 0 {
		return Slot{}, ErrSlotConflict
	}

	return slot, nil
}

// WindowFor resolves the barber's hours for a day. A barber with no rows at
// all gets the fallback window every day; once any row exists, a missing
// day is closed.
func (v *Validator) WindowFor(ctx context.Context, r Reader, barberID uint, day Weekday) (Window, bool, error) {
	oh, err := r.GetOperatingHours(ctx, barberID, day)
	if err == nil {
		return WindowFromRecord(oh)
	}
	if !errors.Is(err, ErrRecordNotFound) {
		return Window{}, false, err
	}

	configured, err := r.HasOperatingHours(ctx, barberID)
	if err != nil {
		return Window{}, false, err
	}
	if configured {
		return Window{}, false, nil
	}
	return v.fallback, true, nil
}
