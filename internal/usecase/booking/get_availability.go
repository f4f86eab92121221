package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/barber-marketplace/internal/timezone"
)

type AvailabilityInput struct {
	BarberID  uint
	Date      string // YYYY-MM-DD
	ServiceID uint   // optional; default duration when zero
}

// GetAvailability lists the free slots of one day, stepping by the service
// duration from opening time.
type GetAvailability struct {
	repo            domain.Repository
	validator       *domain.Validator
	clock           timezone.Clock
	defaultDuration time.Duration
}

func NewGetAvailability(
	repo domain.Repository,
	validator *domain.Validator,
	clock timezone.Clock,
	defaultDuration time.Duration,
) *GetAvailability {
	return &GetAvailability{
		repo:            repo,
		validator:       validator,
		clock:           clock,
		defaultDuration: defaultDuration,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]domain.TimeSlot, error) {

	day, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, domain.Invalid("date must be YYYY-MM-DD")
	}

	profile, err := uc.repo.GetBarberProfile(ctx, in.BarberID)
	if err != nil {
		return nil, notFoundAs(err, domain.CodeBarberNotFound, "Barber not found.")
	}

	slotDuration := uc.defaultDuration
	if in.ServiceID != 0 {
		service, err := uc.repo.GetService(ctx, profile.ID, in.ServiceID)
		if err != nil {
			return nil, notFoundAs(err, domain.CodeServiceNotFound, "Service not found.")
		}
		if service.DurationMin > 0 {
			slotDuration = time.Duration(service.DurationMin) * time.Minute
		}
	}

	w, open, err := uc.validator.WindowFor(ctx, uc.repo, profile.ID, domain.WeekdayOf(day))
	if err != nil {
		return nil, err
	}
	if !open {
		return []domain.TimeSlot{}, nil
	}

	dayStart := w.StartOn(day)
	dayEnd := w.CloseOn(day)

	bookings, err := uc.repo.FindOverlappingBookings(ctx, profile.ID, dayStart, dayEnd, domain.LiveStatuses)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	slots := []domain.TimeSlot{}

	for cur := dayStart; !cur.Add(slotDuration).After(dayEnd); cur = cur.Add(slotDuration) {
		slotStart := cur
		slotEnd := cur.Add(slotDuration)

		if slotStart.Before(now) {
			continue
		}

		conflict := false
		for i := range bookings {
			if domain.Overlaps(slotStart, slotEnd, bookings[i].StartTime, bookings[i].EndTime) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, domain.TimeSlot{
				Start: slotStart.Format(timezone.ClockLayout),
				End:   slotEnd.Format(timezone.ClockLayout),
			})
		}
	}

	return slots, nil
}
