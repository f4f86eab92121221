package booking

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
	"github.com/BruksfildServices01/barber-marketplace/internal/timezone"
)

type CancelPolicy struct {
	Cutoff time.Duration

	// Delete removes the row instead of marking it cancelled.
	Delete bool
}

type CancelBooking struct {
	repo   domain.Repository
	clock  timezone.Clock
	audit  audit.Recorder
	policy CancelPolicy
}

func NewCancelBooking(
	repo domain.Repository,
	clock timezone.Clock,
	audit audit.Recorder,
	policy CancelPolicy,
) *CancelBooking {
	return &CancelBooking{
		repo:   repo,
		clock:  clock,
		audit:  audit,
		policy: policy,
	}
}

// Execute cancels the caller's own booking. The returned booking is nil when
// the delete strategy removed it.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	who identity.Identity,
	bookingID uint,
) (*models.Booking, error) {

	if !who.Is(identity.RoleCustomer) {
		return nil, domain.ErrUnauthorized
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if err := domain.CheckCancel(b, who, now, uc.policy.Cutoff); err != nil {
		return nil, err
	}

	from := domain.Status(b.Status)
	var out *models.Booking
	if uc.policy.Delete {
		err = uc.repo.DeleteBooking(ctx, b.ID, from)
	} else {
		out, err = uc.repo.UpdateBookingStatus(ctx, b.ID, from, domain.StatusCancelled, now)
	}
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &b.BarberID,
		UserID:   &who.UserID,
		Action:   audit.ActionBookingCancelled,
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"from": string(from), "deleted": uc.policy.Delete},
	})

	return out, nil
}
