package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
	"github.com/BruksfildServices01/barber-marketplace/internal/timezone"
)

// UpdateBookingStatus lets the owning barber approve or reject a pending
// booking.
type UpdateBookingStatus struct {
	repo  domain.Repository
	clock timezone.Clock
	audit audit.Recorder
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	clock timezone.Clock,
	audit audit.Recorder,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		clock: clock,
		audit: audit,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	who identity.Identity,
	bookingID uint,
	status string,
) (*models.Booking, error) {

	if !who.Is(identity.RoleBarber) {
		return nil, domain.ErrUnauthorized
	}

	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := domain.Decide(b, to, who); err != nil {
		return nil, err
	}

	from := domain.Status(b.Status)
	updated, err := uc.repo.UpdateBookingStatus(ctx, b.ID, from, to, uc.clock.Now())
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &updated.BarberID,
		UserID:   &who.UserID,
		Action:   audit.ActionBookingStatusChanged,
		Entity:   "booking",
		EntityID: &updated.ID,
		Metadata: map[string]string{"from": string(from), "to": string(to)},
	})

	return updated, nil
}
