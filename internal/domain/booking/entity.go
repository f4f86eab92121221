package booking

import (
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Decide checks a barber's approve/reject request against the booking.
func Decide(b *models.Booking, to Status, who identity.Identity) error {
	if !who.Is(identity.RoleBarber) || b.BarberID != who.BarberID {
		return ErrUnauthorized
	}
	return CanTransition(Status(b.Status), to, identity.RoleBarber)
}

// CheckCancel checks a customer's cancellation, including the cutoff:
// now + cutoff must not be after the booking start.
func CheckCancel(b *models.Booking, who identity.Identity, now time.Time, cutoff time.Duration) error {
	if !who.Is(identity.RoleCustomer) || b.CustomerID != who.UserID {
		return ErrUnauthorized
	}
	if err := CanTransition(Status(b.Status), StatusCancelled, identity.RoleCustomer); err != nil {
		return err
	}
	if now.Add(cutoff).After(b.StartTime) {
		return ErrCancellationTooLate
	}
	return nil
}
