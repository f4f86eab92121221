package booking

import (
	"errors"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
)

// Business error codes surfaced to callers.
const (
	CodePastBooking           = "past_booking"
	CodeOutsideOperatingHours = "outside_operating_hours"
	CodeSlotConflict          = "slot_conflict"
	CodeInvalidTransition     = "invalid_transition"
	CodeCancellationTooLate   = "cancellation_too_late"
	CodeUnauthorized          = "unauthorized"
	CodeNotFound              = "not_found"
	CodeValidation            = "validation_error"

	CodeBarberNotFound     = "barber_not_found"
	CodeBarberUnavailable  = "barber_unavailable"
	CodeServiceNotFound    = "service_not_found"
	CodeTeamMemberNotFound = "team_member_not_found"
)

var (
	ErrPastBooking           = httperr.ErrBusinessMsg(CodePastBooking, "Requested start time is in the past.")
	ErrOutsideOperatingHours = httperr.ErrBusinessMsg(CodeOutsideOperatingHours, "Requested slot is outside operating hours.")
	ErrSlotConflict          = httperr.ErrBusinessMsg(CodeSlotConflict, "Requested slot overlaps an existing booking.")
	ErrInvalidTransition     = httperr.ErrBusinessMsg(CodeInvalidTransition, "Status change is not allowed.")
	ErrCancellationTooLate   = httperr.ErrBusinessMsg(CodeCancellationTooLate, "Booking can no longer be cancelled.")
	ErrUnauthorized          = httperr.ErrBusinessMsg(CodeUnauthorized, "Caller may not perform this action.")
	ErrBookingNotFound       = httperr.ErrBusinessMsg(CodeNotFound, "Booking not found.")
)

// ErrRecordNotFound is returned by repositories for missing rows.
var ErrRecordNotFound = errors.New("record not found")

func Invalid(message string) error {
	return httperr.ErrBusinessMsg(CodeValidation, message)
}
