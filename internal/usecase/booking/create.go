package booking

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/barber"
	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
	"github.com/BruksfildServices01/barber-marketplace/internal/timezone"
)

const maxDuration = 24 * time.Hour

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarberID     uint
	ServiceID    uint
	TeamMemberID *uint

	Date string // YYYY-MM-DD
	Time string // HH:MM

	// DurationMin overrides the service duration when set.
	DurationMin *int
}

type Policy struct {
	DefaultDuration time.Duration
	RequireApproval bool
	AdvisoryLock    bool
}

// ======================================================
// USE CASE
// ======================================================

// CreateBooking is the scheduler entry point: validate the slot and insert
// it in one transaction.
type CreateBooking struct {
	repo      domain.Repository
	validator *domain.Validator
	clock     timezone.Clock
	audit     audit.Recorder
	policy    Policy
}

func NewCreateBooking(
	repo domain.Repository,
	validator *domain.Validator,
	clock timezone.Clock,
	audit audit.Recorder,
	policy Policy,
) *CreateBooking {
	return &CreateBooking{
		repo:      repo,
		validator: validator,
		clock:     clock,
		audit:     audit,
		policy:    policy,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	who identity.Identity,
	in CreateBookingInput,
) (*models.Booking, error) {

	if !who.Is(identity.RoleCustomer) {
		return nil, domain.ErrUnauthorized
	}

	// --------------------------------------------------
	// Start time, past check first
	// --------------------------------------------------
	start, err := timezone.ParseDateTime(in.Date, in.Time)
	if err != nil {
		return nil, domain.Invalid("date must be YYYY-MM-DD and time HH:MM")
	}

	now := uc.clock.Now()
	if err := domain.CheckNotPast(start, now); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Barber, service, team member
	// --------------------------------------------------
	profile, err := uc.repo.GetBarberProfile(ctx, in.BarberID)
	if err != nil {
		return nil, notFoundAs(err, domain.CodeBarberNotFound, "Barber not found.")
	}
	if uc.policy.RequireApproval && barber.ProfileStatus(profile.Status) != barber.ProfileApproved {
		return nil, httperr.ErrBusinessMsg(domain.CodeBarberUnavailable, "Barber is not accepting bookings.")
	}

	service, err := uc.repo.GetService(ctx, profile.ID, in.ServiceID)
	if err != nil {
		return nil, notFoundAs(err, domain.CodeServiceNotFound, "Service not found.")
	}

	duration, err := uc.resolveDuration(in.DurationMin, service)
	if err != nil {
		return nil, err
	}

	var memberName string
	if in.TeamMemberID != nil {
		member, err := uc.repo.GetTeamMember(ctx, profile.ID, *in.TeamMemberID)
		if err != nil {
			return nil, notFoundAs(err, domain.CodeTeamMemberNotFound, "Team member not found.")
		}
		memberName = member.Name
	}

	// --------------------------------------------------
	// Validate + insert, atomically
	// --------------------------------------------------
	b := &models.Booking{
		CustomerID:   who.UserID,
		BarberID:     profile.ID,
		ServiceID:    service.ID,
		TeamMemberID: in.TeamMemberID,
		TeamMember:   memberName,
		DurationMin:  int(duration / time.Minute),
		Price:        service.Price,
		Status:       string(domain.InitialStatus()),
	}

	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		if uc.policy.AdvisoryLock {
			if err := tx.LockBarber(ctx, profile.ID); err != nil {
				return err
			}
		}

		slot, err := uc.validator.Validate(ctx, tx, domain.SlotRequest{
			BarberID: profile.ID,
			Start:    start,
			Duration: duration,
			Now:      now,
		})
		if err != nil {
			return err
		}

		b.StartTime = slot.Start
		b.EndTime = slot.End
		return tx.InsertBooking(ctx, b)
	})

	if err != nil {
		if httperr.IsBusiness(err, domain.CodeSlotConflict) {
			uc.audit.Dispatch(audit.Event{
				BarberID: &profile.ID,
				UserID:   &who.UserID,
				Action:   audit.ActionBookingConflict,
				Entity:   "booking",
				Metadata: map[string]any{
					"start":    start,
					"duration": b.DurationMin,
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BarberID: &profile.ID,
		UserID:   &who.UserID,
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

func (uc *CreateBooking) resolveDuration(override *int, service *models.Service) (time.Duration, error) {
	minutes := service.DurationMin
	if override != nil {
		minutes = *override
		if minutes <= 0 {
			return 0, domain.Invalid("duration must be a positive number of minutes")
		}
	}

	d := time.Duration(minutes) * time.Minute
	if d <= 0 {
		d = uc.policy.DefaultDuration
	}
	if d > maxDuration {
		return 0, domain.Invalid("duration must not exceed one day")
	}
	return d, nil
}

func notFoundAs(err error, code, message string) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return httperr.ErrBusinessMsg(code, message)
	}
	return err
}
