package barber

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/barber"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

// ReviewBarber is the administrator's onboarding decision.
type ReviewBarber struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewReviewBarber(repo domain.Repository, audit audit.Recorder) *ReviewBarber {
	return &ReviewBarber{repo: repo, audit: audit}
}

func (uc *ReviewBarber) Execute(
	ctx context.Context,
	who identity.Identity,
	barberID uint,
	status string,
) (*models.BarberProfile, error) {

	if !who.Is(identity.RoleAdmin) {
		return nil, booking.ErrUnauthorized
	}

	profile, err := uc.repo.GetBarberProfile(ctx, barberID)
	if err != nil {
		return nil, barberNotFound(err)
	}

	from := domain.ProfileStatus(profile.Status)
	to, err := domain.CanReview(from, status)
	if err != nil {
		return nil, err
	}

	updated, err := uc.repo.UpdateProfileStatus(ctx, profile.ID, from, to)
	if err != nil {
		return nil, barberNotFound(err)
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &updated.ID,
		UserID:   &who.UserID,
		Action:   audit.ActionBarberReviewed,
		Entity:   "barber_profile",
		EntityID: &updated.ID,
		Metadata: map[string]string{"status": string(to)},
	})

	return updated, nil
}

func barberNotFound(err error) error {
	if errors.Is(err, booking.ErrRecordNotFound) {
		return httperr.ErrBusinessMsg(booking.CodeBarberNotFound, "Barber not found.")
	}
	return err
}
