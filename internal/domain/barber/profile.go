package barber

import (
	"strings"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
)

type ProfileStatus string

const (
	ProfilePending  ProfileStatus = "pending"
	ProfileApproved ProfileStatus = "approved"
	ProfileRejected ProfileStatus = "rejected"
)

const CodeInvalidReview = "invalid_review"

var ErrInvalidReview = httperr.ErrBusinessMsg(CodeInvalidReview, "Only pending barbers can be approved or rejected.")

// CanReview allows an administrator to settle a pending profile once.
func CanReview(from ProfileStatus, to string) (ProfileStatus, error) {
	target := ProfileStatus(strings.ToLower(strings.TrimSpace(to)))
	if from != ProfilePending {
		return "", ErrInvalidReview
	}
	if target != ProfileApproved && target != ProfileRejected {
		return "", ErrInvalidReview
	}
	return target, nil
}
