package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/barber"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
	"github.com/BruksfildServices01/barber-marketplace/internal/middleware"
	"github.com/BruksfildServices01/barber-marketplace/internal/validators"
)

// statusByCode is the single place business codes become HTTP statuses.
var statusByCode = map[string]int{
	booking.CodeValidation:            http.StatusBadRequest,
	booking.CodePastBooking:           http.StatusBadRequest,
	booking.CodeOutsideOperatingHours: http.StatusBadRequest,
	booking.CodeCancellationTooLate:   http.StatusBadRequest,
	booking.CodeInvalidTransition:     http.StatusBadRequest,
	barber.CodeInvalidReview:          http.StatusBadRequest,

	booking.CodeSlotConflict:      http.StatusConflict,
	booking.CodeBarberUnavailable: http.StatusConflict,
	identity.CodeEmailTaken:       http.StatusConflict,

	booking.CodeUnauthorized: http.StatusForbidden,

	booking.CodeNotFound:           http.StatusNotFound,
	booking.CodeBarberNotFound:     http.StatusNotFound,
	booking.CodeServiceNotFound:    http.StatusNotFound,
	booking.CodeTeamMemberNotFound: http.StatusNotFound,
}

// writeError renders a use case error. Anything that is not a business error
// means the store or another dependency failed.
func writeError(c *gin.Context, err error) {
	be, ok := httperr.AsBusiness(err)
	if !ok {
		zap.L().Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		httperr.Unavailable(c, "service_unavailable", "Please try again later.")
		return
	}

	status, known := statusByCode[be.Code]
	if !known {
		status = http.StatusBadRequest
	}
	httperr.Write(c, status, be.Code, be.Message)
}

func bindError(c *gin.Context, err error) {
	httperr.BadRequest(c, booking.CodeValidation, validators.Describe(err))
}

// caller returns the authenticated identity or answers 401.
func caller(c *gin.Context) (identity.Identity, bool) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		httperr.Unauthorized(c, "missing_credentials", "Authentication required.")
	}
	return id, ok
}

func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		httperr.BadRequest(c, booking.CodeValidation, name+" must be a positive integer")
		return 0, false
	}
	return uint(v), true
}
