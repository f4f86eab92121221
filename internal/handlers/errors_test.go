package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/barber"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func render(err error) (int, httperr.HTTPError) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	writeError(c, err)

	var body httperr.HTTPError
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w.Code, body
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{booking.ErrPastBooking, http.StatusBadRequest, booking.CodePastBooking},
		{booking.ErrOutsideOperatingHours, http.StatusBadRequest, booking.CodeOutsideOperatingHours},
		{booking.ErrCancellationTooLate, http.StatusBadRequest, booking.CodeCancellationTooLate},
		{booking.ErrInvalidTransition, http.StatusBadRequest, booking.CodeInvalidTransition},
		{booking.Invalid("bad"), http.StatusBadRequest, booking.CodeValidation},
		{barber.ErrInvalidReview, http.StatusBadRequest, barber.CodeInvalidReview},
		{booking.ErrSlotConflict, http.StatusConflict, booking.CodeSlotConflict},
		{identity.ErrEmailTaken, http.StatusConflict, identity.CodeEmailTaken},
		{booking.ErrUnauthorized, http.StatusForbidden, booking.CodeUnauthorized},
		{booking.ErrBookingNotFound, http.StatusNotFound, booking.CodeNotFound},
		{httperr.ErrBusiness(booking.CodeServiceNotFound), http.StatusNotFound, booking.CodeServiceNotFound},
		{errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable, "service_unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, body := render(tt.err)
			require.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestWriteError_UsesBusinessMessage(t *testing.T) {
	_, body := render(booking.Invalid("date must be YYYY-MM-DD"))
	assert.Equal(t, "date must be YYYY-MM-DD", body.Message)
}
