package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
)

const ContextIdentity = "identity"

// Authenticate resolves the caller through the configured provider and
// stores the identity on the context. Requests without a valid credential
// stop here with 401.
func Authenticate(p identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := p.Resolve(c.Request.Context(), c.Request)
		switch {
		case errors.Is(err, identity.ErrNoIdentity):
			httperr.Unauthorized(c, "missing_credentials", "Authentication required.")
			return
		case errors.Is(err, identity.ErrInvalidCredentials):
			httperr.Unauthorized(c, "invalid_credentials", "Credentials are invalid or expired.")
			return
		case err != nil:
			zap.L().Error("identity lookup failed", zap.Error(err))
			httperr.Unavailable(c, "service_unavailable", "Please try again later.")
			return
		}

		c.Set(ContextIdentity, id)
		c.Next()
	}
}

// CurrentIdentity returns the identity set by Authenticate.
func CurrentIdentity(c *gin.Context) (identity.Identity, bool) {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return identity.Identity{}, false
	}
	id, ok := v.(identity.Identity)
	return id, ok
}

// RequireRole answers 403 for authenticated callers of any other role.
func RequireRole(roles ...identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := CurrentIdentity(c)
		if !ok {
			httperr.Unauthorized(c, "missing_credentials", "Authentication required.")
			return
		}
		for _, r := range roles {
			if id.Is(r) {
				c.Next()
				return
			}
		}
		httperr.Forbidden(c, booking.CodeUnauthorized, "Caller may not perform this action.")
	}
}
