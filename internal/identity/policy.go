package identity

import (
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-marketplace/internal/config"
)

// NewProvider picks the credential mechanism from AUTH_MODE. Routes and use
// cases are the same for every mode.
func NewProvider(cfg *config.Config, rdb *redis.Client) Provider {
	if cfg.AuthMode == config.AuthModeCookie {
		return NewSessionProvider(rdb, cfg.SessionCookie, cfg.SessionTTL(), cfg.IsProduction())
	}
	return NewJWTProvider(cfg.JWTSecret, cfg.JWTTTL())
}
