package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// headerProvider resolves the X-Test-Role header into an identity.
type headerProvider struct {
	err error
}

func (p headerProvider) Issue(context.Context, identity.Identity) (identity.Credential, error) {
	return identity.Credential{}, nil
}

func (p headerProvider) Resolve(_ context.Context, r *http.Request) (identity.Identity, error) {
	if p.err != nil {
		return identity.Identity{}, p.err
	}
	role := r.Header.Get("X-Test-Role")
	if role == "" {
		return identity.Identity{}, identity.ErrNoIdentity
	}
	return identity.Identity{UserID: 9, Role: identity.Role(role)}, nil
}

func (p headerProvider) Revoke(context.Context, *http.Request) (*http.Cookie, error) {
	return nil, nil
}

func router(p identity.Provider, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	chain := append([]gin.HandlerFunc{Authenticate(p)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		id, _ := CurrentIdentity(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.UserID})
	})
	r.GET("/x", chain...)
	return r
}

func do(r http.Handler, role string) (*httptest.ResponseRecorder, httperr.HTTPError) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if role != "" {
		req.Header.Set("X-Test-Role", role)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body httperr.HTTPError
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestAuthenticate(t *testing.T) {
	w, body := do(router(headerProvider{}), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "missing_credentials", body.Code)

	w, _ = do(router(headerProvider{}), "customer")
	assert.Equal(t, http.StatusOK, w.Code)

	w, body = do(router(headerProvider{err: identity.ErrInvalidCredentials}), "customer")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", body.Code)

	w, body = do(router(headerProvider{err: errors.New("redis: connection refused")}), "customer")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "service_unavailable", body.Code)
}

func TestRequireRole(t *testing.T) {
	r := router(headerProvider{}, RequireRole(identity.RoleBarber, identity.RoleAdmin))

	w, _ := do(r, "barber")
	assert.Equal(t, http.StatusOK, w.Code)

	w, body := do(r, "customer")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "unauthorized", body.Code)
}

func TestRateLimit(t *testing.T) {
	r := router(headerProvider{}, RateLimit(2))

	for i := 0; i < 2; i++ {
		w, _ := do(r, "customer")
		require.Equal(t, http.StatusOK, w.Code)
	}
	w, body := do(r, "customer")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "rate_limited", body.Code)

	open := router(headerProvider{}, RateLimit(0))
	for i := 0; i < 5; i++ {
		w, _ := do(open, "customer")
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://shop.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://shop.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
