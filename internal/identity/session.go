package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const sessionKeyPrefix = "session:"

// SessionStore is the subset of the redis client sessions need.
type SessionStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// SessionProvider keeps identities server side in redis and hands the
// client an opaque cookie.
type SessionProvider struct {
	store  SessionStore
	cookie string
	ttl    time.Duration
	secure bool
}

func NewSessionProvider(store SessionStore, cookieName string, ttl time.Duration, secure bool) *SessionProvider {
	return &SessionProvider{store: store, cookie: cookieName, ttl: ttl, secure: secure}
}

func (p *SessionProvider) Issue(ctx context.Context, id Identity) (Credential, error) {
	payload, err := json.Marshal(id)
	if err != nil {
		return Credential{}, err
	}

	sid := uuid.NewString()
	if err := p.store.Set(ctx, sessionKeyPrefix+sid, payload, p.ttl).Err(); err != nil {
		return Credential{}, fmt.Errorf("store session: %w", err)
	}

	return Credential{Cookie: &http.Cookie{
		Name:     p.cookie,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(p.ttl.Seconds()),
		HttpOnly: true,
		Secure:   p.secure,
		SameSite: http.SameSiteLaxMode,
	}}, nil
}

func (p *SessionProvider) Resolve(ctx context.Context, r *http.Request) (Identity, error) {
	sid, err := p.sessionID(r)
	if err != nil {
		return Identity{}, err
	}

	raw, err := p.store.Get(ctx, sessionKeyPrefix+sid).Bytes()
	if errors.Is(err, redis.Nil) {
		return Identity{}, fmt.Errorf("%w: unknown session", ErrInvalidCredentials)
	}
	if err != nil {
		return Identity{}, fmt.Errorf("load session: %w", err)
	}

	var id Identity
	if err := json.Unmarshal(raw, &id); err != nil || id.UserID == 0 {
		return Identity{}, fmt.Errorf("%w: corrupt session", ErrInvalidCredentials)
	}
	return id, nil
}

func (p *SessionProvider) Revoke(ctx context.Context, r *http.Request) (*http.Cookie, error) {
	sid, err := p.sessionID(r)
	if err != nil {
		return nil, err
	}
	if err := p.store.Del(ctx, sessionKeyPrefix+sid).Err(); err != nil {
		return nil, fmt.Errorf("delete session: %w", err)
	}
	return &http.Cookie{
		Name:     p.cookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   p.secure,
	}, nil
}

func (p *SessionProvider) sessionID(r *http.Request) (string, error) {
	c, err := r.Cookie(p.cookie)
	if err != nil || c.Value == "" {
		return "", ErrNoIdentity
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return "", fmt.Errorf("%w: malformed session id", ErrInvalidCredentials)
	}
	return c.Value, nil
}
