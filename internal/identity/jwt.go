package identity

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTProvider authenticates with a bearer token in the Authorization header.
type JWTProvider struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTProvider(secret string, ttl time.Duration) *JWTProvider {
	return &JWTProvider{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (p *JWTProvider) Issue(_ context.Context, id Identity) (Credential, error) {
	now := p.now()
	claims := jwt.MapClaims{
		"sub":      float64(id.UserID),
		"role":     string(id.Role),
		"barberId": float64(id.BarberID),
		"exp":      now.Add(p.ttl).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return Credential{}, err
	}
	return Credential{Token: signed}, nil
}

func (p *JWTProvider) Resolve(_ context.Context, r *http.Request) (Identity, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return Identity{}, ErrNoIdentity
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return Identity{}, fmt.Errorf("%w: malformed authorization header", ErrInvalidCredentials)
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return p.secret, nil
	}, jwt.WithTimeFunc(p.now))
	if err != nil || !token.Valid {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("%w: claims", ErrInvalidCredentials)
	}

	userID, ok1 := claims["sub"].(float64)
	roleStr, ok2 := claims["role"].(string)
	barberID, _ := claims["barberId"].(float64)
	role, ok3 := ParseRole(roleStr)
	if !ok1 || !ok2 || !ok3 || userID <= 0 {
		return Identity{}, fmt.Errorf("%w: payload", ErrInvalidCredentials)
	}

	return Identity{UserID: uint(userID), Role: role, BarberID: uint(barberID)}, nil
}

// Revoke is a no-op: tokens expire on their own.
func (p *JWTProvider) Revoke(context.Context, *http.Request) (*http.Cookie, error) {
	return nil, nil
}
