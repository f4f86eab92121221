package identity

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleBarber   Role = "barber"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleCustomer, RoleBarber, RoleAdmin:
		return r, true
	}
	return "", false
}

// Identity is the authenticated caller. It is passed explicitly into every
// use case; business logic never looks it up on its own.
type Identity struct {
	UserID uint `json:"user_id"`
	Role   Role `json:"role"`

	// BarberID is the caller's barber profile, set only for RoleBarber.
	BarberID uint `json:"barber_id,omitempty"`
}

func (i Identity) Is(role Role) bool {
	return i.UserID != 0 && i.Role == role
}

var (
	ErrNoIdentity         = errors.New("identity: no credentials presented")
	ErrInvalidCredentials = errors.New("identity: invalid credentials")
)

// Credential is what a Provider hands back after login. Exactly one of the
// fields is set depending on the auth mode.
type Credential struct {
	Token  string
	Cookie *http.Cookie
}

// Provider issues and resolves credentials for one auth mode.
type Provider interface {
	Issue(ctx context.Context, id Identity) (Credential, error)

	// Resolve returns ErrNoIdentity when the request carries no credential.
	Resolve(ctx context.Context, r *http.Request) (Identity, error)

	Revoke(ctx context.Context, r *http.Request) (*http.Cookie, error)
}
