package identity

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

const CodeEmailTaken = "email_taken"

var (
	ErrUserNotFound = errors.New("identity: user not found")
	ErrEmailTaken   = httperr.ErrBusinessMsg(CodeEmailTaken, "Email is already registered.")
)

// Directory looks up stored accounts. FindUserByEmail returns ErrUserNotFound
// for unknown emails.
type Directory interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindBarberProfileByUser(ctx context.Context, userID uint) (*models.BarberProfile, error)
}

type Authenticator struct {
	dir Directory
}

func NewAuthenticator(dir Directory) *Authenticator {
	return &Authenticator{dir: dir}
}

func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (Identity, error) {
	user, err := a.dir.FindUserByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, ErrUserNotFound) {
		return Identity{}, ErrInvalidCredentials
	}
	if err != nil {
		return Identity{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Identity{}, ErrInvalidCredentials
	}

	role, ok := ParseRole(user.Role)
	if !ok {
		return Identity{}, ErrInvalidCredentials
	}

	id := Identity{UserID: user.ID, Role: role}
	if role == RoleBarber {
		profile, err := a.dir.FindBarberProfileByUser(ctx, user.ID)
		if err != nil {
			return Identity{}, err
		}
		id.BarberID = profile.ID
	}
	return id, nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hashed), err
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
