package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/barber"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

// Repository creates accounts. CreateAccount returns identity.ErrEmailTaken
// when the email is already registered.
type Repository interface {
	CreateAccount(ctx context.Context, user *models.User, profile *models.BarberProfile) error
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     string

	ShopName        string
	ShopDescription string
	ShopAddress     string
}

type Register struct {
	repo Repository
}

func NewRegister(repo Repository) *Register {
	return &Register{repo: repo}
}

// Execute creates a customer, or a barber with a pending profile. Admins are
// provisioned out of band.
func (uc *Register) Execute(ctx context.Context, in RegisterInput) (identity.Identity, error) {
	role := identity.RoleCustomer
	if in.Role != "" {
		r, ok := identity.ParseRole(in.Role)
		if !ok || r == identity.RoleAdmin {
			return identity.Identity{}, booking.Invalid("role must be customer or barber")
		}
		role = r
	}

	if strings.TrimSpace(in.Name) == "" {
		return identity.Identity{}, booking.Invalid("name is required")
	}
	if len(in.Password) < 6 {
		return identity.Identity{}, booking.Invalid("password must have at least 6 characters")
	}

	hash, err := identity.HashPassword(in.Password)
	if err != nil {
		return identity.Identity{}, err
	}

	user := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        identity.NormalizeEmail(in.Email),
		Phone:        in.Phone,
		PasswordHash: hash,
		Role:         string(role),
	}

	var profile *models.BarberProfile
	if role == identity.RoleBarber {
		shop := strings.TrimSpace(in.ShopName)
		if shop == "" {
			return identity.Identity{}, booking.Invalid("shop_name is required for barbers")
		}
		profile = &models.BarberProfile{
			ShopName:    shop,
			Description: in.ShopDescription,
			Address:     in.ShopAddress,
			Phone:       in.Phone,
			Email:       user.Email,
			Status:      string(barber.ProfilePending),
		}
	}

	if err := uc.repo.CreateAccount(ctx, user, profile); err != nil {
		return identity.Identity{}, err
	}

	id := identity.Identity{UserID: user.ID, Role: role}
	if profile != nil {
		id.BarberID = profile.ID
	}
	return id, nil
}
