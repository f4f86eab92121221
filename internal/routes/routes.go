package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	"github.com/BruksfildServices01/barber-marketplace/internal/config"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/barber"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/barber-marketplace/internal/handlers"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
	"github.com/BruksfildServices01/barber-marketplace/internal/middleware"
	"github.com/BruksfildServices01/barber-marketplace/internal/timezone"
	"github.com/BruksfildServices01/barber-marketplace/internal/usecase/account"
	ucBarber "github.com/BruksfildServices01/barber-marketplace/internal/usecase/barber"
	ucBooking "github.com/BruksfildServices01/barber-marketplace/internal/usecase/booking"
	"github.com/BruksfildServices01/barber-marketplace/internal/validators"
)

type AccountStore interface {
	identity.Directory
	account.Repository
}

// Deps are the singletons the routes are built from. main wires the gorm
// repositories; tests wire the in-memory store.
type Deps struct {
	Config    *config.Config
	Logger    *zap.Logger
	Clock     timezone.Clock
	Provider  identity.Provider
	Bookings  booking.Repository
	Barbers   barber.Repository
	Accounts  AccountStore
	Audit     audit.Recorder
	AuditLogs handlers.AuditReader
}

func RegisterRoutes(r *gin.Engine, d Deps) error {
	cfg := d.Config

	if err := validators.RegisterGin(); err != nil {
		return err
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger(d.Logger))

	// ======================================================
	// DOMAIN SERVICES
	// ======================================================
	fallback, err := booking.NewWindow(cfg.DefaultOpenTime, cfg.DefaultCloseTime)
	if err != nil {
		return err
	}
	validator := booking.NewValidator(fallback)
	defaultDuration := time.Duration(cfg.DefaultDurationMin) * time.Minute

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		d.Bookings,
		validator,
		d.Clock,
		d.Audit,
		ucBooking.Policy{
			DefaultDuration: defaultDuration,
			RequireApproval: cfg.RequireBarberApproval,
			AdvisoryLock:    cfg.BookingLockMode == config.LockAdvisory,
		},
	)

	updateStatusUC := ucBooking.NewUpdateBookingStatus(d.Bookings, d.Clock, d.Audit)

	cancelBookingUC := ucBooking.NewCancelBooking(
		d.Bookings,
		d.Clock,
		d.Audit,
		ucBooking.CancelPolicy{
			Cutoff: cfg.CancelCutoff(),
			Delete: cfg.CancelStrategy == config.CancelByDelete,
		},
	)

	listBookingsUC := ucBooking.NewListBookings(d.Bookings)
	availabilityUC := ucBooking.NewGetAvailability(d.Bookings, validator, d.Clock, defaultDuration)

	operatingHoursUC := ucBarber.NewOperatingHours(d.Barbers)
	reviewBarberUC := ucBarber.NewReviewBarber(d.Barbers, d.Audit)

	registerUC := account.NewRegister(d.Accounts)
	authenticator := identity.NewAuthenticator(d.Accounts)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, authenticator, d.Provider)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, updateStatusUC, cancelBookingUC, listBookingsUC)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC)
	hoursHandler := handlers.NewOperatingHoursHandler(operatingHoursUC)
	adminHandler := handlers.NewAdminHandler(reviewBarberUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}

	r.GET("/barbers/:id/availability", availabilityHandler.Get)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	authed := r.Group("/")
	authed.Use(middleware.Authenticate(d.Provider))

	authed.GET("/me", authHandler.Me)

	customer := authed.Group("/")
	customer.Use(middleware.RequireRole(identity.RoleCustomer))
	{
		customer.POST("/book", middleware.RateLimit(cfg.BookRatePerMin), bookingHandler.Create)
		customer.DELETE("/cancel/:id", bookingHandler.Cancel)
		customer.GET("/customer/bookings", bookingHandler.ListForCustomer)
	}

	barberGroup := authed.Group("/barber")
	barberGroup.Use(middleware.RequireRole(identity.RoleBarber))
	{
		barberGroup.GET("/bookings", bookingHandler.ListForBarber)
		barberGroup.PATCH("/bookings/:id", bookingHandler.UpdateStatus)
		barberGroup.GET("/operating-hours", hoursHandler.Get)
		barberGroup.PUT("/operating-hours", hoursHandler.Put)
	}

	authed.GET("/audit-logs", middleware.RequireRole(identity.RoleBarber, identity.RoleAdmin), auditLogsHandler.List)

	admin := authed.Group("/admin")
	admin.Use(middleware.RequireRole(identity.RoleAdmin))
	{
		admin.GET("/bookings", bookingHandler.ListAll)
		admin.PATCH("/barbers/:id", adminHandler.ReviewBarber)
	}

	return nil
}
