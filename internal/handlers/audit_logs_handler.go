package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
	"github.com/BruksfildServices01/barber-marketplace/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditReader interface {
	List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	logs AuditReader
}

func NewAuditLogsHandler(logs AuditReader) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

// List serves admins every shop's trail and barbers their own.
func (h *AuditLogsHandler) List(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}

	switch {
	case who.Is(identity.RoleAdmin):
		if raw := c.Query("barber_id"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				httperr.BadRequest(c, booking.CodeValidation, "barber_id must be a positive integer")
				return
			}
			barberID := uint(id)
			f.BarberID = &barberID
		}
	case who.Is(identity.RoleBarber):
		f.BarberID = &who.BarberID
	default:
		writeError(c, booking.ErrUnauthorized)
		return
	}

	// --------------------------------------------------
	// Pagination
	// --------------------------------------------------

	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if f.Page <= 0 {
		f.Page = 1
	}

	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}

	// --------------------------------------------------
	// Period
	// --------------------------------------------------

	if raw := c.Query("from"); raw != "" {
		if from, err := timezone.ParseDate(raw); err == nil {
			f.From = &from
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err := timezone.ParseDate(raw); err == nil {
			end := to.Add(24 * time.Hour)
			f.To = &end
		}
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"page":  f.Page,
		"limit": f.Limit,
		"total": total,
		"logs":  logs,
	})
}
