package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/barber"
	"github.com/BruksfildServices01/barber-marketplace/internal/dto"
	"github.com/BruksfildServices01/barber-marketplace/internal/httpresp"
	usecase "github.com/BruksfildServices01/barber-marketplace/internal/usecase/barber"
)

// ======================================================
// OPERATING HOURS (barber)
// ======================================================

type OperatingHoursHandler struct {
	uc *usecase.OperatingHours
}

func NewOperatingHoursHandler(uc *usecase.OperatingHours) *OperatingHoursHandler {
	return &OperatingHoursHandler{uc: uc}
}

func (h *OperatingHoursHandler) Get(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}

	rows, err := h.uc.Get(c.Request.Context(), who)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, rows)
}

func (h *OperatingHoursHandler) Put(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}

	var req dto.OperatingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	days := make([]domain.DayHours, 0, len(req.Days))
	for _, d := range req.Days {
		days = append(days, domain.DayHours{
			Day:       d.Day,
			OpenTime:  d.OpenTime,
			CloseTime: d.CloseTime,
			IsClosed:  d.IsClosed,
		})
	}

	rows, err := h.uc.Set(c.Request.Context(), who, days)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, rows)
}

// ======================================================
// REVIEW (admin)
// ======================================================

type AdminHandler struct {
	review *usecase.ReviewBarber
}

func NewAdminHandler(review *usecase.ReviewBarber) *AdminHandler {
	return &AdminHandler{review: review}
}

func (h *AdminHandler) ReviewBarber(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.ReviewBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	profile, err := h.review.Execute(c.Request.Context(), who, id, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, profile)
}
