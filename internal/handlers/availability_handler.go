package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-marketplace/internal/dto"
	"github.com/BruksfildServices01/barber-marketplace/internal/httpresp"
	usecase "github.com/BruksfildServices01/barber-marketplace/internal/usecase/booking"
)

type AvailabilityHandler struct {
	uc *usecase.GetAvailability
}

func NewAvailabilityHandler(uc *usecase.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{uc: uc}
}

// Get is public: GET /barbers/:id/availability?date=YYYY-MM-DD&service_id=
func (h *AvailabilityHandler) Get(c *gin.Context) {
	barberID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var q dto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	slots, err := h.uc.Execute(c.Request.Context(), usecase.AvailabilityInput{
		BarberID:  barberID,
		Date:      q.Date,
		ServiceID: q.ServiceID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":  q.Date,
		"slots": slots,
	})
}
