package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-marketplace/internal/dto"
	"github.com/BruksfildServices01/barber-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
	usecase "github.com/BruksfildServices01/barber-marketplace/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create *usecase.CreateBooking
	update *usecase.UpdateBookingStatus
	cancel *usecase.CancelBooking
	list   *usecase.ListBookings
}

func NewBookingHandler(
	create *usecase.CreateBooking,
	update *usecase.UpdateBookingStatus,
	cancel *usecase.CancelBooking,
	list *usecase.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		create: create,
		update: update,
		cancel: cancel,
		list:   list,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	b, err := h.create.Execute(c.Request.Context(), who, usecase.CreateBookingInput{
		BarberID:     req.BarberID,
		ServiceID:    req.ServiceID,
		TeamMemberID: req.TeamMemberID,
		Date:         req.Date,
		Time:         req.Time,
		DurationMin:  req.Duration,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, dto.FromBooking(b))
}

// ======================================================
// STATUS (barber)
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	b, err := h.update.Execute(c.Request.Context(), who, id, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.FromBooking(b))
}

// ======================================================
// CANCEL (customer)
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), who, id)
	if err != nil {
		writeError(c, err)
		return
	}

	if b == nil {
		httpresp.OK(c, gin.H{"booking_id": id, "status": "cancelled", "deleted": true})
		return
	}
	httpresp.OK(c, dto.FromBooking(b))
}

// ======================================================
// LISTS
// ======================================================

func (h *BookingHandler) ListForCustomer(c *gin.Context) {
	h.listWith(c, h.list.ForCustomer)
}

func (h *BookingHandler) ListForBarber(c *gin.Context) {
	h.listWith(c, h.list.ForBarber)
}

func (h *BookingHandler) ListAll(c *gin.Context) {
	h.listWith(c, h.list.All)
}

type listFunc func(ctx context.Context, who identity.Identity, q usecase.ListQuery) ([]dto.BookingDTO, error)

func (h *BookingHandler) listWith(c *gin.Context, fn listFunc) {
	who, ok := caller(c)
	if !ok {
		return
	}

	var q dto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	bookings, err := fn(c.Request.Context(), who, usecase.ListQuery{Status: q.Status, Date: q.Date})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, bookings)
}
