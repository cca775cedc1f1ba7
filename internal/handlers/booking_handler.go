package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EltonLopezzs/onbarbearia/internal/dto"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/middleware"
	"github.com/EltonLopezzs/onbarbearia/internal/timezone"
	ucBooking "github.com/EltonLopezzs/onbarbearia/internal/usecase/booking"
)

type BookingHandler struct {
	create *ucBooking.CreateBooking
	list   *ucBooking.ListCustomerBookings
	loc    *time.Location
	clock  Clock
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	list *ucBooking.ListCustomerBookings,
	loc *time.Location,
	clock Clock,
) *BookingHandler {
	return &BookingHandler{create: create, list: list, loc: loc, clock: clock}
}

type CreateBookingRequest struct {
	BarbershopID uint   `json:"barbershop_id" binding:"required"`
	ServiceID    uint   `json:"service_id" binding:"required"`
	Date         string `json:"date" binding:"required"`       // YYYY-MM-DD
	Time         string `json:"time" binding:"required,clock"` // HH:MM
}

// Create responde 201 na primeira gravação e 200 quando a mesma requisição é repetida.
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	at, err := timezone.ParseDateTime(h.loc, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	res, err := h.create.Execute(c.Request.Context(), middleware.Actor(c), ucBooking.CreateBookingInput{
		BarbershopID: req.BarbershopID,
		ServiceID:    req.ServiceID,
		Date:         at,
		Now:          h.clock.Now(),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	status := http.StatusCreated
	if res.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{
		"booking":  dto.NewBookingDTO(res.Booking, h.loc),
		"replayed": res.Replayed,
	})
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context(), middleware.Actor(c), h.clock.Now())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"upcoming": dto.NewBookingDTOs(out.Upcoming, h.loc),
		"past":     dto.NewBookingDTOs(out.Past, h.loc),
	})
}
