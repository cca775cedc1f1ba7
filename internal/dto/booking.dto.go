package dto

import (
	"time"

	"github.com/EltonLopezzs/onbarbearia/internal/models"
	"github.com/EltonLopezzs/onbarbearia/internal/timezone"
)

type BookingDTO struct {
	ID             uint      `json:"id"`
	BarbershopID   uint      `json:"barbershop_id"`
	BarbershopName string    `json:"barbershop_name,omitempty"`
	ServiceID      uint      `json:"service_id"`
	ServiceName    string    `json:"service_name,omitempty"`
	Price          float64   `json:"price,omitempty"`
	Date           time.Time `json:"date"`
	Day            string    `json:"day"`  // YYYY-MM-DD no fuso da barbearia
	Time           string    `json:"time"` // HH:MM
}

func NewBookingDTO(b *models.Booking, loc *time.Location) BookingDTO {
	local := b.Date.In(loc)

	out := BookingDTO{
		ID:             b.ID,
		BarbershopID:   b.BarbershopID,
		BarbershopName: b.Barbershop.Name,
		ServiceID:      b.ServiceID,
		ServiceName:    b.Service.Name,
		Date:           local,
		Day:            local.Format(timezone.DateLayout),
		Time:           local.Format(timezone.TimeLayout),
	}
	if b.Service.ID != 0 {
		out.Price = b.Service.Price.InexactFloat64()
	}
	return out
}

func NewBookingDTOs(list []models.Booking, loc *time.Location) []BookingDTO {
	out := make([]BookingDTO, 0, len(list))
	for i := range list {
		out = append(out, NewBookingDTO(&list[i], loc))
	}
	return out
}
