package dashboard

import (
	"context"
	"time"

	"github.com/EltonLopezzs/onbarbearia/internal/auth"
	"github.com/EltonLopezzs/onbarbearia/internal/domain/booking"
	"github.com/EltonLopezzs/onbarbearia/internal/domain/service"
	"github.com/EltonLopezzs/onbarbearia/internal/timezone"
)

type Summary struct {
	BarbershopID     uint  `json:"barbershop_id"`
	TodayBookings    int64 `json:"today_bookings"`
	UpcomingBookings int64 `json:"upcoming_bookings"`
	Services         int64 `json:"services"`
}

type GetSummary struct {
	bookings booking.Repository
	services service.Repository
	loc      *time.Location
}

func NewGetSummary(bookings booking.Repository, services service.Repository, loc *time.Location) *GetSummary {
	return &GetSummary{bookings: bookings, services: services, loc: loc}
}

// Execute conta as reservas do dia civil de now, as reservas a partir de now
// e os serviços ativos da barbearia administrada.
func (uc *GetSummary) Execute(
	ctx context.Context,
	actor auth.Context,
	barbershopID uint,
	now time.Time,
) (*Summary, error) {

	shopID, err := actor.ManagedBarbershop(barbershopID)
	if err != nil {
		return nil, err
	}

	start, end := timezone.DayBounds(now, uc.loc)

	today, err := uc.bookings.CountBetween(ctx, shopID, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}

	upcoming, err := uc.bookings.CountFrom(ctx, shopID, now.UTC())
	if err != nil {
		return nil, err
	}

	services, err := uc.services.Count(ctx, shopID)
	if err != nil {
		return nil, err
	}

	return &Summary{
		BarbershopID:     shopID,
		TodayBookings:    today,
		UpcomingBookings: upcoming,
		Services:         services,
	}, nil
}
