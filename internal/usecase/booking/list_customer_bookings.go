package booking

import (
	"context"
	"time"

	"github.com/EltonLopezzs/onbarbearia/internal/auth"
	domain "github.com/EltonLopezzs/onbarbearia/internal/domain/booking"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

type CustomerBookings struct {
	Upcoming []models.Booking
	Past     []models.Booking
}

type ListCustomerBookings struct {
	repo domain.Repository
}

func NewListCustomerBookings(repo domain.Repository) *ListCustomerBookings {
	return &ListCustomerBookings{repo: repo}
}

// Execute separa as reservas do cliente em futuras (data >= now, crescente)
// e passadas (mais recente primeiro).
func (uc *ListCustomerBookings) Execute(
	ctx context.Context,
	actor auth.Context,
	now time.Time,
) (*CustomerBookings, error) {

	if !actor.Authenticated() {
		return nil, httperr.ErrBusiness(httperr.CodeNotAuthenticated)
	}

	all, err := uc.repo.ListByCustomer(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	out := &CustomerBookings{
		Upcoming: []models.Booking{},
		Past:     []models.Booking{},
	}
	for _, b := range all {
		if b.Date.Before(now) {
			out.Past = append([]models.Booking{b}, out.Past...)
			continue
		}
		out.Upcoming = append(out.Upcoming, b)
	}
	return out, nil
}
