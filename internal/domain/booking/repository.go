package booking

import (
	"context"
	"errors"
	"time"

	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

// ErrServiceUnavailable: o serviço sumiu (ou foi excluído) antes da inserção.
var ErrServiceUnavailable = errors.New("service unavailable")

type Repository interface {
	// -------- Service --------
	// GetService devolve (nil, nil) quando o serviço não é da barbearia.
	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Booking (write) --------
	// CreateBooking é o único caminho de inserção; a unicidade
	// (barbershop_id, date) decide conflitos. O serviço é relido com trava
	// compartilhada na mesma transação; se não existir mais, devolve
	// ErrServiceUnavailable.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	FindBySlot(
		ctx context.Context,
		barbershopID uint,
		at time.Time,
	) (*models.Booking, error)

	// -------- Booking (read) --------
	ListDatesForDay(
		ctx context.Context,
		barbershopID uint,
		from time.Time,
		to time.Time,
	) ([]time.Time, error)

	ListByCustomer(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	CountBetween(
		ctx context.Context,
		barbershopID uint,
		from time.Time,
		to time.Time,
	) (int64, error)

	CountFrom(
		ctx context.Context,
		barbershopID uint,
		from time.Time,
	) (int64, error)
}
