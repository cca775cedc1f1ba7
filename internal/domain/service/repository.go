package service

import (
	"context"
	"time"

	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

type Repository interface {
	ListByBarbershop(
		ctx context.Context,
		barbershopID uint,
	) ([]models.Service, error)

	// Get devolve (nil, nil) quando o serviço não existe na barbearia.
	Get(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	Create(ctx context.Context, s *models.Service) error
	Update(ctx context.Context, s *models.Service) error

	// DeleteIfNoBookingsFrom apaga o serviço só se nenhuma reserva dele tiver
	// data >= from. Devolve false quando existe reserva futura.
	DeleteIfNoBookingsFrom(
		ctx context.Context,
		serviceID uint,
		from time.Time,
	) (bool, error)

	Count(ctx context.Context, barbershopID uint) (int64, error)
}
