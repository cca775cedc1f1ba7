package schedule

import (
	"context"

	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

type Repository interface {
	ListOperatingHours(
		ctx context.Context,
		barbershopID uint,
	) ([]models.OperatingHours, error)

	// GetOperatingHours devolve (nil, nil) quando não há registro para o dia.
	GetOperatingHours(
		ctx context.Context,
		barbershopID uint,
		dayOfWeek int,
	) (*models.OperatingHours, error)

	// ReplaceWeek grava os sete dias numa única transação.
	ReplaceWeek(
		ctx context.Context,
		barbershopID uint,
		week []models.OperatingHours,
	) error
}
