package barbershop

import (
	"context"

	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Barbershop, error)

	// Get devolve (nil, nil) quando a barbearia não existe.
	Get(ctx context.Context, id uint) (*models.Barbershop, error)

	// GetDetail carrega serviços e horários junto.
	GetDetail(ctx context.Context, id uint) (*models.Barbershop, error)

	Update(ctx context.Context, shop *models.Barbershop) error
}
