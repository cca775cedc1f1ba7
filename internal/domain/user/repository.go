package user

import (
	"context"

	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

type Repository interface {
	// GetByEmail devolve (nil, nil) quando o e-mail não está cadastrado.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Get(ctx context.Context, id uint) (*models.User, error)

	// Create devolve a violação de unicidade do e-mail sem traduzir.
	Create(ctx context.Context, u *models.User) error
}
