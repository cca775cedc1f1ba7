package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/EltonLopezzs/onbarbearia/internal/audit"
	"github.com/EltonLopezzs/onbarbearia/internal/auth"
	domain "github.com/EltonLopezzs/onbarbearia/internal/domain/service"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

type CreateServiceInput struct {
	// 0 = barbearia administrada pelo ator
	BarbershopID uint
	Name         string
	Description  string
	Price        decimal.Decimal
}

type CreateService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateService(repo domain.Repository, audit *audit.Dispatcher) *CreateService {
	return &CreateService{repo: repo, audit: audit}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	actor auth.Context,
	in CreateServiceInput,
) (*models.Service, error) {

	shopID, err := actor.ManagedBarbershop(in.BarbershopID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrValidation("nome é obrigatório")
	}
	if err := validatePrice(in.Price); err != nil {
		return nil, err
	}

	svc := &models.Service{
		BarbershopID: shopID,
		Name:         name,
		Description:  strings.TrimSpace(in.Description),
		Price:        in.Price.Round(2),
	}
	if err := uc.repo.Create(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: shopID,
		UserID:       &actor.UserID,
		Action:       "service_created",
		Entity:       "service",
		EntityID:     &svc.ID,
		Metadata:     map[string]any{"name": svc.Name, "price": svc.Price.StringFixed(2)},
	})

	return svc, nil
}

var maxPrice = decimal.New(1, 8) // numeric(10,2)

func validatePrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return httperr.ErrValidation("preço não pode ser negativo")
	}
	if p.GreaterThanOrEqual(maxPrice) {
		return httperr.ErrValidation("preço acima do permitido")
	}
	return nil
}
