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

type UpdateServiceInput struct {
	BarbershopID uint
	ServiceID    uint

	Name        *string
	Description *string
	Price       *decimal.Decimal
}

type UpdateService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateService(repo domain.Repository, audit *audit.Dispatcher) *UpdateService {
	return &UpdateService{repo: repo, audit: audit}
}

func (uc *UpdateService) Execute(
	ctx context.Context,
	actor auth.Context,
	in UpdateServiceInput,
) (*models.Service, error) {

	shopID, err := actor.ManagedBarbershop(in.BarbershopID)
	if err != nil {
		return nil, err
	}

	svc, err := uc.repo.Get(ctx, shopID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, httperr.ErrValidation("nome é obrigatório")
		}
		svc.Name = name
	}
	if in.Description != nil {
		svc.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		if err := validatePrice(*in.Price); err != nil {
			return nil, err
		}
		svc.Price = in.Price.Round(2)
	}

	if err := uc.repo.Update(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: shopID,
		UserID:       &actor.UserID,
		Action:       "service_updated",
		Entity:       "service",
		EntityID:     &svc.ID,
	})

	return svc, nil
}
