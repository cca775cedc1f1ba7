package service

import (
	"context"

	"github.com/EltonLopezzs/onbarbearia/internal/domain/barbershop"
	domain "github.com/EltonLopezzs/onbarbearia/internal/domain/service"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

type ListServices struct {
	repo  domain.Repository
	shops barbershop.Repository
}

func NewListServices(repo domain.Repository, shops barbershop.Repository) *ListServices {
	return &ListServices{repo: repo, shops: shops}
}

func (uc *ListServices) Execute(ctx context.Context, barbershopID uint) ([]models.Service, error) {
	shop, err := uc.shops.Get(ctx, barbershopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, httperr.ErrBusiness(httperr.CodeBarbershopNotFound)
	}

	return uc.repo.ListByBarbershop(ctx, barbershopID)
}
