package barbershop

import (
	"context"
	"strings"

	"github.com/EltonLopezzs/onbarbearia/internal/audit"
	"github.com/EltonLopezzs/onbarbearia/internal/auth"
	domain "github.com/EltonLopezzs/onbarbearia/internal/domain/barbershop"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

type ListBarbershops struct {
	repo domain.Repository
}

func NewListBarbershops(repo domain.Repository) *ListBarbershops {
	return &ListBarbershops{repo: repo}
}

func (uc *ListBarbershops) Execute(ctx context.Context) ([]models.Barbershop, error) {
	return uc.repo.List(ctx)
}

// GetBarbershop carrega a barbearia com serviços e horários.
type GetBarbershop struct {
	repo domain.Repository
}

func NewGetBarbershop(repo domain.Repository) *GetBarbershop {
	return &GetBarbershop{repo: repo}
}

func (uc *GetBarbershop) Execute(ctx context.Context, id uint) (*models.Barbershop, error) {
	shop, err := uc.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, httperr.ErrBusiness(httperr.CodeBarbershopNotFound)
	}
	return shop, nil
}

type UpdateBarbershopInput struct {
	BarbershopID uint

	Name        *string
	Address     *string
	Phone       *string
	Description *string
}

type UpdateBarbershop struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBarbershop(repo domain.Repository, audit *audit.Dispatcher) *UpdateBarbershop {
	return &UpdateBarbershop{repo: repo, audit: audit}
}

func (uc *UpdateBarbershop) Execute(
	ctx context.Context,
	actor auth.Context,
	in UpdateBarbershopInput,
) (*models.Barbershop, error) {

	shopID, err := actor.ManagedBarbershop(in.BarbershopID)
	if err != nil {
		return nil, err
	}

	shop, err := uc.repo.Get(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, httperr.ErrBusiness(httperr.CodeBarbershopNotFound)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, httperr.ErrValidation("nome é obrigatório")
		}
		shop.Name = name
	}
	if in.Address != nil {
		shop.Address = strings.TrimSpace(*in.Address)
	}
	if in.Phone != nil {
		shop.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Description != nil {
		shop.Description = strings.TrimSpace(*in.Description)
	}

	if err := uc.repo.Update(ctx, shop); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: shopID,
		UserID:       &actor.UserID,
		Action:       "barbershop_updated",
		Entity:       "barbershop",
		EntityID:     &shop.ID,
	})

	return shop, nil
}
