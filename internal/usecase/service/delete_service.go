package service

import (
	"context"
	"time"

	"github.com/EltonLopezzs/onbarbearia/internal/audit"
	"github.com/EltonLopezzs/onbarbearia/internal/auth"
	domain "github.com/EltonLopezzs/onbarbearia/internal/domain/service"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
)

type DeleteServiceInput struct {
	BarbershopID uint
	ServiceID    uint
	Now          time.Time
}

type DeleteService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteService(repo domain.Repository, audit *audit.Dispatcher) *DeleteService {
	return &DeleteService{repo: repo, audit: audit}
}

// Execute recusa a exclusão se houver reserva do serviço com data >= Now.
func (uc *DeleteService) Execute(
	ctx context.Context,
	actor auth.Context,
	in DeleteServiceInput,
) error {

	shopID, err := actor.ManagedBarbershop(in.BarbershopID)
	if err != nil {
		return err
	}

	svc, err := uc.repo.Get(ctx, shopID, in.ServiceID)
	if err != nil {
		return err
	}
	if svc == nil {
		return httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	deleted, err := uc.repo.DeleteIfNoBookingsFrom(ctx, svc.ID, in.Now)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.ErrBusiness(httperr.CodeHasFutureBookings)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: shopID,
		UserID:       &actor.UserID,
		Action:       "service_deleted",
		Entity:       "service",
		EntityID:     &svc.ID,
		Metadata:     map[string]any{"name": svc.Name},
	})

	return nil
}
