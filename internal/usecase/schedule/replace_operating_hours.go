package schedule

import (
	"context"

	"go.uber.org/zap"

	"github.com/EltonLopezzs/onbarbearia/internal/audit"
	"github.com/EltonLopezzs/onbarbearia/internal/auth"
	domain "github.com/EltonLopezzs/onbarbearia/internal/domain/schedule"
	"github.com/EltonLopezzs/onbarbearia/internal/infra/cache"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

type ReplaceOperatingHoursInput struct {
	BarbershopID uint
	Days         []domain.Day
}

type ReplaceOperatingHours struct {
	repo  domain.Repository
	cache cache.AvailabilityCache
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewReplaceOperatingHours(
	repo domain.Repository,
	c cache.AvailabilityCache,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *ReplaceOperatingHours {
	return &ReplaceOperatingHours{repo: repo, cache: c, audit: audit, log: log}
}

// Execute troca a semana inteira de uma vez: ou os sete dias são gravados
// ou nenhum.
func (uc *ReplaceOperatingHours) Execute(
	ctx context.Context,
	actor auth.Context,
	in ReplaceOperatingHoursInput,
) ([]models.OperatingHours, error) {

	shopID, err := actor.ManagedBarbershop(in.BarbershopID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateWeek(in.Days); err != nil {
		return nil, err
	}

	week := make([]models.OperatingHours, 0, len(in.Days))
	for _, d := range in.Days {
		week = append(week, d.ToModel(shopID))
	}

	if err := uc.repo.ReplaceWeek(ctx, shopID, week); err != nil {
		return nil, err
	}

	if err := uc.cache.InvalidateBarbershop(ctx, shopID); err != nil {
		uc.log.Warn("availability cache invalidation failed",
			zap.Uint("barbershop_id", shopID),
			zap.Error(err),
		)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: shopID,
		UserID:       &actor.UserID,
		Action:       "operating_hours_replaced",
		Entity:       "operating_hours",
		Metadata:     in.Days,
	})

	return NewGetOperatingHours(uc.repo).Execute(ctx, shopID)
}
