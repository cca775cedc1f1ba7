package schedule

import (
	"context"

	domain "github.com/EltonLopezzs/onbarbearia/internal/domain/schedule"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

type GetOperatingHours struct {
	repo domain.Repository
}

func NewGetOperatingHours(repo domain.Repository) *GetOperatingHours {
	return &GetOperatingHours{repo: repo}
}

// Execute devolve sempre os sete dias, de domingo (0) a sábado (6).
// Dias sem registro aparecem como fechados.
func (uc *GetOperatingHours) Execute(ctx context.Context, barbershopID uint) ([]models.OperatingHours, error) {
	rows, err := uc.repo.ListOperatingHours(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	week := make([]models.OperatingHours, domain.DaysInWeek)
	for d := range week {
		week[d] = models.OperatingHours{
			BarbershopID: barbershopID,
			DayOfWeek:    d,
			IsClosed:     true,
		}
	}
	for _, r := range rows {
		if r.DayOfWeek >= 0 && r.DayOfWeek < domain.DaysInWeek {
			week[r.DayOfWeek] = r
		}
	}
	return week, nil
}
