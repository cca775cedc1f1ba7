package availability

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/EltonLopezzs/onbarbearia/internal/domain/availability"
	"github.com/EltonLopezzs/onbarbearia/internal/domain/barbershop"
	"github.com/EltonLopezzs/onbarbearia/internal/domain/booking"
	"github.com/EltonLopezzs/onbarbearia/internal/domain/schedule"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/infra/cache"
	"github.com/EltonLopezzs/onbarbearia/internal/timezone"
)

type GetAvailabilityInput struct {
	BarbershopID uint
	Date         string // YYYY-MM-DD
}

type GetAvailability struct {
	shops    barbershop.Repository
	hours    schedule.Repository
	bookings booking.Repository
	cache    cache.AvailabilityCache
	log      *zap.Logger

	slot time.Duration
	loc  *time.Location
}

func NewGetAvailability(
	shops barbershop.Repository,
	hours schedule.Repository,
	bookings booking.Repository,
	c cache.AvailabilityCache,
	log *zap.Logger,
	slot time.Duration,
	loc *time.Location,
) *GetAvailability {
	return &GetAvailability{
		shops:    shops,
		hours:    hours,
		bookings: bookings,
		cache:    c,
		log:      log,
		slot:     slot,
		loc:      loc,
	}
}

// Execute devolve os horários livres ("HH:MM") do dia. Dia fechado não é erro.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in GetAvailabilityInput,
) ([]string, error) {

	day, err := timezone.ParseDate(uc.loc, in.Date)
	if err != nil {
		return nil, httperr.ErrValidation("data inválida, use AAAA-MM-DD")
	}
	dateKey := day.Format(timezone.DateLayout)

	shop, err := uc.shops.Get(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, httperr.ErrBusiness(httperr.CodeBarbershopNotFound)
	}

	// cache é só atalho; falha nele não derruba a consulta
	if slots, hit, err := uc.cache.Get(ctx, shop.ID, dateKey); err != nil {
		uc.log.Warn("availability cache get failed", zap.Uint("barbershop_id", shop.ID), zap.Error(err))
	} else if hit {
		return slots, nil
	}

	// versão lida antes das reservas: invalidação no meio descarta a escrita
	version, verErr := uc.cache.Version(ctx, shop.ID, dateKey)
	if verErr != nil {
		uc.log.Warn("availability cache version failed", zap.Uint("barbershop_id", shop.ID), zap.Error(verErr))
	}

	hours, err := uc.hours.GetOperatingHours(ctx, shop.ID, int(day.Weekday()))
	if err != nil {
		return nil, err
	}

	var taken []time.Time
	if _, _, open := schedule.Window(hours); open {
		from, to := timezone.DayBounds(day, uc.loc)
		taken, err = uc.bookings.ListDatesForDay(ctx, shop.ID, from, to)
		if err != nil {
			return nil, err
		}
	}

	slots := domain.Compute(day, hours, taken, uc.slot, uc.loc)

	if verErr == nil {
		stored, err := uc.cache.SetIfVersion(ctx, shop.ID, dateKey, version, slots)
		if err != nil {
			uc.log.Warn("availability cache set failed", zap.Uint("barbershop_id", shop.ID), zap.Error(err))
		} else if !stored {
			uc.log.Debug("availability changed while computing, not cached",
				zap.Uint("barbershop_id", shop.ID),
				zap.String("date", dateKey),
			)
		}
	}

	return slots, nil
}
