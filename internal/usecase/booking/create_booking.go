package booking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/EltonLopezzs/onbarbearia/internal/audit"
	"github.com/EltonLopezzs/onbarbearia/internal/auth"
	"github.com/EltonLopezzs/onbarbearia/internal/domain/availability"
	domain "github.com/EltonLopezzs/onbarbearia/internal/domain/booking"
	"github.com/EltonLopezzs/onbarbearia/internal/domain/schedule"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/infra/cache"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
	"github.com/EltonLopezzs/onbarbearia/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarbershopID uint
	ServiceID    uint

	// Instante absoluto escolhido (dia + horário do slot).
	Date time.Time
	// Referência de "agora", injetada.
	Now time.Time
}

type CreateBookingResult struct {
	Booking *models.Booking
	// Replayed indica repetição da mesma requisição: nenhuma linha nova.
	Replayed bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	hours schedule.Repository
	cache cache.AvailabilityCache
	audit *audit.Dispatcher
	log   *zap.Logger

	slot time.Duration
	loc  *time.Location
}

func NewCreateBooking(
	repo domain.Repository,
	hours schedule.Repository,
	c cache.AvailabilityCache,
	audit *audit.Dispatcher,
	log *zap.Logger,
	slot time.Duration,
	loc *time.Location,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		hours: hours,
		cache: c,
		audit: audit,
		log:   log,
		slot:  slot,
		loc:   loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	actor auth.Context,
	in CreateBookingInput,
) (*CreateBookingResult, error) {

	// --------------------------------------------------
	// 1) Cliente autenticado (nunca vem do corpo)
	// --------------------------------------------------
	if !actor.Authenticated() {
		return nil, httperr.ErrBusiness(httperr.CodeNotAuthenticated)
	}

	// --------------------------------------------------
	// 2) Data/hora
	// --------------------------------------------------
	if in.Date.IsZero() {
		return nil, httperr.ErrValidation("data e horário são obrigatórios")
	}
	if in.Date.Before(in.Now) {
		return nil, httperr.ErrValidation("não é possível agendar no passado")
	}

	// --------------------------------------------------
	// 3) Serviço da barbearia
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, httperr.ErrValidation("serviço não pertence à barbearia")
	}

	// --------------------------------------------------
	// 4) Slot da grade do expediente
	// --------------------------------------------------
	local := in.Date.In(uc.loc)
	if err := uc.assertSlot(ctx, in.BarbershopID, local); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5) Inserção com o serviço travado: a unicidade (barbearia, data) decide
	// --------------------------------------------------
	b := &models.Booking{
		BarbershopID: in.BarbershopID,
		ServiceID:    svc.ID,
		UserID:       actor.UserID,
		Date:         in.Date.UTC(),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if errors.Is(err, domain.ErrServiceUnavailable) {
			return nil, httperr.ErrValidation("serviço não pertence à barbearia")
		}
		if !httperr.IsUniqueViolation(err) {
			return nil, err
		}
		return uc.resolveConflict(ctx, actor, in)
	}
	b.Service = *svc

	// --------------------------------------------------
	// 6) Disponibilidade do dia ficou velha
	// --------------------------------------------------
	dateKey := local.Format(timezone.DateLayout)
	if err := uc.cache.InvalidateDate(ctx, in.BarbershopID, dateKey); err != nil {
		uc.log.Warn("availability cache invalidation failed",
			zap.Uint("barbershop_id", in.BarbershopID),
			zap.String("date", dateKey),
			zap.Error(err),
		)
	}

	// --------------------------------------------------
	// 7) Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &actor.UserID,
		Action:       "booking_created",
		Entity:       "booking",
		EntityID:     &b.ID,
		Metadata: map[string]any{
			"service_id": svc.ID,
			"date":       b.Date.Format(time.RFC3339),
		},
	})

	return &CreateBookingResult{Booking: b}, nil
}

func (uc *CreateBooking) assertSlot(ctx context.Context, barbershopID uint, local time.Time) error {
	hours, err := uc.hours.GetOperatingHours(ctx, barbershopID, int(local.Weekday()))
	if err != nil {
		return err
	}

	day, _ := timezone.DayBounds(local, uc.loc)
	for _, s := range availability.Generate(day, hours, uc.slot) {
		if s.Equal(local) {
			return nil
		}
	}
	return httperr.ErrValidation("horário fora do expediente ou da grade de horários")
}

// resolveConflict trata a violação de unicidade: a mesma requisição repetida
// devolve a reserva existente; qualquer outro dono significa slot ocupado.
func (uc *CreateBooking) resolveConflict(
	ctx context.Context,
	actor auth.Context,
	in CreateBookingInput,
) (*CreateBookingResult, error) {

	existing, err := uc.repo.FindBySlot(ctx, in.BarbershopID, in.Date)
	if err != nil {
		uc.log.Warn("lookup after booking conflict failed", zap.Error(err))
		return nil, httperr.ErrBusiness(httperr.CodeSlotTaken)
	}

	if existing != nil && existing.UserID == actor.UserID && existing.ServiceID == in.ServiceID {
		return &CreateBookingResult{Booking: existing, Replayed: true}, nil
	}

	return nil, httperr.ErrBusiness(httperr.CodeSlotTaken)
}
