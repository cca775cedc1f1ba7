package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/EltonLopezzs/onbarbearia/internal/domain/booking"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	barbershopID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", serviceID, barbershopID).
		First(&svc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Booking (write)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	b.Date = b.Date.UTC()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// FOR SHARE: espera (ou bloqueia) a exclusão do serviço, que usa FOR UPDATE
		var svc models.Service
		err := tx.
			Clauses(clause.Locking{Strength: "SHARE"}).
			Where("id = ? AND barbershop_id = ?", b.ServiceID, b.BarbershopID).
			First(&svc).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrServiceUnavailable
		}
		if err != nil {
			return err
		}

		return tx.Create(b).Error
	})
}

func (r *BookingGormRepository) FindBySlot(
	ctx context.Context,
	barbershopID uint,
	at time.Time,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND date = ?", barbershopID, at.UTC()).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) ListDatesForDay(
	ctx context.Context,
	barbershopID uint,
	from time.Time,
	to time.Time,
) ([]time.Time, error) {

	var rows []models.Booking
	if err := r.db.WithContext(ctx).
		Select("date").
		Where(
			"barbershop_id = ? AND date >= ? AND date < ?",
			barbershopID, from.UTC(), to.UTC(),
		).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(rows))
	for _, b := range rows {
		dates = append(dates, b.Date)
	}
	return dates, nil
}

func (r *BookingGormRepository) ListByCustomer(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Service", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Barbershop").
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) CountBetween(
	ctx context.Context,
	barbershopID uint,
	from time.Time,
	to time.Time,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"barbershop_id = ? AND date >= ? AND date < ?",
			barbershopID, from.UTC(), to.UTC(),
		).
		Count(&count).Error
	return count, err
}

func (r *BookingGormRepository) CountFrom(
	ctx context.Context,
	barbershopID uint,
	from time.Time,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("barbershop_id = ? AND date >= ?", barbershopID, from.UTC()).
		Count(&count).Error
	return count, err
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
