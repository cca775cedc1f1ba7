package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/EltonLopezzs/onbarbearia/internal/domain/service"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) ListByBarbershop(
	ctx context.Context,
	barbershopID uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", barbershopID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceGormRepository) Get(
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

func (r *ServiceGormRepository) Create(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ServiceGormRepository) Update(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ServiceGormRepository) DeleteIfNoBookingsFrom(
	ctx context.Context,
	serviceID uint,
	from time.Time,
) (bool, error) {

	deleted := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// trava o serviço: CreateBooking relê com FOR SHARE e espera o fim da transação
		var svc models.Service
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&svc, serviceID).Error; err != nil {
			return err
		}

		var future int64
		if err := tx.
			Model(&models.Booking{}).
			Where("service_id = ? AND date >= ?", serviceID, from.UTC()).
			Count(&future).Error; err != nil {
			return err
		}
		if future > 0 {
			return nil
		}

		if err := tx.Delete(&svc).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})

	return deleted, err
}

func (r *ServiceGormRepository) Count(ctx context.Context, barbershopID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("barbershop_id = ?", barbershopID).
		Count(&count).Error
	return count, err
}

var _ domain.Repository = (*ServiceGormRepository)(nil)
