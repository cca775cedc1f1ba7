package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/EltonLopezzs/onbarbearia/internal/domain/barbershop"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

type BarbershopGormRepository struct {
	db *gorm.DB
}

func NewBarbershopGormRepository(db *gorm.DB) *BarbershopGormRepository {
	return &BarbershopGormRepository{db: db}
}

func (r *BarbershopGormRepository) List(ctx context.Context) ([]models.Barbershop, error) {
	var shops []models.Barbershop
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *BarbershopGormRepository) Get(ctx context.Context, id uint) (*models.Barbershop, error) {
	return r.first(r.db.WithContext(ctx), id)
}

func (r *BarbershopGormRepository) GetDetail(ctx context.Context, id uint) (*models.Barbershop, error) {
	q := r.db.WithContext(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Preload("OperatingHours", func(db *gorm.DB) *gorm.DB { return db.Order("day_of_week ASC") })
	return r.first(q, id)
}

func (r *BarbershopGormRepository) Update(ctx context.Context, shop *models.Barbershop) error {
	return r.db.WithContext(ctx).
		Model(shop).
		Select("name", "address", "phone", "description", "image_url").
		Updates(shop).Error
}

func (r *BarbershopGormRepository) first(q *gorm.DB, id uint) (*models.Barbershop, error) {
	var shop models.Barbershop
	err := q.First(&shop, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

var _ domain.Repository = (*BarbershopGormRepository)(nil)
