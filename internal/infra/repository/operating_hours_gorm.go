package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/EltonLopezzs/onbarbearia/internal/domain/schedule"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

type OperatingHoursGormRepository struct {
	db *gorm.DB
}

func NewOperatingHoursGormRepository(db *gorm.DB) *OperatingHoursGormRepository {
	return &OperatingHoursGormRepository{db: db}
}

func (r *OperatingHoursGormRepository) ListOperatingHours(
	ctx context.Context,
	barbershopID uint,
) ([]models.OperatingHours, error) {

	var hours []models.OperatingHours
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", barbershopID).
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *OperatingHoursGormRepository) GetOperatingHours(
	ctx context.Context,
	barbershopID uint,
	dayOfWeek int,
) (*models.OperatingHours, error) {

	var h models.OperatingHours
	err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND day_of_week = ?", barbershopID, dayOfWeek).
		First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *OperatingHoursGormRepository) ReplaceWeek(
	ctx context.Context,
	barbershopID uint,
	week []models.OperatingHours,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range week {
			if week[i].BarbershopID != barbershopID {
				return errors.New("operating hours: row for another barbershop")
			}

			// upsert por (barbershop_id, day_of_week)
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "barbershop_id"}, {Name: "day_of_week"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"start_time", "end_time", "is_closed", "updated_at",
				}),
			}).Create(&week[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

var _ domain.Repository = (*OperatingHoursGormRepository)(nil)
