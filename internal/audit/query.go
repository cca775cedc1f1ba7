package audit

import (
	"context"
	"time"

	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type Filter struct {
	BarbershopID uint
	Action       string
	Entity       string

	// intervalo [From, To)
	From *time.Time
	To   *time.Time

	Page  int
	Limit int
}

// Normalize aplica os limites de paginação.
func (f *Filter) Normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > maxPageSize {
		f.Limit = defaultPageSize
	}
}

// List devolve os logs da barbearia, mais recentes primeiro, e o total sem paginação.
func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	f.Normalize()

	// sempre restrito à barbearia
	q := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("barbershop_id = ?", f.BarbershopID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", f.From.UTC())
	}
	if f.To != nil {
		q = q.Where("created_at < ?", f.To.UTC())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	logs := []models.AuditLog{}
	err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
