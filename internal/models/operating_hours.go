package models

import "time"

// Uma linha por (barbearia, dia da semana). Dia fechado guarda horários vazios.
type OperatingHours struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"not null;uniqueIndex:idx_operating_hours_shop_day,priority:1" json:"barbershop_id"`
	DayOfWeek    int  `gorm:"not null;uniqueIndex:idx_operating_hours_shop_day,priority:2" json:"day_of_week"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	IsClosed  bool   `gorm:"not null" json:"is_closed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
