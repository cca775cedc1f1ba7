package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarbershopID uint       `gorm:"not null;uniqueIndex:idx_bookings_shop_date,priority:1" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID uint    `gorm:"not null;index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Instante absoluto em UTC. A unicidade (barbearia, data) arbitra corridas.
	Date time.Time `gorm:"not null;uniqueIndex:idx_bookings_shop_date,priority:2" json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
