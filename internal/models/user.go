package models

import "time"

const (
	RoleOwner    = "OWNER"
	RoleBarber   = "BARBER"
	RoleCustomer = "CUSTOMER"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;not null;default:'CUSTOMER'" json:"role"`

	// Só OWNER/BARBER administram; no máximo uma barbearia.
	ManagedBarbershopID *uint       `gorm:"index" json:"managed_barbershop_id"`
	ManagedBarbershop   *Barbershop `gorm:"foreignKey:ManagedBarbershopID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
