package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"not null;index" json:"barbershop_id"`

	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `gorm:"size:255" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	ImageURL    string          `gorm:"size:500" json:"image_url"`

	// chave do objeto no bucket, para apagar a imagem anterior na troca
	ImageKey string `gorm:"size:300" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Exclusão lógica: reservas passadas continuam apontando para o serviço.
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
