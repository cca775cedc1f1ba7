package dto

import "github.com/EltonLopezzs/onbarbearia/internal/models"

type UserDTO struct {
	ID                  uint   `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Role                string `json:"role"`
	ManagedBarbershopID *uint  `json:"managed_barbershop_id"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:                  u.ID,
		Name:                u.Name,
		Email:               u.Email,
		Phone:               u.Phone,
		Role:                u.Role,
		ManagedBarbershopID: u.ManagedBarbershopID,
	}
}
