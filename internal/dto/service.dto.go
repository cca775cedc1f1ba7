package dto

import "github.com/EltonLopezzs/onbarbearia/internal/models"

type ServiceDTO struct {
	ID           uint    `json:"id"`
	BarbershopID uint    `json:"barbershop_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url"`
}

func NewServiceDTO(s *models.Service) ServiceDTO {
	return ServiceDTO{
		ID:           s.ID,
		BarbershopID: s.BarbershopID,
		Name:         s.Name,
		Description:  s.Description,
		Price:        s.Price.InexactFloat64(),
		ImageURL:     s.ImageURL,
	}
}

func NewServiceDTOs(list []models.Service) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(list))
	for i := range list {
		out = append(out, NewServiceDTO(&list[i]))
	}
	return out
}
