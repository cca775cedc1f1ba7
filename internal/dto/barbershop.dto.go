package dto

import "github.com/EltonLopezzs/onbarbearia/internal/models"

type OperatingHoursDTO struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsClosed  bool   `json:"is_closed"`
}

func NewOperatingHoursDTOs(rows []models.OperatingHours) []OperatingHoursDTO {
	out := make([]OperatingHoursDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, OperatingHoursDTO{
			DayOfWeek: r.DayOfWeek,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			IsClosed:  r.IsClosed,
		})
	}
	return out
}

type BarbershopDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func NewBarbershopDTO(s *models.Barbershop) BarbershopDTO {
	return BarbershopDTO{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		Phone:       s.Phone,
		Description: s.Description,
		ImageURL:    s.ImageURL,
	}
}

func NewBarbershopDTOs(list []models.Barbershop) []BarbershopDTO {
	out := make([]BarbershopDTO, 0, len(list))
	for i := range list {
		out = append(out, NewBarbershopDTO(&list[i]))
	}
	return out
}

type BarbershopDetailDTO struct {
	BarbershopDTO
	Services       []ServiceDTO        `json:"services"`
	OperatingHours []OperatingHoursDTO `json:"operating_hours"`
}

func NewBarbershopDetailDTO(s *models.Barbershop) BarbershopDetailDTO {
	return BarbershopDetailDTO{
		BarbershopDTO:  NewBarbershopDTO(s),
		Services:       NewServiceDTOs(s.Services),
		OperatingHours: NewOperatingHoursDTOs(s.OperatingHours),
	}
}
