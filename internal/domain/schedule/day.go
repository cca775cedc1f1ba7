package schedule

import (
	"fmt"

	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

const DaysInWeek = 7

// Day é a entrada de um dia da semana na troca completa de horários.
type Day struct {
	DayOfWeek int
	StartTime string
	EndTime   string
	IsClosed  bool
}

func (d Day) Validate() error {
	if d.DayOfWeek < 0 || d.DayOfWeek >= DaysInWeek {
		return httperr.ErrValidation(fmt.Sprintf("dia da semana inválido: %d", d.DayOfWeek))
	}
	if d.IsClosed {
		return nil
	}

	if d.StartTime == "" || d.EndTime == "" {
		return httperr.ErrValidation(fmt.Sprintf("dia %d: início e fim são obrigatórios", d.DayOfWeek))
	}

	start, err := ParseClock(d.StartTime)
	if err != nil {
		return httperr.ErrValidation(fmt.Sprintf("dia %d: horário de início inválido", d.DayOfWeek))
	}
	end, err := ParseClock(d.EndTime)
	if err != nil {
		return httperr.ErrValidation(fmt.Sprintf("dia %d: horário de fim inválido", d.DayOfWeek))
	}

	if !start.Before(end) {
		return httperr.ErrValidation(fmt.Sprintf("dia %d: fim deve ser depois do início", d.DayOfWeek))
	}
	return nil
}

// ValidateWeek exige exatamente sete dias, um para cada dia da semana.
func ValidateWeek(days []Day) error {
	if len(days) != DaysInWeek {
		return httperr.ErrValidation(fmt.Sprintf("esperados %d dias, recebidos %d", DaysInWeek, len(days)))
	}

	var seen [DaysInWeek]bool
	for _, d := range days {
		if err := d.Validate(); err != nil {
			return err
		}
		if seen[d.DayOfWeek] {
			return httperr.ErrValidation(fmt.Sprintf("dia %d repetido", d.DayOfWeek))
		}
		seen[d.DayOfWeek] = true
	}
	return nil
}

// ToModel normaliza o dia para persistência; fechado guarda horários vazios.
func (d Day) ToModel(barbershopID uint) models.OperatingHours {
	row := models.OperatingHours{
		BarbershopID: barbershopID,
		DayOfWeek:    d.DayOfWeek,
		IsClosed:     d.IsClosed,
	}
	if !d.IsClosed {
		row.StartTime = d.StartTime
		row.EndTime = d.EndTime
	}
	return row
}

// Window resolve o expediente de um registro. ok=false para dia fechado,
// ausente ou com horários inválidos.
func Window(h *models.OperatingHours) (start, end Clock, ok bool) {
	if h == nil || h.IsClosed || h.StartTime == "" || h.EndTime == "" {
		return Clock{}, Clock{}, false
	}

	start, err := ParseClock(h.StartTime)
	if err != nil {
		return Clock{}, Clock{}, false
	}
	end, err = ParseClock(h.EndTime)
	if err != nil {
		return Clock{}, Clock{}, false
	}
	if !start.Before(end) {
		return Clock{}, Clock{}, false
	}

	return start, end, true
}
