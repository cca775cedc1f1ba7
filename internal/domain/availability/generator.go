package availability

import (
	"time"

	"github.com/EltonLopezzs/onbarbearia/internal/domain/schedule"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
	"github.com/EltonLopezzs/onbarbearia/internal/timezone"
)

const DefaultSlot = 30 * time.Minute

// Generate devolve os inícios de slot do dia, em ordem crescente, no fuso de day.
// Um slot só entra se termina até o fechamento. Dia fechado, sem registro ou com
// horário inválido resulta em lista vazia.
func Generate(day time.Time, hours *models.OperatingHours, step time.Duration) []time.Time {
	if step <= 0 {
		step = DefaultSlot
	}

	opensAt, closesAt, ok := schedule.Window(hours)
	if !ok {
		return nil
	}

	dayStart := opensAt.On(day)
	dayEnd := closesAt.On(day)

	var slots []time.Time
	for cur := dayStart; !cur.Add(step).After(dayEnd); cur = cur.Add(step) {
		slots = append(slots, cur)
	}
	return slots
}

type slotKey struct {
	year  int
	month time.Month
	day   int
	clock schedule.Clock
}

func keyOf(t time.Time, loc *time.Location) slotKey {
	lt := t.In(loc)
	y, m, d := lt.Date()
	return slotKey{year: y, month: m, day: d, clock: schedule.ClockOf(lt)}
}

// Filter remove os slots ocupados. Uma reserva bloqueia o slot com o mesmo
// HH:MM no mesmo dia civil (em loc); reservas de outros dias não interferem.
func Filter(slots []time.Time, bookings []time.Time, loc *time.Location) []time.Time {
	if len(slots) == 0 {
		return nil
	}

	taken := make(map[slotKey]struct{}, len(bookings))
	for _, b := range bookings {
		taken[keyOf(b, loc)] = struct{}{}
	}

	free := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		if _, busy := taken[keyOf(s, loc)]; busy {
			continue
		}
		free = append(free, s)
	}
	return free
}

// Compute gera e filtra os horários livres de date, como rótulos "HH:MM".
// Nunca devolve nil.
func Compute(
	date time.Time,
	hours *models.OperatingHours,
	bookings []time.Time,
	step time.Duration,
	loc *time.Location,
) []string {
	day, _ := timezone.DayBounds(date, loc)

	free := Filter(Generate(day, hours, step), bookings, loc)

	labels := make([]string, 0, len(free))
	for _, s := range free {
		labels = append(labels, schedule.ClockOf(s.In(loc)).String())
	}
	return labels
}
