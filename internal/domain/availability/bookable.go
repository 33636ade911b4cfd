package availability

import (
	"github.com/classiccuts/booking-api/internal/domain/schedule"
	"github.com/classiccuts/booking-api/internal/httperr"
)

var errInvalidDuration = httperr.ErrBusiness("invalid_duration")

// BookableStarts enumera os horários de início válidos para um serviço em uma
// data: candidatos de 15 em 15 minutos dentro do expediente, descartando os
// que colidem com agendamento, bloqueio ou pausa. Dia fechado devolve lista
// vazia; duração maior que o expediente também (janela degenerada, não erro).
func BookableStarts(
	ws schedule.WorkSchedule,
	date string,
	serviceDurationMin int,
	appointments []AppointmentSpan,
	blocks []BlockedSpan,
) ([]string, error) {

	if serviceDurationMin <= 0 {
		return nil, errInvalidDuration
	}

	win, open, err := schedule.ResolveDay(ws, date)
	if err != nil {
		return nil, err
	}
	if !open {
		return []string{}, nil
	}

	occupied, err := buildOccupied(win, appointments, blocks)
	if err != nil {
		return nil, err
	}

	starts := []string{}

	// a condição cs+duração <= fim cobre a janela degenerada sem aritmética
	// negativa: se a duração não cabe, o laço não executa nenhuma vez
	for cs := win.Start; cs+serviceDurationMin <= win.End; cs += BookingStepMin {
		free := true
		for _, iv := range occupied {
			if iv.Overlaps(cs, cs+serviceDurationMin) {
				free = false
				break
			}
		}
		if free {
			starts = append(starts, schedule.FormatClock(cs))
		}
	}

	return starts, nil
}
