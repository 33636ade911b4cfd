package availability

import (
	"github.com/classiccuts/booking-api/internal/domain/schedule"
)

const (
	// passo de enumeração de horários oferecidos ao cliente
	BookingStepMin = 15
	// grade da agenda do barbeiro
	TimelineStepMin = 30
	// todo bloqueio manual ocupa exatamente meia hora
	BlockDurationMin = 30
)

type IntervalKind string

const (
	KindAppointment IntervalKind = "appointment"
	KindBlock       IntervalKind = "block"
	KindBreak       IntervalKind = "break"
)

// Interval é uma faixa semiaberta [Start, End) em minutos do dia.
type Interval struct {
	Start int
	End   int
	Kind  IntervalKind
}

// Overlaps testa interseção de [start, end) com o intervalo.
func (iv Interval) Overlaps(start, end int) bool {
	return start < iv.End && end > iv.Start
}

// Contains testa se o ponto está dentro da faixa semiaberta.
func (iv Interval) Contains(minute int) bool {
	return minute >= iv.Start && minute < iv.End
}

// AppointmentSpan é o registro de agendamento como entregue pelo colaborador
// de dados: horário, duração e dados do cliente já desnormalizados.
type AppointmentSpan struct {
	Time          string `json:"time"`
	DurationMin   int    `json:"duration_min"`
	ClientName    string `json:"client_name"`
	ClientContact string `json:"client_contact"`
	ServiceName   string `json:"service_name"`
}

// BlockedSpan é o bloqueio manual cru, repassado na agenda para permitir
// o desbloqueio pelo id.
type BlockedSpan struct {
	ID   string `json:"id"`
	Time string `json:"time"`
}

// buildOccupied monta o conjunto ocupado do dia: agendamentos, bloqueios e a
// pausa do expediente. Registro com horário ilegível ou duração não positiva
// é violação de pré-condição e interrompe o cálculo.
func buildOccupied(
	win schedule.Window,
	appointments []AppointmentSpan,
	blocks []BlockedSpan,
) ([]Interval, error) {

	occupied := make([]Interval, 0, len(appointments)+len(blocks)+1)

	for _, ap := range appointments {
		start, err := schedule.ParseClock(ap.Time)
		if err != nil {
			return nil, err
		}
		if ap.DurationMin <= 0 {
			return nil, errInvalidDuration
		}
		occupied = append(occupied, Interval{
			Start: start,
			End:   start + ap.DurationMin,
			Kind:  KindAppointment,
		})
	}

	for _, b := range blocks {
		start, err := schedule.ParseClock(b.Time)
		if err != nil {
			return nil, err
		}
		occupied = append(occupied, Interval{
			Start: start,
			End:   start + BlockDurationMin,
			Kind:  KindBlock,
		})
	}

	if win.HasBreak {
		occupied = append(occupied, Interval{
			Start: win.BreakStart,
			End:   win.BreakEnd,
			Kind:  KindBreak,
		})
	}

	return occupied, nil
}
