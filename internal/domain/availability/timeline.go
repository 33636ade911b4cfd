package availability

import (
	"sort"

	"github.com/classiccuts/booking-api/internal/domain/schedule"
)

type SlotType string

const (
	SlotAppointment SlotType = "appointment"
	SlotBlocked     SlotType = "blocked"
	SlotFree        SlotType = "free"
)

type SlotDetails struct {
	ClientName    string `json:"client_name"`
	ClientContact string `json:"client_contact"`
	ServiceName   string `json:"service_name"`
}

// Slot é uma posição da agenda do barbeiro: um agendamento, um bloqueio
// (com o registro cru para permitir remoção) ou meia hora livre.
type Slot struct {
	Time    string       `json:"time"`
	Type    SlotType     `json:"type"`
	Details *SlotDetails `json:"details,omitempty"`
	Block   *BlockedSpan `json:"block,omitempty"`
}

// DayTimeline monta a agenda do dia em grade de 30 minutos: um slot por
// agendamento, um por bloqueio, e "free" para cada ponto da grade dentro do
// expediente não coberto por nenhum dos dois.
//
// A pausa NÃO aparece aqui: ela só entra como tempo ocupado no cálculo de
// horários agendáveis. Na agenda o barbeiro vê a pausa como slots livres,
// que ele pode bloquear ou não.
func DayTimeline(
	ws schedule.WorkSchedule,
	date string,
	appointments []AppointmentSpan,
	blocks []BlockedSpan,
) ([]Slot, error) {

	win, open, err := schedule.ResolveDay(ws, date)
	if err != nil {
		return nil, err
	}
	if !open {
		return []Slot{}, nil
	}

	type placed struct {
		minute int
		slot   Slot
	}
	var out []placed
	var covering []Interval

	for i := range appointments {
		ap := appointments[i]
		start, err := schedule.ParseClock(ap.Time)
		if err != nil {
			return nil, err
		}
		if ap.DurationMin <= 0 {
			return nil, errInvalidDuration
		}

		covering = append(covering, Interval{
			Start: start,
			End:   start + ap.DurationMin,
			Kind:  KindAppointment,
		})
		out = append(out, placed{
			minute: start,
			slot: Slot{
				Time: schedule.FormatClock(start),
				Type: SlotAppointment,
				Details: &SlotDetails{
					ClientName:    ap.ClientName,
					ClientContact: ap.ClientContact,
					ServiceName:   ap.ServiceName,
				},
			},
		})
	}

	for i := range blocks {
		b := blocks[i]
		start, err := schedule.ParseClock(b.Time)
		if err != nil {
			return nil, err
		}

		covering = append(covering, Interval{
			Start: start,
			End:   start + BlockDurationMin,
			Kind:  KindBlock,
		})
		out = append(out, placed{
			minute: start,
			slot: Slot{
				Time:  schedule.FormatClock(start),
				Type:  SlotBlocked,
				Block: &b,
			},
		})
	}

	for g := win.Start; g < win.End; g += TimelineStepMin {
		taken := false
		for _, iv := range covering {
			if iv.Contains(g) {
				taken = true
				break
			}
		}
		if !taken {
			out = append(out, placed{
				minute: g,
				slot:   Slot{Time: schedule.FormatClock(g), Type: SlotFree},
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].minute < out[j].minute
	})

	slots := make([]Slot, 0, len(out))
	for _, p := range out {
		slots = append(slots, p.slot)
	}

	return slots, nil
}
