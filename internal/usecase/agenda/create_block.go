package agenda

import (
	"context"

	"github.com/google/uuid"

	"github.com/classiccuts/booking-api/internal/audit"
	domainavail "github.com/classiccuts/booking-api/internal/domain/availability"
	domain "github.com/classiccuts/booking-api/internal/domain/booking"
	"github.com/classiccuts/booking-api/internal/domain/schedule"
	"github.com/classiccuts/booking-api/internal/httperr"
	"github.com/classiccuts/booking-api/internal/models"
	"github.com/classiccuts/booking-api/internal/snapshot"
)

type CreateBlockInput struct {
	BarberID uint
	UserID   uint
	Date     string // YYYY-MM-DD
	Time     string // HH:MM
}

type CreateBlock struct {
	repo  domain.Repository
	snap  *snapshot.Source
	audit *audit.Dispatcher
}

func NewCreateBlock(
	repo domain.Repository,
	snap *snapshot.Source,
	auditDisp *audit.Dispatcher,
) *CreateBlock {
	return &CreateBlock{
		repo:  repo,
		snap:  snap,
		audit: auditDisp,
	}
}

// Execute bloqueia meia hora da agenda. Só slots "free" da grade do dia podem
// ser bloqueados: fora do expediente, fora da grade ou em cima de agendamento
// é recusado.
func (uc *CreateBlock) Execute(
	ctx context.Context,
	in CreateBlockInput,
) (*models.BlockedSlot, error) {

	startMin, err := schedule.ParseClock(in.Time)
	if err != nil {
		return nil, err
	}

	ws, err := uc.repo.GetWorkSchedule(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	day, err := uc.snap.Load(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	slots, err := domainavail.DayTimeline(ws, in.Date, day.Appointments, day.Blocks)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, httperr.ErrBusiness("closed_day")
	}

	requested := schedule.FormatClock(startMin)
	free := false
	for _, s := range slots {
		if s.Time == requested {
			free = s.Type == domainavail.SlotFree
			break
		}
	}
	if !free {
		return nil, httperr.ErrBusiness("slot_not_free")
	}

	block := &models.BlockedSlot{
		ID:       uuid.NewString(),
		BarberID: in.BarberID,
		Date:     in.Date,
		Time:     requested,
	}

	if err := uc.repo.CreateBlockedSlot(ctx, block); err != nil {
		return nil, err
	}

	uc.snap.NotifyBlocksChanged(ctx, in.BarberID, in.Date)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "slot_blocked",
		Entity:   "blocked_slot",
		EntityID: &block.ID,
		Metadata: map[string]any{"date": block.Date, "time": block.Time},
	})

	return block, nil
}
