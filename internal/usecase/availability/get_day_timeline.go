package availability

import (
	"context"

	domainavail "github.com/classiccuts/booking-api/internal/domain/availability"
	domain "github.com/classiccuts/booking-api/internal/domain/booking"
	"github.com/classiccuts/booking-api/internal/snapshot"
)

type DayTimelineInput struct {
	BarberID uint
	Date     string // YYYY-MM-DD
}

type GetDayTimeline struct {
	repo domain.Repository
	snap *snapshot.Source
}

func NewGetDayTimeline(
	repo domain.Repository,
	snap *snapshot.Source,
) *GetDayTimeline {
	return &GetDayTimeline{
		repo: repo,
		snap: snap,
	}
}

// Execute monta a agenda do dia do barbeiro em grade de meia hora.
func (uc *GetDayTimeline) Execute(
	ctx context.Context,
	in DayTimelineInput,
) ([]domainavail.Slot, error) {

	ws, err := uc.repo.GetWorkSchedule(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	day, err := uc.snap.Load(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	return domainavail.DayTimeline(
		ws,
		in.Date,
		day.Appointments,
		day.Blocks,
	)
}
