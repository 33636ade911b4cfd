package availability

import (
	"context"

	domainavail "github.com/classiccuts/booking-api/internal/domain/availability"
	domain "github.com/classiccuts/booking-api/internal/domain/booking"
	"github.com/classiccuts/booking-api/internal/httperr"
	"github.com/classiccuts/booking-api/internal/snapshot"
)

// ======================================================
// INPUT
// ======================================================

type BookableStartsInput struct {
	BarberID  uint
	ServiceID uint
	Date      string // YYYY-MM-DD
}

// ======================================================
// USE CASE
// ======================================================

type GetBookableStarts struct {
	repo domain.Repository
	snap *snapshot.Source
}

func NewGetBookableStarts(
	repo domain.Repository,
	snap *snapshot.Source,
) *GetBookableStarts {
	return &GetBookableStarts{
		repo: repo,
		snap: snap,
	}
}

// Execute resolve a grade do barbeiro, pega o snapshot do dia e devolve os
// inícios agendáveis "HH:MM" em ordem crescente. Dia fechado = lista vazia.
func (uc *GetBookableStarts) Execute(
	ctx context.Context,
	in BookableStartsInput,
) ([]string, error) {

	if _, err := uc.repo.GetBarberByID(ctx, in.BarberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	ws, err := uc.repo.GetWorkSchedule(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	day, err := uc.snap.Load(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	return domainavail.BookableStarts(
		ws,
		in.Date,
		service.DurationMin,
		day.Appointments,
		day.Blocks,
	)
}
