package booking

import (
	"context"
	"strconv"

	"github.com/classiccuts/booking-api/internal/audit"
	domain "github.com/classiccuts/booking-api/internal/domain/booking"
	"github.com/classiccuts/booking-api/internal/httperr"
	"github.com/classiccuts/booking-api/internal/models"
	"github.com/classiccuts/booking-api/internal/snapshot"
	"github.com/classiccuts/booking-api/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	snap  *snapshot.Source
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	snap *snapshot.Source,
	auditDisp *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		snap:  snap,
		audit: auditDisp,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	barberID uint,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForBarber(ctx, appointmentID, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Cancel(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// o horário volta a ficar agendável
	uc.snap.NotifyAppointmentsChanged(ctx, barberID, ap.Date)

	entityID := strconv.FormatUint(uint64(ap.ID), 10)
	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &entityID,
	})

	return ap, nil
}
