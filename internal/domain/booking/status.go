package booking

import (
	"time"

	"github.com/classiccuts/booking-api/internal/httperr"
	"github.com/classiccuts/booking-api/internal/models"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func InitialStatus() Status {
	return StatusScheduled
}

// Cancel marca o agendamento como cancelado, se ainda estiver agendado.
func Cancel(ap *models.Appointment, now time.Time) error {
	if Status(ap.Status) != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Complete marca o agendamento como concluído, se ainda estiver agendado.
func Complete(ap *models.Appointment, now time.Time) error {
	if Status(ap.Status) != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
