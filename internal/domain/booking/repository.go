package booking

import (
	"context"

	"github.com/classiccuts/booking-api/internal/domain/availability"
	"github.com/classiccuts/booking-api/internal/domain/schedule"
	"github.com/classiccuts/booking-api/internal/models"
)

// Repository é o colaborador de dados do motor de disponibilidade: entrega
// snapshots simples (grade semanal, agendamentos e bloqueios do dia) e recebe
// as escritas. Datas sempre como "2006-01-02".
type Repository interface {
	// -------- Barber --------
	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	ListBarbers(
		ctx context.Context,
	) ([]models.Barber, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Work schedule --------
	GetWorkSchedule(
		ctx context.Context,
		barberID uint,
	) (schedule.WorkSchedule, error)

	// -------- Day snapshot --------
	ListAppointments(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]availability.AppointmentSpan, error)

	ListBlockedSlots(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]availability.BlockedSpan, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		barberID uint,
		date string,
		startMin int,
		endMin int,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForBarber(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Blocked slots --------
	CreateBlockedSlot(
		ctx context.Context,
		block *models.BlockedSlot,
	) error

	GetBlockedSlot(
		ctx context.Context,
		barberID uint,
		blockID string,
	) (*models.BlockedSlot, error)

	DeleteBlockedSlot(
		ctx context.Context,
		barberID uint,
		blockID string,
	) error
}
