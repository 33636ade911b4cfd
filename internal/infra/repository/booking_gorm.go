package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/classiccuts/booking-api/internal/domain/availability"
	domain "github.com/classiccuts/booking-api/internal/domain/booking"
	"github.com/classiccuts/booking-api/internal/domain/schedule"
	"github.com/classiccuts/booking-api/internal/httperr"
	"github.com/classiccuts/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *BookingGormRepository) GetBarberByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) ListBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = true", serviceID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Work schedule
// --------------------------------------------------

func (r *BookingGormRepository) GetWorkSchedule(
	ctx context.Context,
	barberID uint,
) (schedule.WorkSchedule, error) {

	var days []models.WorkScheduleDay
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Find(&days).Error; err != nil {
		return nil, err
	}

	ws := schedule.WorkSchedule{}
	for _, d := range days {
		ws[schedule.Weekday(d.Weekday)] = schedule.DaySchedule{
			Active:     d.Active,
			Start:      d.StartTime,
			End:        d.EndTime,
			BreakStart: d.BreakStart,
			BreakEnd:   d.BreakEnd,
		}
	}

	return ws, nil
}

// --------------------------------------------------
// Day snapshot
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
	barberID uint,
	date string,
) ([]availability.AppointmentSpan, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND date = ? AND status = 'scheduled'",
			barberID, date,
		).
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	spans := make([]availability.AppointmentSpan, 0, len(aps))
	for _, ap := range aps {
		spans = append(spans, availability.AppointmentSpan{
			Time:          ap.Time,
			DurationMin:   ap.DurationMin,
			ClientName:    ap.ClientName,
			ClientContact: ap.ClientContact,
			ServiceName:   ap.ServiceName,
		})
	}

	return spans, nil
}

func (r *BookingGormRepository) ListBlockedSlots(
	ctx context.Context,
	barberID uint,
	date string,
) ([]availability.BlockedSpan, error) {

	var blocks []models.BlockedSlot
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, date).
		Order("time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	spans := make([]availability.BlockedSpan, 0, len(blocks))
	for _, b := range blocks {
		spans = append(spans, availability.BlockedSpan{
			ID:   b.ID,
			Time: b.Time,
		})
	}

	return spans, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

// AssertNoTimeConflict relê os agendamentos do dia com lock de linha e
// verifica a sobreposição em memória (horários são strings "HH:MM").
func (r *BookingGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	barberID uint,
	date string,
	startMin int,
	endMin int,
) error {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND date = ? AND status = 'scheduled'",
			barberID, date,
		).
		Find(&aps).Error; err != nil {
		return err
	}

	for _, other := range aps {
		otherStart, err := schedule.ParseClock(other.Time)
		if err != nil {
			continue
		}
		otherEnd := otherStart + other.DurationMin

		if startMin < otherEnd && endMin > otherStart {
			return httperr.ErrBusiness("time_conflict")
		}
	}

	return nil
}

func (r *BookingGormRepository) GetAppointmentForBarber(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", appointmentID, barberID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Blocked slots
// --------------------------------------------------

func (r *BookingGormRepository) CreateBlockedSlot(
	ctx context.Context,
	block *models.BlockedSlot,
) error {
	return r.db.WithContext(ctx).Create(block).Error
}

func (r *BookingGormRepository) GetBlockedSlot(
	ctx context.Context,
	barberID uint,
	blockID string,
) (*models.BlockedSlot, error) {

	var block models.BlockedSlot
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", blockID, barberID).
		First(&block).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *BookingGormRepository) DeleteBlockedSlot(
	ctx context.Context,
	barberID uint,
	blockID string,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", blockID, barberID).
		Delete(&models.BlockedSlot{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("block_not_found")
	}

	return nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
