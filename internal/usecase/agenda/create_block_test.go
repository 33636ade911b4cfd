package agenda

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/classiccuts/booking-api/internal/audit"
	"github.com/classiccuts/booking-api/internal/domain/availability"
	"github.com/classiccuts/booking-api/internal/domain/schedule"
	"github.com/classiccuts/booking-api/internal/httperr"
	"github.com/classiccuts/booking-api/internal/models"
	"github.com/classiccuts/booking-api/internal/snapshot"
)

const monday = "2026-09-07"

type stubRepo struct {
	ws           schedule.WorkSchedule
	appointments []availability.AppointmentSpan
	blocks       []availability.BlockedSpan

	createdBlocks []*models.BlockedSlot
	deletedBlocks []string
	stored        *models.BlockedSlot
}

func (r *stubRepo) GetWorkSchedule(context.Context, uint) (schedule.WorkSchedule, error) {
	return r.ws, nil
}

func (r *stubRepo) ListAppointments(context.Context, uint, string) ([]availability.AppointmentSpan, error) {
	return r.appointments, nil
}

func (r *stubRepo) ListBlockedSlots(context.Context, uint, string) ([]availability.BlockedSpan, error) {
	return r.blocks, nil
}

func (r *stubRepo) CreateBlockedSlot(_ context.Context, block *models.BlockedSlot) error {
	r.createdBlocks = append(r.createdBlocks, block)
	return nil
}

func (r *stubRepo) GetBlockedSlot(_ context.Context, _ uint, blockID string) (*models.BlockedSlot, error) {
	if r.stored == nil || r.stored.ID != blockID {
		return nil, errors.New("not found")
	}
	return r.stored, nil
}

func (r *stubRepo) DeleteBlockedSlot(_ context.Context, _ uint, blockID string) error {
	r.deletedBlocks = append(r.deletedBlocks, blockID)
	return nil
}

func (r *stubRepo) GetBarberByID(context.Context, uint) (*models.Barber, error) { return nil, nil }
func (r *stubRepo) ListBarbers(context.Context) ([]models.Barber, error)        { return nil, nil }
func (r *stubRepo) GetService(context.Context, uint) (*models.Service, error)   { return nil, nil }
func (r *stubRepo) CreateAppointment(context.Context, *models.Appointment) error {
	return nil
}
func (r *stubRepo) AssertNoTimeConflict(context.Context, uint, string, int, int) error {
	return nil
}
func (r *stubRepo) GetAppointmentForBarber(context.Context, uint, uint) (*models.Appointment, error) {
	return nil, errors.New("not found")
}
func (r *stubRepo) UpdateAppointment(context.Context, *models.Appointment) error { return nil }

// ------------------------------------------------------

func newStubRepo() *stubRepo {
	return &stubRepo{
		ws: schedule.WorkSchedule{
			schedule.Monday: {Active: true, Start: "09:00", End: "18:00"},
		},
	}
}

func newUseCases(repo *stubRepo) (*CreateBlock, *RemoveBlock) {
	log := zap.NewNop()
	snap := snapshot.NewSource(repo, nil, log)
	disp := audit.NewDispatcher(audit.New(nil), log)
	return NewCreateBlock(repo, snap, disp), NewRemoveBlock(repo, snap, disp)
}

func assertBusiness(t *testing.T, err error, wantCode string) {
	t.Helper()
	require.Error(t, err)
	code, ok := httperr.BusinessCode(err)
	require.True(t, ok, "esperava erro de negócio, veio: %v", err)
	assert.Equal(t, wantCode, code)
}

func TestCreateBlockOnFreeSlot(t *testing.T) {
	repo := newStubRepo()
	createUC, _ := newUseCases(repo)

	block, err := createUC.Execute(context.Background(), CreateBlockInput{
		BarberID: 1,
		UserID:   10,
		Date:     monday,
		Time:     "14:00",
	})
	require.NoError(t, err)

	require.Len(t, repo.createdBlocks, 1)
	assert.NotEmpty(t, block.ID)
	assert.Equal(t, monday, block.Date)
	assert.Equal(t, "14:00", block.Time)
}

func TestCreateBlockClosedDay(t *testing.T) {
	repo := newStubRepo()
	createUC, _ := newUseCases(repo)

	_, err := createUC.Execute(context.Background(), CreateBlockInput{
		BarberID: 1,
		Date:     "2026-09-06", // domingo
		Time:     "14:00",
	})
	assertBusiness(t, err, "closed_day")
}

func TestCreateBlockRefusesTakenSlot(t *testing.T) {
	repo := newStubRepo()
	repo.appointments = []availability.AppointmentSpan{
		{Time: "14:00", DurationMin: 30, ClientName: "João"},
	}
	createUC, _ := newUseCases(repo)

	_, err := createUC.Execute(context.Background(), CreateBlockInput{
		BarberID: 1,
		Date:     monday,
		Time:     "14:00",
	})
	assertBusiness(t, err, "slot_not_free")
}

func TestCreateBlockRefusesOffGridTime(t *testing.T) {
	repo := newStubRepo()
	createUC, _ := newUseCases(repo)

	// 14:15 não é ponto da grade de meia hora
	_, err := createUC.Execute(context.Background(), CreateBlockInput{
		BarberID: 1,
		Date:     monday,
		Time:     "14:15",
	})
	assertBusiness(t, err, "slot_not_free")
}

func TestRemoveBlock(t *testing.T) {
	repo := newStubRepo()
	repo.stored = &models.BlockedSlot{ID: "blk-1", BarberID: 1, Date: monday, Time: "14:00"}
	_, removeUC := newUseCases(repo)

	err := removeUC.Execute(context.Background(), 1, 10, "blk-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"blk-1"}, repo.deletedBlocks)
}

func TestRemoveBlockNotFound(t *testing.T) {
	repo := newStubRepo()
	_, removeUC := newUseCases(repo)

	err := removeUC.Execute(context.Background(), 1, 10, "nope")
	assertBusiness(t, err, "block_not_found")
	assert.Empty(t, repo.deletedBlocks)
}
