package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/classiccuts/booking-api/internal/domain/availability"
	"github.com/classiccuts/booking-api/internal/domain/schedule"
	"github.com/classiccuts/booking-api/internal/models"
)

// fakeRepo conta as idas ao banco para provar que o cache só refaz a metade
// invalidada. Os métodos de escrita não interessam aqui.
type fakeRepo struct {
	appointments []availability.AppointmentSpan
	blocks       []availability.BlockedSpan

	appointmentCalls int
	blockCalls       int
}

func (f *fakeRepo) ListAppointments(_ context.Context, _ uint, _ string) ([]availability.AppointmentSpan, error) {
	f.appointmentCalls++
	return f.appointments, nil
}

func (f *fakeRepo) ListBlockedSlots(_ context.Context, _ uint, _ string) ([]availability.BlockedSpan, error) {
	f.blockCalls++
	return f.blocks, nil
}

func (f *fakeRepo) GetBarberByID(context.Context, uint) (*models.Barber, error) { return nil, nil }
func (f *fakeRepo) ListBarbers(context.Context) ([]models.Barber, error)        { return nil, nil }
func (f *fakeRepo) GetService(context.Context, uint) (*models.Service, error)   { return nil, nil }
func (f *fakeRepo) GetWorkSchedule(context.Context, uint) (schedule.WorkSchedule, error) {
	return nil, nil
}
func (f *fakeRepo) CreateAppointment(context.Context, *models.Appointment) error { return nil }
func (f *fakeRepo) AssertNoTimeConflict(context.Context, uint, string, int, int) error {
	return nil
}
func (f *fakeRepo) GetAppointmentForBarber(context.Context, uint, uint) (*models.Appointment, error) {
	return nil, nil
}
func (f *fakeRepo) UpdateAppointment(context.Context, *models.Appointment) error  { return nil }
func (f *fakeRepo) CreateBlockedSlot(context.Context, *models.BlockedSlot) error  { return nil }
func (f *fakeRepo) GetBlockedSlot(context.Context, uint, string) (*models.BlockedSlot, error) {
	return nil, nil
}
func (f *fakeRepo) DeleteBlockedSlot(context.Context, uint, string) error { return nil }

func newTestSource(repo *fakeRepo) *Source {
	return NewSource(repo, nil, zap.NewNop())
}

func TestLoadCachesBothStreams(t *testing.T) {
	repo := &fakeRepo{
		appointments: []availability.AppointmentSpan{{Time: "10:00", DurationMin: 30}},
		blocks:       []availability.BlockedSpan{{ID: "b1", Time: "14:00"}},
	}
	src := newTestSource(repo)
	ctx := context.Background()

	day, err := src.Load(ctx, 1, "2026-09-07")
	require.NoError(t, err)
	assert.Len(t, day.Appointments, 1)
	assert.Len(t, day.Blocks, 1)

	_, err = src.Load(ctx, 1, "2026-09-07")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.appointmentCalls)
	assert.Equal(t, 1, repo.blockCalls)
}

func TestLoadSeparatesDays(t *testing.T) {
	repo := &fakeRepo{}
	src := newTestSource(repo)
	ctx := context.Background()

	_, err := src.Load(ctx, 1, "2026-09-07")
	require.NoError(t, err)
	_, err = src.Load(ctx, 1, "2026-09-08")
	require.NoError(t, err)
	_, err = src.Load(ctx, 2, "2026-09-07")
	require.NoError(t, err)

	assert.Equal(t, 3, repo.appointmentCalls)
	assert.Equal(t, 3, repo.blockCalls)
}

func TestNotifyAppointmentsInvalidatesOnlyAppointments(t *testing.T) {
	repo := &fakeRepo{}
	src := newTestSource(repo)
	ctx := context.Background()

	_, err := src.Load(ctx, 1, "2026-09-07")
	require.NoError(t, err)

	src.NotifyAppointmentsChanged(ctx, 1, "2026-09-07")

	_, err = src.Load(ctx, 1, "2026-09-07")
	require.NoError(t, err)

	assert.Equal(t, 2, repo.appointmentCalls)
	assert.Equal(t, 1, repo.blockCalls)
}

func TestNotifyBlocksInvalidatesOnlyBlocks(t *testing.T) {
	repo := &fakeRepo{}
	src := newTestSource(repo)
	ctx := context.Background()

	_, err := src.Load(ctx, 1, "2026-09-07")
	require.NoError(t, err)

	src.NotifyBlocksChanged(ctx, 1, "2026-09-07")

	_, err = src.Load(ctx, 1, "2026-09-07")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.appointmentCalls)
	assert.Equal(t, 2, repo.blockCalls)
}

func TestNotifyOtherDayDoesNotInvalidate(t *testing.T) {
	repo := &fakeRepo{}
	src := newTestSource(repo)
	ctx := context.Background()

	_, err := src.Load(ctx, 1, "2026-09-07")
	require.NoError(t, err)

	src.NotifyAppointmentsChanged(ctx, 1, "2026-09-08")

	_, err = src.Load(ctx, 1, "2026-09-07")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.appointmentCalls)
}

func TestOnChangeFiresPerInvalidation(t *testing.T) {
	repo := &fakeRepo{}
	src := newTestSource(repo)
	ctx := context.Background()

	type hit struct {
		barberID uint
		date     string
	}
	var hits []hit
	src.OnChange(func(barberID uint, date string) {
		hits = append(hits, hit{barberID, date})
	})

	src.NotifyAppointmentsChanged(ctx, 7, "2026-09-07")
	src.NotifyBlocksChanged(ctx, 7, "2026-09-07")

	require.Len(t, hits, 2)
	assert.Equal(t, hit{7, "2026-09-07"}, hits[0])
	assert.Equal(t, hit{7, "2026-09-07"}, hits[1])
}

func TestLoadReturnsCopies(t *testing.T) {
	repo := &fakeRepo{
		appointments: []availability.AppointmentSpan{{Time: "10:00", DurationMin: 30}},
	}
	src := newTestSource(repo)
	ctx := context.Background()

	day, err := src.Load(ctx, 1, "2026-09-07")
	require.NoError(t, err)

	day.Appointments[0].Time = "99:99"

	again, err := src.Load(ctx, 1, "2026-09-07")
	require.NoError(t, err)
	assert.Equal(t, "10:00", again.Appointments[0].Time)
}

func TestParseInvalidation(t *testing.T) {
	barberID, date, channel, ok := parseInvalidation("agenda:appointments:12:2026-09-07")
	require.True(t, ok)
	assert.Equal(t, uint(12), barberID)
	assert.Equal(t, "2026-09-07", date)
	assert.Equal(t, channelAppointments, channel)

	barberID, date, channel, ok = parseInvalidation("agenda:blocks:3:2026-09-08")
	require.True(t, ok)
	assert.Equal(t, uint(3), barberID)
	assert.Equal(t, "2026-09-08", date)
	assert.Equal(t, channelBlocks, channel)

	for _, bad := range []string{
		"agenda:other:1:2026-09-07",
		"agenda:appointments:abc:2026-09-07",
		"agenda:appointments:12",
		"",
	} {
		_, _, _, ok := parseInvalidation(bad)
		assert.False(t, ok, bad)
	}
}
