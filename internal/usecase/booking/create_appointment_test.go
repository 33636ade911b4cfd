package booking

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

// 2030-09-02 é uma segunda-feira bem no futuro: o teste nunca esbarra na
// regra de "horário já passou".
const testDate = "2030-09-02"

type stubRepo struct {
	barber   *models.Barber
	service  *models.Service
	ws       schedule.WorkSchedule
	existing []availability.AppointmentSpan
	blocks   []availability.BlockedSpan

	conflictErr error
	created     []*models.Appointment
}

func (r *stubRepo) GetBarberByID(_ context.Context, id uint) (*models.Barber, error) {
	if r.barber == nil || r.barber.ID != id {
		return nil, errors.New("not found")
	}
	return r.barber, nil
}

func (r *stubRepo) ListBarbers(context.Context) ([]models.Barber, error) { return nil, nil }

func (r *stubRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	if r.service == nil || r.service.ID != id {
		return nil, errors.New("not found")
	}
	return r.service, nil
}

func (r *stubRepo) GetWorkSchedule(context.Context, uint) (schedule.WorkSchedule, error) {
	return r.ws, nil
}

func (r *stubRepo) ListAppointments(context.Context, uint, string) ([]availability.AppointmentSpan, error) {
	return r.existing, nil
}

func (r *stubRepo) ListBlockedSlots(context.Context, uint, string) ([]availability.BlockedSpan, error) {
	return r.blocks, nil
}

func (r *stubRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = uint(len(r.created) + 1)
	r.created = append(r.created, ap)
	return nil
}

func (r *stubRepo) AssertNoTimeConflict(context.Context, uint, string, int, int) error {
	return r.conflictErr
}

func (r *stubRepo) GetAppointmentForBarber(context.Context, uint, uint) (*models.Appointment, error) {
	return nil, errors.New("not found")
}

func (r *stubRepo) UpdateAppointment(context.Context, *models.Appointment) error { return nil }
func (r *stubRepo) CreateBlockedSlot(context.Context, *models.BlockedSlot) error { return nil }
func (r *stubRepo) GetBlockedSlot(context.Context, uint, string) (*models.BlockedSlot, error) {
	return nil, errors.New("not found")
}
func (r *stubRepo) DeleteBlockedSlot(context.Context, uint, string) error { return nil }

// ------------------------------------------------------

func newStubRepo() *stubRepo {
	return &stubRepo{
		barber:  &models.Barber{ID: 1, Name: "Carlos"},
		service: &models.Service{ID: 2, Name: "Corte", DurationMin: 30, Price: 0},
		ws: schedule.WorkSchedule{
			schedule.Monday: {
				Active:     true,
				Start:      "09:00",
				End:        "18:00",
				BreakStart: "12:00",
				BreakEnd:   "13:00",
			},
		},
	}
}

func newCreateUC(repo *stubRepo) *CreateAppointment {
	log := zap.NewNop()
	snap := snapshot.NewSource(repo, nil, log)
	disp := audit.NewDispatcher(audit.New(nil), log)
	return NewCreateAppointment(repo, snap, disp, nil, log)
}

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		BarberID:      1,
		ServiceID:     2,
		Date:          testDate,
		Time:          "09:00",
		ClientName:    "João Pereira",
		ClientContact: "11987654321",
	}
}

func assertBusiness(t *testing.T, err error, wantCode string) {
	t.Helper()
	require.Error(t, err)
	code, ok := httperr.BusinessCode(err)
	require.True(t, ok, "esperava erro de negócio, veio: %v", err)
	assert.Equal(t, wantCode, code)
}

// ------------------------------------------------------

func TestCreateAppointmentSuccess(t *testing.T) {
	repo := newStubRepo()
	uc := newCreateUC(repo)

	out, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	ap := out.Appointment
	assert.Equal(t, testDate, ap.Date)
	assert.Equal(t, "09:00", ap.Time)
	assert.Equal(t, "scheduled", ap.Status)

	// desnormalização na criação
	assert.Equal(t, "Corte", ap.ServiceName)
	assert.Equal(t, 30, ap.DurationMin)
	assert.Equal(t, "João Pereira", ap.ClientName)

	// sem preço não há sinal
	assert.Nil(t, out.Deposit)
}

func TestCreateAppointmentBarberNotFound(t *testing.T) {
	repo := newStubRepo()
	uc := newCreateUC(repo)

	in := validInput()
	in.BarberID = 99

	_, err := uc.Execute(context.Background(), in)
	assertBusiness(t, err, "barber_not_found")
}

func TestCreateAppointmentServiceNotFound(t *testing.T) {
	repo := newStubRepo()
	uc := newCreateUC(repo)

	in := validInput()
	in.ServiceID = 99

	_, err := uc.Execute(context.Background(), in)
	assertBusiness(t, err, "service_not_found")
}

func TestCreateAppointmentPastDate(t *testing.T) {
	repo := newStubRepo()
	uc := newCreateUC(repo)

	in := validInput()
	in.Date = "2020-09-07"

	_, err := uc.Execute(context.Background(), in)
	assertBusiness(t, err, "date_in_past")
}

func TestCreateAppointmentInvalidContact(t *testing.T) {
	repo := newStubRepo()
	uc := newCreateUC(repo)

	in := validInput()
	in.ClientContact = "123"

	_, err := uc.Execute(context.Background(), in)
	assertBusiness(t, err, "invalid_contact")
}

func TestCreateAppointmentSlotUnavailable(t *testing.T) {
	repo := newStubRepo()
	repo.existing = []availability.AppointmentSpan{
		{Time: "09:00", DurationMin: 30, ClientName: "Outro"},
	}
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), validInput())
	assertBusiness(t, err, "slot_unavailable")
}

func TestCreateAppointmentDuringBreak(t *testing.T) {
	repo := newStubRepo()
	uc := newCreateUC(repo)

	in := validInput()
	in.Time = "12:15"

	_, err := uc.Execute(context.Background(), in)
	assertBusiness(t, err, "slot_unavailable")
}

func TestCreateAppointmentClosedDay(t *testing.T) {
	repo := newStubRepo()
	uc := newCreateUC(repo)

	in := validInput()
	in.Date = "2030-09-01" // domingo

	_, err := uc.Execute(context.Background(), in)
	assertBusiness(t, err, "slot_unavailable")
}

func TestCreateAppointmentConflictRecheck(t *testing.T) {
	repo := newStubRepo()
	repo.conflictErr = httperr.ErrBusiness("time_conflict")
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), validInput())
	assertBusiness(t, err, "time_conflict")
	assert.Empty(t, repo.created)
}

func TestCreateAppointmentMalformedTime(t *testing.T) {
	repo := newStubRepo()
	uc := newCreateUC(repo)

	in := validInput()
	in.Time = "9h30"

	_, err := uc.Execute(context.Background(), in)
	assertBusiness(t, err, "malformed_time")
}
