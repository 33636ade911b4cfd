package booking

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/classiccuts/booking-api/internal/audit"
	domainavail "github.com/classiccuts/booking-api/internal/domain/availability"
	domain "github.com/classiccuts/booking-api/internal/domain/booking"
	"github.com/classiccuts/booking-api/internal/domain/schedule"
	"github.com/classiccuts/booking-api/internal/httperr"
	"github.com/classiccuts/booking-api/internal/infra/payment"
	"github.com/classiccuts/booking-api/internal/models"
	"github.com/classiccuts/booking-api/internal/snapshot"
	"github.com/classiccuts/booking-api/internal/timezone"
	"github.com/classiccuts/booking-api/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateAppointmentInput struct {
	BarberID  uint
	ServiceID uint

	Date string // YYYY-MM-DD
	Time string // HH:MM

	ClientName    string
	ClientContact string
}

type CreateAppointmentOutput struct {
	Appointment *models.Appointment `json:"appointment"`
	Deposit     *payment.Deposit    `json:"deposit,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	snap     *snapshot.Source
	audit    *audit.Dispatcher
	payments *payment.MercadoPagoClient // nil quando sinal desabilitado
	log      *zap.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	snap *snapshot.Source,
	auditDisp *audit.Dispatcher,
	payments *payment.MercadoPagoClient,
	log *zap.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		snap:     snap,
		audit:    auditDisp,
		payments: payments,
		log:      log,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*CreateAppointmentOutput, error) {

	// --------------------------------------------------
	// 1. Barbeiro e serviço
	// --------------------------------------------------
	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 2. Data e hora pedidas
	// --------------------------------------------------
	if _, err := schedule.WeekdayOf(in.Date); err != nil {
		return nil, err
	}

	startMin, err := schedule.ParseClock(in.Time)
	if err != nil {
		return nil, err
	}

	today := timezone.Today()
	if in.Date < today ||
		(in.Date == today && startMin <= timezone.MinuteOfDay()) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	// --------------------------------------------------
	// 3. Cliente
	// --------------------------------------------------
	if !validators.IsContactValid(in.ClientContact) {
		return nil, httperr.ErrBusiness("invalid_contact")
	}

	// --------------------------------------------------
	// 4. O horário pedido está entre os agendáveis?
	//    (expediente, pausa, agendamentos e bloqueios, de uma vez)
	// --------------------------------------------------
	ws, err := uc.repo.GetWorkSchedule(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	day, err := uc.snap.Load(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	starts, err := domainavail.BookableStarts(
		ws,
		in.Date,
		service.DurationMin,
		day.Appointments,
		day.Blocks,
	)
	if err != nil {
		return nil, err
	}

	requested := schedule.FormatClock(startMin)
	available := false
	for _, s := range starts {
		if s == requested {
			available = true
			break
		}
	}
	if !available {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	// --------------------------------------------------
	// 5. Conflito de horário (recheque com lock, contra corrida)
	// --------------------------------------------------
	if err := uc.repo.AssertNoTimeConflict(
		ctx,
		in.BarberID,
		in.Date,
		startMin,
		startMin+service.DurationMin,
	); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Criação do agendamento
	// --------------------------------------------------
	ap := &models.Appointment{
		BarberID:      in.BarberID,
		Date:          in.Date,
		Time:          requested,
		ServiceID:     service.ID,
		ServiceName:   service.Name,
		DurationMin:   service.DurationMin,
		ClientName:    in.ClientName,
		ClientContact: in.ClientContact,
		Status:        string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.snap.NotifyAppointmentsChanged(ctx, in.BarberID, in.Date)

	entityID := strconv.FormatUint(uint64(ap.ID), 10)
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &entityID,
		Metadata: map[string]any{
			"barber": barber.Name,
			"date":   ap.Date,
			"time":   ap.Time,
		},
	})

	out := &CreateAppointmentOutput{Appointment: ap}

	// --------------------------------------------------
	// 7. Sinal opcional
	// --------------------------------------------------
	if uc.payments != nil && service.Price > 0 {
		deposit, err := uc.payments.CreateDeposit(ctx, ap, service)
		if err != nil {
			// reserva fica de pé mesmo sem preferência de pagamento
			uc.log.Warn("falha ao criar preferência de sinal",
				zap.Uint("appointment_id", ap.ID),
				zap.Error(err),
			)
		} else {
			out.Deposit = deposit
		}
	}

	return out, nil
}
