package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/classiccuts/booking-api/internal/dto"
	"github.com/classiccuts/booking-api/internal/httperr"
	"github.com/classiccuts/booking-api/internal/httpresp"
	"github.com/classiccuts/booking-api/internal/middleware"
	"github.com/classiccuts/booking-api/internal/models"
	ucAgenda "github.com/classiccuts/booking-api/internal/usecase/agenda"
	ucAvailability "github.com/classiccuts/booking-api/internal/usecase/availability"
	ucBooking "github.com/classiccuts/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// AgendaHandler atende a área logada do barbeiro: a própria agenda do dia,
// bloqueios e mudanças de estado dos agendamentos.
type AgendaHandler struct {
	db          *gorm.DB
	dayTimeline *ucAvailability.GetDayTimeline
	createBlock *ucAgenda.CreateBlock
	removeBlock *ucAgenda.RemoveBlock
	cancel      *ucBooking.CancelAppointment
	complete    *ucBooking.CompleteAppointment
}

func NewAgendaHandler(
	db *gorm.DB,
	dayTimeline *ucAvailability.GetDayTimeline,
	createBlock *ucAgenda.CreateBlock,
	removeBlock *ucAgenda.RemoveBlock,
	cancel *ucBooking.CancelAppointment,
	complete *ucBooking.CompleteAppointment,
) *AgendaHandler {
	return &AgendaHandler{
		db:          db,
		dayTimeline: dayTimeline,
		createBlock: createBlock,
		removeBlock: removeBlock,
		cancel:      cancel,
		complete:    complete,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBlockRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:mm
}

// ======================================================
// TIMELINE
// ======================================================

func (h *AgendaHandler) Timeline(c *gin.Context) {
	barberID, ok := middleware.BarberIDFrom(c)
	if !ok {
		httperr.Forbidden(c, "not_a_barber", "Usuário sem agenda.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	slots, err := h.dayTimeline.Execute(
		c.Request.Context(),
		ucAvailability.DayTimelineInput{
			BarberID: barberID,
			Date:     dateStr,
		},
	)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		httperr.Internal(c, "timeline_failed", "Erro ao montar a agenda.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// BLOCKS
// ======================================================

func (h *AgendaHandler) CreateBlock(c *gin.Context) {
	barberID, ok := middleware.BarberIDFrom(c)
	if !ok {
		httperr.Forbidden(c, "not_a_barber", "Usuário sem agenda.")
		return
	}
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	block, err := h.createBlock.Execute(
		c.Request.Context(),
		ucAgenda.CreateBlockInput{
			BarberID: barberID,
			UserID:   userID,
			Date:     req.Date,
			Time:     req.Time,
		},
	)
	if err != nil {
		code, ok := httperr.BusinessCode(err)
		if !ok {
			httperr.Internal(c, "failed_to_block", "Erro ao bloquear horário.")
			return
		}
		switch code {
		case "closed_day":
			httperr.BadRequest(c, code, "Dia sem expediente.")
		case "slot_not_free":
			httperr.Conflict(c, code, "Esse horário não está livre.")
		default:
			httperr.BadRequest(c, code, "Dados inválidos.")
		}
		return
	}

	httpresp.Created(c, block)
}

func (h *AgendaHandler) RemoveBlock(c *gin.Context) {
	barberID, ok := middleware.BarberIDFrom(c)
	if !ok {
		httperr.Forbidden(c, "not_a_barber", "Usuário sem agenda.")
		return
	}
	userID := c.MustGet(middleware.ContextUserID).(uint)

	blockID := c.Param("id")

	if err := h.removeBlock.Execute(
		c.Request.Context(),
		barberID,
		userID,
		blockID,
	); err != nil {
		if httperr.IsBusiness(err, "block_not_found") {
			httperr.NotFound(c, "block_not_found", "Bloqueio não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_unblock", "Erro ao desbloquear horário.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// APPOINTMENTS (LIST / CANCEL / COMPLETE)
// ======================================================

func (h *AgendaHandler) ListByDate(c *gin.Context) {
	barberID, ok := middleware.BarberIDFrom(c)
	if !ok {
		httperr.Forbidden(c, "not_a_barber", "Usuário sem agenda.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	var aps []models.Appointment
	h.db.
		Where("barber_id = ? AND date = ?", barberID, dateStr).
		Order("time ASC").
		Find(&aps)

	httpresp.List(c, dto.AppointmentList(aps))
}

// ListByMonth alimenta o calendário e os gráficos do painel.
func (h *AgendaHandler) ListByMonth(c *gin.Context) {
	barberID, ok := middleware.BarberIDFrom(c)
	if !ok {
		httperr.Forbidden(c, "not_a_barber", "Usuário sem agenda.")
		return
	}

	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	// datas são strings YYYY-MM-DD: o prefixo do mês resolve o intervalo
	prefix := yearStr + "-"
	if month < 10 {
		prefix += "0"
	}
	prefix += strconv.Itoa(month) + "-%"

	var aps []models.Appointment
	h.db.
		Where("barber_id = ? AND date LIKE ?", barberID, prefix).
		Order("date ASC, time ASC").
		Find(&aps)

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": dto.AppointmentList(aps),
	})
}

func (h *AgendaHandler) Cancel(c *gin.Context) {
	h.changeStatus(c, "cancel")
}

func (h *AgendaHandler) Complete(c *gin.Context) {
	h.changeStatus(c, "complete")
}

func (h *AgendaHandler) changeStatus(c *gin.Context, action string) {
	barberID, ok := middleware.BarberIDFrom(c)
	if !ok {
		httperr.Forbidden(c, "not_a_barber", "Usuário sem agenda.")
		return
	}
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Agendamento inválido.")
		return
	}

	var ap *models.Appointment
	switch action {
	case "cancel":
		ap, err = h.cancel.Execute(c.Request.Context(), barberID, userID, uint(id))
	case "complete":
		ap, err = h.complete.Execute(c.Request.Context(), barberID, userID, uint(id))
	}

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Agendamento não está mais ativo.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}
