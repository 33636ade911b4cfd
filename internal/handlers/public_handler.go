package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/classiccuts/booking-api/internal/httperr"
	"github.com/classiccuts/booking-api/internal/httpresp"
	"github.com/classiccuts/booking-api/internal/models"
	ucAvailability "github.com/classiccuts/booking-api/internal/usecase/availability"
	ucBooking "github.com/classiccuts/booking-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db             *gorm.DB
	bookableStarts *ucAvailability.GetBookableStarts
	createBooking  *ucBooking.CreateAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	bookableStarts *ucAvailability.GetBookableStarts,
	createBooking *ucBooking.CreateAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		bookableStarts: bookableStarts,
		createBooking:  createBooking,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ServiceID     uint   `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:mm
	ClientName    string `json:"client_name" binding:"required"`
	ClientContact string `json:"client_contact" binding:"required"`
}

////////////////////////////////////////////////////////
// BARBERS / SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("name ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = true").
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")
	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	starts, err := h.bookableStarts.Execute(
		c.Request.Context(),
		ucAvailability.BookableStartsInput{
			BarberID:  uint(barberID),
			ServiceID: uint(serviceID),
			Date:      dateStr,
		},
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "barber_not_found"):
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.BadRequest(c, "service_not_found", "Serviço inválido.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
		default:
			httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": starts,
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.createBooking.Execute(
		c.Request.Context(),
		ucBooking.CreateAppointmentInput{
			BarberID:      uint(barberID),
			ServiceID:     req.ServiceID,
			Date:          req.Date,
			Time:          req.Time,
			ClientName:    req.ClientName,
			ClientContact: req.ClientContact,
		},
	)

	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.Created(c, out)
}

func mapBookingErrors(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "failed_to_create_appointment", "Não foi possível agendar.")
		return
	}

	switch code {
	case "barber_not_found":
		httperr.NotFound(c, code, "Barbeiro não encontrado.")
	case "service_not_found":
		httperr.BadRequest(c, code, "Serviço inválido.")
	case "invalid_date", "malformed_time":
		httperr.BadRequest(c, code, "Data ou hora inválida.")
	case "date_in_past":
		httperr.BadRequest(c, code, "Esse horário já passou.")
	case "invalid_contact":
		httperr.BadRequest(c, code, "Contato inválido.")
	case "slot_unavailable", "time_conflict":
		httperr.Conflict(c, code, "Horário indisponível. Escolha outro.")
	default:
		httperr.BadRequest(c, code, "Não foi possível agendar.")
	}
}
