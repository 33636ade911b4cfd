package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/classiccuts/booking-api/internal/domain/schedule"
	"github.com/classiccuts/booking-api/internal/httperr"
	"github.com/classiccuts/booking-api/internal/middleware"
	"github.com/classiccuts/booking-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type WorkScheduleHandler struct {
	db *gorm.DB
}

func NewWorkScheduleHandler(db *gorm.DB) *WorkScheduleHandler {
	return &WorkScheduleHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type WorkScheduleDayRequest struct {
	Weekday    string  `json:"weekday" binding:"required"`
	Active     bool    `json:"active"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	BreakStart *string `json:"break_start"`
	BreakEnd   *string `json:"break_end"`
}

type PutWorkScheduleRequest struct {
	Days []WorkScheduleDayRequest `json:"days" binding:"required"`
}

// ======================================================
// GET /me/schedule
// ======================================================

func (h *WorkScheduleHandler) Get(c *gin.Context) {
	barberID, ok := middleware.BarberIDFrom(c)
	if !ok {
		httperr.Forbidden(c, "not_a_barber", "Usuário sem agenda.")
		return
	}

	var days []models.WorkScheduleDay
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("id ASC").
		Find(&days).Error; err != nil {
		httperr.Internal(c, "failed_to_load_schedule", "Erro ao carregar a grade de horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}

// ======================================================
// PUT /me/schedule
// ======================================================

// Put substitui a grade inteira do barbeiro de uma vez. Mandar a semana
// completa evita estados intermediários entre dois saves parciais.
func (h *WorkScheduleHandler) Put(c *gin.Context) {
	barberID, ok := middleware.BarberIDFrom(c)
	if !ok {
		httperr.Forbidden(c, "not_a_barber", "Usuário sem agenda.")
		return
	}

	var req PutWorkScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	seen := map[string]bool{}
	rows := make([]models.WorkScheduleDay, 0, len(req.Days))

	for _, day := range req.Days {
		if !schedule.Weekday(day.Weekday).IsValid() {
			httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido: "+day.Weekday)
			return
		}
		if seen[day.Weekday] {
			httperr.BadRequest(c, "duplicated_weekday", "Dia repetido: "+day.Weekday)
			return
		}
		seen[day.Weekday] = true

		row := models.WorkScheduleDay{
			BarberID: barberID,
			Weekday:  day.Weekday,
			Active:   day.Active,
		}

		if day.Active {
			if err := validateDayTimes(day); err != nil {
				code, _ := httperr.BusinessCode(err)
				httperr.BadRequest(c, code, "Horários inválidos para "+day.Weekday+".")
				return
			}
			row.StartTime = day.StartTime
			row.EndTime = day.EndTime
			if day.BreakStart != nil {
				row.BreakStart = *day.BreakStart
			}
			if day.BreakEnd != nil {
				row.BreakEnd = *day.BreakEnd
			}
		}

		rows = append(rows, row)
	}

	// troca atômica: apaga a grade antiga e grava a nova
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ?", barberID).
			Delete(&models.WorkScheduleDay{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_schedule", "Erro ao salvar a grade de horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": rows})
}

func validateDayTimes(day WorkScheduleDayRequest) error {
	start, err := schedule.ParseClock(day.StartTime)
	if err != nil {
		return err
	}
	end, err := schedule.ParseClock(day.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return httperr.ErrBusiness("start_after_end")
	}

	hasBreakStart := day.BreakStart != nil && *day.BreakStart != ""
	hasBreakEnd := day.BreakEnd != nil && *day.BreakEnd != ""
	if hasBreakStart != hasBreakEnd {
		return httperr.ErrBusiness("incomplete_break")
	}
	if !hasBreakStart {
		return nil
	}

	bs, err := schedule.ParseClock(*day.BreakStart)
	if err != nil {
		return err
	}
	be, err := schedule.ParseClock(*day.BreakEnd)
	if err != nil {
		return err
	}
	if bs >= be || bs < start || be > end {
		return httperr.ErrBusiness("break_outside_window")
	}

	return nil
}
