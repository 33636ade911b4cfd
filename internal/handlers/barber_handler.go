package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/classiccuts/booking-api/internal/httperr"
	"github.com/classiccuts/booking-api/internal/httpresp"
	"github.com/classiccuts/booking-api/internal/infra/storage"
	"github.com/classiccuts/booking-api/internal/models"
)

// ======================================================
// HANDLER (ADMIN)
// ======================================================

// BarberHandler é a gestão de barbeiros do painel admin. O uploader pode ser
// nil quando o bucket não está configurado; aí a troca de foto fica desligada.
type BarberHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
	log      *zap.Logger
}

func NewBarberHandler(db *gorm.DB, uploader *storage.Uploader, log *zap.Logger) *BarberHandler {
	return &BarberHandler{db: db, uploader: uploader, log: log}
}

type CreateBarberRequest struct {
	Name  string `json:"name" binding:"required"`
	About string `json:"about"`
}

type UpdateBarberRequest struct {
	Name  *string `json:"name"`
	About *string `json:"about"`
}

// ======================================================
// CRUD
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("name ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}
	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	barber := models.Barber{
		Name:  req.Name,
		About: req.About,
	}
	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	httpresp.Created(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	barber, ok := h.loadBarber(c)
	if !ok {
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.About != nil {
		barber.About = *req.About
	}

	if err := h.db.Save(barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	c.JSON(http.StatusOK, barber)
}

// Delete remove o barbeiro e o login dele. A agenda histórica fica.
func (h *BarberHandler) Delete(c *gin.Context) {
	barber, ok := h.loadBarber(c)
	if !ok {
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ?", barber.ID).
			Delete(&models.User{}).Error; err != nil {
			return err
		}
		if err := tx.
			Where("barber_id = ?", barber.ID).
			Delete(&models.WorkScheduleDay{}).Error; err != nil {
			return err
		}
		return tx.Delete(barber).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao remover barbeiro.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// PHOTO
// ======================================================

func (h *BarberHandler) UploadPhoto(c *gin.Context) {
	if h.uploader == nil {
		httperr.BadRequest(c, "photo_upload_disabled", "Upload de foto não está configurado.")
		return
	}

	barber, ok := h.loadBarber(c)
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Envie a foto no campo 'photo'.")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadBarberPhoto(c.Request.Context(), barber.ID, file)
	if err != nil {
		h.log.Error("upload de foto falhou",
			zap.Uint("barber_id", barber.ID),
			zap.Error(err),
		)
		httperr.Internal(c, "failed_to_upload_photo", "Erro ao enviar a foto.")
		return
	}

	barber.ImageURL = url
	if err := h.db.Save(barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao salvar a foto.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

// ------------------------------------------------------

func (h *BarberHandler) loadBarber(c *gin.Context) (*models.Barber, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return nil, false
	}

	var barber models.Barber
	if err := h.db.First(&barber, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return nil, false
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return nil, false
	}

	return &barber, true
}
