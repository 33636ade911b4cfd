package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/classiccuts/booking-api/internal/audit"
	"github.com/classiccuts/booking-api/internal/config"
	"github.com/classiccuts/booking-api/internal/handlers"
	"github.com/classiccuts/booking-api/internal/infra/payment"
	infraRepo "github.com/classiccuts/booking-api/internal/infra/repository"
	"github.com/classiccuts/booking-api/internal/infra/storage"
	"github.com/classiccuts/booking-api/internal/middleware"
	"github.com/classiccuts/booking-api/internal/snapshot"
	ucAgenda "github.com/classiccuts/booking-api/internal/usecase/agenda"
	ucAvailability "github.com/classiccuts/booking-api/internal/usecase/availability"
	ucBooking "github.com/classiccuts/booking-api/internal/usecase/booking"
)

// RegisterRoutes monta toda a árvore de rotas e devolve a fonte de snapshots,
// para o main iniciar a escuta de invalidações redis.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
) *snapshot.Source {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	snapSource := snapshot.NewSource(bookingRepo, rdb, log)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	var uploader *storage.Uploader
	if cfg.PhotoUploadEnabled() {
		uploader = storage.NewUploader(cfg)
	}

	var payments *payment.MercadoPagoClient
	if cfg.DepositEnabled && cfg.MercadoPagoToken != "" {
		client, err := payment.NewMercadoPagoClient(cfg.MercadoPagoToken)
		if err != nil {
			log.Warn("mercado pago indisponível, sinal desligado", zap.Error(err))
		} else {
			payments = client
		}
	}

	// ======================================================
	// USE CASES
	// ======================================================
	bookableStartsUC := ucAvailability.NewGetBookableStarts(bookingRepo, snapSource)
	dayTimelineUC := ucAvailability.NewGetDayTimeline(bookingRepo, snapSource)

	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		snapSource,
		auditDispatcher,
		payments,
		log,
	)
	cancelAppointmentUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		snapSource,
		auditDispatcher,
	)
	completeAppointmentUC := ucBooking.NewCompleteAppointment(
		bookingRepo,
		auditDispatcher,
	)

	createBlockUC := ucAgenda.NewCreateBlock(bookingRepo, snapSource, auditDispatcher)
	removeBlockUC := ucAgenda.NewRemoveBlock(bookingRepo, snapSource, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	publicHandler := handlers.NewPublicHandler(db, bookableStartsUC, createAppointmentUC)

	agendaHandler := handlers.NewAgendaHandler(
		db,
		dayTimelineUC,
		createBlockUC,
		removeBlockUC,
		cancelAppointmentUC,
		completeAppointmentUC,
	)
	workScheduleHandler := handlers.NewWorkScheduleHandler(db)

	barberHandler := handlers.NewBarberHandler(db, uploader, log)
	serviceHandler := handlers.NewServiceHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICA (vitrine de agendamento)
		// ------------------------------
		public := api.Group("/public")
		{
			public.GET("/barbers", publicHandler.ListBarbers)
			public.GET("/services", publicHandler.ListServices)
			public.GET("/barbers/:id/availability", publicHandler.Availability)
			public.POST("/barbers/:id/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVADA (barbeiro logado)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/agenda", agendaHandler.Timeline)

			secured.POST("/me/blocks", agendaHandler.CreateBlock)
			secured.DELETE("/me/blocks/:id", agendaHandler.RemoveBlock)

			secured.GET("/me/appointments", agendaHandler.ListByDate)
			secured.GET("/me/appointments/month", agendaHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/cancel", agendaHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", agendaHandler.Complete)

			secured.GET("/me/schedule", workScheduleHandler.Get)
			secured.PUT("/me/schedule", workScheduleHandler.Put)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole("admin"))
			{
				admin.GET("/barbers", barberHandler.List)
				admin.POST("/barbers", barberHandler.Create)
				admin.PATCH("/barbers/:id", barberHandler.Update)
				admin.DELETE("/barbers/:id", barberHandler.Delete)
				admin.POST("/barbers/:id/photo", barberHandler.UploadPhoto)

				admin.GET("/services", serviceHandler.List)
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}

	return snapSource
}
