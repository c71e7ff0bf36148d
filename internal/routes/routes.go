package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/cache"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
	ucSchedule "github.com/BruksfildServices01/barber-booking/internal/usecase/schedule"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	availabilityCache *cache.Availability,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	slotRepo := infraRepo.NewSlotGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifier := notify.NewLogNotifier()

	// ======================================================
	// 🧠 USE CASES — BOOKING
	// ======================================================
	searchAvailabilityUC := ucBooking.NewSearchAvailability(
		slotRepo,
		availabilityCache,
	)

	bookUC := ucBooking.NewBook(
		slotRepo,
		auditDispatcher,
		notifier,
		availabilityCache,
	)

	cancelUC := ucBooking.NewCancel(
		slotRepo,
		auditDispatcher,
		notifier,
		availabilityCache,
	)

	// ======================================================
	// 🧠 USE CASES — SCHEDULE
	// ======================================================
	addSlotsUC := ucSchedule.NewAddSlots(
		slotRepo,
		auditDispatcher,
		availabilityCache,
	)

	removeSlotsUC := ucSchedule.NewRemoveSlots(
		slotRepo,
		auditDispatcher,
		availabilityCache,
	)

	bulkGenerateUC := ucSchedule.NewBulkGenerate(addSlotsUC)

	listAppointmentsUC := ucSchedule.NewListAppointments(slotRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	availabilityHandler := handlers.NewAvailabilityHandler(
		searchAvailabilityUC,
		slotRepo,
	)

	bookingHandler := handlers.NewBookingHandler(bookUC, cancelUC)

	scheduleHandler := handlers.NewScheduleHandler(
		slotRepo,
		addSlotsUC,
		removeSlotsUC,
		bulkGenerateUC,
		listAppointmentsUC,
		cancelUC,
	)

	adminHandler := handlers.NewAdminHandler(db, auditDispatcher)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbers", availabilityHandler.ListBarbers)
			publicAPI.GET("/services", availabilityHandler.ListServices)
			publicAPI.GET("/availability", availabilityHandler.Availability)

			// link de cancelamento por e-mail: o ref é a prova
			publicAPI.DELETE("/bookings/:ref", bookingHandler.CancelByRef)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 CLIENTE
		// ------------------------------
		customer := api.Group("/bookings")
		customer.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleCustomer))
		{
			customer.POST("", bookingHandler.Create)
			customer.DELETE("/:ref", bookingHandler.CancelMine)
		}

		// ------------------------------
		// 🔐 BARBEIRO
		// ------------------------------
		barber := api.Group("/me")
		barber.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleBarber))
		{
			barber.GET("/slots", scheduleHandler.GetSlots)
			barber.POST("/slots", scheduleHandler.AddSlots)
			barber.DELETE("/slots", scheduleHandler.RemoveSlots)
			barber.POST("/slots/bulk", scheduleHandler.BulkGenerate)

			barber.GET("/appointments", scheduleHandler.ListAppointments)
			barber.DELETE("/appointments/:ref", scheduleHandler.CancelAppointment)
		}

		// ------------------------------
		// 🔐 ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/barbers", adminHandler.ListBarbers)
			admin.POST("/barbers", adminHandler.CreateBarber)
			admin.DELETE("/barbers/:id", adminHandler.DeleteBarber)

			admin.POST("/services", adminHandler.CreateService)
		}
	}
}
