package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/sharpcutlabs/barbershop-api/internal/audit"
	"github.com/sharpcutlabs/barbershop-api/internal/config"
	"github.com/sharpcutlabs/barbershop-api/internal/handlers"
	infraRepo "github.com/sharpcutlabs/barbershop-api/internal/infra/repository"
	"github.com/sharpcutlabs/barbershop-api/internal/middleware"
	"github.com/sharpcutlabs/barbershop-api/internal/models"
	"github.com/sharpcutlabs/barbershop-api/internal/timeutil"
	ucAppointment "github.com/sharpcutlabs/barbershop-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	loc := timeutil.Location(cfg.Timezone)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		scheduleRepo,
		auditDispatcher,
		loc,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		scheduleRepo,
		auditDispatcher,
		loc,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	getAppointmentsUC := ucAppointment.NewGetAppointments(scheduleRepo)

	availabilityUC := ucAppointment.NewGetAvailability(scheduleRepo, loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	barberHandler := handlers.NewBarberHandler(db, availabilityUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		getAppointmentsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		authRoutes := api.Group("/auth")
		// 1 req/s por IP com rajada de 10
		authRoutes.Use(middleware.RateLimitMiddleware(rate.Every(time.Second), 10))
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		// ------------------------------
		// PÚBLICO
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.GetOne)

		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id", barberHandler.GetOne)
		api.GET("/barbers/:id/availability", barberHandler.Availability)

		// ------------------------------
		// AUTENTICADO
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			admin := middleware.RequireRoles(models.RoleAdmin)
			adminOrBarber := middleware.RequireRoles(models.RoleAdmin, models.RoleBarber)

			// USERS
			secured.POST("/users", admin, userHandler.Create)
			secured.GET("/users", admin, userHandler.List)
			secured.GET("/users/:id", userHandler.GetOne)
			secured.PUT("/users/:id", userHandler.Update)
			secured.DELETE("/users/:id", admin, userHandler.Delete)

			// SERVICES
			secured.POST("/services", admin, serviceHandler.Create)
			secured.PUT("/services/:id", admin, serviceHandler.Update)
			secured.DELETE("/services/:id", admin, serviceHandler.Delete)

			// BARBERS
			secured.POST("/barbers", admin, barberHandler.Create)
			secured.PUT("/barbers/:id", adminOrBarber, barberHandler.Update)
			secured.DELETE("/barbers/:id", admin, barberHandler.Delete)

			// APPOINTMENTS
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.GetOne)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// AUDIT
			secured.GET("/audit-logs", admin, auditLogsHandler.List)
		}
	}
}
