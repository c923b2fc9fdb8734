package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
	"github.com/BruksfildServices01/agenda-pro/internal/audit"
	"github.com/BruksfildServices01/agenda-pro/internal/auth"
	"github.com/BruksfildServices01/agenda-pro/internal/config"
	"github.com/BruksfildServices01/agenda-pro/internal/events"
	"github.com/BruksfildServices01/agenda-pro/internal/handlers"
	"github.com/BruksfildServices01/agenda-pro/internal/infra/notify"
	infraRepo "github.com/BruksfildServices01/agenda-pro/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-pro/internal/infra/session"
	"github.com/BruksfildServices01/agenda-pro/internal/metrics"
	"github.com/BruksfildServices01/agenda-pro/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/agenda-pro/internal/usecase/appointment"
	ucCapacity "github.com/BruksfildServices01/agenda-pro/internal/usecase/capacity"
	ucCommission "github.com/BruksfildServices01/agenda-pro/internal/usecase/commission"
)

// RegisterRoutes monta a API e devolve a função que drena as filas
// assíncronas (auditoria e eventos) no shutdown.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger *zap.Logger,
	m *metrics.Metrics,
) (shutdown func()) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	commissionRepo := infraRepo.NewCommissionGormRepository(db)
	capacityRepo := infraRepo.NewCapacityGormRepository(db)

	revoker := session.NewRedisRevoker(rdb, auth.TokenTTL)
	sink := notify.NewRedisSink(rdb, cfg.EventsRecentLimit)

	auditStore := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditStore, logger.Named("audit"))
	eventDispatcher := events.NewDispatcher(sink, logger.Named("events"), 0)

	// ======================================================
	// 🧠 USE CASES: APPOINTMENTS
	// ======================================================
	resolveSlotsUC := ucAppointment.NewResolveSlots(appointmentRepo)
	bookedTimesUC := ucAppointment.NewBookedTimes(appointmentRepo)
	availabilityUC := ucAppointment.NewGetAvailability(resolveSlotsUC, bookedTimesUC)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		resolveSlotsUC,
		auditDispatcher,
		eventDispatcher,
		m,
	)

	transitionUC := ucAppointment.NewTransitionAppointment(
		appointmentRepo,
		auditDispatcher,
		eventDispatcher,
		m,
	)

	cancelByClientUC := ucAppointment.NewCancelByClient(appointmentRepo, transitionUC)
	lookupUC := ucAppointment.NewListClientAppointments(appointmentRepo)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)
	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(appointmentRepo)

	setOverrideUC := ucAppointment.NewSetOverride(appointmentRepo, auditDispatcher)
	deleteOverrideUC := ucAppointment.NewDeleteOverride(appointmentRepo, auditDispatcher)

	// ======================================================
	// 🧠 USE CASES: COMMISSION / CAPACITY
	// ======================================================
	performanceUC := ucCommission.NewGetProfessionalPerformance(commissionRepo)
	dashboardUC := ucCommission.NewGetTenantDashboardTotals(commissionRepo)

	enforcePlanUC := ucCapacity.NewEnforcePlan(
		capacityRepo,
		revoker,
		auditDispatcher,
		eventDispatcher,
		m,
		logger.Named("capacity"),
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, revoker, logger)
	meHandler := handlers.NewMeHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditStore, appointmentRepo)

	appointmentHandler := handlers.NewAppointmentHandler(
		availabilityUC,
		createAppointmentUC,
		transitionUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)

	publicHandler := handlers.NewPublicHandler(
		appointmentRepo,
		availabilityUC,
		createAppointmentUC,
		cancelByClientUC,
		lookupUC,
	)

	professionalHandler := handlers.NewProfessionalHandler(setOverrideUC, deleteOverrideUC, performanceUC)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC, sink)
	planHandler := handlers.NewPlanHandler(enforcePlanUC)

	rateLimiter := middleware.NewRateLimiter(cfg.PublicRateLimitPerMin, cfg.PublicRateLimitBurst, logger)

	staffOnly := middleware.RequireRoles(access.RoleOwner, access.RoleStaff)
	ownerOnly := middleware.RequireRoles(access.RoleOwner)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(rateLimiter.Limit())
		{
			publicAPI.GET("/:slug", publicHandler.Catalog)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
			publicAPI.POST("/:slug/appointments/lookup", publicHandler.Lookup)
			publicAPI.POST("/:slug/appointments/:id/cancel", publicHandler.Cancel)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", rateLimiter.Limit(), authHandler.Login)

		// ------------------------------
		// 🔧 INTERNO (billing)
		// ------------------------------
		api.POST("/internal/tenants/:id/plan", middleware.InternalToken(cfg.InternalAPIToken), planHandler.Change)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg, revoker, logger))
		{
			secured.GET("", meHandler.GetMe)

			secured.GET("/clients", staffOnly, clientHandler.List)

			secured.GET("/availability", appointmentHandler.Availability)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

			// ------------------------------
			// PROFESSIONALS
			// ------------------------------
			secured.PUT("/professionals/:id/overrides/:date", professionalHandler.PutOverride)
			secured.DELETE("/professionals/:id/overrides/:date", professionalHandler.DeleteOverride)
			secured.GET("/professionals/:id/performance", professionalHandler.Performance)

			// ------------------------------
			// DASHBOARD / PLANO
			// ------------------------------
			secured.GET("/dashboard", staffOnly, dashboardHandler.Totals)
			secured.GET("/notifications/recent", dashboardHandler.RecentNotifications)
			secured.POST("/plan", ownerOnly, planHandler.Change)

			secured.GET("/audit-logs", staffOnly, auditLogsHandler.List)
		}
	}

	return func() {
		auditDispatcher.Close()
		eventDispatcher.Close()
	}
}
