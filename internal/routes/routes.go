package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberian/barberian-api/internal/audit"
	"github.com/barberian/barberian-api/internal/handlers"
)

const APIVersion = "2.0.0"

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// HANDLERS
	// ======================================================
	roleHandler := handlers.NewRoleHandler(db, auditDispatcher)
	genreHandler := handlers.NewGenreHandler(db, auditDispatcher)
	departmentHandler := handlers.NewDepartmentHandler(db, auditDispatcher)
	cityHandler := handlers.NewCityHandler(db, auditDispatcher)
	authProviderHandler := handlers.NewAuthProviderHandler(db, auditDispatcher)
	userHandler := handlers.NewUserHandler(db, auditDispatcher)
	customerHandler := handlers.NewCustomerHandler(db, auditDispatcher)
	specialtyHandler := handlers.NewSpecialtyHandler(db, auditDispatcher)
	scheduleHandler := handlers.NewBarberScheduleHandler(db, auditDispatcher)
	barberHandler := handlers.NewBarberHandler(db, auditDispatcher)
	staffHandler := handlers.NewStaffHandler(db, auditDispatcher)
	barbershopHandler := handlers.NewBarbershopHandler(db, auditDispatcher)
	locationHandler := handlers.NewLocationHandler(db, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(db, auditDispatcher)
	statsHandler := handlers.NewStatsHandler(db)
	activityHandler := handlers.NewActivityHandler(db)

	// ======================================================
	// LIVENESS / INFO
	// ======================================================
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Barberian DB API v2.0"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": APIVersion})
	})

	r.GET("/stats", statsHandler.Get)

	// ======================================================
	// RESOURCES
	// ======================================================
	roles := r.Group("/roles")
	{
		roles.POST("/", roleHandler.Create)
		roles.GET("/", roleHandler.List)
	}

	genres := r.Group("/genres")
	{
		genres.POST("/", genreHandler.Create)
		genres.GET("/", genreHandler.List)
	}

	departments := r.Group("/departments")
	{
		departments.POST("/", departmentHandler.Create)
		departments.GET("/", departmentHandler.List)
	}

	cities := r.Group("/cities")
	{
		cities.POST("/", cityHandler.Create)
		cities.GET("/", cityHandler.List)
		cities.GET("/by-department/:department_id", cityHandler.ListByDepartment)
	}

	authProviders := r.Group("/auth-providers")
	{
		authProviders.POST("/", authProviderHandler.Create)
		authProviders.GET("/", authProviderHandler.List)
	}

	users := r.Group("/users")
	{
		users.POST("/", userHandler.Create)
		users.GET("/", userHandler.List)
		users.GET("/:id", userHandler.Get)
	}

	customers := r.Group("/customers")
	{
		customers.POST("/", customerHandler.Create)
		customers.GET("/", customerHandler.List)
		customers.GET("/:id", customerHandler.Get)
	}

	specialties := r.Group("/specialties")
	{
		specialties.POST("/", specialtyHandler.Create)
		specialties.GET("/", specialtyHandler.List)
	}

	schedules := r.Group("/barber-schedules")
	{
		schedules.POST("/", scheduleHandler.Create)
		schedules.GET("/", scheduleHandler.List)
	}

	barbers := r.Group("/barbers")
	{
		barbers.POST("/", barberHandler.Create)
		barbers.GET("/", barberHandler.List)
		barbers.GET("/:id", barberHandler.Get)
		barbers.GET("/by-city/:city_id", barberHandler.ListByCity)
	}

	staff := r.Group("/staff")
	{
		staff.POST("/", staffHandler.Create)
		staff.GET("/", staffHandler.List)
		staff.GET("/:id", staffHandler.Get)
		staff.GET("/by-barber/:barber_id", staffHandler.GetByBarber)
		staff.DELETE("/:id", staffHandler.Delete)
	}

	barbershops := r.Group("/barbershops")
	{
		barbershops.POST("/", barbershopHandler.Create)
		barbershops.GET("/", barbershopHandler.List)
	}

	locations := r.Group("/locations")
	{
		locations.POST("/", locationHandler.Create)
		locations.GET("/", locationHandler.List)
	}

	appointments := r.Group("/appointments")
	{
		appointments.POST("/", appointmentHandler.Create)
		appointments.GET("/", appointmentHandler.List)
		appointments.GET("/:id", appointmentHandler.Get)
		appointments.GET("/by-customer/:customer_id", appointmentHandler.ListByCustomer)
		appointments.GET("/by-barber/:barber_id", appointmentHandler.ListByBarber)
		appointments.PATCH("/:id/status", appointmentHandler.UpdateStatus)
	}

	activity := r.Group("/activity")
	{
		activity.GET("/", activityHandler.List)
	}
}
