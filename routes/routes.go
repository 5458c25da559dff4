package routes

import (
	"os"
	"strings"

	"pawpro-backend/config"
	"pawpro-backend/controllers"
	"pawpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)

			customers.POST("/:id/pets", controllers.CreatePet)
			customers.GET("/:id/pets", controllers.GetPets)
		}

		// Pet routes
		pets := api.Group("/pets")
		{
			pets.GET("/:id", controllers.GetPet)
			pets.PUT("/:id", controllers.UpdatePet)
			pets.DELETE("/:id", controllers.DeletePet)
		}

		// Service routes
		services := api.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)

			services.POST("/:id/tiers", controllers.CreatePriceTier)
			services.GET("/:id/tiers", controllers.GetPriceTiers)
			services.PUT("/:id/tiers/:tierId", controllers.UpdatePriceTier)
			services.DELETE("/:id/tiers/:tierId", controllers.DeletePriceTier)

			services.POST("/:id/addons", controllers.CreateAddon)
			services.GET("/:id/addons", controllers.GetAddons)
			services.PUT("/:id/addons/:addonId", controllers.UpdateAddon)
			services.DELETE("/:id/addons/:addonId", controllers.DeleteAddon)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", controllers.CreateAppointment)
			appointments.POST("/quote", controllers.QuoteAppointment)
			appointments.GET("", controllers.GetAppointments)
			appointments.GET("/:id", controllers.GetAppointment)
			appointments.PUT("/:id", controllers.UpdateAppointment)
			appointments.POST("/:id/cancel", controllers.CancelAppointment)
			appointments.DELETE("/:id", controllers.DeleteAppointment)
			appointments.GET("/:id/confirmation", controllers.GetConfirmationMessage)
		}

		// Reminder routes
		reminders := api.Group("/reminders")
		{
			reminders.POST("/templates", controllers.CreateReminderTemplate)
			reminders.GET("/templates", controllers.GetReminderTemplates)
			reminders.PUT("/templates/:id", controllers.UpdateReminderTemplate)
			reminders.GET("/logs", controllers.GetReminderLogs)
		}

		// Reports routes
		reportController := controllers.ReportController{}
		api.GET("/reports", reportController.GetReportAnalytics)

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Settings routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("/update-business", controllers.UpdateBusinessProfile)
			profile.PUT("/update-hours", controllers.UpdateWorkingHours)
			profile.PUT("/update-notifications", controllers.UpdateNotifications)
		}

		// Team routes
		team := api.Group("/team")
		{
			team.GET("", controllers.GetTeamMembers)
			team.POST("", controllers.AddTeamMember)
			team.PUT("/:id", controllers.UpdateTeamMember)
			team.DELETE("/:id", controllers.RemoveTeamMember)
		}
	}

	return r
}
