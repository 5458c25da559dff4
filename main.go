package main

import (
	"fmt"
	"log"
	"os"
	"pawpro-backend/config"
	"pawpro-backend/models"
	"pawpro-backend/routes"
	"pawpro-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Business{},
		&models.User{},
		&models.Customer{},
		&models.Pet{},
		&models.Service{},
		&models.PriceTier{},
		&models.Addon{},
		&models.Appointment{},
		&models.AppointmentRow{},
		&models.AppointmentRowAddon{},
		&models.ReminderTemplate{},
		&models.ReminderLog{},
	)
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	reminderService := services.NewReminderService(config.DB)
	reminderService.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
