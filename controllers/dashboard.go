package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"pawpro-backend/config"
	"pawpro-backend/models"
	"pawpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TodayAppointment struct {
	ID       uuid.UUID `json:"id"`
	Time     string    `json:"time"`
	Customer string    `json:"customer"`
	Pets     string    `json:"pets"`
	Services string    `json:"services"`
	Price    float64   `json:"price"`
	Duration int       `json:"duration"`
	Status   string    `json:"status"`
}

type RecentCustomer struct {
	Name      string `json:"name"`
	Service   string `json:"service"`
	VisitDate string `json:"visitDate"` // e.g. "Today", "Yesterday"
}

func GetDashboardOverview(c *gin.Context) {
	businessID, exists := c.Get("businessId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Business ID not found in context")
		return
	}
	businessUUID, err := uuid.Parse(businessID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid business ID format")
		return
	}

	// Total Customers
	var totalCustomers int64
	config.DB.Model(&models.Customer{}).Where("business_id = ? AND deleted_at IS NULL", businessUUID).Count(&totalCustomers)

	// Total Pets
	var totalPets int64
	config.DB.Model(&models.Pet{}).Where("business_id = ? AND deleted_at IS NULL", businessUUID).Count(&totalPets)

	// This Month's Revenue (completed appointments)
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var monthlyRevenue float64
	config.DB.Model(&models.Appointment{}).
		Where("business_id = ? AND status = ? AND starts_at >= ? AND deleted_at IS NULL",
			businessUUID, "completed", firstOfMonth).
		Select("COALESCE(SUM(total_price), 0)").Scan(&monthlyRevenue)

	// Today's appointments
	startOfDay := utils.BeginningOfDay(now)
	endOfDay := startOfDay.AddDate(0, 0, 1)

	var todaysAppointments []models.Appointment
	config.DB.Preload("Rows").
		Where("business_id = ? AND starts_at >= ? AND starts_at < ? AND status <> ? AND deleted_at IS NULL",
			businessUUID, startOfDay, endOfDay, "cancelled").
		Order("starts_at ASC").
		Find(&todaysAppointments)

	today := make([]TodayAppointment, 0, len(todaysAppointments))
	for _, appt := range todaysAppointments {
		var customer models.Customer
		config.DB.First(&customer, "id = ?", appt.CustomerID)

		petSet := make(map[string]bool)
		var pets, svcs string
		for _, row := range appt.Rows {
			if !petSet[row.PetName] {
				petSet[row.PetName] = true
				if pets != "" {
					pets += ", "
				}
				pets += row.PetName
			}
			if svcs != "" {
				svcs += ", "
			}
			svcs += row.ServiceName
		}

		today = append(today, TodayAppointment{
			ID:       appt.ID,
			Time:     appt.StartsAt.Format("3:04 PM"),
			Customer: customer.Name,
			Pets:     pets,
			Services: svcs,
			Price:    appt.TotalPrice,
			Duration: appt.TotalDuration,
			Status:   appt.Status,
		})
	}

	// Upcoming appointments in the next 7 days (excluding today)
	var upcomingCount int64
	config.DB.Model(&models.Appointment{}).
		Where("business_id = ? AND status = ? AND starts_at >= ? AND starts_at < ? AND deleted_at IS NULL",
			businessUUID, "scheduled", endOfDay, endOfDay.AddDate(0, 0, 7)).
		Count(&upcomingCount)

	// Recent Customers (last 3 completed visits)
	var recentCustomers []RecentCustomer
	rows, err := config.DB.Raw(`
    SELECT c.name, a.starts_at, a.id
    FROM appointments a
    JOIN customers c ON c.id = a.customer_id
    WHERE a.business_id = ? AND a.status = 'completed' AND a.deleted_at IS NULL
    ORDER BY a.starts_at DESC
`, businessUUID).Rows()
	if err == nil {
		defer rows.Close()
		customerMap := make(map[string]bool)
		count := 0
		for rows.Next() {
			var name string
			var startsAt time.Time
			var appointmentID uuid.UUID
			rows.Scan(&name, &startsAt, &appointmentID)
			if customerMap[name] {
				continue
			}
			var services []string
			config.DB.Raw(`
            SELECT service_name FROM appointment_rows WHERE appointment_id = ?
        `, appointmentID).Scan(&services)

			daysAgo := int(time.Since(startsAt).Hours() / 24)
			var visitDate string
			switch daysAgo {
			case 0:
				visitDate = "Today"
			case 1:
				visitDate = "Yesterday"
			default:
				visitDate = fmt.Sprintf("%d days ago", daysAgo)
			}
			recentCustomers = append(recentCustomers, RecentCustomer{
				Name:      name,
				Service:   strings.Join(services, ", "),
				VisitDate: visitDate,
			})
			customerMap[name] = true
			count++
			if count >= 3 {
				break
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalCustomers":     totalCustomers,
		"totalPets":          totalPets,
		"monthlyRevenue":     monthlyRevenue,
		"todaysAppointments": today,
		"upcomingWeekCount":  upcomingCount,
		"recentCustomers":    recentCustomers,
	})
}
