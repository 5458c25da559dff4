// controllers/report.go
package controllers

import (
	"net/http"
	"pawpro-backend/config"
	"pawpro-backend/models"
	"pawpro-backend/utils"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportController handles all reporting functions
type ReportController struct{}

// AnalyticsSummary represents the Analytics data
type AnalyticsSummary struct {
	CurrentMonthRevenue   float64           `json:"currentMonthRevenue"`
	MonthGrowth           float64           `json:"monthGrowth"`
	CurrentQuarterRevenue float64           `json:"currentQuarterRevenue"`
	QuarterGrowth         float64           `json:"quarterGrowth"`
	CurrentYearRevenue    float64           `json:"currentYearRevenue"`
	YearGrowth            float64           `json:"yearGrowth"`
	TopServices           []ServiceSummary  `json:"topServices"`
	TopCustomers          []CustomerSummary `json:"topCustomers"`
	QuickStats            QuickStatistics   `json:"quickStats"`
}

type ServiceSummary struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type CustomerSummary struct {
	Name   string  `json:"name"`
	Visits int     `json:"visits"`
	Spent  float64 `json:"spent"`
}

type QuickStatistics struct {
	TotalCustomers    int     `json:"totalCustomers"`
	TotalAppointments int     `json:"totalAppointments"`
	AvgWeeklyBookings float64 `json:"avgWeeklyBookings"`
	AvgBookingValue   float64 `json:"avgBookingValue"`
}

// GetReportAnalytics returns the complete analytics summary
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
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

	now := time.Now()

	// Month boundaries
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := monthStart.AddDate(0, -1, 0)

	// Quarter boundaries
	quarterMonth := ((int(now.Month())-1)/3)*3 + 1
	quarterStart := time.Date(now.Year(), time.Month(quarterMonth), 1, 0, 0, 0, 0, now.Location())
	prevQuarterStart := quarterStart.AddDate(0, -3, 0)

	// Year boundaries
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	prevYearStart := yearStart.AddDate(-1, 0, 0)

	summary := AnalyticsSummary{}

	summary.CurrentMonthRevenue = rc.revenueBetween(businessUUID, monthStart, now)
	prevMonth := rc.revenueBetween(businessUUID, prevMonthStart, monthStart)
	summary.MonthGrowth = growth(prevMonth, summary.CurrentMonthRevenue)

	summary.CurrentQuarterRevenue = rc.revenueBetween(businessUUID, quarterStart, now)
	prevQuarter := rc.revenueBetween(businessUUID, prevQuarterStart, quarterStart)
	summary.QuarterGrowth = growth(prevQuarter, summary.CurrentQuarterRevenue)

	summary.CurrentYearRevenue = rc.revenueBetween(businessUUID, yearStart, now)
	prevYear := rc.revenueBetween(businessUUID, prevYearStart, yearStart)
	summary.YearGrowth = growth(prevYear, summary.CurrentYearRevenue)

	// Top services by completed bookings this year
	config.DB.Raw(`
        SELECT r.service_name AS name, COUNT(*) AS count, COALESCE(SUM(r.price), 0) AS revenue
        FROM appointment_rows r
        JOIN appointments a ON a.id = r.appointment_id
        WHERE a.business_id = ? AND a.status = 'completed' AND a.starts_at >= ? AND a.deleted_at IS NULL
        GROUP BY r.service_name
        ORDER BY revenue DESC
        LIMIT 5
    `, businessUUID, yearStart).Scan(&summary.TopServices)

	// Top customers by spend
	config.DB.Raw(`
        SELECT name, total_visits AS visits, total_spent AS spent
        FROM customers
        WHERE business_id = ? AND deleted_at IS NULL
        ORDER BY total_spent DESC
        LIMIT 5
    `, businessUUID).Scan(&summary.TopCustomers)

	// Quick stats
	var totalCustomers, totalAppointments int64
	config.DB.Model(&models.Customer{}).
		Where("business_id = ? AND deleted_at IS NULL", businessUUID).Count(&totalCustomers)
	config.DB.Model(&models.Appointment{}).
		Where("business_id = ? AND deleted_at IS NULL", businessUUID).Count(&totalAppointments)

	summary.QuickStats.TotalCustomers = int(totalCustomers)
	summary.QuickStats.TotalAppointments = int(totalAppointments)

	weeksThisYear := time.Since(yearStart).Hours() / (24 * 7)
	if weeksThisYear >= 1 {
		var yearBookings int64
		config.DB.Model(&models.Appointment{}).
			Where("business_id = ? AND starts_at >= ? AND deleted_at IS NULL", businessUUID, yearStart).
			Count(&yearBookings)
		summary.QuickStats.AvgWeeklyBookings = float64(yearBookings) / weeksThisYear
	}

	var completedCount int64
	config.DB.Model(&models.Appointment{}).
		Where("business_id = ? AND status = ? AND deleted_at IS NULL", businessUUID, "completed").
		Count(&completedCount)
	if completedCount > 0 {
		var completedRevenue float64
		config.DB.Model(&models.Appointment{}).
			Where("business_id = ? AND status = ? AND deleted_at IS NULL", businessUUID, "completed").
			Select("COALESCE(SUM(total_price), 0)").Scan(&completedRevenue)
		summary.QuickStats.AvgBookingValue = completedRevenue / float64(completedCount)
	}

	c.JSON(http.StatusOK, summary)
}

func (rc *ReportController) revenueBetween(businessUUID uuid.UUID, from, to time.Time) float64 {
	var revenue float64
	config.DB.Model(&models.Appointment{}).
		Where("business_id = ? AND status = ? AND starts_at >= ? AND starts_at < ? AND deleted_at IS NULL",
			businessUUID, "completed", from, to).
		Select("COALESCE(SUM(total_price), 0)").Scan(&revenue)
	return revenue
}

func growth(previous, current float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (current - previous) / previous * 100
}
