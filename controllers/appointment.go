// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"pawpro-backend/booking"
	"pawpro-backend/config"
	"pawpro-backend/models"
	"pawpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentRowInput is one service row of the booking form:
// a pet paired with a service, an optional tier choice, and add-ons.
type AppointmentRowInput struct {
	PetID       uuid.UUID   `json:"petId" binding:"required"`
	ServiceID   uuid.UUID   `json:"serviceId" binding:"required"`
	PriceTierID *uuid.UUID  `json:"priceTierId"`
	TierSource  string      `json:"tierSource" binding:"omitempty,oneof=none auto manual stored"`
	AddonIDs    []uuid.UUID `json:"addonIds"`
}

// RecurrenceInput selects a repeat frequency anchored to a reference date
type RecurrenceInput struct {
	Frequency string `json:"frequency" binding:"required,oneof=weekly biweekly monthly"`
	Date      string `json:"date"` // ISO YYYY-MM-DD
}

// CreateAppointmentInput defines the expected JSON structure for booking
type CreateAppointmentInput struct {
	CustomerID uuid.UUID             `json:"customerId" binding:"required"`
	StartsAt   time.Time             `json:"startsAt" binding:"required"`
	Rows       []AppointmentRowInput `json:"rows" binding:"required,min=1,dive"`
	Recurrence *RecurrenceInput      `json:"recurrence"`
	Notes      string                `json:"notes"`
}

// QuoteAppointmentInput mirrors CreateAppointmentInput without a start
// time; the form aggregates totals before a slot is picked
type QuoteAppointmentInput struct {
	CustomerID uuid.UUID             `json:"customerId" binding:"required"`
	Rows       []AppointmentRowInput `json:"rows" binding:"required,min=1,dive"`
	Recurrence *RecurrenceInput      `json:"recurrence"`
}

// UpdateAppointmentInput defines the expected JSON structure for updating
type UpdateAppointmentInput struct {
	StartsAt   *time.Time             `json:"startsAt"`
	Rows       *[]AppointmentRowInput `json:"rows" binding:"omitempty,min=1,dive"`
	Recurrence *RecurrenceInput       `json:"recurrence"`
	Status     *string                `json:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
	Notes      *string                `json:"notes"`
}

// derivedRow pairs a persisted row snapshot with its computed totals
type derivedRow struct {
	row    models.AppointmentRow
	totals booking.RowTotals
}

// deriveRows resolves each input row against the tenant's catalog,
// auto-selects tiers from pet weight where the client made no manual or
// stored choice, and recomputes all totals server-side. Client-sent
// prices are never trusted. Rows whose service has tiers but none
// selected still derive base-price totals; their indexes come back in
// the second return so each caller decides whether that blocks.
func deriveRows(businessUUID, customerUUID uuid.UUID, inputs []AppointmentRowInput) ([]derivedRow, []int, int, string) {
	derived := make([]derivedRow, 0, len(inputs))
	requiresTier := []int{}

	for i, in := range inputs {
		var pet models.Pet
		if err := config.DB.Where("business_id = ? AND id = ?", businessUUID, in.PetID).
			First(&pet).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, http.StatusBadRequest, "Pet not found: " + in.PetID.String()
			}
			return nil, nil, http.StatusInternalServerError, "Database error"
		}
		if pet.CustomerID != customerUUID {
			return nil, nil, http.StatusBadRequest, "Pet does not belong to this customer: " + in.PetID.String()
		}

		var service models.Service
		if err := config.DB.
			Preload("PriceTiers", func(db *gorm.DB) *gorm.DB {
				return db.Order("display_order ASC")
			}).
			Where("business_id = ? AND id = ?", businessUUID, in.ServiceID).
			First(&service).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, http.StatusBadRequest, "Service not found: " + in.ServiceID.String()
			}
			return nil, nil, http.StatusInternalServerError, "Database error"
		}

		tiers := make([]booking.TierInfo, 0, len(service.PriceTiers))
		for _, t := range service.PriceTiers {
			tiers = append(tiers, booking.TierInfo{
				ID:        t.ID,
				Label:     t.Label,
				MinWeight: t.MinWeight,
				MaxWeight: t.MaxWeight,
				Price:     t.Price,
			})
		}

		source := booking.TierSource(in.TierSource)
		if source == "" {
			source = booking.TierSourceNone
		}
		// a tier id sent without a source counts as a stored selection
		if in.PriceTierID != nil && source == booking.TierSourceNone {
			source = booking.TierSourceStored
		}

		sel := booking.RowSelection{
			RowID:       uuid.New(),
			ServiceID:   service.ID,
			PriceTierID: in.PriceTierID,
			TierSource:  source,
			AddonIDs:    in.AddonIDs,
		}
		sel, _ = booking.AutoSelectTier(sel, pet.Weight, tiers)

		var selectedTier *booking.TierInfo
		if sel.PriceTierID != nil {
			for idx := range tiers {
				if tiers[idx].ID == *sel.PriceTierID {
					selectedTier = &tiers[idx]
					break
				}
			}
			if selectedTier == nil {
				return nil, nil, http.StatusBadRequest, "Price tier does not belong to service: " + sel.PriceTierID.String()
			}
		}

		var addonInfos []booking.AddonInfo
		var rowAddons []models.AppointmentRowAddon
		for _, addonID := range in.AddonIDs {
			var addon models.Addon
			if err := config.DB.Where("service_id = ? AND id = ? AND is_active = true", service.ID, addonID).
				First(&addon).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, nil, http.StatusBadRequest, "Add-on not found: " + addonID.String()
				}
				return nil, nil, http.StatusInternalServerError, "Database error"
			}
			addonInfos = append(addonInfos, booking.AddonInfo{ID: addon.ID, Name: addon.Name, Price: addon.Price})
			rowAddons = append(rowAddons, models.AppointmentRowAddon{
				ID:      uuid.New(),
				AddonID: addon.ID,
				Name:    addon.Name,
				Price:   addon.Price,
			})
		}

		svcInfo := booking.ServiceInfo{ID: service.ID, Name: service.Name, Price: service.Price, Duration: service.Duration}
		totals := booking.ComputeRowTotals(&svcInfo, selectedTier, addonInfos, len(tiers))
		if totals.RequiresTier {
			requiresTier = append(requiresTier, i)
		}

		row := models.AppointmentRow{
			ID:          sel.RowID,
			PetID:       pet.ID,
			ServiceID:   service.ID,
			ServiceName: service.Name,
			PetName:     pet.Name,
			PriceTierID: sel.PriceTierID,
			TierSource:  string(sel.TierSource),
			Price:       totals.Price,
			Duration:    totals.Duration,
			Addons:      rowAddons,
		}
		if selectedTier != nil {
			row.TierLabel = selectedTier.Label
		}

		derived = append(derived, derivedRow{row: row, totals: totals})
	}

	return derived, requiresTier, 0, ""
}

func sumDerived(rows []derivedRow) booking.RowTotals {
	all := make([]booking.RowTotals, len(rows))
	for i, d := range rows {
		all[i] = d.totals
	}
	return booking.SumTotals(all...)
}

// CreateAppointment books an appointment, deriving all totals and the
// recurrence rule server-side
func CreateAppointment(c *gin.Context) {
	businessID, exists := c.Get("businessId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Business ID not found in context")
		return
	}
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	businessUUID, err := uuid.Parse(businessID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid business ID format")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate customer exists in the same business
	var customer models.Customer
	if err := config.DB.Where("business_id = ? AND id = ?", businessUUID, input.CustomerID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var recurrenceRule string
	if input.Recurrence != nil {
		recurrenceRule, err = booking.BuildRecurrenceRule(
			booking.Frequency(input.Recurrence.Frequency), input.Recurrence.Date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid recurrence: "+err.Error())
			return
		}
	}

	derived, needsTier, status, msg := deriveRows(businessUUID, input.CustomerID, input.Rows)
	if status != 0 {
		utils.RespondWithError(c, status, msg)
		return
	}
	if len(needsTier) > 0 {
		utils.RespondWithError(c, http.StatusUnprocessableEntity, "One or more rows require a price tier selection")
		return
	}

	totals := sumDerived(derived)

	rows := make([]models.AppointmentRow, len(derived))
	for i, d := range derived {
		rows[i] = d.row
	}

	appointment := models.Appointment{
		ID:              uuid.New(),
		BusinessID:      businessUUID,
		CreatedByUserID: userUUID,
		CustomerID:      input.CustomerID,
		StartsAt:        input.StartsAt,
		Status:          "scheduled",
		RecurrenceRule:  recurrenceRule,
		Notes:           input.Notes,
		TotalPrice:      totals.Price,
		TotalDuration:   totals.Duration,
		Rows:            rows,
	}
	appointment.Reference = "APT-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6)

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"appointment":     appointment,
		"recurrenceLabel": booking.RuleLabel(appointment.RecurrenceRule),
	})
}

// QuoteAppointment derives per-row, per-pet, and appointment-wide
// totals without persisting anything. This backs the booking form's
// live aggregation display.
func QuoteAppointment(c *gin.Context) {
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

	var input QuoteAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Quote still requires a real customer so pet ownership can be checked
	var customer models.Customer
	if err := config.DB.Where("business_id = ? AND id = ?", businessUUID, input.CustomerID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var recurrenceLabel string
	if input.Recurrence != nil {
		rule, err := booking.BuildRecurrenceRule(
			booking.Frequency(input.Recurrence.Frequency), input.Recurrence.Date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid recurrence: "+err.Error())
			return
		}
		recurrenceLabel = booking.RuleLabel(rule)
	} else {
		recurrenceLabel = booking.RuleLabel("")
	}

	// Unlike create, a quote does not reject rows still needing a tier:
	// they stay in the rollups at base price and their ids are reported
	// so the form can flag them.
	type rowQuote struct {
		RowID        uuid.UUID  `json:"rowId"`
		PetID        uuid.UUID  `json:"petId"`
		PetName      string     `json:"petName"`
		ServiceID    uuid.UUID  `json:"serviceId"`
		ServiceName  string     `json:"serviceName"`
		PriceTierID  *uuid.UUID `json:"priceTierId"`
		TierSource   string     `json:"tierSource"`
		Price        float64    `json:"price"`
		Duration     int        `json:"duration"`
		RequiresTier bool       `json:"requiresTier"`
	}

	derived, _, status, msg := deriveRows(businessUUID, input.CustomerID, input.Rows)
	if status != 0 {
		utils.RespondWithError(c, status, msg)
		return
	}

	rowTotals := make(booking.Totals)
	quotes := make([]rowQuote, 0, len(derived))
	petRows := make(map[uuid.UUID][]uuid.UUID)
	needTierRows := []uuid.UUID{}

	for _, d := range derived {
		rowTotals.Set(d.row.ID, d.totals)
		petRows[d.row.PetID] = append(petRows[d.row.PetID], d.row.ID)
		if d.totals.RequiresTier {
			needTierRows = append(needTierRows, d.row.ID)
		}
		quotes = append(quotes, rowQuote{
			RowID:        d.row.ID,
			PetID:        d.row.PetID,
			PetName:      d.row.PetName,
			ServiceID:    d.row.ServiceID,
			ServiceName:  d.row.ServiceName,
			PriceTierID:  d.row.PriceTierID,
			TierSource:   d.row.TierSource,
			Price:        d.totals.Price,
			Duration:     d.totals.Duration,
			RequiresTier: d.totals.RequiresTier,
		})
	}

	perPet := make(map[string]gin.H, len(petRows))
	for petID, rowIDs := range petRows {
		t := rowTotals.Sum(rowIDs...)
		perPet[petID.String()] = gin.H{"price": t.Price, "duration": t.Duration}
	}

	total := rowTotals.SumAll()

	c.JSON(http.StatusOK, gin.H{
		"rows":             quotes,
		"perPet":           perPet,
		"totalPrice":       total.Price,
		"totalDuration":    total.Duration,
		"requiresTier":     total.RequiresTier,
		"requiresTierRows": needTierRows,
		"recurrenceLabel":  recurrenceLabel,
	})
}

// GetAppointments retrieves the business's appointments, optionally
// filtered by status and date range
func GetAppointments(c *gin.Context) {
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

	var fromTime, toTime time.Time
	if v := c.Query("from"); v != "" {
		if fromTime, err = time.Parse("2006-01-02", v); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
			return
		}
	}
	if v := c.Query("to"); v != "" {
		if toTime, err = time.Parse("2006-01-02", v); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
			return
		}
	}

	query := config.DB.Preload("Rows").Preload("Rows.Addons").
		Where("business_id = ?", businessUUID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if !fromTime.IsZero() {
		query = query.Where("starts_at >= ?", fromTime)
	}
	if !toTime.IsZero() {
		query = query.Where("starts_at < ?", toTime.AddDate(0, 0, 1))
	}

	var appointments []models.Appointment
	if err := query.Order("starts_at ASC").Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a specific appointment by ID
func GetAppointment(c *gin.Context) {
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

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appointment models.Appointment
	if err := config.DB.Preload("Rows").Preload("Rows.Addons").
		Where("business_id = ? AND id = ?", businessUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointment":     appointment,
		"recurrenceLabel": booking.RuleLabel(appointment.RecurrenceRule),
	})
}

// UpdateAppointment reschedules, re-derives rows, or transitions status
func UpdateAppointment(c *gin.Context) {
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

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var appointment models.Appointment
	if err := tx.Preload("Rows").
		Where("business_id = ? AND id = ?", businessUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.StartsAt != nil {
		appointment.StartsAt = *input.StartsAt
	}

	if input.Recurrence != nil {
		rule, err := booking.BuildRecurrenceRule(
			booking.Frequency(input.Recurrence.Frequency), input.Recurrence.Date)
		if err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid recurrence: "+err.Error())
			return
		}
		appointment.RecurrenceRule = rule
	}

	// If rows are being replaced, re-derive everything
	if input.Rows != nil {
		derived, needsTier, status, msg := deriveRows(businessUUID, appointment.CustomerID, *input.Rows)
		if status != 0 {
			tx.Rollback()
			utils.RespondWithError(c, status, msg)
			return
		}
		if len(needsTier) > 0 {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusUnprocessableEntity, "One or more rows require a price tier selection")
			return
		}

		// Delete existing row add-ons, then rows
		for _, row := range appointment.Rows {
			if err := tx.Where("row_id = ?", row.ID).Delete(&models.AppointmentRowAddon{}).Error; err != nil {
				tx.Rollback()
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing rows")
				return
			}
		}
		if err := tx.Where("appointment_id = ?", appointment.ID).Delete(&models.AppointmentRow{}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing rows")
			return
		}

		totals := sumDerived(derived)
		rows := make([]models.AppointmentRow, len(derived))
		for i, d := range derived {
			rows[i] = d.row
			rows[i].AppointmentID = appointment.ID
		}

		appointment.Rows = rows
		appointment.TotalPrice = totals.Price
		appointment.TotalDuration = totals.Duration
	}

	previousStatus := appointment.Status
	if input.Status != nil {
		appointment.Status = *input.Status
	}

	if input.Notes != nil {
		appointment.Notes = *input.Notes
	}

	if err := tx.Save(&appointment).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	// Completing the visit updates customer stats
	if previousStatus != "completed" && appointment.Status == "completed" {
		if err := tx.Model(&models.Customer{}).Where("id = ?", appointment.CustomerID).
			Updates(map[string]interface{}{
				"total_visits": gorm.Expr("total_visits + ?", 1),
				"total_spent":  gorm.Expr("total_spent + ?", appointment.TotalPrice),
				"last_visit":   appointment.StartsAt,
			}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer stats")
			return
		}
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{
		"appointment":     appointment,
		"recurrenceLabel": booking.RuleLabel(appointment.RecurrenceRule),
	})
}

// CancelAppointment marks an appointment cancelled
func CancelAppointment(c *gin.Context) {
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

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	result := config.DB.Model(&models.Appointment{}).
		Where("business_id = ? AND id = ? AND status = ?", businessUUID, appointmentUUID, "scheduled").
		Update("status", "cancelled")

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel appointment")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "No scheduled appointment found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

// DeleteAppointment soft deletes an appointment and its rows
func DeleteAppointment(c *gin.Context) {
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

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var appointment models.Appointment
	if err := tx.Preload("Rows").
		Where("business_id = ? AND id = ?", businessUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	for _, row := range appointment.Rows {
		if err := tx.Where("row_id = ?", row.ID).Delete(&models.AppointmentRowAddon{}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment rows")
			return
		}
	}

	if err := tx.Where("appointment_id = ?", appointment.ID).Delete(&models.AppointmentRow{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment rows")
		return
	}

	if err := tx.Delete(&appointment).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
