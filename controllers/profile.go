package controllers

import (
	"errors"
	"net/http"
	"pawpro-backend/config"
	"pawpro-backend/models"
	"pawpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UpdateBusinessProfileInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

type UpdateWorkingHoursInput struct {
	WorkingHours models.JSONB `json:"workingHours" binding:"required"`
}

type UpdateNotificationsInput struct {
	AppointmentReminders  *bool `json:"appointmentReminders"`
	WhatsAppNotifications *bool `json:"whatsAppNotifications"`
	SMSNotifications      *bool `json:"smsNotifications"`
}

func tenantBusiness(c *gin.Context) (*models.Business, bool) {
	businessID, exists := c.Get("businessId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Business ID not found in context")
		return nil, false
	}

	businessUUID, err := uuid.Parse(businessID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid business ID format")
		return nil, false
	}

	var business models.Business
	if err := config.DB.First(&business, "id = ?", businessUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Business not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}

	return &business, true
}

func GetProfile(c *gin.Context) {
	business, ok := tenantBusiness(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":                  business.Name,
		"address":               business.Address,
		"phone":                 business.Phone,
		"workingHours":          business.WorkingHours,
		"appointmentReminders":  business.AppointmentReminders,
		"whatsAppNotifications": business.WhatsAppNotifications,
		"smsNotifications":      business.SMSNotifications,
	})
}

func UpdateBusinessProfile(c *gin.Context) {
	business, ok := tenantBusiness(c)
	if !ok {
		return
	}

	var input UpdateBusinessProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Name != nil {
		business.Name = *input.Name
	}
	if input.Address != nil {
		business.Address = *input.Address
	}
	if input.Phone != nil {
		business.Phone = *input.Phone
	}

	if err := config.DB.Save(business).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

func UpdateWorkingHours(c *gin.Context) {
	business, ok := tenantBusiness(c)
	if !ok {
		return
	}

	var input UpdateWorkingHoursInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	business.WorkingHours = input.WorkingHours

	if err := config.DB.Save(business).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update working hours")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Working hours updated"})
}

func UpdateNotifications(c *gin.Context) {
	business, ok := tenantBusiness(c)
	if !ok {
		return
	}

	var input UpdateNotificationsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.AppointmentReminders != nil {
		business.AppointmentReminders = *input.AppointmentReminders
	}
	if input.WhatsAppNotifications != nil {
		business.WhatsAppNotifications = *input.WhatsAppNotifications
	}
	if input.SMSNotifications != nil {
		business.SMSNotifications = *input.SMSNotifications
	}

	if err := config.DB.Save(business).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification settings updated"})
}
