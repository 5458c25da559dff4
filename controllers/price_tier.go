// controllers/price_tier.go
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

// CreatePriceTierInput defines the expected JSON structure for creating a price tier
type CreatePriceTierInput struct {
	Label        string   `json:"label"`
	MinWeight    *float64 `json:"minWeight" binding:"omitempty,min=0"`
	MaxWeight    *float64 `json:"maxWeight" binding:"omitempty,min=0"`
	Price        float64  `json:"price" binding:"required,min=0"`
	DisplayOrder int      `json:"displayOrder"`
}

// UpdatePriceTierInput defines the expected JSON structure for updating a price tier
type UpdatePriceTierInput struct {
	Label        *string  `json:"label"`
	MinWeight    *float64 `json:"minWeight" binding:"omitempty,min=0"`
	MaxWeight    *float64 `json:"maxWeight" binding:"omitempty,min=0"`
	Price        *float64 `json:"price" binding:"omitempty,min=0"`
	DisplayOrder *int     `json:"displayOrder"`
}

func tenantService(c *gin.Context) (*models.Service, bool) {
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

	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return nil, false
	}

	var service models.Service
	if err := config.DB.Where("business_id = ? AND id = ?", businessUUID, serviceUUID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}

	return &service, true
}

// CreatePriceTier adds a weight-range price tier to a service
func CreatePriceTier(c *gin.Context) {
	service, ok := tenantService(c)
	if !ok {
		return
	}

	var input CreatePriceTierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.MinWeight != nil && input.MaxWeight != nil && *input.MinWeight > *input.MaxWeight {
		utils.RespondWithError(c, http.StatusBadRequest, "minWeight must not exceed maxWeight")
		return
	}

	tier := models.PriceTier{
		ID:           uuid.New(),
		BusinessID:   service.BusinessID,
		ServiceID:    service.ID,
		Label:        input.Label,
		MinWeight:    input.MinWeight,
		MaxWeight:    input.MaxWeight,
		Price:        input.Price,
		DisplayOrder: input.DisplayOrder,
	}

	if err := config.DB.Create(&tier).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create price tier")
		return
	}

	c.JSON(http.StatusCreated, tier)
}

// GetPriceTiers lists a service's tiers in display order
func GetPriceTiers(c *gin.Context) {
	service, ok := tenantService(c)
	if !ok {
		return
	}

	var tiers []models.PriceTier
	if err := config.DB.Where("service_id = ?", service.ID).
		Order("display_order ASC").Find(&tiers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve price tiers")
		return
	}

	c.JSON(http.StatusOK, tiers)
}

// UpdatePriceTier updates an existing price tier
func UpdatePriceTier(c *gin.Context) {
	service, ok := tenantService(c)
	if !ok {
		return
	}

	tierUUID, err := uuid.Parse(c.Param("tierId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid tier ID format")
		return
	}

	var input UpdatePriceTierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var tier models.PriceTier
	if err := config.DB.Where("service_id = ? AND id = ?", service.ID, tierUUID).
		First(&tier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Price tier not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Label != nil {
		tier.Label = *input.Label
	}
	if input.MinWeight != nil {
		tier.MinWeight = input.MinWeight
	}
	if input.MaxWeight != nil {
		tier.MaxWeight = input.MaxWeight
	}
	if input.Price != nil {
		tier.Price = *input.Price
	}
	if input.DisplayOrder != nil {
		tier.DisplayOrder = *input.DisplayOrder
	}

	if tier.MinWeight != nil && tier.MaxWeight != nil && *tier.MinWeight > *tier.MaxWeight {
		utils.RespondWithError(c, http.StatusBadRequest, "minWeight must not exceed maxWeight")
		return
	}

	if err := config.DB.Save(&tier).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update price tier")
		return
	}

	c.JSON(http.StatusOK, tier)
}

// DeletePriceTier removes a price tier
func DeletePriceTier(c *gin.Context) {
	service, ok := tenantService(c)
	if !ok {
		return
	}

	tierUUID, err := uuid.Parse(c.Param("tierId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid tier ID format")
		return
	}

	result := config.DB.Where("service_id = ? AND id = ?", service.ID, tierUUID).
		Delete(&models.PriceTier{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete price tier")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Price tier not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Price tier deleted successfully"})
}
