// controllers/addon.go
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

// CreateAddonInput defines the expected JSON structure for creating an add-on
type CreateAddonInput struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,min=0"`
	DisplayOrder int     `json:"displayOrder"`
}

// UpdateAddonInput defines the expected JSON structure for updating an add-on
type UpdateAddonInput struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price" binding:"omitempty,min=0"`
	DisplayOrder *int     `json:"displayOrder"`
	IsActive     *bool    `json:"isActive"`
}

// CreateAddon adds an optional extra charge to a service
func CreateAddon(c *gin.Context) {
	service, ok := tenantService(c)
	if !ok {
		return
	}

	var input CreateAddonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	addon := models.Addon{
		ID:           uuid.New(),
		BusinessID:   service.BusinessID,
		ServiceID:    service.ID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		DisplayOrder: input.DisplayOrder,
		IsActive:     true,
	}

	if err := config.DB.Create(&addon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create add-on")
		return
	}

	c.JSON(http.StatusCreated, addon)
}

// GetAddons lists a service's add-ons in display order
func GetAddons(c *gin.Context) {
	service, ok := tenantService(c)
	if !ok {
		return
	}

	var addons []models.Addon
	if err := config.DB.Where("service_id = ?", service.ID).
		Order("display_order ASC").Find(&addons).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve add-ons")
		return
	}

	c.JSON(http.StatusOK, addons)
}

// UpdateAddon updates an existing add-on
func UpdateAddon(c *gin.Context) {
	service, ok := tenantService(c)
	if !ok {
		return
	}

	addonUUID, err := uuid.Parse(c.Param("addonId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid add-on ID format")
		return
	}

	var input UpdateAddonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var addon models.Addon
	if err := config.DB.Where("service_id = ? AND id = ?", service.ID, addonUUID).
		First(&addon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Add-on not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		addon.Name = *input.Name
	}
	if input.Description != nil {
		addon.Description = *input.Description
	}
	if input.Price != nil {
		addon.Price = *input.Price
	}
	if input.DisplayOrder != nil {
		addon.DisplayOrder = *input.DisplayOrder
	}
	if input.IsActive != nil {
		addon.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&addon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update add-on")
		return
	}

	c.JSON(http.StatusOK, addon)
}

// DeleteAddon removes an add-on
func DeleteAddon(c *gin.Context) {
	service, ok := tenantService(c)
	if !ok {
		return
	}

	addonUUID, err := uuid.Parse(c.Param("addonId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid add-on ID format")
		return
	}

	result := config.DB.Where("service_id = ? AND id = ?", service.ID, addonUUID).
		Delete(&models.Addon{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete add-on")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Add-on not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Add-on deleted successfully"})
}
