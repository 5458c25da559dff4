package controllers

import (
	"errors"
	"net/http"
	"pawpro-backend/config"
	"pawpro-backend/models"
	"pawpro-backend/utils"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreatePetInput defines the expected JSON structure for creating a pet
type CreatePetInput struct {
	Name      string     `json:"name" binding:"required"`
	Species   string     `json:"species"`
	Breed     string     `json:"breed"`
	Weight    *float64   `json:"weight" binding:"omitempty,min=0"` // kg
	Birthdate *time.Time `json:"birthdate"`
	Notes     string     `json:"notes"`
}

// UpdatePetInput defines the expected JSON structure for updating a pet.
// Weight carries a "provided" flag so it can be explicitly cleared to null.
type UpdatePetInput struct {
	Name        *string    `json:"name"`
	Species     *string    `json:"species"`
	Breed       *string    `json:"breed"`
	Weight      *float64   `json:"weight" binding:"omitempty,min=0"`
	ClearWeight bool       `json:"clearWeight"`
	Birthdate   *time.Time `json:"birthdate"`
	Notes       *string    `json:"notes"`
	IsActive    *bool      `json:"isActive"`
}

// CreatePet adds a pet to a customer
func CreatePet(c *gin.Context) {
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

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	// Customer must belong to the same business
	var customer models.Customer
	if err := config.DB.Where("business_id = ? AND id = ?", businessUUID, customerUUID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input CreatePetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	pet := models.Pet{
		ID:         uuid.New(),
		BusinessID: businessUUID,
		CustomerID: customer.ID,
		Name:       input.Name,
		Species:    input.Species,
		Breed:      input.Breed,
		Weight:     input.Weight,
		Birthdate:  input.Birthdate,
		Notes:      input.Notes,
		IsActive:   true,
	}
	if pet.Species == "" {
		pet.Species = "dog"
	}

	if err := config.DB.Create(&pet).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create pet")
		return
	}

	c.JSON(http.StatusCreated, pet)
}

// GetPets retrieves all pets for a customer
func GetPets(c *gin.Context) {
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

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var pets []models.Pet
	if err := config.DB.Where("business_id = ? AND customer_id = ?", businessUUID, customerUUID).
		Find(&pets).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve pets")
		return
	}

	c.JSON(http.StatusOK, pets)
}

// GetPet retrieves a specific pet by ID
func GetPet(c *gin.Context) {
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

	petUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid pet ID format")
		return
	}

	var pet models.Pet
	if err := config.DB.Where("business_id = ? AND id = ?", businessUUID, petUUID).
		First(&pet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Pet not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, pet)
}

// UpdatePet updates an existing pet
func UpdatePet(c *gin.Context) {
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

	petUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid pet ID format")
		return
	}

	var input UpdatePetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var pet models.Pet
	if err := config.DB.Where("business_id = ? AND id = ?", businessUUID, petUUID).
		First(&pet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Pet not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Name != nil {
		pet.Name = *input.Name
	}
	if input.Species != nil {
		pet.Species = *input.Species
	}
	if input.Breed != nil {
		pet.Breed = *input.Breed
	}
	if input.ClearWeight {
		pet.Weight = nil
	} else if input.Weight != nil {
		pet.Weight = input.Weight
	}
	if input.Birthdate != nil {
		pet.Birthdate = input.Birthdate
	}
	if input.Notes != nil {
		pet.Notes = *input.Notes
	}
	if input.IsActive != nil {
		pet.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&pet).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update pet")
		return
	}

	c.JSON(http.StatusOK, pet)
}

// DeletePet soft deletes a pet
func DeletePet(c *gin.Context) {
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

	petUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid pet ID format")
		return
	}

	result := config.DB.Where("business_id = ? AND id = ?", businessUUID, petUUID).
		Delete(&models.Pet{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete pet")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Pet not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pet deleted successfully"})
}
