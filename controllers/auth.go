package controllers

import (
	"errors"
	"net/http"
	"pawpro-backend/config"
	"pawpro-backend/models"
	"pawpro-backend/utils"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email           string       `json:"email" binding:"required,email"`
	Phone           string       `json:"phone" binding:"required"`
	Name            string       `json:"name" binding:"required"`
	Password        string       `json:"password" binding:"required,min=8"`
	BusinessName    string       `json:"businessName" binding:"required"`
	BusinessAddress string       `json:"businessAddress"`
	WorkingHours    models.JSONB `json:"workingHours"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // Can be email or phone
	Password   string `json:"password" binding:"required"`
}

// Register creates the business (tenant) and its owner account
func Register(c *gin.Context) {
	var input RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Check if email or phone already exists
	var existingUser models.User
	result := config.DB.Where("email = ? OR phone = ?", input.Email, input.Phone).First(&existingUser)

	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email or phone already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	business := models.Business{
		ID:                   uuid.New(),
		Name:                 input.BusinessName,
		Address:              input.BusinessAddress,
		Phone:                input.Phone,
		WorkingHours:         input.WorkingHours,
		AppointmentReminders: true,
	}

	// Set default working hours if not provided
	if business.WorkingHours == nil {
		business.WorkingHours = models.JSONB{
			"monday":    map[string]interface{}{"open": "09:00", "close": "18:00", "closed": false},
			"tuesday":   map[string]interface{}{"open": "09:00", "close": "18:00", "closed": false},
			"wednesday": map[string]interface{}{"open": "09:00", "close": "18:00", "closed": false},
			"thursday":  map[string]interface{}{"open": "09:00", "close": "18:00", "closed": false},
			"friday":    map[string]interface{}{"open": "09:00", "close": "18:00", "closed": false},
			"saturday":  map[string]interface{}{"open": "09:00", "close": "16:00", "closed": false},
			"sunday":    map[string]interface{}{"open": "10:00", "close": "14:00", "closed": true},
		}
	}

	newUser := models.User{
		Email:      input.Email,
		Phone:      input.Phone,
		Name:       input.Name,
		Password:   input.Password, // Will be hashed in BeforeCreate hook
		Role:       "owner",
		BusinessID: business.ID,
		IsActive:   true,
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&business).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create business")
		return
	}

	if err := tx.Create(&newUser).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	if err := createDefaultReminderTemplates(tx, business.ID); err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create reminder templates")
		return
	}

	tx.Commit()

	token, err := utils.GenerateToken(newUser.ID.String(), business.ID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"id":           newUser.ID,
			"email":        newUser.Email,
			"phone":        newUser.Phone,
			"role":         newUser.Role,
			"businessName": business.Name,
		},
	})
}

func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	identifier := strings.TrimSpace(input.Identifier)

	var user models.User
	result := config.DB.Preload("Business").
		Where("email = ? OR phone = ?", identifier, identifier).First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !user.IsActive {
		utils.RespondWithError(c, http.StatusUnauthorized, "Account is deactivated")
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.BusinessID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// Update last login
	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"phone":        user.Phone,
			"role":         user.Role,
			"businessName": user.Business.Name,
		},
	})
}

func createDefaultReminderTemplates(tx *gorm.DB, businessID uuid.UUID) error {
	defaultTemplates := []models.ReminderTemplate{
		{
			BusinessID: businessID,
			Type:       "upcoming",
			Message:    "Hi [CustomerName], a reminder that [PetName] is booked for [Services] on [Date] at [Time]. See you soon!",
		},
		{
			BusinessID: businessID,
			Type:       "confirmation",
			Message:    "Hi [CustomerName], [PetName] is confirmed for [Services] on [Date] at [Time]. Total: [Total].",
		},
	}

	for _, template := range defaultTemplates {
		template.ID = uuid.New()
		template.IsActive = true
		if err := tx.Create(&template).Error; err != nil {
			return err
		}
	}
	return nil
}

func Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "User ID not found in context")
		return
	}

	var user models.User
	if err := config.DB.Preload("Business").First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"name":         user.Name,
			"role":         user.Role,
			"businessName": user.Business.Name,
		},
	})
}
