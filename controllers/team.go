// controllers/team.go
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

type AddTeamMemberInput struct {
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=owner staff"`
}

type UpdateTeamMemberInput struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role" binding:"omitempty,oneof=owner staff"`
	IsActive *bool   `json:"isActive"`
}

// requireOwner loads the calling user and checks the owner role
func requireOwner(c *gin.Context) (uuid.UUID, bool) {
	businessID, exists := c.Get("businessId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Business ID not found in context")
		return uuid.Nil, false
	}
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}

	businessUUID, err := uuid.Parse(businessID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid business ID format")
		return uuid.Nil, false
	}

	var caller models.User
	if err := config.DB.First(&caller, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return uuid.Nil, false
	}

	if caller.Role != "owner" {
		utils.RespondWithError(c, http.StatusForbidden, "Owner role required")
		return uuid.Nil, false
	}

	return businessUUID, true
}

// GetTeamMembers lists the business's team
func GetTeamMembers(c *gin.Context) {
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

	var users []models.User
	if err := config.DB.Where("business_id = ?", businessUUID).Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve team members")
		return
	}

	members := make([]gin.H, 0, len(users))
	for _, u := range users {
		members = append(members, gin.H{
			"id":        u.ID,
			"email":     u.Email,
			"name":      u.Name,
			"phone":     u.Phone,
			"role":      u.Role,
			"isActive":  u.IsActive,
			"lastLogin": u.LastLogin,
		})
	}

	c.JSON(http.StatusOK, members)
}

// AddTeamMember creates a staff account (owner only)
func AddTeamMember(c *gin.Context) {
	businessUUID, ok := requireOwner(c)
	if !ok {
		return
	}

	var input AddTeamMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existingUser models.User
	result := config.DB.Where("email = ?", input.Email).First(&existingUser)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	role := input.Role
	if role == "" {
		role = "staff"
	}

	user := models.User{
		Email:      input.Email,
		Phone:      input.Phone,
		Name:       input.Name,
		Password:   input.Password, // hashed in BeforeCreate hook
		Role:       role,
		BusinessID: businessUUID,
		IsActive:   true,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create team member")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	})
}

// UpdateTeamMember updates a team member (owner only)
func UpdateTeamMember(c *gin.Context) {
	businessUUID, ok := requireOwner(c)
	if !ok {
		return
	}

	memberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid member ID format")
		return
	}

	var input UpdateTeamMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("business_id = ? AND id = ?", businessUUID, memberUUID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Team member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update team member")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team member updated"})
}

// RemoveTeamMember soft deletes a team member (owner only)
func RemoveTeamMember(c *gin.Context) {
	businessUUID, ok := requireOwner(c)
	if !ok {
		return
	}

	memberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid member ID format")
		return
	}

	// Owners cannot remove themselves
	if userID, exists := c.Get("userId"); exists {
		if userID.(string) == memberUUID.String() {
			utils.RespondWithError(c, http.StatusBadRequest, "Cannot remove your own account")
			return
		}
	}

	result := config.DB.Where("business_id = ? AND id = ?", businessUUID, memberUUID).
		Delete(&models.User{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to remove team member")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Team member not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team member removed"})
}
