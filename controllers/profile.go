package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook-backend/models"
	"salonbook-backend/store"
	"salonbook-backend/utils"
)

type UpdateSalonProfileInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Type    *string `json:"type"`
}

type UpdateWorkingHoursInput struct {
	WorkingHours models.JSONB `json:"workingHours" binding:"required"`
}

// ProfileController serves the authenticated staff portal's salon settings.
type ProfileController struct {
	Salons *store.SalonStore
}

func (pc *ProfileController) salonFromContext(c *gin.Context) (*models.Salon, bool) {
	id, ok := utils.SalonIDFromContext(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Salon ID not found in context")
		return nil, false
	}

	salon, err := pc.Salons.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return salon, true
}

// GetProfile returns the authenticated user's salon settings
func (pc *ProfileController) GetProfile(c *gin.Context) {
	salon, ok := pc.salonFromContext(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salonName":    salon.Name,
		"salonAddress": salon.Address,
		"slug":         salon.Slug,
		"type":         salon.Type,
		"workingHours": salon.WorkingHours,
		"publicConfig": salon.PublicConfig,
	})
}

// UpdateSalonProfile updates the salon's display fields
func (pc *ProfileController) UpdateSalonProfile(c *gin.Context) {
	salon, ok := pc.salonFromContext(c)
	if !ok {
		return
	}

	var input UpdateSalonProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Name != nil {
		salon.Name = *input.Name
	}
	if input.Address != nil {
		salon.Address = *input.Address
	}
	if input.Type != nil {
		salon.Type = *input.Type
	}

	if err := pc.Salons.Update(c.Request.Context(), salon); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update salon")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

// UpdateWorkingHours replaces the salon's working hours blob. The
// availability engine reads these on every request, so changes take effect
// immediately.
func (pc *ProfileController) UpdateWorkingHours(c *gin.Context) {
	salon, ok := pc.salonFromContext(c)
	if !ok {
		return
	}

	var input UpdateWorkingHoursInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	salon.WorkingHours = input.WorkingHours
	if err := pc.Salons.Update(c.Request.Context(), salon); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update working hours")
		return
	}

	c.JSON(http.StatusOK, gin.H{"workingHours": salon.WorkingHours})
}
