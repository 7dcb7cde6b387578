// controllers/salon.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook-backend/models"
	"salonbook-backend/store"
	"salonbook-backend/utils"
)

// CreateSalonInput defines the expected JSON structure for creating a salon
type CreateSalonInput struct {
	Name    string `json:"name" binding:"required"`
	Owner   string `json:"owner" binding:"required"`
	Address string `json:"address" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Type    string `json:"type" binding:"required"`
}

// UpdateSalonInput defines the expected JSON structure for updating a salon
type UpdateSalonInput struct {
	Name         *string       `json:"name"`
	Slug         *string       `json:"slug"`
	Owner        *string       `json:"owner"`
	Address      *string       `json:"address"`
	Email        *string       `json:"email"`
	Type         *string       `json:"type"`
	Paid         *bool         `json:"paid"`
	PublicConfig *models.JSONB `json:"publicConfig"`
}

type SalonController struct {
	Salons *store.SalonStore
}

// GetSalons lists every salon
func (sc *SalonController) GetSalons(c *gin.Context) {
	salons, err := sc.Salons.List(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve salons")
		return
	}
	c.JSON(http.StatusOK, salons)
}

// GetSalon retrieves a salon by id
func (sc *SalonController) GetSalon(c *gin.Context) {
	salonID, ok := parseUintParam(c, "salonId")
	if !ok {
		return
	}

	salon, err := sc.Salons.GetByID(c.Request.Context(), salonID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, salon)
}

// GetSalonBySlug resolves a salon from its subdomain slug
func (sc *SalonController) GetSalonBySlug(c *gin.Context) {
	salon, err := sc.Salons.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, salon)
}

// CreateSalon creates a salon with a generated unique slug
func (sc *SalonController) CreateSalon(c *gin.Context) {
	var input CreateSalonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	salon := models.Salon{
		Name:    input.Name,
		Owner:   input.Owner,
		Address: input.Address,
		Email:   input.Email,
		Type:    input.Type,
	}

	if err := sc.Salons.Create(c.Request.Context(), &salon); err != nil {
		if errors.Is(err, store.ErrConflict) {
			utils.RespondWithError(c, http.StatusBadRequest, "A salon with this email already exists")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create salon")
		}
		return
	}

	c.JSON(http.StatusCreated, salon)
}

// UpdateSalon patches salon fields, guarding email and slug uniqueness
func (sc *SalonController) UpdateSalon(c *gin.Context) {
	salonID, ok := parseUintParam(c, "salonId")
	if !ok {
		return
	}

	var input UpdateSalonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	salon, err := sc.Salons.GetByID(c.Request.Context(), salonID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		salon.Name = *input.Name
	}
	if input.Slug != nil {
		salon.Slug = *input.Slug
	}
	if input.Owner != nil {
		salon.Owner = *input.Owner
	}
	if input.Address != nil {
		salon.Address = *input.Address
	}
	if input.Email != nil {
		salon.Email = *input.Email
	}
	if input.Type != nil {
		salon.Type = *input.Type
	}
	if input.Paid != nil {
		salon.Paid = *input.Paid
	}
	if input.PublicConfig != nil {
		salon.PublicConfig = *input.PublicConfig
	}

	if err := sc.Salons.Update(c.Request.Context(), salon); err != nil {
		if errors.Is(err, store.ErrConflict) {
			utils.RespondWithError(c, http.StatusBadRequest, "Email or slug already in use")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update salon")
		}
		return
	}

	c.JSON(http.StatusOK, salon)
}

// DeleteSalon removes a salon and cascades to its services and bookings
func (sc *SalonController) DeleteSalon(c *gin.Context) {
	salonID, ok := parseUintParam(c, "salonId")
	if !ok {
		return
	}

	removed, err := sc.Salons.Delete(c.Request.Context(), salonID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete salon")
		return
	}
	if !removed {
		utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		return
	}

	c.Status(http.StatusNoContent)
}
