// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook-backend/models"
	"salonbook-backend/store"
	"salonbook-backend/utils"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"durationMin" binding:"required,min=1"` // in minutes
	Price       float64 `json:"price" binding:"min=0"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	DurationMin *int     `json:"durationMin"`
	Price       *float64 `json:"price"`
	Active      *bool    `json:"active"`
}

type ServiceController struct {
	Services *store.ServiceStore
}

// GetServices retrieves all services for the salon
func (sc *ServiceController) GetServices(c *gin.Context) {
	salonID, ok := parseUintParam(c, "salonId")
	if !ok {
		return
	}

	services, err := sc.Services.List(c.Request.Context(), salonID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// CreateService creates a new service for the salon
func (sc *ServiceController) CreateService(c *gin.Context) {
	salonID, ok := parseUintParam(c, "salonId")
	if !ok {
		return
	}

	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		SalonID:     salonID,
		Name:        input.Name,
		Description: input.Description,
		DurationMin: input.DurationMin,
		Price:       input.Price,
		Active:      true,
	}

	if err := sc.Services.Create(c.Request.Context(), &service); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// UpdateService updates an existing service. Deactivating a service stops it
// from being offered for new bookings; existing bookings keep referencing it.
func (sc *ServiceController) UpdateService(c *gin.Context) {
	serviceID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := sc.Services.GetByID(c.Request.Context(), serviceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.DurationMin != nil {
		if *input.DurationMin <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "durationMin must be positive")
			return
		}
		service.DurationMin = *input.DurationMin
	}
	if input.Price != nil {
		if *input.Price < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "price must not be negative")
			return
		}
		service.Price = *input.Price
	}
	if input.Active != nil {
		service.Active = *input.Active
	}

	if err := sc.Services.Update(c.Request.Context(), service); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service together with its bookings
func (sc *ServiceController) DeleteService(c *gin.Context) {
	serviceID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	removed, err := sc.Services.Delete(c.Request.Context(), serviceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if !removed {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.Status(http.StatusNoContent)
}
