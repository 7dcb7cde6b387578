// controllers/public.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"salonbook-backend/scheduling"
	"salonbook-backend/store"
	"salonbook-backend/utils"
)

// PublicBookingInput is the unauthenticated booking form. No endsAt: the end
// time is always derived from the service duration.
type PublicBookingInput struct {
	ServiceID     uint      `json:"serviceId" binding:"required"`
	CustomerName  string    `json:"customerName" binding:"required"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	StartsAt      time.Time `json:"startsAt" binding:"required"`
}

// PublicController serves the unauthenticated booking page endpoints.
type PublicController struct {
	Salons       *store.SalonStore
	Services     *store.ServiceStore
	Scheduler    *scheduling.Scheduler
	Availability *scheduling.Engine
}

// GetSalon returns the minimal public profile: display fields, publicConfig
// and the active services
func (pc *PublicController) GetSalon(c *gin.Context) {
	salonID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	salon, err := pc.Salons.GetByID(c.Request.Context(), salonID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	services, err := pc.Services.ListActive(c.Request.Context(), salonID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           salon.ID,
		"name":         salon.Name,
		"address":      salon.Address,
		"type":         salon.Type,
		"publicConfig": salon.PublicConfig,
		"services":     services,
	})
}

// GetServices returns only the salon's active services
func (pc *PublicController) GetServices(c *gin.Context) {
	salonID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	services, err := pc.Services.ListActive(c.Request.Context(), salonID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// CreateBooking admits a customer booking from the public page. The service
// must be active and belong to this salon.
func (pc *PublicController) CreateBooking(c *gin.Context) {
	salonID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var input PublicBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := pc.Scheduler.Admit(c.Request.Context(), scheduling.BookingRequest{
		SalonID:              salonID,
		ServiceID:            input.ServiceID,
		CustomerName:         input.CustomerName,
		CustomerEmail:        input.CustomerEmail,
		CustomerPhone:        input.CustomerPhone,
		StartsAt:             input.StartsAt,
		RequireActiveService: true,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	// Minimal body: the public page never sees other customers' data.
	c.JSON(http.StatusCreated, gin.H{
		"id":        booking.ID,
		"reference": booking.Reference,
		"serviceId": booking.ServiceID,
		"startsAt":  booking.StartsAt,
		"endsAt":    booking.EndsAt,
		"status":    booking.Status,
	})
}

// GetAvailability enumerates the start times where the requested service
// still fits on the given date, within the salon's working hours.
// Query params: serviceId (required), date (YYYY-MM-DD, required),
// granularity (minutes, optional).
func (pc *PublicController) GetAvailability(c *gin.Context) {
	salonID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("serviceId"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid serviceId format")
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	stepMin := scheduling.DefaultGranularity
	if raw := c.Query("granularity"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			stepMin = parsed
		}
	}

	salon, err := pc.Salons.GetByID(c.Request.Context(), salonID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	hours := scheduling.HoursForDate(salon.WorkingHours, date)
	slots, err := pc.Availability.ComputeAvailability(c.Request.Context(), salonID, date, uint(serviceID), hours, stepMin)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  c.Query("date"),
		"slots": slots,
	})
}
