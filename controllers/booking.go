// controllers/booking.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"salonbook-backend/scheduling"
	"salonbook-backend/store"
	"salonbook-backend/utils"
)

// CreateBookingInput defines the expected JSON structure for the staff
// booking path. EndsAt may be given explicitly; when omitted it is derived
// from the service duration.
type CreateBookingInput struct {
	ServiceID     uint       `json:"serviceId" binding:"required"`
	CustomerName  string     `json:"customerName" binding:"required"`
	CustomerEmail string     `json:"customerEmail"`
	CustomerPhone string     `json:"customerPhone"`
	StartsAt      time.Time  `json:"startsAt" binding:"required"`
	EndsAt        *time.Time `json:"endsAt"`
	Notes         string     `json:"notes"`
}

// UpdateBookingInput defines the expected JSON structure for updating a
// booking; nil fields are left unchanged
type UpdateBookingInput struct {
	StartsAt  *time.Time `json:"startsAt"`
	EndsAt    *time.Time `json:"endsAt"`
	ServiceID *uint      `json:"serviceId"`
	Status    *string    `json:"status"`
	Notes     *string    `json:"notes"`
}

type BookingController struct {
	Scheduler *scheduling.Scheduler
	Bookings  *store.BookingStore
}

// GetBookings retrieves all bookings for a salon
func (bc *BookingController) GetBookings(c *gin.Context) {
	salonID, ok := parseUintParam(c, "salonId")
	if !ok {
		return
	}

	bookings, err := bc.Bookings.ListBySalon(c.Request.Context(), salonID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// CreateBooking admits a staff-created booking for the salon
func (bc *BookingController) CreateBooking(c *gin.Context) {
	salonID, ok := parseUintParam(c, "salonId")
	if !ok {
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	req := scheduling.BookingRequest{
		SalonID:       salonID,
		ServiceID:     input.ServiceID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Notes:         input.Notes,
		StartsAt:      input.StartsAt,
	}
	if input.EndsAt != nil {
		req.EndsAt = *input.EndsAt
	}

	booking, err := bc.Scheduler.Admit(c.Request.Context(), req)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// UpdateBooking patches a booking; time or service changes re-run the
// overlap check against the salon's other bookings
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := bc.Scheduler.Reschedule(c.Request.Context(), id, scheduling.ReschedulePatch{
		StartsAt:  input.StartsAt,
		EndsAt:    input.EndsAt,
		ServiceID: input.ServiceID,
		Status:    input.Status,
		Notes:     input.Notes,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// DeleteBooking removes a booking
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	removed, err := bc.Bookings.Delete(c.Request.Context(), id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete booking")
		return
	}
	if !removed {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// respondSchedulingError maps scheduling rejections onto status codes so the
// client can tell "slot taken" apart from a generic failure.
func respondSchedulingError(c *gin.Context, err error) {
	var validation *scheduling.ValidationError
	switch {
	case errors.As(err, &validation):
		utils.RespondWithError(c, http.StatusBadRequest, validation.Error())
	case errors.Is(err, scheduling.ErrInvalidService):
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service")
	case errors.Is(err, scheduling.ErrSlotConflict):
		utils.RespondWithError(c, http.StatusConflict, "Time slot is already booked")
	case errors.Is(err, scheduling.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
	default:
		log.Printf("booking operation failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+name+" format")
		return 0, false
	}
	return uint(value), true
}
