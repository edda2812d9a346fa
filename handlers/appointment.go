package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zyppr/models"
	"zyppr/services/business"
	"zyppr/utils"
)

// BookAppointmentHandler books a projected slot inside one business.
func (h *HandlerBundle) BookAppointmentHandler(c *gin.Context) {
	var appt models.Appointment
	if err := c.ShouldBindJSON(&appt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Businesses.BookAppointment(c.Request.Context(), c.Param("id"), appt)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrBusinessNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		case errors.Is(err, business.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		case errors.Is(err, business.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "This slot is already booked"})
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to book appointment", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

// CancelAppointmentHandler flips an appointment to cancelled.
func (h *HandlerBundle) CancelAppointmentHandler(c *gin.Context) {
	err := h.Businesses.CancelAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, business.ErrAppointmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to cancel appointment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

// MyAppointmentsHandler lists the authenticated customer's appointments
// across all businesses, newest first.
func (h *HandlerBundle) MyAppointmentsHandler(c *gin.Context) {
	appts, err := h.Businesses.AppointmentsForUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", err.Error())
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	c.JSON(http.StatusOK, appts)
}
