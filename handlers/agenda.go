package handlers

import (
	"errors"
	"net/http"

	"barberbook/models"
	"barberbook/services/agenda"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AgendaHandler serves the appointment book.
type AgendaHandler struct {
	Agenda agenda.AgendaService
}

// ListAppointmentsHandler returns appointments scoped to the caller's role.
func (h *AgendaHandler) ListAppointmentsHandler(c *gin.Context) {
	logger := getLogger(c)
	caller := callerProfile(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appointments, err := h.Agenda.ListForCaller(caller)
	if err != nil {
		logger.Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// CancelAppointmentHandler cancels a pending appointment.
func (h *AgendaHandler) CancelAppointmentHandler(c *gin.Context) {
	h.transition(c, h.Agenda.Cancel)
}

// CompleteAppointmentHandler marks a pending appointment completed. Staff
// only.
func (h *AgendaHandler) CompleteAppointmentHandler(c *gin.Context) {
	h.transition(c, h.Agenda.Complete)
}

func (h *AgendaHandler) transition(c *gin.Context, fn func(caller *models.Profile, appointmentID string) (*models.Appointment, error)) {
	logger := getLogger(c)
	caller := callerProfile(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	apt, err := fn(caller, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, agenda.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "You may not act on this appointment"})
		default:
			logger.Error("Appointment transition failed",
				zap.String("appointmentId", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, apt)
}
