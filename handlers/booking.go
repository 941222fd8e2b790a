package handlers

import (
	"errors"
	"net/http"

	"barberbook/services/bookingflow"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard over HTTP. Every endpoint loads
// the caller's session, applies one transition and returns the new view; the
// client UI renders whatever step the view says it is on.
type BookingHandler struct {
	Flow bookingflow.FlowService
}

type submitRequest struct {
	PayNow bool `json:"payNow"`
}

type paymentCompleteRequest struct {
	Outcome string `json:"outcome" binding:"required"`
}

// StartSessionHandler opens a fresh wizard session for the caller.
func (h *BookingHandler) StartSessionHandler(c *gin.Context) {
	logger := getLogger(c)
	profile := callerProfile(c)
	if profile == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	view, err := h.Flow.StartSession(c.Request.Context(), profile.ID)
	if err != nil {
		logger.Error("Failed to start booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start booking session"})
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetSessionHandler returns the current view without applying a transition.
func (h *BookingHandler) GetSessionHandler(c *gin.Context) {
	h.respond(c, func() (interface{}, error) {
		return h.Flow.GetSession(c.Request.Context(), c.Param("id"), callerProfile(c).ID)
	})
}

// AdvanceHandler records the selection for the current step and moves the
// wizard forward when the selection is valid. Invalid selections come back
// as an inline message on the same step, not an HTTP error.
func (h *BookingHandler) AdvanceHandler(c *gin.Context) {
	var sel bookingflow.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	h.respond(c, func() (interface{}, error) {
		return h.Flow.Advance(c.Request.Context(), c.Param("id"), callerProfile(c).ID, sel)
	})
}

// BackHandler steps to the previous selection step, keeping prior choices.
func (h *BookingHandler) BackHandler(c *gin.Context) {
	h.respond(c, func() (interface{}, error) {
		return h.Flow.Back(c.Request.Context(), c.Param("id"), callerProfile(c).ID)
	})
}

// SubmitBookingHandler creates the appointment from the confirmed
// selections. With payNow set the wizard continues into payment collection;
// otherwise it lands on the pay-at-shop success screen.
func (h *BookingHandler) SubmitBookingHandler(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	h.respond(c, func() (interface{}, error) {
		return h.Flow.SubmitBooking(c.Request.Context(), c.Param("id"), callerProfile(c).ID, req.PayNow)
	})
}

// CompletePaymentHandler records the widget outcome for the payment
// collection step. The outcome only moves the wizard; the appointment's
// payment status is reconciled from the processor's webhook.
func (h *BookingHandler) CompletePaymentHandler(c *gin.Context) {
	var req paymentCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	h.respond(c, func() (interface{}, error) {
		return h.Flow.CompletePayment(c.Request.Context(), c.Param("id"), callerProfile(c).ID, req.Outcome)
	})
}

// ResetHandler is "book another": clears everything but the location and
// returns the wizard to the first step.
func (h *BookingHandler) ResetHandler(c *gin.Context) {
	h.respond(c, func() (interface{}, error) {
		return h.Flow.Reset(c.Request.Context(), c.Param("id"), callerProfile(c).ID)
	})
}

// respond runs one flow transition and maps its failure modes to HTTP.
func (h *BookingHandler) respond(c *gin.Context, fn func() (interface{}, error)) {
	logger := getLogger(c)
	if callerProfile(c) == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	view, err := fn()
	if err != nil {
		switch {
		case errors.Is(err, bookingflow.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking session not found or expired"})
		case errors.Is(err, bookingflow.ErrNotSessionOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Booking session belongs to another client"})
		default:
			logger.Error("Booking flow transition failed",
				zap.String("sessionId", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process booking step"})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}
