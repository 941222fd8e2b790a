package handlers

import (
	"io"
	"net/http"
	"strings"
	"time"

	"barberbook/services/payment"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

const webhookTolerance = 5 * time.Minute

// PaymentHandler receives Stripe webhooks. There is no JWT on this route;
// the signature check is the auth. Payment status only ever moves here, the
// booking wizard never writes it from client-side signals.
type PaymentHandler struct {
	Reconciler     *payment.Reconciler
	WebhookSecret  string
	PublishableKey string
}

func (h *PaymentHandler) StripeWebhookHandler(c *gin.Context) {
	logger := getLogger(c)

	if strings.TrimSpace(h.WebhookSecret) == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Stripe webhook not configured"})
		return
	}
	sigHeader := c.GetHeader("Stripe-Signature")
	if strings.TrimSpace(sigHeader) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing Stripe-Signature header"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20)) // 1 MiB hard cap
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	event, err := webhook.ConstructEventWithTolerance(body, sigHeader, h.WebhookSecret, webhookTolerance)
	if err != nil {
		logger.Warn("Rejected stripe webhook", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	logger.Info("Stripe event received",
		zap.String("eventId", event.ID), zap.String("type", string(event.Type)))

	if err := h.Reconciler.Apply(event); err != nil {
		logger.Error("Failed to reconcile stripe event",
			zap.String("eventId", event.ID), zap.Error(err))
		// Non-2xx makes Stripe retry the delivery.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}

// PaymentConfigHandler exposes the publishable key the payment widget needs.
func (h *PaymentHandler) PaymentConfigHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"publishableKey": h.PublishableKey})
}
