package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"donation_tracker/internal/domain/entities"
	"donation_tracker/internal/usecase"
	"donation_tracker/pkg"

	"github.com/gin-gonic/gin"
)

const (
	webhookSignatureHeader = "X-Webhook-Signature"

	eventPaymentSucceeded = "payment.succeeded"
	eventPaymentFailed    = "payment.failed"

	// processed event ids are remembered briefly so provider redeliveries
	// do not re-run transitions
	webhookDedupeWindow = 10 * time.Minute
)

// paymentEvent is the signed payload posted by the payment processor.
// Reference carries the donation id set as external_reference when the card
// payment was created.
type paymentEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Reference         string `json:"reference"`
		ProviderPaymentID string `json:"providerPaymentId"`
	} `json:"data"`
}

// PaymentWebhookHandler receives settlement events from the card processor
// and transitions the referenced donation record. Events with a bad signature
// or malformed payload are rejected with a client error and never retried or
// queued by this service.

type PaymentWebhookHandler struct {
	usecase usecase.IDonationUseCase
	secret  string

	mu        sync.Mutex
	processed map[string]time.Time
}

func NewPaymentWebhookHandler(uc usecase.IDonationUseCase, secret string) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{
		usecase:   uc,
		secret:    secret,
		processed: make(map[string]time.Time),
	}
}

// HandleEvent processes one signed event.
//
// @Summary Payment processor webhook
// @Success 200 {object} response.SuccessResponse
// @Router  /webhooks/payment [post]
func (h *PaymentWebhookHandler) HandleEvent(c *gin.Context) {
	if h.secret == "" {
		appErr := pkg.NewDomainErrorSimple("WEBHOOK_NOT_CONFIGURED", "Payment webhook not configured", http.StatusServiceUnavailable)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !h.verifySignature(raw, c.GetHeader(webhookSignatureHeader)) {
		log.Printf("[webhook][handler] signature mismatch remote=%s", c.ClientIP())
		appErr := pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var event paymentEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid webhook payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if event.ID != "" && h.alreadyProcessed(event.ID) {
		log.Printf("[webhook][handler] duplicate event skipped event_id=%s", event.ID)
		c.JSON(http.StatusOK, gin.H{"received": true, "duplicate": true})
		return
	}

	switch event.Type {
	case eventPaymentSucceeded:
		h.applyOutcome(c, event, entities.StatusCompleted)
	case eventPaymentFailed:
		h.applyOutcome(c, event, entities.StatusFailed)
	default:
		log.Printf("[webhook][handler] unhandled event type=%s event_id=%s", event.Type, event.ID)
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

func (h *PaymentWebhookHandler) applyOutcome(c *gin.Context, event paymentEvent, status entities.DonationStatus) {
	log.Printf("[webhook][handler] payment outcome event_id=%s reference=%s status=%s", event.ID, event.Data.Reference, status)

	_, err := h.usecase.UpdateStatus(c.Request.Context(), event.Data.Reference, status)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidStatusTransition) {
			// Record already settled; acknowledge so the provider stops
			// redelivering.
			h.markProcessed(event.ID)
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.markProcessed(event.ID)
	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (h *PaymentWebhookHandler) verifySignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (h *PaymentWebhookHandler) alreadyProcessed(eventID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	cutoff := time.Now().Add(-webhookDedupeWindow)
	for id, seen := range h.processed {
		if seen.Before(cutoff) {
			delete(h.processed, id)
		}
	}

	_, ok := h.processed[eventID]
	return ok
}

func (h *PaymentWebhookHandler) markProcessed(eventID string) {
	if eventID == "" {
		return
	}
	h.mu.Lock()
	h.processed[eventID] = time.Now()
	h.mu.Unlock()
}
