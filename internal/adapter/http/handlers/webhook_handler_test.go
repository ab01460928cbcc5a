package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"donation_tracker/internal/adapter/http/handlers/mocks"
	"donation_tracker/internal/domain/entities"
	"donation_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const testWebhookSecret = "whsec_test"

func signWebhookBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func postWebhook(h *PaymentWebhookHandler, body []byte, signature string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/webhooks/payment", h.HandleEvent)

	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payment", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Webhook-Signature", signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentWebhookHandler_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := NewPaymentWebhookHandler(mocks.NewMockIDonationUseCase(ctrl), "")

	w := postWebhook(h, []byte(`{}`), "sig")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestPaymentWebhookHandler_Signature(t *testing.T) {
	t.Run("missing signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentWebhookHandler(mocks.NewMockIDonationUseCase(ctrl), testWebhookSecret)

		w := postWebhook(h, []byte(`{}`), "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentWebhookHandler(mocks.NewMockIDonationUseCase(ctrl), testWebhookSecret)

		w := postWebhook(h, []byte(`{}`), "deadbeef")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("signature over different body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentWebhookHandler(mocks.NewMockIDonationUseCase(ctrl), testWebhookSecret)

		w := postWebhook(h, []byte(`{"id":"evt-1"}`), signWebhookBody([]byte(`{"id":"evt-2"}`)))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestPaymentWebhookHandler_PaymentSucceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDonationUseCase(ctrl)
	h := NewPaymentWebhookHandler(uc, testWebhookSecret)

	uc.EXPECT().UpdateStatus(gomock.Any(), "don-1", entities.StatusCompleted).
		Return(entities.Donation{ID: "don-1", Status: entities.StatusCompleted}, nil)

	body := []byte(`{"id":"evt-1","type":"payment.succeeded","data":{"reference":"don-1","providerPaymentId":"mp-9"}}`)
	w := postWebhook(h, body, signWebhookBody(body))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPaymentWebhookHandler_PaymentFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDonationUseCase(ctrl)
	h := NewPaymentWebhookHandler(uc, testWebhookSecret)

	uc.EXPECT().UpdateStatus(gomock.Any(), "don-1", entities.StatusFailed).
		Return(entities.Donation{ID: "don-1", Status: entities.StatusFailed}, nil)

	body := []byte(`{"id":"evt-2","type":"payment.failed","data":{"reference":"don-1"}}`)
	w := postWebhook(h, body, signWebhookBody(body))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPaymentWebhookHandler_DuplicateEventSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDonationUseCase(ctrl)
	h := NewPaymentWebhookHandler(uc, testWebhookSecret)

	// The transition runs once; the redelivery is acknowledged without it.
	uc.EXPECT().UpdateStatus(gomock.Any(), "don-1", entities.StatusCompleted).
		Return(entities.Donation{ID: "don-1", Status: entities.StatusCompleted}, nil)

	body := []byte(`{"id":"evt-3","type":"payment.succeeded","data":{"reference":"don-1"}}`)
	sig := signWebhookBody(body)

	if w := postWebhook(h, body, sig); w.Code != http.StatusOK {
		t.Fatalf("first delivery: expected 200, got %d", w.Code)
	}
	if w := postWebhook(h, body, sig); w.Code != http.StatusOK {
		t.Fatalf("redelivery: expected 200, got %d", w.Code)
	}
}

func TestPaymentWebhookHandler_AlreadySettledAcknowledged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDonationUseCase(ctrl)
	h := NewPaymentWebhookHandler(uc, testWebhookSecret)

	uc.EXPECT().UpdateStatus(gomock.Any(), "don-1", entities.StatusCompleted).
		Return(entities.Donation{}, usecase.ErrInvalidStatusTransition)

	body := []byte(`{"id":"evt-4","type":"payment.succeeded","data":{"reference":"don-1"}}`)
	w := postWebhook(h, body, signWebhookBody(body))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 acknowledgement, got %d", w.Code)
	}
}

func TestPaymentWebhookHandler_UnknownReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDonationUseCase(ctrl)
	h := NewPaymentWebhookHandler(uc, testWebhookSecret)

	uc.EXPECT().UpdateStatus(gomock.Any(), "don-missing", entities.StatusCompleted).
		Return(entities.Donation{}, usecase.ErrDonationNotFound)

	body := []byte(`{"id":"evt-5","type":"payment.succeeded","data":{"reference":"don-missing"}}`)
	w := postWebhook(h, body, signWebhookBody(body))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPaymentWebhookHandler_UnhandledTypeAcknowledged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDonationUseCase(ctrl)
	h := NewPaymentWebhookHandler(uc, testWebhookSecret)

	body := []byte(`{"id":"evt-6","type":"payment.refunded","data":{"reference":"don-1"}}`)
	w := postWebhook(h, body, signWebhookBody(body))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
