package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the external card processor (e.g. Mercado Pago).
//
// The donation service uses it for the card rail only: create/process a
// payment and keep the provider response payload for traceability. All other
// rails (pledge, QR, Zelle) bypass the gateway entirely.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
