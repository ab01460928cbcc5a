package request

import (
	"strings"

	"donation_tracker/internal/domain/entities"
	"donation_tracker/internal/usecase"
)

// DonationCreateRequest is the donor-form payload for POST /donations.
//
// Field-level validation (required fields, enum membership, positive amount)
// lives in the use case so all entry points share it; the DTO only shapes the
// JSON.
type DonationCreateRequest struct {
	Amount         float64 `json:"amount"`
	DonorName      string  `json:"donorName"`
	DonorEmail     string  `json:"donorEmail"`
	DonorPhone     string  `json:"donorPhone"`
	Kind           string  `json:"kind"`
	PaymentMethod  string  `json:"paymentMethod"`
	Status         string  `json:"status"`
	Notes          string  `json:"notes"`
	IdempotencyKey string  `json:"idempotencyKey"`
}

// ToInput translates the wire payload into the domain command. A header-level
// idempotency key wins over the body field when both are present.
func (r DonationCreateRequest) ToInput(headerIdempotencyKey string) usecase.SubmitDonationInput {
	key := strings.TrimSpace(headerIdempotencyKey)
	if key == "" {
		key = strings.TrimSpace(r.IdempotencyKey)
	}
	return usecase.SubmitDonationInput{
		Amount:         r.Amount,
		DonorName:      r.DonorName,
		DonorEmail:     r.DonorEmail,
		DonorPhone:     r.DonorPhone,
		Kind:           entities.DonationKind(strings.TrimSpace(r.Kind)),
		PaymentMethod:  entities.PaymentMethod(strings.TrimSpace(r.PaymentMethod)),
		Status:         entities.DonationStatus(strings.TrimSpace(r.Status)),
		Notes:          r.Notes,
		IdempotencyKey: key,
	}
}

// DonationUpdateRequest carries the two independently updatable admin fields
// for PUT /donations/{id}. At least one must be present.
type DonationUpdateRequest struct {
	Status             *string `json:"status"`
	VerificationStatus *string `json:"verificationStatus"`
}

func (r DonationUpdateRequest) Empty() bool {
	return r.Status == nil && r.VerificationStatus == nil
}
