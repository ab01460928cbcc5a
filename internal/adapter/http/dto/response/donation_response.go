package response

import (
	"time"

	"donation_tracker/internal/domain/entities"
)

type DonationResponse struct {
	ID                 string    `json:"id"`
	Amount             float64   `json:"amount"`
	DonorName          string    `json:"donorName"`
	DonorEmail         string    `json:"donorEmail"`
	DonorPhone         string    `json:"donorPhone,omitempty"`
	Kind               string    `json:"kind"`
	PaymentMethod      string    `json:"paymentMethod,omitempty"`
	Status             string    `json:"status"`
	VerificationStatus string    `json:"verificationStatus,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	ProviderPaymentID  string    `json:"providerPaymentId,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func FromDonation(d entities.Donation) DonationResponse {
	return DonationResponse{
		ID:                 d.ID,
		Amount:             d.Amount,
		DonorName:          d.DonorName,
		DonorEmail:         d.DonorEmail,
		DonorPhone:         d.DonorPhone,
		Kind:               string(d.Kind),
		PaymentMethod:      string(d.PaymentMethod),
		Status:             string(d.Status),
		VerificationStatus: string(d.VerificationStatus),
		Notes:              d.Notes,
		ProviderPaymentID:  d.ProviderPaymentID,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func FromDonations(list []entities.Donation) []DonationResponse {
	out := make([]DonationResponse, 0, len(list))
	for _, d := range list {
		out = append(out, FromDonation(d))
	}
	return out
}

// DonationListResponse is the dashboard payload: the records plus the current
// aggregate in one round trip.
type DonationListResponse struct {
	Donations []DonationResponse `json:"donations"`
	Stats     *StatsResponse     `json:"stats,omitempty"`
	Success   bool               `json:"success"`
}

type DonationEnvelope struct {
	Donation DonationResponse `json:"donation"`
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
