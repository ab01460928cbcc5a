package request

// PledgedOverrideRequest sets the admin display figure shown alongside the
// raised total. It never participates in goal progress.
type PledgedOverrideRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

// ReceiptRequest triggers a fire-and-forget receipt dispatch for an existing
// donation record.
type ReceiptRequest struct {
	DonationID string `json:"donationId" binding:"required"`
}
