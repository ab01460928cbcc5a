package interfaces

import (
	"context"

	"donation_tracker/internal/domain/entities"
)

// IReceiptSender is the fire-and-forget sink for donor receipts. Delivery
// failures are logged by implementations and never propagated to the donor
// flow.
type IReceiptSender interface {
	SendReceipt(ctx context.Context, d entities.Donation) error
}
