package notify

import (
	"context"
	"log"

	"donation_tracker/internal/domain/entities"
	"donation_tracker/internal/usecase/interfaces"
)

// LogReceiptSender is the default receipt sink: it records the dispatch and
// does nothing else. Deployments with a mail provider swap in their own
// IReceiptSender; the donor flow treats delivery as fire-and-forget either
// way.
type LogReceiptSender struct{}

var _ interfaces.IReceiptSender = (*LogReceiptSender)(nil)

func NewLogReceiptSender() *LogReceiptSender {
	return &LogReceiptSender{}
}

func (s *LogReceiptSender) SendReceipt(ctx context.Context, d entities.Donation) error {
	log.Printf("[receipt][notify] dispatched donation_id=%s email=%s amount=%.2f kind=%s", d.ID, d.DonorEmail, d.Amount, d.Kind)
	return nil
}
