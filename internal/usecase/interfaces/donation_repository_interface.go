package interfaces

import (
	"context"

	"donation_tracker/internal/domain/entities"
)

// IDonationRepository abstracts record-store persistence for Donation.
//
// Conventions (shared with the stats repository):
//   - a zero-value entity with an empty ID means "absent", not an error
//   - Create must reject an already-existing id so idempotency-derived ids
//     dedupe retried submissions at the store level

type IDonationRepository interface {
	Create(ctx context.Context, d entities.Donation) (entities.Donation, error)
	GetByID(ctx context.Context, id string) (entities.Donation, error)
	UpdateStatus(ctx context.Context, id string, status entities.DonationStatus) (entities.Donation, error)
	UpdateVerification(ctx context.Context, id string, vs entities.VerificationStatus) (entities.Donation, error)
	Delete(ctx context.Context, id string) (bool, error)
	// List returns all records newest-first. ListByKind filters to one kind,
	// ListRecent caps the result at limit; both keep the newest-first order.
	List(ctx context.Context) ([]entities.Donation, error)
	ListByKind(ctx context.Context, kind entities.DonationKind) ([]entities.Donation, error)
	ListRecent(ctx context.Context, limit int) ([]entities.Donation, error)
}
