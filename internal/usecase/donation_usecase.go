package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"donation_tracker/internal/domain/entities"
	"donation_tracker/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDonationNotFound         = errors.New("donation not found")
	ErrInvalidDonationID        = errors.New("invalid donation id")
	ErrInvalidDonationAmount    = errors.New("invalid donation amount")
	ErrMissingDonorName         = errors.New("missing donor name")
	ErrMissingDonorEmail        = errors.New("missing donor email")
	ErrInvalidDonationKind      = errors.New("invalid donation kind")
	ErrInvalidPaymentMethod     = errors.New("invalid payment method")
	ErrInvalidDonationStatus    = errors.New("invalid donation status")
	ErrInvalidVerification      = errors.New("invalid verification status")
	ErrInvalidStatusTransition  = errors.New("invalid status transition")
	ErrInvalidDonationRole      = errors.New("invalid donation role")
	ErrUpdateFieldsMissing      = errors.New("status or verification status required")
	ErrInvalidRecentLimit       = errors.New("invalid recent donations limit")
	errIdempotentReplay         = errors.New("idempotent replay")
)

// SubmitDonationInput is the domain command for a new donor action.
type SubmitDonationInput struct {
	Amount         float64
	DonorName      string
	DonorEmail     string
	DonorPhone     string
	Kind           entities.DonationKind
	PaymentMethod  entities.PaymentMethod
	Status         entities.DonationStatus
	Notes          string
	IdempotencyKey string
}

// IDonationUseCase is the single entry point for creating and mutating
// donation records.
//
// These operations map to the tracker surfaces:
//   - donor forms => Submit()
//   - admin dashboard => UpdateStatus() / UpdateVerification() / Delete()
//   - pledge vs donation listings => ListByRole()

type IDonationUseCase interface {
	Submit(ctx context.Context, in SubmitDonationInput) (entities.Donation, error)
	GetByID(ctx context.Context, id string) (entities.Donation, error)
	UpdateStatus(ctx context.Context, id string, status entities.DonationStatus) (entities.Donation, error)
	UpdateVerification(ctx context.Context, id string, vs entities.VerificationStatus) (entities.Donation, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]entities.Donation, error)
	ListByRole(ctx context.Context, role string) ([]entities.Donation, error)
	ListRecent(ctx context.Context, limit int) ([]entities.Donation, error)
}

type DonationUseCase struct {
	repo     interfaces.IDonationRepository
	stats    IStatsUseCase
	gateway  interfaces.IPaymentGateway
	receipts interfaces.IReceiptSender
}

var _ IDonationUseCase = (*DonationUseCase)(nil)

func NewDonationUseCase(
	repo interfaces.IDonationRepository,
	stats IStatsUseCase,
	gateway interfaces.IPaymentGateway,
	receipts interfaces.IReceiptSender,
) *DonationUseCase {
	return &DonationUseCase{repo: repo, stats: stats, gateway: gateway, receipts: receipts}
}

func (u *DonationUseCase) Submit(ctx context.Context, in SubmitDonationInput) (entities.Donation, error) {
	log.Printf("[donation][usecase] submit start kind=%s method=%s amount=%.2f", in.Kind, in.PaymentMethod, in.Amount)

	d, err := u.buildRecord(in)
	if err != nil {
		return entities.Donation{}, err
	}

	// Card rail: process through the gateway before persisting so the
	// provider outcome lands on the stored record. Gateway failures keep the
	// record pending; the payment webhook reconciles later.
	if d.PaymentMethod == entities.MethodCard && u.gateway != nil {
		u.processCardPayment(ctx, &d)
	}

	// The marker is fixed before the write: later status transitions do not
	// touch the aggregate, and delete compensates exactly what was counted.
	d.CountedAtCreation = !entities.ContributionDelta(d.Amount, d.Kind, d.Status).IsZero()

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		log.Printf("[donation][usecase] create failed donation_id=%s err=%v", d.ID, err)
		return entities.Donation{}, err
	}
	if created.ID == "" {
		// Conditional create lost to an earlier submission with the same
		// idempotency-derived id. Replay the original outcome, no double
		// count.
		existing, err := u.repo.GetByID(ctx, d.ID)
		if err != nil {
			return entities.Donation{}, err
		}
		if existing.ID == "" {
			return entities.Donation{}, fmt.Errorf("%w: record %s vanished after duplicate create", errIdempotentReplay, d.ID)
		}
		log.Printf("[donation][usecase] idempotent replay donation_id=%s", existing.ID)
		return existing, nil
	}

	if err := u.stats.RecordContribution(ctx, created.Amount, created.Kind, created.Status); err != nil {
		// The record is already durable; a rollup failure must not fail the
		// donor. It surfaces later as aggregate drift.
		log.Printf("[donation][usecase] stats rollup failed donation_id=%s err=%v", created.ID, err)
	}

	if u.receipts != nil {
		go func(d entities.Donation) {
			if err := u.receipts.SendReceipt(context.Background(), d); err != nil {
				log.Printf("[donation][usecase] receipt dispatch failed donation_id=%s err=%v", d.ID, err)
			}
		}(created)
	}

	log.Printf("[donation][usecase] submit success donation_id=%s status=%s", created.ID, created.Status)
	return created, nil
}

func (u *DonationUseCase) buildRecord(in SubmitDonationInput) (entities.Donation, error) {
	in.DonorName = strings.TrimSpace(in.DonorName)
	in.DonorEmail = strings.TrimSpace(in.DonorEmail)
	in.IdempotencyKey = strings.TrimSpace(in.IdempotencyKey)

	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) || in.Amount <= 0 {
		return entities.Donation{}, ErrInvalidDonationAmount
	}
	if in.DonorName == "" {
		return entities.Donation{}, ErrMissingDonorName
	}
	if in.DonorEmail == "" {
		return entities.Donation{}, ErrMissingDonorEmail
	}
	if !in.Kind.Valid() {
		return entities.Donation{}, ErrInvalidDonationKind
	}

	if in.PaymentMethod == "" {
		if in.Kind == entities.KindPledge {
			in.PaymentMethod = entities.MethodPledge
		} else {
			in.PaymentMethod = entities.MethodOther
		}
	}
	if !in.PaymentMethod.Valid() {
		return entities.Donation{}, ErrInvalidPaymentMethod
	}

	if in.Status == "" {
		in.Status = entities.StatusPending
	}
	if !in.Status.Valid() {
		return entities.Donation{}, ErrInvalidDonationStatus
	}

	id := uuid.NewString()
	if in.IdempotencyKey != "" {
		// Deterministic id: a retried submission after a partial failure maps
		// to the same record and trips the conditional create.
		id = uuid.NewSHA1(uuid.NameSpaceOID, []byte("donation:"+in.IdempotencyKey)).String()
	}

	now := time.Now().UTC()
	d := entities.Donation{
		ID:             id,
		Amount:         in.Amount,
		DonorName:      in.DonorName,
		DonorEmail:     in.DonorEmail,
		DonorPhone:     strings.TrimSpace(in.DonorPhone),
		Kind:           in.Kind,
		PaymentMethod:  in.PaymentMethod,
		Status:         in.Status,
		Notes:          in.Notes,
		IdempotencyKey: in.IdempotencyKey,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if d.PaymentMethod.ManualMethod() && d.VerificationStatus == "" {
		d.VerificationStatus = entities.VerificationNotVerified
	}
	return d, nil
}

func (u *DonationUseCase) processCardPayment(ctx context.Context, d *entities.Donation) {
	payload, err := json.Marshal(map[string]any{
		"transaction_amount": d.Amount,
		"description":        fmt.Sprintf("Donation %s", d.ID),
		"external_reference": d.ID,
		"payer":              map[string]any{"email": d.DonorEmail},
	})
	if err != nil {
		log.Printf("[donation][usecase] card payload marshal failed donation_id=%s err=%v", d.ID, err)
		return
	}

	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[donation][usecase] card gateway failed donation_id=%s err=%v", d.ID, err)
		return
	}

	d.ProviderPaymentID = providerID
	if providerStatus == "approved" {
		d.Status = entities.StatusCompleted
	}
	log.Printf("[donation][usecase] card gateway success donation_id=%s provider_payment_id=%s provider_status=%s", d.ID, providerID, providerStatus)
}

func (u *DonationUseCase) GetByID(ctx context.Context, id string) (entities.Donation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Donation{}, ErrInvalidDonationID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Donation{}, err
	}
	if d.ID == "" {
		return entities.Donation{}, ErrDonationNotFound
	}
	return d, nil
}

func (u *DonationUseCase) UpdateStatus(ctx context.Context, id string, status entities.DonationStatus) (entities.Donation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Donation{}, ErrInvalidDonationID
	}
	if !status.Valid() {
		return entities.Donation{}, ErrInvalidDonationStatus
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Donation{}, err
	}
	if current.ID == "" {
		return entities.Donation{}, ErrDonationNotFound
	}
	if !current.Status.CanTransition(status) {
		log.Printf("[donation][usecase] rejected transition donation_id=%s from=%s to=%s", id, current.Status, status)
		return entities.Donation{}, ErrInvalidStatusTransition
	}

	// Totals are deliberately left untouched here: a cancelled record keeps
	// its contribution in the aggregate. Only delete compensates.
	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Donation{}, err
	}
	if updated.ID == "" {
		return entities.Donation{}, ErrDonationNotFound
	}
	log.Printf("[donation][usecase] status updated donation_id=%s from=%s to=%s", id, current.Status, status)
	return updated, nil
}

func (u *DonationUseCase) UpdateVerification(ctx context.Context, id string, vs entities.VerificationStatus) (entities.Donation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Donation{}, ErrInvalidDonationID
	}
	if !vs.Valid() {
		return entities.Donation{}, ErrInvalidVerification
	}

	updated, err := u.repo.UpdateVerification(ctx, id, vs)
	if err != nil {
		return entities.Donation{}, err
	}
	if updated.ID == "" {
		return entities.Donation{}, ErrDonationNotFound
	}
	log.Printf("[donation][usecase] verification updated donation_id=%s to=%s", id, vs)
	return updated, nil
}

func (u *DonationUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidDonationID
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.ID == "" {
		return ErrDonationNotFound
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDonationNotFound
	}

	if err := u.stats.CompensateRemoval(ctx, current); err != nil {
		log.Printf("[donation][usecase] removal compensation failed donation_id=%s err=%v", id, err)
	}
	log.Printf("[donation][usecase] donation deleted donation_id=%s", id)
	return nil
}

func (u *DonationUseCase) ListAll(ctx context.Context) ([]entities.Donation, error) {
	return u.repo.List(ctx)
}

func (u *DonationUseCase) ListByRole(ctx context.Context, role string) ([]entities.Donation, error) {
	switch strings.TrimSpace(role) {
	case string(entities.KindPledge):
		return u.repo.ListByKind(ctx, entities.KindPledge)
	case string(entities.KindDonation):
		return u.repo.ListByKind(ctx, entities.KindDonation)
	default:
		return nil, ErrInvalidDonationRole
	}
}

func (u *DonationUseCase) ListRecent(ctx context.Context, limit int) ([]entities.Donation, error) {
	if limit <= 0 {
		return nil, ErrInvalidRecentLimit
	}
	return u.repo.ListRecent(ctx, limit)
}
