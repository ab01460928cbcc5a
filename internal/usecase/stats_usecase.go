package usecase

import (
	"context"
	"errors"
	"log"
	"math"

	"donation_tracker/internal/domain/entities"
	"donation_tracker/internal/usecase/interfaces"
)

var (
	ErrStatsNotInitialized   = errors.New("stats aggregate not initialized")
	ErrInvalidContribution   = errors.New("invalid contribution")
	ErrInvalidOverrideAmount = errors.New("invalid pledged amount override")
)

// IStatsUseCase maintains the FundraiserStats singleton as an incrementally
// updated running total.
//
// These operations map to the aggregation responsibilities of the tracker:
//   - submission rollup => RecordContribution()
//   - first-run seeding => InitializeIfAbsent()
//   - admin "start over" => ResetAll()
//   - admin display figure => SetPledgedAmountOverride()

type IStatsUseCase interface {
	Get(ctx context.Context) (entities.FundraiserStats, error)
	RecordContribution(ctx context.Context, amount float64, kind entities.DonationKind, status entities.DonationStatus) error
	CompensateRemoval(ctx context.Context, d entities.Donation) error
	InitializeIfAbsent(ctx context.Context) error
	ResetAll(ctx context.Context) (entities.FundraiserStats, error)
	SetPledgedAmountOverride(ctx context.Context, amount float64) (entities.FundraiserStats, error)
}

type StatsUseCase struct {
	repo       interfaces.IStatsRepository
	goalAmount float64
}

var _ IStatsUseCase = (*StatsUseCase)(nil)

func NewStatsUseCase(repo interfaces.IStatsRepository, goalAmount float64) *StatsUseCase {
	return &StatsUseCase{repo: repo, goalAmount: goalAmount}
}

func (u *StatsUseCase) Get(ctx context.Context) (entities.FundraiserStats, error) {
	stats, err := u.repo.Get(ctx)
	if err != nil {
		return entities.FundraiserStats{}, err
	}
	if stats.ID == "" {
		return entities.FundraiserStats{}, ErrStatsNotInitialized
	}
	return stats, nil
}

// RecordContribution applies the rollup rule for one accepted record as a
// single atomic add. A missing aggregate is a logged no-op, not an error: the
// submission itself already succeeded and must not be rolled back here.
func (u *StatsUseCase) RecordContribution(ctx context.Context, amount float64, kind entities.DonationKind, status entities.DonationStatus) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return ErrInvalidContribution
	}
	if !kind.Valid() || !status.Valid() {
		return ErrInvalidContribution
	}

	delta := entities.ContributionDelta(amount, kind, status)
	if delta.IsZero() {
		log.Printf("[stats][usecase] contribution not counted kind=%s status=%s", kind, status)
		return nil
	}

	updated, err := u.repo.ApplyDelta(ctx, delta)
	if err != nil {
		return err
	}
	if updated.ID == "" {
		log.Printf("[stats][usecase] aggregate missing; contribution dropped amount=%.2f kind=%s", amount, kind)
		return nil
	}
	log.Printf("[stats][usecase] contribution recorded amount=%.2f kind=%s total_raised=%.2f", amount, kind, updated.TotalRaised)
	return nil
}

// CompensateRemoval subtracts what a deleted record contributed at submission
// time, so destructive admin deletes do not leave the totals overstated. The
// contribution comes from the record's counted-at-creation marker, not its
// current status: a cancelled record still holds its count until deleted.
func (u *StatsUseCase) CompensateRemoval(ctx context.Context, d entities.Donation) error {
	delta := d.CountedContribution().Negate()
	if delta.IsZero() {
		return nil
	}
	updated, err := u.repo.ApplyDelta(ctx, delta)
	if err != nil {
		return err
	}
	if updated.ID == "" {
		log.Printf("[stats][usecase] aggregate missing; removal compensation dropped donation_id=%s", d.ID)
		return nil
	}
	log.Printf("[stats][usecase] removal compensated donation_id=%s amount=%.2f total_raised=%.2f", d.ID, d.Amount, updated.TotalRaised)
	return nil
}

func (u *StatsUseCase) InitializeIfAbsent(ctx context.Context) error {
	created, err := u.repo.InitIfAbsent(ctx, u.goalAmount)
	if err != nil {
		return err
	}
	if created {
		log.Printf("[stats][usecase] aggregate initialized goal=%.2f", u.goalAmount)
	}
	return nil
}

func (u *StatsUseCase) ResetAll(ctx context.Context) (entities.FundraiserStats, error) {
	stats, err := u.repo.Reset(ctx)
	if err != nil {
		return entities.FundraiserStats{}, err
	}
	if stats.ID == "" {
		return entities.FundraiserStats{}, ErrStatsNotInitialized
	}
	log.Printf("[stats][usecase] aggregate reset goal=%.2f", stats.GoalAmount)
	return stats, nil
}

func (u *StatsUseCase) SetPledgedAmountOverride(ctx context.Context, amount float64) (entities.FundraiserStats, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return entities.FundraiserStats{}, ErrInvalidOverrideAmount
	}

	stats, err := u.repo.SetPledgedAmountOverride(ctx, amount)
	if err != nil {
		return entities.FundraiserStats{}, err
	}
	if stats.ID == "" {
		return entities.FundraiserStats{}, ErrStatsNotInitialized
	}
	return stats, nil
}
