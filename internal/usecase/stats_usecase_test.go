package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"donation_tracker/internal/domain/entities"
	mock_interfaces "donation_tracker/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestStatsUseCase_Get(t *testing.T) {
	t.Run("not initialized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStatsRepository(ctrl)
		repo.EXPECT().Get(gomock.Any()).Return(entities.FundraiserStats{}, nil)

		uc := NewStatsUseCase(repo, 1000)
		_, err := uc.Get(context.Background())
		if !errors.Is(err, ErrStatsNotInitialized) {
			t.Fatalf("expected ErrStatsNotInitialized, got %v", err)
		}
	})

	t.Run("returns the aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStatsRepository(ctrl)
		repo.EXPECT().Get(gomock.Any()).Return(entities.FundraiserStats{ID: entities.StatsDocID, TotalRaised: 350}, nil)

		uc := NewStatsUseCase(repo, 1000)
		stats, err := uc.Get(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.TotalRaised != 350 {
			t.Fatalf("expected total 350, got %.2f", stats.TotalRaised)
		}
	})
}

func TestStatsUseCase_RecordContribution(t *testing.T) {
	t.Run("rejects invalid amounts", func(t *testing.T) {
		uc := NewStatsUseCase(nil, 1000)
		for _, amount := range []float64{-1, math.NaN(), math.Inf(1)} {
			err := uc.RecordContribution(context.Background(), amount, entities.KindDonation, entities.StatusPending)
			if !errors.Is(err, ErrInvalidContribution) {
				t.Fatalf("amount %v: expected ErrInvalidContribution, got %v", amount, err)
			}
		}
	})

	t.Run("rejects invalid enums", func(t *testing.T) {
		uc := NewStatsUseCase(nil, 1000)
		if err := uc.RecordContribution(context.Background(), 10, "sponsorship", entities.StatusPending); !errors.Is(err, ErrInvalidContribution) {
			t.Fatalf("expected ErrInvalidContribution, got %v", err)
		}
		if err := uc.RecordContribution(context.Background(), 10, entities.KindDonation, "archived"); !errors.Is(err, ErrInvalidContribution) {
			t.Fatalf("expected ErrInvalidContribution, got %v", err)
		}
	})

	t.Run("counted donation applies one atomic delta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStatsRepository(ctrl)
		repo.EXPECT().ApplyDelta(gomock.Any(), entities.StatsDelta{Raised: 25, Donations: 1}).
			Return(entities.FundraiserStats{ID: entities.StatsDocID, TotalRaised: 25, TotalDonations: 1}, nil)

		uc := NewStatsUseCase(repo, 1000)
		if err := uc.RecordContribution(context.Background(), 25, entities.KindDonation, entities.StatusCompleted); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("pledge bumps the pledge counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStatsRepository(ctrl)
		repo.EXPECT().ApplyDelta(gomock.Any(), entities.StatsDelta{Raised: 100, Pledges: 1}).
			Return(entities.FundraiserStats{ID: entities.StatsDocID, TotalRaised: 100, TotalPledges: 1}, nil)

		uc := NewStatsUseCase(repo, 1000)
		if err := uc.RecordContribution(context.Background(), 100, entities.KindPledge, entities.StatusPending); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("failed donation is not counted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStatsRepository(ctrl)
		// No ApplyDelta expectation: a zero delta never reaches the store.

		uc := NewStatsUseCase(repo, 1000)
		if err := uc.RecordContribution(context.Background(), 25, entities.KindDonation, entities.StatusFailed); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing aggregate is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStatsRepository(ctrl)
		repo.EXPECT().ApplyDelta(gomock.Any(), gomock.Any()).Return(entities.FundraiserStats{}, nil)

		uc := NewStatsUseCase(repo, 1000)
		if err := uc.RecordContribution(context.Background(), 25, entities.KindDonation, entities.StatusPending); err != nil {
			t.Fatalf("expected logged no-op, got %v", err)
		}
	})
}

func TestStatsUseCase_CompensateRemoval(t *testing.T) {
	t.Run("never-counted record is skipped", func(t *testing.T) {
		uc := NewStatsUseCase(nil, 1000)
		d := entities.Donation{ID: "don-1", Amount: 30, Kind: entities.KindDonation, Status: entities.StatusFailed}
		if err := uc.CompensateRemoval(context.Background(), d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("counted record applies the negated delta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStatsRepository(ctrl)
		repo.EXPECT().ApplyDelta(gomock.Any(), entities.StatsDelta{Raised: -30, Donations: -1}).
			Return(entities.FundraiserStats{ID: entities.StatsDocID}, nil)

		uc := NewStatsUseCase(repo, 1000)
		d := entities.Donation{ID: "don-1", Amount: 30, Kind: entities.KindDonation, Status: entities.StatusCompleted, CountedAtCreation: true}
		if err := uc.CompensateRemoval(context.Background(), d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("counted record compensates even after cancellation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStatsRepository(ctrl)
		repo.EXPECT().ApplyDelta(gomock.Any(), entities.StatsDelta{Raised: -100, Donations: -1}).
			Return(entities.FundraiserStats{ID: entities.StatsDocID}, nil)

		uc := NewStatsUseCase(repo, 1000)
		d := entities.Donation{ID: "don-1", Amount: 100, Kind: entities.KindDonation, Status: entities.StatusCancelled, CountedAtCreation: true}
		if err := uc.CompensateRemoval(context.Background(), d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("counted pledge compensates the pledge counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStatsRepository(ctrl)
		repo.EXPECT().ApplyDelta(gomock.Any(), entities.StatsDelta{Raised: -200, Pledges: -1}).
			Return(entities.FundraiserStats{ID: entities.StatsDocID}, nil)

		uc := NewStatsUseCase(repo, 1000)
		d := entities.Donation{ID: "pl-1", Amount: 200, Kind: entities.KindPledge, Status: entities.StatusPaid, CountedAtCreation: true}
		if err := uc.CompensateRemoval(context.Background(), d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestStatsUseCase_InitializeIfAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIStatsRepository(ctrl)
	repo.EXPECT().InitIfAbsent(gomock.Any(), 5000.0).Return(true, nil)
	repo.EXPECT().InitIfAbsent(gomock.Any(), 5000.0).Return(false, nil)

	uc := NewStatsUseCase(repo, 5000)
	if err := uc.InitializeIfAbsent(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Second call is a no-op, not an error.
	if err := uc.InitializeIfAbsent(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStatsUseCase_ResetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIStatsRepository(ctrl)
	repo.EXPECT().Reset(gomock.Any()).Return(entities.FundraiserStats{ID: entities.StatsDocID, GoalAmount: 5000}, nil)

	uc := NewStatsUseCase(repo, 5000)
	stats, err := uc.ResetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalRaised != 0 || stats.TotalDonations != 0 || stats.TotalPledges != 0 {
		t.Fatalf("expected zeroed totals, got %+v", stats)
	}
	if stats.GoalAmount != 5000 {
		t.Fatalf("expected goal preserved, got %.2f", stats.GoalAmount)
	}
}

func TestStatsUseCase_SetPledgedAmountOverride(t *testing.T) {
	t.Run("rejects negative", func(t *testing.T) {
		uc := NewStatsUseCase(nil, 1000)
		_, err := uc.SetPledgedAmountOverride(context.Background(), -10)
		if !errors.Is(err, ErrInvalidOverrideAmount) {
			t.Fatalf("expected ErrInvalidOverrideAmount, got %v", err)
		}
	})

	t.Run("persists the override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStatsRepository(ctrl)
		repo.EXPECT().SetPledgedAmountOverride(gomock.Any(), 1234.0).
			Return(entities.FundraiserStats{ID: entities.StatsDocID, PledgedAmountOverride: 1234}, nil)

		uc := NewStatsUseCase(repo, 1000)
		stats, err := uc.SetPledgedAmountOverride(context.Background(), 1234)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.PledgedAmountOverride != 1234 {
			t.Fatalf("expected override 1234, got %.2f", stats.PledgedAmountOverride)
		}
	})
}
