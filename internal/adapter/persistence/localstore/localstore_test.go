package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"donation_tracker/internal/domain/entities"
)

func TestStore_StatsPersistRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	ctx := context.Background()

	s := New(path)
	created, err := s.InitIfAbsent(ctx, 2000)
	if err != nil || !created {
		t.Fatalf("expected initial seed, got created=%v err=%v", created, err)
	}
	if _, err := s.ApplyDelta(ctx, entities.StatsDelta{Raised: 120, Donations: 2, Pledges: 1}); err != nil {
		t.Fatalf("apply delta: %v", err)
	}

	// A new store on the same path picks the aggregate back up off disk.
	reopened := New(path)
	stats, err := reopened.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stats.TotalRaised != 120 || stats.TotalDonations != 2 || stats.TotalPledges != 1 {
		t.Fatalf("unexpected reloaded stats: %+v", stats)
	}
	if stats.GoalAmount != 2000 {
		t.Fatalf("expected goal 2000, got %.2f", stats.GoalAmount)
	}
}

func TestStore_SchemaVersionBumpDiscardsState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	stale, err := json.Marshal(persistedState{
		Version: schemaVersion - 1,
		Stats:   &entities.FundraiserStats{ID: entities.StatsDocID, TotalRaised: 999},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, stale, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s := New(path)
	stats, err := s.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stats.ID != "" {
		t.Fatalf("expected stale state discarded, got %+v", stats)
	}
}

func TestStore_CorruptStateDiscarded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s := New(path)
	stats, err := s.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stats.ID != "" {
		t.Fatalf("expected empty aggregate, got %+v", stats)
	}
}

func TestStore_InitIfAbsentIsIdempotent(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "state.json"))
	ctx := context.Background()

	if created, _ := s.InitIfAbsent(ctx, 1000); !created {
		t.Fatal("expected first init to create")
	}
	if created, _ := s.InitIfAbsent(ctx, 9999); created {
		t.Fatal("expected second init to be a no-op")
	}

	stats, _ := s.Get(ctx)
	if stats.GoalAmount != 1000 {
		t.Fatalf("expected original goal preserved, got %.2f", stats.GoalAmount)
	}
}

func TestStore_ApplyDeltaWithoutAggregate(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "state.json"))

	stats, err := s.ApplyDelta(context.Background(), entities.StatsDelta{Raised: 10, Donations: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.ID != "" {
		t.Fatalf("expected absent aggregate marker, got %+v", stats)
	}
}

func TestStore_ConcurrentDeltasSumExactly(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "state.json"))
	ctx := context.Background()
	if _, err := s.InitIfAbsent(ctx, 1000); err != nil {
		t.Fatalf("init: %v", err)
	}

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := s.ApplyDelta(ctx, entities.StatsDelta{Raised: 10, Donations: 1}); err != nil {
				t.Errorf("apply delta: %v", err)
			}
		}()
	}
	wg.Wait()

	stats, _ := s.Get(ctx)
	if stats.TotalRaised != n*10 {
		t.Fatalf("expected total %d, got %.2f", n*10, stats.TotalRaised)
	}
	if stats.TotalDonations != n {
		t.Fatalf("expected %d donations, got %d", n, stats.TotalDonations)
	}
}

func TestStore_DonationLifecycle(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "state.json"))
	ctx := context.Background()

	d1 := entities.Donation{ID: "don-1", Amount: 10, Kind: entities.KindDonation, Status: entities.StatusPending}
	d2 := entities.Donation{ID: "don-2", Amount: 20, Kind: entities.KindPledge, Status: entities.StatusPending}

	if _, err := s.Create(ctx, d1); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(ctx, d2); err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("duplicate id rejected", func(t *testing.T) {
		dup, err := s.Create(ctx, d1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dup.ID != "" {
			t.Fatalf("expected zero-value record for duplicate, got %+v", dup)
		}
	})

	t.Run("list is newest first", func(t *testing.T) {
		list, _ := s.List(ctx)
		if len(list) != 2 || list[0].ID != "don-2" || list[1].ID != "don-1" {
			t.Fatalf("unexpected order: %+v", list)
		}
	})

	t.Run("list by kind", func(t *testing.T) {
		pledges, _ := s.ListByKind(ctx, entities.KindPledge)
		if len(pledges) != 1 || pledges[0].ID != "don-2" {
			t.Fatalf("unexpected pledges: %+v", pledges)
		}
	})

	t.Run("update status", func(t *testing.T) {
		updated, err := s.UpdateStatus(ctx, "don-1", entities.StatusCompleted)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Status != entities.StatusCompleted {
			t.Fatalf("expected completed, got %s", updated.Status)
		}
		if updated.UpdatedAt.IsZero() {
			t.Fatal("expected UpdatedAt refresh")
		}
	})

	t.Run("update missing record", func(t *testing.T) {
		updated, err := s.UpdateStatus(ctx, "don-missing", entities.StatusCompleted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.ID != "" {
			t.Fatalf("expected zero value, got %+v", updated)
		}
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := s.Delete(ctx, "don-1")
		if err != nil || !deleted {
			t.Fatalf("expected delete, got deleted=%v err=%v", deleted, err)
		}
		deleted, _ = s.Delete(ctx, "don-1")
		if deleted {
			t.Fatal("expected second delete to report absence")
		}
	})
}

func TestStore_ListRecent(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "state.json"))
	ctx := context.Background()
	for i := 1; i <= 5; i++ {
		d := entities.Donation{ID: fmt.Sprintf("don-%d", i), Amount: float64(i), Kind: entities.KindDonation, Status: entities.StatusPending}
		if _, err := s.Create(ctx, d); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	recent, err := s.ListRecent(ctx, 3)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3, got %d", len(recent))
	}
	if recent[0].ID != "don-5" || recent[2].ID != "don-3" {
		t.Fatalf("unexpected window: %+v", recent)
	}
}

func TestStore_OnChange(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "state.json"))
	ctx := context.Background()

	var calls int
	detach := s.OnChange(func() { calls++ })

	if _, err := s.InitIfAbsent(ctx, 1000); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := s.Create(ctx, entities.Donation{ID: "don-1", Kind: entities.KindDonation, Status: entities.StatusPending}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 signals, got %d", calls)
	}

	detach()
	if _, err := s.ApplyDelta(ctx, entities.StatsDelta{Raised: 1}); err != nil {
		t.Fatalf("apply delta: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected no signal after detach, got %d", calls)
	}
}
