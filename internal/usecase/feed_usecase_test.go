package usecase

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"donation_tracker/internal/adapter/persistence/localstore"
	"donation_tracker/internal/domain/entities"
)

func newFeedFixture(t *testing.T) (*localstore.Store, *FeedUseCase) {
	t.Helper()
	store := localstore.New(filepath.Join(t.TempDir(), "state.json"))
	if _, err := store.InitIfAbsent(context.Background(), 1000); err != nil {
		t.Fatalf("init store: %v", err)
	}

	feed := NewFeedUseCase(store, store, time.Hour)
	feed.Start(context.Background())
	t.Cleanup(feed.Close)
	return store, feed
}

func TestFeedUseCase_SubscribeStatsReplaysSnapshot(t *testing.T) {
	_, feed := newFeedFixture(t)

	var got []entities.FundraiserStats
	unsubscribe := feed.SubscribeStats(func(s entities.FundraiserStats) {
		got = append(got, s)
	})
	defer unsubscribe()

	if len(got) != 1 {
		t.Fatalf("expected immediate snapshot, got %d calls", len(got))
	}
	if got[0].GoalAmount != 1000 {
		t.Fatalf("unexpected snapshot: %+v", got[0])
	}
}

func TestFeedUseCase_DeliversChanges(t *testing.T) {
	store, feed := newFeedFixture(t)

	var got []entities.FundraiserStats
	unsubscribe := feed.SubscribeStats(func(s entities.FundraiserStats) {
		got = append(got, s)
	})
	defer unsubscribe()

	// The local store signals in-process, so delivery happens before
	// ApplyDelta returns.
	if _, err := store.ApplyDelta(context.Background(), entities.StatsDelta{Raised: 40, Donations: 1}); err != nil {
		t.Fatalf("apply delta: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected snapshot + 1 change, got %d calls", len(got))
	}
	if got[1].TotalRaised != 40 || got[1].TotalDonations != 1 {
		t.Fatalf("unexpected update: %+v", got[1])
	}
}

func TestFeedUseCase_UnsubscribeIsTerminal(t *testing.T) {
	store, feed := newFeedFixture(t)

	var calls int
	unsubscribe := feed.SubscribeStats(func(entities.FundraiserStats) { calls++ })

	unsubscribe()
	unsubscribe() // safe to repeat

	if _, err := store.ApplyDelta(context.Background(), entities.StatsDelta{Raised: 10, Donations: 1}); err != nil {
		t.Fatalf("apply delta: %v", err)
	}

	if calls != 1 {
		t.Fatalf("expected only the replay call, got %d", calls)
	}
}

func TestFeedUseCase_UnsubscribeLeavesOthersAttached(t *testing.T) {
	store, feed := newFeedFixture(t)

	var first, second int
	u1 := feed.SubscribeStats(func(entities.FundraiserStats) { first++ })
	u2 := feed.SubscribeStats(func(entities.FundraiserStats) { second++ })
	defer u2()

	u1()
	u1()

	if _, err := store.ApplyDelta(context.Background(), entities.StatsDelta{Raised: 10, Donations: 1}); err != nil {
		t.Fatalf("apply delta: %v", err)
	}

	if first != 1 {
		t.Fatalf("unsubscribed listener called %d times", first)
	}
	if second != 2 {
		t.Fatalf("remaining listener expected 2 calls, got %d", second)
	}
}

func TestFeedUseCase_SubscribeDuringPublishesKeepsOrder(t *testing.T) {
	store, feed := newFeedFixture(t)

	// Totals only grow here, so any out-of-order delivery shows up as a
	// decrease in the observed sequence. In particular a change published
	// while the subscription is registering must not arrive before the
	// replay snapshot.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			if _, err := store.ApplyDelta(context.Background(), entities.StatsDelta{Raised: 1, Donations: 1}); err != nil {
				t.Errorf("apply delta: %v", err)
				return
			}
		}
	}()

	var mu sync.Mutex
	var seen []float64
	unsubscribe := feed.SubscribeStats(func(s entities.FundraiserStats) {
		mu.Lock()
		seen = append(seen, s.TotalRaised)
		mu.Unlock()
	})
	defer unsubscribe()

	<-done

	mu.Lock()
	defer mu.Unlock()
	if len(seen) == 0 {
		t.Fatal("expected at least the replay delivery")
	}
	for i := 1; i < len(seen); i++ {
		if seen[i] < seen[i-1] {
			t.Fatalf("delivery went backwards at %d: %.0f after %.0f", i, seen[i], seen[i-1])
		}
	}
}

func TestFeedUseCase_RecentDonations(t *testing.T) {
	store, feed := newFeedFixture(t)

	seed := []entities.Donation{
		{ID: "don-1", Amount: 10, Kind: entities.KindDonation, Status: entities.StatusPending},
		{ID: "don-2", Amount: 20, Kind: entities.KindDonation, Status: entities.StatusPending},
		{ID: "don-3", Amount: 30, Kind: entities.KindPledge, Status: entities.StatusPending},
	}
	for _, d := range seed {
		if _, err := store.Create(context.Background(), d); err != nil {
			t.Fatalf("seed create: %v", err)
		}
	}

	var got [][]entities.Donation
	unsubscribe := feed.SubscribeRecentDonations(func(list []entities.Donation) {
		got = append(got, list)
	}, 2)
	defer unsubscribe()

	if len(got) != 1 {
		t.Fatalf("expected immediate replay, got %d calls", len(got))
	}
	replay := got[0]
	if len(replay) != 2 {
		t.Fatalf("expected replay capped at 2, got %d", len(replay))
	}
	if replay[0].ID != "don-3" || replay[1].ID != "don-2" {
		t.Fatalf("expected newest-first order, got %s,%s", replay[0].ID, replay[1].ID)
	}

	if _, err := store.Create(context.Background(), entities.Donation{ID: "don-4", Amount: 40, Kind: entities.KindDonation, Status: entities.StatusPending}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected an update after create, got %d calls", len(got))
	}
	if got[1][0].ID != "don-4" {
		t.Fatalf("expected don-4 first, got %s", got[1][0].ID)
	}
}
