package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"donation_tracker/internal/domain/entities"
	"donation_tracker/internal/usecase/interfaces"
)

const defaultRecentFeedLimit = 10

// IFeedUseCase delivers push updates of the aggregate and of the most recent
// donation records to any number of concurrent subscribers.
//
// Contract:
//   - a new subscriber receives the current snapshot immediately, then every
//     change, in source emission order
//   - the returned unsubscribe handle is terminal and safe to call repeatedly

type IFeedUseCase interface {
	SubscribeStats(cb func(entities.FundraiserStats)) func()
	SubscribeRecentDonations(cb func([]entities.Donation), limit int) func()
}

// Each subscriber carries its own delivery lock. Registration holds it until
// the replay snapshot is delivered, so a publish racing with a new
// subscription cannot hand over a newer aggregate before the replay.
type statsSubscriber struct {
	mu sync.Mutex
	cb func(entities.FundraiserStats)
}

type recentSubscriber struct {
	mu    sync.Mutex
	cb    func([]entities.Donation)
	limit int
}

// FeedUseCase bridges the record store to subscribers. When the stats store
// can signal changes in-process (local fallback mode) it reacts to the
// signal; otherwise it falls back to short-interval polling against the
// remote store.
type FeedUseCase struct {
	donations interfaces.IDonationRepository
	stats     interfaces.IStatsRepository
	interval  time.Duration

	mu         sync.Mutex
	nextID     int
	statsSubs  map[int]*statsSubscriber
	recentSubs map[int]*recentSubscriber
	lastStats  *entities.FundraiserStats
	lastRecent []entities.Donation

	cancel context.CancelFunc
	detach func()
	done   chan struct{}
}

var _ IFeedUseCase = (*FeedUseCase)(nil)

func NewFeedUseCase(donations interfaces.IDonationRepository, stats interfaces.IStatsRepository, interval time.Duration) *FeedUseCase {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &FeedUseCase{
		donations:  donations,
		stats:      stats,
		interval:   interval,
		statsSubs:  make(map[int]*statsSubscriber),
		recentSubs: make(map[int]*recentSubscriber),
	}
}

// Start primes the snapshots and begins watching for changes. It must be
// called once before the HTTP server starts accepting subscribers.
func (f *FeedUseCase) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel

	f.refresh(ctx)

	if notifier, ok := f.stats.(interfaces.IChangeNotifier); ok {
		log.Printf("[feed][usecase] change notifier attached")
		f.detach = notifier.OnChange(func() { f.refresh(ctx) })
		return
	}

	log.Printf("[feed][usecase] polling store every %s", f.interval)
	f.done = make(chan struct{})
	go func() {
		defer close(f.done)
		ticker := time.NewTicker(f.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				f.refresh(ctx)
			}
		}
	}()
}

// Close stops delivery permanently. Subscribers are not called again.
func (f *FeedUseCase) Close() {
	if f.detach != nil {
		f.detach()
		f.detach = nil
	}
	if f.cancel != nil {
		f.cancel()
	}
	if f.done != nil {
		<-f.done
	}
}

func (f *FeedUseCase) SubscribeStats(cb func(entities.FundraiserStats)) func() {
	sub := &statsSubscriber{cb: cb}

	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.statsSubs[id] = sub
	replay := f.lastStats
	// The delivery lock is taken before a publish can see the subscriber, so
	// the replay below is guaranteed to be its first delivery.
	sub.mu.Lock()
	f.mu.Unlock()

	// Immediate replay of the current aggregate, even if nothing has mutated
	// since the feed started.
	if replay != nil {
		cb(*replay)
	}
	sub.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.statsSubs, id)
			f.mu.Unlock()
		})
	}
}

func (f *FeedUseCase) SubscribeRecentDonations(cb func([]entities.Donation), limit int) func() {
	if limit <= 0 {
		limit = defaultRecentFeedLimit
	}

	sub := &recentSubscriber{cb: cb, limit: limit}

	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.recentSubs[id] = sub
	replay := capDonations(f.lastRecent, limit)
	sub.mu.Lock()
	f.mu.Unlock()

	cb(replay)
	sub.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.recentSubs, id)
			f.mu.Unlock()
		})
	}
}

// refresh pulls the current state and fans out to subscribers when it
// changed. It runs from a single goroutine (or the notifier callback), so
// per-subscription delivery order follows store emission order.
func (f *FeedUseCase) refresh(ctx context.Context) {
	stats, err := f.stats.Get(ctx)
	if err != nil {
		log.Printf("[feed][usecase] stats refresh failed err=%v", err)
	} else if stats.ID != "" {
		f.publishStats(stats)
	}

	recent, err := f.donations.ListRecent(ctx, f.maxRecentLimit())
	if err != nil {
		log.Printf("[feed][usecase] recent donations refresh failed err=%v", err)
		return
	}
	f.publishRecent(recent)
}

func (f *FeedUseCase) publishStats(stats entities.FundraiserStats) {
	f.mu.Lock()
	if f.lastStats != nil && statsEqual(*f.lastStats, stats) {
		f.mu.Unlock()
		return
	}
	f.lastStats = &stats
	subs := make([]*statsSubscriber, 0, len(f.statsSubs))
	for _, s := range f.statsSubs {
		subs = append(subs, s)
	}
	f.mu.Unlock()

	for _, s := range subs {
		s.mu.Lock()
		s.cb(stats)
		s.mu.Unlock()
	}
}

func (f *FeedUseCase) publishRecent(recent []entities.Donation) {
	f.mu.Lock()
	if donationsEqual(f.lastRecent, recent) {
		f.mu.Unlock()
		return
	}
	f.lastRecent = recent
	subs := make([]*recentSubscriber, 0, len(f.recentSubs))
	for _, s := range f.recentSubs {
		subs = append(subs, s)
	}
	f.mu.Unlock()

	for _, s := range subs {
		s.mu.Lock()
		s.cb(capDonations(recent, s.limit))
		s.mu.Unlock()
	}
}

func (f *FeedUseCase) maxRecentLimit() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	max := defaultRecentFeedLimit
	for _, s := range f.recentSubs {
		if s.limit > max {
			max = s.limit
		}
	}
	return max
}

func statsEqual(a, b entities.FundraiserStats) bool {
	return a.TotalRaised == b.TotalRaised &&
		a.TotalDonations == b.TotalDonations &&
		a.TotalPledges == b.TotalPledges &&
		a.GoalAmount == b.GoalAmount &&
		a.PledgedAmountOverride == b.PledgedAmountOverride &&
		a.LastUpdated.Equal(b.LastUpdated)
}

func donationsEqual(a, b []entities.Donation) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID ||
			a[i].Status != b[i].Status ||
			a[i].VerificationStatus != b[i].VerificationStatus ||
			!a[i].UpdatedAt.Equal(b[i].UpdatedAt) {
			return false
		}
	}
	return true
}

func capDonations(list []entities.Donation, limit int) []entities.Donation {
	if len(list) <= limit {
		return list
	}
	return list[:limit]
}
