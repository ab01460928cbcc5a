// Package localstore is the demo-mode substitute for the DynamoDB record
// store. It satisfies the same repository contracts so the rest of the system
// cannot tell the difference: the backend is chosen once at startup and never
// branched on again.
//
// Tradeoffs, by contract with the caller:
//   - the stats aggregate persists to a single JSON blob on disk carrying a
//     schema version; a major version bump discards prior data and reseeds
//   - donation records live in memory only and die with the process
//   - change notification is an in-process emitter, no polling
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"donation_tracker/internal/domain/entities"
	"donation_tracker/internal/usecase/interfaces"
)

// schemaVersion guards the persisted blob. Bumping it wipes prior local data
// on next startup; this is the one-way migration escape hatch, not a
// migration system.
const schemaVersion = 2

type persistedState struct {
	Version int                       `json:"version"`
	Stats   *entities.FundraiserStats `json:"stats,omitempty"`
}

// Store holds the fallback aggregate and records behind one mutex, so every
// mutation (including the contribution rollup) is applied atomically and the
// lost-update race of a read-modify-write cycle cannot occur in this mode
// either.
type Store struct {
	path string

	mu        sync.Mutex
	stats     *entities.FundraiserStats
	donations []entities.Donation

	nextListener int
	listeners    map[int]func()
}

var (
	_ interfaces.IDonationRepository = (*Store)(nil)
	_ interfaces.IStatsRepository    = (*Store)(nil)
	_ interfaces.IChangeNotifier     = (*Store)(nil)
)

func New(path string) *Store {
	s := &Store{
		path:      path,
		listeners: make(map[int]func()),
	}
	s.load()
	return s
}

func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[localstore] read failed path=%s err=%v", s.path, err)
		}
		return
	}

	var state persistedState
	if err := json.Unmarshal(raw, &state); err != nil {
		log.Printf("[localstore] corrupt state discarded path=%s err=%v", s.path, err)
		return
	}
	if state.Version != schemaVersion {
		log.Printf("[localstore] schema version changed (%d -> %d); prior data discarded", state.Version, schemaVersion)
		return
	}
	s.stats = state.Stats
}

// persist writes the aggregate snapshot synchronously. Called with s.mu held.
func (s *Store) persist() {
	state := persistedState{Version: schemaVersion, Stats: s.stats}
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		log.Printf("[localstore] marshal failed err=%v", err)
		return
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		log.Printf("[localstore] write failed path=%s err=%v", s.path, err)
	}
}

// OnChange registers an in-process change listener. The returned function
// detaches it.
func (s *Store) OnChange(fn func()) func() {
	s.mu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// notify fans out change signals. Called after releasing s.mu so listeners
// may read back from the store.
func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// --- IStatsRepository ---

func (s *Store) Get(ctx context.Context) (entities.FundraiserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats == nil {
		return entities.FundraiserStats{}, nil
	}
	return *s.stats, nil
}

func (s *Store) InitIfAbsent(ctx context.Context, goalAmount float64) (bool, error) {
	s.mu.Lock()
	if s.stats != nil {
		s.mu.Unlock()
		return false, nil
	}
	s.stats = &entities.FundraiserStats{
		ID:          entities.StatsDocID,
		GoalAmount:  goalAmount,
		LastUpdated: time.Now().UTC(),
	}
	s.persist()
	s.mu.Unlock()

	s.notify()
	return true, nil
}

func (s *Store) ApplyDelta(ctx context.Context, delta entities.StatsDelta) (entities.FundraiserStats, error) {
	s.mu.Lock()
	if s.stats == nil {
		s.mu.Unlock()
		return entities.FundraiserStats{}, nil
	}
	s.stats.TotalRaised += delta.Raised
	s.stats.TotalDonations += delta.Donations
	s.stats.TotalPledges += delta.Pledges
	s.stats.LastUpdated = time.Now().UTC()
	updated := *s.stats
	s.persist()
	s.mu.Unlock()

	s.notify()
	return updated, nil
}

func (s *Store) Reset(ctx context.Context) (entities.FundraiserStats, error) {
	s.mu.Lock()
	if s.stats == nil {
		s.mu.Unlock()
		return entities.FundraiserStats{}, nil
	}
	s.stats.TotalRaised = 0
	s.stats.TotalDonations = 0
	s.stats.TotalPledges = 0
	s.stats.PledgedAmountOverride = 0
	s.stats.LastUpdated = time.Now().UTC()
	updated := *s.stats
	s.persist()
	s.mu.Unlock()

	s.notify()
	return updated, nil
}

func (s *Store) SetPledgedAmountOverride(ctx context.Context, amount float64) (entities.FundraiserStats, error) {
	s.mu.Lock()
	if s.stats == nil {
		s.mu.Unlock()
		return entities.FundraiserStats{}, nil
	}
	s.stats.PledgedAmountOverride = amount
	s.stats.LastUpdated = time.Now().UTC()
	updated := *s.stats
	s.persist()
	s.mu.Unlock()

	s.notify()
	return updated, nil
}

// --- IDonationRepository ---

func (s *Store) Create(ctx context.Context, d entities.Donation) (entities.Donation, error) {
	s.mu.Lock()
	for _, existing := range s.donations {
		if existing.ID == d.ID {
			s.mu.Unlock()
			return entities.Donation{}, nil
		}
	}
	// Newest first; listings never re-sort.
	s.donations = append([]entities.Donation{d}, s.donations...)
	s.mu.Unlock()

	s.notify()
	return d, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (entities.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.donations {
		if d.ID == id {
			return d, nil
		}
	}
	return entities.Donation{}, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id string, status entities.DonationStatus) (entities.Donation, error) {
	return s.mutate(id, func(d *entities.Donation) {
		d.Status = status
	})
}

func (s *Store) UpdateVerification(ctx context.Context, id string, vs entities.VerificationStatus) (entities.Donation, error) {
	return s.mutate(id, func(d *entities.Donation) {
		d.VerificationStatus = vs
	})
}

func (s *Store) mutate(id string, apply func(*entities.Donation)) (entities.Donation, error) {
	s.mu.Lock()
	for i := range s.donations {
		if s.donations[i].ID == id {
			apply(&s.donations[i])
			s.donations[i].UpdatedAt = time.Now().UTC()
			updated := s.donations[i]
			s.mu.Unlock()
			s.notify()
			return updated, nil
		}
	}
	s.mu.Unlock()
	return entities.Donation{}, nil
}

func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	for i := range s.donations {
		if s.donations[i].ID == id {
			s.donations = append(s.donations[:i], s.donations[i+1:]...)
			s.mu.Unlock()
			s.notify()
			return true, nil
		}
	}
	s.mu.Unlock()
	return false, nil
}

func (s *Store) List(ctx context.Context) ([]entities.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Donation, len(s.donations))
	copy(out, s.donations)
	return out, nil
}

func (s *Store) ListByKind(ctx context.Context, kind entities.DonationKind) ([]entities.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Donation, 0)
	for _, d := range s.donations {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *Store) ListRecent(ctx context.Context, limit int) ([]entities.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit > len(s.donations) {
		limit = len(s.donations)
	}
	out := make([]entities.Donation, limit)
	copy(out, s.donations[:limit])
	return out, nil
}
