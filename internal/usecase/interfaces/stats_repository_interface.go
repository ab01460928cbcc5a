package interfaces

import (
	"context"

	"donation_tracker/internal/domain/entities"
)

// IStatsRepository abstracts persistence of the singleton FundraiserStats
// document.
//
// ApplyDelta is the load-bearing contract: the delta must be applied as one
// atomic store-level add (DynamoDB ADD expression, or a mutex-guarded merge in
// the local store) so two concurrent submissions can never read the same
// pre-update totals and lose one contribution.

type IStatsRepository interface {
	Get(ctx context.Context) (entities.FundraiserStats, error)
	// InitIfAbsent creates the aggregate with zero totals and the given goal.
	// It reports whether a document was actually created; calling it again is
	// a no-op.
	InitIfAbsent(ctx context.Context, goalAmount float64) (bool, error)
	// ApplyDelta atomically adds the delta to the counters and refreshes
	// lastUpdated. Returns the post-update document. Fails with a
	// conditional error surfaced as an absent document when the aggregate
	// does not exist.
	ApplyDelta(ctx context.Context, delta entities.StatsDelta) (entities.FundraiserStats, error)
	// Reset overwrites the totals with zeros, preserving goalAmount.
	Reset(ctx context.Context) (entities.FundraiserStats, error)
	SetPledgedAmountOverride(ctx context.Context, amount float64) (entities.FundraiserStats, error)
}

// IChangeNotifier is optionally implemented by stores that can push change
// signals in-process (the local fallback store). When a store implements it,
// the feed layer uses the signal instead of polling. The returned function
// detaches the listener.
type IChangeNotifier interface {
	OnChange(fn func()) func()
}
