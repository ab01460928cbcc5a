package entities

import "time"

// StatsDocID is the fixed key of the singleton aggregate document.
const StatsDocID = "main"

// FundraiserStats is the materialized running-totals document that drives the
// progress thermometer. It is updated incrementally on every accepted
// submission, never recomputed on read.
//
// Storage model (DynamoDB):
//   - PK: id (always "main")
//
// PledgedAmountOverride is an admin-editable display figure deliberately
// decoupled from TotalRaised; it never participates in goal progress.

type FundraiserStats struct {
	ID                    string    `json:"id"`
	TotalRaised           float64   `json:"totalRaised"`
	TotalDonations        int       `json:"totalDonations"`
	TotalPledges          int       `json:"totalPledges"`
	GoalAmount            float64   `json:"goalAmount"`
	PledgedAmountOverride float64   `json:"pledgedAmountOverride"`
	LastUpdated           time.Time `json:"lastUpdated"`
}

// StatsDelta is one atomic adjustment to the aggregate counters. Deltas are
// applied with a single store-level add so concurrent submissions cannot lose
// updates.

type StatsDelta struct {
	Raised    float64
	Donations int
	Pledges   int
}

// ContributionDelta translates a record into the rollup rule:
// counted donations add to TotalRaised and TotalDonations, pledges add to
// TotalRaised and TotalPledges, everything else contributes nothing.
func ContributionDelta(amount float64, kind DonationKind, status DonationStatus) StatsDelta {
	switch {
	case kind == KindDonation && (status == StatusPending || status == StatusCompleted):
		return StatsDelta{Raised: amount, Donations: 1}
	case kind == KindPledge:
		return StatsDelta{Raised: amount, Pledges: 1}
	}
	return StatsDelta{}
}

// Negate returns the compensating delta for a removal.
func (d StatsDelta) Negate() StatsDelta {
	return StatsDelta{Raised: -d.Raised, Donations: -d.Donations, Pledges: -d.Pledges}
}

// IsZero reports whether applying the delta would change nothing.
func (d StatsDelta) IsZero() bool {
	return d.Raised == 0 && d.Donations == 0 && d.Pledges == 0
}
