package response

import (
	"time"

	"donation_tracker/internal/domain/entities"
)

type StatsResponse struct {
	TotalRaised           float64   `json:"totalRaised"`
	TotalDonations        int       `json:"totalDonations"`
	TotalPledges          int       `json:"totalPledges"`
	GoalAmount            float64   `json:"goalAmount"`
	PledgedAmountOverride float64   `json:"pledgedAmountOverride"`
	LastUpdated           time.Time `json:"lastUpdated"`
}

func FromStats(s entities.FundraiserStats) StatsResponse {
	return StatsResponse{
		TotalRaised:           s.TotalRaised,
		TotalDonations:        s.TotalDonations,
		TotalPledges:          s.TotalPledges,
		GoalAmount:            s.GoalAmount,
		PledgedAmountOverride: s.PledgedAmountOverride,
		LastUpdated:           s.LastUpdated,
	}
}

type StatsEnvelope struct {
	Stats   StatsResponse `json:"stats"`
	Success bool          `json:"success"`
}
