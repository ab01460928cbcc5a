package entities

import "time"

// DonationKind distinguishes immediate gifts from future commitments.
//
// Domain notes:
//   - Kind is immutable after creation; a pledge never becomes a donation,
//     it is marked paid instead.

type DonationKind string

const (
	KindDonation DonationKind = "donation"
	KindPledge   DonationKind = "pledge"
)

func (k DonationKind) Valid() bool {
	switch k {
	case KindDonation, KindPledge:
		return true
	}
	return false
}

// PaymentMethod is the rail the donor used. Unknown values are rejected at
// submission instead of silently falling back to "other".

type PaymentMethod string

const (
	MethodCard   PaymentMethod = "card"
	MethodPledge PaymentMethod = "pledge"
	MethodQR1    PaymentMethod = "qr1"
	MethodQR2    PaymentMethod = "qr2"
	MethodZelle  PaymentMethod = "zelle"
	MethodOther  PaymentMethod = "other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCard, MethodPledge, MethodQR1, MethodQR2, MethodZelle, MethodOther:
		return true
	}
	return false
}

// ManualMethod reports whether the rail has no automated settlement
// confirmation and therefore needs admin verification.
func (m PaymentMethod) ManualMethod() bool {
	switch m {
	case MethodQR1, MethodQR2, MethodZelle:
		return true
	}
	return false
}

// DonationStatus is the lifecycle state of a donation record.
//
// Transitions are admin- or webhook-triggered; there is no timeout-driven
// transition, a pending record stays pending until someone acts on it.

type DonationStatus string

const (
	StatusPending   DonationStatus = "pending"
	StatusCompleted DonationStatus = "completed"
	StatusFailed    DonationStatus = "failed"
	StatusCancelled DonationStatus = "cancelled"
	StatusPaid      DonationStatus = "paid"
)

func (s DonationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusCancelled, StatusPaid:
		return true
	}
	return false
}

// statusTransitions is the allowed lifecycle graph:
//   - pending -> completed | failed | cancelled | paid
//   - paid -> pending (admin revert)
//   - cancelled -> pending (admin reactivation)
//   - completed and failed are terminal
var statusTransitions = map[DonationStatus][]DonationStatus{
	StatusPending:   {StatusCompleted, StatusFailed, StatusCancelled, StatusPaid},
	StatusPaid:      {StatusPending},
	StatusCancelled: {StatusPending},
	StatusCompleted: {},
	StatusFailed:    {},
}

// CanTransition reports whether moving from s to next is allowed.
// A same-status update is permitted as a timestamp refresh.
func (s DonationStatus) CanTransition(next DonationStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// VerificationStatus is the manual confirmation flag for rails without
// automated settlement (QR codes, Zelle).

type VerificationStatus string

const (
	VerificationVerified    VerificationStatus = "verified"
	VerificationNotVerified VerificationStatus = "not_verified"
)

func (v VerificationStatus) Valid() bool {
	switch v {
	case VerificationVerified, VerificationNotVerified:
		return true
	}
	return false
}

// Donation is one donor action (gift or pledge) persisted in the record store.
//
// Storage model (DynamoDB):
//   - PK: id
//
// CountedAtCreation records whether the rollup rule counted this record when
// it was accepted. Status transitions never touch the aggregate, so the
// current status cannot tell a delete what to subtract; the marker can.

type Donation struct {
	ID                 string             `json:"id"`
	Amount             float64            `json:"amount"`
	DonorName          string             `json:"donorName"`
	DonorEmail         string             `json:"donorEmail"`
	DonorPhone         string             `json:"donorPhone,omitempty"`
	Kind               DonationKind       `json:"kind"`
	PaymentMethod      PaymentMethod      `json:"paymentMethod,omitempty"`
	Status             DonationStatus     `json:"status"`
	VerificationStatus VerificationStatus `json:"verificationStatus,omitempty"`
	Notes              string             `json:"notes,omitempty"`
	ProviderPaymentID  string             `json:"providerPaymentId,omitempty"`
	IdempotencyKey     string             `json:"-"`
	CountedAtCreation  bool               `json:"countedAtCreation"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// CountedContribution returns the delta this record added to the aggregate
// when it was accepted, or a zero delta if it was never counted. A counted
// record keeps its contribution through later cancel or paid transitions, so
// removal must negate this instead of re-deriving from the current status.
func (d Donation) CountedContribution() StatsDelta {
	if !d.CountedAtCreation {
		return StatsDelta{}
	}
	if d.Kind == KindPledge {
		return StatsDelta{Raised: d.Amount, Pledges: 1}
	}
	return StatsDelta{Raised: d.Amount, Donations: 1}
}
