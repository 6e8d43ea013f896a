package hammer

import (
	"time"

	"github.com/lambdalogan/addresshammer/address"
	"github.com/lambdalogan/addresshammer/helpers/utils"
)

// Review statuses, mirroring a typical manual-review queue's lifecycle.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusInReview = "in_review"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// AmbiguousReview wraps one of a Hammer's AmbiguousGroups — addresses
// sharing a hard key whose soft fields couldn't be reconciled automatically
// (spec.md 4.5 step 5) — as a manual-review ticket. Fill-in declines to
// guess across these, so a human (or a caller-supplied policy) picks the
// Address that should stand in for the group.
type AmbiguousReview struct {
	ID         string
	Candidates []address.Address
	Status     string
	Resolved   *address.Address
	ReviewerID *string
	ReviewedAt *time.Time
	CreatedAt  time.Time
}

// NewAmbiguousReview wraps a group of conflicting candidates as a pending
// review ticket.
func NewAmbiguousReview(candidates []address.Address) *AmbiguousReview {
	return &AmbiguousReview{
		ID:         utils.GenerateShortID(),
		Candidates: candidates,
		Status:     ReviewStatusPending,
		CreatedAt:  time.Now(),
	}
}

// Reviews wraps every one of h's AmbiguousGroups as a pending
// AmbiguousReview, for a caller that wants to drive a manual-review queue
// off a Hammer's construction-time conflicts.
func (h *Hammer) Reviews() []*AmbiguousReview {
	groups := h.AmbiguousGroups()
	out := make([]*AmbiguousReview, len(groups))
	for i, g := range groups {
		out[i] = NewAmbiguousReview(g)
	}
	return out
}

// IsValidStatus reports whether r.Status is one of the known lifecycle
// states.
func (r *AmbiguousReview) IsValidStatus() bool {
	switch r.Status {
	case ReviewStatusPending, ReviewStatusInReview, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

// Approve picks one of the original candidates as the resolved address.
func (r *AmbiguousReview) Approve(reviewerID string, chosen address.Address) {
	r.Status = ReviewStatusApproved
	r.Resolved = &chosen
	r.stampReviewer(reviewerID)
}

// Reject marks the group as reviewed with no resolution picked.
func (r *AmbiguousReview) Reject(reviewerID string) {
	r.Status = ReviewStatusRejected
	r.stampReviewer(reviewerID)
}

// SetManualResult records a resolution that wasn't among the original
// candidates (e.g. a reviewer who re-keyed the address by hand).
func (r *AmbiguousReview) SetManualResult(resolved address.Address, reviewerID string) {
	r.Resolved = &resolved
	r.Status = ReviewStatusApproved
	r.stampReviewer(reviewerID)
}

func (r *AmbiguousReview) stampReviewer(reviewerID string) {
	r.ReviewerID = &reviewerID
	now := time.Now()
	r.ReviewedAt = &now
}

// IsPending reports whether the review still awaits a decision.
func (r *AmbiguousReview) IsPending() bool { return r.Status == ReviewStatusPending }

// IsCompleted reports whether the review has reached a terminal state.
func (r *AmbiguousReview) IsCompleted() bool {
	return r.Status == ReviewStatusApproved || r.Status == ReviewStatusRejected
}
