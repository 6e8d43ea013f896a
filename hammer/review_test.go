package hammer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewsWrapsAmbiguousGroups(t *testing.T) {
	h, err := NewHammer([]string{
		"0 Main St Smallville AZ",
		"0 Main Rd Smallville AZ",
	}, nil, Config{KnownCities: []string{"Smallville"}})
	require.NoError(t, err)

	reviews := h.Reviews()
	require.Len(t, reviews, 1)
	r := reviews[0]
	assert.True(t, r.IsPending())
	assert.Len(t, r.Candidates, 2)

	r.Approve("reviewer-1", r.Candidates[0])
	assert.True(t, r.IsCompleted())
	assert.Equal(t, ReviewStatusApproved, r.Status)
	require.NotNil(t, r.Resolved)
	assert.Equal(t, r.Candidates[0].Key(), r.Resolved.Key())
}

func TestReviewRejectAndManualResult(t *testing.T) {
	h, err := NewHammer([]string{
		"0 Main St Smallville AZ",
		"0 Main Rd Smallville AZ",
	}, nil, Config{KnownCities: []string{"Smallville"}})
	require.NoError(t, err)

	r := h.Reviews()[0]
	r.Reject("reviewer-2")
	assert.True(t, r.IsCompleted())
	assert.False(t, r.IsPending())
	assert.True(t, r.IsValidStatus())

	r.SetManualResult(r.Candidates[1], "reviewer-3")
	assert.Equal(t, ReviewStatusApproved, r.Status)
}
