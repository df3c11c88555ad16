package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecisionTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{DecisionStatusDraft, DecisionStatusPending, true},
		{DecisionStatusPending, DecisionStatusReview, true},
		{DecisionStatusReview, DecisionStatusAligned, true},
		{DecisionStatusPending, DecisionStatusDraft, true},
		{DecisionStatusReview, DecisionStatusPending, true},
		{DecisionStatusDraft, DecisionStatusAligned, false},
		{DecisionStatusDraft, DecisionStatusReview, false},
		{DecisionStatusAligned, DecisionStatusDraft, false},
		{DecisionStatusAligned, DecisionStatusReview, false},
		{"bogus", DecisionStatusPending, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.allowed, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestIsDecisionStatus(t *testing.T) {
	assert.True(t, IsDecisionStatus(DecisionStatusDraft))
	assert.True(t, IsDecisionStatus(DecisionStatusAligned))
	assert.False(t, IsDecisionStatus("approved"))
	assert.False(t, IsDecisionStatus(""))
}
