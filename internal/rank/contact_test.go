package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leadscout-engine/internal/domain"
)

func TestScoreContactTitleDominates(t *testing.T) {
	r := NewTitleRanker(nil)

	c := domain.RawContact{
		Email:      "jane@balthazar.com",
		FirstName:  "Jane",
		LastName:   "Doe",
		Position:   "Director of Human Resources",
		Confidence: 20, // low confidence must not matter once titled
	}
	rnk, score := ScoreContact(c, r)
	assert.Equal(t, 2, rnk)
	assert.Equal(t, float64(2), score)
}

func TestScoreContactPositionRawFallback(t *testing.T) {
	r := NewTitleRanker(nil)

	c := domain.RawContact{Email: "x@y.com", PosRaw: "CEO"}
	rnk, score := ScoreContact(c, r)
	assert.Equal(t, 14, rnk)
	assert.Equal(t, float64(14), score)
}

func TestScoreContactNoEmail(t *testing.T) {
	r := NewTitleRanker(nil)

	rnk, score := ScoreContact(domain.RawContact{Position: "CEO"}, r)
	assert.Equal(t, r.Sentinel(), rnk)
	assert.Equal(t, 10000.0, score)
}

func TestScoreContactUntitledSignals(t *testing.T) {
	r := NewTitleRanker(nil)

	personal := domain.RawContact{
		Email:      "jane.doe@balthazar.com",
		FirstName:  "Jane",
		LastName:   "Doe",
		Confidence: 90,
		Type:       "personal",
	}
	generic := domain.RawContact{
		Email:      "info@balthazar.com",
		Confidence: 90,
		Type:       "generic",
	}

	pr, ps := ScoreContact(personal, r)
	gr, gs := ScoreContact(generic, r)

	assert.Equal(t, r.Sentinel(), pr)
	assert.Equal(t, r.Sentinel(), gr)
	// 50 - 5 - 5 - 45 - 10
	assert.InDelta(t, -15.0, ps, 0.001)
	// 50 + 15 - 45 + 10
	assert.InDelta(t, 30.0, gs, 0.001)
	assert.Less(t, ps, gs)
}

func TestLessOrdering(t *testing.T) {
	a := domain.ContactCandidate{Rank: 2, Score: 2, Email: "hr@x.com"}
	b := domain.ContactCandidate{Rank: 39, Score: -15, Email: "jane@x.com"}
	c := domain.ContactCandidate{Rank: 39, Score: 30, Email: "info@x.com"}
	d := domain.ContactCandidate{Rank: 39, Score: 30, Email: "zz@x.com"}

	assert.True(t, Less(a, b), "titled beats untitled regardless of score")
	assert.True(t, Less(b, c), "lower fallback score wins within same rank")
	assert.True(t, Less(c, d), "email breaks exact ties")
	assert.False(t, Less(d, c))
}
