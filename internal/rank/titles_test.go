package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankExactMatches(t *testing.T) {
	r := NewTitleRanker(nil)

	assert.Equal(t, 0, r.Rank("Director of Talent Acquisition"))
	assert.Equal(t, 1, r.Rank("Talent Acquisition Manager"))
	assert.Equal(t, 14, r.Rank("CEO"))
	assert.Equal(t, 6, r.Rank("Head of People"))
}

func TestRankPermutations(t *testing.T) {
	r := NewTitleRanker(nil)

	// word-order and punctuation variants land on the canonical entry
	assert.Equal(t, 2, r.Rank("Director, Human Resources"))
	assert.Equal(t, 2, r.Rank("Director of Human Resources"))
	assert.Equal(t, 11, r.Rank("Manager of Recruiting"))
}

func TestRankVPAndHead(t *testing.T) {
	r := NewTitleRanker(nil)

	// VP/Head of an HR function ranks with that function's director entry
	assert.Equal(t, 2, r.Rank("VP of Human Resources"))
	assert.Equal(t, 2, r.Rank("Vice President, Human Resources"))
	assert.Equal(t, 2, r.Rank("Head of HR"))
}

func TestRankSubstring(t *testing.T) {
	r := NewTitleRanker(nil)

	assert.Equal(t, 31, r.Rank("Executive Chef"))
	assert.Equal(t, 19, r.Rank("Owner/Operator"))
	assert.Equal(t, 32, r.Rank("Chief Financial Officer"))
}

func TestRankChiefKitchenGuard(t *testing.T) {
	r := NewTitleRanker(nil)

	assert.Equal(t, r.Sentinel(), r.Rank("Chief Cook"))
	assert.Equal(t, r.Sentinel(), r.Rank("Chief Steward"))
	assert.Equal(t, 32, r.Rank("Chief Revenue Officer"))
}

func TestRankUnknownAndEmpty(t *testing.T) {
	r := NewTitleRanker(nil)

	assert.Equal(t, r.Sentinel(), r.Rank(""))
	assert.Equal(t, r.Sentinel(), r.Rank("Line Cook"))
	assert.Equal(t, len(DefaultPriorityTitles)+1, r.Sentinel())
}

func TestRankCustomPriorities(t *testing.T) {
	r := NewTitleRanker([]string{"CEO", "Founder", "ceo", ""})

	assert.Equal(t, 0, r.Rank("CEO"))
	assert.Equal(t, 1, r.Rank("founder"))
	assert.Equal(t, 3, r.Sentinel()) // duplicates and blanks collapse
	assert.Equal(t, r.Sentinel(), r.Rank("Director of Human Resources"))
}
