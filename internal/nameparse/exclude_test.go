package nameparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExclusionsMatch(t *testing.T) {
	e := NewExclusions(
		[]string{"Gecko Hospitality", "Culinary Agents"},
		[]string{"whole foods"},
	)

	tests := []struct {
		name     string
		in       string
		term     string
		excluded bool
	}{
		{name: "exact hit", in: "Gecko Hospitality", term: "geckohospitality", excluded: true},
		{name: "exact hit ignores spacing", in: "gecko  hospitality", term: "geckohospitality", excluded: true},
		{name: "containment on squashed text", in: "Gecko Hospitality of New York", term: "geckohospitality", excluded: true},
		{name: "partial inside longer name", in: "Whole Foods Market Columbus Circle", term: "wholefoods", excluded: true},
		{name: "partial checked before exact", in: "Whole Foods by Culinary Agents", term: "wholefoods", excluded: true},
		{name: "clean name passes", in: "Balthazar", excluded: false},
		{name: "empty", in: "", excluded: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			term, excluded := e.Match(tc.in)
			assert.Equal(t, tc.excluded, excluded)
			assert.Equal(t, tc.term, term)
		})
	}
}

func TestExclusionsNil(t *testing.T) {
	var e *Exclusions
	_, excluded := e.Match("anything")
	assert.False(t, excluded)
}

func TestNewExclusionsDropsEmptyTerms(t *testing.T) {
	e := NewExclusions([]string{"", "  "}, []string{""})
	_, excluded := e.Match("some company")
	assert.False(t, excluded)
}
