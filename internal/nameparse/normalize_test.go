package nameparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Balthazar", "Balthazar"},
		{"  Union   Square  Cafe ", "Union Square Cafe"},
		{"Café Boulud", "Café Boulud"},
		{"D&D London", "D&D London"},
		{"Joe's Pub", "Joe's Pub"},
		{"Jean-Georges", "Jean-Georges"},
		{"Balthazar ★ SoHo", "Balthazar SoHo"},
		{"Company #1!", "Company 1"},
		{"Danny Meyer Restaurants, LLC", "Danny Meyer Restaurants, LLC"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Normalize(tc.in), "input %q", tc.in)
	}
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b", CleanText("  a\t\n b "))
	assert.Equal(t, "a b", CleanText("a b"))
	assert.Equal(t, "", CleanText("    "))
}
