package nameparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCandidates(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{
			name: "operator embedded in address",
			in:   "123 Main St, Whole Foods Market, Brooklyn, NY",
			want: []string{"Whole Foods Market", "Brooklyn"},
		},
		{
			name: "street and unit noise dropped",
			in:   "45 W 28th St Fl 3, Suite 200, Gramercy Tavern, New York NY",
			want: []string{"Gramercy Tavern"},
		},
		{
			name: "generic terms dropped",
			in:   "Restaurant, Catering, Events",
			want: nil,
		},
		{
			name: "short and numeric segments dropped",
			in:   "7, 12-14, NY",
			want: nil,
		},
		{
			name: "plain venue without numbers kept",
			in:   "Union Square Cafe, Union Square",
			want: []string{"Union Square Cafe", "Union Square"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractCandidates(tc.in))
		})
	}
}

func TestMostlyStreetTokens(t *testing.T) {
	assert.True(t, mostlyStreetTokens("123 Main St"))
	assert.True(t, mostlyStreetTokens("Fl 3 Suite 200"))
	assert.False(t, mostlyStreetTokens("Gramercy Tavern"))
	assert.False(t, mostlyStreetTokens(""))
}
