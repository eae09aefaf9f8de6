package nameparse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leadscout-engine/internal/domain"
)

func testExclusions() *Exclusions {
	return NewExclusions(
		[]string{"Gecko Hospitality", "Culinary Agents", "Confidential"},
		[]string{"whole foods", "staffing"},
	)
}

func TestParse(t *testing.T) {
	p := NewParser(testExclusions())

	tests := []struct {
		name   string
		in     string
		status domain.ParseStatus
		want   string
		reason string
	}{
		{name: "empty", in: "", status: domain.StatusUnknown},
		{name: "whitespace only", in: "     ", status: domain.StatusUnknown},
		{name: "literal unknown", in: "Unknown", status: domain.StatusUnknown},

		{
			name:   "all caps restaurant group recased",
			in:     "MARCUS SAMUELSSON RESTAURANT GROUP",
			status: domain.StatusResolved,
			want:   "Marcus Samuelsson Restaurant Group",
		},
		{
			name:   "bare generic term",
			in:     "Restaurant Group",
			status: domain.StatusUnknown,
		},
		{
			name:   "bare place name",
			in:     "Brooklyn",
			status: domain.StatusUnknown,
		},
		{
			name:   "location header row",
			in:     "SoHo • French Brasserie",
			status: domain.StatusUnknown,
		},
		{
			name:   "company cut at first bullet",
			in:     "Balthazar • French • SoHo",
			status: domain.StatusResolved,
			want:   "Balthazar",
		},
		{
			name:   "glued place respaced",
			in:     "BalthazarSoHo",
			status: domain.StatusResolved,
			want:   "Balthazar SoHo",
		},
		{
			name:   "venue word glued to capitalized word",
			in:     "HotelBarclay",
			status: domain.StatusResolved,
			want:   "Hotel Barclay",
		},
		{
			name:   "title prefix camel join and by window",
			in:     "Sous ChefThe Grill by Major Food Group",
			status: domain.StatusResolved,
			want:   "The Grill",
		},
		{
			name:   "title prefix before protected compound",
			in:     "Executive Chef Union Square Hospitality Group",
			status: domain.StatusResolved,
			want:   "Union Square Hospitality Group",
		},
		{
			name:   "protected compound survives tail stripping",
			in:     "Quality Branded Group",
			status: domain.StatusResolved,
			want:   "Quality Branded Group",
		},
		{
			name:   "article guard keeps the grill",
			in:     "The Grill",
			status: domain.StatusResolved,
			want:   "The Grill",
		},
		{
			name:   "legal suffix and place commas trimmed",
			in:     "Danny Meyer Restaurants, LLC",
			status: domain.StatusResolved,
			want:   "Danny Meyer Restaurants",
		},
		{
			name:   "trailing state and generic noun trimmed",
			in:     "Gramercy Tavern, New York, NY",
			status: domain.StatusResolved,
			want:   "Gramercy",
		},
		{
			name:   "intact brand never split",
			in:     "ShakeShack",
			status: domain.StatusResolved,
			want:   "ShakeShack",
		},
		{
			name:   "bare job title",
			in:     "Sous Chef",
			status: domain.StatusUnknown,
		},
		{
			name:   "exact exclusion",
			in:     "Gecko Hospitality",
			status: domain.StatusExcluded,
			reason: "geckohospitality",
		},
		{
			name:   "partial exclusion inside longer name",
			in:     "Whole Foods Market",
			status: domain.StatusExcluded,
			reason: "wholefoods",
		},
		{name: "too short", in: "AB", status: domain.StatusUnknown},
		{name: "single letter tokens", in: "A B C", status: domain.StatusUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Parse(tc.in)
			assert.Equal(t, tc.status, got.Status)
			if tc.status == domain.StatusResolved {
				assert.Equal(t, tc.want, got.Name)

				// a resolved name is a fixpoint of the cascade
				again := p.Parse(got.Name)
				assert.Equal(t, domain.StatusResolved, again.Status)
				assert.Equal(t, got.Name, again.Name)
			}
			if tc.reason != "" {
				assert.Equal(t, tc.reason, got.Reason)
			}
		})
	}
}

func TestParseIsTotal(t *testing.T) {
	p := NewParser(testExclusions())
	inputs := []string{
		"•••", "   ,,, ", "123456", "  ", "by by by",
		"NYC", "The", "Chef Chef Chef Chef Chef Chef",
	}
	for _, in := range inputs {
		got := p.Parse(in)
		assert.Contains(t, []domain.ParseStatus{
			domain.StatusResolved, domain.StatusUnknown, domain.StatusExcluded,
		}, got.Status, "input %q", in)
	}
}

func TestSplitCamelJoins(t *testing.T) {
	assert.Equal(t, "Executive Chef Gramercy", splitCamelJoins("Executive ChefGramercy"))
	assert.Equal(t, "ShakeShack", splitCamelJoins("ShakeShack"))
	assert.Equal(t, "Balthazar SoHo", splitCamelJoins("Balthazar SoHo"))
}

func TestTitleCasePreservesProtectedTokens(t *testing.T) {
	assert.Equal(t, "Dining In NYC", titleCase("DINING IN NYC"))
}
