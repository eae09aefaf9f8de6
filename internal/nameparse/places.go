package nameparse

import (
	"sort"
	"strings"
)

// placeNames are the geographies the source site concatenates onto company
// text. Matching is done longest-first so "New York" wins over "York" and
// "Long Island City" over "Long Island".
var placeNames = []string{
	"New York City",
	"Long Island City",
	"Staten Island",
	"Washington DC",
	"San Francisco",
	"White Plains",
	"Jersey City",
	"Long Island",
	"Westchester",
	"Connecticut",
	"New Jersey",
	"Greenwich",
	"Manhattan",
	"Brooklyn",
	"Stamford",
	"Hoboken",
	"Astoria",
	"Chelsea",
	"Tribeca",
	"Harlem",
	"Queens",
	"Bronx",
	"SoHo",
	"NoHo",
	"NYC",
	"Miami",
	"Chicago",
	"Boston",
	"Philadelphia",
	"Los Angeles",
}

// protectedTokens must never be split by the camelCase repair: they are
// legitimate mid-word capitals ("NYC", the stylized "SoHo").
var protectedTokens = []string{"NYC", "SoHo", "NoHo"}

// intactBrands are multi-word brand names the site renders without spaces;
// when one is present the venue-suffix respacing stays off so the brand is
// not broken apart.
var intactBrands = []string{"ShakeShack", "SweetGreen", "OpenTable", "DineAmic"}

func init() {
	sort.Slice(placeNames, func(i, j int) bool {
		return len(placeNames[i]) > len(placeNames[j])
	})
}

// IsPlaceName reports whether s is exactly a recognized place.
func IsPlaceName(s string) bool {
	s = strings.TrimSpace(s)
	for _, p := range placeNames {
		if strings.EqualFold(s, p) {
			return true
		}
	}
	return false
}

// placePrefix returns the recognized place s starts with, longest first.
func placePrefix(s string) string {
	for _, p := range placeNames {
		if len(s) >= len(p) && strings.EqualFold(s[:len(p)], p) {
			return p
		}
	}
	return ""
}

// nextPlaceIndex finds the first place-name occurrence at or after from,
// longest names first so overlapping shorter names never shadow them.
func nextPlaceIndex(s string, from int) int {
	low := strings.ToLower(s)
	best := -1
	for _, p := range placeNames {
		i := strings.Index(low[from:], strings.ToLower(p))
		if i < 0 {
			continue
		}
		if best < 0 || from+i < best {
			best = from + i
		}
	}
	return best
}

func isProtectedToken(s string) bool {
	for _, t := range protectedTokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func hasIntactBrand(s string) bool {
	for _, b := range intactBrands {
		if strings.Contains(s, b) {
			return true
		}
	}
	return false
}
