package nameparse

import (
	"regexp"
	"strings"
)

var (
	numericOnlyRe = regexp.MustCompile(`^[\d\s\-#]+$`)
	hasDigitRe    = regexp.MustCompile(`\d`)
	cityStateRe   = regexp.MustCompile(`^[A-Za-z .']+ [A-Z]{2}$`)
)

// streetTokens mark segments that are unit/floor noise rather than an
// operator name embedded in the address.
var streetTokens = []string{
	"st", "st.", "street", "ave", "ave.", "avenue", "blvd", "boulevard",
	"rd", "road", "fl", "fl.", "floor", "ste", "ste.", "suite", "unit",
	"apt", "apt.", "room", "rm", "level", "bldg", "building", "plaza", "pl",
}

// ExtractCandidates mines a raw location/address line for extra
// company-name candidates — venues often embed the unit operator between
// the street and the city ("123 Main St, Gramercy Tavern, New York, NY").
// Survivors are ordered as found; callers re-run each through the Parser
// before use.
func ExtractCandidates(rawAddress string) []string {
	addr := CleanText(rawAddress)
	if addr == "" {
		return nil
	}
	hasNumber := hasDigitRe.MatchString(addr)

	segs := strings.FieldsFunc(addr, func(r rune) bool {
		return r == ',' || r == '•' || r == '·' || r == '/' || r == '-'
	})

	var out []string
	for _, seg := range segs {
		seg = CleanText(seg)
		if len(seg) < 4 {
			continue
		}
		if numericOnlyRe.MatchString(seg) {
			continue
		}
		if isGenericTerm(seg) {
			continue
		}
		if hasNumber && mostlyStreetTokens(seg) {
			continue
		}
		if len(seg) < 24 && cityStateRe.MatchString(seg) {
			continue
		}
		out = append(out, seg)
	}
	return out
}

// mostlyStreetTokens reports whether the segment reads like a street
// address fragment: at least half of its words are street/unit vocabulary
// or raw numbers.
func mostlyStreetTokens(seg string) bool {
	words := strings.Fields(strings.ToLower(seg))
	if len(words) == 0 {
		return false
	}
	hits := 0
	for _, w := range words {
		w = strings.Trim(w, ".,#")
		if w == "" || hasDigitRe.MatchString(w) {
			hits++
			continue
		}
		for _, t := range streetTokens {
			if w == t {
				hits++
				break
			}
		}
	}
	return hits*2 >= len(words)
}
