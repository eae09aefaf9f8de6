package nameparse

import "strings"

// genericTerms are industry nouns that are never a company name on their
// own ("Restaurant Group" alone is a category header, not a company).
var genericTerms = []string{
	"restaurant group",
	"hospitality group",
	"culinary group",
	"restaurant",
	"hospitality",
	"fine dining",
	"bar",
	"cafe",
	"café",
	"bistro",
	"tavern",
	"kitchen",
	"grill",
	"bakery",
	"brasserie",
	"steakhouse",
	"pizzeria",
	"trattoria",
	"catering",
	"events",
	"group",
	"management",
	"hotel",
	"lounge",
	"club",
	"eatery",
	"dining",
}

// venueSuffixWords trigger a missing-space repair when glued to a following
// capitalized word ("HotelBarclay" -> "Hotel Barclay").
var venueSuffixWords = []string{
	"Hotel", "Restaurant", "Kitchen", "Tavern", "Bistro", "Bakery",
	"Club", "Cafe", "Grill", "Bar",
}

// legalSuffixes get stripped from the tail of a parsed name.
var legalSuffixes = []string{"llc", "l.l.c.", "inc", "inc.", "corp", "corp.", "co.", "ltd", "ltd."}

// genericTailNouns get stripped from the tail unless that would leave a
// bare article or break a protected "<word> Group" compound.
var genericTailNouns = []string{
	"restaurant", "bar", "cafe", "café", "grill", "bistro", "tavern",
	"kitchen", "bakery", "lounge",
}

// groupLeadWords qualify "<word> group" tails that must stay intact
// ("Restaurant Group", "Hospitality Group" as part of a longer name).
var groupLeadWords = []string{"restaurant", "hospitality", "culinary", "dining", "food", "management"}

// titlePrefixes are job-title fragments the renderer glues in front of the
// company segment; a single leading one is stripped.
var titlePrefixes = []string{
	"executive sous chef", "chef de cuisine", "executive chef", "pastry chef",
	"sous chef", "head chef", "line cook", "prep cook", "general manager",
	"assistant general manager", "beverage director", "sommelier",
	"bartender", "server", "host", "hostess", "barista", "busser",
	"dishwasher", "porter", "maitre d'",
}

// extractionKeywords anchor in-string company extraction: when one shows up
// past the head of the string, the words around it are usually the real
// brand ("... at Quality Branded restaurant group ...").
var extractionKeywords = []string{
	"restaurant group", "hospitality group", "culinary group", "fine dining",
	"steakhouse", "brasserie", "trattoria", "bistro",
}

// articleWords never stand alone as a company after tail stripping.
var articleWords = []string{"the", "le", "la", "el", "il"}

func isGenericTerm(s string) bool {
	s = strings.ToLower(CleanText(s))
	for _, g := range genericTerms {
		if s == g {
			return true
		}
	}
	return false
}

func isArticle(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range articleWords {
		if s == a {
			return true
		}
	}
	return false
}

// containsIndustryWord reports whether any generic industry noun appears in
// s (used to let "Brooklyn Winery" style names through the place-prefix
// rejection).
func containsIndustryWord(s string) bool {
	low := " " + strings.ToLower(s) + " "
	for _, g := range genericTerms {
		if strings.Contains(low, " "+g+" ") {
			return true
		}
	}
	return false
}
