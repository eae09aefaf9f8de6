package nameparse

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"leadscout-engine/internal/domain"
)

// Parser turns raw "company • category • location" listing text into a
// clean company name, or a definite Unknown/Excluded verdict. The cascade
// is an ordered sequence of small rules; order matters and first
// applicable wins within each stage. The parser is total: it never fails.
type Parser struct {
	excl *Exclusions
}

func NewParser(excl *Exclusions) *Parser {
	return &Parser{excl: excl}
}

const delimiters = "•·|"

var (
	wholeNameAllCaps = regexp.MustCompile(`^[A-Z][A-Z .&'\-]+?\s*(RESTAURANT GROUP|HOSPITALITY GROUP|FINE DINING|CULINARY GROUP)$`)
	stateAbbrRe      = regexp.MustCompile(`^[A-Z]{2}$`)
	zipRe            = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

func init() {
	sort.Slice(titlePrefixes, func(i, j int) bool {
		return len(titlePrefixes[i]) > len(titlePrefixes[j])
	})
}

func unknown() domain.ParsedCompany {
	return domain.ParsedCompany{Status: domain.StatusUnknown}
}

func excluded(term string) domain.ParsedCompany {
	return domain.ParsedCompany{Status: domain.StatusExcluded, Reason: term}
}

// Parse runs the cascade. The listing site renders company, category and
// neighborhood into one string with missing spaces more often than not, so
// word boundaries get reconstructed before anything dictionary-shaped is
// attempted, and legitimate multi-word brand names are preserved in
// preference to aggressive suffix stripping.
func (p *Parser) Parse(raw string) domain.ParsedCompany {
	text := CleanText(raw)
	if text == "" || strings.EqualFold(text, "Unknown") {
		return unknown()
	}

	if term, ok := p.excl.Match(Normalize(text)); ok {
		return excluded(term)
	}

	// A leading place name plus a delimiter is a location header row, not
	// a company.
	if placePrefix(text) != "" && strings.ContainsAny(text, delimiters) {
		return unknown()
	}

	text = cutAtDelimiter(text)
	text = Normalize(text)
	text = spaceBeforeGluedPlace(text)
	text = spaceAfterVenueWord(text)

	if name, ok := wholeNameForm(text); ok {
		return p.classify(stripTitlePrefix(name))
	}

	if name, ok := extractAroundKeyword(text); ok {
		return p.classify(stripTitlePrefix(name))
	}

	text = spaceBeforeGluedPlace(text)
	text = trimCommaTail(text)
	text = splitCamelJoins(text)

	if name, ok := windowBeforeBy(text); ok {
		text = name
	}

	text = stripLegalSuffix(text)
	text = stripGenericTail(text)
	text = stripTitlePrefix(text)

	return p.classify(text)
}

// classify is the final gate: whatever survived the cascade is either a
// plausible company name or one of the deterministic reject shapes.
func (p *Parser) classify(s string) domain.ParsedCompany {
	name := CleanText(s)
	if name == "" {
		return unknown()
	}
	if term, ok := p.excl.Match(name); ok {
		return excluded(term)
	}
	if isGenericTerm(name) {
		return unknown()
	}
	if IsPlaceName(name) {
		return unknown()
	}
	if pl := placePrefix(name); pl != "" && len(name) < 20 && !containsIndustryWord(name[len(pl):]) {
		return unknown()
	}
	if len(name) < 3 {
		return unknown()
	}
	words := strings.Fields(name)
	single := true
	for _, w := range words {
		if len([]rune(w)) > 1 {
			single = false
			break
		}
	}
	if single {
		return unknown()
	}
	return domain.ParsedCompany{Name: name, Status: domain.StatusResolved}
}

func cutAtDelimiter(s string) string {
	if i := strings.IndexAny(s, delimiters); i >= 0 {
		return CleanText(s[:i])
	}
	return s
}

// spaceBeforeGluedPlace re-inserts the space the renderer drops between a
// company name and the neighborhood glued onto it ("BalthazarSoHo").
// Longest place names are tried first so "New York" is not half-matched.
func spaceBeforeGluedPlace(s string) string {
	for _, p := range placeNames {
		i := strings.Index(s, p)
		if i <= 0 {
			continue
		}
		prev := rune(s[i-1])
		if unicode.IsLower(prev) {
			s = s[:i] + " " + s[i:]
		}
	}
	return s
}

// spaceAfterVenueWord splits "HotelBarclay" style joins. Skipped entirely
// when a known intact brand token is present, those are spelled without
// spaces on purpose.
func spaceAfterVenueWord(s string) string {
	if hasIntactBrand(s) {
		return s
	}
	for _, v := range venueSuffixWords {
		i := strings.Index(s, v)
		if i < 0 {
			continue
		}
		if i > 0 && !isBoundary(s[i-1]) {
			continue
		}
		j := i + len(v)
		if j < len(s) && s[j] >= 'A' && s[j] <= 'Z' {
			s = s[:j] + " " + s[j:]
		}
	}
	return s
}

func isBoundary(b byte) bool {
	return b == ' ' || b == '.' || b == ',' || b == '-' || b == '\''
}

// wholeNameForm recognizes names that must be kept intact: the all-caps
// "<NAME> RESTAURANT GROUP" form (re-cased), and mixed-case names whose
// generic "... Group / Fine Dining / Management" tail is preceded by a
// real brand word. These must not reach the generic tail stripper.
func wholeNameForm(s string) (string, bool) {
	t := CleanText(s)
	if wholeNameAllCaps.MatchString(t) {
		return titleCase(t), true
	}
	// a " by " construct or an unrepaired camel join means the string is
	// still composite; later stages get it first
	if strings.Contains(strings.ToLower(t), " by ") || hasCamelJoin(t) {
		return "", false
	}
	if protectedCompound(t) {
		return t, true
	}
	return "", false
}

func hasCamelJoin(s string) bool {
	for _, t := range append(append([]string{}, protectedTokens...), intactBrands...) {
		s = strings.ReplaceAll(s, t, " ")
	}
	runes := []rune(s)
	for i := 1; i < len(runes); i++ {
		if unicode.IsLower(runes[i-1]) && unicode.IsUpper(runes[i]) {
			return true
		}
	}
	return false
}

// protectedCompound reports whether s ends in a generic suffix that is
// carrying a real name in front of it ("Quality Branded Group" yes,
// "Restaurant Group" no).
func protectedCompound(s string) bool {
	low := strings.ToLower(CleanText(s))
	suffixes := []string{"restaurant group", "hospitality group", "culinary group", "fine dining", "management", "group"}
	for _, suf := range suffixes {
		if !strings.HasSuffix(low, suf) {
			continue
		}
		head := CleanText(strings.TrimSuffix(low, suf))
		if head == "" || isArticle(head) || isGenericTerm(head) {
			continue
		}
		// the lead word has to qualify when only one remains
		if words := strings.Fields(head); len(words) == 1 {
			w := strings.Trim(words[0], ".,")
			qualifies := false
			for _, q := range groupLeadWords {
				if w == q {
					qualifies = true
					break
				}
			}
			if !qualifies && isGenericTerm(w) {
				continue
			}
		}
		return true
	}
	return false
}

// extractAroundKeyword pulls the brand out of mid-string when a
// hospitality keyword anchors it: expand left to the previous place-name
// boundary (or start) and right to the next one (or end).
func extractAroundKeyword(s string) (string, bool) {
	low := strings.ToLower(s)
	for _, kw := range extractionKeywords {
		i := strings.Index(low, kw)
		if i <= 3 {
			continue
		}
		if len(strings.Fields(s[:i])) < 2 {
			continue
		}
		left := 0
		if pi := lastPlaceEnd(s, i); pi > 0 {
			left = pi
		}
		right := nextPlaceIndex(s, i+len(kw))
		if right < 0 {
			right = len(s)
		}
		cand := CleanText(s[left:right])
		ki := strings.Index(strings.ToLower(cand), kw)
		if ki < 0 {
			continue
		}
		head := CleanText(cand[:ki])
		if len(strings.Fields(head)) < 2 {
			continue
		}
		if isGenericTerm(cand) {
			continue
		}
		return cand, true
	}
	return "", false
}

// lastPlaceEnd returns the end offset of the last place name that finishes
// before limit, or -1.
func lastPlaceEnd(s string, limit int) int {
	low := strings.ToLower(s)
	best := -1
	for _, p := range placeNames {
		pl := strings.ToLower(p)
		from := 0
		for {
			i := strings.Index(low[from:], pl)
			if i < 0 {
				break
			}
			end := from + i + len(pl)
			if end <= limit && end > best {
				best = end
			}
			from += i + 1
		}
	}
	return best
}

// trimCommaTail drops trailing ", Brooklyn" / ", NY" / ", 10012" segments,
// then splits at the last remaining top-level comma.
func trimCommaTail(s string) string {
	for {
		i := strings.LastIndex(s, ",")
		if i < 0 {
			return CleanText(s)
		}
		tail := CleanText(s[i+1:])
		if tail == "" || IsPlaceName(tail) || stateAbbrRe.MatchString(tail) || zipRe.MatchString(tail) {
			s = s[:i]
			continue
		}
		return CleanText(s[:i])
	}
}

// splitCamelJoins repairs residual lowercase-uppercase joins, leaving the
// protected stylized tokens alone.
func splitCamelJoins(s string) string {
	masked := s
	type mask struct{ ph, tok string }
	var masks []mask
	for n, t := range append(append([]string{}, protectedTokens...), intactBrands...) {
		if !strings.Contains(masked, t) {
			continue
		}
		ph := "\x00" + string(rune('a'+n)) + "\x00"
		masked = strings.ReplaceAll(masked, t, ph)
		masks = append(masks, mask{ph, t})
	}

	runes := []rune(masked)
	out := make([]rune, 0, len(runes)+4)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			out = append(out, ' ')
		}
		out = append(out, r)
	}
	masked = string(out)

	for _, m := range masks {
		masked = strings.ReplaceAll(masked, m.ph, m.tok)
	}
	return CleanText(masked)
}

// windowBeforeBy captures the proper name sitting just before " by "
// ("The Grill by Major Food Group" -> "The Grill"). The window is short on
// purpose: anything further back is usually title or category noise.
func windowBeforeBy(s string) (string, bool) {
	const window = 11
	low := strings.ToLower(s)
	i := strings.Index(low, " by ")
	if i < 0 {
		return "", false
	}
	start := i - window
	if start < 0 {
		start = 0
	}
	if start > 0 {
		if j := strings.Index(s[start:i], " "); j >= 0 {
			start += j + 1
		} else {
			start = i
		}
	}
	cand := CleanText(s[start:i])
	if cand == "" {
		return "", false
	}
	return cand, true
}

func stripLegalSuffix(s string) string {
	words := strings.Fields(s)
	if len(words) < 2 {
		return s
	}
	last := strings.ToLower(strings.Trim(words[len(words)-1], ","))
	for _, suf := range legalSuffixes {
		if last == suf {
			out := strings.Join(words[:len(words)-1], " ")
			return CleanText(strings.TrimSuffix(out, ","))
		}
	}
	return s
}

func stripGenericTail(s string) string {
	if protectedCompound(s) {
		return s
	}
	words := strings.Fields(s)
	for len(words) >= 2 {
		last := strings.ToLower(strings.Trim(words[len(words)-1], ".,"))
		generic := false
		for _, g := range genericTailNouns {
			if last == g {
				generic = true
				break
			}
		}
		if !generic {
			break
		}
		rest := words[:len(words)-1]
		if len(rest) == 1 && isArticle(rest[0]) {
			break
		}
		words = rest
		if protectedCompound(strings.Join(words, " ")) {
			break
		}
	}
	return strings.Join(words, " ")
}

func stripTitlePrefix(s string) string {
	low := strings.ToLower(s)
	for _, t := range titlePrefixes {
		if low == t {
			return ""
		}
		if strings.HasPrefix(low, t+" ") {
			if rest := CleanText(s[len(t):]); rest != "" {
				return rest
			}
		}
	}
	return s
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		kept := false
		for _, t := range protectedTokens {
			if strings.EqualFold(w, t) {
				words[i] = t
				kept = true
				break
			}
		}
		if kept {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
