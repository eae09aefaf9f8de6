package nameparse

import "strings"

// Exclusions is the denylist of recruiting agencies, aggregators and known
// false positives. Exact terms match by containment on the squashed
// (whitespace-free, lower-cased) name; partial terms match as plain
// substrings. Checked inside the parser and again right before any lookup.
type Exclusions struct {
	exact   []string
	partial []string
}

func NewExclusions(exact, partial []string) *Exclusions {
	e := &Exclusions{}
	for _, t := range exact {
		if t = squash(t); t != "" {
			e.exact = append(e.exact, t)
		}
	}
	for _, t := range partial {
		if t = squash(t); t != "" {
			e.partial = append(e.partial, t)
		}
	}
	return e
}

// Match returns the matched denylist term, if any.
func (e *Exclusions) Match(name string) (term string, excluded bool) {
	if e == nil {
		return "", false
	}
	key := squash(name)
	if key == "" {
		return "", false
	}
	for _, t := range e.partial {
		if strings.Contains(key, t) {
			return t, true
		}
	}
	for _, t := range e.exact {
		if strings.Contains(key, t) {
			return t, true
		}
	}
	return "", false
}

func squash(s string) string {
	s = strings.ToLower(CleanText(s))
	return strings.ReplaceAll(s, " ", "")
}
