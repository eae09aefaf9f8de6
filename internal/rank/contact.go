package rank

import (
	"strings"

	"leadscout-engine/internal/domain"
)

// Weights for the no-title fallback score. The exact magnitudes are not
// load-bearing; the invariants are that a title rank always wins outright
// and that personal + named + high-confidence sorts ahead of generic +
// unnamed + low-confidence.
const (
	scoreNoEmail        = 10000.0
	scoreBase           = 50.0
	genericEmailPenalty = 15.0
	namePresenceBonus   = 5.0
	personalTypeBonus   = 10.0
	genericTypePenalty  = 10.0
)

// genericLocalParts are role inboxes nobody reads.
var genericLocalParts = []string{
	"info", "hr", "careers", "jobs", "contact", "hello", "admin", "office",
	"events", "reservations", "catering", "press", "team", "support", "sales",
	"general", "inquiries",
}

// ScoreContact scores one raw directory record. Rank is the title-list
// index (sentinel when untitled) and is the primary sort key; Score breaks
// ties among untitled contacts. Lower is better for both.
func ScoreContact(c domain.RawContact, ranker *TitleRanker) (rnk int, score float64) {
	if strings.TrimSpace(c.Email) == "" {
		return ranker.Sentinel(), scoreNoEmail
	}

	title := strings.TrimSpace(c.Title())
	rnk = ranker.Rank(title)
	if title != "" {
		// title dominates every other signal
		return rnk, float64(rnk)
	}

	score = scoreBase
	if isGenericAddress(c.Email) {
		score += genericEmailPenalty
	}
	if strings.TrimSpace(c.FirstName) != "" {
		score -= namePresenceBonus
	}
	if strings.TrimSpace(c.LastName) != "" {
		score -= namePresenceBonus
	}
	score -= c.Confidence / 2

	switch strings.ToLower(c.Type) {
	case "personal":
		score -= personalTypeBonus
	case "generic":
		score += genericTypePenalty
	}
	return rnk, score
}

func isGenericAddress(email string) bool {
	local := strings.ToLower(email)
	if i := strings.IndexByte(local, '@'); i >= 0 {
		local = local[:i]
	}
	for _, g := range genericLocalParts {
		if local == g {
			return true
		}
	}
	return false
}

// Less is the one comparator for final contact ordering: rank ascending,
// then fallback score, then email for stability across runs.
func Less(a, b domain.ContactCandidate) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return a.Email < b.Email
}
