package rank

import "strings"

// DefaultPriorityTitles is the ordered contact-title priority list: HR and
// talent leadership first, then the C-suite, regional leadership,
// directors, generic management terms, and bare recruiting nouns last.
// Index in this list IS the rank; lower means a more useful contact.
// config.yml may override the whole list.
var DefaultPriorityTitles = []string{
	"director of talent acquisition",
	"talent acquisition manager",
	"director of human resources",
	"human resources director",
	"hr director",
	"director of people",
	"head of people",
	"human resources manager",
	"hr manager",
	"people operations manager",
	"talent manager",
	"recruiting manager",
	"chief people officer",
	"chief executive officer",
	"ceo",
	"chief operating officer",
	"coo",
	"president",
	"founder",
	"owner",
	"managing partner",
	"regional director",
	"regional manager",
	"area director",
	"director of operations",
	"operations director",
	"general manager",
	"managing director",
	"operations manager",
	"director",
	"manager",
	"executive",
	"chief",
	"recruiter",
	"talent",
	"recruiting",
	"human resources",
	"hr",
}

// roleSynonyms and senioritySynonyms feed the permutation matcher: real
// titles shuffle word order ("HR Manager" / "Manager of HR" / "Manager,
// Human Resources") far more than a flat substring scan tolerates.
var roleSynonyms = [][]string{
	{"human resources", "hr"},
	{"talent acquisition", "talent"},
	{"people"},
	{"recruiting", "recruiter"},
}

var senioritySynonyms = [][]string{
	{"director"},
	{"manager"},
	{"vp", "vice president"},
	{"head"},
	{"chief"},
}

// chiefKitchenWords guard the bare "chief" entry: "chief cook" is kitchen
// staff, not an officer.
var chiefKitchenWords = []string{"cook", "chef", "steward", "baker", "butcher"}

// TitleRanker ranks a free-text title against the fixed priority list.
type TitleRanker struct {
	priorities []string
	index      map[string]int
}

func NewTitleRanker(priorities []string) *TitleRanker {
	if len(priorities) == 0 {
		priorities = DefaultPriorityTitles
	}
	r := &TitleRanker{index: make(map[string]int, len(priorities))}
	for _, p := range priorities {
		p = cleanTitle(p)
		if p == "" {
			continue
		}
		if _, dup := r.index[p]; dup {
			continue
		}
		r.index[p] = len(r.priorities)
		r.priorities = append(r.priorities, p)
	}
	return r
}

// Sentinel is the rank of anything the list does not know; it sorts last.
func (r *TitleRanker) Sentinel() int { return len(r.priorities) + 1 }

// Rank resolves a title to its priority index. Stages, first hit wins:
// exact list match, role x seniority permutations, VP/Head-of-HR special
// case, guarded substring scan, sentinel.
func (r *TitleRanker) Rank(title string) int {
	t := cleanTitle(title)
	if t == "" {
		return r.Sentinel()
	}
	if i, ok := r.index[t]; ok {
		return i
	}
	if i := r.permutationRank(t); i >= 0 {
		return i
	}
	if i := r.vpHeadRank(t); i >= 0 {
		return i
	}
	if i := r.substringRank(t); i >= 0 {
		return i
	}
	return r.Sentinel()
}

func (r *TitleRanker) permutationRank(t string) int {
	for _, roles := range roleSynonyms {
		for _, sens := range senioritySynonyms {
			if !matchesPermutation(t, roles, sens) {
				continue
			}
			if i := r.canonicalIndex(roles, sens); i >= 0 {
				return i
			}
		}
	}
	return -1
}

func matchesPermutation(t string, roles, sens []string) bool {
	for _, role := range roles {
		for _, sen := range sens {
			forms := []string{
				role + " " + sen,
				sen + " " + role,
				sen + " of " + role,
			}
			for _, f := range forms {
				if t == f {
					return true
				}
			}
		}
	}
	return false
}

// canonicalIndex maps a (role, seniority) pair back onto the list: the
// first entry mentioning both families.
func (r *TitleRanker) canonicalIndex(roles, sens []string) int {
	for i, entry := range r.priorities {
		if containsAnyWordSeq(entry, roles) && containsAnyWordSeq(entry, sens) {
			return i
		}
	}
	return -1
}

// vpHeadRank special-cases VP/Head titles for HR-adjacent functions: they
// rank with the function's director entry.
func (r *TitleRanker) vpHeadRank(t string) int {
	if !containsAnyWordSeq(t, []string{"vp", "vice president", "head of"}) {
		return -1
	}
	for _, roles := range roleSynonyms {
		if !containsAnyWordSeq(t, roles) {
			continue
		}
		if i := r.canonicalIndex(roles, []string{"director"}); i >= 0 {
			return i
		}
	}
	return -1
}

func (r *TitleRanker) substringRank(t string) int {
	for i, entry := range r.priorities {
		words := strings.Fields(entry)
		if len(words) == 1 {
			w := words[0]
			if w == "chief" && chiefIsKitchen(t) {
				continue
			}
			if containsWord(t, w) {
				return i
			}
			continue
		}
		all := true
		for _, w := range words {
			if w == "of" {
				continue
			}
			if !containsWord(t, w) {
				all = false
				break
			}
		}
		if all {
			return i
		}
	}
	return -1
}

func chiefIsKitchen(t string) bool {
	words := strings.Fields(t)
	for i, w := range words {
		if w != "chief" || i+1 >= len(words) {
			continue
		}
		next := words[i+1]
		for _, k := range chiefKitchenWords {
			if next == k {
				return true
			}
		}
	}
	return false
}

func cleanTitle(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(",", " ", "-", " ", "/", " ", ".", "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

func containsWord(t, w string) bool {
	for _, tw := range strings.Fields(t) {
		if tw == w {
			return true
		}
	}
	return false
}

// containsAnyWordSeq reports whether any of the (possibly multi-word)
// sequences appears in t on word boundaries.
func containsAnyWordSeq(t string, seqs []string) bool {
	padded := " " + t + " "
	for _, s := range seqs {
		if strings.Contains(padded, " "+s+" ") {
			return true
		}
	}
	return false
}
