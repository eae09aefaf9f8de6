package domain

// SearchMode selects how a directory lookup is keyed.
type SearchMode int

const (
	ByCompanyName SearchMode = iota
	ByDomain
)

func (m SearchMode) String() string {
	if m == ByDomain {
		return "domain"
	}
	return "company"
}

// EnrichmentQuery is one lookup attempt against the directory API.
// SourceTag is an opaque label ("primary:domain", "address:name", ...) kept
// for attribution in logs and on the contacts it produces.
type EnrichmentQuery struct {
	SearchTerm string
	Mode       SearchMode
	SourceTag  string
}

// RawContact is one contact record as the directory API returns it.
type RawContact struct {
	Email      string  `json:"value"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Position   string  `json:"position"`
	PosRaw     string  `json:"position_raw"`
	Confidence float64 `json:"confidence"`
	Type       string  `json:"type"` // "personal" or "generic"
}

// Title prefers the cleaned position over the raw one.
func (c RawContact) Title() string {
	if c.Position != "" {
		return c.Position
	}
	return c.PosRaw
}

// ContactCandidate is a scored contact. Rank comes from the title priority
// list and is the primary sort key; Score breaks ties among untitled
// contacts. Email (lower-cased) is the dedup key within one listing.
type ContactCandidate struct {
	Name          string  `json:"name"`
	Title         string  `json:"title"`
	Email         string  `json:"email"`
	Confidence    float64 `json:"confidence"`
	Rank          int     `json:"rank"`
	Score         float64 `json:"score"`
	OriginCompany string  `json:"origin_company"`
	OriginDomain  string  `json:"origin_domain,omitempty"`
	SourceTag     string  `json:"source_tag"`
	MatchesDomain bool    `json:"matches_domain"`
}

// CompanyContactResult is the orchestrator's terminal output for one
// listing. Built once, handed to persistence, never retained.
type CompanyContactResult struct {
	Company       string             `json:"company"`
	LinkedInURLs  []string           `json:"linkedin_urls,omitempty"`
	Domains       []string           `json:"domains,omitempty"`
	PrimaryDomain string             `json:"primary_domain,omitempty"`
	ParentDomain  string             `json:"parent_domain,omitempty"`
	EmployeeSize  string             `json:"employee_size,omitempty"`
	Contacts      []ContactCandidate `json:"contacts"`
}

func (r CompanyContactResult) Empty() bool {
	return len(r.Contacts) == 0 && len(r.Domains) == 0 && len(r.LinkedInURLs) == 0
}
