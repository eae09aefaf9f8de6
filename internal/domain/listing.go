package domain

// RawListing is one job card as the crawl side hands it over: raw,
// inconsistently delimited UI text. Immutable; consumed once per listing.
type RawListing struct {
	Title         string `json:"title"`
	RawCompany    string `json:"company"`
	RawLocation   string `json:"location"`
	ParentCompany string `json:"parent_company,omitempty"`
	URL           string `json:"url,omitempty"`
}

type ParseStatus int

const (
	StatusResolved ParseStatus = iota
	StatusUnknown
	StatusExcluded
)

func (s ParseStatus) String() string {
	switch s {
	case StatusResolved:
		return "resolved"
	case StatusExcluded:
		return "excluded"
	default:
		return "unknown"
	}
}

// ParsedCompany is the parser's verdict for one raw company string.
// Reason carries the matched exclusion term when Status is StatusExcluded.
type ParsedCompany struct {
	Name   string
	Status ParseStatus
	Reason string
}

func (p ParsedCompany) Resolved() bool { return p.Status == StatusResolved }
