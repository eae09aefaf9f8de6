package enrich

import (
	"context"
	"log"
	"sort"
	"strings"

	"leadscout-engine/internal/domain"
	"leadscout-engine/internal/nameparse"
	"leadscout-engine/internal/rank"
)

// Resolver drives one listing through parse, domain discovery, directory
// lookups, merge and ranking. Strategies run strictly in order; each one's
// failure is swallowed. The only empty-handed exits are an unresolvable or
// excluded primary company.
type Resolver struct {
	Parser *nameparse.Parser
	Excl   *nameparse.Exclusions
	Client *Client
	Finder *DomainFinder
	Ranker *rank.TitleRanker
}

type strategyResult struct {
	lookup   LookupResult
	byDomain bool
	parent   bool
	company  string
	domain   string
}

// Resolve produces the contact result for one listing.
func (r *Resolver) Resolve(ctx context.Context, listing domain.RawListing) domain.CompanyContactResult {
	parsed := r.Parser.Parse(listing.RawCompany)
	if !parsed.Resolved() {
		log.Printf("[resolve] skip company=%q status=%s reason=%q",
			listing.RawCompany, parsed.Status, parsed.Reason)
		return domain.CompanyContactResult{}
	}
	// defense in depth: a name can look excluded only after parsing
	if term, excluded := r.Excl.Match(parsed.Name); excluded {
		log.Printf("[resolve] excluded after parse company=%q term=%q", parsed.Name, term)
		return domain.CompanyContactResult{}
	}

	var results []strategyResult

	// Strategy A: primary company, domain lookup preferred.
	if dom := r.Finder.Find(ctx, parsed.Name); dom != "" {
		lr := r.Client.Lookup(ctx, domain.EnrichmentQuery{
			SearchTerm: dom, Mode: domain.ByDomain, SourceTag: "primary:domain",
		}, "")
		results = append(results, strategyResult{lookup: lr, byDomain: true, company: parsed.Name, domain: dom})
	} else {
		lr := r.Client.Lookup(ctx, domain.EnrichmentQuery{
			SearchTerm: parsed.Name, Mode: domain.ByCompanyName, SourceTag: "primary:name",
		}, fallbackTerm(parsed.Name, listing.RawLocation))
		results = append(results, strategyResult{lookup: lr, company: parsed.Name})
	}

	// Strategy B: parent company, by-domain only. A by-name fallback here
	// would happily match an unrelated company with the same name.
	if parent := nameparse.CleanText(listing.ParentCompany); parent != "" {
		pp := r.Parser.Parse(parent)
		if pp.Resolved() && !strings.EqualFold(pp.Name, parsed.Name) {
			if _, excluded := r.Excl.Match(pp.Name); !excluded {
				if pdom := r.Finder.Find(ctx, pp.Name); pdom != "" {
					lr := r.Client.Lookup(ctx, domain.EnrichmentQuery{
						SearchTerm: pdom, Mode: domain.ByDomain, SourceTag: "parent:domain",
					}, "")
					results = append(results, strategyResult{lookup: lr, byDomain: true, parent: true, company: pp.Name, domain: pdom})
				}
			}
		}
	}

	// Strategy C: operators embedded in the address line.
	for _, cand := range nameparse.ExtractCandidates(listing.RawLocation) {
		if strings.EqualFold(cand, listing.RawCompany) || strings.EqualFold(cand, listing.RawLocation) {
			continue
		}
		cp := r.Parser.Parse(cand)
		if !cp.Resolved() || strings.EqualFold(cp.Name, parsed.Name) {
			continue
		}
		lr := r.Client.Lookup(ctx, domain.EnrichmentQuery{
			SearchTerm: cp.Name, Mode: domain.ByCompanyName, SourceTag: "address:name",
		}, "")
		results = append(results, strategyResult{lookup: lr, company: cp.Name})
	}

	return r.merge(parsed.Name, results)
}

// fallbackTerm derives the one-shot retry term for a failed by-name
// lookup: the name qualified with the leading location segment.
func fallbackTerm(name, rawLocation string) string {
	loc := nameparse.CleanText(rawLocation)
	if loc == "" {
		return ""
	}
	if i := strings.IndexAny(loc, ",•·/"); i >= 0 {
		loc = nameparse.CleanText(loc[:i])
	}
	if loc == "" || strings.EqualFold(loc, name) {
		return ""
	}
	return name + " " + loc
}

// merge unions all strategy outputs into the final result: linkedin URLs
// and domains deduped in arrival order, contacts deduped by lower-cased
// email first-writer-wins, primary domain chosen domain-mode-first then by
// contact count, contacts sorted by the rank comparator.
func (r *Resolver) merge(company string, results []strategyResult) domain.CompanyContactResult {
	out := domain.CompanyContactResult{Company: company}

	seenURL := map[string]bool{}
	seenDomain := map[string]bool{}
	seenEmail := map[string]bool{}

	for _, sr := range results {
		if u := sr.lookup.LinkedIn; u != "" && !seenURL[strings.ToLower(u)] {
			seenURL[strings.ToLower(u)] = true
			out.LinkedInURLs = append(out.LinkedInURLs, u)
		}
		if d := strings.ToLower(sr.lookup.Domain); d != "" && !seenDomain[d] {
			seenDomain[d] = true
			out.Domains = append(out.Domains, d)
		}
		if sr.parent && out.ParentDomain == "" && sr.lookup.Domain != "" {
			out.ParentDomain = strings.ToLower(sr.lookup.Domain)
		}
		if out.EmployeeSize == "" {
			out.EmployeeSize = sr.lookup.EmployeeSize
		}

		for _, rc := range sr.lookup.Contacts {
			email := strings.ToLower(strings.TrimSpace(rc.Email))
			if email == "" || seenEmail[email] {
				continue
			}
			seenEmail[email] = true

			rnk, score := rank.ScoreContact(rc, r.Ranker)
			out.Contacts = append(out.Contacts, domain.ContactCandidate{
				Name:          nameparse.CleanText(rc.FirstName + " " + rc.LastName),
				Title:         rc.Title(),
				Email:         email,
				Confidence:    rc.Confidence,
				Rank:          rnk,
				Score:         score,
				OriginCompany: sr.company,
				OriginDomain:  sr.domain,
				SourceTag:     sr.lookup.SourceTag,
			})
		}
	}

	out.PrimaryDomain = pickPrimaryDomain(results)

	for i := range out.Contacts {
		out.Contacts[i].MatchesDomain = seenDomain[emailDomain(out.Contacts[i].Email)]
	}

	sort.SliceStable(out.Contacts, func(i, j int) bool {
		return rank.Less(out.Contacts[i], out.Contacts[j])
	})
	return out
}

func pickPrimaryDomain(results []strategyResult) string {
	for _, sr := range results {
		if sr.byDomain && sr.lookup.Domain != "" {
			return strings.ToLower(sr.lookup.Domain)
		}
	}
	best := ""
	bestCount := -1
	for _, sr := range results {
		if sr.lookup.Domain == "" {
			continue
		}
		if n := len(sr.lookup.Contacts); n > bestCount {
			bestCount = n
			best = strings.ToLower(sr.lookup.Domain)
		}
	}
	return best
}

func emailDomain(email string) string {
	if i := strings.LastIndexByte(email, '@'); i >= 0 {
		return strings.ToLower(email[i+1:])
	}
	return ""
}
