package enrich

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"leadscout-engine/internal/store"
)

// domainBlocklist keeps job boards, aggregators and reference sites from
// being mistaken for a company's own website.
var domainBlocklist = []string{
	"linkedin.com",
	"indeed.com",
	"glassdoor.com",
	"ziprecruiter.com",
	"monster.com",
	"culinaryagents.com",
	"poachedjobs.com",
	"hcareers.com",
	"yelp.com",
	"tripadvisor.com",
	"opentable.com",
	"resy.com",
	"doordash.com",
	"grubhub.com",
	"seamless.com",
	"facebook.com",
	"instagram.com",
	"wikipedia.org",
	"crunchbase.com",
	"eater.com",
	"infatuation.com",
	"michelin.com",
}

// DomainFinder resolves a company name to its registrable website domain
// via a search-engine result page. Results are memoized in sqlite when a
// handle is provided. Callers must not pass excluded/unknown names; the
// finder trusts its input.
type DomainFinder struct {
	hc        *http.Client
	searchURL string
	limiter   *rate.Limiter
	db        *sql.DB
}

func NewDomainFinder(timeout time.Duration, limiter *rate.Limiter, db *sql.DB) *DomainFinder {
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	return &DomainFinder{
		hc:        &http.Client{Timeout: timeout},
		searchURL: "https://duckduckgo.com/html/",
		limiter:   limiter,
		db:        db,
	}
}

// Find returns the company's domain or "" when nothing usable turned up.
// Search failures are logged and swallowed: a missing domain only demotes
// the lookup to by-name, it is never fatal.
func (f *DomainFinder) Find(ctx context.Context, company string) string {
	company = strings.TrimSpace(company)
	if company == "" {
		return ""
	}

	if f.db != nil {
		if d, err := store.GetCompanyDomain(ctx, f.db, company); err == nil && d != "" {
			return d
		}
	}

	if f.limiter != nil {
		_ = f.limiter.Wait(ctx)
	}

	found, err := f.searchOnce(ctx, company)
	if err != nil {
		log.Printf("[domainfind] search failed company=%q: %v", company, err)
		return ""
	}
	if found == "" {
		return ""
	}

	if f.db != nil {
		if err := store.UpsertCompanyDomain(ctx, f.db, company, found); err != nil {
			log.Printf("[domainfind] memo write failed company=%q: %v", company, err)
		}
	}
	return found
}

func (f *DomainFinder) searchOnce(ctx context.Context, company string) (string, error) {
	query := sanitizeForSearch(company) + " official website"

	u := f.searchURL + "?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("search status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse search results: %w", err)
	}

	var best string
	doc.Find("a.result__a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return true
		}
		host := hostFromURL(decodeRedirect(href))
		if host == "" {
			return true
		}
		host = strings.ToLower(strings.TrimPrefix(host, "www."))
		if isBlockedDomain(host) {
			return true
		}
		best = host
		return false
	})
	return best, nil
}

// decodeRedirect unwraps the /l/?uddg=<urlencoded> indirection the result
// page sometimes uses.
func decodeRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if uddg := u.Query().Get("uddg"); uddg != "" {
		if dec, err := url.QueryUnescape(uddg); err == nil && dec != "" {
			return dec
		}
	}
	return href
}

func hostFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}

func isBlockedDomain(host string) bool {
	for _, b := range domainBlocklist {
		if host == b || strings.HasSuffix(host, "."+b) {
			return true
		}
	}
	return false
}

// sanitizeForSearch drops the suffixes that make search results noisy.
func sanitizeForSearch(s string) string {
	r := strings.NewReplacer(
		", Inc.", "", " Inc.", "", " Inc", "",
		", LLC", "", " LLC", "",
		", Ltd.", "", " Ltd.", "", " Ltd", "",
		" Hospitality Group", " hospitality",
		" Restaurant Group", " restaurants",
	)
	return strings.Join(strings.Fields(r.Replace(strings.TrimSpace(s))), " ")
}
