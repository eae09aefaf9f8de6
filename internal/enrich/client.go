package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"leadscout-engine/internal/domain"
)

// LookupResult is what one directory lookup yields. Never nil-ish in a
// surprising way: failures come back as an empty result whose SourceTag
// records what happened, not as an error.
type LookupResult struct {
	LinkedIn     string
	Domain       string
	EmployeeSize string
	Contacts     []domain.RawContact
	SourceTag    string
	FromCache    bool
}

type ClientConfig struct {
	BaseURL     string
	APIKey      string
	Timeout     time.Duration
	Cooldown429 time.Duration
}

// Client talks to the contact-directory API. One lookup per call, paced by
// the shared limiter, cache-first.
type Client struct {
	hc       *http.Client
	baseURL  string
	apiKey   string
	cooldown time.Duration
	cache    *Cache
	limiter  *rate.Limiter
	sleep    func(time.Duration)
}

func NewClient(cfg ClientConfig, cache *Cache, limiter *rate.Limiter) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Cooldown429 <= 0 {
		cfg.Cooldown429 = 30 * time.Second
	}
	return &Client{
		hc:       &http.Client{Timeout: cfg.Timeout},
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		cooldown: cfg.Cooldown429,
		cache:    cache,
		limiter:  limiter,
		sleep:    time.Sleep,
	}
}

type apiResponse struct {
	Data struct {
		Organization   string              `json:"organization"`
		Domain         string              `json:"domain"`
		LinkedIn       string              `json:"linkedin"`
		Headcount      string              `json:"headcount"`
		EmployeesCount int                 `json:"employees_count"`
		Emails         []domain.RawContact `json:"emails"`
	} `json:"data"`
}

// Lookup runs one directory search. It never returns an error to the
// caller: timeouts, HTTP failures and malformed bodies all come back as an
// empty result with a failure-flavored SourceTag. A by-company lookup that
// fails may retry exactly once with fallbackTerm (a location-derived
// variant) before giving up; HTTP 429 cools down and does not retry.
func (c *Client) Lookup(ctx context.Context, q domain.EnrichmentQuery, fallbackTerm string) LookupResult {
	term := strings.TrimSpace(q.SearchTerm)
	if term == "" {
		return LookupResult{SourceTag: q.SourceTag + ":empty"}
	}

	if c.cache != nil {
		if e, ok := c.cache.Get(term, q.SourceTag); ok {
			res := LookupResult{Contacts: e.Emails, SourceTag: q.SourceTag, FromCache: true}
			if q.Mode == domain.ByDomain {
				res.Domain = strings.ToLower(term)
			}
			return res
		}
	}

	if c.limiter != nil {
		_ = c.limiter.Wait(ctx)
	}

	res, status, err := c.search(ctx, term, q.Mode)
	switch {
	case status == http.StatusTooManyRequests:
		log.Printf("[enrich] 429 for %q (%s), cooling down %s", term, q.SourceTag, c.cooldown)
		c.sleep(c.cooldown)
		return LookupResult{SourceTag: q.SourceTag + ":rate_limited"}
	case err != nil:
		log.Printf("[enrich] lookup failed term=%q tag=%s: %v", term, q.SourceTag, err)
		if q.Mode == domain.ByCompanyName && fallbackTerm != "" && !strings.EqualFold(fallbackTerm, term) {
			retry := domain.EnrichmentQuery{
				SearchTerm: fallbackTerm,
				Mode:       domain.ByCompanyName,
				SourceTag:  q.SourceTag + ":fallback",
			}
			return c.Lookup(ctx, retry, "")
		}
		return LookupResult{SourceTag: q.SourceTag + ":error"}
	}

	res.SourceTag = q.SourceTag
	if q.Mode == domain.ByDomain && res.Domain == "" {
		res.Domain = strings.ToLower(term)
	}
	if c.cache != nil && len(res.Contacts) > 0 {
		c.cache.Put(term, q.SourceTag, term, res.Contacts)
	}
	return res
}

func (c *Client) search(ctx context.Context, term string, mode domain.SearchMode) (LookupResult, int, error) {
	v := url.Values{}
	if mode == domain.ByDomain {
		v.Set("domain", term)
	} else {
		v.Set("company", term)
	}
	if c.apiKey != "" {
		v.Set("api_key", c.apiKey)
	}

	u := c.baseURL + "/v2/contact-search?" + v.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return LookupResult{}, 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return LookupResult{}, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		_, _ = io.Copy(io.Discard, resp.Body)
		return LookupResult{}, resp.StatusCode, nil
	}
	if resp.StatusCode >= 400 {
		return LookupResult{}, resp.StatusCode, fmt.Errorf("directory status %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return LookupResult{}, resp.StatusCode, fmt.Errorf("decode directory response: %w", err)
	}

	out := LookupResult{
		LinkedIn: strings.TrimSpace(body.Data.LinkedIn),
		Domain:   strings.ToLower(strings.TrimSpace(body.Data.Domain)),
	}
	if body.Data.Headcount != "" {
		out.EmployeeSize = body.Data.Headcount
	} else if body.Data.EmployeesCount > 0 {
		out.EmployeeSize = strconv.Itoa(body.Data.EmployeesCount)
	}
	for _, e := range body.Data.Emails {
		if strings.TrimSpace(e.Email) == "" {
			continue
		}
		out.Contacts = append(out.Contacts, e)
	}
	return out, resp.StatusCode, nil
}
