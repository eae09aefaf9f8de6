package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadscout-engine/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(ClientConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
	}, NewCache(30, nil), nil)
	return c, srv
}

const directoryBody = `{
  "data": {
    "organization": "Balthazar",
    "domain": "balthazar.com",
    "linkedin": "https://linkedin.com/company/balthazar",
    "headcount": "51-200",
    "emails": [
      {"value": "jane@balthazar.com", "first_name": "Jane", "last_name": "Doe",
       "position": "HR Director", "confidence": 92, "type": "personal"},
      {"value": "", "position": "CEO"},
      {"value": "info@balthazar.com", "type": "generic", "confidence": 70}
    ]
  }
}`

func TestLookupByName(t *testing.T) {
	var gotCompany, gotKey string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotCompany = r.URL.Query().Get("company")
		gotKey = r.URL.Query().Get("api_key")
		w.Write([]byte(directoryBody))
	})

	res := c.Lookup(context.Background(), domain.EnrichmentQuery{
		SearchTerm: "Balthazar", Mode: domain.ByCompanyName, SourceTag: "primary:name",
	}, "")

	assert.Equal(t, "Balthazar", gotCompany)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "primary:name", res.SourceTag)
	assert.Equal(t, "balthazar.com", res.Domain)
	assert.Equal(t, "https://linkedin.com/company/balthazar", res.LinkedIn)
	assert.Equal(t, "51-200", res.EmployeeSize)
	assert.False(t, res.FromCache)
	// the blank-address record is dropped at decode time
	require.Len(t, res.Contacts, 2)
}

func TestLookupCacheHit(t *testing.T) {
	calls := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(directoryBody))
	})

	q := domain.EnrichmentQuery{SearchTerm: "Balthazar", Mode: domain.ByCompanyName, SourceTag: "primary:name"}
	first := c.Lookup(context.Background(), q, "")
	second := c.Lookup(context.Background(), q, "")

	assert.Equal(t, 1, calls, "second lookup must come from cache")
	assert.False(t, first.FromCache)
	assert.True(t, second.FromCache)
	assert.Len(t, second.Contacts, 2)
}

func TestLookupByDomainSetsDomain(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "balthazar.com", r.URL.Query().Get("domain"))
		w.Write([]byte(`{"data":{"emails":[{"value":"jane@balthazar.com"}]}}`))
	})

	res := c.Lookup(context.Background(), domain.EnrichmentQuery{
		SearchTerm: "balthazar.com", Mode: domain.ByDomain, SourceTag: "primary:domain",
	}, "")

	assert.Equal(t, "balthazar.com", res.Domain)

	// and again from cache
	res = c.Lookup(context.Background(), domain.EnrichmentQuery{
		SearchTerm: "balthazar.com", Mode: domain.ByDomain, SourceTag: "primary:domain",
	}, "")
	assert.True(t, res.FromCache)
	assert.Equal(t, "balthazar.com", res.Domain)
}

func TestLookup429CoolsDown(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	var slept time.Duration
	c.sleep = func(d time.Duration) { slept = d }

	res := c.Lookup(context.Background(), domain.EnrichmentQuery{
		SearchTerm: "Balthazar", Mode: domain.ByCompanyName, SourceTag: "primary:name",
	}, "Balthazar SoHo")

	assert.Equal(t, "primary:name:rate_limited", res.SourceTag)
	assert.Empty(t, res.Contacts)
	assert.Equal(t, c.cooldown, slept)
}

func TestLookupFallbackRetriesOnce(t *testing.T) {
	var terms []string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Query().Get("company")
		terms = append(terms, term)
		if term == "Balthazar" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(directoryBody))
	})

	res := c.Lookup(context.Background(), domain.EnrichmentQuery{
		SearchTerm: "Balthazar", Mode: domain.ByCompanyName, SourceTag: "primary:name",
	}, "Balthazar SoHo")

	assert.Equal(t, []string{"Balthazar", "Balthazar SoHo"}, terms)
	assert.Equal(t, "primary:name:fallback", res.SourceTag)
	assert.Len(t, res.Contacts, 2)
}

func TestLookupFailureNeverErrors(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	res := c.Lookup(context.Background(), domain.EnrichmentQuery{
		SearchTerm: "Balthazar", Mode: domain.ByCompanyName, SourceTag: "primary:name",
	}, "")

	assert.Equal(t, "primary:name:error", res.SourceTag)
	assert.Empty(t, res.Contacts)
}

func TestLookupEmptyTerm(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	res := c.Lookup(context.Background(), domain.EnrichmentQuery{
		SearchTerm: "  ", Mode: domain.ByCompanyName, SourceTag: "primary:name",
	}, "")
	assert.Equal(t, "primary:name:empty", res.SourceTag)
}
