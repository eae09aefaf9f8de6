package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

const searchResultsPage = `<html><body>
<a class="result__a" href="https://www.linkedin.com/company/balthazar">Balthazar | LinkedIn</a>
<a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fwww.balthazarny.com%2F&rut=abc">Balthazar</a>
<a class="result__a" href="https://www.yelp.com/biz/balthazar-new-york">Balthazar - Yelp</a>
</body></html>`

func newTestFinder(t *testing.T, handler http.HandlerFunc) *DomainFinder {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	f := NewDomainFinder(0, nil, nil)
	f.searchURL = srv.URL
	return f
}

func TestFindSkipsBlockedDomains(t *testing.T) {
	var gotQuery string
	f := newTestFinder(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(searchResultsPage))
	})

	got := f.Find(context.Background(), "Balthazar")
	assert.Equal(t, "balthazarny.com", got)
	assert.Contains(t, gotQuery, "official website")
}

func TestFindEmptyOnFailure(t *testing.T) {
	f := newTestFinder(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	assert.Equal(t, "", f.Find(context.Background(), "Balthazar"))
	assert.Equal(t, "", f.Find(context.Background(), "   "))
}

func TestFindAllResultsBlocked(t *testing.T) {
	f := newTestFinder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<a class="result__a" href="https://www.opentable.com/balthazar">x</a>`))
	})
	assert.Equal(t, "", f.Find(context.Background(), "Balthazar"))
}

func TestDecodeRedirect(t *testing.T) {
	enc := url.QueryEscape("https://www.balthazarny.com/")
	assert.Equal(t, "https://www.balthazarny.com/",
		decodeRedirect("//duckduckgo.com/l/?uddg="+enc))
	assert.Equal(t, "https://direct.example.com/x",
		decodeRedirect("https://direct.example.com/x"))
}

func TestIsBlockedDomain(t *testing.T) {
	assert.True(t, isBlockedDomain("linkedin.com"))
	assert.True(t, isBlockedDomain("jobs.linkedin.com"))
	assert.True(t, isBlockedDomain("culinaryagents.com"))
	assert.False(t, isBlockedDomain("balthazarny.com"))
	assert.False(t, isBlockedDomain("notlinkedin.company"))
}

func TestSanitizeForSearch(t *testing.T) {
	assert.Equal(t, "Balthazar", sanitizeForSearch("Balthazar, Inc."))
	assert.Equal(t, "Danny Meyer", sanitizeForSearch("Danny Meyer LLC"))
	assert.Equal(t, "Union Square hospitality", sanitizeForSearch("Union Square Hospitality Group"))
}
