package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/plainterms/plainterms/internal/config"
	"github.com/plainterms/plainterms/internal/model"
	"github.com/plainterms/plainterms/internal/render"
)

func strPtr(s string) *string { return &s }

// fakeStore satisfies site.Store and counts website fetches so cache
// behavior is observable.
type fakeStore struct {
	mu        sync.Mutex
	siteCalls int

	names    []string
	websites map[string]*model.Website
	terms    map[int64]*model.TermsOfService
	all      []model.Website
	allErr   error
}

func (f *fakeStore) SiteNames(context.Context) ([]string, error) {
	return f.names, nil
}

func (f *fakeStore) WebsiteBySlug(_ context.Context, slug string) (*model.Website, error) {
	f.mu.Lock()
	f.siteCalls++
	f.mu.Unlock()
	if w, ok := f.websites[slug]; ok {
		return w, nil
	}
	return nil, model.ErrNotFound
}

func (f *fakeStore) TermsByWebsiteID(_ context.Context, websiteID int64) (*model.TermsOfService, error) {
	if t, ok := f.terms[websiteID]; ok {
		return t, nil
	}
	return nil, model.ErrNotFound
}

func (f *fakeStore) Websites(context.Context) ([]model.Website, error) {
	return f.all, f.allErr
}

func (f *fakeStore) websiteCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.siteCalls
}

func newTestServer(t *testing.T, st *fakeStore) *Server {
	t.Helper()
	r, err := render.New(config.DefaultChrome())
	require.NoError(t, err)
	return New(st, r, zap.NewNop())
}

func directoryStore() *fakeStore {
	payload := `{"sections":{"scope":"broad"},"dangers":["data sharing"],"overall_assessment":"risky"}`
	entry := model.Website{ID: 1, SiteName: "ExampleCo", URL: "https://example.com", Category: strPtr("Commerce")}
	return &fakeStore{
		names:    []string{"ExampleCo"},
		websites: map[string]*model.Website{"ExampleCo": &entry},
		terms: map[int64]*model.TermsOfService{
			1: {ID: 10, WebsiteID: 1, TosURL: "https://example.com/tos", SimplifiedContent: &payload},
		},
		all: []model.Website{entry},
	}
}

func get(t *testing.T, srv *Server, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)
	return rr
}

func TestLandingPage(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, directoryStore())
	rr := get(t, srv, "/")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Plain Terms")
}

func TestListingPage(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, directoryStore())
	rr := get(t, srv, "/websites")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/websites/ExampleCo")
	assert.Contains(t, rr.Body.String(), "Commerce")
}

func TestListingDegradesOnStoreError(t *testing.T) {
	t.Parallel()

	st := directoryStore()
	st.allErr = errors.New("connection refused")
	srv := newTestServer(t, st)
	rr := get(t, srv, "/websites")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "ExampleCo")
}

func TestDetailPage(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, directoryStore())
	rr := get(t, srv, "/websites/ExampleCo")

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "broad")
	assert.Contains(t, body, "data sharing")
	assert.Contains(t, body, "risky")
}

func TestDetailPageNotFound(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, directoryStore())
	rr := get(t, srv, "/websites/Unknown")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Website not found")
}

func TestDetailPageCached(t *testing.T) {
	t.Parallel()

	st := directoryStore()
	srv := newTestServer(t, st)

	get(t, srv, "/websites/ExampleCo")
	get(t, srv, "/websites/ExampleCo")

	assert.Equal(t, 1, st.websiteCalls(), "second request should come from cache")
}

func TestDetailPageStaleServesAndRevalidates(t *testing.T) {
	t.Parallel()

	st := directoryStore()
	srv := newTestServer(t, st)
	srv.cache = newPageCache(0) // everything is stale immediately

	first := get(t, srv, "/websites/ExampleCo")
	assert.Equal(t, http.StatusOK, first.Code)

	second := get(t, srv, "/websites/ExampleCo")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Contains(t, second.Body.String(), "risky")

	// The stale hit triggers a background regeneration.
	assert.Eventually(t, func() bool {
		return st.websiteCalls() >= 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDetailPageLightThemeNotCachedAsDark(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, directoryStore())

	light := get(t, srv, "/websites/ExampleCo", &http.Cookie{Name: render.ThemeCookie, Value: "light"})
	assert.Contains(t, light.Body.String(), `class="light"`)

	dark := get(t, srv, "/websites/ExampleCo")
	assert.Contains(t, dark.Body.String(), `class="dark"`)
}

func TestHealthAndStylesheet(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, directoryStore())

	assert.Equal(t, http.StatusOK, get(t, srv, "/healthz").Code)

	css := get(t, srv, "/assets/site.css")
	assert.Equal(t, http.StatusOK, css.Code)
	assert.Equal(t, "text/css; charset=utf-8", css.Header().Get("Content-Type"))
}
