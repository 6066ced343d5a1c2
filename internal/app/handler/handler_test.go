package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"storefront/internal/app/config"
	"storefront/internal/app/content"
	"storefront/internal/app/dto"
	"storefront/internal/app/metrics"
	"storefront/internal/app/middleware"
	"storefront/internal/app/navigation"
	"storefront/internal/app/pricing"
	"storefront/internal/app/session"
	"storefront/internal/app/storage"
	"storefront/internal/app/view"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const cookieName = "legistant_view"

func testConfig() *config.Config {
	return &config.Config{
		Site: config.SiteConfig{
			DefaultLicenses: 5,
			Locales:         []string{"en-US", "de-DE"},
			LoginURL:        "https://app.legistant.com/login",
			ContactEmail:    "info@legistant.com",
		},
		Session: config.SessionConfig{
			Backend:    config.SessionBackendMemory,
			CookieName: cookieName,
			TTL:        time.Hour,
		},
	}
}

func newTestRouter(t *testing.T, store session.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	metrics.Register()

	m, err := navigation.NewMachine(navigation.DefaultPages)
	require.NoError(t, err)
	c := view.NewController(m, content.Default(), pricing.NewCalculator(language.AmericanEnglish), 5)

	h := NewHandler(c, store, storage.StaticAssets(storage.DefaultAssetURLs), testConfig())

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	h.RegisterRoutes(r)
	h.RegisterAPIRoutes(r)
	return r
}

// browser хранит cookie сессии между запросами, как настоящий браузер
type browser struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}
	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			b.cookie = c
		}
	}
	return w
}

func (b *browser) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func (b *browser) postJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return b.do(req)
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) state() view.Snapshot {
	w := b.get("/api/state")
	require.Equal(b.t, http.StatusOK, w.Code)

	var resp dto.StateResponse
	require.NoError(b.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Snapshot
}

func newBrowser(t *testing.T) *browser {
	return &browser{t: t, router: newTestRouter(t, session.NewMemoryStore(time.Hour))}
}

func TestGetPage_NewSession(t *testing.T) {
	b := newBrowser(t)

	w := b.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Streamline Your Legal")
	require.NotNil(t, b.cookie)
	assert.True(t, b.cookie.HttpOnly)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestPostNavigate(t *testing.T) {
	b := newBrowser(t)

	w := b.postForm("/navigate", url.Values{"page": {"pricing"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	page := b.get("/")
	assert.Contains(t, page.Body.String(), "Calculate Your Cost")
	assert.Equal(t, navigation.PagePricing, b.state().Page)
}

func TestPostNavigate_UnknownPageKeepsState(t *testing.T) {
	b := newBrowser(t)

	b.postForm("/navigate", url.Values{"page": {"security"}})
	w := b.postForm("/navigate", url.Values{"page": {"careers"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, navigation.PageSecurity, b.state().Page)
}

func TestPostMenu_NavigateClosesMenu(t *testing.T) {
	b := newBrowser(t)

	b.postForm("/menu", nil)
	assert.True(t, b.state().MenuOpen)
	assert.Contains(t, b.get("/").Body.String(), `id="mobile-nav"`)

	b.postForm("/navigate", url.Values{"page": {"features"}})
	snap := b.state()
	assert.False(t, snap.MenuOpen)
	assert.Equal(t, navigation.PageFeatures, snap.Page)
}

func TestPostLicenses(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected pricing.LicenseCount
	}{
		{name: "in range", value: "35", expected: 35},
		{name: "above max is clamped", value: "500", expected: 100},
		{name: "below min is clamped", value: "0", expected: 1},
		{name: "not a number is ignored", value: "many", expected: 5},
		{name: "empty is ignored", value: "", expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBrowser(t)

			w := b.postForm("/licenses", url.Values{"licenses": {tt.value}})
			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, tt.expected, b.state().LicenseCount)
		})
	}
}

func TestPostAction_API(t *testing.T) {
	b := newBrowser(t)

	w := b.postJSON("/api/actions", `{"type":"set_license_count","licenses":100}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.StateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Applied)
	assert.Equal(t, pricing.LicenseCount(100), resp.Snapshot.LicenseCount)
	assert.Equal(t, 3500, resp.Snapshot.TotalPrice)

	w = b.postJSON("/api/actions", `{"type":"navigate","page":"nowhere"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Applied)
	assert.Equal(t, navigation.PageHome, resp.Snapshot.Page)
}

func TestPostAction_InvalidType(t *testing.T) {
	b := newBrowser(t)

	w := b.postJSON("/api/actions", `{"type":"explode"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"fail"`)
}

func TestPostAction_LicenseCount(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		statusCode int
		expected   pricing.LicenseCount
	}{
		{name: "missing licenses", body: `{"type":"set_license_count"}`, statusCode: http.StatusBadRequest, expected: 5},
		{name: "null licenses", body: `{"type":"set_license_count","licenses":null}`, statusCode: http.StatusBadRequest, expected: 5},
		{name: "zero is clamped", body: `{"type":"set_license_count","licenses":0}`, statusCode: http.StatusOK, expected: 1},
		{name: "in range", body: `{"type":"set_license_count","licenses":42}`, statusCode: http.StatusOK, expected: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBrowser(t)

			w := b.postJSON("/api/actions", tt.body)
			assert.Equal(t, tt.statusCode, w.Code)
			if tt.statusCode == http.StatusBadRequest {
				assert.Contains(t, w.Body.String(), `"status":"fail"`)
			}
			assert.Equal(t, tt.expected, b.state().LicenseCount)
		})
	}
}

func TestStaticRouteNotServed(t *testing.T) {
	b := newBrowser(t)

	w := b.get("/static/logo.png")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionsAreIsolated(t *testing.T) {
	router := newTestRouter(t, session.NewMemoryStore(time.Hour))
	alice := &browser{t: t, router: router}
	bob := &browser{t: t, router: router}

	alice.postForm("/navigate", url.Values{"page": {"security"}})
	bob.postForm("/licenses", url.Values{"licenses": {"42"}})

	assert.Equal(t, navigation.PageSecurity, alice.state().Page)
	assert.Equal(t, pricing.LicenseCount(5), alice.state().LicenseCount)
	assert.Equal(t, navigation.PageHome, bob.state().Page)
	assert.Equal(t, pricing.LicenseCount(42), bob.state().LicenseCount)
}

func TestGetQuote(t *testing.T) {
	b := newBrowser(t)

	tests := []struct {
		name       string
		query      string
		lang       string
		statusCode int
		contains   string
	}{
		{name: "popular tier", query: "tier=Professional&licenses=5", statusCode: http.StatusOK, contains: `"total":175`},
		{name: "case insensitive", query: "tier=enterprise&licenses=100", statusCode: http.StatusOK, contains: `"total_display":"6,500"`},
		{name: "german grouping", query: "tier=enterprise&licenses=100", lang: "de-DE,de;q=0.9", statusCode: http.StatusOK, contains: `"total_display":"6.500"`},
		{name: "clamped", query: "tier=Starter&licenses=1000", statusCode: http.StatusOK, contains: `"clamped":true`},
		{name: "default licenses", query: "tier=Starter", statusCode: http.StatusOK, contains: `"total":75`},
		{name: "unknown tier", query: "tier=Gold&licenses=5", statusCode: http.StatusNotFound, contains: "pricing tier not found"},
		{name: "missing tier", query: "licenses=5", statusCode: http.StatusBadRequest, contains: `"status":"fail"`},
		{name: "bad licenses", query: "tier=Starter&licenses=abc", statusCode: http.StatusBadRequest, contains: `"status":"fail"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/quote?"+tt.query, nil)
			if tt.lang != "" {
				req.Header.Set("Accept-Language", tt.lang)
			}
			w := b.do(req)
			assert.Equal(t, tt.statusCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestContentEndpoints(t *testing.T) {
	b := newBrowser(t)

	tests := []struct {
		path     string
		contains string
	}{
		{path: "/api/content/features", contains: `"total":6`},
		{path: "/api/content/audiences", contains: `"total":4`},
		{path: "/api/content/tiers", contains: `"popular":true`},
		{path: "/api/content/security", contains: `"email":"info@legistant.com"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := b.get(tt.path)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestPingAndMetrics(t *testing.T) {
	b := newBrowser(t)

	w := b.get("/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())

	b.postForm("/menu", nil)
	w = b.get("/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "storefront_mobile_menu_toggles_total")
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (view.State, error) {
	return view.State{}, errors.New("connection refused")
}

func (failingStore) Update(context.Context, string, view.State, func(*view.State)) (view.State, error) {
	return view.State{}, errors.New("connection refused")
}

func TestSessionStoreFailure(t *testing.T) {
	b := &browser{t: t, router: newTestRouter(t, failingStore{})}

	w := b.get("/")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)

	w = b.postForm("/menu", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLocales_Match(t *testing.T) {
	t.Parallel()

	l := NewLocales([]string{"en-US", "de-DE", "not a locale"})

	assert.Equal(t, language.AmericanEnglish, l.Default())
	assert.Equal(t, language.AmericanEnglish, l.Match(""))
	assert.Equal(t, language.MustParse("de-DE"), l.Match("de-DE,de;q=0.9,en;q=0.5"))
	assert.Equal(t, language.AmericanEnglish, l.Match("ja-JP"))
	assert.Equal(t, language.AmericanEnglish, l.Match(";;;"))
	assert.Equal(t, language.AmericanEnglish, NewLocales(nil).Default())
}
