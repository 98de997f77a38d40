package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoadash/internal/branding"
	"hoadash/internal/core"
	"hoadash/internal/dashboard"
	"hoadash/internal/dataset/memory"
	applog "hoadash/internal/log"
)

func testLogger() *applog.Logger {
	return applog.New(applog.Config{Output: io.Discard, Component: applog.ComponentApp})
}

func newTestServer(t *testing.T, mutate func(*Options)) *Server {
	t.Helper()
	opts := Options{
		Addr:      ":0",
		Reader:    memory.NewStatic(),
		RateLimit: 100,
		Logger:    testLogger(),
	}
	if mutate != nil {
		mutate(&opts)
	}
	srv, err := NewServer(opts)
	require.NoError(t, err)
	return srv
}

func serve(srv *Server, method, target string, body io.Reader, header map[string]string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, body)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

type failingReader struct{}

func (failingReader) Years(context.Context) ([]int, error) {
	return nil, errors.New("disk on fire")
}

func (failingReader) ReadYear(context.Context, int) (core.FinancialYearRecord, error) {
	return core.FinancialYearRecord{}, errors.New("disk on fire")
}

func TestNewServerRequiresReader(t *testing.T) {
	_, err := NewServer(Options{Logger: testLogger()})
	require.Error(t, err)
}

func TestIndex(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name     string
		target   string
		header   map[string]string
		contains []string
		absent   []string
	}{
		{
			name:     "default state",
			target:   "/",
			contains: []string{`<html lang="en"`, "The Paraíso Residences", "Forensic Insights", `id="chart-data"`, "AIP180215RP4"},
		},
		{
			name:     "spanish from accept-language",
			target:   "/",
			header:   map[string]string{"Accept-Language": "es-MX,es;q=0.9"},
			contains: []string{`<html lang="es"`, "Análisis Forense"},
		},
		{
			name:     "query language wins over header",
			target:   "/?lang=en",
			header:   map[string]string{"Accept-Language": "es-MX"},
			contains: []string{`<html lang="en"`},
		},
		{
			name:     "invalid parameters fall back to defaults",
			target:   "/?year=1999&currency=EUR&tab=nope&finding=x",
			contains: []string{`<html lang="en"`, "Overview"},
		},
		{
			name:     "forensic tab with expanded finding",
			target:   "/?tab=forensic&finding=0",
			contains: []string{"finding-body", "Other Expenses exceeded budget by 246%"},
		},
		{
			name:     "collapsed findings have no body",
			target:   "/?tab=forensic",
			contains: []string{`id="finding-9"`},
			absent:   []string{"finding-body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(srv, http.MethodGet, tt.target, nil, tt.header)
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
			body := rr.Body.String()
			for _, s := range tt.contains {
				assert.Contains(t, body, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, body, s)
			}
		})
	}
}

func TestIndexSetsSecurityHeadersAndRequestID(t *testing.T) {
	srv := newTestServer(t, nil)
	rr := serve(srv, http.MethodGet, "/", nil, nil)

	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rr.Header().Get("Content-Security-Policy"))
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestTabPartial(t *testing.T) {
	srv := newTestServer(t, nil)

	rr := serve(srv, http.MethodGet, "/ui/tab/budget?year=2023&currency=USD&lang=es", nil, map[string]string{"HX-Request": "true"})
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.NotContains(t, body, "<html")
	assert.Contains(t, body, "Análisis Presupuestal")

	push, err := url.Parse(rr.Header().Get("HX-Push-Url"))
	require.NoError(t, err)
	assert.Equal(t, "/", push.Path)
	assert.Equal(t, "budget", push.Query().Get("tab"))
	assert.Equal(t, "USD", push.Query().Get("currency"))
	assert.Equal(t, "es", push.Query().Get("lang"))

	var triggers map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(rr.Header().Get("HX-Trigger")), &triggers))
	assert.Equal(t, "budget", triggers["dashboard:state"]["tab"])
	assert.Contains(t, triggers, "charts:refresh")
}

func TestTabPartialUnknownTab(t *testing.T) {
	srv := newTestServer(t, nil)
	rr := serve(srv, http.MethodGet, "/ui/tab/ledger", nil, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, rr.Header().Get("HX-Trigger"))

	rr = serve(srv, http.MethodGet, "/ui/tab/ledger", nil, map[string]string{"HX-Request": "true"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	var triggers map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(rr.Header().Get("HX-Trigger")), &triggers))
	assert.Equal(t, string(NotificationWarning), triggers["show-notification"]["type"])
	assert.Contains(t, triggers["show-notification"]["message"], "unknown tab")
}

func TestFindingToggle(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name        string
		target      string
		wantStatus  int
		wantFinding string
	}{
		{"expand", "/ui/findings/2?tab=forensic", http.StatusOK, "2"},
		{"switch to another", "/ui/findings/3?tab=forensic&finding=2", http.StatusOK, "3"},
		{"collapse", "/ui/findings/3?tab=forensic&finding=3", http.StatusOK, ""},
		{"forces forensic tab", "/ui/findings/0?tab=budget", http.StatusOK, "0"},
		{"out of range", "/ui/findings/10", http.StatusNotFound, ""},
		{"negative", "/ui/findings/-1", http.StatusNotFound, ""},
		{"not a number", "/ui/findings/abc", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(srv, http.MethodGet, tt.target, nil, map[string]string{"HX-Request": "true"})
			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			push, err := url.Parse(rr.Header().Get("HX-Push-Url"))
			require.NoError(t, err)
			assert.Equal(t, "forensic", push.Query().Get("tab"))
			assert.Equal(t, tt.wantFinding, push.Query().Get("finding"))
		})
	}
}

func TestDashboardAPI(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("summary", func(t *testing.T) {
		rr := serve(srv, http.MethodGet, "/api/v1/dashboard/summary?currency=USD", nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var got dashboard.SummaryJSON
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, 2023, got.Year)
		assert.Equal(t, "USD", got.Currency)
		require.Len(t, got.Cards, 4)
		assert.Equal(t, "income", got.Cards[0].Key)
	})

	t.Run("expense breakdown total matches items", func(t *testing.T) {
		rr := serve(srv, http.MethodGet, "/api/v1/dashboard/expense-breakdown", nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var got struct {
			Currency string                 `json:"currency"`
			Items    []dashboard.SlicePoint `json:"items"`
			Total    float64                `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "MXN", got.Currency)
		require.NotEmpty(t, got.Items)
		var sum float64
		for _, it := range got.Items {
			sum += it.Value
		}
		assert.InDelta(t, sum, got.Total, 0.01)
	})

	t.Run("monthly", func(t *testing.T) {
		rr := serve(srv, http.MethodGet, "/api/v1/dashboard/monthly?lang=es", nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var got dashboard.MonthlyChart
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Len(t, got.Labels, 12)
		assert.Len(t, got.Actual, 12)
		assert.Equal(t, "Ene", got.Stats.PeakMonth)
		assert.Equal(t, 3, got.Stats.MonthsOverBudget)
	})

	t.Run("findings reflect expansion", func(t *testing.T) {
		rr := serve(srv, http.MethodGet, "/api/v1/dashboard/findings?finding=1", nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var got dashboard.FindingsJSON
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got.Findings, 10)
		assert.True(t, got.Findings[1].Expanded)
		assert.False(t, got.Findings[0].Expanded)
	})

	for _, resource := range []string{"budget-vs-actual", "collections"} {
		t.Run(resource, func(t *testing.T) {
			rr := serve(srv, http.MethodGet, "/api/v1/dashboard/"+resource, nil, nil)
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.True(t, json.Valid(rr.Body.Bytes()))
		})
	}

	t.Run("unknown resource", func(t *testing.T) {
		rr := serve(srv, http.MethodGet, "/api/v1/dashboard/ledger", nil, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestReaderFailures(t *testing.T) {
	srv := newTestServer(t, func(o *Options) { o.Reader = failingReader{} })

	assert.Equal(t, http.StatusInternalServerError, serve(srv, http.MethodGet, "/", nil, nil).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(srv, http.MethodGet, "/api/v1/dashboard/summary", nil, nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(srv, http.MethodGet, "/readyz", nil, nil).Code)
	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/healthz", nil, nil).Code)

	rr := serve(srv, http.MethodGet, "/ui/tab/budget", nil, map[string]string{"HX-Request": "true"})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Header().Get("HX-Trigger"), `"type":"error"`)
	assert.Contains(t, rr.Header().Get("HX-Trigger"), "dataset unavailable")
}

func TestHealthAndReady(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, path := range []string{"/healthz", "/readyz"} {
		rr := serve(srv, http.MethodGet, path, nil, nil)
		require.Equal(t, http.StatusOK, rr.Code, path)

		var got map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got), path)
		assert.Contains(t, []any{"ok", "ready"}, got["status"], path)
	}
}

func TestMetrics(t *testing.T) {
	srv := newTestServer(t, nil)
	serve(srv, http.MethodGet, "/", nil, nil)
	serve(srv, http.MethodGet, "/", nil, nil)

	rr := serve(srv, http.MethodGet, "/metrics", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()

	for _, metric := range []string{
		"http_requests_total",
		"http_response_time_avg_ms ",
		"cache_hits_total 1",
		"cache_misses_total 1",
		"dashboard_views_rendered_total 1",
		"branding_documents_total",
		"suspicious_requests_total 0",
		"uptime_seconds",
	} {
		assert.Contains(t, body, metric)
	}
	assert.Regexp(t, `(?m)^http_response_time_avg_ms \d+\.\d{3}$`, body)
}

func TestStaticAssets(t *testing.T) {
	srv := newTestServer(t, nil)
	rr := serve(srv, http.MethodGet, "/static/dashboard.css", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Cache-Control"), "max-age=3600")
}

func TestBrandPages(t *testing.T) {
	srv := newTestServer(t, func(o *Options) { o.BrandPages = true })

	get := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remote
		req.Header.Set(branding.UserHeader, "Jane Doe")
		rr := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rr, req)
		return rr
	}

	rr := get("10.0.0.5:41000")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `id="site-header"`)
	assert.Contains(t, body, `id="site-footer"`)
	assert.Contains(t, body, `id="aliceUserInitials">JD<`)

	// the logout handler is inline, so the policy must allow exactly that handler
	assert.Contains(t, body, "window.aliceSignOut()")
	csp := rr.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "'unsafe-hashes'")
	assert.Contains(t, csp, branding.SignOutHandlerHash())
	assert.NotContains(t, csp, "script-src 'self' https://unpkg.com https://cdn.jsdelivr.net 'unsafe-inline'")

	rr = get("203.0.113.9:41000")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `id="aliceUserInitials">--<`, "user header from a direct client is ignored")

	rr = serve(srv, http.MethodGet, "/ui/tab/budget", nil, map[string]string{"HX-Request": "true"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), `id="site-header"`)
}

func TestUnbrandedPagesKeepStrictPolicy(t *testing.T) {
	srv := newTestServer(t, nil)
	rr := serve(srv, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Header().Get("Content-Security-Policy"), "unsafe-hashes")
	assert.NotContains(t, rr.Body.String(), "aliceSignOut")
}

func TestBrandAPI(t *testing.T) {
	const doc = `<!DOCTYPE html><html><head><title>x</title></head><body><p>hello</p></body></html>`

	tests := []struct {
		name        string
		target      string
		contentType string
		body        string
		wantStatus  int
		contains    []string
	}{
		{
			name:        "raw html",
			target:      "/api/v1/brand",
			contentType: "text/html",
			body:        doc,
			wantStatus:  http.StatusOK,
			contains:    []string{`id="site-header"`, `id="site-footer"`, "<p>hello</p>"},
		},
		{
			name:        "json with user",
			target:      "/api/v1/brand",
			contentType: "application/json",
			body:        `{"html":"<html><body></body></html>","user":"Maria Lopez"}`,
			wantStatus:  http.StatusOK,
			contains:    []string{`id="site-header"`, `id="aliceUserInitials">ML<`},
		},
		{
			name:        "form with user from query",
			target:      "/api/v1/brand?user=Ana+Perez",
			contentType: "application/x-www-form-urlencoded",
			body:        url.Values{"html": {doc}}.Encode(),
			wantStatus:  http.StatusOK,
			contains:    []string{`id="aliceUserInitials">AP<`},
		},
		{
			name:        "empty document",
			target:      "/api/v1/brand",
			contentType: "text/html",
			body:        "   ",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "malformed json",
			target:      "/api/v1/brand",
			contentType: "application/json",
			body:        `{"html":`,
			wantStatus:  http.StatusBadRequest,
		},
	}

	srv := newTestServer(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(srv, http.MethodPost, tt.target, strings.NewReader(tt.body), map[string]string{"Content-Type": tt.contentType})
			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			for _, s := range tt.contains {
				assert.Contains(t, rr.Body.String(), s)
			}
		})
	}
}

func TestBrandAPIRateLimited(t *testing.T) {
	srv := newTestServer(t, func(o *Options) { o.RateLimit = 1 })
	post := func() *httptest.ResponseRecorder {
		return serve(srv, http.MethodPost, "/api/v1/brand", strings.NewReader("<html></html>"), map[string]string{"Content-Type": "text/html"})
	}

	require.Equal(t, http.StatusOK, post().Code)
	rr := post()
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))

	// dashboard reads are not limited
	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/api/v1/dashboard/summary", nil, nil).Code)
}

func TestShutdownIdempotent(t *testing.T) {
	srv := newTestServer(t, nil)
	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, srv.Shutdown(context.Background()))
}

func TestRunStopsWithContext(t *testing.T) {
	srv := newTestServer(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, srv.Run(ctx))
}
