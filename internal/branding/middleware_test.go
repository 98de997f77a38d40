package branding

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func trustAll(*http.Request) bool { return true }
func trustNone(*http.Request) bool { return false }

func serve(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	return serveTrusting(t, h, req, trustAll)
}

func serveTrusting(t *testing.T, h http.Handler, req *http.Request, trusted func(*http.Request) bool) *httptest.ResponseRecorder {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rr := httptest.NewRecorder()
	Middleware(NewInjector(DefaultConfig()), trusted, logger)(h).ServeHTTP(rr, req)
	return rr
}

func TestMiddlewareBrandsHTML(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, "<html><head></head><body><main>page</main></body></html>")
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(UserHeader, "Ana Ruiz")

	rr := serve(t, h, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `id="site-header"`)
	assert.Contains(t, body, `<span id="aliceUserInitials">AR</span>`)
	assert.Contains(t, body, "<main>page</main>")
	assert.Equal(t, strconv.Itoa(len(body)), rr.Header().Get("Content-Length"))
}

func TestMiddlewareIgnoresUserHeaderFromUntrustedPeer(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, "<html><body></body></html>")
	})
	for name, trusted := range map[string]func(*http.Request) bool{"untrusted": trustNone, "no check": nil} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(UserHeader, "Mallory Evans")

			body := serveTrusting(t, h, req, trusted).Body.String()
			assert.Contains(t, body, `id="site-header"`)
			assert.Contains(t, body, `<span id="aliceUserInitials">--</span>`)
			assert.Contains(t, body, `style="display: none;"`)
		})
	}
}

func TestMiddlewarePassesThroughOtherContent(t *testing.T) {
	cases := []struct {
		name   string
		ctype  string
		status int
		hx     bool
	}{
		{"json", "application/json", http.StatusOK, false},
		{"error page", "text/html", http.StatusInternalServerError, false},
		{"htmx partial", "text/html", http.StatusOK, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			const payload = `<div>fragment</div>`
			h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tc.ctype)
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, payload)
			})
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tc.hx {
				req.Header.Set("HX-Request", "true")
			}
			rr := serve(t, h, req)
			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, payload, rr.Body.String())
		})
	}
}
