package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoadash/internal/core"
	"hoadash/internal/dashboard"
	"hoadash/internal/i18n"
)

func TestParseIndex(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"9", 9, false},
		{" 3 ", 3, false},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseIndex(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, dashboard.ErrInvalidIndex)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseState(t *testing.T) {
	srv := newTestServer(t, func(o *Options) {
		o.DefaultLanguage = i18n.Spanish
		o.DefaultCurrency = core.USD
	})
	years := []int{2022, 2023}

	tests := []struct {
		name   string
		query  string
		header string
		want   dashboard.State
	}{
		{
			name:  "defaults",
			query: "",
			want:  dashboard.DefaultState(2023, i18n.Spanish, core.USD),
		},
		{
			name:  "explicit values",
			query: "year=2022&currency=mxn&lang=en&tab=collections&finding=4",
			want: dashboard.State{
				Year: 2022, Currency: core.MXN, Language: i18n.English,
				Tab:  dashboard.TabCollections, ExpandedFinding: 4,
			},
		},
		{
			name:   "header negotiation",
			header: "en-GB,en;q=0.8",
			want:   dashboard.DefaultState(2023, i18n.English, core.USD),
		},
		{
			name:  "unknown year keeps default",
			query: "year=2030",
			want:  dashboard.DefaultState(2023, i18n.Spanish, core.USD),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			if tt.header != "" {
				r.Header.Set("Accept-Language", tt.header)
			}
			assert.Equal(t, tt.want, srv.parseState(r, years))
		})
	}
}

func TestDefaultStatePrefersBuiltInYear(t *testing.T) {
	srv := newTestServer(t, nil)

	assert.Equal(t, 2023, srv.defaultState([]int{2021, 2023, 2024}).Year)
	assert.Equal(t, 2022, srv.defaultState([]int{2021, 2022}).Year)
}

func TestRequestBodyParser(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		query       url.Values
		want        BrandRequest
		wantErr     bool
	}{
		{
			name:        "raw html",
			contentType: "text/html; charset=utf-8",
			body:        "<p>x</p>",
			want:        BrandRequest{HTML: "<p>x</p>"},
		},
		{
			name:  "no content type",
			body:  "<p>x</p>",
			query: url.Values{"user": {"Lia"}},
			want:  BrandRequest{HTML: "<p>x</p>", User: "Lia"},
		},
		{
			name:        "json",
			contentType: "application/json",
			body:        `{"html":"<p>x</p>","user":"  Jane\u0007 Doe "}`,
			want:        BrandRequest{HTML: "<p>x</p>", User: "Jane Doe"},
		},
		{
			name:        "json user wins over query",
			contentType: "application/json",
			body:        `{"html":"<p>x</p>","user":"Jane"}`,
			query:       url.Values{"user": {"Other"}},
			want:        BrandRequest{HTML: "<p>x</p>", User: "Jane"},
		},
		{
			name:        "form",
			contentType: "application/x-www-form-urlencoded",
			body:        "html=%3Cp%3Ex%3C%2Fp%3E&user=Jane",
			want:        BrandRequest{HTML: "<p>x</p>", User: "Jane"},
		},
		{
			name:        "bad json",
			contentType: "application/json",
			body:        `{`,
			wantErr:     true,
		},
		{
			name:        "json without html",
			contentType: "application/json",
			body:        `{"user":"Jane"}`,
			wantErr:     true,
		},
		{
			name:    "empty",
			body:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/v1/brand", strings.NewReader(tt.body))
			if tt.contentType != "" {
				r.Header.Set("Content-Type", tt.contentType)
			}
			got, err := NewRequestBodyParser(httptest.NewRecorder(), r).Parse(tt.query)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestBodyParserTooLarge(t *testing.T) {
	body := strings.Repeat("a", maxBrandBody+1)
	r := httptest.NewRequest(http.MethodPost, "/api/v1/brand", strings.NewReader(body))
	_, err := NewRequestBodyParser(httptest.NewRecorder(), r).Parse(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read body")
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "Jane Doe", sanitizeInput("  Jane Doe\n"))
	assert.Equal(t, "ab", sanitizeInput("a\x00b"))
	assert.Equal(t, "a\tb", sanitizeInput("a\tb"))
}
