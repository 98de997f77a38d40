// Package http serves the dashboard pages, its HTMX partials, the JSON API
// and the branding endpoint.
//
// This file holds request parsing shared by the handlers.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"hoadash/internal/dashboard"
	applog "hoadash/internal/log"
)

// maxBrandBody caps documents posted for branding.
const maxBrandBody = 2 << 20

var errEmptyDocument = errors.New("empty document")

// parseState reads the dashboard state of a request. Invalid parameters
// fall back to def and are logged.
func (s *Server) parseState(r *http.Request, years []int) dashboard.State {
	def := s.defaultState(years)
	st, problems := dashboard.ParseState(r.URL.Query(), r.Header.Get("Accept-Language"), def, years)
	s.appMetrics.stateFallbacks.Add(int64(len(problems)))
	for _, p := range problems {
		s.logger.WarnContext(r.Context(), "Invalid dashboard parameter, using default",
			applog.FieldError, p,
			applog.FieldOperation, applog.OpParse,
			applog.FieldQuery, r.URL.RawQuery)
	}
	return st
}

// parseIndex parses a non-negative path index.
func parseIndex(v string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || i < 0 {
		return 0, fmt.Errorf("%w: %q", dashboard.ErrInvalidIndex, v)
	}
	return i, nil
}

// BrandRequest is a document submitted for branding.
type BrandRequest struct {
	HTML string `json:"html"`
	User string `json:"user"`
}

// RequestBodyParser reads a brand request body. It accepts a raw HTML
// document, a JSON object or a form with html and user fields.
type RequestBodyParser struct {
	body        []byte
	contentType string
	err         error
}

func NewRequestBodyParser(w http.ResponseWriter, r *http.Request) *RequestBodyParser {
	p := &RequestBodyParser{contentType: r.Header.Get("Content-Type")}
	p.body, p.err = io.ReadAll(http.MaxBytesReader(w, r.Body, maxBrandBody))
	return p
}

// Parse decodes the body. The user query parameter fills in a missing user.
func (p *RequestBodyParser) Parse(query url.Values) (BrandRequest, error) {
	if p.err != nil {
		return BrandRequest{}, fmt.Errorf("read body: %w", p.err)
	}

	var req BrandRequest
	mt, _, _ := mime.ParseMediaType(p.contentType)
	switch mt {
	case "application/json":
		if err := json.Unmarshal(p.body, &req); err != nil {
			return BrandRequest{}, fmt.Errorf("decode json: %w", err)
		}
	case "application/x-www-form-urlencoded":
		form, err := url.ParseQuery(string(p.body))
		if err != nil {
			return BrandRequest{}, fmt.Errorf("decode form: %w", err)
		}
		req.HTML = form.Get("html")
		req.User = form.Get("user")
	default:
		req.HTML = string(p.body)
	}

	if req.User == "" {
		req.User = query.Get("user")
	}
	req.User = sanitizeInput(req.User)

	if strings.TrimSpace(req.HTML) == "" {
		return BrandRequest{}, errEmptyDocument
	}
	return req, nil
}

// sanitizeInput drops control characters and trims whitespace.
func sanitizeInput(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r < 32 && r != '\t' {
			return -1
		}
		return r
	}, s))
}
