package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hoadash/internal/dashboard"
	"hoadash/internal/dataset"
	applog "hoadash/internal/log"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// handleHealth performs basic liveness check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.appMetrics.uptime).String(),
	})
}

type pinger interface {
	Ping(ctx context.Context) error
}

// handleReady performs readiness check with dependency verification
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := "ready"
	httpStatus := http.StatusOK
	checks := make(map[string]any)
	fail := func(name string, err error) {
		checks[name] = fmt.Sprintf("failed: %v", err)
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	}

	if s.templates == nil {
		fail("templates", errors.New("templates not loaded"))
	} else {
		checks["templates"] = "ok"
	}

	if p, ok := s.reader.(pinger); ok {
		if err := p.Ping(ctx); err != nil {
			fail("storage", err)
		} else {
			checks["storage"] = "ok"
		}
	}

	if years, err := s.years(ctx); err != nil {
		fail("dataset", err)
	} else {
		checks["dataset"] = map[string]any{"years": years, "status": "ok"}
	}

	st := s.pages.Stats()
	checks["cache"] = map[string]any{
		"entries": st.Size,
		"hits":    st.Hits,
		"misses":  st.Misses,
		"status":  "ok",
	}
	checks["rate_limiter"] = map[string]any{
		"active_clients": s.rateLimiter.GetMetrics().ClientCount,
		"status":         "ok",
	}

	writeJSON(w, httpStatus, map[string]any{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	})
}

// handleMetrics provides application and security metrics in plain text format
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	traceMetrics := s.tracer.GetMetrics()
	rateLimitMetrics := s.rateLimiter.GetMetrics()
	cacheStats := s.pages.Stats()
	uptime := time.Since(s.appMetrics.uptime)

	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "# HELP http_requests_total Total number of HTTP requests\n")
	fmt.Fprintf(w, "# TYPE http_requests_total counter\n")
	fmt.Fprintf(w, "http_requests_total %d\n\n", traceMetrics.TotalRequests)

	fmt.Fprintf(w, "# HELP http_requests_in_flight Requests currently being served\n")
	fmt.Fprintf(w, "# TYPE http_requests_in_flight gauge\n")
	fmt.Fprintf(w, "http_requests_in_flight %d\n\n", traceMetrics.InFlight)

	fmt.Fprintf(w, "# HELP http_responses_errors_total Error responses by class\n")
	fmt.Fprintf(w, "# TYPE http_responses_errors_total counter\n")
	fmt.Fprintf(w, "http_responses_errors_total{class=\"4xx\"} %d\n", traceMetrics.ClientErrors)
	fmt.Fprintf(w, "http_responses_errors_total{class=\"5xx\"} %d\n\n", traceMetrics.ServerErrors)

	fmt.Fprintf(w, "# HELP http_response_time_avg_ms Average response time in milliseconds\n")
	fmt.Fprintf(w, "# TYPE http_response_time_avg_ms gauge\n")
	fmt.Fprintf(w, "http_response_time_avg_ms %.3f\n\n", float64(traceMetrics.AverageResponseTime)/1000)

	fmt.Fprintf(w, "# HELP dashboard_views_rendered_total Dashboard models built from a record\n")
	fmt.Fprintf(w, "# TYPE dashboard_views_rendered_total counter\n")
	fmt.Fprintf(w, "dashboard_views_rendered_total %d\n\n", s.appMetrics.pagesRendered.Load())

	fmt.Fprintf(w, "# HELP dashboard_state_fallbacks_total Invalid parameters replaced by defaults\n")
	fmt.Fprintf(w, "# TYPE dashboard_state_fallbacks_total counter\n")
	fmt.Fprintf(w, "dashboard_state_fallbacks_total %d\n\n", s.appMetrics.stateFallbacks.Load())

	fmt.Fprintf(w, "# HELP cache_hits_total Total cache hits\n")
	fmt.Fprintf(w, "# TYPE cache_hits_total counter\n")
	fmt.Fprintf(w, "cache_hits_total %d\n\n", cacheStats.Hits)

	fmt.Fprintf(w, "# HELP cache_misses_total Total cache misses\n")
	fmt.Fprintf(w, "# TYPE cache_misses_total counter\n")
	fmt.Fprintf(w, "cache_misses_total %d\n\n", cacheStats.Misses)

	fmt.Fprintf(w, "# HELP cache_entries Current cache entries\n")
	fmt.Fprintf(w, "# TYPE cache_entries gauge\n")
	fmt.Fprintf(w, "cache_entries %d\n\n", cacheStats.Size)

	fmt.Fprintf(w, "# HELP branding_documents_total Documents branded through the API\n")
	fmt.Fprintf(w, "# TYPE branding_documents_total counter\n")
	fmt.Fprintf(w, "branding_documents_total{result=\"ok\"} %d\n", s.appMetrics.docsBranded.Load())
	fmt.Fprintf(w, "branding_documents_total{result=\"error\"} %d\n\n", s.appMetrics.brandFailures.Load())

	fmt.Fprintf(w, "# HELP rate_limit_rejected_total Requests rejected by the rate limiter\n")
	fmt.Fprintf(w, "# TYPE rate_limit_rejected_total counter\n")
	fmt.Fprintf(w, "rate_limit_rejected_total %d\n\n", rateLimitMetrics.Rejected)

	fmt.Fprintf(w, "# HELP active_rate_limit_clients Currently tracked rate limit clients\n")
	fmt.Fprintf(w, "# TYPE active_rate_limit_clients gauge\n")
	fmt.Fprintf(w, "active_rate_limit_clients %d\n\n", rateLimitMetrics.ClientCount)

	fmt.Fprintf(w, "# HELP suspicious_requests_total Total suspicious requests detected\n")
	fmt.Fprintf(w, "# TYPE suspicious_requests_total counter\n")
	fmt.Fprintf(w, "suspicious_requests_total %d\n\n", s.detector.SuspiciousRequests())

	fmt.Fprintf(w, "# HELP uptime_seconds Application uptime in seconds\n")
	fmt.Fprintf(w, "# TYPE uptime_seconds gauge\n")
	fmt.Fprintf(w, "uptime_seconds %.0f\n", uptime.Seconds())
}

// loadView resolves the request state and the model for it. On failure
// the error has already been written.
func (s *Server) loadView(w http.ResponseWriter, r *http.Request, adjust func(dashboard.State) (dashboard.State, error)) (rendered, bool) {
	ctx := r.Context()
	years, err := s.years(ctx)
	if err != nil {
		s.structLog.LogError(ctx, "Failed to list fiscal years", err, applog.ComponentDataset, applog.OpList,
			applog.NewFields().WithErrorType(applog.ErrorTypeDatabase))
		InternalServerError("dataset unavailable").NotifyHTMX(r).Write(w)
		return rendered{}, false
	}

	st := s.parseState(r, years)
	if adjust != nil {
		if st, err = adjust(st); err != nil {
			NotFoundError(err.Error()).NotifyHTMX(r).Write(w)
			return rendered{}, false
		}
	}

	out, err := s.render(ctx, st, years)
	if err != nil {
		fields := applog.NewFields().WithView(st.Year, string(st.Currency), string(st.Language), string(st.Tab))
		if errors.Is(err, dataset.ErrYearNotFound) {
			s.logger.WarnContext(ctx, "Fiscal year not found",
				append(fields.WithErrorType(applog.ErrorTypeNotFound).ToSlice(), applog.FieldError, err)...)
			NotFoundError(fmt.Sprintf("no data for %d", st.Year)).NotifyHTMX(r).Write(w)
			return rendered{}, false
		}
		s.structLog.LogError(ctx, "Failed to build dashboard", err, applog.ComponentDataset, applog.OpRead,
			fields.WithErrorType(applog.ErrorTypeInternal))
		InternalServerError("failed to load dashboard").NotifyHTMX(r).Write(w)
		return rendered{}, false
	}
	return out, true
}

func (s *Server) execute(ctx context.Context, name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		fields := applog.NewFields().WithErrorType(applog.ErrorTypeInternal)
		fields["template"] = name
		s.structLog.LogError(ctx, "Template execution failed", err, applog.ComponentTemplate, applog.OpRender, fields)
		return nil, fmt.Errorf("execute %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	out, ok := s.loadView(w, r, nil)
	if !ok {
		return
	}
	body, err := s.execute(r.Context(), "dashboard_page.html", out.page)
	if err != nil {
		InternalServerError("failed to render dashboard").NotifyHTMX(r).Write(w)
		return
	}
	NewHTMXResponse().BodyHTML(body).Write(w)
}

// writePartial swaps the dashboard body and pushes the full-page URL of the new state.
func (s *Server) writePartial(w http.ResponseWriter, r *http.Request, out rendered) {
	body, err := s.execute(r.Context(), "dashboard_body", out.page)
	if err != nil {
		InternalServerError("failed to render dashboard").NotifyHTMX(r).Write(w)
		return
	}
	st := out.view.State()
	NewHTMXResponse().
		BodyHTML(body).
		PushURL(st.Link("/")).
		TriggerStateChanged(st).
		TriggerChartsRefresh().
		Write(w)
}

func (s *Server) handleTab(w http.ResponseWriter, r *http.Request) {
	tab, err := dashboard.ParseTab(chi.URLParam(r, "tab"))
	if err != nil {
		NotFoundError(err.Error()).NotifyHTMX(r).Write(w)
		return
	}
	out, ok := s.loadView(w, r, func(st dashboard.State) (dashboard.State, error) {
		return st.WithTab(tab), nil
	})
	if !ok {
		return
	}
	s.writePartial(w, r, out)
}

// handleFinding toggles the expansion of one forensic finding.
func (s *Server) handleFinding(w http.ResponseWriter, r *http.Request) {
	idx, err := parseIndex(chi.URLParam(r, "index"))
	if err != nil {
		NotFoundError(err.Error()).NotifyHTMX(r).Write(w)
		return
	}
	out, ok := s.loadView(w, r, func(st dashboard.State) (dashboard.State, error) {
		if idx >= len(dataset.Findings(st.Language)) {
			return st, fmt.Errorf("%w: %d", dashboard.ErrInvalidIndex, idx)
		}
		return st.WithTab(dashboard.TabForensic).ToggleFinding(idx), nil
	})
	if !ok {
		return
	}
	s.logger.DebugContext(r.Context(), "Finding toggled",
		applog.FieldFinding, idx,
		applog.FieldTab, string(out.view.State().Tab))
	s.writePartial(w, r, out)
}

func (s *Server) handleDashboardAPI(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")
	switch resource {
	case "summary", "expense-breakdown", "monthly", "budget-vs-actual", "collections", "findings":
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown resource " + resource})
		return
	}

	ctx := r.Context()
	years, err := s.years(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "dataset unavailable"})
		return
	}
	out, err := s.render(ctx, s.parseState(r, years), years)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, dataset.ErrYearNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	v := out.view
	var payload any
	switch resource {
	case "summary":
		payload = v.SummaryJSON()
	case "expense-breakdown":
		payload = map[string]any{
			"currency": string(v.State().Currency),
			"items":    v.BreakdownSeries(),
			"total":    v.ConvertAmount(v.TotalActual()).InexactFloat64(),
		}
	case "monthly":
		payload = v.MonthlyChart()
	case "budget-vs-actual":
		payload = v.BudgetVsActualChart()
	case "collections":
		payload = v.CollectionsJSON()
	case "findings":
		payload = v.FindingsJSON()
	}
	writeJSON(w, http.StatusOK, payload)
}

// handleBrand injects the portal header and footer into a posted document.
func (s *Server) handleBrand(w http.ResponseWriter, r *http.Request) {
	req, err := NewRequestBodyParser(w, r).Parse(r.URL.Query())
	if err != nil {
		s.logger.WarnContext(r.Context(), "Invalid brand request",
			applog.NewFields().
				WithError(err).
				WithOperation(applog.OpParse).
				WithErrorType(applog.ErrorTypeValidation).
				ToSlice()...)
		s.appMetrics.brandFailures.Add(1)
		BadRequestError(err.Error()).Write(w)
		return
	}

	var out bytes.Buffer
	if err := s.injector.BrandForUser(bytes.NewReader([]byte(req.HTML)), &out, req.User); err != nil {
		s.structLog.LogError(r.Context(), "Branding failed", err, applog.ComponentBranding, applog.OpBrand,
			applog.NewFields().WithErrorType(applog.ErrorTypeValidation))
		s.appMetrics.brandFailures.Add(1)
		ErrorResponse(http.StatusUnprocessableEntity, "failed to brand document").Write(w)
		return
	}

	s.appMetrics.docsBranded.Add(1)
	s.logger.InfoContext(r.Context(), "Document branded",
		applog.FieldOperation, applog.OpBrand,
		applog.FieldBytes, out.Len(),
		"user_menu", req.User != "")
	NewHTMXResponse().BodyHTML(out.Bytes()).Write(w)
}
