// This file implements the builder used for HTMX partial responses: it
// collects HX-Trigger events and headers and writes them in one go.
package http

import (
	"encoding/json"
	"html/template"
	"net/http"

	"hoadash/internal/dashboard"
)

type HTMXResponseBuilder struct {
	triggers   map[string]any
	statusCode int
	body       []byte
	headers    map[string]string
	message    string
}

func NewHTMXResponse() *HTMXResponseBuilder {
	return &HTMXResponseBuilder{
		triggers:   make(map[string]any),
		statusCode: http.StatusOK,
		headers:    make(map[string]string),
	}
}

func (b *HTMXResponseBuilder) Status(code int) *HTMXResponseBuilder {
	b.statusCode = code
	return b
}

// Trigger adds a named event to the HX-Trigger header.
func (b *HTMXResponseBuilder) Trigger(name string, data any) *HTMXResponseBuilder {
	b.triggers[name] = data
	return b
}

// TriggerStateChanged announces the dashboard selection after a swap.
func (b *HTMXResponseBuilder) TriggerStateChanged(s dashboard.State) *HTMXResponseBuilder {
	return b.Trigger("dashboard:state", map[string]any{
		"year":     s.Year,
		"currency": string(s.Currency),
		"lang":     string(s.Language),
		"tab":      string(s.Tab),
		"finding":  s.ExpandedFinding,
	})
}

// TriggerChartsRefresh asks the client to redraw its charts.
func (b *HTMXResponseBuilder) TriggerChartsRefresh() *HTMXResponseBuilder {
	return b.Trigger("charts:refresh", struct{}{})
}

type NotificationType string

const (
	NotificationError   NotificationType = "error"
	NotificationWarning NotificationType = "warning"
)

func (b *HTMXResponseBuilder) TriggerNotification(notifType NotificationType, message string, durationMs int) *HTMXResponseBuilder {
	return b.Trigger("show-notification", map[string]any{
		"type":     string(notifType),
		"message":  message,
		"duration": durationMs,
	})
}

func (b *HTMXResponseBuilder) TriggerErrorNotification(message string) *HTMXResponseBuilder {
	return b.TriggerNotification(NotificationError, message, 5000)
}

// NotifyHTMX repeats the message of an error response as a notification
// when r was issued by htmx, which does not swap error bodies.
func (b *HTMXResponseBuilder) NotifyHTMX(r *http.Request) *HTMXResponseBuilder {
	if b.message == "" || r.Header.Get("HX-Request") != "true" {
		return b
	}
	if b.statusCode >= http.StatusInternalServerError {
		return b.TriggerErrorNotification(b.message)
	}
	return b.TriggerNotification(NotificationWarning, b.message, 3000)
}

// PushURL sets the URL the browser history should show after the swap.
func (b *HTMXResponseBuilder) PushURL(u string) *HTMXResponseBuilder {
	return b.Header("HX-Push-Url", u)
}

func (b *HTMXResponseBuilder) Header(name, value string) *HTMXResponseBuilder {
	b.headers[name] = value
	return b
}

func (b *HTMXResponseBuilder) Body(content []byte) *HTMXResponseBuilder {
	b.body = content
	return b
}

// BodyHTML sets an HTML body and its content type.
func (b *HTMXResponseBuilder) BodyHTML(content []byte) *HTMXResponseBuilder {
	b.headers["Content-Type"] = "text/html; charset=utf-8"
	b.body = content
	return b
}

func (b *HTMXResponseBuilder) Write(w http.ResponseWriter) {
	for name, value := range b.headers {
		w.Header().Set(name, value)
	}

	if len(b.triggers) > 0 {
		if triggerJSON, err := json.Marshal(b.triggers); err == nil {
			w.Header().Set("HX-Trigger", string(triggerJSON))
		}
	}

	w.WriteHeader(b.statusCode)
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}

// ErrorResponse is an escaped HTML error fragment.
func ErrorResponse(statusCode int, message string) *HTMXResponseBuilder {
	b := NewHTMXResponse().
		Status(statusCode).
		BodyHTML([]byte(`<div class="error">` + template.HTMLEscapeString(message) + `</div>`))
	b.message = message
	return b
}

func BadRequestError(message string) *HTMXResponseBuilder {
	return ErrorResponse(http.StatusBadRequest, message)
}

func NotFoundError(message string) *HTMXResponseBuilder {
	return ErrorResponse(http.StatusNotFound, message)
}

func InternalServerError(message string) *HTMXResponseBuilder {
	return ErrorResponse(http.StatusInternalServerError, message)
}
