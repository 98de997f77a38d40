// Package dashboard derives display-ready figures from a financial year record.
//
// Everything here is pure: a View is built from a record and the UI State
// of one request, and every figure is recomputed from those two inputs.
package dashboard

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"hoadash/internal/core"
	"hoadash/internal/i18n"
)

// Tab is one of the dashboard's top-level views.
type Tab string

const (
	TabOverview    Tab = "overview"
	TabBudget      Tab = "budget"
	TabForensic    Tab = "forensic"
	TabCollections Tab = "collections"
)

// NoFinding marks that no forensic finding is expanded.
const NoFinding = -1

var (
	ErrUnknownTab   = errors.New("unknown tab")
	ErrInvalidYear  = errors.New("invalid year")
	ErrInvalidIndex = errors.New("invalid finding index")
)

// Tabs lists the tabs in navigation order.
func Tabs() []Tab {
	return []Tab{TabOverview, TabBudget, TabForensic, TabCollections}
}

func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Tabs(), t) {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// Label returns the navigation caption of the tab.
func (t Tab) Label(l i18n.Labels) string {
	switch t {
	case TabBudget:
		return l.BudgetAnalysis
	case TabForensic:
		return l.ForensicInsights
	case TabCollections:
		return l.Collections
	default:
		return l.Overview
	}
}

// State is the UI selection of one request. Any combination of values is renderable.
type State struct {
	Currency        core.Currency
	Year            int
	Language        i18n.Language
	Tab             Tab
	ExpandedFinding int
}

// DefaultState is the state of a fresh page load.
func DefaultState(year int, lang i18n.Language, cur core.Currency) State {
	return State{
		Currency:        cur,
		Year:            year,
		Language:        lang,
		Tab:             TabOverview,
		ExpandedFinding: NoFinding,
	}
}

// ParseState reads the state from query parameters.
//
// Unknown or malformed values keep the corresponding field of def and are
// reported in the returned slice so the caller can log them. When the query
// has no lang parameter the Accept-Language header value is negotiated.
// years lists the fiscal years that may be selected.
func ParseState(q url.Values, acceptLanguage string, def State, years []int) (State, []error) {
	s := def
	var problems []error

	if v := strings.TrimSpace(q.Get("lang")); v != "" {
		if l, err := i18n.Parse(v); err == nil {
			s.Language = l
		} else {
			problems = append(problems, fmt.Errorf("lang %q: %w", v, err))
		}
	} else {
		s.Language = i18n.Negotiate(acceptLanguage, def.Language)
	}

	if v := strings.TrimSpace(q.Get("currency")); v != "" {
		if c, err := core.ParseCurrency(v); err == nil {
			s.Currency = c
		} else {
			problems = append(problems, err)
		}
	}

	if v := strings.TrimSpace(q.Get("year")); v != "" {
		y, err := strconv.Atoi(v)
		if err == nil && slices.Contains(years, y) {
			s.Year = y
		} else {
			problems = append(problems, fmt.Errorf("%w: %q", ErrInvalidYear, v))
		}
	}

	if v := strings.TrimSpace(q.Get("tab")); v != "" {
		if t, err := ParseTab(v); err == nil {
			s.Tab = t
		} else {
			problems = append(problems, err)
		}
	}

	if v := strings.TrimSpace(q.Get("finding")); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil && i >= NoFinding {
			s.ExpandedFinding = i
		} else {
			problems = append(problems, fmt.Errorf("%w: %q", ErrInvalidIndex, v))
		}
	}

	return s, problems
}

// Key identifies the state for caching rendered models.
func (s State) Key() string {
	return fmt.Sprintf("%d|%s|%s|%s|%d", s.Year, s.Currency, s.Language, s.Tab, s.ExpandedFinding)
}

// Query encodes the state as query parameters.
func (s State) Query() url.Values {
	q := url.Values{}
	q.Set("year", strconv.Itoa(s.Year))
	q.Set("currency", string(s.Currency))
	q.Set("lang", string(s.Language))
	q.Set("tab", string(s.Tab))
	if s.ExpandedFinding != NoFinding {
		q.Set("finding", strconv.Itoa(s.ExpandedFinding))
	}
	return q
}

// Link returns path with the state encoded in its query string.
func (s State) Link(path string) string {
	return path + "?" + s.Query().Encode()
}

func (s State) WithTab(t Tab) State {
	s.Tab = t
	return s
}

func (s State) WithLanguage(l i18n.Language) State {
	s.Language = l
	return s
}

func (s State) WithCurrency(c core.Currency) State {
	s.Currency = c
	return s
}

// ToggleFinding expands finding i, or collapses it when it is already expanded.
func (s State) ToggleFinding(i int) State {
	if s.ExpandedFinding == i {
		s.ExpandedFinding = NoFinding
	} else {
		s.ExpandedFinding = i
	}
	return s
}
