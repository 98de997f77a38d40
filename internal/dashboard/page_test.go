package dashboard

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoadash/internal/core"
	"hoadash/internal/dataset"
	"hoadash/internal/i18n"
)

func page(tab Tab, cur core.Currency, lang i18n.Language) Page {
	s := DefaultState(2023, lang, cur).WithTab(tab)
	return New(dataset.Paraiso2023(), s).Page([]int{2023})
}

func TestPageOnlyActiveSection(t *testing.T) {
	p := page(TabOverview, core.MXN, i18n.English)
	assert.NotNil(t, p.Overview)
	assert.Nil(t, p.Budget)
	assert.Nil(t, p.Forensic)
	assert.Nil(t, p.Collections)

	p = page(TabCollections, core.MXN, i18n.English)
	assert.Nil(t, p.Overview)
	assert.NotNil(t, p.Collections)
}

func TestPageNavigation(t *testing.T) {
	p := page(TabBudget, core.USD, i18n.Spanish)
	require.Len(t, p.Tabs, 4)
	assert.Equal(t, "Análisis Presupuestal", p.Tabs[1].Label)
	assert.True(t, p.Tabs[1].Active)
	assert.Contains(t, p.Tabs[2].Href, "tab=forensic")
	assert.Contains(t, p.Tabs[2].Href, "currency=USD")
	assert.Equal(t, "es", p.Lang)
	assert.Equal(t, "Tipo de Cambio: 1 USD = 17.5 MXN (Promedio 2023)", p.ExchangeRate)

	require.Len(t, p.Currencies, 2)
	assert.True(t, p.Currencies[1].Active)
	assert.Contains(t, p.Currencies[0].Href, "currency=MXN")
}

func TestOverviewCardsFormatted(t *testing.T) {
	cards := page(TabOverview, core.MXN, i18n.English).Overview.Cards
	assert.Equal(t, "$8,212,347 MXN", cards[0].Value)
	assert.Equal(t, "$8,981,547 MXN", cards[1].Value)
	assert.Equal(t, "$769,200 MXN", cards[2].Value)
	assert.True(t, cards[2].Negative)
	assert.Equal(t, "$537,039 MXN", cards[3].Value)

	usd := page(TabOverview, core.USD, i18n.English).Overview.Cards
	assert.Equal(t, "$469,277 USD", usd[0].Value)
	assert.Equal(t, "$30,688 USD", usd[3].Value)
}

func TestOverviewBalanceSheet(t *testing.T) {
	o := page(TabOverview, core.MXN, i18n.English).Overview
	require.Len(t, o.Blocks, 3)
	assert.Equal(t, "$3,950,115 MXN", o.Blocks[0].Total.Value)
	assert.Equal(t, "$1,583,133 MXN", o.Blocks[2].Lines[0].Value)
	assert.Equal(t, "$769,200 MXN", o.Blocks[2].Lines[1].Value)
	assert.Equal(t, "$18,931 USD", o.CashPosition[0].Value)
}

func TestBudgetSection(t *testing.T) {
	b := page(TabBudget, core.MXN, i18n.English).Budget
	assert.Equal(t, "$8,942,565 MXN", b.TotalBudget.Value)
	assert.Equal(t, "$8,348,144 MXN", b.TotalExecuted.Value)
	assert.Equal(t, "+$594,421 MXN", b.NetVariance.Value)
	assert.Equal(t, "6.6% Under Budget", b.NetVarianceNote)
	require.Len(t, b.Rows, 27)
	assert.Equal(t, "+$687,219 MXN", b.Rows[0].Variance)
	assert.Equal(t, "(14%)", b.Rows[0].Percent)
	assert.Equal(t, "UNDER", b.Rows[0].Status)

	var fumigation BudgetLine
	for _, r := range b.Rows {
		if strings.HasPrefix(r.Name, "Fumigation") {
			fumigation = r
		}
	}
	assert.Equal(t, "ON BUDGET", fumigation.Status)
	assert.Equal(t, "$0 MXN", fumigation.Variance)
}

func TestForensicSection(t *testing.T) {
	s := DefaultState(2023, i18n.English, core.USD).WithTab(TabForensic)
	s.ExpandedFinding = 0
	f := New(dataset.Paraiso2023(), s).Page([]int{2023}).Forensic
	require.Len(t, f.Findings, 10)

	first := f.Findings[0]
	assert.True(t, first.Expanded)
	assert.NotContains(t, first.ToggleHref, "finding=", "toggling the open finding collapses it")
	assert.Contains(t, f.Findings[3].ToggleHref, "finding=3")

	assert.Equal(t, "+$21,453 USD", f.Findings[1].Amount)
	assert.Equal(t, "$14,048 USD", first.Amount)
	assert.Empty(t, f.Findings[9].Amount)
	require.Len(t, f.Tallies, 4)
	assert.Equal(t, 4, f.Tallies[1].Count)
}

func TestCollectionsSection(t *testing.T) {
	c := page(TabCollections, core.USD, i18n.English).Collections
	assert.Equal(t, "$30,688 USD", c.Cards[0].Value)
	assert.Equal(t, "$28,939 USD", c.Cards[1].Value)
	assert.Equal(t, "4", c.Cards[2].Value)
	assert.Equal(t, "1105", c.Rows[0].Unit)
	assert.Equal(t, "HIGH", c.Rows[0].Priority)
	assert.Equal(t, "$699 USD", c.Totals.Water)

	require.NotNil(t, c.Risk)
	assert.Equal(t, "Unit 1105", c.Risk.Unit)
	assert.Equal(t, "70%", c.Risk.Share)
	assert.Equal(t, "Unit 1105 Total", c.Risk.TotalNote)
	assert.Contains(t, c.Risk.Message, "This unit owes $19,960 USD in HOA fees, $1,050 in extraordinary fees, and $442.81 in water fees.")

	es := page(TabCollections, core.MXN, i18n.Spanish).Collections
	assert.Equal(t, "Total Unidad 1105", es.Risk.TotalNote)
	assert.Equal(t, "$375,424 MXN", es.Risk.Total)
	assert.Equal(t, "ALTA", es.Rows[0].Priority)
}

func TestPlainAmount(t *testing.T) {
	assert.Equal(t, "19,960", plainAmount(decimal.NewFromInt(19960)))
	assert.Equal(t, "442.81", plainAmount(decimal.RequireFromString("442.81")))
	assert.Equal(t, "1,050.50", plainAmount(decimal.RequireFromString("1050.5")))
}
