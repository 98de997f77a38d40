package dataset

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoadash/internal/core"
	"hoadash/internal/i18n"
)

func TestParaiso2023Valid(t *testing.T) {
	r := Paraiso2023()
	require.NoError(t, r.Validate())
	assert.Equal(t, DefaultYear, r.Year)
	assert.Len(t, r.MonthlyExpenses, 12)
	assert.Len(t, r.ExpenseCategories, 27)
	assert.Len(t, r.OutstandingFees, 8)
}

func TestVarianceIsBudgetedMinusActual(t *testing.T) {
	for _, c := range Paraiso2023().ExpenseCategories {
		assert.True(t, c.Variance.Equal(c.Budgeted.Sub(c.Actual)), c.Name.EN)
	}
}

func TestBalanceSheetAddsUp(t *testing.T) {
	bs := Paraiso2023().BalanceSheet
	assert.True(t, bs.TotalAssets.Sub(bs.TotalLiabilities).Equal(bs.Equity))
}

func TestOutstandingTotals(t *testing.T) {
	ft := core.TotalFees(Paraiso2023().OutstandingFees)
	assert.True(t, ft.HOAFees.Equal(decimal.NewFromInt(28939)))
	assert.True(t, ft.ExtraordinaryFees.Equal(decimal.NewFromInt(1050)))
	assert.True(t, ft.WaterFees.Equal(decimal.RequireFromString("698.94")))
	assert.True(t, ft.Total.Equal(decimal.RequireFromString("30687.94")))
}

func TestFindings(t *testing.T) {
	en := Findings(i18n.English)
	es := Findings(i18n.Spanish)
	require.Len(t, en, 10)
	require.Len(t, es, 10)

	for i := range en {
		assert.NoError(t, en[i].Severity.Validate())
		assert.Equal(t, en[i].Severity, es[i].Severity)
		assert.True(t, en[i].Amount.Equal(es[i].Amount), "finding %d amount differs by language", i)
		assert.Equal(t, en[i].IsUSD, es[i].IsUSD)
		assert.NotEqual(t, en[i].Title, es[i].Title)
	}

	assert.True(t, en[1].IsUSD)
	assert.Equal(t, "Tax compliant - No ISR due", en[9].Title)
	assert.True(t, en[9].Amount.IsZero())
}

func TestFindingsFreshSlice(t *testing.T) {
	a := Findings(i18n.English)
	a[0].Title = "changed"
	assert.NotEqual(t, "changed", Findings(i18n.English)[0].Title)
}
