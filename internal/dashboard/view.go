package dashboard

import (
	"slices"

	"github.com/shopspring/decimal"

	"hoadash/internal/core"
	"hoadash/internal/dataset"
	"hoadash/internal/i18n"
)

const (
	// breakdownSlices is the number of categories shown individually in the
	// expense distribution before the rest is folded into "Others".
	breakdownSlices = 8
	// budgetChartThreshold is the minimum actual spend, in MXN, for a
	// category to appear in the budget-vs-actual chart.
	budgetChartThreshold = 50000
	// chartNameRunes caps category names in the budget-vs-actual chart.
	chartNameRunes = 12
)

// View is the dashboard derived from one record under one State.
type View struct {
	record   core.FinancialYearRecord
	state    State
	labels   i18n.Labels
	findings []core.Finding
}

// New builds a view. The record is copied; the caller keeps ownership of r.
func New(r core.FinancialYearRecord, s State) *View {
	return &View{
		record:   r.Clone(),
		state:    s,
		labels:   i18n.For(s.Language),
		findings: dataset.Findings(s.Language),
	}
}

func (v *View) State() State { return v.state }

func (v *View) Labels() i18n.Labels { return v.labels }

// ConvertAmount expresses an MXN amount in the selected currency. No rounding.
func (v *View) ConvertAmount(mxn decimal.Decimal) decimal.Decimal {
	return core.FromMXN(mxn, v.state.Currency)
}

// ConvertUSD expresses a native USD amount in the selected currency.
func (v *View) ConvertUSD(usd decimal.Decimal) decimal.Decimal {
	return core.FromUSD(usd, v.state.Currency)
}

func (v *View) format(amount decimal.Decimal, showSign bool) string {
	return core.FormatCurrency(amount, v.state.Currency, showSign)
}

// byActualDesc returns the categories ordered by actual spend, largest first.
// Ties keep their dataset order.
func (v *View) byActualDesc() []core.ExpenseCategory {
	cats := slices.Clone(v.record.ExpenseCategories)
	slices.SortStableFunc(cats, func(a, b core.ExpenseCategory) int {
		return b.Actual.Cmp(a.Actual)
	})
	return cats
}

// Slice is one segment of the expense distribution.
type Slice struct {
	Name     string
	FullName string
	Value    decimal.Decimal // selected currency
	Share    decimal.Decimal // percent of the total, unrounded
}

// ExpenseBreakdown returns the eight largest categories by actual spend,
// labelled in the selected language, followed by an "Others" bucket that
// sums the remainder. With eight categories or fewer no bucket is added.
func (v *View) ExpenseBreakdown() []Slice {
	cats := v.byActualDesc()
	total := core.TotalActual(cats)

	share := func(mxn decimal.Decimal) decimal.Decimal {
		if !total.IsPositive() {
			return decimal.Zero
		}
		return mxn.Div(total).Mul(decimal.NewFromInt(100))
	}

	n := min(len(cats), breakdownSlices)
	out := make([]Slice, 0, n+1)
	for _, c := range cats[:n] {
		out = append(out, Slice{
			Name:     c.Name.In(v.state.Language),
			FullName: c.Name.Both(),
			Value:    v.ConvertAmount(c.Actual),
			Share:    share(c.Actual),
		})
	}
	if len(cats) > breakdownSlices {
		others := core.TotalActual(cats[breakdownSlices:])
		out = append(out, Slice{
			Name:     v.labels.Others,
			FullName: i18n.Text{EN: i18n.For(i18n.English).Others, ES: i18n.For(i18n.Spanish).Others}.Both(),
			Value:    v.ConvertAmount(others),
			Share:    share(others),
		})
	}
	return out
}

// BudgetBar is one category of the budget-vs-actual chart, in the selected currency.
type BudgetBar struct {
	Name     string
	Budgeted decimal.Decimal
	Actual   decimal.Decimal
	Variance decimal.Decimal
}

// BudgetVsActualData returns the categories whose actual spend exceeds
// 50,000 MXN, largest first, with names cut to twelve characters.
func (v *View) BudgetVsActualData() []BudgetBar {
	threshold := decimal.NewFromInt(budgetChartThreshold)
	var out []BudgetBar
	for _, c := range v.byActualDesc() {
		if !c.Actual.GreaterThan(threshold) {
			continue
		}
		out = append(out, BudgetBar{
			Name:     truncateRunes(c.Name.In(v.state.Language), chartNameRunes),
			Budgeted: v.ConvertAmount(c.Budgeted),
			Actual:   v.ConvertAmount(c.Actual),
			Variance: v.ConvertAmount(c.Variance),
		})
	}
	return out
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// TotalBudget is the sum of all category budgets, in MXN.
func (v *View) TotalBudget() decimal.Decimal {
	return core.TotalBudgeted(v.record.ExpenseCategories)
}

// TotalActual is the sum of all category actuals, in MXN.
func (v *View) TotalActual() decimal.Decimal {
	return core.TotalActual(v.record.ExpenseCategories)
}

// TotalOutstandingUSD is the sum of every fee owed by every unit, in USD.
func (v *View) TotalOutstandingUSD() decimal.Decimal {
	return core.TotalFees(v.record.OutstandingFees).Total
}

// OutstandingInCurrency is TotalOutstandingUSD in the selected currency.
func (v *View) OutstandingInCurrency() decimal.Decimal {
	return v.ConvertUSD(v.TotalOutstandingUSD())
}

// MonthPoint is one month of the monthly chart, in the selected currency.
type MonthPoint struct {
	Month  string
	Budget decimal.Decimal
	Actual decimal.Decimal
}

func (v *View) MonthlySeries() []MonthPoint {
	out := make([]MonthPoint, 0, len(v.record.MonthlyExpenses))
	for _, m := range v.record.MonthlyExpenses {
		out = append(out, MonthPoint{
			Month:  m.Month.In(v.state.Language),
			Budget: v.ConvertAmount(m.Budget),
			Actual: v.ConvertAmount(m.Actual),
		})
	}
	return out
}

// sortedFees orders units by total owed, largest first.
func (v *View) sortedFees() []core.UnitFees {
	units := slices.Clone(v.record.OutstandingFees)
	slices.SortStableFunc(units, func(a, b core.UnitFees) int {
		return b.Total().Cmp(a.Total())
	})
	return units
}
