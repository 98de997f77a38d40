package dashboard

import (
	"github.com/shopspring/decimal"

	"hoadash/internal/core"
	"hoadash/internal/i18n"
)

// SummaryCard is one headline metric of the overview tab.
type SummaryCard struct {
	Key      string
	Title    string
	Subtitle string
	Amount   decimal.Decimal // selected currency
	Signed   bool
}

func (v *View) SummaryCards() []SummaryCard {
	s := v.record.Summary
	l := v.labels
	return []SummaryCard{
		{Key: "income", Title: l.TotalIncome, Subtitle: l.TotalIncomeSub, Amount: v.ConvertAmount(s.TotalIncome)},
		{Key: "expenses", Title: l.TotalExpenses, Subtitle: l.TotalExpensesSub, Amount: v.ConvertAmount(s.TotalExpenses)},
		{Key: "net", Title: l.NetResult, Subtitle: l.NetResultSub, Amount: v.ConvertAmount(s.NetResult), Signed: true},
		{Key: "receivable", Title: l.OutstandingAR, Subtitle: l.OutstandingARSub, Amount: v.OutstandingInCurrency()},
	}
}

// LineItem is one labelled amount. Currency is the unit Amount is expressed in.
type LineItem struct {
	Label    string
	Amount   decimal.Decimal
	Currency core.Currency
	Signed   bool
}

type BalanceSection struct {
	Title      string
	Subtitle   string
	Items      []LineItem
	TotalLabel string
	Total      LineItem
}

type BalanceSheetView struct {
	Heading      string
	AsOf         string
	Assets       BalanceSection
	Liabilities  BalanceSection
	Equity       BalanceSection
	CashPosition []LineItem // always USD
}

func (v *View) BalanceSheetView() BalanceSheetView {
	bs := v.record.BalanceSheet
	cf := v.record.CashFlowUSD
	l := v.labels
	cur := v.state.Currency

	item := func(label, sub string, mxn decimal.Decimal) LineItem {
		if sub != "" {
			label = label + " / " + sub
		}
		return LineItem{Label: label, Amount: v.ConvertAmount(mxn), Currency: cur}
	}
	usd := func(label string, amount decimal.Decimal) LineItem {
		return LineItem{Label: label, Amount: amount, Currency: core.USD}
	}

	result := item(l.CurrentYearResult, "", bs.CurrentYearResult)
	result.Signed = true

	return BalanceSheetView{
		Heading: l.BalanceSheetSummary,
		AsOf:    l.BalanceSheetAsOf,
		Assets: BalanceSection{
			Title:    l.Assets,
			Subtitle: l.AssetsSub,
			Items: []LineItem{
				item(l.CashBank, l.CashBankSub, bs.CashAndBank),
				item(l.AccountsReceivable, l.AccountsReceivableSub, bs.AccountsReceivable),
				item(l.Prepaid, l.PrepaidSub, bs.PrepaidExpenses),
				item(l.FixedAssets, l.FixedAssetsSub, bs.FixedAssets),
			},
			TotalLabel: l.TotalAssets,
			Total:      item(l.TotalAssets, "", bs.TotalAssets),
		},
		Liabilities: BalanceSection{
			Title:    l.Liabilities,
			Subtitle: l.LiabilitiesSub,
			Items: []LineItem{
				item(l.AccountsPayable, l.AccountsPayableSub, bs.AccountsPayable),
				item(l.LongTermDebt, l.LongTermDebtSub, bs.LongTermDebt),
			},
			TotalLabel: l.TotalLiabilities,
			Total:      item(l.TotalLiabilities, "", bs.TotalLiabilities),
		},
		Equity: BalanceSection{
			Title:    l.Equity,
			Subtitle: l.EquitySub,
			Items: []LineItem{
				item(l.RetainedEarnings, "", bs.RetainedEarnings),
				result,
			},
			TotalLabel: l.TotalEquity,
			Total:      item(l.TotalEquity, "", bs.Equity),
		},
		CashPosition: []LineItem{
			usd(l.BankBalance, cf.BankBalance),
			usd(l.AccountsReceivable, cf.AccountsReceivable),
			usd(l.InitialCapital, cf.InitialCapital),
			usd(l.RemainingBalance, cf.RemainingBalance),
		},
	}
}

// NetVariance compares the total budget with total spend.
type NetVariance struct {
	Amount  decimal.Decimal // budget minus actual, selected currency
	Percent decimal.Decimal // of total budget, unrounded
	Under   bool
	Label   string
}

func (v *View) NetVariance() NetVariance {
	budget := v.TotalBudget()
	diff := budget.Sub(v.TotalActual())
	nv := NetVariance{
		Amount:  v.ConvertAmount(diff),
		Percent: VariancePercent(diff, budget),
		Under:   !diff.IsNegative(),
	}
	if nv.Under {
		nv.Label = v.labels.UnderBudget
	} else {
		nv.Label = v.labels.OverBudget
	}
	return nv
}

// BudgetRow is one line of the detailed budget table, in the selected currency.
type BudgetRow struct {
	Name     string
	Icon     core.Icon
	Budgeted decimal.Decimal
	Actual   decimal.Decimal
	Variance decimal.Decimal
	Percent  decimal.Decimal
	Status   BudgetStatus
}

// BudgetRows lists every category, largest actual spend first.
func (v *View) BudgetRows() []BudgetRow {
	cats := v.byActualDesc()
	out := make([]BudgetRow, 0, len(cats))
	for _, c := range cats {
		out = append(out, BudgetRow{
			Name:     c.Name.Both(),
			Icon:     c.Icon,
			Budgeted: v.ConvertAmount(c.Budgeted),
			Actual:   v.ConvertAmount(c.Actual),
			Variance: v.ConvertAmount(c.Variance),
			Percent:  VariancePercent(c.Variance, c.Budgeted),
			Status:   BudgetStatusOf(c.Variance),
		})
	}
	return out
}

// CollectionRow is one unit of the outstanding fees table. Fee amounts are
// in the selected currency; priority is always judged on the USD total.
type CollectionRow struct {
	Unit              string
	HOAFees           decimal.Decimal
	ExtraordinaryFees decimal.Decimal
	WaterFees         decimal.Decimal
	Total             decimal.Decimal
	TotalUSD          decimal.Decimal
	Priority          Priority
}

// CollectionRows lists the units, largest debt first.
func (v *View) CollectionRows() []CollectionRow {
	units := v.sortedFees()
	out := make([]CollectionRow, 0, len(units))
	for _, u := range units {
		total := u.Total()
		out = append(out, CollectionRow{
			Unit:              u.Unit,
			HOAFees:           v.ConvertUSD(u.HOAFees),
			ExtraordinaryFees: v.ConvertUSD(u.ExtraordinaryFees),
			WaterFees:         v.ConvertUSD(u.WaterFees),
			Total:             v.ConvertUSD(total),
			TotalUSD:          total,
			Priority:          PriorityOf(total),
		})
	}
	return out
}

// CollectionTotals sums each fee column, in the selected currency.
func (v *View) CollectionTotals() core.FeeTotals {
	t := core.TotalFees(v.record.OutstandingFees)
	return core.FeeTotals{
		HOAFees:           v.ConvertUSD(t.HOAFees),
		ExtraordinaryFees: v.ConvertUSD(t.ExtraordinaryFees),
		WaterFees:         v.ConvertUSD(t.WaterFees),
		Total:             v.ConvertUSD(t.Total),
	}
}

// DelinquentUnits counts units that owe regular HOA fees.
func (v *View) DelinquentUnits() int {
	n := 0
	for _, u := range v.record.OutstandingFees {
		if u.HOAFees.IsPositive() {
			n++
		}
	}
	return n
}

// Concentration describes the largest single debtor.
type Concentration struct {
	Fees  core.UnitFees   // USD
	Total decimal.Decimal // selected currency
	Share decimal.Decimal // percent of all receivables, unrounded
}

// ConcentrationRisk returns the unit owing the most. ok is false when
// nothing is outstanding.
func (v *View) ConcentrationRisk() (c Concentration, ok bool) {
	units := v.sortedFees()
	all := v.TotalOutstandingUSD()
	if len(units) == 0 || !all.IsPositive() {
		return Concentration{}, false
	}
	top := units[0]
	return Concentration{
		Fees:  top,
		Total: v.ConvertUSD(top.Total()),
		Share: top.Total().Div(all).Mul(hundred),
	}, true
}

// FindingView is a forensic finding ready for display.
type FindingView struct {
	core.Finding
	Index         int
	Display       decimal.Decimal // selected currency
	HasAmount     bool
	Expanded      bool
	SeverityLabel string
}

type SeverityCount struct {
	Severity core.Severity
	Label    string
	Count    int
}

type FindingsView struct {
	Items  []FindingView
	Counts []SeverityCount
}

// FindingDisplayAmount converts a finding's amount to the selected currency.
// USD-flagged amounts are native USD; all others are MXN.
func (v *View) FindingDisplayAmount(f core.Finding) decimal.Decimal {
	if f.IsUSD {
		return v.ConvertUSD(f.Amount)
	}
	return v.ConvertAmount(f.Amount)
}

func (v *View) FindingsView() FindingsView {
	counts := make(map[core.Severity]int, 4)
	items := make([]FindingView, 0, len(v.findings))
	for i, f := range v.findings {
		counts[f.Severity]++
		items = append(items, FindingView{
			Finding:       f,
			Index:         i,
			Display:       v.FindingDisplayAmount(f),
			HasAmount:     !f.Amount.IsZero(),
			Expanded:      i == v.state.ExpandedFinding,
			SeverityLabel: severityBadge(f.Severity, v.labels),
		})
	}

	out := FindingsView{Items: items}
	for _, s := range core.Severities() {
		out.Counts = append(out.Counts, SeverityCount{
			Severity: s,
			Label:    severityHeading(s, v.labels),
			Count:    counts[s],
		})
	}
	return out
}

func severityBadge(s core.Severity, l i18n.Labels) string {
	if s == core.SeverityInfo {
		return l.Information
	}
	return severityHeading(s, l)
}

func severityHeading(s core.Severity, l i18n.Labels) string {
	switch s {
	case core.SeverityHigh:
		return l.HighPriority
	case core.SeverityMedium:
		return l.MediumPriority
	case core.SeverityLow:
		return l.LowPriority
	default:
		return l.Informational
	}
}
