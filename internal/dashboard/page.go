package dashboard

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"hoadash/internal/core"
	"hoadash/internal/i18n"
)

// RFC is the tax id shown in the page header.
const RFC = "AIP180215RP4"

// Link is a navigation or toggle control.
type Link struct {
	Label  string
	Href   string
	Value  string
	Active bool
}

type Card struct {
	Key      string
	Title    string
	Subtitle string
	Value    string
	Negative bool
}

type Line struct {
	Label    string
	Value    string
	Negative bool
}

type BalanceBlock struct {
	Title    string
	Subtitle string
	Lines    []Line
	Total    Line
}

type OverviewSection struct {
	Cards             []Card
	ExpenseTitle      string
	ExpenseSubtitle   string
	MonthlyTitle      string
	MonthlySubtitle   string
	BalanceHeading    string
	BalanceAsOf       string
	Blocks            []BalanceBlock
	CashPositionTitle string
	CashPosition      []Line
}

type BudgetLine struct {
	Name        string
	Icon        string
	Budgeted    string
	Actual      string
	Variance    string
	Percent     string
	Status      string
	StatusClass string
	Over        bool
}

type BudgetSection struct {
	TotalBudget     Card
	TotalExecuted   Card
	NetVariance     Card
	NetVarianceNote string
	ChartTitle      string
	TableTitle      string
	Rows            []BudgetLine
	CategoryHeader  string
}

type FindingCard struct {
	Index               int
	Severity            string
	Badge               string
	Category            string
	Title               string
	Description         string
	Recommendation      string
	DetailsLabel        string
	RecommendationLabel string
	Amount              string
	Negative            bool
	Expanded            bool
	// ToggleHref is the full-page link with this finding toggled.
	ToggleHref string
	// StateQuery encodes the current state for the HTMX toggle route.
	StateQuery string
}

type SeverityTally struct {
	Severity string
	Label    string
	Count    int
}

type ForensicSection struct {
	Heading     string
	Description string
	Tallies     []SeverityTally
	Findings    []FindingCard
}

type CollectionLine struct {
	Unit          string
	HOAFees       string
	Extraordinary string
	Water         string
	Total         string
	Priority      string
	PriorityClass string
}

type RiskAlert struct {
	Heading    string
	Unit       string
	Message    string
	Total      string
	TotalNote  string
	Share      string
	ShareNote  string
	Action     string
	ActionNote string
}

type CollectionsSection struct {
	Cards      []Card
	TableTitle string
	Rows       []CollectionLine
	Totals     CollectionLine
	Risk       *RiskAlert
}

// Page is everything the dashboard template needs for one state. Only the
// section of the active tab is populated.
type Page struct {
	Lang         string
	Labels       i18n.Labels
	State        State
	RFC          string
	Tabs         []Link
	Years        []Link
	Currencies   []Link
	Languages    []Link
	ExchangeRate string
	Overview     *OverviewSection
	Budget       *BudgetSection
	Forensic     *ForensicSection
	Collections  *CollectionsSection
	Charts       ChartData
}

// Page renders the view into display strings. years lists the selectable
// fiscal years.
func (v *View) Page(years []int) Page {
	l := v.labels
	s := v.state

	p := Page{
		Lang:         string(s.Language),
		Labels:       l,
		State:        s,
		RFC:          RFC,
		ExchangeRate: fmt.Sprintf("%s: 1 USD = %s MXN %s", l.ExchangeRate, core.ExchangeRate().String(), l.AverageNote),
		Charts:       v.Charts(),
	}

	for _, t := range Tabs() {
		p.Tabs = append(p.Tabs, Link{Label: t.Label(l), Value: string(t), Href: s.WithTab(t).Link("/"), Active: t == s.Tab})
	}
	for _, y := range years {
		ys := s
		ys.Year = y
		p.Years = append(p.Years, Link{Label: strconv.Itoa(y), Value: strconv.Itoa(y), Href: ys.Link("/"), Active: y == s.Year})
	}
	for _, c := range []core.Currency{core.MXN, core.USD} {
		p.Currencies = append(p.Currencies, Link{Label: string(c), Value: string(c), Href: s.WithCurrency(c).Link("/"), Active: c == s.Currency})
	}
	for _, lang := range i18n.Languages() {
		p.Languages = append(p.Languages, Link{Label: string(lang), Value: string(lang), Href: s.WithLanguage(lang).Link("/"), Active: lang == s.Language})
	}

	switch s.Tab {
	case TabBudget:
		p.Budget = v.budgetSection()
	case TabForensic:
		p.Forensic = v.forensicSection()
	case TabCollections:
		p.Collections = v.collectionsSection()
	default:
		p.Overview = v.overviewSection()
	}
	return p
}

func (v *View) line(it LineItem) Line {
	return Line{
		Label:    it.Label,
		Value:    core.FormatCurrency(it.Amount, it.Currency, it.Signed),
		Negative: it.Amount.IsNegative(),
	}
}

func (v *View) overviewSection() *OverviewSection {
	l := v.labels
	sec := &OverviewSection{
		ExpenseTitle:      l.ExpenseDistribution,
		ExpenseSubtitle:   l.ExpenseDistributionSub,
		MonthlyTitle:      l.MonthlyExpensesBudget,
		MonthlySubtitle:   l.MonthlyExpensesBudgetSub,
		CashPositionTitle: l.CashFlowUSD,
	}
	for _, c := range v.SummaryCards() {
		sec.Cards = append(sec.Cards, Card{
			Key:      c.Key,
			Title:    c.Title,
			Subtitle: c.Subtitle,
			Value:    v.format(c.Amount, c.Signed),
			Negative: c.Amount.IsNegative(),
		})
	}

	bs := v.BalanceSheetView()
	sec.BalanceHeading = bs.Heading
	sec.BalanceAsOf = bs.AsOf
	for _, b := range []BalanceSection{bs.Assets, bs.Liabilities, bs.Equity} {
		block := BalanceBlock{Title: b.Title, Subtitle: b.Subtitle, Total: v.line(b.Total)}
		for _, it := range b.Items {
			block.Lines = append(block.Lines, v.line(it))
		}
		sec.Blocks = append(sec.Blocks, block)
	}
	for _, it := range bs.CashPosition {
		sec.CashPosition = append(sec.CashPosition, v.line(it))
	}
	return sec
}

func (v *View) budgetSection() *BudgetSection {
	l := v.labels
	nv := v.NetVariance()
	sec := &BudgetSection{
		TotalBudget:     Card{Key: "budget", Title: l.TotalBudget, Subtitle: l.TotalBudgetSub, Value: v.format(v.ConvertAmount(v.TotalBudget()), false)},
		TotalExecuted:   Card{Key: "executed", Title: l.TotalExecuted, Subtitle: l.ExecutedSub, Value: v.format(v.ConvertAmount(v.TotalActual()), false)},
		NetVariance:     Card{Key: "variance", Title: l.NetVariance, Value: v.format(nv.Amount, true), Negative: !nv.Under},
		NetVarianceNote: nv.Percent.StringFixed(1) + "% " + nv.Label,
		ChartTitle:      l.BudgetVsActualCategory,
		TableTitle:      l.DetailedBudgetAnalysis,
		CategoryHeader:  l.Category + " / " + l.CategorySub,
	}
	for _, r := range v.BudgetRows() {
		sec.Rows = append(sec.Rows, BudgetLine{
			Name:        r.Name,
			Icon:        string(r.Icon),
			Budgeted:    v.format(r.Budgeted, false),
			Actual:      v.format(r.Actual, false),
			Variance:    v.format(r.Variance, true),
			Percent:     "(" + r.Percent.StringFixed(0) + "%)",
			Status:      r.Status.Label(l),
			StatusClass: string(r.Status),
			Over:        r.Status == StatusOver,
		})
	}
	return sec
}

func (v *View) forensicSection() *ForensicSection {
	l := v.labels
	fv := v.FindingsView()
	sec := &ForensicSection{
		Heading:     l.ForensicAccountingAnalysis,
		Description: l.ForensicDescription,
	}
	for _, c := range fv.Counts {
		sec.Tallies = append(sec.Tallies, SeverityTally{Severity: string(c.Severity), Label: c.Label, Count: c.Count})
	}
	current := v.state.Query().Encode()
	for _, f := range fv.Items {
		toggled := v.state.ToggleFinding(f.Index)
		card := FindingCard{
			Index:               f.Index,
			Severity:            string(f.Severity),
			Badge:               f.SeverityLabel,
			Category:            f.Category,
			Title:               f.Title,
			Description:         f.Description,
			Recommendation:      f.Recommendation,
			DetailsLabel:        l.FindingDetails,
			RecommendationLabel: l.Recommendation,
			Negative:            f.Amount.IsNegative(),
			Expanded:            f.Expanded,
			ToggleHref:          toggled.Link("/"),
			StateQuery:          current,
		}
		if f.HasAmount {
			card.Amount = v.format(f.Display, true)
		}
		sec.Findings = append(sec.Findings, card)
	}
	return sec
}

func (v *View) collectionsSection() *CollectionsSection {
	l := v.labels
	totals := v.CollectionTotals()
	sec := &CollectionsSection{
		Cards: []Card{
			{Key: "outstanding", Title: l.TotalOutstanding, Subtitle: l.TotalOutstandingSub, Value: v.format(totals.Total, false)},
			{Key: "hoa", Title: l.HOAFeesOutstanding, Subtitle: l.HOAFeesOutstandingSub, Value: v.format(totals.HOAFees, false)},
			{Key: "delinquent", Title: l.DelinquentUnits, Subtitle: l.UnitsWithOutstanding, Value: strconv.Itoa(v.DelinquentUnits())},
		},
		TableTitle: l.OutstandingFeesByUnit,
		Totals: CollectionLine{
			Unit:          l.Total,
			HOAFees:       v.format(totals.HOAFees, false),
			Extraordinary: v.format(totals.ExtraordinaryFees, false),
			Water:         v.format(totals.WaterFees, false),
			Total:         v.format(totals.Total, false),
		},
	}
	for _, r := range v.CollectionRows() {
		sec.Rows = append(sec.Rows, CollectionLine{
			Unit:          r.Unit,
			HOAFees:       v.format(r.HOAFees, false),
			Extraordinary: v.format(r.ExtraordinaryFees, false),
			Water:         v.format(r.WaterFees, false),
			Total:         v.format(r.Total, false),
			Priority:      r.Priority.Label(l),
			PriorityClass: string(r.Priority),
		})
	}

	if c, ok := v.ConcentrationRisk(); ok {
		share := c.Share.StringFixed(0) + "%"
		sec.Risk = &RiskAlert{
			Heading: l.CollectionRiskAlert,
			Unit:    l.Unit + " " + c.Fees.Unit,
			Message: fmt.Sprintf("%s %s %s. %s $%s USD %s, $%s %s $%s %s",
				l.CollectionRiskDescription, share, l.OfTotalReceivables,
				l.ThisUnitOwes, plainAmount(c.Fees.HOAFees), l.InHOAFees,
				plainAmount(c.Fees.ExtraordinaryFees), l.InExtraordinaryFees,
				plainAmount(c.Fees.WaterFees), l.InWaterFees),
			Total:      v.format(c.Total, false),
			TotalNote:  fmt.Sprintf(l.UnitTotalFormat, c.Fees.Unit),
			Share:      share,
			ShareNote:  l.OfTotalAR,
			Action:     l.ImmediateCollection,
			ActionNote: l.RecommendedAction,
		}
	}
	return sec
}

// plainAmount groups the integer part and keeps cents only when present:
// 19960 -> "19,960", 442.81 -> "442.81".
func plainAmount(d decimal.Decimal) string {
	whole := d.Truncate(0)
	s := humanize.Comma(whole.IntPart())
	if frac := d.Sub(whole).Abs(); !frac.IsZero() {
		s += frac.StringFixed(2)[1:]
	}
	return s
}
