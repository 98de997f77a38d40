package dashboard

import (
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"hoadash/internal/core"
)

// Chart and API payloads. Amounts are JSON numbers in the selected
// currency; Formatted carries the display string.

type Amount struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

type SlicePoint struct {
	Name     string  `json:"name"`
	FullName string  `json:"full_name"`
	Value    float64 `json:"value"`
	Share    float64 `json:"share"`
}

type MonthlyChart struct {
	Labels []string     `json:"labels"`
	Budget []float64    `json:"budget"`
	Actual []float64    `json:"actual"`
	Stats  MonthlyStats `json:"stats"`
}

// MonthlyStats summarizes the monthly actual spend of a year.
type MonthlyStats struct {
	MeanActual       float64 `json:"mean_actual"`
	StdDevActual     float64 `json:"stddev_actual"`
	PeakMonth        string  `json:"peak_month"`
	PeakActual       float64 `json:"peak_actual"`
	MonthsOverBudget int     `json:"months_over_budget"`
}

type BarChart struct {
	Labels   []string  `json:"labels"`
	Budgeted []float64 `json:"budgeted"`
	Actual   []float64 `json:"actual"`
	Variance []float64 `json:"variance"`
}

// ChartData feeds the client-side charts of the page.
type ChartData struct {
	Currency       string       `json:"currency"`
	BudgetLabel    string       `json:"budget_label"`
	ActualLabel    string       `json:"actual_label"`
	Breakdown      []SlicePoint `json:"breakdown"`
	Monthly        MonthlyChart `json:"monthly"`
	BudgetVsActual BarChart     `json:"budget_vs_actual"`
}

func f64(d decimal.Decimal) float64 { return d.InexactFloat64() }

func (v *View) amount(d decimal.Decimal, showSign bool) Amount {
	return Amount{Value: f64(d), Formatted: v.format(d, showSign)}
}

func (v *View) BreakdownSeries() []SlicePoint {
	parts := v.ExpenseBreakdown()
	out := make([]SlicePoint, 0, len(parts))
	for _, s := range parts {
		out = append(out, SlicePoint{Name: s.Name, FullName: s.FullName, Value: f64(s.Value), Share: f64(s.Share)})
	}
	return out
}

func (v *View) MonthlyChart() MonthlyChart {
	points := v.MonthlySeries()
	c := MonthlyChart{
		Labels: make([]string, 0, len(points)),
		Budget: make([]float64, 0, len(points)),
		Actual: make([]float64, 0, len(points)),
	}
	for _, p := range points {
		c.Labels = append(c.Labels, p.Month)
		c.Budget = append(c.Budget, f64(p.Budget))
		c.Actual = append(c.Actual, f64(p.Actual))
	}
	c.Stats = monthlyStats(c.Labels, c.Budget, c.Actual)
	return c
}

func monthlyStats(labels []string, budget, actual []float64) MonthlyStats {
	if len(actual) == 0 {
		return MonthlyStats{}
	}
	diff := make([]float64, len(actual))
	floats.SubTo(diff, budget, actual)
	over := 0
	for _, d := range diff {
		if d < 0 {
			over++
		}
	}
	peak := floats.MaxIdx(actual)
	return MonthlyStats{
		MeanActual:       stat.Mean(actual, nil),
		StdDevActual:     stat.StdDev(actual, nil),
		PeakMonth:        labels[peak],
		PeakActual:       actual[peak],
		MonthsOverBudget: over,
	}
}

func (v *View) BudgetVsActualChart() BarChart {
	bars := v.BudgetVsActualData()
	c := BarChart{
		Labels:   make([]string, 0, len(bars)),
		Budgeted: make([]float64, 0, len(bars)),
		Actual:   make([]float64, 0, len(bars)),
		Variance: make([]float64, 0, len(bars)),
	}
	for _, b := range bars {
		c.Labels = append(c.Labels, b.Name)
		c.Budgeted = append(c.Budgeted, f64(b.Budgeted))
		c.Actual = append(c.Actual, f64(b.Actual))
		c.Variance = append(c.Variance, f64(b.Variance))
	}
	return c
}

func (v *View) Charts() ChartData {
	return ChartData{
		Currency:       string(v.state.Currency),
		BudgetLabel:    v.labels.Budget,
		ActualLabel:    v.labels.Actual,
		Breakdown:      v.BreakdownSeries(),
		Monthly:        v.MonthlyChart(),
		BudgetVsActual: v.BudgetVsActualChart(),
	}
}

type SummaryCardJSON struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Amount
}

type NetVarianceJSON struct {
	Amount
	Percent string `json:"percent"`
	Under   bool   `json:"under"`
	Label   string `json:"label"`
}

type SummaryJSON struct {
	Year        int               `json:"year"`
	Currency    string            `json:"currency"`
	Language    string            `json:"language"`
	Cards       []SummaryCardJSON `json:"cards"`
	TotalBudget Amount            `json:"total_budget"`
	TotalActual Amount            `json:"total_actual"`
	NetVariance NetVarianceJSON   `json:"net_variance"`
}

func (v *View) SummaryJSON() SummaryJSON {
	out := SummaryJSON{
		Year:        v.record.Year,
		Currency:    string(v.state.Currency),
		Language:    string(v.state.Language),
		TotalBudget: v.amount(v.ConvertAmount(v.TotalBudget()), false),
		TotalActual: v.amount(v.ConvertAmount(v.TotalActual()), false),
	}
	for _, c := range v.SummaryCards() {
		out.Cards = append(out.Cards, SummaryCardJSON{Key: c.Key, Title: c.Title, Subtitle: c.Subtitle, Amount: v.amount(c.Amount, c.Signed)})
	}
	nv := v.NetVariance()
	out.NetVariance = NetVarianceJSON{
		Amount:  v.amount(nv.Amount, true),
		Percent: nv.Percent.StringFixed(1),
		Under:   nv.Under,
		Label:   nv.Label,
	}
	return out
}

type CollectionRowJSON struct {
	Unit              string  `json:"unit"`
	HOAFees           float64 `json:"hoa_fees"`
	ExtraordinaryFees float64 `json:"extraordinary_fees"`
	WaterFees         float64 `json:"water_fees"`
	Total             Amount  `json:"total"`
	TotalUSD          float64 `json:"total_usd"`
	Priority          string  `json:"priority"`
}

type ConcentrationJSON struct {
	Unit  string `json:"unit"`
	Total Amount `json:"total"`
	Share string `json:"share"`
}

type CollectionsJSON struct {
	Currency        string              `json:"currency"`
	Rows            []CollectionRowJSON `json:"rows"`
	Totals          CollectionRowJSON   `json:"totals"`
	DelinquentUnits int                 `json:"delinquent_units"`
	Concentration   *ConcentrationJSON  `json:"concentration,omitempty"`
}

func (v *View) CollectionsJSON() CollectionsJSON {
	out := CollectionsJSON{
		Currency:        string(v.state.Currency),
		DelinquentUnits: v.DelinquentUnits(),
	}
	for _, r := range v.CollectionRows() {
		out.Rows = append(out.Rows, CollectionRowJSON{
			Unit:              r.Unit,
			HOAFees:           f64(r.HOAFees),
			ExtraordinaryFees: f64(r.ExtraordinaryFees),
			WaterFees:         f64(r.WaterFees),
			Total:             v.amount(r.Total, false),
			TotalUSD:          f64(r.TotalUSD),
			Priority:          string(r.Priority),
		})
	}
	t := v.CollectionTotals()
	out.Totals = CollectionRowJSON{
		Unit:              v.labels.Total,
		HOAFees:           f64(t.HOAFees),
		ExtraordinaryFees: f64(t.ExtraordinaryFees),
		WaterFees:         f64(t.WaterFees),
		Total:             v.amount(t.Total, false),
		TotalUSD:          f64(v.TotalOutstandingUSD()),
	}
	if c, ok := v.ConcentrationRisk(); ok {
		out.Concentration = &ConcentrationJSON{
			Unit:  c.Fees.Unit,
			Total: v.amount(c.Total, false),
			Share: c.Share.StringFixed(0),
		}
	}
	return out
}

type FindingJSON struct {
	Index          int    `json:"index"`
	Severity       string `json:"severity"`
	Category       string `json:"category"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
	IsUSD          bool   `json:"is_usd"`
	Display        Amount `json:"display"`
	Expanded       bool   `json:"expanded"`
}

type FindingsJSON struct {
	Findings []FindingJSON  `json:"findings"`
	Counts   map[string]int `json:"counts"`
	Currency core.Currency  `json:"currency"`
}

func (v *View) FindingsJSON() FindingsJSON {
	fv := v.FindingsView()
	out := FindingsJSON{Counts: make(map[string]int, len(fv.Counts)), Currency: v.state.Currency}
	for _, c := range fv.Counts {
		out.Counts[string(c.Severity)] = c.Count
	}
	for _, f := range fv.Items {
		out.Findings = append(out.Findings, FindingJSON{
			Index:          f.Index,
			Severity:       string(f.Severity),
			Category:       f.Category,
			Title:          f.Title,
			Description:    f.Description,
			Recommendation: f.Recommendation,
			IsUSD:          f.IsUSD,
			Display:        v.amount(f.Display, true),
			Expanded:       f.Expanded,
		})
	}
	return out
}
