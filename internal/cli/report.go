package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"text/template"

	"hoadash/internal/core"
	"hoadash/internal/dashboard"
	"hoadash/internal/i18n"
)

// Report is the printable form of every dashboard tab for one state.
type Report struct {
	Labels       i18n.Labels
	Year         int
	Currency     core.Currency
	ExchangeRate string
	Overview     *dashboard.OverviewSection
	Budget       *dashboard.BudgetSection
	Forensic     *dashboard.ForensicSection
	Collections  *dashboard.CollectionsSection
}

// BuildReport renders all four tabs of rec under st.
func BuildReport(rec core.FinancialYearRecord, st dashboard.State) Report {
	years := []int{rec.Year}
	page := func(t dashboard.Tab) dashboard.Page {
		return dashboard.New(rec, st.WithTab(t)).Page(years)
	}

	ov := page(dashboard.TabOverview)
	return Report{
		Labels:       ov.Labels,
		Year:         rec.Year,
		Currency:     st.Currency,
		ExchangeRate: ov.ExchangeRate,
		Overview:     ov.Overview,
		Budget:       page(dashboard.TabBudget).Budget,
		Forensic:     page(dashboard.TabForensic).Forensic,
		Collections:  page(dashboard.TabCollections).Collections,
	}
}

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"heading": func(s string) string { return "== " + s + " ==" },
}).Parse(`{{.Labels.Title}}	{{.Year}}	{{.Currency}}
{{.ExchangeRate}}

{{heading .Labels.Overview}}
{{range .Overview.Cards}}{{.Title}}	{{.Value}}
{{end}}{{range .Overview.Blocks}}
{{.Title}}
{{range .Lines}}  {{.Label}}	{{.Value}}
{{end}}  {{.Total.Label}}	{{.Total.Value}}
{{end}}
{{.Overview.CashPositionTitle}}
{{range .Overview.CashPosition}}  {{.Label}}	{{.Value}}
{{end}}
{{heading .Labels.BudgetAnalysis}}
{{.Budget.CategoryHeader}}	{{.Labels.Budget}}	{{.Labels.Actual}}	{{.Labels.Variance}}	%	{{.Labels.Status}}
{{range .Budget.Rows}}{{.Name}}	{{.Budgeted}}	{{.Actual}}	{{.Variance}}	{{.Percent}}	{{.Status}}
{{end}}{{.Budget.TotalBudget.Title}}	{{.Budget.TotalBudget.Value}}
{{.Budget.TotalExecuted.Title}}	{{.Budget.TotalExecuted.Value}}
{{.Budget.NetVariance.Title}}	{{.Budget.NetVariance.Value}}	{{.Budget.NetVarianceNote}}

{{heading .Labels.ForensicInsights}}
{{range .Forensic.Tallies}}{{.Label}}	{{.Count}}
{{end}}{{range .Forensic.Findings}}[{{.Badge}}]	{{.Title}}	{{.Amount}}
{{end}}
{{heading .Labels.Collections}}
{{.Labels.Unit}}	{{.Labels.HOAFees}}	{{.Labels.Extraordinary}}	{{.Labels.WaterFees}}	{{.Labels.Total}}	{{.Labels.Priority}}
{{range .Collections.Rows}}{{.Unit}}	{{.HOAFees}}	{{.Extraordinary}}	{{.Water}}	{{.Total}}	{{.Priority}}
{{end}}{{with .Collections.Totals}}{{.Unit}}	{{.HOAFees}}	{{.Extraordinary}}	{{.Water}}	{{.Total}}
{{end}}{{with .Collections.Risk}}
{{.Heading}}: {{.Unit}} {{.Total}} ({{.Share}})
{{.Message}}
{{end}}`))

// JSONReport is the machine-readable report: the payloads of the dashboard API.
type JSONReport struct {
	Summary     dashboard.SummaryJSON     `json:"summary"`
	Monthly     dashboard.MonthlyChart    `json:"monthly"`
	Breakdown   []dashboard.SlicePoint    `json:"expense_breakdown"`
	Budget      dashboard.BarChart        `json:"budget_vs_actual"`
	Collections dashboard.CollectionsJSON `json:"collections"`
	Findings    dashboard.FindingsJSON    `json:"findings"`
}

func BuildJSONReport(rec core.FinancialYearRecord, st dashboard.State) JSONReport {
	v := dashboard.New(rec, st)
	return JSONReport{
		Summary:     v.SummaryJSON(),
		Monthly:     v.MonthlyChart(),
		Breakdown:   v.BreakdownSeries(),
		Budget:      v.BudgetVsActualChart(),
		Collections: v.CollectionsJSON(),
		Findings:    v.FindingsJSON(),
	}
}

// WriteReport prints r as aligned plain text.
func WriteReport(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := reportTmpl.Execute(tw, r); err != nil {
		return fmt.Errorf("execute report: %w", err)
	}
	return tw.Flush()
}
