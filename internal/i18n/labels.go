package i18n

// Labels is the complete set of dashboard strings for one language.
// Fields ending in Sub carry the label in the other language, shown as a
// secondary caption under the primary one.
type Labels struct {
	// Header
	Title          string
	Subtitle       string
	DashboardTitle string
	Year           string
	Currency       string
	Language       string

	// Navigation
	Overview         string
	BudgetAnalysis   string
	ForensicInsights string
	Collections      string

	// Metrics
	TotalIncome      string
	TotalExpenses    string
	NetResult        string
	OutstandingAR    string
	TotalBudget      string
	TotalExecuted    string
	NetVariance      string
	UnderBudget      string
	OverBudget       string
	TotalIncomeSub   string
	TotalExpensesSub string
	NetResultSub     string
	OutstandingARSub string
	TotalBudgetSub   string
	ExecutedSub      string

	// Charts
	ExpenseDistribution      string
	ExpenseDistributionSub   string
	MonthlyExpensesBudget    string
	MonthlyExpensesBudgetSub string
	BudgetVsActualCategory   string
	DetailedBudgetAnalysis   string

	// Balance sheet
	BalanceSheetSummary   string
	BalanceSheetAsOf      string
	Assets                string
	AssetsSub             string
	Liabilities           string
	LiabilitiesSub        string
	Equity                string
	EquitySub             string
	TotalAssets           string
	TotalLiabilities      string
	TotalEquity           string
	CashBank              string
	CashBankSub           string
	AccountsReceivable    string
	AccountsReceivableSub string
	Prepaid               string
	PrepaidSub            string
	FixedAssets           string
	FixedAssetsSub        string
	AccountsPayable       string
	AccountsPayableSub    string
	LongTermDebt          string
	LongTermDebtSub       string
	RetainedEarnings      string
	CurrentYearResult     string
	CashFlowUSD           string
	BankBalance           string
	InitialCapital        string
	RemainingBalance      string

	// Budget table
	Category    string
	CategorySub string
	Budget      string
	Actual      string
	Variance    string
	Status      string
	Over        string
	Under       string
	OnBudget    string

	// Forensic
	ForensicAccountingAnalysis string
	ForensicDescription        string
	HighPriority               string
	MediumPriority             string
	LowPriority                string
	Informational              string
	Information                string
	FindingDetails             string
	Recommendation             string

	// Collections
	TotalOutstanding         string
	TotalOutstandingSub      string
	HOAFeesOutstanding       string
	HOAFeesOutstandingSub    string
	DelinquentUnits          string
	UnitsWithOutstanding     string
	OutstandingFeesByUnit    string
	OutstandingFeesByUnitSub string
	Unit                     string
	HOAFees                  string
	Extraordinary            string
	WaterFees                string
	Total                    string
	Priority                 string
	High                     string
	Medium                   string
	Low                      string

	// Collection risk
	CollectionRiskAlert       string
	CollectionRiskDescription string
	OfTotalReceivables        string
	ThisUnitOwes              string
	InHOAFees                 string
	InExtraordinaryFees       string
	InWaterFees               string
	UnitTotalFormat           string
	OfTotalAR                 string
	RecommendedAction         string
	ImmediateCollection       string

	// Footer
	FinancialDashboard string
	DataAsOf           string
	ExchangeRate       string
	AverageNote        string

	Others string
}

var english = Labels{
	Title:          "The Paraíso Residences",
	Subtitle:       "Administradora de Inmuebles Paraíso, A.C. • Marina Cabo San Lucas",
	DashboardTitle: "HOA Financial Analysis Dashboard",
	Year:           "Year",
	Currency:       "Currency",
	Language:       "Language",

	Overview:         "Overview",
	BudgetAnalysis:   "Budget Analysis",
	ForensicInsights: "Forensic Insights",
	Collections:      "Collections",

	TotalIncome:      "Total Income",
	TotalExpenses:    "Total Expenses",
	NetResult:        "Net Result",
	OutstandingAR:    "Outstanding A/R",
	TotalBudget:      "Total Budget",
	TotalExecuted:    "Total Executed",
	NetVariance:      "Net Variance",
	UnderBudget:      "Under Budget",
	OverBudget:       "Over Budget",
	TotalIncomeSub:   "Ingresos Totales",
	TotalExpensesSub: "Gastos Totales",
	NetResultSub:     "Resultado Neto",
	OutstandingARSub: "Cuentas por Cobrar",
	TotalBudgetSub:   "Presupuesto Total 2023",
	ExecutedSub:      "Gastos Ejecutados 2023",

	ExpenseDistribution:      "Expense Distribution",
	ExpenseDistributionSub:   "Distribución de Gastos",
	MonthlyExpensesBudget:    "Monthly Expenses vs Budget",
	MonthlyExpensesBudgetSub: "Gastos Mensuales vs Presupuesto",
	BudgetVsActualCategory:   "Budget vs Actual by Category",
	DetailedBudgetAnalysis:   "Detailed Budget Analysis",

	BalanceSheetSummary:   "Balance Sheet Summary",
	BalanceSheetAsOf:      "Posición Financiera al 31/Dic/2023",
	Assets:                "Assets",
	AssetsSub:             "Activos",
	Liabilities:           "Liabilities",
	LiabilitiesSub:        "Pasivos",
	Equity:                "Equity",
	EquitySub:             "Capital",
	TotalAssets:           "Total Assets",
	TotalLiabilities:      "Total Liabilities",
	TotalEquity:           "Total Equity",
	CashBank:              "Cash & Bank",
	CashBankSub:           "Efectivo",
	AccountsReceivable:    "Accounts Receivable",
	AccountsReceivableSub: "Clientes",
	Prepaid:               "Prepaid",
	PrepaidSub:            "Pagos Anticipados",
	FixedAssets:           "Fixed Assets",
	FixedAssetsSub:        "Activo Fijo",
	AccountsPayable:       "Accounts Payable",
	AccountsPayableSub:    "Proveedores",
	LongTermDebt:          "Long-Term Debt",
	LongTermDebtSub:       "Largo Plazo",
	RetainedEarnings:      "Retained Earnings",
	CurrentYearResult:     "Current Year Result",
	CashFlowUSD:           "Cash Position (USD)",
	BankBalance:           "Bank Balance",
	InitialCapital:        "Initial Capital",
	RemainingBalance:      "Remaining Balance",

	Category:    "Category",
	CategorySub: "Categoría",
	Budget:      "Budget",
	Actual:      "Actual",
	Variance:    "Variance",
	Status:      "Status",
	Over:        "OVER",
	Under:       "UNDER",
	OnBudget:    "ON BUDGET",

	ForensicAccountingAnalysis: "Forensic Accounting Analysis",
	ForensicDescription:        "This section provides an in-depth forensic analysis of the HOA's financial statements, identifying areas of concern, budget variances, and recommendations for improved financial management. Analysis is based on the 2023 fiscal year data.",
	HighPriority:               "High Priority",
	MediumPriority:             "Medium Priority",
	LowPriority:                "Low Priority",
	Informational:              "Informational",
	Information:                "Information",
	FindingDetails:             "Finding Details",
	Recommendation:             "Recommendation",

	TotalOutstanding:         "Total Outstanding",
	TotalOutstandingSub:      "Cuentas por Cobrar Totales",
	HOAFeesOutstanding:       "HOA Fees Outstanding",
	HOAFeesOutstandingSub:    "Cuotas de Mantenimiento",
	DelinquentUnits:          "Delinquent Units",
	UnitsWithOutstanding:     "Units with Outstanding HOA Fees",
	OutstandingFeesByUnit:    "Outstanding Fees by Unit",
	OutstandingFeesByUnitSub: "Cuotas Pendientes por Unidad",
	Unit:                     "Unit",
	HOAFees:                  "HOA Fees",
	Extraordinary:            "Extraordinary",
	WaterFees:                "Water Fees",
	Total:                    "Total",
	Priority:                 "Priority",
	High:                     "HIGH",
	Medium:                   "MEDIUM",
	Low:                      "LOW",

	CollectionRiskAlert:       "Collection Risk Alert",
	CollectionRiskDescription: "represents a significant concentration risk, accounting for",
	OfTotalReceivables:        "of total outstanding receivables",
	ThisUnitOwes:              "This unit owes",
	InHOAFees:                 "in HOA fees",
	InExtraordinaryFees:       "in extraordinary fees, and",
	InWaterFees:               "in water fees.",
	UnitTotalFormat:           "Unit %s Total",
	OfTotalAR:                 "% of Total A/R",
	RecommendedAction:         "Recommended Action",
	ImmediateCollection:       "Immediate Collection",

	FinancialDashboard: "HOA Financial Dashboard",
	DataAsOf:           "Data as of December 31, 2023",
	ExchangeRate:       "Exchange Rate",
	AverageNote:        "(2023 Avg)",

	Others: "Others",
}

var spanish = Labels{
	Title:          "The Paraíso Residences",
	Subtitle:       "Administradora de Inmuebles Paraíso, A.C. • Marina Cabo San Lucas",
	DashboardTitle: "Panel de Análisis Financiero HOA",
	Year:           "Año",
	Currency:       "Moneda",
	Language:       "Idioma",

	Overview:         "Resumen",
	BudgetAnalysis:   "Análisis Presupuestal",
	ForensicInsights: "Análisis Forense",
	Collections:      "Cobranza",

	TotalIncome:      "Ingresos Totales",
	TotalExpenses:    "Gastos Totales",
	NetResult:        "Resultado Neto",
	OutstandingAR:    "Cuentas por Cobrar",
	TotalBudget:      "Presupuesto Total",
	TotalExecuted:    "Total Ejecutado",
	NetVariance:      "Variación Neta",
	UnderBudget:      "Bajo Presupuesto",
	OverBudget:       "Sobre Presupuesto",
	TotalIncomeSub:   "Total Income",
	TotalExpensesSub: "Total Expenses",
	NetResultSub:     "Net Result",
	OutstandingARSub: "Accounts Receivable",
	TotalBudgetSub:   "Total Budget 2023",
	ExecutedSub:      "Executed Expenses 2023",

	ExpenseDistribution:      "Distribución de Gastos",
	ExpenseDistributionSub:   "Expense Distribution",
	MonthlyExpensesBudget:    "Gastos Mensuales vs Presupuesto",
	MonthlyExpensesBudgetSub: "Monthly Expenses vs Budget",
	BudgetVsActualCategory:   "Presupuesto vs Real por Categoría",
	DetailedBudgetAnalysis:   "Análisis Detallado del Presupuesto",

	BalanceSheetSummary:   "Resumen de Posición Financiera",
	BalanceSheetAsOf:      "Balance Sheet as of Dec 31, 2023",
	Assets:                "Activos",
	AssetsSub:             "Assets",
	Liabilities:           "Pasivos",
	LiabilitiesSub:        "Liabilities",
	Equity:                "Capital",
	EquitySub:             "Equity",
	TotalAssets:           "Total Activos",
	TotalLiabilities:      "Total Pasivos",
	TotalEquity:           "Total Capital",
	CashBank:              "Efectivo y Bancos",
	CashBankSub:           "Cash & Bank",
	AccountsReceivable:    "Cuentas por Cobrar",
	AccountsReceivableSub: "Accounts Receivable",
	Prepaid:               "Pagos Anticipados",
	PrepaidSub:            "Prepaid",
	FixedAssets:           "Activo Fijo",
	FixedAssetsSub:        "Fixed Assets",
	AccountsPayable:       "Proveedores",
	AccountsPayableSub:    "Accounts Payable",
	LongTermDebt:          "Deuda a Largo Plazo",
	LongTermDebtSub:       "Long-Term Debt",
	RetainedEarnings:      "Resultados Acumulados",
	CurrentYearResult:     "Resultado del Ejercicio",
	CashFlowUSD:           "Posición de Efectivo (USD)",
	BankBalance:           "Saldo Bancario",
	InitialCapital:        "Capital Inicial",
	RemainingBalance:      "Saldo Remanente",

	Category:    "Categoría",
	CategorySub: "Category",
	Budget:      "Presupuesto",
	Actual:      "Real",
	Variance:    "Variación",
	Status:      "Estado",
	Over:        "EXCEDIDO",
	Under:       "AHORRO",
	OnBudget:    "EN PRESUPUESTO",

	ForensicAccountingAnalysis: "Análisis Contable Forense",
	ForensicDescription:        "Esta sección proporciona un análisis forense profundo de los estados financieros del HOA, identificando áreas de preocupación, variaciones presupuestales y recomendaciones para mejorar la gestión financiera. El análisis se basa en los datos del año fiscal 2023.",
	HighPriority:               "Alta Prioridad",
	MediumPriority:             "Prioridad Media",
	LowPriority:                "Baja Prioridad",
	Informational:              "Informativo",
	Information:                "Informativo",
	FindingDetails:             "Detalles del Hallazgo",
	Recommendation:             "Recomendación",

	TotalOutstanding:         "Total Pendiente",
	TotalOutstandingSub:      "Total Outstanding",
	HOAFeesOutstanding:       "Cuotas HOA Pendientes",
	HOAFeesOutstandingSub:    "HOA Fees Outstanding",
	DelinquentUnits:          "Unidades Morosas",
	UnitsWithOutstanding:     "Unidades con Cuotas Pendientes",
	OutstandingFeesByUnit:    "Cuotas Pendientes por Unidad",
	OutstandingFeesByUnitSub: "Outstanding Fees by Unit",
	Unit:                     "Unidad",
	HOAFees:                  "Cuotas HOA",
	Extraordinary:            "Extraordinarias",
	WaterFees:                "Cuota Agua",
	Total:                    "Total",
	Priority:                 "Prioridad",
	High:                     "ALTA",
	Medium:                   "MEDIA",
	Low:                      "BAJA",

	CollectionRiskAlert:       "Alerta de Riesgo de Cobranza",
	CollectionRiskDescription: "representa un riesgo de concentración significativo, representando",
	OfTotalReceivables:        "del total de cuentas por cobrar",
	ThisUnitOwes:              "Esta unidad debe",
	InHOAFees:                 "en cuotas HOA",
	InExtraordinaryFees:       "en cuotas extraordinarias, y",
	InWaterFees:               "en cuotas de agua.",
	UnitTotalFormat:           "Total Unidad %s",
	OfTotalAR:                 "% del Total C×C",
	RecommendedAction:         "Acción Recomendada",
	ImmediateCollection:       "Cobranza Inmediata",

	FinancialDashboard: "Panel Financiero HOA",
	DataAsOf:           "Datos al 31 de Diciembre de 2023",
	ExchangeRate:       "Tipo de Cambio",
	AverageNote:        "(Promedio 2023)",

	Others: "Otros",
}

// For returns a copy of the label set for l; unknown values read English.
func For(l Language) Labels {
	if l == Spanish {
		return spanish
	}
	return english
}
