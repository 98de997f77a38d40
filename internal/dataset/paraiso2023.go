package dataset

import (
	"github.com/shopspring/decimal"

	"hoadash/internal/core"
	"hoadash/internal/i18n"
)

// DefaultYear is the fiscal year the dashboard opens on.
const DefaultYear = 2023

func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Paraiso2023 returns a fresh copy of the closed 2023 fiscal year of
// The Paraíso Residences.
func Paraiso2023() core.FinancialYearRecord {
	return core.FinancialYearRecord{
		Year: 2023,
		Summary: core.Summary{
			TotalIncome:    amt("8212347"),
			TotalExpenses:  amt("8981547"),
			NetResult:      amt("-769200"),
			InterestIncome: amt("234772"),
			OtherIncome:    amt("7977575"),
		},
		BalanceSheet: core.BalanceSheet{
			TotalAssets:        amt("3950114.99"),
			TotalLiabilities:   amt("3136181.95"),
			Equity:             amt("813933.04"),
			CashAndBank:        amt("2191119.19"),
			AccountsReceivable: amt("557547.66"),
			PrepaidExpenses:    amt("1094052.63"),
			FixedAssets:        amt("97732.59"),
			AccountsPayable:    amt("1094068.46"),
			LongTermDebt:       amt("1869989.73"),
			RetainedEarnings:   amt("1583132.68"),
			CurrentYearResult:  amt("-769199.64"),
		},
		CashFlowUSD: core.CashFlowUSD{
			BankBalance:        amt("18931.36"),
			AccountsReceivable: amt("30687.95"),
			InitialCapital:     amt("105000"),
			RemainingBalance:   amt("49619.31"),
		},
		MonthlyExpenses:   months2023(),
		ExpenseCategories: categories2023(),
		OutstandingFees:   fees2023(),
	}
}

func month(en, es, budget, actual, variance string) core.MonthlyExpense {
	return core.MonthlyExpense{
		Month:    i18n.Text{EN: en, ES: es},
		Budget:   amt(budget),
		Actual:   amt(actual),
		Variance: amt(variance),
	}
}

func months2023() []core.MonthlyExpense {
	return []core.MonthlyExpense{
		month("Jan", "Ene", "680000", "1277719.93", "-597719.93"),
		month("Feb", "Feb", "680000", "479610.72", "200389.28"),
		month("Mar", "Mar", "680000", "597178.60", "82821.40"),
		month("Apr", "Abr", "680000", "581539.66", "98460.34"),
		month("May", "May", "680000", "628565.34", "51434.66"),
		month("Jun", "Jun", "680000", "496074.46", "183925.54"),
		month("Jul", "Jul", "745213.73", "1192413.98", "-447200.25"),
		month("Aug", "Ago", "745213.73", "541879.66", "203334.07"),
		month("Sep", "Sep", "745213.73", "616480.88", "128732.85"),
		month("Oct", "Oct", "745213.73", "494863.27", "250350.46"),
		month("Nov", "Nov", "745213.73", "748367.28", "-3153.55"),
		month("Dec", "Dic", "745213.73", "693450.08", "51763.65"),
	}
}

func category(en, es, budgeted, actual, variance string, icon core.Icon) core.ExpenseCategory {
	return core.ExpenseCategory{
		Name:     i18n.Text{EN: en, ES: es},
		Budgeted: amt(budgeted),
		Actual:   amt(actual),
		Variance: amt(variance),
		Icon:     icon,
	}
}

func categories2023() []core.ExpenseCategory {
	return []core.ExpenseCategory{
		category("Payroll", "Nómina", "4859451.21", "4172231.74", "687219.47", core.IconUsers),
		category("Insurance", "Seguro", "1148853.82", "1090047.12", "58806.70", core.IconShield),
		category("Office Rent", "Renta Oficina", "584640.00", "493120.90", "91519.10", core.IconBuilding),
		category("Water", "Agua", "504000", "468672.48", "35327.52", core.IconDroplet),
		category("Electricity", "Electricidad", "340200", "368918", "-28718", core.IconZap),
		category("Other Expenses", "Otros Gastos", "100000", "345845.19", "-245845.19", core.IconBriefcase),
		category("Garden", "Jardinería", "269200", "288425.39", "-19225.39", core.IconBuilding),
		category("Staff Meals", "Alimentos Personal", "216000", "232690.05", "-16690.05", core.IconUsers),
		category("Elevator", "Elevador", "180000", "207945.02", "-27945.02", core.IconBuilding),
		category("Bank Fees", "Comisiones Bancarias", "180000", "116459.89", "63540.11", core.IconDollarSign),
		category("Fumigation", "Fumigación", "150336", "150336", "0", core.IconShield),
		category("Maintenance", "Mantenimiento", "29900", "81193.97", "-51293.97", core.IconWrench),
		category("Garbage", "Basura", "68600", "67369", "1231", core.IconBuilding),
		category("Uniforms", "Uniformes", "63880", "59073.75", "4806.25", core.IconUsers),
		category("Telephone", "Teléfono", "52628", "34614", "18014", core.IconBuilding),
		category("Office Supplies", "Papelería", "35000", "38925.30", "-3925.30", core.IconBriefcase),
		category("Cleaning Supplies", "Limpieza", "35000", "36390.34", "-1390.34", core.IconBuilding),
		category("Year End", "Fin de Año", "17000", "25975.40", "-8975.40", core.IconBriefcase),
		category("Printing", "Impresión", "24000", "20660.99", "3339.01", core.IconBriefcase),
		category("Tech Support", "Soporte CONTPAQ", "23850.75", "19243.82", "4606.93", core.IconWrench),
		category("Tools", "Herramientas", "15000", "9333", "5667", core.IconWrench),
		category("Training", "Capacitación", "12000", "0", "12000", core.IconUsers),
		category("Licenses", "Licencias", "11025", "7500", "3525", core.IconShield),
		category("Lobby Doors", "Puertas Lobby", "8000", "6960", "1040", core.IconBuilding),
		category("Hurricane Prep", "Huracanes", "5000", "6212.51", "-1212.51", core.IconAlertTriangle),
		category("Notary", "Notariales", "6000", "0", "6000", core.IconBriefcase),
		category("Fountains", "Fuentes", "3000", "0", "3000", core.IconDroplet),
	}
}

func unit(id, hoa, extra, water string) core.UnitFees {
	return core.UnitFees{
		Unit:              id,
		HOAFees:           amt(hoa),
		ExtraordinaryFees: amt(extra),
		WaterFees:         amt(water),
	}
}

func fees2023() []core.UnitFees {
	return []core.UnitFees{
		unit("1101", "2100", "0", "64.43"),
		unit("1105", "19960", "1050", "442.81"),
		unit("1113", "5274", "0", "50.11"),
		unit("1405", "1605", "0", "0"),
		unit("1117", "0", "0", "7.38"),
		unit("1201", "0", "0", "6.98"),
		unit("1309", "0", "0", "101.45"),
		unit("1400", "0", "0", "25.78"),
	}
}
