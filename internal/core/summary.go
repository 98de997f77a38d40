package core

import "github.com/shopspring/decimal"

// FeeTotals aggregates outstanding fees across units, in USD.
type FeeTotals struct {
	HOAFees           decimal.Decimal
	ExtraordinaryFees decimal.Decimal
	WaterFees         decimal.Decimal
	Total             decimal.Decimal
}

// TotalFees sums each fee column over all units.
func TotalFees(units []UnitFees) FeeTotals {
	var t FeeTotals
	for _, u := range units {
		t.HOAFees = t.HOAFees.Add(u.HOAFees)
		t.ExtraordinaryFees = t.ExtraordinaryFees.Add(u.ExtraordinaryFees)
		t.WaterFees = t.WaterFees.Add(u.WaterFees)
	}
	t.Total = t.HOAFees.Add(t.ExtraordinaryFees).Add(t.WaterFees)
	return t
}

// TotalBudgeted is the unfiltered sum of category budgets.
func TotalBudgeted(cats []ExpenseCategory) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range cats {
		sum = sum.Add(c.Budgeted)
	}
	return sum
}

// TotalActual is the unfiltered sum of category actuals.
func TotalActual(cats []ExpenseCategory) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range cats {
		sum = sum.Add(c.Actual)
	}
	return sum
}
