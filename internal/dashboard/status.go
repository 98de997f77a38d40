package dashboard

import (
	"github.com/shopspring/decimal"

	"hoadash/internal/i18n"
)

// BudgetStatus classifies a category's variance.
type BudgetStatus string

const (
	StatusOver     BudgetStatus = "over"
	StatusOnBudget BudgetStatus = "on_budget"
	StatusUnder    BudgetStatus = "under"
)

// BudgetStatusOf maps a variance (budgeted minus actual) to its status.
func BudgetStatusOf(variance decimal.Decimal) BudgetStatus {
	switch variance.Sign() {
	case -1:
		return StatusOver
	case 0:
		return StatusOnBudget
	default:
		return StatusUnder
	}
}

func (s BudgetStatus) Label(l i18n.Labels) string {
	switch s {
	case StatusOver:
		return l.Over
	case StatusOnBudget:
		return l.OnBudget
	default:
		return l.Under
	}
}

var hundred = decimal.NewFromInt(100)

// VariancePercent is variance as a percentage of budgeted, or zero when
// nothing was budgeted.
func VariancePercent(variance, budgeted decimal.Decimal) decimal.Decimal {
	if !budgeted.IsPositive() {
		return decimal.Zero
	}
	return variance.Div(budgeted).Mul(hundred)
}

// Priority is the collection urgency of a unit.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var (
	highPriorityUSD   = decimal.NewFromInt(10000)
	mediumPriorityUSD = decimal.NewFromInt(1000)
)

// PriorityOf classifies a unit by the total it owes in USD.
func PriorityOf(totalUSD decimal.Decimal) Priority {
	switch {
	case totalUSD.GreaterThan(highPriorityUSD):
		return PriorityHigh
	case totalUSD.GreaterThan(mediumPriorityUSD):
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func (p Priority) Label(l i18n.Labels) string {
	switch p {
	case PriorityHigh:
		return l.High
	case PriorityMedium:
		return l.Medium
	default:
		return l.Low
	}
}
