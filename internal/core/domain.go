package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"hoadash/internal/i18n"
)

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
	SeverityInfo   Severity = "info"
)

const (
	IconUsers         Icon = "Users"
	IconShield        Icon = "Shield"
	IconBuilding      Icon = "Building"
	IconDroplet       Icon = "Droplet"
	IconZap           Icon = "Zap"
	IconBriefcase     Icon = "Briefcase"
	IconDollarSign    Icon = "DollarSign"
	IconWrench        Icon = "Wrench"
	IconAlertTriangle Icon = "AlertTriangle"
)

type (
	Severity string

	// Icon names a glyph shown next to an expense category.
	Icon string

	// Summary holds the income statement totals, in MXN.
	Summary struct {
		TotalIncome    decimal.Decimal
		TotalExpenses  decimal.Decimal
		NetResult      decimal.Decimal
		InterestIncome decimal.Decimal
		OtherIncome    decimal.Decimal
	}

	// BalanceSheet is the year-end financial position, in MXN.
	BalanceSheet struct {
		TotalAssets        decimal.Decimal
		TotalLiabilities   decimal.Decimal
		Equity             decimal.Decimal
		CashAndBank        decimal.Decimal
		AccountsReceivable decimal.Decimal
		PrepaidExpenses    decimal.Decimal
		FixedAssets        decimal.Decimal
		AccountsPayable    decimal.Decimal
		LongTermDebt       decimal.Decimal
		RetainedEarnings   decimal.Decimal
		CurrentYearResult  decimal.Decimal
	}

	// CashFlowUSD is the cash position reported in USD.
	CashFlowUSD struct {
		BankBalance        decimal.Decimal
		AccountsReceivable decimal.Decimal
		InitialCapital     decimal.Decimal
		RemainingBalance   decimal.Decimal
	}

	MonthlyExpense struct {
		Month    i18n.Text
		Budget   decimal.Decimal
		Actual   decimal.Decimal
		Variance decimal.Decimal
	}

	ExpenseCategory struct {
		Name     i18n.Text
		Budgeted decimal.Decimal
		Actual   decimal.Decimal
		Variance decimal.Decimal // positive = under budget
		Icon     Icon
	}

	// UnitFees are the outstanding fees of one unit, in USD.
	UnitFees struct {
		Unit              string
		HOAFees           decimal.Decimal
		ExtraordinaryFees decimal.Decimal
		WaterFees         decimal.Decimal
	}

	// Finding is a forensic observation resolved to a single language.
	// Amount is MXN unless IsUSD is set.
	Finding struct {
		Severity       Severity
		Category       string
		Title          string
		Description    string
		Recommendation string
		Amount         decimal.Decimal
		IsUSD          bool
	}

	FinancialYearRecord struct {
		Year              int
		Summary           Summary
		BalanceSheet      BalanceSheet
		CashFlowUSD       CashFlowUSD
		MonthlyExpenses   []MonthlyExpense
		ExpenseCategories []ExpenseCategory
		OutstandingFees   []UnitFees
	}
)

var (
	ErrInvalidYear      = errors.New("invalid year")
	ErrVarianceMismatch = errors.New("variance does not equal budgeted minus actual")
	ErrEmptyName        = errors.New("empty name")
	ErrEmptyUnit        = errors.New("empty unit")
	ErrInvalidSeverity  = errors.New("invalid severity")
)

// Severities lists severities from most to least urgent.
func Severities() []Severity {
	return []Severity{SeverityHigh, SeverityMedium, SeverityLow, SeverityInfo}
}

func (s Severity) Validate() error {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow, SeverityInfo:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidSeverity, string(s))
}

// Total is the sum of all fees owed by the unit.
func (u UnitFees) Total() decimal.Decimal {
	return u.HOAFees.Add(u.ExtraordinaryFees).Add(u.WaterFees)
}

func (u UnitFees) Validate() error {
	if strings.TrimSpace(u.Unit) == "" {
		return ErrEmptyUnit
	}
	if u.HOAFees.IsNegative() || u.ExtraordinaryFees.IsNegative() || u.WaterFees.IsNegative() {
		return fmt.Errorf("unit %s: %w", u.Unit, ErrInvalidAmount)
	}
	return nil
}

func (c ExpenseCategory) Validate() error {
	if strings.TrimSpace(c.Name.EN) == "" || strings.TrimSpace(c.Name.ES) == "" {
		return ErrEmptyName
	}
	if !c.Variance.Equal(c.Budgeted.Sub(c.Actual)) {
		return fmt.Errorf("category %s: %w", c.Name.EN, ErrVarianceMismatch)
	}
	return nil
}

func (m MonthlyExpense) Validate() error {
	if strings.TrimSpace(m.Month.EN) == "" || strings.TrimSpace(m.Month.ES) == "" {
		return ErrEmptyName
	}
	if !m.Variance.Equal(m.Budget.Sub(m.Actual)) {
		return fmt.Errorf("month %s: %w", m.Month.EN, ErrVarianceMismatch)
	}
	return nil
}

// Validate checks the record's structural invariants.
func (r FinancialYearRecord) Validate() error {
	if r.Year < 1900 || r.Year > 9999 {
		return fmt.Errorf("%w: %d", ErrInvalidYear, r.Year)
	}
	for _, m := range r.MonthlyExpenses {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	for _, c := range r.ExpenseCategories {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	for _, u := range r.OutstandingFees {
		if err := u.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy; callers may mutate the result freely.
func (r FinancialYearRecord) Clone() FinancialYearRecord {
	out := r
	out.MonthlyExpenses = append([]MonthlyExpense(nil), r.MonthlyExpenses...)
	out.ExpenseCategories = append([]ExpenseCategory(nil), r.ExpenseCategories...)
	out.OutstandingFees = append([]UnitFees(nil), r.OutstandingFees...)
	return out
}
