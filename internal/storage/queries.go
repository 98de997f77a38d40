package storage

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// FiscalYear mirrors a fiscal_years row. Amount columns hold decimal strings.
type FiscalYear struct {
	Year                  int64
	TotalIncome           string
	TotalExpenses         string
	NetResult             string
	InterestIncome        string
	OtherIncome           string
	TotalAssets           string
	TotalLiabilities      string
	Equity                string
	CashAndBank           string
	AccountsReceivable    string
	PrepaidExpenses       string
	FixedAssets           string
	AccountsPayable       string
	LongTermDebt          string
	RetainedEarnings      string
	CurrentYearResult     string
	USDBankBalance        string
	USDAccountsReceivable string
	USDInitialCapital     string
	USDRemainingBalance   string
}

type MonthlyExpenseRow struct {
	Year     int64
	Position int64
	LabelEN  string
	LabelES  string
	Budget   string
	Actual   string
	Variance string
}

type ExpenseCategoryRow struct {
	Year     int64
	Position int64
	NameEN   string
	NameES   string
	Budgeted string
	Actual   string
	Variance string
	Icon     string
}

type OutstandingFeeRow struct {
	Year              int64
	Position          int64
	Unit              string
	HOAFees           string
	ExtraordinaryFees string
	WaterFees         string
}

const listYears = `SELECT year FROM fiscal_years ORDER BY year`

func (q *Queries) ListYears(ctx context.Context) ([]int64, error) {
	rows, err := q.db.QueryContext(ctx, listYears)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []int64
	for rows.Next() {
		var y int64
		if err := rows.Scan(&y); err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

const getFiscalYear = `SELECT year, total_income, total_expenses, net_result, interest_income, other_income,
    total_assets, total_liabilities, equity, cash_and_bank, accounts_receivable, prepaid_expenses,
    fixed_assets, accounts_payable, long_term_debt, retained_earnings, current_year_result,
    usd_bank_balance, usd_accounts_receivable, usd_initial_capital, usd_remaining_balance
FROM fiscal_years WHERE year = ?`

func (q *Queries) GetFiscalYear(ctx context.Context, year int64) (FiscalYear, error) {
	var fy FiscalYear
	err := q.db.QueryRowContext(ctx, getFiscalYear, year).Scan(
		&fy.Year, &fy.TotalIncome, &fy.TotalExpenses, &fy.NetResult, &fy.InterestIncome, &fy.OtherIncome,
		&fy.TotalAssets, &fy.TotalLiabilities, &fy.Equity, &fy.CashAndBank, &fy.AccountsReceivable, &fy.PrepaidExpenses,
		&fy.FixedAssets, &fy.AccountsPayable, &fy.LongTermDebt, &fy.RetainedEarnings, &fy.CurrentYearResult,
		&fy.USDBankBalance, &fy.USDAccountsReceivable, &fy.USDInitialCapital, &fy.USDRemainingBalance,
	)
	return fy, err
}

const upsertFiscalYear = `INSERT INTO fiscal_years (
    year, total_income, total_expenses, net_result, interest_income, other_income,
    total_assets, total_liabilities, equity, cash_and_bank, accounts_receivable, prepaid_expenses,
    fixed_assets, accounts_payable, long_term_debt, retained_earnings, current_year_result,
    usd_bank_balance, usd_accounts_receivable, usd_initial_capital, usd_remaining_balance
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(year) DO UPDATE SET
    total_income = excluded.total_income,
    total_expenses = excluded.total_expenses,
    net_result = excluded.net_result,
    interest_income = excluded.interest_income,
    other_income = excluded.other_income,
    total_assets = excluded.total_assets,
    total_liabilities = excluded.total_liabilities,
    equity = excluded.equity,
    cash_and_bank = excluded.cash_and_bank,
    accounts_receivable = excluded.accounts_receivable,
    prepaid_expenses = excluded.prepaid_expenses,
    fixed_assets = excluded.fixed_assets,
    accounts_payable = excluded.accounts_payable,
    long_term_debt = excluded.long_term_debt,
    retained_earnings = excluded.retained_earnings,
    current_year_result = excluded.current_year_result,
    usd_bank_balance = excluded.usd_bank_balance,
    usd_accounts_receivable = excluded.usd_accounts_receivable,
    usd_initial_capital = excluded.usd_initial_capital,
    usd_remaining_balance = excluded.usd_remaining_balance,
    updated_at = CURRENT_TIMESTAMP`

func (q *Queries) UpsertFiscalYear(ctx context.Context, fy FiscalYear) error {
	_, err := q.db.ExecContext(ctx, upsertFiscalYear,
		fy.Year, fy.TotalIncome, fy.TotalExpenses, fy.NetResult, fy.InterestIncome, fy.OtherIncome,
		fy.TotalAssets, fy.TotalLiabilities, fy.Equity, fy.CashAndBank, fy.AccountsReceivable, fy.PrepaidExpenses,
		fy.FixedAssets, fy.AccountsPayable, fy.LongTermDebt, fy.RetainedEarnings, fy.CurrentYearResult,
		fy.USDBankBalance, fy.USDAccountsReceivable, fy.USDInitialCapital, fy.USDRemainingBalance,
	)
	return err
}

// DeleteYearDetails removes the month, category and fee rows of a year.
func (q *Queries) DeleteYearDetails(ctx context.Context, year int64) error {
	for _, stmt := range []string{
		`DELETE FROM monthly_expenses WHERE year = ?`,
		`DELETE FROM expense_categories WHERE year = ?`,
		`DELETE FROM outstanding_fees WHERE year = ?`,
	} {
		if _, err := q.db.ExecContext(ctx, stmt, year); err != nil {
			return err
		}
	}
	return nil
}

const insertMonthlyExpense = `INSERT INTO monthly_expenses (year, position, label_en, label_es, budget, actual, variance)
VALUES (?, ?, ?, ?, ?, ?, ?)`

func (q *Queries) InsertMonthlyExpense(ctx context.Context, r MonthlyExpenseRow) error {
	_, err := q.db.ExecContext(ctx, insertMonthlyExpense, r.Year, r.Position, r.LabelEN, r.LabelES, r.Budget, r.Actual, r.Variance)
	return err
}

const listMonthlyExpenses = `SELECT year, position, label_en, label_es, budget, actual, variance
FROM monthly_expenses WHERE year = ? ORDER BY position`

func (q *Queries) ListMonthlyExpenses(ctx context.Context, year int64) ([]MonthlyExpenseRow, error) {
	rows, err := q.db.QueryContext(ctx, listMonthlyExpenses, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MonthlyExpenseRow
	for rows.Next() {
		var r MonthlyExpenseRow
		if err := rows.Scan(&r.Year, &r.Position, &r.LabelEN, &r.LabelES, &r.Budget, &r.Actual, &r.Variance); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const insertExpenseCategory = `INSERT INTO expense_categories (year, position, name_en, name_es, budgeted, actual, variance, icon)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

func (q *Queries) InsertExpenseCategory(ctx context.Context, r ExpenseCategoryRow) error {
	_, err := q.db.ExecContext(ctx, insertExpenseCategory, r.Year, r.Position, r.NameEN, r.NameES, r.Budgeted, r.Actual, r.Variance, r.Icon)
	return err
}

const listExpenseCategories = `SELECT year, position, name_en, name_es, budgeted, actual, variance, icon
FROM expense_categories WHERE year = ? ORDER BY position`

func (q *Queries) ListExpenseCategories(ctx context.Context, year int64) ([]ExpenseCategoryRow, error) {
	rows, err := q.db.QueryContext(ctx, listExpenseCategories, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ExpenseCategoryRow
	for rows.Next() {
		var r ExpenseCategoryRow
		if err := rows.Scan(&r.Year, &r.Position, &r.NameEN, &r.NameES, &r.Budgeted, &r.Actual, &r.Variance, &r.Icon); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const insertOutstandingFee = `INSERT INTO outstanding_fees (year, position, unit, hoa_fees, extraordinary_fees, water_fees)
VALUES (?, ?, ?, ?, ?, ?)`

func (q *Queries) InsertOutstandingFee(ctx context.Context, r OutstandingFeeRow) error {
	_, err := q.db.ExecContext(ctx, insertOutstandingFee, r.Year, r.Position, r.Unit, r.HOAFees, r.ExtraordinaryFees, r.WaterFees)
	return err
}

const listOutstandingFees = `SELECT year, position, unit, hoa_fees, extraordinary_fees, water_fees
FROM outstanding_fees WHERE year = ? ORDER BY position`

func (q *Queries) ListOutstandingFees(ctx context.Context, year int64) ([]OutstandingFeeRow, error) {
	rows, err := q.db.QueryContext(ctx, listOutstandingFees, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OutstandingFeeRow
	for rows.Next() {
		var r OutstandingFeeRow
		if err := rows.Scan(&r.Year, &r.Position, &r.Unit, &r.HOAFees, &r.ExtraordinaryFees, &r.WaterFees); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
