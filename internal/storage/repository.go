// Package storage is the SQLite snapshot backend for financial year records.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"hoadash/internal/core"
	"hoadash/internal/dataset"
	"hoadash/internal/i18n"
	applog "hoadash/internal/log"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

var (
	_ dataset.Reader = (*SQLiteRepository)(nil)
	_ dataset.Writer = (*SQLiteRepository)(nil)
)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping reports whether the database is reachable.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Years implements dataset.Reader.
func (r *SQLiteRepository) Years(ctx context.Context) ([]int, error) {
	rows, err := r.queries.ListYears(ctx)
	if err != nil {
		return nil, fmt.Errorf("list years: %w", err)
	}
	years := make([]int, len(rows))
	for i, y := range rows {
		years[i] = int(y)
	}
	return years, nil
}

// ReadYear implements dataset.Reader.
func (r *SQLiteRepository) ReadYear(ctx context.Context, year int) (core.FinancialYearRecord, error) {
	fy, err := r.queries.GetFiscalYear(ctx, int64(year))
	if errors.Is(err, sql.ErrNoRows) {
		return core.FinancialYearRecord{}, fmt.Errorf("read year %d: %w", year, dataset.ErrYearNotFound)
	}
	if err != nil {
		return core.FinancialYearRecord{}, fmt.Errorf("get fiscal year %d: %w", year, err)
	}

	months, err := r.queries.ListMonthlyExpenses(ctx, int64(year))
	if err != nil {
		return core.FinancialYearRecord{}, fmt.Errorf("list monthly expenses: %w", err)
	}
	cats, err := r.queries.ListExpenseCategories(ctx, int64(year))
	if err != nil {
		return core.FinancialYearRecord{}, fmt.Errorf("list expense categories: %w", err)
	}
	fees, err := r.queries.ListOutstandingFees(ctx, int64(year))
	if err != nil {
		return core.FinancialYearRecord{}, fmt.Errorf("list outstanding fees: %w", err)
	}

	rec, err := toRecord(fy, months, cats, fees)
	if err != nil {
		return core.FinancialYearRecord{}, fmt.Errorf("decode year %d: %w", year, err)
	}
	return rec, nil
}

// SaveYear implements dataset.Writer. The year is replaced in a single transaction.
func (r *SQLiteRepository) SaveYear(ctx context.Context, rec core.FinancialYearRecord) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("validate year %d: %w", rec.Year, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := r.queries.WithTx(tx)
	year := int64(rec.Year)

	if err := q.UpsertFiscalYear(ctx, fromRecord(rec)); err != nil {
		return fmt.Errorf("upsert fiscal year: %w", err)
	}
	if err := q.DeleteYearDetails(ctx, year); err != nil {
		return fmt.Errorf("clear year details: %w", err)
	}

	for i, m := range rec.MonthlyExpenses {
		err := q.InsertMonthlyExpense(ctx, MonthlyExpenseRow{
			Year:     year,
			Position: int64(i),
			LabelEN:  m.Month.EN,
			LabelES:  m.Month.ES,
			Budget:   m.Budget.String(),
			Actual:   m.Actual.String(),
			Variance: m.Variance.String(),
		})
		if err != nil {
			return fmt.Errorf("insert month %s: %w", m.Month.EN, err)
		}
	}

	for i, c := range rec.ExpenseCategories {
		err := q.InsertExpenseCategory(ctx, ExpenseCategoryRow{
			Year:     year,
			Position: int64(i),
			NameEN:   c.Name.EN,
			NameES:   c.Name.ES,
			Budgeted: c.Budgeted.String(),
			Actual:   c.Actual.String(),
			Variance: c.Variance.String(),
			Icon:     string(c.Icon),
		})
		if err != nil {
			return fmt.Errorf("insert category %s: %w", c.Name.EN, err)
		}
	}

	for i, u := range rec.OutstandingFees {
		err := q.InsertOutstandingFee(ctx, OutstandingFeeRow{
			Year:              year,
			Position:          int64(i),
			Unit:              u.Unit,
			HOAFees:           u.HOAFees.String(),
			ExtraordinaryFees: u.ExtraordinaryFees.String(),
			WaterFees:         u.WaterFees.String(),
		})
		if err != nil {
			return fmt.Errorf("insert unit %s: %w", u.Unit, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit year %d: %w", rec.Year, err)
	}

	slog.InfoContext(ctx, "Fiscal year saved to SQLite",
		applog.FieldComponent, applog.ComponentStorage,
		applog.FieldOperation, applog.OpSave,
		applog.FieldYear, rec.Year,
		"months", len(rec.MonthlyExpenses),
		"categories", len(rec.ExpenseCategories),
		"units", len(rec.OutstandingFees))
	return nil
}

func fromRecord(rec core.FinancialYearRecord) FiscalYear {
	s, b, c := rec.Summary, rec.BalanceSheet, rec.CashFlowUSD
	return FiscalYear{
		Year:                  int64(rec.Year),
		TotalIncome:           s.TotalIncome.String(),
		TotalExpenses:         s.TotalExpenses.String(),
		NetResult:             s.NetResult.String(),
		InterestIncome:        s.InterestIncome.String(),
		OtherIncome:           s.OtherIncome.String(),
		TotalAssets:           b.TotalAssets.String(),
		TotalLiabilities:      b.TotalLiabilities.String(),
		Equity:                b.Equity.String(),
		CashAndBank:           b.CashAndBank.String(),
		AccountsReceivable:    b.AccountsReceivable.String(),
		PrepaidExpenses:       b.PrepaidExpenses.String(),
		FixedAssets:           b.FixedAssets.String(),
		AccountsPayable:       b.AccountsPayable.String(),
		LongTermDebt:          b.LongTermDebt.String(),
		RetainedEarnings:      b.RetainedEarnings.String(),
		CurrentYearResult:     b.CurrentYearResult.String(),
		USDBankBalance:        c.BankBalance.String(),
		USDAccountsReceivable: c.AccountsReceivable.String(),
		USDInitialCapital:     c.InitialCapital.String(),
		USDRemainingBalance:   c.RemainingBalance.String(),
	}
}

// decoder parses decimal columns, keeping the first failure.
type decoder struct {
	err error
}

func (d *decoder) amount(column, v string) decimal.Decimal {
	if d.err != nil {
		return decimal.Zero
	}
	out, err := core.ParseAmount(v)
	if err != nil {
		d.err = fmt.Errorf("column %s: %w", column, err)
	}
	return out
}

func toRecord(fy FiscalYear, months []MonthlyExpenseRow, cats []ExpenseCategoryRow, fees []OutstandingFeeRow) (core.FinancialYearRecord, error) {
	var d decoder
	rec := core.FinancialYearRecord{
		Year: int(fy.Year),
		Summary: core.Summary{
			TotalIncome:    d.amount("total_income", fy.TotalIncome),
			TotalExpenses:  d.amount("total_expenses", fy.TotalExpenses),
			NetResult:      d.amount("net_result", fy.NetResult),
			InterestIncome: d.amount("interest_income", fy.InterestIncome),
			OtherIncome:    d.amount("other_income", fy.OtherIncome),
		},
		BalanceSheet: core.BalanceSheet{
			TotalAssets:        d.amount("total_assets", fy.TotalAssets),
			TotalLiabilities:   d.amount("total_liabilities", fy.TotalLiabilities),
			Equity:             d.amount("equity", fy.Equity),
			CashAndBank:        d.amount("cash_and_bank", fy.CashAndBank),
			AccountsReceivable: d.amount("accounts_receivable", fy.AccountsReceivable),
			PrepaidExpenses:    d.amount("prepaid_expenses", fy.PrepaidExpenses),
			FixedAssets:        d.amount("fixed_assets", fy.FixedAssets),
			AccountsPayable:    d.amount("accounts_payable", fy.AccountsPayable),
			LongTermDebt:       d.amount("long_term_debt", fy.LongTermDebt),
			RetainedEarnings:   d.amount("retained_earnings", fy.RetainedEarnings),
			CurrentYearResult:  d.amount("current_year_result", fy.CurrentYearResult),
		},
		CashFlowUSD: core.CashFlowUSD{
			BankBalance:        d.amount("usd_bank_balance", fy.USDBankBalance),
			AccountsReceivable: d.amount("usd_accounts_receivable", fy.USDAccountsReceivable),
			InitialCapital:     d.amount("usd_initial_capital", fy.USDInitialCapital),
			RemainingBalance:   d.amount("usd_remaining_balance", fy.USDRemainingBalance),
		},
	}

	for _, m := range months {
		rec.MonthlyExpenses = append(rec.MonthlyExpenses, core.MonthlyExpense{
			Month:    i18n.Text{EN: m.LabelEN, ES: m.LabelES},
			Budget:   d.amount("budget", m.Budget),
			Actual:   d.amount("actual", m.Actual),
			Variance: d.amount("variance", m.Variance),
		})
	}
	for _, c := range cats {
		rec.ExpenseCategories = append(rec.ExpenseCategories, core.ExpenseCategory{
			Name:     i18n.Text{EN: c.NameEN, ES: c.NameES},
			Budgeted: d.amount("budgeted", c.Budgeted),
			Actual:   d.amount("actual", c.Actual),
			Variance: d.amount("variance", c.Variance),
			Icon:     core.Icon(c.Icon),
		})
	}
	for _, u := range fees {
		rec.OutstandingFees = append(rec.OutstandingFees, core.UnitFees{
			Unit:              u.Unit,
			HOAFees:           d.amount("hoa_fees", u.HOAFees),
			ExtraordinaryFees: d.amount("extraordinary_fees", u.ExtraordinaryFees),
			WaterFees:         d.amount("water_fees", u.WaterFees),
		})
	}

	if d.err != nil {
		return core.FinancialYearRecord{}, d.err
	}
	return rec, nil
}
