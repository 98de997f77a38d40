// Package core provides the HOA financial data model and money handling.
//
// This file contains the currency type, the fixed MXN/USD exchange rate,
// conversions between the two and the display format used across the
// dashboard and the CLI report.
package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Currency is a display currency of the dashboard.
type Currency string

const (
	MXN Currency = "MXN"
	USD Currency = "USD"
)

var (
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrInvalidAmount   = errors.New("invalid amount")
)

// exchangeRate is the 2023 average, in MXN per USD.
var exchangeRate = decimal.RequireFromString("17.5")

// ExchangeRate returns the single MXN-per-USD rate used for every conversion.
func ExchangeRate() decimal.Decimal {
	return exchangeRate
}

// ParseCurrency accepts "MXN"/"USD" case-insensitively.
func ParseCurrency(s string) (Currency, error) {
	switch Currency(strings.ToUpper(strings.TrimSpace(s))) {
	case MXN:
		return MXN, nil
	case USD:
		return USD, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, s)
}

// ToUSD converts an MXN amount to USD. No rounding is applied.
func ToUSD(mxn decimal.Decimal) decimal.Decimal {
	return mxn.Div(exchangeRate)
}

// ToMXN converts a USD amount to MXN.
func ToMXN(usd decimal.Decimal) decimal.Decimal {
	return usd.Mul(exchangeRate)
}

// FromMXN expresses an MXN amount in the target currency.
func FromMXN(mxn decimal.Decimal, target Currency) decimal.Decimal {
	if target == USD {
		return ToUSD(mxn)
	}
	return mxn
}

// FromUSD expresses a USD amount in the target currency.
func FromUSD(usd decimal.Decimal, target Currency) decimal.Decimal {
	if target == USD {
		return usd
	}
	return ToMXN(usd)
}

// FormatCurrency renders an amount that is already in the units of c.
//
// The magnitude is rounded half away from zero to whole units and grouped
// by thousands. Negative amounts carry no minus sign; a leading "+" is
// added only when showSign is set and the amount is positive.
//
// Examples:
//
//	FormatCurrency(1234567.5, MXN, false) -> "$1,234,568 MXN"
//	FormatCurrency(-245845.19, MXN, true) -> "$245,845 MXN"
//	FormatCurrency(63540.11, MXN, true)   -> "+$63,540 MXN"
func FormatCurrency(amount decimal.Decimal, c Currency, showSign bool) string {
	sign := ""
	if showSign && amount.IsPositive() {
		sign = "+"
	}
	whole := amount.Abs().Round(0).IntPart()
	return fmt.Sprintf("%s$%s %s", sign, humanize.Comma(whole), c)
}

// ParseAmount parses a decimal string such as "1234.56" or "1234,56".
// Thousands separators are not accepted.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}
