package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount   string
		currency Currency
		showSign bool
		want     string
	}{
		{"8212347", MXN, false, "$8,212,347 MXN"},
		{"-245845.19", MXN, true, "$245,845 MXN"},
		{"-769200", MXN, false, "$769,200 MXN"},
		{"63540.11", MXN, true, "+$63,540 MXN"},
		{"63540.11", MXN, false, "$63,540 MXN"},
		{"21452.81", USD, true, "+$21,453 USD"},
		{"0.5", USD, false, "$1 USD"},
		{"-0.5", USD, false, "$1 USD"},
		{"0", MXN, true, "$0 MXN"},
		{"999.49", USD, false, "$999 USD"},
	}
	for _, tc := range cases {
		got := FormatCurrency(d(tc.amount), tc.currency, tc.showSign)
		assert.Equal(t, tc.want, got, tc.amount)
	}
}

func TestConversionRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "64.43", "21452.81", "105000", "0.01", "-3153.55"} {
		usd := d(s)
		assert.True(t, ToUSD(ToMXN(usd)).Equal(usd), s)
	}
}

func TestFromCurrency(t *testing.T) {
	assert.True(t, FromMXN(d("17.5"), USD).Equal(d("1")))
	assert.True(t, FromMXN(d("17.5"), MXN).Equal(d("17.5")))
	assert.True(t, FromUSD(d("2"), MXN).Equal(d("35")))
	assert.True(t, FromUSD(d("2"), USD).Equal(d("2")))
	assert.True(t, ExchangeRate().Equal(d("17.5")))
}

func TestParseCurrency(t *testing.T) {
	c, err := ParseCurrency("usd")
	require.NoError(t, err)
	assert.Equal(t, USD, c)

	c, err = ParseCurrency(" MXN ")
	require.NoError(t, err)
	assert.Equal(t, MXN, c)

	_, err = ParseCurrency("EUR")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"1", "1", true},
		{"1234.56", "1234.56", true},
		{"1234,56", "1234.56", true},
		{" -28718 ", "-28718", true},
		{"", "", false},
		{"abc", "", false},
		{"1.2.3", "", false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if !tc.ok {
			assert.ErrorIs(t, err, ErrInvalidAmount, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.True(t, got.Equal(d(tc.out)), "%q -> %s", tc.in, got)
	}
}
