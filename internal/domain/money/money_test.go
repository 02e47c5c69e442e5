//go:build unit

package money_test

import (
	"testing"

	"cinema-ticketing/internal/domain/money"
	"cinema-ticketing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnitPrice(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  int64
		errIs error
	}{
		{name: "integer", in: "12", want: 120000},
		{name: "one decimal", in: "12.5", want: 125000},
		{name: "four decimals", in: "0.0001", want: 1},
		{name: "surrounding spaces", in: " 7.25 ", want: 72500},
		{name: "zero", in: "0", errIs: money.ErrInvalidPrice},
		{name: "negative", in: "-1", errIs: money.ErrInvalidPrice},
		{name: "empty", in: "", errIs: money.ErrInvalidPrice},
		{name: "dangling dot", in: "3.", errIs: money.ErrInvalidPrice},
		{name: "letters", in: "1e3", errIs: money.ErrInvalidPrice},
		{name: "too precise", in: "1.00001", errIs: money.ErrPriceTooPrecise},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := money.ParseUnitPrice(tc.in)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.TenThousandths())
		})
	}
}

func TestPriceErrorsCarryStack(t *testing.T) {
	for _, err := range []error{money.ErrInvalidPrice, money.ErrPriceTooPrecise} {
		assert.Greater(t, len(errs.ExtractStackLines(err, 0)), 1, err.Error())
	}
}

func TestUnitPriceTimes(t *testing.T) {
	cases := []struct {
		name  string
		price string
		n     int
		want  string
	}{
		{name: "exact cents", price: "10.25", n: 3, want: "30.75"},
		{name: "half rounds up", price: "0.125", n: 1, want: "0.13"},
		{name: "below half rounds down", price: "0.1249", n: 1, want: "0.12"},
		{name: "accumulated fraction", price: "10.005", n: 3, want: "30.02"},
		{name: "accumulated half", price: "3.3333", n: 3, want: "10.00"},
		{name: "no seats", price: "9.99", n: 0, want: "0.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := money.ParseUnitPrice(tc.price)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Times(tc.n).String())
		})
	}
}

func TestUnitPriceString(t *testing.T) {
	p, err := money.ParseUnitPrice("12.5")
	require.NoError(t, err)
	assert.Equal(t, "12.50", p.String())

	p, err = money.ParseUnitPrice("0.1234")
	require.NoError(t, err)
	assert.Equal(t, "0.1234", p.String())
}

func TestAmountString(t *testing.T) {
	assert.Equal(t, "0.05", money.Amount(5).String())
	assert.Equal(t, "123.40", money.Amount(12340).String())
	assert.Equal(t, "-1.01", money.Amount(-101).String())
}
