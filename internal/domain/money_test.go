package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney_RoundsHalfUp(t *testing.T) {
	m, err := NewMoney(100.005, CurrencyUSD)

	require.NoError(t, err)
	assert.Equal(t, "100.01", m.Amount().StringFixed(2))
}

func TestNewMoney_ZeroDecimalCurrency(t *testing.T) {
	m, err := NewMoney(1500.5, CurrencyJPY)

	require.NoError(t, err)
	assert.Equal(t, "1501", m.Amount().String())
	assert.Equal(t, "¥1501", m.String())
}

func TestNewMoney_InvalidAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
	}{
		{"negative", -1},
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
		{"over maximum", 1_000_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMoney(tt.amount, CurrencyUSD)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}

func TestNewMoney_InvalidCurrency(t *testing.T) {
	_, err := NewMoney(10, "XXX")
	assert.ErrorIs(t, err, ErrInvalidCurrency)
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("249.90", CurrencyEUR)

	require.NoError(t, err)
	assert.Equal(t, "€249.90", m.String())

	_, err = NewMoneyFromString("not-a-number", CurrencyEUR)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestMoney_AddSubtractRoundTrip(t *testing.T) {
	m1, err := NewMoney(100.50, CurrencyUSD)
	require.NoError(t, err)
	m2, err := NewMoney(49.25, CurrencyUSD)
	require.NoError(t, err)

	sum, err := m1.Add(m2)
	require.NoError(t, err)

	back, err := sum.Subtract(m2)
	require.NoError(t, err)

	eq, err := back.Equals(m1)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestMoney_Add_CurrencyMismatch(t *testing.T) {
	usd, err := NewMoney(100, CurrencyUSD)
	require.NoError(t, err)
	eur, err := NewMoney(50, CurrencyEUR)
	require.NoError(t, err)

	_, err = usd.Add(eur)
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestMoney_Add_OverflowsMaximum(t *testing.T) {
	m1, err := NewMoney(999_999_999, CurrencyUSD)
	require.NoError(t, err)
	m2, err := NewMoney(1, CurrencyUSD)
	require.NoError(t, err)

	_, err = m1.Add(m2)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestMoney_Subtract_NegativeResult(t *testing.T) {
	m1, err := NewMoney(10, CurrencyUSD)
	require.NoError(t, err)
	m2, err := NewMoney(20, CurrencyUSD)
	require.NoError(t, err)

	_, err = m1.Subtract(m2)
	assert.ErrorIs(t, err, ErrNegativeResult)
}

func TestMoney_Multiply(t *testing.T) {
	m, err := NewMoney(19.99, CurrencyUSD)
	require.NoError(t, err)

	res, err := m.Multiply(3)
	require.NoError(t, err)
	assert.Equal(t, "59.97", res.Amount().StringFixed(2))

	_, err = m.Multiply(-1)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestMoney_Divide(t *testing.T) {
	m, err := NewMoney(100, CurrencyUSD)
	require.NoError(t, err)

	res, err := m.Divide(3)
	require.NoError(t, err)
	assert.Equal(t, "33.33", res.Amount().StringFixed(2))

	_, err = m.Divide(0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestMoney_Comparisons(t *testing.T) {
	small, err := NewMoney(10, CurrencyUSD)
	require.NoError(t, err)
	big, err := NewMoney(20, CurrencyUSD)
	require.NoError(t, err)

	gt, err := big.GreaterThan(small)
	require.NoError(t, err)
	assert.True(t, gt)

	lt, err := small.LessThan(big)
	require.NoError(t, err)
	assert.True(t, lt)

	eq, err := small.Equals(big)
	require.NoError(t, err)
	assert.False(t, eq)

	eur, err := NewMoney(10, CurrencyEUR)
	require.NoError(t, err)
	_, err = small.GreaterThan(eur)
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestMoney_String(t *testing.T) {
	m, err := NewMoney(100.005, CurrencyUSD)
	require.NoError(t, err)
	assert.Equal(t, "$100.01", m.String())

	m, err = NewMoney(75, CurrencyGBP)
	require.NoError(t, err)
	assert.Equal(t, "£75.00", m.String())
}
