package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyMXN Currency = "MXN"
	CurrencyBRL Currency = "BRL"
	CurrencyCOP Currency = "COP"
	CurrencyJPY Currency = "JPY"
	CurrencyKRW Currency = "KRW"
	CurrencyCLP Currency = "CLP"
)

type currencySpec struct {
	symbol   string
	decimals int32
}

// JPY, KRW and CLP have no minor unit, amounts round to whole units.
var currencies = map[Currency]currencySpec{
	CurrencyUSD: {"$", 2},
	CurrencyEUR: {"€", 2},
	CurrencyGBP: {"£", 2},
	CurrencyMXN: {"$", 2},
	CurrencyBRL: {"R$", 2},
	CurrencyCOP: {"$", 2},
	CurrencyJPY: {"¥", 0},
	CurrencyKRW: {"₩", 0},
	CurrencyCLP: {"$", 0},
}

var maxMoneyAmount = decimal.NewFromInt(999_999_999)

// Money is an immutable currency amount. All arithmetic returns a new value
// and requires both operands to share the same currency.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

func NewMoney(amount float64, currency Currency) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, fmt.Errorf("%w: amount must be finite", ErrInvalidAmount)
	}
	return newMoney(decimal.NewFromFloat(amount), currency)
}

// NewMoneyFromString builds Money from a decimal string, as stored in the
// database.
func NewMoneyFromString(amount string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q is not a decimal", ErrInvalidAmount, amount)
	}
	return newMoney(d, currency)
}

func newMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	spec, ok := currencies[currency]
	if !ok {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount must not be negative", ErrInvalidAmount)
	}
	if amount.GreaterThan(maxMoneyAmount) {
		return Money{}, fmt.Errorf("%w: amount exceeds maximum of %s", ErrInvalidAmount, maxMoneyAmount)
	}
	// Round half-up to the currency's minor unit at construction time.
	return Money{amount: amount.Round(spec.decimals), currency: currency}, nil
}

func (m Money) Amount() decimal.Decimal { return m.amount }

func (m Money) Float64() float64 { return m.amount.InexactFloat64() }

func (m Money) Currency() Currency { return m.currency }

func (m Money) IsZero() bool { return m.amount.IsZero() }

func (m Money) IsPositive() bool { return m.amount.IsPositive() }

func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return newMoney(m.amount.Add(other.amount), m.currency)
}

func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	res := m.amount.Sub(other.amount)
	if res.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s - %s", ErrNegativeResult, m, other)
	}
	return newMoney(res, m.currency)
}

func (m Money) Multiply(factor float64) (Money, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return Money{}, fmt.Errorf("%w: factor must be finite", ErrInvalidAmount)
	}
	return newMoney(m.amount.Mul(decimal.NewFromFloat(factor)), m.currency)
}

func (m Money) Divide(divisor float64) (Money, error) {
	if divisor == 0 {
		return Money{}, ErrDivisionByZero
	}
	if math.IsNaN(divisor) || math.IsInf(divisor, 0) {
		return Money{}, fmt.Errorf("%w: divisor must be finite", ErrInvalidAmount)
	}
	return newMoney(m.amount.Div(decimal.NewFromFloat(divisor)), m.currency)
}

func (m Money) GreaterThan(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

func (m Money) LessThan(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.LessThan(other.amount), nil
}

func (m Money) Equals(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.Equal(other.amount), nil
}

func (m Money) String() string {
	spec := currencies[m.currency]
	return spec.symbol + m.amount.StringFixed(spec.decimals)
}

func (m Money) sameCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}
