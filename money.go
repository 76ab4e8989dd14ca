package fintrack

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money pairs an exact amount with a display currency. The book file keeps
// bare decimals; Money exists only to render them with the currency's
// locale rules (symbol, fraction digits, separators).
type Money struct {
	value *money.Money
}

// NewMoney creates a Money from an exact decimal amount and an ISO 4217
// currency code. An unknown code yields the zero Money, which renders as
// the bare decimal.
func NewMoney(amount decimal.Decimal, currency string) Money {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return Money{}
	}

	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	amount = amount.Mul(factor)
	return Money{money.New(amount.IntPart(), currency)}
}

// String returns the locale-formatted representation, e.g. "$8.00".
func (m Money) String() string {
	if m.value == nil {
		return ""
	}
	return m.value.Display()
}

// SignedString is like String but with an explicit "+" on positive values,
// for listings where the direction of the movement matters.
func (m Money) SignedString() string {
	if m.value == nil {
		return ""
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Format renders an amount in the given currency, falling back to the bare
// decimal when the currency code is unknown.
func Format(amount decimal.Decimal, currency string) string {
	m := NewMoney(amount, currency)
	if m.value == nil {
		return amount.String()
	}
	return m.String()
}

// FormatSigned is Format with an explicit "+" on positive values.
func FormatSigned(amount decimal.Decimal, currency string) string {
	m := NewMoney(amount, currency)
	if m.value == nil {
		return amount.String()
	}
	return m.SignedString()
}
