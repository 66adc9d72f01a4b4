package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, cur currency.Unit) Money {
	return Money{Amount: amount, Currency: cur}
}

// Add sums amounts, keeping the receiver's currency.
func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}
}

func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(factor), Currency: m.Currency}
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// String renders the amount at the currency's standard scale, e.g. "100.00 BRL".
func (m Money) String() string {
	scale, _ := currency.Standard.Rounding(m.Currency)
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(int32(scale)), m.Currency)
}
