package tax

import (
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
	"github.com/shopspring/decimal"
)

// Levy is the share of an amount owed to a single tax.
type Levy struct {
	Name       string
	Percentage decimal.Decimal
	Amount     domain.Money
}

type Calculator struct {
	rates []port.TaxRate
}

func NewCalculator() *Calculator {
	return &Calculator{
		rates: []port.TaxRate{PIS, COFINS, ICMS},
	}
}

// CalculateTaxes sums every configured rate applied to amount.
func (c *Calculator) CalculateTaxes(amount domain.Money) domain.Money {
	total := domain.NewMoney(decimal.Zero, amount.Currency)
	for _, r := range c.rates {
		total = total.Add(r.Calculate(amount))
	}

	return total
}

func (c *Calculator) Breakdown(amount domain.Money) []Levy {
	levies := make([]Levy, 0, len(c.rates))
	for _, r := range c.rates {
		levies = append(levies, Levy{
			Name:       r.Name(),
			Percentage: r.Percentage(),
			Amount:     r.Calculate(amount),
		})
	}

	return levies
}

func (c *Calculator) CombinedRate() decimal.Decimal {
	sum := decimal.Zero
	for _, r := range c.rates {
		sum = sum.Add(r.Percentage())
	}

	return sum
}
