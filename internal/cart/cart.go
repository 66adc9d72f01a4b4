package cart

import (
	"errors"
	"fmt"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var ErrNoPaymentMethod = errors.New("payment method is nil")

// Cart owns an ordered list of products and keeps its total in sync with them.
type Cart struct {
	products []domain.Product
	total    domain.Money
}

func New(cur currency.Unit) *Cart {
	return &Cart{
		total: domain.NewMoney(decimal.Zero, cur),
	}
}

// Add appends the product and recomputes the total. Price and quantity are not validated.
func (c *Cart) Add(product domain.Product) {
	c.products = append(c.products, product)
	c.Recalculate()
}

func (c *Cart) Recalculate() {
	sum := decimal.Zero
	for _, p := range c.products {
		sum = sum.Add(p.Subtotal())
	}

	c.total = domain.NewMoney(sum, c.total.Currency)
}

func (c *Cart) Total() domain.Money {
	return c.total
}

func (c *Cart) Currency() currency.Unit {
	return c.total.Currency
}

func (c *Cart) Products() []domain.Product {
	result := make([]domain.Product, len(c.products))
	copy(result, c.products)
	return result
}

func (c *Cart) Len() int {
	return len(c.products)
}

func (c *Cart) Pay(method port.PaymentMethod) error {
	if method == nil {
		return ErrNoPaymentMethod
	}

	if err := method.Pay(c.total); err != nil {
		return fmt.Errorf("%s.Pay: %w", method.Name(), err)
	}

	return nil
}
