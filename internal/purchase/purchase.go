package purchase

import (
	"errors"
	"fmt"

	"github.com/nikolayk812/checkout-demo/internal/cart"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
	"github.com/nikolayk812/checkout-demo/internal/tax"
	"golang.org/x/text/currency"
)

var ErrNoReceiptPrinter = errors.New("receipt printer is nil")

// Purchase ties one cart to the tax calculator it is billed with.
type Purchase struct {
	cart       *cart.Cart
	calculator *tax.Calculator
}

// New wraps c. A nil cart is replaced with an empty one.
func New(c *cart.Cart) *Purchase {
	p := &Purchase{
		calculator: tax.NewCalculator(),
	}
	p.SetCart(c)

	return p
}

func (p *Purchase) SetCart(c *cart.Cart) {
	if c == nil {
		c = cart.New(currency.XXX)
	}

	p.cart = c
}

func (p *Purchase) Cart() *cart.Cart {
	return p.cart
}

func (p *Purchase) CalculateTaxes() domain.Money {
	return p.calculator.CalculateTaxes(p.cart.Total())
}

func (p *Purchase) TaxBreakdown() []tax.Levy {
	return p.calculator.Breakdown(p.cart.Total())
}

func (p *Purchase) PrintReceipt(printer port.ReceiptPrinter) error {
	if printer == nil {
		return ErrNoReceiptPrinter
	}

	if err := printer.Print(p.cart.Total()); err != nil {
		return fmt.Errorf("%s.Print: %w", printer.Name(), err)
	}

	return nil
}
