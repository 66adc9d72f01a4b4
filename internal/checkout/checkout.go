package checkout

import (
	"fmt"
	"io"

	"github.com/nikolayk812/checkout-demo/internal/cart"
	"github.com/nikolayk812/checkout-demo/internal/config"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/payment"
	"github.com/nikolayk812/checkout-demo/internal/purchase"
	"github.com/nikolayk812/checkout-demo/internal/receipt"
	"github.com/nikolayk812/checkout-demo/internal/tax"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Scenario struct {
	Currency currency.Unit
	Products []domain.Product
	Payment  payment.Kind
	Receipt  receipt.Kind
}

type Result struct {
	Total  domain.Money
	Taxes  domain.Money
	Levies []tax.Levy
}

// DefaultScenario is a single 100 BRL product paid by debit with an SMS receipt.
func DefaultScenario() Scenario {
	return Scenario{
		Currency: currency.BRL,
		Products: []domain.Product{
			domain.NewProduct("sample product", decimal.NewFromInt(100), 1),
		},
		Payment: payment.KindDebit,
		Receipt: receipt.KindSMS,
	}
}

func ScenarioFromConfig(cfg *config.Config) Scenario {
	return Scenario{
		Currency: cfg.Currency,
		Products: []domain.Product{
			domain.NewProduct(cfg.ProductDescription, cfg.ProductPrice, cfg.ProductQuantity),
		},
		Payment: cfg.Payment,
		Receipt: cfg.Receipt,
	}
}

// Run fills a cart, pays for it, computes taxes and prints the receipt.
// Payment and receipt lines are written to out, in that order.
func Run(s Scenario, out io.Writer, log zerolog.Logger) (Result, error) {
	method, err := payment.New(s.Payment, out)
	if err != nil {
		return Result{}, fmt.Errorf("payment.New: %w", err)
	}

	printer, err := receipt.New(s.Receipt, out)
	if err != nil {
		return Result{}, fmt.Errorf("receipt.New: %w", err)
	}

	c := cart.New(s.Currency)
	for _, p := range s.Products {
		c.Add(p)
		log.Debug().
			Str("product_id", p.ID.String()).
			Str("description", p.Description).
			Str("unit_price", p.UnitPrice.String()).
			Int("quantity", p.Quantity).
			Str("cart_total", c.Total().String()).
			Msg("product added")
	}

	if err := c.Pay(method); err != nil {
		return Result{}, fmt.Errorf("c.Pay: %w", err)
	}
	log.Info().Str("method", method.Name()).Str("amount", c.Total().String()).Msg("cart paid")

	p := purchase.New(c)
	result := Result{
		Total:  c.Total(),
		Taxes:  p.CalculateTaxes(),
		Levies: p.TaxBreakdown(),
	}

	levies := zerolog.Dict()
	for _, l := range result.Levies {
		levies = levies.Str(l.Name, l.Amount.String())
	}
	log.Info().Str("taxes", result.Taxes.String()).Dict("levies", levies).Msg("taxes calculated")

	if err := p.PrintReceipt(printer); err != nil {
		return Result{}, fmt.Errorf("p.PrintReceipt: %w", err)
	}
	log.Info().Str("receipt", printer.Name()).Msg("receipt printed")

	return result, nil
}
