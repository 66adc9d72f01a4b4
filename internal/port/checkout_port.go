package port

import (
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/shopspring/decimal"
)

type TaxRate interface {
	Name() string
	Percentage() decimal.Decimal
	Calculate(amount domain.Money) domain.Money
}

// PaymentMethod settles an amount. Errors come only from the output sink.
type PaymentMethod interface {
	Name() string
	Pay(amount domain.Money) error
}

type ReceiptPrinter interface {
	Name() string
	Print(amount domain.Money) error
}
