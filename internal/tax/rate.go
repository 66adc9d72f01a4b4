package tax

import (
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
	"github.com/shopspring/decimal"
)

var _ port.TaxRate = Rate{}

// The levies applied to every purchase. PIS and COFINS share the same percentage.
var (
	PIS    = Rate{name: "PIS", percentage: decimal.RequireFromString("0.10")}
	COFINS = Rate{name: "COFINS", percentage: decimal.RequireFromString("0.10")}
	ICMS   = Rate{name: "ICMS", percentage: decimal.RequireFromString("0.15")}
)

// Rate is a flat percentage levied on the whole amount.
type Rate struct {
	name       string
	percentage decimal.Decimal
}

func (r Rate) Name() string {
	return r.name
}

func (r Rate) Percentage() decimal.Decimal {
	return r.percentage
}

func (r Rate) Calculate(amount domain.Money) domain.Money {
	return amount.Mul(r.percentage)
}
