package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uuid.UUID
	Description string
	UnitPrice   decimal.Decimal
	Quantity    int
}

func NewProduct(description string, unitPrice decimal.Decimal, quantity int) Product {
	return Product{
		ID:          uuid.New(),
		Description: description,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
	}
}

func (p Product) Subtotal() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
