package cart_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/checkout-demo/internal/cart"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/payment"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name      string
		products  []domain.Product
		wantTotal decimal.Decimal
	}{
		{
			name:      "empty cart: zero",
			wantTotal: decimal.Zero,
		},
		{
			name: "single product",
			products: []domain.Product{
				domain.NewProduct("book", decimal.NewFromInt(100), 1),
			},
			wantTotal: decimal.NewFromInt(100),
		},
		{
			name: "quantity multiplies unit price",
			products: []domain.Product{
				domain.NewProduct("pen", decimal.RequireFromString("2.50"), 4),
				domain.NewProduct("ink", decimal.RequireFromString("7.25"), 2),
			},
			wantTotal: decimal.RequireFromString("24.50"),
		},
		{
			name: "zero quantity contributes nothing",
			products: []domain.Product{
				domain.NewProduct("sample", decimal.NewFromInt(40), 0),
				domain.NewProduct("box", decimal.NewFromInt(5), 1),
			},
			wantTotal: decimal.NewFromInt(5),
		},
		{
			name: "negative values are not validated",
			products: []domain.Product{
				domain.NewProduct("refund", decimal.NewFromInt(-10), 1),
				domain.NewProduct("box", decimal.NewFromInt(5), 1),
			},
			wantTotal: decimal.NewFromInt(-5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cart.New(currency.BRL)
			for _, p := range tt.products {
				c.Add(p)
			}

			assertMoney(t, domain.NewMoney(tt.wantTotal, currency.BRL), c.Total())
			assert.Equal(t, len(tt.products), c.Len())
		})
	}
}

func TestAddKeepsTotalInSync(t *testing.T) {
	c := cart.New(currency.USD)
	expected := decimal.Zero

	for range gofakeit.Number(1, 20) {
		p := randomProduct()
		c.Add(p)

		expected = expected.Add(p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity))))
		assertMoney(t, domain.NewMoney(expected, currency.USD), c.Total())
	}
}

func TestAddDuplicateProduct(t *testing.T) {
	c := cart.New(currency.BRL)
	p := randomProduct()

	c.Add(p)
	once := c.Total()
	c.Add(p)

	assertMoney(t, once.Mul(decimal.NewFromInt(2)), c.Total())
	assert.Equal(t, 2, c.Len())
}

func TestProductsKeepsOrderAndIsACopy(t *testing.T) {
	c := cart.New(currency.BRL)
	products := []domain.Product{randomProduct(), randomProduct(), randomProduct()}
	for _, p := range products {
		c.Add(p)
	}

	got := c.Products()
	diff := cmp.Diff(products, got, decimalComparer())
	assert.Empty(t, diff)

	got[0].Quantity = 1000
	c.Recalculate()
	assert.Empty(t, cmp.Diff(products, c.Products(), decimalComparer()))
}

func TestPay(t *testing.T) {
	tests := []struct {
		name      string
		products  []domain.Product
		kind      payment.Kind
		wantLine  string
		wantError error
	}{
		{
			name:     "debit: ok",
			products: []domain.Product{domain.NewProduct("book", decimal.NewFromInt(100), 1)},
			kind:     payment.KindDebit,
			wantLine: "payment via debit: 100.00 BRL\n",
		},
		{
			name:     "instant transfer: ok",
			products: []domain.Product{domain.NewProduct("pen", decimal.RequireFromString("1.99"), 3)},
			kind:     payment.KindInstantTransfer,
			wantLine: "payment via instant-transfer: 5.97 BRL\n",
		},
		{
			name:     "empty cart still pays zero",
			kind:     payment.KindCredit,
			wantLine: "payment via credit: 0.00 BRL\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			c := cart.New(currency.BRL)
			for _, p := range tt.products {
				c.Add(p)
			}

			method, err := payment.New(tt.kind, &out)
			require.NoError(t, err)

			err = c.Pay(method)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLine, out.String())
		})
	}
}

func TestPayNilMethod(t *testing.T) {
	c := cart.New(currency.BRL)

	err := c.Pay(nil)
	require.ErrorIs(t, err, cart.ErrNoPaymentMethod)
}

func TestPayWriteFailure(t *testing.T) {
	c := cart.New(currency.BRL)
	c.Add(randomProduct())

	err := c.Pay(payment.Check{Out: failingWriter{}})
	require.ErrorIs(t, err, errWrite)
	assert.Contains(t, err.Error(), "check.Pay")
}

var errWrite = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func randomProduct() domain.Product {
	return domain.NewProduct(
		gofakeit.ProductName(),
		decimal.NewFromFloat(gofakeit.Price(1, 100)),
		gofakeit.Number(0, 10),
	)
}

func decimalComparer() cmp.Option {
	return cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})
}

func assertMoney(t *testing.T, expected, actual domain.Money) {
	t.Helper()

	assert.True(t, expected.Amount.Equal(actual.Amount), "expected %s, got %s", expected, actual)
	assert.Equal(t, expected.Currency, actual.Currency)
}
