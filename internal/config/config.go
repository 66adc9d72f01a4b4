package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/nikolayk812/checkout-demo/internal/payment"
	"github.com/nikolayk812/checkout-demo/internal/receipt"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Config holds the checkout settings loaded from the environment.
// Defaults reproduce the sample checkout: one 100 BRL product paid by debit with an SMS receipt.
type Config struct {
	Currency           currency.Unit
	Payment            payment.Kind
	Receipt            receipt.Kind
	ProductDescription string
	ProductPrice       decimal.Decimal
	ProductQuantity    int
	LogLevel           string
	LogFormat          string
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cur, err := currency.ParseISO(valueOrDefault(k.String("CHECKOUT_CURRENCY"), "BRL"))
	if err != nil {
		return nil, fmt.Errorf("CHECKOUT_CURRENCY: %w", err)
	}

	paymentKind, err := payment.ParseKind(valueOrDefault(k.String("CHECKOUT_PAYMENT"), "debit"))
	if err != nil {
		return nil, fmt.Errorf("CHECKOUT_PAYMENT: %w", err)
	}

	receiptKind, err := receipt.ParseKind(valueOrDefault(k.String("CHECKOUT_RECEIPT"), "sms"))
	if err != nil {
		return nil, fmt.Errorf("CHECKOUT_RECEIPT: %w", err)
	}

	price, err := decimal.NewFromString(valueOrDefault(k.String("CHECKOUT_PRODUCT_PRICE"), "100"))
	if err != nil {
		return nil, fmt.Errorf("CHECKOUT_PRODUCT_PRICE: %w", err)
	}

	quantity, err := strconv.Atoi(valueOrDefault(k.String("CHECKOUT_PRODUCT_QUANTITY"), "1"))
	if err != nil {
		return nil, fmt.Errorf("CHECKOUT_PRODUCT_QUANTITY: %w", err)
	}
	if quantity < 0 {
		return nil, errors.New("CHECKOUT_PRODUCT_QUANTITY must not be negative")
	}

	return &Config{
		Currency:           cur,
		Payment:            paymentKind,
		Receipt:            receiptKind,
		ProductDescription: valueOrDefault(k.String("CHECKOUT_PRODUCT_DESCRIPTION"), "sample product"),
		ProductPrice:       price,
		ProductQuantity:    quantity,
		LogLevel:           valueOrDefault(k.String("LOG_LEVEL"), "info"),
		LogFormat:          valueOrDefault(k.String("LOG_FORMAT"), "json"),
	}, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

// LoadForTests allows tests to override environment variables without leaking them into other tests.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
