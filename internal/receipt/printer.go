package receipt

import (
	"fmt"
	"io"
	"os"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
)

var (
	_ port.ReceiptPrinter = Online{}
	_ port.ReceiptPrinter = Printed{}
	_ port.ReceiptPrinter = FiscalCoupon{}
	_ port.ReceiptPrinter = SMS{}
)

type Online struct {
	Out io.Writer
}

func (Online) Name() string { return KindOnline.String() }

func (p Online) Print(amount domain.Money) error {
	return printLine(p.Out, "online receipt", amount)
}

type Printed struct {
	Out io.Writer
}

func (Printed) Name() string { return KindPrinted.String() }

func (p Printed) Print(amount domain.Money) error {
	return printLine(p.Out, "printed receipt", amount)
}

type FiscalCoupon struct {
	Out io.Writer
}

func (FiscalCoupon) Name() string { return KindFiscalCoupon.String() }

func (p FiscalCoupon) Print(amount domain.Money) error {
	return printLine(p.Out, "fiscal coupon receipt", amount)
}

type SMS struct {
	Out io.Writer
}

func (SMS) Name() string { return KindSMS.String() }

func (p SMS) Print(amount domain.Money) error {
	return printLine(p.Out, "SMS receipt", amount)
}

// printLine writes to stdout when out is nil.
func printLine(out io.Writer, label string, amount domain.Money) error {
	if out == nil {
		out = os.Stdout
	}

	if _, err := fmt.Fprintf(out, "%s: %s\n", label, amount); err != nil {
		return fmt.Errorf("fmt.Fprintf: %w", err)
	}

	return nil
}
