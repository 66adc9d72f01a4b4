package payment

import (
	"fmt"
	"io"
	"os"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
)

var (
	_ port.PaymentMethod = Debit{}
	_ port.PaymentMethod = Credit{}
	_ port.PaymentMethod = Check{}
	_ port.PaymentMethod = InstantTransfer{}
)

// Out defaults to stdout when nil.
type Debit struct {
	Out io.Writer
}

func (Debit) Name() string { return KindDebit.String() }

func (m Debit) Pay(amount domain.Money) error {
	return confirm(m.Out, m.Name(), amount)
}

type Credit struct {
	Out io.Writer
}

func (Credit) Name() string { return KindCredit.String() }

func (m Credit) Pay(amount domain.Money) error {
	return confirm(m.Out, m.Name(), amount)
}

type Check struct {
	Out io.Writer
}

func (Check) Name() string { return KindCheck.String() }

func (m Check) Pay(amount domain.Money) error {
	return confirm(m.Out, m.Name(), amount)
}

// InstantTransfer settles through the instant payment network (PIX).
type InstantTransfer struct {
	Out io.Writer
}

func (InstantTransfer) Name() string { return KindInstantTransfer.String() }

func (m InstantTransfer) Pay(amount domain.Money) error {
	return confirm(m.Out, m.Name(), amount)
}

func confirm(out io.Writer, method string, amount domain.Money) error {
	if out == nil {
		out = os.Stdout
	}

	if _, err := fmt.Fprintf(out, "payment via %s: %s\n", method, amount); err != nil {
		return fmt.Errorf("fmt.Fprintf: %w", err)
	}

	return nil
}
