package payment

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nikolayk812/checkout-demo/internal/port"
)

var ErrUnsupportedKind = errors.New("unsupported payment kind")

type Kind int

const (
	KindUnknown Kind = iota
	KindDebit
	KindCredit
	KindCheck
	KindInstantTransfer
)

func (k Kind) String() string {
	switch k {
	case KindDebit:
		return "debit"
	case KindCredit:
		return "credit"
	case KindCheck:
		return "check"
	case KindInstantTransfer:
		return "instant-transfer"
	default:
		return "unknown"
	}
}

// ParseKind accepts the kind names returned by String, plus "pix" for instant transfers.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debit":
		return KindDebit, nil
	case "credit":
		return KindCredit, nil
	case "check", "cheque":
		return KindCheck, nil
	case "instant-transfer", "pix":
		return KindInstantTransfer, nil
	default:
		return KindUnknown, fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
	}
}

// New returns the payment method of the given kind writing its confirmation to out.
func New(kind Kind, out io.Writer) (port.PaymentMethod, error) {
	switch kind {
	case KindDebit:
		return Debit{Out: out}, nil
	case KindCredit:
		return Credit{Out: out}, nil
	case KindCheck:
		return Check{Out: out}, nil
	case KindInstantTransfer:
		return InstantTransfer{Out: out}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedKind, kind)
	}
}
