package receipt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nikolayk812/checkout-demo/internal/port"
)

var ErrUnsupportedKind = errors.New("unsupported receipt kind")

type Kind int

const (
	KindUnknown Kind = iota
	KindOnline
	KindPrinted
	KindFiscalCoupon
	KindSMS
)

func (k Kind) String() string {
	switch k {
	case KindOnline:
		return "online"
	case KindPrinted:
		return "printed"
	case KindFiscalCoupon:
		return "fiscal-coupon"
	case KindSMS:
		return "sms"
	default:
		return "unknown"
	}
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "online":
		return KindOnline, nil
	case "printed":
		return KindPrinted, nil
	case "fiscal-coupon", "fiscal_coupon":
		return KindFiscalCoupon, nil
	case "sms":
		return KindSMS, nil
	default:
		return KindUnknown, fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
	}
}

func New(kind Kind, out io.Writer) (port.ReceiptPrinter, error) {
	switch kind {
	case KindOnline:
		return Online{Out: out}, nil
	case KindPrinted:
		return Printed{Out: out}, nil
	case KindFiscalCoupon:
		return FiscalCoupon{Out: out}, nil
	case KindSMS:
		return SMS{Out: out}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedKind, kind)
	}
}
