package orderview

import (
	"strings"

	"github.com/steipete/orderview/internal/orders"
)

// Emphasis classes shared by the text and HTML renderers.
const (
	ClassSuccess = "success"
	ClassWarning = "warning"
	ClassDanger  = "danger"
	ClassInfo    = "info"
	ClassMuted   = "muted"
	ClassNeutral = "neutral"
)

type Banner int

const (
	BannerNone Banner = iota
	BannerSuccess
	BannerPending
	BannerFailure
)

// SelectBanner picks the payment banner. The paid flag comes from the
// payment provider redirect and wins over whatever the backend reports.
func SelectBanner(paid bool, s orders.PaymentStatus) Banner {
	switch {
	case paid || s == orders.PaymentPaid:
		return BannerSuccess
	case s == orders.PaymentPending:
		return BannerPending
	case s == orders.PaymentFailed:
		return BannerFailure
	default:
		return BannerNone
	}
}

func (b Banner) String() string {
	switch b {
	case BannerSuccess:
		return "success"
	case BannerPending:
		return "pending"
	case BannerFailure:
		return "failure"
	default:
		return "none"
	}
}

func (b Banner) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b Banner) Message() string {
	switch b {
	case BannerSuccess:
		return "Payment received. Thank you!"
	case BannerPending:
		return "Payment pending. We will confirm it shortly."
	case BannerFailure:
		return "Payment failed. Please try again or pay at pickup."
	default:
		return ""
	}
}

func (b Banner) Class() string {
	switch b {
	case BannerSuccess:
		return ClassSuccess
	case BannerPending:
		return ClassWarning
	case BannerFailure:
		return ClassDanger
	default:
		return ""
	}
}

type Badge struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

func PaymentMethodLabel(m orders.PaymentMethod) string {
	switch m {
	case orders.PaymentCash:
		return "Cash"
	case orders.PaymentCard:
		return "Card"
	case orders.PaymentMobileTransfer:
		return "Mobile transfer"
	default:
		return fallbackLabel(string(m))
	}
}

func PaymentStatusLabel(s orders.PaymentStatus) string {
	switch s {
	case orders.PaymentPending:
		return "Pending"
	case orders.PaymentPaid:
		return "Paid"
	case orders.PaymentFailed:
		return "Failed"
	case orders.PaymentRefunded:
		return "Refunded"
	default:
		return fallbackLabel(string(s))
	}
}

func paymentStatusClass(s orders.PaymentStatus) string {
	switch s {
	case orders.PaymentPaid:
		return ClassSuccess
	case orders.PaymentPending:
		return ClassWarning
	case orders.PaymentFailed:
		return ClassDanger
	case orders.PaymentRefunded:
		return ClassMuted
	default:
		return ClassNeutral
	}
}

// PaymentBadge combines method and status, e.g. "Card · Paid".
func PaymentBadge(m orders.PaymentMethod, s orders.PaymentStatus) Badge {
	return Badge{
		Label: PaymentMethodLabel(m) + " · " + PaymentStatusLabel(s),
		Class: paymentStatusClass(s),
	}
}

func StatusLabel(s orders.Status) string {
	switch s {
	case orders.StatusPending:
		return "Pending"
	case orders.StatusPreparing:
		return "Preparing"
	case orders.StatusReady:
		return "Ready for pickup"
	case orders.StatusDelivered:
		return "Delivered"
	case orders.StatusCancelled:
		return "Cancelled"
	default:
		return fallbackLabel(string(s))
	}
}

func StatusBadge(s orders.Status) Badge {
	class := ClassNeutral
	switch s {
	case orders.StatusPending:
		class = ClassWarning
	case orders.StatusPreparing:
		class = ClassInfo
	case orders.StatusReady:
		class = ClassSuccess
	case orders.StatusDelivered:
		class = ClassMuted
	case orders.StatusCancelled:
		class = ClassDanger
	}
	return Badge{Label: StatusLabel(s), Class: class}
}

// fallbackLabel shows values outside the known sets verbatim.
func fallbackLabel(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "Unknown"
	}
	return raw
}
