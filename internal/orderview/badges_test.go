package orderview

import (
	"testing"

	"github.com/steipete/orderview/internal/orders"
)

func TestSelectBanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		paid   bool
		status orders.PaymentStatus
		want   Banner
	}{
		{false, orders.PaymentPaid, BannerSuccess},
		{true, orders.PaymentPaid, BannerSuccess},
		{true, orders.PaymentFailed, BannerSuccess},
		{true, orders.PaymentRefunded, BannerSuccess},
		{false, orders.PaymentPending, BannerPending},
		{false, orders.PaymentFailed, BannerFailure},
		{false, orders.PaymentRefunded, BannerNone},
		{false, "chargeback", BannerNone},
		{false, "", BannerNone},
	}
	for _, tt := range tests {
		if got := SelectBanner(tt.paid, tt.status); got != tt.want {
			t.Errorf("SelectBanner(%v, %q) = %s, want %s", tt.paid, tt.status, got, tt.want)
		}
	}
}

func TestPaymentBadgeClasses(t *testing.T) {
	t.Parallel()

	seen := map[string]orders.PaymentStatus{}
	for _, s := range []orders.PaymentStatus{orders.PaymentPending, orders.PaymentPaid, orders.PaymentFailed, orders.PaymentRefunded} {
		b := PaymentBadge(orders.PaymentCard, s)
		if prev, ok := seen[b.Class]; ok {
			t.Fatalf("%q and %q share class %q", prev, s, b.Class)
		}
		seen[b.Class] = s
	}

	b := PaymentBadge(orders.PaymentMobileTransfer, orders.PaymentPaid)
	if b.Label != "Mobile transfer · Paid" || b.Class != ClassSuccess {
		t.Fatalf("unexpected badge: %#v", b)
	}
	b = PaymentBadge("voucher", "chargeback")
	if b.Label != "voucher · chargeback" || b.Class != ClassNeutral {
		t.Fatalf("unexpected fallback badge: %#v", b)
	}
}

func TestStatusBadgeFallback(t *testing.T) {
	t.Parallel()

	if got := StatusBadge(orders.StatusReady); got.Class != ClassSuccess {
		t.Fatalf("ready: %#v", got)
	}
	if got := StatusBadge("on_the_way"); got.Label != "on_the_way" || got.Class != ClassNeutral {
		t.Fatalf("unknown: %#v", got)
	}
	if got := StatusBadge(""); got.Label != "Unknown" {
		t.Fatalf("empty: %#v", got)
	}
}
