package orders

import (
	"encoding/json"
	"testing"
	"time"
)

func TestEnumsKeepUnknownValues(t *testing.T) {
	t.Parallel()

	var o Order
	if err := json.Unmarshal([]byte(`{"status":"On_The_Way","payment_status":"chargeback","payment_method":"voucher"}`), &o); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if o.Status != "on_the_way" || o.Status.Known() {
		t.Fatalf("status=%q known=%v", o.Status, o.Status.Known())
	}
	if o.PaymentStatus != "chargeback" || o.PaymentStatus.Known() {
		t.Fatalf("payment_status=%q", o.PaymentStatus)
	}
	if o.PaymentMethod != "voucher" || o.PaymentMethod.Known() {
		t.Fatalf("payment_method=%q", o.PaymentMethod)
	}
}

func TestParsePaymentMethod(t *testing.T) {
	t.Parallel()

	tests := map[string]PaymentMethod{
		"cash":            PaymentCash,
		" CARD ":          PaymentCard,
		"mobile-transfer": PaymentMobileTransfer,
		"mobile_transfer": PaymentMobileTransfer,
		"Bizum":           PaymentMobileTransfer,
		"crypto":          "crypto",
	}
	for in, want := range tests {
		if got := ParsePaymentMethod(in); got != want {
			t.Errorf("ParsePaymentMethod(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTimeUnmarshal(t *testing.T) {
	t.Parallel()

	want := time.Date(2026, 10, 16, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		in   string
		zero bool
	}{
		{in: `"2026-10-16T12:30:00Z"`},
		{in: `"2026-10-16T14:30:00+02:00"`},
		{in: `"2026-10-16 12:30:00"`},
		{in: `1792153800`},
		{in: `1792153800000`},
		{in: `null`, zero: true},
		{in: `""`, zero: true},
	}
	for _, tt := range tests {
		var got Time
		if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if tt.zero {
			if !got.IsZero() {
				t.Errorf("%s: expected zero, got %v", tt.in, got)
			}
			continue
		}
		if !got.Equal(want) {
			t.Errorf("%s: got %v want %v", tt.in, got.Time, want)
		}
	}

	var bad Time
	if err := json.Unmarshal([]byte(`"next tuesday"`), &bad); err == nil {
		t.Fatalf("expected error for garbage timestamp")
	}
}

func TestItemsSubtotalIsIndependentOfTotal(t *testing.T) {
	t.Parallel()

	o := Order{
		TotalCents: 900,
		Items: []LineItem{
			{Quantity: 2, UnitPriceCents: 350},
			{Quantity: 1, UnitPriceCents: 300},
		},
	}
	if got := o.ItemsSubtotalCents(); got != 1000 {
		t.Fatalf("items subtotal=%d", got)
	}
	if o.TotalCents != 900 {
		t.Fatalf("total changed")
	}
}

func TestTimeMarshal(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(struct {
		A Time `json:"a"`
		B Time `json:"b"`
	}{A: Time{Time: time.Date(2026, 10, 16, 12, 30, 0, 0, time.UTC)}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(b); got != `{"a":"2026-10-16T12:30:00Z","b":null}` {
		t.Fatalf("got %s", got)
	}
}
