package locale

import (
	"strings"
	"testing"
	"time"
)

func TestMoneySpanishEuro(t *testing.T) {
	t.Parallel()

	f := MustNew(Options{Locale: "es-ES", Currency: "EUR", TimeZone: "UTC"})
	tests := map[int64]string{
		1250: "12,50",
		5:    "0,05",
		700:  "7,00",
	}
	for cents, amount := range tests {
		got := f.Money(cents)
		if !strings.HasPrefix(got, amount) {
			t.Errorf("Money(%d) = %q, want prefix %q", cents, got, amount)
		}
		if !strings.HasSuffix(got, "€") {
			t.Errorf("Money(%d) = %q, want trailing €", cents, got)
		}
	}
}

func TestMoneySpanishGrouping(t *testing.T) {
	t.Parallel()

	f := MustNew(Options{Locale: "es-ES", Currency: "EUR", TimeZone: "UTC"})
	tests := map[int64]string{
		1250:             "12,50\u00a0€",
		123450:           "1234,50\u00a0€",
		999999:           "9999,99\u00a0€",
		1234567:          "12.345,67\u00a0€",
		-123450:          "-1234,50\u00a0€",
		9007199254740993: "90.071.992.547.409,93\u00a0€",
	}
	for cents, want := range tests {
		if got := f.Money(cents); got != want {
			t.Errorf("Money(%d) = %q, want %q", cents, got, want)
		}
	}
}

func TestMoneyGroupsThousandsInGerman(t *testing.T) {
	t.Parallel()

	f := MustNew(Options{Locale: "de-DE", Currency: "EUR", TimeZone: "UTC"})
	if got := f.Money(123450); got != "1.234,50\u00a0€" {
		t.Fatalf("Money = %q", got)
	}
}

func TestMoneySymbolBeforeForEnglish(t *testing.T) {
	t.Parallel()

	f := MustNew(Options{Locale: "en-US", Currency: "USD", TimeZone: "UTC"})
	got := f.Money(1250)
	if !strings.HasSuffix(got, "12.50") {
		t.Fatalf("Money = %q", got)
	}
	if strings.HasPrefix(got, "12") {
		t.Fatalf("expected symbol first, got %q", got)
	}
	if got := f.Money(123450); !strings.HasSuffix(got, "1,234.50") {
		t.Fatalf("Money = %q", got)
	}
}

func TestDateTime(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 10, 16, 12, 30, 0, 0, time.UTC)

	es := MustNew(Options{Locale: "es-ES", TimeZone: "UTC"})
	if got := es.DateTime(ts); got != "16/10, 12:30" {
		t.Fatalf("es: %q", got)
	}
	us := MustNew(Options{Locale: "en-US", TimeZone: "UTC"})
	if got := us.DateTime(ts); got != "10/16, 12:30 PM" {
		t.Fatalf("en-US: %q", got)
	}
	if got := es.DateTime(time.Time{}); got != Placeholder {
		t.Fatalf("zero time: %q", got)
	}
}

func TestDateTimeUsesConfiguredZone(t *testing.T) {
	t.Parallel()

	f, err := New(Options{Locale: "es-ES", TimeZone: "Europe/Madrid"})
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	ts := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	if got := f.DateTime(ts); got != "01/07, 12:00" {
		t.Fatalf("got %q", got)
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	t.Parallel()

	for _, opts := range []Options{
		{Currency: "EURO"},
		{TimeZone: "Mars/Olympus"},
		{Locale: "!!"},
	} {
		if _, err := New(opts); err == nil {
			t.Errorf("expected error for %+v", opts)
		}
	}
}
