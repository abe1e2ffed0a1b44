package orders

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// GetResponse is the body of GET /api/orders/get.
type GetResponse struct {
	Order *Order `json:"order"`
}

type Order struct {
	ID            string        `json:"id"`
	CreatedAt     Time          `json:"created_at"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	PickupAt      Time          `json:"pickup_at"`
	Status        Status        `json:"status"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	TotalCents    int64         `json:"total_cents"`
	Items         []LineItem    `json:"items"`
}

type LineItem struct {
	Quantity       int    `json:"quantity"`
	Name           string `json:"name,omitempty"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

func (it LineItem) SubtotalCents() int64 {
	return int64(it.Quantity) * it.UnitPriceCents
}

// ItemsSubtotalCents sums the line subtotals. TotalCents stays authoritative;
// the two may differ when the backend applies discounts or fees.
func (o Order) ItemsSubtotalCents() int64 {
	var sum int64
	for _, it := range o.Items {
		sum += it.SubtotalCents()
	}
	return sum
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func (s *Status) UnmarshalJSON(b []byte) error {
	raw, err := decodeEnum(b)
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	*s = Status(raw)
	return nil
}

type PaymentMethod string

const (
	PaymentCash           PaymentMethod = "cash"
	PaymentCard           PaymentMethod = "card"
	PaymentMobileTransfer PaymentMethod = "mobile_transfer"
)

func (m PaymentMethod) Known() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentMobileTransfer:
		return true
	}
	return false
}

// ParsePaymentMethod maps the spellings the backend has used over time onto
// the canonical values. Unrecognized input is kept as is.
func ParsePaymentMethod(s string) PaymentMethod {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "mobile-transfer", "mobile transfer", "mobiletransfer", "bizum":
		return PaymentMobileTransfer
	}
	return PaymentMethod(v)
}

func (m *PaymentMethod) UnmarshalJSON(b []byte) error {
	raw, err := decodeEnum(b)
	if err != nil {
		return fmt.Errorf("payment_method: %w", err)
	}
	*m = ParsePaymentMethod(raw)
	return nil
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Known() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

func (s *PaymentStatus) UnmarshalJSON(b []byte) error {
	raw, err := decodeEnum(b)
	if err != nil {
		return fmt.Errorf("payment_status: %w", err)
	}
	*s = PaymentStatus(raw)
	return nil
}

// decodeEnum accepts a JSON string or null and returns the trimmed,
// lower-cased value.
func decodeEnum(b []byte) (string, error) {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(s)), nil
}

// Time is a timestamp as the backend sends it: RFC3339 strings most of the
// time, occasionally a SQL-style string or a unix number. The zero value
// means "absent".
type Time struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
}

func ParseTime(s string) (Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Time{}, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Time{Time: t}, nil
		}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return unixTime(n), nil
	}
	return Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func unixTime(n int64) Time {
	if n > 1_000_000_000_000 {
		return Time{Time: time.UnixMilli(n).UTC()}
	}
	return Time{Time: time.Unix(n, 0).UTC()}
}

func (t *Time) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = Time{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := ParseTime(s)
		if err != nil {
			return err
		}
		*t = v
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	*t = unixTime(int64(f))
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}
