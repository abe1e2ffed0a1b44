// Package mockapi stands in for the orders backend during development. It
// serves GET /api/orders/get from a YAML fixture file.
package mockapi

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/steipete/orderview/internal/orders"
)

type fixtureFile struct {
	Orders []fixtureOrder `yaml:"orders"`
}

type fixtureOrder struct {
	ID            string        `yaml:"id"`
	CreatedAt     time.Time     `yaml:"created_at"`
	CustomerName  string        `yaml:"customer_name"`
	CustomerPhone string        `yaml:"customer_phone"`
	PickupAt      *time.Time    `yaml:"pickup_at"`
	Status        string        `yaml:"status"`
	PaymentMethod string        `yaml:"payment_method"`
	PaymentStatus string        `yaml:"payment_status"`
	TotalCents    int64         `yaml:"total_cents"`
	Items         []fixtureItem `yaml:"items"`

	// FailStatus makes the endpoint answer with this HTTP status instead.
	FailStatus int `yaml:"fail_status"`
}

type fixtureItem struct {
	Quantity       int    `yaml:"quantity"`
	Name           string `yaml:"name"`
	UnitPriceCents int64  `yaml:"unit_price_cents"`
}

type Fixture struct {
	Order      orders.Order
	FailStatus int
}

type Fixtures map[string]Fixture

func LoadFixtures(path string) (Fixtures, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fx, err := ParseFixtures(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fx, nil
}

func ParseFixtures(b []byte) (Fixtures, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, err
	}
	if len(file.Orders) == 0 {
		return nil, errors.New("no orders in fixtures")
	}

	out := make(Fixtures, len(file.Orders))
	for i, fo := range file.Orders {
		id := strings.TrimSpace(fo.ID)
		if id == "" {
			return nil, fmt.Errorf("orders[%d]: missing id", i)
		}
		if _, dup := out[id]; dup {
			return nil, fmt.Errorf("orders[%d]: duplicate id %q", i, id)
		}
		if fo.FailStatus != 0 && (fo.FailStatus < 100 || fo.FailStatus > 599) {
			return nil, fmt.Errorf("orders[%d]: invalid fail_status %d", i, fo.FailStatus)
		}
		out[id] = Fixture{Order: fo.toOrder(id), FailStatus: fo.FailStatus}
	}
	return out, nil
}

func (fo fixtureOrder) toOrder(id string) orders.Order {
	o := orders.Order{
		ID:            id,
		CreatedAt:     orders.Time{Time: fo.CreatedAt},
		CustomerName:  fo.CustomerName,
		CustomerPhone: fo.CustomerPhone,
		Status:        orders.Status(strings.ToLower(strings.TrimSpace(fo.Status))),
		PaymentMethod: orders.ParsePaymentMethod(fo.PaymentMethod),
		PaymentStatus: orders.PaymentStatus(strings.ToLower(strings.TrimSpace(fo.PaymentStatus))),
		TotalCents:    fo.TotalCents,
		Items:         make([]orders.LineItem, 0, len(fo.Items)),
	}
	if fo.PickupAt != nil {
		o.PickupAt = orders.Time{Time: *fo.PickupAt}
	}
	for _, it := range fo.Items {
		o.Items = append(o.Items, orders.LineItem{
			Quantity:       it.Quantity,
			Name:           it.Name,
			UnitPriceCents: it.UnitPriceCents,
		})
	}
	return o
}
