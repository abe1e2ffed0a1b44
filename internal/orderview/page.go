package orderview

import (
	"net/url"

	"github.com/steipete/orderview/internal/locale"
)

const (
	LoadingMessage   = "Loading order…"
	IdleMessage      = "No order selected"
	NoItemsMessage   = "No items"
	ItemFallbackName = "Item"
)

type PageKind string

const (
	PageIdle    PageKind = "idle"
	PageLoading PageKind = "loading"
	PageError   PageKind = "error"
	PageDetail  PageKind = "detail"
)

// Page is everything a renderer needs. Order is set only for PageDetail.
type Page struct {
	Kind       PageKind   `json:"kind"`
	Message    string     `json:"message,omitempty"`
	Banner     Banner     `json:"banner"`
	BannerText string     `json:"banner_text,omitempty"`
	Order      *OrderPage `json:"order,omitempty"`
}

type OrderPage struct {
	ID            string `json:"id"`
	CreatedAt     string `json:"created_at"`
	PickupAt      string `json:"pickup_at"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Status        Badge  `json:"status"`
	Payment       Badge  `json:"payment"`
	Items         []Row  `json:"items"`
	NoItems       string `json:"no_items,omitempty"`
	Total         string `json:"total"`
	PrintURL      string `json:"print_url"`
}

type Row struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
}

// Build renders s into a Page. It does no I/O.
func Build(s State, paid bool, f *locale.Formatter) Page {
	switch s.Phase {
	case PhaseLoading:
		return Page{Kind: PageLoading, Message: LoadingMessage}
	case PhaseFailed:
		return Page{Kind: PageError, Message: errorMessage(s)}
	case PhaseReady:
		if s.Order == nil {
			return Page{Kind: PageError, Message: LoadErrorMessage}
		}
	default:
		return Page{Kind: PageIdle, Message: IdleMessage}
	}

	o := s.Order
	op := &OrderPage{
		ID:            o.ID,
		CreatedAt:     f.DateTime(o.CreatedAt.Time),
		PickupAt:      locale.Placeholder,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Status:        StatusBadge(o.Status),
		Payment:       PaymentBadge(o.PaymentMethod, o.PaymentStatus),
		Items:         make([]Row, 0, len(o.Items)),
		Total:         f.Money(o.TotalCents),
		PrintURL:      "/order/" + url.PathEscape(o.ID) + "/print",
	}
	if !o.PickupAt.IsZero() {
		op.PickupAt = f.DateTime(o.PickupAt.Time)
	}
	for _, it := range o.Items {
		name := it.Name
		if name == "" {
			name = ItemFallbackName
		}
		op.Items = append(op.Items, Row{
			Name:     name,
			Quantity: it.Quantity,
			Subtotal: f.Money(it.SubtotalCents()),
		})
	}
	if len(op.Items) == 0 {
		op.NoItems = NoItemsMessage
	}

	b := SelectBanner(paid, o.PaymentStatus)
	return Page{
		Kind:       PageDetail,
		Banner:     b,
		BannerText: b.Message(),
		Order:      op,
	}
}

func errorMessage(s State) string {
	if s.Err != "" {
		return s.Err
	}
	return LoadErrorMessage
}
