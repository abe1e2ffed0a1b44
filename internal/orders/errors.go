package orders

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingID = errors.New("orders: missing order id")
	ErrNoOrder   = errors.New("orders: response has no order")
)

// HTTPError is a non-2xx answer from the orders API. The body is kept for
// logs only; it is never parsed.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	body := string(e.Body)
	if len(body) > 300 {
		body = body[:300] + "…"
	}
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.URL, e.StatusCode, body)
}

func (e *HTTPError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
