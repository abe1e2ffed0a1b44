package mockapi

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/steipete/orderview/internal/orders"
	"github.com/steipete/orderview/internal/server"
)

// NewHandler serves the fixtures with the backend's response shape.
func NewHandler(fx Fixtures, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	r := gin.New()
	r.Use(server.RequestID(), server.Logger(log), server.Recovery(log))
	r.GET(orders.GetPath, func(c *gin.Context) {
		id := strings.TrimSpace(c.Query("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing id"})
			return
		}
		f, ok := fx[id]
		if !ok {
			c.JSON(http.StatusOK, orders.GetResponse{})
			return
		}
		if f.FailStatus != 0 {
			c.JSON(f.FailStatus, gin.H{"error": http.StatusText(f.FailStatus)})
			return
		}
		o := f.Order
		c.Header("Cache-Control", "no-store")
		c.JSON(http.StatusOK, orders.GetResponse{Order: &o})
	})
	return r
}
