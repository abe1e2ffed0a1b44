// Package server serves the order detail view as HTML pages.
package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/steipete/orderview/internal/locale"
	"github.com/steipete/orderview/internal/orders"
	"github.com/steipete/orderview/internal/orderview"
)

type Options struct {
	Addr      string
	Fetcher   orderview.Fetcher
	Formatter *locale.Formatter
	Logger    *slog.Logger
}

type Server struct {
	addr    string
	fetcher orderview.Fetcher
	fmt     *locale.Formatter
	lang    string
	log     *slog.Logger
	engine  *gin.Engine
}

func New(opts Options) (*Server, error) {
	if opts.Fetcher == nil {
		return nil, errors.New("server: fetcher missing")
	}
	if opts.Formatter == nil {
		return nil, errors.New("server: formatter missing")
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Addr == "" {
		opts.Addr = ":8080"
	}

	base, _ := opts.Formatter.Tag().Base()
	s := &Server{
		addr:    opts.Addr,
		fetcher: opts.Fetcher,
		fmt:     opts.Formatter,
		lang:    base.String(),
		log:     opts.Logger,
	}

	r := gin.New()
	r.Use(RequestID(), Logger(s.log), Recovery(s.log))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/order/:id", s.orderPage)
	s.engine = r
	return s, nil
}

func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) Run(ctx context.Context) error {
	return Serve(ctx, &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}, s.log)
}

func (s *Server) orderPage(c *gin.Context) {
	ctx := c.Request.Context()
	paid := c.Query("paid") == "1"

	v := orderview.New(s.fetcher, orderview.WithLogger(s.log.With(slog.String("request_id", GetRequestID(c)))))
	defer v.Deactivate()

	v.Activate(ctx, orderview.Immediate(c.Param("id")), paid)
	st, err := v.Wait(ctx)
	if err != nil {
		// Client went away; nobody is reading the page.
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return
	}

	page := orderview.Build(st, v.Paid(), s.fmt)
	status := pageStatus(st)

	if wantsJSON(c) {
		c.JSON(status, page)
		return
	}

	var buf bytes.Buffer
	if err := orderview.RenderHTML(&buf, page, s.lang); err != nil {
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// pageStatus maps the view outcome onto an HTTP status. The body shows the
// same generic message either way.
func pageStatus(st orderview.State) int {
	switch st.Phase {
	case orderview.PhaseReady:
		return http.StatusOK
	case orderview.PhaseFailed:
		var he *orders.HTTPError
		if errors.Is(st.Cause, orders.ErrNoOrder) || (errors.As(st.Cause, &he) && he.NotFound()) {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	default:
		return http.StatusNotFound
	}
}

// Serve runs srv until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, srv *http.Server, log *slog.Logger) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}
	log.Info("listening", slog.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
