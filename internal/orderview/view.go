// Package orderview is the order detail view: it resolves an order id,
// fetches the order once, and turns the outcome into a renderable page.
package orderview

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/steipete/orderview/internal/orders"
)

// LoadErrorMessage is the only failure text users see. Causes go to the log.
const LoadErrorMessage = "could not load order"

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// State is a snapshot of the view. Exactly one of Order (PhaseReady) and
// Err (PhaseFailed) is set.
type State struct {
	Phase Phase
	ID    string
	Order *orders.Order
	Err   string
	Cause error
}

type Fetcher interface {
	Get(ctx context.Context, id string) (*orders.Order, error)
}

// Resolver yields the order id once. It may block, e.g. until a router has
// parsed the request.
type Resolver func(ctx context.Context) (string, error)

func Immediate(id string) Resolver {
	return func(context.Context) (string, error) { return id, nil }
}

// FromChannel resolves to the first value received on ch. A closed channel
// resolves to the empty id.
func FromChannel(ch <-chan string) Resolver {
	return func(ctx context.Context) (string, error) {
		select {
		case id := <-ch:
			return id, nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
}

type Option func(*View)

func WithLogger(l *slog.Logger) Option {
	return func(v *View) {
		if l != nil {
			v.log = l
		}
	}
}

// WithOnChange registers fn for every applied transition. fn runs with the
// view locked and must not call back into the view.
func WithOnChange(fn func(State)) Option {
	return func(v *View) { v.onChange = fn }
}

type View struct {
	fetcher  Fetcher
	log      *slog.Logger
	onChange func(State)

	mu     sync.Mutex
	gen    uint64
	state  State
	paid   bool
	cancel context.CancelFunc
	done   chan struct{}
}

var settled = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

func New(fetcher Fetcher, opts ...Option) *View {
	v := &View{
		fetcher: fetcher,
		log:     slog.New(slog.DiscardHandler),
		done:    settled,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Activate starts loading the order the resolver names. An earlier
// activation is superseded: its context is cancelled and whatever it
// produces afterwards is dropped.
func (v *View) Activate(ctx context.Context, resolve Resolver, paid bool) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.gen++
	gen := v.gen
	v.cancel = cancel
	v.done = done
	v.paid = paid
	v.setLocked(State{Phase: PhaseLoading})
	v.mu.Unlock()

	go v.run(ctx, gen, resolve, done)
}

// Deactivate tears the view down. In-flight work is cancelled and its
// results are never applied.
func (v *View) Deactivate() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.gen++
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.done = settled
	v.state = State{}
	v.paid = false
}

// Wait blocks until the latest activation settles.
func (v *View) Wait(ctx context.Context) (State, error) {
	for {
		v.mu.Lock()
		done, gen := v.done, v.gen
		v.mu.Unlock()

		select {
		case <-done:
		case <-ctx.Done():
			return v.State(), ctx.Err()
		}

		v.mu.Lock()
		if v.gen == gen {
			s := v.state
			v.mu.Unlock()
			return s, nil
		}
		v.mu.Unlock()
	}
}

func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *View) Paid() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.paid
}

func (v *View) run(ctx context.Context, gen uint64, resolve Resolver, done chan struct{}) {
	defer close(done)

	id, err := resolve(ctx)
	if err != nil {
		v.log.Debug("order id not resolved", slog.Any("err", err))
		v.apply(gen, State{Phase: PhaseIdle})
		return
	}
	id = strings.TrimSpace(id)
	if id == "" {
		v.apply(gen, State{Phase: PhaseIdle})
		return
	}
	if !v.apply(gen, State{Phase: PhaseLoading, ID: id}) {
		return
	}

	o, err := v.fetcher.Get(ctx, id)
	if err == nil && o == nil {
		err = orders.ErrNoOrder
	}
	if err != nil {
		if v.apply(gen, State{Phase: PhaseFailed, ID: id, Err: LoadErrorMessage, Cause: err}) {
			level := slog.LevelWarn
			if errors.Is(err, context.Canceled) {
				level = slog.LevelDebug
			}
			v.log.Log(ctx, level, "order load failed", slog.String("order_id", id), slog.Any("err", err))
		}
		return
	}

	if v.apply(gen, State{Phase: PhaseReady, ID: id, Order: o}) {
		if sum := o.ItemsSubtotalCents(); sum != o.TotalCents {
			v.log.Debug("order total differs from item sum",
				slog.String("order_id", id),
				slog.Int64("total_cents", o.TotalCents),
				slog.Int64("items_cents", sum),
			)
		}
	}
}

// apply installs s if gen is still the current activation.
func (v *View) apply(gen uint64, s State) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		v.log.Debug("dropping stale view update", slog.String("phase", s.Phase.String()), slog.String("order_id", s.ID))
		return false
	}
	v.setLocked(s)
	return true
}

func (v *View) setLocked(s State) {
	v.state = s
	if v.onChange != nil {
		v.onChange(s)
	}
}
