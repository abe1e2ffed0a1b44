package orderview

import (
	"fmt"
	"io"
)

type TextOptions struct {
	// Color enables ANSI emphasis for the banner and badges.
	Color bool
}

var ansi = map[string]string{
	ClassSuccess: "\x1b[32m",
	ClassWarning: "\x1b[33m",
	ClassDanger:  "\x1b[31m",
	ClassInfo:    "\x1b[36m",
	ClassMuted:   "\x1b[2m",
}

const ansiReset = "\x1b[0m"

func (o TextOptions) paint(class, s string) string {
	if !o.Color {
		return s
	}
	code, ok := ansi[class]
	if !ok {
		return s
	}
	return code + s + ansiReset
}

// RenderText writes p as key=value lines.
func RenderText(w io.Writer, p Page, opts TextOptions) error {
	ew := &errWriter{w: w}
	switch p.Kind {
	case PageLoading:
		ew.printf("loading=%s\n", p.Message)
	case PageIdle:
		ew.printf("%s\n", p.Message)
	case PageError:
		ew.printf("error=%s\n", opts.paint(ClassDanger, p.Message))
	case PageDetail:
		renderDetailText(ew, p, opts)
	}
	return ew.err
}

func renderDetailText(ew *errWriter, p Page, opts TextOptions) {
	o := p.Order
	if p.Banner != BannerNone {
		ew.printf("%s\n", opts.paint(p.Banner.Class(), p.BannerText))
	}
	ew.printf("order=%s\n", o.ID)
	ew.printf("created=%s\n", o.CreatedAt)
	ew.printf("pickup=%s\n", o.PickupAt)
	if o.CustomerName != "" {
		ew.printf("customer=%s\n", o.CustomerName)
	}
	if o.CustomerPhone != "" {
		ew.printf("phone=%s\n", o.CustomerPhone)
	}
	ew.printf("status=%s\n", opts.paint(o.Status.Class, o.Status.Label))
	ew.printf("payment=%s\n", opts.paint(o.Payment.Class, o.Payment.Label))
	if o.NoItems != "" {
		ew.printf("items: %s\n", o.NoItems)
	} else {
		ew.printf("items:\n")
		for _, r := range o.Items {
			ew.printf("- %dx %s (%s)\n", r.Quantity, r.Name, r.Subtotal)
		}
	}
	ew.printf("total=%s\n", o.Total)
	ew.printf("print=%s\n", o.PrintURL)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
