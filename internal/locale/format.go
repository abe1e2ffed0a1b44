// Package locale formats money and timestamps for one injected
// locale / currency / time zone combination.
package locale

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultLocale   = "es-ES"
	DefaultCurrency = "EUR"
	DefaultTimeZone = "Europe/Madrid"

	// Placeholder stands in for absent values such as an unscheduled pickup.
	Placeholder = "—"
)

type Options struct {
	Locale   string
	Currency string
	TimeZone string
}

type Formatter struct {
	tag         language.Tag
	loc         *time.Location
	printer     *message.Printer
	symbol      string
	symbolAfter bool
	decimalSep  string
	minGrouping int
	dateLayout  string
}

func New(opts Options) (*Formatter, error) {
	if opts.Locale == "" {
		opts.Locale = DefaultLocale
	}
	if opts.Currency == "" {
		opts.Currency = DefaultCurrency
	}
	if opts.TimeZone == "" {
		opts.TimeZone = DefaultTimeZone
	}

	tag, err := language.Parse(opts.Locale)
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", opts.Locale, err)
	}
	unit, err := currency.ParseISO(opts.Currency)
	if err != nil {
		return nil, fmt.Errorf("currency %q: %w", opts.Currency, err)
	}
	loc, err := time.LoadLocation(opts.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", opts.TimeZone, err)
	}

	p := message.NewPrinter(tag)
	sym := strings.TrimSpace(p.Sprint(currency.Symbol(unit)))
	if sym == "" {
		sym = unit.String()
	}

	base, _ := tag.Base()
	region, _ := tag.Region()
	return &Formatter{
		tag:         tag,
		loc:         loc,
		printer:     p,
		symbol:      sym,
		symbolAfter: symbolAfter[base.String()],
		decimalSep:  strings.Trim(p.Sprint(number.Decimal(1.5, number.Scale(1))), "15"),
		minGrouping: minGrouping[base.String()],
		dateLayout:  dateLayout(base.String(), region.String()),
	}, nil
}

// MustNew is New for hard-coded options.
func MustNew(opts Options) *Formatter {
	f, err := New(opts)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Formatter) Tag() language.Tag { return f.tag }

// Money renders an amount given in minor units (cents) with two fraction
// digits, locale separators and the currency symbol.
func (f *Formatter) Money(cents int64) string {
	u := uint64(cents)
	sign := ""
	if cents < 0 {
		u = -u
		sign = "-"
	}
	units, frac := u/100, u%100

	// Grouping starts at 4 integer digits, or more with minGrouping.
	threshold := uint64(1000)
	for i := 1; i < f.minGrouping; i++ {
		threshold *= 10
	}
	var whole string
	if units < threshold {
		whole = f.printer.Sprint(number.Decimal(units, number.NoSeparator()))
	} else {
		whole = f.printer.Sprint(number.Decimal(units))
	}
	amount := fmt.Sprintf("%s%s%s%02d", sign, whole, f.decimalSep, frac)
	if f.symbolAfter {
		return amount + "\u00a0" + f.symbol
	}
	return f.symbol + amount
}

// DateTime renders day/month and hour:minute in the configured zone.
func (f *Formatter) DateTime(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.In(f.loc).Format(f.dateLayout)
}

// minGrouping is CLDR minimumGroupingDigits where it is above 1: "1234,50"
// but "12.345,67" in Spanish.
var minGrouping = map[string]int{
	"es": 2, "pl": 2,
}

var symbolAfter = map[string]bool{
	"bg": true, "ca": true, "cs": true, "da": true, "de": true, "el": true,
	"es": true, "et": true, "fi": true, "fr": true, "hr": true, "hu": true,
	"it": true, "lt": true, "lv": true, "nb": true, "pl": true, "pt": true,
	"ro": true, "ru": true, "sk": true, "sl": true, "sv": true, "uk": true,
}

func dateLayout(base, region string) string {
	switch {
	case base == "en" && region == "US":
		return "01/02, 3:04 PM"
	case base == "de":
		return "02.01., 15:04"
	default:
		return "02/01, 15:04"
	}
}
