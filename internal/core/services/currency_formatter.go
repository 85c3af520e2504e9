package services

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	maxFractionDigits     = 20
	defaultFractionDigits = 2
	fallbackDecimals      = 2
)

var (
	errNonFiniteAmount      = errors.New("amount is not a finite number")
	errUnsupportedCurrency  = errors.New("unsupported currency")
	errInvalidFractionRange = errors.New("fraction digits out of range")
)

var (
	// Parse keeps digits, '.', ',' and '-' only.
	nonNumericChars = regexp.MustCompile(`[^0-9.,-]`)
	leadingNumber   = regexp.MustCompile(`^-?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)`)
)

// trailingSymbolLanguages place the currency symbol after the number.
var trailingSymbolLanguages = map[string]bool{
	"de": true, "fr": true, "es": true, "it": true, "pt": true, "pl": true,
	"sv": true, "nb": true, "nn": true, "no": true, "da": true, "fi": true,
	"cs": true, "sk": true, "hu": true, "ru": true, "uk": true, "ro": true,
	"bg": true, "hr": true, "sl": true, "lt": true, "lv": true, "et": true,
}

// formatterState is swapped as a whole so currency and locale always match.
type formatterState struct {
	currency domain.CurrencyCode
	locale   domain.LocaleTag
}

// CurrencyFormatter converts amounts to display strings for the active currency and back.
type CurrencyFormatter struct {
	state      atomic.Pointer[formatterState]
	logger     *slog.Logger
	onFallback func(code domain.CurrencyCode, err error)
}

// CurrencyFormatterOption configures a CurrencyFormatter.
type CurrencyFormatterOption func(*CurrencyFormatter)

// WithFormatterLogger sets the logger used for fallback warnings.
func WithFormatterLogger(logger *slog.Logger) CurrencyFormatterOption {
	return func(f *CurrencyFormatter) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithFallbackObserver registers a callback invoked every time Format falls back.
func WithFallbackObserver(fn func(code domain.CurrencyCode, err error)) CurrencyFormatterOption {
	return func(f *CurrencyFormatter) {
		f.onFallback = fn
	}
}

// NewCurrencyFormatter creates a formatter set to GBP / en-GB.
func NewCurrencyFormatter(opts ...CurrencyFormatterOption) *CurrencyFormatter {
	f := &CurrencyFormatter{logger: slog.Default()}
	for _, opt := range opts {
		opt(f)
	}
	f.state.Store(&formatterState{currency: domain.DefaultCurrency, locale: domain.DefaultLocale})
	return f
}

var _ portssvc.CurrencyFormatterSvc = (*CurrencyFormatter)(nil)

// Initialize replaces the active state from scratch. An empty code means GBP and an
// empty locale is derived from the code. Unknown codes are accepted as-is.
func (f *CurrencyFormatter) Initialize(code domain.CurrencyCode, locale domain.LocaleTag) {
	code, locale = effectiveState(code, locale)
	f.state.Store(&formatterState{currency: code, locale: locale})
}

// Format never fails: when locale-aware formatting is not possible it returns the
// table symbol followed by the amount fixed to two decimals.
func (f *CurrencyFormatter) Format(amount float64, opts *domain.FormatOptions) string {
	st := f.state.Load()
	out, err := formatLocalized(st, amount, opts)
	if err != nil {
		return f.fallback(st, amount, err)
	}
	return out
}

// FormatDecimal formats a decimal amount the same way as Format.
func (f *CurrencyFormatter) FormatDecimal(amount decimal.Decimal, opts *domain.FormatOptions) string {
	return f.Format(amount.InexactFloat64(), opts)
}

// Parse strips everything except digits, '.', ',' and '-', drops every comma and reads
// the leading number. Comma-decimal input (e.g. "1.234,50") is therefore misread as
// 1.2345; callers relying on GBP/USD style input are unaffected.
func (f *CurrencyFormatter) Parse(display string) float64 {
	cleaned := nonNumericChars.ReplaceAllString(display, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	match := leadingNumber.FindString(cleaned)
	if match == "" {
		return math.NaN()
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return math.NaN()
	}
	return value
}

// GetCurrencySymbol returns the table symbol for the active currency, or £ when unknown.
func (f *CurrencyFormatter) GetCurrencySymbol() string {
	return domain.SymbolFor(f.state.Load().currency)
}

// GetCurrentCurrency returns the active currency code.
func (f *CurrencyFormatter) GetCurrentCurrency() domain.CurrencyCode {
	return f.state.Load().currency
}

// GetCurrentLocale returns the active locale.
func (f *CurrencyFormatter) GetCurrentLocale() domain.LocaleTag {
	return f.state.Load().locale
}

// State returns the active currency and locale from a single snapshot.
func (f *CurrencyFormatter) State() (domain.CurrencyCode, domain.LocaleTag) {
	st := f.state.Load()
	return st.currency, st.locale
}

func (f *CurrencyFormatter) fallback(st *formatterState, amount float64, cause error) string {
	f.logger.Warn("Currency formatting failed, using fallback",
		slog.String("currency", string(st.currency)),
		slog.String("locale", string(st.locale)),
		slog.String("error", cause.Error()),
	)
	if f.onFallback != nil {
		f.onFallback(st.currency, cause)
	}
	return domain.SymbolFor(st.currency) + utils.FormatFixed(amount, fallbackDecimals)
}

// formatLocalized is the locale-aware formatting primitive.
func formatLocalized(st *formatterState, amount float64, opts *domain.FormatOptions) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", errNonFiniteAmount
	}
	info, ok := domain.LookupCurrency(st.currency)
	if !ok {
		return "", fmt.Errorf("%w: %q", errUnsupportedCurrency, st.currency)
	}
	tag, err := language.Parse(string(st.locale))
	if err != nil {
		return "", fmt.Errorf("invalid locale %q: %w", st.locale, err)
	}
	minDigits, maxDigits, err := resolveFractionDigits(info.Code, opts)
	if err != nil {
		return "", err
	}

	// x/text rounds ties to even; round half away from zero first.
	rounded := decimal.NewFromFloat(math.Abs(amount)).Round(int32(maxDigits))

	p := message.NewPrinter(tag)
	digits := p.Sprint(number.Decimal(rounded.InexactFloat64(),
		number.MinFractionDigits(minDigits),
		number.MaxFractionDigits(maxDigits),
	))

	var b strings.Builder
	if amount < 0 {
		b.WriteByte('-')
	}
	if symbolTrails(tag) {
		b.WriteString(digits)
		b.WriteString("\u00a0")
		b.WriteString(info.Symbol)
	} else {
		b.WriteString(info.Symbol)
		b.WriteString(digits)
	}
	return b.String(), nil
}

// resolveFractionDigits merges caller options over the currency's ISO minor units.
func resolveFractionDigits(code domain.CurrencyCode, opts *domain.FormatOptions) (int, int, error) {
	def := currencyMinorUnits(code)
	minDigits, maxDigits := def, def

	if opts != nil {
		switch {
		case opts.MinimumFractionDigits != nil && opts.MaximumFractionDigits != nil:
			minDigits, maxDigits = *opts.MinimumFractionDigits, *opts.MaximumFractionDigits
		case opts.MinimumFractionDigits != nil:
			minDigits = *opts.MinimumFractionDigits
			if maxDigits < minDigits {
				maxDigits = minDigits
			}
		case opts.MaximumFractionDigits != nil:
			maxDigits = *opts.MaximumFractionDigits
			if minDigits > maxDigits {
				minDigits = maxDigits
			}
		}
	}

	if minDigits < 0 || maxDigits < 0 || maxDigits > maxFractionDigits || minDigits > maxDigits {
		return 0, 0, fmt.Errorf("%w: min=%d max=%d", errInvalidFractionRange, minDigits, maxDigits)
	}
	return minDigits, maxDigits, nil
}

func currencyMinorUnits(code domain.CurrencyCode) int {
	unit, err := currency.ParseISO(string(code))
	if err != nil {
		return defaultFractionDigits
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale
}

func symbolTrails(tag language.Tag) bool {
	base, _ := tag.Base()
	return trailingSymbolLanguages[base.String()]
}

// effectiveState resolves omitted values the way Initialize does.
func effectiveState(code domain.CurrencyCode, locale domain.LocaleTag) (domain.CurrencyCode, domain.LocaleTag) {
	if code == "" {
		code = domain.DefaultCurrency
	}
	if locale == "" {
		locale = domain.LocaleFor(code)
	}
	return code, locale
}
