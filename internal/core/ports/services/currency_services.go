package services

import (
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyDisplaySvc defines the read side of the currency formatter.
// All methods are safe for concurrent use and never block.
type CurrencyDisplaySvc interface {
	// Format renders amount with the active currency symbol and locale conventions.
	Format(amount float64, opts *domain.FormatOptions) string

	// FormatDecimal is Format for callers holding decimal amounts.
	FormatDecimal(amount decimal.Decimal, opts *domain.FormatOptions) string

	// Parse converts a displayed amount back to a number. NaN means no number was found.
	Parse(display string) float64

	GetCurrencySymbol() string
	GetCurrentCurrency() domain.CurrencyCode
	GetCurrentLocale() domain.LocaleTag

	// State returns the active currency and locale as one consistent pair.
	State() (domain.CurrencyCode, domain.LocaleTag)
}

// CurrencyInitializerSvc defines the write side of the currency formatter.
type CurrencyInitializerSvc interface {
	// Initialize replaces the active currency and locale. Empty values mean "omitted".
	Initialize(code domain.CurrencyCode, locale domain.LocaleTag)
}

// CurrencyFormatterSvc combines all currency formatter interfaces
type CurrencyFormatterSvc interface {
	CurrencyDisplaySvc
	CurrencyInitializerSvc
}
