package domain

// CurrencyCode is a three-letter ISO 4217 code such as "GBP".
type CurrencyCode string

// LocaleTag is a BCP 47 language tag such as "en-GB".
type LocaleTag string

const (
	DefaultCurrency CurrencyCode = "GBP"
	DefaultLocale   LocaleTag    = "en-GB"
	FallbackSymbol               = "£"
)

// CurrencyInfo describes how a supported currency is displayed.
type CurrencyInfo struct {
	Code   CurrencyCode `json:"code"`
	Symbol string       `json:"symbol"`
	Locale LocaleTag    `json:"locale"`
	Name   string       `json:"name"`
}

// supportedCurrencies is the static lookup table for symbols and default locales.
// Entries are never mutated after package init.
var supportedCurrencies = map[CurrencyCode]CurrencyInfo{
	"GBP": {Code: "GBP", Symbol: "£", Locale: "en-GB", Name: "British Pound"},
	"USD": {Code: "USD", Symbol: "$", Locale: "en-US", Name: "US Dollar"},
	"EUR": {Code: "EUR", Symbol: "€", Locale: "de-DE", Name: "Euro"},
	"CAD": {Code: "CAD", Symbol: "CA$", Locale: "en-CA", Name: "Canadian Dollar"},
	"AUD": {Code: "AUD", Symbol: "A$", Locale: "en-AU", Name: "Australian Dollar"},
	"NZD": {Code: "NZD", Symbol: "NZ$", Locale: "en-NZ", Name: "New Zealand Dollar"},
	"CHF": {Code: "CHF", Symbol: "CHF", Locale: "de-CH", Name: "Swiss Franc"},
	"JPY": {Code: "JPY", Symbol: "¥", Locale: "ja-JP", Name: "Japanese Yen"},
	"CNY": {Code: "CNY", Symbol: "CN¥", Locale: "zh-CN", Name: "Chinese Yuan"},
	"INR": {Code: "INR", Symbol: "₹", Locale: "en-IN", Name: "Indian Rupee"},
	"SGD": {Code: "SGD", Symbol: "S$", Locale: "en-SG", Name: "Singapore Dollar"},
	"HKD": {Code: "HKD", Symbol: "HK$", Locale: "en-HK", Name: "Hong Kong Dollar"},
	"ZAR": {Code: "ZAR", Symbol: "R", Locale: "en-ZA", Name: "South African Rand"},
	"AED": {Code: "AED", Symbol: "AED", Locale: "en-AE", Name: "UAE Dirham"},
	"SEK": {Code: "SEK", Symbol: "kr", Locale: "sv-SE", Name: "Swedish Krona"},
	"NOK": {Code: "NOK", Symbol: "kr", Locale: "nb-NO", Name: "Norwegian Krone"},
	"DKK": {Code: "DKK", Symbol: "kr.", Locale: "da-DK", Name: "Danish Krone"},
	"PLN": {Code: "PLN", Symbol: "zł", Locale: "pl-PL", Name: "Polish Zloty"},
}

// LookupCurrency returns the table entry for code, if any.
func LookupCurrency(code CurrencyCode) (CurrencyInfo, bool) {
	info, ok := supportedCurrencies[code]
	return info, ok
}

// LocaleFor returns the default locale for code, or DefaultLocale for unknown codes.
func LocaleFor(code CurrencyCode) LocaleTag {
	if info, ok := supportedCurrencies[code]; ok {
		return info.Locale
	}
	return DefaultLocale
}

// SymbolFor returns the display symbol for code, or FallbackSymbol for unknown codes.
func SymbolFor(code CurrencyCode) string {
	if info, ok := supportedCurrencies[code]; ok {
		return info.Symbol
	}
	return FallbackSymbol
}

// SupportedCurrencies returns a copy of the table, unordered.
func SupportedCurrencies() []CurrencyInfo {
	out := make([]CurrencyInfo, 0, len(supportedCurrencies))
	for _, info := range supportedCurrencies {
		out = append(out, info)
	}
	return out
}

// FormatOptions overrides display options for a single Format call.
// Nil fields keep the currency's defaults.
type FormatOptions struct {
	MinimumFractionDigits *int `json:"minimumFractionDigits,omitempty"`
	MaximumFractionDigits *int `json:"maximumFractionDigits,omitempty"`
}
