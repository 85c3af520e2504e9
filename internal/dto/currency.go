package dto

import (
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrentCurrencyResponse describes the formatter's active state.
type CurrentCurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Locale       string `json:"locale"`
	Symbol       string `json:"symbol"`
}

// SupportedCurrencyResponse is one entry of the static currency table.
type SupportedCurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Locale       string `json:"locale"`
	Name         string `json:"name"`
}

// FormatAmountRequest defines an amount to render with the active currency.
type FormatAmountRequest struct {
	Amount                *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number"`
	MinimumFractionDigits *int             `json:"minimumFractionDigits,omitempty"`
	MaximumFractionDigits *int             `json:"maximumFractionDigits,omitempty"`
}

// FormatAmountResponse holds the rendered amount.
type FormatAmountResponse struct {
	Formatted string `json:"formatted"`
}

// ParseAmountRequest defines a displayed string to read back into a number.
type ParseAmountRequest struct {
	Value string `json:"value"`
}

// ParseAmountResponse holds the parsed amount. Amount is null when IsNaN is true.
type ParseAmountResponse struct {
	Amount *float64 `json:"amount"`
	IsNaN  bool     `json:"isNaN"`
}

// Options converts the request's display overrides to domain options.
func (r FormatAmountRequest) Options() *domain.FormatOptions {
	if r.MinimumFractionDigits == nil && r.MaximumFractionDigits == nil {
		return nil
	}
	return &domain.FormatOptions{
		MinimumFractionDigits: r.MinimumFractionDigits,
		MaximumFractionDigits: r.MaximumFractionDigits,
	}
}

// ToSupportedCurrencyResponse converts a table entry to its DTO
func ToSupportedCurrencyResponse(info domain.CurrencyInfo) SupportedCurrencyResponse {
	return SupportedCurrencyResponse{
		CurrencyCode: string(info.Code),
		Symbol:       info.Symbol,
		Locale:       string(info.Locale),
		Name:         info.Name,
	}
}
