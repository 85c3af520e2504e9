package utils_test

import (
	"math"
	"testing"

	"github.com/SscSPs/backoffice_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		places int32
		want   string
	}{
		{name: "whole number padded", amount: 9, places: 2, want: "9.00"},
		{name: "zero", amount: 0, places: 2, want: "0.00"},
		{name: "negative", amount: -5, places: 2, want: "-5.00"},
		{name: "rounds up", amount: 12.3456, places: 2, want: "12.35"},
		{name: "no decimals", amount: 12.3456, places: 0, want: "12"},
		{name: "binary value below tie rounds down", amount: 1.005, places: 2, want: "1.00"},
		{name: "exact tie rounds up", amount: 0.125, places: 2, want: "0.13"},
		{name: "negative exact tie", amount: -0.125, places: 2, want: "-0.13"},
		{name: "half rounds up to whole", amount: 2.5, places: 0, want: "3"},
		{name: "tiny negative keeps sign", amount: -0.001, places: 2, want: "-0.00"},
		{name: "large amount", amount: 1234567.891, places: 2, want: "1234567.89"},
		{name: "nan", amount: math.NaN(), places: 2, want: "NaN"},
		{name: "positive infinity", amount: math.Inf(1), places: 2, want: "Infinity"},
		{name: "negative infinity", amount: math.Inf(-1), places: 2, want: "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatFixed(tt.amount, tt.places))
		})
	}
}

func TestFormatDecimalFixed(t *testing.T) {
	assert.Equal(t, "1234.50", utils.FormatDecimalFixed(decimal.RequireFromString("1234.5"), 2))
	assert.Equal(t, "12.3456789012345678", utils.FormatDecimalFixed(decimal.RequireFromString("12.3456789012345678"), 16))
}
