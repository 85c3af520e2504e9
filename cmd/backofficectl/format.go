package main

import (
	"fmt"
	"math"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type formatFlags struct {
	currency    string
	locale      string
	minFraction int
	maxFraction int
}

func (f formatFlags) formatter(a *app) *services.CurrencyFormatter {
	formatter := services.NewCurrencyFormatter(services.WithFormatterLogger(a.logger))
	formatter.Initialize(domain.CurrencyCode(f.currency), domain.LocaleTag(f.locale))
	return formatter
}

func newFormatCmd(a *app) *cobra.Command {
	var flags formatFlags

	cmd := &cobra.Command{
		Use:     "format <amount>",
		Short:   "Format an amount as currency text",
		Example: "  backofficectl format 1234.5 --currency USD\n  backofficectl format -- -5 --max-fraction 0",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			var opts *domain.FormatOptions
			if cmd.Flags().Changed("min-fraction") || cmd.Flags().Changed("max-fraction") {
				opts = &domain.FormatOptions{}
				if cmd.Flags().Changed("min-fraction") {
					opts.MinimumFractionDigits = &flags.minFraction
				}
				if cmd.Flags().Changed("max-fraction") {
					opts.MaximumFractionDigits = &flags.maxFraction
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), flags.formatter(a).FormatDecimal(amount, opts))
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags.currency, "currency", "c", string(domain.DefaultCurrency), "ISO 4217 currency code")
	cmd.Flags().StringVarP(&flags.locale, "locale", "l", "", "BCP 47 locale, derived from the currency when empty")
	cmd.Flags().IntVar(&flags.minFraction, "min-fraction", 0, "minimum fraction digits")
	cmd.Flags().IntVar(&flags.maxFraction, "max-fraction", 0, "maximum fraction digits")
	return cmd
}

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Extract the numeric value from currency text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := services.NewCurrencyFormatter(services.WithFormatterLogger(a.logger)).Parse(args[0])
			if math.IsNaN(value) {
				fmt.Fprintln(cmd.OutOrStdout(), "NaN")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), decimal.NewFromFloat(value).String())
			return nil
		},
	}
}
