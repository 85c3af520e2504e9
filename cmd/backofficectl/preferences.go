package main

import (
	"encoding/json"
	"fmt"

	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/platform/seed"
	"github.com/spf13/cobra"
)

func newPreferencesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "preferences",
		Aliases: []string{"prefs"},
		Short:   "Inspect or seed the stored currency preferences",
	}
	cmd.AddCommand(newPreferencesShowCmd(a), newPreferencesSeedCmd(a))
	return cmd
}

func newPreferencesShowCmd(a *app) *cobra.Command {
	var historyLimit int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective preferences as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withPreferences(cmd.Context(), func(svc portssvc.PreferencesSvcFacade) error {
				prefs, err := svc.GetPreferences(cmd.Context())
				if err != nil {
					return err
				}
				out := struct {
					Preferences dto.PreferencesResponse         `json:"preferences"`
					History     []dto.PreferencesChangeResponse `json:"history,omitempty"`
				}{Preferences: dto.ToPreferencesResponse(prefs)}

				if historyLimit > 0 {
					changes, err := svc.ListPreferencesHistory(cmd.Context(), historyLimit)
					if err != nil {
						return err
					}
					out.History = dto.ToListPreferencesChangeResponse(changes)
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			})
		},
	}
	cmd.Flags().IntVar(&historyLimit, "history", 0, "also print this many history entries")
	return cmd
}

func newPreferencesSeedCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Store preferences from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := seed.LoadPreferencesFile(file)
			if err != nil {
				return err
			}
			return a.withPreferences(cmd.Context(), func(svc portssvc.PreferencesSvcFacade) error {
				prefs, err := svc.UpdatePreferences(cmd.Context(), doc.Preferences, doc.UpdatedBy)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "stored %s (%s)\n", prefs.Currency, prefs.Locale)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the preferences YAML file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
