package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/silentmoney/silent-money/internal/bank"
	"github.com/silentmoney/silent-money/internal/cli"
	"github.com/silentmoney/silent-money/internal/common"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or update application settings",
		Long: `Show the stored application settings. Pass flags to update them:

  silentmoney settings --banks cbe,dashen --currency ETB`,
		RunE: runSettings,
	}

	cmd.Flags().String("banks", "", "Comma-separated bank identifiers to track")
	cmd.Flags().String("currency", "", "Display currency symbol")

	return cmd
}

func runSettings(cmd *cobra.Command, _ []string) error {
	store, err := openStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	settings, err := store.GetSettings(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	banksFlag, _ := cmd.Flags().GetString("banks")
	currencyFlag, _ := cmd.Flags().GetString("currency")

	changed := false
	if banksFlag != "" {
		selected, err := splitBankIDs(banksFlag)
		if err != nil {
			return err
		}
		settings.SelectedBanks = selected
		settings.Onboarded = true
		changed = true
	}
	if currencyFlag != "" {
		settings.CurrencySymbol = currencyFlag
		changed = true
	}

	if changed {
		if err := store.SaveSettings(cmd.Context(), settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println(cli.FormatSuccess("Settings updated"))
	}

	banks := "all"
	if len(settings.SelectedBanks) > 0 {
		banks = strings.Join(settings.SelectedBanks, ", ")
	}
	fmt.Printf("%s %s\n", cli.SubtleStyle.Render("Tracked banks:"), banks)
	fmt.Printf("%s %s\n", cli.SubtleStyle.Render("Currency:"), settings.CurrencySymbol)
	fmt.Printf("%s %t\n", cli.SubtleStyle.Render("Onboarded:"), settings.Onboarded)

	return nil
}

// splitBankIDs validates a comma-separated list of bank identifiers against
// the built-in catalog.
func splitBankIDs(raw string) ([]string, error) {
	registry := bank.NewRegistry()

	var ids []string
	for _, part := range strings.Split(raw, ",") {
		id := strings.TrimSpace(strings.ToLower(part))
		if id == "" {
			continue
		}
		if _, ok := registry.Lookup(id); !ok {
			return nil, common.NewUserError(
				fmt.Sprintf("unknown bank %q, run 'silentmoney banks' for the catalog", id), nil)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, common.NewUserError("no bank identifiers given", nil)
	}
	return ids, nil
}
