package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/silentmoney/silent-money/internal/bank"
	"github.com/silentmoney/silent-money/internal/cli"
)

func banksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "List the supported banking institutions",
		RunE:  runBanks,
	}
}

func runBanks(_ *cobra.Command, _ []string) error {
	registry := bank.NewRegistry()

	fmt.Println(cli.FormatTitle("Supported banks"))

	header := fmt.Sprintf("%-10s  %-30s  %-8s  %s", "ID", "NAME", "CURRENCY", "SENDER IDS")
	fmt.Println(cli.TableHeaderStyle.Render(header))

	for _, profile := range registry.Profiles() {
		if profile.ID == bank.OtherBankID {
			continue
		}
		fmt.Printf("%-10s  %-30s  %-8s  %s\n",
			profile.ID,
			profile.Name,
			profile.Currency,
			strings.Join(profile.SenderIDs, ", "),
		)
	}

	return nil
}
