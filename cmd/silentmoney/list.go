package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/silentmoney/silent-money/internal/cli"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored transactions, newest first",
		RunE:  runList,
	}

	cmd.Flags().IntP("limit", "n", 20, "Maximum number of transactions to show (0 for all)")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := openStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	transactions, err := store.ListTransactions(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}

	if len(transactions) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No transactions yet."))
		return nil
	}

	if limit > 0 && len(transactions) > limit {
		transactions = transactions[:limit]
	}

	header := fmt.Sprintf("%-16s  %-9s  %-14s  %-28s  %-10s  %s",
		"DATE", "DIRECTION", "AMOUNT", "BANK", "CATEGORY", "DESCRIPTION")
	fmt.Println(cli.TableHeaderStyle.Render(header))

	for _, txn := range transactions {
		category := string(txn.Category)
		if txn.AIClassified {
			category += " " + cli.RobotIcon
		}
		fmt.Printf("%-16s  %-9s  %-14s  %-28s  %-10s  %s\n",
			formatDate(txn.Date),
			cli.FormatDirection(txn.Direction),
			formatAmount(txn.Amount, txn.Currency),
			truncate(txn.BankName, 28),
			category,
			truncate(txn.Description, 40),
		)
	}

	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d transaction(s)", len(transactions))))
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
