package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/silentmoney/silent-money/internal/bank"
	"github.com/silentmoney/silent-money/internal/cli"
	"github.com/silentmoney/silent-money/internal/common"
)

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [message]",
		Short: "Parse a single bank SMS into a transaction",
		Long: `Parse one SMS body into a structured transaction and store it.

The message can be passed as an argument or piped on stdin:

  silentmoney parse "Dear Customer, Acct 1000****123 Debited with ETB 350.00. Reason: Burger King."
  pbpaste | silentmoney parse`,
		Args: cobra.MaximumNArgs(1),
		RunE: runParse,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Parse without saving")

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	text, err := messageFromArgsOrStdin(args)
	if err != nil {
		return err
	}

	eng := newEngine(bank.NewRegistry())

	txn, err := eng.Process(cmd.Context(), text, time.Time{})
	if errors.Is(err, common.ErrUnparseable) {
		fmt.Println(cli.FormatWarning("No transaction found in this message."))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatTitle(txn.BankName))
	fmt.Printf("  %s  %s\n", cli.FormatDirection(txn.Direction), formatAmount(txn.Amount, txn.Currency))
	fmt.Printf("  %s %s\n", cli.SubtleStyle.Render("Description:"), txn.Description)
	category := string(txn.Category)
	if txn.AIClassified {
		category += " " + cli.RobotIcon
	}
	fmt.Printf("  %s %s\n", cli.SubtleStyle.Render("Category:"), category)

	if dryRun {
		fmt.Println(cli.SubtleStyle.Render("Dry run, nothing saved."))
		return nil
	}

	store, err := openStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveTransaction(cmd.Context(), txn); err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	fmt.Println(cli.FormatSuccess("Transaction saved: " + txn.ID))
	return nil
}

func messageFromArgsOrStdin(args []string) (string, error) {
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read message from stdin: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", common.NewUserError("no message provided", nil)
	}
	return text, nil
}
