package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/silentmoney/silent-money/internal/cli"
	"github.com/silentmoney/silent-money/internal/common"
	"github.com/silentmoney/silent-money/internal/model"
)

func setCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-category <transaction-id> <category>",
		Short: "Correct the category of a stored transaction",
		Long: fmt.Sprintf(`Override a transaction's category with your own judgment.

Valid categories: %s`, categoryNames()),
		Args: cobra.ExactArgs(2),
		RunE: runSetCategory,
	}
}

func runSetCategory(cmd *cobra.Command, args []string) error {
	id := args[0]

	category, ok := model.ParseCategory(args[1])
	if !ok {
		return common.NewUserError(
			fmt.Sprintf("unknown category %q, expected one of: %s", args[1], categoryNames()), nil)
	}

	store, err := openStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	txn, err := store.GetTransactionByID(cmd.Context(), id)
	if err != nil {
		return err
	}

	// A manual correction replaces any AI decision.
	txn.Category = category
	txn.AIClassified = false

	if err := store.UpdateTransaction(cmd.Context(), txn); err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s is now categorized as %s", id, category)))
	return nil
}

func categoryNames() string {
	names := make([]string, 0, len(model.Categories()))
	for _, category := range model.Categories() {
		names = append(names, string(category))
	}
	return strings.Join(names, ", ")
}
