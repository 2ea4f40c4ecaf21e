package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/silentmoney/silent-money/internal/bank"
	"github.com/silentmoney/silent-money/internal/cli"
	"github.com/silentmoney/silent-money/internal/common"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a backlog of SMS messages from a file",
		Long: `Import bank SMS messages from a text file, one message per line.

Lines that don't look like transactions (OTP codes, promos, balance
reminders) are skipped and counted, not treated as errors.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Parse without saving")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	messages, err := readMessages(args[0])
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return common.NewUserError("no messages found in "+args[0], nil)
	}

	eng := newEngine(bank.NewRegistry())

	store, err := openStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	bar := progressbar.NewOptions(len(messages),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[green][bold]Parsing messages...[reset]"),
	)

	var saved, skipped, failed int
	for _, text := range messages {
		_ = bar.Add(1)

		txn, err := eng.Process(cmd.Context(), text, time.Time{})
		if errors.Is(err, common.ErrUnparseable) {
			skipped++
			continue
		}
		if err != nil {
			return err
		}

		if dryRun {
			saved++
			continue
		}

		if err := store.SaveTransaction(cmd.Context(), txn); err != nil {
			common.LogError(err, "failed to save transaction", common.Fields{
				"transaction_id": txn.ID,
			})
			failed++
			continue
		}
		saved++
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	summary := fmt.Sprintf("%d transactions imported, %d non-transaction messages skipped", saved, skipped)
	if dryRun {
		summary += " (dry run)"
	}
	if failed > 0 {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("%s, %d failed to save", summary, failed)))
		return nil
	}
	fmt.Println(cli.FormatSuccess(summary))
	return nil
}

func readMessages(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var messages []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			messages = append(messages, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return messages, nil
}
