package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/silentmoney/silent-money/internal/bank"
	"github.com/silentmoney/silent-money/internal/config"
	"github.com/silentmoney/silent-money/internal/engine"
	"github.com/silentmoney/silent-money/internal/llm"
	"github.com/silentmoney/silent-money/internal/storage"
)

// openStorage opens the configured database and brings its schema up to
// date. Callers own the returned storage and must Close it.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := config.ExpandPath(viper.GetString("database.path"))

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", dbPath, err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// newEngine builds the extraction engine, attaching the LLM categorizer when
// an API key is configured. Without a key, parsing still works and default
// categories stand.
func newEngine(registry *bank.Registry) *engine.Engine {
	opts := []engine.Option{}

	apiKey := viper.GetString("llm.api_key")
	if apiKey != "" {
		categorizer, err := llm.NewCategorizer(llm.Config{
			Provider:   viper.GetString("llm.provider"),
			APIKey:     apiKey,
			Model:      viper.GetString("llm.model"),
			MaxRetries: viper.GetInt("llm.max_retries"),
			CacheTTL:   viper.GetDuration("llm.cache_ttl"),
		}, slog.Default())
		if err != nil {
			slog.Warn("Categorizer unavailable, transactions keep default categories", "error", err)
		} else {
			opts = append(opts, engine.WithClassifier(categorizer))
		}
	} else {
		slog.Debug("No LLM API key configured, skipping AI classification")
	}

	return engine.New(registry, opts...)
}

// formatAmount renders an amount with its currency code.
func formatAmount(amount float64, currency string) string {
	return fmt.Sprintf("%s %.2f", currency, amount)
}

// formatDate renders a timestamp for table output.
func formatDate(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
