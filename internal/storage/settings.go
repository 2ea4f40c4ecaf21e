package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/silentmoney/silent-money/internal/model"
)

// GetSettings returns the persisted application settings, or the defaults
// when nothing has been saved yet.
func (s *SQLiteStorage) GetSettings(ctx context.Context) (*model.Settings, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var onboarded bool
	var selectedBanks, currencySymbol string

	err := s.db.QueryRowContext(ctx, `
		SELECT onboarded, selected_banks, currency_symbol FROM settings WHERE id = 1
	`).Scan(&onboarded, &selectedBanks, &currencySymbol)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	settings := &model.Settings{
		Onboarded:      onboarded,
		CurrencySymbol: currencySymbol,
		SelectedBanks:  []string{},
	}
	if selectedBanks != "" {
		if err := json.Unmarshal([]byte(selectedBanks), &settings.SelectedBanks); err != nil {
			return nil, fmt.Errorf("failed to decode selected banks: %w", err)
		}
	}

	return settings, nil
}

// SaveSettings upserts the single settings row.
func (s *SQLiteStorage) SaveSettings(ctx context.Context, settings *model.Settings) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if settings == nil {
		return fmt.Errorf("settings cannot be nil")
	}

	selectedBanks, err := json.Marshal(settings.SelectedBanks)
	if err != nil {
		return fmt.Errorf("failed to encode selected banks: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO settings (id, onboarded, selected_banks, currency_symbol, updated_at)
		VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			onboarded = excluded.onboarded,
			selected_banks = excluded.selected_banks,
			currency_symbol = excluded.currency_symbol,
			updated_at = CURRENT_TIMESTAMP
	`, settings.Onboarded, string(selectedBanks), settings.CurrencySymbol)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}
