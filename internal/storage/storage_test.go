package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silentmoney/silent-money/internal/common"
	"github.com/silentmoney/silent-money/internal/model"
	"github.com/silentmoney/silent-money/internal/service"
)

// Compile-time check that the concrete store satisfies the service contract.
var _ service.Storage = (*SQLiteStorage)(nil)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func testTransaction(id string, date time.Time) *model.Transaction {
	return &model.Transaction{
		ID:           id,
		RawMessage:   "Dear Customer, Acct 1000****123 Debited with ETB 350.00. Reason: Burger King.",
		BankName:     "Commercial Bank of Ethiopia",
		Amount:       350.00,
		Currency:     "ETB",
		Direction:    model.DirectionDebit,
		Date:         date,
		Description:  "Burger King.",
		Category:     model.CategoryOther,
		AIClassified: false,
	}
}

func TestMigrate(t *testing.T) {
	store := newTestStorage(t)

	version, err := store.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)

	// Running again is a no-op.
	require.NoError(t, store.Migrate(context.Background()))
	version, err = store.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestSaveAndGetTransaction(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	txn := testTransaction("txn-1", time.Date(2024, 10, 12, 9, 30, 0, 0, time.UTC))
	require.NoError(t, store.SaveTransaction(ctx, txn))

	got, err := store.GetTransactionByID(ctx, "txn-1")
	require.NoError(t, err)
	assert.Equal(t, txn.ID, got.ID)
	assert.Equal(t, txn.RawMessage, got.RawMessage)
	assert.Equal(t, txn.BankName, got.BankName)
	assert.InDelta(t, txn.Amount, got.Amount, 0.001)
	assert.Equal(t, txn.Currency, got.Currency)
	assert.Equal(t, txn.Direction, got.Direction)
	assert.True(t, txn.Date.Equal(got.Date))
	assert.Equal(t, txn.Description, got.Description)
	assert.Equal(t, txn.Category, got.Category)
	assert.Equal(t, txn.AIClassified, got.AIClassified)
}

func TestSaveTransaction_Invalid(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*model.Transaction)
	}{
		{name: "missing id", mutate: func(txn *model.Transaction) { txn.ID = "" }},
		{name: "missing raw message", mutate: func(txn *model.Transaction) { txn.RawMessage = "" }},
		{name: "negative amount", mutate: func(txn *model.Transaction) { txn.Amount = -1 }},
		{name: "bad direction", mutate: func(txn *model.Transaction) { txn.Direction = "SIDEWAYS" }},
		{name: "bad category", mutate: func(txn *model.Transaction) { txn.Category = "Gambling" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := testTransaction("txn-invalid", time.Now().UTC())
			tt.mutate(txn)
			assert.Error(t, store.SaveTransaction(ctx, txn))
		})
	}
}

func TestListTransactions_NewestFirst(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	base := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"txn-old", "txn-mid", "txn-new"} {
		txn := testTransaction(id, base.AddDate(0, 0, i))
		require.NoError(t, store.SaveTransaction(ctx, txn))
	}

	transactions, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 3)
	assert.Equal(t, "txn-new", transactions[0].ID)
	assert.Equal(t, "txn-mid", transactions[1].ID)
	assert.Equal(t, "txn-old", transactions[2].ID)
}

func TestListTransactions_Empty(t *testing.T) {
	store := newTestStorage(t)

	transactions, err := store.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestUpdateTransaction(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	txn := testTransaction("txn-1", time.Date(2024, 10, 12, 9, 30, 0, 0, time.UTC))
	require.NoError(t, store.SaveTransaction(ctx, txn))

	txn.Category = model.CategoryFood
	txn.AIClassified = true
	require.NoError(t, store.UpdateTransaction(ctx, txn))

	got, err := store.GetTransactionByID(ctx, "txn-1")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryFood, got.Category)
	assert.True(t, got.AIClassified)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	store := newTestStorage(t)

	txn := testTransaction("txn-missing", time.Now().UTC())
	err := store.UpdateTransaction(context.Background(), txn)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetTransactionByID_NotFound(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.GetTransactionByID(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSettings_DefaultsWhenUnset(t *testing.T) {
	store := newTestStorage(t)

	settings, err := store.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestSettings_Roundtrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	want := &model.Settings{
		SelectedBanks:  []string{"cbe", "dashen"},
		CurrencySymbol: "ETB",
		Onboarded:      true,
	}
	require.NoError(t, store.SaveSettings(ctx, want))

	got, err := store.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Upsert replaces the single row.
	want.SelectedBanks = []string{"awash"}
	want.Onboarded = false
	require.NoError(t, store.SaveSettings(ctx, want))

	got, err = store.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
