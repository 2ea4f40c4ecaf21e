package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silentmoney/silent-money/internal/model"
)

func TestRegistry_Lookup(t *testing.T) {
	registry := NewRegistry()

	profile, ok := registry.Lookup("cbe")
	require.True(t, ok)
	assert.Equal(t, "Commercial Bank of Ethiopia", profile.Name)
	assert.Equal(t, "ETB", profile.Currency)

	_, ok = registry.Lookup("nonexistent")
	assert.False(t, ok)
}

func TestRegistry_Other(t *testing.T) {
	registry := NewRegistry()

	other := registry.Other()
	assert.Equal(t, OtherBankID, other.ID)
	assert.Equal(t, "Other Bank", other.Name)
	assert.Empty(t, other.SenderIDs)
}

func TestRegistry_MatchText(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		name   string
		text   string
		wantID string
		found  bool
	}{
		{name: "display name", text: "zemen bank: you have paid etb 450", wantID: "zemen", found: true},
		{name: "sender alias", text: "from cbeth mobile banking", wantID: "cbe", found: true},
		{name: "alias case folded", text: "message from coopbank today", wantID: "coop", found: true},
		{name: "first match wins in table order", text: "dashen and awash both appear", wantID: "dashen", found: true},
		{name: "no bank named", text: "your otp is 884213", found: false},
		{name: "other profile never matches", text: "some other bank somewhere", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, found := registry.MatchText(tt.text)
			require.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.wantID, profile.ID)
			}
		})
	}
}

func TestRegistry_WithBank(t *testing.T) {
	registry := NewRegistry()
	originalLen := registry.Len()

	extended, err := registry.WithBank(model.BankProfile{
		ID:        "sacco",
		Name:      "Metema Sacco",
		SenderIDs: []string{"SACCO"},
		Currency:  "ETB",
	})
	require.NoError(t, err)

	// The original registry is untouched.
	assert.Equal(t, originalLen, registry.Len())
	_, ok := registry.Lookup("sacco")
	assert.False(t, ok)

	// The extension is visible and matchable in the new value.
	assert.Equal(t, originalLen+1, extended.Len())
	profile, ok := extended.Lookup("sacco")
	require.True(t, ok)
	assert.Equal(t, "Metema Sacco", profile.Name)

	matched, found := extended.MatchText("alert from sacco branch")
	require.True(t, found)
	assert.Equal(t, "sacco", matched.ID)

	// The synthetic profile stays last.
	profiles := extended.Profiles()
	assert.Equal(t, OtherBankID, profiles[len(profiles)-1].ID)
}

func TestRegistry_WithBank_Duplicate(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.WithBank(model.BankProfile{ID: "cbe", Name: "Duplicate"})
	require.Error(t, err)

	_, err = registry.WithBank(model.BankProfile{Name: "No ID"})
	require.Error(t, err)
}
