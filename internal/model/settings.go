package model

// Settings holds the user-level application state persisted alongside
// transactions.
type Settings struct {
	SelectedBanks  []string
	CurrencySymbol string
	Onboarded      bool
}

// DefaultSettings returns the state of a fresh installation.
func DefaultSettings() *Settings {
	return &Settings{
		SelectedBanks:  []string{},
		CurrencySymbol: "ETB",
		Onboarded:      false,
	}
}
