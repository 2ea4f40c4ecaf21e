package model

// BankProfile identifies a banking institution whose SMS notifications the
// engine understands. Profiles are defined once at startup and never mutated.
type BankProfile struct {
	// ID is the stable short identifier used as the registry key.
	ID string
	// Name is the institution's display name.
	Name string
	// SenderIDs are the SMS sender identifiers the bank is known to use.
	SenderIDs []string
	// Currency is the ISO 4217 code for the bank's accounts.
	Currency string
}
