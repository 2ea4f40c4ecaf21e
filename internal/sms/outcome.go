// Package sms turns raw bank SMS notification text into structured parse
// outcomes. Recognition is layered: specialized parsers for banks whose
// message formats have been modeled, then a conservative generic fallback.
// All parsing is pure and deterministic for a given input and timestamp.
package sms

import (
	"time"

	"github.com/silentmoney/silent-money/internal/model"
)

// Outcome is the intermediate result of a single recognizer attempt. The
// bank identifier is provisional: dispatch refines it against the full
// registry before the outcome leaves this package. A nil *Outcome is the
// explicit "no result" value.
type Outcome struct {
	Date        time.Time
	BankID      string
	Description string
	Direction   model.Direction
	Amount      float64
}
