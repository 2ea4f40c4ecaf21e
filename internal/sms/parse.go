package sms

import (
	"strings"
	"time"

	"github.com/silentmoney/silent-money/internal/bank"
)

// recognizer pairs a specialized parser with the lowered name hints that
// promote it to the front of the dispatch order.
type recognizer struct {
	parse func(string, time.Time) *Outcome
	hints []string
}

// recognizers lists the specialized parsers in fixed priority order. Adding
// support for a new bank format is a pure addition to this table.
var recognizers = []recognizer{
	{hints: []string{"cbe", "commercial bank"}, parse: parseCBE},
	{hints: []string{"dashen"}, parse: parseDashen},
	{hints: []string{"awash"}, parse: parseAwash},
}

// Parse runs the dispatch pipeline over a raw SMS body. If the text names a
// bank with a modeled parser, that parser is tried first; otherwise every
// specialized parser is attempted in priority order, then the generic
// fallback. The first non-nil outcome wins and its provisional bank
// identifier is refined against the full registry. A nil return is the
// normal "unparseable" result, never an error.
func Parse(text string, receivedAt time.Time, registry *bank.Registry) *Outcome {
	lowered := strings.ToLower(text)

	var outcome *Outcome
	for _, r := range recognizers {
		if containsAny(lowered, r.hints) {
			outcome = r.parse(text, receivedAt)
			break
		}
	}

	if outcome == nil {
		for _, r := range recognizers {
			if outcome = r.parse(text, receivedAt); outcome != nil {
				break
			}
		}
	}
	if outcome == nil {
		outcome = parseGeneric(text, receivedAt)
	}
	if outcome == nil {
		return nil
	}

	refineBank(outcome, lowered, registry)
	return outcome
}

// refineBank re-scans the text against the full registry and overwrites the
// outcome's provisional bank identifier with any unambiguous textual match.
// This corrects generic outcomes that name a known institution and
// specialized outcomes where the text cites a different bank than the parser
// that happened to match. The pass is idempotent: the matched profile
// depends only on the text.
func refineBank(o *Outcome, lowered string, registry *bank.Registry) {
	if profile, ok := registry.MatchText(lowered); ok {
		o.BankID = profile.ID
	}
}

func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}
