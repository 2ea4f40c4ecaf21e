// Package bank provides the static catalog of known banking institutions.
package bank

import (
	"fmt"
	"strings"

	"github.com/silentmoney/silent-money/internal/model"
)

// Registry is an immutable, ordered catalog of bank profiles. A registry is
// safe for concurrent readers; extension produces a new registry value rather
// than mutating an existing one.
type Registry struct {
	byID     map[string]int
	profiles []model.BankProfile
}

// NewRegistry returns a registry populated with the built-in bank catalog.
func NewRegistry() *Registry {
	return newRegistry(supportedBanks)
}

func newRegistry(profiles []model.BankProfile) *Registry {
	r := &Registry{
		profiles: make([]model.BankProfile, len(profiles)),
		byID:     make(map[string]int, len(profiles)),
	}
	copy(r.profiles, profiles)
	for i, p := range r.profiles {
		r.byID[p.ID] = i
	}
	return r
}

// Lookup returns the profile with the given identifier.
func (r *Registry) Lookup(id string) (model.BankProfile, bool) {
	i, ok := r.byID[id]
	if !ok {
		return model.BankProfile{}, false
	}
	return r.profiles[i], true
}

// Other returns the synthetic fallback profile.
func (r *Registry) Other() model.BankProfile {
	p, _ := r.Lookup(OtherBankID)
	return p
}

// MatchText scans the catalog in table order and returns the first profile
// whose display name or sender alias appears as a case-insensitive substring
// of the input. The input must already be lower-cased. The synthetic "other"
// profile never matches; a miss is a normal outcome, not an error.
func (r *Registry) MatchText(lowered string) (model.BankProfile, bool) {
	for _, p := range r.profiles {
		if p.ID == OtherBankID {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(p.Name)) {
			return p, true
		}
		for _, sid := range p.SenderIDs {
			if strings.Contains(lowered, strings.ToLower(sid)) {
				return p, true
			}
		}
	}
	return model.BankProfile{}, false
}

// Profiles returns a copy of the catalog in table order.
func (r *Registry) Profiles() []model.BankProfile {
	out := make([]model.BankProfile, len(r.profiles))
	copy(out, r.profiles)
	return out
}

// Len returns the number of profiles, including the synthetic one.
func (r *Registry) Len() int {
	return len(r.profiles)
}

// WithBank returns a new registry extended with the given profile. The
// profile is inserted ahead of the synthetic "other" entry so the fallback
// stays last in match order. The receiver is left untouched.
func (r *Registry) WithBank(p model.BankProfile) (*Registry, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("bank profile ID is required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return nil, fmt.Errorf("bank profile %q already registered", p.ID)
	}
	extended := make([]model.BankProfile, 0, len(r.profiles)+1)
	inserted := false
	for _, existing := range r.profiles {
		if existing.ID == OtherBankID {
			extended = append(extended, p)
			inserted = true
		}
		extended = append(extended, existing)
	}
	if !inserted {
		extended = append(extended, p)
	}
	return newRegistry(extended), nil
}
