// Package registry tracks which accounts exist and which one is current.
// The list is a local cache of the server's ledger list; the server order
// is stored reversed so the most recently created account displays first.
package registry

import (
	"fmt"

	"github.com/arlopurcell/ledgy/internal/constants"
	"github.com/arlopurcell/ledgy/internal/prefs"
)

type Registry struct {
	prefs    *prefs.Store
	accounts []string
	current  string
}

// New loads the registry from the preference store, seeding the default
// account pair on first run so the client is usable before any sync.
func New(p *prefs.Store) (*Registry, error) {
	r := &Registry{prefs: p}

	r.accounts = p.GetStringSlice(prefs.KeyAccounts)
	if len(r.accounts) == 0 {
		r.accounts = append([]string(nil), constants.DefaultAccounts...)
		if err := r.persist(); err != nil {
			return nil, err
		}
	}

	r.current = p.GetString(prefs.KeyCurrentAccount)
	if !r.contains(r.current) {
		r.current = r.accounts[0]
	}

	return r, nil
}

// Accounts returns the account names in display order.
func (r *Registry) Accounts() []string {
	return append([]string(nil), r.accounts...)
}

func (r *Registry) Current() string {
	return r.current
}

// SetCurrent moves the current-account pointer and nothing else. Callers
// are responsible for refreshing the ledger and cron caches afterwards.
func (r *Registry) SetCurrent(name string) error {
	if !r.contains(name) {
		return fmt.Errorf("unknown account %q", name)
	}
	r.current = name
	return r.prefs.Set(prefs.KeyCurrentAccount, name)
}

// Replace swaps in the authoritative server list, reversed so the newest
// ledger comes first, and moves the current pointer to the first entry.
func (r *Registry) Replace(serverOrder []string) error {
	if len(serverOrder) == 0 {
		return fmt.Errorf("server returned no accounts")
	}

	reversed := make([]string, len(serverOrder))
	for i, name := range serverOrder {
		reversed[len(serverOrder)-1-i] = name
	}

	r.accounts = reversed
	r.current = reversed[0]
	return r.persist()
}

func (r *Registry) contains(name string) bool {
	for _, a := range r.accounts {
		if a == name {
			return true
		}
	}
	return false
}

func (r *Registry) persist() error {
	if err := r.prefs.Set(prefs.KeyAccounts, r.accounts); err != nil {
		return err
	}
	if r.current != "" {
		return r.prefs.Set(prefs.KeyCurrentAccount, r.current)
	}
	return nil
}
