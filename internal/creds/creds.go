// Package creds holds the single opaque authorization token every remote
// call depends on.
package creds

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/arlopurcell/ledgy/internal/prefs"
)

// ErrAuthRequired signals that no credential is stored. Callers must
// prompt for a login instead of attempting the network call.
var ErrAuthRequired = errors.New("authentication required, run 'ledgy login'")

type Store struct {
	prefs *prefs.Store
}

func NewStore(p *prefs.Store) *Store {
	return &Store{prefs: p}
}

// Get returns the stored authorization header value, or ErrAuthRequired
// when none has been saved.
func (s *Store) Get() (string, error) {
	token := s.prefs.GetString(prefs.KeyAuthorization)
	if token == "" {
		return "", ErrAuthRequired
	}
	return token, nil
}

// Set persists the token. The caller is expected to follow with a full
// resync of the account registry and current ledger.
func (s *Store) Set(token string) error {
	if token == "" {
		return fmt.Errorf("credential token must not be empty")
	}
	return s.prefs.Set(prefs.KeyAuthorization, token)
}

// BasicToken builds the authorization header value for a username and
// password pair.
func BasicToken(username, password string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return "Basic " + encoded
}
