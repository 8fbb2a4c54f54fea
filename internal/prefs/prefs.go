// Package prefs is the local preference store: a thin persistence wrapper
// around the viper config file holding the credential token, the cached
// account list, the current-account selection and per-account colors.
package prefs

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/arlopurcell/ledgy/internal/constants"
)

const (
	KeyAuthorization  = "authorization"
	KeyAccounts       = "accounts"
	KeyCurrentAccount = "current_account"
)

type Store struct {
	v *viper.Viper
}

func New(v *viper.Viper) *Store {
	return &Store{v: v}
}

// NewInMemory returns a store with no backing file, used by tests and as a
// fallback when no config file can be written.
func NewInMemory() *Store {
	return &Store{v: viper.New()}
}

func (s *Store) GetString(key string) string {
	return s.v.GetString(key)
}

func (s *Store) GetStringSlice(key string) []string {
	return s.v.GetStringSlice(key)
}

// Set stores a value and persists the config file when one is in use.
func (s *Store) Set(key string, value any) error {
	s.v.Set(key, value)
	if s.v.ConfigFileUsed() == "" {
		return nil
	}
	if err := s.v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

func colorKey(account, attribute string) string {
	return fmt.Sprintf("colors.%s.%s", account, attribute)
}

// Color returns the stored hex color for an account attribute, falling
// back to the stock default.
func (s *Store) Color(account, attribute string) string {
	if c := s.v.GetString(colorKey(account, attribute)); c != "" {
		return c
	}
	return constants.DefaultColors[attribute]
}

func (s *Store) SetColor(account, attribute, hex string) error {
	if _, ok := constants.DefaultColors[attribute]; !ok {
		return fmt.Errorf("unknown color attribute %q", attribute)
	}
	return s.Set(colorKey(account, attribute), hex)
}

// ResetColors restores the stock colors for every attribute of an account.
func (s *Store) ResetColors(account string) error {
	for _, attr := range constants.ColorAttributes {
		if err := s.Set(colorKey(account, attr), constants.DefaultColors[attr]); err != nil {
			return err
		}
	}
	return nil
}
