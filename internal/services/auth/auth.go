package auth

import (
	"errors"

	"lighthouseservers/ptprov/internal/util"
)

const ServiceName = "ptprov"

// PanelCredential is the keychain entry holding the panel application API key.
const PanelCredential = "pterodactyl"

var ErrTokenNotFound = errors.New("auth token not found")

type Store interface {
	SetToken(provider string, token string) error
	GetToken(provider string) (string, error)
	DeleteToken(provider string) error
}

var storeOverride Store

// DefaultStore returns the standard auth store backed by the OS keychain,
// or the store installed with SetDefaultStore.
func DefaultStore() Store {
	if storeOverride != nil {
		return storeOverride
	}
	return NewKeyringStore(ServiceName)
}

// SetDefaultStore replaces the store returned by DefaultStore. Intended for
// testing.
func SetDefaultStore(s Store) { storeOverride = s }

// ResetDefaultStore reverts DefaultStore to the OS keychain.
func ResetDefaultStore() { storeOverride = nil }

// NormalizeProvider normalizes a credential name for consistent key lookup.
func NormalizeProvider(provider string) string {
	return util.NormalizeKey(provider)
}
