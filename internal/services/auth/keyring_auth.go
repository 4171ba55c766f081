package auth

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// KeyringStore keeps credentials in the OS keychain under a single
// service name, one entry per normalized credential name.
type KeyringStore struct {
	serviceName string
}

func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

func (k *KeyringStore) SetToken(name string, token string) error {
	return keyring.Set(k.serviceName, NormalizeProvider(name), token)
}

func (k *KeyringStore) GetToken(name string) (string, error) {
	token, err := keyring.Get(k.serviceName, NormalizeProvider(name))
	switch {
	case err == nil:
		return token, nil
	case errors.Is(err, keyring.ErrNotFound):
		return "", ErrTokenNotFound
	default:
		return "", err
	}
}

func (k *KeyringStore) DeleteToken(name string) error {
	err := keyring.Delete(k.serviceName, NormalizeProvider(name))
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrTokenNotFound
	}
	return err
}
