// Package session holds the two pieces of client-side session state: the
// persisted auth token and the session-scoped set of handled invite codes.
package session

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"habitlink/internal/constants"
)

var (
	// ErrNoToken is returned when no session token is stored.
	ErrNoToken = errors.New("no session token stored")
	// ErrKeyringUnavailable is returned when the OS keyring cannot be reached.
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// TokenStore persists the session token across launches.
type TokenStore interface {
	Token() (string, error)
	SetToken(token string) error
	ClearToken() error
}

// KeyringTokenStore keeps the token in the OS keyring.
type KeyringTokenStore struct {
	service string
}

func NewKeyringTokenStore() *KeyringTokenStore {
	return &KeyringTokenStore{service: constants.AppName}
}

func (s *KeyringTokenStore) Token() (string, error) {
	token, err := keyring.Get(s.service, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return token, nil
}

func (s *KeyringTokenStore) SetToken(token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if err := keyring.Set(s.service, constants.DefaultKeyringUser, token); err != nil {
		return fmt.Errorf("failed to store token in keyring: %w", err)
	}
	return nil
}

func (s *KeyringTokenStore) ClearToken() error {
	err := keyring.Delete(s.service, constants.DefaultKeyringUser)
	if err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("failed to delete token from keyring: %w", err)
	}
	return nil
}

// KeyringAvailable is a best-effort availability probe used by doctor.
func KeyringAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}

// MemoryTokenStore is an in-process store for tests and environments without
// a keyring.
type MemoryTokenStore struct {
	token string
}

func (s *MemoryTokenStore) Token() (string, error) {
	if s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

func (s *MemoryTokenStore) SetToken(token string) error {
	s.token = token
	return nil
}

func (s *MemoryTokenStore) ClearToken() error {
	s.token = ""
	return nil
}
