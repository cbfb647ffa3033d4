package config

import (
	"errors"
	"fmt"

	"github.com/99designs/keyring"
)

const (
	serviceName   = "writingtool-checkengine"
	aiAPIKeyLabel = "ai-backend-api-key"
)

// CredentialStore keeps the AI backend's API key in the OS keychain rather
// than in a config file on disk: the host is a desktop word processor
// extension, not a server with an ops team managing secret files.
type CredentialStore struct {
	ring keyring.Keyring
}

// OpenCredentialStore opens the platform keychain backend appropriate for
// the current OS (Keychain on macOS, Secret Service/KWallet on Linux,
// Credential Manager on Windows), falling back to an encrypted file
// backend when none of those are available.
func OpenCredentialStore() (*CredentialStore, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName:             serviceName,
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("config: open credential store: %w", err)
	}
	return &CredentialStore{ring: ring}, nil
}

// AIAPIKey returns the stored AI backend API key, or ("", false) if none
// has been set yet.
func (c *CredentialStore) AIAPIKey() (string, bool, error) {
	item, err := c.ring.Get(aiAPIKeyLabel)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("config: read AI API key: %w", err)
	}
	return string(item.Data), true, nil
}

// SetAIAPIKey stores or replaces the AI backend API key.
func (c *CredentialStore) SetAIAPIKey(key string) error {
	err := c.ring.Set(keyring.Item{
		Key:   aiAPIKeyLabel,
		Data:  []byte(key),
		Label: "AI backend API key",
	})
	if err != nil {
		return fmt.Errorf("config: store AI API key: %w", err)
	}
	return nil
}

// ClearAIAPIKey removes the stored key, if any.
func (c *CredentialStore) ClearAIAPIKey() error {
	err := c.ring.Remove(aiAPIKeyLabel)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("config: clear AI API key: %w", err)
	}
	return nil
}
