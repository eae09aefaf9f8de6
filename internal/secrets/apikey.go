package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service groups this app's secrets in the OS keychain.
	KeyringService = "leadscout"
)

// GetAPIKey resolves the directory API key: keychain first, env var as
// the headless fallback (CI, containers, machines without a keychain).
func GetAPIKey(keyringAccount, envVar string) (string, error) {
	if strings.TrimSpace(keyringAccount) != "" {
		key, err := keyring.Get(KeyringService, keyringAccount)
		if err == nil && strings.TrimSpace(key) != "" {
			return strings.TrimSpace(key), nil
		}
	}

	if strings.TrimSpace(envVar) != "" {
		if key := strings.TrimSpace(os.Getenv(envVar)); key != "" {
			return key, nil
		}
	}

	return "", errors.New("directory API key not found (set it in the keychain or via env)")
}

func SetAPIKey(keyringAccount, key string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("API key is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, key)
}

func DeleteAPIKey(keyringAccount string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, keyringAccount)
}
