package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/revisit-app/revisit/internal/constants"
)

var (
	// ErrNotFound is returned when no license is stored in the keyring
	ErrNotFound = errors.New("license not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetLicense retrieves the stored pro license token from the OS keyring.
func GetLicense() (string, error) {
	token, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return token, nil
}

// SetLicense stores the pro license token in the OS keyring.
func SetLicense(token string) error {
	if token == "" {
		return errors.New("license token cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, token); err != nil {
		return fmt.Errorf("failed to store license in keyring: %w", err)
	}
	return nil
}

// DeleteLicense removes the pro license token from the OS keyring.
func DeleteLicense() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete license from keyring: %w", err)
	}
	return nil
}
