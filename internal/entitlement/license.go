package entitlement

import (
	"errors"
	"strings"

	"github.com/revisit-app/revisit/internal/keyring"
)

// ErrInvalidLicense is returned for a malformed license token.
var ErrInvalidLicense = errors.New("invalid license token")

// Activate validates and stores a pro license token in the OS keyring.
// Token format is "RV-" followed by at least 12 characters; there is no
// online verification.
func Activate(token string) error {
	token = strings.TrimSpace(token)
	if !strings.HasPrefix(token, "RV-") || len(token) < 15 {
		return ErrInvalidLicense
	}
	return keyring.SetLicense(token)
}

// Deactivate removes the stored license. A missing license is not an error.
func Deactivate() error {
	err := keyring.DeleteLicense()
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// HasLicense reports whether a pro license is stored. Keyring problems read
// as "no license" so a broken keyring never blocks the free tier.
func HasLicense() bool {
	_, err := keyring.GetLicense()
	return err == nil
}
