package ferreus

import (
	"errors"
	"fmt"
)

// The error taxonomy is deliberately coarse. Callers, and anyone watching a
// caller's behaviour, must not be able to tell a wrong password apart from a
// corrupted ciphertext, or a bad derivation parameter apart from an
// authentication failure. Underlying library errors are discarded at the
// boundary where these sentinels are produced; match them with errors.Is.
var (
	// ErrCrypto covers any key-derivation or authenticated-encryption
	// failure. A wrong master password surfaces as this error.
	ErrCrypto = errors.New("cryptographic error")

	// ErrSerialization indicates a structural decode of the decrypted
	// payload failed.
	ErrSerialization = errors.New("serialization error")

	// ErrInvalidPassword indicates a candidate master password failed the
	// local strength policy before any cryptographic work was attempted.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrCorruptedVault indicates the vault file is structurally invalid:
	// an unknown format version, a truncated envelope, or a vault already
	// present where a new one was to be created.
	ErrCorruptedVault = errors.New("vault file corrupted or invalid format")

	// ErrIO indicates a filesystem-level failure. The cause is kept in the
	// message for diagnostics but the chain stops at this sentinel.
	ErrIO = errors.New("i/o error")

	// ErrEntryNotFound indicates the referenced entry index does not exist.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrVaultLocked indicates an operation that requires the unlocked
	// state was invoked while the vault is locked.
	ErrVaultLocked = errors.New("vault is locked")
)

// ioError maps a filesystem failure onto ErrIO, keeping the cause readable
// without extending the unwrap chain past the sentinel.
func ioError(err error) error {
	return fmt.Errorf("%w: %v", ErrIO, err)
}
