// Package persist owns the on-disk representation of the vault: crash-safe
// writes of the serialized envelope, existence checks, and backup copies.
// It never sees plaintext; everything it touches is already encrypted.
package persist

// Store persists the serialized vault envelope. Implementations must make
// Save atomic: after a crash or power loss the target must hold either the
// previous complete envelope or the new complete envelope, never a mix.
type Store interface {
	// Save writes the full serialized envelope.
	Save(data []byte) error

	// Load reads the full serialized envelope. Filesystem failures,
	// including a missing vault, surface as-is.
	Load() ([]byte, error)

	// Exists reports whether a vault is present at the target location.
	Exists() bool

	// Path returns the target location for display and backup purposes.
	Path() string
}
