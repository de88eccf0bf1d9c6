// Package secure provides the small set of memory and randomness primitives
// the vault is built on: OS-backed random generation, constant-time
// comparison, checksums, and explicit wiping of byte buffers.
package secure

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"math/big"

	"github.com/awnumar/memguard"
)

const alphanumerics = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomBytes returns n bytes from the operating system CSPRNG. Intended
// for key material, salts and nonces.
func RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return buf, nil
}

// RandomString returns a random alphanumeric string of the given length,
// drawn from the OS CSPRNG. Intended for generated passwords and tokens,
// not for raw key material.
func RandomString(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(alphanumerics)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random index: %w", err)
		}
		out[i] = alphanumerics[n.Int64()]
	}
	return string(out), nil
}

// Compare reports whether a and b are equal without leaking, through
// timing, where they first differ. Safe for derived keys, tags and
// checksums. Slices of different length compare unequal.
func Compare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Checksum returns the SHA-256 digest of data.
func Checksum(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// Wipe overwrites the buffer with zeros. Call it on every buffer that held
// password, key or decrypted-payload bytes, on every exit path.
func Wipe(buf []byte) {
	memguard.WipeBytes(buf)
}
