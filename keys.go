package ferreus

import (
	"github.com/awnumar/memguard"
	"golang.org/x/crypto/argon2"

	"github.com/Quabena/ferreus-vault/internal/secure"
)

// Argon2id cost parameters. These are fixed so that derivation is
// deterministic and reproducible across builds of the same vault format;
// changing any of them is a format break.
const (
	argonMemory  uint32 = 19456 // KiB, ~19 MiB
	argonTime    uint32 = 2
	argonThreads uint8  = 1
)

// Fixed material lengths. These are format constants, not per-file
// negotiables.
const (
	SaltLength  = 16
	NonceLength = 24
	KeyLength   = 32
)

// MasterKey is the symmetric key derived from the master password together
// with the salt it was derived with. The key bytes live in a memguard
// enclave: encrypted at rest in process memory, exposed only inside the
// short-lived locked buffers the codec opens, and discarded on Destroy.
//
// A MasterKey is never serialized and never written to disk. The lifecycle
// manager owns it for the duration of an unlocked session.
type MasterKey struct {
	enclave *memguard.Enclave
	salt    [SaltLength]byte
}

// NewMasterKey derives a master key from password using a fresh random
// salt. Used once, at vault creation.
func NewMasterKey(password string) (*MasterKey, error) {
	salt, err := secure.RandomBytes(SaltLength)
	if err != nil {
		return nil, ErrCrypto
	}
	return DeriveMasterKey(password, salt)
}

// DeriveMasterKey derives a master key from password and a previously
// stored salt using Argon2id with the fixed cost parameters. Derivation is
// deliberately expensive, on the order of tens of milliseconds.
//
// Every internal failure collapses to ErrCrypto; the specific cause is
// never surfaced, so a caller cannot distinguish parameter problems from a
// wrong password.
func DeriveMasterKey(password string, salt []byte) (*MasterKey, error) {
	if len(salt) != SaltLength {
		return nil, ErrCrypto
	}

	raw := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, KeyLength)
	if len(raw) != KeyLength {
		secure.Wipe(raw)
		return nil, ErrCrypto
	}

	mk := &MasterKey{
		// NewEnclave wipes raw once the bytes are sealed.
		enclave: memguard.NewEnclave(raw),
	}
	copy(mk.salt[:], salt)
	return mk, nil
}

// Salt returns the derivation salt. The salt is public material and is
// stored alongside the ciphertext in the envelope.
func (k *MasterKey) Salt() []byte {
	return k.salt[:]
}

// open exposes the raw key bytes in a locked buffer. The caller must
// Destroy the returned buffer as soon as the cryptographic call returns.
func (k *MasterKey) open() (*memguard.LockedBuffer, error) {
	if k == nil || k.enclave == nil {
		return nil, ErrCrypto
	}
	buf, err := k.enclave.Open()
	if err != nil {
		return nil, ErrCrypto
	}
	return buf, nil
}

// Destroy discards the key material. The enclave reference is dropped and
// the salt cleared; a destroyed key fails all further use with ErrCrypto.
// Safe to call more than once.
func (k *MasterKey) Destroy() {
	if k == nil {
		return
	}
	k.enclave = nil
	for i := range k.salt {
		k.salt[i] = 0
	}
}
