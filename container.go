package ferreus

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/Quabena/ferreus-vault/internal/secure"
)

// EnvelopeVersion is the single on-disk format version this build reads
// and writes. Any other value is rejected before decryption is attempted.
const EnvelopeVersion uint32 = 1

// envelopeHeaderLen is the fixed prefix before the ciphertext:
// version (4, big-endian) + salt (16) + nonce (24).
const envelopeHeaderLen = 4 + SaltLength + NonceLength

// Envelope is the on-disk encrypted container: format version, key
// derivation salt, AEAD nonce, and the ciphertext with its Poly1305 tag
// appended. The fields are only meaningful together; flipping any single
// bit anywhere in the serialized form makes decryption fail rather than
// produce wrong plaintext.
//
// An Envelope is built fresh on every save (new random nonce each time)
// and consumed once by the persistence layer. The salt is stable for the
// life of the vault because it is tied to key derivation, not to the AEAD
// nonce space.
type Envelope struct {
	Version    uint32
	Salt       [SaltLength]byte
	Nonce      [NonceLength]byte
	Ciphertext []byte
}

// Seal encrypts plaintext under key with XChaCha20-Poly1305, using a fresh
// 24-byte random nonce, and packages the result together with the key's
// derivation salt. No associated data is used.
func Seal(plaintext []byte, key *MasterKey) (*Envelope, error) {
	keyBuf, err := key.open()
	if err != nil {
		return nil, ErrCrypto
	}
	defer keyBuf.Destroy()

	aead, err := chacha20poly1305.NewX(keyBuf.Bytes())
	if err != nil {
		return nil, ErrCrypto
	}

	nonce, err := secure.RandomBytes(NonceLength)
	if err != nil {
		return nil, ErrCrypto
	}

	env := &Envelope{Version: EnvelopeVersion}
	copy(env.Salt[:], key.Salt())
	copy(env.Nonce[:], nonce)
	env.Ciphertext = aead.Seal(nil, env.Nonce[:], plaintext, nil)

	return env, nil
}

// Open runs authenticated decryption against the envelope using its own
// nonce. An authentication-tag mismatch and a malformed ciphertext are
// deliberately indistinguishable: both return ErrCrypto, so the error
// cannot serve as a corruption-versus-wrong-key oracle.
func (e *Envelope) Open(key *MasterKey) ([]byte, error) {
	if e.Version != EnvelopeVersion {
		return nil, ErrCorruptedVault
	}

	keyBuf, err := key.open()
	if err != nil {
		return nil, ErrCrypto
	}
	defer keyBuf.Destroy()

	aead, err := chacha20poly1305.NewX(keyBuf.Bytes())
	if err != nil {
		return nil, ErrCrypto
	}

	plaintext, err := aead.Open(nil, e.Nonce[:], e.Ciphertext, nil)
	if err != nil {
		return nil, ErrCrypto
	}
	return plaintext, nil
}

// Marshal encodes the envelope into the fixed version-1 binary layout:
//
//	[4 bytes: version, big-endian]
//	[16 bytes: salt]
//	[24 bytes: nonce]
//	[N bytes: ciphertext + authentication tag]
func (e *Envelope) Marshal() []byte {
	out := make([]byte, envelopeHeaderLen+len(e.Ciphertext))
	binary.BigEndian.PutUint32(out[0:4], e.Version)
	copy(out[4:4+SaltLength], e.Salt[:])
	copy(out[4+SaltLength:envelopeHeaderLen], e.Nonce[:])
	copy(out[envelopeHeaderLen:], e.Ciphertext)
	return out
}

// UnmarshalEnvelope decodes and structurally validates a serialized
// envelope. The version is checked here, before any cryptographic work, so
// decryption is never attempted against a layout this build cannot safely
// interpret. Truncated input fails as ErrCorruptedVault.
func UnmarshalEnvelope(raw []byte) (*Envelope, error) {
	// The smallest valid envelope carries an empty plaintext: header plus
	// a bare authentication tag.
	if len(raw) < envelopeHeaderLen+chacha20poly1305.Overhead {
		return nil, ErrCorruptedVault
	}

	env := &Envelope{Version: binary.BigEndian.Uint32(raw[0:4])}
	if env.Version != EnvelopeVersion {
		return nil, ErrCorruptedVault
	}

	copy(env.Salt[:], raw[4:4+SaltLength])
	copy(env.Nonce[:], raw[4+SaltLength:envelopeHeaderLen])
	env.Ciphertext = append([]byte(nil), raw[envelopeHeaderLen:]...)

	return env, nil
}
