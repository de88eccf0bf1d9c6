package ferreus

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// testKey derives one key for the whole file; Argon2id is deliberately
// slow, so tests share it.
func testKey(t *testing.T) *MasterKey {
	t.Helper()
	key, err := DeriveMasterKey("StrongPassword123!@#", bytes.Repeat([]byte{0x7f}, SaltLength))
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	t.Cleanup(key.Destroy)
	return key
}

func TestSealOpenRoundTrip(t *testing.T) {
	key := testKey(t)

	payloads := [][]byte{
		{},
		[]byte("a"),
		[]byte(`{"version":1,"entries":[]}`),
		bytes.Repeat([]byte{0xaa}, 64*1024),
	}

	for i, plaintext := range payloads {
		env, err := Seal(plaintext, key)
		if err != nil {
			t.Fatalf("case %d: seal failed: %v", i, err)
		}

		decoded, err := UnmarshalEnvelope(env.Marshal())
		if err != nil {
			t.Fatalf("case %d: unmarshal failed: %v", i, err)
		}
		got, err := decoded.Open(key)
		if err != nil {
			t.Fatalf("case %d: open failed: %v", i, err)
		}
		if !bytes.Equal(got, plaintext) {
			t.Fatalf("case %d: round trip mismatch", i)
		}
	}
}

func TestSealFreshNonces(t *testing.T) {
	key := testKey(t)

	e1, err := Seal([]byte("same plaintext"), key)
	if err != nil {
		t.Fatalf("seal failed: %v", err)
	}
	e2, err := Seal([]byte("same plaintext"), key)
	if err != nil {
		t.Fatalf("seal failed: %v", err)
	}

	if e1.Nonce == e2.Nonce {
		t.Fatal("two seals reused a nonce")
	}
	if bytes.Equal(e1.Ciphertext, e2.Ciphertext) {
		t.Fatal("two seals of the same plaintext produced identical ciphertext")
	}
}

// Flipping any single bit anywhere in the serialized envelope must make
// the subsequent open fail, never succeed with altered plaintext.
func TestEnvelopeTamperSensitivity(t *testing.T) {
	key := testKey(t)

	env, err := Seal([]byte("tamper target"), key)
	if err != nil {
		t.Fatalf("seal failed: %v", err)
	}
	raw := env.Marshal()

	for offset := 0; offset < len(raw); offset++ {
		for bit := 0; bit < 8; bit++ {
			tampered := append([]byte(nil), raw...)
			tampered[offset] ^= 1 << bit

			decoded, err := UnmarshalEnvelope(tampered)
			if err != nil {
				if !errors.Is(err, ErrCorruptedVault) {
					t.Fatalf("offset %d bit %d: decode error %v, want ErrCorruptedVault", offset, bit, err)
				}
				continue
			}

			got, err := decoded.Open(key)
			if err == nil {
				// A salt flip does not participate in the AEAD, but then
				// key re-derivation from the stored salt would fail; at
				// this layer the plaintext must at least be untouched.
				if offset >= 4 && offset < 4+SaltLength && bytes.Equal(got, []byte("tamper target")) {
					continue
				}
				t.Fatalf("offset %d bit %d: tampered envelope decrypted", offset, bit)
			}
			if !errors.Is(err, ErrCrypto) && !errors.Is(err, ErrCorruptedVault) {
				t.Fatalf("offset %d bit %d: got %v, want ErrCrypto or ErrCorruptedVault", offset, bit, err)
			}
		}
	}
}

func TestUnmarshalEnvelopeRejectsVersions(t *testing.T) {
	key := testKey(t)

	env, err := Seal([]byte("payload"), key)
	if err != nil {
		t.Fatalf("seal failed: %v", err)
	}
	raw := env.Marshal()

	for _, version := range []uint32{0, 2, 7, 0xffffffff} {
		bad := append([]byte(nil), raw...)
		binary.BigEndian.PutUint32(bad[0:4], version)
		if _, err := UnmarshalEnvelope(bad); !errors.Is(err, ErrCorruptedVault) {
			t.Errorf("version %d: got %v, want ErrCorruptedVault", version, err)
		}
	}
}

func TestUnmarshalEnvelopeTruncated(t *testing.T) {
	key := testKey(t)

	env, err := Seal([]byte("payload"), key)
	if err != nil {
		t.Fatalf("seal failed: %v", err)
	}
	raw := env.Marshal()

	for _, n := range []int{0, 3, 4, envelopeHeaderLen - 1, envelopeHeaderLen, envelopeHeaderLen + 15} {
		if _, err := UnmarshalEnvelope(raw[:n]); !errors.Is(err, ErrCorruptedVault) {
			t.Errorf("length %d: got %v, want ErrCorruptedVault", n, err)
		}
	}
}

func TestEnvelopeCarriesKeySalt(t *testing.T) {
	key := testKey(t)

	env, err := Seal([]byte("payload"), key)
	if err != nil {
		t.Fatalf("seal failed: %v", err)
	}
	if !bytes.Equal(env.Salt[:], key.Salt()) {
		t.Fatal("envelope salt does not match derivation salt")
	}
	if env.Version != EnvelopeVersion {
		t.Fatalf("envelope version %d, want %d", env.Version, EnvelopeVersion)
	}
}
