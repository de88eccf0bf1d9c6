package secure

import (
	"bytes"
	"strings"
	"testing"
)

func TestRandomBytes(t *testing.T) {
	a, err := RandomBytes(32)
	if err != nil {
		t.Fatalf("random bytes failed: %v", err)
	}
	b, err := RandomBytes(32)
	if err != nil {
		t.Fatalf("random bytes failed: %v", err)
	}

	if len(a) != 32 || len(b) != 32 {
		t.Fatal("wrong length")
	}
	if bytes.Equal(a, b) {
		t.Fatal("two draws produced identical bytes")
	}
}

func TestRandomString(t *testing.T) {
	s, err := RandomString(64)
	if err != nil {
		t.Fatalf("random string failed: %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("length %d, want 64", len(s))
	}
	for _, r := range s {
		if !strings.ContainsRune(alphanumerics, r) {
			t.Fatalf("unexpected character %q", r)
		}
	}
}

func TestCompare(t *testing.T) {
	if !Compare([]byte("abc"), []byte("abc")) {
		t.Fatal("equal slices compared unequal")
	}
	if Compare([]byte("abc"), []byte("abd")) {
		t.Fatal("different slices compared equal")
	}
	if Compare([]byte("abc"), []byte("abcd")) {
		t.Fatal("different lengths compared equal")
	}
	if !Compare(nil, nil) {
		t.Fatal("nil slices should compare equal")
	}
}

func TestChecksum(t *testing.T) {
	a := Checksum([]byte("data"))
	b := Checksum([]byte("data"))
	c := Checksum([]byte("datb"))

	if len(a) != 32 {
		t.Fatalf("digest length %d, want 32", len(a))
	}
	if !Compare(a, b) {
		t.Fatal("same input produced different digests")
	}
	if Compare(a, c) {
		t.Fatal("different inputs produced the same digest")
	}
}

func TestWipe(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	Wipe(buf)
	for _, b := range buf {
		if b != 0 {
			t.Fatal("buffer not zeroed")
		}
	}
}
