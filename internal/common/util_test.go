package common

import (
	"encoding/hex"
	"errors"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestMakeRandHexString_LengthAndHex(t *testing.T) {
	const n = 16
	s, err := MakeRandHexString(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != n*2 {
		t.Fatalf("expected hex length %d, got %d", n*2, len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		t.Fatalf("string is not valid hex: %v", err)
	}
}

func TestMakeRandHexString_ZeroSize(t *testing.T) {
	s, err := MakeRandHexString(0)
	if err != nil {
		t.Fatalf("unexpected error for size=0: %v", err)
	}
	if s != "" {
		t.Fatalf("expected empty string for size=0, got %q", s)
	}
}

func TestMakeRandHexString_ReaderError(t *testing.T) {
	orig := randReader
	randReader = failingReader{}
	t.Cleanup(func() { randReader = orig })

	if _, err := MakeRandHexString(8); err == nil {
		t.Fatal("expected error from failing reader")
	}
}

func TestTemporaryPassword(t *testing.T) {
	a, err := TemporaryPassword()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := TemporaryPassword()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a) != TemporaryPasswordSize*2 {
		t.Fatalf("expected length %d, got %d", TemporaryPasswordSize*2, len(a))
	}
	if a == b {
		t.Fatalf("two generated passwords are identical: %q", a)
	}
}

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("hunter2")
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}
