package primitives

import (
	"testing"
	mrand "math/rand"
	"time"
)

func TestRotate8(t *testing.T) {
	seed := time.Now().Unix()
	mrand.Seed(seed)

	for i := 0; i < 4096; i++ {
		v := byte(mrand.Int())
		r := mrand.Int() % 32
		x := RotateRight8(v, r)
		y := RotateLeft8(x, r)
		if y != v {
			t.Fatalf("rotation is not reversible: %d -> %d -> %d, shift %d, seed %d", v, x, y, r, seed)
		}
	}

	if RotateRight8(0x81, 1) != 0xC0 {
		t.Fatalf("wrong right rotation: %x", RotateRight8(0x81, 1))
	}
	if RotateLeft8(0x81, 1) != 0x03 {
		t.Fatalf("wrong left rotation: %x", RotateLeft8(0x81, 1))
	}
	if RotateRight8(0x5A, 8) != 0x5A {
		t.Fatal("full rotation must be a no-op")
	}
	if RotateRight8(0x5A, 0) != 0x5A {
		t.Fatal("zero rotation must be a no-op")
	}
}

func TestIsDeepNotEqual(t *testing.T) {
	seed := time.Now().Unix()
	mrand.Seed(seed)

	a := make([]byte, 1024)
	b := make([]byte, 1024)
	mrand.Read(a)
	copy(b, a)
	if IsDeepNotEqual(a, b, len(a)) {
		t.Fatalf("identical slices reported deeply different, seed %d", seed)
	}

	for i := range b {
		b[i] ^= 0xFF
	}
	if !IsDeepNotEqual(a, b, len(a)) {
		t.Fatalf("inverted slices reported similar, seed %d", seed)
	}
}
