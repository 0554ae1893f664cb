package flow

import (
	"bytes"
	"testing"
	mrand "math/rand"
	"time"

	"github.com/gluk256/gbdz/algo/chaos"
	"github.com/gluk256/gbdz/algo/primitives"
)

func TestRoundTrip(t *testing.T) {
	seed := time.Now().Unix()
	mrand.Seed(seed)

	for i := 0; i < 256; i++ {
		key := make([]byte, mrand.Int()%64+1)
		mrand.Read(key)
		gamma := chaos.Sequence(key, 256)
		data := make([]byte, mrand.Int()%1024+16)
		mrand.Read(data)

		encrypted := Encrypt(data, key, gamma)
		if !primitives.IsDeepNotEqual(encrypted, data, len(data)) {
			t.Fatalf("ciphertext too similar to plaintext, round %d with seed %d", i, seed)
		}

		decrypted := Decrypt(encrypted, key, gamma)
		if !bytes.Equal(decrypted, data) {
			t.Fatalf("round trip failed, round %d with seed %d", i, seed)
		}
	}
}

func TestChaining(t *testing.T) {
	seed := time.Now().Unix()
	mrand.Seed(seed)

	key := []byte("chain test key")
	gamma := chaos.Sequence(key, 256)
	data := make([]byte, 512)
	mrand.Read(data)

	encrypted := Encrypt(data, key, gamma)

	// every ciphertext byte must depend on the whole plaintext prefix
	other := make([]byte, len(data))
	copy(other, data)
	other[0] ^= 0x01
	reencrypted := Encrypt(other, key, gamma)
	for i := range reencrypted {
		if reencrypted[i] == encrypted[i] {
			t.Fatalf("ciphertext byte %d ignores a plaintext change at byte 0, seed %d", i, seed)
		}
	}

	// ciphertext feedback: a flipped byte garbles itself and its successor only
	encrypted[100] ^= 0x01
	decrypted := Decrypt(encrypted, key, gamma)
	if !bytes.Equal(decrypted[:100], data[:100]) {
		t.Fatalf("prefix before the flipped byte must survive, seed %d", seed)
	}
	if decrypted[100] == data[100] || decrypted[101] == data[101] {
		t.Fatalf("flipped byte did not corrupt decryption, seed %d", seed)
	}
	if !bytes.Equal(decrypted[102:], data[102:]) {
		t.Fatalf("corruption must not propagate past the feedback window, seed %d", seed)
	}
}

func TestEmpty(t *testing.T) {
	key := []byte("k")
	gamma := chaos.Sequence(key, 256)
	if len(Encrypt(nil, key, gamma)) != 0 {
		t.Fatal("empty input must produce empty output")
	}
	if len(Decrypt(nil, key, gamma)) != 0 {
		t.Fatal("empty input must produce empty output")
	}
}
