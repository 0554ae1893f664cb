// Package flow is a byte-wise chained stream cipher. Each ciphertext byte is
// folded into the next one, so every output depends on the whole prefix of
// the plaintext.
package flow

import "github.com/gluk256/gbdz/algo/primitives"

// the initial feedback byte is a multiplicative fold of the whole key
func initFeedback(key []byte) byte {
	s := byte(0xA5)
	for _, b := range key {
		s = s*31 + b
	}
	return s
}

func Encrypt(data []byte, key []byte, gamma []byte) []byte {
	out := make([]byte, len(data))
	prev := initFeedback(key)
	for i := 0; i < len(data); i++ {
		k := key[i%len(key)]
		g := gamma[i%len(gamma)]
		tmp := data[i] + k + g
		shift := (int(k^g) & 7) + 1
		c := primitives.RotateRight8(tmp, shift) ^ prev
		out[i] = c
		prev = c
	}
	return out
}

func Decrypt(data []byte, key []byte, gamma []byte) []byte {
	out := make([]byte, len(data))
	prev := initFeedback(key)
	for i := 0; i < len(data); i++ {
		c := data[i]
		k := key[i%len(key)]
		g := gamma[i%len(gamma)]
		shift := (int(k^g) & 7) + 1
		tmp := primitives.RotateLeft8(c^prev, shift)
		out[i] = tmp - k - g
		prev = c
	}
	return out
}
