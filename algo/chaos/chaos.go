// Package chaos derives a deterministic pseudo-random byte sequence from a key
// by iterating a perturbed logistic map. It is a keystream source, not a vetted
// cryptographic PRNG.
package chaos

import "math"

// Sequence generates sz bytes from the key. The seed and the growth rate are
// functions of the key alone, and the rate drifts slightly every step depending
// on the next key byte, so nearby keys diverge quickly.
//
// The map runs on IEEE-754 doubles; math.Mod and math.Floor keep the results
// bit-compatible with reference implementations using truncated fmod semantics.
func Sequence(key []byte, sz int) []byte {
	var sum int64
	for _, b := range key {
		sum += int64(b)
	}
	x := float64(sum%1024)/1024.0 + 0.123456
	r := 3.9 + float64(key[0]%9)*0.01

	out := make([]byte, sz)
	for i := 0; i < sz; i++ {
		x = math.Mod(r*x*(1.0-x), 1.0)
		frac := x - math.Floor(x)
		out[i] = byte(int(math.Floor(frac * 256.0)))
		r += float64(int(key[i%len(key)]%5)-2) * 0.0003
	}
	return out
}
