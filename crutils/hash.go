package crutils

import "math/bits"

const hashSeed = 0x9E3779B97F4A7C15

// folds every key byte plus the data index into a 64-bit value
func mixKey64(key []byte, i int) uint64 {
	v := uint64(hashSeed)
	for j := 0; j < len(key); j++ {
		v = bits.RotateLeft64(v+uint64(key[j])+uint64(i), j&63)
	}
	return v
}

// RollingHash64 is a keyed checksum for tamper and wrong-key detection.
// It claims no cryptographic collision resistance.
func RollingHash64(data []byte, key []byte) uint64 {
	h := uint64(hashSeed)
	for i := 0; i < len(data); i++ {
		h = bits.RotateLeft64(h^uint64(data[i]), 11) + mixKey64(key, i)
	}
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	return h
}
