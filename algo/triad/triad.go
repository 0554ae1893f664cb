// Package triad implements a reversible byte decomposition.
// Each byte is stripped of its factors of three and expanded into
// count = 3^levels identical leaves of the residual base value,
// so that base * count reconstructs the original byte exactly.
package triad

import (
	"errors"
	"fmt"
)

var (
	ErrBadCount     = errors.New("invalid count")
	ErrLeafMismatch = errors.New("leaf sequence does not match counts")
	ErrOutOfRange   = errors.New("reconstructed byte out of range")
)

// Encode expands every input byte into its leaf run.
// Zero is a fixed point: one leaf of value zero.
func Encode(data []byte) (leaves []byte, counts []int, bases []byte) {
	counts = make([]int, len(data))
	bases = make([]byte, len(data))
	for i, b := range data {
		if b == 0 {
			leaves = append(leaves, 0)
			counts[i] = 1
			bases[i] = 0
			continue
		}
		v := int(b)
		count := 1
		for v%3 == 0 {
			v /= 3
			count *= 3
		}
		for j := 0; j < count; j++ {
			leaves = append(leaves, byte(v))
		}
		counts[i] = count
		bases[i] = byte(v)
	}
	return leaves, counts, bases
}

// Decode reconstructs the original bytes from counts and bases,
// consuming count[i] leaves per entry. The leaf values themselves are
// redundant (base*count restores the byte), but their total length must
// match the counts exactly.
func Decode(leaves []byte, counts []int, bases []byte) ([]byte, error) {
	if len(counts) != len(bases) {
		return nil, fmt.Errorf("%w: %d counts vs %d bases", ErrLeafMismatch, len(counts), len(bases))
	}
	pos := 0
	out := make([]byte, len(counts))
	for i, c := range counts {
		if c <= 0 {
			return nil, fmt.Errorf("%w: %d at index %d", ErrBadCount, c, i)
		}
		if pos+c > len(leaves) {
			return nil, fmt.Errorf("%w: leaf array too short", ErrLeafMismatch)
		}
		v := int(bases[i]) * c
		if v > 255 {
			return nil, fmt.Errorf("%w: base=%d count=%d product=%d", ErrOutOfRange, bases[i], c, v)
		}
		out[i] = byte(v)
		pos += c
	}
	if pos != len(leaves) {
		return nil, fmt.Errorf("%w: extra leaves present", ErrLeafMismatch)
	}
	return out, nil
}
