// Package blocksync is a 7-round block cipher over 16-byte blocks, treated as
// 128-bit integers. Each round adds a round key, multiplies by a key-derived
// odd constant mod 2^128, shuffles the bytes with a gamma-driven permutation
// and xors a second round key. Blocks are independent: equal plaintext blocks
// under the same key give equal ciphertext blocks.
package blocksync

import "github.com/holiman/uint256"

const BlockSize = 16
const rounds = 7

// the cipher works mod 2^128: only the two low limbs are significant
func mask128(v *uint256.Int) {
	v[2], v[3] = 0, 0
}

func writeBlock(v *uint256.Int, dst []byte) {
	b := v.Bytes32()
	copy(dst, b[16:])
}

// the multiplier is forced odd, hence invertible mod 2^128
func deriveMultiplier(key []byte) *uint256.Int {
	var buf [BlockSize]byte
	for i := 0; i < BlockSize; i++ {
		buf[i] = key[i%len(key)]
	}
	buf[BlockSize-1] |= 1
	return new(uint256.Int).SetBytes(buf[:])
}

func deriveRoundKey(key []byte, round int, which int) *uint256.Int {
	var buf [BlockSize]byte
	for i := 0; i < BlockSize; i++ {
		v := int(key[(i+round+which)%len(key)])
		buf[i] = byte(v + ((round * 31) ^ (which * 13)))
	}
	return new(uint256.Int).SetBytes(buf[:])
}

// Newton iteration doubles the number of correct low bits per step,
// and any odd m is its own inverse mod 8 already.
func invertOdd(m *uint256.Int) *uint256.Int {
	inv := new(uint256.Int).Set(m)
	two := uint256.NewInt(2)
	tmp := new(uint256.Int)
	for i := 0; i < 6; i++ {
		tmp.Mul(m, inv)
		tmp.Sub(two, tmp)
		inv.Mul(inv, tmp)
		mask128(inv)
	}
	return inv
}

func permute(b []byte, gamma []byte, round int) {
	n := len(b)
	for i := 0; i < n; i++ {
		j := (i + int(gamma[(i+round)%len(gamma)])) % n
		b[i], b[j] = b[j], b[i]
	}
}

// same swap sequence, applied backwards
func unpermute(b []byte, gamma []byte, round int) {
	n := len(b)
	for i := n - 1; i >= 0; i-- {
		j := (i + int(gamma[(i+round)%len(gamma)])) % n
		b[i], b[j] = b[j], b[i]
	}
}

func pad(data []byte) []byte {
	sz := (len(data) + BlockSize - 1) / BlockSize * BlockSize
	buf := make([]byte, sz)
	copy(buf, data)
	return buf
}

// Encrypt processes data in independent 16-byte blocks, zero-padding the tail.
// The result is truncated back to len(data): the trailing bytes of a partial
// last block are dropped, which is fine for payloads whose tail content is
// redundant (the caller reconstructs from metadata, not from the tail bytes).
func Encrypt(data []byte, key []byte, gamma []byte) []byte {
	if len(data) == 0 {
		return []byte{}
	}
	mul := deriveMultiplier(key)
	buf := pad(data)
	n := new(uint256.Int)
	block := make([]byte, BlockSize)
	for off := 0; off < len(buf); off += BlockSize {
		n.SetBytes(buf[off : off+BlockSize])
		for r := 0; r < rounds; r++ {
			n.Add(n, deriveRoundKey(key, r, 1))
			mask128(n)
			n.Mul(n, mul)
			mask128(n)
			writeBlock(n, block)
			permute(block, gamma, r)
			n.SetBytes(block)
			n.Xor(n, deriveRoundKey(key, r, 2))
		}
		writeBlock(n, buf[off:off+BlockSize])
	}
	return buf[:len(data)]
}

func Decrypt(data []byte, key []byte, gamma []byte) []byte {
	if len(data) == 0 {
		return []byte{}
	}
	mulInv := invertOdd(deriveMultiplier(key))
	buf := pad(data)
	n := new(uint256.Int)
	block := make([]byte, BlockSize)
	for off := 0; off < len(buf); off += BlockSize {
		n.SetBytes(buf[off : off+BlockSize])
		for r := rounds - 1; r >= 0; r-- {
			n.Xor(n, deriveRoundKey(key, r, 2))
			writeBlock(n, block)
			unpermute(block, gamma, r)
			n.SetBytes(block)
			n.Mul(n, mulInv)
			mask128(n)
			n.Sub(n, deriveRoundKey(key, r, 1))
			mask128(n)
		}
		writeBlock(n, buf[off:off+BlockSize])
	}
	return buf[:len(data)]
}
