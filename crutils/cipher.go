package crutils

import (
	"errors"
	"fmt"

	"github.com/gluk256/gbdz/algo/blocksync"
	"github.com/gluk256/gbdz/algo/chaos"
	"github.com/gluk256/gbdz/algo/flow"
	"github.com/gluk256/gbdz/algo/triad"
)

// GammaSize is the length of the chaos sequence shared by the stream
// and block layers.
const GammaSize = 256

// Encrypt produces a printable self-contained envelope for the data.
// The same key and data always yield the same envelope: the scheme has
// no nonce, which the caller must keep in mind.
func Encrypt(key []byte, data []byte) (string, error) {
	if len(key) == 0 {
		return "", ErrEmptyKey
	}
	leaves, counts, bases := triad.Encode(data)
	gamma := chaos.Sequence(key, GammaSize)
	streamed := flow.Encrypt(leaves, key, gamma)
	blocked := blocksync.Encrypt(streamed, key, gamma)
	payload := buildPayload(counts, bases, blocked)
	hash := RollingHash64(payload, key)
	envelope := assembleEnvelope(encodeText(payload), hash)
	WipeData(gamma)
	WipeData(leaves)
	WipeData(streamed)
	return envelope, nil
}

// Decrypt validates the integrity hash before undoing any cipher stage.
func Decrypt(key []byte, envelope string) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	encoded, expected, err := parseEnvelope(envelope)
	if err != nil {
		return nil, err
	}
	payload, err := decodeText(encoded)
	if err != nil {
		return nil, err
	}
	if RollingHash64(payload, key) != expected {
		return nil, fmt.Errorf("%w: wrong key or corrupt data", ErrIntegrity)
	}
	counts, bases, blocked, err := parsePayload(payload)
	if err != nil {
		return nil, err
	}
	gamma := chaos.Sequence(key, GammaSize)
	streamed := blocksync.Decrypt(blocked, key, gamma)
	leaves := flow.Decrypt(streamed, key, gamma)
	res, err := triad.Decode(leaves, counts, bases)
	WipeData(gamma)
	WipeData(streamed)
	WipeData(leaves)
	if err != nil {
		if errors.Is(err, triad.ErrOutOfRange) {
			return nil, fmt.Errorf("%w: %s", ErrState, err)
		}
		return nil, fmt.Errorf("%w: %s", ErrFormat, err)
	}
	return res, nil
}
