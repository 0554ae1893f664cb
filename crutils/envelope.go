package crutils

import (
	"fmt"
	"strconv"
	"strings"
)

const magic = "GBD7Z:"
const tail = "&7"

func assembleEnvelope(encoded string, hash uint64) string {
	return fmt.Sprintf("%s%s|%016x%s", magic, encoded, hash, tail)
}

// the separator is searched from the end: the hash is always the last field
func parseEnvelope(envelope string) (encoded string, hash uint64, err error) {
	if !strings.HasPrefix(envelope, magic) || !strings.HasSuffix(envelope, tail) {
		return "", 0, fmt.Errorf("%w: not a GBD7Z envelope", ErrFormat)
	}
	inner := envelope[len(magic) : len(envelope)-len(tail)]
	sep := strings.LastIndexByte(inner, '|')
	if sep <= 0 {
		return "", 0, fmt.Errorf("%w: missing separator", ErrFormat)
	}
	hashHex := inner[sep+1:]
	if len(hashHex) != 16 {
		return "", 0, fmt.Errorf("%w: bad hash", ErrFormat)
	}
	hash, err = strconv.ParseUint(hashHex, 16, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: bad hash", ErrFormat)
	}
	return inner[:sep], hash, nil
}
