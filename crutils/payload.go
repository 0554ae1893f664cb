package crutils

import (
	"encoding/binary"
	"fmt"
)

// payload layout, all integers big-endian:
// [origLen:4][countsLen:4][counts: origLen*4][bases: origLen][cipher]
// countsLen always duplicates origLen; the redundancy is part of the format.

func buildPayload(counts []int, bases []byte, data []byte) []byte {
	origLen := len(counts)
	buf := make([]byte, 0, 8+origLen*5+len(data))
	buf = binary.BigEndian.AppendUint32(buf, uint32(origLen))
	buf = binary.BigEndian.AppendUint32(buf, uint32(origLen))
	for _, c := range counts {
		buf = binary.BigEndian.AppendUint32(buf, uint32(c))
	}
	buf = append(buf, bases...)
	buf = append(buf, data...)
	return buf
}

func parsePayload(payload []byte) (counts []int, bases []byte, data []byte, err error) {
	if len(payload) < 8 {
		return nil, nil, nil, fmt.Errorf("%w: payload too short", ErrFormat)
	}
	origLen := binary.BigEndian.Uint32(payload)
	countsLen := binary.BigEndian.Uint32(payload[4:])
	if countsLen != origLen {
		return nil, nil, nil, fmt.Errorf("%w: payload counts length mismatch", ErrFormat)
	}
	if uint64(len(payload)) < 8+uint64(origLen)*5 {
		return nil, nil, nil, fmt.Errorf("%w: payload truncated", ErrFormat)
	}
	counts = make([]int, origLen)
	for i := range counts {
		counts[i] = int(int32(binary.BigEndian.Uint32(payload[8+4*i:])))
	}
	off := 8 + 4*int(origLen)
	bases = payload[off : off+int(origLen)]
	data = payload[off+int(origLen):]
	return counts, bases, data, nil
}
