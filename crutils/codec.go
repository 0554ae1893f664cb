package crutils

import "fmt"

// two printable characters per payload byte, alphabet '!' .. '!'+90
const alphabetSize = 91
const base0 = '!'

func encodeText(data []byte) string {
	out := make([]byte, len(data)*2)
	for i, b := range data {
		out[2*i] = base0 + b/alphabetSize
		out[2*i+1] = base0 + b%alphabetSize
	}
	return string(out)
}

func decodeText(s string) ([]byte, error) {
	if len(s)&1 != 0 {
		return nil, fmt.Errorf("%w: odd encoded payload length", ErrFormat)
	}
	out := make([]byte, len(s)/2)
	for i := range out {
		hi := int(s[2*i]) - base0
		lo := int(s[2*i+1]) - base0
		if hi < 0 || hi >= alphabetSize || lo < 0 || lo >= alphabetSize {
			return nil, fmt.Errorf("%w: invalid character in payload", ErrFormat)
		}
		out[i] = byte(hi*alphabetSize + lo)
	}
	return out, nil
}
