package primitives

// 8-bit rotation; only the three low bits of r matter
func RotateRight8(v byte, r int) byte {
	r &= 7
	return (v >> r) | (v << (8 - r))
}

func RotateLeft8(v byte, r int) byte {
	r &= 7
	return (v << r) | (v >> (8 - r))
}

func IsDeepNotEqual(a []byte, b []byte, sz int) bool {
	const block = 4
	for i := 0; i < sz-block; i += 2 {
		ok := isBlockNotEqual(a, b, i, block)
		if !ok {
			return false
		}
	}
	return true
}

func isBlockNotEqual(a []byte, b []byte, off int, block int) bool {
	for i := off; i < off+block; i++ {
		if a[i] != b[i] {
			return true
		}
	}
	return false
}
