package crutils

var wipeProof byte // prevents the wipe loop from being optimized away

// WipeData overwrites a buffer that held key-derived material.
func WipeData(b []byte) {
	for i := range b {
		b[i] = 0
	}
	if len(b) > 0 {
		wipeProof += b[len(b)-1]
	}
}
