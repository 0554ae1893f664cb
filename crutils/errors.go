package crutils

import "errors"

// The four error kinds of the public surface. Every error returned by
// Encrypt/Decrypt wraps exactly one of these, so callers can classify
// with errors.Is. ErrIntegrity is deliberately distinct from ErrFormat:
// a hash mismatch means wrong key or tampering, not a broken container.
var (
	ErrEmptyKey  = errors.New("key must be non-empty")
	ErrFormat    = errors.New("malformed envelope")
	ErrIntegrity = errors.New("hash mismatch")
	ErrState     = errors.New("inconsistent decrypted data")
)
