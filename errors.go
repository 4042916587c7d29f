package hashid

import "errors"

// Sentinel errors for decode failures. These are the only error conditions
// the package produces; check them with errors.Is().
var (
	// ErrMalformedTimestamp indicates the leading 12 bytes of an encoded
	// identifier do not form a valid TAI64N label.
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// ErrMalformedDigest indicates the trailing bytes of a serialized
	// identifier do not form a 32-byte digest. Decoding from the fixed
	// 44-byte buffer can never produce it; only the variable-width
	// unmarshaling entry points can.
	ErrMalformedDigest = errors.New("malformed digest")
)
