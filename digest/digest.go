package digest

import (
	"encoding/hex"
	"errors"
	"fmt"

	"lukechampine.com/blake3"
)

// Size is the width of a digest in bytes (256 bits).
const Size = 32

// ErrSize indicates an input slice is not exactly Size bytes.
// Check it with errors.Is().
var ErrSize = errors.New("invalid digest length")

// Digest is the raw 32-byte output of the BLAKE3 hash function.
type Digest [Size]byte

// Sum hashes data with BLAKE3 and returns its digest.
func Sum(data []byte) Digest {
	return Digest(blake3.Sum256(data))
}

// FromRaw reinterprets a 32-byte array as a Digest. It cannot fail:
// the fixed input width makes a length check unnecessary.
func FromRaw(raw [Size]byte) Digest {
	return Digest(raw)
}

// FromBytes copies b into a Digest. It returns ErrSize if b is not
// exactly 32 bytes.
func FromBytes(b []byte) (Digest, error) {
	var d Digest
	if len(b) != Size {
		return d, fmt.Errorf("digest: %w: got %d bytes, want %d", ErrSize, len(b), Size)
	}
	copy(d[:], b)
	return d, nil
}

// Bytes returns a copy of the raw digest bytes.
func (d Digest) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, d[:])
	return b
}

// String returns the digest as 64 lowercase hex characters.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}
