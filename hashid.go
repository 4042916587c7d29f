package hashid

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/wasmium-network/hashid/digest"
	"github.com/wasmium-network/hashid/tai64"
)

// EncodedSize is the width of an encoded Identifier: a 12-byte TAI64N
// timestamp followed by a 32-byte digest.
const EncodedSize = tai64.Size + digest.Size

// Identifier combines the instant a piece of content was identified with
// its BLAKE3 digest. It is immutable once constructed.
//
// Equality and ordering are field-wise, timestamp first, which matches the
// byte-lexicographic ordering of the encoded form.
type Identifier struct {
	timestamp tai64.N
	digest    digest.Digest
}

// New pairs d with the current instant read from the configured clock.
// Two calls with the same digest yield identifiers that differ in their
// timestamps unless the calls land within clock resolution.
func New(d digest.Digest, opts ...Option) Identifier {
	cfg := newConfig(opts)
	return Identifier{
		timestamp: tai64.FromTime(cfg.clock.Now()),
		digest:    d,
	}
}

// Encode writes the identifier into its canonical 44-byte layout:
// timestamp at [0,12), digest at [12,44). It is pure and cannot fail.
func (id Identifier) Encode() [EncodedSize]byte {
	var buf [EncodedSize]byte
	copy(buf[:tai64.Size], id.timestamp[:])
	copy(buf[tai64.Size:], id.digest[:])
	return buf
}

// DecodeTimestamp recovers the TAI64N label from an encoded identifier.
// It returns an error wrapping ErrMalformedTimestamp when the leading 12
// bytes are not a valid label.
func DecodeTimestamp(buf [EncodedSize]byte) (tai64.N, error) {
	n, err := tai64.Parse(buf[:tai64.Size])
	if err != nil {
		return tai64.N{}, fmt.Errorf("hashid: decode timestamp: %w: %w", ErrMalformedTimestamp, err)
	}
	return n, nil
}

// DecodeDigest recovers the digest from an encoded identifier. The fixed
// buffer width guarantees the digest slice is exactly 32 bytes, so there
// is no failure path.
func DecodeDigest(buf [EncodedSize]byte) digest.Digest {
	var raw [digest.Size]byte
	copy(raw[:], buf[tai64.Size:])
	return digest.FromRaw(raw)
}

// Decode recovers a whole Identifier from its canonical encoding. It fails
// only when DecodeTimestamp would.
func Decode(buf [EncodedSize]byte) (Identifier, error) {
	n, err := DecodeTimestamp(buf)
	if err != nil {
		return Identifier{}, err
	}
	return Identifier{timestamp: n, digest: DecodeDigest(buf)}, nil
}

// Timestamp returns a copy of the identifier's TAI64N label.
func (id Identifier) Timestamp() tai64.N {
	return id.timestamp
}

// Digest returns a copy of the identifier's digest.
func (id Identifier) Digest() digest.Digest {
	return id.digest
}

// Compare orders identifiers field-wise, timestamp first. The result
// equals byte-wise comparison of the two encodings.
func (id Identifier) Compare(other Identifier) int {
	if c := id.timestamp.Compare(other.timestamp); c != 0 {
		return c
	}
	return bytes.Compare(id.digest[:], other.digest[:])
}

// Equal reports whether both fields match.
func (id Identifier) Equal(other Identifier) bool {
	return id == other
}

// String returns the canonical encoding as 88 lowercase hex characters.
func (id Identifier) String() string {
	buf := id.Encode()
	return hex.EncodeToString(buf[:])
}
