package tai64

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// Size is the width of a TAI64N label in bytes.
const Size = 12

// unixEpoch is the TAI64 second count at the Unix epoch: 2^62 plus the
// 10 leap seconds between TAI and UTC on 1970-01-01.
const unixEpoch = uint64(4611686018427387914)

// maxNanos is the exclusive upper bound of the nanosecond field.
const maxNanos = 1_000_000_000

// Sentinel errors returned by Parse. Check them with errors.Is().
var (
	// ErrLengthInvalid indicates the input is not exactly 12 bytes.
	ErrLengthInvalid = errors.New("invalid tai64n length")

	// ErrNanosInvalid indicates the nanosecond field is >= 10^9.
	ErrNanosInvalid = errors.New("invalid tai64n nanoseconds")
)

// N is a TAI64N label: 8 big-endian bytes of offset seconds followed by
// 4 big-endian bytes of nanoseconds.
type N [Size]byte

// Now returns the label for the current instant.
func Now() N {
	return FromTime(time.Now())
}

// FromTime converts an instant to its TAI64N label.
func FromTime(t time.Time) N {
	var n N
	binary.BigEndian.PutUint64(n[:8], unixEpoch+uint64(t.Unix()))
	binary.BigEndian.PutUint32(n[8:], uint32(t.Nanosecond()))
	return n
}

// Parse validates b as a TAI64N label. It returns ErrLengthInvalid if b is
// not exactly 12 bytes and ErrNanosInvalid if the nanosecond field is out
// of range. The returned label is an independent copy of b.
func Parse(b []byte) (N, error) {
	var n N
	if len(b) != Size {
		return n, fmt.Errorf("tai64: %w: got %d bytes, want %d", ErrLengthInvalid, len(b), Size)
	}
	if nanos := binary.BigEndian.Uint32(b[8:]); nanos >= maxNanos {
		return n, fmt.Errorf("tai64: %w: %d", ErrNanosInvalid, nanos)
	}
	copy(n[:], b)
	return n, nil
}

// Time converts the label back to a time.Time in the local location.
func (n N) Time() time.Time {
	secs := int64(binary.BigEndian.Uint64(n[:8]) - unixEpoch)
	nanos := int64(binary.BigEndian.Uint32(n[8:]))
	return time.Unix(secs, nanos)
}

// Bytes returns a copy of the raw 12-byte label.
func (n N) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, n[:])
	return b
}

// String returns the label as 24 lowercase hex characters.
func (n N) String() string {
	return hex.EncodeToString(n[:])
}

// Compare returns -1, 0, or 1 by byte-wise comparison, which for valid
// labels equals chronological comparison.
func (n N) Compare(other N) int {
	return bytes.Compare(n[:], other[:])
}

// Before reports whether n is earlier than other.
func (n N) Before(other N) bool {
	return n.Compare(other) < 0
}

// After reports whether n is later than other.
func (n N) After(other N) bool {
	return n.Compare(other) > 0
}
