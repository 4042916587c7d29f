// Package hashid provides a compact, sortable, globally-unique identifier
// built from a TAI64N timestamp and a BLAKE3 content digest.
//
// # Format
//
// An Identifier encodes to exactly 44 bytes:
//
//	offset 0,  length 12: TAI64N timestamp (big-endian seconds + nanoseconds)
//	offset 12, length 32: raw BLAKE3 digest of the identified content
//
// There are no magic bytes, version tags, or length prefixes; the layout is
// positional and fixed. Because the timestamp leads and both fields are
// big-endian, encoded identifiers sort byte-lexicographically by creation
// time first and digest second, so a batch of encoded identifiers can be
// ordered chronologically without decoding any of them.
//
// # Construction
//
// Callers hash their content and attach the digest; construction captures
// the current instant:
//
//	d := digest.Sum(message)
//	id := hashid.New(d)
//	buf := id.Encode() // [44]byte, ready for storage or transmission
//
// Identifiers not tied to meaningful content can be generated from
// cryptographically secure random input material:
//
//	id, err := hashid.Rand32()
//
// The clock and the entropy source are injectable capabilities, so
// construction stays deterministic under test:
//
//	id := hashid.New(d, hashid.WithClock(fixed))
//
// # Decoding
//
// Either field can be recovered independently from an encoded buffer:
//
//	ts, err := hashid.DecodeTimestamp(buf) // fails on a malformed label
//	d := hashid.DecodeDigest(buf)          // cannot fail: width is fixed
//
// Decoding never panics and never partially succeeds; malformed input is
// reported through sentinel errors compatible with errors.Is().
//
// # Serialization
//
// Beyond the canonical 44-byte encoding, Identifier implements the binary,
// text, JSON, and YAML marshaler interfaces (serialization contract
// version 1). Every form round-trips through the same canonical layout.
//
// # Thread Safety
//
// Identifier is an immutable value type and every function here is a pure
// computation over its inputs (construction reads, but never mutates, the
// configured clock and entropy source). All operations are safe for
// concurrent use without coordination.
package hashid
