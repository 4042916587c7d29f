// Package tai64 implements the TAI64N timestamp label, a fixed 12-byte
// big-endian encoding of a high-resolution instant.
//
// # Format
//
// A TAI64N label is 12 bytes: a uint64 count of TAI seconds offset by
// 2^62, followed by a uint32 nanosecond count in [0, 10^9). Because both
// fields are big-endian and seconds come first, byte-wise comparison of
// labels preserves chronological order.
//
// # Usage
//
//	now := tai64.Now()
//	later := tai64.Now()
//	if now.Before(later) {
//	    // labels sort the same way the instants do
//	}
//
//	n, err := tai64.Parse(raw)
//	if err != nil {
//	    // raw was not 12 bytes, or its nanosecond field was out of range
//	}
package tai64
