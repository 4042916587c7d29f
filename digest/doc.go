// Package digest wraps the BLAKE3 cryptographic hash behind a fixed
// 32-byte value type.
//
// # Usage
//
//	d := digest.Sum([]byte("some content"))
//	fmt.Println(d) // 64 hex characters
//
//	d, err := digest.FromBytes(raw)
//	if err != nil {
//	    // raw was not exactly 32 bytes
//	}
package digest
