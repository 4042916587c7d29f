package hashid

import (
	"github.com/google/uuid"

	"github.com/wasmium-network/hashid/digest"
)

// Sum hashes data with BLAKE3 and constructs an Identifier for the
// resulting digest in one step.
func Sum(data []byte, opts ...Option) Identifier {
	return New(digest.Sum(data), opts...)
}

// FromUUID derives an Identifier from an existing UUID by hashing its 16
// raw bytes. This gives systems keyed by UUIDs a sortable identifier
// without changing the underlying keys.
func FromUUID(u uuid.UUID, opts ...Option) Identifier {
	return Sum(u[:], opts...)
}
