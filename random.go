package hashid

import (
	"fmt"
	"io"

	"github.com/wasmium-network/hashid/digest"
	"github.com/wasmium-network/hashid/tai64"
)

// Rand32 builds an Identifier from 32 bytes of random input material.
// The random bytes are hashed to produce the digest, never stored
// directly. The error path only triggers when the entropy source fails.
func Rand32(opts ...Option) (Identifier, error) {
	return randomIdentifier(32, opts)
}

// Rand64 builds an Identifier from 64 bytes of random input material.
func Rand64(opts ...Option) (Identifier, error) {
	return randomIdentifier(64, opts)
}

func randomIdentifier(width int, opts []Option) (Identifier, error) {
	cfg := newConfig(opts)

	buf := make([]byte, width)
	if _, err := io.ReadFull(cfg.entropy, buf); err != nil {
		return Identifier{}, fmt.Errorf("hashid: read %d random bytes: %w", width, err)
	}

	return Identifier{
		timestamp: tai64.FromTime(cfg.clock.Now()),
		digest:    digest.Sum(buf),
	}, nil
}
