package hashid

import (
	"encoding/hex"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/wasmium-network/hashid/digest"
	"github.com/wasmium-network/hashid/tai64"
)

// MarshalVersion identifies the structured serialization contract
// implemented by the marshaler interfaces below. Version 1: the binary
// form is the canonical 44-byte layout verbatim, and the text, JSON, and
// YAML forms are its lowercase hex rendering. Every form round-trips
// through the canonical layout.
const MarshalVersion = 1

// MarshalBinary returns the canonical 44-byte encoding.
func (id Identifier) MarshalBinary() ([]byte, error) {
	buf := id.Encode()
	return buf[:], nil
}

// UnmarshalBinary decodes a canonical 44-byte encoding. Wrong-length input
// is reported as ErrMalformedTimestamp when even the timestamp field is
// incomplete, and as ErrMalformedDigest otherwise.
func (id *Identifier) UnmarshalBinary(data []byte) error {
	if len(data) != EncodedSize {
		if len(data) < tai64.Size {
			return fmt.Errorf("hashid: unmarshal binary: %w: got %d bytes, want %d",
				ErrMalformedTimestamp, len(data), EncodedSize)
		}
		return fmt.Errorf("hashid: unmarshal binary: %w: got %d bytes, want %d",
			ErrMalformedDigest, len(data), EncodedSize)
	}

	n, err := tai64.Parse(data[:tai64.Size])
	if err != nil {
		return fmt.Errorf("hashid: unmarshal binary: %w: %w", ErrMalformedTimestamp, err)
	}

	d, err := digest.FromBytes(data[tai64.Size:])
	if err != nil {
		return fmt.Errorf("hashid: unmarshal binary: %w: %w", ErrMalformedDigest, err)
	}

	id.timestamp = n
	id.digest = d
	return nil
}

// MarshalText returns the canonical encoding as 88 lowercase hex
// characters. This is also the JSON form.
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText decodes the hex form produced by MarshalText.
func (id *Identifier) UnmarshalText(text []byte) error {
	raw, err := hex.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("hashid: unmarshal text: %w", err)
	}
	return id.UnmarshalBinary(raw)
}

// MarshalYAML renders the identifier as a hex scalar.
func (id Identifier) MarshalYAML() (any, error) {
	return id.String(), nil
}

// UnmarshalYAML decodes a hex scalar produced by MarshalYAML.
func (id *Identifier) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("hashid: unmarshal yaml: %w", err)
	}
	return id.UnmarshalText([]byte(s))
}
