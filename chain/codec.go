package chain

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/rlp"
)

// MarshalText encodes the canonical display name. Unregistered values fail
// to encode, which keeps the symbolic wire form restricted to catalog
// names.
func (n Named) MarshalText() ([]byte, error) {
	md, ok := n.Metadata()
	if !ok {
		return nil, fmt.Errorf("chain %d is not registered", uint64(n))
	}

	return []byte(md.Name), nil
}

// UnmarshalText parses a chain name or alias.
func (n *Named) UnmarshalText(text []byte) error {
	parsed, err := ParseNamed(string(text))
	if err != nil {
		return err
	}

	*n = parsed

	return nil
}

// EncodeRLP writes the chain ID as a canonical RLP unsigned integer.
func (n Named) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, uint64(n))
}

// DecodeRLP reads an RLP unsigned integer and requires it to be a
// registered chain ID.
func (n *Named) DecodeRLP(s *rlp.Stream) error {
	id, err := s.Uint64()
	if err != nil {
		return err
	}

	named, ok := NamedFromID(id)
	if !ok {
		return fmt.Errorf("chain %d is not registered", id)
	}

	*n = named

	return nil
}

// MarshalText encodes the display name for registered chains and the
// decimal chain ID otherwise. Both forms round-trip through UnmarshalText.
func (c Chain) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a chain name, alias, or numeric literal.
func (c *Chain) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// MarshalJSON encodes registered chains as their display name and
// everything else as a JSON number, mirroring the text form.
func (c Chain) MarshalJSON() ([]byte, error) {
	if c.IsNamed() {
		return json.Marshal(c.String())
	}

	return json.Marshal(c.id)
}

// UnmarshalJSON accepts both encodings produced by MarshalJSON, plus any
// string form accepted by Parse.
func (c *Chain) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := Parse(s)
		if err != nil {
			return err
		}

		*c = parsed

		return nil
	}

	var id uint64
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("chain must be a name or an unsigned chain ID: %w", err)
	}

	*c = FromID(id)

	return nil
}

// EncodeRLP writes the chain ID as a canonical RLP unsigned integer.
func (c Chain) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, c.id)
}

// DecodeRLP reads any RLP-encoded 64-bit chain ID. Unlike Named, a Chain
// accepts unregistered IDs.
func (c *Chain) DecodeRLP(s *rlp.Stream) error {
	id, err := s.Uint64()
	if err != nil {
		return err
	}

	*c = FromID(id)

	return nil
}
