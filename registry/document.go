// Package registry exports the chain catalog as a schema-validated JSON
// document and re-ingests such documents. The in-memory catalog in package
// chain is the source of truth; the document is the contract external
// tooling consumes and may hand back.
package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/smartcontractkit/chain-registry/chain"
	"github.com/smartcontractkit/chain-registry/internal/pointer"
)

// Record is the exported form of one catalog entry. Field names and
// optionality are wire contract; see Schema for the machine-readable
// version.
type Record struct {
	InternalID           string  `json:"internalId"`
	Name                 string  `json:"name"`
	IsLegacy             bool    `json:"isLegacy"`
	IsTestnet            bool    `json:"isTestnet"`
	SupportsShanghai     bool    `json:"supportsShanghai"`
	AverageBlocktimeHint *uint64 `json:"averageBlocktimeHint,omitempty"`
	NativeCurrencySymbol *string `json:"nativeCurrencySymbol,omitempty"`
	EtherscanAPIKeyName  *string `json:"etherscanApiKeyName,omitempty"`
	EtherscanAPIURL      *string `json:"etherscanApiUrl,omitempty"`
	EtherscanBaseURL     *string `json:"etherscanBaseUrl,omitempty"`
}

// Document is a registry export: records keyed by stringified decimal chain
// ID.
type Document struct {
	Chains map[string]Record `json:"chains"`
}

// Export builds the registry document for the full catalog.
func Export() Document {
	chains := make(map[string]Record, chain.NamedCount())
	for n, md := range chain.Records() {
		chains[strconv.FormatUint(n.ID(), 10)] = newRecord(md)
	}

	return Document{Chains: chains}
}

// newRecord converts a catalog record to its exported form. Absent optional
// metadata becomes a nil pointer so the field is omitted from the JSON.
func newRecord(md chain.Metadata) Record {
	rec := Record{
		InternalID:       md.InternalID,
		Name:             md.Name,
		IsLegacy:         md.Legacy,
		IsTestnet:        md.Testnet,
		SupportsShanghai: md.SupportsShanghai,
	}

	if md.BlockTime > 0 {
		rec.AverageBlocktimeHint = pointer.To(uint64(md.BlockTime / time.Millisecond))
	}
	if md.NativeCurrency != "" {
		rec.NativeCurrencySymbol = pointer.To(md.NativeCurrency)
	}
	if md.ExplorerAPIKeyEnv != "" {
		rec.EtherscanAPIKeyName = pointer.To(md.ExplorerAPIKeyEnv)
	}
	if md.ExplorerAPIURL != "" {
		rec.EtherscanAPIURL = pointer.To(md.ExplorerAPIURL)
	}
	if md.ExplorerBaseURL != "" {
		rec.EtherscanBaseURL = pointer.To(md.ExplorerBaseURL)
	}

	return rec
}

// Record returns the exported record for a chain ID.
func (d Document) Record(id uint64) (Record, bool) {
	rec, ok := d.Chains[strconv.FormatUint(id, 10)]
	return rec, ok
}

// MarshalJSON encodes the document with chain keys in ascending numeric
// order, so repeated exports of the same catalog are byte-identical and
// diff cleanly.
func (d Document) MarshalJSON() ([]byte, error) {
	ids := make([]uint64, 0, len(d.Chains))
	for key := range d.Chains {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("chain key %q is not a decimal chain ID", key)
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var buf bytes.Buffer
	buf.WriteString(`{"chains":{`)
	for i, id := range ids {
		if i > 0 {
			buf.WriteByte(',')
		}

		key := strconv.FormatUint(id, 10)
		rec, err := json.Marshal(d.Chains[key])
		if err != nil {
			return nil, fmt.Errorf("chain %s: %w", key, err)
		}

		buf.WriteByte('"')
		buf.WriteString(key)
		buf.WriteString(`":`)
		buf.Write(rec)
	}
	buf.WriteString("}}")

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a registry document. Keys must be decimal chain IDs
// and records must carry only the documented fields; anything else is
// rejected rather than silently dropped.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw struct {
		Chains map[string]json.RawMessage `json:"chains"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Chains == nil {
		return errors.New(`registry document has no "chains" object`)
	}

	chains := make(map[string]Record, len(raw.Chains))
	for key, recData := range raw.Chains {
		if _, err := strconv.ParseUint(key, 10, 64); err != nil {
			return fmt.Errorf("chain key %q is not a decimal chain ID", key)
		}

		dec := json.NewDecoder(bytes.NewReader(recData))
		dec.DisallowUnknownFields()

		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("chain %s: %w", key, err)
		}

		chains[key] = rec
	}

	d.Chains = chains

	return nil
}

// Decode reads a registry document from r.
func Decode(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read registry document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}

	return doc, nil
}
