package chain

import (
	"cmp"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Chain is an EIP-155 chain identifier. It holds either a registered chain
// or an arbitrary numeric ID, and the two forms are canonically equivalent:
// equality, hashing, and ordering are all defined by the numeric ID alone,
// so FromNamed(Mainnet) == FromID(1) and either may be used as a map key
// interchangeably.
//
// The zero value is chain ID 0, a valid unregistered ID.
type Chain struct {
	id uint64
}

// FromID returns the chain identifier for a raw EIP-155 chain ID. Every
// 64-bit value is accepted; IDs without a catalog entry simply carry no
// metadata.
func FromID(id uint64) Chain {
	return Chain{id: id}
}

// FromNamed returns the chain identifier of a registered chain.
func FromNamed(n Named) Chain {
	return Chain{id: uint64(n)}
}

// FromBig converts a big integer chain ID. ok is false when id is nil,
// negative, or wider than 64 bits.
func FromBig(id *big.Int) (Chain, bool) {
	if id == nil || !id.IsUint64() {
		return Chain{}, false
	}

	return Chain{id: id.Uint64()}, true
}

// Parse resolves a chain name, alias, or numeric literal. Names are matched
// first, then decimal chain IDs, then 0x-prefixed hexadecimal chain IDs. It
// returns an *UnknownNameError when none of the three forms match.
func Parse(s string) (Chain, error) {
	if n, err := ParseNamed(s); err == nil {
		return FromNamed(n), nil
	}
	if id, err := strconv.ParseUint(s, 10, 64); err == nil {
		return FromID(id), nil
	}
	if hex, ok := strings.CutPrefix(s, "0x"); ok {
		if id, err := strconv.ParseUint(hex, 16, 64); err == nil {
			return FromID(id), nil
		}
	}

	return Chain{}, &UnknownNameError{Input: s}
}

// ID returns the EIP-155 chain ID.
func (c Chain) ID() uint64 {
	return c.id
}

// Named returns the registered chain for this ID, if the catalog has one.
func (c Chain) Named() (Named, bool) {
	return NamedFromID(c.id)
}

// IsNamed reports whether the chain ID belongs to a registered chain.
func (c Chain) IsNamed() bool {
	_, ok := c.Named()
	return ok
}

// Metadata returns the catalog record for the chain ID, if registered.
func (c Chain) Metadata() (Metadata, bool) {
	return Named(c.id).Metadata()
}

// String returns the display name for registered chains and the decimal
// chain ID otherwise. The result round-trips through Parse either way.
func (c Chain) String() string {
	return Named(c.id).String()
}

// Big returns the chain ID as a newly allocated big integer.
func (c Chain) Big() *big.Int {
	return new(big.Int).SetUint64(c.id)
}

// Cmp compares two chain identifiers by numeric chain ID, consistent with
// equality.
func (c Chain) Cmp(other Chain) int {
	return cmp.Compare(c.id, other.id)
}

// IsLegacy reports whether the chain ID belongs to a registered chain
// without EIP-1559 fee semantics. Unregistered IDs report false.
func (c Chain) IsLegacy() bool {
	return Named(c.id).IsLegacy()
}

// IsTestnet reports whether the chain ID belongs to a registered test
// network. Unregistered IDs report false.
func (c Chain) IsTestnet() bool {
	return Named(c.id).IsTestnet()
}

// SupportsShanghai reports whether the chain ID is on the Shanghai hardfork
// allow-list. Unregistered IDs report false.
func (c Chain) SupportsShanghai() bool {
	return Named(c.id).SupportsShanghai()
}

// IsEthereum reports whether the chain is an Ethereum mainnet or testnet.
func (c Chain) IsEthereum() bool {
	return Named(c.id).IsEthereum()
}

// IsOptimism reports whether the chain runs on the OP Stack.
func (c Chain) IsOptimism() bool {
	return Named(c.id).IsOptimism()
}

// IsArbitrum reports whether the chain is part of the Arbitrum family.
func (c Chain) IsArbitrum() bool {
	return Named(c.id).IsArbitrum()
}

// IsGnosis reports whether the chain is part of the Gnosis family.
func (c Chain) IsGnosis() bool {
	return Named(c.id).IsGnosis()
}

// IsPolygon reports whether the chain is part of the Polygon family.
func (c Chain) IsPolygon() bool {
	return Named(c.id).IsPolygon()
}

// IsElastic reports whether the chain is part of the ZKsync Elastic
// Network.
func (c Chain) IsElastic() bool {
	return Named(c.id).IsElastic()
}

// AverageBlockTime returns the catalog's block-time hint, when the chain is
// registered and has one.
func (c Chain) AverageBlockTime() (time.Duration, bool) {
	return Named(c.id).AverageBlockTime()
}

// NativeCurrencySymbol returns the native currency ticker, when the chain
// is registered and has one.
func (c Chain) NativeCurrencySymbol() (string, bool) {
	return Named(c.id).NativeCurrencySymbol()
}

// ExplorerURLs returns the block explorer API and base URLs, when the
// chain is registered and has them.
func (c Chain) ExplorerURLs() (api, base string, ok bool) {
	return Named(c.id).ExplorerURLs()
}

// ExplorerAPIKeyName returns the name of the environment variable that
// conventionally holds the explorer API key, when the chain is registered
// and has one.
func (c Chain) ExplorerAPIKeyName() (string, bool) {
	return Named(c.id).ExplorerAPIKeyName()
}

// PublicDNSNetworkProtocol returns the DNS discovery enrtree URL for the
// chains that publish one.
func (c Chain) PublicDNSNetworkProtocol() (string, bool) {
	return Named(c.id).PublicDNSNetworkProtocol()
}

// WrappedNativeToken returns the canonical wrapped native token address,
// when the chain is registered and has a recorded deployment.
func (c Chain) WrappedNativeToken() (common.Address, bool) {
	return Named(c.id).WrappedNativeToken()
}
