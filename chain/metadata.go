package chain

import "time"

// Metadata is the static catalog record of a registered chain. Records are
// declared once in the catalog table and never mutated at runtime.
type Metadata struct {
	// Chain is the registered chain this record describes.
	Chain Named

	// InternalID is the Go identifier of the chain constant. It is the
	// stable key used by code generation and the registry export.
	InternalID string

	// Name is the canonical display name, emitted by String and every text
	// encoder. Aliases are additional spellings accepted on parse but never
	// emitted.
	Name    string
	Aliases []string

	// Legacy marks chains without EIP-1559 fee semantics. Testnet marks test
	// networks. SupportsShanghai is a curated allow-list of chains with the
	// Shanghai hardfork activated, not a heuristic.
	Legacy           bool
	Testnet          bool
	SupportsShanghai bool

	// BlockTime is the average interval between blocks. Zero means unknown.
	BlockTime time.Duration

	// NativeCurrency is the symbol of the chain's gas currency, if known.
	NativeCurrency string

	// ExplorerAPIURL and ExplorerBaseURL locate the chain's block explorer,
	// recorded without a trailing slash. ExplorerAPIKeyEnv names the
	// environment variable a consumer should read for the explorer API key;
	// it is metadata only and never read by this package.
	ExplorerAPIURL    string
	ExplorerBaseURL   string
	ExplorerAPIKeyEnv string
}

// Metadata returns the catalog record for n. ok is false when n is not a
// registered chain; there is no error, any 64-bit value is a legitimate
// chain ID in an open network.
func (n Named) Metadata() (Metadata, bool) {
	i, ok := recordIndex[n]
	if !ok {
		return Metadata{}, false
	}

	return records[i], true
}

// AverageBlockTime returns the average interval between blocks. ok is false
// when the chain is unregistered or its block time is unknown.
func (n Named) AverageBlockTime() (time.Duration, bool) {
	md, ok := n.Metadata()
	if !ok || md.BlockTime == 0 {
		return 0, false
	}

	return md.BlockTime, true
}

// NativeCurrencySymbol returns the symbol of the chain's native currency,
// e.g. "ETH" for Mainnet and "BNB" for BinanceSmartChain.
func (n Named) NativeCurrencySymbol() (string, bool) {
	md, ok := n.Metadata()
	if !ok || md.NativeCurrency == "" {
		return "", false
	}

	return md.NativeCurrency, true
}

// ExplorerURLs returns the block explorer API endpoint and browsable base
// URL for the chain. Neither carries a trailing slash.
func (n Named) ExplorerURLs() (api, base string, ok bool) {
	md, ok := n.Metadata()
	if !ok || md.ExplorerAPIURL == "" {
		return "", "", false
	}

	return md.ExplorerAPIURL, md.ExplorerBaseURL, true
}

// ExplorerAPIKeyName returns the name of the environment variable that
// downstream tooling should read for the chain's explorer API key. The
// variable itself is never read by this package.
func (n Named) ExplorerAPIKeyName() (string, bool) {
	md, ok := n.Metadata()
	if !ok || md.ExplorerAPIKeyEnv == "" {
		return "", false
	}

	return md.ExplorerAPIKeyEnv, true
}
