/*
Package chain models EIP-155 chain identity: a chain is whatever a 64-bit
chain ID says it is, and a curated catalog attaches names and metadata to
the IDs that are well known.

# Overview

The package is built around two types:

  - Named: a chain registered in the built-in catalog. Each Named constant
    is the chain's EIP-155 ID, so Mainnet == Named(1) and converting between
    the symbolic and numeric forms costs nothing.
  - Chain: an arbitrary chain identifier. It wraps any 64-bit chain ID,
    registered or not, and compares, hashes, and orders by the numeric ID
    alone. FromNamed(Mainnet) == FromID(1) holds by construction.

The catalog is closed: records are declared in this package and never
mutated at runtime. Feeding an unregistered ID is not an error anywhere in
the API, because in an open network every 64-bit value is a legitimate
chain ID. Lookups that need a catalog entry return an ok bool instead.

# Parsing

Parse resolves the three accepted string forms in order: registered name or
alias, decimal chain ID, 0x-prefixed hexadecimal chain ID.

	c, err := chain.Parse("mainnet") // chain.FromNamed(chain.Mainnet)
	c, err = chain.Parse("1")        // the same chain
	c, err = chain.Parse("0x1")      // the same chain
	c, err = chain.Parse("822861")   // an unregistered but valid chain

Name matching is case-insensitive and folds underscores to hyphens, so
"Arbitrum_One" resolves like "arbitrum-one". Aliases are accepted on parse
but never emitted: encoders always produce the canonical display name.

# Metadata

Metadata returns the full catalog record; convenience accessors cover the
common fields.

	if bt, ok := chain.Optimism.AverageBlockTime(); ok {
		fmt.Println(bt) // 2s
	}
	api, base, ok := chain.Mainnet.ExplorerURLs()

The ExplorerAPIKeyName accessor only names an environment variable; this
package never reads the environment itself.

# Classification

Chain family predicates (IsOptimism, IsArbitrum, IsElastic, ...) are
curated membership lists. A chain joins a family when it is added to the
list explicitly; structural similarity to an existing member is never
enough. The same holds for the SupportsShanghai hardfork allow-list.

# Encodings

Named and Chain implement encoding.TextMarshaler/Unmarshaler, json
marshaling, and RLP via github.com/ethereum/go-ethereum/rlp. Chain encodes
as its display name when registered and as a bare number otherwise, and
accepts either on decode. Named refuses to encode or decode unregistered
IDs, keeping its wire form closed over the catalog.

# Enumeration

AllNamed, Records, and ListChainIDs enumerate the catalog. AllNamed and
Records yield in declaration order; ListChainIDs returns ascending chain
IDs and takes functional options to filter:

	ids := chain.ListChainIDs(
		chain.WithTestnetsOnly(),
		chain.WithChainIDsExclusion(chain.Sepolia.ID()),
	)
*/
package chain
