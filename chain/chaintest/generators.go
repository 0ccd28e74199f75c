// Package chaintest provides rapid generators for property-based tests over
// chain identifiers. Generators draw from the real catalog, so properties
// checked with them hold for every registered chain rather than a synthetic
// sample.
package chaintest

import (
	"slices"

	"pgregory.net/rapid"

	"github.com/smartcontractkit/chain-registry/chain"
)

// allNamed is the catalog snapshot the generators sample from.
var allNamed = slices.Collect(chain.AllNamed())

// NamedChains generates registered chains, sampled uniformly from the
// catalog.
func NamedChains() *rapid.Generator[chain.Named] {
	return rapid.SampledFrom(allNamed)
}

// UnnamedIDs generates 64-bit chain IDs that have no catalog entry. The few
// values colliding with registered IDs are filtered out, so the generator
// is safe for properties that require a metadata miss.
func UnnamedIDs() *rapid.Generator[uint64] {
	return rapid.Uint64().Filter(func(id uint64) bool {
		_, registered := chain.NamedFromID(id)
		return !registered
	})
}

// Chains generates chain identifiers, drawing registered chains and
// arbitrary numeric IDs with equal probability.
func Chains() *rapid.Generator[chain.Chain] {
	return ChainsBiased(0.5)
}

// ChainsBiased generates chain identifiers with probability p of drawing a
// registered chain and 1-p of drawing an arbitrary numeric ID. An arbitrary
// draw may still collide with a registered ID; canonical equivalence makes
// such a value indistinguishable from the named chain, so no filtering is
// applied here.
//
// p <= 0 draws numeric IDs only and p >= 1 registered chains only; the
// endpoints are exact, not probabilistic, since Float64Range emits its
// boundary values.
func ChainsBiased(p float64) *rapid.Generator[chain.Chain] {
	return rapid.Custom(func(t *rapid.T) chain.Chain {
		if p >= 1 || (p > 0 && rapid.Float64Range(0, 1).Draw(t, "bias") < p) {
			return chain.FromNamed(NamedChains().Draw(t, "named"))
		}

		return chain.FromID(rapid.Uint64().Draw(t, "id"))
	})
}
