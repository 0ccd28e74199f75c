package chain

import (
	"strconv"

	chain_selectors "github.com/smartcontractkit/chain-selectors"
)

// ChainSelector returns the globally unique chain selector assigned to the
// chain ID. Selectors identify chains in systems that span multiple chain
// families, where a raw EIP-155 ID alone would be ambiguous. ok is false
// when no selector is assigned to the ID.
func (c Chain) ChainSelector() (uint64, bool) {
	details, err := chain_selectors.GetChainDetailsByChainIDAndFamily(
		strconv.FormatUint(c.id, 10),
		chain_selectors.FamilyEVM,
	)
	if err != nil {
		return 0, false
	}

	return details.ChainSelector, true
}

// ChainSelector returns the chain selector assigned to the registered
// chain's ID. See Chain.ChainSelector.
func (n Named) ChainSelector() (uint64, bool) {
	return FromNamed(n).ChainSelector()
}

// FromChainSelector resolves a chain selector back to the chain identifier
// it was assigned to. ok is false for selectors that are unassigned or not
// EVM-family.
func FromChainSelector(selector uint64) (Chain, bool) {
	family, err := chain_selectors.GetSelectorFamily(selector)
	if err != nil || family != chain_selectors.FamilyEVM {
		return Chain{}, false
	}

	idStr, err := chain_selectors.GetChainIDFromSelector(selector)
	if err != nil {
		return Chain{}, false
	}

	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return Chain{}, false
	}

	return FromID(id), true
}
