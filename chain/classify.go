package chain

// Chain family predicates. Membership is curated: a chain appears in a
// family because it was added to the list explicitly, never because its
// metadata looks similar to another member's.

// IsLegacy reports whether the chain predates EIP-1559 fee semantics.
func (n Named) IsLegacy() bool {
	md, ok := n.Metadata()
	return ok && md.Legacy
}

// IsTestnet reports whether the chain is a test network.
func (n Named) IsTestnet() bool {
	md, ok := n.Metadata()
	return ok && md.Testnet
}

// SupportsShanghai reports whether the chain has the Shanghai hardfork
// activated. The set is a curated allow-list kept in the catalog table.
func (n Named) SupportsShanghai() bool {
	md, ok := n.Metadata()
	return ok && md.SupportsShanghai
}

// IsEthereum reports whether the chain is an Ethereum mainnet or testnet.
func (n Named) IsEthereum() bool {
	switch n {
	case Mainnet, Morden, Ropsten, Rinkeby, Goerli, Kovan, Holesky, Sepolia:
		return true
	}

	return false
}

// IsOptimism reports whether the chain runs on the OP Stack.
func (n Named) IsOptimism() bool {
	switch n {
	case Optimism, OptimismGoerli, OptimismKovan, OptimismSepolia,
		Base, BaseGoerli, BaseSepolia,
		Fraxtal, FraxtalTestnet,
		Ink, InkSepolia,
		Mode, ModeSepolia,
		Pgn, PgnSepolia,
		Zora, ZoraSepolia,
		BlastSepolia,
		OpBNBMainnet, OpBNBTestnet,
		Soneium, SoneiumMinatoTestnet,
		Odyssey,
		World, WorldSepolia,
		Unichain, UnichainSepolia,
		HappychainTestnet,
		Lisk,
		Celo,
		Katana:
		return true
	}

	return false
}

// IsArbitrum reports whether the chain is part of the Arbitrum family.
func (n Named) IsArbitrum() bool {
	switch n {
	case Arbitrum, ArbitrumTestnet, ArbitrumGoerli, ArbitrumSepolia, ArbitrumNova:
		return true
	}

	return false
}

// IsGnosis reports whether the chain is part of the Gnosis family.
func (n Named) IsGnosis() bool {
	switch n {
	case Gnosis, Chiado:
		return true
	}

	return false
}

// IsPolygon reports whether the chain is part of the Polygon family.
func (n Named) IsPolygon() bool {
	switch n {
	case Polygon, PolygonAmoy:
		return true
	}

	return false
}

// IsElastic reports whether the chain is part of the ZKsync Elastic
// Network.
func (n Named) IsElastic() bool {
	switch n {
	case ZkSync, ZkSyncTestnet,
		Abstract, AbstractTestnet,
		Sophon, SophonTestnet,
		Lens, LensTestnet:
		return true
	}

	return false
}
