package chain

import (
	"strconv"
	"strings"
)

// Named identifies a chain registered in the built-in catalog. The numeric
// value of a Named constant is the EIP-155 chain ID itself, so converting
// between the two is free and comparisons can never disagree with the raw
// ID. The zero value is not a registered chain.
type Named uint64

// Registered chains, in catalog declaration order. Declaration order is the
// iteration order of AllNamed and Records.
const (
	Mainnet Named = 1
	Morden  Named = 2
	Ropsten Named = 3
	Rinkeby Named = 4
	Goerli  Named = 5
	Kovan   Named = 42
	Holesky Named = 17000
	Hoodi   Named = 560048
	Sepolia Named = 11155111

	Odyssey Named = 911867

	Optimism        Named = 10
	OptimismKovan   Named = 69
	OptimismGoerli  Named = 420
	OptimismSepolia Named = 11155420

	Bob        Named = 60808
	BobSepolia Named = 808813

	Arbitrum        Named = 42161
	ArbitrumTestnet Named = 421611
	ArbitrumGoerli  Named = 421613
	ArbitrumSepolia Named = 421614
	ArbitrumNova    Named = 42170

	Cronos        Named = 25
	CronosTestnet Named = 338

	Rsk        Named = 30
	RskTestnet Named = 31

	TelosEvm        Named = 40
	TelosEvmTestnet Named = 41

	Crab     Named = 44
	Darwinia Named = 46
	Koi      Named = 701

	BinanceSmartChain        Named = 56
	BinanceSmartChainTestnet Named = 97

	Poa   Named = 99
	Sokol Named = 77

	Scroll        Named = 534352
	ScrollSepolia Named = 534351

	Metis Named = 1088

	CfxTestnet Named = 71
	Cfx        Named = 1030

	Gnosis Named = 100

	Polygon     Named = 137
	PolygonAmoy Named = 80002

	Fantom        Named = 250
	FantomTestnet Named = 4002

	Moonbeam    Named = 1284
	MoonbeamDev Named = 1281

	Moonriver Named = 1285

	Moonbase Named = 1287

	Dev          Named = 1337
	AnvilHardhat Named = 31337

	GravityAlphaMainnet        Named = 1625
	GravityAlphaTestnetSepolia Named = 13505

	Evmos        Named = 9001
	EvmosTestnet Named = 9000

	Plasma Named = 9745

	Chiado Named = 10200

	Oasis Named = 26863

	Emerald        Named = 42262
	EmeraldTestnet Named = 42261

	FilecoinMainnet            Named = 314
	FilecoinCalibrationTestnet Named = 314159

	Avalanche     Named = 43114
	AvalancheFuji Named = 43113

	Celo        Named = 42220
	CeloSepolia Named = 11142220

	Aurora        Named = 1313161554
	AuroraTestnet Named = 1313161555

	Canto        Named = 7700
	CantoTestnet Named = 740

	Boba Named = 288

	Base         Named = 8453
	BaseGoerli   Named = 84531
	BaseSepolia  Named = 84532
	Syndr        Named = 404
	SyndrSepolia Named = 444444

	Shimmer Named = 148

	Ink        Named = 57073
	InkSepolia Named = 763373

	Fraxtal        Named = 252
	FraxtalTestnet Named = 2522

	Blast        Named = 81457
	BlastSepolia Named = 168587773

	Linea        Named = 59144
	LineaGoerli  Named = 59140
	LineaSepolia Named = 59141

	ZkSync        Named = 324
	ZkSyncTestnet Named = 300

	Mantle        Named = 5000
	MantleSepolia Named = 5003

	Xai        Named = 660279
	XaiSepolia Named = 37714555429

	HappychainTestnet Named = 216

	Viction Named = 88

	Zora        Named = 7777777
	ZoraSepolia Named = 999999999

	Pgn        Named = 424
	PgnSepolia Named = 58008

	Mode        Named = 34443
	ModeSepolia Named = 919

	Elastos Named = 20

	Etherlink Named = 42793

	EtherlinkTestnet Named = 128123

	Degen Named = 666666666

	OpBNBMainnet Named = 204
	OpBNBTestnet Named = 5611

	Ronin Named = 2020

	RoninTestnet Named = 2021

	Taiko      Named = 167000
	TaikoHekla Named = 167009

	AutonomysNovaTestnet Named = 490000

	Flare        Named = 14
	FlareCoston2 Named = 114

	Acala               Named = 787
	AcalaMandalaTestnet Named = 595
	AcalaTestnet        Named = 597

	Karura            Named = 686
	KaruraTestnet     Named = 596
	Pulsechain        Named = 369
	PulsechainTestnet Named = 943

	Cannon Named = 13370

	Immutable        Named = 13371
	ImmutableTestnet Named = 13473

	Soneium Named = 1868

	SoneiumMinatoTestnet Named = 1946

	World         Named = 480
	WorldSepolia  Named = 4801
	Iotex         Named = 4689
	Core          Named = 1116
	Merlin        Named = 4200
	Bitlayer      Named = 200901
	Vana          Named = 1480
	Zeta          Named = 7000
	Kaia          Named = 8217
	Story         Named = 1514
	Sei           Named = 1329
	SeiTestnet    Named = 1328
	StableMainnet Named = 988
	StableTestnet Named = 2201

	Unichain        Named = 130
	UnichainSepolia Named = 1301

	SignetPecorino Named = 14174

	ApeChain Named = 33139
	Curtis   Named = 33111

	Sonic        Named = 146
	SonicTestnet Named = 14601

	Treasure Named = 61166

	TreasureTopaz Named = 978658

	BerachainBepolia Named = 80069

	Berachain Named = 80094

	SuperpositionTestnet Named = 98985

	Superposition Named = 55244

	Monad Named = 143

	MonadTestnet Named = 10143

	Hyperliquid Named = 999

	Abstract Named = 2741

	AbstractTestnet Named = 11124

	Corn Named = 21000000

	CornTestnet Named = 21000001

	Sophon Named = 50104

	SophonTestnet Named = 531050104

	PolkadotTestnet Named = 420420417

	Lens Named = 232

	LensTestnet Named = 37111

	Injective Named = 1776

	InjectiveTestnet Named = 1439

	Katana Named = 747474

	Lisk Named = 1135

	Fuse         Named = 122
	FluentDevnet Named = 20993

	FluentTestnet Named = 20994

	SkaleBase Named = 1562508942

	SkaleBaseTestnet Named = 324705682

	MemeCore    Named = 4352
	Formicarium Named = 43521
	Insectarium Named = 43522
)

// ID returns the EIP-155 chain ID.
func (n Named) ID() uint64 {
	return uint64(n)
}

// String returns the canonical display name when n is registered, and the
// decimal chain ID otherwise. Registered names round-trip through
// ParseNamed.
func (n Named) String() string {
	if md, ok := n.Metadata(); ok {
		return md.Name
	}

	return strconv.FormatUint(uint64(n), 10)
}

// NamedFromID returns the registered chain with the given EIP-155 chain ID.
// It returns false for IDs that have no catalog entry.
func NamedFromID(id uint64) (Named, bool) {
	n := Named(id)
	if _, ok := recordIndex[n]; !ok {
		return 0, false
	}

	return n, true
}

// ParseNamed resolves a chain name or alias to its registered chain.
// Matching is case-insensitive and folds underscores to hyphens, so
// "telos_evm" and "TELOS-EVM" both resolve to TelosEvm. It returns an
// *UnknownNameError when the string matches neither a name nor an alias.
func ParseNamed(s string) (Named, error) {
	if n, ok := nameIndex[foldName(s)]; ok {
		return n, nil
	}

	return 0, &UnknownNameError{Input: s}
}

// foldName normalizes a name for lookup. Aliases are indexed in folded form,
// so a single map probe covers every accepted spelling.
func foldName(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "_", "-")
}
