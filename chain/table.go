package chain

import "time"

// records is the chain catalog. Rows are append-only and keep the
// declaration order of the Named constants; every index is derived from this
// table at package load. Explorer URLs are recorded without a trailing
// slash, and ExplorerAPIKeyEnv only names an environment variable, it is
// never read here.
var records = []Metadata{
	{
		Chain:             Mainnet,
		InternalID:        "Mainnet",
		Name:              "mainnet",
		Aliases:           []string{"ethlive"},
		SupportsShanghai:  true,
		BlockTime:         12 * time.Second,
		NativeCurrency:    "ETH",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=1",
		ExplorerBaseURL:   "https://etherscan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Morden,
		InternalID:        "Morden",
		Name:              "morden",
		Testnet:           true,
		NativeCurrency:    "ETH",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Ropsten,
		InternalID:        "Ropsten",
		Name:              "ropsten",
		Testnet:           true,
		NativeCurrency:    "ETH",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Rinkeby,
		InternalID:        "Rinkeby",
		Name:              "rinkeby",
		Testnet:           true,
		NativeCurrency:    "ETH",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Goerli,
		InternalID:        "Goerli",
		Name:              "goerli",
		Testnet:           true,
		SupportsShanghai:  true,
		NativeCurrency:    "ETH",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Kovan,
		InternalID:        "Kovan",
		Name:              "kovan",
		Testnet:           true,
		NativeCurrency:    "ETH",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Holesky,
		InternalID:        "Holesky",
		Name:              "holesky",
		Testnet:           true,
		SupportsShanghai:  true,
		NativeCurrency:    "ETH",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=17000",
		ExplorerBaseURL:   "https://holesky.etherscan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Hoodi,
		InternalID:        "Hoodi",
		Name:              "hoodi",
		Testnet:           true,
		SupportsShanghai:  true,
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=560048",
		ExplorerBaseURL:   "https://hoodi.etherscan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:            Sepolia,
		InternalID:       "Sepolia",
		Name:             "sepolia",
		Testnet:          true,
		SupportsShanghai: true,
		NativeCurrency:   "ETH",
		ExplorerAPIURL:   "https://api.etherscan.io/v2/api?chainid=11155111",
		ExplorerBaseURL:  "https://sepolia.etherscan.io",
	},
	{
		Chain:            Odyssey,
		InternalID:       "Odyssey",
		Name:             "odyssey",
		Testnet:          true,
		SupportsShanghai: true,
		BlockTime:        1 * time.Second,
		ExplorerAPIURL:   "https://odyssey-explorer.ithaca.xyz/api",
		ExplorerBaseURL:  "https://odyssey-explorer.ithaca.xyz",
	},
	{
		Chain:             Optimism,
		InternalID:        "Optimism",
		Name:              "optimism",
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		NativeCurrency:    "ETH",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=10",
		ExplorerBaseURL:   "https://optimistic.etherscan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             OptimismKovan,
		InternalID:        "OptimismKovan",
		Name:              "optimism-kovan",
		Legacy:            true,
		Testnet:           true,
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             OptimismGoerli,
		InternalID:        "OptimismGoerli",
		Name:              "optimism-goerli",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             OptimismSepolia,
		InternalID:        "OptimismSepolia",
		Name:              "optimism-sepolia",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		NativeCurrency:    "ETH",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=11155420",
		ExplorerBaseURL:   "https://sepolia-optimism.etherscan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:            Bob,
		InternalID:       "Bob",
		Name:             "bob",
		SupportsShanghai: true,
		BlockTime:        2 * time.Second,
		ExplorerAPIURL:   "https://explorer.gobob.xyz/api",
		ExplorerBaseURL:  "https://explorer.gobob.xyz",
	},
	{
		Chain:            BobSepolia,
		InternalID:       "BobSepolia",
		Name:             "bob-sepolia",
		Testnet:          true,
		SupportsShanghai: true,
		BlockTime:        2 * time.Second,
		ExplorerAPIURL:   "https://bob-sepolia.explorer.gobob.xyz/api",
		ExplorerBaseURL:  "https://bob-sepolia.explorer.gobob.xyz",
	},
	{
		Chain:             Arbitrum,
		InternalID:        "Arbitrum",
		Name:              "arbitrum",
		Aliases:           []string{"arbitrum-one"},
		SupportsShanghai:  true,
		BlockTime:         260 * time.Millisecond,
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=42161",
		ExplorerBaseURL:   "https://arbiscan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             ArbitrumTestnet,
		InternalID:        "ArbitrumTestnet",
		Name:              "arbitrum-testnet",
		Testnet:           true,
		BlockTime:         260 * time.Millisecond,
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             ArbitrumGoerli,
		InternalID:        "ArbitrumGoerli",
		Name:              "arbitrum-goerli",
		Testnet:           true,
		BlockTime:         260 * time.Millisecond,
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             ArbitrumSepolia,
		InternalID:        "ArbitrumSepolia",
		Name:              "arbitrum-sepolia",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         260 * time.Millisecond,
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=421614",
		ExplorerBaseURL:   "https://sepolia.arbiscan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             ArbitrumNova,
		InternalID:        "ArbitrumNova",
		Name:              "arbitrum-nova",
		SupportsShanghai:  true,
		BlockTime:         260 * time.Millisecond,
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=42170",
		ExplorerBaseURL:   "https://nova.arbiscan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Cronos,
		InternalID:        "Cronos",
		Name:              "cronos",
		BlockTime:         5700 * time.Millisecond,
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=25",
		ExplorerBaseURL:   "https://cronoscan.com",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             CronosTestnet,
		InternalID:        "CronosTestnet",
		Name:              "cronos-testnet",
		Testnet:           true,
		BlockTime:         5700 * time.Millisecond,
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:            Rsk,
		InternalID:       "Rsk",
		Name:             "rsk",
		Legacy:           true,
		SupportsShanghai: true,
		BlockTime:        25 * time.Second,
		NativeCurrency:   "RBTC",
		ExplorerAPIURL:   "https://blockscout.com/rsk/mainnet/api",
		ExplorerBaseURL:  "https://blockscout.com/rsk/mainnet",
	},
	{
		Chain:            RskTestnet,
		InternalID:       "RskTestnet",
		Name:             "rsk-testnet",
		Legacy:           true,
		Testnet:          true,
		SupportsShanghai: true,
		BlockTime:        25 * time.Second,
		NativeCurrency:   "tRBTC",
		ExplorerAPIURL:   "https://rootstock-testnet.blockscout.com/api",
		ExplorerBaseURL:  "https://rootstock-testnet.blockscout.com",
	},
	{
		Chain:           TelosEvm,
		InternalID:      "TelosEvm",
		Name:            "telos",
		Aliases:         []string{"telos-evm"},
		BlockTime:       500 * time.Millisecond,
		NativeCurrency:  "TLOS",
		ExplorerAPIURL:  "https://api.teloscan.io/api",
		ExplorerBaseURL: "https://teloscan.io",
	},
	{
		Chain:           TelosEvmTestnet,
		InternalID:      "TelosEvmTestnet",
		Name:            "telos-testnet",
		Aliases:         []string{"telos-evm-testnet"},
		Testnet:         true,
		BlockTime:       500 * time.Millisecond,
		NativeCurrency:  "TLOS",
		ExplorerAPIURL:  "https://api.testnet.teloscan.io/api",
		ExplorerBaseURL: "https://testnet.teloscan.io",
	},
	{
		Chain:             Crab,
		InternalID:        "Crab",
		Name:              "crab",
		SupportsShanghai:  true,
		BlockTime:         6 * time.Second,
		NativeCurrency:    "CRAB",
		ExplorerAPIURL:    "https://crab-scan.darwinia.network/api",
		ExplorerBaseURL:   "https://crab-scan.darwinia.network",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             Darwinia,
		InternalID:        "Darwinia",
		Name:              "darwinia",
		SupportsShanghai:  true,
		BlockTime:         6 * time.Second,
		NativeCurrency:    "RING",
		ExplorerAPIURL:    "https://explorer.darwinia.network/api",
		ExplorerBaseURL:   "https://explorer.darwinia.network",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             Koi,
		InternalID:        "Koi",
		Name:              "koi",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         6 * time.Second,
		NativeCurrency:    "KRING",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             BinanceSmartChain,
		InternalID:        "BinanceSmartChain",
		Name:              "bsc",
		Aliases:           []string{"binance-smart-chain", "bnb-smart-chain"},
		SupportsShanghai:  true,
		BlockTime:         750 * time.Millisecond,
		NativeCurrency:    "BNB",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=56",
		ExplorerBaseURL:   "https://bscscan.com",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             BinanceSmartChainTestnet,
		InternalID:        "BinanceSmartChainTestnet",
		Name:              "bsc-testnet",
		Aliases:           []string{"binance-smart-chain-testnet", "bnb-smart-chain-testnet"},
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         750 * time.Millisecond,
		NativeCurrency:    "BNB",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=97",
		ExplorerBaseURL:   "https://testnet.bscscan.com",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:      Poa,
		InternalID: "Poa",
		Name:       "poa",
	},
	{
		Chain:      Sokol,
		InternalID: "Sokol",
		Name:       "sokol",
	},
	{
		Chain:             Scroll,
		InternalID:        "Scroll",
		Name:              "scroll",
		SupportsShanghai:  true,
		BlockTime:         3 * time.Second,
		NativeCurrency:    "ETH",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=534352",
		ExplorerBaseURL:   "https://scrollscan.com",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             ScrollSepolia,
		InternalID:        "ScrollSepolia",
		Name:              "scroll-sepolia",
		Aliases:           []string{"scroll-sepolia-testnet"},
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         3 * time.Second,
		NativeCurrency:    "ETH",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=534351",
		ExplorerBaseURL:   "https://sepolia.scrollscan.com",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:           Metis,
		InternalID:      "Metis",
		Name:            "metis",
		ExplorerAPIURL:  "https://api.routescan.io/v2/network/mainnet/evm/1088/etherscan",
		ExplorerBaseURL: "https://explorer.metis.io",
	},
	{
		Chain:            CfxTestnet,
		InternalID:       "CfxTestnet",
		Name:             "cfx-testnet",
		Aliases:          []string{"conflux-espace-testnet"},
		Testnet:          true,
		SupportsShanghai: true,
		BlockTime:        500 * time.Millisecond,
		NativeCurrency:   "CFX",
		ExplorerAPIURL:   "https://evmapi-testnet.confluxscan.net/api",
		ExplorerBaseURL:  "https://evmtestnet.confluxscan.io",
	},
	{
		Chain:            Cfx,
		InternalID:       "Cfx",
		Name:             "cfx",
		Aliases:          []string{"conflux-espace"},
		SupportsShanghai: true,
		BlockTime:        500 * time.Millisecond,
		NativeCurrency:   "CFX",
		ExplorerAPIURL:   "https://evmapi.confluxscan.net/api",
		ExplorerBaseURL:  "https://evm.confluxscan.io",
	},
	{
		Chain:             Gnosis,
		InternalID:        "Gnosis",
		Name:              "xdai",
		Aliases:           []string{"gnosis", "gnosis-chain"},
		SupportsShanghai:  true,
		BlockTime:         5 * time.Second,
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=100",
		ExplorerBaseURL:   "https://gnosisscan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Polygon,
		InternalID:        "Polygon",
		Name:              "polygon",
		SupportsShanghai:  true,
		BlockTime:         2100 * time.Millisecond,
		NativeCurrency:    "POL",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=137",
		ExplorerBaseURL:   "https://polygonscan.com",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             PolygonAmoy,
		InternalID:        "PolygonAmoy",
		Name:              "amoy",
		Aliases:           []string{"polygon-amoy"},
		Testnet:           true,
		BlockTime:         2100 * time.Millisecond,
		NativeCurrency:    "POL",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=80002",
		ExplorerBaseURL:   "https://amoy.polygonscan.com",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Fantom,
		InternalID:        "Fantom",
		Name:              "fantom",
		Legacy:            true,
		BlockTime:         1200 * time.Millisecond,
		ExplorerAPIKeyEnv: "FTMSCAN_API_KEY",
	},
	{
		Chain:             FantomTestnet,
		InternalID:        "FantomTestnet",
		Name:              "fantom-testnet",
		Legacy:            true,
		Testnet:           true,
		BlockTime:         1200 * time.Millisecond,
		ExplorerAPIKeyEnv: "FTMSCAN_API_KEY",
	},
	{
		Chain:             Moonbeam,
		InternalID:        "Moonbeam",
		Name:              "moonbeam",
		BlockTime:         6500 * time.Millisecond,
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=1284",
		ExplorerBaseURL:   "https://moonbeam.moonscan.io",
		ExplorerAPIKeyEnv: "MOONSCAN_API_KEY",
	},
	{
		Chain:             MoonbeamDev,
		InternalID:        "MoonbeamDev",
		Name:              "moonbeam-dev",
		Testnet:           true,
		ExplorerAPIKeyEnv: "MOONSCAN_API_KEY",
	},
	{
		Chain:             Moonriver,
		InternalID:        "Moonriver",
		Name:              "moonriver",
		BlockTime:         6500 * time.Millisecond,
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=1285",
		ExplorerBaseURL:   "https://moonriver.moonscan.io",
		ExplorerAPIKeyEnv: "MOONSCAN_API_KEY",
	},
	{
		Chain:             Moonbase,
		InternalID:        "Moonbase",
		Name:              "moonbase",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=1287",
		ExplorerBaseURL:   "https://moonbase.moonscan.io",
		ExplorerAPIKeyEnv: "MOONSCAN_API_KEY",
	},
	{
		Chain:      Dev,
		InternalID: "Dev",
		Name:       "dev",
		Testnet:    true,
		BlockTime:  200 * time.Millisecond,
	},
	{
		Chain:            AnvilHardhat,
		InternalID:       "AnvilHardhat",
		Name:             "anvil-hardhat",
		Aliases:          []string{"anvil", "hardhat"},
		Testnet:          true,
		SupportsShanghai: true,
		BlockTime:        200 * time.Millisecond,
	},
	{
		Chain:            GravityAlphaMainnet,
		InternalID:       "GravityAlphaMainnet",
		Name:             "gravity-alpha-mainnet",
		SupportsShanghai: true,
		BlockTime:        260 * time.Millisecond,
		NativeCurrency:   "G",
		ExplorerAPIURL:   "https://explorer.gravity.xyz/api",
		ExplorerBaseURL:  "https://explorer.gravity.xyz",
	},
	{
		Chain:            GravityAlphaTestnetSepolia,
		InternalID:       "GravityAlphaTestnetSepolia",
		Name:             "gravity-alpha-testnet-sepolia",
		Testnet:          true,
		SupportsShanghai: true,
		BlockTime:        260 * time.Millisecond,
		NativeCurrency:   "G",
		ExplorerAPIURL:   "https://explorer-sepolia.gravity.xyz/api",
		ExplorerBaseURL:  "https://explorer-sepolia.gravity.xyz",
	},
	{
		Chain:      Evmos,
		InternalID: "Evmos",
		Name:       "evmos",
		BlockTime:  1900 * time.Millisecond,
	},
	{
		Chain:      EvmosTestnet,
		InternalID: "EvmosTestnet",
		Name:       "evmos-testnet",
		Testnet:    true,
		BlockTime:  1900 * time.Millisecond,
	},
	{
		Chain:             Plasma,
		InternalID:        "Plasma",
		Name:              "plasma",
		BlockTime:         1 * time.Second,
		NativeCurrency:    "XPL",
		ExplorerAPIURL:    "https://api.routescan.io/v2/network/mainnet/evm/9745/etherscan/api",
		ExplorerBaseURL:   "https://plasmascan.to",
		ExplorerAPIKeyEnv: "ROUTESCAN_API_KEY",
	},
	{
		Chain:            Chiado,
		InternalID:       "Chiado",
		Name:             "chiado",
		SupportsShanghai: true,
		BlockTime:        5 * time.Second,
		ExplorerAPIURL:   "https://gnosis-chiado.blockscout.com/api",
		ExplorerBaseURL:  "https://gnosis-chiado.blockscout.com",
	},
	{
		Chain:      Oasis,
		InternalID: "Oasis",
		Name:       "oasis",
		BlockTime:  5500 * time.Millisecond,
	},
	{
		Chain:           Emerald,
		InternalID:      "Emerald",
		Name:            "emerald",
		Legacy:          true,
		BlockTime:       6 * time.Second,
		ExplorerAPIURL:  "https://explorer.emerald.oasis.dev/api",
		ExplorerBaseURL: "https://explorer.emerald.oasis.dev",
	},
	{
		Chain:           EmeraldTestnet,
		InternalID:      "EmeraldTestnet",
		Name:            "emerald-testnet",
		Legacy:          true,
		Testnet:         true,
		ExplorerAPIURL:  "https://testnet.explorer.emerald.oasis.dev/api",
		ExplorerBaseURL: "https://testnet.explorer.emerald.oasis.dev",
	},
	{
		Chain:      FilecoinMainnet,
		InternalID: "FilecoinMainnet",
		Name:       "filecoin-mainnet",
		BlockTime:  30 * time.Second,
	},
	{
		Chain:           FilecoinCalibrationTestnet,
		InternalID:      "FilecoinCalibrationTestnet",
		Name:            "filecoin-calibration-testnet",
		Testnet:         true,
		BlockTime:       30 * time.Second,
		ExplorerAPIURL:  "https://api.calibration.node.glif.io/rpc/v1",
		ExplorerBaseURL: "https://calibration.filfox.info/en",
	},
	{
		Chain:             Avalanche,
		InternalID:        "Avalanche",
		Name:              "avalanche",
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=43114",
		ExplorerBaseURL:   "https://snowscan.xyz",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             AvalancheFuji,
		InternalID:        "AvalancheFuji",
		Name:              "fuji",
		Aliases:           []string{"avalanche-fuji"},
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=43113",
		ExplorerBaseURL:   "https://testnet.snowscan.xyz",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Celo,
		InternalID:        "Celo",
		Name:              "celo",
		SupportsShanghai:  true,
		BlockTime:         1 * time.Second,
		NativeCurrency:    "CELO",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=42220",
		ExplorerBaseURL:   "https://celoscan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             CeloSepolia,
		InternalID:        "CeloSepolia",
		Name:              "celo-sepolia",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         1 * time.Second,
		NativeCurrency:    "CELO",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=11142220",
		ExplorerBaseURL:   "https://sepolia.celoscan.io",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             Aurora,
		InternalID:        "Aurora",
		Name:              "aurora",
		BlockTime:         1100 * time.Millisecond,
		ExplorerAPIURL:    "https://api.aurorascan.dev/api",
		ExplorerBaseURL:   "https://aurorascan.dev",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             AuroraTestnet,
		InternalID:        "AuroraTestnet",
		Name:              "aurora-testnet",
		Testnet:           true,
		BlockTime:         1100 * time.Millisecond,
		ExplorerAPIURL:    "https://testnet.aurorascan.dev/api",
		ExplorerBaseURL:   "https://testnet.aurorascan.dev",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Canto,
		InternalID:        "Canto",
		Name:              "canto",
		BlockTime:         5700 * time.Millisecond,
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             CantoTestnet,
		InternalID:        "CantoTestnet",
		Name:              "canto-testnet",
		Testnet:           true,
		BlockTime:         5700 * time.Millisecond,
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             Boba,
		InternalID:        "Boba",
		Name:              "boba",
		ExplorerAPIURL:    "https://api.bobascan.com/api",
		ExplorerBaseURL:   "https://bobascan.com",
		ExplorerAPIKeyEnv: "BOBASCAN_API_KEY",
	},
	{
		Chain:             Base,
		InternalID:        "Base",
		Name:              "base",
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		NativeCurrency:    "ETH",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=8453",
		ExplorerBaseURL:   "https://basescan.org",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             BaseGoerli,
		InternalID:        "BaseGoerli",
		Name:              "base-goerli",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		NativeCurrency:    "ETH",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             BaseSepolia,
		InternalID:        "BaseSepolia",
		Name:              "base-sepolia",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		NativeCurrency:    "ETH",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=84532",
		ExplorerBaseURL:   "https://sepolia.basescan.org",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Syndr,
		InternalID:        "Syndr",
		Name:              "syndr",
		SupportsShanghai:  true,
		BlockTime:         260 * time.Millisecond,
		ExplorerAPIURL:    "https://explorer.syndr.com/api",
		ExplorerBaseURL:   "https://explorer.syndr.com",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             SyndrSepolia,
		InternalID:        "SyndrSepolia",
		Name:              "syndr-sepolia",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         260 * time.Millisecond,
		ExplorerAPIURL:    "https://sepolia-explorer.syndr.com/api",
		ExplorerBaseURL:   "https://sepolia-explorer.syndr.com",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Shimmer,
		InternalID:        "Shimmer",
		Name:              "shimmer",
		Legacy:            true,
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         5 * time.Second,
		NativeCurrency:    "SMR",
		ExplorerAPIURL:    "https://explorer.evm.shimmer.network/api",
		ExplorerBaseURL:   "https://explorer.evm.shimmer.network",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             Ink,
		InternalID:        "Ink",
		Name:              "ink",
		SupportsShanghai:  true,
		BlockTime:         1 * time.Second,
		ExplorerAPIURL:    "https://explorer.inkonchain.com/api/v2",
		ExplorerBaseURL:   "https://explorer.inkonchain.com",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             InkSepolia,
		InternalID:        "InkSepolia",
		Name:              "ink-sepolia",
		Aliases:           []string{"ink-sepolia-testnet"},
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         1 * time.Second,
		ExplorerAPIURL:    "https://explorer-sepolia.inkonchain.com/api/v2",
		ExplorerBaseURL:   "https://explorer-sepolia.inkonchain.com",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             Fraxtal,
		InternalID:        "Fraxtal",
		Name:              "fraxtal",
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=252",
		ExplorerBaseURL:   "https://fraxscan.com",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             FraxtalTestnet,
		InternalID:        "FraxtalTestnet",
		Name:              "fraxtal-testnet",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=2522",
		ExplorerBaseURL:   "https://holesky.fraxscan.com",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Blast,
		InternalID:        "Blast",
		Name:              "blast",
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=81457",
		ExplorerBaseURL:   "https://blastscan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             BlastSepolia,
		InternalID:        "BlastSepolia",
		Name:              "blast-sepolia",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=168587773",
		ExplorerBaseURL:   "https://sepolia.blastscan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Linea,
		InternalID:        "Linea",
		Name:              "linea",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=59144",
		ExplorerBaseURL:   "https://lineascan.build",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:      LineaGoerli,
		InternalID: "LineaGoerli",
		Name:       "linea-goerli",
		Testnet:    true,
	},
	{
		Chain:             LineaSepolia,
		InternalID:        "LineaSepolia",
		Name:              "linea-sepolia",
		Testnet:           true,
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=59141",
		ExplorerBaseURL:   "https://sepolia.lineascan.build",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             ZkSync,
		InternalID:        "ZkSync",
		Name:              "zksync",
		BlockTime:         1 * time.Second,
		NativeCurrency:    "ETH",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=324",
		ExplorerBaseURL:   "https://era.zksync.network",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             ZkSyncTestnet,
		InternalID:        "ZkSyncTestnet",
		Name:              "zksync-testnet",
		Testnet:           true,
		BlockTime:         1 * time.Second,
		NativeCurrency:    "ETH",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=300",
		ExplorerBaseURL:   "https://sepolia-era.zksync.network",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Mantle,
		InternalID:        "Mantle",
		Name:              "mantle",
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		NativeCurrency:    "MNT",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=5000",
		ExplorerBaseURL:   "https://mantlescan.xyz",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             MantleSepolia,
		InternalID:        "MantleSepolia",
		Name:              "mantle-sepolia",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		NativeCurrency:    "MNT",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=5003",
		ExplorerBaseURL:   "https://sepolia.mantlescan.xyz",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Xai,
		InternalID:        "Xai",
		Name:              "xai",
		SupportsShanghai:  true,
		BlockTime:         260 * time.Millisecond,
		NativeCurrency:    "XAI",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=660279",
		ExplorerBaseURL:   "https://xaiscan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             XaiSepolia,
		InternalID:        "XaiSepolia",
		Name:              "xai-sepolia",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         260 * time.Millisecond,
		NativeCurrency:    "XAI",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=37714555429",
		ExplorerBaseURL:   "https://sepolia.xaiscan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:            HappychainTestnet,
		InternalID:       "HappychainTestnet",
		Name:             "happychain-testnet",
		Testnet:          true,
		SupportsShanghai: true,
		BlockTime:        2 * time.Second,
		NativeCurrency:   "HAPPY",
		ExplorerAPIURL:   "https://explorer.testnet.happy.tech/api",
		ExplorerBaseURL:  "https://explorer.testnet.happy.tech",
	},
	{
		Chain:           Viction,
		InternalID:      "Viction",
		Name:            "viction",
		Legacy:          true,
		BlockTime:       2 * time.Second,
		ExplorerAPIURL:  "https://www.vicscan.xyz/api",
		ExplorerBaseURL: "https://www.vicscan.xyz",
	},
	{
		Chain:             Zora,
		InternalID:        "Zora",
		Name:              "zora",
		BlockTime:         2 * time.Second,
		ExplorerAPIURL:    "https://explorer.zora.energy/api",
		ExplorerBaseURL:   "https://explorer.zora.energy",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             ZoraSepolia,
		InternalID:        "ZoraSepolia",
		Name:              "zora-sepolia",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		ExplorerAPIURL:    "https://sepolia.explorer.zora.energy/api",
		ExplorerBaseURL:   "https://sepolia.explorer.zora.energy",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             Pgn,
		InternalID:        "Pgn",
		Name:              "pgn",
		BlockTime:         2 * time.Second,
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             PgnSepolia,
		InternalID:        "PgnSepolia",
		Name:              "pgn-sepolia",
		Testnet:           true,
		BlockTime:         2 * time.Second,
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             Mode,
		InternalID:        "Mode",
		Name:              "mode",
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		ExplorerAPIURL:    "https://explorer.mode.network/api",
		ExplorerBaseURL:   "https://explorer.mode.network",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             ModeSepolia,
		InternalID:        "ModeSepolia",
		Name:              "mode-sepolia",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		ExplorerAPIURL:    "https://sepolia.explorer.mode.network/api",
		ExplorerBaseURL:   "https://sepolia.explorer.mode.network",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:           Elastos,
		InternalID:      "Elastos",
		Name:            "elastos",
		Legacy:          true,
		BlockTime:       5 * time.Second,
		ExplorerAPIURL:  "https://esc.elastos.io/api",
		ExplorerBaseURL: "https://esc.elastos.io",
	},
	{
		Chain:             Etherlink,
		InternalID:        "Etherlink",
		Name:              "etherlink",
		SupportsShanghai:  true,
		BlockTime:         5 * time.Second,
		NativeCurrency:    "XTZ",
		ExplorerAPIURL:    "https://explorer.etherlink.com/api",
		ExplorerBaseURL:   "https://explorer.etherlink.com",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             EtherlinkTestnet,
		InternalID:        "EtherlinkTestnet",
		Name:              "etherlink-testnet",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         5 * time.Second,
		NativeCurrency:    "XTZ",
		ExplorerAPIURL:    "https://testnet.explorer.etherlink.com/api",
		ExplorerBaseURL:   "https://testnet.explorer.etherlink.com",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:           Degen,
		InternalID:      "Degen",
		Name:            "degen",
		BlockTime:       600 * time.Millisecond,
		NativeCurrency:  "DEGEN",
		ExplorerAPIURL:  "https://explorer.degen.tips/api",
		ExplorerBaseURL: "https://explorer.degen.tips",
	},
	{
		Chain:             OpBNBMainnet,
		InternalID:        "OpBNBMainnet",
		Name:              "opbnb-mainnet",
		Aliases:           []string{"op-bnb-mainnet"},
		SupportsShanghai:  true,
		BlockTime:         1 * time.Second,
		NativeCurrency:    "BNB",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=204",
		ExplorerBaseURL:   "https://opbnb.bscscan.com",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             OpBNBTestnet,
		InternalID:        "OpBNBTestnet",
		Name:              "opbnb-testnet",
		Aliases:           []string{"op-bnb-testnet"},
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         1 * time.Second,
		NativeCurrency:    "BNB",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=5611",
		ExplorerBaseURL:   "https://opbnb-testnet.bscscan.com",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:           Ronin,
		InternalID:      "Ronin",
		Name:            "ronin",
		Legacy:          true,
		BlockTime:       3 * time.Second,
		NativeCurrency:  "RON",
		ExplorerAPIURL:  "https://skynet-api.roninchain.com/ronin",
		ExplorerBaseURL: "https://app.roninchain.com",
	},
	{
		Chain:           RoninTestnet,
		InternalID:      "RoninTestnet",
		Name:            "ronin-testnet",
		Legacy:          true,
		Testnet:         true,
		BlockTime:       3 * time.Second,
		NativeCurrency:  "RON",
		ExplorerAPIURL:  "https://api-gateway.skymavis.com/rpc/testnet",
		ExplorerBaseURL: "https://saigon-app.roninchain.com",
	},
	{
		Chain:             Taiko,
		InternalID:        "Taiko",
		Name:              "taiko",
		SupportsShanghai:  true,
		BlockTime:         12 * time.Second,
		NativeCurrency:    "ETH",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=167000",
		ExplorerBaseURL:   "https://taikoscan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             TaikoHekla,
		InternalID:        "TaikoHekla",
		Name:              "taiko-hekla",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         12 * time.Second,
		NativeCurrency:    "ETH",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=167009",
		ExplorerBaseURL:   "https://hekla.taikoscan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:            AutonomysNovaTestnet,
		InternalID:       "AutonomysNovaTestnet",
		Name:             "autonomys-nova-testnet",
		Testnet:          true,
		SupportsShanghai: true,
		BlockTime:        1 * time.Second,
	},
	{
		Chain:             Flare,
		InternalID:        "Flare",
		Name:              "flare",
		BlockTime:         1800 * time.Millisecond,
		NativeCurrency:    "FLR",
		ExplorerAPIURL:    "https://flare-explorer.flare.network/api",
		ExplorerBaseURL:   "https://flare-explorer.flare.network",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             FlareCoston2,
		InternalID:        "FlareCoston2",
		Name:              "flare-coston2",
		Testnet:           true,
		BlockTime:         2500 * time.Millisecond,
		NativeCurrency:    "C2FLR",
		ExplorerAPIURL:    "https://coston2-explorer.flare.network/api",
		ExplorerBaseURL:   "https://coston2-explorer.flare.network",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             Acala,
		InternalID:        "Acala",
		Name:              "acala",
		SupportsShanghai:  true,
		BlockTime:         12500 * time.Millisecond,
		ExplorerAPIURL:    "https://blockscout.acala.network/api",
		ExplorerBaseURL:   "https://blockscout.acala.network",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             AcalaMandalaTestnet,
		InternalID:        "AcalaMandalaTestnet",
		Name:              "acala-mandala-testnet",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         12500 * time.Millisecond,
		ExplorerAPIURL:    "https://blockscout.mandala.aca-staging.network/api",
		ExplorerBaseURL:   "https://blockscout.mandala.aca-staging.network",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             AcalaTestnet,
		InternalID:        "AcalaTestnet",
		Name:              "acala-testnet",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         12500 * time.Millisecond,
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             Karura,
		InternalID:        "Karura",
		Name:              "karura",
		SupportsShanghai:  true,
		BlockTime:         12500 * time.Millisecond,
		ExplorerAPIURL:    "https://blockscout.karura.network/api",
		ExplorerBaseURL:   "https://blockscout.karura.network",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             KaruraTestnet,
		InternalID:        "KaruraTestnet",
		Name:              "karura-testnet",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         12500 * time.Millisecond,
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:            Pulsechain,
		InternalID:       "Pulsechain",
		Name:             "pulsechain",
		SupportsShanghai: true,
		BlockTime:        10 * time.Second,
		NativeCurrency:   "PLS",
		ExplorerAPIURL:   "https://api.scan.pulsechain.com",
		ExplorerBaseURL:  "https://scan.pulsechain.com",
	},
	{
		Chain:            PulsechainTestnet,
		InternalID:       "PulsechainTestnet",
		Name:             "pulsechain-testnet",
		Testnet:          true,
		SupportsShanghai: true,
		BlockTime:        10101 * time.Millisecond,
		NativeCurrency:   "PLS",
		ExplorerAPIURL:   "https://api.scan.v4.testnet.pulsechain.com",
		ExplorerBaseURL:  "https://scan.v4.testnet.pulsechain.com",
	},
	{
		Chain:            Cannon,
		InternalID:       "Cannon",
		Name:             "cannon",
		Testnet:          true,
		SupportsShanghai: true,
	},
	{
		Chain:             Immutable,
		InternalID:        "Immutable",
		Name:              "immutable",
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		NativeCurrency:    "IMX",
		ExplorerAPIURL:    "https://explorer.immutable.com/api",
		ExplorerBaseURL:   "https://explorer.immutable.com",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             ImmutableTestnet,
		InternalID:        "ImmutableTestnet",
		Name:              "immutable-testnet",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		NativeCurrency:    "tIMX",
		ExplorerAPIURL:    "https://explorer.testnet.immutable.com/api",
		ExplorerBaseURL:   "https://explorer.testnet.immutable.com",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             Soneium,
		InternalID:        "Soneium",
		Name:              "soneium",
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		ExplorerAPIURL:    "https://soneium.blockscout.com/api",
		ExplorerBaseURL:   "https://soneium.blockscout.com",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             SoneiumMinatoTestnet,
		InternalID:        "SoneiumMinatoTestnet",
		Name:              "soneium-minato-testnet",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		ExplorerAPIURL:    "https://soneium-minato.blockscout.com/api",
		ExplorerBaseURL:   "https://soneium-minato.blockscout.com",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             World,
		InternalID:        "World",
		Name:              "world",
		Aliases:           []string{"worldchain"},
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		NativeCurrency:    "WRLD",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=480",
		ExplorerBaseURL:   "https://worldscan.org",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             WorldSepolia,
		InternalID:        "WorldSepolia",
		Name:              "world-sepolia",
		Aliases:           []string{"worldchain-sepolia"},
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		NativeCurrency:    "WRLD",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=4801",
		ExplorerBaseURL:   "https://sepolia.worldscan.org",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:            Iotex,
		InternalID:       "Iotex",
		Name:             "iotex",
		SupportsShanghai: true,
		BlockTime:        5 * time.Second,
		NativeCurrency:   "IOTX",
	},
	{
		Chain:             Core,
		InternalID:        "Core",
		Name:              "core",
		BlockTime:         3 * time.Second,
		NativeCurrency:    "CORE",
		ExplorerAPIURL:    "https://openapi.coredao.org/api",
		ExplorerBaseURL:   "https://scan.coredao.org",
		ExplorerAPIKeyEnv: "CORESCAN_API_KEY",
	},
	{
		Chain:             Merlin,
		InternalID:        "Merlin",
		Name:              "merlin",
		BlockTime:         3 * time.Second,
		NativeCurrency:    "BTC",
		ExplorerAPIURL:    "https://scan.merlinchain.io/api",
		ExplorerBaseURL:   "https://scan.merlinchain.io",
		ExplorerAPIKeyEnv: "MERLINSCAN_API_KEY",
	},
	{
		Chain:             Bitlayer,
		InternalID:        "Bitlayer",
		Name:              "bitlayer",
		BlockTime:         3 * time.Second,
		NativeCurrency:    "BTC",
		ExplorerAPIURL:    "https://api.btrscan.com/scan/api",
		ExplorerBaseURL:   "https://www.btrscan.com",
		ExplorerAPIKeyEnv: "BITLAYERSCAN_API_KEY",
	},
	{
		Chain:             Vana,
		InternalID:        "Vana",
		Name:              "vana",
		BlockTime:         6 * time.Second,
		NativeCurrency:    "VANA",
		ExplorerAPIURL:    "https://api.vanascan.io/api",
		ExplorerBaseURL:   "https://vanascan.io",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             Zeta,
		InternalID:        "Zeta",
		Name:              "zeta",
		BlockTime:         6 * time.Second,
		NativeCurrency:    "ZETA",
		ExplorerAPIURL:    "https://zetachain.blockscout.com/api",
		ExplorerBaseURL:   "https://zetachain.blockscout.com",
		ExplorerAPIKeyEnv: "ZETASCAN_API_KEY",
	},
	{
		Chain:             Kaia,
		InternalID:        "Kaia",
		Name:              "kaia",
		BlockTime:         1 * time.Second,
		NativeCurrency:    "KAIA",
		ExplorerAPIURL:    "https://mainnet-oapi.kaiascan.io/api",
		ExplorerBaseURL:   "https://kaiascan.io",
		ExplorerAPIKeyEnv: "KAIASCAN_API_KEY",
	},
	{
		Chain:             Story,
		InternalID:        "Story",
		Name:              "story",
		BlockTime:         2500 * time.Millisecond,
		NativeCurrency:    "IP",
		ExplorerAPIURL:    "https://www.storyscan.xyz/api/v2",
		ExplorerBaseURL:   "https://www.storyscan.xyz",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             Sei,
		InternalID:        "Sei",
		Name:              "sei",
		BlockTime:         500 * time.Millisecond,
		NativeCurrency:    "SEI",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=1329",
		ExplorerBaseURL:   "https://seiscan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             SeiTestnet,
		InternalID:        "SeiTestnet",
		Name:              "sei-testnet",
		Testnet:           true,
		BlockTime:         500 * time.Millisecond,
		NativeCurrency:    "SEI",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=1328",
		ExplorerBaseURL:   "https://testnet.seiscan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             StableMainnet,
		InternalID:        "StableMainnet",
		Name:              "stable-mainnet",
		SupportsShanghai:  true,
		BlockTime:         700 * time.Millisecond,
		NativeCurrency:    "gUSDT",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=988",
		ExplorerBaseURL:   "https://stablescan.xyz",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             StableTestnet,
		InternalID:        "StableTestnet",
		Name:              "stable-testnet",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         700 * time.Millisecond,
		NativeCurrency:    "gUSDT",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=2201",
		ExplorerBaseURL:   "https://testnet.stablescan.xyz",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Unichain,
		InternalID:        "Unichain",
		Name:              "unichain",
		SupportsShanghai:  true,
		BlockTime:         1 * time.Second,
		NativeCurrency:    "ETH",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=130",
		ExplorerBaseURL:   "https://uniscan.xyz",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             UnichainSepolia,
		InternalID:        "UnichainSepolia",
		Name:              "unichain-sepolia",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         1 * time.Second,
		NativeCurrency:    "ETH",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=1301",
		ExplorerBaseURL:   "https://sepolia.uniscan.xyz",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             SignetPecorino,
		InternalID:        "SignetPecorino",
		Name:              "signet-pecorino",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         12 * time.Second,
		NativeCurrency:    "USDS",
		ExplorerAPIURL:    "https://explorer.pecorino.signet.sh/api",
		ExplorerBaseURL:   "https://explorer.pecorino.signet.sh",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             ApeChain,
		InternalID:        "ApeChain",
		Name:              "apechain",
		SupportsShanghai:  true,
		BlockTime:         260 * time.Millisecond,
		NativeCurrency:    "APE",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=33139",
		ExplorerBaseURL:   "https://apescan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Curtis,
		InternalID:        "Curtis",
		Name:              "curtis",
		Aliases:           []string{"apechain-testnet"},
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         260 * time.Millisecond,
		NativeCurrency:    "APE",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=33111",
		ExplorerBaseURL:   "https://curtis.apescan.io",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             Sonic,
		InternalID:        "Sonic",
		Name:              "sonic",
		BlockTime:         1 * time.Second,
		NativeCurrency:    "S",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=146",
		ExplorerBaseURL:   "https://sonicscan.org",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             SonicTestnet,
		InternalID:        "SonicTestnet",
		Name:              "sonic-testnet",
		Testnet:           true,
		BlockTime:         1 * time.Second,
		NativeCurrency:    "S",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=14601",
		ExplorerBaseURL:   "https://testnet.sonicscan.org",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:          Treasure,
		InternalID:     "Treasure",
		Name:           "treasure",
		Legacy:         true,
		NativeCurrency: "MAGIC",
	},
	{
		Chain:          TreasureTopaz,
		InternalID:     "TreasureTopaz",
		Name:           "treasure-topaz",
		Aliases:        []string{"treasure-topaz-testnet"},
		Legacy:         true,
		Testnet:        true,
		NativeCurrency: "MAGIC",
	},
	{
		Chain:             BerachainBepolia,
		InternalID:        "BerachainBepolia",
		Name:              "berachain-bepolia",
		Aliases:           []string{"berachain-bepolia-testnet"},
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		NativeCurrency:    "BERA",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=80069",
		ExplorerBaseURL:   "https://testnet.berascan.com",
		ExplorerAPIKeyEnv: "BERASCAN_API_KEY",
	},
	{
		Chain:             Berachain,
		InternalID:        "Berachain",
		Name:              "berachain",
		SupportsShanghai:  true,
		BlockTime:         2 * time.Second,
		NativeCurrency:    "BERA",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=80094",
		ExplorerBaseURL:   "https://berascan.com",
		ExplorerAPIKeyEnv: "BERASCAN_API_KEY",
	},
	{
		Chain:             SuperpositionTestnet,
		InternalID:        "SuperpositionTestnet",
		Name:              "superposition-testnet",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         260 * time.Millisecond,
		NativeCurrency:    "ETH",
		ExplorerAPIURL:    "https://testnet-explorer.superposition.so/api",
		ExplorerBaseURL:   "https://testnet-explorer.superposition.so",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             Superposition,
		InternalID:        "Superposition",
		Name:              "superposition",
		SupportsShanghai:  true,
		BlockTime:         260 * time.Millisecond,
		NativeCurrency:    "ETH",
		ExplorerAPIURL:    "https://explorer.superposition.so/api",
		ExplorerBaseURL:   "https://explorer.superposition.so",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             Monad,
		InternalID:        "Monad",
		Name:              "monad",
		SupportsShanghai:  true,
		BlockTime:         400 * time.Millisecond,
		NativeCurrency:    "MON",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=143",
		ExplorerBaseURL:   "https://monadscan.com",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             MonadTestnet,
		InternalID:        "MonadTestnet",
		Name:              "monad-testnet",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         400 * time.Millisecond,
		NativeCurrency:    "MON",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=10143",
		ExplorerBaseURL:   "https://testnet.monadscan.com",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Hyperliquid,
		InternalID:        "Hyperliquid",
		Name:              "hyperliquid",
		BlockTime:         2 * time.Second,
		NativeCurrency:    "HYPE",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=999",
		ExplorerBaseURL:   "https://hyperevmscan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Abstract,
		InternalID:        "Abstract",
		Name:              "abstract",
		BlockTime:         1 * time.Second,
		NativeCurrency:    "ETH",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=2741",
		ExplorerBaseURL:   "https://abscan.org",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             AbstractTestnet,
		InternalID:        "AbstractTestnet",
		Name:              "abstract-testnet",
		Testnet:           true,
		BlockTime:         1 * time.Second,
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=11124",
		ExplorerBaseURL:   "https://sepolia.abscan.org",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Corn,
		InternalID:        "Corn",
		Name:              "corn",
		SupportsShanghai:  true,
		NativeCurrency:    "BTCN",
		ExplorerAPIURL:    "https://api.routescan.io/v2/network/mainnet/evm/21000000/etherscan/api",
		ExplorerBaseURL:   "https://cornscan.io",
		ExplorerAPIKeyEnv: "ROUTESCAN_API_KEY",
	},
	{
		Chain:             CornTestnet,
		InternalID:        "CornTestnet",
		Name:              "corn-testnet",
		Testnet:           true,
		SupportsShanghai:  true,
		NativeCurrency:    "BTCN",
		ExplorerAPIURL:    "https://api.routescan.io/v2/network/testnet/evm/21000001/etherscan/api",
		ExplorerBaseURL:   "https://testnet.cornscan.io",
		ExplorerAPIKeyEnv: "ROUTESCAN_API_KEY",
	},
	{
		Chain:             Sophon,
		InternalID:        "Sophon",
		Name:              "sophon",
		Legacy:            true,
		BlockTime:         1 * time.Second,
		NativeCurrency:    "SOPH",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=50104",
		ExplorerBaseURL:   "https://sophscan.xyz",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             SophonTestnet,
		InternalID:        "SophonTestnet",
		Name:              "sophon-testnet",
		Legacy:            true,
		Testnet:           true,
		BlockTime:         1 * time.Second,
		NativeCurrency:    "SOPH",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=531050104",
		ExplorerBaseURL:   "https://testnet.sophscan.xyz",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:      PolkadotTestnet,
		InternalID: "PolkadotTestnet",
		Name:       "polkadot-testnet",
		Testnet:    true,
	},
	{
		Chain:           Lens,
		InternalID:      "Lens",
		Name:            "lens",
		BlockTime:       1 * time.Second,
		NativeCurrency:  "GHO",
		ExplorerAPIURL:  "https://explorer-api.lens.xyz",
		ExplorerBaseURL: "https://explorer.lens.xyz",
	},
	{
		Chain:           LensTestnet,
		InternalID:      "LensTestnet",
		Name:            "lens-testnet",
		Testnet:         true,
		BlockTime:       1 * time.Second,
		NativeCurrency:  "GRASS",
		ExplorerAPIURL:  "https://block-explorer-api.staging.lens.zksync.dev",
		ExplorerBaseURL: "https://explorer.testnet.lens.xyz",
	},
	{
		Chain:             Injective,
		InternalID:        "Injective",
		Name:              "injective",
		SupportsShanghai:  true,
		BlockTime:         700 * time.Millisecond,
		NativeCurrency:    "INJ",
		ExplorerAPIURL:    "https://blockscout-api.injective.network/api",
		ExplorerBaseURL:   "https://blockscout.injective.network",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             InjectiveTestnet,
		InternalID:        "InjectiveTestnet",
		Name:              "injective-testnet",
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         700 * time.Millisecond,
		NativeCurrency:    "INJ",
		ExplorerAPIURL:    "https://testnet.blockscout-api.injective.network/api",
		ExplorerBaseURL:   "https://testnet.blockscout.injective.network",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             Katana,
		InternalID:        "Katana",
		Name:              "katana",
		BlockTime:         1 * time.Second,
		NativeCurrency:    "ETH",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=747474",
		ExplorerBaseURL:   "https://katanascan.com",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Lisk,
		InternalID:        "Lisk",
		Name:              "lisk",
		BlockTime:         2 * time.Second,
		NativeCurrency:    "ETH",
		ExplorerAPIURL:    "https://blockscout.lisk.com/api",
		ExplorerBaseURL:   "https://blockscout.lisk.com",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:             Fuse,
		InternalID:        "Fuse",
		Name:              "fuse",
		BlockTime:         5 * time.Second,
		ExplorerAPIURL:    "https://explorer.fuse.io/api",
		ExplorerBaseURL:   "https://explorer.fuse.io",
		ExplorerAPIKeyEnv: "BLOCKSCOUT_API_KEY",
	},
	{
		Chain:            FluentDevnet,
		InternalID:       "FluentDevnet",
		Name:             "fluent-devnet",
		Testnet:          true,
		SupportsShanghai: true,
		BlockTime:        3 * time.Second,
		ExplorerAPIURL:   "https://blockscout.dev.gblend.xyz/api",
		ExplorerBaseURL:  "https://blockscout.dev.gblend.xyz",
	},
	{
		Chain:            FluentTestnet,
		InternalID:       "FluentTestnet",
		Name:             "fluent-testnet",
		Testnet:          true,
		SupportsShanghai: true,
		BlockTime:        1 * time.Second,
		ExplorerAPIURL:   "https://testnet.fluentscan.xyz/api",
		ExplorerBaseURL:  "https://testnet.fluentscan.xyz",
	},
	{
		Chain:             SkaleBase,
		InternalID:        "SkaleBase",
		Name:              "skale-base",
		BlockTime:         10 * time.Second,
		ExplorerAPIURL:    "https://skale-base-explorer.skalenodes.com/api",
		ExplorerBaseURL:   "https://skale-base-explorer.skalenodes.com",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             SkaleBaseTestnet,
		InternalID:        "SkaleBaseTestnet",
		Name:              "skale-base-testnet",
		Testnet:           true,
		BlockTime:         10 * time.Second,
		ExplorerAPIURL:    "https://base-sepolia-testnet-explorer.skalenodes.com/api",
		ExplorerBaseURL:   "https://base-sepolia-testnet-explorer.skalenodes.com",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             MemeCore,
		InternalID:        "MemeCore",
		Name:              "memecore",
		SupportsShanghai:  true,
		BlockTime:         7 * time.Second,
		NativeCurrency:    "M",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=4352",
		ExplorerBaseURL:   "https://memecorescan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:             Formicarium,
		InternalID:        "Formicarium",
		Name:              "formicarium",
		Aliases:           []string{"memecore-formicarium", "formicairum"},
		Testnet:           true,
		SupportsShanghai:  true,
		BlockTime:         7 * time.Second,
		NativeCurrency:    "tM",
		ExplorerAPIURL:    "https://api.etherscan.io/v2/api?chainid=43521",
		ExplorerBaseURL:   "https://formicarium.memecorescan.io",
		ExplorerAPIKeyEnv: "ETHERSCAN_API_KEY",
	},
	{
		Chain:            Insectarium,
		InternalID:       "Insectarium",
		Name:             "insectarium",
		Aliases:          []string{"memecore-insectarium"},
		Testnet:          true,
		SupportsShanghai: true,
		BlockTime:        7 * time.Second,
		NativeCurrency:   "tM",
		ExplorerAPIURL:   "https://insectarium.blockscout.memecore.com/api",
		ExplorerBaseURL:  "https://insectarium.blockscout.memecore.com",
	},
}
