package network

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/smartcontractkit/chain-registry/chain"
	"github.com/smartcontractkit/chain-registry/pkg/logger"
)

func Test_Config_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    *Config
		wantErr string
	}{
		{
			name: "valid config",
			give: NewConfig([]Network{
				{
					Type:    NetworkTypeMainnet,
					ChainID: 1,
					RPCs: []RPC{
						{
							Name:    "test_rpc",
							HTTPURL: "https://test.rpc",
						},
					},
				},
			}),
		},
		{
			name: "invalid config",
			give: NewConfig([]Network{
				{
					Type:    NetworkTypeMainnet,
					ChainID: 1,
				},
			}),
			wantErr: "network 1: at least one RPC is required",
		},
		{
			name: "catalog conflict",
			give: NewConfig([]Network{
				{
					Type:    NetworkTypeMainnet,
					ChainID: chain.Sepolia.ID(),
					RPCs: []RPC{
						{
							Name:    "test_rpc",
							HTTPURL: "https://test.rpc",
						},
					},
				},
			}),
			wantErr: `network 11155111: type "mainnet" conflicts with the chain catalog, which lists sepolia as a testnet`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.give.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func Test_Config_MarshalYAML(t *testing.T) {
	t.Parallel()

	networks := []Network{
		{
			Type:    NetworkTypeMainnet,
			ChainID: 1,
			BlockExplorer: BlockExplorer{
				Type:      "etherscan",
				URL:       "https://etherscan.io",
				APIKeyEnv: "ETHERSCAN_API_KEY",
			},
			RPCs: []RPC{
				{
					Name:               "test_rpc",
					PreferredURLScheme: "http",
					HTTPURL:            "https://test.rpc",
					WSURL:              "wss://test.rpc",
				},
			},
			Labels: NewLabelSet("canary"),
		},
	}

	cfg := NewConfig(networks)

	got, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	want := `networks:
    - type: mainnet
      chain_id: 1
      block_explorer:
        type: etherscan
        url: https://etherscan.io
        api_key_env: ETHERSCAN_API_KEY
      rpcs:
        - name: test_rpc
          preferred_url_scheme: http
          http_url: https://test.rpc
          ws_url: wss://test.rpc
      labels:
        - canary
`

	assert.YAMLEq(t, want, string(got))
}

func Test_Config_UnmarshalYAML(t *testing.T) {
	t.Parallel()

	give := `
networks:
  - type: mainnet
    chain_id: 1
    block_explorer:
      type: etherscan
      url: https://etherscan.io
      api_key_env: ETHERSCAN_API_KEY
    rpcs:
      - name: test_rpc
        preferred_url_scheme: http
        http_url: https://test.rpc
        ws_url: wss://test.rpc
    labels:
      - canary
`

	var cfg Config

	err := yaml.Unmarshal([]byte(give), &cfg)
	require.NoError(t, err)

	assert.Equal(t, Config{
		networks: map[uint64]Network{
			1: {
				Type:    NetworkTypeMainnet,
				ChainID: 1,
				BlockExplorer: BlockExplorer{
					Type:      "etherscan",
					URL:       "https://etherscan.io",
					APIKeyEnv: "ETHERSCAN_API_KEY",
				},
				RPCs: []RPC{
					{
						Name:               "test_rpc",
						PreferredURLScheme: "http",
						HTTPURL:            "https://test.rpc",
						WSURL:              "wss://test.rpc",
					},
				},
				Labels: NewLabelSet("canary"),
			},
		},
	}, cfg)

	t.Run("invalid document", func(t *testing.T) {
		t.Parallel()

		var c Config
		require.Error(t, yaml.Unmarshal([]byte("invalid"), &c))
	})

	t.Run("duplicate chain IDs", func(t *testing.T) {
		t.Parallel()

		dup := `
networks:
  - type: mainnet
    chain_id: 1
    rpcs:
      - name: a
        http_url: https://a.rpc
  - type: mainnet
    chain_id: 1
    rpcs:
      - name: b
        http_url: https://b.rpc
`

		var c Config
		err := yaml.Unmarshal([]byte(dup), &c)
		require.Error(t, err)
		require.ErrorContains(t, err, "duplicate network for chain ID 1")
	})
}

func Test_Config_Network(t *testing.T) {
	t.Parallel()

	network := Network{
		Type:    NetworkTypeMainnet,
		ChainID: 1,
		RPCs: []RPC{
			{
				Name:    "test_rpc",
				HTTPURL: "https://test.rpc",
			},
		},
	}

	cfg := NewConfig([]Network{network})

	got, ok := cfg.Network(1)
	require.True(t, ok)
	assert.Equal(t, network, got)

	_, ok = cfg.Network(2)
	assert.False(t, ok)
}

func Test_Config_Networks(t *testing.T) {
	t.Parallel()

	cfg := NewConfig([]Network{
		{ChainID: 11155111},
		{ChainID: 1},
		{ChainID: 56},
	})

	networks := cfg.Networks()

	got := make([]uint64, 0, len(networks))
	for _, n := range networks {
		got = append(got, n.ChainID)
	}

	assert.Equal(t, []uint64{1, 56, 11155111}, got, "networks must be in ascending chain ID order")
}

func Test_Config_ChainIDs(t *testing.T) {
	t.Parallel()

	cfg := NewConfig([]Network{
		{ChainID: 11155111},
		{ChainID: 1},
		{ChainID: 56},
	})

	assert.Equal(t, []uint64{1, 56, 11155111}, cfg.ChainIDs())
}

func Test_Config_Chains(t *testing.T) {
	t.Parallel()

	cfg := NewConfig([]Network{
		{ChainID: chain.Sepolia.ID()},
		{ChainID: chain.Mainnet.ID()},
		{ChainID: 822861},
	})

	var (
		ids   []uint64
		named []bool
	)
	for c, network := range cfg.Chains() {
		require.Equal(t, c.ID(), network.ChainID)

		ids = append(ids, c.ID())
		named = append(named, c.IsNamed())
	}

	assert.Equal(t, []uint64{1, 822861, 11155111}, ids)
	assert.Equal(t, []bool{true, false, true}, named)
}

func Test_Config_Merge(t *testing.T) {
	t.Parallel()

	cfg := NewConfig([]Network{
		{ChainID: 1},
	})

	cfg.Merge(NewConfig([]Network{
		{ChainID: 2},
	}))

	assert.Equal(t, &Config{
		networks: map[uint64]Network{
			1: {ChainID: 1},
			2: {ChainID: 2},
		},
	}, cfg)
}

func Test_Config_FilterWith(t *testing.T) {
	t.Parallel()

	mainnetNetwork := Network{
		Type:    NetworkTypeMainnet,
		ChainID: chain.Mainnet.ID(),
		RPCs: []RPC{
			{
				Name:    "test_rpc",
				HTTPURL: "https://test.rpc",
			},
		},
		Labels: NewLabelSet("canary", "primary"),
	}

	testnetNetwork := Network{
		Type:    NetworkTypeTestnet,
		ChainID: chain.Sepolia.ID(),
		RPCs: []RPC{
			{
				Name:    "test_rpc2",
				HTTPURL: "https://test2.rpc",
			},
		},
	}

	unknownNetwork := Network{
		Type:    NetworkTypeMainnet,
		ChainID: 822861,
		RPCs: []RPC{
			{
				Name:    "test_rpc3",
				HTTPURL: "https://test3.rpc",
			},
		},
		Labels: NewLabelSet("canary"),
	}

	cfg := NewConfig([]Network{
		mainnetNetwork,
		testnetNetwork,
		unknownNetwork,
	})

	tests := []struct {
		name        string
		giveFilters []NetworkFilter
		want        *Config
	}{
		{
			name:        "filter by mainnet type",
			giveFilters: []NetworkFilter{TypesFilter(NetworkTypeMainnet)},
			want:        NewConfig([]Network{mainnetNetwork, unknownNetwork}),
		},
		{
			name:        "filter by all types",
			giveFilters: []NetworkFilter{TypesFilter(NetworkTypeMainnet, NetworkTypeTestnet)},
			want:        NewConfig([]Network{mainnetNetwork, testnetNetwork, unknownNetwork}),
		},
		{
			name:        "filter by chain ID",
			giveFilters: []NetworkFilter{ChainIDsFilter(chain.Mainnet.ID(), chain.Sepolia.ID())},
			want:        NewConfig([]Network{mainnetNetwork, testnetNetwork}),
		},
		{
			name:        "filter by non-existent chain ID",
			giveFilters: []NetworkFilter{ChainIDsFilter(999)},
			want:        NewConfig([]Network{}),
		},
		{
			name:        "filter by labels",
			giveFilters: []NetworkFilter{LabelsFilter("canary")},
			want:        NewConfig([]Network{mainnetNetwork, unknownNetwork}),
		},
		{
			name:        "filter by multiple labels",
			giveFilters: []NetworkFilter{LabelsFilter("canary", "primary")},
			want:        NewConfig([]Network{mainnetNetwork}),
		},
		{
			name:        "filter by chain predicate",
			giveFilters: []NetworkFilter{ChainFilter(chain.Chain.IsNamed)},
			want:        NewConfig([]Network{mainnetNetwork, testnetNetwork}),
		},
		{
			name: "combination: mainnet type known to the catalog",
			giveFilters: []NetworkFilter{
				TypesFilter(NetworkTypeMainnet),
				ChainFilter(chain.Chain.IsNamed),
			},
			want: NewConfig([]Network{mainnetNetwork}),
		},
		{
			name:        "no filters",
			giveFilters: []NetworkFilter{},
			want:        NewConfig([]Network{mainnetNetwork, testnetNetwork, unknownNetwork}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := cfg.FilterWith(tt.giveFilters...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_TypesFilter(t *testing.T) {
	t.Parallel()

	mainnetNetwork := Network{Type: NetworkTypeMainnet, ChainID: 1}
	testnetNetwork := Network{Type: NetworkTypeTestnet, ChainID: 2}

	tests := []struct {
		name        string
		giveTypes   []NetworkType
		giveNetwork Network
		want        bool
	}{
		{
			name:        "mainnet filter with mainnet network",
			giveTypes:   []NetworkType{NetworkTypeMainnet},
			giveNetwork: mainnetNetwork,
			want:        true,
		},
		{
			name:        "mainnet filter with testnet network",
			giveTypes:   []NetworkType{NetworkTypeMainnet},
			giveNetwork: testnetNetwork,
			want:        false,
		},
		{
			name:        "multiple types with testnet network",
			giveTypes:   []NetworkType{NetworkTypeMainnet, NetworkTypeTestnet},
			giveNetwork: testnetNetwork,
			want:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			filter := TypesFilter(tt.giveTypes...)
			assert.Equal(t, tt.want, filter(tt.giveNetwork))
		})
	}
}

func Test_ChainIDsFilter(t *testing.T) {
	t.Parallel()

	network := Network{Type: NetworkTypeMainnet, ChainID: 1}

	assert.True(t, ChainIDsFilter(1)(network))
	assert.True(t, ChainIDsFilter(2, 1)(network))
	assert.False(t, ChainIDsFilter(2)(network))
	assert.False(t, ChainIDsFilter()(network))
}

func Test_LabelsFilter(t *testing.T) {
	t.Parallel()

	network := Network{ChainID: 1, Labels: NewLabelSet("canary", "primary")}

	assert.True(t, LabelsFilter("canary")(network))
	assert.True(t, LabelsFilter("canary", "primary")(network))
	assert.False(t, LabelsFilter("canary", "secondary")(network))
	assert.True(t, LabelsFilter()(network), "no labels matches everything")

	unlabeled := Network{ChainID: 2}
	assert.False(t, LabelsFilter("canary")(unlabeled))
}

func Test_ChainFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		givePredicate func(chain.Chain) bool
		giveNetwork   Network
		want          bool
	}{
		{
			name:          "testnet predicate with testnet chain",
			givePredicate: chain.Chain.IsTestnet,
			giveNetwork:   Network{ChainID: chain.Sepolia.ID()},
			want:          true,
		},
		{
			name:          "testnet predicate with mainnet chain",
			givePredicate: chain.Chain.IsTestnet,
			giveNetwork:   Network{ChainID: chain.Mainnet.ID()},
			want:          false,
		},
		{
			name:          "family predicate",
			givePredicate: chain.Chain.IsOptimism,
			giveNetwork:   Network{ChainID: chain.Base.ID()},
			want:          true,
		},
		{
			name:          "named predicate with unknown chain",
			givePredicate: chain.Chain.IsNamed,
			giveNetwork:   Network{ChainID: 822861},
			want:          false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			filter := ChainFilter(tt.givePredicate)
			assert.Equal(t, tt.want, filter(tt.giveNetwork))
		})
	}
}

// Networks described by the testdata manifests.
var (
	testdataMainnet = Network{
		Type:    NetworkTypeMainnet,
		ChainID: 1,
		BlockExplorer: BlockExplorer{
			Type:      "etherscan",
			URL:       "https://etherscan.io",
			APIKeyEnv: "ETHERSCAN_API_KEY",
		},
		RPCs: []RPC{
			{
				Name:               "primary",
				PreferredURLScheme: "http",
				HTTPURL:            "https://eth.rpc",
				WSURL:              "wss://eth.rpc",
			},
			{
				Name:    "fallback",
				HTTPURL: "https://eth-fallback.rpc",
			},
		},
		Labels: NewLabelSet("canary", "primary"),
	}

	testdataSepolia = Network{
		Type:    NetworkTypeTestnet,
		ChainID: 11155111,
		RPCs: []RPC{
			{
				Name:    "primary",
				HTTPURL: "https://sepolia.rpc",
				WSURL:   "wss://sepolia.rpc",
			},
		},
	}

	testdataBSCOverridden = Network{
		Type:    NetworkTypeMainnet,
		ChainID: 56,
		RPCs: []RPC{
			{
				Name:    "primary",
				HTTPURL: "https://dup-bsc.rpc",
			},
		},
	}

	testdataBSC = Network{
		Type:    NetworkTypeMainnet,
		ChainID: 56,
		RPCs: []RPC{
			{
				Name:    "primary",
				HTTPURL: "https://bsc.rpc",
				WSURL:   "wss://bsc.rpc",
			},
		},
		Labels: NewLabelSet("canary"),
	}
)

func Test_Config_Load(t *testing.T) {
	t.Parallel()

	var (
		file1 = "./testdata/networks_1.yml"
		file2 = "./testdata/networks_2.yml"
	)

	tests := []struct {
		name          string
		giveFilePaths []string
		want          *Config
		wantErr       string
	}{
		{
			name:          "single valid file",
			giveFilePaths: []string{file1},
			want: NewConfig([]Network{
				testdataMainnet,
				testdataSepolia,
				testdataBSCOverridden,
			}),
		},
		{
			name:          "multiple valid files with override",
			giveFilePaths: []string{file1, file2},
			want: NewConfig([]Network{
				testdataMainnet,
				testdataSepolia,
				testdataBSC,
			}),
		},
		{
			name:          "non-existent file",
			giveFilePaths: []string{"/non/existent/file.yaml"},
			wantErr:       "failed to read networks file",
		},
		{
			name:          "invalid yaml",
			giveFilePaths: []string{"./testdata/invalid_yaml.yaml"},
			wantErr:       "failed to unmarshal networks YAML",
		},
		{
			name:          "invalid network",
			giveFilePaths: []string{"./testdata/invalid_network.yaml"},
			wantErr:       `network 137: type "testnet" conflicts with the chain catalog, which lists polygon as a mainnet`,
		},
		{
			name:          "duplicate networks in one manifest",
			giveFilePaths: []string{"./testdata/duplicate_network.yaml"},
			wantErr:       "duplicate network for chain ID 1",
		},
		{
			name:          "empty file paths",
			giveFilePaths: []string{},
			want:          NewConfig([]Network{}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Load(tt.giveFilePaths)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func Test_Load_WithFilters(t *testing.T) {
	t.Parallel()

	var (
		file1 = "./testdata/networks_1.yml"
		file2 = "./testdata/networks_2.yml"
	)

	tests := []struct {
		name     string
		giveOpts []LoadOption
		want     *Config
	}{
		{
			name:     "only testnets",
			giveOpts: []LoadOption{WithNetworkTypes(NetworkTypeTestnet)},
			want:     NewConfig([]Network{testdataSepolia}),
		},
		{
			name:     "only selected chain IDs",
			giveOpts: []LoadOption{WithChainIDs(1, 56)},
			want:     NewConfig([]Network{testdataMainnet, testdataBSC}),
		},
		{
			name:     "only labeled networks",
			giveOpts: []LoadOption{WithLabels("canary")},
			want:     NewConfig([]Network{testdataMainnet, testdataBSC}),
		},
		{
			name: "combined options",
			giveOpts: []LoadOption{
				WithNetworkTypes(NetworkTypeMainnet),
				WithLabels("canary", "primary"),
			},
			want: NewConfig([]Network{testdataMainnet}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Load([]string{file1, file2}, tt.giveOpts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_Load_UnknownChainIDs(t *testing.T) {
	t.Parallel()

	yamlContent := `
networks:
  - type: mainnet
    chain_id: 822861
    rpcs:
      - name: test_rpc
        http_url: https://test.rpc
  - type: mainnet
    chain_id: 1
    rpcs:
      - name: test_rpc
        http_url: https://eth.rpc
`

	tmpFile := filepath.Join(t.TempDir(), "networks.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(yamlContent), 0600))

	t.Run("logged at warn", func(t *testing.T) {
		t.Parallel()

		lggr, logs := logger.TestObserved(t, zapcore.WarnLevel)

		cfg, err := Load([]string{tmpFile}, WithLogger(lggr))
		require.NoError(t, err)
		assert.Equal(t, []uint64{1, 822861}, cfg.ChainIDs())

		entries := logs.FilterMessage("Network chain ID not present in chain catalog").All()
		require.Len(t, entries, 1)
		assert.Equal(t, uint64(822861), entries[0].ContextMap()["chainID"])
	})

	t.Run("dropped by OnlyNamed", func(t *testing.T) {
		t.Parallel()

		lggr, logs := logger.TestObserved(t, zapcore.WarnLevel)

		cfg, err := Load([]string{tmpFile}, WithLogger(lggr), OnlyNamed())
		require.NoError(t, err)
		assert.Equal(t, []uint64{1}, cfg.ChainIDs())

		assert.Equal(t, 0, logs.Len(), "filtered networks must not be warned about")
	})
}

func Test_Load_WithTransforms(t *testing.T) {
	t.Parallel()

	yamlContent := `
networks:
  - type: mainnet
    chain_id: 1
    rpcs:
      - name: test_rpc
        preferred_url_scheme: http
        http_url: https://test.rpc
        ws_url: wss://test.rpc
`

	tmpFile := filepath.Join(t.TempDir(), "networks.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(yamlContent), 0600))

	// Simple URL transformer
	transformFunc := func(url string) string {
		return strings.Replace(url, "test", "test2", 1)
	}

	got, err := Load([]string{tmpFile},
		WithHTTPURLTransformer(transformFunc),
		WithWSURLTransformer(transformFunc),
	)
	require.NoError(t, err)

	assert.Equal(t, NewConfig([]Network{
		{
			Type:    NetworkTypeMainnet,
			ChainID: 1,
			RPCs: []RPC{
				{
					Name:               "test_rpc",
					PreferredURLScheme: "http",
					HTTPURL:            "https://test2.rpc",
					WSURL:              "wss://test2.rpc",
				},
			},
		},
	}), got)
}

func Test_Load_NeverReadsEnvironment(t *testing.T) {
	// The explorer API key is carried as an environment variable NAME;
	// loading must not resolve it. No t.Parallel() because of t.Setenv.
	t.Setenv("NETWORK_TEST_API_KEY", "secret")

	yamlContent := `
networks:
  - type: mainnet
    chain_id: 1
    block_explorer:
      type: etherscan
      url: https://etherscan.io
      api_key_env: NETWORK_TEST_API_KEY
    rpcs:
      - name: test_rpc
        http_url: https://eth.rpc
`

	tmpFile := filepath.Join(t.TempDir(), "networks.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(yamlContent), 0600))

	cfg, err := Load([]string{tmpFile})
	require.NoError(t, err)

	network, ok := cfg.Network(1)
	require.True(t, ok)
	assert.Equal(t, "NETWORK_TEST_API_KEY", network.BlockExplorer.APIKeyEnv)
}

func Test_Config_Empty(t *testing.T) {
	t.Parallel()

	cfg := NewConfig(nil)

	assert.Empty(t, cfg.ChainIDs())
	assert.Empty(t, cfg.Networks())
	assert.NoError(t, cfg.Validate())
}
