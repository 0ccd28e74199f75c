package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/chain-registry/chain"
)

func TestParseNamed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give string
		want chain.Named
	}{
		{name: "canonical name", give: "mainnet", want: chain.Mainnet},
		{name: "kebab name", give: "arbitrum-sepolia", want: chain.ArbitrumSepolia},
		{name: "alias", give: "ethlive", want: chain.Mainnet},
		{name: "alias over kebab default", give: "arbitrum-one", want: chain.Arbitrum},
		{name: "renamed chain", give: "xdai", want: chain.Gnosis},
		{name: "alias of renamed chain", give: "gnosis", want: chain.Gnosis},
		{name: "second alias of renamed chain", give: "gnosis-chain", want: chain.Gnosis},
		{name: "mixed case", give: "MaInNeT", want: chain.Mainnet},
		{name: "upper case alias", give: "ETHLIVE", want: chain.Mainnet},
		{name: "underscores fold to hyphens", give: "arbitrum_one", want: chain.Arbitrum},
		{name: "underscore in canonical name", give: "bsc_testnet", want: chain.BinanceSmartChainTestnet},
		{name: "dev alias", give: "hardhat", want: chain.AnvilHardhat},
		{name: "dev alias anvil", give: "anvil", want: chain.AnvilHardhat},
		{name: "telos keeps short name", give: "telos", want: chain.TelosEvm},
		{name: "telos long alias", give: "telos_evm", want: chain.TelosEvm},
		{name: "misspelled legacy alias", give: "formicairum", want: chain.Formicarium},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := chain.ParseNamed(tc.give)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseNamedUnknown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give string
	}{
		{name: "unknown name", give: "no-such-chain"},
		{name: "empty string", give: ""},
		{name: "numeric literal is not a name", give: "1"},
		{name: "hex literal is not a name", give: "0x1"},
		{name: "emitted form only", give: "binance smart chain"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := chain.ParseNamed(tc.give)
			require.Error(t, err)

			var unknownErr *chain.UnknownNameError
			require.ErrorAs(t, err, &unknownErr)
			assert.Equal(t, tc.give, unknownErr.Input)
		})
	}
}

func TestNamedString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give chain.Named
		want string
	}{
		{name: "mainnet", give: chain.Mainnet, want: "mainnet"},
		{name: "kebab default", give: chain.ArbitrumNova, want: "arbitrum-nova"},
		{name: "renamed chain emits display name", give: chain.Gnosis, want: "xdai"},
		{name: "bsc short name", give: chain.BinanceSmartChain, want: "bsc"},
		{name: "zksync collapsed name", give: chain.ZkSync, want: "zksync"},
		{name: "unregistered value falls back to decimal", give: chain.Named(822861), want: "822861"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.give.String())
		})
	}
}

func TestNamedStringRoundTrips(t *testing.T) {
	t.Parallel()

	for n := range chain.AllNamed() {
		got, err := chain.ParseNamed(n.String())
		require.NoError(t, err, "name of %s must parse", n)
		assert.Equal(t, n, got)
	}
}

func TestNamedFromID(t *testing.T) {
	t.Parallel()

	t.Run("registered", func(t *testing.T) {
		t.Parallel()

		n, ok := chain.NamedFromID(1)
		require.True(t, ok)
		assert.Equal(t, chain.Mainnet, n)
	})

	t.Run("unregistered", func(t *testing.T) {
		t.Parallel()

		_, ok := chain.NamedFromID(822861)
		assert.False(t, ok)
	})

	t.Run("zero", func(t *testing.T) {
		t.Parallel()

		_, ok := chain.NamedFromID(0)
		assert.False(t, ok)
	})
}

func TestNamedID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(1), chain.Mainnet.ID())
	assert.Equal(t, uint64(11155111), chain.Sepolia.ID())
	assert.Equal(t, uint64(37714555429), chain.XaiSepolia.ID(), "IDs above 32 bits must survive")
}

func TestAliasesAreNeverEmitted(t *testing.T) {
	t.Parallel()

	for n, md := range chain.Records() {
		for _, alias := range md.Aliases {
			parsed, err := chain.ParseNamed(alias)
			require.NoError(t, err, "alias %q of %s must parse", alias, n)
			assert.Equal(t, n, parsed, "alias %q must resolve to its owner", alias)
			assert.NotEqual(t, n.String(), alias, "alias %q must not be the emitted name of %s", alias, n)
		}
	}
}
