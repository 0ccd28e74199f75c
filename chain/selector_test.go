package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/chain-registry/chain"
)

// Selector values are fixed public constants; the two below are the
// assignments for Ethereum mainnet and Sepolia.
const (
	mainnetSelector uint64 = 5009297550715157269
	sepoliaSelector uint64 = 16015286601757825753
)

func TestChainSelector(t *testing.T) {
	t.Parallel()

	t.Run("assigned", func(t *testing.T) {
		t.Parallel()

		sel, ok := chain.FromNamed(chain.Mainnet).ChainSelector()
		require.True(t, ok)
		assert.Equal(t, mainnetSelector, sel)

		sel, ok = chain.FromNamed(chain.Sepolia).ChainSelector()
		require.True(t, ok)
		assert.Equal(t, sepoliaSelector, sel)
	})

	t.Run("unassigned", func(t *testing.T) {
		t.Parallel()

		_, ok := chain.FromID(822861).ChainSelector()
		assert.False(t, ok)
	})

	t.Run("named form agrees", func(t *testing.T) {
		t.Parallel()

		sel, ok := chain.Mainnet.ChainSelector()
		require.True(t, ok)
		assert.Equal(t, mainnetSelector, sel)
	})
}

func TestFromChainSelector(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		c, ok := chain.FromChainSelector(mainnetSelector)
		require.True(t, ok)
		assert.Equal(t, chain.FromNamed(chain.Mainnet), c)

		sel, ok := c.ChainSelector()
		require.True(t, ok)
		assert.Equal(t, mainnetSelector, sel)
	})

	t.Run("unassigned selector", func(t *testing.T) {
		t.Parallel()

		_, ok := chain.FromChainSelector(1)
		assert.False(t, ok)
	})
}
