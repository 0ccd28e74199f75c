package chain_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/chain-registry/chain"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give string
		want chain.Chain
	}{
		{name: "canonical name", give: "mainnet", want: chain.FromNamed(chain.Mainnet)},
		{name: "alias", give: "ethlive", want: chain.FromNamed(chain.Mainnet)},
		{name: "decimal", give: "1", want: chain.FromID(1)},
		{name: "decimal unregistered", give: "822861", want: chain.FromID(822861)},
		{name: "hex", give: "0x1", want: chain.FromID(1)},
		{name: "hex unregistered", give: "0xdeadbeef", want: chain.FromID(0xdeadbeef)},
		{name: "hex upper nibbles", give: "0xA4B1", want: chain.FromID(42161)},
		{name: "max uint64", give: "18446744073709551615", want: chain.FromID(math.MaxUint64)},
		{name: "zero", give: "0", want: chain.FromID(0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := chain.Parse(tc.give)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give string
	}{
		{name: "unknown name", give: "no-such-chain"},
		{name: "empty", give: ""},
		{name: "negative", give: "-1"},
		{name: "overflow", give: "18446744073709551616"},
		{name: "bare hex prefix", give: "0x"},
		{name: "malformed hex", give: "0xzz"},
		{name: "float", give: "1.5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := chain.Parse(tc.give)
			require.Error(t, err)

			var unknownErr *chain.UnknownNameError
			require.ErrorAs(t, err, &unknownErr)
			assert.Equal(t, tc.give, unknownErr.Input)
		})
	}
}

func TestParseNamePrecedesNumber(t *testing.T) {
	t.Parallel()

	// A symbolic match wins over numeric interpretation; "1" has no name so
	// it resolves numerically, and the two meet at the same identifier.
	byName, err := chain.Parse("mainnet")
	require.NoError(t, err)
	byNumber, err := chain.Parse("1")
	require.NoError(t, err)

	assert.Equal(t, byName, byNumber)
	assert.Equal(t, uint64(1), byName.ID())
}

func TestChainCanonicalEquivalence(t *testing.T) {
	t.Parallel()

	for n := range chain.AllNamed() {
		symbolic := chain.FromNamed(n)
		numeric := chain.FromID(n.ID())

		assert.Equal(t, symbolic, numeric, "symbolic and numeric forms of %s must be one value", n)
		assert.Zero(t, symbolic.Cmp(numeric))
	}

	// Comparable as map keys: both constructions land on the same entry.
	seen := map[chain.Chain]string{chain.FromNamed(chain.Mainnet): "by name"}
	seen[chain.FromID(1)] = "by id"
	assert.Len(t, seen, 1)
}

func TestChainNamed(t *testing.T) {
	t.Parallel()

	t.Run("registered", func(t *testing.T) {
		t.Parallel()

		c := chain.FromID(10)
		n, ok := c.Named()
		require.True(t, ok)
		assert.Equal(t, chain.Optimism, n)
		assert.True(t, c.IsNamed())
	})

	t.Run("unregistered", func(t *testing.T) {
		t.Parallel()

		c := chain.FromID(822861)
		_, ok := c.Named()
		assert.False(t, ok)
		assert.False(t, c.IsNamed())

		_, ok = c.Metadata()
		assert.False(t, ok)
		assert.Equal(t, uint64(822861), c.ID(), "unregistered IDs pass through unchanged")
	})

	t.Run("zero value", func(t *testing.T) {
		t.Parallel()

		var c chain.Chain
		assert.Equal(t, uint64(0), c.ID())
		assert.False(t, c.IsNamed())
		assert.Equal(t, "0", c.String())
	})
}

func TestFromBig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		give   *big.Int
		want   chain.Chain
		wantOK bool
	}{
		{name: "small", give: big.NewInt(1), want: chain.FromNamed(chain.Mainnet), wantOK: true},
		{name: "zero", give: big.NewInt(0), want: chain.FromID(0), wantOK: true},
		{
			name:   "max uint64",
			give:   new(big.Int).SetUint64(math.MaxUint64),
			want:   chain.FromID(math.MaxUint64),
			wantOK: true,
		},
		{name: "nil", give: nil, wantOK: false},
		{name: "negative", give: big.NewInt(-1), wantOK: false},
		{
			name:   "wider than 64 bits",
			give:   new(big.Int).Lsh(big.NewInt(1), 64),
			wantOK: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := chain.FromBig(tc.give)
			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestChainBig(t *testing.T) {
	t.Parallel()

	c := chain.FromID(math.MaxUint64)
	assert.Equal(t, "18446744073709551615", c.Big().String())

	// Big must allocate; mutating the result must not touch the chain.
	b := c.Big()
	b.SetUint64(7)
	assert.Equal(t, uint64(math.MaxUint64), c.ID())
}

func TestChainCmp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b chain.Chain
		want int
	}{
		{name: "less", a: chain.FromNamed(chain.Mainnet), b: chain.FromID(2), want: -1},
		{name: "equal", a: chain.FromNamed(chain.Optimism), b: chain.FromID(10), want: 0},
		{name: "greater", a: chain.FromID(100), b: chain.FromNamed(chain.Optimism), want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.a.Cmp(tc.b))
		})
	}
}

func TestChainString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mainnet", chain.FromNamed(chain.Mainnet).String())
	assert.Equal(t, "xdai", chain.FromID(100).String())
	assert.Equal(t, "822861", chain.FromID(822861).String())
}
