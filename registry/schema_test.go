package registry_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/chain-registry/registry"
)

func TestSchema(t *testing.T) {
	t.Parallel()

	data, err := registry.Schema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))

	assert.Equal(t, "https://json-schema.org/draft/2020-12/schema", schema["$schema"])
	assert.Equal(t, []any{"chains"}, schema["required"])

	chains, ok := schema["properties"].(map[string]any)["chains"].(map[string]any)
	require.True(t, ok)

	record, ok := chains["additionalProperties"].(map[string]any)
	require.True(t, ok, "chain records must carry an embedded record schema")

	required, ok := record["required"].([]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{
		"internalId", "name", "isLegacy", "isTestnet", "supportsShanghai",
	}, required)
}

func TestValidateExport(t *testing.T) {
	t.Parallel()

	data, err := registry.Export().MarshalJSON()
	require.NoError(t, err)

	assert.NoError(t, registry.Validate(data))
}

func TestValidateRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give string
	}{
		{
			name: "missing chains",
			give: `{}`,
		},
		{
			name: "missing required internalId",
			give: `{"chains":{"1":{"name":"mainnet","isLegacy":false,"isTestnet":false,"supportsShanghai":true}}}`,
		},
		{
			name: "mistyped isLegacy",
			give: `{"chains":{"1":{"internalId":"Mainnet","name":"mainnet","isLegacy":"no","isTestnet":false,"supportsShanghai":true}}}`,
		},
		{
			name: "mistyped blocktime hint",
			give: `{"chains":{"1":{"internalId":"Mainnet","name":"mainnet","isLegacy":false,"isTestnet":false,"supportsShanghai":true,"averageBlocktimeHint":"12s"}}}`,
		},
		{
			name: "unknown record field",
			give: `{"chains":{"1":{"internalId":"Mainnet","name":"mainnet","isLegacy":false,"isTestnet":false,"supportsShanghai":true,"color":"blue"}}}`,
		},
		{
			name: "non-decimal chain key",
			give: `{"chains":{"0x1":{"internalId":"Mainnet","name":"mainnet","isLegacy":false,"isTestnet":false,"supportsShanghai":true}}}`,
		},
		{
			name: "leading zero in chain key",
			give: `{"chains":{"01":{"internalId":"Mainnet","name":"mainnet","isLegacy":false,"isTestnet":false,"supportsShanghai":true}}}`,
		},
		{
			name: "chains is not an object",
			give: `{"chains":[]}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Error(t, registry.Validate([]byte(tc.give)))
		})
	}
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	assert.Error(t, registry.Validate([]byte(`{"chains":`)))
}
