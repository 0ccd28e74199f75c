package network

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/smartcontractkit/chain-registry/chain"
)

// NetworkType represents the type of network, which can either be mainnet or
// testnet. For chains the catalog knows, the declared type must agree with
// the catalog's testnet classification.
type NetworkType string

const (
	NetworkTypeMainnet NetworkType = "mainnet"
	NetworkTypeTestnet NetworkType = "testnet"
)

// Network represents the configuration of a single deployable network.
type Network struct {
	Type          NetworkType   `yaml:"type"`
	ChainID       uint64        `yaml:"chain_id"`
	BlockExplorer BlockExplorer `yaml:"block_explorer,omitempty"`
	RPCs          []RPC         `yaml:"rpcs"`
	Labels        LabelSet      `yaml:"labels,omitempty"`
}

// Chain returns the network's chain identifier.
func (n *Network) Chain() chain.Chain {
	return chain.FromID(n.ChainID)
}

// Validate validates the network configuration to ensure that all required
// fields are set and do not contradict the chain catalog.
func (n *Network) Validate() error {
	if n.Type == "" {
		return errors.New("type is required")
	}

	if n.Type != NetworkTypeMainnet && n.Type != NetworkTypeTestnet {
		return fmt.Errorf("unknown network type %q", n.Type)
	}

	if n.ChainID == 0 {
		return errors.New("chain ID is required")
	}

	if len(n.RPCs) == 0 {
		return errors.New("at least one RPC is required")
	}

	for i, rpc := range n.RPCs {
		if err := rpc.validate(); err != nil {
			return fmt.Errorf("rpc %d: %w", i, err)
		}
	}

	// Chains the catalog does not know pass through untouched; for those it
	// does know, a type that disagrees with the catalog is a config error.
	if named, ok := n.Chain().Named(); ok {
		want := NetworkTypeMainnet
		if named.IsTestnet() {
			want = NetworkTypeTestnet
		}

		if n.Type != want {
			return fmt.Errorf("type %q conflicts with the chain catalog, which lists %s as a %s", n.Type, named, want)
		}
	}

	return nil
}

// RPC represents a single RPC endpoint of a network. At least one of the
// HTTP and websocket URLs must be set.
type RPC struct {
	Name               string `yaml:"name"`
	PreferredURLScheme string `yaml:"preferred_url_scheme,omitempty"`
	HTTPURL            string `yaml:"http_url,omitempty"`
	WSURL              string `yaml:"ws_url,omitempty"`
}

// PreferredEndpoint returns the correct endpoint based on the preferred URL
// scheme. By default, it returns the HTTP URL.
func (rpc *RPC) PreferredEndpoint() string {
	if rpc.PreferredURLScheme == "ws" {
		return rpc.WSURL
	}

	return rpc.HTTPURL
}

func (rpc *RPC) validate() error {
	if rpc.HTTPURL == "" && rpc.WSURL == "" {
		return errors.New("at least one URL is required")
	}

	for _, u := range []string{rpc.HTTPURL, rpc.WSURL} {
		if u == "" {
			continue
		}

		parsed, err := url.Parse(u)
		if err != nil {
			return fmt.Errorf("invalid URL %q: %w", u, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("invalid URL %q: missing scheme or host", u)
		}
	}

	return nil
}

// BlockExplorer overrides the catalog's block explorer for a network. The
// API key is referenced by environment variable name; this package never
// reads the variable itself.
type BlockExplorer struct {
	Type      string `yaml:"type,omitempty"`
	URL       string `yaml:"url,omitempty"`
	APIKeyEnv string `yaml:"api_key_env,omitempty"`
}
