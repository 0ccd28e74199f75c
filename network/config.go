// Package network loads and validates YAML manifests describing deployable
// networks, keyed by EIP-155 chain ID. The chain catalog supplies identity
// and classification for the chains it knows; manifests may also describe
// chains outside the catalog.
package network

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/smartcontractkit/chain-registry/chain"
	"github.com/smartcontractkit/chain-registry/pkg/logger"
)

// Manifest is the YAML representation of network configuration.
type Manifest struct {
	// A YAML array of networks.
	Networks []Network `yaml:"networks"`
}

// Config represents the configuration of a collection of networks. This is
// loaded from the YAML manifest file/s.
type Config struct {
	// networks is a map of networks by their chain ID. This differs from the
	// manifest representation of the networks so that we can ensure
	// uniqueness and quickly lookup a network by its chain ID.
	networks map[uint64]Network
}

// NewConfig creates a new config from a slice of networks. Any duplicate
// chain IDs will be overwritten.
func NewConfig(networks []Network) *Config {
	nmap := make(map[uint64]Network, len(networks))

	for _, network := range networks {
		nmap[network.ChainID] = network
	}

	return &Config{
		networks: nmap,
	}
}

// Validate ensures that all networks are valid.
func (c *Config) Validate() error {
	for _, network := range c.Networks() {
		if err := network.Validate(); err != nil {
			return fmt.Errorf("network %d: %w", network.ChainID, err)
		}
	}

	return nil
}

// Networks returns a slice of all networks in the config, in ascending
// chain ID order.
func (c *Config) Networks() []Network {
	networks := slices.Collect(maps.Values(c.networks))

	slices.SortFunc(networks, func(a, b Network) int {
		return cmp.Compare(a.ChainID, b.ChainID)
	})

	return networks
}

// Network retrieves a network by its chain ID.
func (c *Config) Network(chainID uint64) (Network, bool) {
	network, ok := c.networks[chainID]

	return network, ok
}

// ChainIDs returns the chain IDs of all networks in the Config, in
// ascending order.
func (c *Config) ChainIDs() []uint64 {
	ids := slices.Collect(maps.Keys(c.networks))
	slices.Sort(ids)

	return ids
}

// Chains iterates over the networks in ascending chain ID order, pairing
// each network with its chain identifier.
func (c *Config) Chains() iter.Seq2[chain.Chain, Network] {
	return func(yield func(chain.Chain, Network) bool) {
		for _, network := range c.Networks() {
			if !yield(network.Chain(), network) {
				return
			}
		}
	}
}

// Merge merges another config into the current config.
// It overwrites any networks with the same chain ID.
func (c *Config) Merge(other *Config) {
	maps.Copy(c.networks, other.networks)
}

// MarshalYAML implements the yaml.Marshaler interface for the Config struct.
// It converts the internal map structure to a YAML format with a top-level
// "networks" key.
func (c *Config) MarshalYAML() (any, error) {
	node := Manifest{
		Networks: c.Networks(),
	}

	return node, nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for the Config
// struct. Duplicate chain IDs within a single manifest are rejected;
// overriding a network is only possible by merging another manifest.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	node := Manifest{}

	if err := value.Decode(&node); err != nil {
		return err
	}

	seen := make(map[uint64]struct{}, len(node.Networks))
	for _, network := range node.Networks {
		if _, ok := seen[network.ChainID]; ok {
			return fmt.Errorf("duplicate network for chain ID %d", network.ChainID)
		}
		seen[network.ChainID] = struct{}{}
	}

	*c = *NewConfig(node.Networks)

	return nil
}

// NetworkFilter defines a function type that filters networks based on certain criteria.
type NetworkFilter func(Network) bool

// FilterWith returns a new Config containing only Networks that pass all provided filter functions.
// Filters are applied in sequence (AND logic) - a network must pass all filters to be included.
func (c *Config) FilterWith(filters ...NetworkFilter) *Config {
	networks := c.Networks()

	for _, filter := range filters {
		networks = slices.DeleteFunc(networks, func(network Network) bool {
			return !filter(network)
		})
	}

	return NewConfig(networks)
}

// TypesFilter returns a filter function that matches networks with the specified network types.
func TypesFilter(networkTypes ...NetworkType) NetworkFilter {
	return func(network Network) bool {
		return slices.Contains(networkTypes, network.Type)
	}
}

// ChainIDsFilter returns a filter function that matches networks with the
// specified chain IDs.
func ChainIDsFilter(chainIDs ...uint64) NetworkFilter {
	return func(network Network) bool {
		return slices.Contains(chainIDs, network.ChainID)
	}
}

// LabelsFilter returns a filter function that matches networks carrying
// every one of the specified labels.
func LabelsFilter(labels ...string) NetworkFilter {
	return func(network Network) bool {
		for _, label := range labels {
			if !network.Labels.Contains(label) {
				return false
			}
		}

		return true
	}
}

// ChainFilter adapts a chain predicate into a network filter, e.g.
// ChainFilter(chain.Chain.IsTestnet) or ChainFilter(chain.Chain.IsOptimism).
func ChainFilter(predicate func(chain.Chain) bool) NetworkFilter {
	return func(network Network) bool {
		return predicate(network.Chain())
	}
}

// transformHTTPURLs transforms the HTTP URLs of the networks in the config.
func (c *Config) transformHTTPURLs(transform URLTransformer) {
	for k, n := range c.networks {
		for i, rpc := range n.RPCs {
			rpc.HTTPURL = transform(rpc.HTTPURL)

			n.RPCs[i] = rpc
		}

		// Network is a value type, so the modified copy must be written back
		// to the map.
		c.networks[k] = n
	}
}

// transformWSURLs transforms the websocket URLs of the networks in the config.
func (c *Config) transformWSURLs(transform URLTransformer) {
	for k, n := range c.networks {
		for i, rpc := range n.RPCs {
			rpc.WSURL = transform(rpc.WSURL)

			n.RPCs[i] = rpc
		}

		c.networks[k] = n
	}
}

// Load loads configuration from the specified file paths, and merges them
// into a single Config. Later files override earlier ones per chain ID.
//
// It accepts load options to customize the loading behavior.
func Load(filePaths []string, opts ...LoadOption) (*Config, error) {
	cfg := NewConfig(nil)

	// Apply load options to populate the loading configuration.
	loadCfg := &loadConfig{Logger: logger.Nop()}
	for _, opt := range opts {
		opt(loadCfg)
	}

	// Load each file path into the config.
	for _, fp := range filePaths {
		data, err := os.ReadFile(fp)
		if err != nil {
			return nil, fmt.Errorf("failed to read networks file: %w", err)
		}

		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal networks YAML: %w", err)
		}

		cfg.Merge(&fileCfg)
	}

	// Apply the URL transformers if provided.
	if loadCfg.HTTPURLTransformer != nil {
		cfg.transformHTTPURLs(loadCfg.HTTPURLTransformer)
	}

	if loadCfg.WSURLTransformer != nil {
		cfg.transformWSURLs(loadCfg.WSURLTransformer)
	}

	cfg = cfg.FilterWith(loadCfg.Filters...)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate networks configuration: %w", err)
	}

	// Chain IDs outside the catalog are allowed, but a typo'd ID is the
	// common failure mode, so call each one out.
	for _, network := range cfg.Networks() {
		if !network.Chain().IsNamed() {
			loadCfg.Logger.Warnw("Network chain ID not present in chain catalog",
				"chainID", network.ChainID)
		}
	}

	return cfg, nil
}

// LoadOption defines a function which modifies the load configuration.
type LoadOption func(*loadConfig)

// loadConfig holds the configuration for loading the config.
type loadConfig struct {
	Logger             logger.Logger
	HTTPURLTransformer URLTransformer
	WSURLTransformer   URLTransformer
	Filters            []NetworkFilter
}

// URLTransformer is a function that transforms a URL.
type URLTransformer func(string) string

// WithLogger sets the logger used to report loading diagnostics. Defaults to
// a no-op logger.
func WithLogger(lggr logger.Logger) LoadOption {
	return func(opts *loadConfig) {
		opts.Logger = lggr
	}
}

// WithHTTPURLTransformer transforms the HTTP URLs of the networks RPCs after loading.
func WithHTTPURLTransformer(t URLTransformer) LoadOption {
	return func(opts *loadConfig) {
		opts.HTTPURLTransformer = t
	}
}

// WithWSURLTransformer transforms the websocket URLs of the networks RPCs after loading.
func WithWSURLTransformer(t URLTransformer) LoadOption {
	return func(opts *loadConfig) {
		opts.WSURLTransformer = t
	}
}

// WithNetworkTypes keeps only networks of the given types.
func WithNetworkTypes(networkTypes ...NetworkType) LoadOption {
	return func(opts *loadConfig) {
		opts.Filters = append(opts.Filters, TypesFilter(networkTypes...))
	}
}

// WithChainIDs keeps only networks with the given chain IDs.
func WithChainIDs(chainIDs ...uint64) LoadOption {
	return func(opts *loadConfig) {
		opts.Filters = append(opts.Filters, ChainIDsFilter(chainIDs...))
	}
}

// WithLabels keeps only networks carrying all of the given labels.
func WithLabels(labels ...string) LoadOption {
	return func(opts *loadConfig) {
		opts.Filters = append(opts.Filters, LabelsFilter(labels...))
	}
}

// OnlyNamed drops networks whose chain ID the chain catalog does not know.
func OnlyNamed() LoadOption {
	return func(opts *loadConfig) {
		opts.Filters = append(opts.Filters, ChainFilter(chain.Chain.IsNamed))
	}
}
