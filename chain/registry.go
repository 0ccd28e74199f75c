package chain

import (
	"iter"
	"slices"
)

// recordIndex maps a registered chain to its row in the catalog table.
// nameIndex maps every folded name and alias to its chain. Both are built
// once at package load. Should the table ever carry a duplicate ID or name,
// the first declaration wins; the integrity tests reject such a table, the
// indexes themselves never panic over it.
var (
	recordIndex = make(map[Named]int, len(records))
	nameIndex   = make(map[string]Named, len(records))
)

func init() {
	for i, rec := range records {
		if _, ok := recordIndex[rec.Chain]; !ok {
			recordIndex[rec.Chain] = i
		}

		for _, name := range append([]string{rec.Name}, rec.Aliases...) {
			key := foldName(name)
			if _, ok := nameIndex[key]; !ok {
				nameIndex[key] = rec.Chain
			}
		}
	}
}

// AllNamed yields every registered chain in catalog declaration order. The
// sequence is finite and restartable, so it is safe to range over it any
// number of times.
func AllNamed() iter.Seq[Named] {
	return func(yield func(Named) bool) {
		for _, rec := range records {
			if !yield(rec.Chain) {
				return
			}
		}
	}
}

// Records yields every chain together with its catalog record, in catalog
// declaration order.
func Records() iter.Seq2[Named, Metadata] {
	return func(yield func(Named, Metadata) bool) {
		for _, rec := range records {
			if !yield(rec.Chain, rec) {
				return
			}
		}
	}
}

// NamedCount returns the number of registered chains.
func NamedCount() int {
	return len(records)
}

// chainIDsOptions holds the filtering configuration for ListChainIDs.
type chainIDsOptions struct {
	testnetsOnly bool
	mainnetsOnly bool
	excludedIDs  map[uint64]struct{}
}

// ChainIDsOption configures the filtering behavior of ListChainIDs.
type ChainIDsOption func(*chainIDsOptions)

// WithTestnetsOnly restricts ListChainIDs to chains flagged as testnets.
func WithTestnetsOnly() ChainIDsOption {
	return func(o *chainIDsOptions) {
		o.testnetsOnly = true
	}
}

// WithMainnetsOnly restricts ListChainIDs to chains not flagged as testnets.
func WithMainnetsOnly() ChainIDsOption {
	return func(o *chainIDsOptions) {
		o.mainnetsOnly = true
	}
}

// WithChainIDsExclusion removes the given chain IDs from the result of
// ListChainIDs.
func WithChainIDsExclusion(ids ...uint64) ChainIDsOption {
	return func(o *chainIDsOptions) {
		if o.excludedIDs == nil {
			o.excludedIDs = make(map[uint64]struct{}, len(ids))
		}
		for _, id := range ids {
			o.excludedIDs[id] = struct{}{}
		}
	}
}

// ListChainIDs returns the chain IDs of all registered chains in ascending
// numeric order, after applying the given filter options.
func ListChainIDs(options ...ChainIDsOption) []uint64 {
	opts := chainIDsOptions{}
	for _, opt := range options {
		opt(&opts)
	}

	ids := make([]uint64, 0, len(records))
	for _, rec := range records {
		if opts.testnetsOnly && !rec.Testnet {
			continue
		}
		if opts.mainnetsOnly && rec.Testnet {
			continue
		}
		if _, excluded := opts.excludedIDs[rec.Chain.ID()]; excluded {
			continue
		}

		ids = append(ids, rec.Chain.ID())
	}

	slices.Sort(ids)

	return ids
}
