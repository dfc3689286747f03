package state

import "errors"

// ErrChainAdvanced is returned when a block is forged on top of a block that
// is no longer the latest block in the chain.
var ErrChainAdvanced = errors.New("chain advanced past the parent block")

// errNoFetch is returned when peers are queried without a fetch function.
var errNoFetch = errors.New("no fetch function configured")
