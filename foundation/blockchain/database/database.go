// Package database maintains the in memory chain of blocks for the node and
// the block and transaction types that make up the chain.
package database

import (
	"fmt"
	"sync"
)

// Database manages the chain of blocks. The chain always holds at least the
// genesis block.
type Database struct {
	mu    sync.RWMutex
	chain []Block
}

// New constructs a database holding only the specified genesis block.
func New(genesis Block) *Database {
	return &Database{
		chain: []Block{genesis},
	}
}

// Write appends the block to the chain. The block must carry the next index.
func (db *Database) Write(block Block) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	nextIndex := uint64(len(db.chain) + 1)
	if block.Index != nextIndex {
		return fmt.Errorf("block is not the next index, got %d, exp %d", block.Index, nextIndex)
	}

	db.chain = append(db.chain, block)

	return nil
}

// LatestBlock returns the most recently written block.
func (db *Database) LatestBlock() Block {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.chain[len(db.chain)-1]
}

// Length returns the number of blocks in the chain.
func (db *Database) Length() int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return len(db.chain)
}

// Copy returns a copy of the chain.
func (db *Database) Copy() []Block {
	db.mu.RLock()
	defer db.mu.RUnlock()

	chain := make([]Block, len(db.chain))
	copy(chain, db.chain)

	return chain
}

// Replace swaps the whole chain for the candidate if the candidate is still
// longer than the current chain. Nothing changes when it isn't.
func (db *Database) Replace(candidate []Block) bool {
	db.mu.Lock()
	defer db.mu.Unlock()

	if len(candidate) <= len(db.chain) {
		return false
	}

	chain := make([]Block, len(candidate))
	copy(chain, candidate)
	db.chain = chain

	return true
}

// =============================================================================

// ChainData represents the chain as it's exchanged between nodes.
type ChainData struct {
	Chain  []Block `json:"chain"`
	Length int     `json:"length"`
}

// NewChainData constructs the value to send to other nodes.
func NewChainData(chain []Block) ChainData {
	return ChainData{
		Chain:  chain,
		Length: len(chain),
	}
}

// Validate checks the reported length agrees with the blocks received.
func (cd ChainData) Validate() error {
	if cd.Length != len(cd.Chain) {
		return fmt.Errorf("reported length %d doesn't match %d blocks", cd.Length, len(cd.Chain))
	}

	return nil
}
