package state

import (
	"fmt"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
)

// Forge writes a new block holding every transaction in the mempool and
// leaves the mempool empty. The caller is responsible for providing the hash
// of the latest block and a proof that solves the puzzle for its proof.
func (s *State) Forge(proof uint64, previousHash string) (database.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.forge(proof, previousHash)
}

// ForgeNext forges a block on top of the specified parent, adding the extra
// transactions after the ones in the mempool. If the parent is no longer the
// latest block, nothing changes and ErrChainAdvanced is returned.
func (s *State) ForgeNext(parent database.Block, proof uint64, trans ...database.Tx) (database.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parentHash := parent.Hash()
	if s.db.LatestBlock().Hash() != parentHash {
		return database.Block{}, ErrChainAdvanced
	}

	for _, tx := range trans {
		s.mempool.Add(tx)
	}

	return s.forge(proof, parentHash)
}

// forge builds and writes the next block. The state mutex must be held.
func (s *State) forge(proof uint64, previousHash string) (database.Block, error) {
	block := database.Block{
		Index:        uint64(s.db.Length() + 1),
		Timestamp:    database.Timestamp(time.Now()),
		Transactions: s.mempool.Drain(),
		Proof:        proof,
		PreviousHash: previousHash,
	}

	if err := s.db.Write(block); err != nil {
		return database.Block{}, fmt.Errorf("writing block: %w", err)
	}

	s.evHandler("state: forge: block[%d]: txs[%d]: hash[%s]", block.Index, len(block.Transactions), block.Hash())

	return block, nil
}
