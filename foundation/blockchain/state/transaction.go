package state

import "github.com/ardanlabs/ledger/foundation/blockchain/database"

// SubmitTransaction adds the transaction to the mempool and returns the
// index of the block the transaction is expected to be forged into.
func (s *State) SubmitTransaction(tx database.Tx) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mempool.Add(tx)
	index := uint64(s.db.Length() + 1)

	s.evHandler("state: SubmitTransaction: tx[%s]: block[%d]", tx, index)

	return index
}
