package state

import (
	"context"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
)

// Resolve asks every known peer for its chain and replaces the local chain
// with the longest valid chain found, if it's longer than the local chain.
// A peer that can't be reached or returns a bad response is skipped. When
// several peers qualify, the last chain that was longer than everything seen
// before it wins. It reports if the local chain was replaced.
func (s *State) Resolve(ctx context.Context) bool {
	s.evHandler("state: Resolve: started")
	defer s.evHandler("state: Resolve: completed")

	maxLength := s.db.Length()
	var winner []database.Block

	// The peers are queried without holding the state mutex so mining and
	// new transactions are not blocked by network calls.
	for _, pr := range s.RetrieveKnownPeers() {
		if ctx.Err() != nil {
			s.evHandler("state: Resolve: CANCELLED")
			return false
		}

		cd, err := s.fetch(ctx, pr)
		if err != nil {
			s.evHandler("state: Resolve: peer[%s]: ERROR: %s", pr, err)
			continue
		}

		if cd.Length <= maxLength {
			s.evHandler("state: Resolve: peer[%s]: length[%d]: not longer than [%d]", pr, cd.Length, maxLength)
			continue
		}

		if err := database.ValidateChain(cd.Chain); err != nil {
			s.evHandler("state: Resolve: peer[%s]: length[%d]: invalid chain: %s", pr, cd.Length, err)
			continue
		}

		s.evHandler("state: Resolve: peer[%s]: length[%d]: candidate", pr, cd.Length)

		maxLength = cd.Length
		winner = cd.Chain
	}

	if winner == nil {
		return false
	}

	// Blocks may have been forged while the peers were being queried. The
	// database only swaps the chain if the winner is still longer.
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.db.Replace(winner) {
		s.evHandler("state: Resolve: local chain grew to [%d], keeping it", s.db.Length())
		return false
	}

	s.evHandler("state: Resolve: chain replaced: length[%d]", len(winner))

	return true
}
