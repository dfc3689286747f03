package state

import (
	"fmt"

	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
)

// RegisterPeers normalizes each address and adds it to the set of known
// peers. If any address is invalid, no peer is added.
func (s *State) RegisterPeers(addresses []string) error {
	peers := make([]peer.Peer, len(addresses))
	for i, address := range addresses {
		pr, err := peer.Normalize(address)
		if err != nil {
			return fmt.Errorf("address[%d]: %w", i, err)
		}
		peers[i] = pr
	}

	for _, pr := range peers {
		if s.knownPeers.Add(pr) {
			s.evHandler("state: RegisterPeers: add peer[%s]", pr)
		}
	}

	return nil
}
