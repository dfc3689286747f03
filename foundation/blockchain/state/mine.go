package state

import (
	"context"
	"errors"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/pow"
)

// MineNewBlock solves the puzzle for the latest block, credits the miner with
// the mining reward and forges the new block. The search runs without
// holding the state mutex. If the chain changes while searching, the search
// starts over on the new latest block. The search can be cancelled through
// the context.
func (s *State) MineNewBlock(ctx context.Context) (database.Block, error) {
	s.evHandler("state: MineNewBlock: MINING: started")
	defer s.evHandler("state: MineNewBlock: MINING: completed")

	for {
		parent := s.RetrieveLatestBlock()

		s.evHandler("state: MineNewBlock: MINING: perform POW: parent[%d]", parent.Index)

		proof, err := pow.Search(ctx, parent.Proof, s.evHandler)
		if err != nil {
			return database.Block{}, err
		}

		reward := database.NewRewardTx(s.minerID, MiningReward)

		block, err := s.ForgeNext(parent, proof, reward)
		if err != nil {
			if errors.Is(err, ErrChainAdvanced) {
				s.evHandler("state: MineNewBlock: MINING: chain advanced, starting over")
				continue
			}
			return database.Block{}, err
		}

		return block, nil
	}
}
