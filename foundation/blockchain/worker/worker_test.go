package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
	"github.com/ardanlabs/ledger/foundation/blockchain/pow"
	"github.com/ardanlabs/ledger/foundation/blockchain/state"
	"github.com/ardanlabs/ledger/foundation/blockchain/worker"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// waitFor polls the condition until it's true or the timeout passes.
func waitFor(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func Test_Worker(t *testing.T) {
	ev := func(v string, args ...any) {}

	// The peer holds a chain three blocks long.
	peerChain := []database.Block{database.NewGenesisBlock(time.Unix(1600000000, 0))}
	for len(peerChain) < 3 {
		prev := peerChain[len(peerChain)-1]
		peerChain = append(peerChain, database.Block{
			Index:        prev.Index + 1,
			Timestamp:    prev.Timestamp + 1,
			Transactions: []database.Tx{},
			Proof:        pow.FindProof(prev.Proof),
			PreviousHash: prev.Hash(),
		})
	}

	fetch := func(ctx context.Context, pr peer.Peer) (database.ChainData, error) {
		return database.NewChainData(peerChain), nil
	}

	ps := peer.NewPeerSet()
	ps.Add(peer.New("peerA:5000"))

	st, err := state.New(state.Config{
		MinerID:    "miner",
		Host:       "localhost:5000",
		KnownPeers: ps,
		Fetch:      fetch,
		EvHandler:  ev,
	})
	if err != nil {
		t.Fatalf("%s\tShould be able to construct the state: %v", failed, err)
	}

	t.Log("Given the need to run background operations.")
	{
		worker.Run(st, 20*time.Millisecond, ev)

		if !waitFor(5*time.Second, func() bool { return len(st.RetrieveChain()) == 3 }) {
			t.Fatalf("\t%s\tShould adopt the peer's chain in the background.", failed)
		}
		t.Logf("\t%s\tShould adopt the peer's chain in the background.", success)

		st.SubmitTransaction(database.NewTx("a", "b", 1))
		st.Worker.SignalStartMining()

		if !waitFor(10*time.Second, func() bool { return len(st.RetrieveChain()) == 4 }) {
			t.Fatalf("\t%s\tShould mine a block when signaled.", failed)
		}
		t.Logf("\t%s\tShould mine a block when signaled.", success)

		if len(st.RetrieveMempool()) != 0 {
			t.Fatalf("\t%s\tShould forge the pending transaction.", failed)
		}
		t.Logf("\t%s\tShould forge the pending transaction.", success)

		st.Shutdown()
		t.Logf("\t%s\tShould be able to shut down.", success)
	}
}
