// Package state is the core API for the blockchain and implements all the
// business rules and processing.
package state

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/mempool"
	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
)

// MiningReward is the amount credited to the miner of every block.
const MiningReward = 1

// =============================================================================

// EventHandler defines a function that is called when events
// occur in the processing of blocks.
type EventHandler func(v string, args ...any)

// FetchFunc defines a function that retrieves the chain held by a peer.
type FetchFunc func(ctx context.Context, pr peer.Peer) (database.ChainData, error)

// Worker interface represents the behavior required to be implemented by any
// package providing support for background mining and consensus.
type Worker interface {
	Shutdown()
	SignalStartMining()
}

// =============================================================================

// Config represents the configuration required to start
// the blockchain node.
type Config struct {
	MinerID    string
	Host       string
	KnownPeers *peer.PeerSet
	Fetch      FetchFunc
	EvHandler  EventHandler
}

// State manages the blockchain database. The mutex serializes every change
// to the chain and the mempool so a forge can't lose or duplicate a
// submitted transaction.
type State struct {
	minerID   string
	host      string
	evHandler EventHandler
	fetch     FetchFunc
	mu        sync.Mutex

	knownPeers *peer.PeerSet
	mempool    *mempool.Mempool
	db         *database.Database

	Worker Worker
}

// New constructs a new blockchain starting from the genesis block.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	if cfg.MinerID == "" {
		return nil, errors.New("miner id is required")
	}

	knownPeers := cfg.KnownPeers
	if knownPeers == nil {
		knownPeers = peer.NewPeerSet()
	}

	fetch := cfg.Fetch
	if fetch == nil {
		fetch = noFetch
	}

	state := State{
		minerID:   cfg.MinerID,
		host:      cfg.Host,
		evHandler: ev,
		fetch:     fetch,

		knownPeers: knownPeers,
		mempool:    mempool.New(),
		db:         database.New(database.NewGenesisBlock(time.Now())),
	}

	ev("state: New: started: miner[%s]", cfg.MinerID)

	// The Worker is not set here. The call to worker.Run will assign itself
	// and start everything up and running for the node.

	return &state, nil
}

// Shutdown cleanly brings the node down.
func (s *State) Shutdown() error {
	s.evHandler("state: Shutdown: started")
	defer s.evHandler("state: Shutdown: completed")

	// Stop all blockchain writing activity.
	if s.Worker != nil {
		s.Worker.Shutdown()
	}

	return nil
}

// =============================================================================

// noFetch is used when the node was not given a way to reach its peers.
func noFetch(ctx context.Context, pr peer.Peer) (database.ChainData, error) {
	return database.ChainData{}, errNoFetch
}
