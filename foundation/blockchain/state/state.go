// Package state is the core API for the blockchain and implements all the
// business rules and processing.
package state

import (
	"sync"

	"github.com/powlabs/ledger/foundation/blockchain/database"
	"github.com/powlabs/ledger/foundation/blockchain/genesis"
	"github.com/powlabs/ledger/foundation/blockchain/mempool"
	"github.com/powlabs/ledger/foundation/blockchain/peer"
)

// EventHandler defines a function that is called when events occur in the
// processing of blocks and transactions.
type EventHandler func(v string, args ...any)

// Worker interface represents the behavior required to be implemented by
// any package providing support for background mining and peer updates.
type Worker interface {
	Shutdown()
	SignalStartMining()
}

// =============================================================================

// Config represents the configuration required to start the blockchain node.
type Config struct {
	BeneficiaryID string
	Host          string
	Genesis       genesis.Genesis
	KnownPeers    *peer.PeerSet
	Fetcher       Fetcher
	EvHandler     EventHandler
}

// State manages the blockchain node. The mutex is the single mutation
// boundary for the chain and the mempool: all writes happen under it and
// reads copy under it so no caller observes a half-applied mutation.
type State struct {
	mu sync.Mutex

	beneficiaryID string
	host          string
	evHandler     EventHandler

	genesis    genesis.Genesis
	db         *database.Database
	mempool    *mempool.Mempool
	knownPeers *peer.PeerSet
	fetcher    Fetcher

	Worker Worker
}

// New constructs a new blockchain node for data management. The genesis
// block is created here, exactly once, so the chain is never empty.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	knownPeers := cfg.KnownPeers
	if knownPeers == nil {
		knownPeers = peer.NewPeerSet()
	}

	state := State{
		beneficiaryID: cfg.BeneficiaryID,
		host:          cfg.Host,
		evHandler:     ev,

		genesis:    cfg.Genesis,
		db:         database.New(database.Genesis()),
		mempool:    mempool.New(),
		knownPeers: knownPeers,
		fetcher:    cfg.Fetcher,
	}

	// Resolution over the network needs a fetcher. Tests inject their own,
	// the node uses HTTP against the private peer endpoints.
	if state.fetcher == nil {
		state.fetcher = NewHTTPFetcher(fetchTimeout)
	}

	// The Worker is not set here. The call to worker.Run will assign itself
	// and start everything up and running for the node.

	return &state, nil
}

// Shutdown cleanly brings the node down.
func (s *State) Shutdown() error {
	if s.Worker != nil {
		s.Worker.Shutdown()
	}

	return nil
}
