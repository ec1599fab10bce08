package state

import (
	"github.com/powlabs/ledger/foundation/blockchain/database"
	"github.com/powlabs/ledger/foundation/blockchain/genesis"
	"github.com/powlabs/ledger/foundation/blockchain/peer"
)

// RetrieveHost returns a copy of the host information.
func (s *State) RetrieveHost() string {
	return s.host
}

// RetrieveBeneficiaryID returns the account being rewarded for mined blocks.
func (s *State) RetrieveBeneficiaryID() string {
	return s.beneficiaryID
}

// RetrieveGenesis returns a copy of the genesis information.
func (s *State) RetrieveGenesis() genesis.Genesis {
	return s.genesis
}

// RetrieveLatestBlock returns a copy of the current latest block.
func (s *State) RetrieveLatestBlock() (database.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.LatestBlock()
}

// RetrieveChain returns a copy of the full chain and its length.
func (s *State) RetrieveChain() ([]database.Block, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chain := s.db.Copy()
	return chain, len(chain)
}

// RetrieveMempool returns a copy of the uncommitted transactions in
// insertion order.
func (s *State) RetrieveMempool() []database.Tx {
	return s.mempool.Copy()
}

// RetrieveKnownPeers retrieves a copy of the known peer list.
func (s *State) RetrieveKnownPeers() []peer.Peer {
	return s.knownPeers.Copy(s.host)
}
