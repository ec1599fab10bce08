package state

import (
	"github.com/powlabs/ledger/foundation/blockchain/peer"
)

// AddKnownPeer canonicalizes the specified address and adds it to the set
// of known peers. Registering a peer that is already known is a no-op and
// reports false.
func (s *State) AddKnownPeer(address string) (bool, error) {
	pr, err := peer.ParseAddress(address)
	if err != nil {
		return false, err
	}

	added := s.knownPeers.Add(pr)
	if added {
		s.evHandler("state: AddKnownPeer: peer[%s] registered", pr.Host)
	}

	return added, nil
}
