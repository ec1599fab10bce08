package state

import (
	"github.com/powlabs/ledger/foundation/blockchain/database"
)

// ResolveConflicts implements the longest chain consensus rule. Every
// known peer is asked for its chain; a peer that can't be reached is
// skipped. Among the peers that respond, the longest chain that is
// strictly longer than ours and passes validation wins. All peers are
// scanned even after a candidate is found so only the overall longest is
// kept; on equal maximal lengths the first one found is kept. Returns true
// if the local chain was replaced.
//
// The mempool is untouched either way. Transactions queued locally but not
// yet mined survive a replacement as-is even though the block index they
// were promised may no longer be the one they land in.
func (s *State) ResolveConflicts() bool {
	s.evHandler("state: ResolveConflicts: started")
	defer s.evHandler("state: ResolveConflicts: completed")

	_, maxLength := s.RetrieveChain()

	var newChain []database.Block
	for _, pr := range s.knownPeers.Copy(s.host) {
		peerChain, err := s.fetcher(pr)
		if err != nil {
			s.evHandler("state: ResolveConflicts: peer[%s]: unreachable: %s", pr.Host, err)
			continue
		}

		if peerChain.Length <= maxLength {
			continue
		}

		if !database.IsValidChain(peerChain.Chain, s.genesis.Difficulty) {
			s.evHandler("state: ResolveConflicts: peer[%s]: invalid chain rejected", pr.Host)
			continue
		}

		maxLength = peerChain.Length
		newChain = peerChain.Chain
	}

	if newChain == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.db.Replace(newChain)
	s.evHandler("state: ResolveConflicts: chain replaced: length[%d]", maxLength)

	return true
}
