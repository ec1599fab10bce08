package state

import (
	"github.com/powlabs/ledger/foundation/blockchain/database"
)

// SubmitTransaction appends a new transaction to the mempool and returns
// the index of the block that will eventually hold it. The values are
// accepted as given, there is no balance or double spend checking.
func (s *State) SubmitTransaction(tx database.Tx) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	latestBlock, err := s.db.LatestBlock()
	if err != nil {
		return 0, err
	}

	s.mempool.Add(tx)
	s.evHandler("state: SubmitTransaction: tx[%s -> %s: %v] added to mempool", tx.Sender, tx.Recipient, tx.Amount)

	return latestBlock.Index + 1, nil
}
