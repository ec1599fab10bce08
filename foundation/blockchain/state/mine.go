package state

import (
	"github.com/powlabs/ledger/foundation/blockchain/database"
	"github.com/powlabs/ledger/foundation/blockchain/pow"
)

// MineNextBlock runs the proof of work puzzle against the latest block's
// proof and commits a new block holding every pending transaction plus the
// mining reward. The search itself runs outside the mutation lock against
// a snapshot of the latest block, only the final commit is serialized.
// The call blocks until the puzzle is solved, it cannot be cancelled.
func (s *State) MineNextBlock() (database.Block, error) {
	latestBlock, err := s.RetrieveLatestBlock()
	if err != nil {
		return database.Block{}, err
	}

	s.evHandler("state: MineNextBlock: MINING: started: lastProof[%d]", latestBlock.Proof)

	proof := pow.Search(latestBlock.Proof, s.genesis.Difficulty)

	s.evHandler("state: MineNextBlock: MINING: solved: proof[%d]", proof)

	// The miner gets a reward for finding the proof.
	reward := database.NewTx(s.genesis.RewardSender, s.beneficiaryID, s.genesis.MiningReward)
	if _, err := s.SubmitTransaction(reward); err != nil {
		return database.Block{}, err
	}

	return s.MineBlock(proof, latestBlock.Hash())
}

// MineBlock commits a new block to the chain holding the entire mempool in
// insertion order. The proof and previous hash are supplied by the caller,
// the puzzle is not run here. The mempool is cleared and the block appended
// as one mutation: either the block commits with its full set of
// transactions or nothing changes.
func (s *State) MineBlock(proof uint64, prevHash string) (database.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	latestBlock, err := s.db.LatestBlock()
	if err != nil {
		return database.Block{}, err
	}

	trans := s.mempool.Copy()
	s.mempool.Truncate()

	block := database.NewBlock(latestBlock.Index+1, trans, proof, prevHash)
	s.db.Write(block)

	s.evHandler("state: MineBlock: block[%d] committed: trans[%d]", block.Index, len(block.Transactions))

	return block, nil
}
