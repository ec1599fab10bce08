package state_test

import (
	"errors"
	"testing"

	"github.com/powlabs/ledger/foundation/blockchain/database"
	"github.com/powlabs/ledger/foundation/blockchain/genesis"
	"github.com/powlabs/ledger/foundation/blockchain/peer"
	"github.com/powlabs/ledger/foundation/blockchain/pow"
	"github.com/powlabs/ledger/foundation/blockchain/state"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// testDifficulty keeps the puzzle cheap for testing.
const testDifficulty = 1

// =============================================================================

// newTestState constructs a state value with a cheap puzzle and the
// specified fetcher for resolution tests.
func newTestState(t *testing.T, fetcher state.Fetcher, peers ...string) *state.State {
	t.Helper()

	knownPeers := peer.NewPeerSet()
	for _, host := range peers {
		knownPeers.Add(peer.New(host))
	}

	gen := genesis.Genesis{
		ChainID:      1,
		Difficulty:   testDifficulty,
		MiningReward: 1,
		RewardSender: "0",
	}

	st, err := state.New(state.Config{
		BeneficiaryID: "miner",
		Host:          "localhost:9080",
		Genesis:       gen,
		KnownPeers:    knownPeers,
		Fetcher:       fetcher,
	})
	if err != nil {
		t.Fatalf("\t%s\tShould construct the state: %v.", failed, err)
	}

	return st
}

// mineChain constructs a valid chain of the specified length starting from
// the genesis block.
func mineChain(length int) []database.Block {
	chain := []database.Block{database.Genesis()}

	for i := 1; i < length; i++ {
		prevBlock := chain[i-1]
		proof := pow.Search(prevBlock.Proof, testDifficulty)
		block := database.NewBlock(prevBlock.Index+1, []database.Tx{database.NewTx("A", "B", float64(i))}, proof, prevBlock.Hash())
		chain = append(chain, block)
	}

	return chain
}

// =============================================================================

func Test_FreshLedger(t *testing.T) {
	t.Log("Given the need to validate a freshly constructed ledger.")
	{
		t.Logf("\tTest 0:\tWhen inspecting the initial chain.")
		{
			st := newTestState(t, nil)

			chain, length := st.RetrieveChain()
			if length != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould hold only the genesis block: got %d.", failed, length)
			}
			t.Logf("\t%s\tTest 0:\tShould hold only the genesis block.", success)

			if chain[0].Proof != database.GenesisProof || chain[0].PrevHash != database.GenesisPrevHash {
				t.Fatalf("\t%s\tTest 0:\tShould carry the genesis sentinels: got proof %d prev %q.", failed, chain[0].Proof, chain[0].PrevHash)
			}
			t.Logf("\t%s\tTest 0:\tShould carry the genesis sentinels.", success)

			if len(st.RetrieveMempool()) != 0 {
				t.Fatalf("\t%s\tTest 0:\tShould have an empty mempool.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould have an empty mempool.", success)
		}
	}
}

func Test_SubmitTransaction(t *testing.T) {
	t.Log("Given the need to validate transaction submission.")
	{
		t.Logf("\tTest 0:\tWhen queueing a transaction on a fresh ledger.")
		{
			st := newTestState(t, nil)

			index, err := st.SubmitTransaction(database.NewTx("A", "B", 5))
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould queue the transaction: %v.", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould queue the transaction.", success)

			if index != 2 {
				t.Fatalf("\t%s\tTest 0:\tShould promise the next block index 2: got %d.", failed, index)
			}
			t.Logf("\t%s\tTest 0:\tShould promise the next block index 2.", success)

			pool := st.RetrieveMempool()
			if len(pool) != 1 || pool[0] != database.NewTx("A", "B", 5) {
				t.Fatalf("\t%s\tTest 0:\tShould hold the transaction in the mempool.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould hold the transaction in the mempool.", success)
		}
	}
}

func Test_MineBlock(t *testing.T) {
	t.Log("Given the need to validate block commits.")
	{
		t.Logf("\tTest 0:\tWhen committing the queued transactions.")
		{
			st := newTestState(t, nil)

			if _, err := st.SubmitTransaction(database.NewTx("A", "B", 5)); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould queue the transaction: %v.", failed, err)
			}

			gen, err := st.RetrieveLatestBlock()
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould retrieve the latest block: %v.", failed, err)
			}

			proof := pow.Search(gen.Proof, testDifficulty)
			block, err := st.MineBlock(proof, gen.Hash())
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould commit the block: %v.", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould commit the block.", success)

			if block.Index != 2 {
				t.Fatalf("\t%s\tTest 0:\tShould commit at index 2: got %d.", failed, block.Index)
			}
			t.Logf("\t%s\tTest 0:\tShould commit at index 2.", success)

			if block.PrevHash != gen.Hash() {
				t.Fatalf("\t%s\tTest 0:\tShould link back to the genesis digest.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould link back to the genesis digest.", success)

			if len(block.Transactions) != 1 || block.Transactions[0] != database.NewTx("A", "B", 5) {
				t.Fatalf("\t%s\tTest 0:\tShould carry the queued transaction.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould carry the queued transaction.", success)

			if len(st.RetrieveMempool()) != 0 {
				t.Fatalf("\t%s\tTest 0:\tShould clear the mempool.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould clear the mempool.", success)

			if _, length := st.RetrieveChain(); length != 2 {
				t.Fatalf("\t%s\tTest 0:\tShould grow the chain to length 2: got %d.", failed, length)
			}
			t.Logf("\t%s\tTest 0:\tShould grow the chain to length 2.", success)
		}

		t.Logf("\tTest 1:\tWhen the pool holds multiple transactions.")
		{
			st := newTestState(t, nil)

			txs := []database.Tx{
				database.NewTx("A", "B", 5),
				database.NewTx("B", "C", 10),
				database.NewTx("C", "A", 2),
			}
			for _, tx := range txs {
				if _, err := st.SubmitTransaction(tx); err != nil {
					t.Fatalf("\t%s\tTest 1:\tShould queue the transaction: %v.", failed, err)
				}
			}

			gen, err := st.RetrieveLatestBlock()
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould retrieve the latest block: %v.", failed, err)
			}

			proof := pow.Search(gen.Proof, testDifficulty)
			block, err := st.MineBlock(proof, gen.Hash())
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould commit the block: %v.", failed, err)
			}

			if len(block.Transactions) != len(txs) {
				t.Fatalf("\t%s\tTest 1:\tShould carry the entire pool: got %d.", failed, len(block.Transactions))
			}
			for i := range txs {
				if block.Transactions[i] != txs[i] {
					t.Fatalf("\t%s\tTest 1:\tShould preserve insertion order at position %d.", failed, i)
				}
			}
			t.Logf("\t%s\tTest 1:\tShould carry the entire pool in insertion order.", success)

			if len(st.RetrieveMempool()) != 0 {
				t.Fatalf("\t%s\tTest 1:\tShould leave nothing behind in the mempool.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould leave nothing behind in the mempool.", success)
		}
	}
}

func Test_MineNextBlock(t *testing.T) {
	t.Log("Given the need to validate the full mining operation.")
	{
		t.Logf("\tTest 0:\tWhen mining with a queued transaction.")
		{
			st := newTestState(t, nil)

			if _, err := st.SubmitTransaction(database.NewTx("A", "B", 5)); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould queue the transaction: %v.", failed, err)
			}

			block, err := st.MineNextBlock()
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould mine the block: %v.", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould mine the block.", success)

			if !pow.Validate(database.GenesisProof, block.Proof, testDifficulty) {
				t.Fatalf("\t%s\tTest 0:\tShould solve the puzzle against the genesis proof.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould solve the puzzle against the genesis proof.", success)

			if len(block.Transactions) != 2 {
				t.Fatalf("\t%s\tTest 0:\tShould carry the queued transaction plus the reward: got %d.", failed, len(block.Transactions))
			}
			t.Logf("\t%s\tTest 0:\tShould carry the queued transaction plus the reward.", success)

			reward := block.Transactions[len(block.Transactions)-1]
			if reward.Sender != "0" || reward.Recipient != "miner" || reward.Amount != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould reward the beneficiary last: got %+v.", failed, reward)
			}
			t.Logf("\t%s\tTest 0:\tShould reward the beneficiary last.", success)

			chain, _ := st.RetrieveChain()
			if !database.IsValidChain(chain, testDifficulty) {
				t.Fatalf("\t%s\tTest 0:\tShould leave the chain valid.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould leave the chain valid.", success)
		}
	}
}

func Test_ResolveConflicts(t *testing.T) {
	t.Log("Given the need to validate longest chain consensus.")
	{
		t.Logf("\tTest 0:\tWhen a peer holds a strictly longer valid chain.")
		{
			longer := mineChain(3)
			fetcher := func(pr peer.Peer) (state.PeerChain, error) {
				return state.PeerChain{Chain: longer, Length: len(longer)}, nil
			}

			st := newTestState(t, fetcher, "localhost:9081")
			st.SubmitTransaction(database.NewTx("A", "B", 5))

			if !st.ResolveConflicts() {
				t.Fatalf("\t%s\tTest 0:\tShould replace the local chain.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould replace the local chain.", success)

			if _, length := st.RetrieveChain(); length != 3 {
				t.Fatalf("\t%s\tTest 0:\tShould adopt the longer chain: got length %d.", failed, length)
			}
			t.Logf("\t%s\tTest 0:\tShould adopt the longer chain.", success)

			if len(st.RetrieveMempool()) != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould leave the mempool untouched.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould leave the mempool untouched.", success)
		}

		t.Logf("\tTest 1:\tWhen a peer holds a chain of equal length.")
		{
			equal := mineChain(1)
			fetcher := func(pr peer.Peer) (state.PeerChain, error) {
				return state.PeerChain{Chain: equal, Length: len(equal)}, nil
			}

			st := newTestState(t, fetcher, "localhost:9081")

			if st.ResolveConflicts() {
				t.Fatalf("\t%s\tTest 1:\tShould keep the local chain.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould keep the local chain.", success)
		}

		t.Logf("\tTest 2:\tWhen the longer chain fails validation.")
		{
			corrupt := mineChain(3)
			corrupt[1].Transactions = append(corrupt[1].Transactions, database.NewTx("M", "M", 1000))
			fetcher := func(pr peer.Peer) (state.PeerChain, error) {
				return state.PeerChain{Chain: corrupt, Length: len(corrupt)}, nil
			}

			st := newTestState(t, fetcher, "localhost:9081")

			if st.ResolveConflicts() {
				t.Fatalf("\t%s\tTest 2:\tShould reject the tampered chain.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould reject the tampered chain.", success)

			if _, length := st.RetrieveChain(); length != 1 {
				t.Fatalf("\t%s\tTest 2:\tShould keep the local chain: got length %d.", failed, length)
			}
			t.Logf("\t%s\tTest 2:\tShould keep the local chain.", success)
		}

		t.Logf("\tTest 3:\tWhen one peer is unreachable and another holds a longer chain.")
		{
			longer := mineChain(4)
			fetcher := func(pr peer.Peer) (state.PeerChain, error) {
				if pr.Host == "localhost:9081" {
					return state.PeerChain{}, errors.New("connection refused")
				}
				return state.PeerChain{Chain: longer, Length: len(longer)}, nil
			}

			st := newTestState(t, fetcher, "localhost:9081", "localhost:9082")

			if !st.ResolveConflicts() {
				t.Fatalf("\t%s\tTest 3:\tShould skip the dead peer and still resolve.", failed)
			}
			t.Logf("\t%s\tTest 3:\tShould skip the dead peer and still resolve.", success)

			if _, length := st.RetrieveChain(); length != 4 {
				t.Fatalf("\t%s\tTest 3:\tShould adopt the reachable peer's chain: got length %d.", failed, length)
			}
			t.Logf("\t%s\tTest 3:\tShould adopt the reachable peer's chain.", success)
		}

		t.Logf("\tTest 4:\tWhen no peers are known.")
		{
			fetcher := func(pr peer.Peer) (state.PeerChain, error) {
				t.Fatalf("\t%s\tTest 4:\tShould never be called without peers.", failed)
				return state.PeerChain{}, nil
			}

			st := newTestState(t, fetcher)

			if st.ResolveConflicts() {
				t.Fatalf("\t%s\tTest 4:\tShould keep the local chain.", failed)
			}
			t.Logf("\t%s\tTest 4:\tShould keep the local chain.", success)
		}
	}
}

func Test_AddKnownPeer(t *testing.T) {
	t.Log("Given the need to validate peer registration.")
	{
		t.Logf("\tTest 0:\tWhen registering peer addresses.")
		{
			st := newTestState(t, nil)

			added, err := st.AddKnownPeer("http://localhost:9081")
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould register a new peer: %v.", failed, err)
			}
			if !added {
				t.Fatalf("\t%s\tTest 0:\tShould report the peer as new.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould register a new peer.", success)

			added, err = st.AddKnownPeer("localhost:9081")
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould accept a bare address: %v.", failed, err)
			}
			if added {
				t.Fatalf("\t%s\tTest 0:\tShould not re-add the same host.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould not re-add the same host.", success)

			if _, err := st.AddKnownPeer(""); err == nil {
				t.Fatalf("\t%s\tTest 0:\tShould reject an empty address.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould reject an empty address.", success)

			if len(st.RetrieveKnownPeers()) != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould know exactly one peer.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould know exactly one peer.", success)
		}
	}
}
