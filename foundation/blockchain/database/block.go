package database

import (
	"time"

	"github.com/powlabs/ledger/foundation/blockchain/digest"
	"github.com/powlabs/ledger/foundation/blockchain/pow"
)

// Sentinel values stamped into the genesis block. The genesis previous
// hash is not a digest of anything and the genesis proof is not checked
// against the puzzle.
const (
	GenesisProof    uint64 = 100
	GenesisPrevHash string = "1"
)

// Block represents a group of transactions batched together with a link to
// the previous block in the chain. The fields are declared in sorted JSON
// key order since the declaration order is the canonical hashing order.
// Once appended to the chain a block is never changed.
type Block struct {
	Index        uint64  `json:"index"`
	PrevHash     string  `json:"previous_hash"`
	Proof        uint64  `json:"proof"`
	TimeStamp    float64 `json:"timestamp"`
	Transactions []Tx    `json:"transactions"`
}

// NewBlock constructs the block at the specified index holding the
// specified set of transactions. The timestamp is taken as seconds since
// epoch with sub-second precision.
func NewBlock(index uint64, trans []Tx, proof uint64, prevHash string) Block {

	// A nil slice would serialize differently than an empty one and
	// change the digest of an otherwise equal block.
	if trans == nil {
		trans = []Tx{}
	}

	return Block{
		Index:        index,
		PrevHash:     prevHash,
		Proof:        proof,
		TimeStamp:    float64(time.Now().UTC().UnixNano()) / float64(time.Second),
		Transactions: trans,
	}
}

// Genesis constructs the sentinel first block of a chain.
func Genesis() Block {
	return NewBlock(1, nil, GenesisProof, GenesisPrevHash)
}

// Hash returns the unique hash for the block.
func (b Block) Hash() string {
	return digest.Hash(b)
}

// =============================================================================

// IsValidChain walks the candidate chain from the second block onward and
// checks the hash link to the previous block and the puzzle solution of
// every consecutive proof pair. A chain of length one is trivially valid.
// The candidate is not mutated.
func IsValidChain(chain []Block, difficulty int) bool {
	for i := 1; i < len(chain); i++ {
		prevBlock := chain[i-1]
		block := chain[i]

		if block.PrevHash != prevBlock.Hash() {
			return false
		}

		if !pow.Validate(prevBlock.Proof, block.Proof, difficulty) {
			return false
		}
	}

	return true
}
