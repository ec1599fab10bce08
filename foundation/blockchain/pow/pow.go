// Package pow implements the proof of work puzzle used to mine new blocks.
package pow

import (
	"fmt"
	"strings"

	"github.com/powlabs/ledger/foundation/blockchain/digest"
)

// DefaultDifficulty is the number of leading zero hex characters a solution
// hash must carry. The difficulty is a fixed configuration value, there is
// no retargeting.
const DefaultDifficulty = 4

// Validate reports whether proof solves the puzzle for the specified last
// proof. The two proofs are concatenated as decimal text, hashed, and the
// hash must start with difficulty zero characters.
func Validate(lastProof uint64, proof uint64, difficulty int) bool {
	guess := fmt.Sprintf("%d%d", lastProof, proof)
	hash := digest.Sum([]byte(guess))

	return strings.HasPrefix(hash, strings.Repeat("0", difficulty))
}

// Search finds the smallest proof that solves the puzzle for the specified
// last proof. The search starts at zero and increments by one so the result
// is reproducible for the same input. This call is CPU bound and blocks
// until a solution is found. There is no cancelling a search in flight.
func Search(lastProof uint64, difficulty int) uint64 {
	var proof uint64
	for !Validate(lastProof, proof, difficulty) {
		proof++
	}

	return proof
}
