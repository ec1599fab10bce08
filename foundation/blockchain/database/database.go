// Package database maintains the blockchain data model: transactions,
// blocks, chain validation, and the in-memory chain itself.
package database

import "errors"

// ErrEmptyChain is returned when the chain is accessed before the genesis
// block exists. The state package constructs the chain with its genesis
// block so hitting this error is a programming fault.
var ErrEmptyChain = errors.New("chain has no blocks")

// Database manages the append-only chain of blocks. The chain lives in
// memory only for the lifetime of the node. Access is serialized by the
// state package, which owns the single mutation boundary.
type Database struct {
	chain []Block
}

// New constructs a database seeded with the specified genesis block.
func New(genesisBlock Block) *Database {
	return &Database{
		chain: []Block{genesisBlock},
	}
}

// Height returns the current number of blocks in the chain.
func (db *Database) Height() int {
	return len(db.chain)
}

// LatestBlock returns a copy of the most recently appended block.
func (db *Database) LatestBlock() (Block, error) {
	if len(db.chain) == 0 {
		return Block{}, ErrEmptyChain
	}

	return db.chain[len(db.chain)-1], nil
}

// Write appends the specified block to the chain. Blocks are only ever
// appended, the chain is never spliced.
func (db *Database) Write(block Block) {
	db.chain = append(db.chain, block)
}

// Copy returns a copy of the full chain in block order.
func (db *Database) Copy() []Block {
	chain := make([]Block, len(db.chain))
	copy(chain, db.chain)

	return chain
}

// Replace swaps the full chain for the specified candidate. Used by the
// consensus algorithm when a longer valid chain is found.
func (db *Database) Replace(chain []Block) {
	db.chain = chain
}
