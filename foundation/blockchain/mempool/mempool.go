// Package mempool maintains the pool of transactions waiting to be mined
// into a block.
package mempool

import (
	"sync"

	"github.com/powlabs/ledger/foundation/blockchain/database"
)

// Mempool represents the ordered set of pending transactions. Insertion
// order is preserved since a mined block embeds the pool as-is. Duplicate
// transactions are allowed so there is no keying or dedup.
type Mempool struct {
	mu   sync.RWMutex
	pool []database.Tx
}

// New constructs a new mempool.
func New() *Mempool {
	return &Mempool{}
}

// Count returns the current number of transactions in the pool.
func (mp *Mempool) Count() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	return len(mp.pool)
}

// Add appends a transaction to the pool.
func (mp *Mempool) Add(tx database.Tx) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = append(mp.pool, tx)
}

// Copy returns a copy of the pool in insertion order.
func (mp *Mempool) Copy() []database.Tx {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	pool := make([]database.Tx, len(mp.pool))
	copy(pool, mp.pool)

	return pool
}

// Truncate clears all the transactions from the pool.
func (mp *Mempool) Truncate() {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = nil
}
