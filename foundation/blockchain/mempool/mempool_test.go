package mempool_test

import (
	"testing"

	"github.com/powlabs/ledger/foundation/blockchain/database"
	"github.com/powlabs/ledger/foundation/blockchain/mempool"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// =============================================================================

func Test_CRUD(t *testing.T) {
	t.Log("Given the need to validate mempool operations.")
	{
		t.Logf("\tTest 0:\tWhen adding and copying transactions.")
		{
			mp := mempool.New()

			if mp.Count() != 0 {
				t.Fatalf("\t%s\tTest 0:\tShould start empty: got %d.", failed, mp.Count())
			}
			t.Logf("\t%s\tTest 0:\tShould start empty.", success)

			mp.Add(database.NewTx("A", "B", 5))
			mp.Add(database.NewTx("B", "C", 10))
			mp.Add(database.NewTx("A", "B", 5))

			if mp.Count() != 3 {
				t.Fatalf("\t%s\tTest 0:\tShould keep duplicate transactions: got %d.", failed, mp.Count())
			}
			t.Logf("\t%s\tTest 0:\tShould keep duplicate transactions.", success)

			pool := mp.Copy()
			if pool[0].Sender != "A" || pool[1].Sender != "B" || pool[2].Sender != "A" {
				t.Fatalf("\t%s\tTest 0:\tShould preserve insertion order.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould preserve insertion order.", success)

			pool[0].Amount = 1000
			if mp.Copy()[0].Amount != 5 {
				t.Fatalf("\t%s\tTest 0:\tShould copy the pool, not share it.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould copy the pool, not share it.", success)
		}

		t.Logf("\tTest 1:\tWhen truncating the pool.")
		{
			mp := mempool.New()
			mp.Add(database.NewTx("A", "B", 5))
			mp.Truncate()

			if mp.Count() != 0 {
				t.Fatalf("\t%s\tTest 1:\tShould be empty after truncate: got %d.", failed, mp.Count())
			}
			t.Logf("\t%s\tTest 1:\tShould be empty after truncate.", success)

			mp.Add(database.NewTx("C", "D", 7))
			if mp.Count() != 1 {
				t.Fatalf("\t%s\tTest 1:\tShould accept transactions after truncate: got %d.", failed, mp.Count())
			}
			t.Logf("\t%s\tTest 1:\tShould accept transactions after truncate.", success)
		}
	}
}
