package digest_test

import (
	"testing"

	"github.com/powlabs/ledger/foundation/blockchain/database"
	"github.com/powlabs/ledger/foundation/blockchain/digest"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// =============================================================================

func Test_Determinism(t *testing.T) {
	t.Log("Given the need to validate digests are deterministic.")
	{
		t.Logf("\tTest 0:\tWhen hashing two structurally identical blocks.")
		{
			block1 := database.Block{
				Index:        2,
				PrevHash:     "abc",
				Proof:        35293,
				TimeStamp:    1506057125.900785,
				Transactions: []database.Tx{database.NewTx("A", "B", 5)},
			}

			block2 := database.Block{
				Transactions: []database.Tx{database.NewTx("A", "B", 5)},
				TimeStamp:    1506057125.900785,
				Proof:        35293,
				PrevHash:     "abc",
				Index:        2,
			}

			if digest.Hash(block1) != digest.Hash(block2) {
				t.Fatalf("\t%s\tTest 0:\tShould produce the same digest for equal blocks.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould produce the same digest for equal blocks.", success)

			if len(digest.Hash(block1)) != 64 {
				t.Fatalf("\t%s\tTest 0:\tShould produce a fixed-length hex digest.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould produce a fixed-length hex digest.", success)
		}
	}
}

func Test_CanonicalOrder(t *testing.T) {
	t.Log("Given the need to validate blocks hash in sorted key order.")
	{
		t.Logf("\tTest 0:\tWhen comparing a block against its sorted map form.")
		{
			block := database.Block{
				Index:        2,
				PrevHash:     "abc",
				Proof:        35293,
				TimeStamp:    1506057125.900785,
				Transactions: []database.Tx{database.NewTx("A", "B", 5)},
			}

			// Maps serialize with their keys sorted, so an equal digest
			// proves the struct declaration order is the sorted order.
			m := map[string]any{
				"timestamp":     block.TimeStamp,
				"index":         block.Index,
				"transactions":  block.Transactions,
				"proof":         block.Proof,
				"previous_hash": block.PrevHash,
			}

			if digest.Hash(block) != digest.Hash(m) {
				t.Fatalf("\t%s\tTest 0:\tShould produce the same digest as the sorted map form.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould produce the same digest as the sorted map form.", success)
		}
	}
}

func Test_FieldSensitivity(t *testing.T) {
	base := database.Block{
		Index:        2,
		PrevHash:     "abc",
		Proof:        35293,
		TimeStamp:    1506057125.900785,
		Transactions: []database.Tx{database.NewTx("A", "B", 5)},
	}

	type table struct {
		name   string
		mutate func(b database.Block) database.Block
	}

	tt := []table{
		{"index", func(b database.Block) database.Block { b.Index = 3; return b }},
		{"prevhash", func(b database.Block) database.Block { b.PrevHash = "abd"; return b }},
		{"proof", func(b database.Block) database.Block { b.Proof = 35294; return b }},
		{"timestamp", func(b database.Block) database.Block { b.TimeStamp = 1506057126; return b }},
		{"transactions", func(b database.Block) database.Block {
			b.Transactions = []database.Tx{database.NewTx("A", "B", 6)}
			return b
		}},
	}

	t.Log("Given the need to validate every field affects the digest.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen changing the %s field.", testID, tst.name)
			{
				f := func(t *testing.T) {
					if digest.Hash(base) == digest.Hash(tst.mutate(base)) {
						t.Fatalf("\t%s\tTest %d:\tShould produce a different digest.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould produce a different digest.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}
}
