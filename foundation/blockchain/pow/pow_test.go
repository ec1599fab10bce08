package pow_test

import (
	"testing"

	"github.com/powlabs/ledger/foundation/blockchain/pow"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// =============================================================================

func Test_SearchValidate(t *testing.T) {
	type table struct {
		name       string
		lastProof  uint64
		difficulty int
	}

	tt := []table{
		{"genesis", 100, 2},
		{"zero", 0, 2},
		{"large", 918273645, 2},
		{"easy", 100, 1},
	}

	t.Log("Given the need to validate the proof of work puzzle.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen searching from last proof %d at difficulty %d.", testID, tst.lastProof, tst.difficulty)
			{
				f := func(t *testing.T) {
					proof := pow.Search(tst.lastProof, tst.difficulty)

					if !pow.Validate(tst.lastProof, proof, tst.difficulty) {
						t.Fatalf("\t%s\tTest %d:\tShould find a proof that validates.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould find a proof that validates.", success, testID)

					// The search must return the smallest solution.
					for candidate := uint64(0); candidate < proof; candidate++ {
						if pow.Validate(tst.lastProof, candidate, tst.difficulty) {
							t.Fatalf("\t%s\tTest %d:\tShould not skip a smaller solution: found %d below %d.", failed, testID, candidate, proof)
						}
					}
					t.Logf("\t%s\tTest %d:\tShould return the smallest solution.", success, testID)

					if pow.Search(tst.lastProof, tst.difficulty) != proof {
						t.Fatalf("\t%s\tTest %d:\tShould be reproducible for the same input.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould be reproducible for the same input.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}
}

func Test_ValidateRejects(t *testing.T) {
	t.Log("Given the need to validate wrong proofs are rejected.")
	{
		t.Logf("\tTest 0:\tWhen checking candidates against an unreachable difficulty.")
		{
			// A full-length zero prefix would require the hash to be all
			// zeros, so every candidate must fail.
			const difficulty = 64

			for candidate := uint64(0); candidate < 10; candidate++ {
				if pow.Validate(100, candidate, difficulty) {
					t.Fatalf("\t%s\tTest 0:\tShould reject candidate %d.", failed, candidate)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould reject every candidate.", success)
		}
	}
}
