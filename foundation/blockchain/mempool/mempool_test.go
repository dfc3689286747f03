package mempool_test

import (
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/mempool"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestCRUD(t *testing.T) {
	type table struct {
		name string
		txs  []database.Tx
	}

	tt := []table{
		{
			name: "basic",
			txs: []database.Tx{
				database.NewTx("bill", "ceasar", 10),
				database.NewTx("ceasar", "pavel", 50),
				database.NewTx("pavel", "bill", 100),
				database.NewTx("bill", "ceasar", 10),
			},
		},
	}

	t.Log("Given the need to validate mempool api.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling a set of transaction.", testID)
			{
				f := func(t *testing.T) {
					mp := mempool.New()

					for i, tx := range tst.txs {
						if n := mp.Add(tx); n != i+1 {
							t.Fatalf("\t%s\tTest %d:\tShould get back the new count: %d", failed, testID, n)
						}
					}
					t.Logf("\t%s\tTest %d:\tShould be able to add duplicate transactions.", success, testID)

					for i, tx := range mp.Copy() {
						if tx != tst.txs[i] {
							t.Logf("\t%s\tTest %d:\tgot: %s", failed, testID, tx)
							t.Logf("\t%s\tTest %d:\texp: %s", failed, testID, tst.txs[i])
							t.Fatalf("\t%s\tTest %d:\tShould keep submission order.", failed, testID)
						}
					}
					t.Logf("\t%s\tTest %d:\tShould keep submission order.", success, testID)

					drained := mp.Drain()
					if len(drained) != len(tst.txs) || mp.Count() != 0 {
						t.Fatalf("\t%s\tTest %d:\tShould drain the pool: %d %d", failed, testID, len(drained), mp.Count())
					}
					t.Logf("\t%s\tTest %d:\tShould drain the pool.", success, testID)

					mp.Add(tst.txs[0])
					if drained[0] != tst.txs[0] || len(drained) != len(tst.txs) {
						t.Fatalf("\t%s\tTest %d:\tShould not share storage with a drained snapshot.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould not share storage with a drained snapshot.", success, testID)

					mp.Truncate()
					if mp.Count() != 0 {
						t.Fatalf("\t%s\tTest %d:\tShould be able to truncate mempool.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould be able to truncate mempool.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}
}
