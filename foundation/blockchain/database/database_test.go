package database_test

import (
	"testing"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/pow"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// =============================================================================

func genesis() database.Block {
	return database.NewGenesisBlock(time.Unix(1700000000, 0))
}

// next builds a valid block on top of the previous block.
func next(prev database.Block, trans ...database.Tx) database.Block {
	if trans == nil {
		trans = []database.Tx{}
	}

	return database.Block{
		Index:        prev.Index + 1,
		Timestamp:    prev.Timestamp + 1,
		Transactions: trans,
		Proof:        pow.FindProof(prev.Proof),
		PreviousHash: prev.Hash(),
	}
}

func Test_Hash(t *testing.T) {
	blk := database.Block{
		Index:        2,
		Timestamp:    1700000000.25,
		Transactions: []database.Tx{database.NewTx("a", "b", 5)},
		Proof:        35293,
		PreviousHash: "abc",
	}

	t.Log("Given the need to hash blocks.")
	{
		t.Logf("\tTest 0:\tWhen handling structurally identical blocks.")
		{
			// Same fields declared in a different order.
			same := database.Block{
				PreviousHash: "abc",
				Proof:        35293,
				Transactions: []database.Tx{{Amount: 5, Recipient: "b", Sender: "a"}},
				Timestamp:    1700000000.25,
				Index:        2,
			}

			if blk.Hash() != same.Hash() {
				t.Fatalf("\t%s\tTest 0:\tShould get the same hash.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould get the same hash.", success)

			if blk.Hash() != database.Hash(blk) {
				t.Fatalf("\t%s\tTest 0:\tShould get the same hash from both forms.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould get the same hash from both forms.", success)

			if len(blk.Hash()) != 64 {
				t.Fatalf("\t%s\tTest 0:\tShould get a 64 character hex hash: %s", failed, blk.Hash())
			}
			t.Logf("\t%s\tTest 0:\tShould get a 64 character hex hash.", success)
		}

		t.Logf("\tTest 1:\tWhen changing any field.")
		{
			changes := map[string]func(b database.Block) database.Block{
				"index":         func(b database.Block) database.Block { b.Index++; return b },
				"timestamp":     func(b database.Block) database.Block { b.Timestamp += 0.5; return b },
				"proof":         func(b database.Block) database.Block { b.Proof++; return b },
				"previous_hash": func(b database.Block) database.Block { b.PreviousHash = "abd"; return b },
				"transactions": func(b database.Block) database.Block {
					b.Transactions = []database.Tx{database.NewTx("a", "b", 6)}
					return b
				},
			}

			for field, change := range changes {
				if change(blk).Hash() == blk.Hash() {
					t.Fatalf("\t%s\tTest 1:\tShould change the hash when changing %s.", failed, field)
				}
				t.Logf("\t%s\tTest 1:\tShould change the hash when changing %s.", success, field)
			}
		}

		t.Logf("\tTest 2:\tWhen hashing the same genesis block twice.")
		{
			if genesis().Hash() != genesis().Hash() {
				t.Fatalf("\t%s\tTest 2:\tShould be deterministic.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould be deterministic.", success)
		}
	}
}

func Test_ValidateChain(t *testing.T) {
	gen := genesis()
	b2 := next(gen, database.NewTx("a", "b", 5))
	b3 := next(b2)

	badHash := b2
	badHash.PreviousHash = "not-the-hash"

	badProof := b2
	badProof.Proof++

	type table struct {
		name  string
		chain []database.Block
		valid bool
	}

	tt := []table{
		{name: "empty", chain: nil, valid: true},
		{name: "genesis", chain: []database.Block{gen}, valid: true},
		{name: "linked", chain: []database.Block{gen, b2, b3}, valid: true},
		{name: "bad-hash", chain: []database.Block{gen, badHash}, valid: false},
		{name: "bad-proof", chain: []database.Block{gen, badProof}, valid: false},
		{name: "bad-tail", chain: []database.Block{gen, b2, next(gen)}, valid: false},
	}

	t.Log("Given the need to validate chains.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling the %s chain.", testID, tst.name)
			{
				f := func(t *testing.T) {
					if got := database.IsValidChain(tst.chain); got != tst.valid {
						t.Logf("\t%s\tTest %d:\tgot: %v", failed, testID, got)
						t.Logf("\t%s\tTest %d:\texp: %v", failed, testID, tst.valid)
						t.Fatalf("\t%s\tTest %d:\tShould get the right validity.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould get the right validity.", success, testID)

					err := database.ValidateChain(tst.chain)
					if (err == nil) != tst.valid {
						t.Fatalf("\t%s\tTest %d:\tShould agree with IsValidChain: %v", failed, testID, err)
					}
					t.Logf("\t%s\tTest %d:\tShould agree with IsValidChain.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}
}

func Test_Database(t *testing.T) {
	gen := genesis()

	t.Log("Given the need to manage the chain.")
	{
		db := database.New(gen)

		if db.Length() != 1 || db.LatestBlock().Hash() != gen.Hash() {
			t.Fatalf("\t%s\tShould start with the genesis block.", failed)
		}
		t.Logf("\t%s\tShould start with the genesis block.", success)

		if gen.Index != 1 || gen.Proof != 100 || gen.PreviousHash != "1" || len(gen.Transactions) != 0 {
			t.Fatalf("\t%s\tShould build the genesis block with fixed values: %+v", failed, gen)
		}
		t.Logf("\t%s\tShould build the genesis block with fixed values.", success)

		b2 := next(gen)
		if err := db.Write(b2); err != nil {
			t.Fatalf("\t%s\tShould be able to write the next block: %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to write the next block.", success)

		if err := db.Write(b2); err == nil {
			t.Fatalf("\t%s\tShould reject a block with the wrong index.", failed)
		}
		t.Logf("\t%s\tShould reject a block with the wrong index.", success)

		chain := db.Copy()
		chain[0].Proof = 1
		if db.Copy()[0].Proof != database.GenesisProof {
			t.Fatalf("\t%s\tShould return a copy of the chain.", failed)
		}
		t.Logf("\t%s\tShould return a copy of the chain.", success)

		if db.Replace([]database.Block{gen, b2}) {
			t.Fatalf("\t%s\tShould not replace with a chain of the same length.", failed)
		}
		t.Logf("\t%s\tShould not replace with a chain of the same length.", success)

		b3 := next(b2)
		if !db.Replace([]database.Block{gen, b2, b3}) || db.Length() != 3 {
			t.Fatalf("\t%s\tShould replace with a longer chain.", failed)
		}
		t.Logf("\t%s\tShould replace with a longer chain.", success)
	}
}
