package database

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/pow"
)

// ZeroHash represents a hash code of zeros. It is only returned by Hash if
// the block can't be encoded, which the block's field types rule out.
const ZeroHash = "0000000000000000000000000000000000000000000000000000000000000000"

// Genesis values for the first block in every chain.
const (
	GenesisProof        uint64 = 100
	GenesisPreviousHash        = "1"
)

// =============================================================================

// Block represents a group of transactions batched together and linked to
// the block before it.
type Block struct {
	Index        uint64  `json:"index"`         // Position in the chain, starting at 1.
	Timestamp    float64 `json:"timestamp"`     // Seconds since the epoch when the block was forged.
	Transactions []Tx    `json:"transactions"`  // Transactions in submission order.
	Proof        uint64  `json:"proof"`         // Value satisfying the POW puzzle with the previous proof.
	PreviousHash string  `json:"previous_hash"` // Hash of the previous block in the chain.
}

// NewGenesisBlock constructs the first block of a chain.
func NewGenesisBlock(now time.Time) Block {
	return Block{
		Index:        1,
		Timestamp:    Timestamp(now),
		Transactions: []Tx{},
		Proof:        GenesisProof,
		PreviousHash: GenesisPreviousHash,
	}
}

// Timestamp converts a time to the fractional seconds since the epoch used
// by blocks on the wire.
func Timestamp(t time.Time) float64 {
	return float64(t.UnixMicro()) / 1e6
}

// Hash returns the unique hash for the Block.
func (b Block) Hash() string {
	return Hash(b)
}

// Hash returns the lowercase hex SHA-256 of the canonical form of the block.
//
// The canonical form is the compact JSON encoding of the block with object
// keys in lexicographic order at every level:
//
//	{"index":2,"previous_hash":"..","proof":35293,"timestamp":1700000000.5,
//	 "transactions":[{"amount":1,"recipient":"..","sender":"0"}]}
//
// The form is built from maps, which encoding/json always writes with sorted
// keys, so it doesn't depend on the declaration order of the struct fields.
// Peers compare previous_hash values computed this way, so the format must
// not change.
func Hash(b Block) string {
	data, err := json.Marshal(b.canonical())
	if err != nil {
		return ZeroHash
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// canonical returns the block in the form used for hashing.
func (b Block) canonical() map[string]any {
	trans := make([]map[string]any, len(b.Transactions))
	for i, tx := range b.Transactions {
		trans[i] = tx.canonical()
	}

	return map[string]any{
		"index":         b.Index,
		"previous_hash": b.PreviousHash,
		"proof":         b.Proof,
		"timestamp":     b.Timestamp,
		"transactions":  trans,
	}
}

// ValidateNext checks this block can follow the specified previous block.
func (b Block) ValidateNext(previousBlock Block) error {
	if hash := previousBlock.Hash(); b.PreviousHash != hash {
		return fmt.Errorf("block[%d]: previous hash doesn't match parent block, got %s, exp %s", b.Index, b.PreviousHash, hash)
	}

	if !pow.ValidProof(previousBlock.Proof, b.Proof) {
		return fmt.Errorf("block[%d]: proof %d doesn't solve the puzzle for parent proof %d", b.Index, b.Proof, previousBlock.Proof)
	}

	return nil
}

// =============================================================================

// ValidateChain walks the chain from the first block and returns an error
// for the first pair of blocks that isn't hash linked or doesn't carry a
// valid proof. Chains with less than two blocks are valid. Index order and
// timestamps are not checked.
func ValidateChain(chain []Block) error {
	for i := 1; i < len(chain); i++ {
		if err := chain[i].ValidateNext(chain[i-1]); err != nil {
			return err
		}
	}

	return nil
}

// IsValidChain reports if the chain passes ValidateChain.
func IsValidChain(chain []Block) bool {
	return ValidateChain(chain) == nil
}
