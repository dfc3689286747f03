// Package pow implements the proof of work puzzle used to forge blocks.
//
// A proof is valid for the previous block's proof when the SHA-256 of the
// two numbers written in decimal, back to back, starts with Difficulty zero
// hex characters. Solving the puzzle is a brute force search.
package pow

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// Difficulty is the number of leading zero hex characters a solved hash must
// have. It's fixed for the life of the chain.
const Difficulty = 4

// progressAttempts is how often a search reports it's still running.
const progressAttempts = 100_000

// =============================================================================

// ValidProof reports if the proof solves the puzzle for the last proof.
func ValidProof(lastProof uint64, proof uint64) bool {
	return strings.HasPrefix(Guess(lastProof, proof), zeros)
}

// Guess returns the hex encoded hash checked by ValidProof.
func Guess(lastProof uint64, proof uint64) string {
	var buf [40]byte
	b := strconv.AppendUint(buf[:0], lastProof, 10)
	b = strconv.AppendUint(b, proof, 10)

	hash := sha256.Sum256(b)
	return hex.EncodeToString(hash[:])
}

// FindProof returns the smallest proof that solves the puzzle for the last
// proof. The search runs until it succeeds.
func FindProof(lastProof uint64) uint64 {
	proof, _ := Search(context.Background(), lastProof, nil)
	return proof
}

// Search performs the same search as FindProof but stops when the context is
// cancelled. The handler, if provided, is called as the search progresses.
func Search(ctx context.Context, lastProof uint64, ev func(v string, args ...any)) (uint64, error) {
	if ev == nil {
		ev = func(string, ...any) {}
	}

	ev("pow: Search: started: lastProof[%d]", lastProof)

	for proof := uint64(0); ; proof++ {
		if proof%progressAttempts == 0 {
			if err := ctx.Err(); err != nil {
				ev("pow: Search: CANCELLED: attempts[%d]", proof)
				return 0, err
			}
			if proof > 0 {
				ev("pow: Search: attempts[%d]", proof)
			}
		}

		if ValidProof(lastProof, proof) {
			ev("pow: Search: SOLVED: lastProof[%d]: proof[%d]", lastProof, proof)
			return proof, nil
		}
	}
}

// zeros is the prefix a solved hash must have.
var zeros = strings.Repeat("0", Difficulty)
