package public

import (
	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/validate"
)

// newTx is the request to add a transaction to the mempool. Pointers are
// used so a missing field can be told apart from a zero value.
type newTx struct {
	Sender    *string  `json:"sender" validate:"required"`
	Recipient *string  `json:"recipient" validate:"required"`
	Amount    *float64 `json:"amount" validate:"required"`
}

// Validate checks the data in the model is considered clean.
func (tx newTx) Validate() error {
	return validate.Check(tx)
}

type txAdded struct {
	Message string `json:"message"`
	Index   uint64 `json:"index"`
}

// =============================================================================

type minedBlock struct {
	Message      string        `json:"message"`
	Index        uint64        `json:"index"`
	Transactions []database.Tx `json:"transactions"`
	Proof        uint64        `json:"proof"`
	PreviousHash string        `json:"previous_hash"`
}

// =============================================================================

// registerNodes is the request to add peers to the node.
type registerNodes struct {
	Nodes []string `json:"nodes" validate:"required"`
}

// Validate checks the data in the model is considered clean.
func (rn registerNodes) Validate() error {
	return validate.Check(rn)
}

type nodesAdded struct {
	Message    string   `json:"message"`
	TotalNodes []string `json:"total_nodes"`
}

// =============================================================================

type chainReplaced struct {
	Message  string           `json:"message"`
	NewChain []database.Block `json:"new_chain"`
}

type chainKept struct {
	Message string           `json:"message"`
	Chain   []database.Block `json:"chain"`
}
