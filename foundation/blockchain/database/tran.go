package database

import "fmt"

// RewardSender is the sender recorded on the transaction that pays the miner
// of a block. No account can submit a transaction using this sender.
const RewardSender = "0"

// =============================================================================

// Tx is the transactional information between two parties.
type Tx struct {
	Sender    string  `json:"sender"`
	Recipient string  `json:"recipient"`
	Amount    float64 `json:"amount"`
}

// NewTx constructs a new transaction.
func NewTx(sender string, recipient string, amount float64) Tx {
	return Tx{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
	}
}

// NewRewardTx constructs the transaction crediting a miner for a block.
func NewRewardTx(recipient string, amount float64) Tx {
	return NewTx(RewardSender, recipient, amount)
}

// IsReward reports if the transaction is a mining reward payout.
func (tx Tx) IsReward() bool {
	return tx.Sender == RewardSender
}

// String implements the fmt.Stringer interface for logging.
func (tx Tx) String() string {
	return fmt.Sprintf("%s->%s:%v", tx.Sender, tx.Recipient, tx.Amount)
}

// canonical returns the transaction as a map so the JSON encoder writes
// the keys in lexicographic order.
func (tx Tx) canonical() map[string]any {
	return map[string]any{
		"amount":    tx.Amount,
		"recipient": tx.Recipient,
		"sender":    tx.Sender,
	}
}
