package cmd

import (
	"errors"
	"net/http"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/spf13/cobra"
)

var (
	from   string
	to     string
	amount float64
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a transaction to the node's mempool.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if from == "" || to == "" {
			return errors.New("from and to are required")
		}

		return call(cmd, http.MethodPost, "/transactions/new", database.NewTx(from, to, amount))
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&from, "from", "f", "", "Sender of the transaction.")
	sendCmd.Flags().StringVarP(&to, "to", "t", "", "Recipient of the transaction.")
	sendCmd.Flags().Float64VarP(&amount, "amount", "a", 0, "Amount to send.")
}
