// Package cmd contains the ledger command line app.
package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/network"
	"github.com/spf13/cobra"
)

var (
	url     string
	timeout time.Duration
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&url, "url", "u", "http://localhost:5000", "Url of the node.")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "How long to wait for the node.")
}

var rootCmd = &cobra.Command{
	Use:          "ledger",
	Short:        "Talk to a ledger node",
	SilenceUsage: true,
}

// Execute runs the command named on the command line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// call sends the request to the node and prints the indented response.
func call(cmd *cobra.Command, method string, path string, dataSend any) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	client := network.NewClient(timeout)

	endpoint := strings.TrimSuffix(url, "/") + path
	raw, err := client.Call(ctx, method, endpoint, dataSend)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out.String())
	return nil
}
