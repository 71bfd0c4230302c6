// One-shot: fetch the latest SETTLE_FUNDING_FEE page for the configured
// account and print it as JSON.
// Usage: go run ./cmd/funding_report
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"edgetrack/internal/client"
	"edgetrack/internal/config"
	"edgetrack/internal/signer"

	"go.uber.org/zap"
)

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := config.InitSecret(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sig, err := signer.New(config.GetPrivateKeyHex())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	edgexClient := client.NewEdgeXClient(config.GetAccountID(), sig, logger)

	page, err := edgexClient.GetPositionTransactionPage(context.Background(), client.PositionTransactionParams{
		Size: "20",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
