package main

import (
	"fmt"
	"os"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/joho/godotenv"

	"github.com/pushchain/fund-distributor/app"
)

func main() {
	// Load environment variables from .env file if available
	_ = godotenv.Load()

	// Setup custom Bech32 prefixes and other Cosmos SDK config
	config := sdk.GetConfig()
	app.SetAddressPrefixes(config)
	config.Seal()

	// Construct root command
	rootCmd := NewRootCmd()

	// Execute CLI
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.OutOrStderr(), err)
		os.Exit(1)
	}
}
