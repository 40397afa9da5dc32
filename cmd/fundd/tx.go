package main

import (
	"fmt"
	"strconv"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/spf13/cobra"

	"github.com/pushchain/fund-distributor/fundClient/config"
	"github.com/pushchain/fund-distributor/fundClient/node"
	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

const (
	flagAuthority         = "authority"
	flagRefreshTotalPower = "refresh-total-power"
)

// txCmd groups the state changing calls. Each runs as one committed block
// against the local ledger, so the daemon must not be running.
func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Execute calls against the local ledger",
	}

	cmd.AddCommand(
		instantiateCmd(),
		fundTokenCmd(),
		fundNativeCmd(),
		claimTokensCmd(),
		claimNativesCmd(),
		claimAllCmd(),
		migrateCmd(),
		refreshTotalPowerCmd(),
	)
	return cmd
}

// runTx opens the node, runs fn and prints its receipt.
func runTx[R any](cmd *cobra.Command, fn func(n *node.Node, cfg config.Config) (R, error)) error {
	n, cfg, _, err := openNode(cmd)
	if err != nil {
		return err
	}
	defer n.Close()

	res, err := fn(n, cfg)
	if err != nil {
		return err
	}
	return printOutput(cmd.OutOrStdout(), res, outputFormat(cmd))
}

// authority resolves --authority, then the configured authority, then the gov module account.
func authority(cmd *cobra.Command, cfg config.Config) string {
	if a, _ := cmd.Flags().GetString(flagAuthority); a != "" {
		return a
	}
	if cfg.Authority != "" {
		return cfg.Authority
	}
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}

func addAuthorityFlag(cmd *cobra.Command) {
	cmd.Flags().String(flagAuthority, "", "authority address (default: configured authority)")
}

func instantiateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instantiate [voting-contract]",
		Short: "Start the distribution at the next height",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTx(cmd, func(n *node.Node, cfg config.Config) (node.Receipt[*types.MsgInstantiateResponse], error) {
				return n.Instantiate(&types.MsgInstantiate{Authority: authority(cmd, cfg), VotingContract: args[0]})
			})
		},
	}
	addAuthorityFlag(cmd)
	addOutputFlag(cmd)
	return cmd
}

func fundTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund-token [token] [sender] [amount]",
		Short: "Record a token deposit",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, ok := sdkmath.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount %q", args[2])
			}
			return runTx(cmd, func(n *node.Node, _ config.Config) (node.Receipt[*types.MsgReceiveTokenResponse], error) {
				return n.FundToken(&types.MsgReceiveToken{Token: args[0], Sender: args[1], Amount: amount})
			})
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func fundNativeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund-native [sender] [coins]",
		Short: "Record a native coin deposit, e.g. 100upc,5uatom",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			coins, err := sdk.ParseCoinsNormalized(args[1])
			if err != nil {
				return fmt.Errorf("invalid coins: %w", err)
			}
			return runTx(cmd, func(n *node.Node, _ config.Config) (node.Receipt[*types.MsgFundNativeResponse], error) {
				return n.FundNative(&types.MsgFundNative{Sender: args[0], Funds: coins})
			})
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func claimTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-tokens [sender] [token...]",
		Short: "Claim token entitlements; no tokens claims every funded token",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTx(cmd, func(n *node.Node, _ config.Config) (node.Receipt[*types.ClaimResponse], error) {
				return n.ClaimTokens(&types.MsgClaimTokens{Sender: args[0], Tokens: args[1:]})
			})
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func claimNativesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-natives [sender] [denom...]",
		Short: "Claim native entitlements; no denoms claims every funded denom",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTx(cmd, func(n *node.Node, _ config.Config) (node.Receipt[*types.ClaimResponse], error) {
				return n.ClaimNatives(&types.MsgClaimNatives{Sender: args[0], Denoms: args[1:]})
			})
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func claimAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-all [sender]",
		Short: "Claim every funded token and native denom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTx(cmd, func(n *node.Node, _ config.Config) (node.Receipt[*types.ClaimResponse], error) {
				return n.ClaimAll(&types.MsgClaimAll{Sender: args[0]})
			})
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate [new-height]",
		Short: "Re-base the distribution onto a new snapshot height",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			height, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid height: %w", err)
			}
			refresh, err := cmd.Flags().GetBool(flagRefreshTotalPower)
			if err != nil {
				return err
			}
			return runTx(cmd, func(n *node.Node, cfg config.Config) (node.Receipt[*types.MsgMigrateResponse], error) {
				return n.Migrate(&types.MsgMigrate{
					Authority:         authority(cmd, cfg),
					NewHeight:         height,
					RefreshTotalPower: refresh,
				})
			})
		},
	}
	cmd.Flags().Bool(flagRefreshTotalPower, false, "re-query total power at the new height in the same block")
	addAuthorityFlag(cmd)
	addOutputFlag(cmd)
	return cmd
}

func refreshTotalPowerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh-total-power",
		Short: "Re-query total power at the distribution height",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTx(cmd, func(n *node.Node, cfg config.Config) (node.Receipt[*types.MsgRefreshTotalPowerResponse], error) {
				return n.RefreshTotalPower(&types.MsgRefreshTotalPower{Authority: authority(cmd, cfg)})
			})
		},
	}
	addAuthorityFlag(cmd)
	addOutputFlag(cmd)
	return cmd
}
