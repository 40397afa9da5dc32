package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func genesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Import, export and check the ledger state",
	}

	cmd.AddCommand(exportCmd(), importCmd(), invariantsCmd())
	return cmd
}

func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger as JSON genesis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _, _, err := openNode(cmd)
			if err != nil {
				return err
			}
			defer n.Close()

			genesis, err := n.ExportGenesis()
			if err != nil {
				return err
			}

			if out == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(genesis))
				return err
			}
			return os.WriteFile(out, genesis, 0o600)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write to a file instead of stdout")
	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import a JSON genesis into an empty ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read genesis: %w", err)
			}
			if !json.Valid(bz) {
				return fmt.Errorf("%s is not valid JSON", args[0])
			}

			n, _, _, err := openNode(cmd)
			if err != nil {
				return err
			}
			defer n.Close()

			if n.LastHeight() != 0 {
				return fmt.Errorf("ledger already has state at height %d", n.LastHeight())
			}

			height, err := n.ImportGenesis(bz)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Genesis imported at height %d\n", height)
			return nil
		},
	}
}

func invariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-invariants",
		Short: "Verify claims never exceed what was funded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _, _, err := openNode(cmd)
			if err != nil {
				return err
			}
			defer n.Close()

			msg, broken, err := n.CheckInvariants()
			if err != nil {
				return err
			}
			if broken {
				return fmt.Errorf("invariant broken: %s", msg)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "invariants hold")
			return nil
		},
	}
}
