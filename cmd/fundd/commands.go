package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	sdkversion "github.com/cosmos/cosmos-sdk/version"
	"github.com/spf13/cobra"

	"github.com/pushchain/fund-distributor/fundClient/api"
	"github.com/pushchain/fund-distributor/fundClient/config"
)

func InitRootCmd(rootCmd *cobra.Command) {
	rootCmd.AddCommand(
		configCmd(),
		startCmd(),
		txCmd(),
		queryCmd(),
		genesisCmd(),
		versionCmd(),
	)
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the daemon configuration",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config to <home>/config/fundd.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := cmd.Flags().GetString(flagHome)
			if err != nil {
				return err
			}

			path := config.FilePath(home)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}

			cfg := config.Default()
			if err := config.Save(&cfg, home); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return printOutput(cmd.OutOrStdout(), cfg, outputFormat(cmd))
		},
	}
	addOutputFlag(showCmd)

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

func startCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Serve the HTTP API and metrics over the local ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, cfg, log, err := openNode(cmd)
			if err != nil {
				return err
			}
			defer n.Close()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := api.NewServer(log, n, n.Metrics().Handler(), cfg.QueryServerPort)
			if err := server.Start(); err != nil {
				return err
			}

			log.Info().Int64("height", n.LastHeight()).Msg("fund distributor started")
			<-ctx.Done()
			log.Info().Msg("shutting down fund distributor")

			return server.Stop()
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print fundd version info",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:       %s\n", sdkversion.Name)
			fmt.Fprintf(out, "App Name:   %s\n", sdkversion.AppName)
			fmt.Fprintf(out, "Version:    %s\n", sdkversion.Version)
			fmt.Fprintf(out, "Commit:     %s\n", sdkversion.Commit)
			fmt.Fprintf(out, "Build Tags: %s\n", sdkversion.BuildTags)
		},
	}
}
