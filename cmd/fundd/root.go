package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pushchain/fund-distributor/app"
	"github.com/pushchain/fund-distributor/fundClient/config"
	"github.com/pushchain/fund-distributor/fundClient/logger"
	"github.com/pushchain/fund-distributor/fundClient/node"
)

const (
	flagHome      = "home"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
)

// DefaultNodeHome is ~/.fundd, falling back to the working directory.
var DefaultNodeHome = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + app.Name
	}
	return filepath.Join(home, "."+app.Name)
}()

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           app.Name,
		Short:         "Proportional fund distributor daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(flagHome, DefaultNodeHome, "directory for config and data")
	rootCmd.PersistentFlags().Int(flagLogLevel, config.Default().LogLevel, "log level (0 = debug, 1 = info, ...)")
	rootCmd.PersistentFlags().String(flagLogFormat, config.Default().LogFormat, "log format (console|json)")

	InitRootCmd(rootCmd) // add subcommands like `start` and `tx`

	return rootCmd
}

// loadConfig reads the config under --home with env and flag overrides on top.
func loadConfig(cmd *cobra.Command) (string, config.Config, *viper.Viper, error) {
	home, err := cmd.Flags().GetString(flagHome)
	if err != nil {
		return "", config.Config{}, nil, err
	}

	v := viper.New()
	if f := cmd.Flags().Lookup(flagLogLevel); f != nil && f.Changed {
		_ = v.BindPFlag("log_level", f)
	}
	if f := cmd.Flags().Lookup(flagLogFormat); f != nil && f.Changed {
		_ = v.BindPFlag("log_format", f)
	}

	cfg, err := config.Load(v, home)
	if err != nil {
		return "", config.Config{}, nil, err
	}
	return home, cfg, v, nil
}

// openNode opens the local ledger. The caller owns the returned node.
func openNode(cmd *cobra.Command) (*node.Node, config.Config, zerolog.Logger, error) {
	home, cfg, v, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, zerolog.Nop(), err
	}

	log := logger.Init(cfg)
	n, err := node.Open(home, cfg, v, log)
	if err != nil {
		return nil, config.Config{}, zerolog.Nop(), err
	}
	return n, cfg, log, nil
}
