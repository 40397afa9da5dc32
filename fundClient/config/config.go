package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	configSubdir   = "config"
	configFileName = "fundd.yaml"
	dataSubdir     = "data"

	// EnvPrefix prefixes every environment override, e.g. FUNDD_ORACLE_MODE.
	EnvPrefix = "FUNDD"
)

// Default returns the config written by `fundd config init`.
func Default() Config {
	return Config{
		LogLevel:  1,
		LogFormat: "console",
		DBBackend: "goleveldb",
		Oracle: OracleConfig{
			Mode:       OracleModeTable,
			PowersFile: "config/powers.yaml",
		},
		Journal: JournalConfig{
			Enabled: true,
			File:    "journal.db",
		},
		QueryServerPort: 8080,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("log_sampler", d.LogSampler)
	v.SetDefault("authority", d.Authority)
	v.SetDefault("db_backend", d.DBBackend)
	v.SetDefault("oracle.mode", d.Oracle.Mode)
	v.SetDefault("oracle.powers_file", d.Oracle.PowersFile)
	v.SetDefault("oracle.grpc_endpoint", d.Oracle.GRPCEndpoint)
	v.SetDefault("journal.enabled", d.Journal.Enabled)
	v.SetDefault("journal.file", d.Journal.File)
	v.SetDefault("journal.retention_blocks", d.Journal.RetentionBlocks)
	v.SetDefault("query_server_port", d.QueryServerPort)
}

func validateConfig(cfg *Config) error {
	// Validate log level
	if cfg.LogLevel < 0 || cfg.LogLevel > 5 {
		return fmt.Errorf("log level must be between 0 and 5")
	}

	// Validate log format
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return fmt.Errorf("log format must be 'json' or 'console'")
	}

	switch cfg.Oracle.Mode {
	case OracleModeTable:
		if cfg.Oracle.PowersFile == "" {
			return fmt.Errorf("oracle.powers_file is required in table mode")
		}
	case OracleModeWasm:
		if cfg.Oracle.GRPCEndpoint == "" {
			return fmt.Errorf("oracle.grpc_endpoint is required in wasm mode")
		}
	default:
		return fmt.Errorf("oracle mode must be '%s' or '%s'", OracleModeTable, OracleModeWasm)
	}

	if cfg.Journal.Enabled && cfg.Journal.File == "" {
		cfg.Journal.File = "journal.db"
	}
	if cfg.QueryServerPort == 0 {
		cfg.QueryServerPort = 8080
	}

	return nil
}

// Load reads <home>/config/fundd.yaml into v, layering FUNDD_* environment
// variables and any flags already bound to v on top of it. A missing file
// leaves the defaults in place.
func Load(v *viper.Viper, home string) (Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := FilePath(home)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to stat config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Save writes the given config to <home>/config/fundd.yaml.
func Save(cfg *Config, home string) error {
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	configDir := filepath.Join(home, configSubdir)
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(FilePath(home), data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// FilePath is the config file location under home.
func FilePath(home string) string {
	return filepath.Join(home, configSubdir, configFileName)
}

// DataDir holds the ledger and the journal.
func DataDir(home string) string {
	return filepath.Join(home, dataSubdir)
}

// ResolvePath anchors a relative path at home.
func ResolvePath(home, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(home, path)
}
