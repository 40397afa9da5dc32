package config

// Oracle modes.
const (
	OracleModeTable = "table"
	OracleModeWasm  = "wasm"
)

type Config struct {
	// Log Config
	LogLevel   int    `mapstructure:"log_level" yaml:"log_level"`     // zerolog level: 0 = debug, 1 = info, etc.
	LogFormat  string `mapstructure:"log_format" yaml:"log_format"`   // "json" or "console"
	LogSampler bool   `mapstructure:"log_sampler" yaml:"log_sampler"` // if true, samples logs (1 in 5)

	// Authority may instantiate, migrate and refresh total power (default: gov module address)
	Authority string `mapstructure:"authority" yaml:"authority"`

	// DBBackend is the cosmos-db backend holding the ledger (default: goleveldb)
	DBBackend string `mapstructure:"db_backend" yaml:"db_backend"`

	Oracle  OracleConfig  `mapstructure:"oracle" yaml:"oracle"`
	Journal JournalConfig `mapstructure:"journal" yaml:"journal"`

	// Query Server Config
	QueryServerPort int `mapstructure:"query_server_port" yaml:"query_server_port"` // default: 8080
}

// OracleConfig selects where voting power is read from.
type OracleConfig struct {
	Mode         string `mapstructure:"mode" yaml:"mode"`                   // "table" or "wasm"
	PowersFile   string `mapstructure:"powers_file" yaml:"powers_file"`     // table mode, relative to the home dir
	GRPCEndpoint string `mapstructure:"grpc_endpoint" yaml:"grpc_endpoint"` // wasm mode, e.g. localhost:9090
}

// JournalConfig controls the SQLite payout journal.
type JournalConfig struct {
	Enabled         bool   `mapstructure:"enabled" yaml:"enabled"`
	File            string `mapstructure:"file" yaml:"file"`                         // default: journal.db
	RetentionBlocks uint64 `mapstructure:"retention_blocks" yaml:"retention_blocks"` // 0 keeps everything
}
