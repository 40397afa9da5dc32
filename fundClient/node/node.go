// Package node runs the distributor against a persistent ledger and keeps the
// payout journal and metrics in step with every committed call.
package node

import (
	"encoding/json"
	"fmt"
	"io"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/fund-distributor/app"
	"github.com/pushchain/fund-distributor/fundClient/config"
	"github.com/pushchain/fund-distributor/fundClient/db"
	"github.com/pushchain/fund-distributor/fundClient/logger"
	"github.com/pushchain/fund-distributor/fundClient/metrics"
	"github.com/pushchain/fund-distributor/x/funddistributor/oracle"
	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

const ledgerDBName = "ledger"

type Node struct {
	app       *app.FundApp
	journal   *db.DB
	metrics   *metrics.Metrics
	logger    zerolog.Logger
	retention uint64
	closers   []io.Closer
}

// New wires an already opened app. journal may be nil; a nil m gets a private registry.
func New(fa *app.FundApp, journal *db.DB, m *metrics.Metrics, log zerolog.Logger, retention uint64) *Node {
	if m == nil {
		m = metrics.New()
	}
	n := &Node{
		app:       fa,
		journal:   journal,
		metrics:   m,
		logger:    log.With().Str("component", "node").Logger(),
		retention: retention,
	}
	m.LedgerHeight.Set(float64(fa.LastHeight()))
	return n
}

// Open builds the oracle, the ledger and the journal described by cfg under home.
func Open(home string, cfg config.Config, v *viper.Viper, log zerolog.Logger) (*Node, error) {
	votingOracle, closer, err := openOracle(home, cfg.Oracle)
	if err != nil {
		return nil, err
	}

	return openWithOracle(home, cfg, v, log, votingOracle, closer)
}

// openWithOracle takes ownership of closer: it is released on failure and
// closed with the node otherwise.
func openWithOracle(home string, cfg config.Config, v *viper.Viper, log zerolog.Logger, votingOracle types.VotingOracle, closer io.Closer) (*Node, error) {
	n, err := openLedger(home, cfg, v, log, votingOracle)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}
	if closer != nil {
		n.closers = append(n.closers, closer)
	}
	return n, nil
}

// openLedger opens the ledger and journal; the caller owns the oracle.
func openLedger(home string, cfg config.Config, v *viper.Viper, log zerolog.Logger, votingOracle types.VotingOracle) (*Node, error) {
	ledgerDB, err := dbm.NewDB(ledgerDBName, dbm.BackendType(cfg.DBBackend), config.DataDir(home))
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}

	fa, err := app.New(logger.ForSDK(log), ledgerDB, votingOracle, v)
	if err != nil {
		_ = ledgerDB.Close()
		return nil, err
	}

	var journal *db.DB
	if cfg.Journal.Enabled {
		if journal, err = db.OpenFileDB(config.DataDir(home), cfg.Journal.File, true); err != nil {
			_ = fa.Close()
			return nil, err
		}
	}

	return New(fa, journal, metrics.New(), log, cfg.Journal.RetentionBlocks), nil
}

func openOracle(home string, cfg config.OracleConfig) (types.VotingOracle, io.Closer, error) {
	switch cfg.Mode {
	case config.OracleModeWasm:
		querier, err := oracle.DialGRPC(cfg.GRPCEndpoint)
		if err != nil {
			return nil, nil, err
		}
		return oracle.NewWasmOracle(querier), querier, nil
	default:
		table, err := oracle.LoadTableFile(config.ResolvePath(home, cfg.PowersFile))
		if err != nil {
			return nil, nil, err
		}
		return table, nil, nil
	}
}

func (n *Node) Metrics() *metrics.Metrics {
	return n.metrics
}

func (n *Node) Journal() *db.DB {
	return n.journal
}

func (n *Node) LastHeight() int64 {
	return n.app.LastHeight()
}

func (n *Node) Close() error {
	for _, c := range n.closers {
		if err := c.Close(); err != nil {
			n.logger.Warn().Err(err).Msg("failed to close oracle")
		}
	}
	if n.journal != nil {
		if err := n.journal.Close(); err != nil {
			n.logger.Warn().Err(err).Msg("failed to close journal")
		}
	}
	return n.app.Close()
}

// exec commits fn as one block and reports it to the metrics.
func exec[R any](n *Node, method string, fn func(ctx sdk.Context) (R, error)) (R, int64, error) {
	var res R
	_, height, err := n.app.Exec(func(ctx sdk.Context) (err error) {
		res, err = fn(ctx)
		return err
	})
	n.metrics.Observe(method, err)
	if err != nil {
		n.logger.Warn().Err(err).Str("method", method).Int64("height", height).Msg("call rejected")
		return res, height, err
	}

	n.metrics.LedgerHeight.Set(float64(height))
	n.logger.Info().Str("method", method).Int64("height", height).Msg("call committed")
	return res, height, nil
}

func query[R any](n *Node, fn func(ctx sdk.Context) (R, error)) (R, error) {
	var res R
	err := n.app.Query(func(ctx sdk.Context) (err error) {
		res, err = fn(ctx)
		return err
	})
	return res, err
}

// record runs fn against the journal when it is enabled. The ledger is already
// committed at this point, so journal failures are logged and not returned.
func (n *Node) record(height int64, fn func(j *db.DB) error) {
	if n.journal == nil {
		return
	}
	if err := fn(n.journal); err != nil {
		n.logger.Error().Err(err).Int64("height", height).Msg("failed to journal call")
		return
	}

	if n.retention == 0 || uint64(height) <= n.retention {
		return
	}
	removed, err := n.journal.Prune(height - int64(n.retention))
	if err != nil {
		n.logger.Error().Err(err).Msg("failed to prune journal")
		return
	}
	if removed > 0 {
		n.logger.Debug().Int64("removed", removed).Msg("journal pruned")
	}
}

// ImportGenesis loads a JSON genesis into an empty ledger.
func (n *Node) ImportGenesis(genesis json.RawMessage) (int64, error) {
	height, err := n.app.InitChain(genesis)
	n.metrics.Observe("import_genesis", err)
	if err == nil {
		n.metrics.LedgerHeight.Set(float64(height))
	}
	return height, err
}

func (n *Node) ExportGenesis() (json.RawMessage, error) {
	return n.app.ExportGenesis()
}

// CheckInvariants returns the invariant report and whether it is broken.
func (n *Node) CheckInvariants() (string, bool, error) {
	return n.app.CheckInvariants()
}
