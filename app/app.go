package app

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cast"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	servertypes "github.com/cosmos/cosmos-sdk/server/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	module "github.com/pushchain/fund-distributor/x/funddistributor"
	"github.com/pushchain/fund-distributor/x/funddistributor/keeper"
	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

// FlagAuthority is the app option naming the address allowed to instantiate and migrate.
const FlagAuthority = "authority"

// FundApp hosts the funddistributor module on a persistent multistore. Every
// state transition runs as one block: it either commits a new version or
// leaves the store untouched.
type FundApp struct {
	mu sync.Mutex

	logger log.Logger
	db     dbm.DB
	cms    storetypes.CommitMultiStore
	key    *storetypes.KVStoreKey

	Keeper      keeper.Keeper
	MsgServer   types.MsgServer
	QueryServer types.QueryServer

	module *module.AppModule
}

// New loads the latest committed state from db.
func New(logger log.Logger, db dbm.DB, oracle types.VotingOracle, appOpts servertypes.AppOptions) (*FundApp, error) {
	key := storetypes.NewKVStoreKey(types.StoreKey)

	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load latest version: %w", err)
	}

	authority := cast.ToString(appOpts.Get(FlagAuthority))

	k := keeper.NewKeeper(runtime.NewKVStoreService(key), logger, authority, oracle)
	mod := module.NewAppModule(k)

	app := &FundApp{
		logger:      logger,
		db:          db,
		cms:         cms,
		key:         key,
		Keeper:      k,
		MsgServer:   mod.MsgServer(),
		QueryServer: mod.QueryServer(),
		module:      mod,
	}

	app.logger.Info("state loaded", "height", app.LastHeight(), "app_hash", fmt.Sprintf("%X", cms.LastCommitID().Hash))

	return app, nil
}

// LastHeight is the height of the last committed state.
func (app *FundApp) LastHeight() int64 {
	return app.cms.LastCommitID().Version
}

// Exec runs fn as the next block and commits when fn succeeds. Calls are
// serialized, so a read-modify-write inside fn never races another call.
func (app *FundApp) Exec(fn func(ctx sdk.Context) error) (sdk.Events, int64, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	height := app.LastHeight() + 1
	ctx := app.newContext(height)

	cacheCtx, write := ctx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return nil, height, err
	}
	write()

	commitID := app.cms.Commit()
	app.logger.Debug("block committed", "height", commitID.Version, "app_hash", fmt.Sprintf("%X", commitID.Hash))

	return ctx.EventManager().Events(), commitID.Version, nil
}

// Query runs fn against the last committed state. Writes made by fn are discarded.
func (app *FundApp) Query(fn func(ctx sdk.Context) error) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	ctx := app.newContext(app.LastHeight())
	cacheCtx, _ := ctx.CacheContext()
	return fn(cacheCtx)
}

// InitChain imports a JSON genesis as the next block.
func (app *FundApp) InitChain(genesis json.RawMessage) (int64, error) {
	var gs types.GenesisState
	if err := json.Unmarshal(genesis, &gs); err != nil {
		return 0, fmt.Errorf("failed to unmarshal genesis: %w", err)
	}

	_, height, err := app.Exec(func(ctx sdk.Context) error {
		return app.Keeper.InitGenesis(ctx, &gs)
	})
	return height, err
}

// ExportGenesis exports the last committed state.
func (app *FundApp) ExportGenesis() (json.RawMessage, error) {
	var bz json.RawMessage
	err := app.Query(func(ctx sdk.Context) error {
		bz = app.module.ExportGenesis(ctx, nil)
		return nil
	})
	return bz, err
}

// CheckInvariants reports every broken module invariant.
func (app *FundApp) CheckInvariants() (string, bool, error) {
	var (
		msg    string
		broken bool
	)
	err := app.Query(func(ctx sdk.Context) error {
		msg, broken = keeper.ClaimsWithinBalancesInvariant(app.Keeper)(ctx)
		return nil
	})
	return msg, broken, err
}

func (app *FundApp) Close() error {
	return app.db.Close()
}

func (app *FundApp) newContext(height int64) sdk.Context {
	header := cmtproto.Header{
		ChainID: Name,
		Height:  height,
		Time:    time.Now().UTC(),
	}
	return sdk.NewContext(app.cms, header, false, app.logger).WithBlockHeight(height)
}
