package node

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"

	dbm "github.com/cosmos/cosmos-db"
	simtestutil "github.com/cosmos/cosmos-sdk/testutil/sims"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/fund-distributor/app"
	"github.com/pushchain/fund-distributor/fundClient/config"
	"github.com/pushchain/fund-distributor/fundClient/db"
	"github.com/pushchain/fund-distributor/fundClient/metrics"
	"github.com/pushchain/fund-distributor/x/funddistributor/oracle"
	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

type fixture struct {
	node      *Node
	addrs     []sdk.AccAddress
	authority string
}

func setup(t *testing.T, retention uint64) *fixture {
	t.Helper()
	app.SetAddressPrefixes(sdk.GetConfig())

	addrs := simtestutil.CreateIncrementalAccounts(3)
	powers := oracle.NewTable("dao")
	powers.SetPower(1, addrs[0], sdkmath.NewInt(1))
	powers.SetPower(1, addrs[1], sdkmath.NewInt(1))

	opts := viper.New()
	opts.Set(app.FlagAuthority, addrs[2].String())

	fa, err := app.New(log.NewNopLogger(), dbm.NewMemDB(), powers, opts)
	require.NoError(t, err)

	journal, err := db.OpenInMemoryDB(true)
	require.NoError(t, err)

	n := New(fa, journal, metrics.New(), zerolog.Nop(), retention)
	t.Cleanup(func() { _ = n.Close() })

	return &fixture{node: n, addrs: addrs, authority: addrs[2].String()}
}

func (f *fixture) instantiate(t *testing.T) {
	t.Helper()
	_, err := f.node.Instantiate(&types.MsgInstantiate{Authority: f.authority, VotingContract: "dao"})
	require.NoError(t, err)
}

func TestNodeJournalsClaims(t *testing.T) {
	f := setup(t, 0)
	f.instantiate(t)

	receipt, err := f.node.FundNative(&types.MsgFundNative{Sender: f.authority, Funds: sdk.NewCoins(sdk.NewInt64Coin("upc", 10))})
	require.NoError(t, err)
	assert.Equal(t, int64(2), receipt.Height)

	var logs bytes.Buffer
	f.node.logger = zerolog.New(&logs)

	claim, err := f.node.ClaimAll(&types.MsgClaimAll{Sender: f.addrs[0].String()})
	require.NoError(t, err)
	require.Len(t, claim.Response.Transfers, 1)
	assert.Equal(t, "5", claim.Response.Transfers[0].Amount.String())
	assert.Contains(t, logs.String(), `"native":"5upc","tokens":0,"message":"claim paid out"`)
	assert.Contains(t, logs.String(), `"transfer":"native 5upc -> `+f.addrs[0].String()+`"`)

	payouts, err := f.node.Payouts(f.addrs[0].String(), 0)
	require.NoError(t, err)
	require.Len(t, payouts, 1)
	assert.Equal(t, claim.Height, payouts[0].Height)
	assert.Equal(t, "upc", payouts[0].Asset)

	m := f.node.Metrics()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transfers.WithLabelValues("native")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Calls.WithLabelValues(types.MethodClaimAll, "ok")))
	assert.Equal(t, float64(claim.Height), testutil.ToFloat64(m.LedgerHeight))
}

func TestNodeRejectedCallLeavesNoTrace(t *testing.T) {
	f := setup(t, 0)
	f.instantiate(t)
	height := f.node.LastHeight()

	_, err := f.node.ClaimTokens(&types.MsgClaimTokens{Sender: f.addrs[0].String(), Tokens: []string{"never-funded"}})
	require.ErrorIs(t, err, types.ErrUnknownAsset)
	assert.Equal(t, height, f.node.LastHeight())

	payouts, err := f.node.Payouts("", 0)
	require.NoError(t, err)
	assert.Empty(t, payouts)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.node.Metrics().Calls.WithLabelValues(types.MethodClaimTokens, "error")))
}

func TestNodeMigrationAndQueries(t *testing.T) {
	f := setup(t, 0)
	f.instantiate(t)

	_, err := f.node.FundToken(&types.MsgReceiveToken{Token: "tokenx", Sender: f.authority, Amount: sdkmath.NewInt(100)})
	require.NoError(t, err)
	_, err = f.node.ClaimTokens(&types.MsgClaimTokens{Sender: f.addrs[1].String()})
	require.NoError(t, err)

	migrated, err := f.node.Migrate(&types.MsgMigrate{Authority: f.authority, NewHeight: 1, RefreshTotalPower: true})
	require.NoError(t, err)
	require.Len(t, migrated.Response.Reconciled, 1)
	assert.Equal(t, "50", migrated.Response.Reconciled[0].BalanceAfter.String())

	recs, err := f.node.Journal().Reconciliations()
	require.NoError(t, err)
	require.Len(t, recs, 1)

	balances, err := f.node.Balances(types.AssetKindToken, nil)
	require.NoError(t, err)
	require.Len(t, balances.Balances, 1)
	assert.Equal(t, "50", balances.Balances[0].Amount.String())

	claims, err := f.node.Claims(f.addrs[1].String())
	require.NoError(t, err)
	assert.Empty(t, claims.TokenClaims)

	owed, err := f.node.Entitlements(f.addrs[1].String())
	require.NoError(t, err)
	require.Len(t, owed.Owed, 1)
	assert.Equal(t, "25", owed.Owed[0].Amount.String())

	power, err := f.node.TotalPower()
	require.NoError(t, err)
	assert.False(t, power.Stale)

	contract, err := f.node.VotingContract()
	require.NoError(t, err)
	assert.Equal(t, "dao", contract.Contract)

	_, broken, err := f.node.CheckInvariants()
	require.NoError(t, err)
	assert.False(t, broken)
}

func TestNodeJournalRetention(t *testing.T) {
	f := setup(t, 2)
	f.instantiate(t)

	_, err := f.node.FundToken(&types.MsgReceiveToken{Token: "tokenx", Sender: f.authority, Amount: sdkmath.NewInt(100)}) // height 2
	require.NoError(t, err)
	_, err = f.node.ClaimAll(&types.MsgClaimAll{Sender: f.addrs[0].String()}) // height 3
	require.NoError(t, err)
	_, err = f.node.FundToken(&types.MsgReceiveToken{Token: "tokenx", Sender: f.authority, Amount: sdkmath.NewInt(100)}) // height 4
	require.NoError(t, err)
	_, err = f.node.ClaimAll(&types.MsgClaimAll{Sender: f.addrs[0].String()}) // height 5, prunes below 3
	require.NoError(t, err)

	payouts, err := f.node.Payouts("", 0)
	require.NoError(t, err)
	require.Len(t, payouts, 2)

	_, err = f.node.ClaimAll(&types.MsgClaimAll{Sender: f.addrs[1].String()}) // height 6, prunes below 4
	require.NoError(t, err)

	payouts, err = f.node.Payouts("", 0)
	require.NoError(t, err)
	require.Len(t, payouts, 2)
	for _, p := range payouts {
		assert.GreaterOrEqual(t, p.Height, int64(4))
	}
}

func TestOpen(t *testing.T) {
	app.SetAddressPrefixes(sdk.GetConfig())
	home := t.TempDir()
	addr := simtestutil.CreateIncrementalAccounts(1)[0]

	require.NoError(t, os.MkdirAll(filepath.Join(home, "config"), 0o750))
	table := "contract: dao\nsnapshots:\n  - height: 1\n    powers:\n      " + addr.String() + ": \"4\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config", "powers.yaml"), []byte(table), 0o600))

	v := viper.New()
	cfg, err := config.Load(v, home)
	require.NoError(t, err)

	n, err := Open(home, cfg, v, zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, n.Journal())

	_, err = n.Instantiate(&types.MsgInstantiate{Authority: n.app.Keeper.GetAuthority(), VotingContract: "dao"})
	require.NoError(t, err)
	require.NoError(t, n.Close())

	assert.DirExists(t, config.DataDir(home))
	assert.FileExists(t, filepath.Join(config.DataDir(home), "journal.db"))

	n, err = Open(home, cfg, v, zerolog.Nop())
	require.NoError(t, err)
	defer n.Close()
	assert.Equal(t, int64(1), n.LastHeight())

	power, err := n.TotalPower()
	require.NoError(t, err)
	assert.Equal(t, "4", power.TotalPower.String())
}

type closeRecorder struct {
	closed int
}

func (c *closeRecorder) Close() error {
	c.closed++
	return nil
}

func TestOpenReleasesOracleOnFailure(t *testing.T) {
	app.SetAddressPrefixes(sdk.GetConfig())
	home := t.TempDir()
	v := viper.New()
	powers := oracle.NewTable("dao")

	cfg := config.Default()
	cfg.DBBackend = "nope"
	closer := &closeRecorder{}
	_, err := openWithOracle(home, cfg, v, zerolog.Nop(), powers, closer)
	require.ErrorContains(t, err, "failed to open ledger")
	assert.Equal(t, 1, closer.closed)

	cfg = config.Default()
	closer = &closeRecorder{}
	n, err := openWithOracle(home, cfg, v, zerolog.Nop(), powers, closer)
	require.NoError(t, err)
	assert.Equal(t, 0, closer.closed)
	require.NoError(t, n.Close())
	assert.Equal(t, 1, closer.closed)
}
