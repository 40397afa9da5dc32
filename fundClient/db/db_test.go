package db

import (
	"path/filepath"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushchain/fund-distributor/fundClient/store"
	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

func TestDB_OpenModes(t *testing.T) {
	t.Run("in-memory", func(t *testing.T) {
		db, err := OpenInMemoryDB(true)
		require.NoError(t, err)
		require.NotNil(t, db)

		runSampleInsertSelectTest(t, db)
		assert.NoError(t, db.Close())
	})

	t.Run("file-based DB", func(t *testing.T) {
		dir := t.TempDir()
		dbName := "journal.db"

		db, err := OpenFileDB(dir, dbName, true)
		require.NoError(t, err)
		require.NotNil(t, db)

		assert.FileExists(t, filepath.Join(dir, dbName))

		runSampleInsertSelectTest(t, db)
		assert.NoError(t, db.Close())
	})

	t.Run("invalid path fails", func(t *testing.T) {
		db, err := OpenFileDB("/dev/null/journal", "db.db", true)
		require.ErrorContains(t, err, "failed to prepare database path")
		require.Nil(t, db)
	})
}

func runSampleInsertSelectTest(t *testing.T, db *DB) {
	entry := store.Payout{Height: 7, Method: types.MethodClaimAll, Recipient: "push1a", Kind: "native", Asset: "upc", Amount: "1"}
	require.NoError(t, db.Client().Create(&entry).Error)

	var result store.Payout
	require.NoError(t, db.Client().First(&result).Error)
	assert.Equal(t, entry.Recipient, result.Recipient)
	assert.Equal(t, entry.Amount, result.Amount)
}

func TestJournal(t *testing.T) {
	db, err := OpenInMemoryDB(true)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.RecordClaim(3, &types.ClaimResponse{
		Method: types.MethodClaimAll,
		Sender: "push1a",
		Transfers: types.Transfers{
			{Recipient: "push1a", Kind: types.AssetKindToken, Asset: "tokenx", Amount: sdkmath.NewInt(300)},
			{Recipient: "push1a", Kind: types.AssetKindNative, Asset: "upc", Amount: sdkmath.NewInt(5)},
		},
	}))
	require.NoError(t, db.RecordClaim(5, &types.ClaimResponse{
		Method:    types.MethodClaimTokens,
		Sender:    "push1b",
		Transfers: types.Transfers{{Recipient: "push1b", Kind: types.AssetKindToken, Asset: "tokenx", Amount: sdkmath.NewInt(700)}},
	}))
	// claims with nothing owed leave no rows
	require.NoError(t, db.RecordClaim(6, &types.ClaimResponse{Method: types.MethodClaimAll, Sender: "push1b"}))

	require.NoError(t, db.RecordFunding(2, "push1c", types.AssetKindToken, []types.AssetAmount{{Asset: "tokenx", Amount: sdkmath.NewInt(1000)}}))
	require.NoError(t, db.RecordMigration(8, &types.MsgMigrateResponse{
		DistributionHeight: 8,
		Reconciled: []types.Reconciliation{{
			Kind:          types.AssetKindToken,
			Asset:         "tokenx",
			Paid:          sdkmath.NewInt(1000),
			BalanceBefore: sdkmath.NewInt(1000),
			BalanceAfter:  sdkmath.ZeroInt(),
		}},
	}))

	all, err := db.Payouts("", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(5), all[0].Height)

	mine, err := db.Payouts("push1a", 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	recs, err := db.Reconciliations()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "0", recs[0].BalanceAfter)

	removed, err := db.Prune(5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed) // two payouts at 3, one funding at 2

	all, err = db.Payouts("", 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
}
