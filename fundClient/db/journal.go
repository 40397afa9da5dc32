package db

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/pushchain/fund-distributor/fundClient/store"
	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

// RecordClaim stores every transfer instruction of a committed claim.
func (d *DB) RecordClaim(height int64, res *types.ClaimResponse) error {
	if len(res.Transfers) == 0 {
		return nil
	}

	payouts := make([]store.Payout, 0, len(res.Transfers))
	for _, t := range res.Transfers {
		payouts = append(payouts, store.Payout{
			Height:    height,
			Method:    res.Method,
			Recipient: t.Recipient,
			Kind:      string(t.Kind),
			Asset:     t.Asset,
			Amount:    t.Amount.String(),
		})
	}

	if err := d.client.Create(&payouts).Error; err != nil {
		return errors.Wrapf(err, "failed to record payouts at height %d", height)
	}
	return nil
}

// RecordFunding stores the deposits of one committed funding call.
func (d *DB) RecordFunding(height int64, sender string, kind types.AssetKind, funds []types.AssetAmount) error {
	if len(funds) == 0 {
		return nil
	}

	rows := make([]store.Funding, 0, len(funds))
	for _, f := range funds {
		rows = append(rows, store.Funding{
			Height: height,
			Sender: sender,
			Kind:   string(kind),
			Asset:  f.Asset,
			Amount: f.Amount.String(),
		})
	}

	if err := d.client.Create(&rows).Error; err != nil {
		return errors.Wrapf(err, "failed to record fundings at height %d", height)
	}
	return nil
}

// RecordMigration stores the per-asset reconciliation of a committed migration.
func (d *DB) RecordMigration(height int64, res *types.MsgMigrateResponse) error {
	if len(res.Reconciled) == 0 {
		return nil
	}

	rows := make([]store.Reconciliation, 0, len(res.Reconciled))
	for _, r := range res.Reconciled {
		rows = append(rows, store.Reconciliation{
			Height:        height,
			NewHeight:     res.DistributionHeight,
			Kind:          string(r.Kind),
			Asset:         r.Asset,
			Paid:          r.Paid.String(),
			BalanceBefore: r.BalanceBefore.String(),
			BalanceAfter:  r.BalanceAfter.String(),
		})
	}

	if err := d.client.Create(&rows).Error; err != nil {
		return errors.Wrapf(err, "failed to record reconciliations at height %d", height)
	}
	return nil
}

// Payouts lists the payouts of recipient, newest first. An empty recipient lists everyone's.
func (d *DB) Payouts(recipient string, limit int) ([]store.Payout, error) {
	var payouts []store.Payout

	q := d.client.Order("height DESC, id DESC")
	if recipient != "" {
		q = q.Where("recipient = ?", recipient)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Find(&payouts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payouts")
	}
	return payouts, nil
}

// Reconciliations lists every recorded migration entry, newest first.
func (d *DB) Reconciliations() ([]store.Reconciliation, error) {
	var rows []store.Reconciliation
	if err := d.client.Order("height DESC, id ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reconciliations")
	}
	return rows, nil
}

// Prune hard-deletes journal rows committed before height and returns how many were removed.
func (d *DB) Prune(height int64) (int64, error) {
	var removed int64
	err := d.client.Transaction(func(tx *gorm.DB) error {
		for _, model := range schemaModels {
			res := tx.Unscoped().Where("height < ?", height).Delete(model)
			if res.Error != nil {
				return res.Error
			}
			removed += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to prune journal before height %d", height)
	}
	return removed, nil
}
