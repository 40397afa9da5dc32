// Package store contains GORM-backed SQLite models for the payout journal.
//
// The journal mirrors what the ledger paid out so operators can audit transfer
// instructions without replaying the chain of commits. It is never read back
// by the distributor itself.
//
// Database Structure (database file: journal.db):
//
//	journal.db
//	├── payouts
//	├── fundings
//	└── reconciliations
package store

import (
	"gorm.io/gorm"
)

// Payout is one transfer instruction produced by a claim.
type Payout struct {
	gorm.Model
	Height    int64  `gorm:"index;not null"` // Block that committed the claim
	Method    string `gorm:"not null"`       // claim_cw20s, claim_natives or claim_all
	Recipient string `gorm:"index;not null"`
	Kind      string `gorm:"not null"` // "token" or "native"
	Asset     string `gorm:"index;not null"`
	Amount    string `gorm:"not null"` // Decimal string, up to 128 bits
}

// Funding is one deposit into a ledger.
type Funding struct {
	gorm.Model
	Height int64  `gorm:"index;not null"`
	Sender string `gorm:"index"`
	Kind   string `gorm:"not null"`
	Asset  string `gorm:"index;not null"`
	Amount string `gorm:"not null"`
}

// Reconciliation records how a migration re-based one asset.
type Reconciliation struct {
	gorm.Model
	Height        int64  `gorm:"index;not null"` // Block that committed the migration
	NewHeight     uint64 `gorm:"not null"`       // Snapshot height migrated to
	Kind          string `gorm:"not null"`
	Asset         string `gorm:"not null"`
	Paid          string `gorm:"not null"`
	BalanceBefore string `gorm:"not null"`
	BalanceAfter  string `gorm:"not null"`
}
