// Package oracle provides voting power sources for the fund distributor.
package oracle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"gopkg.in/yaml.v2"

	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

var _ types.VotingOracle = (*Table)(nil)

// Table is a checkpointed power table: a snapshot recorded at height h answers every
// query for heights in [h, next snapshot).
type Table struct {
	mu        sync.RWMutex
	contract  string
	snapshots []snapshot
}

type snapshot struct {
	height uint64
	powers map[string]sdkmath.Int
}

// NewTable returns an empty table answering for contract. An empty contract answers for any.
func NewTable(contract string) *Table {
	return &Table{contract: contract}
}

// SetPower records addr's power in the snapshot at height, creating the snapshot from
// the previous one when absent.
func (t *Table) SetPower(height uint64, addr sdk.AccAddress, power sdkmath.Int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := sort.Search(len(t.snapshots), func(i int) bool { return t.snapshots[i].height >= height })
	if i == len(t.snapshots) || t.snapshots[i].height != height {
		powers := make(map[string]sdkmath.Int)
		if i > 0 {
			for k, v := range t.snapshots[i-1].powers {
				powers[k] = v
			}
		}
		t.snapshots = append(t.snapshots, snapshot{})
		copy(t.snapshots[i+1:], t.snapshots[i:])
		t.snapshots[i] = snapshot{height: height, powers: powers}
	}

	t.snapshots[i].powers[addr.String()] = power
}

func (t *Table) TotalPowerAtHeight(_ context.Context, contract string, height uint64) (sdkmath.Int, error) {
	s, err := t.at(contract, height)
	if err != nil {
		return sdkmath.Int{}, err
	}

	total := sdkmath.ZeroInt()
	for _, p := range s.powers {
		total = total.Add(p)
	}
	return total, nil
}

func (t *Table) VotingPowerAtHeight(_ context.Context, contract string, addr sdk.AccAddress, height uint64) (sdkmath.Int, error) {
	s, err := t.at(contract, height)
	if err != nil {
		return sdkmath.Int{}, err
	}

	if p, ok := s.powers[addr.String()]; ok {
		return p, nil
	}
	return sdkmath.ZeroInt(), nil
}

func (t *Table) at(contract string, height uint64) (snapshot, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.contract != "" && contract != t.contract {
		return snapshot{}, fmt.Errorf("unknown voting contract %s", contract)
	}

	i := sort.Search(len(t.snapshots), func(i int) bool { return t.snapshots[i].height > height })
	if i == 0 {
		return snapshot{}, nil
	}
	return t.snapshots[i-1], nil
}

// TableFile is the YAML layout of a power table.
type TableFile struct {
	Contract  string         `yaml:"contract"`
	Snapshots []SnapshotFile `yaml:"snapshots"`
}

type SnapshotFile struct {
	Height uint64            `yaml:"height"`
	Powers map[string]string `yaml:"powers"`
}

// LoadTableFile reads a power table from a YAML file.
func LoadTableFile(path string) (*Table, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read power table: %w", err)
	}

	var file TableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal power table: %w", err)
	}

	// older snapshots first, so each new one starts from its predecessor
	sort.Slice(file.Snapshots, func(i, j int) bool { return file.Snapshots[i].Height < file.Snapshots[j].Height })

	t := NewTable(file.Contract)
	for _, s := range file.Snapshots {
		for addrStr, powerStr := range s.Powers {
			addr, err := sdk.AccAddressFromBech32(addrStr)
			if err != nil {
				return nil, fmt.Errorf("snapshot %d: invalid address %s: %w", s.Height, addrStr, err)
			}
			power, ok := sdkmath.NewIntFromString(powerStr)
			if !ok || power.IsNegative() {
				return nil, fmt.Errorf("snapshot %d: invalid power %q for %s", s.Height, powerStr, addrStr)
			}
			t.SetPower(s.Height, addr, power)
		}
	}

	return t, nil
}
