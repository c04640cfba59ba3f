package types

import "cosmossdk.io/math"

// GenesisState is the module's exported/imported state, grounded on
// x/streamvesting/module/genesis.go's flat-slices genesis shape.
type GenesisState struct {
	Config       Config
	TotalStaked  math.Int
	GlobalIndex  []DenomIndex
	UserWeights  []StakerWeight
	RewardInfos  []StakerRewardInfo
	Incentives   []Incentive
	NextIncent   uint64
	InflationRes InflationState
}

// DenomIndex pairs a denom with its persisted global index.
type DenomIndex struct {
	Denom string
	Index Index
}

// StakerRewardInfo pairs a staker+denom with its checkpoint.
type StakerRewardInfo struct {
	Staker string
	Denom  string
	Info   RewardInfo
}

// InflationState captures the inflation module's persisted counters.
type InflationState struct {
	Funds               []DenomAmount
	LastInflationUpdate int64
}

// DenomAmount is a denom/amount pair without the sdk.Coin validity checks,
// used where a genesis entry may legitimately be absent rather than zero.
type DenomAmount struct {
	Denom  string
	Amount math.Int
}

// DefaultGenesis returns the zero-value genesis for a freshly configured,
// uninitialized engine.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		TotalStaked: math.ZeroInt(),
	}
}

// Validate performs basic structural checks on a genesis state.
func (gs GenesisState) Validate() error {
	if gs.TotalStaked.IsNil() {
		return ErrInvalidConfig.Wrap("genesis total_staked must be set")
	}
	if gs.TotalStaked.IsNegative() {
		return ErrInvalidConfig.Wrap("genesis total_staked must be non-negative")
	}
	seen := map[string]bool{}
	for _, w := range gs.UserWeights {
		if seen[w.Staker] {
			return ErrInvalidConfig.Wrapf("duplicate genesis weight entry for %s", w.Staker)
		}
		seen[w.Staker] = true
		if w.Weight.IsNil() || w.Weight.IsNegative() {
			return ErrInvalidConfig.Wrapf("negative genesis weight for %s", w.Staker)
		}
	}
	return nil
}
