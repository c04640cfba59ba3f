package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// StakingModuleKind enumerates the weight sources spec.md §6 allows, as a
// tagged-variant struct rather than an interface — simpler to persist and
// compare than virtual dispatch, per spec.md §9's explicit design note.
type StakingModuleKind uint8

const (
	// StakingModuleNativeToken weights stakers by balance of a native bond denom.
	StakingModuleNativeToken StakingModuleKind = iota
	// StakingModuleCw4Hook weights stakers via an external cw4-style group hook.
	StakingModuleCw4Hook
	// StakingModuleDaoDaoHook weights stakers via a DAO DAO voting-power hook.
	StakingModuleDaoDaoHook
	// StakingModulePermissioned allows only the configured authority to set weight directly.
	StakingModulePermissioned
)

// StakingModule is the weight-source variant: Kind selects which of Denom/Src
// is meaningful.
type StakingModule struct {
	Kind StakingModuleKind `json:"kind"`
	// Denom is populated for StakingModuleNativeToken.
	Denom string `json:"denom,omitempty"`
	// Src is the external hook contract/module address for Cw4Hook/DaoDaoHook —
	// the only sender allowed to call IncreaseWeight/DecreaseWeight, and,
	// under Cw4Hook only, SetWeight.
	Src string `json:"src,omitempty"`
}

// IncentiveModuleConfig toggles the incentive (scheduled release) module and
// gates AddIncentive per spec.md §4.2/§6: an optional denom whitelist, a
// required minimum funding size, an optional fixed fee, and the per-crank
// incentive-read limit (spec.md's crank_limit).
type IncentiveModuleConfig struct {
	Enabled    bool      `json:"enabled"`
	CrankLimit uint32    `json:"crank_limit,omitempty"`
	MinSize    math.Int  `json:"min_size"`
	Fee        *sdk.Coin `json:"fee,omitempty"`
	Whitelist  Whitelist `json:"whitelist"`
}

// FeeShare is one (rate, recipient) entry of the distribution module's fee
// split, applied via keeper.SplitFees before DistributeRewards runs.
type FeeShare struct {
	Rate      math.LegacyDec `json:"rate"`
	Recipient string         `json:"recipient"`
}

// DistributionModuleConfig toggles the fee-splitter distribution module —
// spec.md §6's {fees, whitelist}.
type DistributionModuleConfig struct {
	Enabled   bool       `json:"enabled"`
	Fees      []FeeShare `json:"fees,omitempty"`
	Whitelist Whitelist  `json:"whitelist"`
}

// UnderlyingRewardsModuleConfig configures the pass-through to an external
// rewards source (e.g. a validator-set staking module whose rewards this
// engine re-distributes by weight).
type UnderlyingRewardsModuleConfig struct {
	Enabled bool   `json:"enabled"`
	Src     string `json:"src,omitempty"`
}

// InflationModuleConfig configures the continuous emission module.
type InflationModuleConfig struct {
	Enabled      bool           `json:"enabled"`
	Denom        string         `json:"denom,omitempty"`
	RatePerYear  math.LegacyDec `json:"rate_per_year"`
}

// Whitelist restricts which denoms DistributeRewards/AddIncentive will
// accept; an empty whitelist means unrestricted.
type Whitelist struct {
	Denoms []string `json:"denoms,omitempty"`
}

// Allows reports whether denom is permitted by the whitelist.
func (w Whitelist) Allows(denom string) bool {
	if len(w.Denoms) == 0 {
		return true
	}
	for _, d := range w.Denoms {
		if d == denom {
			return true
		}
	}
	return false
}

// Config is the engine's single persisted configuration object — the Go
// analog of the contract's InstantiateMsg/migrated config, covering every
// sub-module spec.md §6 names.
type Config struct {
	Authority    string                        `json:"authority"`
	Staking      StakingModule                 `json:"staking"`
	Incentive    IncentiveModuleConfig         `json:"incentive"`
	Distribution DistributionModuleConfig      `json:"distribution"`
	Underlying   UnderlyingRewardsModuleConfig `json:"underlying"`
	Inflation    InflationModuleConfig         `json:"inflation"`
}

// Validate checks structural invariants of a Config before it is persisted.
func (c Config) Validate() error {
	if c.Authority == "" {
		return ErrInvalidConfig.Wrap("authority must be set")
	}
	switch c.Staking.Kind {
	case StakingModuleNativeToken:
		if c.Staking.Denom == "" {
			return ErrInvalidConfig.Wrap("native token staking module requires a denom")
		}
	case StakingModuleCw4Hook, StakingModuleDaoDaoHook:
		if c.Staking.Src == "" {
			return ErrInvalidConfig.Wrap("hook staking module requires a source address")
		}
	case StakingModulePermissioned:
		// no extra fields required
	default:
		return ErrInvalidConfig.Wrap("unknown staking module kind")
	}
	if c.Inflation.Enabled && c.Inflation.RatePerYear.IsNil() {
		return ErrInvalidConfig.Wrap("inflation enabled but rate_per_year is unset")
	}
	if c.Incentive.Fee != nil && !c.Incentive.Fee.IsValid() {
		return ErrInvalidConfig.Wrap("incentive fee is not a valid coin")
	}
	for _, fee := range c.Distribution.Fees {
		if fee.Rate.IsNil() || fee.Rate.IsNegative() || fee.Rate.GT(math.LegacyOneDec()) {
			return ErrInvalidConfig.Wrapf("distribution fee rate for %s must be in [0,1]", fee.Recipient)
		}
		if _, err := sdk.AccAddressFromBech32(fee.Recipient); err != nil {
			return ErrInvalidConfig.Wrapf("invalid distribution fee recipient %q: %s", fee.Recipient, err)
		}
	}
	return nil
}

// ConfigPatch is spec.md §6's `UpdateConfig{patch}` payload: every field is
// optional (nil/unset means "leave as-is"), letting a single operation touch
// any subset of owner/staking_module/incentive_module/distribution_module/
// underlying_rewards_module/inflation_module without requiring the caller to
// resubmit the whole Config.
type ConfigPatch struct {
	Authority    *string
	Staking      *StakingModule
	Incentive    *IncentiveModuleConfig
	Distribution *DistributionModuleConfig
	Underlying   *UnderlyingRewardsModuleConfig
	Inflation    *InflationModuleConfig
}

// Apply returns the Config that results from overlaying the non-nil fields
// of p onto c. It does not validate or persist; callers run Validate() (and,
// for inflation's enable-edge watermark reset, keeper.UpdateConfig) on the
// result.
func (p ConfigPatch) Apply(c Config) Config {
	if p.Authority != nil {
		c.Authority = *p.Authority
	}
	if p.Staking != nil {
		c.Staking = *p.Staking
	}
	if p.Incentive != nil {
		c.Incentive = *p.Incentive
	}
	if p.Distribution != nil {
		c.Distribution = *p.Distribution
	}
	if p.Underlying != nil {
		c.Underlying = *p.Underlying
	}
	if p.Inflation != nil {
		c.Inflation = *p.Inflation
	}
	return c
}

// incentiveMinSize returns the configured minimum incentive funding size,
// defaulting to zero when unset.
func (c Config) incentiveMinSize() math.Int {
	if c.Incentive.MinSize.IsNil() {
		return math.ZeroInt()
	}
	return c.Incentive.MinSize
}

// IncentiveMinSize exposes incentiveMinSize to the keeper package.
func (c Config) IncentiveMinSize() math.Int {
	return c.incentiveMinSize()
}
