package types

import "cosmossdk.io/math"

// LegacyConfig is the pre-migration, flat configuration shape this engine's
// predecessor wrapper contracts used — ported from
// contracts/rewards/src/migration.rs (original_source). Present only as the
// input to MigrateLegacyConfig; never persisted in this form.
type LegacyConfig struct {
	Authority string
	// StakeDenom alone (no HookSrc, no Cw2Contract) means NativeToken.
	StakeDenom string
	// HookSrc is the external hook contract address, when present.
	HookSrc string
	// Cw2Info identifies the hook contract's declared type, used to decide
	// between Cw4Hook and DaoDaoHook.
	Cw2Info LegacyCw2Info

	IncentiveEnabled    bool
	DistributionEnabled bool
	UnderlyingSrc       string

	InflationEnabled     bool
	InflationDenom       string
	InflationRatePerYear string

	WhitelistDenoms []string
}

// LegacyCw2Info mirrors cw2's get_contract_version response, used only to
// distinguish a cw4-group hook from a DAO DAO voting-power hook.
type LegacyCw2Info struct {
	Contract string
	Version  string
}

const (
	cw2ContractCw4Group = "crates.io:cw4-group"
	cw2ContractDaoDao   = "crates.io:dao-voting-token-staked"
)

// MigrateLegacyConfig folds the old flat config into the current tagged-
// variant Config, per spec.md §9's documented migration rule:
//   - HookSrc set -> DaoDaoHook when Cw2Info.Contract is the DAO DAO
//     token-staked voting contract, Cw4Hook for any other contract
//   - otherwise StakeDenom alone -> NativeToken
//   - neither -> Permissioned
func MigrateLegacyConfig(legacy LegacyConfig) (Config, error) {
	staking := StakingModule{Kind: StakingModulePermissioned}
	switch {
	case legacy.HookSrc != "" && legacy.Cw2Info.Contract == cw2ContractDaoDao:
		staking = StakingModule{Kind: StakingModuleDaoDaoHook, Src: legacy.HookSrc}
	case legacy.HookSrc != "":
		staking = StakingModule{Kind: StakingModuleCw4Hook, Src: legacy.HookSrc}
	case legacy.StakeDenom != "":
		staking = StakingModule{Kind: StakingModuleNativeToken, Denom: legacy.StakeDenom}
	}

	whitelist := Whitelist{Denoms: legacy.WhitelistDenoms}
	cfg := Config{
		Authority: legacy.Authority,
		Staking:   staking,
		Incentive: IncentiveModuleConfig{
			Enabled:   legacy.IncentiveEnabled,
			Whitelist: whitelist,
		},
		Distribution: DistributionModuleConfig{
			Enabled:   legacy.DistributionEnabled,
			Whitelist: whitelist,
		},
		Underlying: UnderlyingRewardsModuleConfig{
			Enabled: legacy.UnderlyingSrc != "",
			Src:     legacy.UnderlyingSrc,
		},
	}

	if legacy.InflationEnabled {
		rate, err := parseLegacyRate(legacy.InflationRatePerYear)
		if err != nil {
			return Config{}, err
		}
		cfg.Inflation = InflationModuleConfig{
			Enabled:     true,
			Denom:       legacy.InflationDenom,
			RatePerYear: rate,
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseLegacyRate(s string) (math.LegacyDec, error) {
	rate, err := math.LegacyNewDecFromStr(s)
	if err != nil {
		return math.LegacyDec{}, ErrInvalidConfig.Wrapf("invalid legacy inflation rate %q: %s", s, err)
	}
	return rate, nil
}
