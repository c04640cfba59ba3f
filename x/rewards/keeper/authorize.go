package keeper

import "github.com/EntropicLabs/cw-rewards/x/rewards/types"

// authorizeStakeChange gates IncreaseWeight/DecreaseWeight — spec.md §6's
// Stake/Unstake (NativeToken, sender stakes for itself) and StakeChangeHook
// (Cw4Hook/DaoDaoHook, sender is the configured hook source). Generalized
// from x/collateral/module/hooks.go's StakingHooks wrapper, adapted from a
// concrete x/staking hook interface to a configured sender-address
// comparison (the hook source itself is an external collaborator we do not
// implement, per spec.md's owner/authorization non-goal).
func (k Keeper) authorizeStakeChange(cfg types.Config, sender, staker string) error {
	switch cfg.Staking.Kind {
	case types.StakingModuleNativeToken:
		if sender != staker {
			return types.ErrInvalidStakingConfig.Wrap("native token staking requires staking for oneself")
		}
		return nil
	case types.StakingModuleCw4Hook, types.StakingModuleDaoDaoHook:
		if sender != cfg.Staking.Src {
			return types.ErrInvalidWeightSource
		}
		return nil
	default:
		return types.ErrInvalidStakingConfig.Wrap("configured staking module does not accept stake changes")
	}
}

// authorizeSetWeight gates SetWeight — spec.md §6's AdjustWeights
// (Permissioned, sender is the owner) and MemberChangedHook (Cw4Hook,
// sender is the configured source).
func (k Keeper) authorizeSetWeight(cfg types.Config, sender string) error {
	switch cfg.Staking.Kind {
	case types.StakingModulePermissioned:
		if sender != cfg.Authority {
			return types.ErrUnauthorized
		}
		return nil
	case types.StakingModuleCw4Hook:
		if sender != cfg.Staking.Src {
			return types.ErrInvalidWeightSource
		}
		return nil
	default:
		return types.ErrInvalidStakingConfig.Wrap("configured staking module does not accept direct weight assignment")
	}
}

// authorizeAdmin checks sender against the configured authority — used by
// WithdrawInflation, SetInflationEnabled and UpdateConfig. FundInflation and
// AddIncentive do not call it: any sender may fund the inflation reserve or
// add an incentive.
func (k Keeper) authorizeAdmin(cfg types.Config, sender string) error {
	if sender != cfg.Authority {
		return types.ErrUnauthorized
	}
	return nil
}
