package types

import errorsmod "cosmossdk.io/errors"

// Sentinel errors, registered under a single codespace per module — mirrors
// x/collateral/types/errors.go.
var (
	ErrInvalidConfig        = errorsmod.Register(ModuleName, 2, "invalid config")
	ErrNotInitialized       = errorsmod.Register(ModuleName, 3, "rewards engine not initialized")
	ErrAlreadyInitialized   = errorsmod.Register(ModuleName, 4, "rewards engine already initialized")
	ErrUnauthorized         = errorsmod.Register(ModuleName, 5, "unauthorized")
	ErrInsufficientWeight   = errorsmod.Register(ModuleName, 6, "insufficient weight")
	ErrNoRewardsToClaim     = errorsmod.Register(ModuleName, 7, "no rewards to claim")
	ErrZeroTotalStaked      = errorsmod.Register(ModuleName, 8, "zero total staked")
	ErrIncentiveNotFound    = errorsmod.Register(ModuleName, 9, "incentive not found")
	ErrInvalidSchedule      = errorsmod.Register(ModuleName, 10, "invalid incentive schedule")
	ErrInflationNotEnabled  = errorsmod.Register(ModuleName, 11, "inflation not enabled")
	ErrInflationEnabled     = errorsmod.Register(ModuleName, 12, "inflation already enabled")
	ErrInsufficientReserve  = errorsmod.Register(ModuleName, 13, "insufficient inflation reserve")
	ErrInvalidWeightSource  = errorsmod.Register(ModuleName, 14, "sender is not the configured weight source")
	ErrInvalidCoins         = errorsmod.Register(ModuleName, 15, "invalid coins")
	ErrUnderlyingNotEnabled = errorsmod.Register(ModuleName, 16, "no underlying rewards module configured")
	ErrUnderflow            = errorsmod.Register(ModuleName, 17, "unstake amount exceeds current weight")
	ErrInvalidIncentive     = errorsmod.Register(ModuleName, 18, "invalid incentive funding")
	ErrIncentivesNotEnabled = errorsmod.Register(ModuleName, 19, "incentive module not enabled")
	ErrInvalidStakingConfig = errorsmod.Register(ModuleName, 20, "operation not valid for the configured staking module")
	ErrDenomMismatch        = errorsmod.Register(ModuleName, 21, "denom mismatch")
)
