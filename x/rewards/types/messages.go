package types

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Message types for every operation in the facade (SPEC_FULL.md §3.7). These
// are plain Go structs rather than protoc-generated sdk.Msg implementations:
// wire (de)serialization and gRPC service registration are out of scope
// (spec.md §1), and no protoc toolchain is available in this environment to
// regenerate the .pb.go stubs the teacher's Msg types rely on. Each still
// follows the teacher's ValidateBasic() shape (x/collateral's
// msg_deposit_collateral.go) for the validation the facade still needs.

type MsgInitialize struct {
	Authority string
	Config    Config
}

func (msg *MsgInitialize) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return msg.Config.Validate()
}

// MsgIncreaseWeight is Stake{withdraw, callback} under a NativeToken weight
// source (Sender stakes for itself) and StakeChangeHook{Stake, ...} under a
// Cw4Hook/DaoDaoHook source (Sender is the configured hook, Staker is the
// member it reports on).
type MsgIncreaseWeight struct {
	Sender   string
	Staker   string
	Amount   math.Int
	Withdraw bool
	Callback string
}

func (msg *MsgIncreaseWeight) ValidateBasic() error {
	return validateWeightMsg(msg.Sender, msg.Staker, msg.Amount, true)
}

// MsgDecreaseWeight is Unstake{amount, withdraw, callback} under NativeToken,
// or StakeChangeHook{Unstake, ...} under a hook source.
type MsgDecreaseWeight struct {
	Sender   string
	Staker   string
	Amount   math.Int
	Withdraw bool
	Callback string
}

func (msg *MsgDecreaseWeight) ValidateBasic() error {
	return validateWeightMsg(msg.Sender, msg.Staker, msg.Amount, true)
}

// MsgSetWeight is AdjustWeights{delta} under Permissioned (Sender = owner),
// or MemberChangedHook{diffs} under Cw4Hook (Sender = the configured source).
type MsgSetWeight struct {
	Sender string
	Staker string
	Amount math.Int
}

func (msg *MsgSetWeight) ValidateBasic() error {
	return validateWeightMsg(msg.Sender, msg.Staker, msg.Amount, false)
}

func validateWeightMsg(sender, staker string, amount math.Int, requirePositive bool) error {
	if _, err := sdk.AccAddressFromBech32(sender); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(staker); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid staker address: %s", err)
	}
	if amount.IsNil() || amount.IsNegative() {
		return ErrInsufficientWeight.Wrap("weight amount must be non-negative")
	}
	if requirePositive && !amount.IsPositive() {
		return ErrInsufficientWeight.Wrap("weight amount must be positive")
	}
	return nil
}

type MsgClaimRewards struct {
	Staker string
}

func (msg *MsgClaimRewards) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Staker); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid staker address: %s", err)
	}
	return nil
}

type MsgDistributeRewards struct {
	Sender string
	Coins  sdk.Coins
}

func (msg *MsgDistributeRewards) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if !msg.Coins.IsValid() || msg.Coins.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, "distribution coins must be valid and non-zero")
	}
	return nil
}

// MsgAddIncentive's Coins carries the attached funds: one coin of Denom (the
// incentive total) plus, when the incentive module config names a fixed fee,
// exactly one coin covering that fee — see keeper.AddIncentive for the gate.
type MsgAddIncentive struct {
	Sender string
	Denom  string
	Coins  sdk.Coins
	Start  int64
	End    int64
	Shape  ReleaseShapeKind
}

func (msg *MsgAddIncentive) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if msg.Denom == "" {
		return ErrInvalidIncentive.Wrap("denom must be set")
	}
	if !msg.Coins.IsValid() || msg.Coins.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, "incentive funds must be valid and non-zero")
	}
	if msg.End <= msg.Start {
		return ErrInvalidSchedule.Wrap("end must be after start")
	}
	return nil
}

type MsgCrankIncentives struct {
	Sender string
	Limit  uint32
}

type MsgFundInflation struct {
	Sender string
	Amount sdk.Coin
}

func (msg *MsgFundInflation) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if !msg.Amount.IsValid() || !msg.Amount.IsPositive() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, "inflation funding amount must be positive")
	}
	return nil
}

type MsgWithdrawInflation struct {
	Authority string
	Recipient string
	Amount    sdk.Coin
}

func (msg *MsgWithdrawInflation) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid recipient address: %s", err)
	}
	return nil
}

type MsgCrankInflation struct {
	Sender string
}

type MsgSetInflationEnabled struct {
	Authority string
	Enabled   bool
}

func (msg *MsgSetInflationEnabled) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return nil
}

type MsgSplitFees struct {
	Sender string
	Fees   sdk.Coins
}

// MsgDrainUnderlying manually triggers the pool-wide underlying-rewards
// pass-through crank (spec.md §4.4) — the same crank every Stake/Unstake/
// ClaimRewards/DistributeRewards pre-drains automatically, exposed directly
// for callers who only want to pull the underlying source forward.
type MsgDrainUnderlying struct {
	Sender string
}

// Responses, one per Msg above.

type MsgInitializeResponse struct{}
type MsgIncreaseWeightResponse struct {
	Withdrawn sdk.Coins
}
type MsgDecreaseWeightResponse struct {
	Withdrawn sdk.Coins
}
type MsgSetWeightResponse struct{}

type MsgClaimRewardsResponse struct {
	Claimed sdk.Coins
}

type MsgDistributeRewardsResponse struct{}

type MsgAddIncentiveResponse struct {
	Id uint64
}

type MsgCrankIncentivesResponse struct {
	Processed uint32
}

type MsgFundInflationResponse struct{}
type MsgWithdrawInflationResponse struct{}

type MsgCrankInflationResponse struct {
	Emitted math.Int
}

type MsgSetInflationEnabledResponse struct{}
type MsgSplitFeesResponse struct{}

type MsgDrainUnderlyingResponse struct {
	Withdrawn sdk.Coins
}

// MsgUpdateConfig is spec.md §6's UpdateConfig{patch} — owner-gated,
// applying Patch onto the persisted Config. Per the same row, a patch that
// flips inflation_module from disabled to enabled resets LastInflationUpdate
// to now (see keeper.UpdateConfig), exactly like SetInflationEnabled.
type MsgUpdateConfig struct {
	Authority string
	Patch     ConfigPatch
}

func (msg *MsgUpdateConfig) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return nil
}

type MsgUpdateConfigResponse struct {
	Config Config
}

// MsgServer is the hand-written analog of a protoc-generated gRPC service
// interface — see the package doc comment above for why it is not generated.
type MsgServer interface {
	Initialize(context.Context, *MsgInitialize) (*MsgInitializeResponse, error)
	IncreaseWeight(context.Context, *MsgIncreaseWeight) (*MsgIncreaseWeightResponse, error)
	DecreaseWeight(context.Context, *MsgDecreaseWeight) (*MsgDecreaseWeightResponse, error)
	SetWeight(context.Context, *MsgSetWeight) (*MsgSetWeightResponse, error)
	ClaimRewards(context.Context, *MsgClaimRewards) (*MsgClaimRewardsResponse, error)
	DistributeRewards(context.Context, *MsgDistributeRewards) (*MsgDistributeRewardsResponse, error)
	AddIncentive(context.Context, *MsgAddIncentive) (*MsgAddIncentiveResponse, error)
	CrankIncentives(context.Context, *MsgCrankIncentives) (*MsgCrankIncentivesResponse, error)
	FundInflation(context.Context, *MsgFundInflation) (*MsgFundInflationResponse, error)
	WithdrawInflation(context.Context, *MsgWithdrawInflation) (*MsgWithdrawInflationResponse, error)
	CrankInflation(context.Context, *MsgCrankInflation) (*MsgCrankInflationResponse, error)
	SetInflationEnabled(context.Context, *MsgSetInflationEnabled) (*MsgSetInflationEnabledResponse, error)
	SplitFees(context.Context, *MsgSplitFees) (*MsgSplitFeesResponse, error)
	DrainUnderlying(context.Context, *MsgDrainUnderlying) (*MsgDrainUnderlyingResponse, error)
	UpdateConfig(context.Context, *MsgUpdateConfig) (*MsgUpdateConfigResponse, error)
}

// QueryServer is the hand-written analog of the generated query service.
type QueryServer interface {
	Config(context.Context, *QueryConfigRequest) (*QueryConfigResponse, error)
	Weight(context.Context, *QueryWeightRequest) (*QueryWeightResponse, error)
	Weights(context.Context, *QueryWeightsRequest) (*QueryWeightsResponse, error)
	Accrued(context.Context, *QueryAccruedRequest) (*QueryAccruedResponse, error)
	CalculateUsersRewards(context.Context, *QueryCalculateUsersRewardsRequest) (*QueryCalculateUsersRewardsResponse, error)
	Incentives(context.Context, *QueryIncentivesRequest) (*QueryIncentivesResponse, error)
	PendingIncentives(context.Context, *QueryPendingIncentivesRequest) (*QueryPendingIncentivesResponse, error)
	PendingInflation(context.Context, *QueryPendingInflationRequest) (*QueryPendingInflationResponse, error)
	PendingUnderlying(context.Context, *QueryPendingUnderlyingRequest) (*QueryPendingUnderlyingResponse, error)
}
