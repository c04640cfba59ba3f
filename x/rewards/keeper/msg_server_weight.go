package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

// escrowNativeStake pulls amount of the configured native bond denom from
// staker into the module account — only meaningful under
// StakingModuleNativeToken, where IncreaseWeight/DecreaseWeight move real
// coins rather than merely reporting a hook-tracked weight change.
func (k Keeper) escrowNativeStake(ctx context.Context, cfg types.Config, staker sdk.AccAddress, amount math.Int) error {
	coins := sdk.NewCoins(sdk.NewCoin(cfg.Staking.Denom, amount))
	return k.bookkeepingBank.SendCoinsFromAccountToModule(ctx, staker, types.ModuleName, coins, "stake")
}

// releaseNativeStake returns amount of the configured native bond denom from
// the module account back to staker.
func (k Keeper) releaseNativeStake(ctx context.Context, cfg types.Config, staker sdk.AccAddress, amount math.Int) error {
	return k.executeTransferIntent(ctx, types.TransferIntent{
		Recipient: staker,
		Coins:     sdk.NewCoins(sdk.NewCoin(cfg.Staking.Denom, amount)),
	})
}

func (k msgServer) IncreaseWeight(goCtx context.Context, msg *types.MsgIncreaseWeight) (*types.MsgIncreaseWeightResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	cfg, err := k.Keeper.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := k.authorizeStakeChange(cfg, msg.Sender, msg.Staker); err != nil {
		return nil, err
	}
	k.preDrainRewardSources(ctx, cfg)

	stakerAddr, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		return nil, err
	}

	if cfg.Staking.Kind == types.StakingModuleNativeToken {
		if err := k.escrowNativeStake(ctx, cfg, stakerAddr, msg.Amount); err != nil {
			return nil, err
		}
	}

	intents, err := k.Keeper.IncreaseWeight(ctx, stakerAddr, msg.Amount, msg.Withdraw)
	if err != nil {
		return nil, err
	}

	var withdrawn sdk.Coins
	for _, intent := range intents {
		if err := k.executeTransferIntent(ctx, intent); err != nil {
			return nil, err
		}
		withdrawn = withdrawn.Add(intent.Coins...)
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeIncreaseWeight,
			sdk.NewAttribute(types.AttributeKeyStaker, msg.Staker),
			sdk.NewAttribute(types.AttributeKeyWeight, msg.Amount.String()),
		),
	)
	k.Logger().Info("increased weight", "staker", msg.Staker, "amount", msg.Amount.String())

	return &types.MsgIncreaseWeightResponse{Withdrawn: withdrawn}, nil
}

func (k msgServer) DecreaseWeight(goCtx context.Context, msg *types.MsgDecreaseWeight) (*types.MsgDecreaseWeightResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	cfg, err := k.Keeper.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := k.authorizeStakeChange(cfg, msg.Sender, msg.Staker); err != nil {
		return nil, err
	}
	k.preDrainRewardSources(ctx, cfg)

	stakerAddr, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		return nil, err
	}

	intents, err := k.Keeper.DecreaseWeight(ctx, stakerAddr, msg.Amount, msg.Withdraw)
	if err != nil {
		return nil, err
	}

	if cfg.Staking.Kind == types.StakingModuleNativeToken {
		if err := k.releaseNativeStake(ctx, cfg, stakerAddr, msg.Amount); err != nil {
			return nil, err
		}
	}

	var withdrawn sdk.Coins
	for _, intent := range intents {
		if err := k.executeTransferIntent(ctx, intent); err != nil {
			return nil, err
		}
		withdrawn = withdrawn.Add(intent.Coins...)
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeDecreaseWeight,
			sdk.NewAttribute(types.AttributeKeyStaker, msg.Staker),
			sdk.NewAttribute(types.AttributeKeyWeight, msg.Amount.String()),
		),
	)
	k.Logger().Info("decreased weight", "staker", msg.Staker, "amount", msg.Amount.String())

	return &types.MsgDecreaseWeightResponse{Withdrawn: withdrawn}, nil
}

func (k msgServer) SetWeight(goCtx context.Context, msg *types.MsgSetWeight) (*types.MsgSetWeightResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	cfg, err := k.Keeper.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := k.authorizeSetWeight(cfg, msg.Sender); err != nil {
		return nil, err
	}
	k.preDrainRewardSources(ctx, cfg)

	stakerAddr, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		return nil, err
	}
	if _, err := k.Keeper.SetWeight(ctx, stakerAddr, msg.Amount, false); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeSetWeight,
			sdk.NewAttribute(types.AttributeKeyStaker, msg.Staker),
			sdk.NewAttribute(types.AttributeKeyWeight, msg.Amount.String()),
		),
	)
	k.Logger().Info("set weight", "staker", msg.Staker, "amount", msg.Amount.String())

	return &types.MsgSetWeightResponse{}, nil
}
