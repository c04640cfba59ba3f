package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

func (k msgServer) FundInflation(goCtx context.Context, msg *types.MsgFundInflation) (*types.MsgFundInflationResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	senderAddr, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, err
	}
	if err := k.bookkeepingBank.SendCoinsFromAccountToModule(ctx, senderAddr, types.ModuleName, sdk.NewCoins(msg.Amount), "inflation funding"); err != nil {
		return nil, err
	}

	if err := k.Keeper.FundInflation(ctx, msg.Amount); err != nil {
		return nil, err
	}

	return &types.MsgFundInflationResponse{}, nil
}

func (k msgServer) WithdrawInflation(goCtx context.Context, msg *types.MsgWithdrawInflation) (*types.MsgWithdrawInflationResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	cfg, err := k.Keeper.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := k.authorizeAdmin(cfg, msg.Authority); err != nil {
		return nil, err
	}

	if err := k.Keeper.WithdrawInflation(ctx, msg.Amount, ctx.BlockTime().Unix()); err != nil {
		return nil, err
	}

	recipientAddr, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, err
	}
	if err := k.bookkeepingBank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipientAddr, sdk.NewCoins(msg.Amount), "inflation withdrawal"); err != nil {
		return nil, err
	}

	return &types.MsgWithdrawInflationResponse{}, nil
}

func (k msgServer) CrankInflation(goCtx context.Context, msg *types.MsgCrankInflation) (*types.MsgCrankInflationResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	emitted, err := k.Keeper.CrankInflation(ctx, ctx.BlockTime().Unix())
	if err != nil {
		return nil, err
	}

	return &types.MsgCrankInflationResponse{Emitted: emitted}, nil
}

func (k msgServer) SetInflationEnabled(goCtx context.Context, msg *types.MsgSetInflationEnabled) (*types.MsgSetInflationEnabledResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	cfg, err := k.Keeper.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := k.authorizeAdmin(cfg, msg.Authority); err != nil {
		return nil, err
	}

	if err := k.Keeper.SetInflationEnabled(ctx, msg.Enabled, ctx.BlockTime().Unix()); err != nil {
		return nil, err
	}

	return &types.MsgSetInflationEnabledResponse{}, nil
}
