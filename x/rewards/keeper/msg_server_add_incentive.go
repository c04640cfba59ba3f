package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

// AddIncentive registers a scheduled release funded by the attached coins —
// any sender may call this once the incentive module is enabled, gated by
// keeper.validateIncentiveFunds rather than admin authorization (spec.md §6:
// "incentive module enabled", not owner-only).
func (k msgServer) AddIncentive(goCtx context.Context, msg *types.MsgAddIncentive) (*types.MsgAddIncentiveResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	cfg, err := k.Keeper.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.Incentive.Enabled {
		return nil, types.ErrIncentivesNotEnabled
	}

	total, _, err := validateIncentiveFunds(cfg, msg.Denom, msg.Coins)
	if err != nil {
		return nil, err
	}

	senderAddr, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, err
	}
	if err := k.bookkeepingBank.SendCoinsFromAccountToModule(ctx, senderAddr, types.ModuleName, msg.Coins, "incentive funding"); err != nil {
		return nil, err
	}

	id, err := k.Keeper.AddIncentive(ctx, msg.Denom, total, msg.Start, msg.End, msg.Shape, ctx.BlockTime().Unix())
	if err != nil {
		return nil, err
	}

	return &types.MsgAddIncentiveResponse{Id: id}, nil
}
