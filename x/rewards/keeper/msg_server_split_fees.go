package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

// SplitFees pulls fees into the module account and splits them among the
// Distribution module's configured fee recipients by rate weight (spec.md
// §4.5's `distribute` variant) — the Distribution sub-module's standalone
// entry point, independent of the Ledger's weighted reward stream.
func (k msgServer) SplitFees(goCtx context.Context, msg *types.MsgSplitFees) (*types.MsgSplitFeesResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	cfg, err := k.Keeper.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.Distribution.Enabled {
		return nil, types.ErrUnauthorized.Wrap("distribution module disabled")
	}

	senderAddr, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, err
	}
	if err := k.bookkeepingBank.SendCoinsFromAccountToModule(ctx, senderAddr, types.ModuleName, msg.Fees, "fee split"); err != nil {
		return nil, err
	}

	if err := k.Keeper.SplitFeesToStakers(ctx, cfg, msg.Fees); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeSplitFees,
			sdk.NewAttribute(types.AttributeKeyAmount, msg.Fees.String()),
		),
	)

	return &types.MsgSplitFeesResponse{}, nil
}
