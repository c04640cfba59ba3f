package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

// DistributeRewards pulls the sender's coins into the module account and
// folds them into the weighted index — the external "fund the pool" entry
// point, as opposed to the Incentive/Inflation modules' own internal cranks.
func (k msgServer) DistributeRewards(goCtx context.Context, msg *types.MsgDistributeRewards) (*types.MsgDistributeRewardsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	cfg, err := k.Keeper.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.Distribution.Enabled {
		return nil, types.ErrUnauthorized.Wrap("distribution module disabled")
	}
	k.preDrainRewardSources(ctx, cfg)
	for _, coin := range msg.Coins {
		if !cfg.Distribution.Whitelist.Allows(coin.Denom) {
			return nil, types.ErrInvalidCoins.Wrapf("denom %s not whitelisted", coin.Denom)
		}
	}

	senderAddr, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, err
	}
	if err := k.bookkeepingBank.SendCoinsFromAccountToModule(ctx, senderAddr, types.ModuleName, msg.Coins, "rewards distribution"); err != nil {
		return nil, err
	}

	if k.GetTotalStaked(ctx).IsZero() {
		return nil, types.ErrZeroTotalStaked
	}

	remaining, shares := SplitFees(msg.Coins, cfg.Distribution.Fees)
	for recipient, coins := range shares {
		recipientAddr, err := sdk.AccAddressFromBech32(recipient)
		if err != nil {
			return nil, err
		}
		if err := k.executeTransferIntent(ctx, types.TransferIntent{Recipient: recipientAddr, Coins: coins}); err != nil {
			return nil, err
		}
	}

	if err := k.Keeper.DistributeRewards(ctx, remaining); err != nil {
		return nil, err
	}

	return &types.MsgDistributeRewardsResponse{}, nil
}
