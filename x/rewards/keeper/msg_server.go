package keeper

import "github.com/EntropicLabs/cw-rewards/x/rewards/types"

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of types.MsgServer backed by
// the given Keeper — mirrors x/collateral/keeper's NewMsgServerImpl, hand
// maintained here instead of protoc-generated (see types/messages.go).
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}
