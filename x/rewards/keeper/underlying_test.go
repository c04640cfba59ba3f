package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/suite"

	testkeeper "github.com/EntropicLabs/cw-rewards/testutil/keeper"
	"github.com/EntropicLabs/cw-rewards/testutil/sample"
	"github.com/EntropicLabs/cw-rewards/x/rewards/keeper"
	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

// moduleAddress mirrors keeper.Keeper.moduleAddress (unexported) so tests
// can arrange the underlying source's reported pending amount against the
// same address the keeper attributes pool-wide rewards to.
func moduleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

type UnderlyingTestSuite struct {
	suite.Suite

	ctx   sdk.Context
	k     keeper.Keeper
	mocks testkeeper.RewardsMocks
	srv   types.MsgServer
}

func (s *UnderlyingTestSuite) SetupTest() {
	k, ctx, mocks := testkeeper.RewardsKeeper(s.T())
	s.k = k
	s.ctx = ctx
	s.mocks = mocks
	s.srv = keeper.NewMsgServerImpl(k)

	s.Require().NoError(s.k.Initialize(s.ctx, types.Config{
		Authority:  sample.AccAddress(),
		Staking:    types.StakingModule{Kind: types.StakingModulePermissioned},
		Underlying: types.UnderlyingRewardsModuleConfig{Enabled: true, Src: "underlying-source"},
	}))
}

func TestUnderlyingTestSuite(t *testing.T) {
	suite.Run(t, new(UnderlyingTestSuite))
}

// TestClaimPreDrainsUnderlying — ClaimRewards pulls the underlying source
// forward before settling, so a staker sees pass-through rewards in the same
// claim that first makes them available.
func (s *UnderlyingTestSuite) TestClaimPreDrainsUnderlying() {
	a := mustAddr(s.T(), sample.AccAddress())
	b := mustAddr(s.T(), sample.AccAddress())
	_, err := s.k.SetWeight(s.ctx, a, math.NewInt(300), false)
	s.Require().NoError(err)
	_, err = s.k.SetWeight(s.ctx, b, math.NewInt(100), false)
	s.Require().NoError(err)

	s.mocks.Underlying.SetPending(moduleAddress(), sdk.NewInt64Coin(tokenDenom, 400))
	// the fake source moves no coins, so the 400 it will report as withdrawn
	// is placed in the module account here.
	s.mocks.Bank.SetBalance(types.ModuleName, sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 400)))

	resp, err := s.srv.ClaimRewards(s.ctx, &types.MsgClaimRewards{Staker: a.String()})
	s.Require().NoError(err)
	// a holds 300/400 of total weight: 300 of the drained 400.
	s.Require().Equal(sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 300)), resp.Claimed)
	s.Require().Equal(math.NewInt(100), s.k.GetAccrued(s.ctx, b, tokenDenom))
}

// TestGetPendingUnderlyingPreview — previews a staker's pro-rata share of
// the underlying source's reported pending amount without mutating state.
func (s *UnderlyingTestSuite) TestGetPendingUnderlyingPreview() {
	a := mustAddr(s.T(), sample.AccAddress())
	_, err := s.k.SetWeight(s.ctx, a, math.NewInt(100), false)
	s.Require().NoError(err)

	s.mocks.Underlying.SetPending(moduleAddress(), sdk.NewInt64Coin(tokenDenom, 50))

	s.Require().Equal(math.NewInt(50), s.k.GetPendingUnderlying(s.ctx, a, tokenDenom))
	// previewing does not mutate: the underlying source still reports the
	// same pending amount, and it hasn't been folded into accrued yet.
	s.Require().True(s.k.GetAccrued(s.ctx, a, tokenDenom).IsZero())
}
