package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	testkeeper "github.com/EntropicLabs/cw-rewards/testutil/keeper"
	"github.com/EntropicLabs/cw-rewards/testutil/sample"
	"github.com/EntropicLabs/cw-rewards/x/rewards/keeper"
	"github.com/EntropicLabs/cw-rewards/x/rewards/types"
)

type QueryServerTestSuite struct {
	suite.Suite

	ctx sdk.Context
	k   keeper.Keeper
}

func (s *QueryServerTestSuite) SetupTest() {
	k, ctx, _ := testkeeper.RewardsKeeper(s.T())
	s.k = k
	s.ctx = ctx
	s.Require().NoError(k.Initialize(ctx, types.Config{
		Authority: sample.AccAddress(),
		Staking:   types.StakingModule{Kind: types.StakingModulePermissioned},
	}))
}

func TestQueryServerTestSuite(t *testing.T) {
	suite.Run(t, new(QueryServerTestSuite))
}

func (s *QueryServerTestSuite) TestConfigRejectsNilRequest() {
	_, err := s.k.Config(s.ctx, nil)
	s.Require().Error(err)
}

func (s *QueryServerTestSuite) TestConfigReturnsStored() {
	resp, err := s.k.Config(s.ctx, &types.QueryConfigRequest{})
	s.Require().NoError(err)
	s.Require().Equal(types.StakingModulePermissioned, resp.Config.Staking.Kind)
}

func (s *QueryServerTestSuite) TestWeightAndAccrued() {
	a := mustAddr(s.T(), sample.AccAddress())
	_, err := s.k.SetWeight(s.ctx, a, math.NewInt(100), false)
	s.Require().NoError(err)
	s.Require().NoError(s.k.DistributeRewards(s.ctx, sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 400))))

	weightResp, err := s.k.Weight(s.ctx, &types.QueryWeightRequest{Staker: a.String()})
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(100), weightResp.Weight)

	accruedResp, err := s.k.Accrued(s.ctx, &types.QueryAccruedRequest{Staker: a.String(), Denom: tokenDenom})
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(400), accruedResp.Accrued)
}

func (s *QueryServerTestSuite) TestWeightsPaginates() {
	a := mustAddr(s.T(), sample.AccAddress())
	b := mustAddr(s.T(), sample.AccAddress())
	_, err := s.k.SetWeight(s.ctx, a, math.NewInt(100), false)
	s.Require().NoError(err)
	_, err = s.k.SetWeight(s.ctx, b, math.NewInt(200), false)
	s.Require().NoError(err)

	resp, err := s.k.Weights(s.ctx, &types.QueryWeightsRequest{})
	s.Require().NoError(err)
	s.Require().Len(resp.Weights, 2)
}

func (s *QueryServerTestSuite) TestCalculateUsersRewardsBatches() {
	a := mustAddr(s.T(), sample.AccAddress())
	b := mustAddr(s.T(), sample.AccAddress())
	_, err := s.k.SetWeight(s.ctx, a, math.NewInt(300), false)
	s.Require().NoError(err)
	_, err = s.k.SetWeight(s.ctx, b, math.NewInt(100), false)
	s.Require().NoError(err)
	s.Require().NoError(s.k.DistributeRewards(s.ctx, sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 400))))

	resp, err := s.k.CalculateUsersRewards(s.ctx, &types.QueryCalculateUsersRewardsRequest{
		Stakers: []string{a.String(), b.String()},
		Denom:   tokenDenom,
	})
	s.Require().NoError(err)
	s.Require().Equal([]math.Int{math.NewInt(300), math.NewInt(100)}, resp.Accrued)
}

func (s *QueryServerTestSuite) TestPendingInflationRequiresEnabled() {
	_, err := s.k.PendingInflation(s.ctx, &types.QueryPendingInflationRequest{})
	s.Require().Error(err)
}
