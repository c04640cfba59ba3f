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

const tokenDenom = "token"

type StateMachineTestSuite struct {
	suite.Suite

	ctx   sdk.Context
	k     keeper.Keeper
	mocks testkeeper.RewardsMocks
}

func (s *StateMachineTestSuite) SetupTest() {
	k, ctx, mocks := testkeeper.RewardsKeeper(s.T())
	s.k = k
	s.ctx = ctx
	s.mocks = mocks

	s.Require().NoError(s.k.Initialize(s.ctx, types.Config{
		Authority: sample.AccAddress(),
		Staking:   types.StakingModule{Kind: types.StakingModulePermissioned},
	}))
}

func TestStateMachineTestSuite(t *testing.T) {
	suite.Run(t, new(StateMachineTestSuite))
}

func mustAddr(t *testing.T, bech32 string) sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(bech32)
	if err != nil {
		t.Fatalf("invalid address %s: %s", bech32, err)
	}
	return addr
}

// Scenario 1 — even split: A=150, B=50 stake, distribute 1000; A claims 750.
func (s *StateMachineTestSuite) TestEvenSplit() {
	a := mustAddr(s.T(), sample.AccAddress())
	b := mustAddr(s.T(), sample.AccAddress())

	_, err := s.k.IncreaseWeight(s.ctx, a, math.NewInt(150), false)
	s.Require().NoError(err)
	_, err = s.k.IncreaseWeight(s.ctx, b, math.NewInt(50), false)
	s.Require().NoError(err)

	s.Require().NoError(s.k.DistributeRewards(s.ctx, sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 1000))))

	s.Require().Equal(math.NewInt(750), s.k.GetAccrued(s.ctx, a, tokenDenom))
	s.Require().Equal(math.NewInt(250), s.k.GetAccrued(s.ctx, b, tokenDenom))

	intents, err := s.k.ClaimAccrued(s.ctx, a)
	s.Require().NoError(err)
	s.Require().Len(intents, 1)
	s.Require().Equal(sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 750)), intents[0].Coins)
	s.Require().True(s.k.GetAccrued(s.ctx, a, tokenDenom).IsZero())
	s.Require().Equal(math.NewInt(250), s.k.GetAccrued(s.ctx, b, tokenDenom))

	// idempotent claim: a second back-to-back claim fails NoRewardsToClaim
	_, err = s.k.ClaimAccrued(s.ctx, a)
	s.Require().ErrorIs(err, types.ErrNoRewardsToClaim)
}

// Scenario 2 — inline withdraw on stake: A stakes, distribute, B stakes,
// distribute again; A's pending accumulates across both rounds.
func (s *StateMachineTestSuite) TestInlineWithdrawOnStake() {
	a := mustAddr(s.T(), sample.AccAddress())
	b := mustAddr(s.T(), sample.AccAddress())

	_, err := s.k.IncreaseWeight(s.ctx, a, math.NewInt(150), false)
	s.Require().NoError(err)
	s.Require().NoError(s.k.DistributeRewards(s.ctx, sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 1000))))

	_, err = s.k.IncreaseWeight(s.ctx, b, math.NewInt(50), false)
	s.Require().NoError(err)
	s.Require().NoError(s.k.DistributeRewards(s.ctx, sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 1000))))

	s.Require().Equal(math.NewInt(1500), s.k.GetAccrued(s.ctx, a, tokenDenom))
	s.Require().Equal(math.NewInt(250), s.k.GetAccrued(s.ctx, b, tokenDenom))
}

// Scenario — prune law: after a full unstake-and-claim, no RewardInfo row
// survives for a staker with zero weight and zero accrued.
func (s *StateMachineTestSuite) TestPruneLaw() {
	a := mustAddr(s.T(), sample.AccAddress())

	_, err := s.k.IncreaseWeight(s.ctx, a, math.NewInt(100), false)
	s.Require().NoError(err)
	s.Require().NoError(s.k.DistributeRewards(s.ctx, sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 100))))

	intents, err := s.k.DecreaseWeight(s.ctx, a, math.NewInt(100), true)
	s.Require().NoError(err)
	s.Require().Len(intents, 1)
	s.Require().Equal(sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 100)), intents[0].Coins)

	s.Require().True(s.k.GetWeight(s.ctx, a).IsZero())
	s.Require().True(s.k.GetAccrued(s.ctx, a, tokenDenom).IsZero())
}

// TestUnderflow — decrease_weight beyond stake fails with the dedicated
// Underflow error, not the generic insufficient-weight one.
func (s *StateMachineTestSuite) TestUnderflow() {
	a := mustAddr(s.T(), sample.AccAddress())
	_, err := s.k.IncreaseWeight(s.ctx, a, math.NewInt(10), false)
	s.Require().NoError(err)

	_, err = s.k.DecreaseWeight(s.ctx, a, math.NewInt(11), false)
	s.Require().ErrorIs(err, types.ErrUnderflow)
}

// TestDistributeRequiresStake — distribute_rewards against zero total stake
// fails NoStake (ErrZeroTotalStaked).
func (s *StateMachineTestSuite) TestDistributeRequiresStake() {
	err := s.k.DistributeRewards(s.ctx, sdk.NewCoins(sdk.NewInt64Coin(tokenDenom, 100)))
	s.Require().ErrorIs(err, types.ErrZeroTotalStaked)
}
