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

const inflationDenom = "ustake"

type InflationTestSuite struct {
	suite.Suite

	ctx sdk.Context
	k   keeper.Keeper
}

func (s *InflationTestSuite) SetupTest() {
	k, ctx, _ := testkeeper.RewardsKeeper(s.T())
	s.k = k
	s.ctx = ctx

	s.Require().NoError(s.k.Initialize(s.ctx, types.Config{
		Authority: sample.AccAddress(),
		Staking:   types.StakingModule{Kind: types.StakingModulePermissioned},
		Inflation: types.InflationModuleConfig{
			Enabled:     true,
			Denom:       inflationDenom,
			RatePerYear: math.LegacyNewDecWithPrec(10, 2), // 10%
		},
	}))
}

func TestInflationTestSuite(t *testing.T) {
	suite.Run(t, new(InflationTestSuite))
}

// Scenario — inflation: rate 10%/year, fund 1000, stake 500/300, advance 6
// months, verify pending emission 40 split 25/15 by weight, then crank and
// check the reserve nets down to 960.
func (s *InflationTestSuite) TestInflationAccrual() {
	a := mustAddr(s.T(), sample.AccAddress())
	b := mustAddr(s.T(), sample.AccAddress())

	s.Require().NoError(s.k.FundInflation(s.ctx, sdk.NewInt64Coin(inflationDenom, 1000)))

	_, err := s.k.IncreaseWeight(s.ctx, a, math.NewInt(500), false)
	s.Require().NoError(err)
	_, err = s.k.IncreaseWeight(s.ctx, b, math.NewInt(300), false)
	s.Require().NoError(err)

	now := s.ctx.BlockTime().Unix()
	sixMonths := now + (365*24*60*60)/2
	s.ctx = testkeeper.WithBlockTime(s.ctx, sixMonths)

	// total staked 800 * 10%/yr * 0.5yr = 40
	pending, err := s.k.ComputePendingInflation(s.ctx, sixMonths)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(40), pending)

	emitted, err := s.k.CrankInflation(s.ctx, sixMonths)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(40), emitted)

	// 40 split 500:300 -> 25/15
	s.Require().Equal(math.NewInt(25), s.k.GetAccrued(s.ctx, a, inflationDenom))
	s.Require().Equal(math.NewInt(15), s.k.GetAccrued(s.ctx, b, inflationDenom))

	reserve, err := s.k.InflationFunds.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(960), reserve.Amount)
}

// TestWithdrawInflationReservesEmission — a withdrawal cannot eat into the
// reserve that would be owed to stakers as of now, per the pending-emission
// reservation rule.
func (s *InflationTestSuite) TestWithdrawInflationReservesEmission() {
	s.Require().NoError(s.k.FundInflation(s.ctx, sdk.NewInt64Coin(inflationDenom, 1000)))

	a := mustAddr(s.T(), sample.AccAddress())
	_, err := s.k.IncreaseWeight(s.ctx, a, math.NewInt(100), false)
	s.Require().NoError(err)

	now := s.ctx.BlockTime().Unix()
	later := now + (365 * 24 * 60 * 60) // 1 year -> 10% of 100 staked = 10
	s.ctx = testkeeper.WithBlockTime(s.ctx, later)

	// reserve is 1000, pending emission is 10: withdrawing 995 must fail.
	err = s.k.WithdrawInflation(s.ctx, sdk.NewInt64Coin(inflationDenom, 995), later)
	s.Require().ErrorIs(err, types.ErrInsufficientReserve)

	// withdrawing 990 (leaving exactly the pending 10) succeeds.
	err = s.k.WithdrawInflation(s.ctx, sdk.NewInt64Coin(inflationDenom, 990), later)
	s.Require().NoError(err)
}

// TestFundInflationDenomMismatch — funding with the wrong denom is rejected.
func (s *InflationTestSuite) TestFundInflationDenomMismatch() {
	err := s.k.FundInflation(s.ctx, sdk.NewInt64Coin("wrongdenom", 100))
	s.Require().ErrorIs(err, types.ErrDenomMismatch)
}
