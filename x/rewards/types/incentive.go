package types

import "cosmossdk.io/math"

// ReleaseShapeKind tags which ReleaseShape implementation governs an
// Incentive's vesting curve. Persisted as a plain tag so the IncentiveIM
// value stays JSON-codec friendly; CrankIncentives dispatches on it to the
// matching ReleaseShape implementation.
type ReleaseShapeKind uint8

const (
	// ReleaseShapeLinear is spec.md's "Fixed" shape: proportional release
	// across [Start,End).
	ReleaseShapeLinear ReleaseShapeKind = iota
)

// ReleaseShape computes the cumulative amount that should have been
// released by a given time. Implementations are pure and stateless; the
// interface exists so additional shapes can be added without the engine
// depending on their internals (spec.md §9).
type ReleaseShape interface {
	Released(total math.Int, start, end, now int64) math.Int
}

// Linear releases total proportionally to elapsed time within [start,end).
type Linear struct{}

// Released implements ReleaseShape.
func (Linear) Released(total math.Int, start, end, now int64) math.Int {
	if now <= start {
		return math.ZeroInt()
	}
	if now >= end {
		return total
	}
	elapsed := math.NewInt(now - start)
	duration := math.NewInt(end - start)
	return total.Mul(elapsed).Quo(duration)
}

// ShapeByKind resolves a ReleaseShapeKind to its ReleaseShape implementation.
func ShapeByKind(kind ReleaseShapeKind) ReleaseShape {
	switch kind {
	case ReleaseShapeLinear:
		return Linear{}
	default:
		return Linear{}
	}
}

// Incentive is a scheduled reward-release entry in the incentive registry —
// ported from packages/rewards-logic/src/incentive.rs.
type Incentive struct {
	Id              uint64           `json:"id"`
	Denom           string           `json:"denom"`
	Total           math.Int         `json:"total"`
	Released        math.Int         `json:"released"`
	Start           int64            `json:"start"`
	End             int64            `json:"end"`
	LastDistributed int64            `json:"last_distributed"`
	Shape           ReleaseShapeKind `json:"shape"`
}

// Pending reports the amount owed but not yet distributed as of now.
func (inc Incentive) Pending(now int64) math.Int {
	released := ShapeByKind(inc.Shape).Released(inc.Total, inc.Start, inc.End, now)
	pending := released.Sub(inc.Released)
	if pending.IsNegative() {
		return math.ZeroInt()
	}
	return pending
}

// Done reports whether the incentive has fully released its total.
func (inc Incentive) Done() bool {
	return inc.Released.GTE(inc.Total)
}
