package types

import (
	"fmt"
	"math/big"

	"cosmossdk.io/math"
	"github.com/holiman/uint256"
)

// IndexPrecision is the number of fractional decimals carried by an Index:
// the u256.18 fixed-point contract from the reward index specification.
const IndexPrecision = 18

var indexScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(IndexPrecision), nil)

// Index is an unsigned 256-bit fixed-point scalar with 18 fractional
// decimals, used for the per-denom global reward index I_d. It is backed by
// github.com/holiman/uint256 rather than cosmossdk.io/math, which is
// arbitrary precision rather than a fixed 256-bit word — see DESIGN.md.
type Index struct {
	scaled *uint256.Int
}

// ZeroIndex returns the additive identity.
func ZeroIndex() Index {
	return Index{scaled: uint256.NewInt(0)}
}

// indexFromScaled wraps an already-scaled (x * 10^18) raw value.
func indexFromScaled(raw *uint256.Int) Index {
	if raw == nil {
		return ZeroIndex()
	}
	return Index{scaled: raw.Clone()}
}

// IsZero reports whether the index is the additive identity.
func (i Index) IsZero() bool {
	return i.scaled == nil || i.scaled.IsZero()
}

// Cmp compares two indices; result 0 if equal, -1 if i < other, +1 if i > other.
func (i Index) Cmp(other Index) int {
	a, b := i.rawOrZero(), other.rawOrZero()
	return a.Cmp(b)
}

func (i Index) rawOrZero() *uint256.Int {
	if i.scaled == nil {
		return uint256.NewInt(0)
	}
	return i.scaled
}

// Add returns i + delta. Panics on 256-bit overflow: an overflowing reward
// index implies an accounting bug upstream, not a recoverable condition.
func (i Index) Add(delta Index) Index {
	sum, overflow := new(uint256.Int).AddOverflow(i.rawOrZero(), delta.rawOrZero())
	if overflow {
		panic("rewards: global index overflowed u256.18")
	}
	return Index{scaled: sum}
}

// Sub returns i - other. Panics if other > i: the global index is monotonic
// non-decreasing, so a caller computing a checkpoint delta should never see
// an underflow unless a checkpoint was corrupted.
func (i Index) Sub(other Index) Index {
	diff, underflow := new(uint256.Int).SubOverflow(i.rawOrZero(), other.rawOrZero())
	if underflow {
		panic("rewards: index checkpoint is ahead of the global index")
	}
	return Index{scaled: diff}
}

// DeltaFromDistribution computes floor(amount * 10^18 / totalStaked) as an
// Index increment — the per-unit-weight reward accrued by a distribution of
// amount against totalStaked total weight.
func DeltaFromDistribution(amount math.Int, totalStaked math.Int) Index {
	if totalStaked.IsZero() {
		panic("rewards: DeltaFromDistribution called with zero total staked")
	}
	num := new(big.Int).Mul(amount.BigInt(), indexScale)
	num.Quo(num, totalStaked.BigInt())
	raw, overflow := uint256.FromBig(num)
	if overflow {
		panic("rewards: distribution delta overflowed u256.18")
	}
	return Index{scaled: raw}
}

// MulFloor computes floor(weight * index) as an integer amount — the
// mul_floor(u128, u256.18) -> u128 contract from the specification.
func (i Index) MulFloor(weight math.Int) math.Int {
	if weight.IsZero() || i.IsZero() {
		return math.ZeroInt()
	}
	product := new(big.Int).Mul(i.rawOrZero().ToBig(), weight.BigInt())
	product.Quo(product, indexScale)
	return math.NewIntFromBigInt(product)
}

// String renders the index as a decimal with 18 fractional digits.
func (i Index) String() string {
	raw := i.rawOrZero().ToBig()
	whole := new(big.Int).Quo(raw, indexScale)
	frac := new(big.Int).Mod(raw, indexScale)
	return fmt.Sprintf("%s.%018s", whole.String(), frac.String())
}

// MarshalJSON encodes the index as its raw scaled integer, decimal string.
func (i Index) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.rawOrZero().String() + `"`), nil
}

// UnmarshalJSON decodes the raw scaled integer produced by MarshalJSON.
func (i *Index) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		i.scaled = uint256.NewInt(0)
		return nil
	}
	raw, err := uint256.FromDecimal(s)
	if err != nil {
		return fmt.Errorf("rewards: invalid index %q: %w", s, err)
	}
	i.scaled = raw
	return nil
}
