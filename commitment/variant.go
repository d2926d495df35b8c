package commitment

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Variant is the set of polymorphic hooks a concrete commitment flavor
// implements. The engine depends only on this interface, so multiple flavors
// (equity, reward-only, whitelisted, ...) share the same state machine.
type Variant interface {
	// ValidCommitment may impose additional domain-specific eligibility rules
	// on a contribution that has already passed every structural check.
	// Returning false fails the Commit with ErrInvalidCommitment.
	ValidCommitment(contributor common.Address, amount *big.Int) bool

	// Issue computes and mints the reward for a payment, crediting the
	// engine's own address. The returned amount is the total reward to be
	// split between the contributor and the beneficiary.
	Issue(contributor common.Address, amount *big.Int) (*big.Int, error)

	// OnSuccess runs exactly once, inside the finalization transition of a
	// commitment that reached its minimum cap.
	OnSuccess(c *Commitment) error

	// OnFailure runs exactly once, inside the finalization transition of a
	// commitment that fell short of its minimum cap.
	OnFailure(c *Commitment) error
}

// Minter is implemented by reward assets that can create new supply. The
// proportional variant mints through it.
type Minter interface {
	Mint(to common.Address, amount *big.Int) error
}

// ProportionalVariant is the default flavor: every contribution is eligible,
// the reward is a fixed multiple of the payment, and the outcome hooks only
// flip the reward token's transfer switch.
type ProportionalVariant struct {
	// Reward is the reward-per-payment-unit rate (a fraction so sub-unit
	// rates are expressible exactly).
	Reward interface {
		Mul(x *big.Int) *big.Int
	}

	// Minter mints the issued reward to the engine's address.
	Minter Minter

	// engine is the engine's own address, set via bind at construction.
	engine common.Address
}

// ValidCommitment accepts every structurally valid contribution.
func (v *ProportionalVariant) ValidCommitment(contributor common.Address, amount *big.Int) bool {
	return true
}

// Issue mints Reward*amount to the engine and returns the minted total.
func (v *ProportionalVariant) Issue(contributor common.Address, amount *big.Int) (*big.Int, error) {
	reward := v.Reward.Mul(amount)
	if reward.Sign() == 0 {
		return reward, nil
	}
	if err := v.Minter.Mint(v.engine, reward); err != nil {
		return nil, err
	}
	return reward, nil
}

// engine is set by the Commitment during construction so Issue knows where to
// mint. It is the engine's own address.
func (v *ProportionalVariant) bind(engine common.Address) { v.engine = engine }

// OnSuccess permanently enables reward transfers: contributors may trade
// their reward once the commitment succeeded.
func (v *ProportionalVariant) OnSuccess(c *Commitment) error {
	c.reward.EnableTransfer(true)
	return nil
}

// OnFailure leaves the reward token untouched; unlocking individual
// contributor balances is the vault's responsibility, not this engine's.
func (v *ProportionalVariant) OnFailure(c *Commitment) error {
	return nil
}
