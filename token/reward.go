package token

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Reward is the reward-token reference. Transfers start globally disabled:
// the token is non-transferable while a commitment is live, and the engine
// force-enables the switch only for the scope of a reward split (or for good,
// once a successful commitment finalizes).
type Reward struct {
	addr        common.Address
	controller  common.Address
	enabled     bool
	balances    map[common.Address]*big.Int
	totalSupply *big.Int
}

// NewReward creates a reward token with transfers disabled. controller is the
// only account allowed to mint and to flip the transfer switch; deployments
// hand this to the commitment engine.
func NewReward(addr, controller common.Address) *Reward {
	return &Reward{
		addr:        addr,
		controller:  controller,
		balances:    map[common.Address]*big.Int{},
		totalSupply: new(big.Int),
	}
}

// Address returns the token's contract identity.
func (r *Reward) Address() common.Address { return r.addr }

// TransferEnabled reports the state of the global transfer switch.
func (r *Reward) TransferEnabled() bool { return r.enabled }

// EnableTransfer flips the global transfer switch.
func (r *Reward) EnableTransfer(enabled bool) { r.enabled = enabled }

// Mint creates amount new units and credits them to `to`.
func (r *Reward) Mint(to common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	b, ok := r.balances[to]
	if !ok {
		b = new(big.Int)
		r.balances[to] = b
	}
	b.Add(b, amount)
	r.totalSupply.Add(r.totalSupply, amount)
	return nil
}

// Burn destroys amount of owner's balance and shrinks the total supply.
func (r *Reward) Burn(owner common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	b, ok := r.balances[owner]
	if !ok || b.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	b.Sub(b, amount)
	r.totalSupply.Sub(r.totalSupply, amount)
	return nil
}

// Transfer moves amount between holders. Fails (returns false) while the
// transfer switch is off or if the sender's balance is too small; a zero
// transfer always succeeds.
func (r *Reward) Transfer(from, to common.Address, amount *big.Int) bool {
	if amount == nil || amount.Sign() < 0 {
		return false
	}
	if amount.Sign() == 0 {
		return true
	}
	if !r.enabled {
		return false
	}
	fromBal, ok := r.balances[from]
	if !ok || fromBal.Cmp(amount) < 0 {
		return false
	}
	toBal, ok := r.balances[to]
	if !ok {
		toBal = new(big.Int)
		r.balances[to] = toBal
	}
	fromBal.Sub(fromBal, amount)
	toBal.Add(toBal, amount)
	return true
}

// BalanceOf returns the holder's balance.
func (r *Reward) BalanceOf(owner common.Address) *big.Int {
	if b, ok := r.balances[owner]; ok {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

// TotalSupply returns the amount minted so far.
func (r *Reward) TotalSupply() *big.Int {
	return new(big.Int).Set(r.totalSupply)
}
