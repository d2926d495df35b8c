// Package token provides in-memory reference implementations of the two
// asset collaborators the commitment engine composes with: the wrapped
// payment asset and the reward token. They exist to exercise the engine in
// tests and in the launcher's simulated lifecycle; a production deployment
// substitutes bindings to the real contracts.
package token

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Errors shared by both reference assets.
var (
	ErrInsufficientBalance   = errors.New("token: insufficient balance")
	ErrInsufficientAllowance = errors.New("token: insufficient allowance")
	ErrNegativeAmount        = errors.New("token: negative amount")
)

// Payment is the wrapped-payment-asset reference: it accepts native currency
// deposits (modelled as free minting, since the native value is attached to
// the call) and exposes an allowance-based transfer.
//
// Every method validates before it mutates, so a failed call leaves the
// asset's state untouched.
type Payment struct {
	addr       common.Address
	balances   map[common.Address]*big.Int
	allowances map[common.Address]map[common.Address]*big.Int
}

// NewPayment creates an empty wrapped payment asset at the given address.
func NewPayment(addr common.Address) *Payment {
	return &Payment{
		addr:       addr,
		balances:   map[common.Address]*big.Int{},
		allowances: map[common.Address]map[common.Address]*big.Int{},
	}
}

// Address returns the asset's contract identity.
func (p *Payment) Address() common.Address { return p.addr }

// Deposit credits owner with amount of wrapped units against the native value
// attached to the call.
func (p *Payment) Deposit(owner common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	p.credit(owner, amount)
	return nil
}

// Approve grants spender an allowance of exactly amount out of owner's
// balance, replacing any previous allowance.
func (p *Payment) Approve(owner, spender common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	row, ok := p.allowances[owner]
	if !ok {
		row = map[common.Address]*big.Int{}
		p.allowances[owner] = row
	}
	row[spender] = new(big.Int).Set(amount)
	return nil
}

// Withdraw burns amount of owner's wrapped units, releasing the attached
// native value back to the owner.
func (p *Payment) Withdraw(owner common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	if p.BalanceOf(owner).Cmp(amount) < 0 {
		return fmt.Errorf("%w: have %s, need %s", ErrInsufficientBalance, p.BalanceOf(owner), amount)
	}
	p.debit(owner, amount)
	return nil
}

// Allowance returns the remaining allowance spender holds over owner's funds.
func (p *Payment) Allowance(owner, spender common.Address) *big.Int {
	if row, ok := p.allowances[owner]; ok {
		if a, ok := row[spender]; ok {
			return new(big.Int).Set(a)
		}
	}
	return new(big.Int)
}

// TransferFrom moves amount from `from` to `to`, spending the allowance held
// by spender. Allowance and balance are both checked before any mutation.
func (p *Payment) TransferFrom(spender, from, to common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	allowance := p.Allowance(from, spender)
	if allowance.Cmp(amount) < 0 {
		return fmt.Errorf("%w: have %s, need %s", ErrInsufficientAllowance, allowance, amount)
	}
	if p.BalanceOf(from).Cmp(amount) < 0 {
		return fmt.Errorf("%w: have %s, need %s", ErrInsufficientBalance, p.BalanceOf(from), amount)
	}
	p.allowances[from][spender] = allowance.Sub(allowance, amount)
	p.debit(from, amount)
	p.credit(to, amount)
	return nil
}

// Transfer moves amount directly from one holder to another. Returns false if
// the sender's balance is too small.
func (p *Payment) Transfer(from, to common.Address, amount *big.Int) bool {
	if amount == nil || amount.Sign() < 0 {
		return false
	}
	if amount.Sign() == 0 {
		return true
	}
	if p.BalanceOf(from).Cmp(amount) < 0 {
		return false
	}
	p.debit(from, amount)
	p.credit(to, amount)
	return true
}

// BalanceOf returns the holder's wrapped balance.
func (p *Payment) BalanceOf(owner common.Address) *big.Int {
	if b, ok := p.balances[owner]; ok {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

func (p *Payment) credit(owner common.Address, amount *big.Int) {
	b, ok := p.balances[owner]
	if !ok {
		b = new(big.Int)
		p.balances[owner] = b
	}
	b.Add(b, amount)
}

func (p *Payment) debit(owner common.Address, amount *big.Int) {
	p.balances[owner].Sub(p.balances[owner], amount)
}
