package token

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var (
	assetAddr = common.Address{19: 0xF1}
	owner     = common.Address{19: 0x01}
	spender   = common.Address{19: 0x02}
	receiver  = common.Address{19: 0x03}
)

func TestPayment_depositAndBalance(t *testing.T) {
	p := NewPayment(assetAddr)
	require.NoError(t, p.Deposit(owner, big.NewInt(100)))
	require.NoError(t, p.Deposit(owner, big.NewInt(50)))
	require.Equal(t, int64(150), p.BalanceOf(owner).Int64())
	require.Equal(t, ErrNegativeAmount, p.Deposit(owner, big.NewInt(-1)))
}

func TestPayment_withdrawBurnsWrappedUnits(t *testing.T) {
	p := NewPayment(assetAddr)
	require.NoError(t, p.Deposit(owner, big.NewInt(100)))

	require.NoError(t, p.Withdraw(owner, big.NewInt(40)))
	require.Equal(t, int64(60), p.BalanceOf(owner).Int64())

	err := p.Withdraw(owner, big.NewInt(61))
	require.True(t, errors.Is(err, ErrInsufficientBalance))
	require.Equal(t, int64(60), p.BalanceOf(owner).Int64())
	require.Equal(t, ErrNegativeAmount, p.Withdraw(owner, big.NewInt(-1)))
}

func TestPayment_approveReplacesAllowance(t *testing.T) {
	p := NewPayment(assetAddr)
	require.NoError(t, p.Approve(owner, spender, big.NewInt(60)))
	require.NoError(t, p.Approve(owner, spender, big.NewInt(10)))
	require.Equal(t, int64(10), p.Allowance(owner, spender).Int64())
}

func TestPayment_transferFrom(t *testing.T) {
	p := NewPayment(assetAddr)
	require.NoError(t, p.Deposit(owner, big.NewInt(100)))
	require.NoError(t, p.Approve(owner, spender, big.NewInt(60)))

	require.NoError(t, p.TransferFrom(spender, owner, receiver, big.NewInt(60)))
	require.Equal(t, int64(40), p.BalanceOf(owner).Int64())
	require.Equal(t, int64(60), p.BalanceOf(receiver).Int64())
	require.Equal(t, int64(0), p.Allowance(owner, spender).Int64())

	// allowance is spent: a second pull must fail without moving funds
	err := p.TransferFrom(spender, owner, receiver, big.NewInt(1))
	require.True(t, errors.Is(err, ErrInsufficientAllowance))
	require.Equal(t, int64(40), p.BalanceOf(owner).Int64())
}

func TestPayment_transferFromChecksBalance(t *testing.T) {
	p := NewPayment(assetAddr)
	require.NoError(t, p.Deposit(owner, big.NewInt(10)))
	require.NoError(t, p.Approve(owner, spender, big.NewInt(60)))

	err := p.TransferFrom(spender, owner, receiver, big.NewInt(60))
	require.True(t, errors.Is(err, ErrInsufficientBalance))
	// the failed pull must not touch the allowance either
	require.Equal(t, int64(60), p.Allowance(owner, spender).Int64())
}

func TestReward_transferSwitch(t *testing.T) {
	r := NewReward(assetAddr, owner)
	require.NoError(t, r.Mint(owner, big.NewInt(100)))

	// disabled by default: transfers bounce
	require.False(t, r.TransferEnabled())
	require.False(t, r.Transfer(owner, receiver, big.NewInt(10)))
	require.Equal(t, int64(100), r.BalanceOf(owner).Int64())

	r.EnableTransfer(true)
	require.True(t, r.Transfer(owner, receiver, big.NewInt(10)))
	require.Equal(t, int64(90), r.BalanceOf(owner).Int64())
	require.Equal(t, int64(10), r.BalanceOf(receiver).Int64())
}

func TestReward_transferEdgeCases(t *testing.T) {
	r := NewReward(assetAddr, owner)
	r.EnableTransfer(true)

	require.True(t, r.Transfer(owner, receiver, big.NewInt(0)), "zero transfer is a no-op success")
	require.False(t, r.Transfer(owner, receiver, big.NewInt(1)), "insufficient balance")
	require.False(t, r.Transfer(owner, receiver, nil))
}

func TestReward_mintGrowsSupply(t *testing.T) {
	r := NewReward(assetAddr, owner)
	require.NoError(t, r.Mint(owner, big.NewInt(70)))
	require.NoError(t, r.Mint(receiver, big.NewInt(30)))
	require.Equal(t, int64(100), r.TotalSupply().Int64())
	require.Equal(t, ErrNegativeAmount, r.Mint(owner, big.NewInt(-1)))
}

func TestReward_burnShrinksSupply(t *testing.T) {
	r := NewReward(assetAddr, owner)
	require.NoError(t, r.Mint(owner, big.NewInt(100)))

	require.NoError(t, r.Burn(owner, big.NewInt(30)))
	require.Equal(t, int64(70), r.BalanceOf(owner).Int64())
	require.Equal(t, int64(70), r.TotalSupply().Int64())

	// burning more than the balance fails without touching state
	require.Equal(t, ErrInsufficientBalance, r.Burn(owner, big.NewInt(71)))
	require.Equal(t, int64(70), r.TotalSupply().Int64())
	require.Equal(t, ErrNegativeAmount, r.Burn(owner, big.NewInt(-1)))
}
