package commitment

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ConvertToReferenceCurrency converts a payment amount into reference-currency
// units at the term rate. The multiplication runs at full precision and the
// result is truncated once, at the end, so conversions are consistent for the
// commitment's whole life (the rate never changes after SetTerms).
func (c *Commitment) ConvertToReferenceCurrency(amount *big.Int) *big.Int {
	return c.terms.Rate.Mul(amount)
}

// SplitReward splits a total reward between a contributor and the fixed
// beneficiary. The contributor share is total/2 rounded half up, the
// beneficiary takes the remainder, so the two shares always sum exactly to
// total and any odd unit goes to the contributor.
func SplitReward(total *big.Int) (contributor, beneficiary *big.Int) {
	if total == nil || total.Sign() <= 0 {
		return new(big.Int), new(big.Int)
	}
	// ceil(total/2) == (total+1) >> 1 for non-negative totals
	contributor = new(big.Int).Add(total, big.NewInt(1))
	contributor.Rsh(contributor, 1)
	beneficiary = new(big.Int).Sub(total, contributor)
	return contributor, beneficiary
}

// distributeReward transfers the two halves of a reward split out of the
// engine's own balance: the contributor share to the contributor, the
// beneficiary share to the term beneficiary.
//
// Reward transfers may be globally disabled while a commitment is live. The
// switch is force-enabled for the duration of the transfers and the previous
// state is restored afterwards regardless of outcome: this is a scoped
// toggle, never a lasting side effect. Both transfers must succeed or the
// whole split fails with ErrRewardDistributionFailed.
func (c *Commitment) distributeReward(contributor common.Address, contributorShare, beneficiaryShare *big.Int) error {
	wasEnabled := c.reward.TransferEnabled()
	if !wasEnabled {
		c.reward.EnableTransfer(true)
		defer c.reward.EnableTransfer(false)
	}

	if contributorShare.Sign() > 0 {
		if !c.reward.Transfer(c.self, contributor, contributorShare) {
			return ErrRewardDistributionFailed
		}
	}
	if beneficiaryShare.Sign() > 0 {
		if !c.reward.Transfer(c.self, c.terms.Beneficiary, beneficiaryShare) {
			// undo the first half so a failed split leaves no partial effect
			c.reward.Transfer(contributor, c.self, contributorShare)
			return ErrRewardDistributionFailed
		}
	}
	return nil
}

// recallShares claws both halves of a distributed split back into the engine's
// balance so a failed commit can burn the issued total. By the time this runs
// the two holders still own exactly the transferred shares, so the transfers
// cannot fail. Same scoped transfer-enable toggle as distributeReward.
func (c *Commitment) recallShares(contributor common.Address, contributorShare, beneficiaryShare *big.Int) {
	wasEnabled := c.reward.TransferEnabled()
	if !wasEnabled {
		c.reward.EnableTransfer(true)
		defer c.reward.EnableTransfer(false)
	}

	if contributorShare.Sign() > 0 {
		c.reward.Transfer(contributor, c.self, contributorShare)
	}
	if beneficiaryShare.Sign() > 0 {
		c.reward.Transfer(c.terms.Beneficiary, c.self, beneficiaryShare)
	}
}
