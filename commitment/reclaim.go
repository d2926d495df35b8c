package commitment

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
)

// Reclaim forwards the engine's entire balance of an arbitrary asset to the
// given receiver. It is an escape hatch for tokens accidentally sent to the
// engine's address and is unrelated to the commitment lifecycle.
//
// The caller must hold ActionReclaim under the access policy. The payment and
// reward assets themselves are refused while the commitment is live (terms
// set, not yet finalized), since their engine-held balances can be in flight
// inside a Commit.
func (c *Commitment) Reclaim(caller common.Address, asset Token, to common.Address) error {
	if c.policy != nil && !c.policy.Allowed(caller, ActionReclaim) {
		return ErrNotAuthorized
	}
	if c.configured && !c.finalized {
		if asset.Address() == c.payment.Address() || asset.Address() == c.reward.Address() {
			return ErrReclaimForbidden
		}
	}

	balance := asset.BalanceOf(c.self)
	if balance.Sign() == 0 {
		return nil
	}
	if !asset.Transfer(c.self, to, balance) {
		return fmt.Errorf("%w: reclaim of %s", ErrTransferFailed, asset.Address().Hex())
	}

	c.log.WithFields(logrus.Fields{
		"asset":  asset.Address().Hex(),
		"to":     to.Hex(),
		"amount": balance,
	}).Info("asset reclaimed")
	return nil
}
