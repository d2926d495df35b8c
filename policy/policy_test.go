package policy

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestTable_grantRevoke(t *testing.T) {
	subject := common.Address{19: 0xAD}
	table := NewTable()

	if table.Allowed(subject, "commitment/set-terms") {
		t.Fatal("empty table must deny")
	}

	table.Grant(subject, "commitment/set-terms")
	if !table.Allowed(subject, "commitment/set-terms") {
		t.Fatal("granted action must be allowed")
	}
	if table.Allowed(subject, "commitment/reclaim") {
		t.Fatal("grant must not leak to other actions")
	}
	if table.Allowed(common.Address{19: 0x01}, "commitment/set-terms") {
		t.Fatal("grant must not leak to other subjects")
	}

	table.Revoke(subject, "commitment/set-terms")
	if table.Allowed(subject, "commitment/set-terms") {
		t.Fatal("revoked action must be denied")
	}

	// revoking an absent grant is a no-op
	table.Revoke(common.Address{19: 0x02}, "commitment/set-terms")
}

func TestOpen_allowsEverything(t *testing.T) {
	if !(Open{}).Allowed(common.Address{}, "anything") {
		t.Fatal("Open policy must allow")
	}
}
