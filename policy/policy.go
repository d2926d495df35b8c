// Package policy provides a reference access-policy evaluator: a plain
// subject-to-action grant table. The commitment engine consults it through the
// commitment.AccessPolicy interface; how grants are managed in a real
// deployment (role hierarchies, governance) is out of scope here.
package policy

import "github.com/ethereum/go-ethereum/common"

// Table is a mutable grant table. The zero value is unusable; use NewTable.
type Table struct {
	grants map[common.Address]map[string]bool
}

// NewTable creates an empty table: every lookup denies until granted.
func NewTable() *Table {
	return &Table{grants: map[common.Address]map[string]bool{}}
}

// Grant allows subject to perform action.
func (t *Table) Grant(subject common.Address, action string) {
	row, ok := t.grants[subject]
	if !ok {
		row = map[string]bool{}
		t.grants[subject] = row
	}
	row[action] = true
}

// Revoke removes a previously issued grant. Revoking an absent grant is a
// no-op.
func (t *Table) Revoke(subject common.Address, action string) {
	if row, ok := t.grants[subject]; ok {
		delete(row, action)
	}
}

// Allowed reports whether subject holds a grant for action.
func (t *Table) Allowed(subject common.Address, action string) bool {
	return t.grants[subject][action]
}

// Open is a policy that allows everything; handy for tests and simulations
// that don't exercise authorization.
type Open struct{}

// Allowed always reports true.
func (Open) Allowed(subject common.Address, action string) bool { return true }
