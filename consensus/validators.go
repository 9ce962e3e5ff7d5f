package consensus

import (
	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"
)

// ValidatorSet is the ordered list of authority addresses an
// authority-based engine rotates through. Validator ids are assigned
// sequentially from 1 in declaration order and never reused, so the set can
// be referenced compactly in seals and validator-set caches.
//
// The set itself is immutable after construction; engines that track a live
// validator set layer their own synchronized state on top.
type ValidatorSet struct {
	list []common.Address
	ids  map[common.Address]idx.ValidatorID
}

// NewValidatorSet builds a set from the addresses in declaration order.
// Duplicate addresses keep their first position.
func NewValidatorSet(addrs []common.Address) *ValidatorSet {
	vs := &ValidatorSet{ids: make(map[common.Address]idx.ValidatorID, len(addrs))}
	for _, addr := range addrs {
		if _, ok := vs.ids[addr]; ok {
			continue
		}
		vs.list = append(vs.list, addr)
		vs.ids[addr] = idx.ValidatorID(len(vs.list))
	}
	return vs
}

// Len returns the number of validators.
func (vs *ValidatorSet) Len() int { return len(vs.list) }

// List returns the validator addresses in declaration order.
func (vs *ValidatorSet) List() []common.Address {
	return append([]common.Address(nil), vs.list...)
}

// ID returns the validator id of the address.
func (vs *ValidatorSet) ID(addr common.Address) (idx.ValidatorID, bool) {
	id, ok := vs.ids[addr]
	return id, ok
}

// Contains reports whether the address is a validator.
func (vs *ValidatorSet) Contains(addr common.Address) bool {
	_, ok := vs.ids[addr]
	return ok
}

// AuthorityFor returns the validator responsible for the given step,
// rotating round-robin through the declaration order. An empty set has no
// authority for any step and yields the zero address.
func (vs *ValidatorSet) AuthorityFor(step uint64) common.Address {
	if len(vs.list) == 0 {
		return common.Address{}
	}
	return vs.list[step%uint64(len(vs.list))]
}
