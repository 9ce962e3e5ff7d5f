package genesis

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Account is the plain-value initial state of one genesis account. All
// fields are literal values with no trie pointers, so a PodState can be
// compared, copied and re-materialized freely.
type Account struct {
	Balance *big.Int
	Nonce   uint64
	Code    []byte
	Storage map[common.Hash]common.Hash
}

// PodState maps each genesis address to its initial account record.
type PodState map[common.Address]Account

// Copy returns a deep copy of the pod state.
func (s PodState) Copy() PodState {
	cp := make(PodState, len(s))
	for addr, account := range s {
		acc := account
		if account.Balance != nil {
			acc.Balance = new(big.Int).Set(account.Balance)
		}
		if account.Code != nil {
			acc.Code = append([]byte(nil), account.Code...)
		}
		if account.Storage != nil {
			acc.Storage = make(map[common.Hash]common.Hash, len(account.Storage))
			for k, v := range account.Storage {
				acc.Storage[k] = v
			}
		}
		cp[addr] = acc
	}
	return cp
}

// Constructor pairs a deployment address with creation bytecode to run once
// at genesis. Constructors execute in the order the specification document
// declares them; the order is significant and must not be re-sorted.
type Constructor struct {
	Address common.Address
	Code    []byte
}
