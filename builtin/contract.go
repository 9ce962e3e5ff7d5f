// Package builtin describes the contracts implemented natively by the client
// rather than as EVM bytecode. The package is a descriptor table only: which
// address hosts which native implementation, from which height, at what
// price. Executing a builtin is the interpreter's concern.
package builtin

import "github.com/ethereum/go-ethereum/common"

// Contract describes one builtin contract.
type Contract struct {
	// Name of the native implementation, e.g. "ecrecover" or "modexp".
	Name string
	// ActivateAt is the height from which the builtin answers calls.
	ActivateAt uint64
	// Linear is the linear cost model, nil for builtins priced by an
	// input-dependent formula (e.g. modexp).
	Linear *LinearPricing
	// ModexpDivisor is the complexity divisor of formula-priced builtins.
	ModexpDivisor uint64
}

// LinearPricing charges a base cost plus a per-word cost of the input.
type LinearPricing struct {
	Base uint64
	Word uint64
}

// IsActive reports whether the builtin answers calls at the given height.
func (c *Contract) IsActive(number uint64) bool {
	return number >= c.ActivateAt
}

// Cost returns the gas charged for an input of the given length under the
// linear model, or zero for formula-priced builtins whose cost depends on
// the input contents.
func (c *Contract) Cost(inputLen int) uint64 {
	if c.Linear == nil {
		return 0
	}
	words := uint64((inputLen + 31) / 32)
	return c.Linear.Base + c.Linear.Word*words
}

// Table maps builtin contracts by address.
type Table = map[common.Address]*Contract
