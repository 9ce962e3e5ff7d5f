// Package consensus defines the capability interface every consensus engine
// variant implements, and the selector that builds the one variant a chain
// specification names. The engine instance is constructed exactly once per
// loaded specification and then shared by reference across validation,
// mining and RPC; nothing may swap the selected variant afterwards. Any
// internal mutable state a variant keeps (step counters, validator caches)
// is its own synchronization responsibility.
package consensus

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/go-chainspec/builtin"
	"github.com/rony4d/go-chainspec/chain"
	"github.com/rony4d/go-chainspec/inter"
)

// Engine is the capability surface shared by every consensus mechanism.
type Engine interface {
	// Name returns the engine identifier used in logs and RPC output.
	Name() string
	// Params returns the chain parameters the engine was resolved with.
	Params() *chain.Params
	// Schedule returns the execution flag set active at the given height.
	Schedule(number uint64) chain.Schedule
	// StartNonce returns the nonce of a fresh account at the given height.
	StartNonce(number uint64) uint64
	// SealFields reports how many seal items a sealed header carries.
	SealFields() int
	// VerifySeal checks the structural validity of a header's seal. The
	// cryptographic seal checks live with the concrete mechanism.
	VerifySeal(header *inter.Header) error
	// Builtin returns the builtin contract at the address, or nil.
	Builtin(addr common.Address) *builtin.Contract
	// IsBuiltin reports whether a builtin contract lives at the address.
	IsBuiltin(addr common.Address) bool
}

// base carries the state common to every engine variant.
type base struct {
	params   chain.Params
	builtins builtin.Table
}

func newBase(params chain.Params, builtins builtin.Table) base {
	if builtins == nil {
		builtins = builtin.Table{}
	}
	return base{params: params, builtins: builtins}
}

func (b *base) Params() *chain.Params { return &b.params }

func (b *base) Schedule(number uint64) chain.Schedule { return b.params.Schedule(number) }

func (b *base) StartNonce(number uint64) uint64 { return b.params.AccountStartNonce }

func (b *base) Builtin(addr common.Address) *builtin.Contract { return b.builtins[addr] }

func (b *base) IsBuiltin(addr common.Address) bool { return b.builtins[addr] != nil }

// verifySealArity is the structural seal check shared by the variants.
func verifySealArity(engine Engine, header *inter.Header) error {
	if got, want := len(header.Seal), engine.SealFields(); got != want {
		return fmt.Errorf("%s: header has %d seal fields, want %d", engine.Name(), got, want)
	}
	return nil
}
