package consensus

import (
	"github.com/rony4d/go-chainspec/builtin"
	"github.com/rony4d/go-chainspec/chain"
	"github.com/rony4d/go-chainspec/inter"
)

// BasicAuthority seals blocks with a single signature from any member of a
// fixed validator set.
type BasicAuthority struct {
	base
	durationLimit uint64
	validators    *ValidatorSet
}

// NewBasicAuthority builds the single-signature authority engine. An empty
// validator set is accepted: such a chain can verify but never seal.
func NewBasicAuthority(params chain.Params, durationLimit uint64, validators *ValidatorSet, builtins builtin.Table) *BasicAuthority {
	if validators == nil {
		validators = NewValidatorSet(nil)
	}
	return &BasicAuthority{
		base:          newBase(params, builtins),
		durationLimit: durationLimit,
		validators:    validators,
	}
}

func (e *BasicAuthority) Name() string { return "BasicAuthority" }

// DurationLimit is the block time target in seconds.
func (e *BasicAuthority) DurationLimit() uint64 { return e.durationLimit }

// Validators returns the authority set.
func (e *BasicAuthority) Validators() *ValidatorSet { return e.validators }

// SealFields is 1: the validator signature.
func (e *BasicAuthority) SealFields() int { return 1 }

func (e *BasicAuthority) VerifySeal(header *inter.Header) error {
	return verifySealArity(e, header)
}
