package consensus

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/go-chainspec/builtin"
	"github.com/rony4d/go-chainspec/chain"
	"github.com/rony4d/go-chainspec/inter"
)

// Tendermint seals blocks through propose/precommit rounds over a fixed
// validator set. Only the structural surface lives here; the round state
// machine belongs to the networked consensus service.
type Tendermint struct {
	base
	validators     *ValidatorSet
	timeoutPropose uint64
	timeoutCommit  uint64
}

// NewTendermint builds the BFT engine. Construction fails on an empty
// validator set since quorum is undefined without one.
func NewTendermint(params chain.Params, validators *ValidatorSet, timeoutPropose, timeoutCommit uint64, builtins builtin.Table) (*Tendermint, error) {
	if validators == nil || validators.Len() == 0 {
		return nil, errors.New("tendermint: empty validator set")
	}
	return &Tendermint{
		base:           newBase(params, builtins),
		validators:     validators,
		timeoutPropose: timeoutPropose,
		timeoutCommit:  timeoutCommit,
	}, nil
}

func (e *Tendermint) Name() string { return "Tendermint" }

// Validators returns the validator set.
func (e *Tendermint) Validators() *ValidatorSet { return e.validators }

// TimeoutPropose is the propose phase timeout in milliseconds.
func (e *Tendermint) TimeoutPropose() uint64 { return e.timeoutPropose }

// TimeoutCommit is the commit phase timeout in milliseconds.
func (e *Tendermint) TimeoutCommit() uint64 { return e.timeoutCommit }

// Proposer returns the validator proposing in the given round.
func (e *Tendermint) Proposer(round uint64) common.Address {
	return e.validators.AuthorityFor(round)
}

// SealFields is 3: the round, the proposal seal and the precommit seals.
func (e *Tendermint) SealFields() int { return 3 }

func (e *Tendermint) VerifySeal(header *inter.Header) error {
	return verifySealArity(e, header)
}
