package consensus

import (
	"errors"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/go-chainspec/builtin"
	"github.com/rony4d/go-chainspec/chain"
	"github.com/rony4d/go-chainspec/inter"
)

// AuthorityRound rotates sealing authority through a fixed validator set in
// wall-clock steps of a configured duration. The current step is derived
// from time, so two correct nodes agree on the authority without messages.
type AuthorityRound struct {
	base
	stepDuration uint64
	validators   *ValidatorSet

	mu   sync.Mutex
	step uint64
}

// NewAuthorityRound builds the step-rotating authority engine. Construction
// fails if the step duration is zero or the validator set is empty; a chain
// configured that way can never make progress.
func NewAuthorityRound(params chain.Params, stepDuration uint64, validators *ValidatorSet, startStep *uint64, builtins builtin.Table) (*AuthorityRound, error) {
	if stepDuration == 0 {
		return nil, errors.New("authority round: step duration cannot be 0")
	}
	if validators == nil || validators.Len() == 0 {
		return nil, errors.New("authority round: empty validator set")
	}
	e := &AuthorityRound{
		base:         newBase(params, builtins),
		stepDuration: stepDuration,
		validators:   validators,
	}
	if startStep != nil {
		e.step = *startStep
	} else {
		e.step = uint64(time.Now().Unix()) / stepDuration
	}
	return e, nil
}

func (e *AuthorityRound) Name() string { return "AuthorityRound" }

// StepDuration is the length of one step in seconds.
func (e *AuthorityRound) StepDuration() uint64 { return e.stepDuration }

// Validators returns the authority set.
func (e *AuthorityRound) Validators() *ValidatorSet { return e.validators }

// Step returns the current step counter.
func (e *AuthorityRound) Step() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.step
}

// AdvanceStep moves the step counter forward by one and returns the new
// value. Called by the sealing loop on each step tick.
func (e *AuthorityRound) AdvanceStep() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.step++
	return e.step
}

// AuthorityFor returns the validator expected to seal the given step.
func (e *AuthorityRound) AuthorityFor(step uint64) common.Address {
	return e.validators.AuthorityFor(step)
}

// SealFields is 2: the step number and the validator signature.
func (e *AuthorityRound) SealFields() int { return 2 }

func (e *AuthorityRound) VerifySeal(header *inter.Header) error {
	return verifySealArity(e, header)
}
