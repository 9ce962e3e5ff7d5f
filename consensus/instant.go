package consensus

import (
	"github.com/rony4d/go-chainspec/builtin"
	"github.com/rony4d/go-chainspec/chain"
	"github.com/rony4d/go-chainspec/inter"
)

// InstantSeal finalizes every proposed block immediately without any proof.
// Intended for development chains where mining latency is pure friction.
type InstantSeal struct {
	base
}

// NewInstantSeal builds the instant-finality engine.
func NewInstantSeal(params chain.Params, builtins builtin.Table) *InstantSeal {
	return &InstantSeal{base: newBase(params, builtins)}
}

func (e *InstantSeal) Name() string { return "InstantSeal" }

func (e *InstantSeal) SealFields() int { return 0 }

func (e *InstantSeal) VerifySeal(header *inter.Header) error {
	return verifySealArity(e, header)
}
