package consensus

import (
	"github.com/rony4d/go-chainspec/builtin"
	"github.com/rony4d/go-chainspec/chain"
	"github.com/rony4d/go-chainspec/inter"
)

// NullEngine performs no sealing at all. It exists so that chains used for
// state tests and tooling still expose the full engine capability surface.
type NullEngine struct {
	base
}

// NewNullEngine builds the no-op engine.
func NewNullEngine(params chain.Params, builtins builtin.Table) *NullEngine {
	return &NullEngine{base: newBase(params, builtins)}
}

func (e *NullEngine) Name() string { return "NullEngine" }

func (e *NullEngine) SealFields() int { return 0 }

func (e *NullEngine) VerifySeal(header *inter.Header) error {
	return verifySealArity(e, header)
}
