package consensus

import (
	"math/big"

	"github.com/rony4d/go-chainspec/builtin"
	"github.com/rony4d/go-chainspec/chain"
	"github.com/rony4d/go-chainspec/inter"
)

// EthashParams are the proof-of-work difficulty parameters resolved from the
// engine section of the document.
type EthashParams struct {
	// MinimumDifficulty is the floor the difficulty never drops below.
	MinimumDifficulty *big.Int
	// DifficultyBoundDivisor bounds the per-block difficulty adjustment.
	DifficultyBoundDivisor *big.Int
	// DurationLimit is the block time target steering the adjustment.
	DurationLimit uint64
	// HomesteadTransition switches to the homestead difficulty rule.
	HomesteadTransition uint64
}

// Ethash is the proof-of-work engine. The nonce search and the full seal
// verification live with the miner; this handle carries the resolved
// parameters and the seal layout.
type Ethash struct {
	base
	ethashParams EthashParams
}

// NewEthash builds the proof-of-work engine.
func NewEthash(params chain.Params, ethashParams EthashParams, builtins builtin.Table) *Ethash {
	if ethashParams.MinimumDifficulty == nil {
		ethashParams.MinimumDifficulty = new(big.Int)
	}
	if ethashParams.DifficultyBoundDivisor == nil {
		ethashParams.DifficultyBoundDivisor = big.NewInt(1)
	}
	return &Ethash{base: newBase(params, builtins), ethashParams: ethashParams}
}

func (e *Ethash) Name() string { return "Ethash" }

// EthashParams returns the resolved proof-of-work parameters.
func (e *Ethash) EthashParams() EthashParams { return e.ethashParams }

// SealFields is 2: the mix hash and the 8-byte nonce.
func (e *Ethash) SealFields() int { return 2 }

func (e *Ethash) VerifySeal(header *inter.Header) error {
	return verifySealArity(e, header)
}
