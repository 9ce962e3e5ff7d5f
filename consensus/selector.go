package consensus

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"

	"github.com/rony4d/go-chainspec/builtin"
	"github.com/rony4d/go-chainspec/chain"
	"github.com/rony4d/go-chainspec/chainjson"
)

// New resolves the engine section of a chain specification into a running
// engine instance. The switch over variants is total: every tag the decoder
// accepts has an arm here, and a document that selects none is rejected.
func New(cfg chainjson.Engine, params chain.Params, builtins builtin.Table) (Engine, error) {
	switch {
	case cfg.Null != nil:
		return NewNullEngine(params, builtins), nil
	case cfg.InstantSeal != nil:
		return NewInstantSeal(params, builtins), nil
	case cfg.Ethash != nil:
		return NewEthash(params, ethashParams(cfg.Ethash.Params), builtins), nil
	case cfg.BasicAuthority != nil:
		p := cfg.BasicAuthority.Params
		return NewBasicAuthority(params, optUint64(p.DurationLimit, 0), NewValidatorSet(p.Validators), builtins), nil
	case cfg.AuthorityRound != nil:
		p := cfg.AuthorityRound.Params
		var start *uint64
		if p.StartStep != nil {
			s := uint64(*p.StartStep)
			start = &s
		}
		return NewAuthorityRound(params, uint64(p.StepDuration), NewValidatorSet(p.Validators), start, builtins)
	case cfg.Tendermint != nil:
		p := cfg.Tendermint.Params
		vs := NewValidatorSet(p.Validators)
		return NewTendermint(params, vs, optUint64(p.TimeoutPropose, defaultTimeoutPropose), optUint64(p.TimeoutCommit, defaultTimeoutCommit), builtins)
	}
	return nil, errors.New("chain spec declares no consensus engine")
}

// Tendermint phase timeouts in milliseconds when the document omits them.
const (
	defaultTimeoutPropose = 10000
	defaultTimeoutCommit  = 1000
)

func ethashParams(p chainjson.EthashParams) EthashParams {
	out := EthashParams{
		DurationLimit:       optUint64(p.DurationLimit, 0),
		HomesteadTransition: optUint64(p.HomesteadTransition, chain.NeverTransition),
	}
	if p.MinimumDifficulty != nil {
		out.MinimumDifficulty = (*big.Int)(p.MinimumDifficulty)
	}
	if p.DifficultyBoundDivisor != nil {
		out.DifficultyBoundDivisor = (*big.Int)(p.DifficultyBoundDivisor)
	}
	return out
}

func optUint64(v *math.HexOrDecimal64, def uint64) uint64 {
	if v == nil {
		return def
	}
	return uint64(*v)
}
