package chainjson

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
)

// Engine is the engine section: a tagged object whose single key selects the
// consensus engine variant. The tag set is closed; unknown tags and
// documents selecting zero or several variants are rejected at decode time.
type Engine struct {
	Null           *NullEngine           `json:"-"`
	InstantSeal    *InstantSealEngine    `json:"-"`
	Ethash         *EthashEngine         `json:"-"`
	BasicAuthority *BasicAuthorityEngine `json:"-"`
	AuthorityRound *AuthorityRoundEngine `json:"-"`
	Tendermint     *TendermintEngine     `json:"-"`
}

// NullEngine takes no parameters.
type NullEngine struct{}

// InstantSealEngine takes no parameters.
type InstantSealEngine struct{}

// EthashEngine carries the proof-of-work difficulty parameters.
type EthashEngine struct {
	Params EthashParams `json:"params"`
}

// EthashParams is the proof-of-work parameter payload.
type EthashParams struct {
	MinimumDifficulty      *math.HexOrDecimal256 `json:"minimumDifficulty,omitempty"`
	DifficultyBoundDivisor *math.HexOrDecimal256 `json:"difficultyBoundDivisor,omitempty"`
	DurationLimit          *math.HexOrDecimal64  `json:"durationLimit,omitempty"`
	HomesteadTransition    *math.HexOrDecimal64  `json:"homesteadTransition,omitempty"`
}

// BasicAuthorityEngine carries the single round-robin authority parameters.
type BasicAuthorityEngine struct {
	Params BasicAuthorityParams `json:"params"`
}

// BasicAuthorityParams is the single-authority parameter payload.
type BasicAuthorityParams struct {
	DurationLimit *math.HexOrDecimal64 `json:"durationLimit,omitempty"`
	Validators    []common.Address     `json:"validators"`
}

// AuthorityRoundEngine carries the round-based authority parameters.
type AuthorityRoundEngine struct {
	Params AuthorityRoundParams `json:"params"`
}

// AuthorityRoundParams is the round-authority parameter payload.
type AuthorityRoundParams struct {
	StepDuration math.HexOrDecimal64  `json:"stepDuration"`
	Validators   []common.Address     `json:"validators"`
	StartStep    *math.HexOrDecimal64 `json:"startStep,omitempty"`
}

// TendermintEngine carries the BFT-style engine parameters.
type TendermintEngine struct {
	Params TendermintParams `json:"params"`
}

// TendermintParams is the BFT-style parameter payload.
type TendermintParams struct {
	Validators      []common.Address     `json:"validators"`
	TimeoutPropose  *math.HexOrDecimal64 `json:"timeoutPropose,omitempty"`
	TimeoutCommit   *math.HexOrDecimal64 `json:"timeoutCommit,omitempty"`
}

// UnmarshalJSON decodes the tagged engine object.
func (e *Engine) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("engine must select exactly one variant, document has %d", len(raw))
	}
	for tag, body := range raw {
		switch tag {
		case "null":
			e.Null = new(NullEngine)
			return unmarshalEngineBody(tag, body, e.Null)
		case "instantSeal":
			e.InstantSeal = new(InstantSealEngine)
			return unmarshalEngineBody(tag, body, e.InstantSeal)
		case "ethash":
			e.Ethash = new(EthashEngine)
			return unmarshalEngineBody(tag, body, e.Ethash)
		case "basicAuthority":
			e.BasicAuthority = new(BasicAuthorityEngine)
			return unmarshalEngineBody(tag, body, e.BasicAuthority)
		case "authorityRound":
			e.AuthorityRound = new(AuthorityRoundEngine)
			return unmarshalEngineBody(tag, body, e.AuthorityRound)
		case "tendermint":
			e.Tendermint = new(TendermintEngine)
			return unmarshalEngineBody(tag, body, e.Tendermint)
		default:
			return fmt.Errorf("unknown engine %q", tag)
		}
	}
	return nil
}

// unmarshalEngineBody decodes a variant payload. A JSON null body selects
// the variant with its zero-value parameters, matching documents that spell
// the parameterless engines as {"null": null}.
func unmarshalEngineBody(tag string, body json.RawMessage, into interface{}) error {
	if len(body) == 0 || string(body) == "null" {
		return nil
	}
	if err := json.Unmarshal(body, into); err != nil {
		return fmt.Errorf("invalid %s engine parameters: %v", tag, err)
	}
	return nil
}

// tag returns the name of the selected variant, or "" when none is set.
func (e *Engine) tag() string {
	switch {
	case e.Null != nil:
		return "null"
	case e.InstantSeal != nil:
		return "instantSeal"
	case e.Ethash != nil:
		return "ethash"
	case e.BasicAuthority != nil:
		return "basicAuthority"
	case e.AuthorityRound != nil:
		return "authorityRound"
	case e.Tendermint != nil:
		return "tendermint"
	}
	return ""
}
