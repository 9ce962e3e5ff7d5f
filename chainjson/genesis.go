package chainjson

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
)

// Genesis is the genesis section of the document.
type Genesis struct {
	Seal             Seal                  `json:"seal"`
	Difficulty       *math.HexOrDecimal256 `json:"difficulty"`
	Author           *common.Address       `json:"author,omitempty"`
	Timestamp        *math.HexOrDecimal64  `json:"timestamp,omitempty"`
	ParentHash       *common.Hash          `json:"parentHash,omitempty"`
	GasLimit         math.HexOrDecimal64   `json:"gasLimit"`
	GasUsed          *math.HexOrDecimal64  `json:"gasUsed,omitempty"`
	ExtraData        hexutil.Bytes         `json:"extraData,omitempty"`
	TransactionsRoot *common.Hash          `json:"transactionsRoot,omitempty"`
	ReceiptsRoot     *common.Hash          `json:"receiptsRoot,omitempty"`

	// StateRoot, when present, is adopted as the memoized genesis state
	// root instead of materializing the accounts section at load time.
	StateRoot *common.Hash `json:"stateRoot,omitempty"`
}

// Seal is the genesis seal, one variant per engine family plus a generic
// escape hatch carrying pre-encoded seal bytes.
type Seal struct {
	Ethereum       *EthereumSeal       `json:"ethereum,omitempty"`
	AuthorityRound *AuthorityRoundSeal `json:"authorityRound,omitempty"`
	Tendermint     *TendermintSeal     `json:"tendermint,omitempty"`
	Generic        hexutil.Bytes       `json:"generic,omitempty"`
}

// EthereumSeal is the proof-of-work seal: mix hash and 8-byte nonce.
type EthereumSeal struct {
	MixHash common.Hash   `json:"mixHash"`
	Nonce   hexutil.Bytes `json:"nonce"`
}

// AuthorityRoundSeal is the round-authority seal: step and step signature.
type AuthorityRoundSeal struct {
	Step      math.HexOrDecimal64 `json:"step"`
	Signature hexutil.Bytes       `json:"signature"`
}

// TendermintSeal is the BFT-style seal: round, proposal signature and the
// precommit signature list.
type TendermintSeal struct {
	Round      math.HexOrDecimal64 `json:"round"`
	Proposal   hexutil.Bytes       `json:"proposal"`
	Precommits []hexutil.Bytes     `json:"precommits"`
}
